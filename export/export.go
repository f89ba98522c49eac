// Package export renders screening results to caller-facing artifact
// formats: ranked candidates as CSV and Reports as Markdown documents. The
// core pipeline only hands back structured data; rendering is this package's
// (i.e. the caller's) concern.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/hupe1980/screenmesh/core"
)

// csvHeader is the column layout of ranked-candidate exports.
var csvHeader = []string{"rank", "ligand_id", "smiles", "docking_score"}

// WriteRankedCSV writes the scored candidates to w in rank order, one row per
// candidate plus a header row.
func WriteRankedCSV(w io.Writer, candidates []core.ScoredCandidate) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for i, c := range candidates {
		row := []string{
			strconv.Itoa(i + 1),
			c.ID,
			c.Notation,
			c.Score.String(),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing CSV row %d: %w", i+1, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing CSV: %w", err)
	}
	return nil
}

// RenderMarkdown renders the report as a Markdown summary document with a
// header, screening information, a top-hits table, a statistical summary and
// the recommendation.
func RenderMarkdown(w io.Writer, report *core.Report) error {
	var sb strings.Builder

	sb.WriteString("# Virtual Screening Summary Report\n\n")

	sb.WriteString("## Screening Information\n")
	fmt.Fprintf(&sb, "- **Date/Time**: %s\n", report.GeneratedAt.Format(time.RFC3339))
	fmt.Fprintf(&sb, "- **Run ID**: %s\n", report.RunID)
	fmt.Fprintf(&sb, "- **Target Protein**: %s (ID: %s)\n", report.Target.Name, report.Target.ID)
	fmt.Fprintf(&sb, "- **Library Size**: %d molecules\n", report.LibrarySize)
	sb.WriteString("- **Screening Method**: Mock docking simulation\n")
	sb.WriteString("- **Scoring Function**: Deterministic hash-based scoring\n\n")

	sb.WriteString("## Top Hits\n\n")
	sb.WriteString("The following molecules showed the best binding affinity (lower scores = better binding):\n\n")
	sb.WriteString("| Rank | Ligand ID | SMILES | Docking Score |\n")
	sb.WriteString("|------|-----------|--------|---------------|\n")
	for i, hit := range report.TopCandidates {
		fmt.Fprintf(&sb, "| %d | %s | `%s` | %s |\n", i+1, hit.ID, hit.Notation, hit.Score.String())
	}
	sb.WriteString("\n")

	sb.WriteString("## Statistical Summary\n")
	fmt.Fprintf(&sb, "- **Best Docking Score**: %s\n", report.BestScore.String())
	fmt.Fprintf(&sb, "- **Mean Score in Top Hits**: %s\n", report.MeanScore.String())
	fmt.Fprintf(&sb, "- **Worst Score in Top Hits**: %s\n\n", report.WorstScore.String())

	sb.WriteString("## Recommendation\n")
	sb.WriteString(report.Recommendation)
	sb.WriteString("\n\n---\n")
	sb.WriteString("*This is a mock simulation for demonstration purposes. Actual drug discovery requires sophisticated computational methods and experimental validation.*\n")

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("writing markdown report: %w", err)
	}
	return nil
}
