package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/hupe1980/screenmesh/core"
	"github.com/hupe1980/screenmesh/export"
)

var screenCmd = &cobra.Command{
	Use:   "screen",
	Short: "Run a screening query against a protein target",
	Long: `Runs the full screening pipeline: target validation, library generation,
scoring, ranking and report generation. The target may be a protein name
(e.g. EGFR) or a 4-character structure ID (e.g. 1A4G). Omitted target or
library size is filled from the session's remembered context.`,
	RunE: runScreen,
}

func init() {
	screenCmd.Flags().String("target", "", "protein name or structure ID (falls back to session memory)")
	screenCmd.Flags().Int("size", 0, "candidate library size (falls back to session memory, then default)")
	screenCmd.Flags().Int("top", 0, "number of top hits to report (default from config)")
	screenCmd.Flags().StringSlice("candidates", nil, "custom SMILES candidates (bypasses catalog sampling)")
	screenCmd.Flags().String("session", "default", "session key for memory and archive")
	screenCmd.Flags().String("out", "", "directory to write ranked CSV and Markdown report into")
	rootCmd.AddCommand(screenCmd)
}

func runScreen(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	engine, cleanup, err := newEngine(cfg)
	if err != nil {
		return err
	}
	defer cleanup() //nolint:errcheck

	target, _ := cmd.Flags().GetString("target")
	size, _ := cmd.Flags().GetInt("size")
	topN, _ := cmd.Flags().GetInt("top")
	candidates, _ := cmd.Flags().GetStringSlice("candidates")
	session, _ := cmd.Flags().GetString("session")
	outDir, _ := cmd.Flags().GetString("out")

	result, err := engine.Submit(cmd.Context(), core.Query{
		Intent:           core.IntentScreen,
		SessionID:        session,
		Target:           target,
		LibrarySize:      size,
		TopN:             topN,
		CustomCandidates: candidates,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, w := range result.Warnings {
		fmt.Fprintln(out, "Warning:", w)
	}
	if result.Failed() {
		return fmt.Errorf("%s: %s", result.Err.Kind, result.Err.Detail)
	}

	report := result.Report
	fmt.Fprintf(out, "Screened %s: %d candidates, best score %s\n",
		report.Target.String(), report.LibrarySize, report.BestScore.String())
	for i, hit := range report.TopCandidates {
		fmt.Fprintf(out, "  %2d. %s  %-24s %s\n", i+1, hit.ID, hit.Notation, hit.Score.String())
	}
	fmt.Fprintln(out, "Recommendation:", report.Recommendation)
	if result.Err != nil {
		// Best-effort persistence failure: the screening itself succeeded.
		fmt.Fprintln(out, "Warning:", result.Err.Detail)
	}

	if outDir != "" {
		if err := writeArtifacts(outDir, report); err != nil {
			return err
		}
		fmt.Fprintln(out, "Artifacts written to", outDir)
	}
	return nil
}

// writeArtifacts exports the ranked hits as CSV and the report as Markdown.
func writeArtifacts(dir string, report *core.Report) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	csvFile, err := os.Create(filepath.Join(dir, "top_hits.csv"))
	if err != nil {
		return fmt.Errorf("creating CSV file: %w", err)
	}
	defer csvFile.Close()
	if err := export.WriteRankedCSV(csvFile, report.TopCandidates); err != nil {
		return err
	}

	mdFile, err := os.Create(filepath.Join(dir, "summary.md"))
	if err != nil {
		return fmt.Errorf("creating Markdown file: %w", err)
	}
	defer mdFile.Close()
	return export.RenderMarkdown(mdFile, report)
}
