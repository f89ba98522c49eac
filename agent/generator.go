package agent

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"github.com/hupe1980/screenmesh/chem"
	"github.com/hupe1980/screenmesh/core"
)

// DefaultMaxLibrarySize caps generated libraries unless overridden. It must
// not exceed the catalog size.
const DefaultMaxLibrarySize = 30

// GeneratorOptions holds configuration overrides passed to NewLibraryGenerator.
type GeneratorOptions struct {
	// MaxLibrarySize bounds the size of any generated library.
	MaxLibrarySize int
	// Catalog replaces the built-in SMILES catalog (tests use short ones).
	Catalog []string
}

// LibraryGenerator builds candidate libraries. Caller-supplied notations are
// sanitized and adopted; otherwise entries are sampled from the fixed catalog,
// seeded deterministically by the target ID so the same target always yields
// the same library for a given size and catalog.
type LibraryGenerator struct {
	BaseStage
	maxSize int
	catalog []string
}

var _ core.LibraryGenerator = (*LibraryGenerator)(nil)

// NewLibraryGenerator constructs the generation stage with optional overrides.
func NewLibraryGenerator(optFns ...func(o *GeneratorOptions)) *LibraryGenerator {
	opts := GeneratorOptions{
		MaxLibrarySize: DefaultMaxLibrarySize,
		Catalog:        chem.Catalog,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.MaxLibrarySize > len(opts.Catalog) {
		opts.MaxLibrarySize = len(opts.Catalog)
	}

	g := &LibraryGenerator{
		BaseStage: NewBaseStage("LibraryGenerator"),
		maxSize:   opts.MaxLibrarySize,
		catalog:   opts.Catalog,
	}
	g.SetDescription("Generates mock molecule libraries with SMILES notations")
	return g
}

// MaxLibrarySize returns the configured library size cap.
func (g *LibraryGenerator) MaxLibrarySize() int { return g.maxSize }

// GenerateLibrary returns an ordered library of unique candidates plus any
// warnings produced while sanitizing custom input. A non-empty custom list
// takes the custom path; size is ignored there beyond the cap.
func (g *LibraryGenerator) GenerateLibrary(_ context.Context, target core.Target, size int, custom []string) (core.Library, []string, error) {
	if len(custom) > 0 {
		return g.fromCustom(custom)
	}
	return g.fromCatalog(target, size)
}

// fromCustom sanitizes caller-supplied notations: entries are trimmed, then
// empty entries, charset violations and duplicate notations are dropped with
// a warning each. An entirely invalid list is an EmptyLibrary failure.
func (g *LibraryGenerator) fromCustom(custom []string) (core.Library, []string, error) {
	var (
		candidates []core.Candidate
		warnings   []string
	)
	seen := make(map[string]struct{}, len(custom))

	for _, raw := range custom {
		notation := strings.TrimSpace(raw)
		switch {
		case notation == "":
			warnings = append(warnings, "dropped empty candidate entry")
			continue
		case !chem.ValidNotation(notation):
			warnings = append(warnings, "dropped malformed candidate "+strconv.Quote(notation))
			continue
		}
		if _, dup := seen[notation]; dup {
			warnings = append(warnings, "dropped duplicate candidate "+strconv.Quote(notation))
			continue
		}
		if len(candidates) >= g.maxSize {
			warnings = append(warnings, "dropped candidate beyond library cap "+strconv.Quote(notation))
			continue
		}
		seen[notation] = struct{}{}
		candidates = append(candidates, core.Candidate{
			ID:       core.CandidateID(len(candidates) + 1),
			Notation: notation,
		})
	}

	if len(candidates) == 0 {
		return core.Library{}, warnings, core.NewPipelineError(core.ErrorKindEmptyLibrary,
			"no valid candidates in custom list of %d entries", len(custom))
	}

	g.Logger().Debug("custom library built", "size", len(candidates), "warnings", len(warnings))
	return core.Library{Candidates: candidates, Custom: true}, warnings, nil
}

// fromCatalog samples size unique catalog entries deterministically: catalog
// entries are ordered by FNV-1a 64 of targetID||notation (index breaks hash
// ties) and the first size entries win. The ordering depends only on the
// target and the catalog, so the selection is reproducible across runs.
func (g *LibraryGenerator) fromCatalog(target core.Target, size int) (core.Library, []string, error) {
	var warnings []string
	if size > g.maxSize {
		warnings = append(warnings, "requested library size exceeds cap, clamped")
		size = g.maxSize
	}
	if size < 1 {
		size = 1
	}

	type keyed struct {
		hash  uint64
		index int
	}
	order := make([]keyed, len(g.catalog))
	for i, notation := range g.catalog {
		order[i] = keyed{hash: chem.Hash64(target.ID, notation), index: i}
	}
	sort.Slice(order, func(a, b int) bool {
		if order[a].hash != order[b].hash {
			return order[a].hash < order[b].hash
		}
		return order[a].index < order[b].index
	})

	candidates := make([]core.Candidate, size)
	for i := 0; i < size; i++ {
		candidates[i] = core.Candidate{
			ID:       core.CandidateID(i + 1),
			Notation: g.catalog[order[i].index],
		}
	}

	g.Logger().Debug("catalog library sampled", "target", target.ID, "size", size)
	return core.Library{Candidates: candidates}, warnings, nil
}
