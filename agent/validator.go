package agent

import (
	"context"
	"regexp"
	"strings"

	"github.com/hupe1980/screenmesh/chem"
	"github.com/hupe1980/screenmesh/core"
)

// structureIDPattern matches canonical 4-character structure identifiers:
// a leading non-zero digit followed by three alphanumerics (PDB convention).
// "ZZZZ" deliberately does not match.
var structureIDPattern = regexp.MustCompile(`^[1-9][A-Za-z0-9]{3}$`)

// TargetValidator resolves raw target input into a canonical core.Target.
// It accepts either a well-formed structure ID or a protein name from the
// fixed chem.Proteins table (case-insensitive). Anything else fails the run
// with UnknownTarget.
type TargetValidator struct {
	BaseStage
}

var _ core.TargetValidator = (*TargetValidator)(nil)

// NewTargetValidator constructs the validation stage.
func NewTargetValidator() *TargetValidator {
	v := &TargetValidator{BaseStage: NewBaseStage("TargetValidator")}
	v.SetDescription("Validates and standardizes protein target inputs (structure IDs or protein names)")
	return v
}

// ValidateTarget resolves raw into a Target. The input is trimmed first;
// matching is case-insensitive in both forms and the returned ID is always
// upper case.
func (v *TargetValidator) ValidateTarget(_ context.Context, raw string) (core.Target, error) {
	input := strings.TrimSpace(raw)
	if input == "" {
		return core.Target{}, core.NewPipelineError(core.ErrorKindUnknownTarget, "empty target input")
	}

	if id, ok := chem.LookupProtein(input); ok {
		v.Logger().Debug("target resolved by name", "input", input, "structure_id", id)
		return core.Target{ID: id, Name: strings.ToUpper(input)}, nil
	}

	if structureIDPattern.MatchString(input) {
		id := strings.ToUpper(input)
		v.Logger().Debug("target accepted as structure ID", "structure_id", id)
		return core.Target{ID: id, Name: chem.ProteinName(id)}, nil
	}

	return core.Target{}, core.NewPipelineError(core.ErrorKindUnknownTarget,
		"target %q is neither a known protein name nor a valid structure ID", input)
}
