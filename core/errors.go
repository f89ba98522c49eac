package core

import (
	"errors"
	"fmt"
)

// ErrorKind is the closed taxonomy of pipeline failures. Every error the
// pipeline surfaces to callers maps to exactly one kind.
type ErrorKind string

const (
	// ErrorKindUnknownTarget: the target is neither a known protein name nor
	// a well-formed structure ID. Terminal for the query.
	ErrorKindUnknownTarget ErrorKind = "unknown_target"
	// ErrorKindEmptyLibrary: library generation produced zero candidates
	// (e.g. every custom entry was malformed).
	ErrorKindEmptyLibrary ErrorKind = "empty_library"
	// ErrorKindInvalidTopN: the ranking bound is not a positive integer.
	ErrorKindInvalidTopN ErrorKind = "invalid_top_n"
	// ErrorKindMissingParameters: required query fields are absent and no
	// session context can fill them.
	ErrorKindMissingParameters ErrorKind = "missing_parameters"
	// ErrorKindStorageUnavailable: the memory store failed. Degrades reads,
	// reported (not fatal) on writes.
	ErrorKindStorageUnavailable ErrorKind = "storage_unavailable"
)

// PipelineError is the typed error carried through the pipeline. Kind is the
// machine-readable classification; Detail describes the specific instance.
type PipelineError struct {
	Kind   ErrorKind
	Detail string
}

// Error implements the error interface.
func (e *PipelineError) Error() string { return fmt.Sprintf("%s: %s", e.Kind, e.Detail) }

// Info converts to the serializable ErrorInfo form used in RunResults.
func (e *PipelineError) Info() *ErrorInfo { return &ErrorInfo{Kind: e.Kind, Detail: e.Detail} }

// NewPipelineError constructs a PipelineError with a formatted detail.
func NewPipelineError(kind ErrorKind, format string, args ...any) *PipelineError {
	return &PipelineError{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

// AsPipelineError unwraps err looking for a *PipelineError.
func AsPipelineError(err error) (*PipelineError, bool) {
	var pe *PipelineError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

// KindOf returns the ErrorKind of err, or "" when err carries none.
func KindOf(err error) ErrorKind {
	if pe, ok := AsPipelineError(err); ok {
		return pe.Kind
	}
	return ""
}
