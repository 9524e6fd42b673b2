package generator

import "fmt"

// EmitError covers non-recoverable failures discovered while walking an
// already-decorated tree: an invalid regex pattern, or (per spec.md §6.4's
// --stdin, supplemented from the prototype's standalone_parser_entrypoint
// parameter) a standalone entrypoint that names an export that doesn't
// exist.
type EmitError struct {
	Reason string
}

func (e *EmitError) Error() string {
	return fmt.Sprintf("emit error: %s", e.Reason)
}

func newEmitError(format string, args ...any) *EmitError {
	return &EmitError{Reason: fmt.Sprintf(format, args...)}
}
