package decorate

import "fmt"

// UnresolvedName is raised by a Var node whose name has no scope entry.
type UnresolvedName struct {
	Name string
}

func (e *UnresolvedName) Error() string {
	return fmt.Sprintf("unresolved name: %s", e.Name)
}

// PeekTypeMismatch is raised when a Peek's case bodies don't all produce
// the same type. spec.md §4.4 flags this as an open question between the
// source variants (error vs. warning); the spec's documented default,
// implemented here, is error.
type PeekTypeMismatch struct {
	First     string
	Mismatch  string
}

func (e *PeekTypeMismatch) Error() string {
	return fmt.Sprintf("peek case type mismatch: expected %s, got %s", e.First, e.Mismatch)
}

// DuplicateDefinition is raised when two top-level Defs share a name.
// spec.md §4.4 flags this as an open question (overwrite, warn, or error);
// the spec's documented default, implemented here, is error.
type DuplicateDefinition struct {
	Name string
}

func (e *DuplicateDefinition) Error() string {
	return fmt.Sprintf("duplicate definition: %s", e.Name)
}

// UnknownNode is raised when the decorator encounters an ast.Node variant
// it has no case for — it should be unreachable given the closed variant
// set, but mirrors the prototype's own `else: raise Exception('Unknown
// node')` fallback rather than silently no-op-ing.
type UnknownNode struct {
	Node any
}

func (e *UnknownNode) Error() string {
	return fmt.Sprintf("decorator: unknown node type %T", e.Node)
}
