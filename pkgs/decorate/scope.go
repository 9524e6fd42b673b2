package decorate

import "github.com/aledsdavies/llc/pkgs/ast"

// Scope maps a bound name to its resolved type. It is passed by reference
// and mutated in place by Named bindings within a single Def's body, but
// Def entry always hands the inner walk a fresh Clone so sibling
// definitions never see each other's local bindings — matching the
// prototype's copy.copy(scope) at Def entry
// (_examples/original_source/langlang/parsing/syntax_tree_utilities.py),
// not the earlier draft that shared one scope across the whole walk.
type Scope map[string]ast.Type

// Clone returns a shallow copy: a new map with the same entries, so
// mutations after this point are invisible to the caller's scope.
func (s Scope) Clone() Scope {
	out := make(Scope, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}
