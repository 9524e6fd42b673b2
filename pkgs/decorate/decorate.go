// Package decorate implements the semantic decorator: a single pre-order
// walk over the AST that fills in each node's Type and StorageMethod,
// resolving names against a threaded scope. Grounded on
// _examples/original_source/langlang/parsing/syntax_tree_utilities.py's
// set_types_and_storage_methods, translated from a mutated-in-place
// Python object graph into mutation of the same Go struct pointers the
// parser already built (Decoration is embedded by value, so decorate
// writes straight through the *ast.X pointer every other package holds).
package decorate

import "github.com/aledsdavies/llc/pkgs/ast"

// bottomType is the placeholder Decorate's first pass binds to every
// top-level Def name, so self-references and forward references resolve
// instead of failing UnresolvedName. A Def's entry is replaced by
// Parser(body type) once that Def has been decorated; a reference decorated
// before then keeps Parser(⊥), which equals only another Parser(⊥) when a
// Peek compares its case body types.
type bottomType struct{}

func (bottomType) Equal(other ast.Type) bool { _, ok := other.(bottomType); return ok }
func (bottomType) String() string            { return "⊥" }

// Decorate annotates prog and every node beneath it in place.
//
// Forward references across top-level Defs are resolved in two passes,
// per spec.md §9's redesign note: first every Def name is pre-bound to
// Parser(⊥) in the top-level scope, then each body is decorated against
// the complete set of names. This replaces the source's per-Def
// recursion-placeholder hack (which only pre-bound the Def's own name,
// leaving later top-level siblings invisible to earlier ones) with a
// scheme where order of definition never matters.
func Decorate(prog *ast.StatementSequence) error {
	topScope := Scope{}

	for _, stmt := range prog.Stmts {
		def, ok := stmt.(*ast.Def)
		if !ok {
			continue
		}
		if _, exists := topScope[def.Name]; exists {
			return &DuplicateDefinition{Name: def.Name}
		}
		topScope[def.Name] = ast.ParserType{Ret: bottomType{}}
	}

	for _, stmt := range prog.Stmts {
		if err := decorateNode(stmt, topScope, ast.Ignore{}); err != nil {
			return err
		}
	}

	prog.StorageMethod = ast.Ignore{}
	prog.Type = ast.NullType{}
	return nil
}

func decorateNode(node ast.Node, scope Scope, sm ast.StorageMethod) error {
	switch n := node.(type) {

	case *ast.LiteralParser:
		n.StorageMethod = sm
		n.Type = ast.StringType{}
		return nil

	case *ast.RegexParser:
		n.StorageMethod = sm
		n.Type = ast.StringType{}
		return nil

	case *ast.Sequence:
		n.StorageMethod = sm
		if err := decorateNode(n.First, scope, ast.Ignore{}); err != nil {
			return err
		}
		if err := decorateNode(n.Second, scope, sm); err != nil {
			return err
		}
		n.Type = typeOf(n.Second)
		return nil

	case *ast.Peek:
		n.StorageMethod = sm
		for i, c := range n.Cases {
			if c.Test != nil {
				if err := decorateNode(c.Test, scope, ast.Ignore{}); err != nil {
					return err
				}
			}
			if err := decorateNode(c.Body, scope, sm); err != nil {
				return err
			}
			bodyType := typeOf(c.Body)
			if i == 0 {
				n.Type = bodyType
			} else if !n.Type.Equal(bodyType) {
				return &PeekTypeMismatch{First: n.Type.String(), Mismatch: bodyType.String()}
			}
		}
		return nil

	case *ast.Named:
		n.StorageMethod = sm
		if err := decorateNode(n.Expr, scope, ast.VarStorage{Name: n.Name}); err != nil {
			return err
		}
		n.Type = typeOf(n.Expr)
		if pt, ok := n.Type.(ast.ParserType); ok {
			scope[n.Name] = pt.Ret
		} else {
			scope[n.Name] = n.Type
		}
		return nil

	case *ast.As:
		n.StorageMethod = sm
		if err := decorateNode(n.Parser, scope, ast.Ignore{}); err != nil {
			return err
		}
		if err := decorateNode(n.Result, scope, sm); err != nil {
			return err
		}
		n.Type = typeOf(n.Result)
		return nil

	case *ast.Error:
		n.StorageMethod = sm
		if err := decorateNode(n.Parser, scope, sm); err != nil {
			return err
		}
		n.Type = typeOf(n.Parser)
		return nil

	case *ast.Debug:
		n.StorageMethod = sm
		if err := decorateNode(n.Expr, scope, sm); err != nil {
			return err
		}
		n.Type = typeOf(n.Expr)
		return nil

	case *ast.Var:
		n.StorageMethod = sm
		t, ok := scope[n.Name]
		if !ok {
			return &UnresolvedName{Name: n.Name}
		}
		n.Type = t
		return nil

	case *ast.LitStr:
		n.StorageMethod = sm
		n.Type = ast.StringType{}
		return nil

	case *ast.Struct:
		n.StorageMethod = sm
		fields := make(map[string]string, len(n.Fields))
		for _, f := range n.Fields {
			fields[f.Name] = f.Value
		}
		n.Type = ast.StructType{Fields: fields}
		return nil

	case *ast.Def:
		inner := scope.Clone()
		if err := decorateNode(n.Expr, inner, ast.Return{}); err != nil {
			return err
		}
		n.StorageMethod = ast.Ignore{}
		n.Type = ast.ParserType{Ret: typeOf(n.Expr)}
		scope[n.Name] = n.Type
		return nil

	default:
		return &UnknownNode{Node: node}
	}
}

// typeOf reads back the Type a child node was just decorated with. Every
// variant embeds Decoration, so this is a small type switch rather than a
// method on the Node interface, keeping Node itself marker-only per
// spec.md §9.
func typeOf(node ast.Node) ast.Type {
	switch n := node.(type) {
	case *ast.LiteralParser:
		return n.Type
	case *ast.RegexParser:
		return n.Type
	case *ast.Var:
		return n.Type
	case *ast.Sequence:
		return n.Type
	case *ast.Peek:
		return n.Type
	case *ast.Named:
		return n.Type
	case *ast.As:
		return n.Type
	case *ast.Error:
		return n.Type
	case *ast.Debug:
		return n.Type
	case *ast.LitStr:
		return n.Type
	case *ast.Struct:
		return n.Type
	case *ast.Def:
		return n.Type
	case *ast.StatementSequence:
		return n.Type
	default:
		return ast.NullType{}
	}
}
