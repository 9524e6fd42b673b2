package ast

import "fmt"

// Type is the small type algebra spec.md §3 decorates nodes with: Null,
// String, Parser(ret), or Struct(fields). Grounded on
// _examples/original_source/langlang/parsing/types.py, translated from
// Python dataclasses to Go structs implementing a common interface.
type Type interface {
	Equal(Type) bool
	String() string
}

// NullType is the type of the program as a whole (StatementSequence) and of
// any node that produces no usable value.
type NullType struct{}

func (NullType) Equal(other Type) bool {
	_, ok := other.(NullType)
	return ok
}
func (NullType) String() string { return "Null" }

// StringType is the type produced by literal and regex parsers.
type StringType struct{}

func (StringType) Equal(other Type) bool {
	_, ok := other.(StringType)
	return ok
}
func (StringType) String() string { return "String" }

// ParserType wraps the type of whatever the parser's enclosing rule returns.
type ParserType struct {
	Ret Type
}

func (p ParserType) Equal(other Type) bool {
	o, ok := other.(ParserType)
	return ok && p.Ret.Equal(o.Ret)
}
func (p ParserType) String() string { return fmt.Sprintf("Parser(%s)", p.Ret) }

// StructType is the type of a struct value expression. Per spec.md §4.4,
// decoration does not resolve each field's value to a type — it records the
// same field-name -> scope-entry-name mapping ast.Struct itself carries;
// resolution happens only during emission, when each value name is looked
// up against the live scope. Grounded directly on
// _examples/original_source/langlang/parsing/syntax_tree_utilities.py's
// `node.type = types.Struct(node.map)`, where `node.map` is the unresolved
// field->name mapping, not a field->Type mapping.
type StructType struct {
	Fields map[string]string
}

func (s StructType) Equal(other Type) bool {
	o, ok := other.(StructType)
	if !ok || len(s.Fields) != len(o.Fields) {
		return false
	}
	for name, v := range s.Fields {
		ov, ok := o.Fields[name]
		if !ok || v != ov {
			return false
		}
	}
	return true
}
func (s StructType) String() string { return fmt.Sprintf("Struct(%v)", s.Fields) }

// StorageMethod describes how the emitter disposes of a node's produced
// value: discarded, returned from the enclosing rule, or bound to a local
// name. Grounded on
// _examples/original_source/langlang/parsing/storage_methods.py /
// langlang/assemblers/javascript.py's Ignore/Return/Var classes, each of
// which contributes a JS statement prefix.
type StorageMethod interface {
	Prefix() string
	String() string
}

// Ignore discards the node's value; the emitted statement has no prefix.
type Ignore struct{}

func (Ignore) Prefix() string { return "" }
func (Ignore) String() string { return "Ignore" }

// Return returns the node's value from the enclosing rule method.
type Return struct{}

func (Return) Prefix() string { return "return " }
func (Return) String() string { return "Return" }

// VarStorage binds the node's value to a local JS variable named Name.
type VarStorage struct {
	Name string
}

func (v VarStorage) Prefix() string { return fmt.Sprintf("let %s = ", v.Name) }
func (v VarStorage) String() string { return fmt.Sprintf("Var(%s)", v.Name) }
