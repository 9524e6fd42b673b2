package ast_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aledsdavies/llc/pkgs/ast"
)

func TestTypeEquality(t *testing.T) {
	require.True(t, ast.NullType{}.Equal(ast.NullType{}))
	require.False(t, ast.NullType{}.Equal(ast.StringType{}))

	require.True(t, ast.ParserType{Ret: ast.StringType{}}.Equal(ast.ParserType{Ret: ast.StringType{}}))
	require.False(t, ast.ParserType{Ret: ast.StringType{}}.Equal(ast.ParserType{Ret: ast.NullType{}}))

	a := ast.StructType{Fields: map[string]string{"numerator": "n", "denominator": "d"}}
	b := ast.StructType{Fields: map[string]string{"numerator": "n", "denominator": "d"}}
	c := ast.StructType{Fields: map[string]string{"numerator": "n"}}
	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))
}

func TestStorageMethodPrefixes(t *testing.T) {
	require.Equal(t, "", ast.Ignore{}.Prefix())
	require.Equal(t, "return ", ast.Return{}.Prefix())
	require.Equal(t, "let n = ", ast.VarStorage{Name: "n"}.Prefix())
}

func TestBuilders(t *testing.T) {
	def := ast.NewDef("test", ast.NewLiteralParser("foo"), true)
	require.Equal(t, "test", def.Name)
	require.True(t, def.Exported)

	seq := ast.NewSequence(ast.NewVar("a"), ast.NewVar("b"))
	require.NotNil(t, seq.First)
	require.NotNil(t, seq.Second)

	stmts := ast.NewStatementSequence(def, ast.NewDebug(ast.NewVar("a")))
	require.Len(t, stmts.Stmts, 2)
}
