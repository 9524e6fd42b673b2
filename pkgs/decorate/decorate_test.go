package decorate_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aledsdavies/llc/pkgs/ast"
	"github.com/aledsdavies/llc/pkgs/decorate"
	"github.com/aledsdavies/llc/pkgs/lexer"
	"github.com/aledsdavies/llc/pkgs/parser"
)

func mustDecorate(t *testing.T, source string) *ast.StatementSequence {
	t.Helper()
	stream, err := lexer.Tokenize(source)
	require.NoError(t, err)
	prog, err := parser.Parse(stream)
	require.NoError(t, err)
	require.NoError(t, decorate.Decorate(prog))
	return prog
}

func TestVarResolvesToDefinitionType(t *testing.T) {
	prog := mustDecorate(t, "a :: `x`\nb :: a")

	b := prog.Stmts[1].(*ast.Def)
	v, ok := b.Expr.(*ast.Var)
	require.True(t, ok)
	require.NotNil(t, v.Type)
	require.Equal(t, ast.ParserType{Ret: ast.StringType{}}, v.Type)
}

func TestPeekCaseBodiesAgreeOnType(t *testing.T) {
	prog := mustDecorate(t, "export test :: peek { case `foo` => `bar` case _ => `baz` }")

	def := prog.Stmts[0].(*ast.Def)
	peek := def.Expr.(*ast.Peek)
	require.Equal(t, ast.StringType{}, peek.Type)
	for _, c := range peek.Cases {
		require.True(t, peek.Type.Equal(typeOfBody(t, c.Body)))
	}
}

func typeOfBody(t *testing.T, n ast.Node) ast.Type {
	t.Helper()
	switch v := n.(type) {
	case *ast.LiteralParser:
		return v.Type
	case *ast.As:
		return v.Type
	default:
		t.Fatalf("unexpected body node type %T", n)
		return nil
	}
}

func TestPeekCaseTypeMismatchIsAnError(t *testing.T) {
	source := "export test :: peek {\n" +
		"case `foo` => `bar`\n" +
		"case _ => `baz` as struct Empty { }\n" +
		"}"
	stream, err := lexer.Tokenize(source)
	require.NoError(t, err)
	prog, err := parser.Parse(stream)
	require.NoError(t, err)

	err = decorate.Decorate(prog)
	require.Error(t, err)

	var mismatch *decorate.PeekTypeMismatch
	require.ErrorAs(t, err, &mismatch)
}

func TestDefTopStorageMethodIsReturn(t *testing.T) {
	prog := mustDecorate(t, "export test :: `foo`")

	def := prog.Stmts[0].(*ast.Def)
	lit := def.Expr.(*ast.LiteralParser)
	require.Equal(t, ast.Return{}, lit.StorageMethod)
}

func TestNamedBindingStorageMethodCarriesName(t *testing.T) {
	prog := mustDecorate(t, "export test :: [`foo`: n] n")

	def := prog.Stmts[0].(*ast.Def)
	seq := def.Expr.(*ast.Sequence)
	named := seq.First.(*ast.Named)
	require.Equal(t, ast.VarStorage{Name: "n"}, named.Expr.(*ast.LiteralParser).StorageMethod)
}

func TestUnresolvedNameFailsDecoration(t *testing.T) {
	stream, err := lexer.Tokenize("export test :: missing")
	require.NoError(t, err)
	prog, err := parser.Parse(stream)
	require.NoError(t, err)

	err = decorate.Decorate(prog)
	require.Error(t, err)

	var unresolved *decorate.UnresolvedName
	require.ErrorAs(t, err, &unresolved)
	require.Equal(t, "missing", unresolved.Name)
}

func TestDuplicateTopLevelDefinitionFails(t *testing.T) {
	stream, err := lexer.Tokenize("test :: `foo`\ntest :: `bar`")
	require.NoError(t, err)
	prog, err := parser.Parse(stream)
	require.NoError(t, err)

	err = decorate.Decorate(prog)
	require.Error(t, err)

	var dup *decorate.DuplicateDefinition
	require.ErrorAs(t, err, &dup)
	require.Equal(t, "test", dup.Name)
}

func TestForwardReferenceAcrossTopLevelDefsResolves(t *testing.T) {
	// `a` is declared before `b` but references it; the two-pass scheme
	// pre-binds every top-level name before any body is decorated, so
	// this must not raise UnresolvedName regardless of definition order.
	prog := mustDecorate(t, "a :: b\nb :: `x`")

	a := prog.Stmts[0].(*ast.Def)
	v, ok := a.Expr.(*ast.Var)
	require.True(t, ok)
	require.NotNil(t, v.Type)

	pt, ok := v.Type.(ast.ParserType)
	require.True(t, ok, "expected a's reference to b to resolve to a parser type, got %T", v.Type)
	_ = pt
}

func TestStructFieldsKeptUnresolvedUntilEmission(t *testing.T) {
	prog := mustDecorate(t,
		"export test :: [`foo`: n] as struct Wrapper { value: n }")

	def := prog.Stmts[0].(*ast.Def)
	asNode := def.Expr.(*ast.As)
	st := asNode.Result.(*ast.Struct)

	structType, ok := st.Type.(ast.StructType)
	require.True(t, ok)
	require.Equal(t, map[string]string{"value": "n"}, structType.Fields)
}
