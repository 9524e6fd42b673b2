// Package generator walks a decorated AST and renders it as a single
// JavaScript source file: a runtime skeleton (embedded verbatim, never
// parsed — spec.md §4.5's "Runtime coupling" note), one method per Def,
// a token table, and a block of exported entry-point functions. Grounded
// throughout on
// _examples/original_source/langlang/assemblers/javascript.py's
// assemble_into_js, whose (code, type) pair this package's emit mirrors
// one-to-one, including its indent-threading style: each recursive call
// receives and extends an indent string rather than the caller
// re-indenting after the fact.
package generator

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/dlclark/regexp2"

	"github.com/aledsdavies/llc/pkgs/ast"
)

const indentUnit = "    "

// emit renders node and returns the generated code chunk plus the node's
// static type (read back from decoration, not recomputed — pkgs/decorate
// already resolved it).
func emit(node ast.Node, ctx *context, indent string) (string, ast.Type, error) {
	switch n := node.(type) {

	case *ast.LiteralParser:
		return emitLiteralParser(n, ctx, indent)

	case *ast.RegexParser:
		return emitRegexParser(n, ctx, indent)

	case *ast.Sequence:
		first, _, err := emit(n.First, ctx, indent)
		if err != nil {
			return "", nil, err
		}
		second, secondType, err := emit(n.Second, ctx, indent)
		if err != nil {
			return "", nil, err
		}
		return first + "\n" + second, secondType, nil

	case *ast.Peek:
		return emitPeek(n, ctx, indent)

	case *ast.Named:
		return emitNamed(n, ctx, indent)

	case *ast.As:
		parser, _, err := emit(n.Parser, ctx, indent)
		if err != nil {
			return "", nil, err
		}
		result, resultType, err := emit(n.Result, ctx, indent)
		if err != nil {
			return "", nil, err
		}
		return parser + "\n" + result, resultType, nil

	case *ast.Error:
		return emitError(n, ctx, indent)

	case *ast.Debug:
		return emitDebug(n, ctx, indent)

	case *ast.Var:
		return emitVar(n, indent)

	case *ast.LitStr:
		return fmt.Sprintf("%s%s%q", indent, n.StorageMethod.Prefix(), n.Value), ast.StringType{}, nil

	case *ast.Struct:
		return emitStruct(n, indent)

	case *ast.StatementSequence:
		return emitStatementSequence(n, ctx, indent)

	case *ast.Def:
		return emitDef(n, ctx, indent)

	default:
		return "", nil, newEmitError("unknown node type %T", node)
	}
}

func emitLiteralParser(n *ast.LiteralParser, ctx *context, indent string) (string, ast.Type, error) {
	tokenName := "lit_" + n.Lexeme
	ctx.addToken(tokenName, jsRegexLiteral(escapeRegexMeta(n.Lexeme)))
	code := fmt.Sprintf("%s%sthis.__require(%q).value;", indent, n.StorageMethod.Prefix(), tokenName)
	return code, ast.StringType{}, nil
}

func emitRegexParser(n *ast.RegexParser, ctx *context, indent string) (string, ast.Type, error) {
	if _, err := regexp2.Compile(n.Pattern, regexp2.ECMAScript); err != nil {
		return "", nil, newEmitError("pattern %q is not valid ECMAScript regex: %v", n.Pattern, err)
	}
	tokenName := strings.ReplaceAll(n.Pattern, `"`, `\"`)
	escaped := strings.ReplaceAll(n.Pattern, "/", `\/`)
	ctx.addToken(tokenName, jsRegexLiteral(escaped))
	code := fmt.Sprintf("%s%sthis.__require(%q).value;", indent, n.StorageMethod.Prefix(), tokenName)
	return code, ast.StringType{}, nil
}

func jsRegexLiteral(body string) string {
	return "/^" + body + "/"
}

// escapeRegexMeta backslash-escapes every character a literal string needs
// to be treated literally inside a JS regex, matching the character class
// in javascript.py's `re.sub(r'([-/[\]{}()*+?.,\\^$|#\s])', r'\\\1', ...)`.
func escapeRegexMeta(s string) string {
	var b strings.Builder
	for _, r := range s {
		if isRegexMetaChar(r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isRegexMetaChar(r rune) bool {
	if unicode.IsSpace(r) {
		return true
	}
	switch r {
	case '-', '/', '[', ']', '{', '}', '(', ')', '*', '+', '?', '.', ',', '\\', '^', '$', '|', '#':
		return true
	}
	return false
}

func emitPeek(n *ast.Peek, ctx *context, indent string) (string, ast.Type, error) {
	inner := indent + indentUnit
	var statements strings.Builder
	var peekType ast.Type

	for i, c := range n.Cases {
		var stmt string
		var caseType ast.Type

		if c.Test != nil {
			testCode, _, testErr := emit(c.Test, ctx, inner+indentUnit)
			if testErr != nil {
				return "", nil, testErr
			}
			bodyCode, bt, bodyErr := emit(c.Body, ctx, inner+indentUnit)
			if bodyErr != nil {
				return "", nil, bodyErr
			}
			caseType = bt
			testFn := fmt.Sprintf("__test_case_%d", i+1)
			stmt = fmt.Sprintf(
				"%sfunction %s() {\n%s\n%s}\n%sif (this.__test(%s.bind(this))) {\n%s\n%s}\n",
				inner, testFn, testCode, inner, inner, testFn, bodyCode, inner,
			)
		} else {
			bodyCode, bt, bodyErr := emit(c.Body, ctx, inner)
			if bodyErr != nil {
				return "", nil, bodyErr
			}
			caseType = bt
			stmt = bodyCode + "\n"
		}

		if i == 0 {
			peekType = caseType
		}
		statements.WriteString(stmt)
	}

	code := fmt.Sprintf(
		"%s%s(function match() {\n%s%s}).call(this);",
		indent, n.StorageMethod.Prefix(), statements.String(), indent,
	)
	return code, peekType, nil
}

func emitNamed(n *ast.Named, ctx *context, indent string) (string, ast.Type, error) {
	suffix := ""
	if _, ignore := n.StorageMethod.(ast.Ignore); !ignore {
		suffix = fmt.Sprintf(";\n%s%s%s;", indent, n.StorageMethod.Prefix(), n.Name)
	}

	// Emit the child with Var(name) regardless of the Named node's own
	// inherited storage method — binding always happens via a local
	// variable, per spec.md §4.5 ("emit the child with Var(name)").
	expr, exprType, err := emitWithStorage(n.Expr, ctx, indent, ast.VarStorage{Name: n.Name})
	if err != nil {
		return "", nil, err
	}

	return expr + suffix, exprType, nil
}

func emitError(n *ast.Error, ctx *context, indent string) (string, ast.Type, error) {
	inner := indent + indentUnit
	parser, parserType, err := emit(n.Parser, ctx, inner)
	if err != nil {
		return "", nil, err
	}
	code := fmt.Sprintf(
		"%stry {\n%s\n%s} catch (e) {\n%sthrow new Error(%q);\n%s}",
		indent, parser, indent, inner, n.Message, indent,
	)
	return code, parserType, nil
}

func emitDebug(n *ast.Debug, ctx *context, indent string) (string, ast.Type, error) {
	var varName, suffix string
	switch sm := n.StorageMethod.(type) {
	case ast.Ignore:
		varName = "__debug"
	case ast.Return:
		varName = "ret"
		suffix = fmt.Sprintf("\n%s%sret;", indent, sm.Prefix())
	case ast.VarStorage:
		varName = sm.Name
	default:
		return "", nil, newEmitError("debug: unknown storage method %T", n.StorageMethod)
	}

	expr, exprType, err := emitWithStorage(n.Expr, ctx, indent, ast.VarStorage{Name: varName})
	if err != nil {
		return "", nil, err
	}

	code := fmt.Sprintf("%s\n%sconsole.log(JSON.stringify(%s));%s", expr, indent, varName, suffix)
	return code, exprType, nil
}

func emitVar(n *ast.Var, indent string) (string, ast.Type, error) {
	if _, isParser := n.Type.(ast.ParserType); isParser {
		code := fmt.Sprintf("%s%sthis.%s();", indent, n.StorageMethod.Prefix(), n.Name)
		return code, n.Type, nil
	}
	code := fmt.Sprintf("%s%s%s;", indent, n.StorageMethod.Prefix(), n.Name)
	return code, n.Type, nil
}

func emitStruct(n *ast.Struct, indent string) (string, ast.Type, error) {
	inner := indent + indentUnit
	var fields []string
	for _, f := range n.Fields {
		fields = append(fields, fmt.Sprintf("%q: %s", f.Name, f.Value))
	}
	if n.Name != "" {
		fields = append(fields, fmt.Sprintf("%q: %q", "_type", n.Name))
	}

	code := fmt.Sprintf(
		"%s%s{\n%s%s\n%s}",
		indent, n.StorageMethod.Prefix(), inner, strings.Join(fields, ",\n"+inner), indent,
	)
	return code, n.Type, nil
}

func emitStatementSequence(n *ast.StatementSequence, ctx *context, indent string) (string, ast.Type, error) {
	var parts []string
	for _, stmt := range n.Stmts {
		code, _, err := emit(stmt, ctx, indent)
		if err != nil {
			return "", nil, err
		}
		parts = append(parts, code)
	}
	return strings.Join(parts, "\n"), ast.NullType{}, nil
}

func emitDef(n *ast.Def, ctx *context, indent string) (string, ast.Type, error) {
	if n.Exported {
		ctx.addExport(n.Name)
	}

	body, bodyType, err := emitWithStorage(n.Expr, ctx, indent+indentUnit, ast.Return{})
	if err != nil {
		return "", nil, err
	}

	code := fmt.Sprintf("%s%s() {\n%s\n%s}", indent, n.Name, body, indent)
	return code, ast.ParserType{Ret: bodyType}, nil
}

// emitWithStorage temporarily overrides node's decorated storage method for
// this emission pass. Decoration already fixed every node's StorageMethod
// against the storage method inherited at decoration time; Named and Debug
// need to force their subtree into a different storage method than the one
// decoration assigned (spec.md §4.5: "emit the child with Var(name)"; §4.4:
// "Debug(expr): passes storage method through"), so emission here rewrites
// the subtree's StorageMethod fields in place before recursing, following
// the exact same propagation rules decorate.go used the first time around.
// This mutation is safe because generation runs once per decorated tree and
// nothing re-reads the original value afterward.
func emitWithStorage(node ast.Node, ctx *context, indent string, sm ast.StorageMethod) (string, ast.Type, error) {
	setStorageMethod(node, sm)
	return emit(node, ctx, indent)
}

// setStorageMethod overrides node's StorageMethod and, for the composite
// variants, recurses into its children with whatever storage method
// decorate.go's own Sequence/Peek/As/Error/Debug cases would have assigned
// them. A shallow, top-node-only override breaks emission for anything but
// a leaf: Sequence/As/Error emit entirely by delegating to their
// already-decorated children without ever reading their own StorageMethod,
// and Peek's case bodies likewise carry their own independently-read
// storage method — so overriding only the node passed to emitWithStorage
// leaves a stale storage method on every descendant.
func setStorageMethod(node ast.Node, sm ast.StorageMethod) {
	switch n := node.(type) {
	case *ast.LiteralParser:
		n.StorageMethod = sm
	case *ast.RegexParser:
		n.StorageMethod = sm
	case *ast.Var:
		n.StorageMethod = sm
	case *ast.LitStr:
		n.StorageMethod = sm
	case *ast.Struct:
		n.StorageMethod = sm

	case *ast.Sequence:
		n.StorageMethod = sm
		setStorageMethod(n.First, ast.Ignore{})
		setStorageMethod(n.Second, sm)

	case *ast.Peek:
		n.StorageMethod = sm
		for _, c := range n.Cases {
			if c.Test != nil {
				setStorageMethod(c.Test, ast.Ignore{})
			}
			setStorageMethod(c.Body, sm)
		}

	case *ast.Named:
		n.StorageMethod = sm
		// Named's own emission always forces its child into
		// VarStorage{Name} regardless of what's already there, so there's
		// nothing further to propagate into n.Expr here.

	case *ast.As:
		n.StorageMethod = sm
		setStorageMethod(n.Parser, ast.Ignore{})
		setStorageMethod(n.Result, sm)

	case *ast.Error:
		n.StorageMethod = sm
		setStorageMethod(n.Parser, sm)

	case *ast.Debug:
		n.StorageMethod = sm
		setStorageMethod(n.Expr, sm)
	}
}
