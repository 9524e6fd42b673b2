package driver_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aledsdavies/llc/pkgs/decorate"
	"github.com/aledsdavies/llc/pkgs/driver"
	"github.com/aledsdavies/llc/pkgs/generator"
	"github.com/aledsdavies/llc/pkgs/lexer"
	"github.com/aledsdavies/llc/pkgs/parser"
)

func TestCompileProducesRunnableShapeForLiteral(t *testing.T) {
	out, err := driver.Compile("export greeting :: `hello`")
	require.NoError(t, err)

	require.Contains(t, out, "class Parser")
	require.Contains(t, out, "greeting()")
	require.Contains(t, out, "lit_hello")
	require.Contains(t, out, `exports.greeting = (input) => new Parser(input).__consume_all("greeting");`)
}

func TestCompileWithNamedSequenceAndStruct(t *testing.T) {
	source := "integer :: r`\\d+`\n" +
		"export fraction :: [integer: n] `/` [integer: d] as struct Fraction { numerator: n, denominator: d }"
	out, err := driver.Compile(source)
	require.NoError(t, err)

	require.Contains(t, out, "fraction()")
	require.Contains(t, out, `"numerator": n`)
	require.Contains(t, out, `"_type": "Fraction"`)
}

func TestCompileWithPeekChoosesFirstMatchingCase(t *testing.T) {
	source := "export pick :: peek {\n" +
		"case `a` => `a`\n" +
		"case `b` => `b`\n" +
		"case _ => `c`\n" +
		"}"
	out, err := driver.Compile(source)
	require.NoError(t, err)

	require.Contains(t, out, "__test")
	require.Contains(t, out, "match() {")
}

func TestCompileWithErrorSuffixRaisesNamedMessage(t *testing.T) {
	out, err := driver.Compile("export strict :: `foo` ! \"expected foo\"")
	require.NoError(t, err)
	require.Contains(t, out, `throw new Error("expected foo");`)
}

func TestCompileWithDebugEmitsConsoleLog(t *testing.T) {
	out, err := driver.Compile("export test :: debug(`foo`)")
	require.NoError(t, err)
	require.Contains(t, out, "console.log(JSON.stringify(")
}

func TestCompileWithDebugOverSequenceStillReachesReturn(t *testing.T) {
	out, err := driver.Compile("export test :: debug(`foo` `bar`)")
	require.NoError(t, err)

	logIdx := strings.Index(out, "console.log(JSON.stringify(ret));")
	returnIdx := strings.Index(out, "return ret;")
	require.True(t, logIdx >= 0 && returnIdx >= 0 && logIdx < returnIdx,
		"expected console.log to run before the method's return, got:\n%s", out)
}

func TestCompileRejectsMisplacedPeekDefault(t *testing.T) {
	_, err := driver.Compile("export test :: peek { case _ => `a` case `foo` => `b` }")
	require.Error(t, err)

	var parseErr *parser.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestCompileWithStandaloneEntrypointAppendsShim(t *testing.T) {
	out, err := driver.Compile("export test :: `foo`", driver.WithStandaloneEntrypoint("test"))
	require.NoError(t, err)
	require.Contains(t, out, "exports.test(input)")
	require.Contains(t, out, "process.stdin")
}

func TestCompileFailsOnLexError(t *testing.T) {
	_, err := driver.Compile("export test :: @")
	require.Error(t, err)

	var lexErr *lexer.LexError
	require.ErrorAs(t, err, &lexErr)
}

func TestCompileFailsOnParseError(t *testing.T) {
	_, err := driver.Compile("export test ::")
	require.Error(t, err)

	var parseErr *parser.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestCompileFailsOnUnresolvedName(t *testing.T) {
	_, err := driver.Compile("export test :: missing")
	require.Error(t, err)

	var unresolved *decorate.UnresolvedName
	require.ErrorAs(t, err, &unresolved)
}

func TestCompileFailsOnInvalidRegexPattern(t *testing.T) {
	_, err := driver.Compile("export test :: r`(`")
	require.Error(t, err)

	var emitErr *generator.EmitError
	require.ErrorAs(t, err, &emitErr)
}

func TestCompileWithLoggerWritesDebugOutputWhenAttached(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := driver.Compile("export test :: `foo`", driver.WithLogger(logger))
	require.NoError(t, err)

	// The custom logger must actually have been wired into tokenization;
	// an empty buffer here would mean WithLogger silently did nothing.
	require.Contains(t, buf.String(), "msg=token")
	require.Contains(t, buf.String(), "kind=kw_export")
}
