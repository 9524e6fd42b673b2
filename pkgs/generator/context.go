package generator

import (
	"sort"

	"github.com/samber/lo"
)

// context accumulates the three outputs spec.md §4.5 describes: the body
// of each Def, a token name -> JS regex-literal table, and the set of
// exported Def names. Grounded on
// _examples/original_source/langlang/assemblers/javascript.py's Context
// class, translated from one mutable object threaded through every
// assemble_into_js call into the same shape here.
type context struct {
	tokens  map[string]string
	exports []string
}

func newContext() *context {
	return &context{tokens: make(map[string]string)}
}

// addToken records a token's JS regex literal, keyed by its stable name.
// Re-declaring the same literal parser or regex parser elsewhere in the
// grammar is harmless: the table is a map, so later writes with the same
// key and value are no-ops.
func (c *context) addToken(name, jsRegexLiteral string) {
	c.tokens[name] = jsRegexLiteral
}

func (c *context) addExport(name string) {
	if !lo.Contains(c.exports, name) {
		c.exports = append(c.exports, name)
	}
}

// sortedTokenNames returns token names in a stable order so repeated
// Generate calls on the same AST produce byte-identical output.
func (c *context) sortedTokenNames() []string {
	names := lo.Keys(c.tokens)
	sort.Strings(names)
	return names
}
