package regular

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const variantGrammarText = `
start S ;
S = a P | b Q ;
P = b P | c P | d Q | e ;
Q = e Q | f Q | a ;
`

const variantNFAText = `
states q0 q1 q2 q3 ;
alphabet a b c ;
start q0 ;
accept q2 ;
q0 a -> q0 q1 ;
q1 c -> q1 ;
q1 b -> q2 ;
q2 b -> q3 ;
q3 a -> q1 ;
`

func TestParseGrammar(t *testing.T) {
	g, err := ParseGrammar(variantGrammarText)
	require.NoError(t, err)

	assert.Equal(t, "S", g.StartSymbol())
	assert.Equal(t, []string{"P", "Q", "S"}, g.NonTerminals())
	assert.Equal(t, []string{"a", "b", "c", "d", "e", "f"}, g.Terminals())
	assert.Equal(t, [][]string{{"a", "P"}, {"b", "Q"}}, g.Productions("S"))
	assert.Equal(t, 3, g.ChomskyType())

	// same language as the Go-literal grammar
	lit := variantGrammar(t).ToAutomaton()
	parsed := g.ToAutomaton()
	for _, w := range []string{"", "ae", "abce", "ba", "adefa", "ab", "ea"} {
		assert.Equal(t, lit.Accepts(w), parsed.Accepts(w))
	}
}

func TestParseGrammarEpsilon(t *testing.T) {
	g, err := ParseGrammar(`
start S ;
S = a S | eps ;
`)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a", "S"}, nil}, g.Productions("S"))
	assert.True(t, g.ToAutomaton().Accepts(""))
	assert.True(t, g.ToAutomaton().Accepts("aaa"))
}

func TestParseGrammarErrors(t *testing.T) {
	_, err := ParseGrammar("start S") // missing ';' and rules
	assert.Error(t, err)

	// parses, but P aQ is not right-linear (a appears as an LHS nowhere,
	// and the rule S = P a puts a non-terminal first)
	_, err = ParseGrammar(`
start S ;
S = P a ;
P = a ;
`)
	assert.ErrorIs(t, err, ErrMalformed)

	// ab is not a left-hand side, so it reads as a terminal, and
	// terminals are single characters
	_, err = ParseGrammar(`
start S ;
S = ab S | a ;
`)
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestParseAutomaton(t *testing.T) {
	a, err := ParseAutomaton(variantNFAText)
	require.NoError(t, err)

	assert.Equal(t, []string{"q0", "q1", "q2", "q3"}, a.States())
	assert.False(t, a.IsDeterministic())
	assert.True(t, a.Accepts("ab"))
	assert.False(t, a.Accepts("abc"))

	ref := variantNFA(t)
	for _, w := range wordsUpTo4(t, "a", "b", "c") {
		assert.Equal(t, ref.Accepts(w), a.Accepts(w))
	}
}

func TestParseAutomatonErrors(t *testing.T) {
	_, err := ParseAutomaton("states q0 ;") // missing sections
	assert.Error(t, err)

	_, err = ParseAutomaton(`
states q0 ;
alphabet a ;
start q0 ;
accept q9 ;
`)
	assert.ErrorIs(t, err, ErrMalformed)

	_, err = ParseAutomaton(`
states q0 q1 ;
alphabet a ;
start q0 ;
accept q1 ;
q0 a -> q1 ;
q0 a -> q0 ;
`)
	assert.ErrorIs(t, err, ErrMalformed)

	// identifier tokens allow multi-character symbols syntactically, but
	// the automaton model does not
	_, err = ParseAutomaton(`
states q0 q1 ;
alphabet ab ;
start q0 ;
accept q1 ;
`)
	assert.ErrorIs(t, err, ErrMalformed)
}
