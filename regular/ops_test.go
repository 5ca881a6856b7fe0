package regular

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// evenAs: DFA over {a,b} accepting strings with an even number of a's
func evenAs(t *testing.T) *Automaton {
	t.Helper()
	a, err := New(
		[]string{"even", "odd"},
		[]string{"a", "b"},
		map[string]map[string][]string{
			"even": {"a": {"odd"}, "b": {"even"}},
			"odd":  {"a": {"even"}, "b": {"odd"}},
		},
		"even",
		[]string{"even"},
	)
	require.NoError(t, err)
	return a
}

// endsB: DFA over {a,b} accepting strings ending in b
func endsB(t *testing.T) *Automaton {
	t.Helper()
	a, err := New(
		[]string{"s", "hit"},
		[]string{"a", "b"},
		map[string]map[string][]string{
			"s":   {"a": {"s"}, "b": {"hit"}},
			"hit": {"a": {"s"}, "b": {"hit"}},
		},
		"s",
		[]string{"hit"},
	)
	require.NoError(t, err)
	return a
}

func countA(w string) int { return strings.Count(w, "a") }

func TestComplete(t *testing.T) {
	// variant NFA is partial; completion must cover every (state, symbol)
	c := variantNFA(t).Complete()
	assert.Len(t, c.Transitions(), len(c.States())*len(c.Alphabet()))
	for _, w := range wordsUpTo4(t, "a", "b", "c") {
		assert.Equal(t, variantNFA(t).Accepts(w), c.Accepts(w))
	}

	// already total: returned as-is
	total := evenAs(t)
	assert.Same(t, total, total.Complete())
}

func TestComplement(t *testing.T) {
	comp := evenAs(t).Complement()
	assert.True(t, comp.IsDeterministic())
	for _, w := range wordsUpTo4(t, "a", "b") {
		assert.Equalf(t, countA(w)%2 == 1, comp.Accepts(w), "on %q", w)
	}

	// complement of a partial NFA: determinized and completed first
	nc := variantNFA(t).Complement()
	assert.True(t, nc.IsDeterministic())
	for _, w := range wordsUpTo4(t, "a", "b", "c") {
		assert.Equalf(t, !variantNFA(t).Accepts(w), nc.Accepts(w), "on %q", w)
	}
}

func TestIntersect(t *testing.T) {
	inter := Intersect(evenAs(t), endsB(t))
	assert.True(t, inter.IsDeterministic())
	for _, w := range wordsUpTo4(t, "a", "b") {
		want := countA(w)%2 == 0 && strings.HasSuffix(w, "b")
		assert.Equalf(t, want, inter.Accepts(w), "on %q", w)
	}
}

func TestUnion(t *testing.T) {
	uni := Union(evenAs(t), endsB(t))
	assert.True(t, uni.IsDeterministic())
	for _, w := range wordsUpTo4(t, "a", "b") {
		want := countA(w)%2 == 0 || strings.HasSuffix(w, "b")
		assert.Equalf(t, want, uni.Accepts(w), "on %q", w)
	}
}

func TestUnionMismatchedAlphabets(t *testing.T) {
	// a symbol known to only one operand must not strand the other's paths
	onlyC, err := New(
		[]string{"s", "hit"},
		[]string{"c"},
		map[string]map[string][]string{"s": {"c": {"hit"}}},
		"s",
		[]string{"hit"},
	)
	require.NoError(t, err)

	uni := Union(evenAs(t), onlyC)
	assert.Equal(t, []string{"a", "b", "c"}, uni.Alphabet())
	assert.True(t, uni.Accepts("c"))
	assert.True(t, uni.Accepts("aa"))
	assert.True(t, uni.Accepts(""))
	assert.False(t, uni.Accepts("ac"))
	assert.False(t, uni.Accepts("cc"))
}
