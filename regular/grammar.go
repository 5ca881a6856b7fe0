package regular

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"
)

// Grammar is a right-linear regular grammar. Productions map each
// non-terminal to an ordered list of right-hand sides; a right-hand side is
// a sequence of symbols — empty (ε), a single terminal, or a terminal
// followed by one non-terminal. Instances are immutable after construction.
type Grammar struct {
	nonTerminals map[string]bool
	terminals    map[string]bool
	productions  map[string][][]string
	start        string
}

// NewGrammar builds a grammar from an explicit literal. Construction fails
// with an error wrapping ErrMalformed when the start symbol is not a
// non-terminal, terminals and non-terminals overlap, a terminal is not a
// single character, a production's left-hand side is not a non-terminal,
// or a right-hand side is not in right-linear form. Non-terminals may be
// longer labels; terminals are single characters, like automaton alphabet
// symbols.
func NewGrammar(nonTerminals, terminals []string, productions map[string][][]string, start string) (*Grammar, error) {
	g := &Grammar{
		nonTerminals: make(map[string]bool, len(nonTerminals)),
		terminals:    make(map[string]bool, len(terminals)),
		productions:  make(map[string][][]string, len(productions)),
		start:        start,
	}
	for _, n := range nonTerminals {
		g.nonTerminals[n] = true
	}
	for _, t := range terminals {
		if utf8.RuneCountInString(t) != 1 {
			return nil, fmt.Errorf("%w: terminal %q must be a single character", ErrMalformed, t)
		}
		if g.nonTerminals[t] {
			return nil, fmt.Errorf("%w: %q is both terminal and non-terminal", ErrMalformed, t)
		}
		g.terminals[t] = true
	}
	if !g.nonTerminals[start] {
		return nil, fmt.Errorf("%w: start symbol %q not in non-terminals", ErrMalformed, start)
	}
	for left, rules := range productions {
		if !g.nonTerminals[left] {
			return nil, fmt.Errorf("%w: production left-hand side %q not in non-terminals", ErrMalformed, left)
		}
		for _, rhs := range rules {
			if err := g.checkRightLinear(left, rhs); err != nil {
				return nil, err
			}
			g.productions[left] = append(g.productions[left], append([]string(nil), rhs...))
		}
	}
	return g, nil
}

func (g *Grammar) checkRightLinear(left string, rhs []string) error {
	switch {
	case len(rhs) == 0:
		return nil
	case !g.terminals[rhs[0]]:
		return fmt.Errorf("%w: first symbol of %s → %s must be a terminal", ErrMalformed, left, strings.Join(rhs, ""))
	case len(rhs) == 1:
		return nil
	case len(rhs) > 2 || !g.nonTerminals[rhs[1]]:
		return fmt.Errorf("%w: %s → %s is not right-linear", ErrMalformed, left, strings.Join(rhs, ""))
	}
	return nil
}

// NonTerminals returns the non-terminal set, sorted.
func (g *Grammar) NonTerminals() []string { return sortedKeys(g.nonTerminals) }

// Terminals returns the terminal set, sorted.
func (g *Grammar) Terminals() []string { return sortedKeys(g.terminals) }

// StartSymbol returns the start non-terminal.
func (g *Grammar) StartSymbol() string { return g.start }

// Productions returns the ordered right-hand sides for a non-terminal.
func (g *Grammar) Productions(nonTerminal string) [][]string {
	rules := g.productions[nonTerminal]
	out := make([][]string, len(rules))
	for i, rhs := range rules {
		out[i] = append([]string(nil), rhs...)
	}
	return out
}

// ChomskyType classifies the grammar in the Chomsky hierarchy. It returns 3
// when every production is ε, a single terminal, or a terminal followed by
// one non-terminal, and 2 otherwise (the left-hand side is always a single
// non-terminal here). The classifier is intentionally partial: it performs
// no context-sensitivity analysis, so types 0 and 1 are never reported.
func (g *Grammar) ChomskyType() int {
	for _, rules := range g.productions {
		for _, rhs := range rules {
			switch {
			case len(rhs) == 0:
			case len(rhs) == 1 && g.terminals[rhs[0]]:
			case len(rhs) == 2 && g.terminals[rhs[0]] && g.nonTerminals[rhs[1]]:
			default:
				return 2
			}
		}
	}
	return 3
}

// ToAutomaton converts the grammar to a finite automaton accepting the same
// language. A fresh synthetic state is introduced as the landing point for
// bare-terminal productions; ε-productions instead mark their own
// left-hand side accepting. The result is not necessarily deterministic:
// two productions A → aB, A → aC yield two destinations for (A, a), and
// callers wanting a DFA determinize afterwards.
func (g *Grammar) ToAutomaton() *Automaton {
	final := "FINAL"
	for g.nonTerminals[final] {
		final += "_"
	}
	states := append(g.NonTerminals(), final)
	accept := []string{final}
	transitions := make(map[string]map[string][]string)
	add := func(from, sym, to string) {
		if transitions[from] == nil {
			transitions[from] = make(map[string][]string)
		}
		transitions[from][sym] = append(transitions[from][sym], to)
	}
	for left, rules := range g.productions {
		for _, rhs := range rules {
			switch len(rhs) {
			case 0:
				accept = append(accept, left)
			case 1:
				add(left, rhs[0], final)
			default:
				add(left, rhs[0], rhs[1])
			}
		}
	}
	return mustNew(states, g.Terminals(), transitions, g.start, accept)
}

// ChoiceFunc picks an index in [0, n). Derivation consults it whenever a
// non-terminal has several productions; callers supply randomness (or a
// fixed sequence in tests).
type ChoiceFunc func(n int) int

// Derive rewrites the leftmost non-terminal until the sentential form is
// all terminals, choosing among productions with choose. It returns the
// derived string and every intermediate form. A grammar whose chosen
// productions never terminate is cut off after a fixed number of rewrites,
// reported by ok == false.
func (g *Grammar) Derive(choose ChoiceFunc) (s string, steps []string, ok bool) {
	const maxRewrites = 1000
	form := []string{g.start}
	steps = append(steps, formString(form))
	for n := 0; n < maxRewrites; n++ {
		pos := -1
		for i, sym := range form {
			if g.nonTerminals[sym] {
				pos = i
				break
			}
		}
		if pos < 0 {
			return formString(form), steps, true
		}
		rules := g.productions[form[pos]]
		if len(rules) == 0 {
			// stuck non-terminal, nothing to rewrite it with
			return formString(form), steps, false
		}
		rhs := rules[choose(len(rules))]
		next := make([]string, 0, len(form)+len(rhs)-1)
		next = append(next, form[:pos]...)
		next = append(next, rhs...)
		next = append(next, form[pos+1:]...)
		form = next
		steps = append(steps, formString(form))
	}
	return formString(form), steps, false
}

func formString(form []string) string {
	if len(form) == 0 {
		return "ε"
	}
	return strings.Join(form, "")
}

// String renders the grammar definition: sorted symbol sets, one line per
// non-terminal with its alternatives, start symbol last.
func (g *Grammar) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Non-terminals = {%s}\n", strings.Join(g.NonTerminals(), ", "))
	fmt.Fprintf(&b, "Terminals = {%s}\n", strings.Join(g.Terminals(), ", "))
	b.WriteString("Productions:\n")
	lhs := sortedKeys(g.productions)
	sort.SliceStable(lhs, func(i, j int) bool {
		if lhs[i] == g.start {
			return lhs[j] != g.start
		}
		return lhs[j] != g.start && lhs[i] < lhs[j]
	})
	for _, left := range lhs {
		alts := make([]string, len(g.productions[left]))
		for i, rhs := range g.productions[left] {
			alts[i] = formString(rhs)
		}
		fmt.Fprintf(&b, "    %s → %s\n", left, strings.Join(alts, " | "))
	}
	fmt.Fprintf(&b, "Start = %s", g.start)
	return b.String()
}
