// Package regular models regular languages through finite automata and
// right-linear grammars, with conversions between the two representations.
package regular

import (
	"errors"
	"fmt"
	"sort"
	"unicode/utf8"
)

// ErrMalformed is wrapped by every construction error: an automaton or
// grammar literal that violates a structural invariant.
var ErrMalformed = errors.New("malformed specification")

// Automaton is a finite automaton over single-character symbols. The
// transition relation maps (state, symbol) to a set of destination states,
// so the same type represents both deterministic and non-deterministic
// automata; determinism is a property of the relation, not a separate type.
// Instances are immutable after construction.
type Automaton struct {
	states   map[string]bool
	alphabet map[string]bool
	trans    map[string]map[string]map[string]bool
	start    string
	accept   map[string]bool
}

// New builds an automaton from an explicit literal. The transition table
// maps state → symbol → destination states. Construction fails with an
// error wrapping ErrMalformed if the start state, an accept state, or any
// transition endpoint is not a member of states, a transition symbol is
// not in the alphabet, or an alphabet symbol is not a single character
// (Run consumes input one character at a time, so a longer symbol could
// never match anything).
func New(states, alphabet []string, transitions map[string]map[string][]string, start string, accept []string) (*Automaton, error) {
	a := &Automaton{
		states:   make(map[string]bool, len(states)),
		alphabet: make(map[string]bool, len(alphabet)),
		trans:    make(map[string]map[string]map[string]bool),
		start:    start,
		accept:   make(map[string]bool, len(accept)),
	}
	for _, s := range states {
		a.states[s] = true
	}
	for _, sym := range alphabet {
		if utf8.RuneCountInString(sym) != 1 {
			return nil, fmt.Errorf("%w: alphabet symbol %q must be a single character", ErrMalformed, sym)
		}
		a.alphabet[sym] = true
	}
	if !a.states[start] {
		return nil, fmt.Errorf("%w: start state %q not in states", ErrMalformed, start)
	}
	for _, s := range accept {
		if !a.states[s] {
			return nil, fmt.Errorf("%w: accept state %q not in states", ErrMalformed, s)
		}
		a.accept[s] = true
	}
	for from, bySym := range transitions {
		if !a.states[from] {
			return nil, fmt.Errorf("%w: transition from unknown state %q", ErrMalformed, from)
		}
		for sym, dests := range bySym {
			if !a.alphabet[sym] {
				return nil, fmt.Errorf("%w: transition on unknown symbol %q from %q", ErrMalformed, sym, from)
			}
			for _, to := range dests {
				if !a.states[to] {
					return nil, fmt.Errorf("%w: transition %q --(%s)--> unknown state %q", ErrMalformed, from, sym, to)
				}
				a.addEdge(from, sym, to)
			}
		}
	}
	return a, nil
}

// mustNew is for conversions, which only ever build well-formed literals.
func mustNew(states, alphabet []string, transitions map[string]map[string][]string, start string, accept []string) *Automaton {
	a, err := New(states, alphabet, transitions, start, accept)
	if err != nil {
		panic(err)
	}
	return a
}

func (a *Automaton) addEdge(from, sym, to string) {
	bySym := a.trans[from]
	if bySym == nil {
		bySym = make(map[string]map[string]bool)
		a.trans[from] = bySym
	}
	dests := bySym[sym]
	if dests == nil {
		dests = make(map[string]bool)
		bySym[sym] = dests
	}
	dests[to] = true
}

// States returns the state set, sorted.
func (a *Automaton) States() []string { return sortedKeys(a.states) }

// Alphabet returns the alphabet, sorted.
func (a *Automaton) Alphabet() []string { return sortedKeys(a.alphabet) }

// Start returns the start state.
func (a *Automaton) Start() string { return a.start }

// AcceptStates returns the accepting states, sorted.
func (a *Automaton) AcceptStates() []string { return sortedKeys(a.accept) }

// Transition is one row of the canonical transition enumeration.
type Transition struct {
	From   string
	Symbol string
	To     []string // sorted
}

// Transitions enumerates every (state, symbol) pair that has at least one
// transition, sorted by state then symbol, destinations sorted. The order
// is stable across runs so tabular output is reproducible.
func (a *Automaton) Transitions() []Transition {
	var rows []Transition
	for _, from := range sortedKeys(a.trans) {
		bySym := a.trans[from]
		for _, sym := range sortedKeys(bySym) {
			rows = append(rows, Transition{From: from, Symbol: sym, To: sortedKeys(bySym[sym])})
		}
	}
	return rows
}

// IsDeterministic reports whether every (state, symbol) pair that has any
// transition has exactly one destination. Pairs with no transition do not
// count against determinism: a partial automaton whose existing transitions
// are all single-valued is deterministic, it just rejects early on the
// missing inputs.
func (a *Automaton) IsDeterministic() bool {
	for _, bySym := range a.trans {
		for _, dests := range bySym {
			if len(dests) != 1 {
				return false
			}
		}
	}
	return true
}

// Reason explains why a simulation rejected before consuming all input.
type Reason int

const (
	// ReasonNone: the input was fully consumed; Accepted carries the verdict.
	ReasonNone Reason = iota
	// ReasonUnknownSymbol: an input symbol is not in the alphabet.
	ReasonUnknownSymbol
	// ReasonNoTransition: the active-state set became empty.
	ReasonNoTransition
)

func (r Reason) String() string {
	switch r {
	case ReasonUnknownSymbol:
		return "symbol not in alphabet"
	case ReasonNoTransition:
		return "no valid transitions"
	default:
		return ""
	}
}

// Result is the outcome of simulating an input string. Steps records the
// sorted active-state set before any input and after each consumed symbol,
// for diagnostic display. Rejections are results, not errors.
type Result struct {
	Accepted bool
	Reason   Reason
	Symbol   string // offending symbol when Reason is ReasonUnknownSymbol
	Steps    [][]string
}

// Run simulates the automaton on input, tracking the set of active states.
// For a deterministic automaton the active set is always a singleton, so
// the same code path serves both automaton kinds.
func (a *Automaton) Run(input string) Result {
	current := map[string]bool{a.start: true}
	steps := [][]string{sortedKeys(current)}
	for _, r := range input {
		sym := string(r)
		if !a.alphabet[sym] {
			return Result{Reason: ReasonUnknownSymbol, Symbol: sym, Steps: steps}
		}
		next := make(map[string]bool)
		for state := range current {
			for to := range a.trans[state][sym] {
				next[to] = true
			}
		}
		if len(next) == 0 {
			return Result{Reason: ReasonNoTransition, Symbol: sym, Steps: steps}
		}
		current = next
		steps = append(steps, sortedKeys(current))
	}
	for state := range current {
		if a.accept[state] {
			return Result{Accepted: true, Steps: steps}
		}
	}
	return Result{Steps: steps}
}

// Accepts reports whether the automaton accepts input.
func (a *Automaton) Accepts(input string) bool { return a.Run(input).Accepted }

// ToGrammar converts the automaton to a right-linear grammar generating the
// same language. States are relabeled N0..Nk over the sorted state list so
// state names cannot collide with grammar-reserved names. Every transition
// q --(a)--> p yields a production q → aP, plus q → a when p accepts, and
// every accepting state gets an ε-production.
func (a *Automaton) ToGrammar() *Grammar {
	states := a.States()
	label := make(map[string]string, len(states))
	nonTerminals := make([]string, len(states))
	for i, s := range states {
		label[s] = fmt.Sprintf("N%d", i)
		nonTerminals[i] = label[s]
	}
	productions := make(map[string][][]string)
	for _, tr := range a.Transitions() {
		lhs := label[tr.From]
		for _, to := range tr.To {
			productions[lhs] = append(productions[lhs], []string{tr.Symbol, label[to]})
			if a.accept[to] {
				productions[lhs] = append(productions[lhs], []string{tr.Symbol})
			}
		}
	}
	for _, s := range states {
		if a.accept[s] {
			lhs := label[s]
			productions[lhs] = append(productions[lhs], nil)
		}
	}
	g, err := NewGrammar(nonTerminals, a.Alphabet(), productions, label[a.start])
	if err != nil {
		panic(err)
	}
	return g
}

func sortedKeys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
