package regular

import "fmt"

// Boolean operations over the languages of two automata, via the product
// construction. Inputs are determinized and completed first, so partial
// automata and mismatched alphabets are handled; the results are total
// DFAs over the union alphabet.

// Complete returns an automaton with a transition for every (state, symbol)
// pair, routing the missing ones into a fresh non-accepting sink. If the
// automaton is already total it is returned unchanged.
func (a *Automaton) Complete() *Automaton { return a.completeOver(a.Alphabet()) }

func (a *Automaton) completeOver(alphabet []string) *Automaton {
	missing := false
	for state := range a.states {
		for _, sym := range alphabet {
			if len(a.trans[state][sym]) == 0 {
				missing = true
			}
		}
	}
	if !missing && len(alphabet) == len(a.alphabet) {
		return a
	}
	sink := "SINK"
	for a.states[sink] {
		sink += "_"
	}
	states := append(a.States(), sink)
	transitions := make(map[string]map[string][]string)
	for _, state := range states {
		transitions[state] = make(map[string][]string)
		for _, sym := range alphabet {
			dests := sortedKeys(a.trans[state][sym])
			if len(dests) == 0 {
				dests = []string{sink}
			}
			transitions[state][sym] = dests
		}
	}
	return mustNew(states, alphabet, transitions, a.start, a.AcceptStates())
}

// Complement returns a DFA accepting exactly the strings over the alphabet
// that a rejects. The input is determinized and completed first.
func (a *Automaton) Complement() *Automaton {
	d := a
	if !d.IsDeterministic() {
		d = d.Determinize()
	}
	d = d.Complete()
	var accept []string
	for _, state := range d.States() {
		if !d.accept[state] {
			accept = append(accept, state)
		}
	}
	transitions := make(map[string]map[string][]string)
	for _, tr := range d.Transitions() {
		if transitions[tr.From] == nil {
			transitions[tr.From] = make(map[string][]string)
		}
		transitions[tr.From][tr.Symbol] = tr.To
	}
	return mustNew(d.States(), d.Alphabet(), transitions, d.start, accept)
}

// Intersect returns a DFA for the intersection of the two languages.
func Intersect(a, b *Automaton) *Automaton {
	return product(a, b, func(x, y bool) bool { return x && y })
}

// Union returns a DFA for the union of the two languages.
func Union(a, b *Automaton) *Automaton {
	return product(a, b, func(x, y bool) bool { return x || y })
}

func product(a, b *Automaton, op func(bool, bool) bool) *Automaton {
	alphabet := unionSymbols(a.Alphabet(), b.Alphabet())
	a = prepared(a, alphabet)
	b = prepared(b, alphabet)

	name := func(pa, pb string) string { return fmt.Sprintf("(%s,%s)", pa, pb) }
	type pair struct{ a, b string }
	start := pair{a.start, b.start}
	seen := map[pair]bool{start: true}
	queue := []pair{start}
	var states, accept []string
	transitions := make(map[string]map[string][]string)
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		pn := name(p.a, p.b)
		states = append(states, pn)
		if op(a.accept[p.a], b.accept[p.b]) {
			accept = append(accept, pn)
		}
		transitions[pn] = make(map[string][]string)
		for _, sym := range alphabet {
			np := pair{only(a.trans[p.a][sym]), only(b.trans[p.b][sym])}
			transitions[pn][sym] = []string{name(np.a, np.b)}
			if !seen[np] {
				seen[np] = true
				queue = append(queue, np)
			}
		}
	}
	return mustNew(states, alphabet, transitions, name(start.a, start.b), accept)
}

// prepared makes an automaton total and deterministic over alphabet.
func prepared(a *Automaton, alphabet []string) *Automaton {
	if !a.IsDeterministic() {
		a = a.Determinize()
	}
	return a.completeOver(alphabet)
}

// only extracts the sole member of a singleton destination set.
func only(dests map[string]bool) string {
	for d := range dests {
		return d
	}
	return ""
}

func unionSymbols(a, b []string) []string {
	m := make(map[string]bool, len(a)+len(b))
	for _, s := range a {
		m[s] = true
	}
	for _, s := range b {
		m[s] = true
	}
	return sortedKeys(m)
}
