package regular

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/queues/linkedlistqueue"
)

// subsetKey is the canonical identity of a set of source states: the sorted
// members joined with a separator that cannot appear in a label coming out
// of the parsers. Two subsets with the same members always get the same
// key, whatever order they were built in.
func subsetKey(members []string) string { return strings.Join(members, "\x1f") }

// Determinize converts the automaton to an equivalent deterministic one
// using the subset construction. Reachable sets of source states become
// single states, explored breadth-first from {start} and named q0, q1, ...
// in first-seen order, so repeated calls produce identically labeled
// results. Subsets with no successor on a symbol simply get no transition:
// the result stays partial rather than gaining a dead state. A synthesized
// state accepts iff its subset contains a source accept state.
func (a *Automaton) Determinize() *Automaton {
	alphabet := a.Alphabet()
	startSubset := []string{a.start}

	names := map[string]string{subsetKey(startSubset): "q0"}
	counter := 1
	states := []string{"q0"}
	var accept []string
	if a.accept[a.start] {
		accept = append(accept, "q0")
	}
	transitions := make(map[string]map[string][]string)

	worklist := linkedlistqueue.New()
	worklist.Enqueue(startSubset)
	for !worklist.Empty() {
		v, _ := worklist.Dequeue()
		subset := v.([]string)
		name := names[subsetKey(subset)]
		for _, sym := range alphabet {
			nextSet := make(map[string]bool)
			for _, state := range subset {
				for to := range a.trans[state][sym] {
					nextSet[to] = true
				}
			}
			if len(nextSet) == 0 {
				continue
			}
			next := sortedKeys(nextSet)
			key := subsetKey(next)
			nextName, seen := names[key]
			if !seen {
				nextName = fmt.Sprintf("q%d", counter)
				counter++
				names[key] = nextName
				states = append(states, nextName)
				for _, s := range next {
					if a.accept[s] {
						accept = append(accept, nextName)
						break
					}
				}
				worklist.Enqueue(next)
			}
			if transitions[name] == nil {
				transitions[name] = make(map[string][]string)
			}
			transitions[name][sym] = []string{nextName}
		}
	}
	return mustNew(states, alphabet, transitions, "q0", accept)
}
