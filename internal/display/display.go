// Package display renders automata and simulation traces for the terminal.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/IslamAbukoush/LFA-LAB1/regular"
)

// WriteTransitions renders the automaton's transition table.
func WriteTransitions(w io.Writer, a *regular.Automaton) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"State", "Symbol", "Destinations"})
	for _, tr := range a.Transitions() {
		table.Append([]string{tr.From, tr.Symbol, strings.Join(tr.To, ", ")})
	}
	table.Render()
}

// WriteAutomaton renders the full definition: component sets, then the
// transition table.
func WriteAutomaton(w io.Writer, a *regular.Automaton) {
	fmt.Fprintf(w, "States   = {%s}\n", strings.Join(a.States(), ", "))
	fmt.Fprintf(w, "Alphabet = {%s}\n", strings.Join(a.Alphabet(), ", "))
	fmt.Fprintf(w, "Start    = %s\n", a.Start())
	fmt.Fprintf(w, "Accept   = {%s}\n", strings.Join(a.AcceptStates(), ", "))
	WriteTransitions(w, a)
}

// WriteResult renders a simulation outcome with its step-by-step trace of
// active-state sets.
func WriteResult(w io.Writer, input string, res regular.Result) {
	fmt.Fprintf(w, "Validating %q\n", input)
	for i, step := range res.Steps {
		if i == 0 {
			fmt.Fprintf(w, "  start           {%s}\n", strings.Join(step, ", "))
			continue
		}
		fmt.Fprintf(w, "  after %q       {%s}\n", string([]rune(input)[i-1]), strings.Join(step, ", "))
	}
	switch {
	case res.Accepted:
		fmt.Fprintln(w, "String accepted")
	case res.Reason == regular.ReasonUnknownSymbol:
		fmt.Fprintf(w, "String rejected: %q %s\n", res.Symbol, res.Reason)
	case res.Reason == regular.ReasonNoTransition:
		fmt.Fprintf(w, "String rejected: %s on %q\n", res.Reason, res.Symbol)
	default:
		fmt.Fprintln(w, "String rejected")
	}
}
