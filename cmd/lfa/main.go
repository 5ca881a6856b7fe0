package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/IslamAbukoush/LFA-LAB1/internal/display"
	"github.com/IslamAbukoush/LFA-LAB1/internal/viz"
	"github.com/IslamAbukoush/LFA-LAB1/regular"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "lfa",
		Short:        "Regular grammars and finite automata lab",
		SilenceUsage: true,
	}
	root.AddCommand(demoCmd(), checkCmd(), dfaCmd(), vizCmd())
	return root
}

func demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Interactive grammar and automaton demonstration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func checkCmd() *cobra.Command {
	var grammarFile string
	cmd := &cobra.Command{
		Use:   "check [strings...]",
		Short: "Validate strings against the grammar's automaton",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGrammar(grammarFile)
			if err != nil {
				return err
			}
			aut := g.ToAutomaton()
			rejected := 0
			for _, input := range args {
				res := aut.Run(input)
				display.WriteResult(cmd.OutOrStdout(), input, res)
				if !res.Accepted {
					rejected++
				}
			}
			if rejected > 0 {
				return fmt.Errorf("%d of %d strings rejected", rejected, len(args))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&grammarFile, "grammar", "g", "", "grammar definition file (default: built-in variant 1)")
	return cmd
}

func dfaCmd() *cobra.Command {
	var automatonFile string
	cmd := &cobra.Command{
		Use:   "dfa",
		Short: "Determinize an automaton and print both transition tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadAutomaton(automatonFile)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Source automaton:")
			display.WriteAutomaton(out, a)
			fmt.Fprintf(out, "Deterministic: %v\n\n", a.IsDeterministic())
			fmt.Fprintln(out, "Subset-construction DFA:")
			display.WriteAutomaton(out, a.Determinize())
			return nil
		},
	}
	cmd.Flags().StringVarP(&automatonFile, "automaton", "a", "", "automaton definition file (default: built-in variant NFA)")
	return cmd
}

func vizCmd() *cobra.Command {
	var automatonFile, outFile string
	var determinize bool
	cmd := &cobra.Command{
		Use:   "viz",
		Short: "Export an automaton as canvas JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadAutomaton(automatonFile)
			if err != nil {
				return err
			}
			if determinize {
				a = a.Determinize()
			}
			f, err := os.Create(outFile)
			if err != nil {
				return err
			}
			defer f.Close()
			if err := viz.Export(a, f); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", outFile)
			return nil
		},
	}
	cmd.Flags().StringVarP(&automatonFile, "automaton", "a", "", "automaton definition file (default: built-in variant NFA)")
	cmd.Flags().StringVarP(&outFile, "out", "o", "automaton.json", "output file")
	cmd.Flags().BoolVar(&determinize, "dfa", false, "determinize before exporting")
	return cmd
}

func loadGrammar(path string) (*regular.Grammar, error) {
	if path == "" {
		return variantGrammar(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return regular.ParseGrammar(string(data))
}

func loadAutomaton(path string) (*regular.Automaton, error) {
	if path == "" {
		return variantNFA(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return regular.ParseAutomaton(string(data))
}

// Variant 1 fixtures.

func variantGrammar() *regular.Grammar {
	g, err := regular.NewGrammar(
		[]string{"S", "P", "Q"},
		[]string{"a", "b", "c", "d", "e", "f"},
		map[string][][]string{
			"S": {{"a", "P"}, {"b", "Q"}},
			"P": {{"b", "P"}, {"c", "P"}, {"d", "Q"}, {"e"}},
			"Q": {{"e", "Q"}, {"f", "Q"}, {"a"}},
		},
		"S",
	)
	if err != nil {
		panic(err)
	}
	return g
}

func variantNFA() *regular.Automaton {
	a, err := regular.New(
		[]string{"q0", "q1", "q2", "q3"},
		[]string{"a", "b", "c"},
		map[string]map[string][]string{
			"q0": {"a": {"q0", "q1"}},
			"q1": {"b": {"q2"}, "c": {"q1"}},
			"q2": {"b": {"q3"}},
			"q3": {"a": {"q1"}},
		},
		"q0",
		[]string{"q2"},
	)
	if err != nil {
		panic(err)
	}
	return a
}
