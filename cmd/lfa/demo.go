package main

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/IslamAbukoush/LFA-LAB1/internal/display"
)

// runDemo drives the interactive menu around the variant-1 grammar: derive
// random strings and validate them, or validate user input, showing the
// active-state trace each time.
func runDemo(in io.Reader, out io.Writer) error {
	g := variantGrammar()
	aut := g.ToAutomaton()
	scanner := bufio.NewScanner(in)

	for {
		clearScreen(out)
		printHeader(out)
		fmt.Fprintln(out, g)
		fmt.Fprintln(out)
		display.WriteTransitions(out, aut)

		fmt.Fprintln(out, "\nMenu:")
		fmt.Fprintln(out, "  1. Generate and validate 5 random strings")
		fmt.Fprintln(out, "  2. Input a string to validate")
		fmt.Fprintln(out, "  3. Exit")
		fmt.Fprint(out, "\nChoose an option (1-3): ")
		if !scanner.Scan() {
			return scanner.Err()
		}

		switch strings.TrimSpace(scanner.Text()) {
		case "1":
			for i := 0; i < 5; i++ {
				s, steps, ok := g.Derive(rand.Intn)
				fmt.Fprintf(out, "\nString %d:\n", i+1)
				fmt.Fprintf(out, "Derivation: %s\n", strings.Join(steps, " → "))
				if !ok {
					fmt.Fprintln(out, "derivation did not terminate")
					continue
				}
				display.WriteResult(out, s, aut.Run(s))
				time.Sleep(time.Second)
			}
		case "2":
			fmt.Fprint(out, "\nEnter a string to validate: ")
			if !scanner.Scan() {
				return scanner.Err()
			}
			input := strings.ToLower(strings.TrimSpace(scanner.Text()))
			display.WriteResult(out, input, aut.Run(input))
		case "3":
			fmt.Fprintln(out, "\nGoodbye!")
			return nil
		default:
			fmt.Fprintln(out, "\nInvalid option. Please choose 1, 2, or 3.")
		}

		fmt.Fprint(out, "\nPress Enter to continue...")
		if !scanner.Scan() {
			return scanner.Err()
		}
	}
}

func clearScreen(out io.Writer) {
	fmt.Fprint(out, "\033[H\033[2J")
}

func printHeader(out io.Writer) {
	line := strings.Repeat("=", 60)
	fmt.Fprintln(out, line)
	fmt.Fprintln(out, "  FORMAL LANGUAGES LAB 1: REGULAR GRAMMARS & DFAs")
	fmt.Fprintln(out, line)
	fmt.Fprintln(out, "Name: Islam Abu koush")
	fmt.Fprintln(out, "Group: FAF-231")
	fmt.Fprintln(out, "Variant: 1")
	fmt.Fprintln(out, line)
}
