package regular

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
)

// Text notation for grammar and automaton definitions, so the CLI (and
// tests) can load them from files instead of Go literals. A grammar reads
//
//	start S ;
//	S = a P | b Q ;
//	P = b P | c P | d Q | e ;
//	Q = e Q | f Q | a ;
//
// with eps for an empty right-hand side. Non-terminals are the symbols
// that appear on a left-hand side; everything else is a terminal. An
// automaton reads
//
//	states q0 q1 q2 q3 ;
//	alphabet a b c ;
//	start q0 ;
//	accept q2 ;
//	q0 a -> q0 q1 ;
//	q1 c -> q1 ;

type grammarDoc struct {
	Start string     `parser:"'start' @Ident ';'"`
	Rules []*ruleDoc `parser:"@@+"`
}

type ruleDoc struct {
	Left string    `parser:"@Ident '='"`
	Alts []*altDoc `parser:"@@ ('|' @@)* ';'"`
}

type altDoc struct {
	Eps     bool     `parser:"@'eps'"`
	Symbols []string `parser:"| @Ident+"`
}

type automatonDoc struct {
	States   []string   `parser:"'states' @Ident+ ';'"`
	Alphabet []string   `parser:"'alphabet' @Ident+ ';'"`
	Start    string     `parser:"'start' @Ident ';'"`
	Accept   []string   `parser:"'accept' @Ident* ';'"`
	Edges    []*edgeDoc `parser:"@@*"`
}

type edgeDoc struct {
	From   string   `parser:"@Ident"`
	Symbol string   `parser:"@Ident '-' '>'"`
	To     []string `parser:"@Ident+ ';'"`
}

var (
	grammarParser   = participle.MustBuild[grammarDoc]()
	automatonParser = participle.MustBuild[automatonDoc]()
)

// ParseGrammar parses the grammar notation and validates the result.
func ParseGrammar(src string) (*Grammar, error) {
	doc, err := grammarParser.ParseString("grammar", src)
	if err != nil {
		return nil, err
	}
	lhs := make(map[string]bool, len(doc.Rules))
	for _, rule := range doc.Rules {
		lhs[rule.Left] = true
	}
	var nonTerminals, terminals []string
	seenTerm := make(map[string]bool)
	for _, rule := range doc.Rules {
		for _, alt := range rule.Alts {
			for _, sym := range alt.Symbols {
				if !lhs[sym] && !seenTerm[sym] {
					seenTerm[sym] = true
					terminals = append(terminals, sym)
				}
			}
		}
	}
	productions := make(map[string][][]string, len(doc.Rules))
	for _, rule := range doc.Rules {
		for _, alt := range rule.Alts {
			rhs := alt.Symbols
			if alt.Eps {
				rhs = nil
			}
			productions[rule.Left] = append(productions[rule.Left], rhs)
		}
	}
	nonTerminals = sortedKeys(lhs)
	return NewGrammar(nonTerminals, terminals, productions, doc.Start)
}

// ParseAutomaton parses the automaton notation and validates the result.
func ParseAutomaton(src string) (*Automaton, error) {
	doc, err := automatonParser.ParseString("automaton", src)
	if err != nil {
		return nil, err
	}
	transitions := make(map[string]map[string][]string)
	for _, e := range doc.Edges {
		if transitions[e.From] == nil {
			transitions[e.From] = make(map[string][]string)
		}
		if len(transitions[e.From][e.Symbol]) > 0 {
			return nil, fmt.Errorf("%w: duplicate transition block for (%s, %s)", ErrMalformed, e.From, e.Symbol)
		}
		transitions[e.From][e.Symbol] = e.To
	}
	return New(doc.States, doc.Alphabet, transitions, doc.Start, doc.Accept)
}
