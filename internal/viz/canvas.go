// Package viz exports an automaton as canvas JSON: states arranged on a
// circle, accept states drawn with an outer ring, transitions as labeled
// edges, plus a "start" arrow into the start state.
package viz

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	"github.com/IslamAbukoush/LFA-LAB1/regular"
)

const (
	radius     = 150
	nodeWidth  = 40
	nodeHeight = 20
)

type style struct {
	FillColor    string `json:"fillColor,omitempty"`
	StrokeColor  string `json:"strokeColor,omitempty"`
	StrokeWidth  int    `json:"strokeWidth,omitempty"`
	CornerRadius int    `json:"cornerRadius,omitempty"`
	TextSize     int    `json:"textSize,omitempty"`
}

type node struct {
	ID     string  `json:"id"`
	Type   string  `json:"type"`
	Shape  string  `json:"shape,omitempty"`
	Text   string  `json:"text,omitempty"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Style  style   `json:"style"`
}

type endpoint struct {
	Type string `json:"type"`
	Node string `json:"node"`
	Side string `json:"side"`
}

type edge struct {
	ID    string   `json:"id"`
	From  endpoint `json:"from"`
	To    endpoint `json:"to"`
	Label string   `json:"label,omitempty"`
}

type canvas struct {
	Nodes []node `json:"nodes"`
	Edges []edge `json:"edges"`
}

// Export writes the canvas JSON for a to w.
func Export(a *regular.Automaton, w io.Writer) error {
	states := a.States()
	acceptSet := make(map[string]bool)
	for _, s := range a.AcceptStates() {
		acceptSet[s] = true
	}

	var c canvas
	pos := make(map[string][2]float64, len(states))
	for i, state := range states {
		angle := 2 * math.Pi * float64(i) / float64(len(states))
		x := radius * math.Cos(angle)
		y := radius * math.Sin(angle)
		pos[state] = [2]float64{x, y}
		if acceptSet[state] {
			c.Nodes = append(c.Nodes, node{
				ID:     fmt.Sprintf("node_%s_outer", state),
				Type:   "shape",
				Shape:  "rectangle",
				X:      x - 30,
				Y:      y - 30,
				Width:  60,
				Height: 60,
				Style:  style{FillColor: "transparent", StrokeColor: "#000000", StrokeWidth: 2, CornerRadius: 30},
			})
		}
		fill := "#ffffff"
		if acceptSet[state] {
			fill = "#ffffcc"
		}
		c.Nodes = append(c.Nodes, node{
			ID:     "node_" + state,
			Type:   "text",
			Text:   state,
			X:      x - nodeWidth/2,
			Y:      y - nodeHeight/2,
			Width:  nodeWidth,
			Height: nodeHeight,
			Style:  style{FillColor: fill, StrokeColor: "#000000", StrokeWidth: 2, CornerRadius: 10, TextSize: 12},
		})
	}

	startPos := pos[a.Start()]
	c.Nodes = append(c.Nodes, node{
		ID:     "start_arrow",
		Type:   "text",
		Text:   "start",
		X:      startPos[0] - 100,
		Y:      startPos[1] - nodeHeight/2,
		Width:  nodeWidth,
		Height: nodeHeight,
		Style:  style{TextSize: 12},
	})
	c.Edges = append(c.Edges, edge{
		ID:   "edge_start",
		From: endpoint{Type: "connected", Node: "start_arrow", Side: "right"},
		To:   endpoint{Type: "connected", Node: "node_" + a.Start(), Side: "left"},
	})

	// one edge per (from, to) pair, labeled with all its symbols
	labels := make(map[[2]string][]string)
	for _, tr := range a.Transitions() {
		for _, to := range tr.To {
			key := [2]string{tr.From, to}
			labels[key] = append(labels[key], tr.Symbol)
		}
	}
	pairs := make([][2]string, 0, len(labels))
	for key := range labels {
		pairs = append(pairs, key)
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i][0] != pairs[j][0] {
			return pairs[i][0] < pairs[j][0]
		}
		return pairs[i][1] < pairs[j][1]
	})
	for i, key := range pairs {
		c.Edges = append(c.Edges, edge{
			ID:    fmt.Sprintf("edge_%d", i),
			From:  endpoint{Type: "connected", Node: "node_" + key[0], Side: "right"},
			To:    endpoint{Type: "connected", Node: "node_" + key[1], Side: "left"},
			Label: strings.Join(labels[key], ", "),
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
