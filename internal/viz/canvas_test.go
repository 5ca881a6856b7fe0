package viz

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IslamAbukoush/LFA-LAB1/regular"
)

func TestExport(t *testing.T) {
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
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Export(a, &buf))

	var c canvas
	require.NoError(t, json.Unmarshal(buf.Bytes(), &c))

	// 4 state nodes + 1 accept ring + start arrow
	assert.Len(t, c.Nodes, 6)
	// state pairs q0→q0, q0→q1, q1→q1, q1→q2, q2→q3, q3→q1, plus start edge
	assert.Len(t, c.Edges, 7)

	var ringSeen, startSeen bool
	for _, n := range c.Nodes {
		switch n.ID {
		case "node_q2_outer":
			ringSeen = true
		case "start_arrow":
			startSeen = true
		}
	}
	assert.True(t, ringSeen, "accept state should have an outer ring")
	assert.True(t, startSeen)

	assert.Equal(t, "edge_start", c.Edges[0].ID)
	assert.Equal(t, "node_q0", c.Edges[0].To.Node)

	// q0→q1 edge carries its symbol label
	var label string
	for _, e := range c.Edges[1:] {
		if e.From.Node == "node_q0" && e.To.Node == "node_q1" {
			label = e.Label
		}
	}
	assert.Equal(t, "a", label)
}
