package render_test

import (
	"bytes"
	"testing"

	"github.com/katalvlaran/campusnav/dijkstra"
	"github.com/katalvlaran/campusnav/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestText(t *testing.T) {
	tests := []struct {
		name string
		in   dijkstra.Result
		want string
	}{
		{
			name: "found",
			in: dijkstra.Result{
				Source: "Gym", Destination: "Canteen", Status: dijkstra.StatusFound,
				Path: []string{"Gym", "Block 3", "Block 6", "Canteen"}, Distance: 6,
			},
			want: "Shortest path from Gym to Canteen is 6 units.\nPath: Gym -> Block 3 -> Block 6 -> Canteen",
		},
		{
			name: "trivial",
			in:   dijkstra.Result{Source: "Lawn", Destination: "Lawn", Status: dijkstra.StatusTrivial, Path: []string{"Lawn"}},
			want: "Open your eyes. Use your mind. You are already at your destination.",
		},
		{
			name: "unreachable",
			in:   dijkstra.Result{Source: "A", Destination: "X", Status: dijkstra.StatusUnreachable},
			want: "No path found from A to X",
		},
		{
			name: "invalid",
			in:   dijkstra.Result{Source: "A", Destination: "Nowhere", Status: dijkstra.StatusInvalidInput},
			want: "Invalid building name. Please check the input.",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, render.Text(tc.in))
		})
	}
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	err := render.Write(&buf, dijkstra.Result{Source: "A", Destination: "B", Status: dijkstra.StatusUnreachable})
	require.NoError(t, err)
	assert.Equal(t, "No path found from A to B\n", buf.String())
}

func TestPathString(t *testing.T) {
	assert.Equal(t, "A", render.PathString([]string{"A"}))
	assert.Equal(t, "A -> B -> C", render.PathString([]string{"A", "B", "C"}))
	assert.Equal(t, "", render.PathString(nil))
}
