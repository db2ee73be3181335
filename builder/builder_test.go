// Package builder_test verifies topology, counts, weights and determinism of
// every Constructor.
package builder_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/campusnav/builder"
	"github.com/katalvlaran/campusnav/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		ctor  builder.Constructor
		wantV int
		wantE int
		check func(t *testing.T, g *core.Graph)
	}{
		{
			name: "Path(4)", ctor: builder.Path(4), wantV: 4, wantE: 3,
			check: func(t *testing.T, g *core.Graph) {
				assert.Equal(t, []string{"0", "1", "2", "3"}, g.NodesInOrder())
			},
		},
		{
			name: "Cycle(5)", ctor: builder.Cycle(5), wantV: 5, wantE: 5,
			check: func(t *testing.T, g *core.Graph) {
				nb, err := g.Neighbors("0")
				require.NoError(t, err)
				assert.Equal(t, []core.Neighbor{{ID: "1", Weight: 1}, {ID: "4", Weight: 1}}, nb)
			},
		},
		{
			name: "Star(4)", ctor: builder.Star(4), wantV: 4, wantE: 3,
			check: func(t *testing.T, g *core.Graph) {
				nb, err := g.Neighbors(builder.StarCenter)
				require.NoError(t, err)
				assert.Len(t, nb, 3)
			},
		},
		{name: "Complete(5)", ctor: builder.Complete(5), wantV: 5, wantE: 10},
		{name: "Grid(3,4)", ctor: builder.Grid(3, 4), wantV: 12, wantE: 17},
		{name: "RandomSparse(p=1)", ctor: builder.RandomSparse(6, 1), wantV: 6, wantE: 15},
		{name: "RandomSparse(p=0)", ctor: builder.RandomSparse(6, 0), wantV: 0, wantE: 0},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(nil, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, g.NodeCount())
			assert.Equal(t, tc.wantE, g.EdgeCount())
			for _, e := range g.Edges() {
				assert.Equal(t, builder.DefaultEdgeWeight, e.Weight)
			}
			if tc.check != nil {
				tc.check(t, g)
			}
		})
	}
}

func TestBuilders_Validation(t *testing.T) {
	cases := map[string]struct {
		ctor builder.Constructor
		want error
	}{
		"Path(1)":           {builder.Path(1), builder.ErrTooFewVertices},
		"Cycle(2)":          {builder.Cycle(2), builder.ErrTooFewVertices},
		"Star(1)":           {builder.Star(1), builder.ErrTooFewVertices},
		"Complete(1)":       {builder.Complete(1), builder.ErrTooFewVertices},
		"Grid(0,3)":         {builder.Grid(0, 3), builder.ErrTooFewVertices},
		"RandomSparse(1)":   {builder.RandomSparse(1, 0.5), builder.ErrTooFewVertices},
		"RandomSparse(p>1)": {builder.RandomSparse(5, 1.5), builder.ErrInvalidProbability},
		"RandomSparse(rng)": {builder.RandomSparse(5, 0.5), builder.ErrNeedRandSource},
		"nil constructor":   {nil, builder.ErrConstructFailed},
	}
	for name, tc := range cases {
		_, err := builder.BuildGraph(nil, tc.ctor)
		assert.ErrorIs(t, err, tc.want, name)
	}
}

func TestBuilders_RejectedWeight(t *testing.T) {
	bad := func(*rand.Rand) int64 { return 0 }
	_, err := builder.BuildGraph([]builder.BuilderOption{builder.WithWeightFn(bad)}, builder.Path(3))
	require.ErrorIs(t, err, builder.ErrConstructFailed)
	require.ErrorIs(t, err, core.ErrNonPositiveWeight)
}

func TestRandomSparse_Deterministic(t *testing.T) {
	opts := []builder.BuilderOption{
		builder.WithSeed(7),
		builder.WithWeightFn(builder.UniformWeightFn(1, 9)),
	}
	g1, err := builder.BuildGraph(opts, builder.RandomSparse(12, 0.3))
	require.NoError(t, err)

	opts2 := []builder.BuilderOption{
		builder.WithSeed(7),
		builder.WithWeightFn(builder.UniformWeightFn(1, 9)),
	}
	g2, err := builder.BuildGraph(opts2, builder.RandomSparse(12, 0.3))
	require.NoError(t, err)

	assert.Equal(t, g1.Edges(), g2.Edges())
	for _, e := range g1.Edges() {
		assert.GreaterOrEqual(t, e.Weight, int64(1))
		assert.LessOrEqual(t, e.Weight, int64(9))
	}
}

func TestIDSchemes(t *testing.T) {
	assert.Equal(t, "42", builder.DefaultIDFn(42))
	assert.Equal(t, "A", builder.SymbolIDFn(0))
	assert.Equal(t, "Z", builder.SymbolIDFn(25))
	assert.Panics(t, func() { builder.SymbolIDFn(26) })
	assert.Equal(t, "Block 3", builder.PrefixIDFn("Block ")(3))

	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithIDScheme(builder.SymbolIDFn)}, builder.Path(3))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, g.NodesInOrder())
}

func TestWeightFns(t *testing.T) {
	assert.Equal(t, int64(5), builder.ConstantWeightFn(5)(nil))
	assert.Panics(t, func() { builder.ConstantWeightFn(0) })
	assert.Panics(t, func() { builder.UniformWeightFn(3, 2) })
	assert.Equal(t, int64(3), builder.UniformWeightFn(3, 8)(nil))
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
}
