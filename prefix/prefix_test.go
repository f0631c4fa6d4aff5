package prefix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/symreduce/colgraph"
	"github.com/katalvlaran/symreduce/labeler/refinement"
	"github.com/katalvlaran/symreduce/prefix"
	"github.com/katalvlaran/symreduce/problem"
)

// path4 returns the 4-vertex path 0-1-2-3, monochrome, with value
// vertex 4 isolated (a fixed point of Aut(G0) since it is the only
// vertex of its color).
func path4(t *testing.T) *colgraph.Graph {
	t.Helper()
	colors := []int{0, 0, 0, 0, 1}
	edges := [][2]int{{0, 1}, {1, 2}, {2, 3}}
	g, err := colgraph.NewGraph(5, colors, edges)
	require.NoError(t, err)
	return g
}

func newProblem(t *testing.T) *problem.Problem {
	t.Helper()
	return &problem.Problem{
		G0:     path4(t),
		Vars:   []int{0, 1, 2, 3},
		Values: []int{4},
		K:      2,
	}
}

func TestExpandLevelZeroDerivesGraphFromG0(t *testing.T) {
	lab := refinement.New()
	mgr := prefix.New(newProblem(t), lab)

	g1, err := mgr.Expand(0, nil)
	require.NoError(t, err)
	require.Equal(t, 1, mgr.Len())
	require.Equal(t, []int{0}, mgr.Prefix())

	require.True(t, g1.HasEdge(0, 4), "G1 must carry the new (p, R[0]) edge")

	lvl := mgr.Level(0)
	require.Same(t, lvl.Trav, lvl.Trav)
	require.Equal(t, 0, lvl.Trav.Root)
	require.NotNil(t, lvl.TravInd)
	require.Len(t, lvl.TravInd, 5)
	require.NotNil(t, lvl.Orbit)
	require.Len(t, lvl.Orbit, 5)

	// 0 and 3 are the path's endpoints, its only nontrivial orbit in
	// G0; the traversal rooted at 0 should reach 3 as well.
	require.True(t, lvl.TravInd[0])
	require.True(t, lvl.TravInd[3])
	require.False(t, lvl.TravInd[4], "the value vertex is a fixed point, never an image of vertex 0")
}

func TestExpandValidatesOnlyAtLevelZero(t *testing.T) {
	lab := refinement.New()
	prob := newProblem(t)
	prob.Values = nil // would fail problem.Validate
	mgr := prefix.New(prob, lab)

	_, err := mgr.Expand(0, nil)
	require.ErrorIs(t, err, problem.ErrEmptyValues)
}

func TestExpandMultiLevelChainsOnReturnedGraph(t *testing.T) {
	lab := refinement.New()
	mgr := prefix.New(newProblem(t), lab)

	g1, err := mgr.Expand(0, nil)
	require.NoError(t, err)

	g2, err := mgr.Expand(3, g1)
	require.NoError(t, err)
	require.Equal(t, 2, mgr.Len())
	require.Equal(t, []int{0, 3}, mgr.Prefix())

	require.True(t, g2.HasEdge(0, 4))
	require.True(t, g2.HasEdge(3, 4))

	lvl1 := mgr.Level(1)
	require.Equal(t, 3, lvl1.Trav.Root)
	require.Same(t, g1, lvl1.Graph)

	// In G1 (0 already fixed to R[0]), vertex 3 is its own singleton
	// orbit, since individualizing 0 breaks the path's symmetry.
	require.Equal(t, []int{3}, lvl1.Trav.Images)
}

func TestSeedMinFieldIsCallerOwned(t *testing.T) {
	lab := refinement.New()
	mgr := prefix.New(newProblem(t), lab)

	_, err := mgr.Expand(0, nil)
	require.NoError(t, err)

	lvl := mgr.Level(0)
	require.Nil(t, lvl.SeedMin, "Expand must not set SeedMin; the search engine supplies it")
	lvl.SeedMin = []bool{true, false, false, false, false}
	require.True(t, mgr.Level(0).SeedMin[0])
}
