package selector_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/symreduce/colgraph"
	"github.com/katalvlaran/symreduce/labeler/refinement"
	"github.com/katalvlaran/symreduce/selector"
)

func TestSelectPrefersPreviousTraversalIndicator(t *testing.T) {
	g, err := colgraph.NewGraph(4, []int{0, 0, 0, 0}, [][2]int{{0, 1}, {2, 3}})
	require.NoError(t, err)

	vars := []int{0, 1, 2, 3}
	used := map[int]bool{}
	prevTravInd := []bool{false, false, true, true}

	v, err := selector.Select(refinement.New(), g, vars, used, prevTravInd)
	require.NoError(t, err)
	require.Equal(t, 2, v, "smallest unused vertex flagged by the previous traversal wins")
}

func TestSelectFallsBackToLargestGoodOrbit(t *testing.T) {
	// Two disjoint same-colored triangles (vertices 0-2 and 3-5): swapping
	// the triangles is an automorphism, so all six vertices form one orbit,
	// and a transposition inside one triangle is a generator with a fixed
	// point and a moved point. No previous traversal indicator.
	g, err := colgraph.NewGraph(6, []int{0, 0, 0, 0, 0, 0}, [][2]int{
		{0, 1}, {1, 2}, {0, 2},
		{3, 4}, {4, 5}, {3, 5},
	})
	require.NoError(t, err)

	vars := []int{0, 1, 2, 3, 4, 5}
	used := map[int]bool{}

	v, err := selector.Select(refinement.New(), g, vars, used, nil)
	require.NoError(t, err)
	require.Equal(t, 0, v)
}

func TestSelectFallsBackToLowestUnused(t *testing.T) {
	// Two-vertex graph with distinct colors: no nontrivial automorphism,
	// so no orbit admits a fixed+moved generator; rule 3 applies.
	g, err := colgraph.NewGraph(2, []int{0, 1}, nil)
	require.NoError(t, err)

	vars := []int{0, 1}
	used := map[int]bool{}

	v, err := selector.Select(refinement.New(), g, vars, used, nil)
	require.NoError(t, err)
	require.Equal(t, 0, v)
}

func TestSelectErrorsWhenExhausted(t *testing.T) {
	g, err := colgraph.NewGraph(1, []int{0}, nil)
	require.NoError(t, err)

	vars := []int{0}
	used := map[int]bool{0: true}

	_, err = selector.Select(refinement.New(), g, vars, used, nil)
	require.ErrorIs(t, err, selector.ErrNoUnusedVariable)
}
