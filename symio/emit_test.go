package symio_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/symreduce/symio"
)

func TestWriteTextual(t *testing.T) {
	var sb strings.Builder
	err := symio.WriteTextual(&sb, []symio.Emission{
		{VarLegend: []string{"x3", "x4"}, ValLegend: []string{"false", "true"}, Aut: 0},
	})
	require.NoError(t, err)
	require.Equal(t, "[0] x3 -> false, x4 -> true\n", sb.String())
}

func TestWriteIncrementalCube(t *testing.T) {
	var sb strings.Builder
	err := symio.WriteIncrementalCube(&sb, [][]int{{-3, 4}, {3, -4}})
	require.NoError(t, err)
	require.Equal(t, "p inccnf\na -3 4 0\na 3 -4 0\n", sb.String())
}

func TestWriteCNFReemissionScenario3Shape(t *testing.T) {
	base := &symio.CNF{
		NumVars:    6,
		NumClauses: 3,
		Clauses:    [][]int{{1, 2}, {1, 3, 5}, {2, 4, 6}},
	}
	branch := [][2]int{{-3, -4}, {-3, 4}, {3, 4}}
	final := []int{7, 8, 9}

	var sb strings.Builder
	err := symio.WriteCNFReemission(&sb, base, branch, final)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	require.Equal(t, "p cnf 9 10", lines[0])
	require.Len(t, lines, 1+3+2*3+1)
}
