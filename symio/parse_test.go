package symio_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/symreduce/symio"
)

func TestParseCNF(t *testing.T) {
	input := "c a comment\np cnf 3 2\n1 -2 0\n2 3 0\n"
	cnf, err := symio.ParseCNF(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, 3, cnf.NumVars)
	require.Equal(t, 2, cnf.NumClauses)
	require.Equal(t, [][]int{{1, -2}, {2, 3}}, cnf.Clauses)
}

func TestParseCNFRejectsBadHeader(t *testing.T) {
	_, err := symio.ParseCNF(strings.NewReader("p sat 3 2\n"))
	require.ErrorIs(t, err, symio.ErrMalformedHeader)
}

func TestParseSymmetryGraph(t *testing.T) {
	input := "p edge 3 2\ne 1 2\ne 2 3\nc 1 0\nc 2 0\nc 3 1\n"
	g, err := symio.ParseSymmetryGraph(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, 3, g.N)
	require.Equal(t, [][2]int{{1, 2}, {2, 3}}, g.Edges)
	require.Equal(t, []int{0, 0, 1}, g.Colors)
}

func TestParseSymmetryGraphRejectsDuplicateEdge(t *testing.T) {
	input := "p edge 2 2\ne 1 2\ne 2 1\nc 1 0\nc 2 0\n"
	_, err := symio.ParseSymmetryGraph(strings.NewReader(input))
	require.ErrorIs(t, err, symio.ErrDuplicateEdge)
}

func TestParseSymmetryGraphRejectsMissingColor(t *testing.T) {
	input := "p edge 2 0\nc 1 0\n"
	_, err := symio.ParseSymmetryGraph(strings.NewReader(input))
	require.ErrorIs(t, err, symio.ErrMissingColor)
}

func TestParseVariableDeclaration(t *testing.T) {
	input := "p variable 2\nv 1 x1\nv 2 x2\n"
	decl, err := symio.ParseVariableDeclaration(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, []int{1, 2}, decl.Vertices)
	require.Equal(t, []string{"x1", "x2"}, decl.Tags)
}

func TestParseValueDeclarationAndNormalize(t *testing.T) {
	input := "p value 2\nr 5 true\nr 4 false\n"
	decl, err := symio.ParseValueDeclaration(strings.NewReader(input))
	require.NoError(t, err)

	norm, err := symio.NormalizeCNFValues(decl)
	require.NoError(t, err)
	require.Equal(t, []int{4, 5}, norm.Vertices)
	require.Equal(t, []string{"false", "true"}, norm.Tags)
}

func TestNormalizeCNFValuesRejectsWrongTags(t *testing.T) {
	decl := &symio.Declaration{Vertices: []int{1, 2}, Tags: []string{"maybe", "true"}}
	_, err := symio.NormalizeCNFValues(decl)
	require.ErrorIs(t, err, symio.ErrBadValueTags)
}

func TestParsePrefix(t *testing.T) {
	input := "p prefix 3 1 0\na 2 1\nf 4\nf 5\n"
	p, err := symio.ParsePrefix(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, 3, p.K)
	require.Equal(t, []symio.PrefixAssignment{{Vertex: 2, Value: 1}}, p.Assignments)
	require.Equal(t, []int{4, 5}, p.FixedVertices)
}
