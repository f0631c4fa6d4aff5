package symio

import "errors"

// ErrMalformedHeader is returned when a format's leading "p ..." header
// line is missing or does not match the expected keyword/field count.
var ErrMalformedHeader = errors.New("symio: malformed header line")

// ErrMalformedLine is returned when a body line does not parse.
var ErrMalformedLine = errors.New("symio: malformed line")

// ErrDuplicateColor is returned when the symmetry-graph format assigns
// a color to the same vertex twice.
var ErrDuplicateColor = errors.New("symio: duplicate vertex color")

// ErrMissingColor is returned when the symmetry-graph format never
// assigns a color to some vertex.
var ErrMissingColor = errors.New("symio: vertex has no assigned color")

// ErrDuplicateEdge is returned when the symmetry-graph format lists
// the same undirected edge twice.
var ErrDuplicateEdge = errors.New("symio: duplicate edge")

// ErrBadValueTags is returned when CNF mode's value declaration does
// not contain exactly the tags "false" and "true".
var ErrBadValueTags = errors.New("symio: CNF mode requires exactly the value tags \"false\" and \"true\"")

// CNF is a parsed DIMACS-style CNF instance (spec §6).
type CNF struct {
	NumVars    int
	NumClauses int
	Clauses    [][]int // signed literals, zero-terminator stripped
}

// SymmetryGraph is a parsed "p edge" block: an edge list plus a color
// per 1-indexed vertex, both still in 1-indexed form as read.
type SymmetryGraph struct {
	N      int
	Edges  [][2]int
	Colors []int // Colors[v-1] is the color of vertex v
}

// Declaration is one parsed "p variable"/"p value" block: a mapping
// from graph vertex (1-indexed, as read) to a short tag.
type Declaration struct {
	Vertices []int
	Tags     []string
}

// Prefix is a parsed "p prefix" block (spec §6): a lines are
// assignments whose vertex the CLI adopts as a prefix position and
// whose value is not consulted; f lines name fixed-but-unvalued prefix
// vertices.
type Prefix struct {
	K             int
	Assignments   []PrefixAssignment
	FixedVertices []int
}

// PrefixAssignment is one "a <u> <w>" line of a Prefix block.
type PrefixAssignment struct {
	Vertex int
	Value  int
}
