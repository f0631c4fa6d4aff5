package symio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// nextSignificantLine returns the next non-blank, non-comment ("c ...")
// line from sc, or ("", false) at EOF.
func nextSignificantLine(sc *bufio.Scanner) (string, bool) {
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "c") {
			continue
		}
		return line, true
	}
	return "", false
}

// ParseCNF reads the DIMACS CNF format of spec §6: a "p cnf <nv> <nc>"
// header followed by nc zero-terminated clauses.
func ParseCNF(r io.Reader) (*CNF, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)

	header, ok := nextSignificantLine(sc)
	if !ok {
		return nil, fmt.Errorf("%w: expected \"p cnf <nv> <nc>\", got EOF", ErrMalformedHeader)
	}
	fields := strings.Fields(header)
	if len(fields) != 4 || fields[0] != "p" || fields[1] != "cnf" {
		return nil, fmt.Errorf("%w: %q", ErrMalformedHeader, header)
	}
	nv, err := strconv.Atoi(fields[2])
	if err != nil {
		return nil, fmt.Errorf("%w: bad variable count %q", ErrMalformedHeader, fields[2])
	}
	nc, err := strconv.Atoi(fields[3])
	if err != nil {
		return nil, fmt.Errorf("%w: bad clause count %q", ErrMalformedHeader, fields[3])
	}

	clauses := make([][]int, 0, nc)
	for len(clauses) < nc {
		line, ok := nextSignificantLine(sc)
		if !ok {
			return nil, fmt.Errorf("%w: expected %d clauses, found %d", ErrMalformedLine, nc, len(clauses))
		}
		toks := strings.Fields(line)
		clause := make([]int, 0, len(toks))
		for _, tok := range toks {
			lit, err := strconv.Atoi(tok)
			if err != nil {
				return nil, fmt.Errorf("%w: bad literal %q", ErrMalformedLine, tok)
			}
			if lit == 0 {
				break
			}
			clause = append(clause, lit)
		}
		clauses = append(clauses, clause)
	}

	return &CNF{NumVars: nv, NumClauses: nc, Clauses: clauses}, nil
}

// ParseSymmetryGraph reads the "p edge" format of spec §6: a header,
// then m "e u v" lines, then exactly n "c u k" color-assignment lines.
func ParseSymmetryGraph(r io.Reader) (*SymmetryGraph, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)

	header, ok := nextSignificantLine(sc)
	if !ok {
		return nil, fmt.Errorf("%w: expected \"p edge <n> <m>\", got EOF", ErrMalformedHeader)
	}
	fields := strings.Fields(header)
	if len(fields) != 4 || fields[0] != "p" || fields[1] != "edge" {
		return nil, fmt.Errorf("%w: %q", ErrMalformedHeader, header)
	}
	n, err := strconv.Atoi(fields[2])
	if err != nil {
		return nil, fmt.Errorf("%w: bad vertex count %q", ErrMalformedHeader, fields[2])
	}
	m, err := strconv.Atoi(fields[3])
	if err != nil {
		return nil, fmt.Errorf("%w: bad edge count %q", ErrMalformedHeader, fields[3])
	}

	edges := make([][2]int, 0, m)
	seen := make(map[[2]int]bool, m)
	for len(edges) < m {
		line, ok := nextSignificantLine(sc)
		if !ok {
			return nil, fmt.Errorf("%w: expected %d edges, found %d", ErrMalformedLine, m, len(edges))
		}
		var tag string
		var u, v int
		if _, err := fmt.Sscanf(line, "%s %d %d", &tag, &u, &v); err != nil || tag != "e" {
			return nil, fmt.Errorf("%w: %q", ErrMalformedLine, line)
		}
		key := [2]int{u, v}
		if u > v {
			key = [2]int{v, u}
		}
		if seen[key] {
			return nil, fmt.Errorf("%w: %d-%d", ErrDuplicateEdge, u, v)
		}
		seen[key] = true
		edges = append(edges, [2]int{u, v})
	}

	colors := make([]int, n)
	assigned := make([]bool, n)
	// Color lines begin with "c" themselves, so they are read directly
	// instead of through nextSignificantLine, which skips them as
	// comments. Fewer than n lines leaves vertices unassigned, which the
	// ErrMissingColor check below reports.
	for read := 0; read < n && sc.Scan(); {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		read++
		var tag string
		var u, k int
		if _, err := fmt.Sscanf(line, "%s %d %d", &tag, &u, &k); err != nil || tag != "c" {
			return nil, fmt.Errorf("%w: %q", ErrMalformedLine, line)
		}
		if u < 1 || u > n {
			return nil, fmt.Errorf("%w: vertex %d out of range 1..%d", ErrMalformedLine, u, n)
		}
		if assigned[u-1] {
			return nil, fmt.Errorf("%w: vertex %d", ErrDuplicateColor, u)
		}
		colors[u-1] = k
		assigned[u-1] = true
	}
	for v, ok := range assigned {
		if !ok {
			return nil, fmt.Errorf("%w: vertex %d", ErrMissingColor, v+1)
		}
	}

	return &SymmetryGraph{N: n, Edges: edges, Colors: colors}, nil
}

// parseDeclaration implements the shared "p <keyword> <count>" then
// count "<lineTag> <i> <tag>" lines shape used by both the variable
// and value declaration formats.
func parseDeclaration(r io.Reader, keyword, lineTag string) (*Declaration, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)

	header, ok := nextSignificantLine(sc)
	if !ok {
		return nil, fmt.Errorf("%w: expected \"p %s <count>\", got EOF", ErrMalformedHeader, keyword)
	}
	fields := strings.Fields(header)
	if len(fields) != 3 || fields[0] != "p" || fields[1] != keyword {
		return nil, fmt.Errorf("%w: %q", ErrMalformedHeader, header)
	}
	count, err := strconv.Atoi(fields[2])
	if err != nil {
		return nil, fmt.Errorf("%w: bad count %q", ErrMalformedHeader, fields[2])
	}

	decl := &Declaration{Vertices: make([]int, 0, count), Tags: make([]string, 0, count)}
	for len(decl.Vertices) < count {
		line, ok := nextSignificantLine(sc)
		if !ok {
			return nil, fmt.Errorf("%w: expected %d %s lines, found %d", ErrMalformedLine, count, lineTag, len(decl.Vertices))
		}
		toks := strings.Fields(line)
		if len(toks) != 3 || toks[0] != lineTag {
			return nil, fmt.Errorf("%w: %q", ErrMalformedLine, line)
		}
		i, err := strconv.Atoi(toks[1])
		if err != nil {
			return nil, fmt.Errorf("%w: bad vertex index %q", ErrMalformedLine, toks[1])
		}
		decl.Vertices = append(decl.Vertices, i)
		decl.Tags = append(decl.Tags, toks[2])
	}
	return decl, nil
}

// ParseVariableDeclaration reads "p variable <v>" then v "v <i> <tag>" lines.
func ParseVariableDeclaration(r io.Reader) (*Declaration, error) {
	return parseDeclaration(r, "variable", "v")
}

// ParseValueDeclaration reads "p value <r>" then r "r <i> <tag>" lines.
// In CNF mode the caller must additionally check that the tags are
// exactly {"false","true"}; see NormalizeCNFValues.
func ParseValueDeclaration(r io.Reader) (*Declaration, error) {
	return parseDeclaration(r, "value", "r")
}

// NormalizeCNFValues enforces the CNF-mode rule (spec §6) that r=2 and
// the tags "false" and "true" both appear, and returns the declaration
// reordered to (false, true).
func NormalizeCNFValues(decl *Declaration) (*Declaration, error) {
	if len(decl.Tags) != 2 {
		return nil, fmt.Errorf("%w: got %d value(s)", ErrBadValueTags, len(decl.Tags))
	}
	var falseIdx, trueIdx = -1, -1
	for i, tag := range decl.Tags {
		switch tag {
		case "false":
			falseIdx = i
		case "true":
			trueIdx = i
		}
	}
	if falseIdx == -1 || trueIdx == -1 {
		return nil, ErrBadValueTags
	}
	return &Declaration{
		Vertices: []int{decl.Vertices[falseIdx], decl.Vertices[trueIdx]},
		Tags:     []string{"false", "true"},
	}, nil
}

// ParsePrefix reads the "p prefix <k> <a> <t>" format of spec §6: a
// assignment lines, then k-a fixed-vertex lines.
func ParsePrefix(r io.Reader) (*Prefix, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)

	header, ok := nextSignificantLine(sc)
	if !ok {
		return nil, fmt.Errorf("%w: expected \"p prefix <k> <a> <t>\", got EOF", ErrMalformedHeader)
	}
	fields := strings.Fields(header)
	if len(fields) != 5 || fields[0] != "p" || fields[1] != "prefix" {
		return nil, fmt.Errorf("%w: %q", ErrMalformedHeader, header)
	}
	k, err1 := strconv.Atoi(fields[2])
	a, err2 := strconv.Atoi(fields[3])
	_, err3 := strconv.Atoi(fields[4]) // t: reserved, not otherwise used by the core
	if err1 != nil || err2 != nil || err3 != nil {
		return nil, fmt.Errorf("%w: %q", ErrMalformedHeader, header)
	}
	if a < 0 || a > k {
		return nil, fmt.Errorf("%w: a=%d out of range 0..%d", ErrMalformedLine, a, k)
	}

	p := &Prefix{K: k}
	for i := 0; i < a; i++ {
		line, ok := nextSignificantLine(sc)
		if !ok {
			return nil, fmt.Errorf("%w: expected %d assignment lines, found %d", ErrMalformedLine, a, i)
		}
		var tag string
		var u, w int
		if _, err := fmt.Sscanf(line, "%s %d %d", &tag, &u, &w); err != nil || tag != "a" {
			return nil, fmt.Errorf("%w: %q", ErrMalformedLine, line)
		}
		p.Assignments = append(p.Assignments, PrefixAssignment{Vertex: u, Value: w})
	}
	for i := 0; i < k-a; i++ {
		line, ok := nextSignificantLine(sc)
		if !ok {
			return nil, fmt.Errorf("%w: expected %d fixed-vertex lines, found %d", ErrMalformedLine, k-a, i)
		}
		var tag string
		var u int
		if _, err := fmt.Sscanf(line, "%s %d", &tag, &u); err != nil || tag != "f" {
			return nil, fmt.Errorf("%w: %q", ErrMalformedLine, line)
		}
		p.FixedVertices = append(p.FixedVertices, u)
	}

	return p, nil
}
