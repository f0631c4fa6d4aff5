package transversal

import (
	"github.com/katalvlaran/symreduce/colgraph"
	"github.com/katalvlaran/symreduce/labeler"
)

// OrbitMin implements the orbit-min indicator of spec §4.3.
//
// It returns a boolean vector of length n. If nu is non-nil, bit
// nu.Apply(u) is set iff u is the minimum-indexed vertex of its Aut(g)
// orbit, using ordinary integer ordering on u (the original, unrelabeled
// index) — i.e. the vector is reported in ν's image space but the
// minimality test is always performed on the untouched vertex indices.
// If nu is nil, the vector is returned unrelabeled (bit u set iff u is
// its orbit's minimum). Exactly one bit is set per orbit.
func OrbitMin(lab labeler.Labeler, g *colgraph.Graph, nu colgraph.Permutation) ([]bool, error) {
	orbits, err := lab.Orbits(g)
	if err != nil {
		return nil, err
	}
	n := g.NumVertices()

	minOfOrbit := make(map[int]int, n)
	for v := 0; v < n; v++ {
		o := orbits[v]
		if cur, ok := minOfOrbit[o]; !ok || v < cur {
			minOfOrbit[o] = v
		}
	}

	out := make([]bool, n)
	for v := 0; v < n; v++ {
		isMin := minOfOrbit[orbits[v]] == v
		pos := v
		if nu != nil {
			pos = nu.Apply(v)
		}
		out[pos] = isMin
	}
	return out, nil
}
