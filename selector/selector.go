package selector

import (
	"errors"

	"github.com/katalvlaran/symreduce/colgraph"
	"github.com/katalvlaran/symreduce/labeler"
)

// ErrNoUnusedVariable is returned when every variable vertex is already
// in the prefix.
var ErrNoUnusedVariable = errors.New("selector: no unused variable vertex remains")

// Select returns the next variable vertex to append to the prefix.
//
// g is the current graph (G_k in spec terms); vars is V in ascending
// declaration order; used marks vertices already in the prefix;
// prevTravInd is the previous level's traversal-image indicator
// (trav_ind_{k-1}), or nil at k=0.
//
// Rule (spec §4.4), in order:
//
//  1. If prevTravInd is non-nil, return the lowest-indexed unused
//     variable vertex with prevTravInd set.
//  2. Otherwise, among unused variable vertices, find the Aut(g)-orbit
//     of maximum length that admits a generator with both a fixed
//     point and a moved point among that orbit's variable vertices;
//     return its lowest-indexed unused variable vertex. Orbits are
//     scanned in vertex order; the first orbit to achieve the maximum
//     wins ties.
//  3. Otherwise return the lowest-indexed unused variable vertex.
func Select(lab labeler.Labeler, g *colgraph.Graph, vars []int, used map[int]bool, prevTravInd []bool) (int, error) {
	if prevTravInd != nil {
		for _, v := range vars {
			if !used[v] && prevTravInd[v] {
				return v, nil
			}
		}
	}

	orbits, err := lab.Orbits(g)
	if err != nil {
		return -1, err
	}
	gens, err := lab.Generators(g)
	if err != nil {
		return -1, err
	}

	orbitLen := make(map[int]int, g.NumVertices())
	for v := 0; v < g.NumVertices(); v++ {
		orbitLen[orbits[v]]++
	}

	seen := make(map[int]bool)
	best, bestLen := -1, -1
	for _, v := range vars {
		if used[v] {
			continue
		}
		o := orbits[v]
		if seen[o] {
			continue
		}
		seen[o] = true
		if !hasGoodGenerator(o, gens, orbits, vars) {
			continue
		}
		if orbitLen[o] > bestLen {
			bestLen = orbitLen[o]
			best = o
		}
	}

	if best != -1 {
		for _, v := range vars {
			if !used[v] && orbits[v] == best {
				return v, nil
			}
		}
	}

	for _, v := range vars {
		if !used[v] {
			return v, nil
		}
	}
	return -1, ErrNoUnusedVariable
}

// hasGoodGenerator reports whether some generator fixes at least one
// variable vertex of orbit o and moves at least one other.
func hasGoodGenerator(o int, gens []colgraph.Permutation, orbits []int, vars []int) bool {
	for _, gen := range gens {
		fixed, moved := false, false
		for _, v := range vars {
			if orbits[v] != o {
				continue
			}
			if gen.Apply(v) == v {
				fixed = true
			} else {
				moved = true
			}
			if fixed && moved {
				return true
			}
		}
	}
	return false
}
