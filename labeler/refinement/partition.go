package refinement

import (
	"sort"

	"github.com/katalvlaran/symreduce/colgraph"
)

// cell is an ordered-ascending list of vertex indices sharing one
// partition class.
type cell []int

// partition is an ordered sequence of disjoint cells covering every
// vertex exactly once. Flattening it in order yields a labeling:
// position i holds partition-flatten()[i].
type partition []cell

func initialPartition(g *colgraph.Graph) partition {
	n := g.NumVertices()
	byColor := make(map[int][]int)
	for v := 0; v < n; v++ {
		c := g.Color(v)
		byColor[c] = append(byColor[c], v)
	}
	colors := make([]int, 0, len(byColor))
	for c := range byColor {
		colors = append(colors, c)
	}
	sort.Ints(colors)

	pi := make(partition, 0, len(colors))
	for _, c := range colors {
		pi = append(pi, cell(byColor[c]))
	}
	return pi
}

func (pi partition) discrete() bool {
	for _, c := range pi {
		if len(c) != 1 {
			return false
		}
	}
	return true
}

// firstNonSingleton returns the index of the first cell of size > 1,
// or -1 if pi is discrete.
func (pi partition) firstNonSingleton() int {
	for i, c := range pi {
		if len(c) > 1 {
			return i
		}
	}
	return -1
}

// toPermutation flattens pi into perm[vertex] = position.
func (pi partition) toPermutation() colgraph.Permutation {
	n := 0
	for _, c := range pi {
		n += len(c)
	}
	perm := make(colgraph.Permutation, n)
	pos := 0
	for _, c := range pi {
		for _, v := range c {
			perm[v] = pos
			pos++
		}
	}
	return perm
}

// individualize splits the cell at cellIdx into {v} followed by the
// rest of the cell (order preserved, ascending), holding every other
// cell fixed in place.
func (pi partition) individualize(cellIdx, v int) partition {
	out := make(partition, 0, len(pi)+1)
	out = append(out, pi[:cellIdx]...)

	rest := make(cell, 0, len(pi[cellIdx])-1)
	for _, u := range pi[cellIdx] {
		if u != v {
			rest = append(rest, u)
		}
	}
	out = append(out, cell{v})
	if len(rest) > 0 {
		out = append(out, rest)
	}
	out = append(out, pi[cellIdx+1:]...)
	return out
}

// refine drives pi to a fixpoint of 1-WL color refinement against g:
// a cell survives a round only if every member has the same vector of
// neighbor-counts against the round's cells; cells that split are
// reordered by that signature so the refinement is equivariant under
// Aut(g).
func refine(g *colgraph.Graph, pi partition) partition {
	for {
		next, changed := refineOnce(g, pi)
		pi = next
		if !changed {
			return pi
		}
	}
}

func refineOnce(g *colgraph.Graph, pi partition) (partition, bool) {
	// signature(v) = count of neighbors of v in each cell of pi, in
	// pi's current order.
	sig := make([][]int, g.NumVertices())
	for v := range sig {
		sig[v] = make([]int, len(pi))
	}
	// Build vertex->cell index once, then tally neighbor counts.
	cellOf := make([]int, g.NumVertices())
	for ci, c := range pi {
		for _, v := range c {
			cellOf[v] = ci
		}
	}
	for v := 0; v < g.NumVertices(); v++ {
		g.Neighbors(v, func(u int) {
			sig[v][cellOf[u]]++
		})
	}

	next := make(partition, 0, len(pi))
	changed := false
	for _, c := range pi {
		if len(c) == 1 {
			next = append(next, c)
			continue
		}
		groups := make(map[string][]int)
		var keys []string
		for _, v := range c {
			k := signatureKey(sig[v])
			if _, ok := groups[k]; !ok {
				keys = append(keys, k)
			}
			groups[k] = append(groups[k], v)
		}
		if len(keys) == 1 {
			next = append(next, c)
			continue
		}
		changed = true
		sort.Strings(keys)
		for _, k := range keys {
			next = append(next, cell(groups[k]))
		}
	}
	return next, changed
}

func signatureKey(sig []int) string {
	b := make([]byte, 0, len(sig)*5)
	for _, x := range sig {
		b = appendInt(b, x)
		b = append(b, ',')
	}
	return string(b)
}

func appendInt(b []byte, x int) []byte {
	if x == 0 {
		return append(b, '0')
	}
	start := len(b)
	for x > 0 {
		b = append(b, byte('0'+x%10))
		x /= 10
	}
	// reverse the digits just appended
	for i, j := start, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return b
}
