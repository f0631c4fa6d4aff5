package refinement

import (
	"bytes"

	"github.com/katalvlaran/symreduce/colgraph"
)

// leaf is one discrete labeling discovered while walking the
// individualization-refinement search tree, together with the
// canonical edge encoding it produces.
type leaf struct {
	perm  colgraph.Permutation
	canon []byte
}

// result is the full analysis of one graph: its canonical labeling,
// orbit partition, a generating set for Aut(G), and |Aut(G)|.
type result struct {
	canonical colgraph.Permutation
	orbits    []int
	gens      []colgraph.Permutation
	autSize   int
}

// analyze walks every root-to-leaf path of the refinement search tree,
// groups the leaves by the canonical edge-encoding they produce, and
// derives the canonical labeling, Aut(G) generators and orbits, and
// |Aut(G)| from the group sharing the lexicographically smallest
// encoding (see package doc for why that group is exactly a coset of
// Aut(G)).
func analyze(g *colgraph.Graph) *result {
	n := g.NumVertices()
	var leaves []leaf
	search(g, initialPartition(g), &leaves)

	best := 0
	for i := 1; i < len(leaves); i++ {
		if bytes.Compare(leaves[i].canon, leaves[best].canon) < 0 {
			best = i
		}
	}
	canonicalLeaf := leaves[best]
	canonicalInv := canonicalLeaf.perm.Invert()

	var gens []colgraph.Permutation
	for _, lf := range leaves {
		if !bytes.Equal(lf.canon, canonicalLeaf.canon) {
			continue
		}
		// rho = canonicalLeaf.perm^-1 ∘ lf.perm is an automorphism of g:
		// both labelings produce the identical canonical encoding, so
		// sending each vertex to its lf position and back through the
		// canonical leaf maps edges of g to edges of g.
		rho := canonicalInv.Compose(lf.perm)
		gens = append(gens, rho)
	}

	orbits := orbitsFromGenerators(n, gens)

	return &result{
		canonical: canonicalLeaf.perm,
		orbits:    orbits,
		gens:      gens,
		autSize:   len(gens),
	}
}

func search(g *colgraph.Graph, pi partition, leaves *[]leaf) {
	pi = refine(g, pi)
	if pi.discrete() {
		perm := pi.toPermutation()
		*leaves = append(*leaves, leaf{perm: perm, canon: canonicalEncoding(g, perm)})
		return
	}
	idx := pi.firstNonSingleton()
	targets := append(cell(nil), pi[idx]...)
	for _, v := range targets {
		search(g, pi.individualize(idx, v), leaves)
	}
}

// canonicalEncoding returns, for labeling perm, one byte per unordered
// vertex pair (i<j) in row-major order, 1 if the pair is an edge under
// perm and 0 otherwise. Lexicographic comparison of these byte slices
// is the total order over labelings that canonical_labeling minimizes.
func canonicalEncoding(g *colgraph.Graph, perm colgraph.Permutation) []byte {
	n := g.NumVertices()
	pos := perm.Invert() // pos[p] = vertex currently at position p
	out := make([]byte, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if g.HasEdge(pos[i], pos[j]) {
				out = append(out, 1)
			} else {
				out = append(out, 0)
			}
		}
	}
	return out
}

// orbitsFromGenerators computes Aut(G)-orbits as the connected
// components of the graph with an edge (v, gen(v)) for every generator
// gen and every vertex v — the standard orbit/connectivity
// equivalence for a permutation group given by generators.
func orbitsFromGenerators(n int, gens []colgraph.Permutation) []int {
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}
		return x
	}
	union := func(a, b int) {
		ra, rb := find(a), find(b)
		if ra != rb {
			parent[ra] = rb
		}
	}
	for _, gen := range gens {
		for v, gv := range gen {
			union(v, gv)
		}
	}
	root := make([]int, n)
	for v := range root {
		root[v] = find(v)
	}
	// Normalize to dense, ascending orbit ids for determinism.
	ids := make(map[int]int)
	var order []int
	for v := 0; v < n; v++ {
		if _, ok := ids[root[v]]; !ok {
			ids[root[v]] = len(order)
			order = append(order, root[v])
		}
	}
	out := make([]int, n)
	for v := 0; v < n; v++ {
		out[v] = ids[root[v]]
	}
	return out
}
