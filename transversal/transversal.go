package transversal

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/symreduce/colgraph"
	"github.com/katalvlaran/symreduce/labeler"
)

// ErrGraphNil is returned if a nil graph pointer is passed.
var ErrGraphNil = errors.New("transversal: graph is nil")

// ErrRootOutOfRange is returned when root is not a valid vertex of g.
var ErrRootOutOfRange = errors.New("transversal: root out of range")

// Transversal is the result of Build: Images[j] is the j-th element of
// root's Aut(G) orbit in ascending vertex order, and Perms[j] is a
// permutation in Aut(G) with Perms[j].Apply(Root) == Images[j]. The
// permutation for the root's own image, Perms[IndexOf(Root)], is always
// the identity; it is Perms[0] only when Root is its orbit's minimum.
type Transversal struct {
	Root   int
	Images []int
	Perms  []colgraph.Permutation
}

// IndexOf returns the position j such that Images[j] == v, or -1.
func (t *Transversal) IndexOf(v int) int {
	for j, u := range t.Images {
		if u == v {
			return j
		}
	}
	return -1
}

// Build constructs a transversal of root's Aut(g) orbit.
//
// Algorithm (spec §4.2): seed the root as "done" with the identity
// permutation; repeatedly sweep the labeler's generators, extending
// every done element u via π to the new element π(u) whenever π(u) is
// not yet done; stop when every orbit element is done. If the
// generator stream cannot reach every orbit element this is a
// contract violation of the labeler (spec §7(ii)): Build aborts with a
// wrapped labeler.ErrContractViolation rather than returning a partial
// transversal.
func Build(lab labeler.Labeler, g *colgraph.Graph, root int) (*Transversal, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	n := g.NumVertices()
	if root < 0 || root >= n {
		return nil, fmt.Errorf("%w: root %d, n=%d", ErrRootOutOfRange, root, n)
	}

	gens, err := lab.Generators(g)
	if err != nil {
		return nil, err
	}
	orbits, err := lab.Orbits(g)
	if err != nil {
		return nil, err
	}
	rootOrbit := orbits[root]

	var orbitElems []int
	for v := 0; v < n; v++ {
		if orbits[v] == rootOrbit {
			orbitElems = append(orbitElems, v)
		}
	}
	sort.Ints(orbitElems)

	done := make(map[int]colgraph.Permutation, len(orbitElems))
	done[root] = colgraph.Identity(n)

	for {
		progress := false
		frontier := make([]int, 0, len(done))
		for v := range done {
			frontier = append(frontier, v)
		}
		sort.Ints(frontier)

		for _, gen := range gens {
			for _, u := range frontier {
				tau := done[u]
				v := gen.Apply(u)
				if _, ok := done[v]; ok {
					continue
				}
				done[v] = gen.Compose(tau)
				progress = true
			}
		}
		if !progress {
			break
		}
	}

	if len(done) != len(orbitElems) {
		return nil, fmt.Errorf("%w: generators of root %d's stabilizing graph covered %d of %d orbit elements",
			labeler.ErrContractViolation, root, len(done), len(orbitElems))
	}

	perms := make([]colgraph.Permutation, len(orbitElems))
	for j, v := range orbitElems {
		tau := done[v]
		if tau.Apply(root) != v {
			return nil, fmt.Errorf("%w: transversal permutation for orbit element %d does not carry root %d to it",
				labeler.ErrContractViolation, v, root)
		}
		perms[j] = tau
	}

	return &Transversal{Root: root, Images: orbitElems, Perms: perms}, nil
}
