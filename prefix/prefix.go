package prefix

import (
	"github.com/katalvlaran/symreduce/colgraph"
	"github.com/katalvlaran/symreduce/labeler"
	"github.com/katalvlaran/symreduce/problem"
	"github.com/katalvlaran/symreduce/transversal"
)

// Level holds the per-level state of spec §3 for prefix position l:
// the graph trav_l was built against, the traversal itself, its image
// indicator, the orbit_l indicator (computed against G_{l+1}), the
// seed_min_l indicator (set by the caller once it knows H and nu, per
// spec §4.5), and the generation counters.
type Level struct {
	Graph   *colgraph.Graph
	Trav    *transversal.Transversal
	TravInd []bool
	Orbit   []bool
	SeedMin []bool

	StatGen int
	StatCan int
	StatOut int
}

// Manager owns P and the per-level arena.
type Manager struct {
	prob   *problem.Problem
	lab    labeler.Labeler
	p      []int
	levels []*Level
}

// New returns a Manager with an empty prefix.
func New(prob *problem.Problem, lab labeler.Labeler) *Manager {
	return &Manager{prob: prob, lab: lab}
}

// Prefix returns P, the ordered prefix vertices appended so far.
func (m *Manager) Prefix() []int {
	return m.p
}

// Len returns len(P) == k.
func (m *Manager) Len() int {
	return len(m.p)
}

// Level returns the arena record for prefix position l.
func (m *Manager) Level(l int) *Level {
	return m.levels[l]
}

// Expand implements expand_prefix (spec §4.6): it appends p as the
// next prefix position, builds that level's traversal (root p) and
// trav_ind, and returns G_{l+1} = prevGraph + (p, R[0]).
//
// prevGraph is G_l; pass nil to have it derived from G0 by adding
// edges (P[j], R[0]) for j < l (the spec's "if prev_graph is null"
// branch). At l == 0, Problem.Validate is run first (spec step 3).
func (m *Manager) Expand(p int, prevGraph *colgraph.Graph) (*colgraph.Graph, error) {
	l := len(m.p)

	if l == 0 {
		if err := m.prob.Validate(m.lab); err != nil {
			return nil, err
		}
	}

	if prevGraph == nil {
		edges := make([][2]int, l)
		for j := 0; j < l; j++ {
			edges[j] = [2]int{m.p[j], m.prob.Values[0]}
		}
		var err error
		prevGraph, err = m.prob.G0.WithEdges(edges...)
		if err != nil {
			return nil, err
		}
	}

	trav, err := transversal.Build(m.lab, prevGraph, p)
	if err != nil {
		return nil, err
	}
	travInd := indicatorFromImages(prevGraph.NumVertices(), trav.Images)

	nextGraph, err := prevGraph.WithEdges([2]int{p, m.prob.Values[0]})
	if err != nil {
		return nil, err
	}

	orbit, err := sameOrbitIndicator(m.lab, nextGraph, p)
	if err != nil {
		return nil, err
	}

	m.p = append(m.p, p)
	m.levels = append(m.levels, &Level{
		Graph:   prevGraph,
		Trav:    trav,
		TravInd: travInd,
	})
	m.levels[l].Orbit = orbit
	return nextGraph, nil
}

func indicatorFromImages(n int, images []int) []bool {
	out := make([]bool, n)
	for _, v := range images {
		out[v] = true
	}
	return out
}

func sameOrbitIndicator(lab labeler.Labeler, g *colgraph.Graph, p int) ([]bool, error) {
	orbits, err := lab.Orbits(g)
	if err != nil {
		return nil, err
	}
	target := orbits[p]
	out := make([]bool, len(orbits))
	for v, o := range orbits {
		out[v] = o == target
	}
	return out, nil
}
