package refinement

import (
	"github.com/katalvlaran/symreduce/colgraph"
	"github.com/katalvlaran/symreduce/labeler"
)

// Labeler is a pure-Go labeler.Labeler backed by individualization
// refinement (see package doc). It caches the analysis of the most
// recently seen graph: the search engine calls several of the four
// operations back-to-back on the same transient graph H within one
// Case-A iteration (spec §4.5), and the engine's single-threaded,
// non-reentrant contract (§5) guarantees no interleaving that would
// make a single-slot cache observe a stale graph.
type Labeler struct {
	lastGraph *colgraph.Graph
	lastRes   *result
}

// New returns a ready-to-use Labeler.
func New() *Labeler {
	return &Labeler{}
}

var _ labeler.Labeler = (*Labeler)(nil)

func (l *Labeler) analyzeCached(g *colgraph.Graph) *result {
	if l.lastGraph == g && l.lastRes != nil {
		return l.lastRes
	}
	res := analyze(g)
	l.lastGraph = g
	l.lastRes = res
	return res
}

// CanonicalLabeling implements labeler.Labeler.
func (l *Labeler) CanonicalLabeling(g *colgraph.Graph) (colgraph.Permutation, error) {
	return l.analyzeCached(g).canonical.Clone(), nil
}

// Orbits implements labeler.Labeler.
func (l *Labeler) Orbits(g *colgraph.Graph) ([]int, error) {
	res := l.analyzeCached(g)
	out := make([]int, len(res.orbits))
	copy(out, res.orbits)
	return out, nil
}

// Generators implements labeler.Labeler.
func (l *Labeler) Generators(g *colgraph.Graph) ([]colgraph.Permutation, error) {
	res := l.analyzeCached(g)
	out := make([]colgraph.Permutation, len(res.gens))
	for i, p := range res.gens {
		out[i] = p.Clone()
	}
	return out, nil
}

// StabilizerIndices implements labeler.Labeler. This implementation
// computes |Aut(G)| directly (as the size of the canonical leaf's
// equivalence class), so it reports it as a single-element sequence —
// a valid instance of the §4.1 contract, which only requires a
// sequence whose product is |Aut(G)|, not a particular stabilizer
// chain.
func (l *Labeler) StabilizerIndices(g *colgraph.Graph) ([]int, error) {
	res := l.analyzeCached(g)
	return []int{res.autSize}, nil
}
