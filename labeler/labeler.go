package labeler

import (
	"errors"

	"github.com/katalvlaran/symreduce/colgraph"
)

// ErrContractViolation wraps any condition in which a Labeler
// implementation fails to uphold the §4.1 contract (for example, a
// generator stream that cannot cover an orbit). These are programmer
// errors per spec §7(ii): the caller should abort with a diagnostic,
// never retry.
var ErrContractViolation = errors.New("labeler: contract violation")

// Labeler is the external collaborator of spec §4.1. Implementations
// must be deterministic: repeated calls on an equal graph and color
// partition must return bit-identical results.
type Labeler interface {
	// CanonicalLabeling returns a bijection {0..n-1}->{0..n-1} such that
	// two graphs are isomorphic iff their images under this mapping
	// produce identical sorted edge sets.
	CanonicalLabeling(g *colgraph.Graph) (colgraph.Permutation, error)

	// Orbits returns the Aut(G) orbit id of every vertex: Orbits(g)[u]
	// == Orbits(g)[v] iff u and v are in the same orbit.
	Orbits(g *colgraph.Graph) ([]int, error)

	// Generators returns a finite, ordered, restartable sequence of
	// permutations guaranteed to generate Aut(G).
	Generators(g *colgraph.Graph) ([]colgraph.Permutation, error)

	// StabilizerIndices returns a finite sequence of positive integers
	// whose product is |Aut(G)|.
	StabilizerIndices(g *colgraph.Graph) ([]int, error)
}
