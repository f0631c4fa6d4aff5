package problem

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/symreduce/colgraph"
	"github.com/katalvlaran/symreduce/labeler"
)

// ErrVariablesNotOrbitUnion is the fatal input error of spec §3/§7(i):
// the variable vertex set is not a union of Aut(G0) orbits.
var ErrVariablesNotOrbitUnion = errors.New("problem: variable vertex set is not a union of Aut(G0) orbits")

// ErrValueNotFixed is the fatal input error of spec §3/§7(i): a value
// vertex is not a fixed point of Aut(G0).
var ErrValueNotFixed = errors.New("problem: value vertex is not a fixed point of Aut(G0)")

// ErrEmptyValues is a fatal input error: R must be non-empty (r >= 1).
var ErrEmptyValues = errors.New("problem: value vertex set is empty")

// ErrDuplicatePrefixVertex is a fatal input error: an initial prefix
// listed the same vertex twice.
var ErrDuplicatePrefixVertex = errors.New("problem: prefix vertex repeated")

// ErrPrefixTooLong is a fatal input error: the initial prefix already
// exceeds the target length K.
var ErrPrefixTooLong = errors.New("problem: initial prefix length exceeds K")

// ErrPrefixVertexNotVariable is a fatal input error: an initial prefix
// vertex is not a member of Vars.
var ErrPrefixVertexNotVariable = errors.New("problem: prefix vertex is not a variable vertex")

// Problem bundles the immutable inputs of one engine run.
type Problem struct {
	G0 *colgraph.Graph

	// Vars is V, in ascending declaration order.
	Vars []int

	// Values is R, in ascending declaration order; Values[0] is the
	// "base" value every per-level graph edge is built against.
	Values []int

	// InitialPrefix is a caller-supplied starting prefix (may be
	// empty); it is adopted as-is, without consulting the selector.
	InitialPrefix []int

	// K is the target prefix length.
	K int

	// Threshold is t: a candidate whose |Aut(H)| is <= Threshold is
	// emitted without further extension.
	Threshold int
}

// Validate enforces the spec §3 invariants using lab to compute
// Aut(G0)'s orbit partition. It must be called once, at initialization
// (spec §4.6 step 3); failures are fatal input errors (spec §7(i)).
func (p *Problem) Validate(lab labeler.Labeler) error {
	if len(p.Values) == 0 {
		return ErrEmptyValues
	}
	if len(p.InitialPrefix) > p.K {
		return fmt.Errorf("%w: prefix length %d, K=%d", ErrPrefixTooLong, len(p.InitialPrefix), p.K)
	}
	seen := make(map[int]bool, len(p.InitialPrefix))
	for _, v := range p.InitialPrefix {
		if seen[v] {
			return fmt.Errorf("%w: vertex %d", ErrDuplicatePrefixVertex, v)
		}
		seen[v] = true
	}

	orbits, err := lab.Orbits(p.G0)
	if err != nil {
		return err
	}

	inVars := make(map[int]bool, len(p.Vars))
	for _, v := range p.Vars {
		inVars[v] = true
	}
	for _, v := range p.InitialPrefix {
		if !inVars[v] {
			return fmt.Errorf("%w: %d", ErrPrefixVertexNotVariable, v)
		}
	}
	orbitMembers := make(map[int][]int)
	for v := 0; v < p.G0.NumVertices(); v++ {
		o := orbits[v]
		orbitMembers[o] = append(orbitMembers[o], v)
	}

	for _, v := range p.Vars {
		for _, u := range orbitMembers[orbits[v]] {
			if !inVars[u] {
				return fmt.Errorf("%w: vertex %d shares an orbit with variable %d but is not itself a variable",
					ErrVariablesNotOrbitUnion, u, v)
			}
		}
	}

	for _, v := range p.Values {
		if len(orbitMembers[orbits[v]]) != 1 {
			return fmt.Errorf("%w: value vertex %d", ErrValueNotFixed, v)
		}
	}

	return nil
}
