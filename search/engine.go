package search

import (
	"errors"

	"github.com/katalvlaran/symreduce/colgraph"
	"github.com/katalvlaran/symreduce/labeler"
	"github.com/katalvlaran/symreduce/prefix"
	"github.com/katalvlaran/symreduce/problem"
	"github.com/katalvlaran/symreduce/selector"
	"github.com/katalvlaran/symreduce/transversal"
)

// autCap is the saturating ceiling for the reported automorphism-group
// size, 2^31-1 (spec §4.5e).
const autCap = (1 << 31) - 1

// frame is one entry of the work stack (spec §3): a self-contained
// snapshot of the partial assignment at the level it was pushed for.
// vars[i] and vals[i] hold the variable vertex and R-index tried at
// position i, for i in 0..level.
type frame struct {
	vars []int
	vals []int
}

func (f *frame) level() int { return len(f.vars) - 1 }

// Engine drives next_assignment (spec §4.5). It is not safe for
// concurrent use; each Engine owns its own labeler-facing state.
type Engine struct {
	prob *problem.Problem
	lab  labeler.Labeler
	mgr  *prefix.Manager
	opts engineOptions

	stack       []*frame
	initialized bool

	// prefixIdx is how many elements of Problem.InitialPrefix have been
	// adopted as prefix positions so far (spec §4.6's pre-set prefix
	// positions); once exhausted, later levels fall back to the
	// selector.
	prefixIdx int

	// lastGraph is G_k, the graph built by the most recent prefix
	// expansion; it is the "last-prefix graph" the selector is run
	// against when adopting a new prefix position (spec §4.5e).
	lastGraph *colgraph.Graph
}

// New constructs an Engine for prob using lab as the canonical
// labeler. A non-empty Problem.InitialPrefix is adopted as the leading
// prefix positions p0, p1, ... (spec §4.6); each is validated against
// Vars and prefix-length/duplication rules on the first call to Next.
func New(prob *problem.Problem, lab labeler.Labeler, opts ...Option) (*Engine, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Engine{prob: prob, lab: lab, mgr: prefix.New(prob, lab), opts: o}, nil
}

// wrapFatal promotes a labeler contract violation to a *FatalError;
// any other error (including input errors from problem.Validate) is
// returned unchanged.
func wrapFatal(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, labeler.ErrContractViolation) {
		return &FatalError{Err: err}
	}
	return err
}

// init performs the k=0 initialization of spec §4.5. If the caller
// supplied a non-empty Problem.InitialPrefix, its first element is
// adopted as p0 directly (spec §4.6's dead "a"/"f" branch: the
// selector is never consulted for a pre-set prefix position); the
// remaining levels are adopted the same way as expand grows them.
func (e *Engine) init() error {
	var p0 int
	if len(e.prob.InitialPrefix) > 0 {
		p0 = e.prob.InitialPrefix[0]
		e.prefixIdx = 1
	} else {
		used := make(map[int]bool, len(e.prob.Vars))
		var err error
		p0, err = selector.Select(e.lab, e.prob.G0, e.prob.Vars, used, nil)
		if err != nil {
			return wrapFatal(err)
		}
	}

	g1, err := e.mgr.Expand(p0, nil)
	if err != nil {
		return wrapFatal(err)
	}
	e.lastGraph = g1

	lvl0 := e.mgr.Level(0)
	seedMin0, err := transversal.OrbitMin(e.lab, e.prob.G0, nil)
	if err != nil {
		return wrapFatal(err)
	}
	lvl0.SeedMin = seedMin0

	v0, ok := lowestSeedMinImage(lvl0, seedMin0)
	if !ok {
		return fatalf(labeler.ErrContractViolation, "no seed_min_0 bit set among traversal images of %d", p0)
	}

	e.opts.logger.Debug("engine initialized", "p0", p0, "vars0", v0)
	e.stack = append(e.stack, &frame{vars: []int{v0}, vals: []int{0}})
	e.initialized = true
	return nil
}

func lowestSeedMinImage(lvl *prefix.Level, seedMin []bool) (int, bool) {
	for _, img := range lvl.Trav.Images {
		if seedMin[img] {
			return img, true
		}
	}
	return 0, false
}

// Next implements next_assignment(): it returns the next emission, or
// (nil, nil) once the work stack is exhausted.
func (e *Engine) Next() (*Record, error) {
	if !e.initialized {
		if err := e.init(); err != nil {
			return nil, err
		}
	}

	for {
		if len(e.stack) == 0 {
			return nil, nil
		}
		fr := e.stack[len(e.stack)-1]
		level := fr.level()
		lvl := e.mgr.Level(level)

		j := lvl.Trav.IndexOf(fr.vars[level])
		if j < 0 {
			return nil, fatalf(labeler.ErrContractViolation,
				"vars[%d]=%d is not an image of trav_%d", level, fr.vars[level], level)
		}
		cv := fr.vals[level]
		r := len(e.prob.Values)

		if cv < r {
			fr.vals[level] = cv + 1 // Case A: schedule the next value, frame stays in place.

			record, next, err := e.processCandidate(fr, level, j, cv)
			if err != nil {
				return nil, err
			}
			if record != nil {
				return record, nil
			}
			if next != nil {
				e.stack = append(e.stack, next)
			}
			continue
		}

		// Case B: advance the variable vertex at this level.
		e.stack = e.stack[:len(e.stack)-1]
		if nextVar, ok := e.nextSeedMinImage(lvl, fr.vars[level]); ok {
			fr.vars[level] = nextVar
			fr.vals[level] = 0
			e.stack = append(e.stack, fr)
		}
		// Otherwise the level is exhausted: implicit pop, already done above.
	}
}

// nextSeedMinImage scans trav_level's images in increasing order,
// starting just past current, for the first satisfying seed_min_level.
func (e *Engine) nextSeedMinImage(lvl *prefix.Level, current int) (int, bool) {
	idx := lvl.Trav.IndexOf(current)
	for j := idx + 1; j < len(lvl.Trav.Images); j++ {
		v := lvl.Trav.Images[j]
		if lvl.SeedMin[v] {
			return v, true
		}
	}
	return 0, false
}

// processCandidate implements Case A steps a-e for the candidate value
// R[cv] at fr's top level. It returns exactly one of: a Record to
// emit, a new frame to push (expansion), or neither (discarded
// candidate) — in which case the caller simply loops.
func (e *Engine) processCandidate(fr *frame, level, j, cv int) (*Record, *frame, error) {
	lvl := e.mgr.Level(level)
	tau := lvl.Trav.Perms[j]
	nu := tau.Invert()

	edges := make([][2]int, 0, level+1)
	for i := 0; i < level; i++ {
		edges = append(edges, [2]int{fr.vars[i], e.prob.Values[fr.vals[i]]})
	}
	edges = append(edges, [2]int{fr.vars[level], e.prob.Values[cv]})
	h, err := e.prob.G0.WithEdges(edges...)
	if err != nil {
		return nil, nil, err
	}

	lam, err := e.lab.CanonicalLabeling(h)
	if err != nil {
		return nil, nil, wrapFatal(err)
	}

	// lam maps each vertex to its canonical position; walk the positions
	// in order and test the vertex placed at each one.
	atPos := lam.Invert()
	n := h.NumVertices()
	q := -1
	for t := 0; t < n; t++ {
		if lvl.Orbit[nu.Apply(atPos[t])] {
			q = atPos[t]
			break
		}
	}
	if q == -1 {
		return nil, nil, fatalf(labeler.ErrContractViolation, "orbit_%d never matched any position of the canonical labeling of H", level)
	}
	lvl.StatGen++

	orbitsH, err := e.lab.Orbits(h)
	if err != nil {
		return nil, nil, wrapFatal(err)
	}
	if orbitsH[fr.vars[level]] != orbitsH[q] {
		e.opts.logger.Debug("candidate discarded", "level", level, "var", fr.vars[level], "value_idx", cv)
		return nil, nil, nil
	}
	lvl.StatCan++

	size := level + 1
	nvars := make([]int, size)
	nvals := make([]int, size)
	for i := 0; i < level; i++ {
		nvars[i] = nu.Apply(fr.vars[i])
		nvals[i] = fr.vals[i]
	}
	nvars[level] = nu.Apply(fr.vars[level])
	nvals[level] = cv

	stabIdx, err := e.lab.StabilizerIndices(h)
	if err != nil {
		return nil, nil, wrapFatal(err)
	}
	aut := 1
	for _, s := range stabIdx {
		aut *= s
		if aut > autCap || aut < 0 {
			aut = autCap
			break
		}
	}

	if size == e.prob.K || aut <= e.prob.Threshold {
		lvl.StatOut++
		values := make([]int, size)
		for i, vi := range nvals {
			values[i] = e.prob.Values[vi]
		}
		return &Record{Vars: nvars, Values: values, Aut: aut, Size: size}, nil, nil
	}

	next, err := e.expand(level, nvars, nvals, h, nu)
	if err != nil {
		return nil, nil, err
	}
	return nil, next, nil
}

// expand implements the "otherwise expand" branch of spec §4.5e.
func (e *Engine) expand(level int, nvars, nvals []int, h *colgraph.Graph, nu colgraph.Permutation) (*frame, error) {
	if level+1 >= e.mgr.Len() {
		var pSel int
		if e.prefixIdx < len(e.prob.InitialPrefix) {
			pSel = e.prob.InitialPrefix[e.prefixIdx]
			e.prefixIdx++
		} else {
			used := make(map[int]bool, e.mgr.Len())
			for _, pv := range e.mgr.Prefix() {
				used[pv] = true
			}
			prevTravInd := e.mgr.Level(level).TravInd
			var err error
			pSel, err = selector.Select(e.lab, e.lastGraph, e.prob.Vars, used, prevTravInd)
			if err != nil {
				return nil, wrapFatal(err)
			}
		}
		newGraph, err := e.mgr.Expand(pSel, e.lastGraph)
		if err != nil {
			return nil, wrapFatal(err)
		}
		e.lastGraph = newGraph
	}

	newLvl := e.mgr.Level(level + 1)
	seedMinNext, err := transversal.OrbitMin(e.lab, h, nu)
	if err != nil {
		return nil, wrapFatal(err)
	}
	newLvl.SeedMin = seedMinNext

	vnext, ok := lowestSeedMinImage(newLvl, seedMinNext)
	if !ok {
		return nil, fatalf(labeler.ErrContractViolation, "no seed_min_%d bit set among traversal images", level+1)
	}

	newVars := append(append(make([]int, 0, level+2), nvars...), vnext)
	newVals := append(append(make([]int, 0, level+2), nvals...), 0)
	return &frame{vars: newVars, vals: newVals}, nil
}
