// Package search implements the symmetry-reduction search engine: a
// single-threaded, pull-based iterator over canonical prefix
// assignments (next_assignment). It drives the canonical labeler, the
// traversal builder, the orbit selector and the prefix manager through
// one LIFO work stack of frames, exactly as laid out for the levels
// they operate on.
//
// Each frame is an independent snapshot of the partial assignment
// (vars[0..l], vals[0..l]) at the level it was pushed for; Case A
// advances the value tried at a level, Case B advances the variable
// vertex a level is anchored on. The engine owns the stack and all
// level-indexed state for the life of the run.
package search
