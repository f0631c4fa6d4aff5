// Package symio implements the bit-for-bit text formats of spec §6:
// CNF, symmetry graph, variable/value declarations and prefix on the
// input side; textual, CNF re-emission and incremental-cube on the
// output side. Parsing is line-oriented and defers semantic
// validation (e.g. the orbit-union / fixed-point invariants) to
// problem.Problem.Validate; this package only enforces the formats'
// own syntactic rules.
package symio
