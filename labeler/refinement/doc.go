// Package refinement implements labeler.Labeler using
// individualization-refinement: the technique McKay's nauty is built
// on, and the same family of algorithm sketched by the canonical-hash
// contract in the retrieval pack's nauty cgo benchmark (a
// densenauty(..., getcanon=TRUE, ...) call over an adjacency matrix).
// This package reimplements the idea in pure Go — nauty itself is a C
// library with no Go module, so it cannot be wired as a dependency —
// and borrows its partition-refinement shape from the stable-partition
// computation in gonum's RDF canonicalization code
// (graph/formats/rdf/iso_canonical.go), adapted from hash-refinement
// over RDF terms to 1-WL color refinement over graph vertices.
//
// The algorithm, in brief:
//
//  1. Start from the ordered partition induced by vertex color.
//  2. Refine to a fixpoint: repeatedly split any cell whose members
//     disagree on their neighbor-count signature against the other
//     cells, ordering the resulting sub-cells by that signature.
//  3. If the partition is discrete (every cell a singleton) it is a
//     leaf: the flattened cell order is a permutation (a labeling).
//  4. Otherwise individualize the first non-singleton cell: branch on
//     every vertex it contains, in ascending order, each branch
//     refining further.
//
// Every root-to-leaf path is explored (no pruning), which keeps the
// implementation simple and correct for the modest instance sizes this
// engine targets; it trades nauty's automorphism-pruned search for
// straightforward, auditable code. Two leaves produce the same
// canonical encoding of the graph iff the permutation carrying one to
// the other is an automorphism — which is what lets a single pass over
// the leaf set recover the canonical form, the full automorphism
// group, and the orbit partition together.
package refinement
