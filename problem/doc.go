// Package problem holds the immutable inputs to one symmetry-reduction
// run (spec §3): the base graph G0, the ordered variable vertex set V,
// the ordered value vertex set R, the target prefix length K, and the
// emission threshold t. It also enforces the two structural invariants
// the spec requires at initialization: V must be a union of Aut(G0)
// orbits, and every value vertex must be a fixed point of Aut(G0).
package problem
