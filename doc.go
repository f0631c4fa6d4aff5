// Package symreduce enumerates canonical symmetry-reduced partial
// assignments over a vertex-colored graph: given a base graph G0, a
// set of variable vertices and a set of value vertices, it walks the
// orbits of Aut(G0) to produce one representative per equivalence
// class of partial assignments, up to a target prefix length or an
// automorphism-group-size threshold.
//
// The module is organized under these subpackages:
//
//	colgraph/           — vertex-colored undirected graph and permutations
//	labeler/            — canonical labeler contract
//	labeler/refinement/ — a pure-Go individualization-refinement labeler
//	transversal/        — orbit transversal builder and orbit-min indicator
//	selector/           — next-prefix-vertex orbit selector
//	problem/            — the immutable inputs to one search run
//	prefix/             — the per-level prefix/traversal/orbit state
//	search/             — the next_assignment search engine
//	symio/              — CNF / symmetry-graph / prefix text formats
//	cmd/symreduce/      — the command-line front end
package symreduce
