// Package transversal builds, for a graph G and a root vertex, a
// transversal of the root's Aut(G) orbit (spec §4.2): one permutation
// per orbit element carrying the root to it, by sweeping the
// labeler's generator stream breadth-first from the root — the same
// queue-driven shape as the teacher's bfs package, applied to orbit
// membership instead of graph adjacency.
//
// It also implements the orbit-min indicator (spec §4.3): the boolean
// vector marking, per Aut(G) orbit, its lowest-indexed vertex.
package transversal
