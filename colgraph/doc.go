// Package colgraph defines the vertex-colored undirected graph that the
// symmetry-reduction engine operates over: the base graph G0, and the
// per-level derived graphs G_l obtained from G0 by adding edges.
//
// Vertices are dense integers 0..n-1. Every vertex carries a color; two
// graphs are only ever compared, refined, or permuted within a single
// color scheme. A Graph is immutable once built: deriving a new graph
// (WithEdges) never mutates the receiver, which is what lets the search
// engine hold many short-lived per-candidate graphs without needing the
// concurrency guards the teacher library uses for its long-lived mutable
// Graph (see DESIGN.md — this engine is single-threaded by contract).
package colgraph
