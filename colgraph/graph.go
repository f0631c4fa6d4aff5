package colgraph

import "fmt"

// NewGraph builds an immutable colored graph on n vertices with the
// given per-vertex colors and undirected edge list. Edges must have
// distinct endpoints and must not repeat (in either orientation).
//
// Complexity: O(n + m).
func NewGraph(n int, colors []int, edges [][2]int) (*Graph, error) {
	if len(colors) != n {
		return nil, fmt.Errorf("%w: got %d colors for %d vertices", ErrColorCountMismatch, len(colors), n)
	}

	adj := make([]map[int]struct{}, n)
	for i := range adj {
		adj[i] = make(map[int]struct{})
	}

	g := &Graph{n: n, colors: append([]int(nil), colors...), adj: adj}
	for _, e := range edges {
		if err := g.addEdge(e[0], e[1]); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func (g *Graph) addEdge(u, v int) error {
	if u < 0 || u >= g.n || v < 0 || v >= g.n {
		return fmt.Errorf("%w: (%d,%d) for n=%d", ErrVertexOutOfRange, u, v, g.n)
	}
	if u == v {
		return fmt.Errorf("%w: vertex %d", ErrSelfLoop, u)
	}
	if _, ok := g.adj[u][v]; ok {
		return fmt.Errorf("%w: (%d,%d)", ErrDuplicateEdge, u, v)
	}
	g.adj[u][v] = struct{}{}
	g.adj[v][u] = struct{}{}
	g.numEdge++
	return nil
}

// WithEdges returns a new Graph equal to g plus the given extra edges.
// g is never mutated. Adding an edge that already exists is a no-op
// (the search engine may re-derive G_l+1 = G_l + (p_l, R[0]) more than
// once across a rebuilt prefix without that being an error).
//
// Complexity: O(n + m) to clone the adjacency, O(k) for k extra edges.
func (g *Graph) WithEdges(extra ...[2]int) (*Graph, error) {
	adj := make([]map[int]struct{}, g.n)
	for i := range adj {
		adj[i] = make(map[int]struct{}, len(g.adj[i]))
		for u := range g.adj[i] {
			adj[i][u] = struct{}{}
		}
	}
	out := &Graph{n: g.n, colors: g.colors, adj: adj, numEdge: g.numEdge}
	for _, e := range extra {
		u, v := e[0], e[1]
		if u < 0 || u >= g.n || v < 0 || v >= g.n {
			return nil, fmt.Errorf("%w: (%d,%d) for n=%d", ErrVertexOutOfRange, u, v, g.n)
		}
		if u == v {
			return nil, fmt.Errorf("%w: vertex %d", ErrSelfLoop, u)
		}
		if _, ok := out.adj[u][v]; ok {
			continue
		}
		out.adj[u][v] = struct{}{}
		out.adj[v][u] = struct{}{}
		out.numEdge++
	}
	return out, nil
}

// Permuted returns a new Graph obtained by relabeling every vertex v to
// perm[v]; the returned graph's color of position perm[v] is g's color
// of v, and (perm[u],perm[v]) is an edge iff (u,v) was an edge of g.
func (g *Graph) Permuted(perm Permutation) (*Graph, error) {
	if err := perm.Validate(g.n); err != nil {
		return nil, err
	}
	colors := make([]int, g.n)
	for v := 0; v < g.n; v++ {
		colors[perm[v]] = g.colors[v]
	}
	edges := make([][2]int, 0, g.numEdge)
	for _, e := range g.Edges() {
		edges = append(edges, [2]int{perm[e[0]], perm[e[1]]})
	}
	return NewGraph(g.n, colors, edges)
}
