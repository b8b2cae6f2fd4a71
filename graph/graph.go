// Package graph implements the labeled simple graphs the proof protocols
// operate on: an immutable adjacency representation, uniform permutation
// sampling, and a brute-force isomorphism oracle.
package graph

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/xerrors"
)

// Sentinel errors for graph operations.
var (
	// ErrInvalidSize indicates a negative vertex count.
	ErrInvalidSize = errors.New("graph: invalid size")

	// ErrVertexOutOfRange indicates a vertex index outside [0, n).
	ErrVertexOutOfRange = errors.New("graph: vertex out of range")

	// ErrDimensionMismatch indicates a permutation whose length does not
	// match the graph's vertex count.
	ErrDimensionMismatch = errors.New("graph: dimension mismatch")

	// ErrLoopNotAllowed indicates a self-loop in the edge list.
	ErrLoopNotAllowed = errors.New("graph: self-loop not allowed")
)

// Edge is an undirected edge between two vertex indices.
type Edge struct {
	U int
	V int
}

// Graph is an immutable labeled simple graph over vertices 0..n-1.
// Adjacency is symmetric; there are no self-loops and no multi-edges.
// A Graph is never mutated after construction, so it is safe to share
// across goroutines.
type Graph struct {
	n   int
	adj [][]bool
}

// New builds a graph with n vertices from an edge list. Duplicate and
// mirrored edges collapse into a single undirected edge. It returns
// ErrInvalidSize for negative n, ErrVertexOutOfRange for an endpoint
// outside [0, n), and ErrLoopNotAllowed for a self-loop.
func New(n int, edges []Edge) (*Graph, error) {
	if n < 0 {
		return nil, xerrors.Errorf("new graph with %d vertices: %w", n, ErrInvalidSize)
	}

	adj := make([][]bool, n)
	for i := range adj {
		adj[i] = make([]bool, n)
	}

	for _, e := range edges {
		if e.U < 0 || e.U >= n || e.V < 0 || e.V >= n {
			return nil, xerrors.Errorf("edge (%d,%d) on %d vertices: %w",
				e.U, e.V, n, ErrVertexOutOfRange)
		}
		if e.U == e.V {
			return nil, xerrors.Errorf("edge (%d,%d): %w", e.U, e.V, ErrLoopNotAllowed)
		}

		adj[e.U][e.V] = true
		adj[e.V][e.U] = true
	}

	return &Graph{n: n, adj: adj}, nil
}

// MustNew is New that panics on error. Intended for fixed demo and test
// graphs whose edge lists are known to be well-formed.
func MustNew(n int, edges []Edge) *Graph {
	g, err := New(n, edges)
	if err != nil {
		panic(err)
	}
	return g
}

// NumVertices returns the number of vertices.
func (g *Graph) NumVertices() int {
	return g.n
}

// NumEdges returns the number of undirected edges.
func (g *Graph) NumEdges() int {
	count := 0
	for u := 0; u < g.n; u++ {
		for v := u + 1; v < g.n; v++ {
			if g.adj[u][v] {
				count++
			}
		}
	}
	return count
}

// HasEdge reports whether the undirected edge (u,v) exists. It returns
// ErrVertexOutOfRange if either index lies outside [0, n).
func (g *Graph) HasEdge(u, v int) (bool, error) {
	if u < 0 || u >= g.n {
		return false, xerrors.Errorf("vertex %d on %d vertices: %w", u, g.n, ErrVertexOutOfRange)
	}
	if v < 0 || v >= g.n {
		return false, xerrors.Errorf("vertex %d on %d vertices: %w", v, g.n, ErrVertexOutOfRange)
	}
	return g.adj[u][v], nil
}

// Degrees returns the degree of every vertex, indexed by vertex.
func (g *Graph) Degrees() []int {
	degrees := make([]int, g.n)
	for u := 0; u < g.n; u++ {
		for v := 0; v < g.n; v++ {
			if g.adj[u][v] {
				degrees[u]++
			}
		}
	}
	return degrees
}

// degreeSequence returns the degrees sorted ascending. Two isomorphic
// graphs necessarily share it, which makes it a cheap pruning key.
func (g *Graph) degreeSequence() []int {
	degrees := g.Degrees()
	sort.Ints(degrees)
	return degrees
}

// Permute returns a new graph in which vertex i carries the label p[i]:
// the result has edge (p[u], p[v]) exactly where g has edge (u, v). The
// receiver is left untouched. It returns ErrDimensionMismatch when the
// permutation's length differs from the vertex count.
func (g *Graph) Permute(p Permutation) (*Graph, error) {
	if len(p) != g.n {
		return nil, xerrors.Errorf("permutation of length %d on %d vertices: %w",
			len(p), g.n, ErrDimensionMismatch)
	}
	if !p.Valid() {
		return nil, xerrors.Errorf("not a bijection %v: %w", p, ErrDimensionMismatch)
	}

	adj := make([][]bool, g.n)
	for i := range adj {
		adj[i] = make([]bool, g.n)
	}
	for u := 0; u < g.n; u++ {
		for v := 0; v < g.n; v++ {
			if g.adj[u][v] {
				adj[p[u]][p[v]] = true
			}
		}
	}

	return &Graph{n: g.n, adj: adj}, nil
}

// Equals reports exact structural equality: same vertex count and the
// same labeled adjacency. This is equality of labeled graphs, not
// isomorphism.
func (g *Graph) Equals(other *Graph) bool {
	if other == nil || g.n != other.n {
		return false
	}
	for u := 0; u < g.n; u++ {
		for v := 0; v < g.n; v++ {
			if g.adj[u][v] != other.adj[u][v] {
				return false
			}
		}
	}
	return true
}

// Edges returns the undirected edge list with u < v, ordered
// lexicographically.
func (g *Graph) Edges() []Edge {
	var edges []Edge
	for u := 0; u < g.n; u++ {
		for v := u + 1; v < g.n; v++ {
			if g.adj[u][v] {
				edges = append(edges, Edge{U: u, V: v})
			}
		}
	}
	return edges
}

// String renders the graph as "n=4 {(0,1) (1,2)}".
func (g *Graph) String() string {
	parts := make([]string, 0, g.NumEdges())
	for _, e := range g.Edges() {
		parts = append(parts, fmt.Sprintf("(%d,%d)", e.U, e.V))
	}
	return fmt.Sprintf("n=%d {%s}", g.n, strings.Join(parts, " "))
}
