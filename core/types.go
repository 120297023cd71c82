// Package core defines the Graph, Vertex and Edge types of the Dependency
// Graph and the sentinel errors returned by its primitives.
//
// All core APIs use separate sync.RWMutex locks internally (muVert for vertices,
// muEdgeAdj for edges and adjacency), so a Graph can be read from many
// goroutines while a single writer mutates it.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrEdgeExists indicates the edge from→to is already present.
	ErrEdgeExists = errors.New("core: edge already exists")

	// ErrCycle indicates the requested mutation would introduce a directed cycle.
	ErrCycle = errors.New("core: edge would introduce a cycle")

	// ErrInDegreeExceeded indicates the child already holds the maximum number of parents.
	ErrInDegreeExceeded = errors.New("core: maximum in-degree exceeded")
)

// Vertex represents a variable in the graph.
//
// Metadata stores arbitrary key-value data (for instance the variable's
// cardinality) and is shared, not deep-copied, by Clone.
type Vertex struct {
	// ID is the unique identifier (variable name) for this Vertex.
	ID string

	// Metadata stores arbitrary user data. It is not deep-copied by Clone.
	Metadata map[string]interface{}
}

// Edge is a directed dependency From→To: From is a parent of To.
type Edge struct {
	// From is the parent variable.
	From string

	// To is the child variable.
	To string
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithMaxInDegree bounds the number of parents any vertex may hold.
// A non-positive limit disables the bound.
func WithMaxInDegree(limit int) GraphOption {
	return func(g *Graph) {
		if limit < 0 {
			limit = 0
		}
		g.maxInDegree = limit
	}
}

// Graph is the in-memory dependency graph.
//
// muVert protects the vertex catalog; muEdgeAdj protects both adjacency
// indexes. Lock order is always muVert before muEdgeAdj.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards children, parents and edgeCount

	maxInDegree int // 0 = unbounded

	vertices map[string]*Vertex // vertex ID → Vertex

	// children[from][to] and parents[to][from] mirror each other exactly.
	children  map[string]map[string]struct{}
	parents   map[string]map[string]struct{}
	edgeCount int
}

// NewGraph creates an empty Graph with the given options.
// By default the in-degree is unbounded.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices: make(map[string]*Vertex),
		children: make(map[string]map[string]struct{}),
		parents:  make(map[string]map[string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
