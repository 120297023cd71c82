// Package core provides the Dependency Graph used throughout meteobn: a
// thread-safe, in-memory directed acyclic graph whose vertices are variable
// names and whose edges denote direct probabilistic dependence
// (child conditioned on parents).
//
// The Graph G = (V,E) enforces its invariants at every mutation:
//
//   - Directed only: an edge From→To makes From a parent of To.
//   - Simple: no self-loops (ErrLoopNotAllowed), no parallel edges (ErrEdgeExists).
//   - Acyclic by construction: AddEdge and ReverseEdge reject any change that
//     would close a directed cycle (ErrCycle). A Graph that exists is a DAG.
//   - Optional in-degree bound (WithMaxInDegree): a node may never hold more
//     parents than the bound (ErrInDegreeExceeded).
//
// Adjacency is stored twice, as nested sets children[from][to] and
// parents[to][from], so Parents/Children/HasEdge are O(1) lookups and the
// cycle check is a single reachability walk from the would-be child.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error           // O(1), idempotent
//	HasVertex(id string) bool            // O(1)
//	RemoveVertex(id string) error        // O(deg(v))
//
//	// Edge lifecycle
//	AddEdge(from, to string) error       // O(V+E) worst case (cycle check)
//	RemoveEdge(from, to string) error    // O(1)
//	ReverseEdge(from, to string) error   // O(V+E) worst case (cycle check), atomic
//	CanAddEdge / CanReverseEdge          // dry-run variants returning the same sentinels
//
//	// Query
//	Parents(id) / Children(id)           // sorted IDs
//	InDegree(id)                         // number of parents
//	HasPath(from, to string) bool        // directed reachability
//	Vertices() []string                  // sorted
//	Edges() []Edge                       // sorted by (From, To)
//
//	// Cloning
//	Clone() *Graph                       // deep copy; learners mutate clones, never inputs
//
// Errors:
//
//	ErrEmptyVertexID     – zero-length vertex ID
//	ErrVertexNotFound    – missing vertex
//	ErrEdgeNotFound      – missing edge
//	ErrLoopNotAllowed    – from == to
//	ErrEdgeExists        – edge already present
//	ErrCycle             – mutation would introduce a directed cycle
//	ErrInDegreeExceeded  – mutation would exceed the configured in-degree bound
package core
