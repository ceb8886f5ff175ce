package types

// HalfEdge represents a directed connection between two vertices, oriented
// by the triangle that carries it in the order From -> To.
//
// Unlike Edge, a HalfEdge is not canonicalized: HalfEdge{a, b} and
// HalfEdge{b, a} are distinct values. Two triangles sharing an edge with
// consistent winding produce opposite-direction half-edges for that edge;
// a boundary edge produces exactly one.
//
// Example:
//
//	he := types.NewHalfEdge(3, 5)  // directed 3 -> 5
//	he.Reverse()                   // directed 5 -> 3
type HalfEdge [2]VertexID

// NewHalfEdge creates a directed half-edge from -> to.
func NewHalfEdge(from, to VertexID) HalfEdge {
	return HalfEdge{from, to}
}

// From returns the origin vertex ID.
func (h HalfEdge) From() VertexID {
	return h[0]
}

// To returns the destination vertex ID.
func (h HalfEdge) To() VertexID {
	return h[1]
}

// Reverse returns the half-edge in the opposite direction.
func (h HalfEdge) Reverse() HalfEdge {
	return HalfEdge{h[1], h[0]}
}

// Undirected returns the canonical undirected Edge this half-edge projects to.
func (h HalfEdge) Undirected() Edge {
	return NewEdge(h[0], h[1])
}
