package types

// Loop is an ordered sequence of vertex indices forming a simple directed
// cycle in the boundary half-edge graph: consecutive pairs (and the
// last-to-first pair) are directed half-edges, and no half-edge in the
// loop repeats.
//
// The loop is implicitly closed (the last vertex connects back to the
// first), so the first vertex should NOT be repeated at the end.
type Loop []VertexID

// NewLoop creates a loop from vertex IDs.
//
// The vertices should form a closed loop without repeating the first
// vertex at the end.
func NewLoop(vertices ...VertexID) Loop {
	return Loop(vertices)
}

// Len returns the number of vertices (equivalently, edges) in the loop.
func (l Loop) Len() int {
	return len(l)
}

// HalfEdges returns the directed half-edges of the loop in traversal
// order, closing the last vertex back to the first.
func (l Loop) HalfEdges() []HalfEdge {
	if len(l) == 0 {
		return nil
	}
	edges := make([]HalfEdge, len(l))
	for i := 0; i < len(l); i++ {
		next := (i + 1) % len(l)
		edges[i] = NewHalfEdge(l[i], l[next])
	}
	return edges
}
