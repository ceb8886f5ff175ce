package types

// Triangle represents an ordered triplet of vertices forming a triangle.
//
// Winding (the order a, b, c) is informational only: the repair pipeline
// preserves it where possible but never enforces global consistency.
//
// Example:
//
//	t := types.Triangle{0, 1, 2}
type Triangle [3]VertexID

// NewTriangle creates a triangle from three vertex IDs.
func NewTriangle(v1, v2, v3 VertexID) Triangle {
	return Triangle{v1, v2, v3}
}

// V1 returns the first vertex.
func (t Triangle) V1() VertexID {
	return t[0]
}

// V2 returns the second vertex.
func (t Triangle) V2() VertexID {
	return t[1]
}

// V3 returns the third vertex.
func (t Triangle) V3() VertexID {
	return t[2]
}

// Vertices returns all three vertex IDs as a slice.
func (t Triangle) Vertices() []VertexID {
	return []VertexID{t[0], t[1], t[2]}
}

// Edges returns the three edges of this triangle in canonical form.
//
// The edges are returned in the order: (v1,v2), (v2,v3), (v3,v1).
func (t Triangle) Edges() [3]Edge {
	return [3]Edge{
		NewEdge(t[0], t[1]),
		NewEdge(t[1], t[2]),
		NewEdge(t[2], t[0]),
	}
}

// HalfEdges returns the three directed half-edges carried by this
// triangle's winding, in the order (v1->v2), (v2->v3), (v3->v1).
func (t Triangle) HalfEdges() [3]HalfEdge {
	return [3]HalfEdge{
		NewHalfEdge(t[0], t[1]),
		NewHalfEdge(t[1], t[2]),
		NewHalfEdge(t[2], t[0]),
	}
}

// IsDegenerate reports whether the triangle repeats any vertex index.
func (t Triangle) IsDegenerate() bool {
	return t[0] == t[1] || t[1] == t[2] || t[0] == t[2]
}

// SortedKey returns a canonical, winding-independent key for this
// triangle's vertex set, suitable for duplicate detection.
func (t Triangle) SortedKey() [3]VertexID {
	a, b, c := t[0], t[1], t[2]
	if a > b {
		a, b = b, a
	}
	if b > c {
		b, c = c, b
	}
	if a > b {
		a, b = b, a
	}
	return [3]VertexID{a, b, c}
}
