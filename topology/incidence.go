// Package topology computes the derived incidence structures the repair
// pipeline's later stages read: which triangles touch which undirected
// edge, and which undirected edges are boundary (incidence 1) or
// non-manifold (incidence above 2). These structures are rebuilt from scratch on every pass
// rather than maintained incrementally (see the driver's design notes).
package topology

import "github.com/kilnforge/meshrepair/types"

// EdgeIncidence maps an undirected edge to the indices (into the caller's
// triangle slice) of every triangle that contains it.
type EdgeIncidence map[types.Edge][]int

// BuildEdgeIncidence walks every triangle's three edges and records which
// triangles touch each one. The triangle-index lists preserve ascending
// insertion order, i.e. ascending triangle index.
func BuildEdgeIncidence(triangles []types.Triangle) EdgeIncidence {
	inc := make(EdgeIncidence, len(triangles))
	for ti, tri := range triangles {
		for _, e := range tri.Edges() {
			inc[e] = append(inc[e], ti)
		}
	}
	return inc
}

// Count returns the number of triangles incident to edge e.
func (inc EdgeIncidence) Count(e types.Edge) int {
	return len(inc[e])
}

// MaxIncidence returns the greatest incidence count over all edges, or 0
// if inc is empty.
func (inc EdgeIncidence) MaxIncidence() int {
	max := 0
	for _, tris := range inc {
		if len(tris) > max {
			max = len(tris)
		}
	}
	return max
}

// NonManifoldEdges returns the edges with incidence strictly greater
// than 2, in no particular order.
func (inc EdgeIncidence) NonManifoldEdges() []types.Edge {
	var edges []types.Edge
	for e, tris := range inc {
		if len(tris) > 2 {
			edges = append(edges, e)
		}
	}
	return edges
}

// BoundaryEdges returns the edges with incidence exactly 1, in no
// particular order.
func (inc EdgeIncidence) BoundaryEdges() []types.Edge {
	var edges []types.Edge
	for e, tris := range inc {
		if len(tris) == 1 {
			edges = append(edges, e)
		}
	}
	return edges
}
