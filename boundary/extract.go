// Package boundary derives the directed boundary half-edge set from a
// triangle list: the edges incident to exactly one triangle, oriented by
// that triangle's winding.
package boundary

import (
	"github.com/kilnforge/meshrepair/topology"
	"github.com/kilnforge/meshrepair/types"
)

// Extract returns the directed boundary half-edges of triangles, derived
// directly from each boundary edge's single owning triangle. After
// nonmanifold.Resolve has run, every edge has incidence at most 2, so a
// boundary edge (incidence 1) has an unambiguous owning triangle and
// orientation. Half-edges are returned in triangle order, so the result
// is a deterministic function of the input.
func Extract(triangles []types.Triangle) []types.HalfEdge {
	inc := topology.BuildEdgeIncidence(triangles)

	var out []types.HalfEdge
	for _, tri := range triangles {
		for _, he := range tri.HalfEdges() {
			if inc.Count(he.Undirected()) == 1 {
				out = append(out, he)
			}
		}
	}
	return out
}
