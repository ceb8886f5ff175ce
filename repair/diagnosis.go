package repair

import (
	"github.com/kilnforge/meshrepair/topology"
	"github.com/kilnforge/meshrepair/types"
)

// Diagnosis measures the topological health of a triangle mesh without
// mutating it.
type Diagnosis struct {
	VertexCount          int
	TriangleCount        int
	BoundaryEdgeCount    int
	NonManifoldEdgeCount int
	IsWatertight         bool
}

// Diagnose computes a Diagnosis for (vertices, triangles). It is pure:
// it never modifies its arguments and has no side effects.
func Diagnose(vertices []types.Point, triangles []types.Triangle) Diagnosis {
	inc := topology.BuildEdgeIncidence(triangles)
	boundary := len(inc.BoundaryEdges())
	nonManifold := len(inc.NonManifoldEdges())

	return Diagnosis{
		VertexCount:          len(vertices),
		TriangleCount:        len(triangles),
		BoundaryEdgeCount:    boundary,
		NonManifoldEdgeCount: nonManifold,
		IsWatertight:         boundary == 0 && nonManifold == 0,
	}
}
