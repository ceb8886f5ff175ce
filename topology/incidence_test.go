package topology

import "github.com/kilnforge/meshrepair/types"

import "testing"

func tetrahedronTriangles() []types.Triangle {
	return []types.Triangle{{0, 1, 2}, {0, 1, 3}, {1, 2, 3}, {0, 2, 3}}
}

func TestBuildEdgeIncidenceWatertight(t *testing.T) {
	inc := BuildEdgeIncidence(tetrahedronTriangles())
	if inc.MaxIncidence() != 2 {
		t.Fatalf("expected max incidence 2, got %d", inc.MaxIncidence())
	}
	if len(inc.BoundaryEdges()) != 0 {
		t.Fatalf("expected no boundary edges on a closed tetrahedron")
	}
	if len(inc.NonManifoldEdges()) != 0 {
		t.Fatalf("expected no non-manifold edges")
	}
}

func TestBuildEdgeIncidenceOpenTriangle(t *testing.T) {
	inc := BuildEdgeIncidence([]types.Triangle{{0, 1, 2}})
	if len(inc.BoundaryEdges()) != 3 {
		t.Fatalf("expected 3 boundary edges for a single triangle, got %d", len(inc.BoundaryEdges()))
	}
}

func TestBuildEdgeIncidenceFin(t *testing.T) {
	tris := []types.Triangle{{0, 1, 2}, {0, 1, 3}, {0, 1, 4}}
	inc := BuildEdgeIncidence(tris)
	if inc.Count(types.NewEdge(0, 1)) != 3 {
		t.Fatalf("expected shared edge incidence 3")
	}
	if len(inc.NonManifoldEdges()) != 1 {
		t.Fatalf("expected exactly one non-manifold edge")
	}
}
