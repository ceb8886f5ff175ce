package meshio

import (
	"encoding/json"
	"io"

	"github.com/kilnforge/meshrepair/types"
)

// Emit writes repaired objects back out as a JSON document in the same
// shape Ingest reads, reattaching the passthrough token untouched —
// the driver never inspects or mutates it.
func Emit(w io.Writer, objects []types.Object, passthrough json.RawMessage) error {
	doc := wireDocument{
		Objects:     make([]wireObject, len(objects)),
		Passthrough: passthrough,
	}

	for i, obj := range objects {
		vertices := make([][]float64, len(obj.Vertices))
		for vi, p := range obj.Vertices {
			vertices[vi] = []float64{p.X, p.Y, p.Z}
		}

		triangles := make([][]int, len(obj.Triangles))
		for ti, tri := range obj.Triangles {
			triangles[ti] = []int{int(tri.V1()), int(tri.V2()), int(tri.V3())}
		}

		doc.Objects[i] = wireObject{ID: obj.ID, Vertices: vertices, Triangles: triangles}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(doc)
}
