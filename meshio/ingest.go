// Package meshio implements the mesh ingest and emit adapters: a JSON
// envelope that yields and consumes (vertices, triangles) tuples plus
// an opaque passthrough token the driver never inspects. It is the
// boundary where malformed input data is rejected — the repair
// pipeline itself assumes well-formedness.
package meshio

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/kilnforge/meshrepair/types"
)

// wireObject is the JSON shape of one mesh object: {id, vertices, triangles}.
// Vertices and triangles are decoded as variable-length slices, not
// fixed-size arrays, so that a malformed arity (e.g. a 2- or 4-element
// coordinate) is something Ingest can detect and reject rather than
// something encoding/json silently truncates or zero-pads.
type wireObject struct {
	ID        string      `json:"id"`
	Vertices  [][]float64 `json:"vertices"`
	Triangles [][]int     `json:"triangles"`
}

// wireDocument is the JSON shape of an ingest document: a list of
// objects plus an opaque passthrough token returned unchanged by Emit.
type wireDocument struct {
	Objects     []wireObject    `json:"objects"`
	Passthrough json.RawMessage `json:"passthrough,omitempty"`
}

// IngestResult is the ingest adapter's output: the objects to repair,
// plus the passthrough token the driver returns unchanged to Emit.
type IngestResult struct {
	Objects     []types.Object
	Passthrough json.RawMessage
}

// Ingest decodes a JSON document into an IngestResult. It validates
// every constraint the ingest adapter is responsible for — vertex
// arity, finite coordinates, and in-range triangle indices — and
// returns a wrapped sentinel error on the first violation it finds.
func Ingest(r io.Reader) (IngestResult, error) {
	var doc wireDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return IngestResult{}, fmt.Errorf("meshio: decode: %w", err)
	}

	objects := make([]types.Object, 0, len(doc.Objects))
	for i, wo := range doc.Objects {
		if wo.ID == "" {
			return IngestResult{}, fmt.Errorf("meshio: object %d: %w", i, ErrEmptyObjectID)
		}

		vertices := make([]types.Point, len(wo.Vertices))
		for vi, coords := range wo.Vertices {
			if len(coords) != 3 {
				return IngestResult{}, fmt.Errorf("meshio: object %q vertex %d: %w", wo.ID, vi, ErrMalformedVertex)
			}
			for _, c := range coords {
				if math.IsNaN(c) || math.IsInf(c, 0) {
					return IngestResult{}, fmt.Errorf("meshio: object %q vertex %d: %w", wo.ID, vi, ErrNonFiniteCoord)
				}
			}
			vertices[vi] = types.Point{X: coords[0], Y: coords[1], Z: coords[2]}
		}

		triangles := make([]types.Triangle, len(wo.Triangles))
		for ti, idx := range wo.Triangles {
			if len(idx) != 3 {
				return IngestResult{}, fmt.Errorf("meshio: object %q triangle %d: %w", wo.ID, ti, ErrMalformedTriangle)
			}
			for _, vi := range idx {
				id := types.VertexID(vi)
				if !id.IsValid() || int(id) >= len(vertices) {
					return IngestResult{}, fmt.Errorf("meshio: object %q triangle %d: %w", wo.ID, ti, ErrIndexOutOfRange)
				}
			}
			triangles[ti] = types.NewTriangle(
				types.VertexID(idx[0]), types.VertexID(idx[1]), types.VertexID(idx[2]),
			)
		}

		objects = append(objects, types.Object{ID: wo.ID, Vertices: vertices, Triangles: triangles})
	}

	return IngestResult{Objects: objects, Passthrough: doc.Passthrough}, nil
}
