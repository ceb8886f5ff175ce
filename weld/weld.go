// Package weld collapses spatially-coincident vertices under a
// fixed-precision quantisation so that duplicate-but-differently-indexed
// vertices in an ingested triangle soup become a single vertex.
package weld

import (
	"github.com/kilnforge/meshrepair/types"
)

// Result is the outcome of a weld pass.
type Result struct {
	Vertices  []types.Point
	Triangles []types.Triangle
	Merged    int
}

// Weld collapses vertices that quantise to the same key under q, keeping
// each key's first-seen vertex and rewriting every triangle index to its
// representative. Triangles that become degenerate as a result (two of
// their three indices collapse to the same representative) are left in
// place; the filter package removes them in the next stage.
func Weld(vertices []types.Point, triangles []types.Triangle, q types.Quantizer) Result {
	representative := make(map[[3]string]types.VertexID, len(vertices))
	remap := make([]types.VertexID, len(vertices))
	welded := make([]types.Point, 0, len(vertices))

	for i, p := range vertices {
		key := q.Key(p)
		if rep, ok := representative[key]; ok {
			remap[i] = rep
			continue
		}
		rep := types.VertexID(len(welded))
		representative[key] = rep
		welded = append(welded, p)
		remap[i] = rep
	}

	outTriangles := make([]types.Triangle, len(triangles))
	for i, tri := range triangles {
		outTriangles[i] = types.Triangle{
			remap[tri.V1()],
			remap[tri.V2()],
			remap[tri.V3()],
		}
	}

	return Result{
		Vertices:  welded,
		Triangles: outTriangles,
		Merged:    len(vertices) - len(welded),
	}
}
