// Package compact removes vertices no triangle references and renumbers
// the remaining ones, keeping their relative order.
package compact

import "github.com/kilnforge/meshrepair/types"

// Result is the outcome of a compaction pass.
type Result struct {
	Vertices  []types.Point
	Triangles []types.Triangle
}

// Compact returns the subsequence of vertices referenced by any
// triangle, in original order, with triangle indices remapped to match.
func Compact(vertices []types.Point, triangles []types.Triangle) Result {
	referenced := make([]bool, len(vertices))
	for _, tri := range triangles {
		referenced[tri.V1()] = true
		referenced[tri.V2()] = true
		referenced[tri.V3()] = true
	}

	remap := make([]types.VertexID, len(vertices))
	compacted := make([]types.Point, 0, len(vertices))
	for i, p := range vertices {
		if !referenced[i] {
			continue
		}
		remap[i] = types.VertexID(len(compacted))
		compacted = append(compacted, p)
	}

	outTriangles := make([]types.Triangle, len(triangles))
	for i, tri := range triangles {
		outTriangles[i] = types.Triangle{
			remap[tri.V1()],
			remap[tri.V2()],
			remap[tri.V3()],
		}
	}

	return Result{Vertices: compacted, Triangles: outTriangles}
}
