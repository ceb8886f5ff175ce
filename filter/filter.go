// Package filter drops degenerate triangles (a repeated vertex index)
// and duplicate triangles (the same unordered vertex set as one already
// kept), preserving the first occurrence of each.
package filter

import "github.com/kilnforge/meshrepair/types"

// Filter returns the subsequence of triangles that are neither
// degenerate nor a duplicate (by unordered vertex set) of an
// already-kept triangle.
func Filter(triangles []types.Triangle) []types.Triangle {
	seen := make(map[[3]types.VertexID]struct{}, len(triangles))
	kept := make([]types.Triangle, 0, len(triangles))

	for _, tri := range triangles {
		if tri.IsDegenerate() {
			continue
		}
		key := tri.SortedKey()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		kept = append(kept, tri)
	}

	return kept
}
