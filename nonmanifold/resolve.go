// Package nonmanifold resolves edges incident to more than two triangles
// by deleting the excess triangles, iterating to a fixed point.
package nonmanifold

import (
	"github.com/kilnforge/meshrepair/topology"
	"github.com/kilnforge/meshrepair/types"
)

// MaxIterations bounds the resolve loop against pathological inputs; a
// well-formed input converges in a single pass.
const MaxIterations = 100

// Result is the outcome of a resolve pass.
type Result struct {
	Triangles []types.Triangle
	Fixed     int
}

// Resolve is ResolveWithCap using the default MaxIterations cap.
func Resolve(triangles []types.Triangle) Result {
	return ResolveWithCap(triangles, MaxIterations)
}

// ResolveWithCap is Resolve with an overridable iteration cap, letting
// callers (see package repair's Option) bound worst-case runtime on
// pathological inputs.
//
// It repeatedly rebuilds edge incidence and, for every edge incident to
// more than two triangles, deletes all but the first two incident
// triangles (by ascending index in the current array). It stops once no
// edge has incidence greater than two, or after iterationCap passes.
func ResolveWithCap(triangles []types.Triangle, iterationCap int) Result {
	if iterationCap <= 0 {
		iterationCap = MaxIterations
	}

	current := append([]types.Triangle(nil), triangles...)
	fixed := 0

	for iter := 0; iter < iterationCap; iter++ {
		inc := topology.BuildEdgeIncidence(current)

		toDelete := make(map[int]struct{})
		for _, e := range inc.NonManifoldEdges() {
			tris := inc[e]
			for _, ti := range tris[2:] {
				toDelete[ti] = struct{}{}
			}
		}

		if len(toDelete) == 0 {
			break
		}

		kept := make([]types.Triangle, 0, len(current)-len(toDelete))
		for i, tri := range current {
			if _, dead := toDelete[i]; dead {
				continue
			}
			kept = append(kept, tri)
		}

		fixed += len(current) - len(kept)
		current = kept
	}

	return Result{Triangles: current, Fixed: fixed}
}
