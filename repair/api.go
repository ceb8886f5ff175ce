package repair

import "github.com/kilnforge/meshrepair/types"

// RepairObject repairs a single (vertices, triangles) pair using a
// Driver built from opts. It is a convenience wrapper around
// New(opts...).RepairObject for callers that don't need to reuse a
// Driver across calls.
func RepairObject(vertices []types.Point, triangles []types.Triangle, opts ...Option) ([]types.Point, []types.Triangle, Report) {
	return New(opts...).RepairObject(vertices, triangles)
}

// RepairMesh repairs a single (vertices, triangles) pair and diagnoses
// the result, using a Driver built from opts.
func RepairMesh(vertices []types.Point, triangles []types.Triangle, opts ...Option) ([]types.Point, []types.Triangle, Report, Diagnosis) {
	return New(opts...).RepairMesh(vertices, triangles)
}

// RepairAll repairs every object in objects, using a Driver built from
// opts.
func RepairAll(objects []types.Object, opts ...Option) RepairAllResult {
	return New(opts...).RepairAll(objects)
}
