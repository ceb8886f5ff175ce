// Package repair implements the mesh repair pipeline's driver: a fixed
// sequence of weld, filter, non-manifold resolution, hole filling, a
// second non-manifold sweep, and compaction, turning an arbitrary
// indexed triangle soup into a 2-manifold surface.
package repair

import (
	"fmt"

	"github.com/kilnforge/meshrepair/boundary"
	"github.com/kilnforge/meshrepair/compact"
	"github.com/kilnforge/meshrepair/fill"
	"github.com/kilnforge/meshrepair/filter"
	"github.com/kilnforge/meshrepair/loopfind"
	"github.com/kilnforge/meshrepair/nonmanifold"
	"github.com/kilnforge/meshrepair/types"
	"github.com/kilnforge/meshrepair/weld"
)

// Driver runs the repair pipeline with a fixed configuration. It holds
// no mutable state between calls: RepairObject is a pure function of its
// arguments.
type Driver struct {
	cfg config
}

// New constructs a Driver, applying opts over the default tunables.
func New(opts ...Option) *Driver {
	cfg := newDefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Driver{cfg: cfg}
}

// RepairObject runs the full repair pipeline on (vertices, triangles),
// returning a new, deduplicated, 2-manifold-where-possible vertex and
// triangle pair. The input slices are never mutated.
func (d *Driver) RepairObject(vertices []types.Point, triangles []types.Triangle) ([]types.Point, []types.Triangle, Report) {
	v, t, report, _ := d.repair(vertices, triangles, newEmitter(d.cfg, 0, "", 1))
	return v, t, report
}

// RepairMesh runs RepairObject followed by Diagnose on the result.
func (d *Driver) RepairMesh(vertices []types.Point, triangles []types.Triangle) ([]types.Point, []types.Triangle, Report, Diagnosis) {
	v, t, report := d.RepairObject(vertices, triangles)
	return v, t, report, Diagnose(v, t)
}

// ObjectResult is one object's outcome within a RepairAll batch.
type ObjectResult struct {
	ID        string
	Vertices  []types.Point
	Triangles []types.Triangle
	Report    Report
	Diagnosis Diagnosis
}

// RepairAllResult is the outcome of a RepairAll batch: every object's
// result plus the element-wise sum of their reports.
type RepairAllResult struct {
	Objects     []ObjectResult
	TotalReport Report
}

// RepairAll repairs every object in objects in order, folding their
// reports into TotalReport. Each object is repaired independently; one
// object's content never affects another's result.
func (d *Driver) RepairAll(objects []types.Object) RepairAllResult {
	result := RepairAllResult{Objects: make([]ObjectResult, 0, len(objects))}
	total := len(objects)

	for i, obj := range objects {
		em := newEmitter(d.cfg, i, obj.ID, total)
		em.start()

		v, t, report, diag := d.repair(obj.Vertices, obj.Triangles, em)

		em.done(report, diag)

		result.Objects = append(result.Objects, ObjectResult{
			ID:        obj.ID,
			Vertices:  v,
			Triangles: t,
			Report:    report,
			Diagnosis: diag,
		})
		result.TotalReport = result.TotalReport.Add(report)
	}

	return result
}

// repair is the shared pipeline body for RepairObject and RepairAll.
func (d *Driver) repair(vertices []types.Point, triangles []types.Triangle, em emitter) ([]types.Point, []types.Triangle, Report, Diagnosis) {
	v := append([]types.Point(nil), vertices...)
	t := append([]types.Triangle(nil), triangles...)

	var report Report

	em.stage("welding")
	weldResult := weld.Weld(v, t, types.NewQuantizer(d.cfg.quantizePrecision))
	v, t = weldResult.Vertices, weldResult.Triangles
	report.Merged += weldResult.Merged

	em.stage("filtering")
	t = filter.Filter(t)

	em.stage("fixing non-manifold")
	nm := nonmanifold.ResolveWithCap(t, d.cfg.nonManifoldIterationCap)
	t = nm.Triangles
	report.NMFixed += nm.Fixed

	v, t, filled := d.fillHoles(v, t, em)
	report.HolesFilled += filled

	em.stage("final check")
	nm = nonmanifold.ResolveWithCap(t, d.cfg.nonManifoldIterationCap)
	t = nm.Triangles
	report.NMFixed += nm.Fixed

	em.stage("compacting")
	compacted := compact.Compact(v, t)
	v, t = compacted.Vertices, compacted.Triangles

	return v, t, report, Diagnose(v, t)
}

// fillHoles runs the hole-fill convergence loop: up to
// holeFillIterationCap iterations of extract-boundary, find loops, fill
// the shortest one. It stops early once the boundary is empty
// (watertight) or once no further progress is possible (stuck counter
// exceeded, or neither a loop nor a T-junction could be filled).
func (d *Driver) fillHoles(vertices []types.Point, triangles []types.Triangle, em emitter) ([]types.Point, []types.Triangle, int) {
	em.stage("filling holes")

	v := vertices
	t := triangles
	filled := 0
	stuck := 0
	prevBoundary := -1

	for iter := 0; iter < d.cfg.holeFillIterationCap; iter++ {
		halfEdges := boundary.Extract(t)
		if len(halfEdges) == 0 {
			break
		}

		if iter%d.cfg.progressEvery == 0 {
			em.stage(fmt.Sprintf("filling holes: %d done, %d remaining", filled, len(halfEdges)))
		}

		if prevBoundary >= 0 && len(halfEdges) >= prevBoundary {
			stuck++
			if stuck > d.cfg.stuckThreshold {
				break
			}
		} else {
			stuck = 0
		}
		prevBoundary = len(halfEdges)

		loops := loopfind.FindWithCap(halfEdges, d.cfg.loopPathCap)

		existing := make(map[[3]types.VertexID]struct{}, len(t))
		for _, tri := range t {
			existing[tri.SortedKey()] = struct{}{}
		}

		progressed := false
		for _, loop := range loops {
			// A length-3 loop that already matches a kept triangle isn't
			// a hole at all: it's the boundary of a triangle with no
			// neighbors on any side (e.g. an isolated fragment left over
			// after welding and filtering), and its own winding is what
			// produced the loop. Filling it would just re-emit the same
			// triangle as a duplicate, so skip it and look for another
			// candidate instead.
			if loop.Len() == 3 {
				key := types.Triangle{loop[0], loop[1], loop[2]}.SortedKey()
				if _, dup := existing[key]; dup {
					continue
				}
			}

			newVertices, newTriangles := fill.Loop(v, loop)
			v = newVertices
			t = append(t, newTriangles...)
			filled++
			progressed = true
			break
		}

		if !progressed {
			if tri, ok := fill.TJunction(halfEdges); ok {
				t = append(t, tri)
				filled++
				progressed = true
			}
		}

		if !progressed {
			break
		}
	}

	return v, t, filled
}
