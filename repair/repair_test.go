package repair

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilnforge/meshrepair/types"
)

func tetrahedron() ([]types.Point, []types.Triangle) {
	v := []types.Point{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}, {X: 0, Y: 0, Z: 1}}
	t := []types.Triangle{{0, 1, 2}, {0, 1, 3}, {1, 2, 3}, {0, 2, 3}}
	return v, t
}

// cubeMissingOneFace is a unit cube triangulated with consistent
// outward-facing winding, with its "right" (x=1) face's two triangles
// omitted, leaving a single square hole bounded by vertices {1,2,5,6}.
func cubeMissingOneFace() ([]types.Point, []types.Triangle) {
	v := []types.Point{
		{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 0}, {X: 0, Y: 1, Z: 0},
		{X: 0, Y: 0, Z: 1}, {X: 1, Y: 0, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: 0, Y: 1, Z: 1},
	}
	t := []types.Triangle{
		{0, 2, 1}, {0, 3, 2}, // bottom
		{4, 5, 6}, {4, 6, 7}, // top
		{0, 1, 5}, {0, 5, 4}, // front
		{3, 6, 2}, {3, 7, 6}, // back
		{0, 4, 7}, {0, 7, 3}, // left
		// right face (1,2,6),(1,6,5) intentionally omitted
	}
	return v, t
}

func TestRepairTetrahedronUnchanged(t *testing.T) {
	v, tris := tetrahedron()
	outV, outT, report := RepairObject(v, tris)

	assert.Equal(t, Report{}, report)
	assert.ElementsMatch(t, tris, outT)
	assert.Len(t, outV, 4)
	assert.True(t, Diagnose(outV, outT).IsWatertight)
}

func TestRepairIsolatedTriangleDoesNotDuplicate(t *testing.T) {
	// A triangle referenced twice under two vertex sets that weld
	// collapses into one, leaving a single free-floating triangle with
	// no neighbors on any edge. Its own boundary forms a closed 3-cycle
	// identical to itself; fillHoles must recognize that re-filling it
	// would just re-emit a duplicate and leave it alone.
	v := []types.Point{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}, {X: 0, Y: 0, Z: 0}}
	tris := []types.Triangle{{0, 1, 2}, {3, 1, 2}}

	outV, outT, report := RepairObject(v, tris)

	require.Equal(t, 1, report.Merged)
	assert.Equal(t, 0, report.HolesFilled)
	assert.Len(t, outT, 1, "the isolated triangle must not be duplicated by hole filling")
	assert.Len(t, outV, 3)

	diag := Diagnose(outV, outT)
	assert.False(t, diag.IsWatertight)
	assert.Equal(t, 3, diag.BoundaryEdgeCount)
}

func TestRepairCoincidentVertexIsMerged(t *testing.T) {
	v, tris := tetrahedron()
	// A fifth vertex, coincident with vertex 0, referenced by nothing.
	v = append(v, types.Point{X: 0, Y: 0, Z: 0})

	outV, outT, report := RepairObject(v, tris)

	require.Equal(t, 1, report.Merged)
	assert.Equal(t, 0, report.NMFixed)
	assert.Equal(t, 0, report.HolesFilled)
	assert.Len(t, outV, 4)
	assert.ElementsMatch(t, tris, outT)
}

func TestRepairCubeMissingFaceFillsSquareHole(t *testing.T) {
	v, tris := cubeMissingOneFace()
	outV, outT, report := RepairObject(v, tris)

	require.Equal(t, 1, report.HolesFilled)
	assert.Equal(t, 0, report.Merged)
	assert.Equal(t, 0, report.NMFixed)
	assert.Len(t, outV, 9, "expected one centroid vertex added")
	assert.Len(t, outT, 14, "expected 10 original + 4 fan triangles")

	diag := Diagnose(outV, outT)
	assert.True(t, diag.IsWatertight)
	assert.Equal(t, 0, diag.BoundaryEdgeCount)
	assert.Equal(t, 0, diag.NonManifoldEdgeCount)
}

// cubeMissingTwoOpposingFaces omits both the left (x=0) and right (x=1)
// faces, leaving two independent square holes that cannot be closed by
// a single loop-fill iteration (fillHoles closes one loop per pass).
func cubeMissingTwoOpposingFaces() ([]types.Point, []types.Triangle) {
	v := []types.Point{
		{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 0}, {X: 0, Y: 1, Z: 0},
		{X: 0, Y: 0, Z: 1}, {X: 1, Y: 0, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: 0, Y: 1, Z: 1},
	}
	t := []types.Triangle{
		{0, 2, 1}, {0, 3, 2}, // bottom
		{4, 5, 6}, {4, 6, 7}, // top
		{0, 1, 5}, {0, 5, 4}, // front
		{3, 6, 2}, {3, 7, 6}, // back
		// left (0,4,7),(0,7,3) and right (1,2,6),(1,6,5) omitted
	}
	return v, t
}

func TestRepairEmptyTriangleListCompactsToEmpty(t *testing.T) {
	v := []types.Point{{X: 0}, {X: 1}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	outV, outT, report := RepairObject(v, nil)

	assert.Empty(t, outV)
	assert.Empty(t, outT)
	assert.Equal(t, Report{}, report)
}

func TestRepairObjectIsDeterministic(t *testing.T) {
	v, tris := cubeMissingOneFace()

	v1, t1, r1 := RepairObject(v, tris)
	v2, t2, r2 := RepairObject(v, tris)

	assert.Equal(t, v1, v2)
	assert.Equal(t, t1, t2)
	assert.Equal(t, r1, r2)
}

func TestRepairObjectDoesNotMutateInput(t *testing.T) {
	v, tris := cubeMissingOneFace()
	originalV := append([]types.Point(nil), v...)
	originalT := append([]types.Triangle(nil), tris...)

	RepairObject(v, tris)

	assert.Equal(t, originalV, v)
	assert.Equal(t, originalT, tris)
}

func TestRepairAllReportAdditivity(t *testing.T) {
	tv, tt := tetrahedron()
	cv, ct := cubeMissingOneFace()

	objects := []types.Object{
		{ID: "tet", Vertices: tv, Triangles: tt},
		{ID: "cube", Vertices: cv, Triangles: ct},
	}

	result := RepairAll(objects)
	require.Len(t, result.Objects, 2)

	sum := Report{}
	for _, obj := range result.Objects {
		sum = sum.Add(obj.Report)
	}
	assert.Equal(t, sum, result.TotalReport)
	assert.Equal(t, 1, result.TotalReport.HolesFilled)

	assert.Equal(t, "tet", result.Objects[0].ID)
	assert.Equal(t, "cube", result.Objects[1].ID)
	assert.True(t, result.Objects[0].Diagnosis.IsWatertight)
	assert.True(t, result.Objects[1].Diagnosis.IsWatertight)
}

func TestRepairAllEmitsStartProgressDone(t *testing.T) {
	tv, tt := tetrahedron()
	objects := []types.Object{{ID: "tet", Vertices: tv, Triangles: tt}}

	var kinds []EventKind
	sink := ProgressFunc(func(e Event) {
		kinds = append(kinds, e.Kind)
		assert.Equal(t, "tet", e.ObjectID)
		assert.Equal(t, 1, e.Total)
	})

	New(WithProgress(sink)).RepairAll(objects)

	require.NotEmpty(t, kinds)
	assert.Equal(t, EventStart, kinds[0])
	assert.Equal(t, EventDone, kinds[len(kinds)-1])
}

func TestRepairConvergenceExhaustionTerminatesWithoutError(t *testing.T) {
	v, tris := cubeMissingTwoOpposingFaces()

	// Two independent holes exist, but fillHoles closes only the
	// shortest loop per iteration; capping iterations at 1 must leave
	// the second hole open rather than the driver looping forever or
	// erroring.
	d := New(WithHoleFillIterationCap(1))
	outV, outT, report := d.RepairObject(v, tris)

	assert.Equal(t, 1, report.HolesFilled)
	diag := Diagnose(outV, outT)
	assert.False(t, diag.IsWatertight)
	assert.Greater(t, diag.BoundaryEdgeCount, 0)
}

func TestDiagnoseIsPureAndDoesNotMutate(t *testing.T) {
	v, tris := tetrahedron()
	originalV := append([]types.Point(nil), v...)
	originalT := append([]types.Triangle(nil), tris...)

	d1 := Diagnose(v, tris)
	d2 := Diagnose(v, tris)

	assert.True(t, reflect.DeepEqual(d1, d2))
	assert.Equal(t, originalV, v)
	assert.Equal(t, originalT, tris)
}
