package filter

import (
	"reflect"
	"testing"

	"github.com/kilnforge/meshrepair/types"
)

func TestFilterDropsDegenerate(t *testing.T) {
	triangles := []types.Triangle{{0, 1, 1}, {0, 1, 2}}
	got := Filter(triangles)
	want := []types.Triangle{{0, 1, 2}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestFilterDropsDuplicateAnyWinding(t *testing.T) {
	triangles := []types.Triangle{{0, 1, 2}, {2, 0, 1}, {1, 2, 0}}
	got := Filter(triangles)
	if len(got) != 1 {
		t.Fatalf("expected a single kept triangle, got %d", len(got))
	}
	if got[0] != (types.Triangle{0, 1, 2}) {
		t.Fatalf("expected first occurrence kept, got %v", got[0])
	}
}

func TestFilterKeepsDistinct(t *testing.T) {
	triangles := []types.Triangle{{0, 1, 2}, {1, 2, 3}}
	got := Filter(triangles)
	if len(got) != 2 {
		t.Fatalf("expected both triangles kept, got %d", len(got))
	}
}
