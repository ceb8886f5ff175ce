package meshio

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

const validDoc = `{
  "objects": [
    {
      "id": "tet",
      "vertices": [[0,0,0],[1,0,0],[0,1,0],[0,0,1]],
      "triangles": [[0,1,2],[0,1,3],[1,2,3],[0,2,3]]
    }
  ],
  "passthrough": {"source": "test-harness"}
}`

func TestIngestValidDocument(t *testing.T) {
	result, err := Ingest(strings.NewReader(validDoc))
	if err != nil {
		t.Fatalf("Ingest: %v", err)
	}
	if len(result.Objects) != 1 {
		t.Fatalf("expected 1 object, got %d", len(result.Objects))
	}
	obj := result.Objects[0]
	if obj.ID != "tet" {
		t.Fatalf("expected id tet, got %q", obj.ID)
	}
	if len(obj.Vertices) != 4 || len(obj.Triangles) != 4 {
		t.Fatalf("unexpected shape: %d vertices, %d triangles", len(obj.Vertices), len(obj.Triangles))
	}
	if len(result.Passthrough) == 0 {
		t.Fatal("expected passthrough to be preserved")
	}
}

func TestIngestRejectsEmptyID(t *testing.T) {
	doc := `{"objects": [{"id": "", "vertices": [[0,0,0]], "triangles": []}]}`
	_, err := Ingest(strings.NewReader(doc))
	if !errors.Is(err, ErrEmptyObjectID) {
		t.Fatalf("expected ErrEmptyObjectID, got %v", err)
	}
}

func TestIngestRejectsMalformedVertex(t *testing.T) {
	doc := `{"objects": [{"id": "x", "vertices": [[0,0]], "triangles": []}]}`
	_, err := Ingest(strings.NewReader(doc))
	if !errors.Is(err, ErrMalformedVertex) {
		t.Fatalf("expected ErrMalformedVertex, got %v", err)
	}
}

func TestIngestRejectsMalformedTriangle(t *testing.T) {
	doc := `{"objects": [{"id": "x", "vertices": [[0,0,0],[1,0,0],[0,1,0]], "triangles": [[0,1]]}]}`
	_, err := Ingest(strings.NewReader(doc))
	if !errors.Is(err, ErrMalformedTriangle) {
		t.Fatalf("expected ErrMalformedTriangle, got %v", err)
	}
}

func TestIngestRejectsNonNumericCoordinate(t *testing.T) {
	// JSON has no NaN/Infinity literal, so a non-finite coordinate can
	// only arrive as a non-numeric token; this still must be rejected
	// rather than silently zeroed.
	doc := `{"objects": [{"id": "x", "vertices": [[0,0,0],[1,0,0],[0,"NaN",0]], "triangles": []}]}`
	_, err := Ingest(strings.NewReader(doc))
	if err == nil {
		t.Fatal("expected a decode error for a non-numeric coordinate")
	}
}

func TestIngestRejectsOutOfRangeIndex(t *testing.T) {
	doc := `{"objects": [{"id": "x", "vertices": [[0,0,0],[1,0,0],[0,1,0]], "triangles": [[0,1,5]]}]}`
	_, err := Ingest(strings.NewReader(doc))
	if !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
}

func TestEmitRoundTripsIngestedObjects(t *testing.T) {
	result, err := Ingest(strings.NewReader(validDoc))
	if err != nil {
		t.Fatalf("Ingest: %v", err)
	}

	var buf bytes.Buffer
	if err := Emit(&buf, result.Objects, result.Passthrough); err != nil {
		t.Fatalf("Emit: %v", err)
	}

	roundTripped, err := Ingest(&buf)
	if err != nil {
		t.Fatalf("Ingest(Emit(...)): %v", err)
	}
	if len(roundTripped.Objects) != 1 || roundTripped.Objects[0].ID != "tet" {
		t.Fatalf("round trip lost the object: %+v", roundTripped.Objects)
	}
	if len(roundTripped.Objects[0].Vertices) != 4 || len(roundTripped.Objects[0].Triangles) != 4 {
		t.Fatalf("round trip lost shape: %+v", roundTripped.Objects[0])
	}
}
