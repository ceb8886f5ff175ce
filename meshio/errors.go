package meshio

import "errors"

// Sentinel errors surfaced by Ingest when a mesh document is malformed:
// wrong arity, a non-finite coordinate, or a triangle index outside the
// vertex array.
var (
	ErrMalformedVertex   = errors.New("meshio: vertex must have exactly 3 coordinates")
	ErrMalformedTriangle = errors.New("meshio: triangle must have exactly 3 indices")
	ErrNonFiniteCoord    = errors.New("meshio: coordinate is NaN or infinite")
	ErrIndexOutOfRange   = errors.New("meshio: triangle references a vertex index out of range")
	ErrEmptyObjectID     = errors.New("meshio: object id must not be empty")
)
