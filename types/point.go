package types

// Point represents a position in 3D Cartesian space.
//
// Coordinates use float64 precision. A Point has no identity beyond its
// index in whichever vertex array it lives in.
//
// Example:
//
//	p := types.Point{X: 1.5, Y: 2.3, Z: 0}
type Point struct {
	X float64 // first coordinate
	Y float64 // second coordinate
	Z float64 // third coordinate
}

// Add returns the componentwise sum of p and q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y, Z: p.Z + q.Z}
}

// Scale returns p with every coordinate multiplied by s.
func (p Point) Scale(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s, Z: p.Z * s}
}
