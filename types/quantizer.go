package types

import "strconv"

// DefaultQuantizePrecision is the number of fraction digits the welder
// keys coordinates on, giving an absolute tolerance of roughly 1e-6 in
// the input's units (about 1 micrometre for millimetre-unit data).
const DefaultQuantizePrecision = 6

// Quantizer derives a deterministic, portable key for a Point so that
// spatially-coincident vertices hash to the same key regardless of their
// originating float64 bit pattern.
//
// The key is a decimal-string tuple rather than a rounded-integer tuple:
// strconv.FormatFloat's rounding is deterministic (round-to-even) and the
// string form sidesteps float equality traps entirely, at the cost of an
// allocation per coordinate. Two positions collide under this key iff
// their coordinates agree to Precision fraction digits.
type Quantizer struct {
	Precision int
}

// NewQuantizer constructs a Quantizer with the given number of fraction
// digits. A non-positive precision falls back to DefaultQuantizePrecision.
func NewQuantizer(precision int) Quantizer {
	if precision <= 0 {
		precision = DefaultQuantizePrecision
	}
	return Quantizer{Precision: precision}
}

// Key returns the quantisation key for p: the tuple of its three
// coordinates formatted as decimal strings with exactly Precision
// fraction digits.
func (q Quantizer) Key(p Point) [3]string {
	prec := q.Precision
	if prec <= 0 {
		prec = DefaultQuantizePrecision
	}
	return [3]string{
		strconv.FormatFloat(p.X, 'f', prec, 64),
		strconv.FormatFloat(p.Y, 'f', prec, 64),
		strconv.FormatFloat(p.Z, 'f', prec, 64),
	}
}
