package repair

// Report counts the repairs a driver run performed. All three counters
// are monotonically nondecreasing over the course of one run.
type Report struct {
	Merged      int // vertices collapsed by welding
	NMFixed     int // triangles deleted by the non-manifold resolver
	HolesFilled int // successful loop-fill + T-junction-fill operations
}

// Add returns the element-wise sum of r and other, used by RepairAll to
// fold per-object reports into TotalReport.
func (r Report) Add(other Report) Report {
	return Report{
		Merged:      r.Merged + other.Merged,
		NMFixed:     r.NMFixed + other.NMFixed,
		HolesFilled: r.HolesFilled + other.HolesFilled,
	}
}
