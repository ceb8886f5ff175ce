package repair

// Option configures a Driver during construction.
type Option func(*config)

// WithQuantizePrecision sets the number of fraction digits the welder
// quantises coordinates to. Non-positive values fall back to
// DefaultQuantizePrecision.
func WithQuantizePrecision(precision int) Option {
	return func(c *config) {
		if precision <= 0 {
			precision = DefaultQuantizePrecision
		}
		c.quantizePrecision = precision
	}
}

// WithNonManifoldIterationCap overrides the non-manifold resolver's
// iteration cap.
func WithNonManifoldIterationCap(cap int) Option {
	return func(c *config) {
		if cap <= 0 {
			cap = DefaultNonManifoldIterationCap
		}
		c.nonManifoldIterationCap = cap
	}
}

// WithHoleFillIterationCap overrides the hole-fill convergence loop's
// iteration cap.
func WithHoleFillIterationCap(cap int) Option {
	return func(c *config) {
		if cap <= 0 {
			cap = DefaultHoleFillIterationCap
		}
		c.holeFillIterationCap = cap
	}
}

// WithStuckThreshold overrides the hole-fill loop's stuck counter
// threshold.
func WithStuckThreshold(threshold int) Option {
	return func(c *config) {
		if threshold <= 0 {
			threshold = DefaultStuckThreshold
		}
		c.stuckThreshold = threshold
	}
}

// WithLoopPathCap overrides the loop finder's DFS search path cap.
func WithLoopPathCap(cap int) Option {
	return func(c *config) {
		if cap <= 0 {
			cap = DefaultLoopPathCap
		}
		c.loopPathCap = cap
	}
}

// WithProgressEvery controls how often (in hole-fill iterations) the
// driver emits a "filling holes: k done, m remaining" progress token.
func WithProgressEvery(n int) Option {
	return func(c *config) {
		if n <= 0 {
			n = DefaultProgressEvery
		}
		c.progressEvery = n
	}
}

// WithProgress installs a ProgressSink the driver reports stage and
// iteration tokens to. A nil sink (the default) makes the driver behave
// identically but silently.
func WithProgress(sink ProgressSink) Option {
	return func(c *config) {
		c.sink = sink
	}
}
