package repair

// config holds the tunable parameters of a repair run. All of them
// default to fixed production constants; they are exposed only so
// tests (and the CLI's --config file) can exercise convergence
// behavior on small caps without waiting out the production values.
type config struct {
	quantizePrecision       int
	nonManifoldIterationCap int
	holeFillIterationCap    int
	stuckThreshold          int
	loopPathCap             int
	progressEvery           int

	sink ProgressSink
}

// Default tunables for production use.
const (
	DefaultQuantizePrecision       = 6
	DefaultNonManifoldIterationCap = 100
	DefaultHoleFillIterationCap    = 10000
	DefaultStuckThreshold          = 50
	DefaultLoopPathCap             = 300
	DefaultProgressEvery           = 100
)

func newDefaultConfig() config {
	return config{
		quantizePrecision:       DefaultQuantizePrecision,
		nonManifoldIterationCap: DefaultNonManifoldIterationCap,
		holeFillIterationCap:    DefaultHoleFillIterationCap,
		stuckThreshold:          DefaultStuckThreshold,
		loopPathCap:             DefaultLoopPathCap,
		progressEvery:           DefaultProgressEvery,
	}
}
