package constant

// Escape-time defaults
const (
	// DefaultMaxIterations is the iteration cap; points that never escape within it are in the set
	DefaultMaxIterations = 256

	// EscapeRadius is the divergence threshold on |z|
	EscapeRadius = 2.0

	// DefaultCenterX and DefaultCenterY place the main cardioid in view at startup
	DefaultCenterX = -0.5
	DefaultCenterY = 0.0

	// DefaultFitSpan is the plane extent covered by the shorter viewport side when InitialScale is 0
	DefaultFitSpan = 3.5

	// DefaultPanStep is the pan distance per key edge, in pixels at the current scale
	DefaultPanStep = 8.0
)

// Frame size used when the terminal reports 0×0 and no size is configured
const (
	FallbackWidth  = 160
	FallbackHeight = 96
)
