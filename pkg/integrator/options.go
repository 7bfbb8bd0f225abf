package integrator

// Options tune the sampling behavior shared by the integrators
type Options struct {
	Label    string // Scene name used in logs and metric tags
	RenderID string // Distinguishes the metrics of this render from earlier renders of the same scene

	Quiet                   bool // Silence progress reporting
	DisablePixelJitter      bool // Sample pixel centers at mid-shutter through the lens center
	DisableWavelengthJitter bool // Use the same wavelengths for every sample
	ScaleDifferentials      bool // Narrow camera ray differentials by max(1/8, 1/sqrt(spp))

	Workers  int // Parallel workers per wave (0 = use CPU count)
	TileSize int // Edge length of the square tiles workers pull

	// Progress creates the progress reporter; nil uses NewProgressReporter
	Progress ProgressFactory
}

// DefaultOptions returns sensible default values
func DefaultOptions() Options {
	return Options{
		ScaleDifferentials: true,
		TileSize:           32,
	}
}
