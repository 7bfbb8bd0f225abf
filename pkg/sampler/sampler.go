package sampler

import (
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/df07/go-spectral-raytracer/pkg/core"
)

var (
	ErrUnknownSampler = errors.New("sampler: unknown sampler type")
	ErrInvalidSamples = errors.New("sampler: samples per pixel must be positive")
)

// Sampler produces the sample values for one (pixel, sample index) pair at a time.
// StartPixelSample must be called before drawing; after that the sequence of values is a
// pure function of the seed, pixel and sample index, so any sample can be regenerated.
// A Sampler is not safe for concurrent use: each worker draws from its own Clone.
type Sampler interface {
	SamplesPerPixel() int
	StartPixelSample(p image.Point, sampleIndex int)
	Get1D() float64
	Get2D() core.Vec2
	// GetPixel2D returns the sample used to position the camera sample within the pixel
	GetPixel2D() core.Vec2
	Clone() Sampler
}

// New creates a sampler by name ("independent" or "stratified")
func New(name string, samplesPerPixel int, seed int64, jitter bool) (Sampler, error) {
	if samplesPerPixel <= 0 {
		return nil, ErrInvalidSamples
	}
	switch name {
	case "", "independent":
		return NewIndependentSampler(samplesPerPixel, seed), nil
	case "stratified":
		xs, ys := factorStrata(samplesPerPixel)
		return NewStratifiedSampler(xs, ys, jitter, seed), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSampler, name)
	}
}

// factorStrata splits n into xs*ys with xs the largest divisor not above sqrt(n)
func factorStrata(n int) (int, int) {
	xs := int(math.Sqrt(float64(n)))
	for xs > 1 && n%xs != 0 {
		xs--
	}
	return xs, n / xs
}

func pixelSeed(p image.Point, seed int64) uint64 {
	return core.Hash(int64(p.X), int64(p.Y), seed)
}
