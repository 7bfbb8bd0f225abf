package sampler

import (
	"image"
	"math/rand/v2"

	"github.com/df07/go-spectral-raytracer/pkg/core"
)

// IndependentSampler returns uniform random values with no correlation between dimensions
type IndependentSampler struct {
	samplesPerPixel int
	seed            int64
	source          *rand.PCG
	random          *rand.Rand
	started         bool
}

// NewIndependentSampler creates an independent sampler
func NewIndependentSampler(samplesPerPixel int, seed int64) *IndependentSampler {
	source := rand.NewPCG(0, 0)
	return &IndependentSampler{
		samplesPerPixel: samplesPerPixel,
		seed:            seed,
		source:          source,
		random:          rand.New(source),
	}
}

// SamplesPerPixel implements Sampler
func (s *IndependentSampler) SamplesPerPixel() int {
	return s.samplesPerPixel
}

// StartPixelSample implements Sampler
func (s *IndependentSampler) StartPixelSample(p image.Point, sampleIndex int) {
	s.source.Seed(pixelSeed(p, s.seed), uint64(sampleIndex))
	s.started = true
}

func (s *IndependentSampler) ensureStarted() {
	if !s.started {
		core.Assert(false, "sampler used before StartPixelSample")
		s.StartPixelSample(image.Point{}, 0)
	}
}

// Get1D implements Sampler
func (s *IndependentSampler) Get1D() float64 {
	s.ensureStarted()
	return s.random.Float64()
}

// Get2D implements Sampler
func (s *IndependentSampler) Get2D() core.Vec2 {
	s.ensureStarted()
	return core.NewVec2(s.random.Float64(), s.random.Float64())
}

// GetPixel2D implements Sampler
func (s *IndependentSampler) GetPixel2D() core.Vec2 {
	return s.Get2D()
}

// Clone implements Sampler; the clone must be started before use
func (s *IndependentSampler) Clone() Sampler {
	return NewIndependentSampler(s.samplesPerPixel, s.seed)
}
