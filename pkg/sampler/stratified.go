package sampler

import (
	"image"
	"math/rand/v2"

	"github.com/df07/go-spectral-raytracer/pkg/core"
)

// StratifiedSampler divides every dimension into SamplesPerPixel strata and visits each
// stratum once per pixel. The stratum assigned to a sample index is scrambled per pixel
// and per dimension so dimensions stay uncorrelated.
type StratifiedSampler struct {
	xSamples, ySamples int
	jitter             bool
	seed               int64

	pixel       image.Point
	sampleIndex int
	dimension   int
	source      *rand.PCG
	random      *rand.Rand
	started     bool
}

// NewStratifiedSampler creates a stratified sampler with xSamples*ySamples samples per pixel
func NewStratifiedSampler(xSamples, ySamples int, jitter bool, seed int64) *StratifiedSampler {
	source := rand.NewPCG(0, 0)
	return &StratifiedSampler{
		xSamples: xSamples,
		ySamples: ySamples,
		jitter:   jitter,
		seed:     seed,
		source:   source,
		random:   rand.New(source),
	}
}

// SamplesPerPixel implements Sampler
func (s *StratifiedSampler) SamplesPerPixel() int {
	return s.xSamples * s.ySamples
}

// StartPixelSample implements Sampler
func (s *StratifiedSampler) StartPixelSample(p image.Point, sampleIndex int) {
	s.pixel = p
	s.sampleIndex = sampleIndex
	s.dimension = 0
	s.source.Seed(pixelSeed(p, s.seed), uint64(sampleIndex))
	s.started = true
}

func (s *StratifiedSampler) nextStratum() int {
	if !s.started {
		core.Assert(false, "sampler used before StartPixelSample")
		s.StartPixelSample(image.Point{}, 0)
	}
	spp := s.SamplesPerPixel()
	hash := core.Hash(int64(s.pixel.X), int64(s.pixel.Y), int64(s.dimension), s.seed)
	s.dimension++
	// Sample indices beyond spp wrap onto the same strata
	index := uint32(s.sampleIndex % spp)
	return int(core.PermutationElement(index, uint32(spp), uint32(hash)))
}

func (s *StratifiedSampler) offset() float64 {
	if s.jitter {
		return s.random.Float64()
	}
	return 0.5
}

// Get1D implements Sampler
func (s *StratifiedSampler) Get1D() float64 {
	stratum := s.nextStratum()
	v := (float64(stratum) + s.offset()) / float64(s.SamplesPerPixel())
	return min(v, core.OneMinusEpsilon)
}

// Get2D implements Sampler
func (s *StratifiedSampler) Get2D() core.Vec2 {
	stratum := s.nextStratum()
	x, y := stratum%s.xSamples, stratum/s.xSamples
	dx, dy := s.offset(), s.offset()
	return core.NewVec2(
		min((float64(x)+dx)/float64(s.xSamples), core.OneMinusEpsilon),
		min((float64(y)+dy)/float64(s.ySamples), core.OneMinusEpsilon),
	)
}

// GetPixel2D implements Sampler
func (s *StratifiedSampler) GetPixel2D() core.Vec2 {
	return s.Get2D()
}

// Clone implements Sampler; the clone must be started before use
func (s *StratifiedSampler) Clone() Sampler {
	return NewStratifiedSampler(s.xSamples, s.ySamples, s.jitter, s.seed)
}
