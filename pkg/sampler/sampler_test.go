package sampler

import (
	"errors"
	"image"
	"testing"

	"github.com/df07/go-spectral-raytracer/pkg/core"
)

func draw(s Sampler, n int) []float64 {
	values := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		values = append(values, s.Get1D())
	}
	return values
}

func TestSamplersAreRestartable(t *testing.T) {
	samplers := map[string]Sampler{
		"independent": NewIndependentSampler(16, 7),
		"stratified":  NewStratifiedSampler(4, 4, true, 7),
	}

	for name, s := range samplers {
		t.Run(name, func(t *testing.T) {
			p := image.Pt(12, 34)
			s.StartPixelSample(p, 3)
			first := draw(s, 8)

			// Draw something unrelated in between
			s.StartPixelSample(image.Pt(0, 0), 9)
			draw(s, 5)

			s.StartPixelSample(p, 3)
			second := draw(s, 8)

			for i := range first {
				if first[i] != second[i] {
					t.Fatalf("Expected identical value %d after restart: %f vs %f", i, first[i], second[i])
				}
			}
		})
	}
}

func TestClonesMatchPrototype(t *testing.T) {
	proto := NewIndependentSampler(4, 99)
	clone := proto.Clone()

	proto.StartPixelSample(image.Pt(3, 4), 1)
	clone.StartPixelSample(image.Pt(3, 4), 1)
	if a, b := proto.Get2D(), clone.Get2D(); a != b {
		t.Errorf("Expected clone to reproduce prototype values, got %v vs %v", a, b)
	}
}

func TestDifferentSampleIndicesDiffer(t *testing.T) {
	s := NewIndependentSampler(4, 1)
	s.StartPixelSample(image.Pt(1, 1), 0)
	a := s.Get1D()
	s.StartPixelSample(image.Pt(1, 1), 1)
	b := s.Get1D()
	if a == b {
		t.Errorf("Expected different values for different sample indices, got %f twice", a)
	}
}

func TestStratifiedCoversEveryStratum(t *testing.T) {
	s := NewStratifiedSampler(2, 4, true, 5)
	spp := s.SamplesPerPixel()
	seen := make([]bool, spp)
	for i := 0; i < spp; i++ {
		s.StartPixelSample(image.Pt(7, 2), i)
		v := s.Get1D()
		if v < 0 || v >= 1 {
			t.Fatalf("Sample %d out of range: %f", i, v)
		}
		stratum := int(v * float64(spp))
		if seen[stratum] {
			t.Fatalf("Stratum %d visited twice", stratum)
		}
		seen[stratum] = true
	}
}

func TestStratifiedWithoutJitterCentersSamples(t *testing.T) {
	s := NewStratifiedSampler(1, 1, false, 0)
	s.StartPixelSample(image.Pt(0, 0), 0)
	if u := s.Get2D(); u != core.NewVec2(0.5, 0.5) {
		t.Errorf("Expected stratum center (0.5, 0.5), got %v", u)
	}
}

func TestUnstartedSamplerStillProducesValues(t *testing.T) {
	if core.DebugBuild {
		t.Skip("debug builds panic on sampler misuse")
	}
	s := NewIndependentSampler(1, 0)
	if v := s.Get1D(); v < 0 || v >= 1 {
		t.Errorf("Expected value in [0,1), got %f", v)
	}
}

func TestNew(t *testing.T) {
	type spec struct {
		name   string
		spp    int
		expSPP int
		expErr error
	}
	specs := []spec{
		{"independent", 10, 10, nil},
		{"stratified", 12, 12, nil},
		{"stratified", 7, 7, nil},
		{"sobol", 4, 0, ErrUnknownSampler},
		{"independent", 0, 0, ErrInvalidSamples},
	}

	for i, s := range specs {
		got, err := New(s.name, s.spp, 0, true)
		if s.expErr != nil {
			if !errors.Is(err, s.expErr) {
				t.Fatalf("[spec %d] expected error %v; got %v", i, s.expErr, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("[spec %d] unexpected error %v", i, err)
		}
		if got.SamplesPerPixel() != s.expSPP {
			t.Fatalf("[spec %d] expected spp %d; got %d", i, s.expSPP, got.SamplesPerPixel())
		}
	}
}
