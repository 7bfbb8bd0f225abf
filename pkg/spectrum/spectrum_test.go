package spectrum

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSampledSpectrumArithmetic(t *testing.T) {
	a := SampledSpectrum{1, 2, 3, 4}
	b := NewSampledSpectrum(2)

	if diff := cmp.Diff(a.Add(b), SampledSpectrum{3, 4, 5, 6}); diff != "" {
		t.Errorf("Add diff (-got +want):\n%s", diff)
	}
	if diff := cmp.Diff(a.Mul(b), SampledSpectrum{2, 4, 6, 8}); diff != "" {
		t.Errorf("Mul diff (-got +want):\n%s", diff)
	}
	if diff := cmp.Diff(a.Scale(0.5), SampledSpectrum{0.5, 1, 1.5, 2}); diff != "" {
		t.Errorf("Scale diff (-got +want):\n%s", diff)
	}
	if diff := cmp.Diff(a.DivScalar(2), SampledSpectrum{0.5, 1, 1.5, 2}); diff != "" {
		t.Errorf("DivScalar diff (-got +want):\n%s", diff)
	}
	if diff := cmp.Diff(a.SafeDiv(SampledSpectrum{1, 0, 3, 0}), SampledSpectrum{1, 0, 1, 0}); diff != "" {
		t.Errorf("SafeDiv diff (-got +want):\n%s", diff)
	}
	if a.Average() != 2.5 {
		t.Errorf("Expected average 2.5, got %f", a.Average())
	}
}

func TestSampledSpectrumPredicates(t *testing.T) {
	var zero SampledSpectrum
	if zero.NonZero() {
		t.Error("Expected zero spectrum to report NonZero false")
	}
	if !(SampledSpectrum{0, 0, 1e-30, 0}).NonZero() {
		t.Error("Expected tiny component to count as non-zero")
	}

	invalid := []SampledSpectrum{
		{math.NaN(), 0, 0, 0},
		{0, math.Inf(1), 0, 0},
		{0, 0, -1, 0},
	}
	for i, s := range invalid {
		if s.IsValid() {
			t.Errorf("[spec %d] expected %v to be invalid", i, s)
		}
	}
	if !(SampledSpectrum{0, 1, 2, 3}).IsValid() {
		t.Error("Expected finite non-negative spectrum to be valid")
	}
}

func TestSampleVisibleRange(t *testing.T) {
	for _, u := range []float64{0, 0.1, 0.5, 0.9, 0.999} {
		swl := SampleVisible(u)
		for i, lambda := range swl.Lambda {
			if lambda < LambdaMin || lambda > LambdaMax {
				t.Errorf("u=%f: wavelength %d out of range: %f", u, i, lambda)
			}
			if swl.PDF[i] <= 0 {
				t.Errorf("u=%f: expected positive pdf, got %f", u, swl.PDF[i])
			}
		}
	}
}

func TestVisibleWavelengthPDFIntegratesToOne(t *testing.T) {
	total := 0.0
	const step = 0.1
	for lambda := LambdaMin; lambda < LambdaMax; lambda += step {
		total += VisibleWavelengthPDF(lambda+step/2) * step
	}
	if math.Abs(total-1) > 1e-3 {
		t.Errorf("Expected pdf to integrate to one, got %f", total)
	}
}

func TestSampleUniformStratifies(t *testing.T) {
	swl := SampleUniform(0.9, LambdaMin, LambdaMax)
	for i, lambda := range swl.Lambda {
		if lambda < LambdaMin || lambda > LambdaMax {
			t.Errorf("Wavelength %d out of range: %f", i, lambda)
		}
		if math.Abs(swl.PDF[i]-1/(LambdaMax-LambdaMin)) > 1e-15 {
			t.Errorf("Expected uniform pdf, got %f", swl.PDF[i])
		}
	}
}

func TestTerminateSecondary(t *testing.T) {
	swl := SampleVisible(0.3)
	first := swl.PDF[0]
	swl.TerminateSecondary()
	if !swl.SecondaryTerminated() {
		t.Fatal("Expected secondary wavelengths to be terminated")
	}
	if math.Abs(swl.PDF[0]-first/NSamples) > 1e-15 {
		t.Errorf("Expected first pdf divided by %d, got %f", NSamples, swl.PDF[0])
	}
}

func TestIlluminantLuminance(t *testing.T) {
	if y := SpectrumToXYZ(Illuminant(2)).Y; math.Abs(y-2) > 1e-9 {
		t.Errorf("Expected illuminant luminance 2, got %f", y)
	}
	if y := SpectrumToXYZ(BlackbodyIlluminant(6500, 1)).Y; math.Abs(y-1) > 1e-9 {
		t.Errorf("Expected blackbody luminance 1, got %f", y)
	}
}

func TestRGBGreyIsFlat(t *testing.T) {
	grey := RGB{R: 0.5, G: 0.5, B: 0.5}
	for _, lambda := range []float64{380, 500, 600, 800} {
		if v := grey.Evaluate(lambda); v != 0.5 {
			t.Errorf("Expected 0.5 at %fnm, got %f", lambda, v)
		}
	}
}

func TestToXYZUnbiasedForFlatSpectrum(t *testing.T) {
	// Averaging many wavelength samples of a flat unit spectrum must converge to Y=1
	const n = 4000
	total := 0.0
	for i := 0; i < n; i++ {
		u := (float64(i) + 0.5) / n
		swl := SampleVisible(u)
		total += Luminance(NewSampledSpectrum(1), swl)
	}
	if y := total / n; math.Abs(y-1) > 0.02 {
		t.Errorf("Expected mean luminance ~1, got %f", y)
	}
}
