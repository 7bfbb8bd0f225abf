package spectrum

import (
	"math"

	"github.com/df07/go-spectral-raytracer/pkg/core"
)

const (
	// LambdaMin and LambdaMax bound the wavelengths (nm) the renderer samples
	LambdaMin = 360.0
	LambdaMax = 830.0
)

// SampledWavelengths is a set of wavelengths and the densities they were drawn with
type SampledWavelengths struct {
	Lambda [NSamples]float64
	PDF    [NSamples]float64
}

// SampleUniform draws NSamples stratified wavelengths uniformly over [lambdaMin, lambdaMax]
func SampleUniform(u, lambdaMin, lambdaMax float64) SampledWavelengths {
	var swl SampledWavelengths
	swl.Lambda[0] = core.Lerp(u, lambdaMin, lambdaMax)

	delta := (lambdaMax - lambdaMin) / NSamples
	for i := 1; i < NSamples; i++ {
		swl.Lambda[i] = swl.Lambda[i-1] + delta
		if swl.Lambda[i] > lambdaMax {
			swl.Lambda[i] = lambdaMin + (swl.Lambda[i] - lambdaMax)
		}
	}

	for i := range swl.PDF {
		swl.PDF[i] = 1 / (lambdaMax - lambdaMin)
	}
	return swl
}

// SampleVisible draws NSamples wavelengths importance-sampled towards the visible range
func SampleVisible(u float64) SampledWavelengths {
	var swl SampledWavelengths
	for i := 0; i < NSamples; i++ {
		up := u + float64(i)/NSamples
		if up > 1 {
			up -= 1
		}
		swl.Lambda[i] = SampleVisibleWavelength(up)
		swl.PDF[i] = VisibleWavelengthPDF(swl.Lambda[i])
	}
	return swl
}

// SampleVisibleWavelength inverts the CDF of the visible wavelength distribution
func SampleVisibleWavelength(u float64) float64 {
	return 538 - 138.888889*math.Atanh(0.85691062-1.82750197*u)
}

// VisibleWavelengthPDF is the density SampleVisibleWavelength draws lambda with
func VisibleWavelengthPDF(lambda float64) float64 {
	if lambda < LambdaMin || lambda > LambdaMax {
		return 0
	}
	c := math.Cosh(0.0072 * (lambda - 538))
	return 0.0039398042 / (c * c)
}

// PDFs returns the sampling densities as a spectrum
func (swl SampledWavelengths) PDFs() SampledSpectrum {
	return SampledSpectrum(swl.PDF)
}

// SecondaryTerminated reports whether only the first wavelength is still carried
func (swl SampledWavelengths) SecondaryTerminated() bool {
	for i := 1; i < NSamples; i++ {
		if swl.PDF[i] != 0 {
			return false
		}
	}
	return true
}

// TerminateSecondary keeps only the first wavelength, for wavelength-dependent scattering
func (swl *SampledWavelengths) TerminateSecondary() {
	if swl.SecondaryTerminated() {
		return
	}
	for i := 1; i < NSamples; i++ {
		swl.PDF[i] = 0
	}
	swl.PDF[0] /= NSamples
}
