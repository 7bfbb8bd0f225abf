package spectrum

import (
	"math"
)

// Spectrum is a continuous spectral distribution over wavelength in nanometers
type Spectrum interface {
	Evaluate(lambda float64) float64
}

// Sample evaluates s at every wavelength of swl
func Sample(s Spectrum, swl SampledWavelengths) SampledSpectrum {
	var out SampledSpectrum
	for i, lambda := range swl.Lambda {
		out[i] = s.Evaluate(lambda)
	}
	return out
}

// Constant is a spectrum with the same value at every wavelength
type Constant float64

// Evaluate implements Spectrum
func (c Constant) Evaluate(lambda float64) float64 {
	return float64(c)
}

// Dense is a piecewise-constant spectrum with evenly spaced samples over [SrcX, LimX)
type Dense struct {
	SrcX    float64
	LimX    float64
	Samples []float64
}

// StepX returns the width of each sample bucket
func (d *Dense) StepX() float64 {
	return (d.LimX - d.SrcX) / float64(len(d.Samples))
}

// Evaluate implements Spectrum; wavelengths outside the domain evaluate to zero
func (d *Dense) Evaluate(lambda float64) float64 {
	if lambda < d.SrcX || lambda >= d.LimX {
		return 0
	}
	return d.Samples[int((lambda-d.SrcX)/d.StepX())]
}

// Integrate returns the exact integral of d over its domain
func (d *Dense) Integrate() float64 {
	total := 0.0
	for _, v := range d.Samples {
		total += v
	}
	return total * d.StepX()
}

// Scaled multiplies another spectrum by a constant
type Scaled struct {
	Scale float64
	S     Spectrum
}

// Evaluate implements Spectrum
func (s Scaled) Evaluate(lambda float64) float64 {
	return s.Scale * s.S.Evaluate(lambda)
}

// RGB maps an RGB triple onto three adjoining wavelength bands.
// Equal components produce a flat spectrum, so greys stay neutral.
type RGB struct {
	R, G, B float64
}

const (
	blueGreenEdge = 495.0
	greenRedEdge  = 590.0
)

// Evaluate implements Spectrum
func (c RGB) Evaluate(lambda float64) float64 {
	switch {
	case lambda < blueGreenEdge:
		return c.B
	case lambda < greenRedEdge:
		return c.G
	default:
		return c.R
	}
}

// Blackbody is Planck's law for temperature T (Kelvin), normalized to a peak of one
type Blackbody struct {
	T          float64
	normalizer float64
}

// NewBlackbody creates a normalized blackbody emitter
func NewBlackbody(t float64) *Blackbody {
	peak := 2.8977721e-3 / t // Wien's displacement law, meters
	return &Blackbody{T: t, normalizer: 1 / planck(peak*1e9, t)}
}

// Evaluate implements Spectrum
func (b *Blackbody) Evaluate(lambda float64) float64 {
	return planck(lambda, b.T) * b.normalizer
}

func planck(lambda, t float64) float64 {
	if t <= 0 {
		return 0
	}
	const (
		c  = 299792458.0
		h  = 6.62606957e-34
		kb = 1.3806488e-23
	)
	l := lambda * 1e-9
	return (2 * h * c * c) / (math.Pow(l, 5) * (math.Exp((h*c)/(l*kb*t)) - 1))
}

// InnerProduct integrates the product of two spectra over the sampled range at 1nm steps
func InnerProduct(a, b Spectrum) float64 {
	total := 0.0
	for lambda := LambdaMin; lambda <= LambdaMax; lambda++ {
		total += a.Evaluate(lambda) * b.Evaluate(lambda)
	}
	return total
}
