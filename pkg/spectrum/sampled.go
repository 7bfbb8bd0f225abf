// Package spectrum implements wavelength-sampled radiometric quantities.
//
// Radiance is carried as a SampledSpectrum: the value of a continuous
// spectral distribution at NSamples wavelengths drawn once per camera
// sample and shared by every vertex of the resulting path.
package spectrum

import (
	"fmt"
	"math"
)

// NSamples is the number of wavelengths carried by every SampledSpectrum
const NSamples = 4

// SampledSpectrum holds spectral values at the wavelengths of a SampledWavelengths
type SampledSpectrum [NSamples]float64

// NewSampledSpectrum returns a spectrum with every component set to c
func NewSampledSpectrum(c float64) SampledSpectrum {
	var s SampledSpectrum
	for i := range s {
		s[i] = c
	}
	return s
}

// Add returns the component-wise sum
func (s SampledSpectrum) Add(o SampledSpectrum) SampledSpectrum {
	for i := range s {
		s[i] += o[i]
	}
	return s
}

// Sub returns the component-wise difference
func (s SampledSpectrum) Sub(o SampledSpectrum) SampledSpectrum {
	for i := range s {
		s[i] -= o[i]
	}
	return s
}

// Mul returns the component-wise product
func (s SampledSpectrum) Mul(o SampledSpectrum) SampledSpectrum {
	for i := range s {
		s[i] *= o[i]
	}
	return s
}

// Scale multiplies every component by a scalar
func (s SampledSpectrum) Scale(a float64) SampledSpectrum {
	for i := range s {
		s[i] *= a
	}
	return s
}

// DivScalar divides every component by a scalar
func (s SampledSpectrum) DivScalar(a float64) SampledSpectrum {
	for i := range s {
		s[i] /= a
	}
	return s
}

// SafeDiv divides component-wise, yielding zero where the divisor is zero
func (s SampledSpectrum) SafeDiv(o SampledSpectrum) SampledSpectrum {
	for i := range s {
		if o[i] != 0 {
			s[i] /= o[i]
		} else {
			s[i] = 0
		}
	}
	return s
}

// NonZero reports whether any component is non-zero
func (s SampledSpectrum) NonZero() bool {
	for _, v := range s {
		if v != 0 {
			return true
		}
	}
	return false
}

// HasNaN reports whether any component is NaN
func (s SampledSpectrum) HasNaN() bool {
	for _, v := range s {
		if math.IsNaN(v) {
			return true
		}
	}
	return false
}

// IsValid reports whether every component is finite and non-negative
func (s SampledSpectrum) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return false
		}
	}
	return true
}

// Average returns the mean of the components
func (s SampledSpectrum) Average() float64 {
	sum := 0.0
	for _, v := range s {
		sum += v
	}
	return sum / NSamples
}

// MaxComponent returns the largest component
func (s SampledSpectrum) MaxComponent() float64 {
	m := s[0]
	for _, v := range s[1:] {
		m = max(m, v)
	}
	return m
}

func (s SampledSpectrum) String() string {
	return fmt.Sprintf("[%g %g %g %g]", s[0], s[1], s[2], s[3])
}
