package spectrum

import (
	"github.com/df07/go-spectral-raytracer/pkg/core"
)

// CIEYIntegral normalizes spectral integrals so a flat unit spectrum has luminance one
var CIEYIntegral = cieY.Integrate()

// XYZ is a CIE tristimulus value
type XYZ struct {
	X, Y, Z float64
}

// ToXYZ estimates the tristimulus value of s from its wavelength samples.
// Components whose wavelength pdf is zero contribute nothing.
func ToXYZ(s SampledSpectrum, swl SampledWavelengths) XYZ {
	var xyz XYZ
	for i, lambda := range swl.Lambda {
		if swl.PDF[i] == 0 {
			continue
		}
		v := s[i] / swl.PDF[i]
		xyz.X += cieX.Evaluate(lambda) * v
		xyz.Y += cieY.Evaluate(lambda) * v
		xyz.Z += cieZ.Evaluate(lambda) * v
	}
	scale := 1 / (NSamples * CIEYIntegral)
	return XYZ{xyz.X * scale, xyz.Y * scale, xyz.Z * scale}
}

// Luminance returns the Y estimate of s
func Luminance(s SampledSpectrum, swl SampledWavelengths) float64 {
	return ToXYZ(s, swl).Y
}

// LinearSRGB converts to linear sRGB primaries with a D65 white point
func (c XYZ) LinearSRGB() core.Vec3 {
	return core.Vec3{
		X: 3.2404542*c.X - 1.5371385*c.Y - 0.4985314*c.Z,
		Y: -0.9692660*c.X + 1.8760108*c.Y + 0.0415560*c.Z,
		Z: 0.0556434*c.X - 0.2040259*c.Y + 1.0572252*c.Z,
	}
}

// SpectrumToXYZ integrates a continuous spectrum against the matching functions
func SpectrumToXYZ(s Spectrum) XYZ {
	return XYZ{
		X: InnerProduct(cieX, s) / CIEYIntegral,
		Y: InnerProduct(cieY, s) / CIEYIntegral,
		Z: InnerProduct(cieZ, s) / CIEYIntegral,
	}
}

// Illuminant returns the D65 illuminant scaled so its luminance equals scale
func Illuminant(scale float64) Spectrum {
	y := SpectrumToXYZ(stdIlluminantD65).Y
	if y == 0 {
		return Constant(0)
	}
	return Scaled{Scale: scale / y, S: stdIlluminantD65}
}

// BlackbodyIlluminant returns a blackbody emitter scaled so its luminance equals scale
func BlackbodyIlluminant(temperature, scale float64) Spectrum {
	b := NewBlackbody(temperature)
	y := SpectrumToXYZ(b).Y
	if y == 0 {
		return Constant(0)
	}
	return Scaled{Scale: scale / y, S: b}
}
