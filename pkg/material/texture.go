package material

import (
	"math"

	"github.com/df07/go-spectral-raytracer/pkg/spectrum"
)

// Texture provides spatially varying spectral values for materials
type Texture interface {
	Evaluate(ctx EvalContext, lambda spectrum.SampledWavelengths) spectrum.SampledSpectrum
}

// SolidColor is a texture with the same spectrum everywhere
type SolidColor struct {
	Spectrum spectrum.Spectrum
}

// NewSolidColor creates a solid texture from an RGB reflectance
func NewSolidColor(r, g, b float64) *SolidColor {
	return &SolidColor{Spectrum: spectrum.RGB{R: r, G: g, B: b}}
}

// Evaluate returns the solid spectrum regardless of position
func (s *SolidColor) Evaluate(ctx EvalContext, lambda spectrum.SampledWavelengths) spectrum.SampledSpectrum {
	return spectrum.Sample(s.Spectrum, lambda)
}

// Checkerboard is a solid 3D checker pattern. When the pixel footprint covers a
// large part of a check the two colors blend towards their average, which removes
// the aliasing a point-sampled checker shows at grazing angles.
type Checkerboard struct {
	Even, Odd Texture
	Frequency float64 // Checks per world unit
}

// NewCheckerboard creates a checkerboard texture
func NewCheckerboard(even, odd Texture, frequency float64) *Checkerboard {
	return &Checkerboard{Even: even, Odd: odd, Frequency: frequency}
}

// Evaluate implements Texture
func (c *Checkerboard) Evaluate(ctx EvalContext, lambda spectrum.SampledWavelengths) spectrum.SampledSpectrum {
	p := ctx.P.Multiply(c.Frequency)
	cell := int(math.Floor(p.X)) + int(math.Floor(p.Y)) + int(math.Floor(p.Z))

	point := c.Even.Evaluate(ctx, lambda)
	if cell&1 != 0 {
		point = c.Odd.Evaluate(ctx, lambda)
	}

	width := max(ctx.DPDX.Length(), ctx.DPDY.Length()) * c.Frequency
	if width == 0 {
		return point
	}
	average := c.Even.Evaluate(ctx, lambda).Add(c.Odd.Evaluate(ctx, lambda)).Scale(0.5)
	t := min(1, width)
	return point.Scale(1 - t).Add(average.Scale(t))
}
