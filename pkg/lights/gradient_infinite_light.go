package lights

import (
	"github.com/df07/go-spectral-raytracer/pkg/core"
	"github.com/df07/go-spectral-raytracer/pkg/spectrum"
)

// GradientInfiniteLight blends from Bottom to Top with the ray's vertical direction, like a sky
type GradientInfiniteLight struct {
	Top    spectrum.Spectrum
	Bottom spectrum.Spectrum

	worldCenter core.Vec3
	worldRadius float64
}

// NewGradientInfiniteLight creates a new gradient infinite light
func NewGradientInfiniteLight(top, bottom spectrum.Spectrum) *GradientInfiniteLight {
	return &GradientInfiniteLight{Top: top, Bottom: bottom}
}

func (l *GradientInfiniteLight) Type() LightType {
	return LightTypeInfinite
}

// Preprocess implements Light
func (l *GradientInfiniteLight) Preprocess(sceneBounds core.Bounds3) error {
	l.worldCenter, l.worldRadius = sceneBounds.BoundingSphere()
	return nil
}

// Le implements Light
func (l *GradientInfiniteLight) Le(ray core.Ray, lambda spectrum.SampledWavelengths) spectrum.SampledSpectrum {
	direction := ray.Direction.Normalize()
	t := 0.5 * (direction.Y + 1.0) // Map Y from [-1,1] to [0,1]
	top := spectrum.Sample(l.Top, lambda)
	bottom := spectrum.Sample(l.Bottom, lambda)
	return bottom.Scale(1 - t).Add(top.Scale(t))
}
