package lights

import (
	"github.com/df07/go-spectral-raytracer/pkg/core"
	"github.com/df07/go-spectral-raytracer/pkg/spectrum"
)

// UniformInfiniteLight represents a uniform infinite area light (constant emission in all directions)
type UniformInfiniteLight struct {
	Lemit spectrum.Spectrum
	Scale float64

	worldCenter core.Vec3 // Finite scene center from Preprocess
	worldRadius float64   // Finite scene radius from Preprocess
}

// NewUniformInfiniteLight creates a new uniform infinite light
func NewUniformInfiniteLight(lemit spectrum.Spectrum, scale float64) *UniformInfiniteLight {
	return &UniformInfiniteLight{Lemit: lemit, Scale: scale}
}

func (l *UniformInfiniteLight) Type() LightType {
	return LightTypeInfinite
}

// Preprocess implements Light - records the scene bounding sphere
func (l *UniformInfiniteLight) Preprocess(sceneBounds core.Bounds3) error {
	l.worldCenter, l.worldRadius = sceneBounds.BoundingSphere()
	return nil
}

// WorldSphere returns the scene bounding sphere recorded by Preprocess
func (l *UniformInfiniteLight) WorldSphere() (core.Vec3, float64) {
	return l.worldCenter, l.worldRadius
}

// Le implements Light - the same emission along every ray
func (l *UniformInfiniteLight) Le(ray core.Ray, lambda spectrum.SampledWavelengths) spectrum.SampledSpectrum {
	return spectrum.Sample(l.Lemit, lambda).Scale(l.Scale)
}
