package lights

import (
	"github.com/df07/go-spectral-raytracer/pkg/core"
	"github.com/df07/go-spectral-raytracer/pkg/spectrum"
)

// DiffuseAreaLight emits the same radiance in every direction of its front hemisphere
type DiffuseAreaLight struct {
	Lemit    spectrum.Spectrum
	Scale    float64
	TwoSided bool

	preprocessed bool
	sceneBounds  core.Bounds3
}

// NewDiffuseAreaLight creates an area light emitting scale*lemit
func NewDiffuseAreaLight(lemit spectrum.Spectrum, scale float64, twoSided bool) *DiffuseAreaLight {
	return &DiffuseAreaLight{Lemit: lemit, Scale: scale, TwoSided: twoSided}
}

func (l *DiffuseAreaLight) Type() LightType {
	return LightTypeFinite
}

// Preprocess implements Light
func (l *DiffuseAreaLight) Preprocess(sceneBounds core.Bounds3) error {
	l.sceneBounds = sceneBounds
	l.preprocessed = true
	return nil
}

// Le implements Light; area lights are only seen by hitting their surface
func (l *DiffuseAreaLight) Le(ray core.Ray, lambda spectrum.SampledWavelengths) spectrum.SampledSpectrum {
	return spectrum.SampledSpectrum{}
}

// L evaluates emitted radiance leaving point p with surface normal n in direction w
func (l *DiffuseAreaLight) L(p, n core.Vec3, uv core.Vec2, w core.Vec3, lambda spectrum.SampledWavelengths) spectrum.SampledSpectrum {
	core.Assert(l.preprocessed, "area light evaluated before Preprocess")
	if !l.TwoSided && n.Dot(w) < 0 {
		return spectrum.SampledSpectrum{}
	}
	return spectrum.Sample(l.Lemit, lambda).Scale(l.Scale)
}
