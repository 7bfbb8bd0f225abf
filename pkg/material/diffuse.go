package material

import (
	"math"

	"github.com/df07/go-spectral-raytracer/pkg/core"
	"github.com/df07/go-spectral-raytracer/pkg/spectrum"
)

// Diffuse represents a perfectly diffuse (lambertian) reflector
type Diffuse struct {
	Reflectance Texture
}

// NewDiffuse creates a diffuse material with a solid RGB reflectance
func NewDiffuse(r, g, b float64) *Diffuse {
	return &Diffuse{Reflectance: NewSolidColor(r, g, b)}
}

// NewTexturedDiffuse creates a diffuse material with a texture
func NewTexturedDiffuse(reflectance Texture) *Diffuse {
	return &Diffuse{Reflectance: reflectance}
}

// BSDF implements Material
func (d *Diffuse) BSDF(ctx EvalContext, lambda spectrum.SampledWavelengths, buf *core.ScratchBuffer) BSDF {
	bxdf := core.Alloc[DiffuseBxDF](buf)
	bxdf.R = clampReflectance(d.Reflectance.Evaluate(ctx, lambda))
	bxdf.N = ctx.Ns
	return bxdf
}

// DiffuseBxDF reflects R/π into the hemisphere of the shading normal
type DiffuseBxDF struct {
	R spectrum.SampledSpectrum
	N core.Vec3
}

// F implements BSDF
func (b *DiffuseBxDF) F(wo, wi core.Vec3) spectrum.SampledSpectrum {
	if !sameHemisphere(wo, wi, b.N) {
		return spectrum.SampledSpectrum{}
	}
	return b.R.Scale(1 / math.Pi)
}

// DiffuseTransmission reflects R/π and transmits T/π, like a thin sheet of paper
type DiffuseTransmission struct {
	Reflectance   Texture
	Transmittance Texture
}

// NewDiffuseTransmission creates a diffuse transmission material
func NewDiffuseTransmission(reflectance, transmittance Texture) *DiffuseTransmission {
	return &DiffuseTransmission{Reflectance: reflectance, Transmittance: transmittance}
}

// BSDF implements Material
func (d *DiffuseTransmission) BSDF(ctx EvalContext, lambda spectrum.SampledWavelengths, buf *core.ScratchBuffer) BSDF {
	bxdf := core.Alloc[DiffuseTransmissionBxDF](buf)
	bxdf.R = clampReflectance(d.Reflectance.Evaluate(ctx, lambda))
	bxdf.T = clampReflectance(d.Transmittance.Evaluate(ctx, lambda))
	bxdf.N = ctx.Ns
	return bxdf
}

// DiffuseTransmissionBxDF is the BSDF of DiffuseTransmission
type DiffuseTransmissionBxDF struct {
	R, T spectrum.SampledSpectrum
	N    core.Vec3
}

// F implements BSDF
func (b *DiffuseTransmissionBxDF) F(wo, wi core.Vec3) spectrum.SampledSpectrum {
	if sameHemisphere(wo, wi, b.N) {
		return b.R.Scale(1 / math.Pi)
	}
	return b.T.Scale(1 / math.Pi)
}

func clampReflectance(s spectrum.SampledSpectrum) spectrum.SampledSpectrum {
	for i := range s {
		s[i] = max(0, min(1, s[i]))
	}
	return s
}
