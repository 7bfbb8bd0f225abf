package material

import "github.com/df07/go-spectral-raytracer/pkg/spectrum"

type albedoProvider interface {
	Albedo(ctx EvalContext, lambda spectrum.SampledWavelengths) spectrum.SampledSpectrum
}

// Albedo returns the hemispherical reflectance of m at ctx, or zero when the
// material cannot report one
func Albedo(m Material, ctx EvalContext, lambda spectrum.SampledWavelengths) spectrum.SampledSpectrum {
	if p, ok := m.(albedoProvider); ok {
		return p.Albedo(ctx, lambda)
	}
	return spectrum.SampledSpectrum{}
}

func (d *Diffuse) Albedo(ctx EvalContext, lambda spectrum.SampledWavelengths) spectrum.SampledSpectrum {
	return clampReflectance(d.Reflectance.Evaluate(ctx, lambda))
}

func (d *DiffuseTransmission) Albedo(ctx EvalContext, lambda spectrum.SampledWavelengths) spectrum.SampledSpectrum {
	return clampReflectance(d.Reflectance.Evaluate(ctx, lambda))
}

func (m *Mix) Albedo(ctx EvalContext, lambda spectrum.SampledWavelengths) spectrum.SampledSpectrum {
	return Albedo(m.Choose(ctx), ctx, lambda)
}
