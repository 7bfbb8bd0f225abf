package material

import (
	"math"

	"github.com/df07/go-spectral-raytracer/pkg/core"
	"github.com/df07/go-spectral-raytracer/pkg/spectrum"
)

// Mix selects one of two materials per surface point with probability Amount for Material2.
// The choice is a deterministic hash of the hit, so every evaluation at a point agrees.
type Mix struct {
	Material1 Material
	Material2 Material
	Amount    float64 // 0.0 = all material1, 1.0 = all material2
}

// NewMix creates a new mix material
func NewMix(material1, material2 Material, amount float64) *Mix {
	return &Mix{
		Material1: material1,
		Material2: material2,
		Amount:    math.Max(0.0, math.Min(amount, 1.0)),
	}
}

// Choose returns the material used at ctx
func (m *Mix) Choose(ctx EvalContext) Material {
	if m.Amount <= 0 {
		return m.Material1
	}
	if m.Amount >= 1 {
		return m.Material2
	}
	h := core.HashFloat(ctx.P.X, ctx.P.Y, ctx.P.Z, ctx.Wo.X, ctx.Wo.Y, ctx.Wo.Z)
	u := float64(h>>11) * 0x1p-53
	if core.SampleDiscrete([]float64{1 - m.Amount, m.Amount}, u, nil) == 1 {
		return m.Material2
	}
	return m.Material1
}

// BSDF implements Material
func (m *Mix) BSDF(ctx EvalContext, lambda spectrum.SampledWavelengths, buf *core.ScratchBuffer) BSDF {
	return m.Choose(ctx).BSDF(ctx, lambda, buf)
}

// ForceDiffuse replaces a material with its closest diffuse approximation
func ForceDiffuse(m Material) Material {
	switch mat := m.(type) {
	case *Diffuse:
		return mat
	case *DiffuseTransmission:
		return &Diffuse{Reflectance: mat.Reflectance}
	case *Mix:
		return NewMix(ForceDiffuse(mat.Material1), ForceDiffuse(mat.Material2), mat.Amount)
	default:
		return m
	}
}
