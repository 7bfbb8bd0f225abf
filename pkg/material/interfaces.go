package material

import (
	"github.com/df07/go-spectral-raytracer/pkg/core"
	"github.com/df07/go-spectral-raytracer/pkg/spectrum"
)

// BSDF evaluates scattering at a single surface point.
// Directions are world-space unit vectors pointing away from the surface.
type BSDF interface {
	F(wo, wi core.Vec3) spectrum.SampledSpectrum
}

// Material builds the BSDF for a surface point
type Material interface {
	// BSDF returns the scattering function at ctx. The result may be allocated from buf
	// and is only valid until buf is reset.
	BSDF(ctx EvalContext, lambda spectrum.SampledWavelengths, buf *core.ScratchBuffer) BSDF
}

// EvalContext is the geometric information materials and textures evaluate against
type EvalContext struct {
	P    core.Vec3 // Hit point
	N    core.Vec3 // Geometric normal
	Ns   core.Vec3 // Shading normal, on the same side as N
	UV   core.Vec2
	Wo   core.Vec3 // Outgoing direction
	DPDX core.Vec3 // Surface footprint of a one pixel step in x
	DPDY core.Vec3 // Surface footprint of a one pixel step in y
}

func sameHemisphere(wo, wi, n core.Vec3) bool {
	return wo.Dot(n)*wi.Dot(n) > 0
}
