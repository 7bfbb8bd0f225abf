package geometry

import (
	"github.com/df07/go-spectral-raytracer/pkg/camera"
	"github.com/df07/go-spectral-raytracer/pkg/core"
	"github.com/df07/go-spectral-raytracer/pkg/lights"
	"github.com/df07/go-spectral-raytracer/pkg/material"
	"github.com/df07/go-spectral-raytracer/pkg/spectrum"
)

// ShadingGeometry holds the normal used for scattering, which may differ from the geometric normal
type ShadingGeometry struct {
	N core.Vec3
}

// SurfaceInteraction is the local geometry at a ray hit plus the surface's material and emission
type SurfaceInteraction struct {
	P       core.Vec3 // Point of intersection
	N       core.Vec3 // Outward geometric normal
	UV      core.Vec2
	Wo      core.Vec3 // Direction back towards the ray origin
	Time    float64
	Shading ShadingGeometry

	// Screen-space footprint, filled in by ComputeDifferentials
	DPDX core.Vec3
	DPDY core.Vec3

	Material  material.Material // nil for surfaces that only mark a boundary
	AreaLight lights.AreaLight  // nil for surfaces that do not emit
}

// ShapeIntersection is a surface interaction and the ray parameter it was found at
type ShapeIntersection struct {
	Intr SurfaceInteraction
	THit float64
}

// Le returns radiance emitted by the surface in direction w
func (si *SurfaceInteraction) Le(w core.Vec3, lambda spectrum.SampledWavelengths) spectrum.SampledSpectrum {
	if si.AreaLight == nil {
		return spectrum.SampledSpectrum{}
	}
	return si.AreaLight.L(si.P, si.N, si.UV, w, lambda)
}

// SpawnRay starts a new ray at the surface heading in direction d
func (si *SurfaceInteraction) SpawnRay(d core.Vec3) core.RayDifferential {
	origin := core.OffsetRayOrigin(si.P, si.N, d)
	return core.NewRayDifferential(core.Ray{Origin: origin, Direction: d, Time: si.Time})
}

// ComputeDifferentials estimates DPDX and DPDY. Rays that carry differentials are intersected
// with the tangent plane; otherwise the camera approximates the footprint.
func (si *SurfaceInteraction) ComputeDifferentials(ray core.RayDifferential, cam camera.Camera) {
	n := si.N
	if ray.HasDifferentials && n.Dot(ray.RxDirection) != 0 && n.Dot(ray.RyDirection) != 0 {
		d := -n.Dot(si.P)
		tx := (-n.Dot(ray.RxOrigin) - d) / n.Dot(ray.RxDirection)
		ty := (-n.Dot(ray.RyOrigin) - d) / n.Dot(ray.RyDirection)
		px := ray.RxOrigin.Add(ray.RxDirection.Multiply(tx))
		py := ray.RyOrigin.Add(ray.RyDirection.Multiply(ty))
		si.DPDX = px.Subtract(si.P)
		si.DPDY = py.Subtract(si.P)
		return
	}
	if cam == nil {
		si.DPDX, si.DPDY = core.Vec3{}, core.Vec3{}
		return
	}
	si.DPDX, si.DPDY = cam.ApproximateFootprint(si.P, n)
}

// EvalContext is the view of the interaction handed to materials and textures
func (si *SurfaceInteraction) EvalContext() material.EvalContext {
	return material.EvalContext{
		P:    si.P,
		N:    si.N,
		Ns:   si.Shading.N,
		UV:   si.UV,
		Wo:   si.Wo,
		DPDX: si.DPDX,
		DPDY: si.DPDY,
	}
}

// GetBSDF computes differentials and evaluates the material. The BSDF lives in buf until
// buf is reset; a surface without a material returns nil.
func (si *SurfaceInteraction) GetBSDF(ray core.RayDifferential, lambda spectrum.SampledWavelengths, cam camera.Camera, buf *core.ScratchBuffer) material.BSDF {
	si.ComputeDifferentials(ray, cam)
	if si.Material == nil {
		return nil
	}
	return si.Material.BSDF(si.EvalContext(), lambda, buf)
}

// VisibleSurface summarizes the first surface seen through a pixel sample for auxiliary buffers
type VisibleSurface struct {
	Set    bool // false when the camera ray escaped
	P      core.Vec3
	N      core.Vec3
	Ns     core.Vec3
	UV     core.Vec2
	Time   float64
	DPDX   core.Vec3
	DPDY   core.Vec3
	Albedo spectrum.SampledSpectrum
}

// NewVisibleSurface records si; call it after GetBSDF so the footprint is available
func NewVisibleSurface(si *SurfaceInteraction, lambda spectrum.SampledWavelengths) VisibleSurface {
	vs := VisibleSurface{
		Set:  true,
		P:    si.P,
		N:    si.N,
		Ns:   si.Shading.N,
		UV:   si.UV,
		Time: si.Time,
		DPDX: si.DPDX,
		DPDY: si.DPDY,
	}
	if si.Material != nil {
		vs.Albedo = material.Albedo(si.Material, si.EvalContext(), lambda)
	}
	return vs
}
