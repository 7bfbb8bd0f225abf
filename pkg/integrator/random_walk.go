package integrator

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-spectral-raytracer/pkg/camera"
	"github.com/df07/go-spectral-raytracer/pkg/core"
	"github.com/df07/go-spectral-raytracer/pkg/geometry"
	"github.com/df07/go-spectral-raytracer/pkg/lights"
	"github.com/df07/go-spectral-raytracer/pkg/sampler"
	"github.com/df07/go-spectral-raytracer/pkg/spectrum"
)

// ErrUnknownDirectionSampler is returned for an unrecognized direction sampler name
var ErrUnknownDirectionSampler = errors.New("integrator: unknown direction sampler")

// SceneQuery is the part of the scene the radiance estimator needs
type SceneQuery interface {
	Intersect(ray core.Ray, tMax float64) (*geometry.ShapeIntersection, bool)
	InfiniteLights() []lights.Light
}

// DirectionSampler picks the next direction of a random walk at a surface with shading normal n.
// A zero pdf means no direction was produced.
type DirectionSampler interface {
	Sample(wo, n core.Vec3, u core.Vec2) (wi core.Vec3, pdf float64)
}

// UniformSphere samples the whole sphere of directions with constant density 1/(4π)
type UniformSphere struct{}

// Sample implements DirectionSampler
func (UniformSphere) Sample(wo, n core.Vec3, u core.Vec2) (core.Vec3, float64) {
	return core.SampleUniformSphere(u), core.UniformSpherePDF
}

// CosineHemisphere samples directions proportional to |cosθ| about n. The side facing wo and
// the opposite side are each chosen half the time so transmission is still sampled.
type CosineHemisphere struct{}

// Sample implements DirectionSampler
func (CosineHemisphere) Sample(wo, n core.Vec3, u core.Vec2) (core.Vec3, float64) {
	n = n.FaceForward(wo)
	if u.X < 0.5 {
		u.X = min(2*u.X, core.OneMinusEpsilon)
	} else {
		n = n.Negate()
		u.X = min(2*u.X-1, core.OneMinusEpsilon)
	}
	wi := core.SampleCosineHemisphere(n, u)
	return wi, 0.5 * core.CosineHemispherePDF(wi.Dot(n))
}

// DirectionSamplerByName returns "uniform" (the default) or "cosine"
func DirectionSamplerByName(name string) (DirectionSampler, error) {
	switch name {
	case "", "uniform":
		return UniformSphere{}, nil
	case "cosine":
		return CosineHemisphere{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDirectionSampler, name)
	}
}

// RandomWalkIntegrator estimates radiance by following a single randomly scattered path.
// It samples directions without regard to the BSDF or the lights, so it is unbiased but noisy.
type RandomWalkIntegrator struct {
	scene      SceneQuery
	camera     camera.Camera
	maxDepth   int
	directions DirectionSampler
}

// NewRandomWalkIntegrator creates an estimator that scatters at most maxDepth times.
// A nil direction sampler samples the uniform sphere.
func NewRandomWalkIntegrator(scene SceneQuery, cam camera.Camera, maxDepth int, directions DirectionSampler) (*RandomWalkIntegrator, error) {
	if scene == nil {
		return nil, fmt.Errorf("%w: random walk integrator needs a scene", ErrNilCollaborator)
	}
	if directions == nil {
		directions = UniformSphere{}
	}
	return &RandomWalkIntegrator{
		scene:      scene,
		camera:     cam,
		maxDepth:   max(0, maxDepth),
		directions: directions,
	}, nil
}

// MaxDepth returns the number of scattering events a path may have
func (rw *RandomWalkIntegrator) MaxDepth() int {
	return rw.maxDepth
}

// Li implements RadianceEstimator
func (rw *RandomWalkIntegrator) Li(ray core.RayDifferential, lambda spectrum.SampledWavelengths, s sampler.Sampler, buf *core.ScratchBuffer, vs *geometry.VisibleSurface) spectrum.SampledSpectrum {
	return rw.li(ray, lambda, s, buf, vs, 0)
}

func (rw *RandomWalkIntegrator) li(ray core.RayDifferential, lambda spectrum.SampledWavelengths, s sampler.Sampler, buf *core.ScratchBuffer, vs *geometry.VisibleSurface, depth int) spectrum.SampledSpectrum {
	si, hit := rw.scene.Intersect(ray.Ray, math.Inf(1))
	if !hit {
		var L spectrum.SampledSpectrum
		for _, light := range rw.scene.InfiniteLights() {
			L = L.Add(light.Le(ray.Ray, lambda))
		}
		return L
	}

	isect := &si.Intr
	wo := ray.Direction.Negate()
	Le := isect.Le(wo, lambda)

	if depth >= rw.maxDepth {
		if depth == 0 && vs != nil {
			isect.ComputeDifferentials(ray, rw.camera)
			*vs = geometry.NewVisibleSurface(isect, lambda)
		}
		return Le
	}

	bsdf := isect.GetBSDF(ray, lambda, rw.camera, buf)
	if depth == 0 && vs != nil {
		*vs = geometry.NewVisibleSurface(isect, lambda)
	}
	if bsdf == nil {
		return Le
	}

	u := s.Get2D()
	wp, pdf := rw.directions.Sample(wo, isect.Shading.N, u)
	if pdf == 0 {
		return Le
	}

	fcos := bsdf.F(wo, wp).Scale(wp.AbsDot(isect.Shading.N))
	if !fcos.NonZero() {
		return Le
	}

	next := isect.SpawnRay(wp)
	return Le.Add(fcos.Mul(rw.li(next, lambda, s, buf, vs, depth+1)).DivScalar(pdf))
}
