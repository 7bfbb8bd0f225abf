package integrator

import (
	"context"
	"fmt"
	"image"
	"math"
	"sync/atomic"

	"go.opencensus.io/stats"

	"github.com/df07/go-spectral-raytracer/pkg/camera"
	"github.com/df07/go-spectral-raytracer/pkg/core"
	"github.com/df07/go-spectral-raytracer/pkg/film"
	"github.com/df07/go-spectral-raytracer/pkg/geometry"
	"github.com/df07/go-spectral-raytracer/pkg/sampler"
	"github.com/df07/go-spectral-raytracer/pkg/spectrum"
)

// invalidSampleWarnings is how many invalid samples are logged at Warning before dropping to Debug
const invalidSampleWarnings = 10

// RadianceEstimator computes incident radiance along a camera ray. vs is non-nil only when
// the film records auxiliary surface data, and the estimator fills it from the first hit.
type RadianceEstimator interface {
	Li(ray core.RayDifferential, lambda spectrum.SampledWavelengths, s sampler.Sampler, buf *core.ScratchBuffer, vs *geometry.VisibleSurface) spectrum.SampledSpectrum
}

// RayIntegrator turns a pixel sample into a camera ray, estimates its radiance and adds the
// result to the film. It is safe for concurrent use as long as the film accepts concurrent
// samples for distinct pixels.
type RayIntegrator struct {
	camera    camera.Camera
	film      film.Film
	estimator RadianceEstimator
	options   Options

	differentialScale float64
	metricsCtx        context.Context // Carries the scene tag for recorded measures

	invalidSamples    atomic.Int64
	cameraRayFailures atomic.Int64
}

// NewRayIntegrator creates a pixel evaluator for spp samples per pixel
func NewRayIntegrator(cam camera.Camera, f film.Film, estimator RadianceEstimator, spp int, options Options) (*RayIntegrator, error) {
	if cam == nil || f == nil || estimator == nil {
		return nil, fmt.Errorf("%w: ray integrator needs a camera, a film and a radiance estimator", ErrNilCollaborator)
	}
	if spp <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrZeroSamplesPerPixel, spp)
	}
	return &RayIntegrator{
		camera:            cam,
		film:              f,
		estimator:         estimator,
		options:           options,
		differentialScale: max(0.125, 1/math.Sqrt(float64(spp))),
		metricsCtx:        metricsContext(options),
	}, nil
}

// DifferentialScale returns the factor camera ray differentials are scaled by
func (r *RayIntegrator) DifferentialScale() float64 {
	return r.differentialScale
}

// InvalidSamples returns how many samples had NaN, infinite or negative radiance
func (r *RayIntegrator) InvalidSamples() int64 {
	return r.invalidSamples.Load()
}

// CameraRayFailures returns how many camera samples produced no ray
func (r *RayIntegrator) CameraRayFailures() int64 {
	return r.cameraRayFailures.Load()
}

// EvaluatePixelSample implements PixelEvaluator
func (r *RayIntegrator) EvaluatePixelSample(p image.Point, sampleIndex int, s sampler.Sampler, buf *core.ScratchBuffer) {
	lu := s.Get1D()
	if r.options.DisableWavelengthJitter {
		lu = 0.5
	}
	lambda := r.film.SampleWavelengths(lu)

	cs := camera.GetCameraSample(s, p, r.film.Filter(), r.options.DisablePixelJitter)

	cr, ok := r.camera.GenerateRayDifferential(cs, lambda)
	if !ok {
		r.cameraRayFailures.Add(1)
		stats.Record(r.metricsCtx, mCameraRayFailures.M(1))
		r.film.AddSample(p, spectrum.SampledSpectrum{}, lambda, nil, cs.FilterWeight)
		return
	}

	if r.options.ScaleDifferentials {
		cr.Ray.ScaleDifferentials(r.differentialScale)
	}

	var vs *geometry.VisibleSurface
	if r.film.UsesVisibleSurface() {
		vs = core.Alloc[geometry.VisibleSurface](buf)
	}

	L := r.estimator.Li(cr.Ray, lambda, s, buf, vs).Mul(cr.Weight)

	if !L.IsValid() {
		n := r.invalidSamples.Add(1)
		stats.Record(r.metricsCtx, mInvalidSamples.M(1))
		if n <= invalidSampleWarnings {
			logger.Warningf("invalid radiance %v at pixel %v sample %d, discarding", L, p, sampleIndex)
		} else {
			logger.Debugf("invalid radiance %v at pixel %v sample %d, discarding", L, p, sampleIndex)
		}
		L = spectrum.SampledSpectrum{}
	}

	r.film.AddSample(p, L, lambda, vs, cs.FilterWeight)
}
