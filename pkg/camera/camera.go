package camera

import (
	"image"

	"github.com/df07/go-spectral-raytracer/pkg/core"
	"github.com/df07/go-spectral-raytracer/pkg/sampler"
	"github.com/df07/go-spectral-raytracer/pkg/spectrum"
)

// CameraSample holds everything a camera needs to generate one primary ray
type CameraSample struct {
	PFilm        core.Vec2 // Raster position, (0,0) is the top-left corner of the film
	PLens        core.Vec2
	Time         float64
	FilterWeight float64
}

// GetCameraSample draws the film position, time and lens position for pixel p.
// With jitter disabled the sampler is still advanced but every sample sits at the
// pixel center, at mid-shutter and at the lens center.
func GetCameraSample(s sampler.Sampler, p image.Point, filter Filter, disableJitter bool) CameraSample {
	fs := filter.Sample(s.GetPixel2D())
	if disableJitter {
		fs = FilterSample{Weight: 1}
	}

	cs := CameraSample{
		PFilm:        core.NewVec2(float64(p.X)+fs.P.X+0.5, float64(p.Y)+fs.P.Y+0.5),
		Time:         s.Get1D(),
		PLens:        s.Get2D(),
		FilterWeight: fs.Weight,
	}
	if disableJitter {
		cs.Time = 0.5
		cs.PLens = core.NewVec2(0.5, 0.5)
	}
	return cs
}

// CameraRay is a generated primary ray and the weight its radiance is scaled by
type CameraRay struct {
	Ray    core.RayDifferential
	Weight spectrum.SampledSpectrum
}

// Camera generates primary rays. Implementations must be safe for concurrent use,
// which in practice means GenerateRayDifferential does not mutate the camera.
type Camera interface {
	// GenerateRayDifferential returns false when the sample produces no ray, for example
	// when the lens position is blocked by the aperture
	GenerateRayDifferential(sample CameraSample, lambda spectrum.SampledWavelengths) (CameraRay, bool)

	// ApproximateFootprint estimates how far a one pixel step moves across a surface
	// at p with normal n, for rays that carry no differentials
	ApproximateFootprint(p, n core.Vec3) (dpdx, dpdy core.Vec3)
}
