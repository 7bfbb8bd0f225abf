package integrator

import (
	"image"
	"sync"
	"sync/atomic"

	"github.com/df07/go-spectral-raytracer/pkg/camera"
	"github.com/df07/go-spectral-raytracer/pkg/core"
	"github.com/df07/go-spectral-raytracer/pkg/geometry"
	"github.com/df07/go-spectral-raytracer/pkg/lights"
	"github.com/df07/go-spectral-raytracer/pkg/material"
	"github.com/df07/go-spectral-raytracer/pkg/sampler"
	"github.com/df07/go-spectral-raytracer/pkg/spectrum"
)

// constantBSDF scatters the same value in every direction
type constantBSDF struct {
	value spectrum.SampledSpectrum
}

func (b *constantBSDF) F(wo, wi core.Vec3) spectrum.SampledSpectrum {
	return b.value
}

type constantMaterial struct {
	value float64
}

func (m *constantMaterial) BSDF(ctx material.EvalContext, lambda spectrum.SampledWavelengths, buf *core.ScratchBuffer) material.BSDF {
	bsdf := core.Alloc[constantBSDF](buf)
	bsdf.value = spectrum.NewSampledSpectrum(m.value)
	return bsdf
}

// hitEverythingScene reports a hit one unit down every ray and counts intersection tests
type hitEverythingScene struct {
	material  material.Material
	areaLight lights.AreaLight
	infinite  []lights.Light
	tests     atomic.Int64
}

func (s *hitEverythingScene) Intersect(ray core.Ray, tMax float64) (*geometry.ShapeIntersection, bool) {
	s.tests.Add(1)
	n := ray.Direction.Negate()
	return &geometry.ShapeIntersection{
		Intr: geometry.SurfaceInteraction{
			P:         ray.At(1),
			N:         n,
			Wo:        n,
			Shading:   geometry.ShadingGeometry{N: n},
			Material:  s.material,
			AreaLight: s.areaLight,
		},
		THit: 1,
	}, true
}

func (s *hitEverythingScene) InfiniteLights() []lights.Light {
	return s.infinite
}

// emitter is an area light with constant emission in every direction
type emitter struct {
	value float64
}

func (e *emitter) Type() lights.LightType                    { return lights.LightTypeFinite }
func (e *emitter) Preprocess(sceneBounds core.Bounds3) error { return nil }
func (e *emitter) Le(ray core.Ray, lambda spectrum.SampledWavelengths) spectrum.SampledSpectrum {
	return spectrum.SampledSpectrum{}
}
func (e *emitter) L(p, n core.Vec3, uv core.Vec2, w core.Vec3, lambda spectrum.SampledWavelengths) spectrum.SampledSpectrum {
	return spectrum.NewSampledSpectrum(e.value)
}

// stubCamera points every ray down -z from the pixel position, or fails when fail is set
type stubCamera struct {
	fail   bool
	weight float64
}

func (c *stubCamera) GenerateRayDifferential(sample camera.CameraSample, lambda spectrum.SampledWavelengths) (camera.CameraRay, bool) {
	if c.fail {
		return camera.CameraRay{}, false
	}
	origin := core.NewVec3(sample.PFilm.X, sample.PFilm.Y, 0)
	rd := core.NewRayDifferential(core.NewRay(origin, core.NewVec3(0, 0, -1)))
	rd.HasDifferentials = true
	rd.RxOrigin = origin.Add(core.NewVec3(1, 0, 0))
	rd.RyOrigin = origin.Add(core.NewVec3(0, 1, 0))
	rd.RxDirection = rd.Direction
	rd.RyDirection = rd.Direction
	return camera.CameraRay{Ray: rd, Weight: spectrum.NewSampledSpectrum(c.weight)}, true
}

func (c *stubCamera) ApproximateFootprint(p, n core.Vec3) (core.Vec3, core.Vec3) {
	return core.Vec3{}, core.Vec3{}
}

// constantEstimator returns the same radiance for every ray and remembers the last ray it saw
type constantEstimator struct {
	value   spectrum.SampledSpectrum
	mu      sync.Mutex
	lastRay core.RayDifferential
	sawVS   bool
}

func (e *constantEstimator) Li(ray core.RayDifferential, lambda spectrum.SampledWavelengths, s sampler.Sampler, buf *core.ScratchBuffer, vs *geometry.VisibleSurface) spectrum.SampledSpectrum {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.lastRay = ray
	e.sawVS = vs != nil
	return e.value
}

type filmSample struct {
	p      image.Point
	L      spectrum.SampledSpectrum
	lambda spectrum.SampledWavelengths
	weight float64
	hasVS  bool
}

// recordingFilm keeps every sample it receives
type recordingFilm struct {
	bounds     image.Rectangle
	visibleSrf bool
	mu         sync.Mutex
	samples    []filmSample
}

func (f *recordingFilm) PixelBounds() image.Rectangle { return f.bounds }
func (f *recordingFilm) SampleWavelengths(u float64) spectrum.SampledWavelengths {
	return spectrum.SampleVisible(u)
}
func (f *recordingFilm) Filter() camera.Filter    { return camera.NewBoxFilter(core.NewVec2(0.5, 0.5)) }
func (f *recordingFilm) UsesVisibleSurface() bool { return f.visibleSrf }
func (f *recordingFilm) AddSample(p image.Point, L spectrum.SampledSpectrum, lambda spectrum.SampledWavelengths, vs *geometry.VisibleSurface, weight float64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.samples = append(f.samples, filmSample{p: p, L: L, lambda: lambda, weight: weight, hasVS: vs != nil})
}

// countingEvaluator counts samples per pixel and records sample indices in order
type countingEvaluator struct {
	mu      sync.Mutex
	counts  map[image.Point]int
	indices map[image.Point][]int
}

func newCountingEvaluator() *countingEvaluator {
	return &countingEvaluator{counts: make(map[image.Point]int), indices: make(map[image.Point][]int)}
}

func (e *countingEvaluator) EvaluatePixelSample(p image.Point, sampleIndex int, s sampler.Sampler, buf *core.ScratchBuffer) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.counts[p]++
	e.indices[p] = append(e.indices[p], sampleIndex)
}

func (e *countingEvaluator) total() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	total := 0
	for _, c := range e.counts {
		total += c
	}
	return total
}

// countingProgress sums every update
type countingProgress struct {
	total   int64
	updates atomic.Int64
	done    atomic.Bool
}

func (p *countingProgress) Update(units int64) { p.updates.Add(units) }
func (p *countingProgress) Done()              { p.done.Store(true) }

func (p *countingProgress) factory(total int64, label string, quiet bool) ProgressReporter {
	p.total = total
	return p
}
