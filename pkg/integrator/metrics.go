package integrator

import (
	"context"

	"go.opencensus.io/stats"
	"go.opencensus.io/stats/view"
	"go.opencensus.io/tag"
)

var (
	// SceneKey tags every measurement with the scene being rendered
	SceneKey = tag.MustNewKey("scene")
	// RenderKey separates the measurements of renders of the same scene within one process
	RenderKey = tag.MustNewKey("render")
)

var (
	mSamples           = stats.Int64("raytracer/samples", "Pixel samples evaluated", stats.UnitDimensionless)
	mInvalidSamples    = stats.Int64("raytracer/invalid_samples", "Samples with NaN, infinite or negative radiance", stats.UnitDimensionless)
	mCameraRayFailures = stats.Int64("raytracer/camera_ray_failures", "Camera samples that produced no ray", stats.UnitDimensionless)
	mWaveLatency       = stats.Float64("raytracer/wave_latency", "Wall time of one wave", stats.UnitMilliseconds)
)

var (
	SamplesView = &view.View{
		Name:        "raytracer/samples",
		Description: "Total pixel samples evaluated",
		TagKeys:     []tag.Key{SceneKey, RenderKey},
		Measure:     mSamples,
		Aggregation: view.Sum(),
	}
	InvalidSamplesView = &view.View{
		Name:        "raytracer/invalid_samples",
		Description: "Samples whose radiance was discarded",
		TagKeys:     []tag.Key{SceneKey, RenderKey},
		Measure:     mInvalidSamples,
		Aggregation: view.Sum(),
	}
	CameraRayFailuresView = &view.View{
		Name:        "raytracer/camera_ray_failures",
		Description: "Camera samples that produced no ray",
		TagKeys:     []tag.Key{SceneKey, RenderKey},
		Measure:     mCameraRayFailures,
		Aggregation: view.Sum(),
	}
	WavesView = &view.View{
		Name:        "raytracer/waves",
		Description: "Completed waves",
		TagKeys:     []tag.Key{SceneKey, RenderKey},
		Measure:     mWaveLatency,
		Aggregation: view.Count(),
	}
	WaveLatencyView = &view.View{
		Name:        "raytracer/wave_latency",
		Description: "Distribution of wave wall time",
		TagKeys:     []tag.Key{SceneKey, RenderKey},
		Measure:     mWaveLatency,
		Aggregation: view.Distribution(1, 10, 100, 1000, 10000, 100000),
	}
)

// Views returns every view the integrators record into
func Views() []*view.View {
	return []*view.View{SamplesView, InvalidSamplesView, CameraRayFailuresView, WavesView, WaveLatencyView}
}

// RegisterViews registers the integrator views with opencensus
func RegisterViews() error {
	return view.Register(Views()...)
}

// metricsContext returns a context carrying the scene and render tags
func metricsContext(options Options) context.Context {
	ctx, err := tag.New(context.Background(),
		tag.Upsert(SceneKey, options.Label),
		tag.Upsert(RenderKey, options.RenderID))
	if err != nil {
		logger.Warningf("while tagging metrics for %q (render %q): %v", options.Label, options.RenderID, err)
		return context.Background()
	}
	return ctx
}
