// Package renderer assembles a scene, camera, film and integrators from a RenderConfig and
// runs the render to completion.
package renderer

import (
	"context"
	"fmt"
	"image"
	"math"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/df07/go-spectral-raytracer/pkg/camera"
	"github.com/df07/go-spectral-raytracer/pkg/config"
	"github.com/df07/go-spectral-raytracer/pkg/film"
	"github.com/df07/go-spectral-raytracer/pkg/integrator"
	"github.com/df07/go-spectral-raytracer/pkg/log"
	"github.com/df07/go-spectral-raytracer/pkg/sampler"
	"github.com/df07/go-spectral-raytracer/pkg/scene"
)

var logger = log.New("renderer")

// renderSeq numbers the renderers created by this process
var renderSeq atomic.Int64

// WaveResult is the state of the film after a completed wave
type WaveResult struct {
	integrator.WaveResult
	Image  *image.RGBA
	Stats  RenderStats
	IsLast bool
}

// Renderer owns every collaborator of one render
type Renderer struct {
	config config.RenderConfig
	scene  *scene.Scene
	camera *camera.PerspectiveCamera
	film   *film.RGBFilm
	rays   *integrator.RayIntegrator
	tiles  *integrator.ImageTileIntegrator
	id     string // Tags this render's metrics
	start  time.Time

	// OnWave is called with a snapshot of the film after every wave
	OnWave func(WaveResult) error
}

// New builds the renderer described by cfg
func New(cfg config.RenderConfig) (*Renderer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := integrator.RegisterViews(); err != nil {
		return nil, fmt.Errorf("while registering metric views: %w", err)
	}

	sc, err := scene.New(cfg.Scene)
	if err != nil {
		return nil, err
	}
	if cfg.ForceDiffuse {
		sc.ForceDiffuse()
	}
	intersector, err := sc.Preprocess()
	if err != nil {
		return nil, err
	}

	camConfig := sc.CameraConfig
	camConfig.Width = cfg.Width
	camConfig.AspectRatio = cfg.AspectRatio()
	camConfig.FootprintScale = max(0.125, 1/math.Sqrt(float64(cfg.SamplesPerPixel)))
	camConfig.DisableTextureFiltering = cfg.DisableTextureFiltering
	cam := camera.NewPerspectiveCamera(camConfig)
	width, height := cam.Resolution()
	bounds := image.Rect(0, 0, width, height)

	filter, err := camera.NewFilter(cfg.Filter.Type, cfg.Filter.Radius)
	if err != nil {
		return nil, err
	}
	f := film.NewRGBFilm(film.RGBFilmConfig{
		Bounds:         bounds,
		Filter:         filter,
		WriteAuxiliary: cfg.WriteAuxiliary,
	})

	prototype, err := sampler.New(cfg.Sampler, cfg.SamplesPerPixel, cfg.Seed, !cfg.DisablePixelJitter)
	if err != nil {
		return nil, err
	}

	directions, err := integrator.DirectionSamplerByName(cfg.DirectionSampler)
	if err != nil {
		return nil, err
	}

	options := integrator.Options{
		Label:                   sc.Name,
		RenderID:                strconv.FormatInt(renderSeq.Add(1), 10),
		Quiet:                   cfg.Quiet,
		DisablePixelJitter:      cfg.DisablePixelJitter,
		DisableWavelengthJitter: cfg.DisableWavelengthJitter,
		ScaleDifferentials:      cfg.ScaleDifferentials,
		Workers:                 cfg.Workers,
		TileSize:                cfg.TileSize,
	}

	walk, err := integrator.NewRandomWalkIntegrator(intersector, cam, cfg.MaxDepth, directions)
	if err != nil {
		return nil, err
	}
	rays, err := integrator.NewRayIntegrator(cam, f, walk, cfg.SamplesPerPixel, options)
	if err != nil {
		return nil, err
	}
	tiles, err := integrator.NewImageTileIntegrator(bounds, prototype, rays, options)
	if err != nil {
		return nil, err
	}

	r := &Renderer{
		config: cfg,
		scene:  sc,
		camera: cam,
		film:   f,
		rays:   rays,
		tiles:  tiles,
		id:     options.RenderID,
	}
	tiles.OnWaveComplete = r.waveComplete
	return r, nil
}

// Film returns the film samples accumulate into
func (r *Renderer) Film() *film.RGBFilm {
	return r.film
}

// Scene returns the scene being rendered
func (r *Renderer) Scene() *scene.Scene {
	return r.scene
}

// Render runs every wave and returns the final image
func (r *Renderer) Render(ctx context.Context) (*image.RGBA, RenderStats, error) {
	r.start = time.Now()
	logger.Noticef("rendering scene %q at %dx%d with %d samples per pixel, max depth %d",
		r.scene.Name, r.film.PixelBounds().Dx(), r.film.PixelBounds().Dy(), r.config.SamplesPerPixel, r.config.MaxDepth)

	if err := r.tiles.Render(ctx); err != nil {
		return nil, r.stats(), fmt.Errorf("while rendering scene %q: %w", r.scene.Name, err)
	}

	stats := r.stats()
	logger.Noticef("render statistics\n%s", stats.Table())
	return r.film.Image(), stats, nil
}

// RenderProgressive renders in the background and delivers a result after every wave.
// Both channels are closed when the render ends; at most one error is sent.
func (r *Renderer) RenderProgressive(ctx context.Context) (<-chan WaveResult, <-chan error) {
	waveChan := make(chan WaveResult, 1)
	errChan := make(chan error, 1)

	onWave := r.OnWave
	r.OnWave = func(result WaveResult) error {
		if onWave != nil {
			if err := onWave(result); err != nil {
				return err
			}
		}
		select {
		case waveChan <- result:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	go func() {
		defer close(waveChan)
		defer close(errChan)
		defer func() { r.OnWave = onWave }()

		if _, _, err := r.Render(ctx); err != nil {
			errChan <- err
		}
	}()

	return waveChan, errChan
}

func (r *Renderer) waveComplete(result integrator.WaveResult) error {
	img := r.film.Image()
	if r.config.Checkpoint && r.config.Output != "" {
		if err := WritePNG(r.config.Output, img); err != nil {
			return fmt.Errorf("while writing checkpoint: %w", err)
		}
		logger.Infof("checkpoint %s after %d samples per pixel", r.config.Output, result.End)
	}

	if r.OnWave == nil {
		return nil
	}
	return r.OnWave(WaveResult{
		WaveResult: result,
		Image:      img,
		Stats:      r.stats(),
		IsLast:     result.End == result.SamplesPerPixel,
	})
}

// Render builds a renderer from cfg and runs it
func Render(ctx context.Context, cfg config.RenderConfig) (*image.RGBA, RenderStats, error) {
	r, err := New(cfg)
	if err != nil {
		return nil, RenderStats{}, err
	}
	return r.Render(ctx)
}
