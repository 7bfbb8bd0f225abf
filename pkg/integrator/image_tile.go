package integrator

import (
	"context"
	"fmt"
	"image"
	"runtime"
	"time"

	"go.opencensus.io/stats"
	"golang.org/x/sync/errgroup"

	"github.com/df07/go-spectral-raytracer/pkg/core"
	"github.com/df07/go-spectral-raytracer/pkg/log"
	"github.com/df07/go-spectral-raytracer/pkg/sampler"
)

var logger = log.New("integrator")

// maxWaveSize caps how many samples per pixel one wave may issue
const maxWaveSize = 64

// PixelEvaluator computes and records one sample of one pixel. The sampler has already been
// started for (p, sampleIndex) and buf has been reset.
type PixelEvaluator interface {
	EvaluatePixelSample(p image.Point, sampleIndex int, s sampler.Sampler, buf *core.ScratchBuffer)
}

// WaveSizes returns the number of samples per pixel each wave issues for spp total samples:
// 1, 1, 2, 4, ... doubling up to 64 and clipped to the remaining budget
func WaveSizes(spp int) []int {
	var sizes []int
	for wave := range waves(spp) {
		sizes = append(sizes, wave.End-wave.Start)
	}
	return sizes
}

// Wave is the half-open range of sample indices rendered in one pass over the image
type Wave struct {
	Index      int
	Start, End int
}

// waves yields the wave schedule for spp samples per pixel
func waves(spp int) func(yield func(Wave) bool) {
	return func(yield func(Wave) bool) {
		waveStart, waveEnd, nextWaveSize := 0, min(spp, 1), 1
		for index := 0; waveStart < spp; index++ {
			if !yield(Wave{Index: index, Start: waveStart, End: waveEnd}) {
				return
			}
			waveStart = waveEnd
			waveEnd = min(spp, waveEnd+nextWaveSize)
			nextWaveSize = min(2*nextWaveSize, maxWaveSize)
		}
	}
}

// WaveResult describes a completed wave
type WaveResult struct {
	Wave
	SamplesPerPixel int
	Duration        time.Duration
}

// ImageTileIntegrator drives every pixel in bounds through every sample index in growing waves.
// Within a wave, workers pull disjoint tiles so no two goroutines touch the same pixel.
type ImageTileIntegrator struct {
	bounds    image.Rectangle
	prototype sampler.Sampler
	evaluator PixelEvaluator
	options   Options

	// OnWaveComplete is called between waves, after every pixel has received the wave's samples.
	// Returning an error aborts the render.
	OnWaveComplete func(WaveResult) error
}

// workerState is owned by exactly one goroutine for the whole render
type workerState struct {
	sampler sampler.Sampler
	buf     *core.ScratchBuffer
}

// NewImageTileIntegrator creates a scheduler for the pixels in bounds
func NewImageTileIntegrator(bounds image.Rectangle, prototype sampler.Sampler, evaluator PixelEvaluator, options Options) (*ImageTileIntegrator, error) {
	if prototype == nil || evaluator == nil {
		return nil, fmt.Errorf("%w: image tile integrator needs a sampler and a pixel evaluator", ErrNilCollaborator)
	}
	if prototype.SamplesPerPixel() <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrZeroSamplesPerPixel, prototype.SamplesPerPixel())
	}
	if bounds.Empty() {
		return nil, fmt.Errorf("%w: %v", ErrEmptyPixelBounds, bounds)
	}
	if options.TileSize <= 0 {
		options.TileSize = DefaultOptions().TileSize
	}
	if options.Progress == nil {
		options.Progress = NewProgressReporter
	}
	return &ImageTileIntegrator{
		bounds:    bounds,
		prototype: prototype,
		evaluator: evaluator,
		options:   options,
	}, nil
}

// NewTileGrid splits bounds into tiles of at most tileSize×tileSize pixels in row-major order
func NewTileGrid(bounds image.Rectangle, tileSize int) []image.Rectangle {
	var tiles []image.Rectangle

	for y0 := bounds.Min.Y; y0 < bounds.Max.Y; y0 += tileSize {
		for x0 := bounds.Min.X; x0 < bounds.Max.X; x0 += tileSize {
			x1 := min(x0+tileSize, bounds.Max.X) // Don't exceed image bounds
			y1 := min(y0+tileSize, bounds.Max.Y)
			tiles = append(tiles, image.Rect(x0, y0, x1, y1))
		}
	}

	return tiles
}

// Render runs every wave to completion. Cancelling ctx stops the render between pixels;
// samples already handed to the evaluator stay recorded.
func (t *ImageTileIntegrator) Render(ctx context.Context) error {
	spp := t.prototype.SamplesPerPixel()
	tiles := NewTileGrid(t.bounds, t.options.TileSize)

	numWorkers := t.options.Workers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	numWorkers = min(numWorkers, len(tiles))

	states := make([]workerState, numWorkers)
	for i := range states {
		states[i] = workerState{sampler: t.prototype.Clone(), buf: core.NewScratchBuffer()}
	}

	pixels := int64(t.bounds.Dx() * t.bounds.Dy())
	progress := t.options.Progress(int64(spp)*pixels, t.options.Label, t.options.Quiet)
	defer progress.Done()
	metricsCtx := metricsContext(t.options)

	logger.Noticef("rendering %q: %dx%d pixels, %d samples per pixel, %d workers, %d tiles",
		t.options.Label, t.bounds.Dx(), t.bounds.Dy(), spp, numWorkers, len(tiles))
	renderStart := time.Now()

	for wave := range waves(spp) {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("while starting wave %d: %w", wave.Index, err)
		}

		waveStart := time.Now()
		if err := t.renderWave(ctx, tiles, states, wave, progress); err != nil {
			return fmt.Errorf("while rendering wave %d [%d, %d): %w", wave.Index, wave.Start, wave.End, err)
		}
		duration := time.Since(waveStart)

		stats.Record(metricsCtx,
			mSamples.M(pixels*int64(wave.End-wave.Start)),
			mWaveLatency.M(float64(duration)/float64(time.Millisecond)))
		logger.Noticef("wave %d: samples [%d, %d) of %d in %v", wave.Index, wave.Start, wave.End, spp, duration.Round(time.Millisecond))

		if t.OnWaveComplete != nil {
			result := WaveResult{Wave: wave, SamplesPerPixel: spp, Duration: duration}
			if err := t.OnWaveComplete(result); err != nil {
				return fmt.Errorf("while completing wave %d: %w", wave.Index, err)
			}
		}
	}

	logger.Noticef("rendered %q in %v", t.options.Label, time.Since(renderStart).Round(time.Millisecond))
	return nil
}

// renderWave is the wave barrier: it returns once every tile has received the wave's samples
func (t *ImageTileIntegrator) renderWave(ctx context.Context, tiles []image.Rectangle, states []workerState, wave Wave, progress ProgressReporter) error {
	g, gctx := errgroup.WithContext(ctx)

	tileQueue := make(chan image.Rectangle)
	g.Go(func() error {
		defer close(tileQueue)
		for _, tile := range tiles {
			select {
			case tileQueue <- tile:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})

	for i := range states {
		state := &states[i]
		g.Go(func() error {
			for tile := range tileQueue {
				if err := t.renderTile(gctx, tile, state, wave, progress); err != nil {
					return err
				}
			}
			return nil
		})
	}

	return g.Wait()
}

func (t *ImageTileIntegrator) renderTile(ctx context.Context, tile image.Rectangle, state *workerState, wave Wave, progress ProgressReporter) error {
	for y := tile.Min.Y; y < tile.Max.Y; y++ {
		for x := tile.Min.X; x < tile.Max.X; x++ {
			if err := ctx.Err(); err != nil {
				return err
			}

			p := image.Pt(x, y)
			for sampleIndex := wave.Start; sampleIndex < wave.End; sampleIndex++ {
				state.sampler.StartPixelSample(p, sampleIndex)
				state.buf.Reset()
				t.evaluator.EvaluatePixelSample(p, sampleIndex, state.sampler, state.buf)
			}
			progress.Update(int64(wave.End - wave.Start))
		}
	}
	return nil
}
