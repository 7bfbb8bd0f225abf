package renderer

import (
	"context"
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/df07/go-spectral-raytracer/pkg/config"
	"github.com/df07/go-spectral-raytracer/pkg/scene"
)

func testConfig(t *testing.T) config.RenderConfig {
	cfg := config.Default()
	cfg.Scene = "cornell"
	cfg.Width = 16
	cfg.Height = 16
	cfg.SamplesPerPixel = 4
	cfg.MaxDepth = 3
	cfg.Seed = 5
	cfg.Quiet = true
	cfg.Output = filepath.Join(t.TempDir(), "out", "cornell.png")
	return cfg
}

func TestRenderProducesFullStats(t *testing.T) {
	cfg := testConfig(t)

	img, stats, err := Render(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if img.Bounds() != image.Rect(0, 0, 16, 16) {
		t.Errorf("Expected a 16x16 image, got %v", img.Bounds())
	}
	if stats.TotalPixels != 256 {
		t.Errorf("Expected 256 pixels, got %d", stats.TotalPixels)
	}
	if stats.TotalSamples != 256*4 {
		t.Errorf("Expected %d samples, got %d", 256*4, stats.TotalSamples)
	}
	if stats.MinSamples != 4 || stats.MaxSamplesUsed != 4 || stats.AverageSamples != 4 {
		t.Errorf("Expected exactly 4 samples in every pixel, got %+v", stats)
	}
	if stats.InvalidSamples != 0 {
		t.Errorf("Expected no invalid samples, got %d", stats.InvalidSamples)
	}

	table := stats.Table()
	for _, want := range []string{"cornell", "Invalid samples", "Total pixel samples evaluated"} {
		if !strings.Contains(table, want) {
			t.Errorf("Expected table to contain %q, got:\n%s", want, table)
		}
	}
}

func TestRepeatedRenderReportsOwnMetrics(t *testing.T) {
	cfg := testConfig(t)

	var ids []string
	for i := 0; i < 2; i++ {
		_, stats, err := Render(context.Background(), cfg)
		if err != nil {
			t.Fatalf("Render %d: unexpected error: %v", i, err)
		}
		ids = append(ids, stats.RenderID)

		want := map[string]string{
			"Total pixel samples evaluated": "1024",
			"Completed waves":               "3",
		}
		got := map[string]string{}
		for _, row := range MetricRows(stats.Scene, stats.RenderID) {
			if _, ok := want[row[0]]; ok {
				got[row[0]] = row[1]
			}
		}
		if diff := cmp.Diff(got, want); diff != "" {
			t.Errorf("Render %d: metric rows mismatch (-got +want):\n%s", i, diff)
		}
	}

	if ids[0] == ids[1] {
		t.Errorf("Expected distinct render IDs, got %q twice", ids[0])
	}
}

func TestRenderWritesCheckpointsAndOutputs(t *testing.T) {
	cfg := testConfig(t)
	cfg.Checkpoint = true
	cfg.WriteAuxiliary = true

	r, err := New(cfg)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	var waves []WaveResult
	r.OnWave = func(result WaveResult) error {
		if _, err := os.Stat(cfg.Output); err != nil {
			t.Errorf("Expected checkpoint before wave %d callback: %v", result.Index, err)
		}
		waves = append(waves, result)
		return nil
	}

	img, _, err := r.Render(context.Background())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(waves) != 3 {
		t.Fatalf("Expected 3 waves for 4 samples per pixel, got %d", len(waves))
	}
	for i, wave := range waves {
		wantLast := i == len(waves)-1
		if wave.IsLast != wantLast {
			t.Errorf("wave %d: expected IsLast=%t", i, wantLast)
		}
		if wave.Stats.MinSamples != wave.End {
			t.Errorf("wave %d: expected %d samples per pixel, got %d", i, wave.End, wave.Stats.MinSamples)
		}
	}

	written, err := r.WriteOutputs(img)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	want := []string{cfg.Output, AuxiliaryPath(cfg.Output, "albedo"), AuxiliaryPath(cfg.Output, "normal")}
	if len(written) != len(want) {
		t.Fatalf("Expected %v, got %v", want, written)
	}
	for i, path := range want {
		if written[i] != path {
			t.Errorf("Expected output %s, got %s", path, written[i])
		}
		if _, err := os.Stat(path); err != nil {
			t.Errorf("Expected %s to exist: %v", path, err)
		}
	}
}

func TestRenderProgressive(t *testing.T) {
	r, err := New(testConfig(t))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	waveChan, errChan := r.RenderProgressive(context.Background())

	var ends []int
	for wave := range waveChan {
		ends = append(ends, wave.End)
	}
	for err := range errChan {
		t.Errorf("Unexpected error: %v", err)
	}

	if len(ends) != 3 || ends[2] != 4 {
		t.Errorf("Expected waves ending at 1, 2, 4, got %v", ends)
	}
}

func TestRenderCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := Render(ctx, testConfig(t))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

func TestNewRejectsBadConfig(t *testing.T) {
	cfg := testConfig(t)
	cfg.Scene = "dragon"
	if _, err := New(cfg); !errors.Is(err, scene.ErrUnknownScene) {
		t.Errorf("Expected ErrUnknownScene, got %v", err)
	}

	cfg = testConfig(t)
	cfg.SamplesPerPixel = 0
	if _, err := New(cfg); !errors.Is(err, config.ErrInvalidSamples) {
		t.Errorf("Expected ErrInvalidSamples, got %v", err)
	}
}

func TestAuxiliaryPath(t *testing.T) {
	if got := AuxiliaryPath("output/render.png", "albedo"); got != "output/render_albedo.png" {
		t.Errorf("Expected output/render_albedo.png, got %s", got)
	}
}

func TestCalculateAverageLuminance(t *testing.T) {
	// Red, green, blue and black average to (0.2126 + 0.7152 + 0.0722 + 0) / 4
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{255, 0, 0, 255})
	img.Set(1, 0, color.RGBA{0, 255, 0, 255})
	img.Set(0, 1, color.RGBA{0, 0, 255, 255})
	img.Set(1, 1, color.RGBA{0, 0, 0, 255})

	avgLum := CalculateAverageLuminance(img)
	expected := 0.25
	tolerance := 0.0001

	if avgLum < expected-tolerance || avgLum > expected+tolerance {
		t.Errorf("Expected average luminosity %f, got %f", expected, avgLum)
	}
}
