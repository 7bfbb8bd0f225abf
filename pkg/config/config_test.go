package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Expected default config to be valid, got %v", err)
	}
}

func TestParseOverridesDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
scene: cornell
width: 64
height: 32
samplesPerPixel: 200
sampler: stratified
directionSampler: cosine
filter:
  type: gaussian
  radius: 1.5
scaleDifferentials: false
checkpoint: true
`))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	want := Default()
	want.Scene = "cornell"
	want.Width = 64
	want.Height = 32
	want.SamplesPerPixel = 200
	want.Sampler = "stratified"
	want.DirectionSampler = "cosine"
	want.Filter = FilterConfig{Type: "gaussian", Radius: 1.5}
	want.ScaleDifferentials = false
	want.Checkpoint = true

	if diff := cmp.Diff(cfg, want); diff != "" {
		t.Errorf("Unexpected config (-got +want):\n%s", diff)
	}
	if cfg.AspectRatio() != 2 {
		t.Errorf("Expected aspect ratio 2, got %f", cfg.AspectRatio())
	}
}

func TestParseRejectsInvalidConfigs(t *testing.T) {
	specs := []struct {
		yaml    string
		wantErr error
	}{
		{yaml: "width: 0", wantErr: ErrInvalidResolution},
		{yaml: "height: -4", wantErr: ErrInvalidResolution},
		{yaml: "samplesPerPixel: 0", wantErr: ErrInvalidSamples},
		{yaml: "maxDepth: -1", wantErr: ErrInvalidDepth},
		{yaml: "sampler: sobol", wantErr: ErrUnknownSampler},
		{yaml: "directionSampler: bsdf", wantErr: ErrUnknownDirectionSampler},
		{yaml: "filter: {type: mitchell}", wantErr: ErrUnknownFilter},
	}

	for i, spec := range specs {
		_, err := Parse([]byte(spec.yaml))
		if !errors.Is(err, spec.wantErr) {
			t.Errorf("[spec %d] expected error %v, got %v", i, spec.wantErr, err)
		}
	}
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	if _, err := Parse([]byte("width: [1, 2")); err == nil {
		t.Errorf("Expected an error for malformed YAML")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "render.yaml")
	if err := os.WriteFile(path, []byte("scene: spheregrid\nseed: 7\n"), 0o644); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.Scene != "spheregrid" || cfg.Seed != 7 {
		t.Errorf("Expected scene spheregrid with seed 7, got %q with seed %d", cfg.Scene, cfg.Seed)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected os.ErrNotExist for a missing file, got %v", err)
	}
}
