package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-spectral-raytracer/pkg/config"
	"github.com/google/go-cmp/cmp"
	"github.com/urfave/cli"
)

// parseRenderConfig runs a render command whose action only captures the config
func parseRenderConfig(t *testing.T, args ...string) (config.RenderConfig, error) {
	t.Helper()

	var cfg config.RenderConfig
	var cfgErr error
	app := cli.NewApp()
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Flags: RenderFlags,
			Action: func(ctx *cli.Context) error {
				cfg, cfgErr = renderConfig(ctx)
				return nil
			},
		},
	}
	if err := app.Run(append([]string{"raytracer", "render"}, args...)); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	return cfg, cfgErr
}

func TestRenderConfigDefaults(t *testing.T) {
	cfg, err := parseRenderConfig(t)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if diff := cmp.Diff(cfg, config.Default()); diff != "" {
		t.Errorf("Expected defaults without flags (-got +want):\n%s", diff)
	}
}

func TestRenderConfigFlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "render.yaml")
	yaml := "scene: spheregrid\nwidth: 100\nheight: 50\nsamplesPerPixel: 32\n"
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	cfg, err := parseRenderConfig(t, "--config", path, "--spp", "8", "-s", "cornell", "--no-scale-differentials", "--directions", "cosine")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	want := config.Default()
	want.Scene = "cornell"
	want.Width = 100
	want.Height = 50
	want.SamplesPerPixel = 8
	want.ScaleDifferentials = false
	want.DirectionSampler = "cosine"
	if diff := cmp.Diff(cfg, want); diff != "" {
		t.Errorf("Unexpected config (-got +want):\n%s", diff)
	}
}

func TestRenderConfigValidates(t *testing.T) {
	_, err := parseRenderConfig(t, "--sampler", "sobol")
	if !errors.Is(err, config.ErrUnknownSampler) {
		t.Errorf("Expected ErrUnknownSampler, got %v", err)
	}
}

func TestSceneTable(t *testing.T) {
	table, err := sceneTable()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	for _, name := range []string{"cornell", "default", "empty", "spheregrid"} {
		if !strings.Contains(table, name) {
			t.Errorf("Expected scene table to list %s, got:\n%s", name, table)
		}
	}
}

func TestMaxDepthUsageDescribesCutoff(t *testing.T) {
	for _, flag := range RenderFlags {
		f, ok := flag.(cli.IntFlag)
		if !ok || f.Name != "max-depth" {
			continue
		}
		if !strings.Contains(f.Usage, "max-depth+1 intersection tests") {
			t.Errorf("Expected max-depth usage to state the intersection bound, got %q", f.Usage)
		}
		return
	}
	t.Errorf("Expected a max-depth flag")
}
