package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/df07/go-spectral-raytracer/pkg/config"
	"github.com/df07/go-spectral-raytracer/pkg/renderer"
	"github.com/urfave/cli"
)

// RenderFlags are the flags of the render command. Every flag overrides the config file.
var RenderFlags = []cli.Flag{
	cli.StringFlag{
		Name:  "config, c",
		Usage: "YAML render configuration",
	},
	cli.StringFlag{
		Name:  "scene, s",
		Value: "default",
		Usage: "builtin scene to render",
	},
	cli.StringFlag{
		Name:  "out, o",
		Value: "render.png",
		Usage: "image filename for the rendered frame",
	},
	cli.IntFlag{
		Name:  "width",
		Value: 400,
		Usage: "frame width",
	},
	cli.IntFlag{
		Name:  "height",
		Value: 225,
		Usage: "frame height",
	},
	cli.IntFlag{
		Name:  "spp",
		Value: 64,
		Usage: "samples per pixel",
	},
	cli.IntFlag{
		Name:  "max-depth",
		Value: 5,
		Usage: "maximum number of scattering events per path; a path makes at most max-depth+1 intersection tests, one fewer than a depth > max-depth cutoff",
	},
	cli.Int64Flag{
		Name:  "seed",
		Usage: "sampler seed",
	},
	cli.StringFlag{
		Name:  "sampler",
		Value: "independent",
		Usage: "pixel sampler: independent or stratified",
	},
	cli.StringFlag{
		Name:  "directions",
		Value: "uniform",
		Usage: "random walk direction sampling: uniform or cosine",
	},
	cli.StringFlag{
		Name:  "filter",
		Value: "box",
		Usage: "reconstruction filter: box, triangle or gaussian",
	},
	cli.Float64Flag{
		Name:  "filter-radius",
		Value: 0.5,
		Usage: "reconstruction filter radius in pixels",
	},
	cli.IntFlag{
		Name:  "workers, w",
		Usage: "number of render workers (0 uses every CPU)",
	},
	cli.IntFlag{
		Name:  "tile-size",
		Value: 32,
		Usage: "edge length of the tiles workers render",
	},
	cli.BoolFlag{
		Name:  "checkpoint",
		Usage: "write the image after every wave",
	},
	cli.BoolFlag{
		Name:  "aux",
		Usage: "also write albedo and normal images",
	},
	cli.BoolFlag{
		Name:  "no-scale-differentials",
		Usage: "do not narrow camera ray differentials as the sample count grows",
	},
	cli.BoolFlag{
		Name:  "no-pixel-jitter",
		Usage: "sample pixel centers only",
	},
	cli.BoolFlag{
		Name:  "no-wavelength-jitter",
		Usage: "use the same wavelengths for every sample",
	},
	cli.BoolFlag{
		Name:  "no-texture-filtering",
		Usage: "point sample textures",
	},
	cli.BoolFlag{
		Name:  "force-diffuse",
		Usage: "replace every material with a diffuse approximation",
	},
	cli.BoolFlag{
		Name:  "quiet, q",
		Usage: "do not report progress",
	},
}

// RenderImage renders a single frame to a PNG file.
func RenderImage(ctx *cli.Context) error {
	setupLogging(ctx)

	cfg, err := renderConfig(ctx)
	if err != nil {
		return err
	}

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	r, err := renderer.New(cfg)
	if err != nil {
		return err
	}

	img, _, err := r.Render(sigCtx)
	if err != nil {
		return err
	}

	written, err := r.WriteOutputs(img)
	if err != nil {
		return err
	}
	for _, path := range written {
		logger.Noticef("wrote %s", path)
	}
	return nil
}

// renderConfig loads the config file, if any, and applies the flags that were set explicitly.
func renderConfig(ctx *cli.Context) (config.RenderConfig, error) {
	cfg := config.Default()
	if path := ctx.String("config"); path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return cfg, err
		}
	}

	if ctx.IsSet("scene") {
		cfg.Scene = ctx.String("scene")
	}
	if ctx.IsSet("out") {
		cfg.Output = ctx.String("out")
	}
	if ctx.IsSet("width") {
		cfg.Width = ctx.Int("width")
	}
	if ctx.IsSet("height") {
		cfg.Height = ctx.Int("height")
	}
	if ctx.IsSet("spp") {
		cfg.SamplesPerPixel = ctx.Int("spp")
	}
	if ctx.IsSet("max-depth") {
		cfg.MaxDepth = ctx.Int("max-depth")
	}
	if ctx.IsSet("seed") {
		cfg.Seed = ctx.Int64("seed")
	}
	if ctx.IsSet("sampler") {
		cfg.Sampler = ctx.String("sampler")
	}
	if ctx.IsSet("directions") {
		cfg.DirectionSampler = ctx.String("directions")
	}
	if ctx.IsSet("filter") {
		cfg.Filter.Type = ctx.String("filter")
	}
	if ctx.IsSet("filter-radius") {
		cfg.Filter.Radius = ctx.Float64("filter-radius")
	}
	if ctx.IsSet("workers") {
		cfg.Workers = ctx.Int("workers")
	}
	if ctx.IsSet("tile-size") {
		cfg.TileSize = ctx.Int("tile-size")
	}
	if ctx.IsSet("checkpoint") {
		cfg.Checkpoint = ctx.Bool("checkpoint")
	}
	if ctx.IsSet("aux") {
		cfg.WriteAuxiliary = ctx.Bool("aux")
	}
	if ctx.IsSet("no-scale-differentials") {
		cfg.ScaleDifferentials = !ctx.Bool("no-scale-differentials")
	}
	if ctx.IsSet("no-pixel-jitter") {
		cfg.DisablePixelJitter = ctx.Bool("no-pixel-jitter")
	}
	if ctx.IsSet("no-wavelength-jitter") {
		cfg.DisableWavelengthJitter = ctx.Bool("no-wavelength-jitter")
	}
	if ctx.IsSet("no-texture-filtering") {
		cfg.DisableTextureFiltering = ctx.Bool("no-texture-filtering")
	}
	if ctx.IsSet("force-diffuse") {
		cfg.ForceDiffuse = ctx.Bool("force-diffuse")
	}
	if ctx.IsSet("quiet") {
		cfg.Quiet = ctx.Bool("quiet")
	}

	return cfg, cfg.Validate()
}
