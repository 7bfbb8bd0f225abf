package main

import (
	"os"

	"github.com/df07/go-spectral-raytracer/cmd"
	"github.com/df07/go-spectral-raytracer/pkg/log"
	"github.com/urfave/cli"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "go-spectral-raytracer"
	app.Usage = "render scenes with a spectral random walk"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a builtin scene",
			Description: `
Render a builtin scene with spectral random walks. Samples are issued in waves of
1, 1, 2, 4, ... up to 64 samples per pixel; with --checkpoint the image is written
after every wave so long renders can be inspected early.

Settings come from the --config YAML file when given; flags override it.`,
			Flags:  cmd.RenderFlags,
			Action: cmd.RenderImage,
		},
		{
			Name:   "scenes",
			Usage:  "list builtin scenes",
			Action: cmd.ListScenes,
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.New("main").Error(err)
		os.Exit(1)
	}
}
