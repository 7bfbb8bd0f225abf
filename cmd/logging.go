package cmd

import (
	"github.com/df07/go-spectral-raytracer/pkg/log"
	"github.com/urfave/cli"
)

var logger = log.New("cmd")

// Setup logging verbosity from the global flags.
func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}
