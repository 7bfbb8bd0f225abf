package cmd

import (
	"bytes"
	"fmt"

	"github.com/df07/go-spectral-raytracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// ListScenes displays the builtin scenes.
func ListScenes(ctx *cli.Context) error {
	setupLogging(ctx)

	table, err := sceneTable()
	if err != nil {
		return err
	}
	logger.Noticef("builtin scenes\n%s", table)
	return nil
}

func sceneTable() (string, error) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Scene", "Primitives", "Lights", "Resolution"})
	for _, name := range scene.Names() {
		sc, err := scene.New(name)
		if err != nil {
			return "", err
		}
		cam := sc.CameraConfig
		height := 0
		if cam.AspectRatio > 0 {
			height = int(float64(cam.Width) / cam.AspectRatio)
		}
		table.Append([]string{
			name,
			fmt.Sprintf("%d", len(sc.Primitives)),
			fmt.Sprintf("%d", len(sc.Lights)),
			fmt.Sprintf("%dx%d", cam.Width, height),
		})
	}
	table.Render()
	return buf.String(), nil
}
