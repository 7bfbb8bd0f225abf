package scene

import (
	"github.com/df07/go-spectral-raytracer/pkg/camera"
	"github.com/df07/go-spectral-raytracer/pkg/core"
	"github.com/df07/go-spectral-raytracer/pkg/geometry"
	"github.com/df07/go-spectral-raytracer/pkg/material"
	"github.com/df07/go-spectral-raytracer/pkg/spectrum"
)

// NewDefaultScene creates a default scene with spheres on a checkered ground under a sky
func NewDefaultScene() *Scene {
	s := &Scene{
		CameraConfig: camera.CameraConfig{
			Center:      core.NewVec3(0, 0.75, 2), // Position camera higher and farther back
			LookAt:      core.NewVec3(0, 0.5, -1), // Look at the sphere center
			Up:          core.NewVec3(0, 1, 0),
			Width:       400,
			AspectRatio: 16.0 / 9.0,
			VFov:        40.0,
			Aperture:    0.05,
		},
	}

	blue := material.NewDiffuse(0.1, 0.2, 0.5)
	red := material.NewDiffuse(0.65, 0.25, 0.2)
	paper := material.NewDiffuseTransmission(material.NewSolidColor(0.6, 0.6, 0.5), material.NewSolidColor(0.3, 0.3, 0.25))
	checker := material.NewTexturedDiffuse(material.NewCheckerboard(
		material.NewSolidColor(0.48, 0.48, 0.0),
		material.NewSolidColor(0.1, 0.1, 0.1),
		4,
	))

	s.Add(geometry.NewSphere(core.NewVec3(0, 0.5, -1), 0.5), red)
	s.Add(geometry.NewSphere(core.NewVec3(-1, 0.5, -1), 0.5), blue)
	s.Add(geometry.NewSphere(core.NewVec3(1, 0.5, -1), 0.5), material.NewMix(red, blue, 0.5))
	s.Add(geometry.NewDisc(core.NewVec3(0.5, 0.01, -0.3), core.NewVec3(0, 1, 0), 0.25), paper)

	// Large finite ground keeps the scene bounds meaningful
	s.Add(NewGroundQuad(core.NewVec3(0, 0, 0), 10000.0), checker)

	s.AddSphereLight(core.NewVec3(30, 30.5, 15), 10, spectrum.BlackbodyIlluminant(5500, 1), 15)

	s.AddGradientInfiniteLight(
		spectrum.RGB{R: 0.5, G: 0.7, B: 1.0}, // blue sky
		spectrum.RGB{R: 1.0, G: 1.0, B: 1.0}, // white horizon
	)

	return s
}

// NewEmptyScene creates a scene with no geometry, lit only by a uniform environment
func NewEmptyScene() *Scene {
	s := &Scene{
		CameraConfig: camera.CameraConfig{
			Center:      core.NewVec3(0, 0, 0),
			LookAt:      core.NewVec3(0, 0, -1),
			Up:          core.NewVec3(0, 1, 0),
			Width:       64,
			AspectRatio: 1.0,
			VFov:        60.0,
		},
	}
	s.AddUniformInfiniteLight(spectrum.Illuminant(1), 1)
	return s
}
