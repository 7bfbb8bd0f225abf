package scene

import (
	"github.com/df07/go-spectral-raytracer/pkg/camera"
	"github.com/df07/go-spectral-raytracer/pkg/core"
	"github.com/df07/go-spectral-raytracer/pkg/geometry"
	"github.com/df07/go-spectral-raytracer/pkg/material"
	"github.com/df07/go-spectral-raytracer/pkg/spectrum"
)

// NewCornellScene creates a classic Cornell box scene with quad walls and area lighting
func NewCornellScene() *Scene {
	s := &Scene{
		CameraConfig: camera.CameraConfig{
			Center:      core.NewVec3(278, 278, -800), // Position camera outside the box looking in
			LookAt:      core.NewVec3(278, 278, 0),    // Look at the center of the box
			Up:          core.NewVec3(0, 1, 0),
			Width:       400,
			AspectRatio: 1.0,
			VFov:        40.0,
		},
	}

	white := material.NewDiffuse(0.73, 0.73, 0.73)
	red := material.NewDiffuse(0.65, 0.05, 0.05)
	green := material.NewDiffuse(0.12, 0.45, 0.15)

	// Cornell box dimensions (standard 555x555x555 units)
	boxSize := 555.0

	// Floor and ceiling span X and Z
	s.Add(geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, 0, boxSize)), white)
	s.Add(geometry.NewQuad(core.NewVec3(0, boxSize, 0), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, 0, boxSize)), white)
	// Back wall at z=boxSize
	s.Add(geometry.NewQuad(core.NewVec3(0, 0, boxSize), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, boxSize, 0)), white)
	// Left wall (red) at x=0 and right wall (green) at x=boxSize
	s.Add(geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, boxSize), core.NewVec3(0, boxSize, 0)), red)
	s.Add(geometry.NewQuad(core.NewVec3(boxSize, 0, 0), core.NewVec3(0, boxSize, 0), core.NewVec3(0, 0, boxSize)), green)

	// Ceiling light, slightly below the ceiling and facing down
	lightSize := 130.0
	lightOffset := (boxSize - lightSize) / 2.0
	s.AddQuadLight(
		core.NewVec3(lightOffset, boxSize-1, lightOffset),
		core.NewVec3(lightSize, 0, 0),
		core.NewVec3(0, 0, lightSize),
		spectrum.Illuminant(1),
		15,
	)

	// Tall block at the back left
	for _, face := range geometry.NewBox(core.NewVec3(130, 0, 295), core.NewVec3(295, 330, 460)) {
		s.Add(face, white)
	}

	// Sphere at the front right, a speckled mix of white and red
	s.Add(geometry.NewSphere(core.NewVec3(370, 90, 200), 90), material.NewMix(white, red, 0.25))

	return s
}
