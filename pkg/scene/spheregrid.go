package scene

import (
	"math"

	"github.com/df07/go-spectral-raytracer/pkg/camera"
	"github.com/df07/go-spectral-raytracer/pkg/core"
	"github.com/df07/go-spectral-raytracer/pkg/geometry"
	"github.com/df07/go-spectral-raytracer/pkg/material"
	"github.com/df07/go-spectral-raytracer/pkg/spectrum"
)

// oklchToRGB converts OKLCH color values to linear RGB
// L: lightness (0-1), C: chroma (0-0.4+), H: hue (0-360 degrees)
func oklchToRGB(l, c, h float64) core.Vec3 {
	hRad := h * math.Pi / 180.0

	// OKLCH to OKLAB
	a := c * math.Cos(hRad)
	b := c * math.Sin(hRad)

	// OKLAB to LMS
	lc := l + 0.3963377774*a + 0.2158037573*b
	mc := l - 0.1055613458*a - 0.0638541728*b
	sc := l - 0.0894841775*a - 1.2914855480*b

	lc = lc * lc * lc
	mc = mc * mc * mc
	sc = sc * sc * sc

	// LMS to linear RGB
	r := +4.0767416621*lc - 3.3077115913*mc + 0.2309699292*sc
	g := -1.2684380046*lc + 2.6097574011*mc - 0.3413193965*sc
	blue := -0.0041960863*lc - 0.7034186147*mc + 1.7076147010*sc

	return core.NewVec3(r, g, blue).Clamp(0, 1)
}

// NewSphereGridScene creates a scene with a grid of colored spheres, which exercises the BVH
func NewSphereGridScene() *Scene {
	s := &Scene{
		CameraConfig: camera.CameraConfig{
			Center:      core.NewVec3(4.5, 6, 18),    // Position camera farther back and slightly lower
			LookAt:      core.NewVec3(4.5, 0.8, 4.5), // Look at center of grid, slightly lower
			Up:          core.NewVec3(0, 1, 0),
			Width:       800,
			AspectRatio: 16.0 / 9.0,
			VFov:        40.0,
			Aperture:    0.02,
		},
	}

	// A bright sun-like light high and to the side
	s.AddSphereLight(core.NewVec3(20, 25, 20), 8, spectrum.BlackbodyIlluminant(4500, 1), 12)

	s.Add(NewGroundQuad(core.NewVec3(4.5, 0, 4.5), 1000.0), material.NewDiffuse(0.5, 0.5, 0.5))

	gridSize := 20

	// Fit the grid into roughly 9x9 units
	targetArea := 9.0
	spacing := targetArea / float64(gridSize-1)
	sphereRadius := math.Max(0.02, math.Min(0.35, spacing*0.35))

	// OKLCH parameters for color variation
	baseLightness := 0.65
	minChroma := 0.05
	maxChroma := 0.25

	for i := 0; i < gridSize; i++ {
		for j := 0; j < gridSize; j++ {
			x := float64(i)*spacing - targetArea/2.0 + 4.5
			z := float64(j)*spacing - targetArea/2.0 + 4.5

			// Hue varies across X, chroma across Z
			hue := (float64(i) / float64(gridSize-1)) * 360.0
			chroma := minChroma + (float64(j)/float64(gridSize-1))*(maxChroma-minChroma)
			color := oklchToRGB(baseLightness, chroma, hue)

			s.Add(geometry.NewSphere(core.NewVec3(x, sphereRadius, z), sphereRadius), material.NewDiffuse(color.X, color.Y, color.Z))
		}
	}

	s.AddGradientInfiniteLight(
		spectrum.RGB{R: 0.5, G: 0.7, B: 1.0},
		spectrum.RGB{R: 1.0, G: 1.0, B: 1.0},
	)

	return s
}
