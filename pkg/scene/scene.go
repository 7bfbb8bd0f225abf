package scene

import (
	"fmt"

	"github.com/df07/go-spectral-raytracer/pkg/camera"
	"github.com/df07/go-spectral-raytracer/pkg/core"
	"github.com/df07/go-spectral-raytracer/pkg/geometry"
	"github.com/df07/go-spectral-raytracer/pkg/lights"
	"github.com/df07/go-spectral-raytracer/pkg/log"
	"github.com/df07/go-spectral-raytracer/pkg/material"
	"github.com/df07/go-spectral-raytracer/pkg/spectrum"
)

var logger = log.New("scene")

// Scene contains all the elements needed for rendering
type Scene struct {
	Name         string
	CameraConfig camera.CameraConfig  // Width and aspect ratio are overridden by the render config
	Primitives   []geometry.Primitive // Objects in the scene
	Lights       []lights.Light       // Lights in the scene
	BVH          *geometry.BVH        // Acceleration structure, built by Preprocess
}

// NewGroundQuad creates a large quad to replace infinite ground planes.
// The quad is horizontal, centered at the given point, with normal pointing up (0,1,0).
func NewGroundQuad(center core.Vec3, size float64) *geometry.Quad {
	corner := core.NewVec3(center.X-size/2, center.Y, center.Z-size/2)
	// u × v = (0,0,size) × (size,0,0) points up
	u := core.NewVec3(0, 0, size)
	v := core.NewVec3(size, 0, 0)
	return geometry.NewQuad(corner, u, v)
}

// Add adds a non-emissive shape with the given material
func (s *Scene) Add(shape geometry.Shape, mat material.Material) {
	s.Primitives = append(s.Primitives, geometry.NewGeometricPrimitive(shape, mat, nil))
}

// AddQuadLight adds a one-sided rectangular area light emitting along U × V
func (s *Scene) AddQuadLight(corner, u, v core.Vec3, emission spectrum.Spectrum, scale float64) {
	light := lights.NewDiffuseAreaLight(emission, scale, false)
	s.Lights = append(s.Lights, light)
	s.Primitives = append(s.Primitives, geometry.NewGeometricPrimitive(geometry.NewQuad(corner, u, v), material.NewDiffuse(0, 0, 0), light))
}

// AddSphereLight adds a spherical area light emitting outwards
func (s *Scene) AddSphereLight(center core.Vec3, radius float64, emission spectrum.Spectrum, scale float64) {
	light := lights.NewDiffuseAreaLight(emission, scale, false)
	s.Lights = append(s.Lights, light)
	s.Primitives = append(s.Primitives, geometry.NewGeometricPrimitive(geometry.NewSphere(center, radius), material.NewDiffuse(0, 0, 0), light))
}

// AddUniformInfiniteLight adds a uniform infinite light to the scene
func (s *Scene) AddUniformInfiniteLight(emission spectrum.Spectrum, scale float64) {
	s.Lights = append(s.Lights, lights.NewUniformInfiniteLight(emission, scale))
}

// AddGradientInfiniteLight adds a gradient infinite light to the scene
func (s *Scene) AddGradientInfiniteLight(top, bottom spectrum.Spectrum) {
	s.Lights = append(s.Lights, lights.NewGradientInfiniteLight(top, bottom))
}

// ForceDiffuse replaces every material with its diffuse approximation
func (s *Scene) ForceDiffuse() {
	for _, p := range s.Primitives {
		if gp, ok := p.(*geometry.GeometricPrimitive); ok && gp.Material != nil {
			gp.Material = material.ForceDiffuse(gp.Material)
		}
	}
}

// Preprocess builds the BVH and the intersector, which preprocesses every light
func (s *Scene) Preprocess() (*Intersector, error) {
	s.BVH = geometry.NewBVH(s.Primitives)

	stats := s.BVH.Stats()
	logger.Debugf("scene %q: %d primitives, %d BVH nodes, max depth %d", s.Name, stats.TotalPrimitives, stats.TotalNodes, stats.MaxDepth)

	in, err := NewIntersector(s.BVH, s.Lights)
	if err != nil {
		return nil, fmt.Errorf("while preprocessing scene %q: %w", s.Name, err)
	}
	return in, nil
}
