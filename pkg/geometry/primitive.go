package geometry

import (
	"github.com/df07/go-spectral-raytracer/pkg/core"
	"github.com/df07/go-spectral-raytracer/pkg/lights"
	"github.com/df07/go-spectral-raytracer/pkg/material"
)

// Primitive is anything rays can be tested against, from a single shape to a whole BVH
type Primitive interface {
	// Intersect returns the closest hit with t in (0, tMax)
	Intersect(ray core.Ray, tMax float64) (*ShapeIntersection, bool)
	// IntersectP reports whether anything is hit with t in (0, tMax)
	IntersectP(ray core.Ray, tMax float64) bool
	Bounds() core.Bounds3
}

// GeometricPrimitive binds a shape to its material and optional area light
type GeometricPrimitive struct {
	Shape     Shape
	Material  material.Material
	AreaLight lights.AreaLight
}

// NewGeometricPrimitive creates a primitive; areaLight may be nil
func NewGeometricPrimitive(shape Shape, mat material.Material, areaLight lights.AreaLight) *GeometricPrimitive {
	return &GeometricPrimitive{Shape: shape, Material: mat, AreaLight: areaLight}
}

// Intersect implements Primitive
func (p *GeometricPrimitive) Intersect(ray core.Ray, tMax float64) (*ShapeIntersection, bool) {
	hit, ok := p.Shape.Intersect(ray, tMax)
	if !ok {
		return nil, false
	}
	return &ShapeIntersection{
		Intr: SurfaceInteraction{
			P:         hit.P,
			N:         hit.N,
			UV:        hit.UV,
			Wo:        ray.Direction.Negate().Normalize(),
			Time:      ray.Time,
			Shading:   ShadingGeometry{N: hit.N},
			Material:  p.Material,
			AreaLight: p.AreaLight,
		},
		THit: hit.T,
	}, true
}

// IntersectP implements Primitive
func (p *GeometricPrimitive) IntersectP(ray core.Ray, tMax float64) bool {
	_, ok := p.Shape.Intersect(ray, tMax)
	return ok
}

// Bounds implements Primitive
func (p *GeometricPrimitive) Bounds() core.Bounds3 {
	return p.Shape.Bounds()
}
