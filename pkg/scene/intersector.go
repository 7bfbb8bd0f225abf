package scene

import (
	"fmt"

	"github.com/df07/go-spectral-raytracer/pkg/core"
	"github.com/df07/go-spectral-raytracer/pkg/geometry"
	"github.com/df07/go-spectral-raytracer/pkg/lights"
)

// Aggregate is the scene's intersectable geometry as a whole
type Aggregate interface {
	Intersect(ray core.Ray, tMax float64) (*geometry.ShapeIntersection, bool)
	IntersectP(ray core.Ray, tMax float64) bool
	Bounds() core.Bounds3
	// Valid is false for an empty scene; invalid aggregates are never queried
	Valid() bool
}

// Intersector answers ray queries against an aggregate and owns the scene's lights.
// Lights are preprocessed once at construction; afterwards the intersector is read-only
// and safe for concurrent use.
type Intersector struct {
	aggregate      Aggregate
	lights         []lights.Light
	infiniteLights []lights.Light
	bounds         core.Bounds3
}

// NewIntersector preprocesses every light against the aggregate's bounds, or against empty
// bounds when the aggregate is missing or invalid, and caches the infinite lights
func NewIntersector(aggregate Aggregate, sceneLights []lights.Light) (*Intersector, error) {
	in := &Intersector{aggregate: aggregate, lights: sceneLights}
	if in.valid() {
		in.bounds = aggregate.Bounds()
	}

	for i, light := range sceneLights {
		if err := light.Preprocess(in.bounds); err != nil {
			return nil, fmt.Errorf("while preprocessing %s light %d: %w", light.Type(), i, err)
		}
	}
	in.infiniteLights = lights.Infinite(sceneLights)

	return in, nil
}

func (in *Intersector) valid() bool {
	return in.aggregate != nil && in.aggregate.Valid()
}

// Intersect returns the nearest hit with t < tMax
func (in *Intersector) Intersect(ray core.Ray, tMax float64) (*geometry.ShapeIntersection, bool) {
	if !in.valid() {
		return nil, false
	}
	return in.aggregate.Intersect(ray, tMax)
}

// IntersectOccluded reports whether anything blocks the ray before tMax
func (in *Intersector) IntersectOccluded(ray core.Ray, tMax float64) bool {
	if !in.valid() {
		return false
	}
	return in.aggregate.IntersectP(ray, tMax)
}

// Bounds returns the bounds the lights were preprocessed against
func (in *Intersector) Bounds() core.Bounds3 {
	return in.bounds
}

// Lights returns every light in the scene
func (in *Intersector) Lights() []lights.Light {
	return in.lights
}

// InfiniteLights returns the lights that contribute to rays escaping the scene
func (in *Intersector) InfiniteLights() []lights.Light {
	return in.infiniteLights
}
