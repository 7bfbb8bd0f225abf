package lights

import (
	"github.com/df07/go-spectral-raytracer/pkg/core"
	"github.com/df07/go-spectral-raytracer/pkg/spectrum"
)

// LightType separates lights with spatial extent from environment lights
type LightType string

const (
	// LightTypeFinite lights occupy space in the scene and are reached by hitting their geometry
	LightTypeFinite LightType = "finite"
	// LightTypeInfinite lights surround the scene and are reached by rays that escape it
	LightTypeInfinite LightType = "infinite"
)

// Light is a source of emitted radiance
type Light interface {
	Type() LightType

	// Preprocess records the scene bounds; finite lights must be preprocessed before rendering
	Preprocess(sceneBounds core.Bounds3) error

	// Le evaluates emission along a ray that escapes the scene.
	// Finite lights return zero; infinite lights must not depend on Preprocess.
	Le(ray core.Ray, lambda spectrum.SampledWavelengths) spectrum.SampledSpectrum
}

// AreaLight is a finite light attached to a surface and evaluated where rays hit it
type AreaLight interface {
	Light
	L(p, n core.Vec3, uv core.Vec2, w core.Vec3, lambda spectrum.SampledWavelengths) spectrum.SampledSpectrum
}

// Infinite filters lights down to the infinite ones
func Infinite(all []Light) []Light {
	var infinite []Light
	for _, light := range all {
		if light.Type() == LightTypeInfinite {
			infinite = append(infinite, light)
		}
	}
	return infinite
}
