// Package film accumulates weighted spectral samples into pixels and exports images.
package film

import (
	"image"

	"github.com/df07/go-spectral-raytracer/pkg/camera"
	"github.com/df07/go-spectral-raytracer/pkg/geometry"
	"github.com/df07/go-spectral-raytracer/pkg/spectrum"
)

// Film receives radiance samples for the pixels inside PixelBounds
type Film interface {
	PixelBounds() image.Rectangle

	// SampleWavelengths picks the wavelengths a camera sample carries along its whole path
	SampleWavelengths(u float64) spectrum.SampledWavelengths

	Filter() camera.Filter

	// UsesVisibleSurface reports whether AddSample wants first-hit surface information
	UsesVisibleSurface() bool

	// AddSample accumulates radiance L for pixel p. vs may be nil. Implementations must accept
	// concurrent calls for distinct pixels.
	AddSample(p image.Point, L spectrum.SampledSpectrum, lambda spectrum.SampledWavelengths, vs *geometry.VisibleSurface, weight float64)
}
