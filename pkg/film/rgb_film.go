package film

import (
	"image"
	"image/color"
	"math"

	"github.com/df07/go-spectral-raytracer/pkg/camera"
	"github.com/df07/go-spectral-raytracer/pkg/core"
	"github.com/df07/go-spectral-raytracer/pkg/geometry"
	"github.com/df07/go-spectral-raytracer/pkg/spectrum"
)

// RGBFilmConfig configures an RGBFilm
type RGBFilmConfig struct {
	Bounds image.Rectangle
	Filter camera.Filter

	// MaxComponentValue rescales samples whose brightest RGB component exceeds it. Zero means no limit.
	MaxComponentValue float64

	// WriteAuxiliary enables the albedo and normal buffers
	WriteAuxiliary bool
}

// PixelStats tracks the accumulated samples of a single pixel
type PixelStats struct {
	RGBSum      core.Vec3 // Filter-weighted linear sRGB
	WeightSum   float64
	AlbedoSum   core.Vec3
	NormalSum   core.Vec3
	SampleCount int

	LuminanceSum   float64 // Unweighted luminance for variance estimates
	LuminanceSqSum float64
}

// Color returns the filter-weighted average color of the pixel
func (ps *PixelStats) Color() core.Vec3 {
	if ps.WeightSum == 0 {
		return core.Vec3{}
	}
	return ps.RGBSum.Multiply(1.0 / ps.WeightSum)
}

// Variance returns the sample variance of the pixel's luminance
func (ps *PixelStats) Variance() float64 {
	if ps.SampleCount < 2 {
		return 0
	}
	n := float64(ps.SampleCount)
	mean := ps.LuminanceSum / n
	return max(0, (ps.LuminanceSqSum/n-mean*mean)*n/(n-1))
}

// RGBFilm converts spectral samples to linear sRGB through CIE XYZ and accumulates them per pixel.
// Pixels are only ever written by the worker that owns their tile, so no locking is needed.
type RGBFilm struct {
	config RGBFilmConfig
	pixels []PixelStats
}

// NewRGBFilm creates a film covering config.Bounds
func NewRGBFilm(config RGBFilmConfig) *RGBFilm {
	if config.Filter == nil {
		config.Filter = camera.NewBoxFilter(core.NewVec2(0.5, 0.5))
	}
	return &RGBFilm{
		config: config,
		pixels: make([]PixelStats, config.Bounds.Dx()*config.Bounds.Dy()),
	}
}

// PixelBounds implements Film
func (f *RGBFilm) PixelBounds() image.Rectangle {
	return f.config.Bounds
}

// SampleWavelengths implements Film with the visible-importance distribution
func (f *RGBFilm) SampleWavelengths(u float64) spectrum.SampledWavelengths {
	return spectrum.SampleVisible(u)
}

// Filter implements Film
func (f *RGBFilm) Filter() camera.Filter {
	return f.config.Filter
}

// UsesVisibleSurface implements Film
func (f *RGBFilm) UsesVisibleSurface() bool {
	return f.config.WriteAuxiliary
}

func (f *RGBFilm) pixel(p image.Point) *PixelStats {
	b := f.config.Bounds
	return &f.pixels[(p.Y-b.Min.Y)*b.Dx()+(p.X-b.Min.X)]
}

// AddSample implements Film
func (f *RGBFilm) AddSample(p image.Point, L spectrum.SampledSpectrum, lambda spectrum.SampledWavelengths, vs *geometry.VisibleSurface, weight float64) {
	if !p.In(f.config.Bounds) {
		return
	}

	xyz := spectrum.ToXYZ(L, lambda)
	rgb := xyz.LinearSRGB()
	if m := f.config.MaxComponentValue; m > 0 {
		if c := math.Max(rgb.X, math.Max(rgb.Y, rgb.Z)); c > m {
			rgb = rgb.Multiply(m / c)
		}
	}

	ps := f.pixel(p)
	ps.RGBSum = ps.RGBSum.Add(rgb.Multiply(weight))
	ps.WeightSum += weight
	ps.SampleCount++
	ps.LuminanceSum += xyz.Y
	ps.LuminanceSqSum += xyz.Y * xyz.Y

	if f.config.WriteAuxiliary && vs != nil && vs.Set {
		albedo := spectrum.ToXYZ(vs.Albedo, lambda).LinearSRGB()
		ps.AlbedoSum = ps.AlbedoSum.Add(albedo.Multiply(weight))
		ps.NormalSum = ps.NormalSum.Add(vs.Ns.Multiply(weight))
	}
}

// Pixel returns the accumulated statistics of pixel p
func (f *RGBFilm) Pixel(p image.Point) PixelStats {
	return *f.pixel(p)
}

// Image returns the film as a gamma corrected 8-bit image
func (f *RGBFilm) Image() *image.RGBA {
	return f.image(func(ps *PixelStats) core.Vec3 { return ps.Color() })
}

// AlbedoImage returns the averaged first-hit albedo, or nil without auxiliary buffers
func (f *RGBFilm) AlbedoImage() *image.RGBA {
	if !f.config.WriteAuxiliary {
		return nil
	}
	return f.image(func(ps *PixelStats) core.Vec3 {
		if ps.WeightSum == 0 {
			return core.Vec3{}
		}
		return ps.AlbedoSum.Multiply(1 / ps.WeightSum)
	})
}

// NormalImage returns the averaged shading normal mapped from [-1,1] to [0,1], or nil
// without auxiliary buffers. Normals are stored linearly and written without gamma.
func (f *RGBFilm) NormalImage() *image.RGBA {
	if !f.config.WriteAuxiliary {
		return nil
	}
	b := f.config.Bounds
	img := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			n := f.pixel(image.Pt(x, y)).NormalSum.Normalize()
			c := n.Add(core.NewVec3(1, 1, 1)).Multiply(0.5).Clamp(0, 1)
			img.SetRGBA(x-b.Min.X, y-b.Min.Y, color.RGBA{R: uint8(255 * c.X), G: uint8(255 * c.Y), B: uint8(255 * c.Z), A: 255})
		}
	}
	return img
}

func (f *RGBFilm) image(value func(ps *PixelStats) core.Vec3) *image.RGBA {
	b := f.config.Bounds
	img := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			img.SetRGBA(x-b.Min.X, y-b.Min.Y, vec3ToColor(value(f.pixel(image.Pt(x, y)))))
		}
	}
	return img
}

// vec3ToColor converts a linear color to RGBA with proper clamping and gamma correction
func vec3ToColor(colorVec core.Vec3) color.RGBA {
	// Clamp first; out of gamut colors have negative components
	colorVec = colorVec.Clamp(0.0, 1.0)

	// Apply gamma correction (gamma = 2.0)
	colorVec = colorVec.GammaCorrect(2.0)

	return color.RGBA{
		R: uint8(255 * colorVec.X),
		G: uint8(255 * colorVec.Y),
		B: uint8(255 * colorVec.Z),
		A: 255,
	}
}
