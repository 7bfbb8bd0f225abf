package camera

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-spectral-raytracer/pkg/core"
)

var ErrUnknownFilter = errors.New("camera: unknown filter type")

// Filter is a pixel reconstruction filter centered on the pixel
type Filter interface {
	Radius() core.Vec2
	Evaluate(p core.Vec2) float64
	// Sample picks an offset from the pixel center and the weight the film applies to it
	Sample(u core.Vec2) FilterSample
}

// FilterSample is an offset within the filter support and its weight
type FilterSample struct {
	P      core.Vec2
	Weight float64
}

// NewFilter creates a filter by name ("box", "triangle" or "gaussian")
func NewFilter(name string, radius float64) (Filter, error) {
	if radius <= 0 {
		radius = 0.5
	}
	r := core.NewVec2(radius, radius)
	switch name {
	case "", "box":
		return &BoxFilter{radius: r}, nil
	case "triangle":
		return &TriangleFilter{radius: r}, nil
	case "gaussian":
		return NewGaussianFilter(r, 0.5), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFilter, name)
	}
}

// BoxFilter weights every point of its support equally
type BoxFilter struct {
	radius core.Vec2
}

// NewBoxFilter creates a box filter
func NewBoxFilter(radius core.Vec2) *BoxFilter {
	return &BoxFilter{radius: radius}
}

func (f *BoxFilter) Radius() core.Vec2 { return f.radius }

func (f *BoxFilter) Evaluate(p core.Vec2) float64 {
	if math.Abs(p.X) <= f.radius.X && math.Abs(p.Y) <= f.radius.Y {
		return 1
	}
	return 0
}

func (f *BoxFilter) Sample(u core.Vec2) FilterSample {
	p := core.NewVec2(core.Lerp(u.X, -f.radius.X, f.radius.X), core.Lerp(u.Y, -f.radius.Y, f.radius.Y))
	return FilterSample{P: p, Weight: 1}
}

// TriangleFilter falls off linearly from the pixel center
type TriangleFilter struct {
	radius core.Vec2
}

func (f *TriangleFilter) Radius() core.Vec2 { return f.radius }

func (f *TriangleFilter) Evaluate(p core.Vec2) float64 {
	return max(0, f.radius.X-math.Abs(p.X)) * max(0, f.radius.Y-math.Abs(p.Y))
}

// Sample draws exactly from the tent so every sample has unit weight
func (f *TriangleFilter) Sample(u core.Vec2) FilterSample {
	p := core.NewVec2(core.SampleTent(u.X, f.radius.X), core.SampleTent(u.Y, f.radius.Y))
	return FilterSample{P: p, Weight: 1}
}

// GaussianFilter is a truncated gaussian shifted to reach zero at its radius
type GaussianFilter struct {
	radius     core.Vec2
	sigma      float64
	expX, expY float64
}

// NewGaussianFilter creates a gaussian filter with standard deviation sigma
func NewGaussianFilter(radius core.Vec2, sigma float64) *GaussianFilter {
	return &GaussianFilter{
		radius: radius,
		sigma:  sigma,
		expX:   gaussian(radius.X, sigma),
		expY:   gaussian(radius.Y, sigma),
	}
}

func gaussian(x, sigma float64) float64 {
	return math.Exp(-(x*x)/(2*sigma*sigma)) / math.Sqrt(2*math.Pi*sigma*sigma)
}

func (f *GaussianFilter) Radius() core.Vec2 { return f.radius }

func (f *GaussianFilter) Evaluate(p core.Vec2) float64 {
	return max(0, gaussian(p.X, f.sigma)-f.expX) * max(0, gaussian(p.Y, f.sigma)-f.expY)
}

// Sample draws a uniform offset and carries the filter value as its weight.
// The film divides by the accumulated weight, so the constant normalization cancels.
func (f *GaussianFilter) Sample(u core.Vec2) FilterSample {
	p := core.NewVec2(core.Lerp(u.X, -f.radius.X, f.radius.X), core.Lerp(u.Y, -f.radius.Y, f.radius.Y))
	return FilterSample{P: p, Weight: f.Evaluate(p)}
}
