package camera

import (
	"math"

	"github.com/df07/go-spectral-raytracer/pkg/core"
	"github.com/df07/go-spectral-raytracer/pkg/spectrum"
)

// CameraConfig describes a thin-lens perspective camera
type CameraConfig struct {
	Center         core.Vec3 // Camera position
	LookAt         core.Vec3 // Point the camera looks at
	Up             core.Vec3 // Up direction
	Width          int       // Film width in pixels
	AspectRatio    float64   // Width / height
	VFov           float64   // Vertical field of view in degrees
	Aperture       float64   // Lens diameter, 0 for a pinhole
	FocusDistance  float64   // 0 focuses on LookAt
	ApertureBlades int       // Polygonal aperture with this many blades, 0 for a round lens
	ShutterOpen    float64
	ShutterClose   float64

	// FootprintScale scales approximated surface footprints, usually max(1/8, 1/sqrt(spp))
	FootprintScale float64

	// DisableTextureFiltering drops ray differentials and reports zero footprints
	DisableTextureFiltering bool
}

// PerspectiveCamera is an immutable thin-lens camera
type PerspectiveCamera struct {
	config      CameraConfig
	height      int
	origin      core.Vec3
	upperLeft   core.Vec3 // Film corner projected onto the focus plane
	horizontal  core.Vec3 // Full film width on the focus plane
	vertical    core.Vec3 // Full film height on the focus plane
	u, v, w     core.Vec3 // Camera basis, w points backwards
	lensRadius  float64
	pixelSpread float64 // Angular size of a pixel at unit distance
}

// NewPerspectiveCamera creates a camera from its configuration
func NewPerspectiveCamera(config CameraConfig) *PerspectiveCamera {
	if config.AspectRatio <= 0 {
		config.AspectRatio = 1
	}
	height := max(1, int(float64(config.Width)/config.AspectRatio))

	focusDistance := config.FocusDistance
	if focusDistance <= 0 {
		focusDistance = config.LookAt.Subtract(config.Center).Length()
	}

	theta := config.VFov * math.Pi / 180
	h := math.Tan(theta / 2)
	viewportHeight := 2 * h * focusDistance
	viewportWidth := viewportHeight * float64(config.Width) / float64(height)

	w := config.Center.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	horizontal := u.Multiply(viewportWidth)
	vertical := v.Multiply(viewportHeight)
	upperLeft := config.Center.
		Subtract(horizontal.Multiply(0.5)).
		Add(vertical.Multiply(0.5)).
		Subtract(w.Multiply(focusDistance))

	return &PerspectiveCamera{
		config:      config,
		height:      height,
		origin:      config.Center,
		upperLeft:   upperLeft,
		horizontal:  horizontal,
		vertical:    vertical,
		u:           u,
		v:           v,
		w:           w,
		lensRadius:  config.Aperture / 2,
		pixelSpread: 2 * h / float64(height),
	}
}

// Resolution returns the film size the camera was configured for
func (c *PerspectiveCamera) Resolution() (int, int) {
	return c.config.Width, c.height
}

// focusPoint maps a raster position onto the plane of focus
func (c *PerspectiveCamera) focusPoint(x, y float64) core.Vec3 {
	return c.upperLeft.
		Add(c.horizontal.Multiply(x / float64(c.config.Width))).
		Subtract(c.vertical.Multiply(y / float64(c.height)))
}

// lensOffset maps a lens sample onto the aperture; false means the aperture blocks it
func (c *PerspectiveCamera) lensOffset(pLens core.Vec2) (core.Vec3, bool) {
	if c.lensRadius <= 0 {
		return core.Vec3{}, true
	}
	d := core.SampleUniformDiskConcentric(pLens)
	if blades := c.config.ApertureBlades; blades >= 3 && !insidePolygon(d, blades) {
		return core.Vec3{}, false
	}
	return c.u.Multiply(d.X * c.lensRadius).Add(c.v.Multiply(d.Y * c.lensRadius)), true
}

// insidePolygon tests p against a regular polygon inscribed in the unit circle
func insidePolygon(p core.Vec2, sides int) bool {
	r := math.Hypot(p.X, p.Y)
	if r == 0 {
		return true
	}
	sector := 2 * math.Pi / float64(sides)
	phi := math.Mod(math.Atan2(p.Y, p.X)+2*math.Pi, sector) - sector/2
	apothem := math.Cos(sector / 2)
	return r*math.Cos(phi) <= apothem
}

// GenerateRayDifferential implements Camera
func (c *PerspectiveCamera) GenerateRayDifferential(sample CameraSample, lambda spectrum.SampledWavelengths) (CameraRay, bool) {
	offset, ok := c.lensOffset(sample.PLens)
	if !ok {
		return CameraRay{}, false
	}

	origin := c.origin.Add(offset)
	target := c.focusPoint(sample.PFilm.X, sample.PFilm.Y)
	direction := target.Subtract(origin).Normalize()
	if direction.IsZero() {
		return CameraRay{}, false
	}

	time := core.Lerp(sample.Time, c.config.ShutterOpen, c.config.ShutterClose)
	ray := core.NewRayDifferential(core.Ray{Origin: origin, Direction: direction, Time: time})
	if !c.config.DisableTextureFiltering {
		ray.HasDifferentials = true
		ray.RxOrigin = origin
		ray.RyOrigin = origin
		ray.RxDirection = c.focusPoint(sample.PFilm.X+1, sample.PFilm.Y).Subtract(origin).Normalize()
		ray.RyDirection = c.focusPoint(sample.PFilm.X, sample.PFilm.Y+1).Subtract(origin).Normalize()
	}

	return CameraRay{Ray: ray, Weight: spectrum.NewSampledSpectrum(1)}, true
}

// ApproximateFootprint implements Camera
func (c *PerspectiveCamera) ApproximateFootprint(p, n core.Vec3) (core.Vec3, core.Vec3) {
	if c.config.DisableTextureFiltering {
		return core.Vec3{}, core.Vec3{}
	}
	distance := p.Subtract(c.origin).Length()
	size := distance * c.pixelSpread * c.config.FootprintScale
	dpdx := c.u.Subtract(n.Multiply(c.u.Dot(n))).Multiply(size)
	dpdy := c.v.Negate().Subtract(n.Multiply(-c.v.Dot(n))).Multiply(size)
	return dpdx, dpdy
}
