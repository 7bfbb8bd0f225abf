package geometry

import (
	"math"

	"github.com/df07/go-spectral-raytracer/pkg/core"
)

// Disc represents a circular flat surface
type Disc struct {
	Center core.Vec3 // Center of the disc
	Normal core.Vec3 // Normal vector (pointing "up" from the disc)
	Radius float64
	Right  core.Vec3 // Right vector (perpendicular to normal)
	Up     core.Vec3 // Up vector (perpendicular to normal and right)
}

// NewDisc creates a new disc
func NewDisc(center, normal core.Vec3, radius float64) *Disc {
	n := normal.Normalize()
	right, up := core.CoordinateSystem(n)

	return &Disc{
		Center: center,
		Normal: n,
		Radius: radius,
		Right:  right,
		Up:     up,
	}
}

// Intersect tests if a ray intersects with the disc
func (d *Disc) Intersect(ray core.Ray, tMax float64) (ShapeHit, bool) {
	denom := d.Normal.Dot(ray.Direction)
	if math.Abs(denom) < 1e-8 {
		return ShapeHit{}, false // Ray is parallel to disc
	}

	t := d.Normal.Dot(d.Center.Subtract(ray.Origin)) / denom
	if t <= minHitT || t >= tMax {
		return ShapeHit{}, false
	}

	hitPoint := ray.At(t)
	centerToHit := hitPoint.Subtract(d.Center)
	distanceSquared := centerToHit.LengthSquared()
	if distanceSquared > d.Radius*d.Radius {
		return ShapeHit{}, false // Outside disc
	}

	// Polar coordinates: u is the angle, v the normalized distance from the center
	phi := math.Atan2(centerToHit.Dot(d.Up), centerToHit.Dot(d.Right))
	if phi < 0 {
		phi += 2 * math.Pi
	}
	uv := core.NewVec2(phi/(2*math.Pi), math.Sqrt(distanceSquared)/d.Radius)

	return ShapeHit{T: t, P: hitPoint, N: d.Normal, UV: uv}, true
}

// Bounds returns the bounding box of the disc's square extent in its plane
func (d *Disc) Bounds() core.Bounds3 {
	rightExtent := d.Right.Multiply(d.Radius)
	upExtent := d.Up.Multiply(d.Radius)

	return core.NewBounds3FromPoints(
		d.Center.Add(rightExtent).Add(upExtent),
		d.Center.Add(rightExtent).Subtract(upExtent),
		d.Center.Subtract(rightExtent).Add(upExtent),
		d.Center.Subtract(rightExtent).Subtract(upExtent),
	)
}
