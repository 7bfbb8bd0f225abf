package core

import "math"

// Bounds3 represents an axis-aligned bounding box
type Bounds3 struct {
	Min Vec3 // Minimum corner
	Max Vec3 // Maximum corner
}

// NewBounds3 creates a bounding box from min and max points
func NewBounds3(min, max Vec3) Bounds3 {
	return Bounds3{Min: min, Max: max}
}

// EmptyBounds3 returns an inverted box that unions to whatever it is combined with
func EmptyBounds3() Bounds3 {
	inf := math.Inf(1)
	return Bounds3{Min: NewVec3(inf, inf, inf), Max: NewVec3(-inf, -inf, -inf)}
}

// NewBounds3FromPoints creates a bounding box enclosing all given points
func NewBounds3FromPoints(points ...Vec3) Bounds3 {
	b := EmptyBounds3()
	for _, p := range points {
		b = b.UnionPoint(p)
	}
	return b
}

// Hit tests if a ray intersects the box within [tMin, tMax] using the slab method
func (b Bounds3) Hit(ray Ray, tMin, tMax float64) bool {
	for axis := 0; axis < 3; axis++ {
		lo := b.Min.Component(axis)
		hi := b.Max.Component(axis)
		origin := ray.Origin.Component(axis)
		direction := ray.Direction.Component(axis)

		if math.Abs(direction) < 1e-12 {
			if origin < lo || origin > hi {
				return false
			}
			continue
		}

		invDirection := 1.0 / direction
		t1 := (lo - origin) * invDirection
		t2 := (hi - origin) * invDirection
		if t1 > t2 {
			t1, t2 = t2, t1
		}

		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return false
		}
	}
	return true
}

// Union returns a box that bounds both boxes
func (b Bounds3) Union(other Bounds3) Bounds3 {
	return Bounds3{Min: b.Min.Min(other.Min), Max: b.Max.Max(other.Max)}
}

// UnionPoint returns a box grown to include p
func (b Bounds3) UnionPoint(p Vec3) Bounds3 {
	return Bounds3{Min: b.Min.Min(p), Max: b.Max.Max(p)}
}

// Center returns the center point of the box
func (b Bounds3) Center() Vec3 {
	return b.Min.Add(b.Max).Multiply(0.5)
}

// Size returns the extent of the box along each axis
func (b Bounds3) Size() Vec3 {
	return b.Max.Subtract(b.Min)
}

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) with the longest extent
func (b Bounds3) LongestAxis() int {
	size := b.Size()
	if size.X > size.Y && size.X > size.Z {
		return 0
	}
	if size.Y > size.Z {
		return 1
	}
	return 2
}

// IsEmpty reports whether the box encloses no points
func (b Bounds3) IsEmpty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y || b.Min.Z > b.Max.Z
}

// BoundingSphere returns the center and radius of a sphere enclosing the box.
// An empty box yields a zero sphere at the origin.
func (b Bounds3) BoundingSphere() (Vec3, float64) {
	if b.IsEmpty() {
		return Vec3{}, 0
	}
	center := b.Center()
	return center, b.Max.Subtract(center).Length()
}
