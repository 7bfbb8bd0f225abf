package core

// Ray represents a ray with an origin, direction, time and the medium it travels through
type Ray struct {
	Origin    Vec3
	Direction Vec3
	Time      float64
	Medium    string // Empty for vacuum
}

// NewRay creates a new ray at time zero
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// RayDifferential is a ray carrying two auxiliary rays offset by one pixel in x and y.
// The auxiliary rays estimate the footprint a camera sample covers on a surface.
type RayDifferential struct {
	Ray
	HasDifferentials bool
	RxOrigin         Vec3
	RyOrigin         Vec3
	RxDirection      Vec3
	RyDirection      Vec3
}

// NewRayDifferential wraps a ray without differentials
func NewRayDifferential(ray Ray) RayDifferential {
	return RayDifferential{Ray: ray}
}

// ScaleDifferentials moves the auxiliary rays towards the main ray by factor s
func (rd *RayDifferential) ScaleDifferentials(s float64) {
	if !rd.HasDifferentials {
		return
	}
	rd.RxOrigin = rd.Origin.Add(rd.RxOrigin.Subtract(rd.Origin).Multiply(s))
	rd.RyOrigin = rd.Origin.Add(rd.RyOrigin.Subtract(rd.Origin).Multiply(s))
	rd.RxDirection = rd.Direction.Add(rd.RxDirection.Subtract(rd.Direction).Multiply(s))
	rd.RyDirection = rd.Direction.Add(rd.RyDirection.Subtract(rd.Direction).Multiply(s))
}

// OffsetRayOrigin pushes p off the surface along n so spawned rays do not re-hit it
func OffsetRayOrigin(p, n, w Vec3) Vec3 {
	const shadowEpsilon = 1e-4
	offset := n.Multiply(shadowEpsilon * max(1, p.Length()*1e-3))
	if w.Dot(n) < 0 {
		offset = offset.Negate()
	}
	return p.Add(offset)
}
