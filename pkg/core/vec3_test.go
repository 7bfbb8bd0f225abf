package core

import (
	"math"
	"testing"
)

func TestCoordinateSystemIsOrthonormal(t *testing.T) {
	tests := []struct {
		name string
		v    Vec3
	}{
		{"X axis", NewVec3(1, 0, 0)},
		{"Y axis", NewVec3(0, 1, 0)},
		{"negative Z axis", NewVec3(0, 0, -1)},
		{"diagonal", NewVec3(1, 1, 1).Normalize()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, u := CoordinateSystem(tt.v)
			const tolerance = 1e-9
			if math.Abs(s.Length()-1) > tolerance || math.Abs(u.Length()-1) > tolerance {
				t.Errorf("Expected unit vectors, got |s|=%f |t|=%f", s.Length(), u.Length())
			}
			if math.Abs(s.Dot(u)) > tolerance || math.Abs(s.Dot(tt.v)) > tolerance || math.Abs(u.Dot(tt.v)) > tolerance {
				t.Errorf("Expected orthogonal basis for %v, got s=%v t=%v", tt.v, s, u)
			}
		})
	}
}

func TestScaleDifferentials(t *testing.T) {
	rd := RayDifferential{
		Ray:              NewRay(NewVec3(0, 0, 0), NewVec3(0, 0, -1)),
		HasDifferentials: true,
		RxOrigin:         NewVec3(1, 0, 0),
		RyOrigin:         NewVec3(0, 2, 0),
		RxDirection:      NewVec3(0.5, 0, -1),
		RyDirection:      NewVec3(0, 0.25, -1),
	}

	rd.ScaleDifferentials(0.5)

	if rd.RxOrigin != NewVec3(0.5, 0, 0) {
		t.Errorf("Expected rx origin (0.5,0,0), got %v", rd.RxOrigin)
	}
	if rd.RyOrigin != NewVec3(0, 1, 0) {
		t.Errorf("Expected ry origin (0,1,0), got %v", rd.RyOrigin)
	}
	if rd.RxDirection != NewVec3(0.25, 0, -1) {
		t.Errorf("Expected rx direction (0.25,0,-1), got %v", rd.RxDirection)
	}
	if rd.RyDirection != NewVec3(0, 0.125, -1) {
		t.Errorf("Expected ry direction (0,0.125,-1), got %v", rd.RyDirection)
	}
	if rd.Origin != NewVec3(0, 0, 0) || rd.Direction != NewVec3(0, 0, -1) {
		t.Errorf("Main ray must not change, got %v", rd.Ray)
	}
}

func TestScaleDifferentialsWithoutDifferentials(t *testing.T) {
	rd := NewRayDifferential(NewRay(NewVec3(1, 2, 3), NewVec3(0, 1, 0)))
	rd.ScaleDifferentials(0.125)
	if rd.RxOrigin != (Vec3{}) || rd.RxDirection != (Vec3{}) {
		t.Errorf("Expected untouched auxiliary rays, got %v %v", rd.RxOrigin, rd.RxDirection)
	}
}

func TestBounds3Hit(t *testing.T) {
	b := NewBounds3(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))

	if !b.Hit(NewRay(NewVec3(0, 0, 5), NewVec3(0, 0, -1)), 0, math.Inf(1)) {
		t.Error("Expected ray towards the box to hit")
	}
	if b.Hit(NewRay(NewVec3(0, 0, 5), NewVec3(0, 0, 1)), 0, math.Inf(1)) {
		t.Error("Expected ray away from the box to miss")
	}
	if b.Hit(NewRay(NewVec3(0, 0, 5), NewVec3(0, 0, -1)), 0, 3) {
		t.Error("Expected tMax to cut the hit")
	}
}

func TestBoundsSphere(t *testing.T) {
	center, radius := NewBounds3FromPoints(NewVec3(0, 0, 0), NewVec3(2, 2, 2)).BoundingSphere()
	if center != NewVec3(1, 1, 1) {
		t.Errorf("Expected center (1,1,1), got %v", center)
	}
	if math.Abs(radius-math.Sqrt(3)) > 1e-12 {
		t.Errorf("Expected radius sqrt(3), got %f", radius)
	}

	center, radius = EmptyBounds3().BoundingSphere()
	if center != (Vec3{}) || radius != 0 {
		t.Errorf("Expected zero sphere for empty bounds, got %v %f", center, radius)
	}
}
