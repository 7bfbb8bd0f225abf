package camera

import (
	"image"
	"math"
	"testing"

	"github.com/df07/go-spectral-raytracer/pkg/core"
	"github.com/df07/go-spectral-raytracer/pkg/sampler"
	"github.com/df07/go-spectral-raytracer/pkg/spectrum"
)

func testCameraConfig() CameraConfig {
	return CameraConfig{
		Center:      core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		Width:       100,
		AspectRatio: 1.0,
		VFov:        90.0,
	}
}

func TestCenterRayLooksForward(t *testing.T) {
	camera := NewPerspectiveCamera(testCameraConfig())
	cs := CameraSample{PFilm: core.NewVec2(50, 50), PLens: core.NewVec2(0.5, 0.5), FilterWeight: 1}

	cr, ok := camera.GenerateRayDifferential(cs, spectrum.SampleVisible(0.5))
	if !ok {
		t.Fatal("Expected a ray for the film center")
	}
	if cr.Ray.Direction.Subtract(core.NewVec3(0, 0, -1)).Length() > 1e-9 {
		t.Errorf("Expected forward direction, got %v", cr.Ray.Direction)
	}
	if !cr.Ray.HasDifferentials {
		t.Error("Expected ray differentials")
	}
	if cr.Ray.RxDirection.X <= cr.Ray.Direction.X {
		t.Errorf("Expected x differential to the right, got %v", cr.Ray.RxDirection)
	}
	if cr.Ray.RyDirection.Y >= cr.Ray.Direction.Y {
		t.Errorf("Expected y differential downwards, got %v", cr.Ray.RyDirection)
	}
	if cr.Weight != spectrum.NewSampledSpectrum(1) {
		t.Errorf("Expected unit weight, got %v", cr.Weight)
	}
}

func TestTopLeftCornerRay(t *testing.T) {
	camera := NewPerspectiveCamera(testCameraConfig())
	cs := CameraSample{PFilm: core.NewVec2(0, 0), PLens: core.NewVec2(0.5, 0.5)}

	cr, _ := camera.GenerateRayDifferential(cs, spectrum.SampleVisible(0.5))
	expected := core.NewVec3(-1, 1, -1).Normalize()
	if cr.Ray.Direction.Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected %v for the top-left corner with a 90 degree fov, got %v", expected, cr.Ray.Direction)
	}
}

func TestBladedApertureRejectsLensCorners(t *testing.T) {
	config := testCameraConfig()
	config.Aperture = 0.2
	config.ApertureBlades = 4
	camera := NewPerspectiveCamera(config)

	// Concentric mapping sends the square's diagonal onto the unit circle at 45 degrees,
	// which a square aperture with blades at 0 degrees clips.
	cs := CameraSample{PFilm: core.NewVec2(50, 50), PLens: core.NewVec2(0.99, 0.99)}
	if _, ok := camera.GenerateRayDifferential(cs, spectrum.SampleVisible(0.5)); ok {
		t.Error("Expected the aperture to block the lens sample")
	}

	cs.PLens = core.NewVec2(0.5, 0.5)
	if _, ok := camera.GenerateRayDifferential(cs, spectrum.SampleVisible(0.5)); !ok {
		t.Error("Expected the lens center to pass the aperture")
	}
}

func TestGetCameraSample(t *testing.T) {
	s := sampler.NewIndependentSampler(4, 3)
	s.StartPixelSample(image.Pt(10, 20), 0)
	cs := GetCameraSample(s, image.Pt(10, 20), NewBoxFilter(core.NewVec2(0.5, 0.5)), false)

	if cs.PFilm.X < 10 || cs.PFilm.X > 11 || cs.PFilm.Y < 20 || cs.PFilm.Y > 21 {
		t.Errorf("Expected film position inside pixel (10,20), got %v", cs.PFilm)
	}
	if cs.FilterWeight != 1 {
		t.Errorf("Expected box filter weight 1, got %f", cs.FilterWeight)
	}
}

func TestGetCameraSampleWithoutJitter(t *testing.T) {
	s := sampler.NewIndependentSampler(4, 3)
	s.StartPixelSample(image.Pt(1, 2), 0)
	cs := GetCameraSample(s, image.Pt(1, 2), NewGaussianFilter(core.NewVec2(1.5, 1.5), 0.5), true)

	want := CameraSample{PFilm: core.NewVec2(1.5, 2.5), PLens: core.NewVec2(0.5, 0.5), Time: 0.5, FilterWeight: 1}
	if cs != want {
		t.Errorf("Expected %+v, got %+v", want, cs)
	}
}

func TestFilters(t *testing.T) {
	for _, name := range []string{"box", "triangle", "gaussian"} {
		f, err := NewFilter(name, 1.5)
		if err != nil {
			t.Fatalf("%s: unexpected error %v", name, err)
		}
		for _, u := range []core.Vec2{{X: 0, Y: 0}, {X: 0.3, Y: 0.7}, {X: 0.999, Y: 0.5}} {
			fs := f.Sample(u)
			r := f.Radius()
			if math.Abs(fs.P.X) > r.X || math.Abs(fs.P.Y) > r.Y {
				t.Errorf("%s: sample %v outside radius %v", name, fs.P, r)
			}
			if fs.Weight < 0 {
				t.Errorf("%s: negative weight %f", name, fs.Weight)
			}
		}
	}

	if _, err := NewFilter("mitchell", 1); err == nil {
		t.Error("Expected an error for an unknown filter")
	}
}

func TestApproximateFootprintScales(t *testing.T) {
	config := testCameraConfig()
	config.FootprintScale = 1
	camera := NewPerspectiveCamera(config)
	p := core.NewVec3(0, 0, -10)
	n := core.NewVec3(0, 0, 1)

	dpdx, dpdy := camera.ApproximateFootprint(p, n)
	// 90 degree fov over 100 pixels spans 2/100 units per unit distance
	if math.Abs(dpdx.Length()-0.2) > 1e-9 || math.Abs(dpdy.Length()-0.2) > 1e-9 {
		t.Errorf("Expected footprint 0.2 at distance 10, got %f %f", dpdx.Length(), dpdy.Length())
	}

	config.FootprintScale = 0
	dpdx, _ = NewPerspectiveCamera(config).ApproximateFootprint(p, n)
	if !dpdx.IsZero() {
		t.Errorf("Expected zero footprint when filtering is disabled, got %v", dpdx)
	}
}

func TestDisableTextureFiltering(t *testing.T) {
	config := testCameraConfig()
	config.FootprintScale = 1
	config.DisableTextureFiltering = true
	camera := NewPerspectiveCamera(config)

	cs := CameraSample{PFilm: core.NewVec2(50, 50), PLens: core.NewVec2(0.5, 0.5), FilterWeight: 1}
	cr, ok := camera.GenerateRayDifferential(cs, spectrum.SampleVisible(0.5))
	if !ok {
		t.Fatal("Expected a ray for the film center")
	}
	if cr.Ray.HasDifferentials {
		t.Error("Expected no ray differentials with texture filtering disabled")
	}
	dpdx, dpdy := camera.ApproximateFootprint(core.NewVec3(0, 0, -10), core.NewVec3(0, 0, 1))
	if !dpdx.IsZero() || !dpdy.IsZero() {
		t.Errorf("Expected zero footprint, got %v %v", dpdx, dpdy)
	}
}
