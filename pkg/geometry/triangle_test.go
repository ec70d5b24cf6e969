package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestTriangle_Hit(t *testing.T) {
	// Create a triangle in the XY plane
	v0 := core.NewVec3(0, 0, 0)
	v1 := core.NewVec3(1, 0, 0)
	v2 := core.NewVec3(0, 1, 0)
	triangle := NewTriangle(v0, v1, v2, DummyMaterial{})

	tests := []struct {
		name      string
		ray       core.Ray
		tMin      float64
		tMax      float64
		shouldHit bool
		expectedT float64
	}{
		{
			name:      "Ray hits triangle center",
			ray:       core.NewRay(core.NewVec3(0.25, 0.25, -1), core.NewVec3(0, 0, 1)),
			tMin:      0.001,
			tMax:      10.0,
			shouldHit: true,
			expectedT: 1.0,
		},
		{
			name:      "Ray hits triangle edge",
			ray:       core.NewRay(core.NewVec3(0.5, 0, -1), core.NewVec3(0, 0, 1)),
			tMin:      0.001,
			tMax:      10.0,
			shouldHit: true,
			expectedT: 1.0,
		},
		{
			name:      "Ray hits from the front side",
			ray:       core.NewRay(core.NewVec3(0.2, 0.2, 2), core.NewVec3(0, 0, -1)),
			tMin:      0.001,
			tMax:      10.0,
			shouldHit: true,
			expectedT: 2.0,
		},
		{
			name:      "Ray misses triangle",
			ray:       core.NewRay(core.NewVec3(1, 1, -1), core.NewVec3(0, 0, 1)),
			tMin:      0.001,
			tMax:      10.0,
			shouldHit: false,
		},
		{
			name:      "Ray misses beyond hypotenuse",
			ray:       core.NewRay(core.NewVec3(0.6, 0.6, -1), core.NewVec3(0, 0, 1)),
			tMin:      0.001,
			tMax:      10.0,
			shouldHit: false,
		},
		{
			name:      "Ray parallel to triangle",
			ray:       core.NewRay(core.NewVec3(0.25, 0.25, -1), core.NewVec3(1, 0, 0)),
			tMin:      0.001,
			tMax:      10.0,
			shouldHit: false,
		},
		{
			name:      "Intersection behind ray",
			ray:       core.NewRay(core.NewVec3(0.25, 0.25, 1), core.NewVec3(0, 0, 1)),
			tMin:      0.001,
			tMax:      10.0,
			shouldHit: false,
		},
		{
			name:      "Intersection beyond tMax",
			ray:       core.NewRay(core.NewVec3(0.25, 0.25, -5), core.NewVec3(0, 0, 1)),
			tMin:      0.001,
			tMax:      4.0,
			shouldHit: false,
		},
		{
			name:      "NaN direction",
			ray:       core.NewRay(core.NewVec3(0.25, 0.25, -1), core.NewVec3(math.NaN(), math.NaN(), math.NaN())),
			tMin:      0.001,
			tMax:      math.Inf(1),
			shouldHit: false,
		},
		{
			// The inside test uses zero as its threshold, so a large tMin only
			// restricts t and does not shrink the triangle
			name:      "Large tMin does not shrink triangle",
			ray:       core.NewRay(core.NewVec3(0.05, 0.05, -5), core.NewVec3(0, 0, 1)),
			tMin:      1.0,
			tMax:      10.0,
			shouldHit: true,
			expectedT: 5.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := triangle.Hit(tt.ray, tt.tMin, tt.tMax)

			if isHit != tt.shouldHit {
				t.Fatalf("Expected hit=%t, got hit=%t", tt.shouldHit, isHit)
			}
			if !isHit {
				return
			}
			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
			assertVecNear(t, "hit point", tt.ray.At(tt.expectedT), hit.Point)
			if hit.Normal.Dot(tt.ray.Direction) > 0 {
				t.Errorf("Normal %v should face the ray", hit.Normal)
			}
		})
	}
}

func TestTriangle_Normal(t *testing.T) {
	triangle := NewTriangle(
		core.NewVec3(0, 0, 0),
		core.NewVec3(2, 0, 0),
		core.NewVec3(0, 2, 0),
		DummyMaterial{},
	)
	assertVecNear(t, "normal", core.NewVec3(0, 0, 1), triangle.GetNormal())

	// Front face is the counter-clockwise side
	hit, isHit := triangle.Hit(core.NewRay(core.NewVec3(0.5, 0.5, 1), core.NewVec3(0, 0, -1)), 0.001, 10)
	if !isHit || !hit.FrontFace {
		t.Errorf("Expected front face hit from +Z, got hit=%t", isHit)
	}
	hit, isHit = triangle.Hit(core.NewRay(core.NewVec3(0.5, 0.5, -1), core.NewVec3(0, 0, 1)), 0.001, 10)
	if !isHit || hit.FrontFace {
		t.Errorf("Expected back face hit from -Z, got hit=%t", isHit)
	}
}

func TestTriangle_Degenerate(t *testing.T) {
	// Collinear vertices have no plane to hit
	triangle := NewTriangle(
		core.NewVec3(0, 0, 0),
		core.NewVec3(1, 1, 1),
		core.NewVec3(2, 2, 2),
		DummyMaterial{},
	)

	ray := core.NewRay(core.NewVec3(1, 1, -5), core.NewVec3(0, 0, 1))
	if hit, isHit := triangle.Hit(ray, 0.001, math.Inf(1)); isHit {
		t.Errorf("Expected degenerate triangle to never be hit, got t=%f", hit.T)
	}
}
