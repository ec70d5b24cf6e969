package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestSphere_Hit_ReferenceCase(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -1), 0.5, DummyMaterial{})
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	hit, isHit := sphere.Hit(ray, 0.001, math.Inf(1))
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}

	if math.Abs(hit.T-0.5) > 1e-9 {
		t.Errorf("Expected t=0.5, got t=%f", hit.T)
	}
	assertVecNear(t, "hit point", core.NewVec3(0, 0, -0.5), hit.Point)
	assertVecNear(t, "normal", core.NewVec3(0, 0, 1), hit.Normal)
	if !hit.FrontFace {
		t.Error("Expected front face hit")
	}
	if hit.Material != (DummyMaterial{}) {
		t.Errorf("Expected sphere material on hit record, got %v", hit.Material)
	}
}

func TestSphere_Hit_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, DummyMaterial{})
	ray := core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))

	hit, isHit := sphere.Hit(ray, 0.001, 1000.0)
	if isHit {
		t.Errorf("Expected miss, but got hit at t=%f", hit.T)
	}
}

func TestSphere_Hit_DegenerateInputMisses(t *testing.T) {
	tests := []struct {
		name   string
		sphere *Sphere
		ray    core.Ray
	}{
		{
			name:   "zero radius through center",
			sphere: NewSphere(core.NewVec3(0, 0, -1), 0, DummyMaterial{}),
			ray:    core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)),
		},
		{
			name:   "zero length direction",
			sphere: NewSphere(core.NewVec3(0, 0, 0), 1, DummyMaterial{}),
			ray:    core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 0)),
		},
		{
			name:   "NaN direction",
			sphere: NewSphere(core.NewVec3(0, 0, -1), 0.5, DummyMaterial{}),
			ray:    core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(math.NaN(), math.NaN(), math.NaN())),
		},
		{
			name:   "NaN origin",
			sphere: NewSphere(core.NewVec3(0, 0, -1), 0.5, DummyMaterial{}),
			ray:    core.NewRay(core.NewVec3(math.NaN(), 0, 0), core.NewVec3(0, 0, -1)),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := tt.sphere.Hit(tt.ray, 0.001, math.Inf(1))
			if isHit {
				t.Errorf("Expected miss, got hit at t=%v normal=%v", hit.T, hit.Normal)
			}
		})
	}
}

func TestSphere_Hit_FrontAndBackFace(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, DummyMaterial{})

	tests := []struct {
		name           string
		rayOrigin      core.Vec3
		rayDirection   core.Vec3
		expectedT      float64
		expectedFront  bool
		expectedNormal core.Vec3
	}{
		{
			name:           "front face hit",
			rayOrigin:      core.NewVec3(0, 0, 2),
			rayDirection:   core.NewVec3(0, 0, -1),
			expectedT:      1.0,
			expectedFront:  true,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "back face hit",
			rayOrigin:      core.NewVec3(0, 0, 0),
			rayDirection:   core.NewVec3(0, 0, 1),
			expectedT:      1.0,
			expectedFront:  false,
			expectedNormal: core.NewVec3(0, 0, -1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.rayOrigin, tt.rayDirection)
			hit, isHit := sphere.Hit(ray, 0.001, 1000.0)

			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}
			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
			if hit.FrontFace != tt.expectedFront {
				t.Errorf("Expected front face %t, got %t", tt.expectedFront, hit.FrontFace)
			}
			assertVecNear(t, "normal", tt.expectedNormal, hit.Normal)
		})
	}
}

func TestSphere_Hit_NegativeRadius(t *testing.T) {
	// Inner surface of a hollow shell: hitting it from outside counts as the back face
	inner := NewSphere(core.NewVec3(0, 0, 0), -0.5, DummyMaterial{})
	ray := core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1))

	hit, isHit := inner.Hit(ray, 0.001, 1000.0)
	if !isHit {
		t.Fatal("Expected hit on negative-radius sphere")
	}
	if math.Abs(hit.T-1.5) > 1e-9 {
		t.Errorf("Expected t=1.5, got t=%f", hit.T)
	}
	if hit.FrontFace {
		t.Error("Negative radius should flip the face: expected back face")
	}
	// The stored normal still faces the incoming ray
	assertVecNear(t, "normal", core.NewVec3(0, 0, 1), hit.Normal)
}

func TestSphere_Hit_GlancingHit(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, DummyMaterial{})
	ray := core.NewRay(core.NewVec3(1, 0, 2), core.NewVec3(0, 0, -1))

	hit, isHit := sphere.Hit(ray, 0.001, 1000.0)
	if !isHit {
		t.Fatal("Expected glancing hit, but got miss")
	}
	assertVecNear(t, "hit point", core.NewVec3(1, 0, 0), hit.Point)
}

func TestSphere_Hit_Bounds(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, DummyMaterial{})
	ray := core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1))

	// Test tMax bound
	hit, isHit := sphere.Hit(ray, 0.001, 0.5)
	if isHit {
		t.Errorf("Expected miss due to tMax bound, but got hit at t=%f", hit.T)
	}

	// Test tMin bound
	hit, isHit = sphere.Hit(ray, 3.5, 1000.0)
	if isHit {
		t.Errorf("Expected miss due to tMin bound, but got hit at t=%f", hit.T)
	}

	// Smaller root excluded, larger root accepted
	hit, isHit = sphere.Hit(ray, 1.5, 1000.0)
	if !isHit {
		t.Fatal("Expected far intersection when near root is below tMin")
	}
	if math.Abs(hit.T-3.0) > 1e-9 {
		t.Errorf("Expected t=3.0, got t=%f", hit.T)
	}
}

func TestSphere_Hit_UnnormalizedDirection(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -1), 0.5, DummyMaterial{})
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -4))

	hit, isHit := sphere.Hit(ray, 0.001, math.Inf(1))
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}
	if math.Abs(hit.T-0.125) > 1e-9 {
		t.Errorf("Expected t=0.125 for direction length 4, got t=%f", hit.T)
	}
	assertVecNear(t, "hit point", core.NewVec3(0, 0, -0.5), hit.Point)
}
