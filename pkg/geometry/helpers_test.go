package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// DummyMaterial for testing
type DummyMaterial struct {
	Name string
}

func (d DummyMaterial) Scatter(rayIn core.Ray, hit material.HitRecord, sampler core.Sampler) (material.ScatterResult, bool) {
	return material.ScatterResult{}, false
}

func (d DummyMaterial) Emits() bool {
	return false
}

func assertVecNear(t *testing.T, label string, expected, actual core.Vec3) {
	t.Helper()
	const tolerance = 1e-9
	if math.Abs(actual.X-expected.X) > tolerance ||
		math.Abs(actual.Y-expected.Y) > tolerance ||
		math.Abs(actual.Z-expected.Z) > tolerance {
		t.Errorf("Expected %s %v, got %v", label, expected, actual)
	}
}
