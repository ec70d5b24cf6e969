package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Triangle represents a single triangle defined by three vertices
type Triangle struct {
	V0, V1, V2 core.Vec3         // The three vertices
	Material   material.Material // Material of the triangle
	normal     core.Vec3         // Cached unit normal, zero for degenerate triangles
}

// NewTriangle creates a new triangle from three vertices.
// The front face is the side from which the vertices appear counter-clockwise.
func NewTriangle(v0, v1, v2 core.Vec3, material material.Material) *Triangle {
	return &Triangle{
		V0:       v0,
		V1:       v1,
		V2:       v2,
		Material: material,
		normal:   v1.Subtract(v0).Cross(v2.Subtract(v1)).Normalize(),
	}
}

// Hit intersects the ray with the triangle's plane and then checks that the point lies
// on the inner side of all three edges
func (t *Triangle) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	// Covers both near-parallel rays and collinear vertices (zero normal)
	denominator := t.normal.Dot(ray.Direction)
	if math.Abs(denominator) <= parallelEpsilon {
		return nil, false
	}

	root := t.V0.Subtract(ray.Origin).Dot(t.normal) / denominator
	if !inRange(root, tMin, tMax) {
		return nil, false
	}

	point := ray.At(root)
	if !t.contains(point) {
		return nil, false
	}

	hitRecord := &material.HitRecord{
		T:        root,
		Point:    point,
		Material: t.Material,
	}
	hitRecord.SetFaceNormal(ray, t.normal)

	return hitRecord, true
}

// contains reports whether a point on the triangle's plane lies inside the triangle or
// on its boundary. Edge tests compare against zero, not against the ray's t interval.
func (t *Triangle) contains(p core.Vec3) bool {
	edges := [3][2]core.Vec3{
		{t.V0, t.V1},
		{t.V1, t.V2},
		{t.V2, t.V0},
	}
	for _, e := range edges {
		edge := e[1].Subtract(e[0])
		if t.normal.Dot(edge.Cross(p.Subtract(e[0]))) < 0 {
			return false
		}
	}
	return true
}

// GetNormal returns the triangle's unit normal vector
func (t *Triangle) GetNormal() core.Vec3 {
	return t.normal
}
