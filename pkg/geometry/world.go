package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// World is the scene root: a heterogeneous list of shapes, including nested meshes.
// Shapes are tested linearly and the closest hit wins.
type World struct {
	shapes []Shape
}

// NewWorld creates a world holding the given shapes
func NewWorld(shapes ...Shape) *World {
	w := &World{}
	w.Add(shapes...)
	return w
}

// Add appends shapes to the world
func (w *World) Add(shapes ...Shape) {
	w.shapes = append(w.shapes, shapes...)
}

// Hit returns the closest hit among all shapes within [tMin, tMax]
func (w *World) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	var closestHit *material.HitRecord
	closestSoFar := tMax

	for _, shape := range w.shapes {
		if hit, isHit := shape.Hit(ray, tMin, closestSoFar); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}

// GetShapes returns the top-level shapes
func (w *World) GetShapes() []Shape {
	return w.shapes
}
