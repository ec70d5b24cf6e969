package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Shape interface for objects that can be hit by rays.
// Hit returns the nearest intersection with t in [tMin, tMax]. Implementations must not
// mutate any state, so a shape can be shared by every render goroutine.
type Shape interface {
	Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool)
}

// parallelEpsilon is the |dot(direction, normal)| below which a ray is treated as
// parallel to a plane or triangle
const parallelEpsilon = 1e-6
