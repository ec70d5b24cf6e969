package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// TriangleMesh represents an unordered collection of triangles tested one by one
type TriangleMesh struct {
	triangles []*Triangle
}

// NewMesh creates an empty mesh; triangles are added with Add
func NewMesh() *TriangleMesh {
	return &TriangleMesh{}
}

// NewTriangleMesh creates a new triangle mesh from vertices and face indices
// vertices: array of 3D points
// faces: array of triangle indices (each group of 3 indices forms a triangle)
// material: material shared by all triangles
func NewTriangleMesh(vertices []core.Vec3, faces []int, material material.Material) *TriangleMesh {
	if len(faces)%3 != 0 {
		panic("Face indices must be a multiple of 3")
	}

	numTriangles := len(faces) / 3
	mesh := &TriangleMesh{triangles: make([]*Triangle, 0, numTriangles)}

	for i := 0; i < numTriangles; i++ {
		i0 := faces[i*3]
		i1 := faces[i*3+1]
		i2 := faces[i*3+2]

		if i0 >= len(vertices) || i1 >= len(vertices) || i2 >= len(vertices) ||
			i0 < 0 || i1 < 0 || i2 < 0 {
			panic("Face index out of bounds")
		}

		mesh.Add(NewTriangle(vertices[i0], vertices[i1], vertices[i2], material))
	}

	return mesh
}

// Add appends triangles to the mesh
func (tm *TriangleMesh) Add(triangles ...*Triangle) {
	tm.triangles = append(tm.triangles, triangles...)
}

// Hit returns the closest triangle hit within [tMin, tMax]
func (tm *TriangleMesh) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	var closestHit *material.HitRecord
	closestSoFar := tMax

	for _, triangle := range tm.triangles {
		if hit, isHit := triangle.Hit(ray, tMin, closestSoFar); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}

// GetTriangles returns the triangles in the mesh
func (tm *TriangleMesh) GetTriangles() []*Triangle {
	return tm.triangles
}

// GetTriangleCount returns the number of triangles in the mesh
func (tm *TriangleMesh) GetTriangleCount() int {
	return len(tm.triangles)
}
