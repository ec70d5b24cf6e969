package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// boxFaces lists the six faces of a box as corner quads, counter-clockwise seen from
// outside so every triangle normal points out of the box
var boxFaces = [6][4]int{
	{4, 5, 6, 7}, // Front (Z+)
	{1, 0, 3, 2}, // Back (Z-)
	{5, 1, 2, 6}, // Right (X+)
	{0, 4, 7, 3}, // Left (X-)
	{3, 7, 6, 2}, // Top (Y+)
	{4, 0, 1, 5}, // Bottom (Y-)
}

// NewBoxMesh creates a closed box of 12 triangles.
// halfSize holds half-extents (so (1,1,1) creates a 2x2x2 box) and rotationY turns the
// box about its vertical axis, in radians.
func NewBoxMesh(center, halfSize core.Vec3, rotationY float64, mat material.Material) *TriangleMesh {
	corners := []core.Vec3{
		core.NewVec3(-1, -1, -1), // 0: left-bottom-back
		core.NewVec3(1, -1, -1),  // 1: right-bottom-back
		core.NewVec3(1, 1, -1),   // 2: right-top-back
		core.NewVec3(-1, 1, -1),  // 3: left-top-back
		core.NewVec3(-1, -1, 1),  // 4: left-bottom-front
		core.NewVec3(1, -1, 1),   // 5: right-bottom-front
		core.NewVec3(1, 1, 1),    // 6: right-top-front
		core.NewVec3(-1, 1, 1),   // 7: left-top-front
	}

	sin, cos := math.Sincos(rotationY)
	for i, c := range corners {
		scaled := c.MultiplyVec(halfSize)
		rotated := core.NewVec3(
			scaled.X*cos+scaled.Z*sin,
			scaled.Y,
			-scaled.X*sin+scaled.Z*cos,
		)
		corners[i] = rotated.Add(center)
	}

	faces := make([]int, 0, 36)
	for _, q := range boxFaces {
		faces = append(faces, q[0], q[1], q[2], q[0], q[2], q[3])
	}

	return NewTriangleMesh(corners, faces, mat)
}
