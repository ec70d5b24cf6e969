package scene

import (
	"fmt"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/loaders"
	"github.com/df07/go-pathtracer/pkg/material"
)

// LoadPLYMesh loads a PLY model as a triangle mesh, scaled uniformly and then moved
// by offset
func LoadPLYMesh(filename string, scale float64, offset core.Vec3, mat material.Material) (*geometry.TriangleMesh, error) {
	data, err := loaders.LoadPLY(filename)
	if err != nil {
		return nil, err
	}
	if len(data.Faces) == 0 {
		return nil, fmt.Errorf("%s: no faces", filename)
	}

	vertices := make([]core.Vec3, len(data.Vertices))
	for i, v := range data.Vertices {
		vertices[i] = v.Multiply(scale).Add(offset)
	}
	return geometry.NewTriangleMesh(vertices, data.Faces, mat), nil
}
