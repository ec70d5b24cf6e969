package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// NewTriangleMeshScene creates a scene with an indexed triangle mesh pyramid and a
// tilted metal panel next to an emissive sphere
func NewTriangleMeshScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	cameraConfig := geometry.CameraConfig{
		Center:      core.NewVec3(0, 2, 4),
		LookAt:      core.NewVec3(0, 0.5, 0),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        40.0,
		AspectRatio: 16.0 / 9.0,
	}
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(cameraConfig, cameraOverrides[0])
	}

	samplingConfig := SamplingConfig{
		Width:           400,
		Height:          225,
		SamplesPerPixel: 150,
		MaxDepth:        10,
	}

	ground := material.NewLambertian(core.NewVec3(0.4, 0.5, 0.4))
	gold := material.NewGlossy(core.NewVec3(0.8, 0.6, 0.2), 0.6)
	mirror := material.NewMetal(core.NewVec3(0.9, 0.9, 0.9), 0.0)
	lamp := material.NewEmissive(core.NewVec3(6, 5.5, 5))
	sky := material.NewEmissive(core.NewVec3(0.2, 0.25, 0.35))

	// Square pyramid: four sides plus a two-triangle base
	pyramidVertices := []core.Vec3{
		core.NewVec3(-1, 0, -1),
		core.NewVec3(1, 0, -1),
		core.NewVec3(1, 0, 1),
		core.NewVec3(-1, 0, 1),
		core.NewVec3(0, 1.5, 0),
	}
	pyramidFaces := []int{
		3, 2, 4, // front
		2, 1, 4, // right
		1, 0, 4, // back
		0, 3, 4, // left
		0, 1, 2, // base
		0, 2, 3,
	}
	pyramid := geometry.NewTriangleMesh(pyramidVertices, pyramidFaces, gold)

	panel := newQuadMesh(core.NewVec3(-3, 0, -2), core.NewVec3(1.5, 0, 0.8), core.NewVec3(0, 2, 0), mirror)

	world := geometry.NewWorld(
		geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), ground),
		pyramid,
		panel,
		geometry.NewSphere(core.NewVec3(2, 1.5, -0.5), 0.5, lamp),
		geometry.NewSphere(core.NewVec3(0, 0, 0), 100, sky),
	)

	return &Scene{
		Camera:         geometry.NewCamera(cameraConfig),
		World:          world,
		SamplingConfig: samplingConfig,
		CameraConfig:   cameraConfig,
	}
}
