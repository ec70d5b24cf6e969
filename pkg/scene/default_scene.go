package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// NewDefaultScene creates the default scene: a glossy sphere flanked by a red hollow
// glass shell and fuzzy gold metal, lit by a cyan emissive sphere and a large dim
// overhead emitter, above a yellow ground plane with a two-triangle red metal mesh
func NewDefaultScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	cameraConfig := geometry.CameraConfig{
		Center:      core.NewVec3(-2, 2, 1),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        30.0,
		AspectRatio: 16.0 / 9.0,
	}
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(cameraConfig, cameraOverrides[0])
	}

	samplingConfig := SamplingConfig{
		Width:           400,
		Height:          225,
		SamplesPerPixel: 200,
		MaxDepth:        10,
	}

	// Materials are shared by pointer wherever several shapes use the same surface
	matGround := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	matCenter := material.NewGlossy(core.NewVec3(0.1, 0.2, 0.5), 0.8)
	matGlass := material.NewTintedDielectric(core.NewVec3(1.0, 0.0, 0.1), 1.5)
	matRight := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 1.0)
	matEmit := material.NewEmissive(core.NewVec3(0.1, 1.0, 1.0))
	matSky := material.NewEmissive(core.NewVec3(0.4, 0.4, 0.4))
	matTriangles := material.NewMetal(core.NewVec3(1.0, 0.0, 0.0), 0.5)

	mesh := geometry.NewMesh()
	mesh.Add(
		geometry.NewTriangle(core.NewVec3(0, 0, -2), core.NewVec3(1, 0, -2), core.NewVec3(0, 1, -3), matTriangles),
		geometry.NewTriangle(core.NewVec3(1, 1, -3), core.NewVec3(1, 0, -2), core.NewVec3(0, 1, -3), matTriangles),
	)

	world := geometry.NewWorld(
		mesh,
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, matCenter),
		// Hollow shell: outer surface plus a negative-radius inner surface
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, matGlass),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), -0.45, matGlass),
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, matRight),
		geometry.NewSphere(core.NewVec3(-1, 0, -2), 0.5, matEmit),
		geometry.NewSphere(core.NewVec3(0, 200, 0), 100, matSky),
		geometry.NewPlane(core.NewVec3(0, -0.5, 0), core.NewVec3(0, 1, 0), matGround),
	)

	return &Scene{
		Camera:         geometry.NewCamera(cameraConfig),
		World:          world,
		SamplingConfig: samplingConfig,
		CameraConfig:   cameraConfig,
	}
}
