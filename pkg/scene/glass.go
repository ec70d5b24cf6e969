package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// NewGlassScene creates a row of dielectric spheres (solid, tinted and hollow) in front
// of a glossy backdrop under a large overhead emitter
func NewGlassScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	cameraConfig := geometry.CameraConfig{
		Center:      core.NewVec3(0, 1, 3),
		LookAt:      core.NewVec3(0, 0.3, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        35.0,
		AspectRatio: 16.0 / 9.0,
	}
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(cameraConfig, cameraOverrides[0])
	}

	samplingConfig := SamplingConfig{
		Width:           400,
		Height:          225,
		SamplesPerPixel: 300,
		MaxDepth:        20,
	}

	floor := material.NewLambertian(core.NewVec3(0.6, 0.6, 0.6))
	backdrop := material.NewGlossy(core.NewVec3(0.7, 0.3, 0.2), 0.3)
	clear := material.NewDielectric(1.5)
	amber := material.NewTintedDielectric(core.NewVec3(1.0, 0.7, 0.3), 1.5)
	water := material.NewDielectric(1.33)
	lamp := material.NewEmissive(core.NewVec3(4, 4, 4))

	world := geometry.NewWorld(
		geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), floor),
		geometry.NewPlane(core.NewVec3(0, 0, -3), core.NewVec3(0, 0, 1), backdrop),
		geometry.NewSphere(core.NewVec3(-1.1, 0.5, -1), 0.5, clear),
		geometry.NewSphere(core.NewVec3(0, 0.5, -1), 0.5, amber),
		geometry.NewSphere(core.NewVec3(1.1, 0.5, -1), 0.5, water),
		geometry.NewSphere(core.NewVec3(1.1, 0.5, -1), -0.4, water),
		geometry.NewSphere(core.NewVec3(0, 20, 0), 15, lamp),
	)

	return &Scene{
		Camera:         geometry.NewCamera(cameraConfig),
		World:          world,
		SamplingConfig: samplingConfig,
		CameraConfig:   cameraConfig,
	}
}
