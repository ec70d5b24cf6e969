package scene

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// NewCornellScene creates a classic Cornell box built from triangle meshes, lit by an
// emissive panel just below the ceiling
func NewCornellScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	cameraConfig := geometry.CameraConfig{
		Center:      core.NewVec3(278, 278, -800), // Position camera outside the box looking in
		LookAt:      core.NewVec3(278, 278, 0),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        40.0,
		AspectRatio: 1.0,
	}
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(cameraConfig, cameraOverrides[0])
	}

	samplingConfig := SamplingConfig{
		Width:           400,
		Height:          400,
		SamplesPerPixel: 200,
		MaxDepth:        12,
	}

	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))
	light := material.NewEmissive(core.NewVec3(15, 15, 15))
	glass := material.NewDielectric(1.5)
	aluminium := material.NewMetal(core.NewVec3(0.8, 0.85, 0.88), 0.05)

	// Standard 555 unit box
	const boxSize = 555.0

	world := geometry.NewWorld(
		// Floor, ceiling and back wall
		newQuadMesh(core.NewVec3(0, 0, 0), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, 0, boxSize), white),
		newQuadMesh(core.NewVec3(0, boxSize, 0), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, 0, boxSize), white),
		newQuadMesh(core.NewVec3(0, 0, boxSize), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, boxSize, 0), white),
		// Side walls
		newQuadMesh(core.NewVec3(boxSize, 0, 0), core.NewVec3(0, 0, boxSize), core.NewVec3(0, boxSize, 0), red),
		newQuadMesh(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, boxSize), core.NewVec3(0, boxSize, 0), green),
		// Ceiling light, slightly below the ceiling so it wins the closest-hit test
		newQuadMesh(core.NewVec3(213, boxSize-1, 227), core.NewVec3(130, 0, 0), core.NewVec3(0, 0, 105), light),
		geometry.NewSphere(core.NewVec3(190, 90, 190), 90, glass),
		// Tall box turned 15 degrees, as in the classic layout
		geometry.NewBoxMesh(core.NewVec3(368, 165, 351), core.NewVec3(82.5, 165, 82.5), 15*math.Pi/180, aluminium),
	)

	return &Scene{
		Camera:         geometry.NewCamera(cameraConfig),
		World:          world,
		SamplingConfig: samplingConfig,
		CameraConfig:   cameraConfig,
	}
}
