package renderer

import (
	"sync"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// MockIntegrator returns colors from a function of the primary ray
type MockIntegrator struct {
	mu      sync.Mutex
	rays    []core.Ray
	colorFn func(ray core.Ray) core.Vec3
}

func (m *MockIntegrator) RayColor(ray core.Ray, world geometry.Shape, depth int, sampler core.Sampler) core.Vec3 {
	m.mu.Lock()
	m.rays = append(m.rays, ray)
	m.mu.Unlock()
	return m.colorFn(ray)
}

func constantIntegrator(c core.Vec3) *MockIntegrator {
	return &MockIntegrator{colorFn: func(core.Ray) core.Vec3 { return c }}
}

// captureWriter records everything a render hands to its writer
type captureWriter struct {
	beginCalls    int
	endCalls      int
	width, height int
	rows          []int
	scanlines     [][]core.Vec3
	onWrite       func(row int)
	beginErr      error
}

func (c *captureWriter) Begin(width, height int) error {
	c.beginCalls++
	c.width, c.height = width, height
	return c.beginErr
}

func (c *captureWriter) WriteScanline(row int, pixels []core.Vec3) error {
	c.rows = append(c.rows, row)
	c.scanlines = append(c.scanlines, pixels)
	if c.onWrite != nil {
		c.onWrite(row)
	}
	return nil
}

func (c *captureWriter) End() error {
	c.endCalls++
	return nil
}

// newTestScene builds a small lit scene: a diffuse floor under an emissive sphere,
// viewed from above and in front
func newTestScene(width, height, samples, depth int) *scene.Scene {
	cameraConfig := geometry.CameraConfig{
		Center:      core.NewVec3(0, 1, 3),
		LookAt:      core.NewVec3(0, 0, 0),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        40,
		AspectRatio: float64(width) / float64(height),
	}

	world := geometry.NewWorld(
		geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 1, material.NewEmissive(core.NewVec3(4, 4, 4))),
	)

	return &scene.Scene{
		Camera: geometry.NewCamera(cameraConfig),
		World:  world,
		SamplingConfig: scene.SamplingConfig{
			Width:           width,
			Height:          height,
			SamplesPerPixel: samples,
			MaxDepth:        depth,
		},
		CameraConfig: cameraConfig,
	}
}

// newFlatScene builds a scene whose camera looks straight down -z, so the sign of a
// primary ray's Y component tells which half of the image it belongs to
func newFlatScene(width, height, samples int) *scene.Scene {
	cameraConfig := geometry.CameraConfig{
		Center:      core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        90,
		AspectRatio: float64(width) / float64(height),
	}
	return &scene.Scene{
		Camera: geometry.NewCamera(cameraConfig),
		World:  geometry.NewWorld(),
		SamplingConfig: scene.SamplingConfig{
			Width:           width,
			Height:          height,
			SamplesPerPixel: samples,
			MaxDepth:        1,
		},
		CameraConfig: cameraConfig,
	}
}
