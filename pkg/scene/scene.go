package scene

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Scene contains all the elements needed for rendering.
// A scene is built once and read concurrently by every render worker; nothing in it
// may be mutated after construction.
type Scene struct {
	Camera         *geometry.Camera
	World          *geometry.World // Root of the shape hierarchy
	SamplingConfig SamplingConfig
	CameraConfig   geometry.CameraConfig
}

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	Width           int // Image width
	Height          int // Image height
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		Width:           400,
		Height:          225,
		SamplesPerPixel: 100,
		MaxDepth:        10,
	}
}

// MergeSamplingConfig applies non-zero override fields on top of a base configuration
func MergeSamplingConfig(base, override SamplingConfig) SamplingConfig {
	result := base
	if override.Width != 0 {
		result.Width = override.Width
	}
	if override.Height != 0 {
		result.Height = override.Height
	}
	if override.SamplesPerPixel != 0 {
		result.SamplesPerPixel = override.SamplesPerPixel
	}
	if override.MaxDepth != 0 {
		result.MaxDepth = override.MaxDepth
	}
	return result
}

// Validate checks that the configuration can drive a render
func (c SamplingConfig) Validate() error {
	// The sampler divides by (width-1) and (height-1)
	if c.Width < 2 || c.Height < 2 {
		return fmt.Errorf("image size must be at least 2x2, got %dx%d", c.Width, c.Height)
	}
	if c.SamplesPerPixel <= 0 {
		return fmt.Errorf("samples per pixel must be positive, got %d", c.SamplesPerPixel)
	}
	if c.MaxDepth <= 0 {
		return fmt.Errorf("max depth must be positive, got %d", c.MaxDepth)
	}
	return nil
}

// ApplySamplingOverrides merges overrides into the scene's sampling configuration.
// When only one of width and height is overridden the other follows the camera
// aspect ratio.
func (s *Scene) ApplySamplingOverrides(override SamplingConfig) {
	if aspect := s.CameraConfig.AspectRatio; aspect > 0 {
		switch {
		case override.Width != 0 && override.Height == 0:
			override.Height = int(math.Round(float64(override.Width) / aspect))
		case override.Height != 0 && override.Width == 0:
			override.Width = int(math.Round(float64(override.Height) * aspect))
		}
	}
	s.SamplingConfig = MergeSamplingConfig(s.SamplingConfig, override)
}

// Validate checks that the scene is complete and its sampling configuration usable
func (s *Scene) Validate() error {
	if s.Camera == nil {
		return errors.New("scene has no camera")
	}
	if s.World == nil {
		return errors.New("scene has no world")
	}
	if err := s.SamplingConfig.Validate(); err != nil {
		return fmt.Errorf("invalid sampling config: %w", err)
	}
	return nil
}

// GetPrimitiveCount returns the number of primitives in the scene, counting every
// triangle of a mesh separately
func (s *Scene) GetPrimitiveCount() int {
	count := 0
	for _, shape := range s.World.GetShapes() {
		if mesh, ok := shape.(*geometry.TriangleMesh); ok {
			count += mesh.GetTriangleCount()
		} else {
			count++
		}
	}
	return count
}

// newQuadMesh creates a parallelogram from two triangles.
// The front face is the side that u × v points to.
func newQuadMesh(corner, u, v core.Vec3, mat material.Material) *geometry.TriangleMesh {
	vertices := []core.Vec3{
		corner,
		corner.Add(u),
		corner.Add(u).Add(v),
		corner.Add(v),
	}
	return geometry.NewTriangleMesh(vertices, []int{0, 1, 2, 0, 2, 3}, mat)
}
