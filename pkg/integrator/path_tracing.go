package integrator

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
)

// DefaultHitEpsilon is the minimum hit distance used to avoid self-intersection
// ("shadow acne") when a scattered ray leaves a surface
const DefaultHitEpsilon = 0.001

// PathTracingIntegrator implements depth-limited unidirectional path tracing.
// Light only enters a path at emissive surfaces: missed rays return black and there is
// no Russian roulette, so every path runs until it is absorbed, emits or exhausts depth.
type PathTracingIntegrator struct {
	hitEpsilon float64
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator() *PathTracingIntegrator {
	return &PathTracingIntegrator{hitEpsilon: DefaultHitEpsilon}
}

// RayColor computes the color for a single ray using unidirectional path tracing
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world geometry.Shape, depth int, sampler core.Sampler) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}

	hit, isHit := world.Hit(ray, pt.hitEpsilon, math.Inf(1))
	if !isHit {
		// No sky: emitters are the only light sources
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}

	scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
	if !didScatter {
		return core.Vec3{X: 0, Y: 0, Z: 0} // Material absorbed the ray
	}

	// Emitters end the path; their attenuation is the emitted radiance
	if hit.Material.Emits() {
		return scatter.Attenuation
	}

	return scatter.Attenuation.MultiplyVec(pt.RayColor(scatter.Scattered, world, depth-1, sampler))
}
