package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Material interface for surfaces that redirect or emit light.
// Implementations are immutable after construction and safe to share between shapes
// and goroutines; all randomness comes from the caller's sampler.
type Material interface {
	// Scatter generates a scattered ray and its attenuation. A false result means the
	// ray was absorbed.
	Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool)

	// Emits reports whether the material is a light source. For emitters the
	// attenuation returned by Scatter is the emitted radiance and the scattered ray
	// must not be traced.
	Emits() bool
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray  // The scattered ray
	Attenuation core.Vec3 // Color attenuation (emitted radiance for emitters)
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     core.Vec3 // Point of intersection
	Normal    core.Vec3 // Surface normal at intersection, facing the incoming ray
	T         float64   // Parameter t along the ray
	FrontFace bool      // Whether ray hit the front face
	Material  Material  // Material of the hit object
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// reflect calculates the reflection of a vector v off a surface with normal n
func reflect(v, n core.Vec3) core.Vec3 {
	// r = v - 2*dot(v,n)*n
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}

// clampUnit clamps a scalar parameter to [0, 1]
func clampUnit(v float64) float64 {
	return max(0.0, min(v, 1.0))
}
