package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Emissive represents a light-emitting material
type Emissive struct {
	Emission core.Vec3 // Emitted light color/intensity
}

// NewEmissive creates a new emissive material
func NewEmissive(emission core.Vec3) *Emissive {
	return &Emissive{Emission: emission}
}

// Scatter implements the Material interface for emissive materials.
// The result carries the emission as attenuation; the ray continues unchanged from the
// hit point but is never traced because Emits reports true.
func (e *Emissive) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, rayIn.Direction),
		Attenuation: e.Emission,
	}, true
}

// Emits implements the Material interface
func (e *Emissive) Emits() bool {
	return true
}
