package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Glossy blends diffuse and mirror reflection by choosing one of them per sample
type Glossy struct {
	Albedo core.Vec3 // Surface color
	Mix    float64   // Probability of specular reflection: 0.0 = all diffuse, 1.0 = all mirror
}

// NewGlossy creates a new glossy material
func NewGlossy(albedo core.Vec3, mix float64) *Glossy {
	return &Glossy{Albedo: albedo, Mix: clampUnit(mix)}
}

// Scatter implements the Material interface for glossy scattering
func (g *Glossy) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	var direction core.Vec3
	if sampler.Get1D() < g.Mix {
		direction = reflect(rayIn.Direction.Normalize(), hit.Normal)
	} else {
		direction = diffuseDirection(hit.Normal, sampler)
	}

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, direction),
		Attenuation: g.Albedo,
	}, true
}

// Emits implements the Material interface
func (g *Glossy) Emits() bool {
	return false
}
