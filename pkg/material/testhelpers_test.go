package material

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
)

func newTestSampler(seed int64) core.Sampler {
	return core.NewRandomSampler(rand.New(rand.NewSource(seed)))
}

// countingSampler records how many draws a material makes
type countingSampler struct {
	inner core.Sampler
	calls int
}

func (c *countingSampler) Get1D() float64 {
	c.calls++
	return c.inner.Get1D()
}

func (c *countingSampler) Get2D() core.Vec2 {
	c.calls++
	return c.inner.Get2D()
}

func (c *countingSampler) Get3D() core.Vec3 {
	c.calls++
	return c.inner.Get3D()
}

// fixedSampler always returns the same value, for forcing a stochastic branch
type fixedSampler struct {
	value float64
}

func (f fixedSampler) Get1D() float64 { return f.value }
func (f fixedSampler) Get2D() core.Vec2 {
	return core.NewVec2(f.value, f.value)
}
func (f fixedSampler) Get3D() core.Vec3 {
	return core.NewVec3(f.value, f.value, f.value)
}

// floorHit is a hit on the z=0 plane seen from above
func floorHit(m Material) HitRecord {
	return HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 0, 1),
		T:         1.0,
		FrontFace: true,
		Material:  m,
	}
}
