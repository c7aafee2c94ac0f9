package light

import (
	"github.com/dmccue/go-ray-caster/pkg/core"
)

// PointLight emits from an infinitely small point. Radiance does not
// attenuate with distance, a deliberate simplification.
type PointLight struct {
	Scale    float64
	Colour   core.Colour
	Location core.Vec3
}

// NewPointLight creates a white point light with the given intensity at
// the given world position
func NewPointLight(scale float64, location core.Vec3) *PointLight {
	return NewPointLightWithColour(scale, location, core.White)
}

// NewPointLightWithColour creates a point light with the given
// intensity, position and colour
func NewPointLightWithColour(scale float64, location core.Vec3, colour core.Colour) *PointLight {
	return &PointLight{Scale: scale, Colour: colour, Location: location}
}

// Direction returns the unit vector from the hit point toward the light
func (p *PointLight) Direction(hit core.Intersection) core.Vec3 {
	return p.Location.Subtract(hit.HitPoint).Normalize()
}

// Radiance returns the scaled light colour
func (p *PointLight) Radiance(_ core.Intersection) core.Colour {
	return p.Colour.Scale(p.Scale)
}

// InShadow reports whether any scene object occludes the ray strictly
// before it reaches the light. Squared distances avoid a sqrt per test.
func (p *PointLight) InShadow(ray core.Ray, scene core.Scene) bool {
	distanceSquared := p.Location.Subtract(ray.Origin).LengthSquared()

	for _, obj := range scene.Objects() {
		if t, ok := obj.Hit(ray); ok && t*t < distanceSquared {
			return true
		}
	}
	return false
}
