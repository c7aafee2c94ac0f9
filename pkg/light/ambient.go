// Package light provides the scene's light sources.
package light

import (
	"github.com/dmccue/go-ray-caster/pkg/core"
)

// Ambient is a flat fill light with no direction, giving every surface
// a base level of illumination so unlit geometry isn't pure black.
type Ambient struct {
	Scale  float64
	Colour core.Colour
}

// NewAmbient creates a white ambient light with the given intensity
func NewAmbient(scale float64) *Ambient {
	return NewAmbientWithColour(scale, core.White)
}

// NewAmbientWithColour creates an ambient light with the given intensity
// and colour
func NewAmbientWithColour(scale float64, colour core.Colour) *Ambient {
	return &Ambient{Scale: scale, Colour: colour}
}

// Direction returns the zero vector; ambient light has no direction
func (a *Ambient) Direction(_ core.Intersection) core.Vec3 {
	return core.NewVec3(0, 0, 0)
}

// Radiance returns the scaled light colour
func (a *Ambient) Radiance(_ core.Intersection) core.Colour {
	return a.Colour.Scale(a.Scale)
}

// InShadow always returns false; ambient light casts no shadows
func (a *Ambient) InShadow(_ core.Ray, _ core.Scene) bool {
	return false
}
