// Package material provides surface materials. A material is a pure
// function from an intersection to an outgoing colour; applying
// different materials changes how an object responds to light.
package material

import (
	"github.com/dmccue/go-ray-caster/pkg/brdf"
	"github.com/dmccue/go-ray-caster/pkg/core"
)

// Matte is a perfectly diffuse material, suitable for things like
// paper. It combines an ambient and a diffuse Lambertian term.
type Matte struct {
	ambient *brdf.Lambertian
	diffuse *brdf.Lambertian
}

// NewMatte creates a matte material. ka and kd are the ambient and
// diffuse reflectance coefficients; colour is the base hue.
func NewMatte(ka, kd float64, colour core.Colour) *Matte {
	return &Matte{
		ambient: brdf.NewLambertian(ka, colour),
		diffuse: brdf.NewLambertian(kd, colour),
	}
}

// Shade computes the outgoing colour at the intersection from the
// ambient term plus the diffuse contribution of every unoccluded light
func (m *Matte) Shade(hit core.Intersection, scene core.Scene) core.Colour {
	outDir := hit.Ray.Direction.Negate()
	light := m.ambient.Rho(hit, outDir).Multiply(scene.AmbientLight().Radiance(hit))

	for _, l := range scene.Lights() {
		inDir := l.Direction(hit)
		angle := hit.Normal.Dot(inDir)
		if angle <= 0 {
			// Light is behind the surface
			continue
		}
		shadowRay := core.NewRay(hit.HitPoint, inDir)
		if l.InShadow(shadowRay, scene) {
			continue
		}
		baseDiffuse := m.diffuse.F(hit, inDir, outDir)
		light = light.Add(baseDiffuse.Multiply(l.Radiance(hit)).Scale(angle))
	}
	return light
}
