// Package brdf provides bidirectional reflectance distribution
// functions. Materials combine these to decide how light reflects off a
// surface; most materials use a particular BRDF directly rather than
// abstracting over the interface.
package brdf

import (
	"math"

	"github.com/dmccue/go-ray-caster/pkg/core"
)

// BRDF maps incoming and outgoing light directions at a surface point to
// a reflectance value.
type BRDF interface {
	// F returns the contribution of the irradiance arriving from inDir
	// that is reflected in outDir.
	F(hit core.Intersection, inDir, outDir core.Vec3) core.Colour

	// Rho returns the bihemispherical reflectance for outDir, used to
	// scale the ambient term.
	Rho(hit core.Intersection, outDir core.Vec3) core.Colour
}

// Lambertian models perfect diffuse reflection, a good approximation
// for dull, matte surfaces like paper.
type Lambertian struct {
	rho core.Colour
}

// NewLambertian creates a Lambertian BRDF with the given reflectance
// coefficient and base colour
func NewLambertian(reflectance float64, colour core.Colour) *Lambertian {
	return &Lambertian{rho: colour.Scale(reflectance)}
}

// F returns the constant ρ/π; a perfectly diffuse surface reflects
// equally in all directions
func (l *Lambertian) F(_ core.Intersection, _, _ core.Vec3) core.Colour {
	return l.rho.Scale(1.0 / math.Pi)
}

// Rho returns the stored reflectance
func (l *Lambertian) Rho(_ core.Intersection, _ core.Vec3) core.Colour {
	return l.rho
}
