package brdf

import (
	"math"

	"github.com/dmccue/go-ray-caster/pkg/core"
)

// GlossySpecular models glossy mirror-like highlights. The shininess
// exponent controls how tight the highlight is: higher values give a
// smaller, sharper spot.
type GlossySpecular struct {
	rho       core.Colour
	shininess float64
}

// NewGlossySpecular creates a glossy specular BRDF with the given
// reflectance coefficient, shininess exponent and base colour
func NewGlossySpecular(reflectance, shininess float64, colour core.Colour) *GlossySpecular {
	return &GlossySpecular{rho: colour.Scale(reflectance), shininess: shininess}
}

// F mirror-reflects inDir about the surface normal and contributes
// ρ·(r·outDir)^shininess when the reflection aligns with outDir
func (g *GlossySpecular) F(hit core.Intersection, inDir, outDir core.Vec3) core.Colour {
	nDotIn := hit.Normal.Dot(inDir)
	reflected := inDir.Negate().Add(hit.Normal.Multiply(2.0 * nDotIn))

	rDotOut := reflected.Dot(outDir)
	if rDotOut <= 0 {
		return core.Black
	}
	return g.rho.Scale(math.Pow(rDotOut, g.shininess))
}

// Rho returns black; glossy highlights contribute nothing to the
// ambient term
func (g *GlossySpecular) Rho(_ core.Intersection, _ core.Vec3) core.Colour {
	return core.Black
}
