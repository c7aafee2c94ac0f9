package material

import (
	"github.com/dmccue/go-ray-caster/pkg/brdf"
	"github.com/dmccue/go-ray-caster/pkg/core"
)

// Phong adds a glossy specular highlight on top of the matte terms,
// suitable for shiny objects like metal or plastic.
type Phong struct {
	ambient  *brdf.Lambertian
	diffuse  *brdf.Lambertian
	specular *brdf.GlossySpecular
}

// NewPhong creates a Phong material. ka, kd and ks are the ambient,
// diffuse and specular reflectance coefficients; shininess controls the
// tightness of the highlight; colour is the base hue.
func NewPhong(ka, kd, ks, shininess float64, colour core.Colour) *Phong {
	return &Phong{
		ambient:  brdf.NewLambertian(ka, colour),
		diffuse:  brdf.NewLambertian(kd, colour),
		specular: brdf.NewGlossySpecular(ks, shininess, colour),
	}
}

// Shade computes the outgoing colour at the intersection from the
// ambient term plus the diffuse and specular contributions of every
// unoccluded light
func (p *Phong) Shade(hit core.Intersection, scene core.Scene) core.Colour {
	outDir := hit.Ray.Direction.Negate()
	light := p.ambient.Rho(hit, outDir).Multiply(scene.AmbientLight().Radiance(hit))

	for _, l := range scene.Lights() {
		inDir := l.Direction(hit)
		angle := hit.Normal.Dot(inDir)
		if angle <= 0 {
			continue
		}
		shadowRay := core.NewRay(hit.HitPoint, inDir)
		if l.InShadow(shadowRay, scene) {
			continue
		}
		base := p.diffuse.F(hit, inDir, outDir).Add(p.specular.F(hit, inDir, outDir))
		light = light.Add(base.Multiply(l.Radiance(hit)).Scale(angle))
	}
	return light
}
