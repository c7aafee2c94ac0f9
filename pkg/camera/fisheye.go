package camera

import (
	"image"
	"math"
	"math/rand"

	"github.com/dmccue/go-ray-caster/pkg/core"
	"github.com/dmccue/go-ray-caster/pkg/sampler"
	"github.com/dmccue/go-ray-caster/pkg/world"
)

// Fisheye is a nonlinear radial projection: the distance of a pixel
// from the image centre maps to a polar angle on a hemisphere around
// the view direction. Pixels outside the radial field of view receive
// no ray and stay black.
type Fisheye struct {
	viewpoint

	// PsiMax is the maximum polar angle in radians; samples at the edge
	// of the unit disc in device coordinates map to this angle.
	PsiMax float64
}

// NewFisheye creates a fisheye camera at the given location
func NewFisheye(loc Location, psiMax float64) (*Fisheye, error) {
	vp, err := newViewpoint(loc)
	if err != nil {
		return nil, err
	}
	return &Fisheye{viewpoint: vp, PsiMax: psiMax}, nil
}

// rayDirection maps a view-plane point to a hemispherical direction.
// Returns false when the point lies outside the unit disc in
// normalized device coordinates.
func (f *Fisheye) rayDirection(pt core.Vec2, view world.ViewPlane) (core.Vec3, bool) {
	// Normalized device coordinates in [-1, 1]
	pn := core.NewVec2(
		2.0/(view.S*float64(view.Hres))*pt.X,
		2.0/(view.S*float64(view.Vres))*pt.Y,
	)

	rSquared := pn.Dot(pn)
	if rSquared > 1.0 {
		return core.Vec3{}, false
	}

	r := math.Sqrt(rSquared)
	if r == 0 {
		// Dead centre looks straight down the view axis
		return f.w.Negate(), true
	}

	psi := r * f.PsiMax
	sinPsi, cosPsi := math.Sincos(psi)
	sinAlpha := pn.Y / r
	cosAlpha := pn.X / r

	return f.u.Multiply(sinPsi * cosAlpha).
		Add(f.v.Multiply(sinPsi * sinAlpha)).
		Subtract(f.w.Multiply(cosPsi)), true
}

// RenderScene renders the world with the given tracer
func (f *Fisheye) RenderScene(w *world.World, tr core.Tracer) (*image.RGBA, error) {
	view := w.View()
	img := image.NewRGBA(image.Rect(0, 0, view.Hres, view.Vres))

	rng := rand.New(rand.NewSource(f.Seed))
	samples := sampler.GenSquareSamples(view.Sampler, rng)
	numSamples := float64(samples.NumSamples())

	width := float64(view.Hres - 1)
	height := float64(view.Vres - 1)

	for col := 0; col < view.Hres; col++ {
		for row := 0; row < view.Vres; row++ {
			pixel := core.NewVec2(width*0.5-float64(col), height*0.5-float64(row))

			accum := core.Black
			for _, sample := range samples.GetNext() {
				point := pixel.Add(sample).Multiply(view.S)
				if direction, ok := f.rayDirection(point, view); ok {
					ray := core.NewRay(f.eye, direction)
					accum = accum.Add(tr.TraceRay(w, ray))
				}
			}

			colour := accum.Scale(f.Exposure / numSamples)
			img.SetRGBA(col, row, colour.ToRGBA())
		}
		f.reportColumn(col+1, view.Hres)
	}
	return img, nil
}
