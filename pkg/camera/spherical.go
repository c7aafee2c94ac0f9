package camera

import (
	"image"
	"math"
	"math/rand"

	"github.com/dmccue/go-ray-caster/pkg/core"
	"github.com/dmccue/go-ray-caster/pkg/sampler"
	"github.com/dmccue/go-ray-caster/pkg/world"
)

// Spherical is a latitude/longitude panorama projection: device
// coordinates map linearly to an azimuth and a polar angle, each
// bounded by a configured maximum. Unlike Fisheye there is no radial
// cutoff; every pixel receives a ray.
type Spherical struct {
	viewpoint

	// LambdaMax is the maximum azimuth angle in radians, measured from
	// the view direction. Pi gives a full 360° panorama.
	LambdaMax float64

	// PsiMax is the maximum polar angle in radians, measured from the
	// horizon. Pi/2 covers pole to pole.
	PsiMax float64
}

// NewSpherical creates a spherical panoramic camera at the given
// location
func NewSpherical(loc Location, lambdaMax, psiMax float64) (*Spherical, error) {
	vp, err := newViewpoint(loc)
	if err != nil {
		return nil, err
	}
	return &Spherical{viewpoint: vp, LambdaMax: lambdaMax, PsiMax: psiMax}, nil
}

// rayDirection maps a view-plane point to a direction on the sphere
func (s *Spherical) rayDirection(pt core.Vec2, view world.ViewPlane) core.Vec3 {
	// Normalized device coordinates in [-1, 1]
	pn := core.NewVec2(
		2.0/(view.S*float64(view.Hres))*pt.X,
		2.0/(view.S*float64(view.Vres))*pt.Y,
	)

	lambda := pn.X * s.LambdaMax
	psi := pn.Y * s.PsiMax

	// Spherical to Cartesian in the camera basis
	phi := math.Pi - lambda
	theta := 0.5*math.Pi - psi
	sinPhi, cosPhi := math.Sincos(phi)
	sinTheta, cosTheta := math.Sincos(theta)

	return s.u.Multiply(sinTheta * sinPhi).
		Add(s.v.Multiply(cosTheta)).
		Add(s.w.Multiply(sinTheta * cosPhi))
}

// RenderScene renders the world with the given tracer
func (s *Spherical) RenderScene(w *world.World, tr core.Tracer) (*image.RGBA, error) {
	view := w.View()
	img := image.NewRGBA(image.Rect(0, 0, view.Hres, view.Vres))

	rng := rand.New(rand.NewSource(s.Seed))
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
				ray := core.NewRay(s.eye, s.rayDirection(point, view))
				accum = accum.Add(tr.TraceRay(w, ray))
			}

			colour := accum.Scale(s.Exposure / numSamples)
			img.SetRGBA(col, row, colour.ToRGBA())
		}
		s.reportColumn(col+1, view.Hres)
	}
	return img, nil
}
