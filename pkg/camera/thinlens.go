package camera

import (
	"fmt"
	"image"
	"math/rand"

	"github.com/dmccue/go-ray-caster/pkg/core"
	"github.com/dmccue/go-ray-caster/pkg/sampler"
	"github.com/dmccue/go-ray-caster/pkg/world"
)

// ThinLens approximates a camera with a lens of finite width, in
// contrast to the infinitely small aperture of Pinhole. Ray origins are
// distributed over the lens disc and aimed through the focal plane, so
// scenery on the focal plane is sharp and everything else defocuses
// progressively: depth of field.
type ThinLens struct {
	viewpoint

	// LensRadius is the radius of the lens disc.
	LensRadius float64

	// ViewLen is the distance from the eye to the view plane.
	ViewLen float64

	// FocalLen is the distance from the lens to the focal plane.
	FocalLen float64

	// Zoom divides the pixel scale; values above 1 zoom in.
	Zoom float64

	lens sampler.Generator
}

// NewThinLens creates a thin-lens camera. The lens generator supplies
// the per-pixel lens-disc samples and must produce the same number of
// samples per set as the world's antialiasing generator.
func NewThinLens(loc Location, viewLen, focalLen, lensRadius, zoom float64, lens sampler.Generator) (*ThinLens, error) {
	vp, err := newViewpoint(loc)
	if err != nil {
		return nil, err
	}
	return &ThinLens{
		viewpoint:  vp,
		LensRadius: lensRadius,
		ViewLen:    viewLen,
		FocalLen:   focalLen,
		Zoom:       zoom,
		lens:       lens,
	}, nil
}

// rayOrigin offsets the eye to the sampled point on the lens disc
func (t *ThinLens) rayOrigin(lensPoint core.Vec2) core.Vec3 {
	return t.eye.
		Add(t.u.Multiply(lensPoint.X)).
		Add(t.v.Multiply(lensPoint.Y))
}

// rayDirection aims from the lens point through the point on the focal
// plane that the pixel point projects onto
func (t *ThinLens) rayDirection(pixelPoint, lensPoint core.Vec2) core.Vec3 {
	focalHit := pixelPoint.Multiply(t.FocalLen / t.ViewLen)
	offset := focalHit.Subtract(lensPoint)
	return t.u.Multiply(offset.X).
		Add(t.v.Multiply(offset.Y)).
		Subtract(t.w.Multiply(t.FocalLen)).
		Normalize()
}

// RenderScene renders the world with the given tracer, pairing each
// antialiasing sample with a lens-disc sample
func (t *ThinLens) RenderScene(w *world.World, tr core.Tracer) (*image.RGBA, error) {
	view := w.View()
	if got, want := t.lens.NumSamples(), view.Sampler.NumSamples(); got != want {
		return nil, fmt.Errorf("camera: lens sampler produces %d samples per set, antialiasing sampler produces %d", got, want)
	}

	img := image.NewRGBA(image.Rect(0, 0, view.Hres, view.Vres))

	rng := rand.New(rand.NewSource(t.Seed))
	antialias := sampler.GenSquareSamples(view.Sampler, rng)
	lens := sampler.GenDiscSamples(t.lens, rng)
	numSamples := float64(antialias.NumSamples())

	scale := view.S / t.Zoom
	width := float64(view.Hres - 1)
	height := float64(view.Vres - 1)

	for col := 0; col < view.Hres; col++ {
		for row := 0; row < view.Vres; row++ {
			pixel := core.NewVec2(width*0.5-float64(col), height*0.5-float64(row))

			squareSet := antialias.GetNext()
			discSet := lens.GetNext()

			accum := core.Black
			for i, sample := range squareSet {
				pixelPoint := pixel.Add(sample).Multiply(scale)
				lensPoint := discSet[i].Multiply(t.LensRadius)

				ray := core.NewRay(t.rayOrigin(lensPoint), t.rayDirection(pixelPoint, lensPoint))
				accum = accum.Add(tr.TraceRay(w, ray))
			}

			colour := accum.Scale(t.Exposure / numSamples)
			img.SetRGBA(col, row, colour.ToRGBA())
		}
		t.reportColumn(col+1, view.Hres)
	}
	return img, nil
}
