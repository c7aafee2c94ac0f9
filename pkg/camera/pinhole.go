package camera

import (
	"image"
	"math/rand"
	"runtime"
	"sync"

	"github.com/dmccue/go-ray-caster/pkg/core"
	"github.com/dmccue/go-ray-caster/pkg/sampler"
	"github.com/dmccue/go-ray-caster/pkg/world"
)

// Pinhole is a perspective camera with an infinitely small aperture:
// every ray passes through a single eye point. Simple, but a decent
// default.
type Pinhole struct {
	viewpoint

	// ViewLen is the distance from the eye to the view plane.
	ViewLen float64

	// Zoom divides the pixel scale; values above 1 zoom in.
	Zoom float64
}

// NewPinhole creates a pinhole camera at the given location
func NewPinhole(loc Location, viewLen, zoom float64) (*Pinhole, error) {
	vp, err := newViewpoint(loc)
	if err != nil {
		return nil, err
	}
	return &Pinhole{viewpoint: vp, ViewLen: viewLen, Zoom: zoom}, nil
}

// rayDirection projects a view-plane point through the eye
func (p *Pinhole) rayDirection(pt core.Vec2) core.Vec3 {
	return p.u.Multiply(pt.X).
		Add(p.v.Multiply(pt.Y)).
		Subtract(p.w.Multiply(p.ViewLen)).
		Normalize()
}

// RenderScene renders the world with the given tracer, one traced ray
// per antialiasing sample per pixel
func (p *Pinhole) RenderScene(w *world.World, tr core.Tracer) (*image.RGBA, error) {
	view := w.View()
	img := image.NewRGBA(image.Rect(0, 0, view.Hres, view.Vres))

	rng := rand.New(rand.NewSource(p.Seed))
	samples := sampler.GenSquareSamples(view.Sampler, rng)

	for col := 0; col < view.Hres; col++ {
		for row := 0; row < view.Vres; row++ {
			img.SetRGBA(col, row, p.renderPixel(w, tr, samples, col, row).ToRGBA())
		}
		p.reportColumn(col+1, view.Hres)
	}
	return img, nil
}

// RenderSceneParallel renders the world across numWorkers goroutines,
// splitting the image by column. Each worker owns its own sample state
// and random source, so results stay deterministic per worker count.
// numWorkers <= 0 uses one worker per CPU.
func (p *Pinhole) RenderSceneParallel(w *world.World, tr core.Tracer, numWorkers int) (*image.RGBA, error) {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	view := w.View()
	img := image.NewRGBA(image.Rect(0, 0, view.Hres, view.Vres))

	var wg sync.WaitGroup
	for worker := 0; worker < numWorkers; worker++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()

			rng := rand.New(rand.NewSource(p.Seed + int64(worker)))
			samples := sampler.GenSquareSamples(view.Sampler, rng)

			// Columns are strided across workers; each pixel is written
			// by exactly one worker
			for col := worker; col < view.Hres; col += numWorkers {
				for row := 0; row < view.Vres; row++ {
					img.SetRGBA(col, row, p.renderPixel(w, tr, samples, col, row).ToRGBA())
				}
			}
		}(worker)
	}
	wg.Wait()
	return img, nil
}

// renderPixel traces one sample set through pixel (col, row) and
// returns the exposure-scaled average colour
func (p *Pinhole) renderPixel(w *world.World, tr core.Tracer, samples *sampler.Samples[core.Vec2], col, row int) core.Colour {
	view := w.View()
	scale := view.S / p.Zoom
	pixel := core.NewVec2(
		float64(view.Hres-1)*0.5-float64(col),
		float64(view.Vres-1)*0.5-float64(row),
	)

	set := samples.GetNext()
	accum := core.Black
	for _, sample := range set {
		point := pixel.Add(sample).Multiply(scale)
		ray := core.NewRay(p.eye, p.rayDirection(point))
		accum = accum.Add(tr.TraceRay(w, ray))
	}
	return accum.Scale(p.Exposure / float64(len(set)))
}
