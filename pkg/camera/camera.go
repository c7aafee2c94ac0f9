// Package camera provides the projections that convert pixel
// coordinates into rays and drive the per-pixel sampling loop. Each
// camera renders a scene into an 8-bit RGBA raster; different cameras
// use different projections to do so.
package camera

import (
	"fmt"
	"image"

	"github.com/dmccue/go-ray-caster/pkg/core"
	"github.com/dmccue/go-ray-caster/pkg/world"
)

// Camera renders scenes. Different cameras use different projections
// and techniques; pass different tracers to render in different ways.
type Camera interface {
	RenderScene(w *world.World, tr core.Tracer) (*image.RGBA, error)
}

// Location is a user-specified camera placement: where the camera sits,
// what it looks at, and which way is up.
type Location struct {
	Eye    core.Vec3
	Centre core.Vec3
	Up     core.Vec3
}

// computeBasisVectors derives the camera's orthonormal basis from its
// location. Fails when up is parallel to the view direction, since the
// basis is undefined there.
func computeBasisVectors(loc Location) (u, v, w core.Vec3, err error) {
	w = loc.Eye.Subtract(loc.Centre).Normalize()
	cross := loc.Up.Cross(w)
	if cross.LengthSquared() < 1e-12 {
		return core.Vec3{}, core.Vec3{}, core.Vec3{},
			fmt.Errorf("camera: up vector %v is parallel to the view direction", loc.Up)
	}
	u = cross.Normalize()
	v = w.Cross(u)
	return u, v, w, nil
}

// viewpoint is the state shared by every projection: the eye position,
// the orthonormal basis, and the render knobs common to all cameras.
type viewpoint struct {
	// Exposure scales the averaged pixel colour. Defaults to 1.
	Exposure float64

	// Seed for the per-render sample state. Fixed default keeps renders
	// reproducible.
	Seed int64

	// Progress, when non-nil, is called after each finished column.
	Progress func(done, total int)

	eye     core.Vec3
	u, v, w core.Vec3
}

func newViewpoint(loc Location) (viewpoint, error) {
	u, v, w, err := computeBasisVectors(loc)
	if err != nil {
		return viewpoint{}, err
	}
	return viewpoint{
		Exposure: 1.0,
		Seed:     42,
		eye:      loc.Eye,
		u:        u,
		v:        v,
		w:        w,
	}, nil
}

// reportColumn invokes the progress hook, if any
func (vp *viewpoint) reportColumn(done, total int) {
	if vp.Progress != nil {
		vp.Progress(done, total)
	}
}

// SetProgress installs a hook called after each finished column
func (vp *viewpoint) SetProgress(fn func(done, total int)) {
	vp.Progress = fn
}

// ProgressReporter is implemented by every camera in this package
type ProgressReporter interface {
	SetProgress(fn func(done, total int))
}
