// Package world provides the scene container that owns all renderable
// state: geometry, lights, the ambient light, the background colour and
// the view-plane configuration.
package world

import (
	"fmt"
	"math"

	"github.com/dmccue/go-ray-caster/pkg/core"
	"github.com/dmccue/go-ray-caster/pkg/sampler"
)

// ViewPlane describes the virtual image plane rays are projected onto:
// resolution, pixel scale and the sample generator for antialiasing.
type ViewPlane struct {
	Hres    int     // Horizontal resolution of the result image
	Vres    int     // Vertical resolution of the result image
	S       float64 // Size of a pixel in the image; the scaling factor
	Gamma   float64 // Gamma correction to apply. (Currently unused.)
	Sampler sampler.Generator
}

// NewViewPlane creates a view plane with the given resolution, pixel
// scale and antialiasing sample generator
func NewViewPlane(hres, vres int, s float64, gen sampler.Generator) ViewPlane {
	return ViewPlane{Hres: hres, Vres: vres, S: s, Gamma: 1.0, Sampler: gen}
}

// World owns the full scene. It is built once before rendering and is
// read-only during the render, so every ray query may share it.
type World struct {
	background core.Colour
	view       ViewPlane
	objects    []core.Geometry
	ambient    core.Light
	lights     []core.Light
}

// NewWorld creates an empty world with the given view configuration,
// background colour and ambient light
func NewWorld(view ViewPlane, background core.Colour, ambient core.Light) *World {
	return &World{
		background: background,
		view:       view,
		ambient:    ambient,
	}
}

// AddObject adds a geometry to the world
func (w *World) AddObject(obj core.Geometry) {
	w.objects = append(w.objects, obj)
}

// AddLight adds a light to the world
func (w *World) AddLight(l core.Light) {
	w.lights = append(w.lights, l)
}

// View returns the world's view-plane configuration
func (w *World) View() ViewPlane {
	return w.view
}

// Objects returns every geometry in the world
func (w *World) Objects() []core.Geometry {
	return w.objects
}

// Lights returns the world's emitting lights, excluding ambient
func (w *World) Lights() []core.Light {
	return w.lights
}

// AmbientLight returns the world's ambient fill light
func (w *World) AmbientLight() core.Light {
	return w.ambient
}

// BackgroundColour returns the colour for rays that miss everything
func (w *World) BackgroundColour() core.Colour {
	return w.background
}

// HitObjects returns the intersection for the nearest object hit by the
// given ray. Ties on exact equal distance go to the first object added,
// which is acceptable since exact float ties are measure-zero. A NaN hit
// distance is a geometry bug and panics rather than silently corrupting
// nearest-hit selection.
func (w *World) HitObjects(ray core.Ray) (core.Intersection, bool) {
	nearestT := math.Inf(1)
	var nearest core.Geometry

	for _, obj := range w.objects {
		t, ok := obj.Hit(ray)
		if !ok {
			continue
		}
		if math.IsNaN(t) {
			panic(fmt.Sprintf("world: NaN hit distance from %T", obj))
		}
		if t < nearestT {
			nearestT = t
			nearest = obj
		}
	}

	if nearest == nil {
		return core.Intersection{}, false
	}

	hitPoint := ray.At(nearestT)
	return core.Intersection{
		Ray:      ray,
		T:        nearestT,
		HitPoint: hitPoint,
		Normal:   nearest.Normal(hitPoint),
		Depth:    0,
		Material: nearest.Material(),
	}, true
}
