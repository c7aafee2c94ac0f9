// Package tracer provides strategies for turning a ray into a colour.
package tracer

import (
	"github.com/dmccue/go-ray-caster/pkg/core"
)

// Simple is a diagnostic tracer for a single object: if the ray hits the
// first object in the scene the pixel is red, otherwise black. Can't get
// any simpler.
type Simple struct{}

// TraceRay tests the ray against the scene's first object only
func (Simple) TraceRay(scene core.Scene, ray core.Ray) core.Colour {
	if _, ok := scene.Objects()[0].Hit(ray); ok {
		return core.Red
	}
	return core.Black
}

// MultipleObjects resolves the nearest hit across the whole scene and
// shades it with the hit object's material; rays that escape the scene
// take the background colour.
type MultipleObjects struct{}

// TraceRay shades the nearest intersection along the ray
func (MultipleObjects) TraceRay(scene core.Scene, ray core.Ray) core.Colour {
	hit, ok := scene.HitObjects(ray)
	if !ok {
		return scene.BackgroundColour()
	}
	return hit.Material.Shade(hit, scene)
}
