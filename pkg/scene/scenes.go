// Package scene provides ready-made demo scenes, each returning a built
// world together with a camera positioned to view it.
package scene

import (
	"fmt"
	"math"

	"github.com/dmccue/go-ray-caster/pkg/camera"
	"github.com/dmccue/go-ray-caster/pkg/core"
	"github.com/dmccue/go-ray-caster/pkg/geometry"
	"github.com/dmccue/go-ray-caster/pkg/light"
	"github.com/dmccue/go-ray-caster/pkg/material"
	"github.com/dmccue/go-ray-caster/pkg/sampler"
	"github.com/dmccue/go-ray-caster/pkg/world"
)

// defaultSamples resolves a caller-supplied antialiasing sample count,
// falling back to the scene's preferred count when it is not positive
func defaultSamples(numSamples, fallback int) int {
	if numSamples > 0 {
		return numSamples
	}
	return fallback
}

// NewDefaultScene builds a row of matte spheres receding over a ground
// plane, with a cuboid in the back and two point lights, one of them
// tinted yellow. numSamples overrides the antialiasing sample count;
// pass 0 for the scene default.
func NewDefaultScene(numSamples int) (*world.World, camera.Camera, error) {
	gen, err := sampler.NewDefault(defaultSamples(numSamples, 256))
	if err != nil {
		return nil, nil, fmt.Errorf("scene: %w", err)
	}
	view := world.NewViewPlane(400, 300, 0.05, gen)

	cam, err := camera.NewPinhole(camera.Location{
		Eye:    core.NewVec3(-10, 5, 50),
		Centre: core.NewVec3(0, 5, 0),
		Up:     core.NewVec3(0, 1, 0),
	}, 40, 0.8)
	if err != nil {
		return nil, nil, fmt.Errorf("scene: %w", err)
	}

	w := world.NewWorld(view, core.NewColour(0.7, 0.7, 1.0), light.NewAmbient(0.5))
	w.AddLight(light.NewPointLight(4.0, core.NewVec3(-50, 50, 0)))
	w.AddLight(light.NewPointLightWithColour(3.0, core.NewVec3(50, 20, -30), core.NewColour(1, 1, 0)))

	for i := 0; i < 4; i++ {
		fi := float64(i)
		w.AddObject(geometry.NewSphere(
			core.NewVec3(7-7*fi, 4, 3-27*fi),
			4.0,
			material.NewMatte(0.25, 0.65, core.White),
		))
	}
	w.AddObject(geometry.NewPlane(
		core.NewVec3(0, 0, 0),
		core.NewVec3(0, 1, 0),
		material.NewMatte(0.8, 0.4, core.White),
	))
	w.AddObject(geometry.NewCuboid(
		core.NewVec3(40, 0, -130),
		core.NewVec3(10, 15, -80),
		material.NewMatte(0.25, 0.65, core.White),
	))

	return w, cam, nil
}

// NewTwoSpheresScene builds two brightly coloured spheres under pure
// white lighting, a quick scene for checking shading and shadows.
func NewTwoSpheresScene(numSamples int) (*world.World, camera.Camera, error) {
	gen, err := sampler.NewDefault(defaultSamples(numSamples, 16))
	if err != nil {
		return nil, nil, fmt.Errorf("scene: %w", err)
	}
	view := world.NewViewPlane(400, 400, 1.0, gen)

	cam, err := camera.NewPinhole(camera.Location{
		Eye:    core.NewVec3(0, 0, 500),
		Centre: core.NewVec3(-5, 0, 0),
		Up:     core.NewVec3(0, 1, 0),
	}, 850, 2.0)
	if err != nil {
		return nil, nil, fmt.Errorf("scene: %w", err)
	}

	w := world.NewWorld(view, core.Black, light.NewAmbient(1.0))
	w.AddLight(light.NewPointLight(3.0, core.NewVec3(100, 50, 150)))

	w.AddObject(geometry.NewSphere(
		core.NewVec3(10, -5, 0), 27,
		material.NewMatte(0.25, 0.65, core.NewColour(1, 1, 0)),
	))
	w.AddObject(geometry.NewSphere(
		core.NewVec3(-20, 10, -50), 27,
		material.NewPhong(0.25, 0.65, 0.2, 20, core.NewColour(1, 0.5, 0)),
	))

	return w, cam, nil
}

// NewDepthOfFieldScene builds a line of glossy spheres viewed through a
// thin lens focused on the middle one, so the nearer and farther
// spheres blur progressively.
func NewDepthOfFieldScene(numSamples int) (*world.World, camera.Camera, error) {
	// The lens generator must match the antialiasing sample count
	count := defaultSamples(numSamples, 100)
	gen, err := sampler.NewDefault(count)
	if err != nil {
		return nil, nil, fmt.Errorf("scene: %w", err)
	}
	lensGen, err := sampler.NewDefault(count)
	if err != nil {
		return nil, nil, fmt.Errorf("scene: %w", err)
	}
	view := world.NewViewPlane(400, 300, 0.05, gen)

	cam, err := camera.NewThinLens(camera.Location{
		Eye:    core.NewVec3(0, 6, 50),
		Centre: core.NewVec3(0, 6, 0),
		Up:     core.NewVec3(0, 1, 0),
	}, 40, 74, 1.0, 0.8, lensGen)
	if err != nil {
		return nil, nil, fmt.Errorf("scene: %w", err)
	}

	w := world.NewWorld(view, core.NewColour(0.7, 0.7, 1.0), light.NewAmbient(0.5))
	w.AddLight(light.NewPointLight(4.0, core.NewVec3(-40, 60, 40)))

	for i := 0; i < 3; i++ {
		fi := float64(i)
		w.AddObject(geometry.NewSphere(
			core.NewVec3(-8+8*fi, 4, 8-16*fi),
			4.0,
			material.NewPhong(0.25, 0.6, 0.2, 25, core.NewColour(1, 0.3*fi, 0.2)),
		))
	}
	w.AddObject(geometry.NewPlane(
		core.NewVec3(0, 0, 0),
		core.NewVec3(0, 1, 0),
		material.NewMatte(0.6, 0.5, core.White),
	))

	return w, cam, nil
}

// NewPanoramaScene builds a ring of spheres around the eye, rendered
// with the spherical panoramic camera over a full 360° sweep.
func NewPanoramaScene(numSamples int) (*world.World, camera.Camera, error) {
	gen, err := sampler.NewDefault(defaultSamples(numSamples, 16))
	if err != nil {
		return nil, nil, fmt.Errorf("scene: %w", err)
	}
	view := world.NewViewPlane(800, 200, 0.01, gen)

	cam, err := camera.NewSpherical(camera.Location{
		Eye:    core.NewVec3(0, 5, 0),
		Centre: core.NewVec3(0, 5, -10),
		Up:     core.NewVec3(0, 1, 0),
	}, math.Pi, 0.25*math.Pi)
	if err != nil {
		return nil, nil, fmt.Errorf("scene: %w", err)
	}

	w := world.NewWorld(view, core.NewColour(0.7, 0.7, 1.0), light.NewAmbient(0.6))
	w.AddLight(light.NewPointLight(3.0, core.NewVec3(0, 60, 0)))

	const ringRadius = 30.0
	for i := 0; i < 8; i++ {
		angle := 2 * math.Pi * float64(i) / 8
		w.AddObject(geometry.NewSphere(
			core.NewVec3(ringRadius*math.Cos(angle), 5, ringRadius*math.Sin(angle)),
			5.0,
			material.NewMatte(0.3, 0.6, core.NewColour(0.125*float64(i), 0.4, 1-0.125*float64(i))),
		))
	}
	w.AddObject(geometry.NewPlane(
		core.NewVec3(0, 0, 0),
		core.NewVec3(0, 1, 0),
		material.NewMatte(0.7, 0.4, core.White),
	))

	return w, cam, nil
}
