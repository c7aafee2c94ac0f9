package tracer

import (
	"testing"

	"github.com/dmccue/go-ray-caster/pkg/core"
	"github.com/dmccue/go-ray-caster/pkg/geometry"
	"github.com/dmccue/go-ray-caster/pkg/light"
	"github.com/dmccue/go-ray-caster/pkg/material"
	"github.com/dmccue/go-ray-caster/pkg/world"
)

func singleSphereWorld() *world.World {
	view := world.NewViewPlane(10, 10, 1.0, nil)
	w := world.NewWorld(view, core.NewColour(0.1, 0.2, 0.3), light.NewAmbient(1.0))
	w.AddObject(geometry.NewSphere(core.NewVec3(0, 0, 0), 50, material.NewMatte(0.4, 0.6, core.White)))
	return w
}

func TestSimple_TraceRay(t *testing.T) {
	w := singleSphereWorld()

	tests := []struct {
		name     string
		ray      core.Ray
		expected core.Colour
	}{
		{"hit is red", core.NewRay(core.NewVec3(0, 0, 100), core.NewVec3(0, 0, -1)), core.Red},
		{"miss is black", core.NewRay(core.NewVec3(0, 100, 100), core.NewVec3(0, 0, -1)), core.Black},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := (Simple{}).TraceRay(w, tt.ray); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestMultipleObjects_TraceRay_MissReturnsBackground(t *testing.T) {
	w := singleSphereWorld()

	ray := core.NewRay(core.NewVec3(0, 100, 100), core.NewVec3(0, 0, -1))
	if got := (MultipleObjects{}).TraceRay(w, ray); got != w.BackgroundColour() {
		t.Errorf("Expected background %v, got %v", w.BackgroundColour(), got)
	}
}

func TestMultipleObjects_TraceRay_ShadesHit(t *testing.T) {
	w := singleSphereWorld()

	// Ambient-only world: the shaded sphere colour is ka * colour
	ray := core.NewRay(core.NewVec3(0, 0, 100), core.NewVec3(0, 0, -1))
	got := (MultipleObjects{}).TraceRay(w, ray)
	if got != core.NewColour(0.4, 0.4, 0.4) {
		t.Errorf("Expected ambient-lit sphere colour (0.4, 0.4, 0.4), got %v", got)
	}
}

func TestMultipleObjects_TraceRay_ShadesNearestObject(t *testing.T) {
	view := world.NewViewPlane(10, 10, 1.0, nil)
	w := world.NewWorld(view, core.Black, light.NewAmbient(1.0))
	w.AddObject(geometry.NewSphere(core.NewVec3(0, 0, -40), 5, material.NewMatte(1.0, 0, core.Red)))
	w.AddObject(geometry.NewSphere(core.NewVec3(0, 0, -20), 5, material.NewMatte(1.0, 0, core.Blue)))

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	if got := (MultipleObjects{}).TraceRay(w, ray); got != core.Blue {
		t.Errorf("Expected the nearer blue sphere, got %v", got)
	}
}
