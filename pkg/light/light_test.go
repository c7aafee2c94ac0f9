package light

import (
	"math"
	"testing"

	"github.com/dmccue/go-ray-caster/pkg/core"
	"github.com/dmccue/go-ray-caster/pkg/geometry"
	"github.com/dmccue/go-ray-caster/pkg/world"
)

func TestAmbient_Radiance(t *testing.T) {
	ambient := NewAmbientWithColour(0.5, core.NewColour(1, 0.5, 0))

	got := ambient.Radiance(core.Intersection{})
	if got != core.NewColour(0.5, 0.25, 0) {
		t.Errorf("Expected (0.5,0.25,0), got %v", got)
	}
}

func TestAmbient_NeverInShadow(t *testing.T) {
	ambient := NewAmbient(1.0)
	if ambient.InShadow(core.Ray{}, nil) {
		t.Error("Ambient light must never be in shadow")
	}
}

func TestPointLight_Direction(t *testing.T) {
	light := NewPointLight(1.0, core.NewVec3(0, 10, 0))
	hit := core.Intersection{HitPoint: core.NewVec3(0, 0, 0)}

	got := light.Direction(hit)
	if got != core.NewVec3(0, 1, 0) {
		t.Errorf("Expected (0,1,0), got %v", got)
	}
	if math.Abs(got.Length()-1.0) > 1e-9 {
		t.Errorf("Expected unit direction, got length %f", got.Length())
	}
}

func TestPointLight_RadianceIgnoresDistance(t *testing.T) {
	light := NewPointLightWithColour(3.0, core.NewVec3(0, 1000, 0), core.NewColour(1, 1, 0))

	near := core.Intersection{HitPoint: core.NewVec3(0, 999, 0)}
	far := core.Intersection{HitPoint: core.NewVec3(0, 0, 0)}
	if light.Radiance(near) != light.Radiance(far) {
		t.Error("Point light radiance must not attenuate with distance")
	}
	if got := light.Radiance(far); got != core.NewColour(3, 3, 0) {
		t.Errorf("Expected (3,3,0), got %v", got)
	}
}

func TestPointLight_InShadow(t *testing.T) {
	view := world.NewViewPlane(1, 1, 1.0, nil)
	light := NewPointLight(1.0, core.NewVec3(0, 100, 0))

	tests := []struct {
		name         string
		sphereCentre core.Vec3
		expected     bool
	}{
		{
			name:         "sphere between point and light",
			sphereCentre: core.NewVec3(0, 50, 0),
			expected:     true,
		},
		{
			name:         "sphere beyond the light",
			sphereCentre: core.NewVec3(0, 200, 0),
			expected:     false,
		},
		{
			name:         "sphere off to the side",
			sphereCentre: core.NewVec3(50, 50, 0),
			expected:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := world.NewWorld(view, core.Black, NewAmbient(1.0))
			w.AddObject(geometry.NewSphere(tt.sphereCentre, 10, nil))

			shadowRay := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))
			if got := light.InShadow(shadowRay, w); got != tt.expected {
				t.Errorf("Expected InShadow=%t, got %t", tt.expected, got)
			}
		})
	}
}
