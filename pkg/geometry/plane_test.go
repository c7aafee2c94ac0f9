package geometry

import (
	"math"
	"testing"

	"github.com/dmccue/go-ray-caster/pkg/core"
)

func TestPlane_Hit_HeadOn(t *testing.T) {
	// Plane through the origin facing +z, ray from (0,0,100) toward -z:
	// the hit parameter is exactly the distance to the plane
	plane := NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), nil)
	ray := core.NewRay(core.NewVec3(0, 0, 100), core.NewVec3(0, 0, -1))

	tHit, ok := plane.Hit(ray)
	if !ok {
		t.Fatal("Expected hit, but got miss")
	}
	if tHit != 100.0 {
		t.Errorf("Expected t=100 exactly, got t=%f", tHit)
	}
}

func TestPlane_Hit_PointLiesOnPlane(t *testing.T) {
	plane := NewPlane(core.NewVec3(1, 2, 3), core.NewVec3(1, 1, 1), nil)

	rays := []core.Ray{
		core.NewRay(core.NewVec3(10, 10, 10), core.NewVec3(-1, -1, -1).Normalize()),
		core.NewRay(core.NewVec3(5, 0, 0), core.NewVec3(-0.2, 0.3, 1).Normalize()),
		core.NewRay(core.NewVec3(0, 20, 0), core.NewVec3(0, -1, 0)),
	}
	for _, ray := range rays {
		tHit, ok := plane.Hit(ray)
		if !ok {
			continue
		}
		// The hit point must satisfy the plane equation
		offset := ray.At(tHit).Subtract(plane.Point).Dot(plane.Norm)
		if math.Abs(offset) > 1e-9 {
			t.Errorf("Hit point %v lies %g off the plane", ray.At(tHit), offset)
		}
	}
}

func TestPlane_Hit_Parallel(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), nil)
	ray := core.NewRay(core.NewVec3(0, 5, 0), core.NewVec3(1, 0, 0))

	if tHit, ok := plane.Hit(ray); ok {
		t.Errorf("Expected miss for parallel ray, got hit at t=%f", tHit)
	}
}

func TestPlane_Hit_Behind(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), nil)
	ray := core.NewRay(core.NewVec3(0, 5, 0), core.NewVec3(0, 1, 0))

	if tHit, ok := plane.Hit(ray); ok {
		t.Errorf("Expected miss for plane behind ray, got hit at t=%f", tHit)
	}
}

func TestPlane_Normal_IsConstantAndUnit(t *testing.T) {
	// The constructor normalizes whatever normal it is given
	plane := NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 3, 0), nil)

	normal := plane.Normal(core.NewVec3(17, 0, -4))
	if normal != core.NewVec3(0, 1, 0) {
		t.Errorf("Expected (0,1,0), got %v", normal)
	}
}
