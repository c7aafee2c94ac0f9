package geometry

import (
	"math"

	"github.com/dmccue/go-ray-caster/pkg/core"
)

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Point core.Vec3 // A point on the plane
	Norm  core.Vec3 // Normal vector (should be normalized)
	Mat   core.Material
}

// NewPlane creates a new plane
func NewPlane(point, normal core.Vec3, mat core.Material) *Plane {
	return &Plane{Point: point, Norm: normal.Normalize(), Mat: mat}
}

// Hit tests if a ray intersects with the plane
func (p *Plane) Hit(ray core.Ray) (float64, bool) {
	denominator := ray.Direction.Dot(p.Norm)

	// A ray parallel to the plane never intersects it; without this
	// check the division below would produce a non-finite t
	if math.Abs(denominator) < 1e-8 {
		return 0, false
	}

	t := p.Point.Subtract(ray.Origin).Dot(p.Norm) / denominator
	if t > core.Epsilon {
		return t, true
	}
	return 0, false
}

// Normal returns the plane's constant normal
func (p *Plane) Normal(_ core.Vec3) core.Vec3 {
	return p.Norm
}

// Material returns the plane's material
func (p *Plane) Material() core.Material {
	return p.Mat
}
