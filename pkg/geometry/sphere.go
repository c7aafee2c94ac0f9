package geometry

import (
	"math"

	"github.com/dmccue/go-ray-caster/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Centre core.Vec3
	Radius float64
	Mat    core.Material
}

// NewSphere creates a new sphere
func NewSphere(centre core.Vec3, radius float64, mat core.Material) *Sphere {
	return &Sphere{Centre: centre, Radius: radius, Mat: mat}
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray) (float64, bool) {
	offset := ray.Origin.Subtract(s.Centre)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	b := 2.0 * offset.Dot(ray.Direction)
	c := offset.Dot(offset) - s.Radius*s.Radius

	discriminant := b*b - 4.0*a*c
	if discriminant < 0 {
		return 0, false
	}

	e := math.Sqrt(discriminant)
	denominator := 2.0 * a

	// Try the closer root first, then the farther one
	if t := (-b - e) / denominator; t > core.Epsilon {
		return t, true
	}
	if t := (-b + e) / denominator; t > core.Epsilon {
		return t, true
	}

	return 0, false
}

// Normal returns the outward surface normal at the given point
func (s *Sphere) Normal(point core.Vec3) core.Vec3 {
	return point.Subtract(s.Centre).Divide(s.Radius)
}

// Material returns the sphere's material
func (s *Sphere) Material() core.Material {
	return s.Mat
}
