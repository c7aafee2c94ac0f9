package geometry

import (
	"math"

	"github.com/dmccue/go-ray-caster/pkg/core"
)

// Cuboid represents an axis-aligned box between two corner points
type Cuboid struct {
	Min core.Vec3
	Max core.Vec3
	Mat core.Material
}

// NewCuboid creates a new axis-aligned cuboid from its corner points
func NewCuboid(min, max core.Vec3, mat core.Material) *Cuboid {
	return &Cuboid{Min: min, Max: max, Mat: mat}
}

// NewCuboidWithSize creates a cuboid from an origin corner and a size
// extending from it
func NewCuboidWithSize(origin, size core.Vec3, mat core.Material) *Cuboid {
	return &Cuboid{Min: origin, Max: origin.Add(size), Mat: mat}
}

// Hit tests if a ray intersects the cuboid using the slab method.
// Axis-parallel rays produce infinite slab parameters through the
// component-wise reciprocal, which the min/max comparisons handle.
func (c *Cuboid) Hit(ray core.Ray) (float64, bool) {
	invDir := ray.Direction.Reciprocal()

	tx1 := (c.Min.X - ray.Origin.X) * invDir.X
	tx2 := (c.Max.X - ray.Origin.X) * invDir.X
	ty1 := (c.Min.Y - ray.Origin.Y) * invDir.Y
	ty2 := (c.Max.Y - ray.Origin.Y) * invDir.Y
	tz1 := (c.Min.Z - ray.Origin.Z) * invDir.Z
	tz2 := (c.Max.Z - ray.Origin.Z) * invDir.Z

	// Entry and exit parameters per axis
	txNear, txFar := math.Min(tx1, tx2), math.Max(tx1, tx2)
	tyNear, tyFar := math.Min(ty1, ty2), math.Max(ty1, ty2)
	tzNear, tzFar := math.Min(tz1, tz2), math.Max(tz1, tz2)

	tMin := math.Max(txNear, math.Max(tyNear, tzNear))
	tMax := math.Min(txFar, math.Min(tyFar, tzFar))

	if tMin < tMax && tMax > core.Epsilon {
		// A negative tMin means the ray starts inside the box
		if tMin < 0 {
			return tMax, true
		}
		return tMin, true
	}
	return 0, false
}

// Normal returns the outward face normal at the given surface point. The
// face is selected by truncating the offset-to-half-extent ratio with a
// 1+ε bias: only the axis where the point sits on a face survives the
// truncation. At exact edges and corners more than one axis survives and
// the result is undefined.
func (c *Cuboid) Normal(point core.Vec3) core.Vec3 {
	centre := c.Min.Add(c.Max).Multiply(0.5)
	offset := point.Subtract(centre)
	divisor := c.Min.Subtract(c.Max).Multiply(0.5)
	bias := 1.0 + core.Epsilon

	return core.NewVec3(
		math.Trunc(offset.X/math.Abs(divisor.X)*bias),
		math.Trunc(offset.Y/math.Abs(divisor.Y)*bias),
		math.Trunc(offset.Z/math.Abs(divisor.Z)*bias),
	).Normalize()
}

// Material returns the cuboid's material
func (c *Cuboid) Material() core.Material {
	return c.Mat
}
