package core

// Epsilon is the minimum ray parameter accepted by intersection tests.
// It absorbs rounding errors and prevents shadow rays from re-hitting
// the surface they originate from (shadow acne).
const Epsilon = 1e-4

// Intersection describes a ray-geometry hit. It is created per ray query
// by Scene.HitObjects and consumed within the same call stack frame.
type Intersection struct {
	Ray      Ray      // The ray that produced the hit
	T        float64  // Ray parameter at the hit
	HitPoint Vec3     // World-space hit point
	Normal   Vec3     // Surface normal at the hit point
	Depth    int      // Recursion depth
	Material Material // Material of the hit object
}

// Geometry is a shape that rays can intersect.
type Geometry interface {
	// Hit returns the smallest ray parameter greater than Epsilon at
	// which the ray intersects the shape, or false if there is none.
	Hit(ray Ray) (float64, bool)

	// Normal returns the surface normal at the given point. The point is
	// assumed to lie (approximately) on the shape.
	Normal(point Vec3) Vec3

	// Material returns the material used to shade the shape.
	Material() Material
}

// Material computes the outgoing colour at an intersection. The scene is
// passed explicitly so materials can query lights and cast shadow rays.
type Material interface {
	Shade(hit Intersection, scene Scene) Colour
}

// Light provides an incident direction and radiance for shading, plus an
// occlusion test for shadow rays.
type Light interface {
	Direction(hit Intersection) Vec3
	Radiance(hit Intersection) Colour
	InShadow(ray Ray, scene Scene) bool
}

// Tracer turns a ray into a colour using the scene.
type Tracer interface {
	TraceRay(scene Scene, ray Ray) Colour
}

// Scene is a read-only view of the world shared by tracers, materials and
// lights. Interfaces live here so shading can reach back into the scene
// without an import cycle between the world and material packages.
type Scene interface {
	// HitObjects returns the intersection for the nearest object hit by
	// the ray, or false if the ray escapes the scene.
	HitObjects(ray Ray) (Intersection, bool)

	// Objects returns every geometry in the scene.
	Objects() []Geometry

	// Lights returns the scene's emitting lights, excluding ambient.
	Lights() []Light

	// AmbientLight returns the scene's ambient fill light.
	AmbientLight() Light

	// BackgroundColour returns the colour for rays that miss everything.
	BackgroundColour() Colour
}
