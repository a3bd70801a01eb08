package physics

import "github.com/go-gl/mathgl/mgl32"

// Collision layer bits. Static scenery and the character body live on
// separate layers so camera occlusion rays can ignore the character.
const (
	LayerStatic    uint32 = 1 << 0
	LayerCharacter uint32 = 1 << 1
)

// LayerAll matches every collision layer.
const LayerAll uint32 = ^uint32(0)

// Capsule is the collision shape carried by a dynamic body.
// The capsule is upright (aligned to +Y) and centered on the body position.
type Capsule struct {
	// Radius is the capsule radius in world units.
	Radius float32

	// HalfHeight is half the total capsule height, including the end caps.
	HalfHeight float32
}

// StaticBox is an axis-aligned, immovable collision volume.
// Floor slabs and physical obstacles are static boxes on LayerStatic.
type StaticBox struct {
	// Name identifies the box for debugging and snapshot round-trips.
	Name string

	// Min is the minimum corner of the box in world space.
	Min mgl32.Vec3

	// Max is the maximum corner of the box in world space.
	Max mgl32.Vec3

	// Layer is the collision layer bit the box occupies.
	Layer uint32
}

// Contains reports whether the point lies inside the box (inclusive).
func (b StaticBox) Contains(p mgl32.Vec3) bool {
	return p.X() >= b.Min.X() && p.X() <= b.Max.X() &&
		p.Y() >= b.Min.Y() && p.Y() <= b.Max.Y() &&
		p.Z() >= b.Min.Z() && p.Z() <= b.Max.Z()
}

// Contact describes a single collision contact generated during a world step.
type Contact struct {
	// Body is the dynamic body involved in the contact.
	Body Body

	// Point is the contact point in world space.
	Point mgl32.Vec3

	// Normal is the contact normal in world space, pointing away from the
	// static geometry and toward the body.
	Normal mgl32.Vec3
}

// RayHit describes the nearest intersection found by World.Raycast.
type RayHit struct {
	// Point is the intersection point in world space.
	Point mgl32.Vec3

	// Normal is the surface normal at the intersection.
	Normal mgl32.Vec3

	// Distance is the distance from the ray origin to the intersection.
	Distance float32

	// Name is the name of the static box that was hit, or "floor" for the
	// ground plane.
	Name string
}
