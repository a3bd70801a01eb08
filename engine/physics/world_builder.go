package physics

import "github.com/go-gl/mathgl/mgl32"

// WorldBuilderOption is a functional option for configuring a World.
type WorldBuilderOption func(*world)

// WithGravity sets the world gravity vector.
//
// Parameters:
//   - x, y, z: gravity components in units per second squared
//
// Returns:
//   - WorldBuilderOption: functional option to set gravity
func WithGravity(x, y, z float32) WorldBuilderOption {
	return func(w *world) {
		w.gravity = mgl32.Vec3{x, y, z}
	}
}

// WithFloorLevel sets the Y level of the always-present ground plane.
//
// Parameters:
//   - level: the floor Y level in world space
//
// Returns:
//   - WorldBuilderOption: functional option to set the floor level
func WithFloorLevel(level float32) WorldBuilderOption {
	return func(w *world) {
		w.floorLevel = level
	}
}

// WithStatics pre-populates the world's static collision boxes.
//
// Parameters:
//   - boxes: the static boxes to add
//
// Returns:
//   - WorldBuilderOption: functional option to add static boxes
func WithStatics(boxes ...StaticBox) WorldBuilderOption {
	return func(w *world) {
		w.statics = append(w.statics, boxes...)
	}
}
