package physics

import "github.com/go-gl/mathgl/mgl32"

// BodyBuilderOption is a functional option for configuring a Body.
type BodyBuilderOption func(*body)

// WithMass sets the body's mass in kilograms.
// Values <= 0 are ignored; the default mass of 1 is kept.
//
// Parameters:
//   - mass: the mass in kilograms
//
// Returns:
//   - BodyBuilderOption: functional option to set the mass
func WithMass(mass float32) BodyBuilderOption {
	return func(b *body) {
		if mass > 0 {
			b.mass = mass
		}
	}
}

// WithBodyPosition sets the body's initial center position.
//
// Parameters:
//   - x, y, z: position components in world space
//
// Returns:
//   - BodyBuilderOption: functional option to set the position
func WithBodyPosition(x, y, z float32) BodyBuilderOption {
	return func(b *body) {
		b.position = mgl32.Vec3{x, y, z}
	}
}

// WithCapsule sets the body's collision capsule.
//
// Parameters:
//   - radius: the capsule radius
//   - halfHeight: half the total capsule height including end caps
//
// Returns:
//   - BodyBuilderOption: functional option to set the capsule
func WithCapsule(radius, halfHeight float32) BodyBuilderOption {
	return func(b *body) {
		b.capsule = Capsule{Radius: radius, HalfHeight: halfHeight}
	}
}

// WithLockedRotation sets whether physics torque is suppressed for the body.
// When locked (the default), orientation is owned entirely by game logic.
//
// Parameters:
//   - locked: true to lock rotation
//
// Returns:
//   - BodyBuilderOption: functional option to set rotation locking
func WithLockedRotation(locked bool) BodyBuilderOption {
	return func(b *body) {
		b.lockedRotation = locked
	}
}

// WithBodyLayer sets the collision layer bit the body occupies.
//
// Parameters:
//   - layer: the layer bit
//
// Returns:
//   - BodyBuilderOption: functional option to set the layer
func WithBodyLayer(layer uint32) BodyBuilderOption {
	return func(b *body) {
		b.layer = layer
	}
}
