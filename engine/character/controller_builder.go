package character

import "github.com/Carmen-Shannon/oxy-playground/engine/physics"

// ControllerBuilderOption is a functional option for configuring a Controller.
type ControllerBuilderOption func(*controller)

// WithBody binds the controller to its character body.
//
// Parameters:
//   - b: the character's rigid body
//
// Returns:
//   - ControllerBuilderOption: functional option to set the body
func WithBody(b physics.Body) ControllerBuilderOption {
	return func(c *controller) {
		c.body = b
	}
}

// WithMoveForces sets the grounded and airborne movement impulse magnitudes.
//
// Parameters:
//   - ground: per-step impulse while soft-grounded
//   - air: per-step impulse while airborne
//
// Returns:
//   - ControllerBuilderOption: functional option to set the move forces
func WithMoveForces(ground, air float32) ControllerBuilderOption {
	return func(c *controller) {
		c.moveForce = ground
		c.airMoveForce = air
	}
}

// WithBrakeForce sets the braking coefficient applied to the negated
// horizontal velocity while soft-grounded.
//
// Parameters:
//   - brake: the braking coefficient
//
// Returns:
//   - ControllerBuilderOption: functional option to set the brake force
func WithBrakeForce(brake float32) ControllerBuilderOption {
	return func(c *controller) {
		c.brakeForce = brake
	}
}

// WithJumpImpulse sets the upward jump impulse magnitude.
//
// Parameters:
//   - impulse: the jump impulse
//
// Returns:
//   - ControllerBuilderOption: functional option to set the jump impulse
func WithJumpImpulse(impulse float32) ControllerBuilderOption {
	return func(c *controller) {
		c.jumpImpulse = impulse
	}
}

// WithYaw sets the initial facing yaw in degrees.
//
// Parameters:
//   - yaw: the facing yaw
//
// Returns:
//   - ControllerBuilderOption: functional option to set the yaw
func WithYaw(yaw float32) ControllerBuilderOption {
	return func(c *controller) {
		c.yaw = yaw
	}
}
