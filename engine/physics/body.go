package physics

import "github.com/go-gl/mathgl/mgl32"

// body implements the Body interface.
// Bodies are owned by the simulation tick and must only be accessed from it;
// no internal locking is performed.
type body struct {
	position mgl32.Vec3
	velocity mgl32.Vec3
	impulse  mgl32.Vec3 // accumulated impulses, consumed each step
	mass     float32
	capsule  Capsule

	// lockedRotation keeps the body upright regardless of contacts.
	// Orientation is driven by game logic, never by physics torque.
	lockedRotation bool

	layer uint32

	onContact func(c Contact)
}

// Body is a dynamic rigid body stepped by a World.
// It integrates gravity and accumulated impulses and collides against the
// world's static geometry. Orientation is not simulated when rotation is
// locked (the default); game logic owns facing.
type Body interface {
	// Position returns the body's center position in world space.
	//
	// Returns:
	//   - mgl32.Vec3: the position
	Position() mgl32.Vec3

	// SetPosition teleports the body to a new position, leaving velocity intact.
	//
	// Parameters:
	//   - p: the new center position in world space
	SetPosition(p mgl32.Vec3)

	// Velocity returns the body's linear velocity.
	//
	// Returns:
	//   - mgl32.Vec3: the linear velocity in units per second
	Velocity() mgl32.Vec3

	// SetVelocity replaces the body's linear velocity.
	//
	// Parameters:
	//   - v: the new linear velocity
	SetVelocity(v mgl32.Vec3)

	// Mass returns the body's mass in kilograms.
	//
	// Returns:
	//   - float32: the mass
	Mass() float32

	// ApplyImpulse accumulates a world-space impulse applied on the next step.
	// The resulting velocity change is impulse divided by mass.
	//
	// Parameters:
	//   - imp: the impulse to accumulate
	ApplyImpulse(imp mgl32.Vec3)

	// Capsule returns the body's collision capsule.
	//
	// Returns:
	//   - Capsule: the capsule shape
	Capsule() Capsule

	// RotationLocked reports whether physics torque is suppressed for this body.
	//
	// Returns:
	//   - bool: true if rotation is locked (orientation is game-logic-owned)
	RotationLocked() bool

	// Layer returns the collision layer bit the body occupies.
	//
	// Returns:
	//   - uint32: the layer bit
	Layer() uint32

	// SetContactCallback registers the function invoked for each contact the
	// body generates during a world step. The callback runs on the simulation
	// goroutine, inside Step.
	//
	// Parameters:
	//   - callback: function receiving the contact, or nil to disable
	SetContactCallback(callback func(c Contact))
}

var _ Body = &body{}

// NewBody creates a new dynamic Body configured with the given options.
// Defaults: mass 1, upright capsule of radius 0.5 and half-height 0.9,
// rotation locked, character layer.
//
// Parameters:
//   - options: functional options to configure the body
//
// Returns:
//   - Body: the newly created body
func NewBody(options ...BodyBuilderOption) Body {
	b := &body{
		mass:           1,
		capsule:        Capsule{Radius: 0.5, HalfHeight: 0.9},
		lockedRotation: true,
		layer:          LayerCharacter,
	}
	for _, option := range options {
		option(b)
	}
	return b
}

func (b *body) Position() mgl32.Vec3 {
	return b.position
}

func (b *body) SetPosition(p mgl32.Vec3) {
	b.position = p
}

func (b *body) Velocity() mgl32.Vec3 {
	return b.velocity
}

func (b *body) SetVelocity(v mgl32.Vec3) {
	b.velocity = v
}

func (b *body) Mass() float32 {
	return b.mass
}

func (b *body) ApplyImpulse(imp mgl32.Vec3) {
	b.impulse = b.impulse.Add(imp)
}

func (b *body) Capsule() Capsule {
	return b.capsule
}

func (b *body) RotationLocked() bool {
	return b.lockedRotation
}

func (b *body) Layer() uint32 {
	return b.layer
}

func (b *body) SetContactCallback(callback func(c Contact)) {
	b.onContact = callback
}
