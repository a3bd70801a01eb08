package character

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Carmen-Shannon/oxy-playground/engine/input"
	"github.com/Carmen-Shannon/oxy-playground/engine/physics"
)

// GroundState is the controller's jump/ground state machine.
type GroundState int

const (
	// Airborne means the character has been off the ground longer than the
	// soft-ground window.
	Airborne GroundState = iota

	// Grounded means the character is (softly) on the ground but the jump
	// key has not been released since the last jump.
	Grounded

	// JumpPrimed means the character is (softly) on the ground and a jump
	// press will fire.
	JumpPrimed
)

// Default tuning constants.
const (
	// DefaultMoveForce is the per-step movement impulse magnitude while
	// soft-grounded.
	DefaultMoveForce float32 = 0.8

	// DefaultAirMoveForce is the per-step movement impulse magnitude while
	// airborne.
	DefaultAirMoveForce float32 = 0.02

	// DefaultBrakeForce is the coefficient applied to the negated horizontal
	// velocity while soft-grounded, capping ground speed.
	DefaultBrakeForce float32 = 0.2

	// DefaultJumpImpulse is the upward jump impulse magnitude.
	DefaultJumpImpulse float32 = 7.0

	// SoftGroundWindow is how long after contact loss the character still
	// counts as grounded, masking ground-detection jitter.
	SoftGroundWindow float32 = 0.1

	// groundNormalMinY is the minimum contact normal Y component for a
	// contact to count as ground (within ~41 degrees of vertical).
	groundNormalMinY float32 = 0.75
)

// controller implements the Controller interface.
// Owned by the simulation tick; no internal locking.
type controller struct {
	body physics.Body

	controls input.Control
	yaw      float32 // facing, degrees

	airTime      float32
	groundedHit  bool // contact latch, set by OnContact, cleared each pre-step
	state        GroundState
	animationFPS float32

	moveForce    float32
	airMoveForce float32
	brakeForce   float32
	jumpImpulse  float32
}

// Controller drives a character body from a per-tick control bitmask.
// Register PreStep as the world's pre-step callback and OnContact as the
// body's contact callback; set the controls and facing yaw from the sampled
// input before each step.
type Controller interface {
	// Body returns the character's rigid body.
	//
	// Returns:
	//   - physics.Body: the body
	Body() physics.Body

	// SetBody rebinds the controller to a body, re-registering the ground
	// contact callback. Used after a scene snapshot load re-resolves the
	// character rig.
	//
	// Parameters:
	//   - b: the new body
	SetBody(b physics.Body)

	// SetControls sets the control bitmask consumed by the next step.
	//
	// Parameters:
	//   - c: the held movement controls
	SetControls(c input.Control)

	// SetYaw sets the character facing in degrees. Movement direction is
	// rotated into this frame.
	//
	// Parameters:
	//   - yaw: the facing yaw in degrees
	SetYaw(yaw float32)

	// Yaw returns the character facing in degrees.
	//
	// Returns:
	//   - float32: the facing yaw
	Yaw() float32

	// PreStep applies movement, braking, and jump impulses for one physics
	// step. Must run as the world's pre-step callback.
	//
	// Parameters:
	//   - dt: the step delta time in seconds
	PreStep(dt float32)

	// OnContact is the body's contact callback. A contact counts as ground
	// when its point lies below the body's vertical center and its normal is
	// within ~41 degrees of vertical.
	//
	// Parameters:
	//   - c: the contact
	OnContact(c physics.Contact)

	// AirTime returns the seconds since the character last touched ground.
	//
	// Returns:
	//   - float32: the air time (zero while grounded)
	AirTime() float32

	// SoftGrounded reports whether the air time is within the soft-ground
	// window.
	//
	// Returns:
	//   - bool: true if soft-grounded
	SoftGrounded() bool

	// State returns the controller's ground/jump state.
	//
	// Returns:
	//   - GroundState: the current state
	State() GroundState

	// Animation selects the animation for the character's current motion.
	//
	// Returns:
	//   - Animation: walk while soft-grounded and moving, idle otherwise
	//   - float32: playback speed (horizontal speed scaled; 1.0 for idle)
	Animation() (Animation, float32)
}

var _ Controller = &controller{}

// NewController creates a character Controller configured with the given
// options. A body must be supplied via WithBody; the controller registers
// itself as that body's contact callback.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - Controller: the newly created controller
func NewController(options ...ControllerBuilderOption) Controller {
	c := &controller{
		state:        JumpPrimed,
		moveForce:    DefaultMoveForce,
		airMoveForce: DefaultAirMoveForce,
		brakeForce:   DefaultBrakeForce,
		jumpImpulse:  DefaultJumpImpulse,
	}
	for _, option := range options {
		option(c)
	}
	if c.body != nil {
		c.body.SetContactCallback(c.OnContact)
	}
	return c
}

func (c *controller) Body() physics.Body {
	return c.body
}

func (c *controller) SetBody(b physics.Body) {
	if c.body != nil {
		c.body.SetContactCallback(nil)
	}
	c.body = b
	if b != nil {
		b.SetContactCallback(c.OnContact)
	}
}

func (c *controller) SetControls(controls input.Control) {
	c.controls = controls
}

func (c *controller) SetYaw(yaw float32) {
	c.yaw = yaw
}

func (c *controller) Yaw() float32 {
	return c.yaw
}

func (c *controller) AirTime() float32 {
	return c.airTime
}

func (c *controller) SoftGrounded() bool {
	return c.airTime < SoftGroundWindow
}

func (c *controller) State() GroundState {
	return c.state
}

func (c *controller) OnContact(ct physics.Contact) {
	if c.body == nil {
		return
	}
	if ct.Point.Y() < c.body.Position().Y() && ct.Normal.Y() > groundNormalMinY {
		c.groundedHit = true
	}
}

func (c *controller) PreStep(dt float32) {
	if c.body == nil {
		return
	}

	// Consume the one-frame contact latch. Contacts generated during the
	// upcoming step re-set it for the next frame.
	grounded := c.groundedHit
	c.groundedHit = false

	if grounded {
		c.airTime = 0
	} else {
		c.airTime += dt
	}
	soft := c.SoftGrounded()

	// Movement impulse in the facing frame.
	dir := MoveDirection(c.controls)
	if dir.Len() > 0 {
		rotated := mgl32.Rotate3DY(mgl32.DegToRad(c.yaw)).Mul3x1(dir)
		force := c.airMoveForce
		if soft {
			force = c.moveForce
		}
		c.body.ApplyImpulse(rotated.Mul(force))
	}

	if soft {
		// Braking caps ground speed.
		vel := c.body.Velocity()
		planar := mgl32.Vec3{vel.X(), 0, vel.Z()}
		c.body.ApplyImpulse(planar.Mul(-c.brakeForce))

		if c.state == Airborne {
			// Landed. Prime only once the jump key is seen released below.
			c.state = Grounded
		}
		if c.controls.Has(input.ControlJump) {
			if c.state == JumpPrimed {
				c.body.ApplyImpulse(mgl32.Vec3{0, c.jumpImpulse, 0})
				c.state = Grounded
			}
		} else {
			c.state = JumpPrimed
		}
	} else {
		c.state = Airborne
	}
}

func (c *controller) Animation() (Animation, float32) {
	moving := MoveDirection(c.controls).Len() > 0
	if c.SoftGrounded() && moving {
		vel := c.body.Velocity()
		speed := mgl32.Vec3{vel.X(), 0, vel.Z()}.Len()
		return AnimationWalk, speed
	}
	return AnimationIdle, 1.0
}

// MoveDirection converts held movement controls into a unit direction in the
// character's local frame (+Z forward, +X right). Opposing controls cancel;
// diagonals are normalized so they are no faster than a single axis.
//
// Parameters:
//   - controls: the held movement controls
//
// Returns:
//   - mgl32.Vec3: the unit movement direction, or the zero vector
func MoveDirection(controls input.Control) mgl32.Vec3 {
	var dir mgl32.Vec3
	if controls.Has(input.ControlForward) {
		dir = dir.Add(mgl32.Vec3{0, 0, 1})
	}
	if controls.Has(input.ControlBack) {
		dir = dir.Add(mgl32.Vec3{0, 0, -1})
	}
	if controls.Has(input.ControlLeft) {
		dir = dir.Add(mgl32.Vec3{-1, 0, 0})
	}
	if controls.Has(input.ControlRight) {
		dir = dir.Add(mgl32.Vec3{1, 0, 0})
	}
	if dir.Len() == 0 {
		return mgl32.Vec3{}
	}
	return dir.Normalize()
}
