package character

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carmen-Shannon/oxy-playground/engine/input"
	"github.com/Carmen-Shannon/oxy-playground/engine/physics"
)

const testDT = float32(1.0 / 60.0)

// newGroundedRig builds a world with a character body resting on the floor
// and a controller driving it as the world's pre-step callback.
func newGroundedRig(t *testing.T) (physics.World, physics.Body, Controller) {
	t.Helper()

	w := physics.NewWorld()
	b := physics.NewBody(
		physics.WithCapsule(0.35, 0.9),
		physics.WithBodyPosition(0, 0.9, 0),
	)
	w.AddBody(b)

	c := NewController(WithBody(b))
	w.SetPreStepCallback(c.PreStep)

	// Two settling steps: the first generates the floor contact, the second
	// consumes the latch so the controller starts grounded.
	w.Step(testDT)
	w.Step(testDT)
	return w, b, c
}

func TestMoveDirection(t *testing.T) {
	assert.Equal(t, mgl32.Vec3{0, 0, 1}, MoveDirection(input.ControlForward))
	assert.Equal(t, mgl32.Vec3{0, 0, -1}, MoveDirection(input.ControlBack))
	assert.Equal(t, mgl32.Vec3{-1, 0, 0}, MoveDirection(input.ControlLeft))
	assert.Equal(t, mgl32.Vec3{1, 0, 0}, MoveDirection(input.ControlRight))

	assert.Equal(t, mgl32.Vec3{}, MoveDirection(input.ControlForward|input.ControlBack))
	assert.Equal(t, mgl32.Vec3{}, MoveDirection(input.ControlLeft|input.ControlRight))

	diag := MoveDirection(input.ControlForward | input.ControlRight)
	assert.InDelta(t, 1.0, float64(diag.Len()), 1e-5, "diagonals are normalized")
}

func TestMovementFollowsFacing(t *testing.T) {
	w, b, c := newGroundedRig(t)

	c.SetYaw(90)
	c.SetControls(input.ControlForward)
	for i := 0; i < 30; i++ {
		w.Step(testDT)
	}

	// Facing 90 degrees rotates local +Z onto world +X.
	vel := b.Velocity()
	assert.Greater(t, vel.X(), float32(0.5))
	assert.InDelta(t, 0, float64(vel.Z()), 1e-3)
}

func TestBrakingCapsGroundSpeed(t *testing.T) {
	w, b, c := newGroundedRig(t)

	c.SetControls(input.ControlForward)
	for i := 0; i < 300; i++ {
		w.Step(testDT)
	}

	// Move and brake impulses settle at the equilibrium speed
	// moveForce / brakeForce.
	speed := mgl32.Vec3{b.Velocity().X(), 0, b.Velocity().Z()}.Len()
	assert.InDelta(t, float64(DefaultMoveForce/DefaultBrakeForce), float64(speed), 0.5)
}

func TestJumpFiresOncePerPress(t *testing.T) {
	w, b, c := newGroundedRig(t)

	c.SetControls(input.ControlJump)

	// Holding jump through the whole arc must fire exactly one impulse.
	jumps := 0
	prevY := b.Velocity().Y()
	for i := 0; i < 300; i++ {
		w.Step(testDT)
		// A fired jump shows as a large upward velocity jump; the landing
		// snap only brings a negative velocity back to zero.
		if y := b.Velocity().Y(); y > 3 && y-prevY > 3 {
			jumps++
		}
		prevY = b.Velocity().Y()
	}
	assert.Equal(t, 1, jumps)

	// Still holding after landing: no re-fire.
	require.Equal(t, Grounded, c.State())

	// Releasing primes the next jump.
	c.SetControls(0)
	w.Step(testDT)
	assert.Equal(t, JumpPrimed, c.State())

	c.SetControls(input.ControlJump)
	w.Step(testDT)
	assert.Greater(t, b.Velocity().Y(), float32(5))
}

func TestSoftGroundWindow(t *testing.T) {
	w, b, c := newGroundedRig(t)

	assert.True(t, c.SoftGrounded())
	assert.Zero(t, c.AirTime())

	// Remove the ground; within the window the character still counts as
	// grounded, after it the state flips to airborne.
	b.SetPosition(mgl32.Vec3{0, 10, 0})
	for i := 0; i < 5; i++ {
		w.Step(testDT)
	}
	assert.True(t, c.SoftGrounded())

	for i := 0; i < 3; i++ {
		w.Step(testDT)
	}
	assert.False(t, c.SoftGrounded())
	assert.Equal(t, Airborne, c.State())
}

func TestLandingRestoresGroundState(t *testing.T) {
	w, b, c := newGroundedRig(t)

	b.SetPosition(mgl32.Vec3{0, 3, 0})
	b.SetVelocity(mgl32.Vec3{})
	for i := 0; i < 10; i++ {
		w.Step(testDT)
	}
	require.Equal(t, Airborne, c.State())

	// Fall back to the floor.
	for i := 0; i < 120; i++ {
		w.Step(testDT)
	}
	assert.True(t, c.SoftGrounded())
	assert.Equal(t, JumpPrimed, c.State(), "jump key released during the fall re-primes on landing")
}

func TestGroundContactFilter(t *testing.T) {
	b := physics.NewBody(physics.WithBodyPosition(0, 0.9, 0))
	c := NewController(WithBody(b)).(*controller)

	// Side contact: point at body height, horizontal normal.
	c.OnContact(physics.Contact{
		Point:  mgl32.Vec3{0.35, 0.9, 0},
		Normal: mgl32.Vec3{1, 0, 0},
	})
	assert.False(t, c.groundedHit)

	// Shallow slope normal below the threshold.
	c.OnContact(physics.Contact{
		Point:  mgl32.Vec3{0, 0, 0},
		Normal: mgl32.Vec3{0.8, 0.6, 0},
	})
	assert.False(t, c.groundedHit)

	// Ground contact: point below center, near-vertical normal.
	c.OnContact(physics.Contact{
		Point:  mgl32.Vec3{0, 0, 0},
		Normal: mgl32.Vec3{0, 1, 0},
	})
	assert.True(t, c.groundedHit)
}

func TestAnimationSelection(t *testing.T) {
	w, _, c := newGroundedRig(t)

	clip, speed := c.Animation()
	assert.Equal(t, AnimationIdle, clip)
	assert.Equal(t, float32(1.0), speed)

	c.SetControls(input.ControlForward)
	for i := 0; i < 30; i++ {
		w.Step(testDT)
	}
	clip, speed = c.Animation()
	assert.Equal(t, AnimationWalk, clip)
	assert.Greater(t, speed, float32(0))
}

func TestSetBodyRebindsContactCallback(t *testing.T) {
	w, _, c := newGroundedRig(t)

	replacement := physics.NewBody(
		physics.WithCapsule(0.35, 0.9),
		physics.WithBodyPosition(0, 0.5, 0),
	)
	w.AddBody(replacement)
	c.SetBody(replacement)

	// The replacement penetrates the floor, so its contact must reach the
	// controller through the re-registered callback.
	w.Step(testDT)
	w.Step(testDT)
	assert.True(t, c.SoftGrounded())
	assert.Same(t, replacement, c.Body())
}
