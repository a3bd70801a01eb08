package physics

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepIntegratesGravity(t *testing.T) {
	w := NewWorld()
	b := NewBody(WithBodyPosition(0, 5, 0))
	w.AddBody(b)

	w.Step(0.1)

	assert.InDelta(t, -0.981, float64(b.Velocity().Y()), 1e-4)
	assert.InDelta(t, 5-0.0981, float64(b.Position().Y()), 1e-4)
}

func TestStepConsumesImpulseOnce(t *testing.T) {
	w := NewWorld()
	b := NewBody(WithMass(2), WithBodyPosition(0, 5, 0))
	w.AddBody(b)

	b.ApplyImpulse(mgl32.Vec3{2, 0, 0})
	w.Step(0.1)
	assert.InDelta(t, 1.0, float64(b.Velocity().X()), 1e-4)

	w.Step(0.1)
	assert.InDelta(t, 1.0, float64(b.Velocity().X()), 1e-4, "impulse must not apply twice")
}

func TestStepZeroDeltaIsNoOp(t *testing.T) {
	w := NewWorld()
	b := NewBody(WithBodyPosition(0, 5, 0))
	w.AddBody(b)

	w.Step(0)

	assert.Equal(t, mgl32.Vec3{0, 5, 0}, b.Position())
	assert.Equal(t, mgl32.Vec3{}, b.Velocity())
}

func TestFloorSnapEmitsGroundContact(t *testing.T) {
	w := NewWorld()
	b := NewBody(WithBodyPosition(0, 0.5, 0))
	w.AddBody(b)

	var contacts []Contact
	b.SetContactCallback(func(c Contact) {
		contacts = append(contacts, c)
	})

	w.Step(0.01)

	// Capsule bottom penetrated the floor; the body snaps onto it.
	assert.InDelta(t, 0.9, float64(b.Position().Y()), 1e-4)
	assert.Zero(t, b.Velocity().Y())

	require.Len(t, contacts, 1)
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, contacts[0].Normal)
	assert.Less(t, contacts[0].Point.Y(), b.Position().Y())
}

func TestStaticBoxPushOut(t *testing.T) {
	w := NewWorld(WithStatics(StaticBox{
		Name:  "wall",
		Min:   mgl32.Vec3{-1, 0, -1},
		Max:   mgl32.Vec3{1, 2, 1},
		Layer: LayerStatic,
	}))
	b := NewBody(WithBodyPosition(1.2, 1, 0))
	w.AddBody(b)
	b.SetVelocity(mgl32.Vec3{-1, 0, 0})

	w.Step(0.001)

	// Least penetration is along +X, so the body is pushed to the face and
	// the velocity into it removed.
	assert.InDelta(t, 1.5, float64(b.Position().X()), 1e-2)
	assert.GreaterOrEqual(t, b.Velocity().X(), float32(0))
}

func TestRaycastHitsFloorPlane(t *testing.T) {
	w := NewWorld()

	hit, ok := w.Raycast(mgl32.Vec3{0, 5, 0}, mgl32.Vec3{0, -1, 0}, 10, LayerAll)

	require.True(t, ok)
	assert.Equal(t, "floor", hit.Name)
	assert.InDelta(t, 5.0, float64(hit.Distance), 1e-4)
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, hit.Normal)
}

func TestRaycastHitsNearestBox(t *testing.T) {
	w := NewWorld(WithStatics(
		StaticBox{Name: "near", Min: mgl32.Vec3{-1, 0, 2}, Max: mgl32.Vec3{1, 1, 3}, Layer: LayerStatic},
		StaticBox{Name: "far", Min: mgl32.Vec3{-1, 0, 5}, Max: mgl32.Vec3{1, 1, 6}, Layer: LayerStatic},
	))

	hit, ok := w.Raycast(mgl32.Vec3{0, 0.5, 0}, mgl32.Vec3{0, 0, 1}, 10, LayerStatic)

	require.True(t, ok)
	assert.Equal(t, "near", hit.Name)
	assert.InDelta(t, 2.0, float64(hit.Distance), 1e-4)
	assert.Equal(t, mgl32.Vec3{0, 0, -1}, hit.Normal)
}

func TestRaycastRespectsMaxDistance(t *testing.T) {
	w := NewWorld(WithStatics(StaticBox{
		Name:  "box",
		Min:   mgl32.Vec3{-1, 0, 2},
		Max:   mgl32.Vec3{1, 1, 3},
		Layer: LayerStatic,
	}))

	_, ok := w.Raycast(mgl32.Vec3{0, 0.5, 0}, mgl32.Vec3{0, 0, 1}, 1, LayerStatic)
	assert.False(t, ok)
}

func TestRaycastFromInsideBoxMisses(t *testing.T) {
	w := NewWorld(WithStatics(StaticBox{
		Name:  "box",
		Min:   mgl32.Vec3{-1, 0.1, -1},
		Max:   mgl32.Vec3{1, 2, 1},
		Layer: LayerStatic,
	}))

	_, ok := w.Raycast(mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0, 0, 1}, 10, LayerStatic)
	assert.False(t, ok)
}

func TestRaycastLayerMask(t *testing.T) {
	w := NewWorld(WithStatics(StaticBox{
		Name:  "box",
		Min:   mgl32.Vec3{-1, 0, 2},
		Max:   mgl32.Vec3{1, 1, 3},
		Layer: LayerCharacter,
	}))

	_, ok := w.Raycast(mgl32.Vec3{0, 0.5, 0}, mgl32.Vec3{0, 0, 1}, 10, LayerStatic)
	assert.False(t, ok)
}

func TestRemoveBodyStopsStepping(t *testing.T) {
	w := NewWorld()
	b := NewBody(WithBodyPosition(0, 5, 0))
	w.AddBody(b)
	w.RemoveBody(b)

	w.Step(0.1)

	assert.Equal(t, mgl32.Vec3{0, 5, 0}, b.Position())
}
