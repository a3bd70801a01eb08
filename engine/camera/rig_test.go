package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carmen-Shannon/oxy-playground/engine/physics"
)

func TestZoomClampsToBounds(t *testing.T) {
	r := NewRig()

	r.Zoom(-100)
	assert.Equal(t, float32(20), r.Distance())

	r.Zoom(100)
	assert.Equal(t, float32(1), r.Distance())
}

func TestZoomAccumulates(t *testing.T) {
	r := NewRig(WithDistance(5), WithZoomSpeed(1))

	r.Zoom(1)
	assert.Equal(t, float32(4), r.Distance())
	r.Zoom(-2)
	assert.Equal(t, float32(6), r.Distance())
}

func TestDistanceClampedAtConstruction(t *testing.T) {
	r := NewRig(WithDistance(50), WithDistanceBounds(1, 20))
	assert.Equal(t, float32(20), r.Distance())
}

func TestThirdPersonPlacesCameraBehind(t *testing.T) {
	r := NewRig(WithDistance(5))

	r.Update(mgl32.Vec3{0, 0, 0}, 0, 0)
	pos, yaw, pitch := r.Pose()

	// Yaw 0 looks along +Z, so the camera sits 5 units behind the aim point.
	assert.InDelta(t, 0, float64(pos.X()), 1e-4)
	assert.InDelta(t, 1.7, float64(pos.Y()), 1e-4)
	assert.InDelta(t, -5, float64(pos.Z()), 1e-4)
	assert.Zero(t, yaw)
	assert.Zero(t, pitch)
}

func TestThirdPersonOcclusionPullsCameraIn(t *testing.T) {
	w := physics.NewWorld(withTestWall())

	r := NewRig(WithDistance(5), WithRaycaster(w))
	r.Update(mgl32.Vec3{0, 0, 0}, 0, 0)
	pos, _, _ := r.Pose()

	// The wall at z = -2 caps the camera just in front of the hit point.
	assert.InDelta(t, -1.9, float64(pos.Z()), 1e-4)
}

func TestOcclusionRespectsMinDistance(t *testing.T) {
	w := physics.NewWorld(physics.WithStatics(physics.StaticBox{
		Name:  "wall",
		Min:   mgl32.Vec3{-5, 0, -1.5},
		Max:   mgl32.Vec3{5, 5, -1.2},
		Layer: physics.LayerStatic,
	}))

	r := NewRig(WithDistance(5), WithDistanceBounds(2, 20), WithRaycaster(w))
	r.Update(mgl32.Vec3{0, 0, 0}, 0, 0)
	pos, _, _ := r.Pose()

	// The occluded distance (1.1) is below the minimum, so the minimum wins.
	assert.InDelta(t, -2, float64(pos.Z()), 1e-4)
}

func TestFirstPersonAnchorsAtHead(t *testing.T) {
	r := NewRig(WithMode(FirstPerson))

	r.Update(mgl32.Vec3{3, 0, 2}, 0, 0)
	pos, _, _ := r.Pose()

	assert.InDelta(t, 3, float64(pos.X()), 1e-4)
	assert.InDelta(t, 1.7, float64(pos.Y()), 1e-4)
	assert.InDelta(t, 2, float64(pos.Z()), 1e-4)
}

func TestToggleModeFlips(t *testing.T) {
	r := NewRig()
	require.Equal(t, ThirdPerson, r.Mode())

	r.ToggleMode()
	assert.Equal(t, FirstPerson, r.Mode())
	r.ToggleMode()
	assert.Equal(t, ThirdPerson, r.Mode())
}

func TestPitchRaisesCamera(t *testing.T) {
	r := NewRig(WithDistance(5))

	// Positive pitch looks down, so the camera rises above the aim point.
	r.Update(mgl32.Vec3{0, 0, 0}, 0, 45)
	pos, _, _ := r.Pose()
	assert.Greater(t, pos.Y(), float32(1.7))

	r.Update(mgl32.Vec3{0, 0, 0}, 0, -45)
	pos, _, _ = r.Pose()
	assert.Less(t, pos.Y(), float32(1.7))
}

// withTestWall places a wall two units behind the origin-facing aim point.
func withTestWall() physics.WorldBuilderOption {
	return physics.WithStatics(physics.StaticBox{
		Name:  "wall",
		Min:   mgl32.Vec3{-5, 0, -3},
		Max:   mgl32.Vec3{5, 5, -2},
		Layer: physics.LayerStatic,
	})
}
