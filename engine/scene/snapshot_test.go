package scene

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carmen-Shannon/oxy-playground/engine/physics"
)

func TestSnapshotRoundTrip(t *testing.T) {
	s1 := NewScene("playground", physics.NewWorld())
	jack := Populate(s1, WithSeed(42), WithObstacleCounts(5, 3))
	jack.Body().SetVelocity(mgl32.Vec3{1, 2, 3})

	path := filepath.Join(t.TempDir(), "scene.xml")
	require.NoError(t, s1.Save(path))

	w2 := physics.NewWorld()
	s2 := NewScene("empty", w2)
	require.NoError(t, s2.Load(path))

	assert.Equal(t, "playground", s2.Name())
	assert.Equal(t, s1.Count(), s2.Count())

	// The character rig is rebuilt with its body state.
	restored := s2.GetByName(CharacterName)
	require.NotNil(t, restored)
	body := restored.Body()
	require.NotNil(t, body)
	assert.Equal(t, physics.Capsule{Radius: 0.35, HalfHeight: 0.9}, body.Capsule())
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, body.Velocity())

	clip, speed := restored.Animation()
	assert.Equal(t, "idle", clip)
	assert.Equal(t, float32(1), speed)

	// Collision volumes re-register with the destination world.
	assert.Len(t, w2.Statics(), 4)

	// Positions survive the round trip.
	for _, obj := range s1.Objects() {
		other := s2.GetByName(obj.Name())
		require.NotNil(t, other, "object %s missing after load", obj.Name())
		x1, y1, z1 := obj.Position()
		x2, y2, z2 := other.Position()
		assert.InDelta(t, float64(x1), float64(x2), 1e-5)
		assert.InDelta(t, float64(y1), float64(y2), 1e-5)
		assert.InDelta(t, float64(z1), float64(z2), 1e-5)
	}
}

func TestLoadReplacesExistingContents(t *testing.T) {
	s1 := NewScene("playground", physics.NewWorld())
	Populate(s1, WithSeed(1), WithObstacleCounts(2, 2))

	path := filepath.Join(t.TempDir(), "scene.xml")
	require.NoError(t, s1.Save(path))

	w2 := physics.NewWorld()
	s2 := NewScene("other", w2)
	Populate(s2, WithSeed(9), WithObstacleCounts(10, 10))
	require.Equal(t, 22, s2.Count())

	require.NoError(t, s2.Load(path))
	assert.Equal(t, s1.Count(), s2.Count())
	assert.Len(t, w2.Statics(), 3, "old collision volumes are gone")
}

func TestSaveCreatesSnapshotDirectory(t *testing.T) {
	s := NewScene("playground", physics.NewWorld())
	Populate(s, WithSeed(1), WithObstacleCounts(1, 1))

	path := filepath.Join(t.TempDir(), "nested", "dir", "scene.xml")
	require.NoError(t, s.Save(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "<?xml"))
	assert.Contains(t, string(data), `name="playground"`)
	assert.Contains(t, string(data), `name="Jack"`)
}

func TestLoadMissingSnapshotFails(t *testing.T) {
	s := NewScene("playground", physics.NewWorld())
	err := s.Load(filepath.Join(t.TempDir(), "nope.xml"))
	assert.Error(t, err)
}

func TestLoadMalformedSnapshotFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.xml")
	require.NoError(t, os.WriteFile(path, []byte("not xml at all <"), 0o644))

	s := NewScene("playground", physics.NewWorld())
	assert.Error(t, s.Load(path))
}
