package scene

import "github.com/Carmen-Shannon/oxy-playground/engine/camera"

// SceneBuilderOption is a functional option for configuring a Scene.
type SceneBuilderOption func(*scene)

// WithActive sets whether the scene starts active.
//
// Parameters:
//   - active: true to start active
//
// Returns:
//   - SceneBuilderOption: functional option to set the active flag
func WithActive(active bool) SceneBuilderOption {
	return func(s *scene) {
		s.active = active
	}
}

// WithRig sets the scene's camera rig during construction.
//
// Parameters:
//   - r: the camera rig
//
// Returns:
//   - SceneBuilderOption: functional option to set the rig
func WithRig(r camera.Rig) SceneBuilderOption {
	return func(s *scene) {
		s.rig = r
	}
}
