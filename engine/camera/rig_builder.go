package camera

import "github.com/go-gl/mathgl/mgl32"

// RigBuilderOption is a functional option for configuring a Rig.
type RigBuilderOption func(*rig)

// WithMode sets the initial camera mode.
//
// Parameters:
//   - m: the mode
//
// Returns:
//   - RigBuilderOption: functional option to set the mode
func WithMode(m Mode) RigBuilderOption {
	return func(r *rig) {
		r.mode = m
	}
}

// WithDistance sets the initial third-person distance. The value is clamped
// to the rig's distance bounds at construction.
//
// Parameters:
//   - distance: distance from the aim point
//
// Returns:
//   - RigBuilderOption: functional option to set the distance
func WithDistance(distance float32) RigBuilderOption {
	return func(r *rig) {
		r.distance = distance
	}
}

// WithDistanceBounds sets the minimum and maximum third-person distance.
//
// Parameters:
//   - min: minimum zoom distance
//   - max: maximum zoom distance
//
// Returns:
//   - RigBuilderOption: functional option to set distance bounds
func WithDistanceBounds(min, max float32) RigBuilderOption {
	return func(r *rig) {
		r.minDistance = min
		r.maxDistance = max
	}
}

// WithZoomSpeed sets the distance change per unit of zoom input.
//
// Parameters:
//   - speed: distance units per zoom unit
//
// Returns:
//   - RigBuilderOption: functional option to set the zoom speed
func WithZoomSpeed(speed float32) RigBuilderOption {
	return func(r *rig) {
		r.zoomSpeed = speed
	}
}

// WithHeadOffset sets the first-person anchor offset from the character
// pivot, in the character's local frame.
//
// Parameters:
//   - x, y, z: the offset components
//
// Returns:
//   - RigBuilderOption: functional option to set the head offset
func WithHeadOffset(x, y, z float32) RigBuilderOption {
	return func(r *rig) {
		r.headOffset = mgl32.Vec3{x, y, z}
	}
}

// WithAimHeight sets how far above the character pivot the third-person
// camera aims.
//
// Parameters:
//   - height: the aim height in world units
//
// Returns:
//   - RigBuilderOption: functional option to set the aim height
func WithAimHeight(height float32) RigBuilderOption {
	return func(r *rig) {
		r.aimHeight = height
	}
}

// WithRaycaster sets the static-scene occlusion query source.
//
// Parameters:
//   - caster: the raycaster (typically the physics world)
//
// Returns:
//   - RigBuilderOption: functional option to set the raycaster
func WithRaycaster(caster Raycaster) RigBuilderOption {
	return func(r *rig) {
		r.caster = caster
	}
}
