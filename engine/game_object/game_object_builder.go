package game_object

import "github.com/Carmen-Shannon/oxy-playground/engine/physics"

// GameObjectBuilderOption is a functional option for configuring a GameObject.
type GameObjectBuilderOption func(*gameObject)

// WithName sets the object's name.
//
// Parameters:
//   - name: the name to assign
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the name
func WithName(name string) GameObjectBuilderOption {
	return func(g *gameObject) {
		g.name = name
	}
}

// WithModel sets the name of the visual mesh assigned to the object.
//
// Parameters:
//   - modelName: the model name
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the model name
func WithModel(modelName string) GameObjectBuilderOption {
	return func(g *gameObject) {
		g.modelName = modelName
	}
}

// WithPosition sets the object's initial position.
//
// Parameters:
//   - x, y, z: position components
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the position
func WithPosition(x, y, z float32) GameObjectBuilderOption {
	return func(g *gameObject) {
		g.position = [3]float32{x, y, z}
	}
}

// WithRotation sets the object's initial Euler rotation in degrees.
//
// Parameters:
//   - rx, ry, rz: rotation angles
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the rotation
func WithRotation(rx, ry, rz float32) GameObjectBuilderOption {
	return func(g *gameObject) {
		g.rotation = [3]float32{rx, ry, rz}
	}
}

// WithScale sets the object's initial scale.
//
// Parameters:
//   - sx, sy, sz: scale factors
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the scale
func WithScale(sx, sy, sz float32) GameObjectBuilderOption {
	return func(g *gameObject) {
		g.scale = [3]float32{sx, sy, sz}
	}
}

// WithDecorative marks the object as decorative (no collision volume).
//
// Returns:
//   - GameObjectBuilderOption: functional option to mark the object decorative
func WithDecorative() GameObjectBuilderOption {
	return func(g *gameObject) {
		g.decorative = true
	}
}

// WithGameObjectBody attaches a physics body to the object.
//
// Parameters:
//   - b: the body to attach
//
// Returns:
//   - GameObjectBuilderOption: functional option to attach the body
func WithGameObjectBody(b physics.Body) GameObjectBuilderOption {
	return func(g *gameObject) {
		g.body = b
	}
}

// WithStaticBox attaches a static collision box to the object.
//
// Parameters:
//   - box: the box to attach
//
// Returns:
//   - GameObjectBuilderOption: functional option to attach the box
func WithStaticBox(box physics.StaticBox) GameObjectBuilderOption {
	return func(g *gameObject) {
		g.staticBox = &box
	}
}
