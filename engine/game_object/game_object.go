package game_object

import (
	"sync/atomic"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Carmen-Shannon/oxy-playground/engine/physics"
)

type gameObject struct {
	id      uint64
	name    string
	enabled atomic.Bool

	// decorative objects carry no collision volume and never appear on the
	// static collision layer.
	decorative bool

	modelName string

	position [3]float32
	rotation [3]float32
	scale    [3]float32

	animClip  string
	animSpeed float32

	body      physics.Body
	staticBox *physics.StaticBox
}

// GameObject is a named scene entity. Dynamic entities (the character rig)
// carry a physics body whose position is authoritative; static entities may
// carry a static collision box; decorative entities carry neither.
type GameObject interface {
	// ID returns the object's unique identifier.
	//
	// Returns:
	//   - uint64: the object ID
	ID() uint64

	// SetID sets the object's unique identifier.
	//
	// Parameters:
	//   - id: the ID to assign
	SetID(id uint64)

	// Name returns the object's name. Names are unique within a scene and
	// are the lookup key after a snapshot load.
	//
	// Returns:
	//   - string: the object name
	Name() string

	// SetName sets the object's name.
	//
	// Parameters:
	//   - name: the name to assign
	SetName(name string)

	// Enabled returns whether this object participates in updates.
	//
	// Returns:
	//   - bool: true if enabled
	Enabled() bool

	// SetEnabled sets whether the object participates in updates.
	//
	// Parameters:
	//   - enabled: true to enable
	SetEnabled(enabled bool)

	// Decorative returns whether this object is decorative (no collision).
	//
	// Returns:
	//   - bool: true if decorative
	Decorative() bool

	// ModelName returns the name of the visual mesh assigned to the object.
	//
	// Returns:
	//   - string: the model name, or "" if none
	ModelName() string

	// Position returns the object's position. For objects carrying a physics
	// body the body's position is authoritative.
	//
	// Returns:
	//   - x, y, z: position components
	Position() (x, y, z float32)

	// SetPosition updates the object's position, and the body's when one is
	// attached.
	//
	// Parameters:
	//   - x, y, z: new position components
	SetPosition(x, y, z float32)

	// Rotation returns the object's Euler rotation in degrees.
	//
	// Returns:
	//   - rx, ry, rz: rotation angles
	Rotation() (rx, ry, rz float32)

	// SetRotation sets the object's Euler rotation in degrees.
	//
	// Parameters:
	//   - rx, ry, rz: new rotation angles
	SetRotation(rx, ry, rz float32)

	// Scale returns the object's scale.
	//
	// Returns:
	//   - sx, sy, sz: scale components
	Scale() (sx, sy, sz float32)

	// SetScale sets the object's scale.
	//
	// Parameters:
	//   - sx, sy, sz: new scale factors
	SetScale(sx, sy, sz float32)

	// Animation returns the object's current animation clip and playback
	// speed.
	//
	// Returns:
	//   - string: the clip name, or "" if none
	//   - float32: the playback speed
	Animation() (string, float32)

	// SetAnimation sets the object's animation clip and playback speed.
	//
	// Parameters:
	//   - clip: the clip name
	//   - speed: the playback speed
	SetAnimation(clip string, speed float32)

	// Body returns the attached physics body, or nil.
	//
	// Returns:
	//   - physics.Body: the body or nil
	Body() physics.Body

	// SetBody attaches a physics body to the object.
	//
	// Parameters:
	//   - b: the body, or nil to detach
	SetBody(b physics.Body)

	// StaticBox returns the attached static collision box, or nil.
	//
	// Returns:
	//   - *physics.StaticBox: the box or nil
	StaticBox() *physics.StaticBox

	// SetStaticBox attaches a static collision box to the object.
	//
	// Parameters:
	//   - box: the box, or nil to detach
	SetStaticBox(box *physics.StaticBox)
}

var _ GameObject = &gameObject{}

// NewGameObject creates a new GameObject configured with the given options.
//
// Parameters:
//   - options: functional options to configure the object
//
// Returns:
//   - GameObject: the newly created object
func NewGameObject(options ...GameObjectBuilderOption) GameObject {
	obj := &gameObject{
		scale:     [3]float32{1, 1, 1},
		animSpeed: 1,
	}
	obj.enabled.Store(true)
	for _, option := range options {
		option(obj)
	}
	return obj
}

func (g *gameObject) ID() uint64 {
	return g.id
}

func (g *gameObject) SetID(id uint64) {
	g.id = id
}

func (g *gameObject) Name() string {
	return g.name
}

func (g *gameObject) SetName(name string) {
	g.name = name
}

func (g *gameObject) Enabled() bool {
	return g.enabled.Load()
}

func (g *gameObject) SetEnabled(enabled bool) {
	g.enabled.Store(enabled)
}

func (g *gameObject) Decorative() bool {
	return g.decorative
}

func (g *gameObject) ModelName() string {
	return g.modelName
}

func (g *gameObject) Position() (x, y, z float32) {
	if g.body != nil {
		p := g.body.Position()
		return p.X(), p.Y(), p.Z()
	}
	return g.position[0], g.position[1], g.position[2]
}

func (g *gameObject) SetPosition(x, y, z float32) {
	g.position = [3]float32{x, y, z}
	if g.body != nil {
		g.body.SetPosition(mgl32.Vec3{x, y, z})
	}
}

func (g *gameObject) Rotation() (rx, ry, rz float32) {
	return g.rotation[0], g.rotation[1], g.rotation[2]
}

func (g *gameObject) SetRotation(rx, ry, rz float32) {
	g.rotation = [3]float32{rx, ry, rz}
}

func (g *gameObject) Scale() (sx, sy, sz float32) {
	return g.scale[0], g.scale[1], g.scale[2]
}

func (g *gameObject) SetScale(sx, sy, sz float32) {
	g.scale = [3]float32{sx, sy, sz}
}

func (g *gameObject) Animation() (string, float32) {
	return g.animClip, g.animSpeed
}

func (g *gameObject) SetAnimation(clip string, speed float32) {
	g.animClip = clip
	g.animSpeed = speed
}

func (g *gameObject) Body() physics.Body {
	return g.body
}

func (g *gameObject) SetBody(b physics.Body) {
	g.body = b
}

func (g *gameObject) StaticBox() *physics.StaticBox {
	return g.staticBox
}

func (g *gameObject) SetStaticBox(box *physics.StaticBox) {
	g.staticBox = box
}
