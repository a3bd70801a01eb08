package scene

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Carmen-Shannon/oxy-playground/engine/game_object"
	"github.com/Carmen-Shannon/oxy-playground/engine/physics"
)

// Snapshot XML layout. Element order follows the scene graph: one <scene>
// root with an <object> per entity, each carrying transform elements and an
// optional <body> or <collision> volume.

type vecElem struct {
	X float32 `xml:"x,attr"`
	Y float32 `xml:"y,attr"`
	Z float32 `xml:"z,attr"`
}

type animElem struct {
	Clip  string  `xml:"clip,attr"`
	Speed float32 `xml:"speed,attr"`
}

type bodyElem struct {
	Mass       float32 `xml:"mass,attr"`
	Radius     float32 `xml:"radius,attr"`
	HalfHeight float32 `xml:"halfHeight,attr"`
	Velocity   vecElem `xml:"velocity"`
}

type boxElem struct {
	Min vecElem `xml:"min"`
	Max vecElem `xml:"max"`
}

type objectElem struct {
	Name       string    `xml:"name,attr"`
	Model      string    `xml:"model,attr,omitempty"`
	Decorative bool      `xml:"decorative,attr,omitempty"`
	Position   vecElem   `xml:"position"`
	Rotation   vecElem   `xml:"rotation"`
	Scale      vecElem   `xml:"scale"`
	Animation  *animElem `xml:"animation"`
	Body       *bodyElem `xml:"body"`
	Collision  *boxElem  `xml:"collision"`
}

type sceneElem struct {
	XMLName xml.Name     `xml:"scene"`
	Name    string       `xml:"name,attr"`
	Objects []objectElem `xml:"object"`
}

func (s *scene) Save(path string) error {
	s.mu.RLock()
	doc := sceneElem{Name: s.name}
	for _, obj := range s.objectsLocked() {
		doc.Objects = append(doc.Objects, snapshotObject(obj))
	}
	s.mu.RUnlock()

	data, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("scene: failed to marshal snapshot: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("scene: failed to create snapshot directory: %w", err)
	}
	if err := os.WriteFile(path, append([]byte(xml.Header), data...), 0o644); err != nil {
		return fmt.Errorf("scene: failed to write snapshot: %w", err)
	}
	return nil
}

func (s *scene) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("scene: failed to read snapshot: %w", err)
	}
	var doc sceneElem
	if err := xml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("scene: failed to unmarshal snapshot: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.clearLocked()
	s.name = doc.Name
	for _, elem := range doc.Objects {
		s.addLocked(restoreObject(elem))
	}
	return nil
}

// snapshotObject converts a registry entry to its XML form.
func snapshotObject(obj game_object.GameObject) objectElem {
	px, py, pz := obj.Position()
	rx, ry, rz := obj.Rotation()
	sx, sy, sz := obj.Scale()

	elem := objectElem{
		Name:       obj.Name(),
		Model:      obj.ModelName(),
		Decorative: obj.Decorative(),
		Position:   vecElem{px, py, pz},
		Rotation:   vecElem{rx, ry, rz},
		Scale:      vecElem{sx, sy, sz},
	}

	if clip, speed := obj.Animation(); clip != "" {
		elem.Animation = &animElem{Clip: clip, Speed: speed}
	}
	if b := obj.Body(); b != nil {
		cap := b.Capsule()
		v := b.Velocity()
		elem.Body = &bodyElem{
			Mass:       b.Mass(),
			Radius:     cap.Radius,
			HalfHeight: cap.HalfHeight,
			Velocity:   vecElem{v.X(), v.Y(), v.Z()},
		}
	}
	if box := obj.StaticBox(); box != nil {
		elem.Collision = &boxElem{
			Min: vecElem{box.Min.X(), box.Min.Y(), box.Min.Z()},
			Max: vecElem{box.Max.X(), box.Max.Y(), box.Max.Z()},
		}
	}
	return elem
}

// restoreObject rebuilds a registry entry from its XML form, including its
// physics body or static collision box.
func restoreObject(elem objectElem) game_object.GameObject {
	options := []game_object.GameObjectBuilderOption{
		game_object.WithName(elem.Name),
		game_object.WithModel(elem.Model),
		game_object.WithPosition(elem.Position.X, elem.Position.Y, elem.Position.Z),
		game_object.WithRotation(elem.Rotation.X, elem.Rotation.Y, elem.Rotation.Z),
		game_object.WithScale(elem.Scale.X, elem.Scale.Y, elem.Scale.Z),
	}
	if elem.Decorative {
		options = append(options, game_object.WithDecorative())
	}
	if elem.Body != nil {
		b := physics.NewBody(
			physics.WithMass(elem.Body.Mass),
			physics.WithCapsule(elem.Body.Radius, elem.Body.HalfHeight),
			physics.WithBodyPosition(elem.Position.X, elem.Position.Y, elem.Position.Z),
		)
		b.SetVelocity(mgl32.Vec3{elem.Body.Velocity.X, elem.Body.Velocity.Y, elem.Body.Velocity.Z})
		options = append(options, game_object.WithGameObjectBody(b))
	}
	if elem.Collision != nil {
		options = append(options, game_object.WithStaticBox(physics.StaticBox{
			Name:  elem.Name,
			Min:   mgl32.Vec3{elem.Collision.Min.X, elem.Collision.Min.Y, elem.Collision.Min.Z},
			Max:   mgl32.Vec3{elem.Collision.Max.X, elem.Collision.Max.Y, elem.Collision.Max.Z},
			Layer: physics.LayerStatic,
		}))
	}

	obj := game_object.NewGameObject(options...)
	if elem.Animation != nil {
		obj.SetAnimation(elem.Animation.Clip, elem.Animation.Speed)
	}
	return obj
}
