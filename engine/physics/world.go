package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// world implements the World interface.
// Owned by the simulation tick; Step and all mutators must run on the
// simulation goroutine.
type world struct {
	gravity    mgl32.Vec3
	floorLevel float32

	bodies  []*body
	statics []StaticBox

	preStep func(dt float32)
}

// World steps dynamic bodies against static scene geometry.
// The step order is fixed: pre-step callback, impulse and gravity
// integration, position integration, contact generation and resolution.
// Contact callbacks registered on bodies fire during resolution.
type World interface {
	// AddBody adds a dynamic body to the world.
	//
	// Parameters:
	//   - b: the body to add (must have been created by NewBody)
	AddBody(b Body)

	// RemoveBody removes a dynamic body from the world.
	//
	// Parameters:
	//   - b: the body to remove
	RemoveBody(b Body)

	// AddStatic adds a static collision box to the world.
	//
	// Parameters:
	//   - box: the static box to add
	AddStatic(box StaticBox)

	// Statics returns the world's static collision boxes.
	// The returned slice is the world's own; callers must not mutate it.
	//
	// Returns:
	//   - []StaticBox: the static boxes
	Statics() []StaticBox

	// ClearStatics removes all static collision boxes.
	ClearStatics()

	// SetPreStepCallback registers the function called at the start of every
	// Step, before integration. Force and impulse application belongs here.
	//
	// Parameters:
	//   - callback: function receiving the step delta time, or nil to disable
	SetPreStepCallback(callback func(dt float32))

	// Step advances the simulation by dt seconds.
	//
	// Parameters:
	//   - dt: the step delta time in seconds
	Step(dt float32)

	// Raycast finds the nearest static intersection along a ray.
	// The direction need not be normalized. Only boxes whose layer intersects
	// mask are considered; the ground plane counts as LayerStatic.
	//
	// Parameters:
	//   - origin: the ray origin in world space
	//   - dir: the ray direction
	//   - maxDist: the maximum hit distance
	//   - mask: collision layer mask to test against
	//
	// Returns:
	//   - RayHit: the nearest hit (zero value if none)
	//   - bool: true if a hit was found within maxDist
	Raycast(origin, dir mgl32.Vec3, maxDist float32, mask uint32) (RayHit, bool)

	// Gravity returns the world gravity vector.
	//
	// Returns:
	//   - mgl32.Vec3: gravity in units per second squared
	Gravity() mgl32.Vec3

	// FloorLevel returns the Y level of the always-present ground plane.
	//
	// Returns:
	//   - float32: the floor level
	FloorLevel() float32
}

var _ World = &world{}

// NewWorld creates a new World configured with the given options.
// Defaults: gravity (0, -9.81, 0), floor level 0.
//
// Parameters:
//   - options: functional options to configure the world
//
// Returns:
//   - World: the newly created world
func NewWorld(options ...WorldBuilderOption) World {
	w := &world{
		gravity: mgl32.Vec3{0, -9.81, 0},
	}
	for _, option := range options {
		option(w)
	}
	return w
}

func (w *world) AddBody(b Body) {
	if impl, ok := b.(*body); ok {
		w.bodies = append(w.bodies, impl)
	}
}

func (w *world) RemoveBody(b Body) {
	for i, existing := range w.bodies {
		if Body(existing) == b {
			w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
			return
		}
	}
}

func (w *world) AddStatic(box StaticBox) {
	w.statics = append(w.statics, box)
}

func (w *world) Statics() []StaticBox {
	return w.statics
}

func (w *world) ClearStatics() {
	w.statics = nil
}

func (w *world) SetPreStepCallback(callback func(dt float32)) {
	w.preStep = callback
}

func (w *world) Gravity() mgl32.Vec3 {
	return w.gravity
}

func (w *world) FloorLevel() float32 {
	return w.floorLevel
}

func (w *world) Step(dt float32) {
	if dt <= 0 {
		return
	}

	if w.preStep != nil {
		w.preStep(dt)
	}

	for _, b := range w.bodies {
		// Consume accumulated impulses, then integrate gravity and position.
		v := b.velocity.Add(b.impulse.Mul(1 / b.mass))
		b.impulse = mgl32.Vec3{}
		v = v.Add(w.gravity.Mul(dt))
		b.velocity = v
		b.position = b.position.Add(v.Mul(dt))

		w.collide(b)
	}
}

// collide resolves the body's capsule against the ground plane and every
// static box, correcting position, removing velocity into the surface, and
// firing the body's contact callback once per contact.
func (w *world) collide(b *body) {
	cap := b.capsule

	// Ground plane.
	bottom := b.position.Y() - cap.HalfHeight
	if bottom < w.floorLevel {
		b.position = mgl32.Vec3{b.position.X(), w.floorLevel + cap.HalfHeight, b.position.Z()}
		if b.velocity.Y() < 0 {
			b.velocity = mgl32.Vec3{b.velocity.X(), 0, b.velocity.Z()}
		}
		w.emitContact(b, Contact{
			Body:   b,
			Point:  mgl32.Vec3{b.position.X(), w.floorLevel, b.position.Z()},
			Normal: mgl32.Vec3{0, 1, 0},
		})
	}

	// Static boxes. The upright capsule is approximated by its bounding box
	// for overlap tests; the push-out happens along the axis of least
	// penetration, which keeps landings on box tops stable.
	half := mgl32.Vec3{cap.Radius, cap.HalfHeight, cap.Radius}
	for i := range w.statics {
		box := &w.statics[i]
		if box.Layer&LayerStatic == 0 {
			continue
		}

		overlapX := overlap1D(b.position.X(), half.X(), box.Min.X(), box.Max.X())
		overlapY := overlap1D(b.position.Y(), half.Y(), box.Min.Y(), box.Max.Y())
		overlapZ := overlap1D(b.position.Z(), half.Z(), box.Min.Z(), box.Max.Z())
		if overlapX <= 0 || overlapY <= 0 || overlapZ <= 0 {
			continue
		}

		var normal mgl32.Vec3
		var depth float32
		boxCenter := box.Min.Add(box.Max).Mul(0.5)
		switch {
		case overlapY <= overlapX && overlapY <= overlapZ:
			depth = overlapY
			if b.position.Y() >= boxCenter.Y() {
				normal = mgl32.Vec3{0, 1, 0}
			} else {
				normal = mgl32.Vec3{0, -1, 0}
			}
		case overlapX <= overlapZ:
			depth = overlapX
			if b.position.X() >= boxCenter.X() {
				normal = mgl32.Vec3{1, 0, 0}
			} else {
				normal = mgl32.Vec3{-1, 0, 0}
			}
		default:
			depth = overlapZ
			if b.position.Z() >= boxCenter.Z() {
				normal = mgl32.Vec3{0, 0, 1}
			} else {
				normal = mgl32.Vec3{0, 0, -1}
			}
		}

		b.position = b.position.Add(normal.Mul(depth))

		// Remove velocity into the surface.
		vn := b.velocity.Dot(normal)
		if vn < 0 {
			b.velocity = b.velocity.Sub(normal.Mul(vn))
		}

		// Contact point sits on the capsule surface toward the box.
		point := b.position.Sub(normal.Mul(half.Dot(absVec(normal))))
		w.emitContact(b, Contact{Body: b, Point: point, Normal: normal})
	}
}

func (w *world) emitContact(b *body, c Contact) {
	if b.onContact != nil {
		b.onContact(c)
	}
}

func (w *world) Raycast(origin, dir mgl32.Vec3, maxDist float32, mask uint32) (RayHit, bool) {
	if dir.Len() == 0 || maxDist <= 0 {
		return RayHit{}, false
	}
	d := dir.Normalize()

	best := RayHit{Distance: maxDist}
	found := false

	// Ground plane counts as static geometry.
	if mask&LayerStatic != 0 && d.Y() < 0 {
		t := (w.floorLevel - origin.Y()) / d.Y()
		if t >= 0 && t < best.Distance {
			best = RayHit{
				Point:    origin.Add(d.Mul(t)),
				Normal:   mgl32.Vec3{0, 1, 0},
				Distance: t,
				Name:     "floor",
			}
			found = true
		}
	}

	for i := range w.statics {
		box := &w.statics[i]
		if box.Layer&mask == 0 {
			continue
		}
		if t, normal, ok := rayBox(origin, d, box.Min, box.Max); ok && t < best.Distance {
			best = RayHit{
				Point:    origin.Add(d.Mul(t)),
				Normal:   normal,
				Distance: t,
				Name:     box.Name,
			}
			found = true
		}
	}

	return best, found
}

// overlap1D returns the penetration depth of a centered extent against an
// interval on one axis, or a non-positive value if separated.
func overlap1D(center, half, min, max float32) float32 {
	lo := center - half
	hi := center + half
	if hi < min || lo > max {
		return 0
	}
	left := hi - min
	right := max - lo
	if left < right {
		return left
	}
	return right
}

// rayBox is the slab-method ray/AABB intersection. Returns the entry distance
// and entry-face normal. Rays starting inside the box do not hit.
func rayBox(origin, d, min, max mgl32.Vec3) (float32, mgl32.Vec3, bool) {
	tmin := float32(0)
	tmax := float32(math.MaxFloat32)
	var normal mgl32.Vec3

	for axis := 0; axis < 3; axis++ {
		o := origin[axis]
		dd := d[axis]
		lo := min[axis]
		hi := max[axis]

		if dd == 0 {
			if o < lo || o > hi {
				return 0, mgl32.Vec3{}, false
			}
			continue
		}

		t1 := (lo - o) / dd
		t2 := (hi - o) / dd
		axisNormal := mgl32.Vec3{}
		if t1 > t2 {
			t1, t2 = t2, t1
			axisNormal[axis] = 1
		} else {
			axisNormal[axis] = -1
		}
		if t1 > tmin {
			tmin = t1
			normal = axisNormal
		}
		if t2 < tmax {
			tmax = t2
		}
		if tmin > tmax {
			return 0, mgl32.Vec3{}, false
		}
	}

	if tmin <= 0 {
		return 0, mgl32.Vec3{}, false
	}
	return tmin, normal, true
}

func absVec(v mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{
		float32(math.Abs(float64(v.X()))),
		float32(math.Abs(float64(v.Y()))),
		float32(math.Abs(float64(v.Z()))),
	}
}
