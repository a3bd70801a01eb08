package scene

import (
	"sort"
	"sync"

	"github.com/Carmen-Shannon/oxy-playground/engine/camera"
	"github.com/Carmen-Shannon/oxy-playground/engine/game_object"
	"github.com/Carmen-Shannon/oxy-playground/engine/physics"
)

// Scene manages a registry of GameObjects bound to a physics World and a
// camera Rig. Objects are looked up by ID or by name; names are the stable
// key across snapshot save/load. Adding an object registers its static
// collision box or dynamic body with the world; removing it unregisters
// them. Thread-safe for concurrent access.
type Scene interface {
	// Name returns the scene's identifier.
	Name() string

	// SetName sets the scene's identifier.
	SetName(name string)

	// Active returns whether this scene is currently active for simulation.
	Active() bool

	// SetActive sets whether this scene is active for simulation.
	SetActive(active bool)

	// World returns the scene's physics world.
	World() physics.World

	// Rig returns the scene's camera rig.
	Rig() camera.Rig

	// SetRig replaces the scene's camera rig.
	//
	// Parameters:
	//   - r: the new rig
	SetRig(r camera.Rig)

	// Add adds a GameObject to the scene, registering its static collision
	// box or dynamic body with the physics world.
	//
	// Parameters:
	//   - obj: the GameObject to add
	//
	// Returns:
	//   - uint64: the assigned object ID
	Add(obj game_object.GameObject) uint64

	// Get retrieves a GameObject by its ID.
	// Returns nil if not found.
	//
	// Parameters:
	//   - id: the object's unique ID
	//
	// Returns:
	//   - game_object.GameObject: the object or nil
	Get(id uint64) game_object.GameObject

	// GetByName retrieves a GameObject by its name.
	// Returns nil if not found.
	//
	// Parameters:
	//   - name: the object's name
	//
	// Returns:
	//   - game_object.GameObject: the object or nil
	GetByName(name string) game_object.GameObject

	// Remove removes a GameObject from the registry by ID and unregisters
	// its collision volumes from the world.
	//
	// Parameters:
	//   - id: the object's unique ID
	Remove(id uint64)

	// Clear removes all objects from the scene and all collision volumes
	// from the world.
	Clear()

	// Count returns the number of objects in the scene's registry.
	//
	// Returns:
	//   - int: the object count
	Count() int

	// Objects returns the scene's objects in ascending ID order.
	//
	// Returns:
	//   - []game_object.GameObject: the objects
	Objects() []game_object.GameObject

	// Save writes an XML snapshot of the scene graph to the given path.
	//
	// Parameters:
	//   - path: the snapshot file path
	//
	// Returns:
	//   - error: error if marshaling or writing fails
	Save(path string) error

	// Load replaces the scene contents from an XML snapshot. All objects and
	// collision volumes are rebuilt; callers holding object or body
	// references must re-resolve them by name afterward.
	//
	// Parameters:
	//   - path: the snapshot file path
	//
	// Returns:
	//   - error: error if reading or unmarshaling fails
	Load(path string) error
}

type scene struct {
	mu *sync.RWMutex

	name   string
	active bool

	registry map[uint64]game_object.GameObject
	byName   map[string]game_object.GameObject
	nextID   uint64

	world physics.World
	rig   camera.Rig
}

var _ Scene = &scene{}

// NewScene creates a new Scene bound to a physics world. The world is
// required; NewScene panics if it is nil.
//
// Parameters:
//   - name: the name of the scene
//   - world: the physics world to attach (must not be nil)
//   - options: functional options to further configure the scene
//
// Returns:
//   - Scene: the newly created scene
func NewScene(name string, world physics.World, options ...SceneBuilderOption) Scene {
	if world == nil {
		panic("scene: NewScene requires a non-nil World")
	}

	s := &scene{
		mu:       &sync.RWMutex{},
		name:     name,
		registry: make(map[uint64]game_object.GameObject),
		byName:   make(map[string]game_object.GameObject),
		nextID:   1,
		world:    world,
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *scene) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.name
}

func (s *scene) SetName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.name = name
}

func (s *scene) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

func (s *scene) SetActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = active
}

func (s *scene) World() physics.World {
	return s.world
}

func (s *scene) Rig() camera.Rig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rig
}

func (s *scene) SetRig(r camera.Rig) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rig = r
}

func (s *scene) Add(obj game_object.GameObject) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addLocked(obj)
}

// addLocked registers the object and its collision volumes. Caller must hold
// the write lock.
func (s *scene) addLocked(obj game_object.GameObject) uint64 {
	id := s.nextID
	s.nextID++
	obj.SetID(id)

	s.registry[id] = obj
	if obj.Name() != "" {
		s.byName[obj.Name()] = obj
	}

	if box := obj.StaticBox(); box != nil {
		s.world.AddStatic(*box)
	}
	if b := obj.Body(); b != nil {
		s.world.AddBody(b)
	}
	return id
}

func (s *scene) Get(id uint64) game_object.GameObject {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.registry[id]
}

func (s *scene) GetByName(name string) game_object.GameObject {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.byName[name]
}

func (s *scene) Remove(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	obj, ok := s.registry[id]
	if !ok {
		return
	}
	delete(s.registry, id)
	if obj.Name() != "" {
		delete(s.byName, obj.Name())
	}
	if b := obj.Body(); b != nil {
		s.world.RemoveBody(b)
	}
	if obj.StaticBox() != nil {
		s.rebuildStaticsLocked()
	}
}

func (s *scene) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearLocked()
}

// clearLocked removes every object and collision volume. Caller must hold
// the write lock.
func (s *scene) clearLocked() {
	for _, obj := range s.registry {
		if b := obj.Body(); b != nil {
			s.world.RemoveBody(b)
		}
	}
	s.world.ClearStatics()
	s.registry = make(map[uint64]game_object.GameObject)
	s.byName = make(map[string]game_object.GameObject)
	s.nextID = 1
}

// rebuildStaticsLocked re-registers every remaining static box with the
// world. Caller must hold the write lock.
func (s *scene) rebuildStaticsLocked() {
	s.world.ClearStatics()
	for _, obj := range s.registry {
		if box := obj.StaticBox(); box != nil {
			s.world.AddStatic(*box)
		}
	}
}

func (s *scene) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.registry)
}

func (s *scene) Objects() []game_object.GameObject {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.objectsLocked()
}

// objectsLocked returns the registry in ascending ID order. Caller must hold
// at least the read lock.
func (s *scene) objectsLocked() []game_object.GameObject {
	objs := make([]game_object.GameObject, 0, len(s.registry))
	for _, obj := range s.registry {
		objs = append(objs, obj)
	}
	sort.Slice(objs, func(i, j int) bool { return objs[i].ID() < objs[j].ID() })
	return objs
}
