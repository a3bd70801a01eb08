package scene

import (
	"fmt"
	"math/rand"
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Carmen-Shannon/oxy-playground/engine/game_object"
	"github.com/Carmen-Shannon/oxy-playground/engine/physics"
)

// CharacterName is the name the character rig is registered under. The rig
// is re-resolved by this name after a snapshot load.
const CharacterName = "Jack"

// obstacleSpec is the output of one generation task.
type obstacleSpec struct {
	decorative bool
	position   mgl32.Vec3
	yaw        float32
	scale      float32
}

// populateConfig holds bootstrap tuning.
type populateConfig struct {
	seed            int64
	decorativeCount int
	physicalCount   int
	areaExtent      float32
	floorExtent     float32
}

// PopulateOption is a functional option for configuring Populate.
type PopulateOption func(*populateConfig)

// WithSeed sets the random seed for obstacle placement.
//
// Parameters:
//   - seed: the random seed
//
// Returns:
//   - PopulateOption: functional option to set the seed
func WithSeed(seed int64) PopulateOption {
	return func(c *populateConfig) {
		c.seed = seed
	}
}

// WithObstacleCounts sets how many decorative and physical obstacles are
// placed.
//
// Parameters:
//   - decorative: number of decorative obstacles (no collision)
//   - physical: number of physical obstacles (static collision boxes)
//
// Returns:
//   - PopulateOption: functional option to set the counts
func WithObstacleCounts(decorative, physical int) PopulateOption {
	return func(c *populateConfig) {
		c.decorativeCount = decorative
		c.physicalCount = physical
	}
}

// WithAreaExtent sets the half-extent of the square placement area.
//
// Parameters:
//   - extent: the half-extent in world units
//
// Returns:
//   - PopulateOption: functional option to set the extent
func WithAreaExtent(extent float32) PopulateOption {
	return func(c *populateConfig) {
		c.areaExtent = extent
	}
}

// Populate performs the scene's one-time construction: the floor slab,
// randomly placed decorative and physical obstacles, and the character rig.
// Obstacle generation runs on a worker pool; placement is deterministic for
// a given seed. Returns the character object.
//
// Parameters:
//   - s: the scene to populate
//   - options: functional options to tune the population
//
// Returns:
//   - game_object.GameObject: the character rig object
func Populate(s Scene, options ...PopulateOption) game_object.GameObject {
	cfg := &populateConfig{
		seed:            time.Now().UnixNano(),
		decorativeCount: 60,
		physicalCount:   20,
		areaExtent:      45,
		floorExtent:     50,
	}
	for _, option := range options {
		option(cfg)
	}

	// Floor slab.
	s.Add(game_object.NewGameObject(
		game_object.WithName("floor"),
		game_object.WithModel("floor"),
		game_object.WithPosition(0, -0.25, 0),
		game_object.WithScale(cfg.floorExtent*2, 0.5, cfg.floorExtent*2),
		game_object.WithStaticBox(physics.StaticBox{
			Name:  "floor",
			Min:   mgl32.Vec3{-cfg.floorExtent, -0.5, -cfg.floorExtent},
			Max:   mgl32.Vec3{cfg.floorExtent, 0, cfg.floorExtent},
			Layer: physics.LayerStatic,
		}),
	))

	// Obstacle generation on the worker pool. Each task owns its result slot
	// and a seed-derived source, so placement is deterministic regardless of
	// worker scheduling.
	total := cfg.decorativeCount + cfg.physicalCount
	specs := make([]obstacleSpec, total)
	pool := worker.NewDynamicWorkerPool(max(runtime.NumCPU()-1, 1), 256, 1*time.Second)

	var wg sync.WaitGroup
	for i := 0; i < total; i++ {
		wg.Add(1)
		idx := i
		pool.SubmitTask(worker.Task{
			ID: idx,
			Do: func() (any, error) {
				defer wg.Done()
				rng := rand.New(rand.NewSource(cfg.seed + int64(idx)))
				specs[idx] = obstacleSpec{
					decorative: idx < cfg.decorativeCount,
					position: mgl32.Vec3{
						(rng.Float32()*2 - 1) * cfg.areaExtent,
						0,
						(rng.Float32()*2 - 1) * cfg.areaExtent,
					},
					yaw:   rng.Float32() * 360,
					scale: 0.5 + rng.Float32()*2,
				}
				return nil, nil
			},
		})
	}
	wg.Wait()

	for i, spec := range specs {
		if spec.decorative {
			s.Add(game_object.NewGameObject(
				game_object.WithName(fmt.Sprintf("mushroom-%03d", i)),
				game_object.WithModel("mushroom"),
				game_object.WithDecorative(),
				game_object.WithPosition(spec.position.X(), spec.position.Y(), spec.position.Z()),
				game_object.WithRotation(0, spec.yaw, 0),
				game_object.WithScale(spec.scale, spec.scale, spec.scale),
			))
			continue
		}

		half := spec.scale / 2
		s.Add(game_object.NewGameObject(
			game_object.WithName(fmt.Sprintf("box-%03d", i)),
			game_object.WithModel("box"),
			game_object.WithPosition(spec.position.X(), half, spec.position.Z()),
			game_object.WithRotation(0, spec.yaw, 0),
			game_object.WithScale(spec.scale, spec.scale, spec.scale),
			game_object.WithStaticBox(physics.StaticBox{
				Name:  fmt.Sprintf("box-%03d", i),
				Min:   mgl32.Vec3{spec.position.X() - half, 0, spec.position.Z() - half},
				Max:   mgl32.Vec3{spec.position.X() + half, spec.scale, spec.position.Z() + half},
				Layer: physics.LayerStatic,
			}),
		))
	}

	// Character rig: capsule collider, dynamic body with rotation locked so
	// orientation is driven only by game logic.
	body := physics.NewBody(
		physics.WithMass(1),
		physics.WithCapsule(0.35, 0.9),
		physics.WithBodyPosition(0, 0.9, 0),
		physics.WithLockedRotation(true),
	)
	jack := game_object.NewGameObject(
		game_object.WithName(CharacterName),
		game_object.WithModel("jack"),
		game_object.WithGameObjectBody(body),
	)
	jack.SetAnimation("idle", 1)
	s.Add(jack)

	return jack
}
