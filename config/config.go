// Package config loads playground settings from a YAML file, applying
// defaults for anything the file omits.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds every tunable the playground reads at startup.
type Config struct {
	// Debug enables debug-level logging.
	Debug bool `yaml:"debug"`

	// DataDir overrides the platform data directory when non-empty.
	DataDir string `yaml:"dataDir"`

	Engine    EngineConfig    `yaml:"engine"`
	Window    WindowConfig    `yaml:"window"`
	Character CharacterConfig `yaml:"character"`
	Camera    CameraConfig    `yaml:"camera"`
	Input     InputConfig     `yaml:"input"`
	Scene     SceneConfig     `yaml:"scene"`
}

// EngineConfig controls the simulation and render loops.
type EngineConfig struct {
	TickRate         float64 `yaml:"tickRate"`
	RenderFrameLimit float64 `yaml:"renderFrameLimit"`
	Profiling        bool    `yaml:"profiling"`
}

// WindowConfig controls the desktop viewport.
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// CharacterConfig controls movement tuning.
type CharacterConfig struct {
	MoveForce    float32 `yaml:"moveForce"`
	AirMoveForce float32 `yaml:"airMoveForce"`
	BrakeForce   float32 `yaml:"brakeForce"`
	JumpImpulse  float32 `yaml:"jumpImpulse"`
}

// CameraConfig controls the camera rig.
type CameraConfig struct {
	Distance    float32 `yaml:"distance"`
	MinDistance float32 `yaml:"minDistance"`
	MaxDistance float32 `yaml:"maxDistance"`
	AimHeight   float32 `yaml:"aimHeight"`
}

// InputConfig controls input sensitivity.
type InputConfig struct {
	MouseSensitivity  float32 `yaml:"mouseSensitivity"`
	TouchSensitivity  float32 `yaml:"touchSensitivity"`
	PinchScale        float32 `yaml:"pinchScale"`
	JoystickThreshold float32 `yaml:"joystickThreshold"`
}

// SceneConfig controls procedural scene population.
type SceneConfig struct {
	Seed       int64   `yaml:"seed"`
	Mushrooms  int     `yaml:"mushrooms"`
	Boxes      int     `yaml:"boxes"`
	AreaExtent float32 `yaml:"areaExtent"`
}

// Default returns the configuration used when no file is present.
//
// Returns:
//   - Config: the default configuration
func Default() Config {
	return Config{
		Engine: EngineConfig{
			TickRate: 60,
		},
		Window: WindowConfig{
			Title:  "Oxy Playground",
			Width:  1280,
			Height: 720,
		},
		Character: CharacterConfig{
			MoveForce:    0.8,
			AirMoveForce: 0.02,
			BrakeForce:   0.2,
			JumpImpulse:  7.0,
		},
		Camera: CameraConfig{
			Distance:    5,
			MinDistance: 1,
			MaxDistance: 20,
			AimHeight:   1.7,
		},
		Input: InputConfig{
			MouseSensitivity:  0.1,
			TouchSensitivity:  0.2,
			PinchScale:        0.01,
			JoystickThreshold: 0.5,
		},
		Scene: SceneConfig{
			Seed:       1,
			Mushrooms:  60,
			Boxes:      20,
			AreaExtent: 45,
		},
	}
}

// Load reads the YAML file at path on top of the defaults. A missing
// file is not an error; the defaults are returned unchanged.
//
// Parameters:
//   - path: path to the YAML config file
//
// Returns:
//   - Config: the merged configuration
//   - error: error if the file exists but cannot be read or parsed
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return cfg, nil
}
