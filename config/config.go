// Package config loads the runtime parameters a render needs: frame and
// tile dimensions, worker count, vertical field of view, the output path,
// and a declarative description of the scene to render. Values come from an
// optional TOML file, overridable by CLI flags.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/Carmen-Shannon/oxy-trace/common"
)

// ObjectConfig describes one scene object: either a reference to an OBJ
// asset on disk or an inline sphere, plus its world transform.
type ObjectConfig struct {
	ObjPath     string     `toml:"obj_path,omitempty"`
	Sphere      *SphereConfig `toml:"sphere,omitempty"`
	Scale       [3]float32 `toml:"scale"`
	RotationDeg [3]float32 `toml:"rotation_deg"`
	Translation [3]float32 `toml:"translation"`
}

// SphereConfig describes an inline sphere primitive.
type SphereConfig struct {
	Center [3]float32 `toml:"center"`
	Radius float32    `toml:"radius"`
}

// LightConfig describes one point light.
type LightConfig struct {
	Position  [3]float32 `toml:"position"`
	Intensity float32    `toml:"intensity"`
}

// SceneConfig is the declarative scene description: what to populate a
// render with. Pure plumbing onto scene.SceneObject/scene.Light
// construction; the core renderer never sees this type.
type SceneConfig struct {
	Objects []ObjectConfig `toml:"objects"`
	Lights  []LightConfig  `toml:"lights"`
}

// Config is the full set of runtime parameters for a render.
type Config struct {
	FrameWidth     int    `toml:"frame_width"`
	FrameHeight    int    `toml:"frame_height"`
	TileWidth      int    `toml:"tile_width"`
	TileHeight     int    `toml:"tile_height"`
	NumWorkers     int    `toml:"num_workers"`
	FovVertDegrees float32 `toml:"fov_vert_degrees"`
	OutputPath     string `toml:"output_path"`
	// RecursionDepth is reserved for a future recursive reflection pass.
	RecursionDepth int `toml:"recursion_depth"`

	Scene SceneConfig `toml:"scene"`
}

// ErrInvalidConfig wraps a fatal, pre-render configuration failure: a
// non-positive dimension, zero workers, or similar.
type ErrInvalidConfig struct {
	Reason string
}

func (e *ErrInvalidConfig) Error() string {
	return fmt.Sprintf("config: invalid configuration: %s", e.Reason)
}

// Default returns a Config with sensible defaults for every field, the same
// way the teacher lineage's builder constructors seed their zero value
// before options run.
func Default() Config {
	return Config{
		FrameWidth:     640,
		FrameHeight:    640,
		TileWidth:      32,
		TileHeight:     32,
		NumWorkers:     4,
		FovVertDegrees: 35,
		OutputPath:     "render.png",
		RecursionDepth: 0,
	}
}

// Load reads a TOML config file at path and merges it onto Default(),
// returning the defaults unchanged if path is empty.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the invariants Load and CLI overrides can't guarantee on
// their own: positive frame and tile dimensions, at least one worker.
func (c Config) Validate() error {
	if c.FrameWidth <= 0 || c.FrameHeight <= 0 {
		return &ErrInvalidConfig{Reason: "frame dimensions must be positive"}
	}
	if c.TileWidth <= 0 || c.TileHeight <= 0 {
		return &ErrInvalidConfig{Reason: "tile dimensions must be positive"}
	}
	if c.NumWorkers <= 0 {
		return &ErrInvalidConfig{Reason: "num_workers must be positive"}
	}
	if common.Coalesce(c.OutputPath) == "" {
		return &ErrInvalidConfig{Reason: "output_path must not be empty"}
	}
	return nil
}
