package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

var (
	// ErrInvalidConfig is wrapped by every validation failure.
	ErrInvalidConfig = errors.New("invalid config")
	// ErrUnsupportedFormat is returned for config files that are neither TOML nor YAML.
	ErrUnsupportedFormat = errors.New("unsupported config format")
)

// Config describes the demo window, the camera, the highlight style and the
// objects placed in the scene.
type Config struct {
	Window    WindowConfig    `toml:"window" yaml:"window"`
	Camera    CameraConfig    `toml:"camera" yaml:"camera"`
	Highlight HighlightConfig `toml:"highlight" yaml:"highlight"`
	Picking   PickingConfig   `toml:"picking" yaml:"picking"`
	Root      TransformConfig `toml:"root" yaml:"root"`

	// Grid lays out a row of boxes on a floor. It is used only when Objects
	// is empty.
	Grid    *GridConfig    `toml:"grid,omitempty" yaml:"grid,omitempty"`
	Objects []ObjectConfig `toml:"objects,omitempty" yaml:"objects,omitempty"`
}

type WindowConfig struct {
	Width  int    `toml:"width" yaml:"width"`
	Height int    `toml:"height" yaml:"height"`
	Title  string `toml:"title" yaml:"title"`
	VSync  bool   `toml:"vsync" yaml:"vsync"`

	// FPSLimit caps the frame rate when VSync is off. Zero means uncapped.
	FPSLimit int `toml:"fps_limit" yaml:"fps_limit"`
}

type CameraConfig struct {
	Position [3]float32 `toml:"position" yaml:"position"`
	Target   [3]float32 `toml:"target" yaml:"target"`
	FOV      float32    `toml:"fov" yaml:"fov"` // vertical, degrees
	Zoom     float32    `toml:"zoom" yaml:"zoom"`
	Near     float32    `toml:"near" yaml:"near"`
	Far      float32    `toml:"far" yaml:"far"`
}

type HighlightConfig struct {
	Color     string  `toml:"color" yaml:"color"` // hex, e.g. "#ff0000"
	Intensity float32 `toml:"intensity" yaml:"intensity"`
}

type PickingConfig struct {
	FrustumCull bool `toml:"frustum_cull" yaml:"frustum_cull"`

	// SlowEventMs logs the top timings when handling one frame's pointer
	// events takes longer than this. Zero disables the report.
	SlowEventMs float64 `toml:"slow_event_ms" yaml:"slow_event_ms"`
}

// TransformConfig positions a group; Rotation is Euler degrees.
type TransformConfig struct {
	Position [3]float32 `toml:"position" yaml:"position"`
	Rotation [3]float32 `toml:"rotation" yaml:"rotation"`
}

type ObjectConfig struct {
	Name      string     `toml:"name" yaml:"name"`
	Position  [3]float32 `toml:"position" yaml:"position"`
	Rotation  [3]float32 `toml:"rotation" yaml:"rotation"`
	Size      [3]float32 `toml:"size" yaml:"size"`
	Color     string     `toml:"color" yaml:"color"`
	Clickable *bool      `toml:"clickable,omitempty" yaml:"clickable,omitempty"`
}

// IsClickable reports the clickable flag; objects without one are clickable.
func (o ObjectConfig) IsClickable() bool {
	return o.Clickable == nil || *o.Clickable
}

// Default returns the built-in demo: six boxes in two rows on a floor, seen
// from above and to the side.
func Default() *Config {
	return &Config{
		Window: WindowConfig{Width: 1280, Height: 720, Title: "pickview", VSync: true, FPSLimit: 120},
		Camera: CameraConfig{
			Position: [3]float32{24, 30, 36},
			FOV:      50,
			Zoom:     1,
			Near:     0.1,
			Far:      1000,
		},
		Highlight: HighlightConfig{Color: "#ff0000", Intensity: 0.9},
		Picking:   PickingConfig{FrustumCull: true, SlowEventMs: 4},
		Root: TransformConfig{
			Position: [3]float32{0, -5, 0},
			Rotation: [3]float32{0, -34.4, 0},
		},
		Grid: &GridConfig{Count: 6, Rows: 2, Size: 6, Color: "#0000ff", FloorColor: "#ffffff"},
	}
}

// Load reads a TOML (.toml) or YAML (.yaml, .yml) file over the defaults and
// validates the result. Unknown keys are rejected.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	// A file that lists its own objects replaces the demo layout.
	cfg.Grid = nil

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(cfg)
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(cfg)
	default:
		return nil, fmt.Errorf("load %s: %w: %q", path, ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	if len(cfg.Objects) == 0 && cfg.Grid == nil {
		cfg.Grid = Default().Grid
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks ranges, colours and object names.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return invalid("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Window.FPSLimit < 0 {
		return invalid("window fps_limit %d must not be negative", c.Window.FPSLimit)
	}
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		return invalid("camera fov %g must be in (0, 180)", c.Camera.FOV)
	}
	if c.Camera.Zoom <= 0 {
		return invalid("camera zoom %g must be positive", c.Camera.Zoom)
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		return invalid("camera near/far %g/%g must satisfy 0 < near < far", c.Camera.Near, c.Camera.Far)
	}
	if !finite3(c.Camera.Position) || !finite3(c.Camera.Target) {
		return invalid("camera position %v and target %v must be finite", c.Camera.Position, c.Camera.Target)
	}
	if c.Camera.Position == c.Camera.Target {
		return invalid("camera position equals target")
	}
	if c.Highlight.Intensity < 0 || c.Highlight.Intensity > 1 {
		return invalid("highlight intensity %g must be in [0, 1]", c.Highlight.Intensity)
	}
	if _, err := ParseColor(c.Highlight.Color); err != nil {
		return invalid("highlight color: %v", err)
	}
	if c.Picking.SlowEventMs < 0 {
		return invalid("picking slow_event_ms %g must not be negative", c.Picking.SlowEventMs)
	}
	if c.Grid != nil && len(c.Objects) == 0 {
		if err := c.Grid.validate(); err != nil {
			return err
		}
	}

	seen := make(map[string]bool, len(c.Objects))
	for i, o := range c.Objects {
		if o.Name == "" {
			return invalid("object %d has no name", i)
		}
		if seen[o.Name] {
			return invalid("duplicate object name %q", o.Name)
		}
		seen[o.Name] = true
		if o.Size[0] <= 0 || o.Size[1] <= 0 || o.Size[2] <= 0 {
			return invalid("object %q size %v must be positive", o.Name, o.Size)
		}
		if _, err := ParseColor(o.Color); err != nil {
			return invalid("object %q color: %v", o.Name, err)
		}
	}
	return nil
}

// SceneObjects returns the configured objects, or the grid layout when none
// are listed.
func (c *Config) SceneObjects() []ObjectConfig {
	if len(c.Objects) > 0 || c.Grid == nil {
		return c.Objects
	}
	return c.Grid.Objects()
}

// ParseColor converts a hex colour ("#rrggbb" or "#rgb") to RGB in [0, 1].
func ParseColor(hex string) (mgl32.Vec3, error) {
	col, err := colorful.Hex(hex)
	if err != nil {
		return mgl32.Vec3{}, err
	}
	return mgl32.Vec3{float32(col.R), float32(col.G), float32(col.B)}, nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}

func finite3(v [3]float32) bool {
	for _, f := range v {
		if math32.IsNaN(f) || math32.IsInf(f, 0) {
			return false
		}
	}
	return true
}
