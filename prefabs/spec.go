package prefabs

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

// SceneFile is the embedded default scene.
const SceneFile = "scene.yaml"

const defaultTickMS = 16

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type SceneSpec struct {
	Name       string        `yaml:"name"`
	Screen     ScreenSpec    `yaml:"screen"`
	TickMS     int           `yaml:"tick_ms"`
	ClearColor YAMLColor     `yaml:"clear_color"`
	Background []LayerSpec   `yaml:"background"`
	Foreground []LayerSpec   `yaml:"foreground"`
	Ship       ShipSpec      `yaml:"ship"`
	Collision  CollisionSpec `yaml:"collision"`
}

type ScreenSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// LayerSpec is one parallax layer. Scroll values are pixels per tick.
type LayerSpec struct {
	Image   string  `yaml:"image"`
	ScrollX float64 `yaml:"scroll_x"`
	ScrollY float64 `yaml:"scroll_y"`
}

type ShipSpec struct {
	Image  string  `yaml:"image"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	// X/Y of 0 spawn at the screen center.
	X          float64 `yaml:"x"`
	Y          float64 `yaml:"y"`
	HeadingDeg float64 `yaml:"heading_deg"`
	Speed      float64 `yaml:"speed"`
	Friction   float64 `yaml:"friction"`
	Gravity    float64 `yaml:"gravity"`
	ThrustX    float64 `yaml:"thrust_x"`
	ThrustY    float64 `yaml:"thrust_y"`
	// TurnRate is radians per tick while turning.
	TurnRate float64 `yaml:"turn_rate"`
	Accel    float64 `yaml:"accel"`
	Brake    float64 `yaml:"brake"`
}

type CollisionSpec struct {
	Policy     string  `yaml:"policy"`
	HalfExtent float64 `yaml:"half_extent"`
	// OriginX/OriginY are where the recycle policy respawns the ship.
	OriginX float64 `yaml:"origin_x"`
	OriginY float64 `yaml:"origin_y"`
}

// LoadScene loads the scene at path, or the default scene when path is empty.
func LoadScene(path string) (SceneSpec, error) {
	var (
		spec SceneSpec
		err  error
	)
	if path == "" {
		spec, err = LoadSpec[SceneSpec](SceneFile)
		if err != nil {
			return SceneSpec{}, err
		}
	} else {
		data, rerr := os.ReadFile(path)
		if rerr != nil {
			return SceneSpec{}, fmt.Errorf("prefabs: load %s: %w", path, rerr)
		}
		if uerr := yaml.Unmarshal(data, &spec); uerr != nil {
			return SceneSpec{}, fmt.Errorf("prefabs: unmarshal %s: %w", path, uerr)
		}
	}

	spec.applyDefaults()
	if err := spec.Validate(); err != nil {
		return SceneSpec{}, err
	}
	return spec, nil
}

func (s *SceneSpec) applyDefaults() {
	if s.TickMS == 0 {
		s.TickMS = defaultTickMS
	}
	if s.Ship.Friction == 0 {
		s.Ship.Friction = 1
	}
	if s.Collision.HalfExtent == 0 {
		s.Collision.HalfExtent = s.Ship.Width / 2
	}
	if s.Collision.OriginX == 0 && s.Collision.OriginY == 0 {
		s.Collision.OriginX = s.Screen.Width / 2
		s.Collision.OriginY = s.Screen.Height / 2
	}
}

// Validate reports the first value the scene can't run with.
func (s SceneSpec) Validate() error {
	switch {
	case s.Screen.Width <= 0 || s.Screen.Height <= 0:
		return fmt.Errorf("prefabs: scene %q: screen must be positive, got %vx%v", s.Name, s.Screen.Width, s.Screen.Height)
	case s.TickMS < 0:
		return fmt.Errorf("prefabs: scene %q: tick_ms must be positive, got %d", s.Name, s.TickMS)
	case s.Ship.Image == "":
		return fmt.Errorf("prefabs: scene %q: ship.image is required", s.Name)
	case s.Ship.Width <= 0 || s.Ship.Height <= 0:
		return fmt.Errorf("prefabs: scene %q: ship size must be positive, got %vx%v", s.Name, s.Ship.Width, s.Ship.Height)
	case s.Ship.Friction <= 0 || s.Ship.Friction > 1:
		return fmt.Errorf("prefabs: scene %q: ship.friction must be in (0, 1], got %v", s.Name, s.Ship.Friction)
	case s.Ship.Gravity < 0:
		return fmt.Errorf("prefabs: scene %q: ship.gravity must not be negative, got %v", s.Name, s.Ship.Gravity)
	case s.Ship.Brake < 0 || s.Ship.Brake > 1:
		return fmt.Errorf("prefabs: scene %q: ship.brake must be in [0, 1], got %v", s.Name, s.Ship.Brake)
	case s.Collision.HalfExtent < 0:
		return fmt.Errorf("prefabs: scene %q: collision.half_extent must not be negative, got %v", s.Name, s.Collision.HalfExtent)
	}
	for i, l := range append(append([]LayerSpec{}, s.Background...), s.Foreground...) {
		if l.Image == "" {
			return fmt.Errorf("prefabs: scene %q: layer %d has no image", s.Name, i)
		}
	}
	return nil
}

// TPS converts the tick length to ebiten ticks per second.
func (s SceneSpec) TPS() int {
	if s.TickMS <= 0 {
		return 1000 / defaultTickMS
	}
	tps := 1000 / s.TickMS
	if tps < 1 {
		return 1
	}
	return tps
}

// YAMLColor accepts "#rrggbb", "#rrggbbaa" or an SVG color name.
type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	if named, ok := colornames.Map[strings.ToLower(strings.TrimSpace(value.Value))]; ok {
		c.Color = named
		return nil
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
