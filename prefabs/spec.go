package prefabs

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

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

// GameSpec is game.yaml: window, level list and every gameplay constant.
type GameSpec struct {
	Title  string     `yaml:"title"`
	Window WindowSpec `yaml:"window"`
	TPS    int        `yaml:"tps"`
	Strict bool       `yaml:"strict"`

	// Layers are .map files loaded in order; later layers draw on top.
	Layers []LayerSpec `yaml:"layers"`

	Physics PhysicsSpec     `yaml:"physics"`
	Control ControlSpec     `yaml:"control"`
	Score   ScoreSpec       `yaml:"score"`
	Camera  CameraTuneSpec  `yaml:"camera"`
	Spawner SpawnerSpec     `yaml:"spawner"`
	Names   NamesSpec       `yaml:"names"`
	Sounds  SoundsSpec      `yaml:"sounds"`
	Stars   []PlacementSpec `yaml:"stars"`
}

type WindowSpec struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type LayerSpec struct {
	File string `yaml:"file"`
	// NonCollidable lists tile symbols that never get a collision box.
	NonCollidable string `yaml:"non_collidable"`
}

type PhysicsSpec struct {
	Gravity               float64 `yaml:"gravity"`
	WallSlideGravityScale float64 `yaml:"wall_slide_gravity_scale"`
	BounceDamping         float64 `yaml:"bounce_damping"`
	SettleSpeed           float64 `yaml:"settle_speed"`
	WallSlideMaxFall      float64 `yaml:"wall_slide_max_fall"`
}

type ControlSpec struct {
	JumpVelocity float64 `yaml:"jump_velocity"`
	WallJumpX    float64 `yaml:"wall_jump_x"`
	WallJumpY    float64 `yaml:"wall_jump_y"`
	FastFall     float64 `yaml:"fast_fall"`
	AirControl   float64 `yaml:"air_control"`
	GroundDecel  float64 `yaml:"ground_decel"`
	AirDecel     float64 `yaml:"air_decel"`
}

type ScoreSpec struct {
	PickupPoints int `yaml:"pickup_points"`
	Cap          int `yaml:"cap"`
}

type CameraTuneSpec struct {
	OuterEdge    float64 `yaml:"outer_edge"`
	TrackingZone float64 `yaml:"tracking_zone"`
	Tween        float64 `yaml:"tween"`
}

type SpawnerSpec struct {
	Symbol   string  `yaml:"symbol"`
	Entity   string  `yaml:"entity"`
	Interval float64 `yaml:"interval"`
	Max      int     `yaml:"max"`
	Speed    float64 `yaml:"speed"`
	// VelocityScript is a tengo script under scripts/. Empty means uniform
	// random velocity.
	VelocityScript string `yaml:"velocity_script"`
	Seed           uint64 `yaml:"seed"`
}

type NamesSpec struct {
	Camera      string `yaml:"camera"`
	Collectible string `yaml:"collectible"`
}

type SoundsSpec struct {
	Jump   string `yaml:"jump"`
	Pickup string `yaml:"pickup"`
}

// PlacementSpec puts a prefab at a fixed world position.
type PlacementSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

var ErrInvalidGameSpec = errors.New("prefabs: invalid game spec")

func LoadGameSpec() (*GameSpec, error) {
	spec, err := LoadSpec[GameSpec]("game.yaml")
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

func (s *GameSpec) Validate() error {
	switch {
	case s.Window.Width <= 0 || s.Window.Height <= 0:
		return fmt.Errorf("%w: window %dx%d", ErrInvalidGameSpec, s.Window.Width, s.Window.Height)
	case s.TPS <= 0:
		return fmt.Errorf("%w: tps %d", ErrInvalidGameSpec, s.TPS)
	case s.Spawner.Interval <= 0:
		return fmt.Errorf("%w: spawner interval %v", ErrInvalidGameSpec, s.Spawner.Interval)
	case s.Spawner.Max < -1:
		return fmt.Errorf("%w: spawner max %d", ErrInvalidGameSpec, s.Spawner.Max)
	case s.Score.Cap < 0:
		return fmt.Errorf("%w: score cap %d", ErrInvalidGameSpec, s.Score.Cap)
	case s.Names.Camera == "" || s.Names.Collectible == "":
		return fmt.Errorf("%w: camera and collectible names are required", ErrInvalidGameSpec)
	}
	for _, layer := range s.Layers {
		if layer.File == "" {
			return fmt.Errorf("%w: layer without file", ErrInvalidGameSpec)
		}
	}
	return nil
}
