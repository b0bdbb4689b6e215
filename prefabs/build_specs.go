package prefabs

import "gopkg.in/yaml.v3"

// EntityBuildSpec is an entity prefab. Components are keyed by registered
// component type name and decoded lazily by the builder for that type.
type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

func LoadEntityBuildSpec(filename string) (EntityBuildSpec, error) {
	return LoadSpec[EntityBuildSpec](filename)
}

func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

type LocationComponentSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type MovementComponentSpec struct {
	VX       float64 `yaml:"vx"`
	VY       float64 `yaml:"vy"`
	MaxSpeed float64 `yaml:"max_speed"`
}

type AccelerationComponentSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// RectSpec is a rectangle by top-left corner and size.
type RectSpec struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// SpriteComponentSpec picks a frame from a sheet. Bounds is where the frame
// is drawn relative to the entity location; a zero Bounds sits the frame on
// the location as its bottom-left corner.
type SpriteComponentSpec struct {
	Sheet       string   `yaml:"sheet"`
	Frame       RectSpec `yaml:"frame"`
	Bounds      RectSpec `yaml:"bounds"`
	ScreenSpace bool     `yaml:"screen_space"`
}

// CollisionComponentSpec is a box relative to the entity location. A zero
// Box copies the sprite bounds.
type CollisionComponentSpec struct {
	Box    RectSpec `yaml:"box"`
	Static bool     `yaml:"static"`
}

// ScoreComponentSpec builds the digit entities shown for the score. Digit i
// uses the frame at First offset by Step*i.
type ScoreComponentSpec struct {
	Sheet   string   `yaml:"sheet"`
	First   RectSpec `yaml:"first"`
	StepX   float64  `yaml:"step_x"`
	StepY   float64  `yaml:"step_y"`
	Shown   int      `yaml:"shown"`
	Spacing float64  `yaml:"spacing"`
	X       float64  `yaml:"x"`
	Y       float64  `yaml:"y"`
}

type CameraComponentSpec struct {
	X             float64 `yaml:"x"`
	Y             float64 `yaml:"y"`
	UnitsPerPixel float64 `yaml:"units_per_pixel"`
}

type CameraFollowerComponentSpec struct {
	Target  string `yaml:"target"`
	FollowX bool   `yaml:"follow_x"`
	FollowY bool   `yaml:"follow_y"`
}

type CameraShakeComponentSpec struct {
	MagnitudeX float64 `yaml:"magnitude_x"`
	FrequencyX float64 `yaml:"frequency_x"`
	MagnitudeY float64 `yaml:"magnitude_y"`
	FrequencyY float64 `yaml:"frequency_y"`
}

type TimerComponentSpec struct {
	Duration float64 `yaml:"duration"`
	Restart  bool    `yaml:"restart"`
	Running  bool    `yaml:"running"`
}
