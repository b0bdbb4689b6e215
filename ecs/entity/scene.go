package entity

import (
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/starfall/ecs"
	"github.com/milk9111/starfall/ecs/component"
	"github.com/milk9111/starfall/ecs/system"
	"github.com/milk9111/starfall/levels"
	"github.com/milk9111/starfall/prefabs"
)

// TuningFromSpec copies the gameplay constants out of game.yaml.
func TuningFromSpec(g *prefabs.GameSpec) system.Tuning {
	t := system.DefaultTuning()
	if g == nil {
		return t
	}
	t.Gravity = g.Physics.Gravity
	t.WallSlideGravityScale = g.Physics.WallSlideGravityScale
	t.BounceDamping = g.Physics.BounceDamping
	t.SettleSpeed = g.Physics.SettleSpeed
	t.WallSlideMaxFall = g.Physics.WallSlideMaxFall

	t.JumpVelocity = g.Control.JumpVelocity
	t.WallJumpX = g.Control.WallJumpX
	t.WallJumpY = g.Control.WallJumpY
	t.FastFall = g.Control.FastFall
	t.AirControl = g.Control.AirControl
	t.GroundDecel = g.Control.GroundDecel
	t.AirDecel = g.Control.AirDecel

	t.PickupPoints = g.Score.PickupPoints
	t.ScoreCap = g.Score.Cap
	t.SpawnSpeed = g.Spawner.Speed

	t.CameraOuterEdge = g.Camera.OuterEdge
	t.CameraTrackingZone = g.Camera.TrackingZone
	t.CameraTween = g.Camera.Tween

	t.CameraName = g.Names.Camera
	t.CollectibleName = g.Names.Collectible
	if g.Sounds.Jump != "" {
		t.JumpSound = g.Sounds.Jump
	}
	if g.Sounds.Pickup != "" {
		t.PickupSound = g.Sounds.Pickup
	}
	return t
}

// SceneConfig is what a host provides to start a level.
type SceneConfig struct {
	Game    *prefabs.GameSpec
	Sprites SpriteRegistry
	Sound   system.SoundPlayer
	Mode    ecs.Mode
	Logger  *slog.Logger
	// Levels holds the .map files; nil uses the embedded levels.
	Levels fs.FS
}

// Scene is a running level: the world, its systems and the well-known
// entities hosts talk to.
type Scene struct {
	World    *ecs.World
	Tuning   *system.Tuning
	Pipeline *ecs.Scheduler

	Player   ecs.EntityID
	Camera   ecs.EntityID
	Spawners []ecs.EntityID
	Layers   []*LoadedLayer
}

// NewScene builds a level in draw order: map layers, spawners on the
// gameplay layer, the player with its score display, the camera and the
// fixed stars.
func NewScene(cfg SceneConfig) (*Scene, error) {
	if cfg.Game == nil {
		return nil, fmt.Errorf("scene: game spec is nil")
	}
	if cfg.Sprites == nil {
		return nil, fmt.Errorf("scene: %w", ErrNoSprites)
	}
	if cfg.Levels == nil {
		cfg.Levels = levels.LevelsFS
	}

	w, err := ecs.NewWorld(component.Types, ecs.WithMode(cfg.Mode), ecs.WithLogger(cfg.Logger))
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}

	g := cfg.Game
	tuning := TuningFromSpec(g)
	opts := Options{
		Sprites:  cfg.Sprites,
		Viewport: cp.Vector{X: float64(g.Window.Width), Y: float64(g.Window.Height)},
	}
	s := &Scene{World: w, Tuning: &tuning}

	for _, ls := range g.Layers {
		layer, err := levels.LoadLayer(cfg.Levels, ls.File)
		if err != nil {
			return nil, fmt.Errorf("scene: %w", err)
		}
		loaded, err := LoadLayer(w, layer, ls.NonCollidable, opts)
		if err != nil {
			return nil, fmt.Errorf("scene: layer %s: %w", ls.File, err)
		}
		s.Layers = append(s.Layers, loaded)
	}

	if err := s.configureSpawners(g, opts); err != nil {
		return nil, err
	}

	if s.Player, err = NewPlayer(w, opts); err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	if s.Camera, err = NewCamera(w, opts); err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	for _, at := range g.Stars {
		if _, err := NewStar(w, g.Names.Collectible, cp.Vector{X: at.X, Y: at.Y}, opts); err != nil {
			return nil, fmt.Errorf("scene: %w", err)
		}
	}

	velocity, err := velocitySource(g.Spawner)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	s.Pipeline = system.NewPipeline(system.Deps{
		Tuning:   s.Tuning,
		Sound:    cfg.Sound,
		Sprites:  cfg.Sprites,
		Velocity: velocity,
	})
	return s, nil
}

func (s *Scene) configureSpawners(g *prefabs.GameSpec, opts Options) error {
	if g.Spawner.Symbol == "" {
		return nil
	}
	symbol := g.Spawner.Symbol[0]
	for _, l := range s.Layers {
		s.Spawners = append(s.Spawners, l.Entities(symbol)...)
	}
	if len(s.Spawners) == 0 {
		return nil
	}

	sprite, err := PrefabSprite(opts.Sprites, g.Spawner.Entity+".yaml")
	if err != nil {
		return fmt.Errorf("scene: %w", err)
	}
	spawn := component.NewSpawn(g.Spawner.Entity, sprite, g.Spawner.Interval, g.Spawner.Max)
	n, err := ConfigureSpawners(s.World, s.Spawners, spawn)
	if err != nil {
		return fmt.Errorf("scene: spawners: %w", err)
	}
	s.World.Logger().Info("configured spawners", "count", n, "entity", g.Spawner.Entity)
	return nil
}

func velocitySource(spec prefabs.SpawnerSpec) (system.VelocitySource, error) {
	if spec.VelocityScript == "" {
		return system.NewRandomVelocity(spec.Seed), nil
	}
	src, err := prefabs.LoadScript(spec.VelocityScript)
	if err != nil {
		return nil, err
	}
	return system.NewScriptVelocity(src, spec.Seed)
}

// Update runs one frame.
func (s *Scene) Update(dt float64) {
	s.Pipeline.Update(s.World, dt)
}

// Retune applies new constants from game.yaml to the running systems.
func (s *Scene) Retune(g *prefabs.GameSpec) {
	*s.Tuning = TuningFromSpec(g)
}

// SetKey presses or releases a key on the player.
func (s *Scene) SetKey(k component.Key, down bool) {
	if input, ok := ecs.TryGet(s.World, s.Player, component.InputComponent); ok {
		input.Set(k, down)
	}
}

// ReleaseKeys lets go of every key.
func (s *Scene) ReleaseKeys() {
	if input, ok := ecs.TryGet(s.World, s.Player, component.InputComponent); ok {
		input.Reset()
	}
}

// Score is the player's current score.
func (s *Scene) Score() int {
	if score, ok := ecs.TryGet(s.World, s.Player, component.ScoreComponent); ok {
		return score.Value
	}
	return 0
}

// CameraView returns the first camera, if any.
func (s *Scene) CameraView() *component.Camera {
	cam, _ := ecs.TryGet(s.World, s.Camera, component.CameraComponent)
	return cam
}

// SetViewport keeps the camera in step with the window size.
func (s *Scene) SetViewport(width, height float64) {
	if cam := s.CameraView(); cam != nil {
		cam.Viewport = cp.Vector{X: width, Y: height}
	}
}
