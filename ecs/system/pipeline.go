package system

import "github.com/milk9111/starfall/ecs"

// Deps are the collaborators the frame pipeline needs from its host.
type Deps struct {
	Tuning   *Tuning
	Sound    SoundPlayer
	Sprites  SpriteSizer
	Velocity VelocitySource
}

// NewPipeline returns the per-frame systems in their fixed order. Boxes are
// snapshotted before anything moves; collision runs after integration and
// before anything that reads contact or score state.
func NewPipeline(d Deps) *ecs.Scheduler {
	tuning := tuningOrDefault(d.Tuning)
	return ecs.NewScheduler(
		NewCollisionSnapshotSystem(),
		NewInputSystem(tuning, d.Sound),
		NewGravitySystem(tuning),
		NewMovementSystem(),
		NewCollisionSystem(tuning, d.Sound),
		NewScoreSystem(tuning),
		NewTimerSystem(),
		NewCameraSystem(tuning),
		NewSpawnSystem(tuning, d.Sprites, d.Velocity),
	)
}
