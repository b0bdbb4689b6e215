package system

import (
	"fmt"
	"math/rand/v2"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/starfall/ecs/component"
)

// RandomVelocity draws each axis uniformly from [-speed, speed).
type RandomVelocity struct {
	rng *rand.Rand
}

// NewRandomVelocity seeds the generator. A zero seed picks a random one.
func NewRandomVelocity(seed uint64) *RandomVelocity {
	return &RandomVelocity{rng: newRand(seed)}
}

func (r *RandomVelocity) Velocity(_ *component.Spawn, speed float64) (cp.Vector, error) {
	return cp.Vector{
		X: (r.rng.Float64()*2 - 1) * speed,
		Y: (r.rng.Float64()*2 - 1) * speed,
	}, nil
}

// ScriptVelocity asks a tengo script for the launch velocity. The script sees
// count (spawns so far), kind (the spawned entity type), speed and two
// uniform samples r1 and r2 in [-1, 1), and must set vx and vy.
type ScriptVelocity struct {
	compiled *tengo.Compiled
	rng      *rand.Rand
}

func NewScriptVelocity(src []byte, seed uint64) (*ScriptVelocity, error) {
	script := tengo.NewScript(src)
	_ = script.Add("count", 0)
	_ = script.Add("kind", "")
	_ = script.Add("speed", 0.0)
	_ = script.Add("r1", 0.0)
	_ = script.Add("r2", 0.0)
	script.SetImports(stdlib.GetModuleMap("math"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("spawn script: compile: %w", err)
	}
	return &ScriptVelocity{compiled: compiled, rng: newRand(seed)}, nil
}

func (s *ScriptVelocity) Velocity(spawn *component.Spawn, speed float64) (cp.Vector, error) {
	inputs := map[string]any{
		"count": spawn.Count,
		"kind":  spawn.EntityType,
		"speed": speed,
		"r1":    s.rng.Float64()*2 - 1,
		"r2":    s.rng.Float64()*2 - 1,
	}
	for name, v := range inputs {
		if err := s.compiled.Set(name, v); err != nil {
			return cp.Vector{}, fmt.Errorf("spawn script: set %s: %w", name, err)
		}
	}
	if err := s.compiled.Run(); err != nil {
		return cp.Vector{}, fmt.Errorf("spawn script: run: %w", err)
	}
	if !s.compiled.IsDefined("vx") || !s.compiled.IsDefined("vy") {
		return cp.Vector{}, fmt.Errorf("spawn script: vx and vy must be set")
	}
	return cp.Vector{
		X: s.compiled.Get("vx").Float(),
		Y: s.compiled.Get("vy").Float(),
	}, nil
}

func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
