package prefabs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useDir(t *testing.T, dir string) {
	t.Helper()
	old := Dir
	Dir = dir
	t.Cleanup(func() { Dir = old })
}

func TestLoadGameSpecEmbedded(t *testing.T) {
	useDir(t, t.TempDir())

	spec, err := LoadGameSpec()
	require.NoError(t, err)

	assert.Equal(t, 60, spec.TPS)
	assert.Equal(t, 980.0, spec.Physics.Gravity)
	assert.Equal(t, 0.7, spec.Physics.BounceDamping)
	assert.Equal(t, 150.0, spec.Physics.WallSlideMaxFall)
	assert.Equal(t, -400.0, spec.Control.JumpVelocity)
	assert.Equal(t, 10, spec.Score.PickupPoints)
	assert.Equal(t, 999, spec.Score.Cap)
	assert.Equal(t, 3.0, spec.Spawner.Interval)
	assert.Equal(t, 10, spec.Spawner.Max)
	assert.Equal(t, "main_camera", spec.Names.Camera)
	assert.Equal(t, "sparkle", spec.Sounds.Pickup)
	require.Len(t, spec.Layers, 2)
	assert.Equal(t, "S", spec.Layers[1].NonCollidable)
}

func TestLoadPrefersDisk(t *testing.T) {
	dir := t.TempDir()
	useDir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "star.yaml"), []byte("name: disk_star\n"), 0o644))

	spec, err := LoadEntityBuildSpec("prefabs/star.yaml")
	require.NoError(t, err)
	assert.Equal(t, "disk_star", spec.Name)

	_, ok := ModTime("star.yaml")
	assert.True(t, ok)
	_, ok = ModTime("player.yaml")
	assert.False(t, ok, "embedded-only files have no mod time")
}

func TestLoadSpecErrors(t *testing.T) {
	dir := t.TempDir()
	useDir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.yaml"), []byte("name: [unclosed\n"), 0o644))

	_, err := LoadEntityBuildSpec("missing.yaml")
	assert.ErrorContains(t, err, "prefabs: load missing.yaml")

	_, err = LoadEntityBuildSpec("broken.yaml")
	assert.ErrorContains(t, err, "prefabs: unmarshal broken.yaml")
}

func TestLoadScript(t *testing.T) {
	useDir(t, t.TempDir())

	for _, name := range []string{"star_velocity.tengo", "scripts/star_velocity.tengo", "prefabs/scripts/star_velocity.tengo"} {
		src, err := LoadScript(name)
		require.NoError(t, err, name)
		assert.Contains(t, string(src), "vx :=")
	}
}

func TestEntityPrefabs(t *testing.T) {
	useDir(t, t.TempDir())

	player, err := LoadEntityBuildSpec("player.yaml")
	require.NoError(t, err)
	assert.Equal(t, "player", player.Name)
	for _, name := range []string{"location", "movement", "acceleration", "input", "sprite", "collision", "score"} {
		assert.Contains(t, player.Components, name)
	}

	col, err := DecodeComponentSpec[CollisionComponentSpec](player.Components["collision"])
	require.NoError(t, err)
	assert.Equal(t, RectSpec{X: 32, Y: -64, Width: 64, Height: 64}, col.Box)
	assert.False(t, col.Static)

	camera, err := LoadEntityBuildSpec("camera.yaml")
	require.NoError(t, err)
	shake, err := DecodeComponentSpec[CameraShakeComponentSpec](camera.Components["camera_shake"])
	require.NoError(t, err)
	assert.Equal(t, CameraShakeComponentSpec{MagnitudeX: 5, FrequencyX: 2, MagnitudeY: 5, FrequencyY: 2.1}, shake)
	timer, err := DecodeComponentSpec[TimerComponentSpec](camera.Components["timer"])
	require.NoError(t, err)
	assert.False(t, timer.Running, "shake timer starts stopped")
}

func TestDecodeComponentSpecNil(t *testing.T) {
	spec, err := DecodeComponentSpec[LocationComponentSpec](nil)
	require.NoError(t, err)
	assert.Zero(t, spec)
}

func TestGameSpecValidate(t *testing.T) {
	valid := func() GameSpec {
		return GameSpec{
			Window:  WindowSpec{Width: 10, Height: 10},
			TPS:     60,
			Spawner: SpawnerSpec{Interval: 1, Max: -1},
			Names:   NamesSpec{Camera: "cam", Collectible: "star"},
			Layers:  []LayerSpec{{File: "a.map"}},
		}
	}
	cases := []struct {
		name   string
		mutate func(*GameSpec)
	}{
		{"window", func(s *GameSpec) { s.Window.Width = 0 }},
		{"tps", func(s *GameSpec) { s.TPS = 0 }},
		{"interval", func(s *GameSpec) { s.Spawner.Interval = 0 }},
		{"max", func(s *GameSpec) { s.Spawner.Max = -2 }},
		{"cap", func(s *GameSpec) { s.Score.Cap = -1 }},
		{"names", func(s *GameSpec) { s.Names.Collectible = "" }},
		{"layer", func(s *GameSpec) { s.Layers = append(s.Layers, LayerSpec{}) }},
	}

	ok := valid()
	require.NoError(t, ok.Validate())
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			spec := valid()
			c.mutate(&spec)
			assert.ErrorIs(t, spec.Validate(), ErrInvalidGameSpec)
		})
	}
}

func TestWatcher(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "game.yaml"), []byte("tps: 30\n"), 0o644))

	select {
	case change := <-w.Events:
		assert.Equal(t, "game.yaml", change.Name())
		assert.False(t, change.Script)
	case err := <-w.Errors:
		t.Fatalf("watch error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("no change event")
	}
}

func TestWatcherCloseTwice(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, w.Close())
	assert.NoError(t, w.Close())

	_, open := <-w.Events
	assert.False(t, open)
}

func TestChangeName(t *testing.T) {
	assert.Equal(t, "scripts/star_velocity.tengo", Change{Path: "/x/prefabs/scripts/star_velocity.tengo", Script: true}.Name())
	assert.Equal(t, "player.yaml", Change{Path: "/x/prefabs/player.yaml"}.Name())
}
