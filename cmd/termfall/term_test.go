package main

import (
	"image"
	"log/slog"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/starfall/common"
	"github.com/milk9111/starfall/ecs"
	"github.com/milk9111/starfall/ecs/component"
	"github.com/milk9111/starfall/ecs/entity"
	"github.com/milk9111/starfall/prefabs"
	"github.com/milk9111/starfall/render"
	"github.com/milk9111/starfall/sound"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanvasPaint(t *testing.T) {
	c := newCanvas(10, 5, 100, 50, skyColor)
	c.clear()
	ground := render.Frame{Sheet: render.TilesSheet, Src: image.Rect(0, 0, 64, 64)}
	star := render.Frame{Sheet: render.TilesSheet, Src: render.StarFrame}
	c.paint([]render.DrawOp{
		{Frame: ground, Dst: common.NewRect(0, 0, 20, 20)},
		{Frame: star, Dst: common.NewRect(50, 20, 20, 20)},
		{Frame: star, Dst: common.NewRect(-500, -500, 20, 20)},
	})

	look := render.Describe(ground)
	for _, p := range []image.Point{{0, 0}, {1, 0}, {0, 1}, {1, 1}} {
		cc := c.at(p.X, p.Y)
		assert.Equal(t, look.Glyph, cc.glyph, "cell %v", p)
		assert.Equal(t, look.Fill, cc.bg, "cell %v", p)
	}
	assert.Equal(t, skyColor, c.at(2, 0).bg)

	assert.Equal(t, '*', c.at(5, 2).glyph)
	assert.Equal(t, skyColor, c.at(5, 2).bg, "transparent frames keep the background")
	assert.Equal(t, ' ', c.at(6, 3).glyph)
	assert.Nil(t, c.at(10, 0))
	assert.Nil(t, c.at(0, -1))
}

func TestCanvasFlush(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(6, 2)

	c := newCanvas(6, 2, 60, 20, skyColor)
	c.clear()
	c.text(1, 1, "hi there", statusColor)
	c.flush(screen)

	cells, w, _ := screen.GetContents()
	require.Equal(t, 6, w)
	var row strings.Builder
	for x := range w {
		row.WriteString(string(cells[w+x].Runes))
	}
	assert.Equal(t, " hi th", row.String())
}

func TestKeyFor(t *testing.T) {
	cases := []struct {
		ev   *tcell.EventKey
		want component.Key
		ok   bool
	}{
		{tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), component.KeyLeft, true},
		{tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone), component.KeyRight, true},
		{tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), component.KeyJump, true},
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), component.KeyJump, true},
		{tcell.NewEventKey(tcell.KeyRune, 'S', tcell.ModNone), component.KeyDown, true},
		{tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), 0, false},
		{tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), 0, false},
	}
	for _, c := range cases {
		got, ok := keyFor(c.ev)
		assert.Equal(t, c.ok, ok, c.ev.Name())
		if ok {
			assert.Equal(t, c.want, got, c.ev.Name())
		}
	}
}

func TestHeldKeys(t *testing.T) {
	var h heldKeys
	state := map[component.Key]bool{}
	set := func(k component.Key, down bool) { state[k] = down }

	h.press(component.KeyRight)
	h.press(component.KeyCount)
	for range holdFrames {
		h.tick(set)
		assert.True(t, state[component.KeyRight])
		assert.False(t, state[component.KeyLeft])
	}
	h.tick(set)
	assert.False(t, state[component.KeyRight], "released after the hold runs out")
}

func newTestGame(t *testing.T) (*termGame, *sound.Recorder) {
	t.Helper()
	spec, err := prefabs.LoadGameSpec()
	require.NoError(t, err)
	sprites := render.NewRegistry()
	var sounds sound.Recorder
	scene, err := entity.NewScene(entity.SceneConfig{
		Game: spec, Sprites: sprites, Sound: &sounds, Mode: ecs.Lenient,
	})
	require.NoError(t, err)

	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 25)
	return newTermGame(screen, spec, scene, sprites, slog.New(slog.DiscardHandler)), &sounds
}

func TestTermGameEvents(t *testing.T) {
	g, _ := newTestGame(t)

	assert.False(t, g.handleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
	assert.False(t, g.handleEvent(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModNone)))
	assert.False(t, g.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))

	assert.True(t, g.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone)))
	assert.True(t, g.paused)
	g.step()
	assert.Zero(t, g.frames, "paused games do not advance")
	g.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone))

	g.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone))
	g.step()
	input := ecs.Get(g.scene.World, g.scene.Player, component.InputComponent)
	assert.True(t, input.Held(component.KeyRight))

	g.screen.SetSize(40, 10)
	assert.True(t, g.handleEvent(tcell.NewEventResize(40, 10)))
	assert.Equal(t, 40, g.canvas.cols)
	assert.Equal(t, 9, g.canvas.rows, "last row is the status line")
}

func TestTermGameDraw(t *testing.T) {
	g, _ := newTestGame(t)
	for range 180 {
		g.step()
	}
	g.draw()

	cells, w, h := g.screen.(tcell.SimulationScreen).GetContents()
	var status strings.Builder
	for x := range w {
		status.WriteString(string(cells[(h-1)*w+x].Runes))
	}
	assert.Contains(t, status.String(), "score ")
	assert.Contains(t, status.String(), "frame 180")
	assert.NotEmpty(t, g.ops)

	var player bool
	for _, cc := range g.canvas.cells {
		if cc.glyph == '@' {
			player = true
		}
	}
	assert.True(t, player, "player is on screen")
}
