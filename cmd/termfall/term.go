package main

import (
	"fmt"
	"image/color"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/starfall/ecs/entity"
	"github.com/milk9111/starfall/prefabs"
	"github.com/milk9111/starfall/render"
)

var (
	skyColor    = color.RGBA{R: 0x87, G: 0xce, B: 0xeb, A: 0xff}
	statusColor = color.RGBA{R: 0x10, G: 0x10, B: 0x10, A: 0xff}
)

type termGame struct {
	screen  tcell.Screen
	scene   *entity.Scene
	sprites *render.Registry
	spec    *prefabs.GameSpec
	canvas  *canvas
	keys    heldKeys
	ops     []render.DrawOp
	frames  int
	paused  bool
	logger  *slog.Logger
}

func newTermGame(screen tcell.Screen, spec *prefabs.GameSpec, scene *entity.Scene, sprites *render.Registry, logger *slog.Logger) *termGame {
	cols, rows := screen.Size()
	return &termGame{
		screen:  screen,
		scene:   scene,
		sprites: sprites,
		spec:    spec,
		canvas:  newCanvas(cols, rows-1, float64(spec.Window.Width), float64(spec.Window.Height), skyColor),
		logger:  logger,
	}
}

// handleEvent returns false when the player asks to quit.
func (g *termGame) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			if ev.Rune() == 'q' {
				return false
			}
			if ev.Rune() == 'p' {
				g.paused = !g.paused
				return true
			}
		}
		if k, ok := keyFor(ev); ok {
			g.keys.press(k)
		}
	case *tcell.EventResize:
		cols, rows := g.screen.Size()
		g.canvas.resize(cols, rows-1, float64(g.spec.Window.Width), float64(g.spec.Window.Height))
		g.screen.Sync()
	}
	return true
}

func (g *termGame) step() {
	if g.paused {
		return
	}
	g.frames++
	g.keys.tick(g.scene.SetKey)
	g.scene.Update(1 / float64(g.spec.TPS))
}

func (g *termGame) draw() {
	g.canvas.clear()
	g.ops = render.Plan(g.scene.World, g.sprites, g.scene.CameraView(), g.ops)
	g.canvas.paint(g.ops)
	g.canvas.flush(g.screen)

	status := fmt.Sprintf(" score %d  entities %d  frame %d  [arrows/wasd move, p pause, esc quit]",
		g.scene.Score(), g.scene.World.Count(), g.frames)
	if g.paused {
		status = " PAUSED" + status
	}
	_, rows := g.screen.Size()
	style := tcell.StyleDefault.Foreground(rgb(skyColor)).Background(rgb(statusColor))
	x := 0
	for _, r := range status {
		g.screen.SetContent(x, rows-1, r, nil, style)
		x++
	}
	g.screen.Show()
}

// run drives the game at the configured tick rate until the player quits
// or maxFrames frames have run (0 means no limit).
func (g *termGame) run(maxFrames int) {
	ticker := time.NewTicker(time.Second / time.Duration(g.spec.TPS))
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case ev := <-events:
			if !g.handleEvent(ev) {
				g.logger.Info("quit", "frames", g.frames, "score", g.scene.Score())
				return
			}
		case <-ticker.C:
			g.step()
			g.draw()
			if maxFrames > 0 && g.frames >= maxFrames {
				g.logger.Info("frame limit reached", "frames", g.frames, "score", g.scene.Score())
				return
			}
		}
	}
}
