package main

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/starfall/assets"
	"github.com/milk9111/starfall/ecs"
	"github.com/milk9111/starfall/ecs/entity"
	"github.com/milk9111/starfall/ecs/system"
	"github.com/milk9111/starfall/prefabs"
	"github.com/milk9111/starfall/render"
	"github.com/milk9111/starfall/sound"
)

var skyColor = color.RGBA{R: 0x87, G: 0xce, B: 0xeb, A: 0xff}

type GameOptions struct {
	Spec   *prefabs.GameSpec
	Mode   ecs.Mode
	Watch  bool
	Debug  bool
	Mute   bool
	Logger *slog.Logger
}

type Game struct {
	frames int

	spec    *prefabs.GameSpec
	scene   *entity.Scene
	sprites *render.Registry
	sheets  *assets.Sheets
	bank    *assets.Bank
	ops     []render.DrawOp

	paused  bool
	quit    bool
	pauseUI *ebitenui.UI
	score   *scoreLabel

	watcher *prefabs.Watcher
	debug   bool
	logger  *slog.Logger
}

func NewGame(opts GameOptions) (*Game, error) {
	g := &Game{
		spec:    opts.Spec,
		sprites: render.NewRegistry(),
		debug:   opts.Debug,
		logger:  opts.Logger,
	}
	g.sheets = assets.NewSheets(g.sprites)

	var player system.SoundPlayer = sound.Silent{}
	if !opts.Mute {
		bank, err := assets.NewBank(sound.NewSynth(sound.DefaultSampleRate), opts.Logger)
		if err != nil {
			g.logger.Warn("audio disabled", "err", err)
		} else {
			g.bank = bank
			player = bank
		}
	}

	scene, err := entity.NewScene(entity.SceneConfig{
		Game:    opts.Spec,
		Sprites: g.sprites,
		Sound:   player,
		Mode:    opts.Mode,
		Logger:  opts.Logger,
	})
	if err != nil {
		return nil, err
	}
	g.scene = scene
	g.pauseUI, g.score = NewPauseUI(g)

	if opts.Watch {
		w, err := prefabs.NewWatcher(prefabs.Dir)
		if err != nil {
			g.logger.Warn("prefab watch disabled", "dir", prefabs.Dir, "err", err)
		} else {
			g.watcher = w
		}
	}
	g.logger.Info("game started", "mode", opts.Mode, "entities", scene.World.Count(), "sprites", g.sprites.Len())
	return g, nil
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.frames++
	g.applyReloads()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.setPaused(!g.paused)
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	pollKeys(g.scene)
	g.scene.Update(1 / float64(ebiten.TPS()))
	return nil
}

func (g *Game) setPaused(paused bool) {
	g.paused = paused
	if paused {
		g.scene.ReleaseKeys()
		g.score.Set(g.scene.Score())
	}
}

// applyReloads drains pending prefab changes. Only game.yaml tuning applies
// to a running scene; other files need a restart.
func (g *Game) applyReloads() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case change, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			if change.Name() != "game.yaml" {
				g.logger.Info("prefab changed, restart to apply", "file", change.Name())
				continue
			}
			spec, err := prefabs.LoadGameSpec()
			if err != nil {
				g.logger.Warn("reload game.yaml", "err", err)
				continue
			}
			g.scene.Retune(spec)
			g.logger.Info("tuning reloaded")
		case err := <-g.watcher.Errors:
			if err != nil {
				g.logger.Warn("prefab watch", "err", err)
			}
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(skyColor)
	w, h := float64(g.spec.Window.Width), float64(g.spec.Window.Height)

	g.ops = render.Plan(g.scene.World, g.sprites, g.scene.CameraView(), g.ops)
	for _, op := range g.ops {
		if !op.Visible(w, h) {
			continue
		}
		img := g.sheets.Image(op.Sprite)
		if img == nil {
			continue
		}
		b := img.Bounds()
		geo := &ebiten.DrawImageOptions{}
		geo.GeoM.Scale(op.Dst.Width/float64(b.Dx()), op.Dst.Height/float64(b.Dy()))
		geo.GeoM.Translate(op.Dst.Min.X, op.Dst.Min.Y)
		screen.DrawImage(img, geo)
	}

	if g.debug {
		drawCollisionBoxes(screen, g.scene)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.1f  entities: %d  score: %d",
			ebiten.ActualFPS(), g.scene.World.Count(), g.scene.Score()), 8, int(h)-20)
	}
	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return float64(g.spec.Window.Width), float64(g.spec.Window.Height)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func (g *Game) Close() error {
	var errs []error
	if g.watcher != nil {
		errs = append(errs, g.watcher.Close())
	}
	if g.bank != nil {
		g.bank.Close()
	}
	return errors.Join(errs...)
}
