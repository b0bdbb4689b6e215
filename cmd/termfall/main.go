// Command termfall plays the level in a terminal.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/milk9111/starfall/ecs"
	"github.com/milk9111/starfall/ecs/entity"
	"github.com/milk9111/starfall/ecs/system"
	"github.com/milk9111/starfall/prefabs"
	"github.com/milk9111/starfall/render"
	"github.com/milk9111/starfall/sound"
)

func main() {
	mode := flag.String("mode", "", "contract mode: strict or lenient (default from game.yaml)")
	logPath := flag.String("log", "termfall.log", "log file")
	mute := flag.Bool("mute", false, "disable sound")
	frames := flag.Int("frames", 0, "stop after this many frames (0 runs until quit)")
	flag.Parse()

	if err := run(*mode, *logPath, *mute, *frames); err != nil {
		fmt.Fprintf(os.Stderr, "termfall: %v\n", err)
		os.Exit(1)
	}
}

func run(mode, logPath string, mute bool, frames int) error {
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	defer logFile.Close()
	logger := slog.New(slog.NewTextHandler(logFile, nil)).With("run", uuid.NewString(), "host", "terminal")

	spec, err := prefabs.LoadGameSpec()
	if err != nil {
		return err
	}
	contract := ecs.Lenient
	if spec.Strict {
		contract = ecs.Strict
	}
	if mode != "" {
		if contract, err = ecs.ParseMode(mode); err != nil {
			return err
		}
	}

	var player system.SoundPlayer = sound.Silent{}
	if !mute {
		sp := sound.NewSpeaker(sound.NewSynth(sound.DefaultSampleRate), logger)
		if err := sp.Open(); err != nil {
			logger.Warn("audio disabled", "err", err)
		} else {
			defer sp.Close()
			player = sp
		}
	}

	sprites := render.NewRegistry()
	scene, err := entity.NewScene(entity.SceneConfig{
		Game:    spec,
		Sprites: sprites,
		Sound:   player,
		Mode:    contract,
		Logger:  logger,
	})
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.HideCursor()

	logger.Info("game started", "mode", contract, "entities", scene.World.Count(), "sprites", sprites.Len())
	newTermGame(screen, spec, scene, sprites, logger).run(frames)
	return nil
}
