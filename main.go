package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/starfall/ecs"
	"github.com/milk9111/starfall/prefabs"
)

func main() {
	mode := flag.String("mode", "", "contract mode: strict or lenient (default from game.yaml)")
	watch := flag.Bool("watch", false, "reload game.yaml tuning when prefab files change")
	prefabDir := flag.String("prefabs", prefabs.Dir, "directory checked for prefab overrides before the embedded ones")
	debug := flag.Bool("debug", false, "draw collision boxes and frame stats")
	mute := flag.Bool("mute", false, "disable sound")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil)).With("run", uuid.NewString())
	slog.SetDefault(logger)
	prefabs.Dir = *prefabDir

	spec, err := prefabs.LoadGameSpec()
	if err != nil {
		log.Fatal(err)
	}
	contract := ecs.Lenient
	if spec.Strict {
		contract = ecs.Strict
	}
	if *mode != "" {
		if contract, err = ecs.ParseMode(*mode); err != nil {
			log.Fatal(err)
		}
	}

	game, err := NewGame(GameOptions{
		Spec:   spec,
		Mode:   contract,
		Watch:  *watch,
		Debug:  *debug,
		Mute:   *mute,
		Logger: logger,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	ebiten.SetWindowSize(spec.Window.Width, spec.Window.Height)
	ebiten.SetWindowTitle(spec.Title)
	ebiten.SetTPS(spec.TPS)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
