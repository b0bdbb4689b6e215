// Benchfall runs the level headless for a fixed number of frames and
// reports the average frame time.
//
// Profiling:
//
//	go build ./cmd/benchfall
//	./benchfall -profile cpu -frames 20000
//	go tool pprof -http=":8000" ./benchfall cpu.pprof
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/milk9111/starfall/ecs"
	"github.com/milk9111/starfall/ecs/entity"
	"github.com/milk9111/starfall/prefabs"
	"github.com/milk9111/starfall/render"
	"github.com/milk9111/starfall/sound"
	"github.com/pkg/profile"
)

func main() {
	frames := flag.Int("frames", 10000, "frames to simulate")
	mode := flag.String("mode", "lenient", "contract mode: strict or lenient")
	kind := flag.String("profile", "", "profile to record: cpu, mem, allocs or trace")
	dir := flag.String("out", ".", "directory for profile output")
	plan := flag.Bool("plan", true, "build the draw list every frame")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})).
		With("run", uuid.NewString())

	contract, err := ecs.ParseMode(*mode)
	if err != nil {
		log.Fatal(err)
	}
	if p := profileMode(*kind); p != nil {
		defer profile.Start(p, profile.ProfilePath(*dir), profile.NoShutdownHook).Stop()
	} else if *kind != "" {
		log.Fatalf("unknown profile %q", *kind)
	}

	res, err := bench(*frames, contract, *plan, logger)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("frames=%d entities=%d sprites=%d score=%d %v/frame\n",
		res.frames, res.entities, res.sprites, res.score, res.perFrame())
}

func profileMode(kind string) func(*profile.Profile) {
	switch kind {
	case "cpu":
		return profile.CPUProfile
	case "mem":
		return profile.MemProfile
	case "allocs":
		return profile.MemProfileAllocs
	case "trace":
		return profile.TraceProfile
	}
	return nil
}

type result struct {
	frames   int
	entities int
	sprites  int
	score    int
	elapsed  time.Duration
}

func (r result) perFrame() time.Duration {
	if r.frames == 0 {
		return 0
	}
	return r.elapsed / time.Duration(r.frames)
}

func bench(frames int, mode ecs.Mode, plan bool, logger *slog.Logger) (result, error) {
	spec, err := prefabs.LoadGameSpec()
	if err != nil {
		return result{}, err
	}
	sprites := render.NewRegistry()
	scene, err := entity.NewScene(entity.SceneConfig{
		Game:    spec,
		Sprites: sprites,
		Sound:   sound.Silent{},
		Mode:    mode,
		Logger:  logger,
	})
	if err != nil {
		return result{}, err
	}

	dt := 1 / float64(spec.TPS)
	var ops []render.DrawOp
	start := time.Now()
	for range frames {
		scene.Update(dt)
		if plan {
			ops = render.Plan(scene.World, sprites, scene.CameraView(), ops)
		}
	}
	return result{
		frames:   frames,
		entities: scene.World.Count(),
		sprites:  sprites.Len(),
		score:    scene.Score(),
		elapsed:  time.Since(start),
	}, nil
}
