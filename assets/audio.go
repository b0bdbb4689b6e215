package assets

import (
	"fmt"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/starfall/sound"
)

// Bank plays synthesized sounds through ebiten's audio context. Each sound
// keeps a few players so quick repeats overlap instead of restarting.
type Bank struct {
	context *audio.Context
	pcm     map[string][]byte
	players map[string][]*audio.Player
	volume  float64
	logger  *slog.Logger
}

const playersPerSound = 4

// NewBank renders every sound the synth knows. The audio context is shared
// process-wide, so an existing one is reused.
func NewBank(synth *sound.Synth, logger *slog.Logger) (*Bank, error) {
	if logger == nil {
		logger = slog.Default()
	}
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(int(synth.Rate))
	}
	if ctx.SampleRate() != int(synth.Rate) {
		return nil, fmt.Errorf("assets: audio context runs at %d Hz, synth at %d Hz", ctx.SampleRate(), synth.Rate)
	}

	b := &Bank{
		context: ctx,
		pcm:     make(map[string][]byte),
		players: make(map[string][]*audio.Player),
		volume:  1,
		logger:  logger,
	}
	for _, name := range synth.Names() {
		data, err := synth.PCM(name)
		if err != nil {
			return nil, fmt.Errorf("assets: %w", err)
		}
		b.pcm[name] = data
	}
	return b, nil
}

// SetVolume applies to sounds started afterwards.
func (b *Bank) SetVolume(v float64) {
	b.volume = v
}

func (b *Bank) Play(name string) {
	data, ok := b.pcm[name]
	if !ok {
		b.logger.Warn("play sound", "sound", name, "err", sound.ErrUnknownSound)
		return
	}

	var p *audio.Player
	for _, candidate := range b.players[name] {
		if !candidate.IsPlaying() {
			p = candidate
			break
		}
	}
	if p == nil {
		if len(b.players[name]) >= playersPerSound {
			return
		}
		p = b.context.NewPlayerFromBytes(data)
		b.players[name] = append(b.players[name], p)
	}

	p.SetVolume(b.volume)
	if err := p.Rewind(); err != nil {
		b.logger.Warn("rewind sound", "sound", name, "err", err)
		return
	}
	p.Play()
}

// Close releases every player.
func (b *Bank) Close() {
	for name, players := range b.players {
		for _, p := range players {
			_ = p.Close()
		}
		delete(b.players, name)
	}
}
