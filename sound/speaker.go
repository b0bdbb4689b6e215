package sound

import (
	"log/slog"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Speaker plays synthesized sounds through the system audio device. Sounds
// overlap through a mixer that stays attached to the device.
type Speaker struct {
	mu     sync.Mutex
	synth  *Synth
	mixer  *beep.Mixer
	logger *slog.Logger
	open   bool
}

func NewSpeaker(synth *Synth, logger *slog.Logger) *Speaker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Speaker{synth: synth, mixer: &beep.Mixer{}, logger: logger}
}

// Open initializes the device with a 100ms buffer.
func (s *Speaker) Open() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.open {
		return nil
	}
	if err := speaker.Init(s.synth.Rate, s.synth.Rate.N(time.Second/10)); err != nil {
		return err
	}
	speaker.Play(s.mixer)
	s.open = true
	return nil
}

func (s *Speaker) Play(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open {
		return
	}
	st, err := s.synth.Streamer(name)
	if err != nil {
		s.logger.Warn("play sound", "sound", name, "err", err)
		return
	}
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open {
		return
	}
	speaker.Clear()
	speaker.Close()
	s.open = false
}
