package sound

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

const DefaultSampleRate = beep.SampleRate(44100)

type wave int

const (
	sine wave = iota
	square
	triangle
)

// oscillator sweeps linearly from one frequency to another over its duration.
type oscillator struct {
	from, to float64
	phase    float64
	position int
	length   int
	wave     wave
	rate     beep.SampleRate
}

func newOscillator(from, to float64, d time.Duration, w wave, rate beep.SampleRate) *oscillator {
	return &oscillator{from: from, to: to, length: rate.N(d), wave: w, rate: rate}
}

func (o *oscillator) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if o.position >= o.length {
			return i, i > 0
		}
		var v float64
		switch o.wave {
		case sine:
			v = math.Sin(2 * math.Pi * o.phase)
		case square:
			v = 1
			if o.phase >= 0.5 {
				v = -1
			}
		case triangle:
			v = 4*math.Abs(o.phase-0.5) - 1
		}
		samples[i] = [2]float64{v, v}

		freq := o.from + (o.to-o.from)*float64(o.position)/float64(o.length)
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope fades a stream in over attack samples and out over the rest.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	total    int
}

func newEnvelope(s beep.Streamer, total, attack time.Duration, rate beep.SampleRate) *envelope {
	return &envelope{streamer: s, attack: rate.N(attack), total: rate.N(total)}
}

func (e *envelope) Stream(samples [][2]float64) (int, bool) {
	n, ok := e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		gain := 1.0
		switch {
		case e.position < e.attack:
			gain = float64(e.position) / float64(e.attack)
		case e.total > e.attack:
			gain = float64(e.total-e.position) / float64(e.total-e.attack)
		}
		gain = max(gain, 0)
		samples[i][0] *= gain
		samples[i][1] *= gain
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

func volume(s beep.Streamer, v float64) beep.Streamer {
	if v <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(v)}
}

// Synth builds the effects from oscillators, so no audio files ship with the
// game.
type Synth struct {
	Rate   beep.SampleRate
	Volume float64
}

func NewSynth(rate beep.SampleRate) *Synth {
	if rate <= 0 {
		rate = DefaultSampleRate
	}
	return &Synth{Rate: rate, Volume: 0.5}
}

// Names lists the sounds the synth can make.
func (s *Synth) Names() []string {
	return []string{Jump, Sparkle}
}

// Streamer returns a fresh finite stream for the named sound.
func (s *Synth) Streamer(name string) (beep.Streamer, error) {
	switch name {
	case Jump:
		d := 150 * time.Millisecond
		osc := newOscillator(220, 660, d, square, s.Rate)
		return volume(newEnvelope(osc, d, 5*time.Millisecond, s.Rate), s.Volume*0.4), nil
	case Sparkle:
		first := 90 * time.Millisecond
		second := 220 * time.Millisecond
		low := newEnvelope(newOscillator(1318.5, 1318.5, first, sine, s.Rate), first, 2*time.Millisecond, s.Rate)
		high := newEnvelope(newOscillator(1760, 1760, second, sine, s.Rate), second, 2*time.Millisecond, s.Rate)
		shimmer := newEnvelope(newOscillator(3520, 3520, second, triangle, s.Rate), second, 2*time.Millisecond, s.Rate)
		ring := beep.Take(s.Rate.N(second), beep.Mix(high, volume(shimmer, 0.2)))
		return volume(beep.Seq(low, ring), s.Volume), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownSound, name)
}

// PCM renders the named sound as signed 16-bit little-endian stereo.
func (s *Synth) PCM(name string) ([]byte, error) {
	st, err := s.Streamer(name)
	if err != nil {
		return nil, err
	}
	format := beep.Format{SampleRate: s.Rate, NumChannels: 2, Precision: 2}
	var (
		buf     = make([][2]float64, 512)
		out     []byte
		encoded = make([]byte, format.Width())
	)
	for {
		n, ok := st.Stream(buf)
		for _, sample := range buf[:n] {
			format.EncodeSigned(encoded, sample)
			out = append(out, encoded...)
		}
		if !ok {
			break
		}
	}
	if err := st.Err(); err != nil {
		return nil, fmt.Errorf("sound: render %q: %w", name, err)
	}
	return out, nil
}
