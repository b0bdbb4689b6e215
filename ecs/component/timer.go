package component

import "github.com/milk9111/starfall/ecs"

// Timer counts Remaining down to zero, then restarts or stops.
type Timer struct {
	Total     float64
	Remaining float64
	Running   bool
	Restart   bool
}

func NewTimer(duration float64, restart bool) Timer {
	return Timer{
		Total:     duration,
		Remaining: duration,
		Running:   duration > 0,
		Restart:   restart,
	}
}

// Start rewinds the timer to its full duration.
func (t *Timer) Start() {
	t.Running = true
	t.Remaining = t.Total
}

// Fraction is the share of the duration still remaining.
func (t *Timer) Fraction() float64 {
	if t.Total <= 0 {
		return 0
	}
	return t.Remaining / t.Total
}

var TimerComponent = ecs.Register[Timer](Types, "timer")
