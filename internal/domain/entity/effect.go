package entity

import "github.com/go-gl/mathgl/mgl64"

// EffectKind identifies a timed visual effect
type EffectKind int

const (
	// EffectGateOpen is the gate-opening animation
	EffectGateOpen EffectKind = iota
	// EffectShockwave is the boss ground-slam shockwave
	EffectShockwave
)

// Effect is a one-shot timed effect. Progress is derived from elapsed
// clock time; there is no self-rescheduling. Effects are cleared
// atomically on level reload.
type Effect struct {
	Kind     EffectKind
	Pos      mgl64.Vec3
	Radius   float64
	Start    float64 // clock seconds
	Duration float64 // seconds
}

// Progress returns the interpolation factor in [0, 1] at the given time
func (e *Effect) Progress(now float64) float64 {
	if e.Duration <= 0 {
		return 1
	}
	t := (now - e.Start) / e.Duration
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// Done returns true once the effect has run its full duration
func (e *Effect) Done(now float64) bool {
	return now-e.Start >= e.Duration
}
