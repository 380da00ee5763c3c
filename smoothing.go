package pointerfx

import (
	"math"
	"time"
)

// SmoothingFactor returns the fraction of the remaining distance a layer with
// time-constant tau covers in dt seconds: 1 - e^(-dt/tau).
//
// A non-positive tau snaps (factor 1); a non-positive dt does not move
// (factor 0). The factor is frame-rate independent: two steps of dt/2 land
// exactly where one step of dt does.
func SmoothingFactor(dt float64, tau time.Duration) float64 {
	if tau <= 0 {
		return 1
	}
	if dt <= 0 {
		return 0
	}
	return 1 - math.Exp(-dt/tau.Seconds())
}

// follower is the rendered position of one layer chasing a target.
type follower struct {
	pos    Vec2
	primed bool
}

// step advances toward target by exponential smoothing. The first step
// snaps so layers do not fly in from the origin.
func (f *follower) step(target Vec2, dt float64, tau time.Duration) Vec2 {
	if !f.primed {
		return f.snap(target)
	}
	k := SmoothingFactor(dt, tau)
	f.pos = f.pos.Add(target.Sub(f.pos).Scale(k))
	return f.pos
}

func (f *follower) snap(target Vec2) Vec2 {
	f.pos = target
	f.primed = true
	return f.pos
}
