package core

import (
	"math"
	"time"
)

// Curve is the cooldown schedule of one phase. First applies on phase
// entry, Last after the step that completes the phase, and the steps in
// between wait Base*Decay^progress, never less than Min.
type Curve struct {
	First time.Duration
	Base  time.Duration
	Decay float64
	Last  time.Duration
	Min   time.Duration
}

// Delay returns the cooldown after a working step at the given progress.
func (c Curve) Delay(progress int) time.Duration {
	if progress < 0 {
		progress = 0
	}
	d := time.Duration(float64(c.Base) * math.Pow(c.Decay, float64(progress)))
	if d < c.Min {
		d = c.Min
	}
	return d
}

// Pacing holds a curve per automatic phase. The zero value steps instantly.
type Pacing struct {
	Setup   Curve
	Reactor Curve // powering the chain; progress is chain-1
	Resolve Curve // resolving activated slots
	Enemy   Curve
}
