// Package anim holds the continuous-time animation primitives: bounded
// exponential-approach fades and a first-order low-pass filter. Every
// instance owns its own last-update timestamp so independent animations
// stay correct under irregular ticks.
package anim

// Fade advances a bounded scalar toward a target at a per-second step
// rate, clamping at the target so it never overshoots.
type Fade struct {
	Value float64
	Min   float64
	Max   float64
	Step  float64
	lastT float64
}

func NewFade(initial, minVal, maxVal, step float64) Fade {
	return Fade{Value: initial, Min: minVal, Max: maxVal, Step: step}
}

// Advance moves Value toward target by Step per second since the previous
// call, clamped at the target and at the fade bounds.
func (f *Fade) Advance(target, now float64) float64 {
	dt := now - f.lastT
	f.lastT = now
	if dt < 0 {
		dt = 0
	}

	target = min(max(target, f.Min), f.Max)
	if f.Value < target {
		f.Value += f.Step * dt
		if f.Value > target {
			f.Value = target
		}
	} else if f.Value > target {
		f.Value -= f.Step * dt
		if f.Value < target {
			f.Value = target
		}
	}
	return f.Value
}

// Hold advances the clock without moving the value. Used while an
// animation is gated, so the first real Advance does not see a huge dt.
func (f *Fade) Hold(now float64) {
	f.lastT = now
}

// Snap forces the value immediately, keeping the clock current.
func (f *Fade) Snap(value, now float64) {
	f.Value = min(max(value, f.Min), f.Max)
	f.lastT = now
}

// Retarget recomputes the step rate so a move from the current value to
// target completes in riseDur seconds going up or fallDur going down,
// giving asymmetric attack/release timing.
func (f *Fade) Retarget(target, riseDur, fallDur float64) {
	d := target - f.Value
	dur := riseDur
	if d < 0 {
		d = -d
		dur = fallDur
	}
	if dur > 0 {
		f.Step = d / dur
	}
}
