package math

// GradeTracker maintains a rolling average of percent grade over a fixed
// window of elevation samples spaced by travelled distance, not time.
//
// Samples land in a circular buffer of (cumulative position, altitude)
// pairs. Until the buffer has wrapped once the average is zero; on the
// first wrap the mean of the pairwise grades is computed in one pass, and
// from then on each new sample swaps the oldest pairwise grade out of the
// mean in O(1).
type GradeTracker struct {
	positions []float64
	altitudes []float64
	grades    []float64
	iter      int
	rolled    bool
	size      int
	step      float64
	curDist   float64
	mean      float64
}

func NewGradeTracker(size int, stepLen float64) *GradeTracker {
	return &GradeTracker{
		positions: make([]float64, size),
		altitudes: make([]float64, size),
		grades:    make([]float64, size),
		size:      size,
		step:      stepLen,
	}
}

// Advance accumulates travelled distance and records an elevation sample
// once the accumulated distance exceeds the step length.
func (g *GradeTracker) Advance(dist, altitude float64) {
	g.curDist += dist
	if g.curDist <= g.step {
		return
	}

	prev := g.positions[g.iter]
	g.iter++
	if g.iter >= g.size {
		if !g.rolled {
			g.rolled = true
			u := 0.0
			for i := range g.size {
				rise := g.altitudes[i] - g.altitudes[(i+1)%g.size]
				run := g.positions[i] - g.positions[(i+1)%g.size]
				if run != 0 {
					g.grades[i] = rise / run * 100.
					u += g.grades[i]
				}
			}
			g.mean = u / float64(g.size)
		}
		g.iter = 0
	}

	g.altitudes[g.iter] = altitude
	g.positions[g.iter] = prev + g.curDist
	if g.rolled {
		rise := g.altitudes[g.iter] - g.altitudes[(g.iter+1)%g.size]
		run := g.positions[g.iter] - g.positions[(g.iter+1)%g.size]
		// a zero run means the vehicle did not move between samples
		if run != 0 {
			grade := rise / run * 100.
			g.mean -= g.grades[g.iter] / float64(g.size)
			g.mean += grade / float64(g.size)
			g.grades[g.iter] = grade
		}
	}
	g.curDist = 0
}

// Rolled reports whether the sample buffer has wrapped at least once.
func (g *GradeTracker) Rolled() bool {
	return g.rolled
}

// Distance is the cumulative distance at the most recent sample.
func (g *GradeTracker) Distance() float64 {
	return g.positions[g.iter]
}

// Average is the rolling mean percent grade, zero until the sample buffer
// has filled once.
func (g *GradeTracker) Average() float64 {
	if !g.rolled {
		return 0
	}
	return g.mean
}

func (g *GradeTracker) Reset() {
	for i := range g.size {
		g.positions[i] = 0
		g.altitudes[i] = 0
		g.grades[i] = 0
	}
	g.iter = 0
	g.rolled = false
	g.curDist = 0
	g.mean = 0
}
