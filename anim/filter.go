package anim

// FirstOrderFilter is a single-value exponential smoother with gain
// k = dt/ts for a fixed update period.
type FirstOrderFilter struct {
	X float64
	k float64
}

func NewFirstOrderFilter(x0, ts, dt float64) FirstOrderFilter {
	k := dt / ts
	if k > 1 {
		k = 1
	}
	return FirstOrderFilter{X: x0, k: k}
}

func (f *FirstOrderFilter) Update(sample float64) float64 {
	f.X = (1.0-f.k)*f.X + f.k*sample
	return f.X
}

func (f *FirstOrderFilter) Reset(x0 float64) {
	f.X = x0
}
