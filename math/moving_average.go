package math

// MovingAverage keeps a windowed mean with an O(1) running-sum update.
type MovingAverage struct {
	values      []float64
	index       int
	size        int
	sum         float64
	initialized bool
	Estimate    float64
}

func (a *MovingAverage) Init(size int) {
	a.size = size
	a.values = make([]float64, size)
	a.initialized = false
	a.index = 0
	a.sum = 0
}

func (a *MovingAverage) Reset() {
	a.initialized = false
}

func (a *MovingAverage) Update(val float64) float64 {
	if !a.initialized {
		for i := range a.values {
			a.values[i] = val
		}
		a.sum = val * float64(a.size)
		a.initialized = true
		a.Estimate = val
		return val
	}
	a.index += 1
	a.index %= a.size
	a.sum -= a.values[a.index]
	a.sum += val
	a.values[a.index] = val
	a.Estimate = a.sum / float64(a.size)
	return a.Estimate
}

func (a *MovingAverage) Raw() float64 {
	return a.values[a.index]
}
