package math

func Clamp[T float32 | float64 | int](val, low, high T) T {
	return min(max(val, low), high)
}
