package gamemath

// ClampFloat constrains a value to the range [min, max].
func ClampFloat(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// Sign returns -1, 0 or 1.
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// Overlaps reports whether the open intervals (aMin, aMax) and (bMin, bMax) intersect.
func Overlaps(aMin, aMax, bMin, bMax float64) bool {
	return aMin < bMax && aMax > bMin
}
