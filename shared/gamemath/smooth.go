package gamemath

// minSmoothTime keeps the smoothing frequency finite.
const minSmoothTime = 0.0001

// SmoothDamp moves current toward target as a critically damped spring.
// velocity is the caller-owned derivative state and is updated in place.
// The result never overshoots target, so repeated calls converge
// monotonically.
func SmoothDamp(current, target float64, velocity *float64, smoothTime, deltaTime float64) float64 {
	if deltaTime <= 0 {
		return current
	}
	if smoothTime < minSmoothTime {
		smoothTime = minSmoothTime
	}

	omega := 2 / smoothTime
	x := omega * deltaTime
	decay := 1 / (1 + x + 0.48*x*x + 0.235*x*x*x)

	delta := current - target
	temp := (*velocity + omega*delta) * deltaTime
	*velocity = (*velocity - omega*temp) * decay
	output := target + (delta+temp)*decay

	// Overshoot check: the output crossed target.
	if (target-current > 0) == (output > target) {
		output = target
		*velocity = (output - target) / deltaTime
	}
	return output
}
