package core

// smoothstep eases t in [0, 1] with zero velocity at both ends:
// f(0) = 0, f(0.5) = 0.5, f(1) = 1.
func smoothstep(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return t * t * (3 - 2*t)
}
