package trend

// Sign classifies x as -1, 0 or +1. Only an exact zero (or NaN, which carries
// no direction) maps to 0.
func Sign(x float64) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
