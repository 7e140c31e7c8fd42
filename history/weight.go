package history

import "math"

// Default deltas for --increase/--add and --decrease.
const (
	DefaultIncrease = 10
	DefaultDecrease = 15
)

// Increase accumulates in quadrature: repeated small visits grow a weight
// sub-linearly compared to one large bump.
func Increase(old, delta float64) float64 {
	return math.Sqrt(old*old + delta*delta)
}

// Decrease subtracts linearly and never goes below zero.
func Decrease(old, delta float64) float64 {
	return max(old-delta, 0)
}
