package kernel

import "math"

// RoundAmount rounds a currency amount to cents.
func RoundAmount(v float64) float64 {
	return math.Round(v*100) / 100
}
