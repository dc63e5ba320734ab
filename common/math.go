package common

// FeeRate is the fee in parts per thousand charged on activation and payouts.
const FeeRate = 5

// CalculateFee returns floor(FeeRate * amount / 1000).
func CalculateFee(amount int) int {
	return FeeRate * amount / 1000
}

// Percent returns numerator/denominator scaled by 10^precision with
// round-half-up, e.g. Percent(1, 3, 2) == 33.
func Percent(numerator, denominator, precision int) int {
	if denominator <= 0 {
		panic(ErrInvalidParameter + ": denominator")
	}
	scale := 10
	for i := 0; i < precision; i++ {
		scale *= 10
	}
	return (numerator*scale/denominator + 5) / 10
}

// CeilDiv returns ceil(a / b) for non-negative a and positive b.
func CeilDiv(a, b int) int {
	return (a + b - 1) / b
}
