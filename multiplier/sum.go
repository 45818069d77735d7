package multiplier

// Sum returns the sum of s using native int arithmetic, wrapping on overflow
// like the strategies do.
func Sum(s []int) int {
	var total int
	for _, v := range s {
		total += v
	}
	return total
}
