package ftracker

import "math"

// floorDiv divides a by b rounding toward negative infinity the way
// Python's float // does: the quotient is derived from math.Mod, so
// 169 // 1.3 is 129 even though 169 / 1.3 rounds to 130.
func floorDiv(a, b float64) float64 {
	mod := math.Mod(a, b)
	div := (a - mod) / b
	if mod != 0 && (b < 0) != (mod < 0) {
		div--
	}
	if div == 0 {
		return math.Copysign(0, a/b)
	}

	f := math.Floor(div)
	if div-f > 0.5 {
		f++
	}
	return f
}
