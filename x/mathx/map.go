package mathx

import "golang.org/x/exp/constraints"

// MapRound maps v in [minIn,maxIn] to [minOut,maxOut] with round-to-nearest
// instead of truncation. Plain integer interpolation is not symmetric under a
// forward-then-inverse round trip because truncating division biases the
// result downward; doubling the scale and adding a half unit before the final
// halving removes that bias, so MapRound(MapRound(v, a, b, c, d), c, d, a, b)
// recovers v for ordinary servo ranges.
//
// Intermediate products must fit in T; keep inputs to firmware-sized ranges.
func MapRound[T constraints.Signed](v, minIn, maxIn, minOut, maxOut T) T {
	rangeIn := maxIn - minIn
	if rangeIn == 0 {
		return minOut
	}
	rangeOut := maxOut - minOut
	delta := v - minIn
	return (delta*rangeOut*2/rangeIn+1)/2 + minOut
}
