package xdh

import "math/bits"

// mulAcc computes (hi:lo) += a*b as an unsigned 128-bit accumulator,
// returning the updated pair. Used by both field multiplications to fold
// cross-products into wide columns before the carry/reduce passes.
func mulAcc(hi, lo, a, b uint64) (uint64, uint64) {
	h, l := bits.Mul64(a, b)
	nlo, c := bits.Add64(lo, l, 0)
	nhi, _ := bits.Add64(hi, h, c)
	return nhi, nlo
}
