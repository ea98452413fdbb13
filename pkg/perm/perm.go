package perm

import "math/big"

// MaxUint64Size is the largest n for which every rank in [0, n!-1] fits in a
// uint64. 20! = 2,432,902,008,176,640,000 < 2^64 < 21!.
const MaxUint64Size = 20

// Seq returns a slice containing the sequence [0, 1, 2, ..., n-1].
// This is the identity permutation, i.e. the permutation of rank 0.
//
// For n <= 0, Seq returns an empty slice.
func Seq(n int) []int {
	if n < 0 {
		n = 0
	}
	result := make([]int, n)
	for i := range result {
		result[i] = i
	}
	return result
}

// Factorial returns n! (n factorial), the product 1 × 2 × ... × n.
// For n <= 1, Factorial returns 1.
//
// The result is exact for n <= MaxUint64Size and wraps modulo 2^64 beyond it.
// Use FactorialBig for larger n.
func Factorial(n int) uint64 {
	result := uint64(1)
	for i := 2; i <= n; i++ {
		result *= uint64(i)
	}
	return result
}

// FactorialBig returns n! as an arbitrary-precision integer.
// For n <= 1, FactorialBig returns 1.
func FactorialBig(n int) *big.Int {
	if n <= 1 {
		return big.NewInt(1)
	}
	return new(big.Int).MulRange(1, int64(n))
}

// clampSize treats negative sizes as zero.
func clampSize(size int) int {
	return max(size, 0)
}
