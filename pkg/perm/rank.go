package perm

import "math/big"

// Index returns the rank of p among all permutations of [0, n-1] in
// lexicographic order. It composes Lehmer and Code.Uint64.
//
// The result is only exact for len(p) <= MaxUint64Size; use IndexBig beyond.
func Index(p []int) uint64 {
	return Lehmer(p).Uint64()
}

// IndexBig is Index with an arbitrary-precision result.
func IndexBig(p []int) *big.Int {
	return Lehmer(p).Big()
}

// Nth returns the permutation of [0, size-1] with the given rank, where rank
// is in [0, size!-1]. Rank 0 is the identity and rank size!-1 the reversal.
//
// Nth does not validate rank; a rank >= size! yields a slice longer than size.
func Nth(rank uint64, size int) []int {
	return FromUint64(rank, size).Permutation()
}

// NthBig is Nth for arbitrary-precision ranks.
func NthBig(rank *big.Int, size int) []int {
	return FromBig(rank, size).Permutation()
}

// IndexStrict is Index that rejects inputs which are not permutations and
// permutations whose rank may not fit in a uint64.
func IndexStrict(p []int) (uint64, error) {
	if err := ValidatePermutation(p); err != nil {
		return 0, err
	}
	if err := checkUint64Size(len(p)); err != nil {
		return 0, err
	}
	return Index(p), nil
}

// IndexBigStrict is IndexBig that rejects inputs which are not permutations.
func IndexBigStrict(p []int) (*big.Int, error) {
	if err := ValidatePermutation(p); err != nil {
		return nil, err
	}
	return IndexBig(p), nil
}

// NthStrict is Nth that first checks 0 <= rank < size!.
func NthStrict(rank uint64, size int) ([]int, error) {
	code, err := FromUint64Strict(rank, size)
	if err != nil {
		return nil, err
	}
	return code.Permutation(), nil
}

// NthBigStrict is NthBig that first checks 0 <= rank < size!.
func NthBigStrict(rank *big.Int, size int) ([]int, error) {
	code, err := FromBigStrict(rank, size)
	if err != nil {
		return nil, err
	}
	return code.Permutation(), nil
}
