package perm

import (
	"cmp"
	"math/big"
	"slices"
)

// NthOf arranges elements into their rank-th permutation, where rank is in
// [0, len(elements)!-1].
//
// elements must be sorted ascending and contain every required duplicate.
// Each Lehmer digit of rank is used as an index into a working copy of
// elements, removing the chosen element before the next digit is read.
// Without duplicates the result matches Nth applied to indices; with
// duplicates, positions are ranked rather than values, so distinct ranks can
// yield identical arrangements.
//
// NthOf validates nothing and never modifies elements. It panics if
// rank >= len(elements)!, since the code then indexes past the pool.
func NthOf[T any](rank uint64, elements []T) []T {
	return arrange(FromUint64(rank, len(elements)), elements)
}

// NthOfBig is NthOf for arbitrary-precision ranks.
func NthOfBig[T any](rank *big.Int, elements []T) []T {
	return arrange(FromBig(rank, len(elements)), elements)
}

// NthOfStrict is NthOf that first checks that elements are sorted ascending
// and that 0 <= rank < len(elements)!.
func NthOfStrict[T cmp.Ordered](rank uint64, elements []T) ([]T, error) {
	if err := CheckElements(elements); err != nil {
		return nil, err
	}
	code, err := FromUint64Strict(rank, len(elements))
	if err != nil {
		return nil, err
	}
	return arrange(code, elements), nil
}

// NthOfBigStrict is NthOfBig with the checks of NthOfStrict.
func NthOfBigStrict[T cmp.Ordered](rank *big.Int, elements []T) ([]T, error) {
	if err := CheckElements(elements); err != nil {
		return nil, err
	}
	code, err := FromBigStrict(rank, len(elements))
	if err != nil {
		return nil, err
	}
	return arrange(code, elements), nil
}

// arrange pops pool[d] for each digit d of code in order.
func arrange[T any](code Code, elements []T) []T {
	pool := slices.Clone(elements)
	out := make([]T, 0, len(code))
	for _, d := range code {
		out = append(out, pool[d])
		pool = slices.Delete(pool, d, d+1)
	}
	return out
}
