package perm

import (
	"cmp"
	"math/big"

	perrors "github.com/matzehuels/permrank/pkg/errors"
)

// ValidatePermutation reports whether p contains every value in [0, len(p)-1]
// exactly once.
func ValidatePermutation(p []int) error {
	seen := make([]bool, len(p))
	for i, v := range p {
		if v < 0 || v >= len(p) {
			return perrors.New(perrors.ErrCodeInvalidPermutation,
				"value %d at position %d out of range [0, %d]", v, i, len(p)-1)
		}
		if seen[v] {
			return perrors.New(perrors.ErrCodeInvalidPermutation,
				"value %d repeated at position %d", v, i)
		}
		seen[v] = true
	}
	return nil
}

// Validate reports whether every digit i of c lies in [0, len(c)-1-i].
// The returned error wraps a *errors.DigitError naming the first bad digit.
func (c Code) Validate() error {
	for i, d := range c {
		if maxDigit := len(c) - 1 - i; d < 0 || d > maxDigit {
			return perrors.Wrap(perrors.ErrCodeInvalidDigit,
				&perrors.DigitError{Position: i, Digit: d, Max: maxDigit},
				"invalid Lehmer code")
		}
	}
	return nil
}

// CheckRank reports whether rank is in [0, size!-1].
func CheckRank(rank uint64, size int) error {
	if err := checkSize(size); err != nil {
		return err
	}
	if size > MaxUint64Size {
		// size! > 2^64, so every uint64 is in range.
		return nil
	}
	if total := Factorial(size); rank >= total {
		return perrors.New(perrors.ErrCodeRankOutOfRange,
			"rank %d out of range for size %d (max %d)", rank, size, total-1)
	}
	return nil
}

// CheckRankBig reports whether rank is in [0, size!-1].
func CheckRankBig(rank *big.Int, size int) error {
	if err := checkSize(size); err != nil {
		return err
	}
	if rank == nil {
		return perrors.New(perrors.ErrCodeRankOutOfRange, "rank is nil")
	}
	if rank.Sign() < 0 {
		return perrors.New(perrors.ErrCodeRankOutOfRange, "rank %s is negative", rank)
	}
	if total := FactorialBig(size); rank.Cmp(total) >= 0 {
		return perrors.New(perrors.ErrCodeRankOutOfRange,
			"rank %s out of range for size %d (max %s)", rank, size, total.Sub(total, big.NewInt(1)))
	}
	return nil
}

// CheckElements reports whether elements are sorted in ascending order, the
// order NthOf treats as rank 0.
func CheckElements[T cmp.Ordered](elements []T) error {
	for i := 1; i < len(elements); i++ {
		if cmp.Less(elements[i], elements[i-1]) {
			return perrors.New(perrors.ErrCodeUnsortedElements,
				"elements not in ascending order at position %d", i)
		}
	}
	return nil
}

func checkSize(size int) error {
	if size < 0 {
		return perrors.New(perrors.ErrCodeInvalidSize, "size %d is negative", size)
	}
	return nil
}

func checkUint64Size(size int) error {
	if size > MaxUint64Size {
		return perrors.New(perrors.ErrCodeOverflow,
			"ranks of %d elements exceed 64 bits (max %d elements)", size, MaxUint64Size)
	}
	return nil
}
