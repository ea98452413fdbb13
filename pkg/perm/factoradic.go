package perm

import (
	"math/big"
	"slices"
)

// Code is a Lehmer code: a sequence of factorial-base digits, most
// significant first. In a valid code of length n, digit i lies in [0, n-1-i].
type Code []int

// Uint64 returns the rank encoded by c, reading the digits as a factorial-base
// number with place values ..., 3!, 2!, 1!, 0! from left to right.
//
// Uint64 does not validate c. The result is exact when c is a valid code of
// length <= MaxUint64Size; otherwise the arithmetic wraps modulo 2^64.
func (c Code) Uint64() uint64 {
	var rank uint64
	place := uint64(1)
	for pos := 1; pos <= len(c); pos++ {
		rank += uint64(c[len(c)-pos]) * place
		place *= uint64(pos)
	}
	return rank
}

// Big returns the rank encoded by c as an arbitrary-precision integer.
// Unlike Uint64 it is exact for any digits, including negative ones.
func (c Code) Big() *big.Int {
	rank := new(big.Int)
	place := big.NewInt(1)
	var term, pos big.Int
	for i := 1; i <= len(c); i++ {
		term.SetInt64(int64(c[len(c)-i]))
		rank.Add(rank, term.Mul(&term, place))
		place.Mul(place, pos.SetInt64(int64(i)))
	}
	return rank
}

// FromUint64 returns the Lehmer code of rank, left-padded with zero digits to
// size. It divides rank by the bases 1, 2, 3, ... collecting remainders until
// the quotient reaches zero.
//
// FromUint64 does not validate its inputs: a rank >= size! produces a code
// longer than size. Use FromUint64Strict to reject it.
func FromUint64(rank uint64, size int) Code {
	size = clampSize(size)
	if rank == 0 {
		return make(Code, size)
	}

	digits := make(Code, 0, size)
	for base := uint64(1); rank != 0; base++ {
		digits = append(digits, int(rank%base))
		rank /= base
	}
	return padReverse(digits, size)
}

// FromBig is FromUint64 for arbitrary-precision ranks.
//
// A negative rank is not rejected: division truncates toward zero, so the
// loop still terminates and yields a code containing negative digits.
func FromBig(rank *big.Int, size int) Code {
	size = clampSize(size)
	if rank.Sign() == 0 {
		return make(Code, size)
	}

	digits := make(Code, 0, size)
	q := new(big.Int).Set(rank)
	var base, r big.Int
	for b := int64(1); q.Sign() != 0; b++ {
		q.QuoRem(q, base.SetInt64(b), &r)
		digits = append(digits, int(r.Int64()))
	}
	return padReverse(digits, size)
}

// FromUint64Strict is FromUint64 that first checks 0 <= rank < size!.
func FromUint64Strict(rank uint64, size int) (Code, error) {
	if err := CheckRank(rank, size); err != nil {
		return nil, err
	}
	return FromUint64(rank, size), nil
}

// FromBigStrict is FromBig that first checks 0 <= rank < size!.
func FromBigStrict(rank *big.Int, size int) (Code, error) {
	if err := CheckRankBig(rank, size); err != nil {
		return nil, err
	}
	return FromBig(rank, size), nil
}

// padReverse turns least-significant-first digits into a most-significant-first
// code of at least size digits.
func padReverse(digits Code, size int) Code {
	for len(digits) < size {
		digits = append(digits, 0)
	}
	slices.Reverse(digits)
	return digits
}
