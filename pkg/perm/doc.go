// Package perm maps permutations to integer ranks and back through Lehmer
// codes.
//
// # Overview
//
// A permutation of [0, 1, ..., n-1] has n! possible orderings. This package
// addresses each of them by a single integer in [0, n!-1], so a permutation
// can be stored, sampled or indexed as a number instead of a slice:
//
//	Permutation  ⇄  Lehmer code  ⇄  Rank
//	[1 0 2]          [1 0 0]         3
//
// The ordering induced by ranks is the standard lexicographic order: rank 0
// is [0 1 ... n-1] and rank n!-1 is [n-1 ... 1 0].
//
// # Lehmer Codes
//
// A [Code] is a sequence of factorial-base digits. Digit i counts the unused
// values smaller than the element placed at position i, so it always lies in
// [0, n-1-i]. The digits are the mixed-radix representation of the rank with
// place values (n-1-i)!:
//
//	code := perm.Lehmer([]int{1, 0, 2}) // [1 0 0]
//	rank := code.Uint64()                // 3
//	p := perm.FromUint64(3, 3).Permutation()
//
// # Ranks and Precision
//
// Factorials outgrow machine words quickly: 13! exceeds 32 bits and 21!
// exceeds 64 bits. Every rank operation comes in a uint64 form, exact for
// n <= [MaxUint64Size], and a [math/big] form for any n:
//
//	perm.Index([]int{4, 3, 2, 1, 0})   // 119
//	perm.NthBig(big.NewInt(119), 5)    // [4 3 2 1 0]
//
// # Multisets
//
// [NthOf] generalizes [Nth] to arbitrary ascending element sequences. Each
// Lehmer digit is used as a remove-index into a shrinking copy of the
// elements. Duplicates are allowed, but positions rather than values are
// ranked, so the rank space is still len(elements)! and distinct ranks may
// produce identical arrangements:
//
//	perm.NthOf(2, []int{0, 1, 1, 2, 3, 5}) // [0 1 1 3 2 5]
//
// # Strict Mode
//
// The plain functions do not validate their inputs. Out-of-range ranks give
// over-long codes and malformed codes give malformed permutations, the same
// way the reference algorithm behaves. The *Strict variants check every
// precondition first and return a structured error from
// [github.com/matzehuels/permrank/pkg/errors] instead:
//
//	p, err := perm.NthStrict(120, 5)
//	// err: RANK_OUT_OF_RANGE: rank 120 out of range for size 5 (max 119)
//
// All functions are pure. They never retain or modify caller slices and are
// safe for concurrent use.
package perm
