package perm

import "slices"

// Lehmer returns the Lehmer code of p, a permutation of [0, 1, ..., n-1].
//
// Digit i is p[i] minus the number of values left of position i that are
// smaller than p[i], i.e. the rank of p[i] among the values not yet placed.
//
// Lehmer does not validate p. Use LehmerStrict to reject inputs that are not
// permutations of [0, n-1].
func Lehmer(p []int) Code {
	code := make(Code, len(p))
	for i, v := range p {
		smaller := 0
		for _, u := range p[:i] {
			if u < v {
				smaller++
			}
		}
		code[i] = v - smaller
	}
	return code
}

// LehmerStrict is Lehmer that first checks that p is a permutation of [0, n-1].
func LehmerStrict(p []int) (Code, error) {
	if err := ValidatePermutation(p); err != nil {
		return nil, err
	}
	return Lehmer(p), nil
}

// NewCode returns digits as a validated Code.
func NewCode(digits ...int) (Code, error) {
	c := Code(slices.Clone(digits))
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Permutation decodes c back into the permutation of [0, len(c)-1] it
// describes. It is the inverse of Lehmer.
//
// Positions are processed right to left; each digit bumps every value to its
// right that is greater than or equal to it, re-inflating relative ranks into
// absolute values.
//
// Permutation does not validate c. A digit outside [0, n-1-i] yields a slice
// with duplicate or out-of-range values.
func (c Code) Permutation() []int {
	p := slices.Clone([]int(c))
	if p == nil {
		p = []int{}
	}
	for i := len(p) - 1; i >= 0; i-- {
		for j := i + 1; j < len(p); j++ {
			if p[j] >= p[i] {
				p[j]++
			}
		}
	}
	return p
}

// PermutationStrict is Permutation that first validates every digit of c.
func (c Code) PermutationStrict() ([]int, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c.Permutation(), nil
}
