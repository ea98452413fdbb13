package perm

import "slices"

// allPermutations returns every permutation of [0, n-1] using Heap's
// algorithm. The order is not lexicographic.
func allPermutations(n int) [][]int {
	if n == 0 {
		return [][]int{{}}
	}

	p := Seq(n)
	state := make([]int, n)
	result := make([][]int, 0, Factorial(n))
	result = append(result, slices.Clone(p))

	for i := 0; i < n; {
		if state[i] < i {
			if i&1 == 0 {
				p[0], p[i] = p[i], p[0]
			} else {
				p[state[i]], p[i] = p[i], p[state[i]]
			}
			result = append(result, slices.Clone(p))
			state[i]++
			i = 0
		} else {
			state[i] = 0
			i++
		}
	}
	return result
}

// reversed returns [n-1, ..., 1, 0], the permutation of rank n!-1.
func reversed(n int) []int {
	p := Seq(n)
	slices.Reverse(p)
	return p
}
