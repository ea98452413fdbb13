package perm

import (
	"slices"
	"testing"

	perrors "github.com/matzehuels/permrank/pkg/errors"
)

func TestLehmer(t *testing.T) {
	tests := []struct {
		p    []int
		want Code
	}{
		{[]int{}, Code{}},
		{[]int{0}, Code{0}},
		{[]int{1, 0, 2}, Code{1, 0, 0}},
		{[]int{1, 2, 0}, Code{1, 1, 0}},
		{[]int{4, 3, 2, 1, 0}, Code{4, 3, 2, 1, 0}},
		{[]int{2, 0, 3, 1}, Code{2, 0, 1, 0}},
	}
	for _, tt := range tests {
		if got := Lehmer(tt.p); !slices.Equal(got, tt.want) {
			t.Errorf("Lehmer(%v) = %v, want %v", tt.p, got, tt.want)
		}
		if got := tt.want.Permutation(); !slices.Equal(got, tt.p) {
			t.Errorf("%v.Permutation() = %v, want %v", tt.want, got, tt.p)
		}
	}
}

func TestPermutationDoesNotModifyCode(t *testing.T) {
	code := Code{1, 0, 0}
	_ = code.Permutation()
	if !slices.Equal(code, Code{1, 0, 0}) {
		t.Errorf("Permutation modified its receiver: %v", code)
	}
}

func TestLehmerRoundTrip(t *testing.T) {
	for n := 0; n <= 6; n++ {
		for _, p := range allPermutations(n) {
			code := Lehmer(p)
			for i, d := range code {
				if d < 0 || d > n-1-i {
					t.Fatalf("Lehmer(%v)[%d] = %d, outside [0, %d]", p, i, d, n-1-i)
				}
			}
			if got := code.Permutation(); !slices.Equal(got, p) {
				t.Fatalf("Lehmer(%v).Permutation() = %v", p, got)
			}
		}
	}
}

// The codes of the permutations of five elements, listed in lexicographic
// order, are exactly the mixed-radix counters over digit ranges 5, 4, 3, 2, 1.
func TestLehmerMatchesFactoradicCounter(t *testing.T) {
	rank := uint64(0)
	for a := range 5 {
		for b := range 4 {
			for c := range 3 {
				for d := range 2 {
					want := Code{a, b, c, d, 0}
					p := Nth(rank, 5)
					if got := Lehmer(p); !slices.Equal(got, want) {
						t.Fatalf("Lehmer(Nth(%d, 5)) = %v, want %v", rank, got, want)
					}
					rank++
				}
			}
		}
	}
}

func TestLehmerStrict(t *testing.T) {
	tests := []struct {
		name string
		p    []int
		code perrors.Code
	}{
		{"valid", []int{2, 0, 1}, ""},
		{"empty", []int{}, ""},
		{"duplicate", []int{0, 0, 1}, perrors.ErrCodeInvalidPermutation},
		{"too large", []int{0, 3, 1}, perrors.ErrCodeInvalidPermutation},
		{"negative", []int{-1, 0}, perrors.ErrCodeInvalidPermutation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LehmerStrict(tt.p)
			if got := perrors.GetCode(err); got != tt.code {
				t.Errorf("LehmerStrict(%v) error code = %q, want %q (err: %v)", tt.p, got, tt.code, err)
			}
		})
	}
}

func TestPermutationStrict(t *testing.T) {
	p, err := Code{2, 0, 0}.PermutationStrict()
	if err != nil {
		t.Fatalf("PermutationStrict: %v", err)
	}
	if want := []int{2, 0, 1}; !slices.Equal(p, want) {
		t.Errorf("PermutationStrict() = %v, want %v", p, want)
	}

	if _, err := (Code{0, 2, 0}).PermutationStrict(); !perrors.Is(err, perrors.ErrCodeInvalidDigit) {
		t.Errorf("PermutationStrict() error = %v, want %s", err, perrors.ErrCodeInvalidDigit)
	}
}

func TestNewCode(t *testing.T) {
	digits := []int{1, 0, 0}
	code, err := NewCode(digits...)
	if err != nil {
		t.Fatalf("NewCode(%v): %v", digits, err)
	}
	digits[0] = 9
	if code[0] != 1 {
		t.Error("NewCode should copy its digits")
	}

	if _, err := NewCode(3, 0, 0); err == nil {
		t.Error("NewCode(3, 0, 0) should fail")
	}
}
