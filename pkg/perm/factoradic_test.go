package perm

import (
	"math/big"
	"slices"
	"testing"
)

func TestCodeUint64(t *testing.T) {
	tests := []struct {
		name string
		code Code
		want uint64
	}{
		{"empty", Code{}, 0},
		{"single", Code{0}, 0},
		{"swap", Code{1, 0, 0}, 2},
		{"mixed", Code{1, 1, 0}, 3},
		{"last of five", Code{4, 3, 2, 1, 0}, 119},
		{"first of five", Code{0, 0, 0, 0, 0}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.code.Uint64(); got != tt.want {
				t.Errorf("%v.Uint64() = %d, want %d", tt.code, got, tt.want)
			}
			if got := tt.code.Big(); !got.IsUint64() || got.Uint64() != tt.want {
				t.Errorf("%v.Big() = %s, want %d", tt.code, got, tt.want)
			}
		})
	}
}

func TestFromUint64(t *testing.T) {
	tests := []struct {
		name string
		rank uint64
		size int
		want Code
	}{
		{"zero size", 0, 0, Code{}},
		{"zero rank padded", 0, 3, Code{0, 0, 0}},
		{"rank two", 2, 3, Code{1, 0, 0}},
		{"rank three", 3, 3, Code{1, 1, 0}},
		{"last of five", 119, 5, Code{4, 3, 2, 1, 0}},
		{"negative size", 0, -2, Code{}},
		{"natural length", 5, 0, Code{2, 1, 0}},
		{"out of range grows", 6, 3, Code{1, 0, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromUint64(tt.rank, tt.size); !slices.Equal(got, tt.want) {
				t.Errorf("FromUint64(%d, %d) = %v, want %v", tt.rank, tt.size, got, tt.want)
			}
			if got := FromBig(new(big.Int).SetUint64(tt.rank), tt.size); !slices.Equal(got, tt.want) {
				t.Errorf("FromBig(%d, %d) = %v, want %v", tt.rank, tt.size, got, tt.want)
			}
		})
	}
}

func TestFromBigNegative(t *testing.T) {
	code := FromBig(big.NewInt(-3), 3)
	if want := (Code{-1, -1, 0}); !slices.Equal(code, want) {
		t.Fatalf("FromBig(-3, 3) = %v, want %v", code, want)
	}
	if got := code.Big(); got.Int64() != -3 {
		t.Errorf("%v.Big() = %s, want -3", code, got)
	}
}

func TestFactoradicRoundTrip(t *testing.T) {
	for n := 0; n <= 6; n++ {
		total := Factorial(n)
		for rank := uint64(0); rank < total; rank++ {
			code := FromUint64(rank, n)
			if len(code) != n {
				t.Fatalf("FromUint64(%d, %d) has length %d", rank, n, len(code))
			}
			if err := code.Validate(); err != nil {
				t.Fatalf("FromUint64(%d, %d) = %v: %v", rank, n, code, err)
			}
			if got := code.Uint64(); got != rank {
				t.Fatalf("FromUint64(%d, %d).Uint64() = %d", rank, n, got)
			}
		}
	}
}

func TestFactoradicBigRoundTrip(t *testing.T) {
	for _, n := range []int{21, 25, 40} {
		last := FactorialBig(n)
		last.Sub(last, big.NewInt(1))

		code := FromBig(last, n)
		for i, d := range code {
			if d != n-1-i {
				t.Fatalf("FromBig(%d!-1, %d)[%d] = %d, want %d", n, n, i, d, n-1-i)
			}
		}
		if got := code.Big(); got.Cmp(last) != 0 {
			t.Errorf("round trip of %d!-1 = %s, want %s", n, got, last)
		}
	}
}

func TestFromUint64Strict(t *testing.T) {
	if _, err := FromUint64Strict(6, 3); err == nil {
		t.Error("FromUint64Strict(6, 3) should fail")
	}
	code, err := FromUint64Strict(5, 3)
	if err != nil {
		t.Fatalf("FromUint64Strict(5, 3): %v", err)
	}
	if want := (Code{2, 1, 0}); !slices.Equal(code, want) {
		t.Errorf("FromUint64Strict(5, 3) = %v, want %v", code, want)
	}

	if _, err := FromBigStrict(big.NewInt(-1), 3); err == nil {
		t.Error("FromBigStrict(-1, 3) should fail")
	}
}
