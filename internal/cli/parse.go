package cli

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/samber/lo"

	perrors "github.com/matzehuels/permrank/pkg/errors"
)

// splitList splits s on sep and trims every item. An empty or blank s is an
// empty list.
func splitList(s, sep string) []string {
	if strings.TrimSpace(s) == "" {
		return []string{}
	}
	return lo.Map(strings.Split(s, sep), func(item string, _ int) string {
		return strings.TrimSpace(item)
	})
}

// parseInts parses a separated list of integers such as "1,0,2".
func parseInts(s, sep string) ([]int, error) {
	items := splitList(s, sep)
	result := make([]int, len(items))
	for i, item := range items {
		n, err := strconv.Atoi(item)
		if err != nil {
			return nil, perrors.New(perrors.ErrCodeInvalidInput, "invalid integer %q at position %d", item, i)
		}
		result[i] = n
	}
	return result, nil
}

// parseRank parses a decimal rank of any size. Prefixes 0x, 0o and 0b select
// other bases.
func parseRank(s string) (*big.Int, error) {
	rank, ok := new(big.Int).SetString(strings.TrimSpace(s), 0)
	if !ok {
		return nil, perrors.New(perrors.ErrCodeInvalidInput, "invalid rank %q", s)
	}
	return rank, nil
}

// parseSize parses a non-negative element count.
func parseSize(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, perrors.New(perrors.ErrCodeInvalidInput, "invalid size %q", s)
	}
	if n < 0 {
		return 0, perrors.New(perrors.ErrCodeInvalidSize, "size %d is negative", n)
	}
	return n, nil
}

// joinInts formats xs with sep, the inverse of parseInts.
func joinInts(xs []int, sep string) string {
	return strings.Join(lo.Map(xs, func(x int, _ int) string {
		return strconv.Itoa(x)
	}), sep)
}
