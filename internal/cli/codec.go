package cli

import (
	"cmp"
	"context"
	"math/big"

	"github.com/matzehuels/permrank/pkg/config"
	perrors "github.com/matzehuels/permrank/pkg/errors"
	"github.com/matzehuels/permrank/pkg/observability"
	"github.com/matzehuels/permrank/pkg/perm"
)

// The methods below route each codec operation through the uint64 or
// math/big implementation according to the configured precision, apply
// strict validation when enabled and report the call to the codec hooks.

// useUint64 reports whether an operation on size elements with the given
// rank should take the uint64 path.
func (c *CLI) useUint64(rank *big.Int, size int) (bool, error) {
	switch c.Config.Precision {
	case config.PrecisionBig:
		return false, nil
	case config.PrecisionUint64:
		if !rank.IsUint64() {
			return false, perrors.New(perrors.ErrCodeOverflow, "rank %s does not fit in 64 bits", rank)
		}
		return true, nil
	default:
		return rank.IsUint64() && size <= perm.MaxUint64Size, nil
	}
}

// exactUint64 reports whether ranks of size elements fit the uint64 path,
// failing when uint64 precision is forced on a wider input.
func (c *CLI) exactUint64(size int) (bool, error) {
	switch c.Config.Precision {
	case config.PrecisionBig:
		return false, nil
	case config.PrecisionUint64:
		if size > perm.MaxUint64Size {
			return false, perrors.New(perrors.ErrCodeOverflow,
				"ranks of %d elements exceed 64 bits (max %d elements)", size, perm.MaxUint64Size)
		}
		return true, nil
	default:
		return size <= perm.MaxUint64Size, nil
	}
}

// fromInt converts rank into a Lehmer code of size digits.
func (c *CLI) fromInt(ctx context.Context, rank *big.Int, size int) (code perm.Code, err error) {
	done := observability.Track(ctx, observability.OpFromInt, size)
	defer func() { done(err) }()

	small, err := c.useUint64(rank, size)
	if err != nil {
		return nil, err
	}
	switch {
	case small && c.Config.Strict:
		return perm.FromUint64Strict(rank.Uint64(), size)
	case small:
		return perm.FromUint64(rank.Uint64(), size), nil
	case c.Config.Strict:
		return perm.FromBigStrict(rank, size)
	default:
		return perm.FromBig(rank, size), nil
	}
}

// toInt converts a Lehmer code into its rank.
func (c *CLI) toInt(ctx context.Context, code perm.Code) (rank *big.Int, err error) {
	done := observability.Track(ctx, observability.OpToInt, len(code))
	defer func() { done(err) }()

	valid := code.Validate()
	if c.Config.Strict && valid != nil {
		return nil, valid
	}
	small, err := c.exactUint64(len(code))
	if err != nil {
		return nil, err
	}
	if small && (valid == nil || c.Config.Precision == config.PrecisionUint64) {
		return new(big.Int).SetUint64(code.Uint64()), nil
	}
	return code.Big(), nil
}

// lehmer encodes a permutation into its Lehmer code.
func (c *CLI) lehmer(ctx context.Context, p []int) (code perm.Code, err error) {
	done := observability.Track(ctx, observability.OpLehmer, len(p))
	defer func() { done(err) }()

	if c.Config.Strict {
		return perm.LehmerStrict(p)
	}
	return perm.Lehmer(p), nil
}

// permutation decodes a Lehmer code into its permutation.
func (c *CLI) permutation(ctx context.Context, code perm.Code) (p []int, err error) {
	done := observability.Track(ctx, observability.OpPermutation, len(code))
	defer func() { done(err) }()

	if c.Config.Strict {
		return code.PermutationStrict()
	}
	return code.Permutation(), nil
}

// index returns the rank of permutation p.
func (c *CLI) index(ctx context.Context, p []int) (rank *big.Int, err error) {
	done := observability.Track(ctx, observability.OpIndex, len(p))
	defer func() { done(err) }()

	valid := perm.ValidatePermutation(p)
	if c.Config.Strict && valid != nil {
		return nil, valid
	}
	small, err := c.exactUint64(len(p))
	if err != nil {
		return nil, err
	}
	if small && (valid == nil || c.Config.Precision == config.PrecisionUint64) {
		return new(big.Int).SetUint64(perm.Index(p)), nil
	}
	return perm.IndexBig(p), nil
}

// nth returns the permutation of size elements with the given rank.
func (c *CLI) nth(ctx context.Context, rank *big.Int, size int) (p []int, err error) {
	done := observability.Track(ctx, observability.OpNth, size)
	defer func() { done(err) }()

	small, err := c.useUint64(rank, size)
	if err != nil {
		return nil, err
	}
	switch {
	case small && c.Config.Strict:
		return perm.NthStrict(rank.Uint64(), size)
	case small:
		return perm.Nth(rank.Uint64(), size), nil
	case c.Config.Strict:
		return perm.NthBigStrict(rank, size)
	default:
		return perm.NthBig(rank, size), nil
	}
}

// nthOf arranges elements into their rank-th permutation. Unchecked mode
// still converts the out-of-range panic of perm.NthOf into an error.
func nthOf[T cmp.Ordered](ctx context.Context, c *CLI, rank *big.Int, elements []T) (out []T, err error) {
	done := observability.Track(ctx, observability.OpNthOf, len(elements))
	defer func() { done(err) }()

	small, err := c.useUint64(rank, len(elements))
	if err != nil {
		return nil, err
	}
	if c.Config.Strict {
		if small {
			return perm.NthOfStrict(rank.Uint64(), elements)
		}
		return perm.NthOfBigStrict(rank, elements)
	}

	defer func() {
		if r := recover(); r != nil {
			out = nil
			err = perrors.New(perrors.ErrCodeRankOutOfRange,
				"rank %s indexes past %d elements", rank, len(elements))
		}
	}()
	if small {
		return perm.NthOf(rank.Uint64(), elements), nil
	}
	return perm.NthOfBig(rank, elements), nil
}
