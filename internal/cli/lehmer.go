package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/permrank/pkg/perm"
)

// lehmerCommand creates the lehmer command group for the two codecs that sit
// between permutations and ranks.
func (c *CLI) lehmerCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lehmer",
		Short: "Convert between Lehmer codes, permutations and ranks",
		Long: `Convert between Lehmer codes, permutations and ranks.

A Lehmer code has one factorial-base digit per position; digit i counts the
unused values smaller than the element at position i, so it lies in 0..n-1-i.`,
	}

	cmd.AddCommand(c.lehmerEncodeCommand())
	cmd.AddCommand(c.lehmerDecodeCommand())
	cmd.AddCommand(c.lehmerToIntCommand())
	cmd.AddCommand(c.lehmerFromIntCommand())

	return cmd
}

func (c *CLI) lehmerEncodeCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "encode <permutation>",
		Short:   "Print the Lehmer code of a permutation",
		Example: `  permrank lehmer encode 1,0,2`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parseInts(args[0], c.Config.Separator)
			if err != nil {
				return err
			}
			code, err := c.lehmer(cmd.Context(), p)
			if err != nil {
				return err
			}
			return c.render(cmd, result{Lehmer: code, Permutation: p})
		},
	}
}

func (c *CLI) lehmerDecodeCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "decode <code>",
		Short:   "Print the permutation described by a Lehmer code",
		Example: `  permrank lehmer decode 1,0,0`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			digits, err := parseInts(args[0], c.Config.Separator)
			if err != nil {
				return err
			}
			p, err := c.permutation(cmd.Context(), perm.Code(digits))
			if err != nil {
				return err
			}
			return c.render(cmd, result{Lehmer: digits, Permutation: p})
		},
	}
}

func (c *CLI) lehmerToIntCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "to-int <code>",
		Short:   "Print the rank encoded by a Lehmer code",
		Example: `  permrank lehmer to-int 4,3,2,1,0`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			digits, err := parseInts(args[0], c.Config.Separator)
			if err != nil {
				return err
			}
			rank, err := c.toInt(cmd.Context(), perm.Code(digits))
			if err != nil {
				return err
			}
			return c.render(cmd, result{Rank: rank.String(), Lehmer: digits})
		},
	}
}

func (c *CLI) lehmerFromIntCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "from-int <rank> <size>",
		Short:   "Print the Lehmer code of a rank, padded to size digits",
		Example: `  permrank lehmer from-int 119 5`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rank, err := parseRank(args[0])
			if err != nil {
				return err
			}
			size, err := parseSize(args[1])
			if err != nil {
				return err
			}
			code, err := c.fromInt(cmd.Context(), rank, size)
			if err != nil {
				return err
			}
			c.warnLength(cmd, len(code), size)
			return c.render(cmd, result{Rank: rank.String(), Size: intPtr(size), Lehmer: code})
		},
	}
}
