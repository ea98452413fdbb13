package cli

import (
	"github.com/spf13/cobra"
)

// nthCommand creates the nth command, which unranks a permutation.
func (c *CLI) nthCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "nth <rank> <size>",
		Short: "Print the permutation of 0..size-1 with the given rank",
		Long: `Print the permutation of 0..size-1 at position rank in lexicographic order.

The rank must be in 0..size!-1 unless --unchecked is set. Ranks may be
arbitrarily large; they are parsed as decimal, or with a 0x, 0o or 0b prefix.`,
		Example: `  # Identity and reversal of five elements
  permrank nth 0 5
  permrank nth 119 5

  # Ranks beyond 64 bits
  permrank nth 1000000000000000000000000 25`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rank, err := parseRank(args[0])
			if err != nil {
				return err
			}
			size, err := parseSize(args[1])
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			code, err := c.fromInt(ctx, rank, size)
			if err != nil {
				return err
			}
			p, err := withSpinner(ctx, cmd.ErrOrStderr(), size, "Unranking permutation...", func() ([]int, error) {
				return c.nth(ctx, rank, size)
			})
			if err != nil {
				return err
			}

			c.warnLength(cmd, len(p), size)
			return c.render(cmd, result{Rank: rank.String(), Size: intPtr(size), Lehmer: code, Permutation: p})
		},
	}
}
