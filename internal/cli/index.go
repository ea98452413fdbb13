package cli

import (
	"math/big"

	"github.com/spf13/cobra"
)

// indexCommand creates the index command, which ranks a permutation.
func (c *CLI) indexCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "index <permutation>",
		Short: "Print the lexicographic rank of a permutation of 0..n-1",
		Long: `Print the lexicographic rank of a permutation of 0..n-1, a number in 0..n!-1.

The permutation is a separated list of the values 0..n-1, each exactly once.`,
		Example: `  # Rank of the third permutation of three elements
  permrank index 1,0,2

  # Last permutation of five elements (5!-1 = 119)
  permrank index 4,3,2,1,0`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parseInts(args[0], c.Config.Separator)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			code, err := c.lehmer(ctx, p)
			if err != nil {
				return err
			}
			rank, err := withSpinner(ctx, cmd.ErrOrStderr(), len(p), "Ranking permutation...", func() (*big.Int, error) {
				return c.index(ctx, p)
			})
			if err != nil {
				return err
			}

			loggerFromContext(ctx).Debug("ranked permutation", "n", len(p), "rank", rank)
			return c.render(cmd, result{Rank: rank.String(), Lehmer: code, Permutation: p})
		},
	}
}
