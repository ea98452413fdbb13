package cli

import (
	"strconv"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// arrangeCommand creates the arrange command, which unranks an arbitrary
// sorted element list (duplicates allowed).
func (c *CLI) arrangeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "arrange <rank> <elements>",
		Short: "Arrange a sorted element list into its rank-th permutation",
		Long: `Arrange a separated, ascending element list into its rank-th permutation.

Elements are compared as integers when all of them are integers and as
strings otherwise. Duplicates are allowed; positions rather than values are
ranked, so the rank space is always len(elements)! and different ranks can
produce the same arrangement.`,
		Example: `  permrank arrange 2 0,1,1,2,3,5
  permrank arrange 3 blue,green,red`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rank, err := parseRank(args[0])
			if err != nil {
				return err
			}
			items := splitList(args[1], c.Config.Separator)

			ctx := cmd.Context()
			var arrangement []string
			if ints, err := parseInts(args[1], c.Config.Separator); err == nil {
				out, err := nthOf(ctx, c, rank, ints)
				if err != nil {
					return err
				}
				arrangement = lo.Map(out, func(v int, _ int) string { return strconv.Itoa(v) })
			} else {
				arrangement, err = nthOf(ctx, c, rank, items)
				if err != nil {
					return err
				}
			}

			c.warnLength(cmd, len(arrangement), len(items))
			return c.render(cmd, result{Rank: rank.String(), Size: intPtr(len(items)), Arrangement: arrangement})
		},
	}
}
