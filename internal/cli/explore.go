package cli

import (
	"fmt"
	"math/big"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/permrank/pkg/perm"
)

var (
	exploreLabelStyle = lipgloss.NewStyle().Foreground(colorGray).Width(12)
	exploreCellStyle  = lipgloss.NewStyle().Foreground(colorWhite).Padding(0, 1)
	exploreDigitStyle = lipgloss.NewStyle().Foreground(colorCyan).Padding(0, 1)
)

// exploreCommand creates the explore command, an interactive rank browser.
func (c *CLI) exploreCommand() *cobra.Command {
	var start string

	cmd := &cobra.Command{
		Use:   "explore <size>",
		Short: "Browse the permutations of 0..size-1 by rank",
		Long: `Browse the permutations of 0..size-1 interactively.

Each screen shows one rank with its Lehmer code and permutation.
←/→ step one rank, pgup/pgdn step 10, home/end jump to the first and last rank.`,
		Example: `  permrank explore 4
  permrank explore 25 --rank 1000000000000000000000000`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			size, err := parseSize(args[0])
			if err != nil {
				return err
			}
			rank, err := parseRank(start)
			if err != nil {
				return err
			}
			if err := perm.CheckRankBig(rank, size); err != nil {
				return err
			}

			ctx := cmd.Context()
			prog := newProgress(loggerFromContext(ctx))
			m := newExploreModel(size, rank)
			final, err := tea.NewProgram(m,
				tea.WithContext(ctx),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			).Run()
			if err != nil {
				return err
			}
			if fm, ok := final.(exploreModel); ok {
				prog.done(fmt.Sprintf("Explored %d ranks of %d elements", fm.visited, size))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "rank", "0", "starting rank")

	return cmd
}

// =============================================================================
// exploreModel - Interactive rank browser
// =============================================================================

// exploreModel is the bubbletea model for the explore command. Ranks are
// always math/big so any size can be browsed.
type exploreModel struct {
	size    int
	rank    *big.Int
	last    *big.Int
	visited int
}

func newExploreModel(size int, rank *big.Int) exploreModel {
	last := perm.FactorialBig(size)
	last.Sub(last, big.NewInt(1))
	return exploreModel{
		size:    size,
		rank:    new(big.Int).Set(rank),
		last:    last,
		visited: 1,
	}
}

func (m exploreModel) Init() tea.Cmd {
	return nil
}

func (m exploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "right", "l", "n":
		return m.step(1), nil
	case "left", "h", "p":
		return m.step(-1), nil
	case "pgdown":
		return m.step(10), nil
	case "pgup":
		return m.step(-10), nil
	case "home", "g":
		return m.jump(new(big.Int)), nil
	case "end", "G":
		return m.jump(m.last), nil
	}
	return m, nil
}

// step moves the rank by delta, clamped to [0, last].
func (m exploreModel) step(delta int64) exploreModel {
	return m.jump(new(big.Int).Add(m.rank, big.NewInt(delta)))
}

// jump moves to rank, clamped to [0, last]. The model is a value, so the
// rank is replaced rather than mutated.
func (m exploreModel) jump(rank *big.Int) exploreModel {
	switch {
	case rank.Sign() < 0:
		rank = new(big.Int)
	case rank.Cmp(m.last) > 0:
		rank = new(big.Int).Set(m.last)
	}
	if rank.Cmp(m.rank) != 0 {
		m.rank = new(big.Int).Set(rank)
		m.visited++
	}
	return m
}

func (m exploreModel) View() string {
	code := perm.FromBig(m.rank, m.size)
	p := code.Permutation()

	var b strings.Builder
	b.WriteString(StyleTitle.Render(fmt.Sprintf("Permutations of %d elements", m.size)))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("←/→ step  pgup/pgdn ±10  home/end first/last  q quit"))
	b.WriteString("\n\n")

	b.WriteString(exploreLabelStyle.Render("Rank"))
	b.WriteString(StyleNumber.Render(m.rank.String()))
	b.WriteString(StyleDim.Render(" / " + m.last.String()))
	b.WriteString("\n")

	b.WriteString(exploreLabelStyle.Render("Lehmer"))
	b.WriteString(renderCells(code, exploreDigitStyle))
	b.WriteString("\n")

	b.WriteString(exploreLabelStyle.Render("Permutation"))
	b.WriteString(renderCells(p, exploreCellStyle))
	b.WriteString("\n")

	return b.String()
}

// renderCells lays out xs as a row of padded cells.
func renderCells(xs []int, style lipgloss.Style) string {
	cells := make([]string, len(xs))
	for i, x := range xs {
		cells[i] = style.Render(fmt.Sprintf("%d", x))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}
