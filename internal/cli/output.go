package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/permrank/pkg/config"
)

// result is the output of a single command. Zero fields are not printed.
type result struct {
	Rank        string   `json:"rank,omitzero"`
	Size        *int     `json:"size,omitzero"`
	Lehmer      []int    `json:"lehmer,omitzero"`
	Permutation []int    `json:"permutation,omitzero"`
	Arrangement []string `json:"arrangement,omitzero"`
}

// render writes res to the command's stdout in the configured format.
func (c *CLI) render(cmd *cobra.Command, res result) error {
	w := cmd.OutOrStdout()
	if c.Config.Format == config.FormatJSON {
		enc := json.NewEncoder(w)
		return enc.Encode(res)
	}
	c.renderText(w, res)
	return nil
}

func (c *CLI) renderText(w io.Writer, res result) {
	sep := c.Config.Separator
	if res.Size != nil {
		printKeyValue(w, "Size", fmt.Sprintf("%d", *res.Size))
	}
	if res.Rank != "" {
		printKeyValue(w, "Rank", StyleNumber.Render(res.Rank))
	}
	if res.Lehmer != nil {
		printKeyValue(w, "Lehmer", joinInts(res.Lehmer, sep))
	}
	if res.Permutation != nil {
		printKeyValue(w, "Permutation", joinInts(res.Permutation, sep))
	}
	if res.Arrangement != nil {
		printKeyValue(w, "Arrangement", strings.Join(res.Arrangement, sep))
	}
}

// warnLength reports unchecked results whose length does not match the
// input size, the visible symptom of an out-of-range rank.
func (c *CLI) warnLength(cmd *cobra.Command, got, want int) {
	if got != want {
		printWarning(cmd.ErrOrStderr(), "result has %d elements, expected %d (rank out of range)", got, want)
	}
}

func intPtr(n int) *int { return &n }
