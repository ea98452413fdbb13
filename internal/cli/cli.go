// Package cli implements the permrank command-line interface.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/permrank/pkg/buildinfo"
	"github.com/matzehuels/permrank/pkg/config"
	"github.com/matzehuels/permrank/pkg/observability"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display.
	appName = "permrank"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config config.Config

	// flag values, applied over the loaded config in PersistentPreRunE
	configPath string
	unchecked  bool
	precision  string
	format     string
	separator  string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Permrank converts permutations to ranks and back",
		Long: `Permrank maps permutations of 0..n-1 to their lexicographic rank in 0..n!-1
and back, through Lehmer codes (factorial-base digits). It also arranges
arbitrary sorted element lists, duplicates included, by rank.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	flags := root.PersistentFlags()
	flags.StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/permrank/config.toml)")
	flags.BoolVar(&c.unchecked, "unchecked", false, "skip input validation and reproduce raw codec output")
	flags.StringVar(&c.precision, "precision", "", "rank precision: auto, uint64 or big")
	flags.StringVar(&c.format, "format", "", "output format: text or json")
	flags.StringVar(&c.separator, "separator", "", "list separator")

	// Register all subcommands
	root.AddCommand(c.indexCommand())
	root.AddCommand(c.nthCommand())
	root.AddCommand(c.arrangeCommand())
	root.AddCommand(c.lehmerCommand())
	root.AddCommand(c.exploreCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// setup loads the config file, applies flag overrides and installs the
// logging hooks.
func (c *CLI) setup(cmd *cobra.Command) error {
	ctx := withLogger(cmd.Context(), c.Logger)
	cmd.SetContext(ctx)

	observability.SetCodecHooks(newLogHooks(c.Logger))
	observability.SetConfigHooks(newLogHooks(c.Logger))

	cfg, err := config.Load(c.configPath)
	observability.Config().OnConfigLoad(ctx, c.configPath, err)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("unchecked") {
		cfg.Strict = !c.unchecked
	}
	if flags.Changed("precision") {
		cfg.Precision = c.precision
	}
	if flags.Changed("format") {
		cfg.Format = c.format
	}
	if flags.Changed("separator") {
		cfg.Separator = c.separator
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	c.Config = cfg
	c.Logger.Debug("config", "strict", cfg.Strict, "precision", cfg.Precision, "format", cfg.Format)
	return nil
}
