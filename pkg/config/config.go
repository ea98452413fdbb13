// Package config loads permrank settings from a TOML file.
//
// The file is optional. Without it the CLI runs with [Default]:
//
//	strict    = true     # validate every input before encoding or decoding
//	precision = "auto"   # auto | uint64 | big
//	format    = "text"   # text | json
//	separator = ","      # list separator for permutations and codes
//
// The default location follows the XDG base directory convention:
// $XDG_CONFIG_HOME/permrank/config.toml, falling back to
// ~/.config/permrank/config.toml.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	perrors "github.com/matzehuels/permrank/pkg/errors"
)

const (
	// appName is the directory name used under the config home.
	appName = "permrank"

	// fileName is the config file name inside the app directory.
	fileName = "config.toml"
)

// Precision selects the integer width used for ranks.
const (
	PrecisionAuto   = "auto"
	PrecisionUint64 = "uint64"
	PrecisionBig    = "big"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

var (
	precisions = []string{PrecisionAuto, PrecisionUint64, PrecisionBig}
	formats    = []string{FormatText, FormatJSON}
)

// Config holds user-tunable CLI settings.
type Config struct {
	// Strict rejects out-of-range ranks, malformed codes and unsorted
	// element pools instead of producing malformed results.
	Strict bool `toml:"strict"`

	// Precision is one of PrecisionAuto, PrecisionUint64 or PrecisionBig.
	Precision string `toml:"precision"`

	// Format is one of FormatText or FormatJSON.
	Format string `toml:"format"`

	// Separator splits list arguments and joins list output.
	Separator string `toml:"separator"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Strict:    true,
		Precision: PrecisionAuto,
		Format:    FormatText,
		Separator: ",",
	}
}

// Validate checks that every field holds a supported value.
func (c Config) Validate() error {
	if !slices.Contains(precisions, c.Precision) {
		return perrors.New(perrors.ErrCodeConfig,
			"unknown precision %q (want one of %s)", c.Precision, strings.Join(precisions, ", "))
	}
	if !slices.Contains(formats, c.Format) {
		return perrors.New(perrors.ErrCodeConfig,
			"unknown format %q (want one of %s)", c.Format, strings.Join(formats, ", "))
	}
	if c.Separator == "" {
		return perrors.New(perrors.ErrCodeConfig, "separator cannot be empty")
	}
	return nil
}

// Parse decodes TOML data on top of Default. Unknown keys are rejected.
func Parse(data string) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return Config{}, perrors.Wrap(perrors.ErrCodeConfig, err, "parse config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, perrors.New(perrors.ErrCodeConfig, "unknown config keys: %s", strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads the config at path. An empty path means DefaultPath; a missing
// file at the default path yields Default, while a missing explicit path is
// an error.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return Default(), nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, perrors.Wrap(perrors.ErrCodeConfig, err, "read %s", path)
	}

	cfg, err := Parse(string(data))
	if err != nil {
		return Config{}, perrors.Wrap(perrors.ErrCodeConfig, err, "load %s", path)
	}
	return cfg, nil
}

// DefaultPath returns the config file location using the XDG standard
// (~/.config/permrank/config.toml).
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, fileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, fileName), nil
}
