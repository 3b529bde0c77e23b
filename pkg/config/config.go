// Package config loads the optional tool-level settings file for the
// fontconf CLI. The library packages take everything as arguments; only
// the command line reads this.
package config

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/fontconf/pkg/errors"
	"github.com/arthur-debert/fontconf/pkg/logging"
)

// SettingsFile is the name of the tool settings file
const SettingsFile = ".fontconf.toml"

// EnvSettingsPath overrides where the settings file is looked up
const EnvSettingsPath = "FONTCONF_CONFIG"

var log = logging.GetLogger("config")

// Settings holds tool-level options from .fontconf.toml
type Settings struct {
	// DefaultConfig is the rule file resolved when no argument is given
	DefaultConfig string `toml:"default_config"`

	// MaxIncludeDepth overrides the include nesting limit when positive
	MaxIncludeDepth int `toml:"max_include_depth"`
}

// Load reads settings from the given path. A missing file is not an
// error; defaults apply.
func Load(path string) (Settings, error) {
	var s Settings

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, errors.Wrapf(err, errors.ErrConfigLoad, "reading settings file %q", path)
	}

	if err := toml.Unmarshal(data, &s); err != nil {
		return s, errors.Wrapf(err, errors.ErrConfigParse, "parsing settings file %q", path)
	}

	log.Debug().Str("path", path).Msg("Loaded tool settings")
	return s, nil
}

// Discover loads settings from FONTCONF_CONFIG if set, falling back to
// .fontconf.toml in the working directory.
func Discover() (Settings, error) {
	if path := os.Getenv(EnvSettingsPath); path != "" {
		return Load(path)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return Settings{}, errors.Wrap(err, errors.ErrConfigLoad, "resolving working directory")
	}
	return Load(filepath.Join(cwd, SettingsFile))
}
