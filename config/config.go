// Package config loads the settings of the completion tool from TOML.
package config

import (
	"github.com/BurntSushi/toml"
	"github.com/docker/go-units"
	"github.com/pingcap/errors"

	"github.com/pavanmanishd/autocomplete"
	"github.com/pavanmanishd/autocomplete/internal/logutil"
)

// Config holds arena sizing, query limits and logging.
type Config struct {
	// TreeArenaSize is the capacity reserved for the prefix tree, e.g. "32MiB".
	TreeArenaSize string `toml:"tree-arena-size"`
	// ScratchArenaSize is the capacity of the per-query scratch arena.
	ScratchArenaSize string `toml:"scratch-arena-size"`
	// MaxMatches caps the completions returned for one query.
	MaxMatches int            `toml:"max-matches"`
	Log        logutil.Config `toml:"log"`
}

var defaultConf = Config{
	TreeArenaSize:    "32MiB",
	ScratchArenaSize: "64KiB",
	MaxMatches:       autocomplete.DefaultMaxMatches,
	Log: logutil.Config{
		Level:  "info",
		Format: "text",
	},
}

// NewConfig creates a new config instance with default values.
func NewConfig() *Config {
	conf := defaultConf
	return &conf
}

// Load loads config options from a toml file. Keys absent from the file keep
// their current values.
func (c *Config) Load(confFile string) error {
	meta, err := toml.DecodeFile(confFile, c)
	if err != nil {
		return errors.Trace(err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return errors.Errorf("unknown config keys in %s: %v", confFile, undecoded)
	}
	return nil
}

// TreeArenaBytes parses TreeArenaSize.
func (c *Config) TreeArenaBytes() (int, error) {
	return parseSize("tree-arena-size", c.TreeArenaSize)
}

// ScratchArenaBytes parses ScratchArenaSize.
func (c *Config) ScratchArenaBytes() (int, error) {
	return parseSize("scratch-arena-size", c.ScratchArenaSize)
}

// Validate checks that the sizes parse and that the scratch arena can hold
// the largest possible answer to one query.
func (c *Config) Validate() error {
	if c.MaxMatches <= 0 {
		return errors.Errorf("max-matches must be positive, got %d", c.MaxMatches)
	}
	if _, err := c.TreeArenaBytes(); err != nil {
		return err
	}
	scratch, err := c.ScratchArenaBytes()
	if err != nil {
		return err
	}
	if need := autocomplete.ScratchSize(c.MaxMatches); scratch < need {
		return errors.Errorf("scratch-arena-size %s is too small for %d matches, need at least %s",
			c.ScratchArenaSize, c.MaxMatches, units.BytesSize(float64(need)))
	}
	return nil
}

func parseSize(key, s string) (int, error) {
	n, err := units.RAMInBytes(s)
	if err != nil {
		return 0, errors.Annotatef(err, "invalid %s", key)
	}
	if n <= 0 {
		return 0, errors.Errorf("%s must be positive, got %q", key, s)
	}
	return int(n), nil
}
