// Package config loads the allocation settings: the team layout and the
// seed of the single-placement shuffle.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mcoot/teamalloc/internal/model"
)

// DefaultSeed makes runs reproducible when no seed is configured
const DefaultSeed uint64 = 42

// EnvConfigPath names the environment variable holding a config file path
const EnvConfigPath = "TEAMALLOC_CONFIG"

const exampleYAML = `# teamalloc configuration
teams:
  # teams 1..primary_teams have primary_size seats
  primary_teams: 60
  primary_size: 8
  # the remaining teams have secondary_size seats
  secondary_teams: 2
  secondary_size: 7

# seed for the shuffle that orders people placed on their own
seed: 42
`

// Config is one allocation run's parameters
type Config struct {
	Teams model.Layout `yaml:"teams" json:"teams"`
	Seed  uint64       `yaml:"seed" json:"seed"`
}

// Default returns the 60x8 + 2x7 layout with the default seed
func Default() Config {
	return Config{
		Teams: model.DefaultLayout(),
		Seed:  DefaultSeed,
	}
}

// Example returns a commented YAML file holding the defaults
func Example() string {
	return exampleYAML
}

// Load reads a YAML file over the defaults. An empty path returns Default().
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	cfg, err := Parse(f)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result.
// Unknown keys are rejected.
func Parse(r io.Reader) (Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()
	if len(bytes.TrimSpace(data)) > 0 {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, fmt.Errorf("parse yaml: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the layout
func (c Config) Validate() error {
	return c.Teams.Validate()
}

// Marshal encodes the config as YAML
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
