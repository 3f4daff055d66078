package cmd

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/medband-sim/medband-sim/sim"
	"github.com/medband-sim/medband-sim/sim/snana"
)

// Config represents the full config file structure.
// All top-level sections must be listed to satisfy KnownFields(true) strict parsing.
type Config struct {
	Simulator  snana.Config    `yaml:"simulator"`
	Supernovae []sim.Supernova `yaml:"supernovae"`
	Grid       sim.GridRequest `yaml:"grid"`
}

// LoadConfig parses a YAML config file. Grid keys left out of the file keep
// the values of sim.DefaultGridRequest.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %q: %w", path, err)
	}
	cfg := Config{Grid: sim.DefaultGridRequest()}
	// Strict field checking: typos must cause errors
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %q: %w", path, err)
	}
	return cfg, nil
}

// Supernova returns the configured supernova with the given nickname.
func (c Config) Supernova(nickname string) (sim.Supernova, error) {
	names := make([]string, 0, len(c.Supernovae))
	for _, sn := range c.Supernovae {
		if sn.Nickname == nickname {
			return sn, nil
		}
		names = append(names, sn.Nickname)
	}
	return sim.Supernova{}, fmt.Errorf("supernova %q not in config (available: %v)", nickname, names)
}
