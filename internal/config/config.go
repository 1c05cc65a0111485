// Package config loads the optional YAML configuration file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultFile is looked up in the working directory when no path is given.
const DefaultFile = ".checkpatch.yaml"

// Config holds the settings read from the configuration file.
type Config struct {
	// Disable names checks to leave out of the registry.
	Disable []string `yaml:"disable"`
	// Exclude holds path globs for files that are never checked.
	Exclude []string `yaml:"exclude"`
}

// Load reads the configuration at path. An empty path means DefaultFile in
// dir, and a missing default file yields the zero Config. An explicitly named
// file must exist.
func Load(path, dir string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = filepath.Join(dir, DefaultFile)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a YAML document. Unknown keys are rejected and every exclude
// pattern must be a valid glob.
func Parse(data []byte) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	for _, g := range cfg.Exclude {
		if _, err := filepath.Match(g, ""); err != nil {
			return Config{}, fmt.Errorf("exclude pattern %q: %w", g, err)
		}
	}
	return cfg, nil
}
