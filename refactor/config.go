// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package refactor

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// A Config controls which literals are consolidated and how names are chosen.
type Config struct {
	// MinOccurrences is the number of qualifying occurrences a value needs
	// before it is replaced by a constant. It must be at least 2.
	MinOccurrences int `yaml:"min_occurrences"`

	// MaxSuffix bounds the numeric suffix tried when a name is taken
	// (FOO_1, FOO_2, ...). Zero means no bound. A group whose candidates
	// are exhausted is skipped like one whose value yields no name.
	MaxSuffix int `yaml:"max_suffix"`

	// CountAnnotations makes annotation arguments count as usages.
	CountAnnotations bool `yaml:"count_annotations"`

	// Jobs is the number of files processed concurrently by the command.
	// Zero means GOMAXPROCS.
	Jobs int `yaml:"jobs"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		MinOccurrences:   2,
		CountAnnotations: true,
	}
}

// LoadConfig reads a YAML configuration file.
// Settings missing from the file keep their default values.
func LoadConfig(name string) (Config, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return Config{}, err
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", name, err)
	}
	return cfg, nil
}

// ParseConfig parses YAML configuration text. Unknown keys are errors.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports whether the configuration is usable.
func (c Config) Validate() error {
	switch {
	case c.MinOccurrences < 2:
		return fmt.Errorf("min_occurrences must be at least 2, have %d", c.MinOccurrences)
	case c.MaxSuffix < 0:
		return fmt.Errorf("max_suffix must not be negative, have %d", c.MaxSuffix)
	case c.Jobs < 0:
		return fmt.Errorf("jobs must not be negative, have %d", c.Jobs)
	}
	return nil
}
