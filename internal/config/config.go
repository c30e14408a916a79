// Copyright 2025 The go-zeromq Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads the optional TOML configuration of the z85 tool.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/destiny/z85/internal/logging"
)

// Logging is the logging section.
type Logging struct {
	Level string
}

// Codec controls how text is produced and read back.
type Codec struct {
	// Compat selects the permissive reference decoder.
	Compat bool

	// IgnoreSpace strips white space from text before decoding.
	IgnoreSpace bool

	// Wrap is the encoded line width, 0 for a single line.
	Wrap int
}

// Batch controls multi-file runs.
type Batch struct {
	Limit int
}

// Config is the top-level configuration.
type Config struct {
	Logging Logging
	Codec   Codec
	Batch   Batch
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Logging: Logging{Level: "INFO"},
		Codec:   Codec{IgnoreSpace: true},
	}
}

// Validate checks the configuration for obvious errors.
func (c *Config) Validate() error {
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Codec.Wrap < 0 {
		return errors.New("config: Codec.Wrap must not be negative")
	}
	if c.Batch.Limit < 0 {
		return errors.New("config: Batch.Limit must not be negative")
	}
	return nil
}

// Load parses TOML data on top of the defaults.
func Load(b []byte) (*Config, error) {
	cfg := Default()
	md, err := toml.Decode(string(b), cfg)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("config: unknown keys %v", undecoded)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile loads the configuration at path.
func LoadFile(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}
	return Load(b)
}
