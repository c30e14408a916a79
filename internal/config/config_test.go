// Copyright 2025 The go-zeromq Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	cfg, err := Load([]byte(`
[Logging]
Level = "DEBUG"

[Codec]
Compat = true
IgnoreSpace = false
Wrap = 40

[Batch]
Limit = 2
`))
	require.NoError(t, err)
	assert.Equal(t, "DEBUG", cfg.Logging.Level)
	assert.True(t, cfg.Codec.Compat)
	assert.False(t, cfg.Codec.IgnoreSpace)
	assert.Equal(t, 40, cfg.Codec.Wrap)
	assert.Equal(t, 2, cfg.Batch.Limit)
}

func TestLoadKeepsDefaults(t *testing.T) {
	cfg, err := Load([]byte("[Codec]\nWrap = 20\n"))
	require.NoError(t, err)
	assert.Equal(t, "INFO", cfg.Logging.Level)
	assert.True(t, cfg.Codec.IgnoreSpace)
	assert.Equal(t, 20, cfg.Codec.Wrap)
}

func TestLoadErrors(t *testing.T) {
	for name, doc := range map[string]string{
		"syntax":         "[Codec\n",
		"unknown key":    "[Codec]\nPadding = true\n",
		"bad level":      "[Logging]\nLevel = \"LOUD\"\n",
		"negative wrap":  "[Codec]\nWrap = -5\n",
		"negative limit": "[Batch]\nLimit = -1\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Load([]byte(doc))
			require.Error(t, err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "z85.toml")
	require.NoError(t, os.WriteFile(path, []byte("[Batch]\nLimit = 3\n"), 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Batch.Limit)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.toml"))
	require.ErrorContains(t, err, "failed to load config file")
}
