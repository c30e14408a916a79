// Copyright 2025 The go-zeromq Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/destiny/z85"
	"github.com/destiny/z85/internal/testutil"
)

// execute runs the CLI with args and stdin, returning stdout and stderr.
func execute(t *testing.T, stdin []byte, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := newRootCommand()
	cmd.SetArgs(args)
	cmd.SetIn(bytes.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestEncodeStdin(t *testing.T) {
	out, _, err := execute(t, testutil.Vectors[3].Binary, "encode")
	require.NoError(t, err)
	assert.Equal(t, "HelloWorld\n", out)
}

func TestEncodeWrap(t *testing.T) {
	out, _, err := execute(t, testutil.Vectors[4].Binary, "encode", "--wrap", "20")
	require.NoError(t, err)
	assert.Equal(t, "JTKVSB%%)wK0E.X)V>+}\no?pNmC{O&4W4b!Ni{Lh6\n", out)
}

func TestEncodeInvalidLength(t *testing.T) {
	_, stderr, err := execute(t, []byte("abc"), "encode")
	require.ErrorIs(t, err, z85.ErrInvalidLength)
	assert.Contains(t, stderr, "not divisible by 4")
}

func TestDecodeStdin(t *testing.T) {
	out, _, err := execute(t, []byte("Hello\nWorld\n"), "decode")
	require.NoError(t, err)
	assert.Equal(t, string(testutil.Vectors[3].Binary), out)

	_, _, err = execute(t, []byte("HelloWorld\n"), "decode", "--ignore-space=false")
	require.ErrorIs(t, err, z85.ErrInvalidLength)
}

func TestDecodeCompatFlag(t *testing.T) {
	_, _, err := execute(t, []byte("Hell~"), "decode")
	require.ErrorIs(t, err, z85.ErrInvalidChar)

	out, _, err := execute(t, []byte("Hell~"), "decode", "--compat")
	require.NoError(t, err)
	assert.Equal(t, string([]byte{0x86, 0x4F, 0xD2, 0x57}), out)
}

func TestFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	names := make([]string, 5)
	payloads := make([][]byte, len(names))
	for i := range names {
		names[i] = filepath.Join(dir, "payload"+string(rune('a'+i)))
		payloads[i] = testutil.RandomPayload(t, 10*(i+1))
		require.NoError(t, os.WriteFile(names[i], payloads[i], 0o644))
	}

	_, _, err := execute(t, nil, append([]string{"encode", "--wrap", "50"}, names...)...)
	require.NoError(t, err)

	encoded := make([]string, len(names))
	for i, name := range names {
		encoded[i] = name + ".z85"
		require.NoError(t, os.Remove(name))
	}

	_, _, err = execute(t, nil, append([]string{"decode"}, encoded...)...)
	require.NoError(t, err)

	for i, name := range names {
		got, err := os.ReadFile(name)
		require.NoError(t, err)
		assert.Equal(t, payloads[i], got)
	}
}

func TestValidate(t *testing.T) {
	out, _, err := execute(t, []byte("HelloWorld\n"), "validate")
	require.NoError(t, err)
	assert.Equal(t, "-: ok (8 bytes)\n", out)

	_, stderr, err := execute(t, []byte("#####"), "validate")
	require.Error(t, err)
	assert.Contains(t, stderr, "overflows")
}

func TestKeygen(t *testing.T) {
	out, _, err := execute(t, nil, "keygen")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	public := strings.TrimPrefix(lines[0], "public: ")
	secret := strings.TrimPrefix(lines[1], "secret: ")

	derived, _, err := execute(t, nil, "pubkey", secret)
	require.NoError(t, err)
	assert.Equal(t, public+"\n", derived)
}

func TestPubkey(t *testing.T) {
	out, _, err := execute(t, nil, "pubkey", testutil.CurveKeys.ClientSecretZ85)
	require.NoError(t, err)
	assert.Equal(t, testutil.CurveKeys.ClientPublicZ85+"\n", out)

	_, _, err = execute(t, nil, "pubkey", "HelloWorld")
	require.Error(t, err)
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "z85.toml")
	require.NoError(t, os.WriteFile(path, []byte("[Codec]\nCompat = true\n\n[Logging]\nLevel = \"TRACE\"\n"), 0o644))

	out, stderr, err := execute(t, []byte("Hell~"), "--config", path, "decode")
	require.NoError(t, err)
	assert.Equal(t, string([]byte{0x86, 0x4F, 0xD2, 0x57}), out)
	assert.Contains(t, stderr, "[TRACE] decoded item 0")

	_, _, err = execute(t, nil, "--config", filepath.Join(t.TempDir(), "missing.toml"), "keygen")
	require.ErrorContains(t, err, "failed to load config file")

	_, _, err = execute(t, nil, "--log-level", "LOUD", "keygen")
	require.Error(t, err)
}

func TestDecodedName(t *testing.T) {
	assert.Equal(t, "key", decodedName("key.z85"))
	assert.Equal(t, "key.txt.bin", decodedName("key.txt"))
	assert.Equal(t, ".z85.bin", decodedName(".z85"))
}
