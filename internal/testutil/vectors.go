// Copyright 2025 The go-zeromq Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package testutil provides shared fixtures for the z85 test suites.
package testutil

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/destiny/z85"
)

// Vector pairs binary data with its Z85 text form.
type Vector struct {
	Name   string
	Binary []byte
	Text   string
}

// Vectors holds the RFC 32 test vectors plus the boundary groups.
var Vectors = []Vector{
	{
		Name:   "empty",
		Binary: []byte{},
		Text:   "",
	},
	{
		Name:   "zero group",
		Binary: []byte{0x00, 0x00, 0x00, 0x00},
		Text:   "00000",
	},
	{
		Name:   "max group",
		Binary: []byte{0xFF, 0xFF, 0xFF, 0xFF},
		Text:   "%nSc0",
	},
	{
		Name:   "hello world",
		Binary: []byte{0x86, 0x4F, 0xD2, 0x6F, 0xB5, 0x59, 0xF7, 0x5B},
		Text:   "HelloWorld",
	},
	{
		Name: "curve secret key",
		Binary: []byte{
			0x8E, 0x0B, 0xDD, 0x69, 0x76, 0x28, 0xB9, 0x1D,
			0x8F, 0x24, 0x55, 0x87, 0xEE, 0x95, 0xC5, 0xB0,
			0x4D, 0x48, 0x96, 0x3F, 0x79, 0x25, 0x98, 0x77,
			0xB4, 0x9C, 0xD9, 0x06, 0x3A, 0xEA, 0xD3, 0xB7,
		},
		Text: "JTKVSB%%)wK0E.X)V>+}o?pNmC{O&4W4b!Ni{Lh6",
	},
}

// RandomPayload returns groups*4 random bytes.
func RandomPayload(t testing.TB, groups int) []byte {
	t.Helper()
	data := make([]byte, groups*4)
	if _, err := rand.Read(data); err != nil {
		t.Fatalf("Failed to generate random data: %v", err)
	}
	return data
}

// RequireRoundTrip encodes original, validates the text and checks that
// decoding it gives original back.
func RequireRoundTrip(t testing.TB, original []byte) string {
	t.Helper()

	encoded, err := z85.EncodeToString(original)
	if err != nil {
		t.Fatalf("Failed to encode %d bytes: %v", len(original), err)
	}
	if len(encoded) != z85.EncodedLen(len(original)) {
		t.Fatalf("Encoded length mismatch: got %d, want %d", len(encoded), z85.EncodedLen(len(original)))
	}
	if err := z85.ValidateString(encoded); err != nil {
		t.Fatalf("Invalid Z85 encoding: %v", err)
	}

	decoded, err := z85.DecodeString(encoded)
	if err != nil {
		t.Fatalf("Failed to decode Z85 string: %v", err)
	}
	if !bytes.Equal(decoded, original) {
		t.Fatalf("Z85 round-trip failed: original=%x, decoded=%x", original, decoded)
	}
	return encoded
}
