// Copyright 2025 The go-zeromq Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package wrap lays Z85 text out for text channels: it breaks long
// encodings into lines and removes the line breaks and indentation again
// before decoding.
package wrap

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

const groupSize = 5

// Lines breaks text into lines of at most width characters, joined with
// "\n". Width is rounded down to a multiple of 5 so that no group is split;
// a width of 0 or less disables wrapping.
func Lines(text string, width int) string {
	if width <= 0 || len(text) <= width {
		return text
	}
	width -= width % groupSize
	if width < groupSize {
		width = groupSize
	}

	var b strings.Builder
	b.Grow(len(text) + len(text)/width)
	for len(text) > width {
		b.WriteString(text[:width])
		b.WriteByte('\n')
		text = text[width:]
	}
	b.WriteString(text)
	return b.String()
}

// Strip removes every Unicode white space character from text.
func Strip(text string) (string, error) {
	out, _, err := transform.String(runes.Remove(runes.In(unicode.White_Space)), text)
	if err != nil {
		return "", fmt.Errorf("wrap: %w", err)
	}
	return out, nil
}
