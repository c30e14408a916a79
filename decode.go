// Copyright 2018 The go-zeromq Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package z85

import (
	"fmt"
	"math"
)

// Decode decodes src using Z85 encoding,
// writing DecodedLen(len(src)) bytes to dst.
// It returns the number of bytes written.
//
// The decoding handles 5-character groups, so len(src) must be divisible by 5.
// Decode rejects characters outside the Z85 alphabet and groups whose value
// does not fit in 32 bits. Nothing is written to dst when an error is returned.
func Decode(dst, src []byte) (int, error) {
	if err := Validate(src); err != nil {
		return 0, err
	}
	n := DecodedLen(len(src))
	if len(dst) < n {
		return 0, fmt.Errorf("%w: need %d, got %d", ErrShortBuffer, n, len(dst))
	}
	decode(dst, src)
	return n, nil
}

// DecodeCompat decodes src the way the RFC 32 reference codec does:
// characters outside the alphabet read as digit 0 and a group value
// larger than 32 bits wraps around. Only the input length is checked.
//
// Use Decode unless the input is known to come from an encoder that
// relies on this behaviour.
func DecodeCompat(dst, src []byte) (int, error) {
	if len(src)%5 != 0 {
		return 0, fmt.Errorf("%w: source length %d not divisible by 5", ErrInvalidLength, len(src))
	}
	n := DecodedLen(len(src))
	if len(dst) < n {
		return 0, fmt.Errorf("%w: need %d, got %d", ErrShortBuffer, n, len(dst))
	}
	decode(dst, src)
	return n, nil
}

// decode does no validation of its own. Unmapped characters count as 0
// and the accumulator wraps modulo 2^32.
func decode(dst, src []byte) {
	di := 0
	for si := 0; si < len(src); si += 5 {
		var value uint32
		for _, c := range src[si : si+5] {
			d, _ := digit(c)
			value = value*85 + uint32(d)
		}

		// Most significant byte first
		for divisor := uint32(256 * 256 * 256); divisor > 0; divisor /= 256 {
			dst[di] = byte(value / divisor % 256)
			di++
		}
	}
}

// AppendDecode appends the strictly decoded form of src to dst and
// returns the extended buffer.
func AppendDecode(dst, src []byte) ([]byte, error) {
	if err := Validate(src); err != nil {
		return dst, err
	}
	n := DecodedLen(len(src))
	dst = grow(dst, n)
	decode(dst[len(dst)-n:], src)
	return dst, nil
}

// DecodeString returns the bytes represented by the Z85 string s.
func DecodeString(s string) ([]byte, error) {
	src := []byte(s)
	if err := Validate(src); err != nil {
		return nil, err
	}
	dst := make([]byte, DecodedLen(len(src)))
	decode(dst, src)
	return dst, nil
}

// DecodeCompatString is like DecodeString but uses the permissive
// semantics of DecodeCompat.
func DecodeCompatString(s string) ([]byte, error) {
	if len(s)%5 != 0 {
		return nil, fmt.Errorf("%w: source length %d not divisible by 5", ErrInvalidLength, len(s))
	}
	dst := make([]byte, DecodedLen(len(s)))
	decode(dst, []byte(s))
	return dst, nil
}

// Validate checks that src is well-formed Z85: its length is a multiple
// of 5, every byte belongs to the alphabet and every group fits in 32 bits.
func Validate(src []byte) error {
	if len(src)%5 != 0 {
		return fmt.Errorf("%w: source length %d not divisible by 5", ErrInvalidLength, len(src))
	}

	for si := 0; si < len(src); si += 5 {
		var value uint64
		for i, c := range src[si : si+5] {
			d, ok := digit(c)
			if !ok {
				return fmt.Errorf("%w: character %q at position %d", ErrInvalidChar, c, si+i)
			}
			value = value*85 + uint64(d)
		}
		if value > math.MaxUint32 {
			return fmt.Errorf("%w: group at position %d", ErrOverflow, si)
		}
	}
	return nil
}

// ValidateString checks if s is a valid Z85 encoded string.
func ValidateString(s string) error {
	return Validate([]byte(s))
}
