// Copyright 2018 The go-zeromq Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package z85 provides ZeroMQ Base-85 Encoding as specified by:
// https://rfc.zeromq.org/spec/32/Z85/
//
// Every 4 bytes of binary data are read as a big-endian 32-bit value and
// written as 5 characters from a printable 85-character alphabet. Z85 defines
// no padding, so binary input must be a multiple of 4 bytes long and encoded
// input a multiple of 5 characters long.
package z85

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidLength = errors.New("z85: invalid input length")
	ErrInvalidChar   = errors.New("z85: invalid character")
	ErrOverflow      = errors.New("z85: group value overflows 32 bits")
	ErrShortBuffer   = errors.New("z85: destination buffer too small")
)

// EncodedLen returns the Z85 encoded length for n source bytes
func EncodedLen(n int) int {
	return n / 4 * 5
}

// DecodedLen returns the length in bytes of the decoded data
// corresponding to n bytes of Z85-encoded data.
func DecodedLen(n int) int {
	return n / 5 * 4
}

// Z85 alphabet as defined in RFC 32
const alphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ.-:+=^!/*?&<>()[]{}@%$#"

const (
	// printable ASCII window covered by the decoder table
	firstChar = 32
	lastChar  = 127

	invalid = 0xFF
)

// decoder maps code points 32..127 to their base-85 digit. Slots for
// characters outside the alphabet hold invalid.
var decoder = [lastChar - firstChar + 1]byte{
	invalid, 68, invalid, 84, 83, 82, 72, invalid, 75, 76, 70, 65, invalid, 63, 62, 69,
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 64, invalid, 73, 66, 74, 71,
	81, 36, 37, 38, 39, 40, 41, 42, 43, 44, 45, 46, 47, 48, 49, 50,
	51, 52, 53, 54, 55, 56, 57, 58, 59, 60, 61, 77, invalid, 78, 67, invalid,
	invalid, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24,
	25, 26, 27, 28, 29, 30, 31, 32, 33, 34, 35, 79, invalid, 80, invalid, invalid,
}

// digit returns the base-85 value of c. Characters outside the alphabet
// read as 0 and report false.
func digit(c byte) (byte, bool) {
	if c < firstChar || c > lastChar {
		return 0, false
	}
	d := decoder[c-firstChar]
	if d == invalid {
		return 0, false
	}
	return d, true
}

// Encode encodes src using Z85 encoding,
// writing EncodedLen(len(src)) bytes to dst.
// It returns the number of bytes written.
//
// The encoding handles 4-byte groups, so len(src) must be divisible by 4.
func Encode(dst, src []byte) (int, error) {
	if len(src)%4 != 0 {
		return 0, fmt.Errorf("%w: source length %d not divisible by 4", ErrInvalidLength, len(src))
	}
	n := EncodedLen(len(src))
	if len(dst) < n {
		return 0, fmt.Errorf("%w: need %d, got %d", ErrShortBuffer, n, len(dst))
	}
	encode(dst, src)
	return n, nil
}

// encode expects validated input.
func encode(dst, src []byte) {
	di := 0
	for si := 0; si < len(src); si += 4 {
		var value uint32
		for _, b := range src[si : si+4] {
			value = value*256 + uint32(b)
		}

		// Most significant digit first
		for divisor := uint32(85 * 85 * 85 * 85); divisor > 0; divisor /= 85 {
			dst[di] = alphabet[value/divisor%85]
			di++
		}
	}
}

// AppendEncode appends the Z85 encoding of src to dst and returns
// the extended buffer.
func AppendEncode(dst, src []byte) ([]byte, error) {
	if len(src)%4 != 0 {
		return dst, fmt.Errorf("%w: source length %d not divisible by 4", ErrInvalidLength, len(src))
	}
	dst = grow(dst, EncodedLen(len(src)))
	encode(dst[len(dst)-EncodedLen(len(src)):], src)
	return dst, nil
}

// EncodeToString returns the Z85 encoding of src.
func EncodeToString(src []byte) (string, error) {
	if len(src)%4 != 0 {
		return "", fmt.Errorf("%w: source length %d not divisible by 4", ErrInvalidLength, len(src))
	}
	dst := make([]byte, EncodedLen(len(src)))
	encode(dst, src)
	return string(dst), nil
}

// grow extends dst by n bytes, reallocating at most once.
func grow(dst []byte, n int) []byte {
	total := len(dst) + n
	if total <= cap(dst) {
		return dst[:total]
	}
	out := make([]byte, total)
	copy(out, dst)
	return out
}
