// Copyright 2018 The go-zeromq Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package curve handles CURVE (Curve25519) key pairs in the Z85 text form
// used by ZeroMQ, as specified by:
// https://rfc.zeromq.org/spec/26/CURVEZMQ/
package curve

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"golang.org/x/crypto/curve25519"
	"golang.org/x/crypto/nacl/box"

	"github.com/destiny/z85"
)

const (
	KeySize     = 32 // Curve25519 key size
	KeyTextSize = 40 // Z85 length of a key
)

var (
	ErrInvalidKey  = errors.New("curve: invalid key")
	ErrKeyMismatch = errors.New("curve: public key does not match secret key")
)

// KeyPair represents a Curve25519 key pair
type KeyPair struct {
	Public [KeySize]byte
	Secret [KeySize]byte
}

// GenerateKeyPair generates a new Curve25519 key pair
func GenerateKeyPair() (*KeyPair, error) {
	public, private, err := box.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("curve: failed to generate key pair: %w", err)
	}

	return &KeyPair{
		Public: *public,
		Secret: *private,
	}, nil
}

// NewKeyPair creates a key pair from existing keys
func NewKeyPair(public, secret [KeySize]byte) *KeyPair {
	return &KeyPair{
		Public: public,
		Secret: secret,
	}
}

// PublicFromSecret derives the public key belonging to secret.
func PublicFromSecret(secret [KeySize]byte) ([KeySize]byte, error) {
	var public [KeySize]byte
	out, err := curve25519.X25519(secret[:], curve25519.Basepoint)
	if err != nil {
		return public, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	copy(public[:], out)
	return public, nil
}

// PublicKeyZ85 returns the public key encoded as Z85 string
func (kp *KeyPair) PublicKeyZ85() string {
	return keyText(kp.Public)
}

// SecretKeyZ85 returns the secret key encoded as Z85 string
func (kp *KeyPair) SecretKeyZ85() string {
	return keyText(kp.Secret)
}

// PublicKeyHex returns the public key encoded as hex string
func (kp *KeyPair) PublicKeyHex() string {
	return hex.EncodeToString(kp.Public[:])
}

// SecretKeyHex returns the secret key encoded as hex string
func (kp *KeyPair) SecretKeyHex() string {
	return hex.EncodeToString(kp.Secret[:])
}

// keyText cannot fail: KeySize is a multiple of 4.
func keyText(key [KeySize]byte) string {
	var dst [KeyTextSize]byte
	if _, err := z85.Encode(dst[:], key[:]); err != nil {
		panic(err)
	}
	return string(dst[:])
}

// ParseZ85Key decodes a 40 character Z85 key.
func ParseZ85Key(text string) ([KeySize]byte, error) {
	var key [KeySize]byte
	if len(text) != KeyTextSize {
		return key, fmt.Errorf("%w: Z85 key must be %d characters, got %d", ErrInvalidKey, KeyTextSize, len(text))
	}
	if _, err := z85.Decode(key[:], []byte(text)); err != nil {
		return key, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}
	return key, nil
}

// ValidateZ85Key validates that a string is a valid Z85-encoded CURVE key
func ValidateZ85Key(text string) error {
	_, err := ParseZ85Key(text)
	return err
}

// NewKeyPairFromZ85 creates a key pair from Z85-encoded public and secret
// keys. The public key must belong to the secret key.
func NewKeyPairFromZ85(publicZ85, secretZ85 string) (*KeyPair, error) {
	public, err := ParseZ85Key(publicZ85)
	if err != nil {
		return nil, fmt.Errorf("public key: %w", err)
	}

	kp, err := NewKeyPairFromSecretZ85(secretZ85)
	if err != nil {
		return nil, err
	}
	if kp.Public != public {
		return nil, ErrKeyMismatch
	}
	return kp, nil
}

// NewKeyPairFromSecretZ85 rebuilds a key pair from its Z85 secret key.
func NewKeyPairFromSecretZ85(secretZ85 string) (*KeyPair, error) {
	secret, err := ParseZ85Key(secretZ85)
	if err != nil {
		return nil, fmt.Errorf("secret key: %w", err)
	}
	public, err := PublicFromSecret(secret)
	if err != nil {
		return nil, err
	}
	return NewKeyPair(public, secret), nil
}

// NewKeyPairFromHex creates a key pair from hex-encoded public and secret keys
func NewKeyPairFromHex(publicHex, secretHex string) (*KeyPair, error) {
	publicBytes, err := hex.DecodeString(publicHex)
	if err != nil {
		return nil, fmt.Errorf("%w: public key hex encoding: %v", ErrInvalidKey, err)
	}
	if len(publicBytes) != KeySize {
		return nil, fmt.Errorf("%w: public key must be %d bytes, got %d", ErrInvalidKey, KeySize, len(publicBytes))
	}

	secretBytes, err := hex.DecodeString(secretHex)
	if err != nil {
		return nil, fmt.Errorf("%w: secret key hex encoding: %v", ErrInvalidKey, err)
	}
	if len(secretBytes) != KeySize {
		return nil, fmt.Errorf("%w: secret key must be %d bytes, got %d", ErrInvalidKey, KeySize, len(secretBytes))
	}

	var public, secret [KeySize]byte
	copy(public[:], publicBytes)
	copy(secret[:], secretBytes)

	return NewKeyPair(public, secret), nil
}
