// Copyright (C) 2023, BitDSM. All rights reserved.
// See the file LICENSE for licensing terms.

// Package parser defines record validation and pod address derivation.
package parser

import (
	"errors"
)

const (
	// MaxNameSize bounds operator names.
	MaxNameSize = 32

	// MaxMetadataSize bounds the free-form operator metadata.
	MaxMetadataSize = 200

	// BtcPublicKeySize is the length of a hex-encoded 33-byte compressed
	// secp256k1 public key.
	BtcPublicKeySize = 66
)

var (
	ErrNameEmpty      = errors.New("name cannot be empty")
	ErrNameTooLong    = errors.New("name too long")
	ErrMetadataTooBig = errors.New("metadata too big")

	ErrInvalidBtcPublicKey = errors.New("btc public key must be 66 hexadecimal characters")
)

// CheckName returns an error unless the name is 1 to MaxNameSize characters.
func CheckName(name string) error {
	switch {
	case len(name) == 0:
		return ErrNameEmpty
	case len(name) > MaxNameSize:
		return ErrNameTooLong
	default:
		return nil
	}
}

// CheckMetadata returns an error if the metadata exceeds MaxMetadataSize.
func CheckMetadata(metadata string) error {
	if len(metadata) > MaxMetadataSize {
		return ErrMetadataTooBig
	}
	return nil
}

// CheckBtcPublicKey returns an error unless the key is exactly
// BtcPublicKeySize ASCII hexadecimal digits.
func CheckBtcPublicKey(pk string) error {
	if len(pk) != BtcPublicKeySize {
		return ErrInvalidBtcPublicKey
	}
	for i := 0; i < len(pk); i++ {
		if !isHexDigit(pk[i]) {
			return ErrInvalidBtcPublicKey
		}
	}
	return nil
}

func isHexDigit(c byte) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c >= 'a' && c <= 'f':
		return true
	case c >= 'A' && c <= 'F':
		return true
	default:
		return false
	}
}
