// Copyright (C) 2023, BitDSM. All rights reserved.
// See the file LICENSE for licensing terms.

package parser

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

const (
	// SeedSize is the number of leading bytes of a pod's BTC public key
	// used as the derivation seed.
	SeedSize = 8

	// derivationBump keeps the derivation preimage disjoint from any
	// signature-derived account address (those hash a raw public key with
	// no leading tag).
	derivationBump byte = 0xff
)

var derivationTag = []byte("pod")

// Seed extracts the address-derivation seed from a validated BTC public key.
func Seed(btcPublicKey string) ([SeedSize]byte, error) {
	var seed [SeedSize]byte
	if err := CheckBtcPublicKey(btcPublicKey); err != nil {
		return seed, err
	}
	copy(seed[:], btcPublicKey[:SeedSize])
	return seed, nil
}

// DeriveAddress maps (owner, seed) to the unique pod account address. The
// same inputs always produce the same address.
func DeriveAddress(owner common.Address, seed [SeedSize]byte) common.Address {
	preimage := make([]byte, 0, len(derivationTag)+1+common.AddressLength+SeedSize)
	preimage = append(preimage, derivationTag...)
	preimage = append(preimage, derivationBump)
	preimage = append(preimage, owner[:]...)
	preimage = append(preimage, seed[:]...)
	h := crypto.Keccak256(preimage)
	return common.BytesToAddress(h[12:])
}

// PodAddress derives the pod account address for an owner and its BTC public
// key, validating the key first.
func PodAddress(owner common.Address, btcPublicKey string) (common.Address, error) {
	seed, err := Seed(btcPublicKey)
	if err != nil {
		return common.Address{}, err
	}
	return DeriveAddress(owner, seed), nil
}
