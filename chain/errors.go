// Copyright (C) 2023, BitDSM. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"errors"
)

var (
	// Tx Correctness
	ErrInvalidMagic        = errors.New("invalid magic")
	ErrInvalidSignature    = errors.New("invalid signature")
	ErrDuplicateTx         = errors.New("duplicate transaction")
	ErrInvalidType         = errors.New("invalid type")
	ErrTypedDataKeyMissing = errors.New("typed data key missing")
	ErrInvalidEmptyTx      = errors.New("invalid empty transaction")

	// Input Validation
	ErrInvalidStakeWeight = errors.New("invalid stake weight")
	ErrInvalidAmount      = errors.New("invalid amount")

	// Execution Correctness
	ErrRegistryExists   = errors.New("registry already initialized")
	ErrRegistryMissing  = errors.New("registry missing")
	ErrOperatorExists   = errors.New("operator already registered")
	ErrOperatorMissing  = errors.New("operator not registered")
	ErrOperatorInactive = errors.New("operator is inactive")
	ErrPodExists        = errors.New("pod already exists")
	ErrPodMissing       = errors.New("pod missing")
	ErrPodInactive      = errors.New("pod is inactive")
	ErrUnauthorized     = errors.New("sender is not authorized")
	ErrAddressMismatch  = errors.New("account does not match derived pod address")

	// Arithmetic
	ErrOverflow = errors.New("arithmetic overflow")
)
