// Copyright (C) 2023, BitDSM. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"fmt"
	"strconv"

	"github.com/ethereum/go-ethereum/common"

	"github.com/bitdsm/podvm/tdata"
)

const (
	InitializeRegistry = "initializeRegistry"
	RegisterOperator   = "registerOperator"
	CreatePod          = "createPod"
	ConfirmDeposit     = "confirmDeposit"
	AddStake           = "addStake"
	SetPodStatus       = "setPodStatus"
)

// Input is the human-readable form of an operation, decoded into an unsigned
// transaction by the service and CLI layers.
type Input struct {
	Typ string `json:"type"`

	MinStakeWeight uint64         `json:"minStakeWeight,omitempty"`
	Name           string         `json:"name,omitempty"`
	Metadata       string         `json:"metadata,omitempty"`
	BtcPublicKey   string         `json:"btcPublicKey,omitempty"`
	Operator       common.Address `json:"operator,omitempty"`
	Pod            common.Address `json:"pod,omitempty"`
	Amount         uint64         `json:"amount,omitempty"`
	Active         bool           `json:"active,omitempty"`
}

func (i *Input) Decode() (UnsignedTransaction, error) {
	switch i.Typ {
	case InitializeRegistry:
		return &InitializeRegistryTx{
			BaseTx:         &BaseTx{},
			MinStakeWeight: i.MinStakeWeight,
		}, nil
	case RegisterOperator:
		return &RegisterOperatorTx{
			BaseTx:       &BaseTx{},
			Name:         i.Name,
			Metadata:     i.Metadata,
			BtcPublicKey: i.BtcPublicKey,
		}, nil
	case CreatePod:
		return &CreatePodTx{
			BaseTx:       &BaseTx{},
			BtcPublicKey: i.BtcPublicKey,
			Operator:     i.Operator,
		}, nil
	case ConfirmDeposit:
		return &ConfirmDepositTx{
			BaseTx: &BaseTx{},
			Pod:    i.Pod,
			Amount: i.Amount,
		}, nil
	case AddStake:
		return &AddStakeTx{
			BaseTx: &BaseTx{},
			Amount: i.Amount,
		}, nil
	case SetPodStatus:
		return &SetPodStatusTx{
			BaseTx: &BaseTx{},
			Pod:    i.Pod,
			Active: i.Active,
		}, nil
	default:
		return nil, ErrInvalidType
	}
}

const (
	tdString  = "string"
	tdUint64  = "uint64"
	tdAddress = "address"
	tdBool    = "bool"

	tdNonce = "nonce"

	tdMinStakeWeight = "minStakeWeight"
	tdName           = "name"
	tdMetadata       = "metadata"
	tdBtcPublicKey   = "btcPublicKey"
	tdOperator       = "operator"
	tdPod            = "pod"
	tdAmount         = "amount"
	tdActive         = "active"
)

func parseUint64Message(td *tdata.TypedData, k string) (uint64, error) {
	r, ok := td.Message[k].(string)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrTypedDataKeyMissing, k)
	}
	return strconv.ParseUint(r, 10, 64)
}

func parseStringMessage(td *tdata.TypedData, k string) (string, error) {
	r, ok := td.Message[k].(string)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrTypedDataKeyMissing, k)
	}
	return r, nil
}

func parseAddressMessage(td *tdata.TypedData, k string) (common.Address, error) {
	r, ok := td.Message[k].(string)
	if !ok {
		return common.Address{}, fmt.Errorf("%w: %s", ErrTypedDataKeyMissing, k)
	}
	return common.HexToAddress(r), nil
}

func parseBaseTx(td *tdata.TypedData) (*BaseTx, error) {
	magic, err := strconv.ParseUint(td.Domain.Magic, 10, 64)
	if err != nil {
		return nil, err
	}
	nonce, err := parseUint64Message(td, tdNonce)
	if err != nil {
		return nil, err
	}
	return &BaseTx{Magic: magic, Nonce: nonce}, nil
}

// ParseTypedData reconstructs the unsigned transaction a signer committed to.
func ParseTypedData(td *tdata.TypedData) (UnsignedTransaction, error) {
	bTx, err := parseBaseTx(td)
	if err != nil {
		return nil, err
	}

	switch td.PrimaryType {
	case InitializeRegistry:
		minStakeWeight, err := parseUint64Message(td, tdMinStakeWeight)
		if err != nil {
			return nil, err
		}
		return &InitializeRegistryTx{BaseTx: bTx, MinStakeWeight: minStakeWeight}, nil
	case RegisterOperator:
		name, err := parseStringMessage(td, tdName)
		if err != nil {
			return nil, err
		}
		metadata, err := parseStringMessage(td, tdMetadata)
		if err != nil {
			return nil, err
		}
		btcPublicKey, err := parseStringMessage(td, tdBtcPublicKey)
		if err != nil {
			return nil, err
		}
		return &RegisterOperatorTx{BaseTx: bTx, Name: name, Metadata: metadata, BtcPublicKey: btcPublicKey}, nil
	case CreatePod:
		btcPublicKey, err := parseStringMessage(td, tdBtcPublicKey)
		if err != nil {
			return nil, err
		}
		operator, err := parseAddressMessage(td, tdOperator)
		if err != nil {
			return nil, err
		}
		return &CreatePodTx{BaseTx: bTx, BtcPublicKey: btcPublicKey, Operator: operator}, nil
	case ConfirmDeposit:
		pod, err := parseAddressMessage(td, tdPod)
		if err != nil {
			return nil, err
		}
		amount, err := parseUint64Message(td, tdAmount)
		if err != nil {
			return nil, err
		}
		return &ConfirmDepositTx{BaseTx: bTx, Pod: pod, Amount: amount}, nil
	case AddStake:
		amount, err := parseUint64Message(td, tdAmount)
		if err != nil {
			return nil, err
		}
		return &AddStakeTx{BaseTx: bTx, Amount: amount}, nil
	case SetPodStatus:
		pod, err := parseAddressMessage(td, tdPod)
		if err != nil {
			return nil, err
		}
		active, ok := td.Message[tdActive].(bool)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrTypedDataKeyMissing, tdActive)
		}
		return &SetPodStatusTx{BaseTx: bTx, Pod: pod, Active: active}, nil
	default:
		return nil, ErrInvalidType
	}
}
