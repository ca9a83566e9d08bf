// Copyright (C) 2023, BitDSM. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import (
	"fmt"
	"net/http"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/utils/json"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/gorilla/rpc/v2"
	log "github.com/inconshreveable/log15"

	"github.com/bitdsm/podvm/chain"
	"github.com/bitdsm/podvm/parser"
	"github.com/bitdsm/podvm/tdata"
)

const (
	Name           = "podvm"
	PublicEndpoint = "/public"
)

type PublicService struct {
	ledger *Ledger
}

// NewHandler returns the JSON-RPC handler for the public endpoint.
func NewHandler(l *Ledger) (http.Handler, error) {
	server := rpc.NewServer()
	server.RegisterCodec(json.NewCodec(), "application/json")
	server.RegisterCodec(json.NewCodec(), "application/json;charset=UTF-8")
	if err := server.RegisterService(&PublicService{ledger: l}, Name); err != nil {
		return nil, err
	}
	return server, nil
}

type PingReply struct {
	Success bool `serialize:"true" json:"success"`
}

func (svc *PublicService) Ping(_ *http.Request, _ *struct{}, reply *PingReply) (err error) {
	log.Info("ping")
	reply.Success = true
	return nil
}

type GenesisReply struct {
	Genesis *chain.Genesis `serialize:"true" json:"genesis"`
}

func (svc *PublicService) Genesis(_ *http.Request, _ *struct{}, reply *GenesisReply) (err error) {
	reply.Genesis = svc.ledger.Genesis()
	return nil
}

type IssueRawTxArgs struct {
	Tx []byte `serialize:"true" json:"tx"`
}

type IssueRawTxReply struct {
	TxID    ids.ID `serialize:"true" json:"txId"`
	Success bool   `serialize:"true" json:"success"`
}

func (svc *PublicService) IssueRawTx(_ *http.Request, args *IssueRawTxArgs, reply *IssueRawTxReply) error {
	tx := new(chain.Transaction)
	if _, err := chain.Unmarshal(args.Tx, tx); err != nil {
		return err
	}

	// otherwise, unexported tx.id field is empty
	if err := tx.Init(svc.ledger.Genesis()); err != nil {
		reply.Success = false
		return err
	}
	reply.TxID = tx.ID()

	errs := svc.ledger.Submit(tx)
	reply.Success = len(errs) == 0
	if reply.Success {
		return nil
	}
	if len(errs) == 1 {
		return errs[0]
	}
	return fmt.Errorf("%v", errs)
}

type IssueTxArgs struct {
	TypedData *tdata.TypedData `serialize:"true" json:"typedData"`
	Signature hexutil.Bytes    `serialize:"true" json:"signature"`
}

type IssueTxReply struct {
	TxID    ids.ID `serialize:"true" json:"txId"`
	Success bool   `serialize:"true" json:"success"`
}

func (svc *PublicService) IssueTx(_ *http.Request, args *IssueTxArgs, reply *IssueTxReply) error {
	if args.TypedData == nil {
		return chain.ErrInvalidEmptyTx
	}
	utx, err := chain.ParseTypedData(args.TypedData)
	if err != nil {
		return err
	}
	tx := chain.NewTx(utx, args.Signature[:])

	// otherwise, unexported tx.id field is empty
	if err := tx.Init(svc.ledger.Genesis()); err != nil {
		reply.Success = false
		return err
	}
	reply.TxID = tx.ID()

	errs := svc.ledger.Submit(tx)
	reply.Success = len(errs) == 0
	if reply.Success {
		return nil
	}
	if len(errs) == 1 {
		return errs[0]
	}
	return fmt.Errorf("%v", errs)
}

type HasTxArgs struct {
	TxID ids.ID `serialize:"true" json:"txId"`
}

type HasTxReply struct {
	Confirmed bool `serialize:"true" json:"confirmed"`
}

func (svc *PublicService) HasTx(_ *http.Request, args *HasTxArgs, reply *HasTxReply) error {
	has, err := chain.HasTransaction(svc.ledger.db, args.TxID)
	if err != nil {
		return err
	}
	reply.Confirmed = has
	return nil
}

type RegistryReply struct {
	Info *chain.RegistryInfo `serialize:"true" json:"info"`
}

func (svc *PublicService) Registry(_ *http.Request, _ *struct{}, reply *RegistryReply) error {
	i, has, err := chain.GetRegistryInfo(svc.ledger.db)
	if err != nil {
		return err
	}
	if !has {
		return chain.ErrRegistryMissing
	}
	reply.Info = i
	return nil
}

type OperatorArgs struct {
	Authority string `serialize:"true" json:"authority"`
}

type OperatorReply struct {
	Info *chain.OperatorInfo `serialize:"true" json:"info"`
}

func (svc *PublicService) Operator(_ *http.Request, args *OperatorArgs, reply *OperatorReply) error {
	i, has, err := chain.GetOperatorInfo(svc.ledger.db, common.HexToAddress(args.Authority))
	if err != nil {
		return err
	}
	if !has {
		return chain.ErrOperatorMissing
	}
	reply.Info = i
	return nil
}

type OperatorsReply struct {
	Operators []*chain.OperatorInfo `serialize:"true" json:"operators"`
}

func (svc *PublicService) Operators(_ *http.Request, _ *struct{}, reply *OperatorsReply) error {
	operators, err := chain.GetAllOperators(svc.ledger.db)
	if err != nil {
		return err
	}
	reply.Operators = operators
	return nil
}

type PodArgs struct {
	Address string `serialize:"true" json:"address"`
}

type PodReply struct {
	Info *chain.PodInfo `serialize:"true" json:"info"`
}

func (svc *PublicService) Pod(_ *http.Request, args *PodArgs, reply *PodReply) error {
	i, has, err := chain.GetPodInfo(svc.ledger.db, common.HexToAddress(args.Address))
	if err != nil {
		return err
	}
	if !has {
		return chain.ErrPodMissing
	}
	reply.Info = i
	return nil
}

type ResolvePodArgs struct {
	Owner        string `serialize:"true" json:"owner"`
	BtcPublicKey string `serialize:"true" json:"btcPublicKey"`
}

type ResolvePodReply struct {
	Address common.Address `serialize:"true" json:"address"`
	Exists  bool           `serialize:"true" json:"exists"`
	Info    *chain.PodInfo `serialize:"true" json:"info,omitempty"`
}

// ResolvePod derives the pod address for an owner and key pair and reports
// whether a pod lives there.
func (svc *PublicService) ResolvePod(_ *http.Request, args *ResolvePodArgs, reply *ResolvePodReply) error {
	addr, err := parser.PodAddress(common.HexToAddress(args.Owner), args.BtcPublicKey)
	if err != nil {
		return err
	}
	reply.Address = addr

	i, has, err := chain.GetPodInfo(svc.ledger.db, addr)
	if err != nil {
		return err
	}
	reply.Exists = has
	reply.Info = i
	return nil
}

type OwnedPodsArgs struct {
	Owner string `serialize:"true" json:"owner"`
}

type OwnedPodsReply struct {
	Pods []*chain.PodInfo `serialize:"true" json:"pods"`
}

func (svc *PublicService) OwnedPods(_ *http.Request, args *OwnedPodsArgs, reply *OwnedPodsReply) error {
	pods, err := chain.GetOwnedPods(svc.ledger.db, common.HexToAddress(args.Owner))
	if err != nil {
		return err
	}
	reply.Pods = pods
	return nil
}

type ActivityReply struct {
	Activity []*chain.Activity `serialize:"true" json:"activity"`
}

func (svc *PublicService) Activity(_ *http.Request, _ *struct{}, reply *ActivityReply) error {
	reply.Activity = svc.ledger.Activity()
	return nil
}
