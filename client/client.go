// Copyright (C) 2023, BitDSM. All rights reserved.
// See the file LICENSE for licensing terms.

// Package client implements the registry client SDK.
package client

import (
	"context"
	"time"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/utils/rpc"
	"github.com/ethereum/go-ethereum/common"
	"github.com/fatih/color"

	"github.com/bitdsm/podvm/chain"
	"github.com/bitdsm/podvm/ledger"
	"github.com/bitdsm/podvm/tdata"
)

// Client defines registry client operations.
type Client interface {
	// Pings the server.
	Ping(ctx context.Context) (bool, error)
	// Returns the deployment genesis.
	Genesis(ctx context.Context) (*chain.Genesis, error)

	// Returns the registry singleton.
	Registry(ctx context.Context) (*chain.RegistryInfo, error)
	// Returns the operator record for an authority.
	Operator(ctx context.Context, authority common.Address) (*chain.OperatorInfo, error)
	// Returns every registered operator.
	Operators(ctx context.Context) ([]*chain.OperatorInfo, error)
	// Returns the pod record at an address.
	Pod(ctx context.Context, addr common.Address) (*chain.PodInfo, error)
	// ResolvePod derives the pod address for an owner and key pair.
	ResolvePod(ctx context.Context, owner common.Address, btcPublicKey string) (common.Address, bool, *chain.PodInfo, error)
	// Returns every pod owned by an address.
	OwnedPods(ctx context.Context, owner common.Address) ([]*chain.PodInfo, error)
	// Returns recently accepted transitions.
	Activity(ctx context.Context) ([]*chain.Activity, error)

	// Issues the transaction and returns the transaction ID.
	IssueRawTx(ctx context.Context, d []byte) (ids.ID, error)
	// Issues a typed-data transaction and returns the transaction ID.
	IssueTx(ctx context.Context, td *tdata.TypedData, sig []byte) (ids.ID, error)
	// Checks the status of the transaction, and returns "true" if confirmed.
	HasTx(ctx context.Context, id ids.ID) (bool, error)
	// Polls the transaction until its status is confirmed.
	PollTx(ctx context.Context, txID ids.ID) (confirmed bool, err error)
}

// New creates a new client object.
func New(uri string) Client {
	req := rpc.NewEndpointRequester(
		uri,
		ledger.PublicEndpoint,
		ledger.Name,
	)
	return &client{req: req}
}

type client struct {
	req rpc.EndpointRequester
}

func (cli *client) Ping(ctx context.Context) (bool, error) {
	resp := new(ledger.PingReply)
	err := cli.req.SendRequest(
		ctx,
		"ping",
		nil,
		resp,
	)
	if err != nil {
		return false, err
	}
	return resp.Success, nil
}

func (cli *client) Genesis(ctx context.Context) (*chain.Genesis, error) {
	resp := new(ledger.GenesisReply)
	err := cli.req.SendRequest(
		ctx,
		"genesis",
		nil,
		resp,
	)
	return resp.Genesis, err
}

func (cli *client) Registry(ctx context.Context) (*chain.RegistryInfo, error) {
	resp := new(ledger.RegistryReply)
	if err := cli.req.SendRequest(
		ctx,
		"registry",
		nil,
		resp,
	); err != nil {
		return nil, err
	}
	return resp.Info, nil
}

func (cli *client) Operator(ctx context.Context, authority common.Address) (*chain.OperatorInfo, error) {
	resp := new(ledger.OperatorReply)
	if err := cli.req.SendRequest(
		ctx,
		"operator",
		&ledger.OperatorArgs{Authority: authority.Hex()},
		resp,
	); err != nil {
		return nil, err
	}
	return resp.Info, nil
}

func (cli *client) Operators(ctx context.Context) ([]*chain.OperatorInfo, error) {
	resp := new(ledger.OperatorsReply)
	if err := cli.req.SendRequest(
		ctx,
		"operators",
		nil,
		resp,
	); err != nil {
		return nil, err
	}
	return resp.Operators, nil
}

func (cli *client) Pod(ctx context.Context, addr common.Address) (*chain.PodInfo, error) {
	resp := new(ledger.PodReply)
	if err := cli.req.SendRequest(
		ctx,
		"pod",
		&ledger.PodArgs{Address: addr.Hex()},
		resp,
	); err != nil {
		return nil, err
	}
	return resp.Info, nil
}

func (cli *client) ResolvePod(ctx context.Context, owner common.Address, btcPublicKey string) (common.Address, bool, *chain.PodInfo, error) {
	resp := new(ledger.ResolvePodReply)
	if err := cli.req.SendRequest(
		ctx,
		"resolvePod",
		&ledger.ResolvePodArgs{
			Owner:        owner.Hex(),
			BtcPublicKey: btcPublicKey,
		},
		resp,
	); err != nil {
		return common.Address{}, false, nil, err
	}
	return resp.Address, resp.Exists, resp.Info, nil
}

func (cli *client) OwnedPods(ctx context.Context, owner common.Address) ([]*chain.PodInfo, error) {
	resp := new(ledger.OwnedPodsReply)
	if err := cli.req.SendRequest(
		ctx,
		"ownedPods",
		&ledger.OwnedPodsArgs{Owner: owner.Hex()},
		resp,
	); err != nil {
		return nil, err
	}
	return resp.Pods, nil
}

func (cli *client) Activity(ctx context.Context) ([]*chain.Activity, error) {
	resp := new(ledger.ActivityReply)
	if err := cli.req.SendRequest(
		ctx,
		"activity",
		nil,
		resp,
	); err != nil {
		return nil, err
	}
	return resp.Activity, nil
}

func (cli *client) IssueRawTx(ctx context.Context, d []byte) (ids.ID, error) {
	resp := new(ledger.IssueRawTxReply)
	if err := cli.req.SendRequest(
		ctx,
		"issueRawTx",
		&ledger.IssueRawTxArgs{Tx: d},
		resp,
	); err != nil {
		return ids.Empty, err
	}
	return resp.TxID, nil
}

func (cli *client) IssueTx(ctx context.Context, td *tdata.TypedData, sig []byte) (ids.ID, error) {
	resp := new(ledger.IssueTxReply)
	if err := cli.req.SendRequest(
		ctx,
		"issueTx",
		&ledger.IssueTxArgs{TypedData: td, Signature: sig},
		resp,
	); err != nil {
		return ids.Empty, err
	}
	return resp.TxID, nil
}

func (cli *client) HasTx(ctx context.Context, txID ids.ID) (bool, error) {
	resp := new(ledger.HasTxReply)
	if err := cli.req.SendRequest(
		ctx,
		"hasTx",
		&ledger.HasTxArgs{TxID: txID},
		resp,
	); err != nil {
		return false, err
	}
	return resp.Confirmed, nil
}

func (cli *client) PollTx(ctx context.Context, txID ids.ID) (confirmed bool, err error) {
done:
	for ctx.Err() == nil {
		select {
		case <-time.After(time.Second):
		case <-ctx.Done():
			break done
		}

		confirmed, err := cli.HasTx(ctx, txID)
		if err != nil {
			color.Red("polling transaction failed %v", err)
			continue
		}
		if confirmed {
			return true, nil
		}
	}
	return false, ctx.Err()
}
