// Copyright (C) 2023, BitDSM. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ava-labs/avalanchego/codec"
	"github.com/ava-labs/avalanchego/codec/linearcodec"
	"github.com/ava-labs/avalanchego/utils/wrappers"
)

// codecVersion is the current default codec version
const codecVersion = 0

var codecManager codec.Manager

func init() {
	c := linearcodec.NewDefault()
	codecManager = codec.NewDefaultManager()
	errs := wrappers.Errs{}
	errs.Add(
		c.RegisterType(&BaseTx{}),
		c.RegisterType(&InitializeRegistryTx{}),
		c.RegisterType(&RegisterOperatorTx{}),
		c.RegisterType(&CreatePodTx{}),
		c.RegisterType(&ConfirmDepositTx{}),
		c.RegisterType(&AddStakeTx{}),
		c.RegisterType(&SetPodStatusTx{}),
		c.RegisterType(&Transaction{}),
		c.RegisterType(&RegistryInfo{}),
		c.RegisterType(&OperatorInfo{}),
		c.RegisterType(&PodInfo{}),
		c.RegisterType(&Genesis{}),
		codecManager.RegisterCodec(codecVersion, c),
	)
	if errs.Errored() {
		panic(errs.Err)
	}
}

func Marshal(source interface{}) ([]byte, error) {
	return codecManager.Marshal(codecVersion, source)
}

func Unmarshal(source []byte, destination interface{}) (uint16, error) {
	return codecManager.Unmarshal(source, destination)
}

// RecordSize reports the serialized size of a record, for collaborators that
// provision storage ahead of creation.
func RecordSize(record interface{}) (uint64, error) {
	b, err := Marshal(record)
	if err != nil {
		return 0, err
	}
	return uint64(len(b)), nil
}
