// Copyright (C) 2023, BitDSM. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ethereum/go-ethereum/common"
)

// 0x0/ (registry singleton)
// 0x1/ (operators)
//   -> [authority address]
// 0x2/ (pods)
//   -> [derived pod address]
// 0x3/ (tx hashes)

const (
	registryPrefix = 0x0
	operatorPrefix = 0x1
	podPrefix      = 0x2
	txPrefix       = 0x3

	keyDelimiter byte = '/'
)

func RegistryKey() []byte {
	return []byte{registryPrefix, keyDelimiter}
}

func OperatorKey(authority common.Address) []byte {
	return append([]byte{operatorPrefix, keyDelimiter}, authority[:]...)
}

func PodKey(addr common.Address) []byte {
	return append([]byte{podPrefix, keyDelimiter}, addr[:]...)
}

func PrefixTxKey(txID ids.ID) []byte {
	return append([]byte{txPrefix, keyDelimiter}, txID[:]...)
}

func HasRegistry(db database.KeyValueReader) (bool, error) {
	return db.Has(RegistryKey())
}

func GetRegistryInfo(db database.KeyValueReader) (*RegistryInfo, bool, error) {
	var i RegistryInfo
	has, err := getRecord(db, RegistryKey(), &i)
	if !has || err != nil {
		return nil, false, err
	}
	return &i, true, nil
}

func PutRegistryInfo(db database.KeyValueWriter, i *RegistryInfo) error {
	b, err := Marshal(i)
	if err != nil {
		return err
	}
	return db.Put(RegistryKey(), b)
}

func HasOperator(db database.KeyValueReader, authority common.Address) (bool, error) {
	return db.Has(OperatorKey(authority))
}

func GetOperatorInfo(db database.KeyValueReader, authority common.Address) (*OperatorInfo, bool, error) {
	var i OperatorInfo
	has, err := getRecord(db, OperatorKey(authority), &i)
	if !has || err != nil {
		return nil, false, err
	}
	return &i, true, nil
}

func PutOperatorInfo(db database.KeyValueWriter, i *OperatorInfo) error {
	b, err := Marshal(i)
	if err != nil {
		return err
	}
	return db.Put(OperatorKey(i.Authority), b)
}

// GetAllOperators returns every registered operator, in key order.
func GetAllOperators(db database.Database) ([]*OperatorInfo, error) {
	operators := []*OperatorInfo{}
	cursor := db.NewIteratorWithPrefix([]byte{operatorPrefix, keyDelimiter})
	defer cursor.Release()
	for cursor.Next() {
		var i OperatorInfo
		if _, err := Unmarshal(cursor.Value(), &i); err != nil {
			return nil, err
		}
		operators = append(operators, &i)
	}
	return operators, cursor.Error()
}

func HasPod(db database.KeyValueReader, addr common.Address) (bool, error) {
	return db.Has(PodKey(addr))
}

func GetPodInfo(db database.KeyValueReader, addr common.Address) (*PodInfo, bool, error) {
	var i PodInfo
	has, err := getRecord(db, PodKey(addr), &i)
	if !has || err != nil {
		return nil, false, err
	}
	return &i, true, nil
}

func PutPodInfo(db database.KeyValueWriter, addr common.Address, i *PodInfo) error {
	b, err := Marshal(i)
	if err != nil {
		return err
	}
	return db.Put(PodKey(addr), b)
}

// GetOwnedPods returns every pod owned by the given address, in key order.
func GetOwnedPods(db database.Database, owner common.Address) ([]*PodInfo, error) {
	pods := []*PodInfo{}
	cursor := db.NewIteratorWithPrefix([]byte{podPrefix, keyDelimiter})
	defer cursor.Release()
	for cursor.Next() {
		var i PodInfo
		if _, err := Unmarshal(cursor.Value(), &i); err != nil {
			return nil, err
		}
		if i.Owner == owner {
			pods = append(pods, &i)
		}
	}
	return pods, cursor.Error()
}

func SetTransaction(db database.KeyValueWriter, tx *Transaction) error {
	k := PrefixTxKey(tx.ID())
	return db.Put(k, nil)
}

func HasTransaction(db database.KeyValueReader, txID ids.ID) (bool, error) {
	return db.Has(PrefixTxKey(txID))
}

func getRecord(db database.KeyValueReader, k []byte, destination interface{}) (bool, error) {
	has, err := db.Has(k)
	if err != nil {
		return false, err
	}
	if !has {
		return false, nil
	}
	v, err := db.Get(k)
	if err != nil {
		return false, err
	}
	if _, err := Unmarshal(v, destination); err != nil {
		return false, err
	}
	return true, nil
}
