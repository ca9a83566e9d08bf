// Copyright (C) 2023, BitDSM. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

type Activity struct {
	Tmstmp   int64  `serialize:"true" json:"timestamp"`
	Sender   string `serialize:"true" json:"sender"`
	Typ      string `serialize:"true" json:"type"`
	Name     string `serialize:"true" json:"name,omitempty"`
	Operator string `serialize:"true" json:"operator,omitempty"`
	Pod      string `serialize:"true" json:"pod,omitempty"`
	Amount   uint64 `serialize:"true" json:"amount,omitempty"`
	Active   bool   `serialize:"true" json:"active,omitempty"`
}
