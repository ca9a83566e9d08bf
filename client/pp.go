// Copyright (C) 2023, BitDSM. All rights reserved.
// See the file LICENSE for licensing terms.

package client

import (
	"fmt"
	"time"

	"github.com/fatih/color"

	"github.com/bitdsm/podvm/chain"
)

// PPActivity pretty prints recent transitions, oldest first.
func PPActivity(a []*chain.Activity) error {
	for _, item := range a {
		tm := time.Unix(item.Tmstmp, 0)
		var desc string
		switch item.Typ {
		case chain.InitializeRegistry:
			desc = "registry initialized"
		case chain.RegisterOperator:
			desc = fmt.Sprintf("operator %q registered", item.Name)
		case chain.CreatePod:
			desc = fmt.Sprintf("pod %s created", item.Pod)
		case chain.ConfirmDeposit:
			desc = fmt.Sprintf("deposit of %d into pod %s", item.Amount, item.Pod)
		case chain.AddStake:
			desc = fmt.Sprintf("stake increased by %d", item.Amount)
		case chain.SetPodStatus:
			desc = fmt.Sprintf("pod %s active=%v", item.Pod, item.Active)
		default:
			return fmt.Errorf("%w: unknown activity type %q", chain.ErrInvalidType, item.Typ)
		}
		color.Yellow("[%v] %s by %s", tm.Format(time.RFC3339), desc, item.Sender)
	}
	return nil
}
