// Copyright (C) 2023, BitDSM. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"math"
)

// CheckedAdd returns a + b, or ErrOverflow if the sum does not fit in a
// uint64. It never wraps.
func CheckedAdd(a uint64, b uint64) (uint64, error) {
	if a > math.MaxUint64-b {
		return 0, ErrOverflow
	}
	return a + b, nil
}
