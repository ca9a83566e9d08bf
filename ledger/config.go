// Copyright (C) 2023, BitDSM. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

type Config struct {
	ActivityCacheSize int `serialize:"true" json:"activityCacheSize"`
}

func (c *Config) SetDefaults() {
	c.ActivityCacheSize = 128
}
