// Copyright 2025 NetApp, Inc. All Rights Reserved.

package ants

import (
	"time"
)

const (
	// defaultExpiryDuration is the default expiryDuration after which expired workers are cleaned up.
	defaultExpiryDuration = 10 * time.Second

	// defaultNumWorkers bounds concurrent Unisphere calls issued by one fan-out.
	defaultNumWorkers = 8
)

// DefaultConfig returns the default configuration for a Pool.
func DefaultConfig() *Config {
	return NewConfig()
}
