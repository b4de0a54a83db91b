// Copyright 2025 NetApp, Inc. All Rights Reserved.

package locks

import (
	"context"
	"fmt"
	"strings"
	"time"

	. "github.com/pmax-drivers/powermax/logging"
)

const (
	TypeLocal = "local"
	TypeEtcd  = "etcd"

	DefaultEtcdPrefix = "/powermax/locks"
)

// Locker serializes mutations of a named array resource.  The returned LockedResource must be
// released by the caller, usually with defer.
type Locker interface {
	Lock(ctx context.Context, name string) (*LockedResource, error)
	Close() error
}

// Config selects and configures a Locker.
type Config struct {
	Type       string   `json:"type,omitempty"`
	Endpoints  []string `json:"endpoints,omitempty"`
	TTLSeconds int      `json:"ttlSeconds,omitempty"`
	Prefix     string   `json:"prefix,omitempty"`
}

// New returns the Locker described by config.  An empty type means an in-process locker.
func New(ctx context.Context, config Config) (Locker, error) {
	switch strings.ToLower(config.Type) {
	case "", TypeLocal:
		return NewLocalLocker(), nil
	case TypeEtcd:
		return NewEtcdLocker(ctx, config)
	default:
		return nil, fmt.Errorf("unsupported lock type '%s'", config.Type)
	}
}

// Key builds a lock name from an array serial and resource parts, e.g. 000197900123-OS-SG.
func Key(array string, parts ...string) string {
	return strings.Join(append([]string{array}, parts...), "-")
}

// LocalLocker holds named locks within this process.
type LocalLocker struct {
	mutex *GCNamedMutex
}

func NewLocalLocker() *LocalLocker {
	return &LocalLocker{mutex: NewGCNamedMutex()}
}

func (l *LocalLocker) Lock(ctx context.Context, name string) (*LockedResource, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	locked := l.mutex.LockWithGuard(name)
	Logc(ctx).WithFields(LogFields{
		"lock":     name,
		"waited":   time.Since(start).String(),
		"lockType": TypeLocal,
	}).Trace("Acquired lock.")
	return locked, nil
}

func (l *LocalLocker) Close() error {
	return nil
}
