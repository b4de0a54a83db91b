// Copyright 2025 NetApp, Inc. All Rights Reserved.

package ants

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestNewConfig(t *testing.T) {
	cfg := NewConfig(WithNumWorkers(3), WithPreAlloc(true), WithNonBlocking(true),
		WithExpiryDuration(time.Minute))

	assert.Equal(t, 3, cfg.NumWorkers)
	assert.True(t, cfg.PreAlloc)
	assert.True(t, cfg.NonBlocking)
	assert.Equal(t, time.Minute, cfg.ExpiryDuration)

	def := DefaultConfig()
	assert.Equal(t, defaultNumWorkers, def.NumWorkers)
	assert.Equal(t, defaultExpiryDuration, def.ExpiryDuration)
}

func TestConfigCopy(t *testing.T) {
	var nilCfg *Config
	assert.Nil(t, nilCfg.Copy())

	cfg := NewConfig(WithNumWorkers(2))
	copied := cfg.Copy()
	require.NotNil(t, copied)
	assert.Equal(t, cfg, copied)

	copied.NumWorkers = 10
	assert.Equal(t, 2, cfg.NumWorkers, "copy must not alias the original")
}

func TestNewPool(t *testing.T) {
	ctx := context.Background()

	p, err := NewPool(ctx, NewConfig(WithNumWorkers(4)))
	require.NoError(t, err)
	defer p.Shutdown()
	assert.Equal(t, 4, p.Cap())

	_, err = NewPool(ctx, NewConfig(WithNumWorkers(0)))
	assert.Error(t, err)

	p2, err := NewPool(ctx, nil)
	require.NoError(t, err)
	defer p2.Shutdown()
	assert.Equal(t, defaultNumWorkers, p2.Cap())
}

func TestPool_SubmitAfterShutdown(t *testing.T) {
	p, err := NewPool(context.Background(), NewConfig(WithNumWorkers(1)))
	require.NoError(t, err)

	p.Shutdown()
	p.Shutdown()

	assert.Error(t, p.Submit(func() {}))
	assert.Equal(t, 0, p.Cap())
	assert.Equal(t, 0, p.Running())
}

func TestPool_RunAll(t *testing.T) {
	ctx := context.Background()
	p, err := NewPool(ctx, NewConfig(WithNumWorkers(2)))
	require.NoError(t, err)
	defer p.Shutdown()

	var count int32
	failure := errors.New("failover failed")

	tasks := make([]func(context.Context) error, 0, 6)
	for i := 0; i < 5; i++ {
		tasks = append(tasks, func(context.Context) error {
			atomic.AddInt32(&count, 1)
			return nil
		})
	}
	tasks = append(tasks, func(context.Context) error { return failure })

	err = p.RunAll(ctx, tasks...)
	assert.Equal(t, int32(5), atomic.LoadInt32(&count))
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 1)
	assert.ErrorIs(t, err, failure)
}

func TestPool_RunAllCancelled(t *testing.T) {
	p, err := NewPool(context.Background(), NewConfig(WithNumWorkers(1)))
	require.NoError(t, err)
	defer p.Shutdown()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var ran int32
	err = p.RunAll(ctx, func(context.Context) error {
		atomic.AddInt32(&ran, 1)
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, int32(0), atomic.LoadInt32(&ran))
}
