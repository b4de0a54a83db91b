// Copyright 2025 NetApp, Inc. All Rights Reserved.

package ants

import (
	"context"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"
	"go.uber.org/multierr"

	. "github.com/pmax-drivers/powermax/logging"
)

// Pool is a bounded goroutine pool backed by ants.
type Pool struct {
	pool *ants.Pool
	mu   sync.RWMutex
}

// NewPool creates a pool from config.  A nil config uses DefaultConfig.
func NewPool(ctx context.Context, config *Config) (*Pool, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if config.NumWorkers <= 0 {
		return nil, fmt.Errorf("invalid number of workers: %d", config.NumWorkers)
	}

	p, err := ants.NewPool(config.NumWorkers,
		ants.WithPreAlloc(config.PreAlloc),
		ants.WithNonblocking(config.NonBlocking),
		ants.WithExpiryDuration(config.ExpiryDuration),
		ants.WithDisablePurge(config.DisablePurge),
		ants.WithPanicHandler(func(r interface{}) {
			Logc(ctx).WithField("panic", r).Error("Worker pool task panicked.")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create worker pool; %w", err)
	}
	return &Pool{pool: p}, nil
}

// Submit queues a task.  In blocking mode it waits for a free worker.
func (p *Pool) Submit(task func()) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.pool == nil {
		return fmt.Errorf("worker pool is closed")
	}
	return p.pool.Submit(task)
}

// Cap returns the worker capacity of the pool.
func (p *Pool) Cap() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.pool == nil {
		return 0
	}
	return p.pool.Cap()
}

// Running returns the number of busy workers.
func (p *Pool) Running() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.pool == nil {
		return 0
	}
	return p.pool.Running()
}

// Shutdown releases the pool.  It is safe to call more than once.
func (p *Pool) Shutdown() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.pool != nil {
		p.pool.Release()
		p.pool = nil
	}
}

// RunAll runs every task on the pool and waits for all of them.  Tasks not yet started when ctx is
// cancelled are skipped and reported with the context error.
func (p *Pool) RunAll(ctx context.Context, tasks ...func(context.Context) error) error {
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs error
	)
	record := func(err error) {
		if err != nil {
			mu.Lock()
			errs = multierr.Append(errs, err)
			mu.Unlock()
		}
	}

	for _, task := range tasks {
		if err := ctx.Err(); err != nil {
			record(err)
			break
		}
		task := task
		wg.Add(1)
		if err := p.Submit(func() {
			defer wg.Done()
			if err := ctx.Err(); err != nil {
				record(err)
				return
			}
			record(task(ctx))
		}); err != nil {
			wg.Done()
			record(err)
		}
	}
	wg.Wait()
	return errs
}
