// Copyright 2025 NetApp, Inc. All Rights Reserved.

package locks

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGCNamedMutex_GarbageCollected(t *testing.T) {
	m := NewGCNamedMutex()

	m.Lock("000197900123-OS-SG")
	assert.Equal(t, 1, m.Len())
	m.Unlock("000197900123-OS-SG")
	assert.Equal(t, 0, m.Len())

	// Unlocking an unknown name is a no-op
	m.Unlock("unknown")
	assert.Equal(t, 0, m.Len())
}

func TestGCNamedMutex_MutualExclusion(t *testing.T) {
	m := NewGCNamedMutex()

	var inside int32
	var maxInside int32
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.Lock("dev")
			n := atomic.AddInt32(&inside, 1)
			for {
				old := atomic.LoadInt32(&maxInside)
				if n <= old || atomic.CompareAndSwapInt32(&maxInside, old, n) {
					break
				}
			}
			time.Sleep(time.Millisecond)
			atomic.AddInt32(&inside, -1)
			m.Unlock("dev")
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), maxInside)
	assert.Equal(t, 0, m.Len())
}

func TestGCNamedMutex_IndependentNames(t *testing.T) {
	m := NewGCNamedMutex()
	m.Lock("a")
	defer m.Unlock("a")

	done := make(chan struct{})
	go func() {
		m.Lock("b")
		m.Unlock("b")
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("lock on a different name blocked")
	}
}

func TestLockedResource_Idempotent(t *testing.T) {
	m := NewGCNamedMutex()
	locked := m.LockWithGuard("sg")
	assert.Equal(t, "sg", locked.Name())

	locked.Unlock()
	locked.Unlock()
	assert.Equal(t, 0, m.Len())
}

func TestKey(t *testing.T) {
	assert.Equal(t, "000197900123-OS-SRP_1-Diamond-NONE-SG", Key("000197900123", "OS-SRP_1-Diamond-NONE-SG"))
	assert.Equal(t, "000197900123-rdfg-10", Key("000197900123", "rdfg", "10"))
	assert.Equal(t, "000197900123", Key("000197900123"))
}

func TestNew(t *testing.T) {
	ctx := context.Background()

	locker, err := New(ctx, Config{})
	require.NoError(t, err)
	assert.IsType(t, &LocalLocker{}, locker)

	locker, err = New(ctx, Config{Type: "LOCAL"})
	require.NoError(t, err)
	assert.IsType(t, &LocalLocker{}, locker)
	assert.NoError(t, locker.Close())

	_, err = New(ctx, Config{Type: "zookeeper"})
	assert.Error(t, err)

	_, err = New(ctx, Config{Type: TypeEtcd})
	assert.Error(t, err, "etcd without endpoints must fail")
}

func TestLocalLocker(t *testing.T) {
	locker := NewLocalLocker()

	locked, err := locker.Lock(context.Background(), "mv")
	require.NoError(t, err)
	assert.Equal(t, 1, locker.mutex.Len())
	locked.Unlock()
	assert.Equal(t, 0, locker.mutex.Len())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = locker.Lock(ctx, "mv")
	assert.ErrorIs(t, err, context.Canceled)
}

type fakeDistributedMutex struct {
	lockErr   error
	unlockErr error
	locked    *int32
	unlocked  *int32
}

func (f *fakeDistributedMutex) Lock(context.Context) error {
	if f.lockErr != nil {
		return f.lockErr
	}
	atomic.AddInt32(f.locked, 1)
	return nil
}

func (f *fakeDistributedMutex) Unlock(context.Context) error {
	atomic.AddInt32(f.unlocked, 1)
	return f.unlockErr
}

func newFakeEtcdLocker(lockErr, unlockErr error) (*EtcdLocker, *int32, *int32, *[]string) {
	var locked, unlocked int32
	keys := &[]string{}
	return &EtcdLocker{
		local:  NewGCNamedMutex(),
		prefix: DefaultEtcdPrefix,
		newMutex: func(key string) distributedMutex {
			*keys = append(*keys, key)
			return &fakeDistributedMutex{lockErr: lockErr, unlockErr: unlockErr, locked: &locked, unlocked: &unlocked}
		},
	}, &locked, &unlocked, keys
}

func TestEtcdLocker_LockUnlock(t *testing.T) {
	locker, locked, unlocked, keys := newFakeEtcdLocker(nil, nil)

	res, err := locker.Lock(context.Background(), "000197900123-00123")
	require.NoError(t, err)
	assert.Equal(t, []string{"/powermax/locks/000197900123-00123"}, *keys)
	assert.Equal(t, int32(1), *locked)
	assert.Equal(t, 1, locker.local.Len())

	res.Unlock()
	res.Unlock()
	assert.Equal(t, int32(1), *unlocked)
	assert.Equal(t, 0, locker.local.Len())
	assert.NoError(t, locker.Close())
}

func TestEtcdLocker_LockFailureReleasesLocal(t *testing.T) {
	locker, _, unlocked, _ := newFakeEtcdLocker(errors.New("lease expired"), nil)

	_, err := locker.Lock(context.Background(), "sg")
	assert.Error(t, err)
	assert.Equal(t, int32(0), *unlocked)
	assert.Equal(t, 0, locker.local.Len())
}

func TestEtcdLocker_UnlockFailureReleasesLocal(t *testing.T) {
	locker, _, unlocked, _ := newFakeEtcdLocker(nil, errors.New("connection lost"))

	res, err := locker.Lock(context.Background(), "sg")
	require.NoError(t, err)
	res.Unlock()
	assert.Equal(t, int32(1), *unlocked)
	assert.Equal(t, 0, locker.local.Len())
}
