// Copyright 2025 NetApp, Inc. All Rights Reserved.

package locks

import (
	"context"
	"fmt"
	"path"
	"time"

	clientv3 "go.etcd.io/etcd/client/v3"
	"go.etcd.io/etcd/client/v3/concurrency"

	. "github.com/pmax-drivers/powermax/logging"
)

const (
	defaultEtcdTTLSeconds = 60
	etcdDialTimeout       = 5 * time.Second
	etcdUnlockTimeout     = 10 * time.Second
)

type distributedMutex interface {
	Lock(ctx context.Context) error
	Unlock(ctx context.Context) error
}

// EtcdLocker holds named locks in etcd so that several driver processes sharing one array do not
// race.  Every name is also held locally first, because two etcd mutexes created from the same
// session share an ownership key and would both believe they hold the lock.
type EtcdLocker struct {
	local    *GCNamedMutex
	prefix   string
	client   *clientv3.Client
	session  *concurrency.Session
	newMutex func(key string) distributedMutex
}

func NewEtcdLocker(ctx context.Context, config Config) (*EtcdLocker, error) {
	if len(config.Endpoints) == 0 {
		return nil, fmt.Errorf("etcd lock type requires at least one endpoint")
	}
	ttl := config.TTLSeconds
	if ttl <= 0 {
		ttl = defaultEtcdTTLSeconds
	}
	prefix := config.Prefix
	if prefix == "" {
		prefix = DefaultEtcdPrefix
	}

	client, err := clientv3.New(clientv3.Config{
		Endpoints:   config.Endpoints,
		DialTimeout: etcdDialTimeout,
		Context:     ctx,
	})
	if err != nil {
		return nil, fmt.Errorf("could not connect to etcd; %w", err)
	}

	session, err := concurrency.NewSession(client, concurrency.WithTTL(ttl))
	if err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("could not create etcd session; %w", err)
	}

	Logc(ctx).WithFields(LogFields{
		"endpoints": config.Endpoints,
		"ttl":       ttl,
		"prefix":    prefix,
	}).Info("Using etcd for named locks.")

	return &EtcdLocker{
		local:   NewGCNamedMutex(),
		prefix:  prefix,
		client:  client,
		session: session,
		newMutex: func(key string) distributedMutex {
			return concurrency.NewMutex(session, key)
		},
	}, nil
}

func (l *EtcdLocker) Lock(ctx context.Context, name string) (*LockedResource, error) {
	local := l.local.LockWithGuard(name)

	key := path.Join(l.prefix, name)
	mutex := l.newMutex(key)
	if err := mutex.Lock(ctx); err != nil {
		local.Unlock()
		return nil, fmt.Errorf("could not acquire lock %s; %w", key, err)
	}

	Logc(ctx).WithFields(LogFields{"lock": key, "lockType": TypeEtcd}).Trace("Acquired lock.")

	return &LockedResource{
		name: name,
		unlock: func() {
			unlockCtx, cancel := context.WithTimeout(context.Background(), etcdUnlockTimeout)
			defer cancel()
			if err := mutex.Unlock(unlockCtx); err != nil {
				Logc(ctx).WithError(err).WithField("lock", key).Warning(
					"Could not release etcd lock; it expires with the session lease.")
			}
			local.Unlock()
		},
	}, nil
}

func (l *EtcdLocker) Close() error {
	var err error
	if l.session != nil {
		err = l.session.Close()
	}
	if l.client != nil {
		if cerr := l.client.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
