// Copyright 2025 NetApp, Inc. All Rights Reserved.

package persistentstore

import (
	"context"
	"sort"
	"sync"

	"github.com/pmax-drivers/powermax/storage"
)

// InMemoryClient keeps records for the life of the process.  Records are copied on the way in and
// out so callers never share state with the store.
type InMemoryClient struct {
	mutex         sync.RWMutex
	backends      map[string]*BackendState
	volumes       map[string]*storage.Volume
	volumesAdded  int
	snapshots     map[string]map[string]*storage.Snapshot
	snapshotCount int
	version       *PersistentStateVersion
}

func NewInMemoryClient() *InMemoryClient {
	return &InMemoryClient{
		backends:  make(map[string]*BackendState),
		volumes:   make(map[string]*storage.Volume),
		snapshots: make(map[string]map[string]*storage.Snapshot),
		version:   currentVersion(MemoryStore),
	}
}

func (c *InMemoryClient) GetType() StoreType {
	return MemoryStore
}

func (c *InMemoryClient) Stop() error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.backends = make(map[string]*BackendState)
	c.volumes = make(map[string]*storage.Volume)
	c.volumesAdded = 0
	c.snapshots = make(map[string]map[string]*storage.Snapshot)
	c.snapshotCount = 0
	return nil
}

func (c *InMemoryClient) GetVersion(context.Context) (*PersistentStateVersion, error) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	version := *c.version
	return &version, nil
}

func (c *InMemoryClient) SetVersion(_ context.Context, version *PersistentStateVersion) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	v := *version
	c.version = &v
	return nil
}

func (c *InMemoryClient) GetBackendState(_ context.Context, name string) (*BackendState, error) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	state, ok := c.backends[name]
	if !ok {
		return nil, NewPersistentStoreError(KeyNotFoundErr, name)
	}
	s := *state
	return &s, nil
}

func (c *InMemoryClient) UpdateBackendState(_ context.Context, state *BackendState) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	s := *state
	c.backends[state.Name] = &s
	return nil
}

func (c *InMemoryClient) AddVolume(_ context.Context, vol *storage.Volume) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	if _, ok := c.volumes[vol.ID]; ok {
		return NewPersistentStoreError(KeyExistsErr, vol.ID)
	}
	c.volumes[vol.ID] = vol.ConstructClone()
	c.volumesAdded++
	return nil
}

func (c *InMemoryClient) GetVolume(_ context.Context, volumeID string) (*storage.Volume, error) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	ret, ok := c.volumes[volumeID]
	if !ok {
		return nil, NewPersistentStoreError(KeyNotFoundErr, volumeID)
	}
	return ret.ConstructClone(), nil
}

func (c *InMemoryClient) UpdateVolume(_ context.Context, vol *storage.Volume) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	// UpdateVolume requires the volume to already exist.
	if _, ok := c.volumes[vol.ID]; !ok {
		return NewPersistentStoreError(KeyNotFoundErr, vol.ID)
	}
	c.volumes[vol.ID] = vol.ConstructClone()
	return nil
}

func (c *InMemoryClient) DeleteVolume(_ context.Context, volumeID string) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	if _, ok := c.volumes[volumeID]; !ok {
		return NewPersistentStoreError(KeyNotFoundErr, volumeID)
	}
	delete(c.volumes, volumeID)
	c.snapshotCount -= len(c.snapshots[volumeID])
	delete(c.snapshots, volumeID)
	return nil
}

func (c *InMemoryClient) GetVolumes(context.Context) ([]*storage.Volume, error) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	ret := make([]*storage.Volume, 0, len(c.volumes))
	for _, v := range c.volumes {
		ret = append(ret, v.ConstructClone())
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i].ID < ret[j].ID })
	return ret, nil
}

func (c *InMemoryClient) AddSnapshot(_ context.Context, snapshot *storage.Snapshot) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	if _, ok := c.volumes[snapshot.VolumeID]; !ok {
		return NewPersistentStoreError(KeyNotFoundErr, snapshot.VolumeID)
	}
	snapshots, ok := c.snapshots[snapshot.VolumeID]
	if !ok {
		snapshots = make(map[string]*storage.Snapshot)
		c.snapshots[snapshot.VolumeID] = snapshots
	}
	if _, ok = snapshots[snapshot.ID]; ok {
		return NewPersistentStoreError(KeyExistsErr, snapshotKey(snapshot.VolumeID, snapshot.ID))
	}
	snapshots[snapshot.ID] = snapshot.ConstructClone()
	c.snapshotCount++
	return nil
}

func (c *InMemoryClient) GetSnapshot(_ context.Context, volumeID, snapshotID string) (*storage.Snapshot, error) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	snapshot, ok := c.snapshots[volumeID][snapshotID]
	if !ok {
		return nil, NewPersistentStoreError(KeyNotFoundErr, snapshotKey(volumeID, snapshotID))
	}
	return snapshot.ConstructClone(), nil
}

func (c *InMemoryClient) DeleteSnapshot(_ context.Context, volumeID, snapshotID string) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	if _, ok := c.snapshots[volumeID][snapshotID]; !ok {
		return NewPersistentStoreError(KeyNotFoundErr, snapshotKey(volumeID, snapshotID))
	}
	delete(c.snapshots[volumeID], snapshotID)
	c.snapshotCount--
	return nil
}

func (c *InMemoryClient) GetSnapshotsForVolume(_ context.Context, volumeID string) ([]*storage.Snapshot, error) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	ret := make([]*storage.Snapshot, 0, len(c.snapshots[volumeID]))
	for _, s := range c.snapshots[volumeID] {
		ret = append(ret, s.ConstructClone())
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i].ID < ret[j].ID })
	return ret, nil
}
