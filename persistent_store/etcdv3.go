// Copyright 2025 NetApp, Inc. All Rights Reserved.

package persistentstore

import (
	"context"
	"encoding/json"
	"fmt"
	"path"
	"strings"
	"time"

	clientv3 "go.etcd.io/etcd/client/v3"

	"github.com/pmax-drivers/powermax/config"
	. "github.com/pmax-drivers/powermax/logging"
	"github.com/pmax-drivers/powermax/storage"
)

const (
	etcdDialTimeout    = 5 * time.Second
	etcdRequestTimeout = 10 * time.Second
)

// DefaultEtcdPrefix is where records live when no prefix is configured.
var DefaultEtcdPrefix = "/" + config.OrchestratorName + "/v" + config.OrchestratorAPIVersion

// EtcdClientV3 keeps records as JSON values under a key prefix, so that several orchestrators can
// share one view of the volumes they manage.
type EtcdClientV3 struct {
	client *clientv3.Client
	kv     clientv3.KV
	prefix string
}

func NewEtcdClientV3(ctx context.Context, clientConfig *ClientConfig) (*EtcdClientV3, error) {
	if len(clientConfig.Endpoints) == 0 {
		return nil, fmt.Errorf("etcd store requires at least one endpoint")
	}
	prefix := clientConfig.Prefix
	if prefix == "" {
		prefix = DefaultEtcdPrefix
	}

	client, err := clientv3.New(clientv3.Config{
		Endpoints:   clientConfig.Endpoints,
		DialTimeout: etcdDialTimeout,
		Context:     ctx,
	})
	if err != nil {
		if strings.Contains(err.Error(), "dial tcp") || strings.Contains(err.Error(), "deadline exceeded") {
			return nil, NewPersistentStoreError(UnavailableClusterErr, strings.Join(clientConfig.Endpoints, ","))
		}
		return nil, err
	}

	Logc(ctx).WithFields(LogFields{
		"endpoints": clientConfig.Endpoints,
		"prefix":    prefix,
	}).Info("Using etcd for persistent state.")

	return &EtcdClientV3{client: client, kv: client.KV, prefix: prefix}, nil
}

func (p *EtcdClientV3) GetType() StoreType {
	return EtcdV3Store
}

func (p *EtcdClientV3) Stop() error {
	return p.client.Close()
}

func (p *EtcdClientV3) key(parts ...string) string {
	return path.Join(append([]string{p.prefix}, parts...)...)
}

func snapshotKey(volumeID, snapshotID string) string {
	return volumeID + "/" + snapshotID
}

// Create creates a key in etcd, failing if it already exists
func (p *EtcdClientV3) Create(ctx context.Context, key string, value any) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, etcdRequestTimeout)
	defer cancel()
	resp, err := p.kv.Txn(ctx).
		If(clientv3.Compare(clientv3.CreateRevision(key), "=", 0)).
		Then(clientv3.OpPut(key, string(b))).
		Commit()
	if err != nil {
		return err
	}
	if !resp.Succeeded {
		return NewPersistentStoreError(KeyExistsErr, key)
	}
	return nil
}

// Update replaces the value of a key in etcd, failing if it does not exist
func (p *EtcdClientV3) Update(ctx context.Context, key string, value any) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, etcdRequestTimeout)
	defer cancel()
	resp, err := p.kv.Txn(ctx).
		If(clientv3.Compare(clientv3.CreateRevision(key), ">", 0)).
		Then(clientv3.OpPut(key, string(b))).
		Commit()
	if err != nil {
		return err
	}
	if !resp.Succeeded {
		return NewPersistentStoreError(KeyNotFoundErr, key)
	}
	return nil
}

// Set writes a key whether or not it exists
func (p *EtcdClientV3) Set(ctx context.Context, key string, value any) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, etcdRequestTimeout)
	defer cancel()
	_, err = p.kv.Put(ctx, key, string(b))
	return err
}

// Read decodes the value of a key into result
func (p *EtcdClientV3) Read(ctx context.Context, key string, result any) error {
	ctx, cancel := context.WithTimeout(ctx, etcdRequestTimeout)
	defer cancel()
	resp, err := p.kv.Get(ctx, key)
	if err != nil {
		return err
	}
	if len(resp.Kvs) == 0 {
		return NewPersistentStoreError(KeyNotFoundErr, key)
	}
	return json.Unmarshal(resp.Kvs[0].Value, result)
}

// ReadPrefix returns the values of every key under a prefix, sorted by key
func (p *EtcdClientV3) ReadPrefix(ctx context.Context, keyPrefix string) ([][]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, etcdRequestTimeout)
	defer cancel()
	resp, err := p.kv.Get(ctx, keyPrefix+"/", clientv3.WithPrefix(),
		clientv3.WithSort(clientv3.SortByKey, clientv3.SortAscend))
	if err != nil {
		return nil, err
	}
	values := make([][]byte, 0, len(resp.Kvs))
	for _, kv := range resp.Kvs {
		values = append(values, kv.Value)
	}
	return values, nil
}

// Delete removes a key, failing if it does not exist
func (p *EtcdClientV3) Delete(ctx context.Context, key string, opts ...clientv3.OpOption) error {
	ctx, cancel := context.WithTimeout(ctx, etcdRequestTimeout)
	defer cancel()
	resp, err := p.kv.Delete(ctx, key, opts...)
	if err != nil {
		return err
	}
	if resp.Deleted == 0 {
		return NewPersistentStoreError(KeyNotFoundErr, key)
	}
	return nil
}

func (p *EtcdClientV3) GetVersion(ctx context.Context) (*PersistentStateVersion, error) {
	version := &PersistentStateVersion{}
	if err := p.Read(ctx, p.key("version"), version); err != nil {
		return nil, err
	}
	return version, nil
}

func (p *EtcdClientV3) SetVersion(ctx context.Context, version *PersistentStateVersion) error {
	return p.Set(ctx, p.key("version"), version)
}

func (p *EtcdClientV3) GetBackendState(ctx context.Context, name string) (*BackendState, error) {
	state := &BackendState{}
	if err := p.Read(ctx, p.key("backends", name), state); err != nil {
		return nil, err
	}
	return state, nil
}

func (p *EtcdClientV3) UpdateBackendState(ctx context.Context, state *BackendState) error {
	return p.Set(ctx, p.key("backends", state.Name), state)
}

func (p *EtcdClientV3) AddVolume(ctx context.Context, vol *storage.Volume) error {
	return p.Create(ctx, p.key("volumes", vol.ID), vol)
}

func (p *EtcdClientV3) GetVolume(ctx context.Context, volumeID string) (*storage.Volume, error) {
	volume := &storage.Volume{}
	if err := p.Read(ctx, p.key("volumes", volumeID), volume); err != nil {
		return nil, err
	}
	return volume, nil
}

func (p *EtcdClientV3) UpdateVolume(ctx context.Context, vol *storage.Volume) error {
	return p.Update(ctx, p.key("volumes", vol.ID), vol)
}

// DeleteVolume removes a volume record and the records of its snapshots.
func (p *EtcdClientV3) DeleteVolume(ctx context.Context, volumeID string) error {
	if err := p.Delete(ctx, p.key("volumes", volumeID)); err != nil {
		return err
	}
	if err := p.Delete(ctx, p.key("snapshots", volumeID)+"/", clientv3.WithPrefix()); err != nil &&
		!MatchKeyNotFoundErr(err) {
		return err
	}
	return nil
}

func (p *EtcdClientV3) GetVolumes(ctx context.Context) ([]*storage.Volume, error) {
	values, err := p.ReadPrefix(ctx, p.key("volumes"))
	if err != nil {
		return nil, err
	}
	volumes := make([]*storage.Volume, 0, len(values))
	for _, value := range values {
		volume := &storage.Volume{}
		if err = json.Unmarshal(value, volume); err != nil {
			return nil, err
		}
		volumes = append(volumes, volume)
	}
	return volumes, nil
}

func (p *EtcdClientV3) AddSnapshot(ctx context.Context, snapshot *storage.Snapshot) error {
	if _, err := p.GetVolume(ctx, snapshot.VolumeID); err != nil {
		return err
	}
	return p.Create(ctx, p.key("snapshots", snapshot.VolumeID, snapshot.ID), snapshot)
}

func (p *EtcdClientV3) GetSnapshot(ctx context.Context, volumeID, snapshotID string) (*storage.Snapshot, error) {
	snapshot := &storage.Snapshot{}
	if err := p.Read(ctx, p.key("snapshots", volumeID, snapshotID), snapshot); err != nil {
		return nil, err
	}
	return snapshot, nil
}

func (p *EtcdClientV3) DeleteSnapshot(ctx context.Context, volumeID, snapshotID string) error {
	return p.Delete(ctx, p.key("snapshots", volumeID, snapshotID))
}

func (p *EtcdClientV3) GetSnapshotsForVolume(ctx context.Context, volumeID string) ([]*storage.Snapshot, error) {
	values, err := p.ReadPrefix(ctx, p.key("snapshots", volumeID))
	if err != nil {
		return nil, err
	}
	snapshots := make([]*storage.Snapshot, 0, len(values))
	for _, value := range values {
		snapshot := &storage.Snapshot{}
		if err = json.Unmarshal(value, snapshot); err != nil {
			return nil, err
		}
		snapshots = append(snapshots, snapshot)
	}
	return snapshots, nil
}
