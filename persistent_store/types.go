// Copyright 2025 NetApp, Inc. All Rights Reserved.

package persistentstore

import (
	"context"
	"fmt"
	"strings"

	"github.com/pmax-drivers/powermax/config"
	"github.com/pmax-drivers/powermax/storage"
)

type StoreType string

const (
	MemoryStore StoreType = "memory"
	EtcdV3Store StoreType = "etcdv3"
)

// PersistentStateVersion records the store layout and API version that wrote the records.
type PersistentStateVersion struct {
	PersistentStoreVersion string `json:"store_version"`
	OrchestratorAPIVersion string `json:"orchestrator_api_version"`
}

// BackendState is what the orchestrator must remember about a backend across restarts.
type BackendState struct {
	Name            string `json:"name"`
	ActiveBackendID string `json:"activeBackendID"`
}

// ClientConfig selects and configures a store.
type ClientConfig struct {
	Type      StoreType `json:"type,omitempty"`
	Endpoints []string  `json:"endpoints,omitempty"`
	Prefix    string    `json:"prefix,omitempty"`
}

// Client keeps the host framework's record of volumes and snapshots.  The driver is stateless, so
// provider locations live here between calls.
type Client interface {
	GetVersion(ctx context.Context) (*PersistentStateVersion, error)
	SetVersion(ctx context.Context, version *PersistentStateVersion) error
	GetType() StoreType
	Stop() error

	GetBackendState(ctx context.Context, name string) (*BackendState, error)
	UpdateBackendState(ctx context.Context, state *BackendState) error

	AddVolume(ctx context.Context, vol *storage.Volume) error
	GetVolume(ctx context.Context, volumeID string) (*storage.Volume, error)
	UpdateVolume(ctx context.Context, vol *storage.Volume) error
	DeleteVolume(ctx context.Context, volumeID string) error
	GetVolumes(ctx context.Context) ([]*storage.Volume, error)

	AddSnapshot(ctx context.Context, snapshot *storage.Snapshot) error
	GetSnapshot(ctx context.Context, volumeID, snapshotID string) (*storage.Snapshot, error)
	DeleteSnapshot(ctx context.Context, volumeID, snapshotID string) error
	GetSnapshotsForVolume(ctx context.Context, volumeID string) ([]*storage.Snapshot, error)
}

// NewClient returns the store described by the config.  An empty type means an in-memory store.
func NewClient(ctx context.Context, clientConfig *ClientConfig) (Client, error) {
	switch StoreType(strings.ToLower(string(clientConfig.Type))) {
	case "", MemoryStore:
		return NewInMemoryClient(), nil
	case EtcdV3Store:
		return NewEtcdClientV3(ctx, clientConfig)
	default:
		return nil, fmt.Errorf("unsupported persistent store type '%s'", clientConfig.Type)
	}
}

func currentVersion(storeType StoreType) *PersistentStateVersion {
	return &PersistentStateVersion{
		PersistentStoreVersion: string(storeType),
		OrchestratorAPIVersion: config.OrchestratorAPIVersion,
	}
}
