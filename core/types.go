// Copyright 2025 NetApp, Inc. All Rights Reserved.

package core

//go:generate mockgen -destination=../mocks/mock_core/mock_core.go github.com/pmax-drivers/powermax/core Orchestrator

import (
	"context"

	"github.com/pmax-drivers/powermax/storage"
)

// Orchestrator fronts one PowerMax backend.  It keeps the host framework's record of volumes and
// snapshots so that callers address them by ID rather than by provider location.
type Orchestrator interface {
	Bootstrap(ctx context.Context) error
	Stop(ctx context.Context)
	GetVersion(ctx context.Context) (string, error)
	GetBackend(ctx context.Context) (*BackendExternal, error)
	GetStats(ctx context.Context) (*storage.VolumeStats, error)

	AddVolume(ctx context.Context, volume *storage.Volume) (*storage.Volume, error)
	CloneVolume(ctx context.Context, volume *storage.Volume, sourceVolumeID string) (*storage.Volume, error)
	CreateVolumeFromSnapshot(
		ctx context.Context, volume *storage.Volume, sourceVolumeID, snapshotID string,
	) (*storage.Volume, error)
	GetVolume(ctx context.Context, volumeID string) (*storage.Volume, error)
	ListVolumes(ctx context.Context) ([]*storage.Volume, error)
	DeleteVolume(ctx context.Context, volumeID string) error
	ResizeVolume(ctx context.Context, volumeID string, newSizeGiB uint64) error
	PublishVolume(ctx context.Context, volumeID string, connector *storage.Connector) (*storage.ConnectionInfo, error)
	UnpublishVolume(ctx context.Context, volumeID string, connector *storage.Connector) error
	RetypeVolume(ctx context.Context, volumeID string, newType *storage.VolumeType) (*storage.Volume, error)
	MigrateVolume(ctx context.Context, volumeID, targetPool string) (*storage.Volume, error)
	ImportVolume(ctx context.Context, volume *storage.Volume, existingRef string) (*storage.Volume, error)
	UnmanageVolume(ctx context.Context, volumeID string) error
	GetReplicationStatus(ctx context.Context, volumeID string) (storage.ReplicationStatus, error)

	CreateSnapshot(ctx context.Context, snapshot *storage.Snapshot) (*storage.Snapshot, error)
	GetSnapshot(ctx context.Context, volumeID, snapshotID string) (*storage.Snapshot, error)
	ListSnapshotsForVolume(ctx context.Context, volumeID string) ([]*storage.Snapshot, error)
	DeleteSnapshot(ctx context.Context, volumeID, snapshotID string) error
	RestoreSnapshot(ctx context.Context, volumeID, snapshotID string) error

	Failover(ctx context.Context, secondaryID string) (*FailoverResult, error)
}

// BackendExternal is the sanitized view of the backend served to clients.
type BackendExternal struct {
	Name            string      `json:"name"`
	Driver          string      `json:"driver"`
	ActiveBackendID string      `json:"activeBackendID"`
	Config          interface{} `json:"config"`
	Volumes         int         `json:"volumes"`
}

// FailoverResult reports where the backend now serves from and what became of each volume.
type FailoverResult struct {
	ActiveBackendID string                  `json:"activeBackendID"`
	Updates         []*storage.VolumeUpdate `json:"updates"`
}
