// Copyright 2025 NetApp, Inc. All Rights Reserved.

package storage

//go:generate mockgen -destination=../mocks/mock_storage/mock_driver.go github.com/pmax-drivers/powermax/storage Driver

import (
	"context"

	"github.com/pmax-drivers/powermax/config"
	drivers "github.com/pmax-drivers/powermax/storage_drivers"
)

// FailbackBackendID is the secondary ID that requests failback to the primary array.
const FailbackBackendID = "default"

// Driver is the volume lifecycle contract the host framework invokes.
type Driver interface {
	Name() string
	Initialize(ctx context.Context, driverContext config.DriverContext, configJSON string,
		commonConfig *drivers.CommonStorageDriverConfig) error
	Initialized() bool
	// Terminate tells the driver to clean up, as it won't be called again.
	Terminate(ctx context.Context)

	Create(ctx context.Context, volume *Volume) error
	CreateFromSnapshot(ctx context.Context, volume *Volume, snapshot *Snapshot) error
	CreateClone(ctx context.Context, volume, source *Volume) error
	Destroy(ctx context.Context, volume *Volume) error
	Resize(ctx context.Context, volume *Volume, newSizeGiB uint64) error

	Publish(ctx context.Context, volume *Volume, connector *Connector) (*ConnectionInfo, error)
	// Unpublish detaches the volume from the connector's host, or from all hosts when connector is nil.
	Unpublish(ctx context.Context, volume *Volume, connector *Connector) error

	CreateSnapshot(ctx context.Context, snapshot *Snapshot, volume *Volume) error
	DeleteSnapshot(ctx context.Context, snapshot *Snapshot, volume *Volume) error
	RestoreSnapshot(ctx context.Context, snapshot *Snapshot, volume *Volume) error

	Retype(ctx context.Context, volume *Volume, newType *VolumeType) (bool, error)
	Migrate(ctx context.Context, volume *Volume, targetPool string) (bool, error)
	Import(ctx context.Context, volume *Volume, existingRef string) error
	Unmanage(ctx context.Context, volume *Volume) error

	GetVolumeStats(ctx context.Context) (*VolumeStats, error)
	FailoverHost(ctx context.Context, volumes []*Volume, secondaryID string) (string, []*VolumeUpdate, error)
	GetReplicationStatus(ctx context.Context, volume *Volume) (ReplicationStatus, error)

	// GetExternalConfig returns a version of the driver configuration that
	// lacks confidential information, such as usernames and passwords.
	GetExternalConfig(ctx context.Context) interface{}
}
