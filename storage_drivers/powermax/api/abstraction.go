// Copyright 2025 NetApp, Inc. All Rights Reserved.

package api

//go:generate mockgen -destination=../../../mocks/mock_storage_drivers/mock_powermax/mock_api.go github.com/pmax-drivers/powermax/storage_drivers/powermax/api PowerMaxAPI

import (
	"context"
)

// PowerMaxAPI is the set of Unisphere operations the driver depends on.
type PowerMaxAPI interface {
	Connect(ctx context.Context) error
	ActiveEndpoint() Endpoint
	IsArrayAllowed(array string) bool
	GetVersion(ctx context.Context) (*Version, error)
	GetSymmetrixIDs(ctx context.Context) ([]string, error)
	GetSymmetrix(ctx context.Context, array string) (*Symmetrix, error)
	GetJob(ctx context.Context, jobID string) (*Job, error)
	WaitForJob(ctx context.Context, jobID string) (*Job, error)

	GetSRP(ctx context.Context, array, srp string) (*SRP, error)
	GetServiceLevels(ctx context.Context, array string) ([]string, error)
	GetWorkloads(ctx context.Context, array string) ([]string, error)
	GetStorageGroup(ctx context.Context, array, sgName string) (*StorageGroup, error)
	GetStorageGroupIDs(ctx context.Context, array, nameContains string) ([]string, error)
	CreateStorageGroup(
		ctx context.Context, array, sgName, srp, slo, workload string, disableCompression bool,
	) (*StorageGroup, error)
	DeleteStorageGroup(ctx context.Context, array, sgName string) error
	AddChildStorageGroup(ctx context.Context, array, parent, child string) error
	RemoveChildStorageGroup(ctx context.Context, array, parent, child string) error
	CreateVolumeInStorageGroup(ctx context.Context, array, sgName, identifier string, sizeGiB int64) (*Volume, error)
	AddVolumesToStorageGroup(ctx context.Context, array, sgName string, force bool, deviceIDs ...string) error
	RemoveVolumesFromStorageGroup(ctx context.Context, array, sgName string, force bool, deviceIDs ...string) error
	MoveVolumesToStorageGroup(
		ctx context.Context, array, source, target string, force bool, deviceIDs ...string,
	) error
	UpdateStorageGroupSLO(ctx context.Context, array, sgName, slo string) error
	UpdateStorageGroupWorkload(ctx context.Context, array, sgName, workload string) error
	GetVolume(ctx context.Context, array, deviceID string) (*Volume, error)
	FindVolumeIDsByIdentifier(ctx context.Context, array, identifier string) ([]string, error)
	GetVolumeIDsInStorageGroup(ctx context.Context, array, sgName string) ([]string, error)
	RenameVolume(ctx context.Context, array, deviceID, identifier string) error
	ExtendVolume(ctx context.Context, array, deviceID string, newSizeGiB int64, rdfGroupNumber int) error
	DeallocateVolume(ctx context.Context, array, deviceID string) error
	DeleteVolume(ctx context.Context, array, deviceID string) error

	GetMaskingView(ctx context.Context, array, mvName string) (*MaskingView, error)
	GetMaskingViewsForStorageGroup(ctx context.Context, array, sgName string) ([]string, error)
	GetMaskingViewsForHost(ctx context.Context, array, hostName string) ([]string, error)
	CreateMaskingView(ctx context.Context, array, mvName, hostName, pgName, sgName string) error
	DeleteMaskingView(ctx context.Context, array, mvName string) error
	GetMaskingViewConnections(ctx context.Context, array, mvName, deviceID string) ([]MaskingViewConnection, error)
	GetPortGroup(ctx context.Context, array, pgName string) (*PortGroup, error)
	GetPort(ctx context.Context, array, directorID, portID string) (*Port, error)
	GetHost(ctx context.Context, array, hostName string) (*Host, error)
	CreateHost(ctx context.Context, array, hostName string, initiatorIDs []string, flags *HostFlags) (*Host, error)
	DeleteHost(ctx context.Context, array, hostName string) error
	GetInitiatorIDs(ctx context.Context, array, hba string) ([]string, error)
	GetInitiator(ctx context.Context, array, initiatorID string) (*Initiator, error)

	CreateSnapshot(ctx context.Context, array, snapName string, sourceDeviceIDs []string, ttlHours int) error
	GetVolumeSnapshotInfo(ctx context.Context, array, deviceID string) (*VolumeSnapshotInfo, error)
	GetVolumeSnapshot(ctx context.Context, array, deviceID, snapName string) (*VolumeSnapshot, error)
	LinkSnapshot(
		ctx context.Context, array, snapName string, generation int, sources, targets []string, copyMode bool,
	) error
	UnlinkSnapshot(ctx context.Context, array, snapName string, generation int, sources, targets []string) error
	RestoreSnapshot(ctx context.Context, array, snapName string, generation int, sources []string) error
	RenameSnapshot(ctx context.Context, array, snapName, newName string, generation int, sources []string) error
	DeleteSnapshot(ctx context.Context, array, snapName string, generation int, sources []string) error
	TerminateSnapshotRestore(ctx context.Context, array, snapName string, generation int, sources []string) error

	GetRDFGroupList(ctx context.Context, array string) ([]RDFGroupListEntry, error)
	GetRDFGroup(ctx context.Context, array string, rdfgNum int) (*RDFGroup, error)
	GetRDFGroupByLabel(ctx context.Context, array, label string) (*RDFGroup, error)
	GetRDFGroupVolumes(ctx context.Context, array string, rdfgNum int) ([]string, error)
	GetRDFDevicePair(ctx context.Context, array string, rdfgNum int, deviceID string) (*RDFDevicePair, error)
	CreateRDFPair(
		ctx context.Context, array string, rdfgNum int, localDeviceID, remoteDeviceID, mode string,
		establish, exempt bool,
	) error
	DeleteRDFPair(ctx context.Context, array string, rdfgNum int, deviceID string) error
	GetStorageGroupRDFInfo(ctx context.Context, array, sgName string, rdfgNum int) (*StorageGroupRDFInfo, error)
	ModifyStorageGroupRDFState(
		ctx context.Context, array, sgName string, rdfgNum int, action string, opts *RDFActionOptions,
	) error
	ModifyDeviceRDFState(
		ctx context.Context, array string, rdfgNum int, deviceID, action string, opts *RDFActionOptions,
	) error
}

var _ PowerMaxAPI = (*Client)(nil)
