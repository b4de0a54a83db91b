// Copyright 2025 NetApp, Inc. All Rights Reserved.

package powermax

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/brunoga/deep"
	"github.com/dustin/go-humanize"
	"github.com/spf13/afero"

	pmaxconfig "github.com/pmax-drivers/powermax/config"
	. "github.com/pmax-drivers/powermax/logging"
	"github.com/pmax-drivers/powermax/pkg/capacity"
	"github.com/pmax-drivers/powermax/pkg/collection"
	"github.com/pmax-drivers/powermax/pkg/locks"
	"github.com/pmax-drivers/powermax/pkg/workerpool/ants"
	"github.com/pmax-drivers/powermax/storage"
	drivers "github.com/pmax-drivers/powermax/storage_drivers"
	"github.com/pmax-drivers/powermax/storage_drivers/powermax/api"
	"github.com/pmax-drivers/powermax/utils/errors"
)

const (
	vendorName = "Dell EMC"
	tbToGiB    = 1024
)

// SANStorageDriver provisions PowerMax devices through Unisphere and exposes them over iSCSI or FC.
type SANStorageDriver struct {
	initialized bool
	Config      drivers.PowerMaxStorageDriverConfig
	API         api.PowerMaxAPI

	locks     locks.Locker
	pool      *ants.Pool
	fs        afero.Fs
	provision *provisioner
	masking   *masking

	m           sync.RWMutex
	failedOver  bool
	rdfGroupNum int
}

// Name is for returning the name of this driver
func (d *SANStorageDriver) Name() string {
	return drivers.PowerMaxSANStorageDriverName
}

// BackendName returns the name of the backend managed by this driver instance
func (d *SANStorageDriver) BackendName() string {
	if d.Config.CommonStorageDriverConfig != nil && d.Config.BackendName != "" {
		return d.Config.BackendName
	}
	return "powermax_" + d.Config.Array
}

func (d *SANStorageDriver) isFailedOver() bool {
	d.m.RLock()
	defer d.m.RUnlock()
	return d.failedOver
}

// activeBackendID is the replication target while failed over and "default" otherwise.
func (d *SANStorageDriver) activeBackendID() string {
	if d.isFailedOver() {
		return d.Config.Replication.TargetArray
	}
	return storage.FailbackBackendID
}

// activeArray is the array new devices are provisioned on.
func (d *SANStorageDriver) activeArray() string {
	if d.isFailedOver() {
		return d.Config.Replication.TargetArray
	}
	return d.Config.Array
}

func (d *SANStorageDriver) volumeIdentifier(volume *storage.Volume) string {
	return drivers.GetVolumeIdentifier(d.Config.CommonStorageDriverConfig, volume.ID)
}

func (d *SANStorageDriver) storagePrefix() string {
	if d.Config.StoragePrefix != nil {
		return *d.Config.StoragePrefix
	}
	return drivers.DefaultStoragePrefix
}

// Initialize from the provided config
func (d *SANStorageDriver) Initialize(
	ctx context.Context, driverContext pmaxconfig.DriverContext, configJSON string,
	commonConfig *drivers.CommonStorageDriverConfig,
) error {
	ctx = GenerateRequestContextForLayer(ctx, LogLayerPowerMaxDriver)
	fields := LogFields{"Method": "Initialize", "Type": "SANStorageDriver"}
	Logd(ctx, commonConfig.StorageDriverName,
		commonConfig.DebugTraceFlags["method"]).WithFields(fields).Trace(">>>> Initialize")
	defer Logd(ctx, commonConfig.StorageDriverName,
		commonConfig.DebugTraceFlags["method"]).WithFields(fields).Trace("<<<< Initialize")

	commonConfig.DriverContext = driverContext

	config := &drivers.PowerMaxStorageDriverConfig{}
	config.CommonStorageDriverConfig = commonConfig

	// decode configJSON into PowerMaxStorageDriverConfig object
	if err := json.Unmarshal([]byte(configJSON), config); err != nil {
		return fmt.Errorf("could not decode JSON configuration: %v", err)
	}

	Logd(ctx, commonConfig.StorageDriverName, commonConfig.DebugTraceFlags["method"]).WithFields(LogFields{
		"Version":           config.Version,
		"StorageDriverName": config.StorageDriverName,
		"DebugTraceFlags":   config.DebugTraceFlags,
		"DriverContext":     config.DriverContext,
	}).Debug("Reconciled common config.")

	if err := d.populateConfigurationDefaults(ctx, config); err != nil {
		return fmt.Errorf("could not populate configuration defaults: %v", err)
	}
	d.Config = *config

	if err := d.validate(ctx); err != nil {
		return fmt.Errorf("error validating %s driver: %v", d.Name(), err)
	}

	if d.fs == nil {
		d.fs = afero.NewOsFs()
	}

	var err error
	if d.locks == nil {
		if d.locks, err = locks.New(ctx, d.Config.Locks); err != nil {
			return fmt.Errorf("could not initialize locks: %v", err)
		}
	}

	// Unit tests mock the API layer, so we only use the real API interface if it doesn't already exist.
	if d.API == nil {
		clientConfig, err := d.clientConfig()
		if err != nil {
			return fmt.Errorf("error initializing %s driver: %v", d.Name(), err)
		}
		if d.API, err = api.NewClient(clientConfig); err != nil {
			return fmt.Errorf("error initializing %s driver: %v", d.Name(), err)
		}
	}

	if err = d.API.Connect(ctx); err != nil {
		return fmt.Errorf("could not connect to Unisphere: %v", err)
	}

	d.provision = newProvisioner(d.API, d.locks, &d.Config)
	d.masking = newMasking(d.API, d.provision, d.locks, &d.Config)

	if err = d.validateArrayPlacement(ctx); err != nil {
		return err
	}

	if d.Config.IsReplicated() {
		if d.rdfGroupNum, err = d.resolveRDFGroup(ctx); err != nil {
			return err
		}
	}

	if d.pool == nil {
		if d.pool, err = ants.NewPool(ctx, ants.DefaultConfig()); err != nil {
			return fmt.Errorf("could not create worker pool: %v", err)
		}
	}

	Logc(ctx).WithFields(LogFields{
		"backend":    d.BackendName(),
		"array":      d.Config.Array,
		"endpoint":   d.API.ActiveEndpoint().String(),
		"replicated": d.Config.IsReplicated(),
	}).Info("PowerMax driver initialized.")

	d.initialized = true
	return nil
}

// validateArrayPlacement checks that the configured SRP and service level exist on the array.
func (d *SANStorageDriver) validateArrayPlacement(ctx context.Context) error {
	if _, err := d.API.GetSRP(ctx, d.Config.Array, d.Config.SRP); err != nil {
		return fmt.Errorf("SRP %s not found on array %s: %v", d.Config.SRP, d.Config.Array, err)
	}
	if d.Config.ServiceLevel == "" {
		return nil
	}
	levels, err := d.API.GetServiceLevels(ctx, d.Config.Array)
	if err != nil {
		return fmt.Errorf("could not read service levels: %v", err)
	}
	if !collection.ContainsStringCaseInsensitive(levels, d.Config.ServiceLevel) {
		return errors.UnsupportedConfigError("service level %s not offered by array %s; valid levels are %s",
			d.Config.ServiceLevel, d.Config.Array, strings.Join(levels, ", "))
	}
	return nil
}

// resolveRDFGroup finds the SRDF group by label and checks that it connects to the replication target.
func (d *SANStorageDriver) resolveRDFGroup(ctx context.Context) (int, error) {
	rep := d.Config.Replication
	group, err := d.API.GetRDFGroupByLabel(ctx, d.Config.Array, rep.RDFGroupLabel)
	if err != nil {
		return 0, fmt.Errorf("could not find SRDF group %s: %v", rep.RDFGroupLabel, err)
	}
	if group.RemoteSymmetrix != rep.TargetArray {
		return 0, errors.UnsupportedConfigError("SRDF group %s connects to %s, not %s", rep.RDFGroupLabel,
			group.RemoteSymmetrix, rep.TargetArray)
	}
	if _, err = d.API.GetSRP(ctx, rep.TargetArray, rep.RemotePool); err != nil {
		return 0, fmt.Errorf("SRP %s not found on array %s: %v", rep.RemotePool, rep.TargetArray, err)
	}
	return group.RDFGroupNumber, nil
}

func (d *SANStorageDriver) Initialized() bool {
	return d.initialized
}

func (d *SANStorageDriver) Terminate(ctx context.Context) {
	fields := LogFields{"Method": "Terminate", "Type": "SANStorageDriver"}
	Logd(ctx, d.Name(), d.Config.DebugTraceFlags["method"]).WithFields(fields).Trace(">>>> Terminate")
	defer Logd(ctx, d.Name(), d.Config.DebugTraceFlags["method"]).WithFields(fields).Trace("<<<< Terminate")

	if d.pool != nil {
		d.pool.Shutdown()
	}
	if d.locks != nil {
		if err := d.locks.Close(); err != nil {
			Logc(ctx).WithError(err).Warning("Could not close locker.")
		}
	}
	d.initialized = false
}

// extraSpecs resolves the placement of a volume from its volume type.  A pool recorded in the volume
// metadata by a migration overrides the pool of the type.
func (d *SANStorageDriver) extraSpecs(volumeType storage.VolumeType, metadata map[string]string) (*ExtraSpecs, error) {
	spec := &ExtraSpecs{
		Array:              d.Config.Array,
		SRP:                d.Config.SRP,
		SLO:                d.Config.ServiceLevel,
		Workload:           d.Config.Workload,
		PortGroups:         d.Config.PortGroups,
		DisableCompression: d.Config.DisableCompression,
	}

	poolName := collection.GetV(volumeType.ExtraSpecs, ExtraSpecPoolName, "")
	if pool, ok := metadata[ExtraSpecPoolName]; ok && pool != "" {
		poolName = pool
	}
	if poolName != "" {
		slo, workload, srp, array, err := parsePoolName(poolName)
		if err != nil {
			return nil, err
		}
		if array != d.Config.Array {
			return nil, errors.InvalidInputError("pool %s is not on array %s", poolName, d.Config.Array)
		}
		spec.SLO, spec.Workload, spec.SRP = slo, workload, srp
	}

	if value, ok := volumeType.ExtraSpecs[ExtraSpecDisableCompression]; ok {
		spec.DisableCompression = isTrueSpec(value)
	}
	if pg := volumeType.ExtraSpecs[ExtraSpecPortGroup]; pg != "" {
		spec.PortGroups = []string{pg}
	}
	if isTrueSpec(volumeType.ExtraSpecs[ExtraSpecReplicationEnabled]) {
		if !d.Config.IsReplicated() {
			return nil, errors.UnsupportedConfigError("volume type %s requests replication but backend %s has "+
				"no replication target", volumeType.Name, d.BackendName())
		}
		spec.Replicated = true
		spec.ReplicationMode = d.Config.Replication.Mode
	}

	if d.isFailedOver() {
		remote := d.remoteExtraSpecs(spec)
		if _, ok := volumeType.ExtraSpecs[ExtraSpecPortGroup]; ok {
			remote.PortGroups = spec.PortGroups
		}
		return remote, nil
	}
	return spec, nil
}

// locateVolume returns the array and device of a volume, searching by identifier when the provider
// location was lost.
func (d *SANStorageDriver) locateVolume(ctx context.Context, volume *storage.Volume) (string, string, error) {
	if volume.ProviderLocation != nil && volume.ProviderLocation.DeviceID != "" {
		return volume.ProviderLocation.Array, volume.ProviderLocation.DeviceID, nil
	}

	array := d.activeArray()
	identifier := d.volumeIdentifier(volume)
	ids, err := d.API.FindVolumeIDsByIdentifier(ctx, array, identifier)
	if err != nil {
		return "", "", err
	}
	if len(ids) == 0 {
		return "", "", errors.NotFoundError("no device found for volume %s", volume.ID)
	}
	if len(ids) > 1 {
		Logc(ctx).WithFields(LogFields{"identifier": identifier, "devices": ids}).Warning(
			"Several devices carry the volume identifier; using the first.")
	}
	return array, ids[0], nil
}

// sizeForCreate applies the default size and the configured size limit.
func (d *SANStorageDriver) sizeForCreate(ctx context.Context, sizeGiB uint64) (int64, error) {
	if sizeGiB == 0 {
		defaultSize, err := capacity.ToBytes(d.Config.Size)
		if err != nil {
			return 0, err
		}
		var bytes uint64
		if _, err = fmt.Sscan(defaultSize, &bytes); err != nil {
			return 0, err
		}
		sizeGiB = capacity.BytesToGiB(bytes)
	}
	if err := drivers.CheckMinVolumeSize(capacity.GiBToBytes(sizeGiB), MinimumVolumeSizeBytes); err != nil {
		return 0, err
	}
	if _, _, err := drivers.CheckVolumeSizeLimits(ctx, capacity.GiBToBytes(sizeGiB),
		d.Config.CommonStorageDriverConfig); err != nil {
		return 0, err
	}
	return int64(sizeGiB), nil
}

// createDevice creates the device of a volume in its default storage group.
func (d *SANStorageDriver) createDevice(
	ctx context.Context, volume *storage.Volume, spec *ExtraSpecs, sizeGiB int64,
) (string, error) {
	sg, err := d.provision.GetOrCreateDefaultStorageGroup(ctx, spec.Array, spec)
	if err != nil {
		return "", err
	}
	deviceID, err := d.provision.CreateVolumeFromStorageGroup(ctx, spec.Array, d.volumeIdentifier(volume),
		sg.StorageGroupID, sizeGiB)
	if err != nil {
		return "", err
	}
	volume.SizeGiB = uint64(sizeGiB)
	volume.ProviderLocation = &storage.ProviderLocation{DeviceID: deviceID, Array: spec.Array}
	volume.ReplicationStatus = storage.ReplicationStatusDisabled
	return deviceID, nil
}

// finishCreate sets up replication for a new device.  A failure deletes the device.
func (d *SANStorageDriver) finishCreate(
	ctx context.Context, volume *storage.Volume, spec *ExtraSpecs, deviceID string,
) error {
	if !spec.Replicated {
		return nil
	}
	data, err := d.setupVolumeReplication(ctx, spec, deviceID, d.volumeIdentifier(volume), int64(volume.SizeGiB))
	if err != nil {
		d.deleteDevice(ctx, spec.Array, deviceID, d.volumeIdentifier(volume))
		volume.ProviderLocation = nil
		return err
	}
	volume.ReplicationDriverData = data
	volume.ReplicationStatus = storage.ReplicationStatusEnabled
	return nil
}

// deleteDevice removes a half-made device, logging rather than returning failures.
func (d *SANStorageDriver) deleteDevice(ctx context.Context, array, deviceID, identifier string) {
	if err := d.masking.RemoveVolumeFromAllStorageGroups(ctx, array, deviceID); err != nil {
		Logc(ctx).WithError(err).WithField("device", deviceID).Warning("Could not remove device from storage groups.")
	}
	if err := d.provision.DeleteVolumeFromSRP(ctx, array, deviceID, identifier); err != nil {
		Logc(ctx).WithError(err).WithField("device", deviceID).Error("Could not delete device.")
	}
}

func (d *SANStorageDriver) checkCreateAllowed(spec *ExtraSpecs) error {
	if spec.Replicated && d.isFailedOver() {
		return errors.UnsupportedError("replicated volumes cannot be created while backend %s is failed over",
			d.BackendName())
	}
	return nil
}

// Create a volume with the specified options
func (d *SANStorageDriver) Create(ctx context.Context, volume *storage.Volume) error {
	fields := LogFields{"Method": "Create", "Type": "SANStorageDriver", "volume": volume.ID, "size": volume.SizeGiB}
	Logd(ctx, d.Name(), d.Config.DebugTraceFlags["method"]).WithFields(fields).Trace(">>>> Create")
	defer Logd(ctx, d.Name(), d.Config.DebugTraceFlags["method"]).WithFields(fields).Trace("<<<< Create")

	spec, err := d.extraSpecs(volume.VolumeType, volume.Metadata)
	if err != nil {
		return err
	}
	if err = d.checkCreateAllowed(spec); err != nil {
		return err
	}
	sizeGiB, err := d.sizeForCreate(ctx, volume.SizeGiB)
	if err != nil {
		return err
	}

	deviceID, err := d.createDevice(ctx, volume, spec, sizeGiB)
	if err != nil {
		return fmt.Errorf("could not create volume %s: %w", volume.ID, err)
	}
	if err = d.finishCreate(ctx, volume, spec, deviceID); err != nil {
		return fmt.Errorf("could not replicate volume %s: %w", volume.ID, err)
	}

	Logc(ctx).WithFields(LogFields{
		"volume": volume.ID,
		"device": deviceID,
		"array":  spec.Array,
		"size":   humanize.IBytes(capacity.GiBToBytes(volume.SizeGiB)),
		"pool":   spec.PoolName(),
	}).Info("Volume created.")
	return nil
}

// createFromSnapVX creates a device and links it in copy mode to a snapshot of the source device.
func (d *SANStorageDriver) createFromSnapVX(
	ctx context.Context, volume *storage.Volume, array, sourceDeviceID, snapName string, sizeGiB uint64,
) error {
	spec, err := d.extraSpecs(volume.VolumeType, volume.Metadata)
	if err != nil {
		return err
	}
	if err = d.checkCreateAllowed(spec); err != nil {
		return err
	}
	if spec.Array != array {
		return errors.InvalidInputError("source device %s is on array %s, not %s", sourceDeviceID, array,
			spec.Array)
	}
	if volume.SizeGiB < sizeGiB {
		volume.SizeGiB = sizeGiB
	}
	targetSize, err := d.sizeForCreate(ctx, volume.SizeGiB)
	if err != nil {
		return err
	}

	targetDeviceID, err := d.createDevice(ctx, volume, spec, targetSize)
	if err != nil {
		return err
	}
	identifier := d.volumeIdentifier(volume)

	if err = d.provision.CreateVolumeReplica(ctx, array, sourceDeviceID, targetDeviceID, snapName, true); err != nil {
		d.deleteDevice(ctx, array, targetDeviceID, identifier)
		volume.ProviderLocation = nil
		return err
	}

	// Replicated targets must be fully copied before they can be paired.
	linked, err := d.provision.linkedDeviceCount(ctx, array, sourceDeviceID, snapName)
	if err != nil {
		Logc(ctx).WithError(err).Warning("Could not count linked targets.")
	}
	if spec.Replicated || linked > d.Config.SnapVXUnlinkLimit {
		if err = d.provision.BreakReplicationRelationship(ctx, array, targetDeviceID, sourceDeviceID, snapName, 0,
			true); err != nil {
			if cleanupErr := d.provision.CleanupSnapVXSessions(ctx, array, targetDeviceID); cleanupErr != nil {
				Logc(ctx).WithError(cleanupErr).Warning("Could not unlink target.")
			}
			d.deleteDevice(ctx, array, targetDeviceID, identifier)
			volume.ProviderLocation = nil
			return err
		}
	}
	d.unlinkCopiedTargets(ctx, array, sourceDeviceID)

	return d.finishCreate(ctx, volume, spec, targetDeviceID)
}

// unlinkCopiedTargets releases the links of a source device whose copy has finished, so targets below
// the unlink limit do not hold SnapVX sessions forever.
func (d *SANStorageDriver) unlinkCopiedTargets(ctx context.Context, array, sourceDeviceID string) {
	if err := d.provision.UnlinkCopiedTargets(ctx, array, sourceDeviceID); err != nil {
		Logc(ctx).WithError(err).WithField("device", sourceDeviceID).Warning("Could not unlink copied targets.")
	}
}

// CreateFromSnapshot creates a volume from a SnapVX snapshot.
func (d *SANStorageDriver) CreateFromSnapshot(
	ctx context.Context, volume *storage.Volume, snapshot *storage.Snapshot,
) error {
	fields := LogFields{"Method": "CreateFromSnapshot", "Type": "SANStorageDriver", "volume": volume.ID,
		"snapshot": snapshot.ID}
	Logd(ctx, d.Name(), d.Config.DebugTraceFlags["method"]).WithFields(fields).Trace(">>>> CreateFromSnapshot")
	defer Logd(ctx, d.Name(), d.Config.DebugTraceFlags["method"]).WithFields(fields).Trace("<<<< CreateFromSnapshot")

	location := snapshot.ProviderLocation
	if location == nil {
		return errors.InvalidInputError("snapshot %s has no provider location", snapshot.ID)
	}
	if err := d.createFromSnapVX(ctx, volume, location.Array, location.SourceDeviceID, location.SnapName,
		snapshot.VolumeSizeGiB); err != nil {
		return fmt.Errorf("could not create volume %s from snapshot %s: %w", volume.ID, snapshot.ID, err)
	}
	return nil
}

// CreateClone creates a volume from a temporary snapshot of the source volume.
func (d *SANStorageDriver) CreateClone(ctx context.Context, volume, source *storage.Volume) error {
	fields := LogFields{"Method": "CreateClone", "Type": "SANStorageDriver", "volume": volume.ID,
		"source": source.ID}
	Logd(ctx, d.Name(), d.Config.DebugTraceFlags["method"]).WithFields(fields).Trace(">>>> CreateClone")
	defer Logd(ctx, d.Name(), d.Config.DebugTraceFlags["method"]).WithFields(fields).Trace("<<<< CreateClone")

	array, sourceDeviceID, err := d.locateVolume(ctx, source)
	if err != nil {
		return err
	}
	snapName := tempSnapshotName(sourceDeviceID, volume.ID)
	if err = d.provision.CreateVolumeSnapVX(ctx, array, sourceDeviceID, snapName); err != nil {
		return fmt.Errorf("could not snapshot source volume %s: %w", source.ID, err)
	}

	if err = d.createFromSnapVX(ctx, volume, array, sourceDeviceID, snapName, source.SizeGiB); err != nil {
		if deleteErr := d.provision.DeleteVolumeSnap(ctx, array, snapName, sourceDeviceID, 0); deleteErr != nil {
			Logc(ctx).WithError(deleteErr).WithField("snapshot", snapName).Warning(
				"Could not delete temporary snapshot.")
		}
		return fmt.Errorf("could not clone volume %s: %w", source.ID, err)
	}
	return nil
}

// Destroy the requested volume.  A volume whose device is gone is already destroyed.
func (d *SANStorageDriver) Destroy(ctx context.Context, volume *storage.Volume) error {
	fields := LogFields{"Method": "Destroy", "Type": "SANStorageDriver", "volume": volume.ID}
	Logd(ctx, d.Name(), d.Config.DebugTraceFlags["method"]).WithFields(fields).Trace(">>>> Destroy")
	defer Logd(ctx, d.Name(), d.Config.DebugTraceFlags["method"]).WithFields(fields).Trace("<<<< Destroy")

	array, deviceID, err := d.locateVolume(ctx, volume)
	if err != nil {
		if errors.IsNotFoundError(err) {
			Logc(ctx).WithField("volume", volume.ID).Warning("Volume not found on array, nothing to destroy.")
			return nil
		}
		return err
	}
	if _, err = d.API.GetVolume(ctx, array, deviceID); err != nil {
		if errors.IsNotFoundError(err) {
			Logc(ctx).WithFields(LogFields{"volume": volume.ID, "device": deviceID}).Warning(
				"Device not found on array, nothing to destroy.")
			return nil
		}
		return err
	}

	if volume.ReplicationDriverData != nil {
		spec, err := d.extraSpecs(volume.VolumeType, volume.Metadata)
		if err != nil {
			return err
		}
		if err = d.breakRDFRelationship(ctx, volume, spec, true); err != nil {
			return fmt.Errorf("could not remove replication of volume %s: %w", volume.ID, err)
		}
	}
	if err = d.provision.CleanupSnapVXSessions(ctx, array, deviceID); err != nil {
		return fmt.Errorf("could not clean up snapshots of volume %s: %w", volume.ID, err)
	}
	if err = d.masking.RemoveVolumeFromAllStorageGroups(ctx, array, deviceID); err != nil {
		return err
	}
	return d.provision.DeleteVolumeFromSRP(ctx, array, deviceID, d.volumeIdentifier(volume))
}

// Resize expands the volume size.
func (d *SANStorageDriver) Resize(ctx context.Context, volume *storage.Volume, newSizeGiB uint64) error {
	fields := LogFields{"Method": "Resize", "Type": "SANStorageDriver", "volume": volume.ID, "size": newSizeGiB}
	Logd(ctx, d.Name(), d.Config.DebugTraceFlags["method"]).WithFields(fields).Trace(">>>> Resize")
	defer Logd(ctx, d.Name(), d.Config.DebugTraceFlags["method"]).WithFields(fields).Trace("<<<< Resize")

	array, deviceID, err := d.locateVolume(ctx, volume)
	if err != nil {
		return err
	}
	device, err := d.API.GetVolume(ctx, array, deviceID)
	if err != nil {
		return err
	}
	currentGiB := uint64(math.Ceil(device.CapacityGB))
	if newSizeGiB <= currentGiB {
		return errors.UnsupportedCapacityRangeError(fmt.Errorf("requested size %d GiB must exceed current size "+
			"%d GiB", newSizeGiB, currentGiB))
	}
	if _, _, err = drivers.CheckVolumeSizeLimits(ctx, capacity.GiBToBytes(newSizeGiB),
		d.Config.CommonStorageDriverConfig); err != nil {
		return err
	}

	if volume.ReplicationDriverData == nil {
		err = d.provision.ExtendVolume(ctx, array, deviceID, int64(newSizeGiB), 0)
	} else {
		err = d.extendReplicatedVolume(ctx, volume, array, deviceID, int64(newSizeGiB))
	}
	if err != nil {
		return fmt.Errorf("could not resize volume %s: %w", volume.ID, err)
	}

	volume.SizeGiB = newSizeGiB
	return nil
}

// extendReplicatedVolume grows both halves of a pair.  Arrays new enough to extend SRDF devices in
// place do so through the SRDF group, older ones need the pair broken and re-established.
func (d *SANStorageDriver) extendReplicatedVolume(
	ctx context.Context, volume *storage.Volume, array, deviceID string, newSizeGiB int64,
) error {
	if !d.Config.Replication.AllowExtend {
		return errors.UnsupportedError("extending replicated volumes is disabled for backend %s", d.BackendName())
	}
	data := volume.ReplicationDriverData
	remoteArray, remoteDeviceID := data.Array, data.DeviceID

	local, err := d.API.GetSymmetrix(ctx, array)
	if err != nil {
		return err
	}
	remote, err := d.API.GetSymmetrix(ctx, remoteArray)
	if err != nil {
		return err
	}

	if ucodeAtLeast(local.Ucode, OnlineRDFExtendUcode) && ucodeAtLeast(remote.Ucode, OnlineRDFExtendUcode) {
		return d.provision.ExtendVolume(ctx, array, deviceID, newSizeGiB, data.RDFGroupNum)
	}

	Logc(ctx).WithFields(LogFields{
		"localUcode":  local.Ucode,
		"remoteUcode": remote.Ucode,
	}).Info("Array microcode cannot extend SRDF devices in place; re-pairing.")

	spec, err := d.extraSpecs(volume.VolumeType, volume.Metadata)
	if err != nil {
		return err
	}
	if err = d.breakRDFRelationship(ctx, volume, spec, false); err != nil {
		return err
	}
	if err = d.provision.ExtendVolume(ctx, remoteArray, remoteDeviceID, newSizeGiB, 0); err != nil {
		return err
	}
	if err = d.provision.ExtendVolume(ctx, array, deviceID, newSizeGiB, 0); err != nil {
		return err
	}
	if err = d.provision.CreateRDFDevicePair(ctx, array, data.RDFGroupNum, deviceID, remoteDeviceID,
		data.Mode); err != nil {
		volume.ReplicationStatus = storage.ReplicationStatusError
		return err
	}
	return d.waitForRDFState(ctx, array, data.RDFGroupNum, deviceID, data.Mode)
}

// Publish maps the volume to the connector's host and returns what the host needs to attach it.
func (d *SANStorageDriver) Publish(
	ctx context.Context, volume *storage.Volume, connector *storage.Connector,
) (*storage.ConnectionInfo, error) {
	fields := LogFields{"Method": "Publish", "Type": "SANStorageDriver", "volume": volume.ID}
	Logd(ctx, d.Name(), d.Config.DebugTraceFlags["method"]).WithFields(fields).Trace(">>>> Publish")
	defer Logd(ctx, d.Name(), d.Config.DebugTraceFlags["method"]).WithFields(fields).Trace("<<<< Publish")

	if connector == nil || connector.Host == "" {
		return nil, errors.InvalidInputError("a connector with a host name is required")
	}
	array, deviceID, err := d.locateVolume(ctx, volume)
	if err != nil {
		return nil, err
	}
	spec, err := d.extraSpecs(volume.VolumeType, volume.Metadata)
	if err != nil {
		return nil, err
	}
	spec.Array = array

	info, err := d.mapVolume(ctx, volume, array, deviceID, spec, connector)
	if err != nil {
		return nil, err
	}

	data := volume.ReplicationDriverData
	if data != nil && data.Mode == drivers.ReplicationModeMetro && !d.isFailedOver() {
		remote := d.remoteExtraSpecs(spec)
		remoteInfo, err := d.mapVolume(ctx, volume, data.Array, data.DeviceID, remote, connector)
		if err != nil {
			if unmapErr := d.masking.RemoveAndResetMembers(ctx, array, deviceID, spec, connector,
				true); unmapErr != nil {
				Logc(ctx).WithError(unmapErr).Warning("Could not unmap local half of metro volume.")
			}
			return nil, fmt.Errorf("could not map remote half of metro volume %s: %w", volume.ID, err)
		}
		info.Data.Metro = &remoteInfo.Data
	}
	return info, nil
}

func (d *SANStorageDriver) mapVolume(
	ctx context.Context, volume *storage.Volume, array, deviceID string, spec *ExtraSpecs,
	connector *storage.Connector,
) (*storage.ConnectionInfo, error) {
	if _, err := d.masking.DoMigrateIfCandidate(ctx, array, deviceID, spec, connector); err != nil {
		Logc(ctx).WithError(err).WithField("device", deviceID).Warning(
			"Legacy masking view left in place; continuing with attach.")
	}

	device, err := d.API.GetVolume(ctx, array, deviceID)
	if err != nil {
		return nil, err
	}
	views, err := d.masking.FindMaskingViewsForVolumeAndHost(ctx, array, device.StorageGroupIDs, connector.Host,
		spec)
	if err != nil {
		return nil, err
	}

	var mvName, pgName string
	if len(views) > 0 {
		mv, err := d.API.GetMaskingView(ctx, array, views[0])
		if err != nil {
			return nil, err
		}
		mvName, pgName = mv.MaskingViewID, mv.PortGroupID
		Logc(ctx).WithFields(LogFields{"device": deviceID, "maskingView": mvName}).Info(
			"Volume is already mapped to host.")
	} else {
		dict, err := newMaskingViewDict(deviceID, d.volumeIdentifier(volume), spec, connector, d.Config.Protocol)
		if err != nil {
			return nil, err
		}
		if err = d.masking.GetOrCreateMaskingViewAndMapLUN(ctx, dict); err != nil {
			return nil, err
		}
		mvName, pgName = dict.MaskingView, dict.PortGroup
	}

	lun, err := d.masking.GetHostLunID(ctx, array, deviceID, mvName)
	if err != nil {
		return nil, err
	}
	return d.connectionInfo(ctx, volume, array, pgName, lun, connector)
}

// connectionInfo describes the targets of a port group for the host's protocol.
func (d *SANStorageDriver) connectionInfo(
	ctx context.Context, volume *storage.Volume, array, pgName string, lun int, connector *storage.Connector,
) (*storage.ConnectionInfo, error) {
	if d.Config.Protocol == protocolFC {
		wwns, err := d.masking.GetFCTargetWWNs(ctx, array, pgName)
		if err != nil {
			return nil, err
		}
		initiators, err := connectorInitiators(connector, protocolFC)
		if err != nil {
			return nil, err
		}
		targetMap := make(map[string][]string, len(initiators))
		for _, initiator := range initiators {
			targetMap[initiator] = wwns
		}
		return &storage.ConnectionInfo{
			DriverVolumeType: storage.DriverVolumeTypeFC,
			Data: storage.ConnectionData{
				TargetDiscovered:   true,
				VolumeID:           volume.ID,
				TargetLUN:          lun,
				TargetWWNs:         wwns,
				InitiatorTargetMap: targetMap,
			},
		}, nil
	}

	targets, err := d.masking.GetISCSITargets(ctx, array, pgName)
	if err != nil {
		return nil, err
	}
	data := storage.ConnectionData{
		VolumeID:     volume.ID,
		TargetIQN:    targets[0].IQN,
		TargetPortal: targets[0].Portal,
		TargetLUN:    lun,
	}
	for i := range targets {
		targets[i].LUN = lun
		data.TargetIQNs = append(data.TargetIQNs, targets[i].IQN)
		data.TargetPortals = append(data.TargetPortals, targets[i].Portal)
		data.TargetLUNs = append(data.TargetLUNs, lun)
	}
	data.Targets = targets
	return &storage.ConnectionInfo{DriverVolumeType: storage.DriverVolumeTypeISCSI, Data: data}, nil
}

// Unpublish removes the volume from the connector's host, or from every host when connector is nil.
func (d *SANStorageDriver) Unpublish(ctx context.Context, volume *storage.Volume, connector *storage.Connector) error {
	fields := LogFields{"Method": "Unpublish", "Type": "SANStorageDriver", "volume": volume.ID}
	Logd(ctx, d.Name(), d.Config.DebugTraceFlags["method"]).WithFields(fields).Trace(">>>> Unpublish")
	defer Logd(ctx, d.Name(), d.Config.DebugTraceFlags["method"]).WithFields(fields).Trace("<<<< Unpublish")

	array, deviceID, err := d.locateVolume(ctx, volume)
	if err != nil {
		if errors.IsNotFoundError(err) {
			Logc(ctx).WithField("volume", volume.ID).Warning("Volume not found on array, nothing to unpublish.")
			return nil
		}
		return err
	}
	spec, err := d.extraSpecs(volume.VolumeType, volume.Metadata)
	if err != nil {
		return err
	}
	spec.Array = array

	if err = d.masking.RemoveAndResetMembers(ctx, array, deviceID, spec, connector, true); err != nil {
		return fmt.Errorf("could not unmap volume %s: %w", volume.ID, err)
	}

	data := volume.ReplicationDriverData
	if data != nil && data.Mode == drivers.ReplicationModeMetro && !d.isFailedOver() {
		remote := d.remoteExtraSpecs(spec)
		if err = d.masking.RemoveAndResetMembers(ctx, data.Array, data.DeviceID, remote, connector,
			true); err != nil {
			return fmt.Errorf("could not unmap remote half of metro volume %s: %w", volume.ID, err)
		}
	}
	return nil
}

// CreateSnapshot creates a SnapVX snapshot of the given volume.
func (d *SANStorageDriver) CreateSnapshot(ctx context.Context, snapshot *storage.Snapshot, volume *storage.Volume) error {
	fields := LogFields{"Method": "CreateSnapshot", "Type": "SANStorageDriver", "snapshot": snapshot.ID,
		"volume": volume.ID}
	Logd(ctx, d.Name(), d.Config.DebugTraceFlags["method"]).WithFields(fields).Trace(">>>> CreateSnapshot")
	defer Logd(ctx, d.Name(), d.Config.DebugTraceFlags["method"]).WithFields(fields).Trace("<<<< CreateSnapshot")

	array, deviceID, err := d.locateVolume(ctx, volume)
	if err != nil {
		return err
	}
	snapName := snapshotName(d.storagePrefix(), snapshot.ID)
	if err = d.provision.CreateVolumeSnapVX(ctx, array, deviceID, snapName); err != nil {
		return fmt.Errorf("could not create snapshot %s of volume %s: %w", snapshot.ID, volume.ID, err)
	}

	d.unlinkCopiedTargets(ctx, array, deviceID)

	snapshot.VolumeID = volume.ID
	snapshot.VolumeSizeGiB = volume.SizeGiB
	snapshot.Created = time.Now().UTC().Format(time.RFC3339)
	snapshot.ProviderLocation = &storage.SnapshotLocation{
		SnapName:       snapName,
		SourceDeviceID: deviceID,
		Array:          array,
	}

	Logc(ctx).WithFields(LogFields{"snapshot": snapName, "device": deviceID}).Info("Snapshot created.")
	return nil
}

// DeleteSnapshot unlinks any targets still copying from a snapshot and terminates it.
func (d *SANStorageDriver) DeleteSnapshot(ctx context.Context, snapshot *storage.Snapshot, volume *storage.Volume) error {
	fields := LogFields{"Method": "DeleteSnapshot", "Type": "SANStorageDriver", "snapshot": snapshot.ID}
	Logd(ctx, d.Name(), d.Config.DebugTraceFlags["method"]).WithFields(fields).Trace(">>>> DeleteSnapshot")
	defer Logd(ctx, d.Name(), d.Config.DebugTraceFlags["method"]).WithFields(fields).Trace("<<<< DeleteSnapshot")

	location := snapshot.ProviderLocation
	if location == nil {
		Logc(ctx).WithField("snapshot", snapshot.ID).Warning("Snapshot has no provider location, nothing to delete.")
		return nil
	}

	gen, err := d.provision.getGeneration(ctx, location.Array, location.SourceDeviceID, location.SnapName, 0)
	if err != nil {
		if errors.IsNotFoundError(err) {
			Logc(ctx).WithField("snapshot", location.SnapName).Warning("Snapshot not found, nothing to delete.")
			return nil
		}
		return err
	}
	for _, linked := range gen.LinkedDevices {
		if err = d.provision.BreakReplicationRelationship(ctx, location.Array, linked.TargetDevice,
			location.SourceDeviceID, location.SnapName, 0, true); err != nil {
			return fmt.Errorf("could not unlink %s from snapshot %s: %w", linked.TargetDevice, snapshot.ID, err)
		}
	}
	return d.provision.DeleteVolumeSnap(ctx, location.Array, location.SnapName, location.SourceDeviceID, 0)
}

// RestoreSnapshot reverts a volume to a snapshot of itself.
func (d *SANStorageDriver) RestoreSnapshot(ctx context.Context, snapshot *storage.Snapshot, volume *storage.Volume) error {
	fields := LogFields{"Method": "RestoreSnapshot", "Type": "SANStorageDriver", "snapshot": snapshot.ID,
		"volume": volume.ID}
	Logd(ctx, d.Name(), d.Config.DebugTraceFlags["method"]).WithFields(fields).Trace(">>>> RestoreSnapshot")
	defer Logd(ctx, d.Name(), d.Config.DebugTraceFlags["method"]).WithFields(fields).Trace("<<<< RestoreSnapshot")

	if volume.ReplicationDriverData != nil {
		return errors.UnsupportedError("volume %s is replicated and cannot be reverted to a snapshot", volume.ID)
	}
	location := snapshot.ProviderLocation
	if location == nil {
		return errors.InvalidInputError("snapshot %s has no provider location", snapshot.ID)
	}
	array, deviceID, err := d.locateVolume(ctx, volume)
	if err != nil {
		return err
	}
	if location.SourceDeviceID != deviceID || location.Array != array {
		return errors.InvalidInputError("snapshot %s was not taken of volume %s", snapshot.ID, volume.ID)
	}
	return d.provision.RevertVolumeSnapshot(ctx, array, deviceID, location.SnapName, 0)
}

// Retype moves an unattached volume to the placement of a new volume type.  It reports false when
// the driver cannot retype in place.
func (d *SANStorageDriver) Retype(
	ctx context.Context, volume *storage.Volume, newType *storage.VolumeType,
) (bool, error) {
	fields := LogFields{"Method": "Retype", "Type": "SANStorageDriver", "volume": volume.ID, "newType": newType.Name}
	Logd(ctx, d.Name(), d.Config.DebugTraceFlags["method"]).WithFields(fields).Trace(">>>> Retype")
	defer Logd(ctx, d.Name(), d.Config.DebugTraceFlags["method"]).WithFields(fields).Trace("<<<< Retype")

	if volume.IsAttached() {
		return false, errors.ResourceInUseError("volume %s is attached and cannot be retyped", volume.ID)
	}
	// A type placing volumes on another array needs a host-assisted migration.
	if poolName := newType.ExtraSpecs[ExtraSpecPoolName]; poolName != "" {
		_, _, _, array, err := parsePoolName(poolName)
		if err != nil {
			return false, err
		}
		if array != d.Config.Array {
			Logc(ctx).WithFields(LogFields{"volume": volume.ID, "pool": poolName}).Info(
				"Volume type targets another array; retype not handled by driver.")
			return false, nil
		}
	}
	oldSpec, err := d.extraSpecs(volume.VolumeType, volume.Metadata)
	if err != nil {
		return false, err
	}
	newSpec, err := d.extraSpecs(*newType, nil)
	if err != nil {
		return false, err
	}
	if newSpec.Replicated && !oldSpec.Replicated {
		if err = d.checkCreateAllowed(newSpec); err != nil {
			return false, err
		}
	}

	if err = d.moveToPlacement(ctx, volume, oldSpec, newSpec); err != nil {
		return false, err
	}
	volume.VolumeType = *newType
	delete(volume.Metadata, ExtraSpecPoolName)
	return true, nil
}

// Migrate moves an unattached volume to another pool of the same array.
func (d *SANStorageDriver) Migrate(ctx context.Context, volume *storage.Volume, targetPool string) (bool, error) {
	fields := LogFields{"Method": "Migrate", "Type": "SANStorageDriver", "volume": volume.ID, "pool": targetPool}
	Logd(ctx, d.Name(), d.Config.DebugTraceFlags["method"]).WithFields(fields).Trace(">>>> Migrate")
	defer Logd(ctx, d.Name(), d.Config.DebugTraceFlags["method"]).WithFields(fields).Trace("<<<< Migrate")

	if volume.IsAttached() {
		return false, errors.ResourceInUseError("volume %s is attached and cannot be migrated", volume.ID)
	}
	slo, workload, srp, array, err := parsePoolName(targetPool)
	if err != nil {
		return false, err
	}
	oldSpec, err := d.extraSpecs(volume.VolumeType, volume.Metadata)
	if err != nil {
		return false, err
	}
	if array != oldSpec.Array {
		return false, nil
	}
	newSpec := *oldSpec
	newSpec.SLO, newSpec.Workload, newSpec.SRP = slo, workload, srp

	if err = d.moveToPlacement(ctx, volume, oldSpec, &newSpec); err != nil {
		return false, err
	}
	if volume.Metadata == nil {
		volume.Metadata = make(map[string]string)
	}
	volume.Metadata[ExtraSpecPoolName] = targetPool
	return true, nil
}

// moveToPlacement moves a device between default storage groups, and sets up or tears down its
// replication when the new placement differs.
func (d *SANStorageDriver) moveToPlacement(
	ctx context.Context, volume *storage.Volume, oldSpec, newSpec *ExtraSpecs,
) error {
	array, deviceID, err := d.locateVolume(ctx, volume)
	if err != nil {
		return err
	}

	if oldSpec.Replicated && !newSpec.Replicated {
		if err = d.breakRDFRelationship(ctx, volume, oldSpec, true); err != nil {
			return err
		}
		volume.ReplicationDriverData = nil
		volume.ReplicationStatus = storage.ReplicationStatusDisabled
	}

	source, target := oldSpec.defaultStorageGroupName(), newSpec.defaultStorageGroupName()
	if source != target {
		targetSG, err := d.provision.GetOrCreateDefaultStorageGroup(ctx, array, newSpec)
		if err != nil {
			return err
		}
		device, err := d.API.GetVolume(ctx, array, deviceID)
		if err != nil {
			return err
		}
		if collection.ContainsString(device.StorageGroupIDs, source) {
			err = d.provision.MoveVolumeBetweenStorageGroups(ctx, array, deviceID, source, targetSG.StorageGroupID,
				oldSpec.Replicated || newSpec.Replicated)
		} else {
			err = d.provision.AddVolumeToStorageGroup(ctx, array, deviceID, targetSG.StorageGroupID,
				newSpec.Replicated)
		}
		if err != nil {
			return fmt.Errorf("could not move volume %s to %s: %w", volume.ID, targetSG.StorageGroupID, err)
		}
	}

	if newSpec.Replicated && !oldSpec.Replicated {
		data, err := d.setupVolumeReplication(ctx, newSpec, deviceID, d.volumeIdentifier(volume),
			int64(volume.SizeGiB))
		if err != nil {
			return err
		}
		volume.ReplicationDriverData = data
		volume.ReplicationStatus = storage.ReplicationStatusEnabled
	}

	Logc(ctx).WithFields(LogFields{"volume": volume.ID, "from": oldSpec.PoolName(), "to": newSpec.PoolName()}).Info(
		"Volume moved.")
	return nil
}

// Import brings an existing, unmapped device under management.  existingRef is the device ID.
func (d *SANStorageDriver) Import(ctx context.Context, volume *storage.Volume, existingRef string) error {
	fields := LogFields{"Method": "Import", "Type": "SANStorageDriver", "volume": volume.ID, "ref": existingRef}
	Logd(ctx, d.Name(), d.Config.DebugTraceFlags["method"]).WithFields(fields).Trace(">>>> Import")
	defer Logd(ctx, d.Name(), d.Config.DebugTraceFlags["method"]).WithFields(fields).Trace("<<<< Import")

	deviceID := strings.TrimSpace(existingRef)
	if deviceID == "" {
		return errors.InvalidInputError("a device ID is required to import a volume")
	}
	spec, err := d.extraSpecs(volume.VolumeType, volume.Metadata)
	if err != nil {
		return err
	}
	if spec.Replicated {
		return errors.UnsupportedError("replicated volumes cannot be imported")
	}
	array := spec.Array

	device, err := d.API.GetVolume(ctx, array, deviceID)
	if err != nil {
		return err
	}
	if device.CapacityGB != math.Trunc(device.CapacityGB) {
		return errors.InvalidInputError("device %s capacity %.2f GB is not a whole number of GiB", deviceID,
			device.CapacityGB)
	}
	if len(device.RDFGroupIDs) > 0 {
		return errors.InvalidInputError("device %s is SRDF protected", deviceID)
	}
	if device.SnapVXTarget {
		return errors.InvalidInputError("device %s is a SnapVX target", deviceID)
	}
	views, err := d.masking.FindMaskingViewsForVolumeAndHost(ctx, array, device.StorageGroupIDs, "", nil)
	if err != nil {
		return err
	}
	if len(views) > 0 {
		return errors.ResourceInUseError("device %s is mapped by masking view %s", deviceID, views[0])
	}

	if err = d.API.RenameVolume(ctx, array, deviceID, d.volumeIdentifier(volume)); err != nil {
		return err
	}
	if err = d.masking.RemoveVolumeFromAllStorageGroups(ctx, array, deviceID); err != nil {
		return err
	}
	if err = d.masking.AddVolumeToDefaultStorageGroup(ctx, array, deviceID, spec); err != nil {
		return err
	}

	volume.SizeGiB = uint64(device.CapacityGB)
	volume.ProviderLocation = &storage.ProviderLocation{DeviceID: deviceID, Array: array}
	volume.ReplicationStatus = storage.ReplicationStatusDisabled
	Logc(ctx).WithFields(LogFields{"volume": volume.ID, "device": deviceID}).Info("Volume imported.")
	return nil
}

// Unmanage releases a volume: the device leaves its storage groups and loses its identifier.
func (d *SANStorageDriver) Unmanage(ctx context.Context, volume *storage.Volume) error {
	fields := LogFields{"Method": "Unmanage", "Type": "SANStorageDriver", "volume": volume.ID}
	Logd(ctx, d.Name(), d.Config.DebugTraceFlags["method"]).WithFields(fields).Trace(">>>> Unmanage")
	defer Logd(ctx, d.Name(), d.Config.DebugTraceFlags["method"]).WithFields(fields).Trace("<<<< Unmanage")

	array, deviceID, err := d.locateVolume(ctx, volume)
	if err != nil {
		return err
	}
	if err = d.masking.RemoveVolumeFromAllStorageGroups(ctx, array, deviceID); err != nil {
		return err
	}
	return d.API.RenameVolume(ctx, array, deviceID, "")
}

// GetVolumeStats reports the capacity of the SRP as one pool per service level.
func (d *SANStorageDriver) GetVolumeStats(ctx context.Context) (*storage.VolumeStats, error) {
	fields := LogFields{"Method": "GetVolumeStats", "Type": "SANStorageDriver"}
	Logd(ctx, d.Name(), d.Config.DebugTraceFlags["method"]).WithFields(fields).Trace(">>>> GetVolumeStats")
	defer Logd(ctx, d.Name(), d.Config.DebugTraceFlags["method"]).WithFields(fields).Trace("<<<< GetVolumeStats")

	array, srpName := d.Config.Array, d.Config.SRP
	if d.isFailedOver() {
		array, srpName = d.Config.Replication.TargetArray, d.Config.Replication.RemotePool
	}

	srp, err := d.API.GetSRP(ctx, array, srpName)
	if err != nil {
		return nil, err
	}
	levels, err := d.API.GetServiceLevels(ctx, array)
	if err != nil {
		return nil, err
	}

	total := srp.Capacity.UsableTotalTB * tbToGiB
	used := srp.Capacity.UsableUsedTB * tbToGiB
	free := math.Max(total-used, 0)
	provisioned := srp.Capacity.SubscribedTotal * tbToGiB

	protocol := "iSCSI"
	if d.Config.Protocol == protocolFC {
		protocol = "FC"
	}
	stats := &storage.VolumeStats{
		BackendName:        d.BackendName(),
		VendorName:         vendorName,
		DriverVersion:      pmaxconfig.OrchestratorVersion,
		StorageProtocol:    protocol,
		ReplicationEnabled: d.Config.IsReplicated(),
		ActiveBackendID:    d.activeBackendID(),
	}
	if d.Config.IsReplicated() {
		stats.ReplicationTargets = []string{d.Config.Replication.TargetArray}
	}

	specs := []ExtraSpecs{{Array: array, SRP: srpName}}
	for _, level := range levels {
		if strings.EqualFold(level, "None") {
			continue
		}
		specs = append(specs, ExtraSpecs{Array: array, SRP: srpName, SLO: level})
	}
	for i := range specs {
		stats.Pools = append(stats.Pools, storage.PoolStats{
			PoolName:                 specs[i].PoolName(),
			Location:                 array + "#" + srpName,
			TotalCapacityGB:          total,
			FreeCapacityGB:           free,
			ProvisionedCapacityGB:    provisioned,
			ReservedPercentage:       srp.ReservedCapPercent,
			ThinProvisioningSupport:  true,
			ThickProvisioningSupport: false,
			ReplicationEnabled:       d.Config.IsReplicated(),
		})
	}

	Logc(ctx).WithFields(LogFields{
		"array": array,
		"srp":   srpName,
		"total": capacity.FormatGiB(total),
		"free":  capacity.FormatGiB(free),
		"pools": len(stats.Pools),
	}).Debug("Collected volume stats.")
	return stats, nil
}

// GetExternalConfig returns a clone of this backend's config, sanitized for external consumption.
func (d *SANStorageDriver) GetExternalConfig(ctx context.Context) interface{} {
	cloneConfig, err := deep.Copy(d.Config)
	if err != nil {
		Logc(ctx).WithError(err).Error("Could not clone driver configuration.")
		return nil
	}

	drivers.SanitizeCommonStorageDriverConfig(cloneConfig.CommonStorageDriverConfig)
	cloneConfig.Username = REDACTED
	cloneConfig.Password = REDACTED
	for i := range cloneConfig.U4PFailoverTargets {
		cloneConfig.U4PFailoverTargets[i].Username = REDACTED
		cloneConfig.U4PFailoverTargets[i].Password = REDACTED
	}
	return cloneConfig
}

var _ storage.Driver = (*SANStorageDriver)(nil)
