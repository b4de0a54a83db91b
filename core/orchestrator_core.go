// Copyright 2025 NetApp, Inc. All Rights Reserved.

package core

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"go.uber.org/multierr"

	"github.com/pmax-drivers/powermax/config"
	. "github.com/pmax-drivers/powermax/logging"
	persistentstore "github.com/pmax-drivers/powermax/persistent_store"
	"github.com/pmax-drivers/powermax/pkg/capacity"
	"github.com/pmax-drivers/powermax/pkg/collection"
	"github.com/pmax-drivers/powermax/pkg/locks"
	"github.com/pmax-drivers/powermax/storage"
	"github.com/pmax-drivers/powermax/utils/errors"
)

type backendNamer interface {
	BackendName() string
}

// PowerMaxOrchestrator serializes work per volume and keeps the record of every volume in the store.
// Failover excludes all other work while it runs.
type PowerMaxOrchestrator struct {
	driver          storage.Driver
	driverName      string
	backendName     string
	storeClient     persistentstore.Client
	mutex           *sync.RWMutex
	volumeLocks     *locks.GCNamedMutex
	activeBackendID string
	bootstrapped    bool
}

// NewPowerMaxOrchestrator returns an orchestrator for an initialized driver
func NewPowerMaxOrchestrator(driver storage.Driver, client persistentstore.Client) *PowerMaxOrchestrator {
	backendName := driver.Name()
	if namer, ok := driver.(backendNamer); ok {
		backendName = namer.BackendName()
	}
	return &PowerMaxOrchestrator{
		driver:          driver,
		driverName:      driver.Name(),
		backendName:     backendName,
		storeClient:     client,
		mutex:           &sync.RWMutex{},
		volumeLocks:     locks.NewGCNamedMutex(),
		activeBackendID: storage.FailbackBackendID,
	}
}

func (o *PowerMaxOrchestrator) transformPersistentState(ctx context.Context) error {
	version, err := o.storeClient.GetVersion(ctx)
	if err != nil && persistentstore.MatchKeyNotFoundErr(err) {
		version = &persistentstore.PersistentStateVersion{
			PersistentStoreVersion: string(o.storeClient.GetType()),
			OrchestratorAPIVersion: config.OrchestratorAPIVersion,
		}
	} else if err != nil {
		return fmt.Errorf("couldn't determine the orchestrator persistent state version: %v", err)
	}

	if config.OrchestratorAPIVersion != version.OrchestratorAPIVersion {
		Logc(ctx).WithFields(LogFields{
			"current_api_version": version.OrchestratorAPIVersion,
			"desired_api_version": config.OrchestratorAPIVersion,
		}).Info("Updating the API version of the persistent store.")
	}

	version.OrchestratorAPIVersion = config.OrchestratorAPIVersion
	version.PersistentStoreVersion = string(o.storeClient.GetType())
	if err = o.storeClient.SetVersion(ctx, version); err != nil {
		return fmt.Errorf("failed to set the persistent state version: %v", err)
	}
	return nil
}

// bootstrapBackendState puts the driver back in the replication state recorded before a restart.
func (o *PowerMaxOrchestrator) bootstrapBackendState(ctx context.Context) error {
	state, err := o.storeClient.GetBackendState(ctx, o.backendName)
	if err != nil {
		if !persistentstore.MatchKeyNotFoundErr(err) {
			return err
		}
		return o.storeClient.UpdateBackendState(ctx, &persistentstore.BackendState{
			Name:            o.backendName,
			ActiveBackendID: storage.FailbackBackendID,
		})
	}
	if state.ActiveBackendID == "" || state.ActiveBackendID == storage.FailbackBackendID {
		return nil
	}

	activeBackendID, _, err := o.driver.FailoverHost(ctx, nil, state.ActiveBackendID)
	if err != nil {
		return fmt.Errorf("could not restore failover to %s: %v", state.ActiveBackendID, err)
	}
	o.activeBackendID = activeBackendID
	Logc(ctx).WithFields(LogFields{
		"backend":         o.backendName,
		"activeBackendID": activeBackendID,
	}).Info("Restored failed over state.")
	return nil
}

func (o *PowerMaxOrchestrator) Bootstrap(ctx context.Context) error {
	ctx = GenerateRequestContext(ctx, "", ContextSourceInternal, WorkflowCoreInit, LogLayerCore)

	o.mutex.Lock()
	defer o.mutex.Unlock()

	if o.bootstrapped {
		return nil
	}
	if !o.driver.Initialized() {
		return fmt.Errorf("backend %s is not initialized", o.backendName)
	}
	if err := o.transformPersistentState(ctx); err != nil {
		return err
	}
	if err := o.bootstrapBackendState(ctx); err != nil {
		return fmt.Errorf("failed during bootstrapping: %v", err)
	}

	buildInfo.WithLabelValues(config.BuildHash, config.OrchestratorVersion, config.BuildType).Set(float64(1))
	o.bootstrapped = true
	o.updateMetrics(ctx)

	Logc(ctx).WithField("backend", o.backendName).Infof("%s bootstrapped successfully.", config.OrchestratorName)
	return nil
}

// Stop terminates the driver and closes the store.
func (o *PowerMaxOrchestrator) Stop(ctx context.Context) {
	o.mutex.Lock()
	defer o.mutex.Unlock()

	o.driver.Terminate(ctx)
	if err := o.storeClient.Stop(); err != nil {
		Logc(ctx).WithError(err).Warning("Could not stop the persistent store.")
	}
	o.bootstrapped = false
}

// updateMetrics recomputes the gauges from the store.  Callers hold the orchestrator mutex.
func (o *PowerMaxOrchestrator) updateMetrics(ctx context.Context) {
	volumes, err := o.storeClient.GetVolumes(ctx)
	if err != nil {
		Logc(ctx).WithError(err).Debug("Could not read volumes for metrics.")
		return
	}

	volumesGauge.Reset()
	var totalBytes uint64
	attached, snapshots := 0, 0
	for _, volume := range volumes {
		status := volume.ReplicationStatus
		if status == "" {
			status = storage.ReplicationStatusDisabled
		}
		volumesGauge.WithLabelValues(o.backendName, status.String()).Inc()
		totalBytes += capacity.GiBToBytes(volume.SizeGiB)
		if volume.IsAttached() {
			attached++
		}
		if volumeSnapshots, err := o.storeClient.GetSnapshotsForVolume(ctx, volume.ID); err == nil {
			snapshots += len(volumeSnapshots)
		}
	}
	volumesTotalBytesGauge.Set(float64(totalBytes))
	attachedVolumesGauge.Set(float64(attached))
	snapshotGauge.Set(float64(snapshots))

	backendInfo.Reset()
	backendInfo.WithLabelValues(o.driverName, o.backendName, o.activeBackendID).Set(float64(1))
}

// lockVolumes takes the shared orchestrator lock and the named locks of the given volumes, in a fixed
// order so that two callers locking the same pair cannot deadlock.
func (o *PowerMaxOrchestrator) lockVolumes(volumeIDs ...string) (func(), error) {
	o.mutex.RLock()
	if !o.bootstrapped {
		o.mutex.RUnlock()
		return nil, errors.NotReadyError()
	}

	names := collection.Unique(volumeIDs)
	sort.Strings(names)
	held := make([]*locks.LockedResource, 0, len(names))
	for _, name := range names {
		held = append(held, o.volumeLocks.LockWithGuard(name))
	}
	return func() {
		for i := len(held) - 1; i >= 0; i-- {
			held[i].Unlock()
		}
		o.mutex.RUnlock()
	}, nil
}

func (o *PowerMaxOrchestrator) GetVersion(context.Context) (string, error) {
	return config.OrchestratorVersion, nil
}

func (o *PowerMaxOrchestrator) GetBackend(ctx context.Context) (*BackendExternal, error) {
	o.mutex.RLock()
	defer o.mutex.RUnlock()
	if !o.bootstrapped {
		return nil, errors.NotReadyError()
	}

	volumes, err := o.storeClient.GetVolumes(ctx)
	if err != nil {
		return nil, err
	}
	return &BackendExternal{
		Name:            o.backendName,
		Driver:          o.driverName,
		ActiveBackendID: o.activeBackendID,
		Config:          o.driver.GetExternalConfig(ctx),
		Volumes:         len(volumes),
	}, nil
}

func (o *PowerMaxOrchestrator) GetStats(ctx context.Context) (stats *storage.VolumeStats, err error) {
	ctx = GenerateRequestContextForLayer(ctx, LogLayerCore)
	defer recordTiming("backend_stats", &err)()

	o.mutex.RLock()
	defer o.mutex.RUnlock()
	if !o.bootstrapped {
		return nil, errors.NotReadyError()
	}
	return o.driver.GetVolumeStats(ctx)
}

// validateNewVolume checks that a volume ID is usable and not already recorded.
func (o *PowerMaxOrchestrator) validateNewVolume(ctx context.Context, volume *storage.Volume) error {
	if volume == nil || volume.ID == "" {
		return errors.InvalidInputError("a volume ID is required")
	}
	_, err := o.storeClient.GetVolume(ctx, volume.ID)
	if err == nil {
		return errors.AlreadyExistsError("volume %s already exists", volume.ID)
	}
	if !persistentstore.MatchKeyNotFoundErr(err) {
		return err
	}
	return nil
}

// addVolumeCleanup records a new volume, removing it from the array if it cannot be recorded.
func (o *PowerMaxOrchestrator) addVolumeCleanup(
	ctx context.Context, volume *storage.Volume, release func(context.Context, *storage.Volume) error,
) error {
	err := o.storeClient.AddVolume(ctx, volume)
	if err == nil {
		o.updateMetrics(ctx)
		return nil
	}

	Logc(ctx).WithError(err).WithField("volume", volume.ID).Error("Could not record volume, releasing it.")
	if releaseErr := release(ctx, volume); releaseErr != nil {
		Logc(ctx).WithError(releaseErr).WithField("volume", volume.ID).Error("Could not release volume.")
		err = multierr.Append(err, releaseErr)
	}
	return fmt.Errorf("could not record volume %s: %w", volume.ID, err)
}

func (o *PowerMaxOrchestrator) AddVolume(ctx context.Context, volume *storage.Volume) (vol *storage.Volume, err error) {
	ctx = GenerateRequestContextForLayer(ctx, LogLayerCore)
	defer recordTiming("volume_add", &err)()

	if volume == nil {
		return nil, errors.InvalidInputError("a volume is required")
	}
	unlock, err := o.lockVolumes(volume.ID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	if err = o.validateNewVolume(ctx, volume); err != nil {
		return nil, err
	}

	vol = volume.ConstructClone()
	if err = o.driver.Create(ctx, vol); err != nil {
		return nil, err
	}
	if err = o.addVolumeCleanup(ctx, vol, o.driver.Destroy); err != nil {
		return nil, err
	}

	Logc(ctx).WithFields(LogFields{
		"volume": vol.ID,
		"size":   vol.SizeGiB,
		"type":   vol.VolumeType.Name,
	}).Info("Volume added.")
	return vol.ConstructClone(), nil
}

func (o *PowerMaxOrchestrator) CloneVolume(
	ctx context.Context, volume *storage.Volume, sourceVolumeID string,
) (vol *storage.Volume, err error) {
	ctx = GenerateRequestContextForLayer(ctx, LogLayerCore)
	defer recordTiming("volume_clone", &err)()

	if volume == nil {
		return nil, errors.InvalidInputError("a volume is required")
	}
	unlock, err := o.lockVolumes(volume.ID, sourceVolumeID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	if err = o.validateNewVolume(ctx, volume); err != nil {
		return nil, err
	}
	source, err := o.storeClient.GetVolume(ctx, sourceVolumeID)
	if err != nil {
		return nil, storeError(err, "source volume", sourceVolumeID)
	}

	vol = volume.ConstructClone()
	if vol.SizeGiB == 0 {
		vol.SizeGiB = source.SizeGiB
	}
	if vol.SizeGiB < source.SizeGiB {
		return nil, errors.InvalidInputError("clone size %d GiB is smaller than source size %d GiB",
			vol.SizeGiB, source.SizeGiB)
	}
	if vol.VolumeType.Name == "" {
		vol.VolumeType = source.VolumeType
	}

	if err = o.driver.CreateClone(ctx, vol, source); err != nil {
		return nil, err
	}
	if err = o.addVolumeCleanup(ctx, vol, o.driver.Destroy); err != nil {
		return nil, err
	}

	Logc(ctx).WithFields(LogFields{"volume": vol.ID, "source": sourceVolumeID}).Info("Volume cloned.")
	return vol.ConstructClone(), nil
}

func (o *PowerMaxOrchestrator) CreateVolumeFromSnapshot(
	ctx context.Context, volume *storage.Volume, sourceVolumeID, snapshotID string,
) (vol *storage.Volume, err error) {
	ctx = GenerateRequestContextForLayer(ctx, LogLayerCore)
	defer recordTiming("volume_create_from_snapshot", &err)()

	if volume == nil {
		return nil, errors.InvalidInputError("a volume is required")
	}
	unlock, err := o.lockVolumes(volume.ID, sourceVolumeID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	if err = o.validateNewVolume(ctx, volume); err != nil {
		return nil, err
	}
	snapshot, err := o.storeClient.GetSnapshot(ctx, sourceVolumeID, snapshotID)
	if err != nil {
		return nil, storeError(err, "snapshot", snapshotID)
	}

	vol = volume.ConstructClone()
	if vol.SizeGiB == 0 {
		vol.SizeGiB = snapshot.VolumeSizeGiB
	}
	if vol.SizeGiB < snapshot.VolumeSizeGiB {
		return nil, errors.InvalidInputError("volume size %d GiB is smaller than snapshot size %d GiB",
			vol.SizeGiB, snapshot.VolumeSizeGiB)
	}

	if err = o.driver.CreateFromSnapshot(ctx, vol, snapshot); err != nil {
		return nil, err
	}
	if err = o.addVolumeCleanup(ctx, vol, o.driver.Destroy); err != nil {
		return nil, err
	}

	Logc(ctx).WithFields(LogFields{"volume": vol.ID, "snapshot": snapshotID}).Info("Volume created from snapshot.")
	return vol.ConstructClone(), nil
}

func (o *PowerMaxOrchestrator) GetVolume(ctx context.Context, volumeID string) (*storage.Volume, error) {
	o.mutex.RLock()
	defer o.mutex.RUnlock()
	if !o.bootstrapped {
		return nil, errors.NotReadyError()
	}

	volume, err := o.storeClient.GetVolume(ctx, volumeID)
	if err != nil {
		return nil, storeError(err, "volume", volumeID)
	}
	return volume, nil
}

func (o *PowerMaxOrchestrator) ListVolumes(ctx context.Context) ([]*storage.Volume, error) {
	o.mutex.RLock()
	defer o.mutex.RUnlock()
	if !o.bootstrapped {
		return nil, errors.NotReadyError()
	}
	return o.storeClient.GetVolumes(ctx)
}

// DeleteVolume destroys a volume that is neither attached nor the source of snapshots.
func (o *PowerMaxOrchestrator) DeleteVolume(ctx context.Context, volumeID string) (err error) {
	ctx = GenerateRequestContextForLayer(ctx, LogLayerCore)
	defer recordTiming("volume_delete", &err)()

	unlock, err := o.lockVolumes(volumeID)
	if err != nil {
		return err
	}
	defer unlock()

	volume, err := o.storeClient.GetVolume(ctx, volumeID)
	if err != nil {
		return storeError(err, "volume", volumeID)
	}
	if volume.IsAttached() {
		return errors.ResourceInUseError("volume %s is attached to %v", volumeID, volume.AttachedHosts)
	}
	snapshots, err := o.storeClient.GetSnapshotsForVolume(ctx, volumeID)
	if err != nil {
		return err
	}
	if len(snapshots) > 0 {
		return errors.ResourceInUseError("volume %s has %d snapshots", volumeID, len(snapshots))
	}

	if err = o.driver.Destroy(ctx, volume); err != nil {
		return err
	}
	if err = o.storeClient.DeleteVolume(ctx, volumeID); err != nil {
		return storeError(err, "volume", volumeID)
	}
	o.updateMetrics(ctx)

	Logc(ctx).WithField("volume", volumeID).Info("Volume deleted.")
	return nil
}

func (o *PowerMaxOrchestrator) ResizeVolume(ctx context.Context, volumeID string, newSizeGiB uint64) (err error) {
	ctx = GenerateRequestContextForLayer(ctx, LogLayerCore)
	defer recordTiming("volume_resize", &err)()

	unlock, err := o.lockVolumes(volumeID)
	if err != nil {
		return err
	}
	defer unlock()

	volume, err := o.storeClient.GetVolume(ctx, volumeID)
	if err != nil {
		return storeError(err, "volume", volumeID)
	}
	if volume.SizeGiB == newSizeGiB {
		Logc(ctx).WithFields(LogFields{
			"volume": volumeID,
			"size":   newSizeGiB,
		}).Debug("Volume is already the requested size.")
		return nil
	}

	if err = o.driver.Resize(ctx, volume, newSizeGiB); err != nil {
		return err
	}
	volume.SizeGiB = newSizeGiB
	if err = o.storeClient.UpdateVolume(ctx, volume); err != nil {
		return storeError(err, "volume", volumeID)
	}
	o.updateMetrics(ctx)

	Logc(ctx).WithFields(LogFields{"volume": volumeID, "size": newSizeGiB}).Info("Volume resized.")
	return nil
}

func (o *PowerMaxOrchestrator) PublishVolume(
	ctx context.Context, volumeID string, connector *storage.Connector,
) (info *storage.ConnectionInfo, err error) {
	ctx = GenerateRequestContextForLayer(ctx, LogLayerCore)
	defer recordTiming("volume_publish", &err)()

	if connector == nil || connector.Host == "" {
		return nil, errors.InvalidInputError("a connector with a host name is required")
	}
	unlock, err := o.lockVolumes(volumeID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	volume, err := o.storeClient.GetVolume(ctx, volumeID)
	if err != nil {
		return nil, storeError(err, "volume", volumeID)
	}

	if info, err = o.driver.Publish(ctx, volume, connector); err != nil {
		return nil, err
	}
	if !collection.ContainsString(volume.AttachedHosts, connector.Host) {
		volume.AttachedHosts = append(volume.AttachedHosts, connector.Host)
		sort.Strings(volume.AttachedHosts)
		if err = o.storeClient.UpdateVolume(ctx, volume); err != nil {
			return nil, storeError(err, "volume", volumeID)
		}
		o.updateMetrics(ctx)
	}

	Logc(ctx).WithFields(LogFields{
		"volume": volumeID,
		"host":   connector.Host,
		"lun":    info.Data.TargetLUN,
	}).Info("Volume published.")
	return info, nil
}

// UnpublishVolume detaches a volume from the connector's host, or from every host when connector is nil.
func (o *PowerMaxOrchestrator) UnpublishVolume(
	ctx context.Context, volumeID string, connector *storage.Connector,
) (err error) {
	ctx = GenerateRequestContextForLayer(ctx, LogLayerCore)
	defer recordTiming("volume_unpublish", &err)()

	unlock, err := o.lockVolumes(volumeID)
	if err != nil {
		return err
	}
	defer unlock()

	volume, err := o.storeClient.GetVolume(ctx, volumeID)
	if err != nil {
		return storeError(err, "volume", volumeID)
	}

	if err = o.driver.Unpublish(ctx, volume, connector); err != nil {
		return err
	}
	if connector == nil {
		volume.AttachedHosts = nil
	} else {
		volume.AttachedHosts = collection.RemoveString(volume.AttachedHosts, connector.Host)
		if len(volume.AttachedHosts) == 0 {
			volume.AttachedHosts = nil
		}
	}
	if err = o.storeClient.UpdateVolume(ctx, volume); err != nil {
		return storeError(err, "volume", volumeID)
	}
	o.updateMetrics(ctx)

	Logc(ctx).WithField("volume", volumeID).Info("Volume unpublished.")
	return nil
}

func (o *PowerMaxOrchestrator) RetypeVolume(
	ctx context.Context, volumeID string, newType *storage.VolumeType,
) (vol *storage.Volume, err error) {
	ctx = GenerateRequestContextForLayer(ctx, LogLayerCore)
	defer recordTiming("volume_retype", &err)()

	if newType == nil || newType.Name == "" {
		return nil, errors.InvalidInputError("a volume type is required")
	}
	unlock, err := o.lockVolumes(volumeID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	vol, err = o.storeClient.GetVolume(ctx, volumeID)
	if err != nil {
		return nil, storeError(err, "volume", volumeID)
	}

	retyped, err := o.driver.Retype(ctx, vol, newType)
	if err != nil {
		return nil, err
	}
	if !retyped {
		return nil, errors.UnsupportedError("volume %s cannot be retyped in place to %s", volumeID, newType.Name)
	}
	if err = o.storeClient.UpdateVolume(ctx, vol); err != nil {
		return nil, storeError(err, "volume", volumeID)
	}
	o.updateMetrics(ctx)

	Logc(ctx).WithFields(LogFields{"volume": volumeID, "type": newType.Name}).Info("Volume retyped.")
	return vol, nil
}

func (o *PowerMaxOrchestrator) MigrateVolume(
	ctx context.Context, volumeID, targetPool string,
) (vol *storage.Volume, err error) {
	ctx = GenerateRequestContextForLayer(ctx, LogLayerCore)
	defer recordTiming("volume_migrate", &err)()

	if targetPool == "" {
		return nil, errors.InvalidInputError("a target pool is required")
	}
	unlock, err := o.lockVolumes(volumeID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	vol, err = o.storeClient.GetVolume(ctx, volumeID)
	if err != nil {
		return nil, storeError(err, "volume", volumeID)
	}

	migrated, err := o.driver.Migrate(ctx, vol, targetPool)
	if err != nil {
		return nil, err
	}
	if !migrated {
		return nil, errors.UnsupportedError("volume %s cannot be migrated to %s", volumeID, targetPool)
	}
	if err = o.storeClient.UpdateVolume(ctx, vol); err != nil {
		return nil, storeError(err, "volume", volumeID)
	}

	Logc(ctx).WithFields(LogFields{"volume": volumeID, "pool": targetPool}).Info("Volume migrated.")
	return vol, nil
}

func (o *PowerMaxOrchestrator) ImportVolume(
	ctx context.Context, volume *storage.Volume, existingRef string,
) (vol *storage.Volume, err error) {
	ctx = GenerateRequestContextForLayer(ctx, LogLayerCore)
	defer recordTiming("volume_import", &err)()

	if volume == nil {
		return nil, errors.InvalidInputError("a volume is required")
	}
	unlock, err := o.lockVolumes(volume.ID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	if err = o.validateNewVolume(ctx, volume); err != nil {
		return nil, err
	}

	vol = volume.ConstructClone()
	if err = o.driver.Import(ctx, vol, existingRef); err != nil {
		return nil, err
	}
	if err = o.addVolumeCleanup(ctx, vol, o.driver.Unmanage); err != nil {
		return nil, err
	}

	Logc(ctx).WithFields(LogFields{"volume": vol.ID, "ref": existingRef, "size": vol.SizeGiB}).Info(
		"Volume imported.")
	return vol.ConstructClone(), nil
}

// UnmanageVolume releases a volume from management and forgets it, leaving the device on the array.
func (o *PowerMaxOrchestrator) UnmanageVolume(ctx context.Context, volumeID string) (err error) {
	ctx = GenerateRequestContextForLayer(ctx, LogLayerCore)
	defer recordTiming("volume_unmanage", &err)()

	unlock, err := o.lockVolumes(volumeID)
	if err != nil {
		return err
	}
	defer unlock()

	volume, err := o.storeClient.GetVolume(ctx, volumeID)
	if err != nil {
		return storeError(err, "volume", volumeID)
	}
	if volume.IsAttached() {
		return errors.ResourceInUseError("volume %s is attached to %v", volumeID, volume.AttachedHosts)
	}

	if err = o.driver.Unmanage(ctx, volume); err != nil {
		return err
	}
	if err = o.storeClient.DeleteVolume(ctx, volumeID); err != nil {
		return storeError(err, "volume", volumeID)
	}
	o.updateMetrics(ctx)

	Logc(ctx).WithField("volume", volumeID).Info("Volume unmanaged.")
	return nil
}

// GetReplicationStatus asks the array for the state of a volume's pair and records any change.
func (o *PowerMaxOrchestrator) GetReplicationStatus(
	ctx context.Context, volumeID string,
) (status storage.ReplicationStatus, err error) {
	ctx = GenerateRequestContextForLayer(ctx, LogLayerCore)

	unlock, err := o.lockVolumes(volumeID)
	if err != nil {
		return "", err
	}
	defer unlock()

	volume, err := o.storeClient.GetVolume(ctx, volumeID)
	if err != nil {
		return "", storeError(err, "volume", volumeID)
	}
	if status, err = o.driver.GetReplicationStatus(ctx, volume); err != nil {
		return "", err
	}
	if status != volume.ReplicationStatus {
		volume.ReplicationStatus = status
		if err = o.storeClient.UpdateVolume(ctx, volume); err != nil {
			return "", storeError(err, "volume", volumeID)
		}
		o.updateMetrics(ctx)
	}
	return status, nil
}

func (o *PowerMaxOrchestrator) CreateSnapshot(
	ctx context.Context, snapshot *storage.Snapshot,
) (snap *storage.Snapshot, err error) {
	ctx = GenerateRequestContextForLayer(ctx, LogLayerCore)
	defer recordTiming("snapshot_create", &err)()

	if snapshot == nil || snapshot.ID == "" || snapshot.VolumeID == "" {
		return nil, errors.InvalidInputError("a snapshot ID and volume ID are required")
	}
	unlock, err := o.lockVolumes(snapshot.VolumeID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	volume, err := o.storeClient.GetVolume(ctx, snapshot.VolumeID)
	if err != nil {
		return nil, storeError(err, "volume", snapshot.VolumeID)
	}
	if _, err = o.storeClient.GetSnapshot(ctx, snapshot.VolumeID, snapshot.ID); err == nil {
		return nil, errors.AlreadyExistsError("snapshot %s already exists", snapshot.ID)
	} else if !persistentstore.MatchKeyNotFoundErr(err) {
		return nil, err
	}

	snap = snapshot.ConstructClone()
	snap.VolumeSizeGiB = volume.SizeGiB
	if snap.Created == "" {
		snap.Created = time.Now().UTC().Format(time.RFC3339)
	}
	if err = o.driver.CreateSnapshot(ctx, snap, volume); err != nil {
		return nil, err
	}
	if err = o.storeClient.AddSnapshot(ctx, snap); err != nil {
		Logc(ctx).WithError(err).WithField("snapshot", snap.ID).Error("Could not record snapshot, deleting it.")
		if deleteErr := o.driver.DeleteSnapshot(ctx, snap, volume); deleteErr != nil {
			err = multierr.Append(err, deleteErr)
		}
		return nil, fmt.Errorf("could not record snapshot %s: %w", snap.ID, err)
	}
	o.updateMetrics(ctx)

	Logc(ctx).WithFields(LogFields{"snapshot": snap.ID, "volume": snap.VolumeID}).Info("Snapshot created.")
	return snap.ConstructClone(), nil
}

func (o *PowerMaxOrchestrator) GetSnapshot(
	ctx context.Context, volumeID, snapshotID string,
) (*storage.Snapshot, error) {
	o.mutex.RLock()
	defer o.mutex.RUnlock()
	if !o.bootstrapped {
		return nil, errors.NotReadyError()
	}

	snapshot, err := o.storeClient.GetSnapshot(ctx, volumeID, snapshotID)
	if err != nil {
		return nil, storeError(err, "snapshot", snapshotID)
	}
	return snapshot, nil
}

func (o *PowerMaxOrchestrator) ListSnapshotsForVolume(
	ctx context.Context, volumeID string,
) ([]*storage.Snapshot, error) {
	o.mutex.RLock()
	defer o.mutex.RUnlock()
	if !o.bootstrapped {
		return nil, errors.NotReadyError()
	}

	if _, err := o.storeClient.GetVolume(ctx, volumeID); err != nil {
		return nil, storeError(err, "volume", volumeID)
	}
	return o.storeClient.GetSnapshotsForVolume(ctx, volumeID)
}

func (o *PowerMaxOrchestrator) DeleteSnapshot(ctx context.Context, volumeID, snapshotID string) (err error) {
	ctx = GenerateRequestContextForLayer(ctx, LogLayerCore)
	defer recordTiming("snapshot_delete", &err)()

	unlock, err := o.lockVolumes(volumeID)
	if err != nil {
		return err
	}
	defer unlock()

	volume, err := o.storeClient.GetVolume(ctx, volumeID)
	if err != nil {
		return storeError(err, "volume", volumeID)
	}
	snapshot, err := o.storeClient.GetSnapshot(ctx, volumeID, snapshotID)
	if err != nil {
		return storeError(err, "snapshot", snapshotID)
	}

	if err = o.driver.DeleteSnapshot(ctx, snapshot, volume); err != nil {
		return err
	}
	if err = o.storeClient.DeleteSnapshot(ctx, volumeID, snapshotID); err != nil {
		return storeError(err, "snapshot", snapshotID)
	}
	o.updateMetrics(ctx)

	Logc(ctx).WithFields(LogFields{"snapshot": snapshotID, "volume": volumeID}).Info("Snapshot deleted.")
	return nil
}

func (o *PowerMaxOrchestrator) RestoreSnapshot(ctx context.Context, volumeID, snapshotID string) (err error) {
	ctx = GenerateRequestContextForLayer(ctx, LogLayerCore)
	defer recordTiming("snapshot_restore", &err)()

	unlock, err := o.lockVolumes(volumeID)
	if err != nil {
		return err
	}
	defer unlock()

	volume, err := o.storeClient.GetVolume(ctx, volumeID)
	if err != nil {
		return storeError(err, "volume", volumeID)
	}
	snapshot, err := o.storeClient.GetSnapshot(ctx, volumeID, snapshotID)
	if err != nil {
		return storeError(err, "snapshot", snapshotID)
	}

	if err = o.driver.RestoreSnapshot(ctx, snapshot, volume); err != nil {
		return err
	}

	Logc(ctx).WithFields(LogFields{"snapshot": snapshotID, "volume": volumeID}).Info("Volume restored.")
	return nil
}

// Failover moves every recorded volume to the replication target, or back to the primary array when
// secondaryID is "default".  Volume records and the backend state are updated with the result.
func (o *PowerMaxOrchestrator) Failover(ctx context.Context, secondaryID string) (result *FailoverResult, err error) {
	ctx = GenerateRequestContextForLayer(ctx, LogLayerCore)
	defer recordTiming("backend_failover", &err)()

	o.mutex.Lock()
	defer o.mutex.Unlock()
	if !o.bootstrapped {
		return nil, errors.NotReadyError()
	}

	volumes, err := o.storeClient.GetVolumes(ctx)
	if err != nil {
		return nil, err
	}
	activeBackendID, updates, err := o.driver.FailoverHost(ctx, volumes, secondaryID)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*storage.Volume, len(volumes))
	for _, volume := range volumes {
		byID[volume.ID] = volume
	}
	var updateErrors error
	for _, update := range updates {
		volume, ok := byID[update.VolumeID]
		if !ok {
			continue
		}
		volume.ReplicationStatus = update.ReplicationStatus
		if update.ProviderLocation != nil {
			volume.ProviderLocation = update.ProviderLocation
		}
		if update.ReplicationDriverData != nil {
			volume.ReplicationDriverData = update.ReplicationDriverData
		}
		if updateErr := o.storeClient.UpdateVolume(ctx, volume); updateErr != nil {
			Logc(ctx).WithError(updateErr).WithField("volume", volume.ID).Error("Could not record failover of volume.")
			updateErrors = multierr.Append(updateErrors, updateErr)
		}
	}

	o.activeBackendID = activeBackendID
	if err = o.storeClient.UpdateBackendState(ctx, &persistentstore.BackendState{
		Name:            o.backendName,
		ActiveBackendID: activeBackendID,
	}); err != nil {
		updateErrors = multierr.Append(updateErrors, err)
	}
	o.updateMetrics(ctx)

	Logc(ctx).WithFields(LogFields{
		"backend":         o.backendName,
		"activeBackendID": activeBackendID,
		"volumes":         len(updates),
	}).Info("Backend failover complete.")

	if updateErrors != nil {
		return nil, fmt.Errorf("backend is now active on %s but records could not be updated: %w",
			activeBackendID, updateErrors)
	}
	return &FailoverResult{ActiveBackendID: activeBackendID, Updates: updates}, nil
}
