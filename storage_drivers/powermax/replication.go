// Copyright 2025 NetApp, Inc. All Rights Reserved.

package powermax

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"

	. "github.com/pmax-drivers/powermax/logging"
	"github.com/pmax-drivers/powermax/storage"
	drivers "github.com/pmax-drivers/powermax/storage_drivers"
	"github.com/pmax-drivers/powermax/storage_drivers/powermax/api"
	"github.com/pmax-drivers/powermax/utils/errors"
)

// remoteExtraSpecs places the remote half of a pair on the replication target.
func (d *SANStorageDriver) remoteExtraSpecs(spec *ExtraSpecs) *ExtraSpecs {
	rep := d.Config.Replication
	remote := *spec
	remote.Array = rep.TargetArray
	remote.SRP = rep.RemotePool
	remote.PortGroups = rep.RemotePortGroups
	return &remote
}

// rdfSyncedStates returns the pair states that mean a pair of the mode is replicating.
func rdfSyncedStates(mode string) []string {
	switch mode {
	case drivers.ReplicationModeAsynchronous:
		return []string{api.RDFStateConsistent}
	case drivers.ReplicationModeMetro:
		return []string{api.RDFStateActiveActive, api.RDFStateActiveBias}
	default:
		return []string{api.RDFStateSynchronized}
	}
}

// waitForRDFState polls a device pair until it reaches a replicating state of its mode.
func (d *SANStorageDriver) waitForRDFState(
	ctx context.Context, array string, rdfgNum int, deviceID, mode string,
) error {
	rep := d.Config.Replication
	wanted := rdfSyncedStates(mode)

	checkState := func() error {
		pair, err := d.API.GetRDFDevicePair(ctx, array, rdfgNum, deviceID)
		if err != nil {
			return err
		}
		for _, state := range wanted {
			if strings.EqualFold(pair.RDFPairState, state) {
				return nil
			}
		}
		return fmt.Errorf("SRDF pair of %s is %s", deviceID, pair.RDFPairState)
	}
	notify := func(err error, duration time.Duration) {
		Logc(ctx).WithFields(LogFields{
			"device":    deviceID,
			"rdfGroup":  rdfgNum,
			"increment": duration,
		}).Debugf("Waiting for SRDF pair; %v", err)
	}

	interval := time.Duration(rep.SyncInterval) * time.Second
	b := backoff.WithContext(backoff.WithMaxRetries(backoff.NewConstantBackOff(interval), uint64(rep.SyncRetries)),
		ctx)
	if err := backoff.RetryNotify(checkState, b, notify); err != nil {
		return errors.MaxWaitExceededError("SRDF pair of device %s did not reach %s; %v", deviceID,
			strings.Join(wanted, " or "), err)
	}
	return nil
}

// setupVolumeReplication creates the remote device of a volume and pairs it with the local device.
// A failure removes the remote device again.
func (d *SANStorageDriver) setupVolumeReplication(
	ctx context.Context, spec *ExtraSpecs, deviceID, identifier string, sizeGiB int64,
) (*storage.ReplicationDriverData, error) {
	rep := d.Config.Replication
	remote := d.remoteExtraSpecs(spec)

	sg, err := d.provision.GetOrCreateDefaultStorageGroup(ctx, remote.Array, remote)
	if err != nil {
		return nil, fmt.Errorf("could not prepare remote storage group; %w", err)
	}
	remoteDeviceID, err := d.provision.CreateVolumeFromStorageGroup(ctx, remote.Array, identifier,
		sg.StorageGroupID, sizeGiB)
	if err != nil {
		return nil, fmt.Errorf("could not create remote device; %w", err)
	}

	cleanup := func(cause error) error {
		if err := d.masking.RemoveVolumeFromAllStorageGroups(ctx, remote.Array, remoteDeviceID); err != nil {
			Logc(ctx).WithError(err).WithField("device", remoteDeviceID).Warning(
				"Could not remove remote device from storage groups.")
		}
		if err := d.provision.DeleteVolumeFromSRP(ctx, remote.Array, remoteDeviceID, identifier); err != nil {
			Logc(ctx).WithError(err).WithField("device", remoteDeviceID).Error("Could not delete remote device.")
		}
		return cause
	}

	if err = d.provision.CreateRDFDevicePair(ctx, spec.Array, d.rdfGroupNum, deviceID, remoteDeviceID,
		rep.Mode); err != nil {
		return nil, cleanup(fmt.Errorf("could not create SRDF pair; %w", err))
	}
	if err = d.waitForRDFState(ctx, spec.Array, d.rdfGroupNum, deviceID, rep.Mode); err != nil {
		if breakErr := d.provision.BreakRDFRelationship(ctx, spec.Array, d.rdfGroupNum, deviceID,
			rep.Mode); breakErr != nil {
			Logc(ctx).WithError(breakErr).Error("Could not break SRDF pair.")
		}
		return nil, cleanup(err)
	}

	Logc(ctx).WithFields(LogFields{
		"device":       deviceID,
		"remoteDevice": remoteDeviceID,
		"rdfGroup":     d.rdfGroupNum,
		"mode":         rep.Mode,
	}).Info("Volume replication established.")

	return &storage.ReplicationDriverData{
		DeviceID:    remoteDeviceID,
		Array:       remote.Array,
		RDFGroupNum: d.rdfGroupNum,
		Mode:        rep.Mode,
	}, nil
}

// primaryLocation returns the R1 half of a replicated volume, whose location depends on whether the
// volume has been failed over.
func primaryLocation(volume *storage.Volume, failedOver bool) (array, deviceID string) {
	if failedOver && volume.ReplicationDriverData != nil {
		return volume.ReplicationDriverData.Array, volume.ReplicationDriverData.DeviceID
	}
	if volume.ProviderLocation == nil {
		return "", ""
	}
	return volume.ProviderLocation.Array, volume.ProviderLocation.DeviceID
}

// secondaryLocation returns the R2 half of a replicated volume.
func secondaryLocation(volume *storage.Volume, failedOver bool) (array, deviceID string) {
	if failedOver && volume.ProviderLocation != nil {
		return volume.ProviderLocation.Array, volume.ProviderLocation.DeviceID
	}
	if volume.ReplicationDriverData == nil {
		return "", ""
	}
	return volume.ReplicationDriverData.Array, volume.ReplicationDriverData.DeviceID
}

// breakRDFRelationship deletes the SRDF pair of a volume and, with deleteRemote, the remote device.
func (d *SANStorageDriver) breakRDFRelationship(
	ctx context.Context, volume *storage.Volume, spec *ExtraSpecs, deleteRemote bool,
) error {
	data := volume.ReplicationDriverData
	if data == nil {
		return nil
	}
	failedOver := d.isFailedOver()
	r1Array, r1Device := primaryLocation(volume, failedOver)
	r2Array, r2Device := secondaryLocation(volume, failedOver)

	if err := d.provision.BreakRDFRelationship(ctx, r1Array, data.RDFGroupNum, r1Device, data.Mode); err != nil {
		return err
	}
	if !deleteRemote {
		return nil
	}

	remote := d.remoteExtraSpecs(spec)
	remote.Array = r2Array
	if data.Mode == drivers.ReplicationModeMetro {
		if err := d.masking.RemoveAndResetMembers(ctx, r2Array, r2Device, remote, nil, false); err != nil &&
			!errors.IsNotFoundError(err) {
			return err
		}
	}
	if err := d.masking.RemoveVolumeFromAllStorageGroups(ctx, r2Array, r2Device); err != nil {
		if errors.IsNotFoundError(err) {
			return nil
		}
		return err
	}
	return d.provision.DeleteVolumeFromSRP(ctx, r2Array, r2Device, d.volumeIdentifier(volume))
}

// failoverVolumeGroup fails over, or fails back, the SRDF pairs of one storage group.
func (d *SANStorageDriver) failoverVolumeGroup(ctx context.Context, array, sgName string, failover bool) error {
	return d.provision.FailoverStorageGroup(ctx, array, sgName, d.rdfGroupNum, d.Config.Replication.Mode, failover)
}

// FailoverHost fails the replicated volumes over to the replication target, or back to the primary
// array when secondaryID is "default".  It returns the active backend ID and an update per volume.
func (d *SANStorageDriver) FailoverHost(
	ctx context.Context, volumes []*storage.Volume, secondaryID string,
) (string, []*storage.VolumeUpdate, error) {
	failback := secondaryID == storage.FailbackBackendID
	workflow := WorkflowReplicationFailover
	if failback {
		workflow = WorkflowReplicationFailback
	}
	ctx = GenerateRequestContextForLayer(ctx, LogLayerPowerMaxDriver)
	fields := LogFields{"Method": "FailoverHost", "Type": "SANStorageDriver", "secondaryID": secondaryID,
		"workflow": workflow}
	Logd(ctx, d.Name(), d.Config.DebugTraceFlags["method"]).WithFields(fields).Trace(">>>> FailoverHost")
	defer Logd(ctx, d.Name(), d.Config.DebugTraceFlags["method"]).WithFields(fields).Trace("<<<< FailoverHost")

	if !d.Config.IsReplicated() {
		return "", nil, errors.UnsupportedError("backend %s has no replication target", d.BackendName())
	}
	rep := d.Config.Replication
	if !failback && secondaryID != "" && secondaryID != rep.TargetArray {
		return "", nil, errors.InvalidInputError("unknown replication target %s", secondaryID)
	}

	failedOver := d.isFailedOver()
	if failback != failedOver {
		Logc(ctx).WithField("failedOver", failedOver).Warning("Backend is already in the requested state.")
		return d.activeBackendID(), nil, nil
	}

	// The pairs are driven from the primary array in both directions.
	groups := make(map[string][]*storage.Volume)
	groupErrors := make(map[string]error)
	var unreplicated []*storage.Volume
	for _, volume := range volumes {
		if volume.ReplicationDriverData == nil {
			unreplicated = append(unreplicated, volume)
			continue
		}
		array, deviceID := primaryLocation(volume, failedOver)
		sgName, err := d.replicatedStorageGroup(ctx, array, deviceID)
		if err != nil {
			Logc(ctx).WithError(err).WithField("volume", volume.ID).Error("Could not find storage group of volume.")
			groupErrors[volume.ID] = err
			groups[volume.ID] = []*storage.Volume{volume}
			continue
		}
		groups[sgName] = append(groups[sgName], volume)
	}

	names := make([]string, 0, len(groups))
	for name := range groups {
		if _, failed := groupErrors[name]; !failed {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	var mu sync.Mutex
	tasks := make([]func(context.Context) error, 0, len(names))
	for _, name := range names {
		name := name
		tasks = append(tasks, func(ctx context.Context) error {
			err := d.failoverVolumeGroup(ctx, d.Config.Array, name, !failback)
			if err != nil {
				mu.Lock()
				groupErrors[name] = err
				mu.Unlock()
			}
			return err
		})
	}
	if err := d.pool.RunAll(ctx, tasks...); err != nil {
		Logc(ctx).WithError(err).Error("Some storage groups could not be failed over.")
	}

	updates := make([]*storage.VolumeUpdate, 0, len(volumes))
	for name, members := range groups {
		_, failed := groupErrors[name]
		for _, volume := range members {
			updates = append(updates, failoverUpdate(volume, failback, failed))
		}
	}
	for _, volume := range unreplicated {
		status := storage.ReplicationStatusError
		if failback {
			status = storage.ReplicationStatusDisabled
		}
		updates = append(updates, &storage.VolumeUpdate{VolumeID: volume.ID, ReplicationStatus: status})
	}
	sort.Slice(updates, func(i, j int) bool { return updates[i].VolumeID < updates[j].VolumeID })

	d.m.Lock()
	d.failedOver = !failback
	d.m.Unlock()

	Logc(ctx).WithFields(LogFields{
		"activeBackendID": d.activeBackendID(),
		"volumes":         len(updates),
		"failedGroups":    len(groupErrors),
	}).Info("Replication failover complete.")
	return d.activeBackendID(), updates, nil
}

// failoverUpdate swaps the provider location and replication data of a volume whose group moved.
func failoverUpdate(volume *storage.Volume, failback, failed bool) *storage.VolumeUpdate {
	if failed {
		return &storage.VolumeUpdate{VolumeID: volume.ID, ReplicationStatus: storage.ReplicationStatusError}
	}
	data := volume.ReplicationDriverData
	status := storage.ReplicationStatusFailedOver
	if failback {
		status = storage.ReplicationStatusEnabled
	}
	update := &storage.VolumeUpdate{
		VolumeID:          volume.ID,
		ReplicationStatus: status,
		ProviderLocation:  &storage.ProviderLocation{DeviceID: data.DeviceID, Array: data.Array},
	}
	if volume.ProviderLocation != nil {
		update.ReplicationDriverData = &storage.ReplicationDriverData{
			DeviceID:    volume.ProviderLocation.DeviceID,
			Array:       volume.ProviderLocation.Array,
			RDFGroupNum: data.RDFGroupNum,
			Mode:        data.Mode,
		}
	}
	return update
}

// replicatedStorageGroup returns the storage group holding a device on the primary array.
func (d *SANStorageDriver) replicatedStorageGroup(ctx context.Context, array, deviceID string) (string, error) {
	volume, err := d.API.GetVolume(ctx, array, deviceID)
	if err != nil {
		return "", err
	}
	if len(volume.StorageGroupIDs) == 0 {
		return "", errors.NotFoundError("device %s is in no storage group", deviceID)
	}
	sgs := append([]string(nil), volume.StorageGroupIDs...)
	sort.Strings(sgs)
	return sgs[0], nil
}

// GetReplicationStatus reports the SRDF state of a volume.
func (d *SANStorageDriver) GetReplicationStatus(
	ctx context.Context, volume *storage.Volume,
) (storage.ReplicationStatus, error) {
	if !d.Config.IsReplicated() {
		return storage.ReplicationStatusNotCapable, nil
	}
	data := volume.ReplicationDriverData
	if data == nil {
		return storage.ReplicationStatusDisabled, nil
	}

	failedOver := d.isFailedOver()
	array, deviceID := primaryLocation(volume, failedOver)
	pair, err := d.API.GetRDFDevicePair(ctx, array, data.RDFGroupNum, deviceID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return storage.ReplicationStatusError, nil
		}
		return storage.ReplicationStatusError, err
	}

	switch pair.RDFPairState {
	case api.RDFStateFailedOver:
		return storage.ReplicationStatusFailedOver, nil
	case api.RDFStateSynchronized, api.RDFStateConsistent, api.RDFStateActiveActive, api.RDFStateActiveBias,
		api.RDFStateSyncInProg:
		if failedOver {
			return storage.ReplicationStatusFailedOver, nil
		}
		return storage.ReplicationStatusEnabled, nil
	case api.RDFStateSuspended:
		if failedOver && data.Mode == drivers.ReplicationModeMetro {
			return storage.ReplicationStatusFailedOver, nil
		}
		return storage.ReplicationStatusError, nil
	default:
		return storage.ReplicationStatusError, nil
	}
}
