// Copyright 2025 NetApp, Inc. All Rights Reserved.

package powermax

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"

	. "github.com/pmax-drivers/powermax/logging"
	"github.com/pmax-drivers/powermax/pkg/locks"
	drivers "github.com/pmax-drivers/powermax/storage_drivers"
	"github.com/pmax-drivers/powermax/storage_drivers/powermax/api"
	"github.com/pmax-drivers/powermax/utils/errors"
)

const linkedStateCopied = "Copied"

// provisioner issues array mutations under named locks, so concurrent requests for the same storage
// group, device or SRDF group are serialized.
type provisioner struct {
	api    api.PowerMaxAPI
	locks  locks.Locker
	config *drivers.PowerMaxStorageDriverConfig
}

func newProvisioner(client api.PowerMaxAPI, locker locks.Locker, config *drivers.PowerMaxStorageDriverConfig) *provisioner {
	return &provisioner{api: client, locks: locker, config: config}
}

func (p *provisioner) lock(ctx context.Context, array string, parts ...string) (*locks.LockedResource, error) {
	return p.locks.Lock(ctx, locks.Key(array, parts...))
}

func rdfGroupLockParts(rdfgNum int) []string {
	return []string{"rdfg", strconv.Itoa(rdfgNum)}
}

// pollBackOff returns the bounded constant backoff used while waiting on array state.
func (p *provisioner) pollBackOff(ctx context.Context) backoff.BackOff {
	interval := time.Duration(p.config.IntervalSeconds) * time.Second
	retries := uint64(p.config.Retries)
	return backoff.WithContext(backoff.WithMaxRetries(backoff.NewConstantBackOff(interval), retries), ctx)
}

// CreateStorageGroup returns the named storage group, creating it only when it does not exist.
func (p *provisioner) CreateStorageGroup(
	ctx context.Context, array, sgName, srp, slo, workload string, disableCompression bool,
) (*api.StorageGroup, error) {
	lock, err := p.lock(ctx, array, sgName)
	if err != nil {
		return nil, err
	}
	defer lock.Unlock()

	sg, err := p.api.GetStorageGroup(ctx, array, sgName)
	if err == nil {
		return sg, nil
	} else if !errors.IsNotFoundError(err) {
		return nil, err
	}

	sg, err = p.api.CreateStorageGroup(ctx, array, sgName, srp, slo, workload, disableCompression)
	if errors.IsAlreadyExistsError(err) {
		return p.api.GetStorageGroup(ctx, array, sgName)
	}
	return sg, err
}

// GetOrCreateDefaultStorageGroup returns the storage group unattached volumes of a placement live in.
// An existing group with a different placement is refused rather than reused.
func (p *provisioner) GetOrCreateDefaultStorageGroup(
	ctx context.Context, array string, spec *ExtraSpecs,
) (*api.StorageGroup, error) {
	name := spec.defaultStorageGroupName()
	sg, err := p.CreateStorageGroup(ctx, array, name, spec.SRP, spec.SLO, spec.Workload, spec.DisableCompression)
	if err != nil {
		return nil, err
	}

	if spec.SLO != "" {
		if !strings.EqualFold(sg.SLO, spec.SLO) {
			return nil, errors.UnsupportedConfigError("storage group %s has service level %s, expected %s",
				name, sg.SLO, spec.SLO)
		}
		if sg.SRP != "" && !strings.EqualFold(sg.SRP, spec.SRP) {
			return nil, errors.UnsupportedConfigError("storage group %s is in SRP %s, expected %s",
				name, sg.SRP, spec.SRP)
		}
		if spec.Workload != "" && !strings.EqualFold(spec.Workload, workloadNone) && sg.Workload != "" &&
			!strings.EqualFold(sg.Workload, spec.Workload) {
			return nil, errors.UnsupportedConfigError("storage group %s has workload %s, expected %s",
				name, sg.Workload, spec.Workload)
		}
	}
	return sg, nil
}

// CreateVolumeFromStorageGroup creates a device in a storage group and returns its ID.  If the create
// job fails after the device was made, the device carrying the identifier is adopted.
func (p *provisioner) CreateVolumeFromStorageGroup(
	ctx context.Context, array, identifier, sgName string, sizeGiB int64,
) (string, error) {
	lock, err := p.lock(ctx, array, sgName)
	if err != nil {
		return "", err
	}
	defer lock.Unlock()

	volume, err := p.api.CreateVolumeInStorageGroup(ctx, array, sgName, identifier, sizeGiB)
	if err == nil {
		return volume.VolumeID, nil
	}

	ids, findErr := p.api.FindVolumeIDsByIdentifier(ctx, array, identifier)
	if findErr != nil || len(ids) == 0 {
		return "", err
	}
	sort.Strings(ids)
	deviceID := ids[len(ids)-1]
	Logc(ctx).WithError(err).WithFields(LogFields{
		"identifier": identifier,
		"device":     deviceID,
	}).Warning("Volume creation reported an error but the device exists; using it.")
	return deviceID, nil
}

// DeleteVolumeFromSRP releases the allocated tracks of a device and deletes it.  A device that is
// already gone is not an error.
func (p *provisioner) DeleteVolumeFromSRP(ctx context.Context, array, deviceID, identifier string) error {
	lock, err := p.lock(ctx, array, deviceID)
	if err != nil {
		return err
	}
	defer lock.Unlock()

	fields := LogFields{"array": array, "device": deviceID, "identifier": identifier}
	if err := p.api.DeallocateVolume(ctx, array, deviceID); err != nil {
		if errors.IsNotFoundError(err) {
			Logc(ctx).WithFields(fields).Warning("Device not found, nothing to delete.")
			return nil
		}
		return fmt.Errorf("could not deallocate device %s; %w", deviceID, err)
	}
	if err := p.api.DeleteVolume(ctx, array, deviceID); err != nil && !errors.IsNotFoundError(err) {
		return fmt.Errorf("could not delete device %s; %w", deviceID, err)
	}
	Logc(ctx).WithFields(fields).Debug("Deleted device.")
	return nil
}

// ExtendVolume grows a device.  A non-zero rdfgNum extends both sides of an SRDF pair in place.
func (p *provisioner) ExtendVolume(ctx context.Context, array, deviceID string, newSizeGiB int64, rdfgNum int) error {
	lock, err := p.lock(ctx, array, deviceID)
	if err != nil {
		return err
	}
	defer lock.Unlock()

	return p.api.ExtendVolume(ctx, array, deviceID, newSizeGiB, rdfgNum)
}

// AddVolumeToStorageGroup adds a device to a storage group unless it is already a member.
func (p *provisioner) AddVolumeToStorageGroup(ctx context.Context, array, deviceID, sgName string, force bool) error {
	lock, err := p.lock(ctx, array, sgName)
	if err != nil {
		return err
	}
	defer lock.Unlock()

	volume, err := p.api.GetVolume(ctx, array, deviceID)
	if err != nil {
		return err
	}
	for _, member := range volume.StorageGroupIDs {
		if member == sgName {
			Logc(ctx).WithFields(LogFields{"device": deviceID, "storageGroup": sgName}).Debug(
				"Device is already in storage group.")
			return nil
		}
	}
	return p.api.AddVolumesToStorageGroup(ctx, array, sgName, force, deviceID)
}

func (p *provisioner) RemoveVolumeFromStorageGroup(
	ctx context.Context, array, deviceID, sgName string, force bool,
) error {
	lock, err := p.lock(ctx, array, sgName)
	if err != nil {
		return err
	}
	defer lock.Unlock()

	if err := p.api.RemoveVolumesFromStorageGroup(ctx, array, sgName, force, deviceID); err != nil &&
		!errors.IsNotFoundError(err) {
		return err
	}
	return nil
}

// MoveVolumeBetweenStorageGroups moves a device atomically.  Both group locks are taken in name order.
func (p *provisioner) MoveVolumeBetweenStorageGroups(
	ctx context.Context, array, deviceID, source, target string, force bool,
) error {
	if source == target {
		return nil
	}
	names := []string{source, target}
	sort.Strings(names)
	for _, name := range names {
		lock, err := p.lock(ctx, array, name)
		if err != nil {
			return err
		}
		defer lock.Unlock()
	}

	return p.api.MoveVolumesToStorageGroup(ctx, array, source, target, force, deviceID)
}

// CreateVolumeSnapVX takes a SnapVX snapshot of a device.
func (p *provisioner) CreateVolumeSnapVX(ctx context.Context, array, sourceDeviceID, snapName string) error {
	lock, err := p.lock(ctx, array, sourceDeviceID)
	if err != nil {
		return err
	}
	defer lock.Unlock()

	return p.api.CreateSnapshot(ctx, array, snapName, []string{sourceDeviceID}, 0)
}

// CreateVolumeReplica links generation 0 of a snapshot to a target device.
func (p *provisioner) CreateVolumeReplica(
	ctx context.Context, array, sourceDeviceID, targetDeviceID, snapName string, copyMode bool,
) error {
	lock, err := p.lock(ctx, array, sourceDeviceID)
	if err != nil {
		return err
	}
	defer lock.Unlock()

	return p.api.LinkSnapshot(ctx, array, snapName, 0, []string{sourceDeviceID}, []string{targetDeviceID},
		copyMode)
}

// getGeneration returns the requested generation of a device's snapshot.
func (p *provisioner) getGeneration(
	ctx context.Context, array, sourceDeviceID, snapName string, generation int,
) (*api.SnapshotGeneration, error) {
	snapshot, err := p.api.GetVolumeSnapshot(ctx, array, sourceDeviceID, snapName)
	if err != nil {
		return nil, err
	}
	for i := range snapshot.Generations {
		if snapshot.Generations[i].Generation == generation {
			return &snapshot.Generations[i], nil
		}
	}
	return nil, errors.NotFoundError("generation %d of snapshot %s on device %s not found", generation, snapName,
		sourceDeviceID)
}

// linkedDeviceCount returns the number of targets linked to any generation of a snapshot.
func (p *provisioner) linkedDeviceCount(ctx context.Context, array, sourceDeviceID, snapName string) (int, error) {
	snapshot, err := p.api.GetVolumeSnapshot(ctx, array, sourceDeviceID, snapName)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, generation := range snapshot.Generations {
		count += len(generation.LinkedDevices)
	}
	return count, nil
}

// waitForCopy polls a linked target until its background copy is complete.
func (p *provisioner) waitForCopy(
	ctx context.Context, array, sourceDeviceID, targetDeviceID, snapName string, generation int,
) error {
	checkCopied := func() error {
		gen, err := p.getGeneration(ctx, array, sourceDeviceID, snapName, generation)
		if err != nil {
			if errors.IsNotFoundError(err) {
				return backoff.Permanent(err)
			}
			return err
		}
		for _, linked := range gen.LinkedDevices {
			if linked.TargetDevice != targetDeviceID {
				continue
			}
			if linked.State == linkedStateCopied || linked.PercentageCopied >= 100 {
				return nil
			}
			return fmt.Errorf("target %s is %d%% copied", targetDeviceID, linked.PercentageCopied)
		}
		// Not linked any more, so nothing is left to copy.
		return nil
	}
	notify := func(err error, duration time.Duration) {
		Logc(ctx).WithFields(LogFields{
			"snapshot":  snapName,
			"target":    targetDeviceID,
			"increment": duration,
		}).Debugf("Waiting for SnapVX copy; %v", err)
	}

	if err := backoff.RetryNotify(checkCopied, p.pollBackOff(ctx), notify); err != nil {
		if errors.IsNotFoundError(err) {
			return nil
		}
		return errors.MaxWaitExceededError("SnapVX copy of %s to %s did not complete; %v", sourceDeviceID,
			targetDeviceID, err)
	}
	return nil
}

// BreakReplicationRelationship unlinks a target from a snapshot, optionally after its copy completes.
// A temporary snapshot with no remaining links is deleted.
func (p *provisioner) BreakReplicationRelationship(
	ctx context.Context, array, targetDeviceID, sourceDeviceID, snapName string, generation int, wait bool,
) error {
	if wait {
		if err := p.waitForCopy(ctx, array, sourceDeviceID, targetDeviceID, snapName, generation); err != nil {
			return err
		}
	}

	lock, err := p.lock(ctx, array, sourceDeviceID)
	if err != nil {
		return err
	}
	defer lock.Unlock()

	if err := p.api.UnlinkSnapshot(ctx, array, snapName, generation, []string{sourceDeviceID},
		[]string{targetDeviceID}); err != nil && !errors.IsNotFoundError(err) {
		return fmt.Errorf("could not unlink %s from snapshot %s; %w", targetDeviceID, snapName, err)
	}

	if isTempSnapshot(snapName) {
		return p.deleteSnapshotIfUnlinked(ctx, array, sourceDeviceID, snapName, generation)
	}
	return nil
}

// deleteSnapshotIfUnlinked must be called with the source device lock held.
func (p *provisioner) deleteSnapshotIfUnlinked(
	ctx context.Context, array, sourceDeviceID, snapName string, generation int,
) error {
	count, err := p.linkedDeviceCount(ctx, array, sourceDeviceID, snapName)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil
		}
		return err
	}
	if count > 0 {
		return nil
	}
	if err := p.api.DeleteSnapshot(ctx, array, snapName, generation, []string{sourceDeviceID}); err != nil &&
		!errors.IsNotFoundError(err) {
		return err
	}
	return nil
}

// DeleteVolumeSnap terminates a snapshot generation.  A snapshot that still has linked targets is in use.
func (p *provisioner) DeleteVolumeSnap(
	ctx context.Context, array, snapName, sourceDeviceID string, generation int,
) error {
	lock, err := p.lock(ctx, array, sourceDeviceID)
	if err != nil {
		return err
	}
	defer lock.Unlock()

	gen, err := p.getGeneration(ctx, array, sourceDeviceID, snapName, generation)
	if err != nil {
		if errors.IsNotFoundError(err) {
			Logc(ctx).WithFields(LogFields{"snapshot": snapName, "device": sourceDeviceID}).Warning(
				"Snapshot not found, nothing to delete.")
			return nil
		}
		return err
	}
	if len(gen.LinkedDevices) > 0 {
		return errors.ResourceInUseError("snapshot %s of device %s has %d linked targets", snapName,
			sourceDeviceID, len(gen.LinkedDevices))
	}
	return p.api.DeleteSnapshot(ctx, array, snapName, generation, []string{sourceDeviceID})
}

// RevertVolumeSnapshot restores a device from its snapshot and ends the restore session once the
// array reports it restored.
func (p *provisioner) RevertVolumeSnapshot(
	ctx context.Context, array, sourceDeviceID, snapName string, generation int,
) error {
	lock, err := p.lock(ctx, array, sourceDeviceID)
	if err != nil {
		return err
	}
	defer lock.Unlock()

	if err := p.api.RestoreSnapshot(ctx, array, snapName, generation, []string{sourceDeviceID}); err != nil {
		return err
	}
	if err := p.waitForRestoreComplete(ctx, array, sourceDeviceID, snapName, generation); err != nil {
		return err
	}
	return p.api.TerminateSnapshotRestore(ctx, array, snapName, generation, []string{sourceDeviceID})
}

func (p *provisioner) waitForRestoreComplete(
	ctx context.Context, array, sourceDeviceID, snapName string, generation int,
) error {
	checkRestored := func() error {
		gen, err := p.getGeneration(ctx, array, sourceDeviceID, snapName, generation)
		if err != nil {
			if errors.IsNotFoundError(err) {
				return backoff.Permanent(err)
			}
			return err
		}
		if gen.Restored {
			return nil
		}
		for _, state := range gen.State {
			if strings.EqualFold(state, "Restored") {
				return nil
			}
		}
		return fmt.Errorf("snapshot %s restore in progress", snapName)
	}

	if err := backoff.Retry(checkRestored, p.pollBackOff(ctx)); err != nil {
		if errors.IsNotFoundError(err) {
			return err
		}
		return errors.MaxWaitExceededError("restore of device %s from snapshot %s did not complete; %v",
			sourceDeviceID, snapName, err)
	}
	return nil
}

// CleanupSnapVXSessions prepares a device for deletion: it is unlinked from any snapshot it is a
// target of, and temporary clone snapshots it is the source of are terminated.  A device that still
// has user snapshots is in use.
func (p *provisioner) CleanupSnapVXSessions(ctx context.Context, array, deviceID string) error {
	info, err := p.api.GetVolumeSnapshotInfo(ctx, array, deviceID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil
		}
		return err
	}

	for _, link := range info.SnapshotLinks {
		if err := p.BreakReplicationRelationship(ctx, array, deviceID, link.LinkSourceName, link.SnapshotName,
			link.Generation, false); err != nil {
			return err
		}
	}

	for _, source := range info.SnapshotSources {
		if !isTempSnapshot(source.SnapshotName) {
			return errors.ResourceInUseError("device %s has snapshot %s", deviceID, source.SnapshotName)
		}
		for _, linked := range source.LinkedDevices {
			if err := p.BreakReplicationRelationship(ctx, array, linked.TargetDevice, deviceID,
				source.SnapshotName, source.Generation, true); err != nil {
				return err
			}
		}
		if len(source.LinkedDevices) == 0 {
			if err := p.DeleteVolumeSnap(ctx, array, source.SnapshotName, deviceID, source.Generation); err != nil {
				return err
			}
		}
	}
	return nil
}

// UnlinkCopiedTargets unlinks every target of a source device's snapshots whose background copy is
// complete.  Temporary snapshots left without links are deleted.
func (p *provisioner) UnlinkCopiedTargets(ctx context.Context, array, sourceDeviceID string) error {
	info, err := p.api.GetVolumeSnapshotInfo(ctx, array, sourceDeviceID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil
		}
		return err
	}

	for _, source := range info.SnapshotSources {
		for _, linked := range source.LinkedDevices {
			if linked.State != linkedStateCopied && linked.PercentageCopied < 100 {
				continue
			}
			if err := p.BreakReplicationRelationship(ctx, array, linked.TargetDevice, sourceDeviceID,
				source.SnapshotName, source.Generation, false); err != nil {
				return err
			}
			Logc(ctx).WithFields(LogFields{
				"snapshot": source.SnapshotName,
				"source":   sourceDeviceID,
				"target":   linked.TargetDevice,
			}).Debug("Unlinked fully copied target.")
		}
	}
	return nil
}

// GetRDFGroupNumber resolves an SRDF group label to its number.
func (p *provisioner) GetRDFGroupNumber(ctx context.Context, array, label string) (int, error) {
	group, err := p.api.GetRDFGroupByLabel(ctx, array, label)
	if err != nil {
		return 0, err
	}
	return group.RDFGroupNumber, nil
}

// rdfAPIMode translates a configured replication mode to the mode Unisphere expects.
func rdfAPIMode(mode string) string {
	switch mode {
	case drivers.ReplicationModeAsynchronous:
		return api.RDFModeAsynchronous
	case drivers.ReplicationModeMetro:
		return api.RDFModeActive
	default:
		return api.RDFModeSynchronous
	}
}

// CreateRDFDevicePair pairs a local and a remote device in an SRDF group and starts synchronization.
func (p *provisioner) CreateRDFDevicePair(
	ctx context.Context, array string, rdfgNum int, localDeviceID, remoteDeviceID, mode string,
) error {
	lock, err := p.lock(ctx, array, rdfGroupLockParts(rdfgNum)...)
	if err != nil {
		return err
	}
	defer lock.Unlock()

	exempt := mode == drivers.ReplicationModeAsynchronous || mode == drivers.ReplicationModeMetro
	return p.api.CreateRDFPair(ctx, array, rdfgNum, localDeviceID, remoteDeviceID, rdfAPIMode(mode), true, exempt)
}

func isRDFStateSuspended(state string) bool {
	switch state {
	case api.RDFStateSuspended, api.RDFStateSplit, api.RDFStateFailedOver, api.RDFStatePartitioned:
		return true
	}
	return false
}

// BreakRDFRelationship suspends the pair of a device, unless already suspended, and deletes it.
func (p *provisioner) BreakRDFRelationship(
	ctx context.Context, array string, rdfgNum int, deviceID, mode string,
) error {
	lock, err := p.lock(ctx, array, rdfGroupLockParts(rdfgNum)...)
	if err != nil {
		return err
	}
	defer lock.Unlock()

	pair, err := p.api.GetRDFDevicePair(ctx, array, rdfgNum, deviceID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil
		}
		return err
	}

	if !isRDFStateSuspended(pair.RDFPairState) {
		opts := &api.RDFActionOptions{}
		if mode == drivers.ReplicationModeMetro || mode == drivers.ReplicationModeAsynchronous {
			opts.Force = true
		}
		if err := p.api.ModifyDeviceRDFState(ctx, array, rdfgNum, deviceID, api.RDFActionSuspend, opts); err != nil {
			return fmt.Errorf("could not suspend SRDF pair of device %s; %w", deviceID, err)
		}
	}
	if err := p.api.DeleteRDFPair(ctx, array, rdfgNum, deviceID); err != nil && !errors.IsNotFoundError(err) {
		return fmt.Errorf("could not delete SRDF pair of device %s; %w", deviceID, err)
	}
	return nil
}

// FailoverStorageGroup fails over, or fails back, every pair of a storage group.  Metro pairs are
// suspended on failover and re-established on failback.  Pairs already in the requested state are
// left alone.
func (p *provisioner) FailoverStorageGroup(
	ctx context.Context, array, sgName string, rdfgNum int, mode string, failover bool,
) error {
	lock, err := p.lock(ctx, array, rdfGroupLockParts(rdfgNum)...)
	if err != nil {
		return err
	}
	defer lock.Unlock()

	info, err := p.api.GetStorageGroupRDFInfo(ctx, array, sgName, rdfgNum)
	if err != nil {
		return err
	}

	action, done := failoverAction(mode, failover, info.States)
	fields := LogFields{"storageGroup": sgName, "rdfGroup": rdfgNum, "states": info.States, "action": action}
	if done {
		Logc(ctx).WithFields(fields).Debug("Storage group already in requested SRDF state.")
		return nil
	}

	opts := &api.RDFActionOptions{}
	if mode == drivers.ReplicationModeMetro {
		opts.Force = true
		opts.SymForce = !failover
	}
	Logc(ctx).WithFields(fields).Info("Changing SRDF state of storage group.")
	return p.api.ModifyStorageGroupRDFState(ctx, array, sgName, rdfgNum, action, opts)
}

// failoverAction picks the SRDF action for a failover or failback and reports whether every pair is
// already in the resulting state.
func failoverAction(mode string, failover bool, states []string) (string, bool) {
	var action string
	var targetStates []string
	switch {
	case mode == drivers.ReplicationModeMetro && failover:
		action, targetStates = api.RDFActionSuspend, []string{api.RDFStateSuspended}
	case mode == drivers.ReplicationModeMetro:
		action, targetStates = api.RDFActionEstablish, []string{api.RDFStateActiveActive, api.RDFStateActiveBias}
	case failover:
		action, targetStates = api.RDFActionFailover, []string{api.RDFStateFailedOver}
	default:
		action = api.RDFActionFailback
		targetStates = []string{api.RDFStateSynchronized, api.RDFStateConsistent, api.RDFStateSyncInProg}
	}

	if len(states) == 0 {
		return action, false
	}
	for _, state := range states {
		matched := false
		for _, target := range targetStates {
			if strings.EqualFold(state, target) {
				matched = true
				break
			}
		}
		if !matched {
			return action, false
		}
	}
	return action, true
}
