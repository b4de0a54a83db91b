// Copyright 2025 NetApp, Inc. All Rights Reserved.

package api

import (
	"context"
	"strconv"

	. "github.com/pmax-drivers/powermax/logging"
)

func deviceNames(deviceIDs []string) []deviceName {
	names := make([]deviceName, 0, len(deviceIDs))
	for _, id := range deviceIDs {
		names = append(names, deviceName{Name: id})
	}
	return names
}

func (c *Client) snapshotGenerationResource(array, snapName string, generation int) string {
	return c.replicationResource(array, "snapshot", snapName, "generation", strconv.Itoa(generation))
}

// CreateSnapshot takes a SnapVX snapshot of the source devices.  A zero TTL keeps the snapshot indefinitely.
func (c *Client) CreateSnapshot(
	ctx context.Context, array, snapName string, sourceDeviceIDs []string, ttlHours int,
) error {
	if err := c.checkArray(array); err != nil {
		return err
	}
	payload := createSnapshotParam{
		DeviceNameListSource: deviceNames(sourceDeviceIDs),
		ExecutionOption:      ExecutionAsync,
	}
	if ttlHours > 0 {
		payload.TimeToLive = ttlHours
		payload.TimeInHours = true
	}
	if err := c.post(ctx, c.replicationResource(array, "snapshot", snapName), payload, nil); err != nil {
		return err
	}

	Logc(ctx).WithFields(LogFields{
		"array":    array,
		"snapshot": snapName,
		"sources":  sourceDeviceIDs,
	}).Debug("Created SnapVX snapshot.")
	return nil
}

// GetVolumeSnapshotInfo lists the snapshot sessions the device takes part in.
func (c *Client) GetVolumeSnapshotInfo(ctx context.Context, array, deviceID string) (*VolumeSnapshotInfo, error) {
	if err := c.checkArray(array); err != nil {
		return nil, err
	}
	info := &VolumeSnapshotInfo{}
	if err := c.get(ctx, c.replicationResource(array, "volume", deviceID, "snapshot"), nil, info); err != nil {
		return nil, err
	}
	return info, nil
}

// GetVolumeSnapshot returns every generation of the named snapshot of the device.
func (c *Client) GetVolumeSnapshot(ctx context.Context, array, deviceID, snapName string) (*VolumeSnapshot, error) {
	if err := c.checkArray(array); err != nil {
		return nil, err
	}
	snap := &VolumeSnapshot{}
	if err := c.get(ctx, c.replicationResource(array, "volume", deviceID, "snapshot", snapName), nil,
		snap); err != nil {
		return nil, err
	}
	return snap, nil
}

func (c *Client) modifySnapshot(
	ctx context.Context, array, snapName string, generation int, payload modifySnapshotParam,
) error {
	if err := c.checkArray(array); err != nil {
		return err
	}
	payload.ExecutionOption = ExecutionAsync
	return c.put(ctx, c.snapshotGenerationResource(array, snapName, generation), payload, nil)
}

// LinkSnapshot presents a snapshot generation on target devices.  With copy set the targets become
// full copies that survive an unlink.
func (c *Client) LinkSnapshot(
	ctx context.Context, array, snapName string, generation int, sources, targets []string, copyMode bool,
) error {
	return c.modifySnapshot(ctx, array, snapName, generation, modifySnapshotParam{
		DeviceNameListSource: deviceNames(sources),
		DeviceNameListTarget: deviceNames(targets),
		Action:               SnapActionLink,
		Copy:                 copyMode,
	})
}

func (c *Client) UnlinkSnapshot(
	ctx context.Context, array, snapName string, generation int, sources, targets []string,
) error {
	return c.modifySnapshot(ctx, array, snapName, generation, modifySnapshotParam{
		DeviceNameListSource: deviceNames(sources),
		DeviceNameListTarget: deviceNames(targets),
		Action:               SnapActionUnlink,
	})
}

// RestoreSnapshot copies a snapshot generation back onto its source devices.
func (c *Client) RestoreSnapshot(
	ctx context.Context, array, snapName string, generation int, sources []string,
) error {
	return c.modifySnapshot(ctx, array, snapName, generation, modifySnapshotParam{
		DeviceNameListSource: deviceNames(sources),
		Action:               SnapActionRestore,
	})
}

func (c *Client) RenameSnapshot(
	ctx context.Context, array, snapName, newName string, generation int, sources []string,
) error {
	return c.modifySnapshot(ctx, array, snapName, generation, modifySnapshotParam{
		DeviceNameListSource: deviceNames(sources),
		Action:               SnapActionRename,
		NewSnapshotName:      newName,
	})
}

// DeleteSnapshot terminates one generation of a snapshot.
func (c *Client) DeleteSnapshot(
	ctx context.Context, array, snapName string, generation int, sources []string,
) error {
	if err := c.checkArray(array); err != nil {
		return err
	}
	payload := deleteSnapshotParam{
		DeviceNameListSource: deviceNames(sources),
		Generation:           generation,
	}
	return c.delete(ctx, c.snapshotGenerationResource(array, snapName, generation), payload)
}

// TerminateSnapshotRestore ends the restore session left behind by RestoreSnapshot.  The snapshot
// itself is kept.
func (c *Client) TerminateSnapshotRestore(
	ctx context.Context, array, snapName string, generation int, sources []string,
) error {
	if err := c.checkArray(array); err != nil {
		return err
	}
	payload := deleteSnapshotParam{
		DeviceNameListSource: deviceNames(sources),
		Generation:           generation,
		Restore:              true,
	}
	return c.delete(ctx, c.snapshotGenerationResource(array, snapName, generation), payload)
}
