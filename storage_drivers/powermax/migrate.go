// Copyright 2025 NetApp, Inc. All Rights Reserved.

package powermax

import (
	"context"

	. "github.com/pmax-drivers/powermax/logging"
	"github.com/pmax-drivers/powermax/storage"
	"github.com/pmax-drivers/powermax/storage_drivers/powermax/api"
	"github.com/pmax-drivers/powermax/utils/errors"
)

// legacyCandidate is a masking view that maps a non-cascaded storage group directly.
type legacyCandidate struct {
	maskingView  *api.MaskingView
	storageGroup *api.StorageGroup
}

// findLegacyCandidate looks for a legacy masking view of the connector's host that maps the device.
func (m *masking) findLegacyCandidate(
	ctx context.Context, array, deviceID string, spec *ExtraSpecs, connector *storage.Connector,
) (*legacyCandidate, error) {
	volume, err := m.api.GetVolume(ctx, array, deviceID)
	if err != nil {
		return nil, err
	}
	if len(volume.StorageGroupIDs) != 1 {
		return nil, nil
	}

	sg, err := m.api.GetStorageGroup(ctx, array, volume.StorageGroupIDs[0])
	if err != nil {
		return nil, err
	}
	if sg.IsCascaded() || sg.NumOfParentSGs > 0 || len(sg.MaskingView) != 1 {
		return nil, nil
	}

	mv, err := m.api.GetMaskingView(ctx, array, sg.MaskingView[0])
	if err != nil {
		return nil, err
	}
	if mv.MaskingViewID != legacyMaskingViewName(connector.Host, mv.PortGroupID, spec) {
		return nil, nil
	}
	return &legacyCandidate{maskingView: mv, storageGroup: sg}, nil
}

// DoMigrateIfCandidate moves a device mapped through a legacy masking view to the cascaded structure:
// a parent storage group per host and port group holding a child storage group per placement.
// It reports whether a migration happened.  A failed migration leaves the legacy view in place.
func (m *masking) DoMigrateIfCandidate(
	ctx context.Context, array, deviceID string, spec *ExtraSpecs, connector *storage.Connector,
) (bool, error) {
	candidate, err := m.findLegacyCandidate(ctx, array, deviceID, spec, connector)
	if err != nil || candidate == nil {
		return false, err
	}

	legacy := candidate.maskingView
	pg := legacy.PortGroupID
	dict := &MaskingViewDict{
		Array:              array,
		DeviceID:           deviceID,
		Host:               connector.Host,
		PortGroup:          pg,
		InitiatorGroup:     legacy.HostID,
		ParentStorageGroup: parentStorageGroupName(connector.Host, pg),
		ChildStorageGroup:  childStorageGroupName(connector.Host, pg, spec),
		MaskingView:        maskingViewName(connector.Host, pg),
		ExtraSpecs:         spec,
	}
	fields := LogFields{
		"legacyMaskingView": legacy.MaskingViewID,
		"maskingView":       dict.MaskingView,
		"storageGroup":      dict.ChildStorageGroup,
	}
	Logc(ctx).WithFields(fields).Info("Migrating legacy masking view.")

	for _, name := range []string{legacy.MaskingViewID, dict.MaskingView} {
		lock, err := m.lockMaskingView(ctx, array, name)
		if err != nil {
			return false, err
		}
		defer lock.Unlock()
	}

	if _, err = m.api.GetMaskingView(ctx, array, dict.MaskingView); err == nil {
		return false, errors.AlreadyExistsError("masking view %s already exists", dict.MaskingView)
	} else if !errors.IsNotFoundError(err) {
		return false, err
	}

	state := &mappingState{}
	if err = m.migrate(ctx, dict, candidate, state); err != nil {
		Logc(ctx).WithFields(fields).WithError(err).Error("Legacy masking view migration failed.")
		return false, err
	}

	Logc(ctx).WithFields(fields).Info("Legacy masking view migrated.")
	return true, nil
}

func (m *masking) migrate(
	ctx context.Context, dict *MaskingViewDict, candidate *legacyCandidate, state *mappingState,
) error {
	array, spec := dict.Array, dict.ExtraSpecs
	legacySG := candidate.storageGroup.StorageGroupID

	if _, err := m.ensureStorageGroup(ctx, array, dict.ParentStorageGroup, "", "", "", false, state); err != nil {
		return m.abandonMigration(ctx, dict, state, nil, legacySG, err)
	}
	if _, err := m.ensureStorageGroup(ctx, array, dict.ChildStorageGroup, spec.SRP, spec.SLO, spec.Workload,
		spec.DisableCompression, state); err != nil {
		return m.abandonMigration(ctx, dict, state, nil, legacySG, err)
	}
	if err := m.api.AddChildStorageGroup(ctx, array, dict.ParentStorageGroup, dict.ChildStorageGroup); err != nil {
		return m.abandonMigration(ctx, dict, state, nil, legacySG, err)
	}
	state.addedChild = true

	deviceIDs, err := m.api.GetVolumeIDsInStorageGroup(ctx, array, legacySG)
	if err != nil {
		return m.abandonMigration(ctx, dict, state, nil, legacySG, err)
	}
	if err = m.api.MoveVolumesToStorageGroup(ctx, array, legacySG, dict.ChildStorageGroup, spec.Replicated,
		deviceIDs...); err != nil {
		return m.abandonMigration(ctx, dict, state, nil, legacySG, err)
	}
	if err = m.api.CreateMaskingView(ctx, array, dict.MaskingView, dict.InitiatorGroup, dict.PortGroup,
		dict.ParentStorageGroup); err != nil {
		return m.abandonMigration(ctx, dict, state, deviceIDs, legacySG, err)
	}

	// The new structure is live, so failures from here on only leave an empty legacy group behind.
	if err = m.api.DeleteMaskingView(ctx, array, candidate.maskingView.MaskingViewID); err != nil {
		Logc(ctx).WithError(err).WithField("maskingView", candidate.maskingView.MaskingViewID).Warning(
			"Could not delete legacy masking view.")
		return nil
	}
	if err = m.api.DeleteStorageGroup(ctx, array, legacySG); err != nil {
		Logc(ctx).WithError(err).WithField("storageGroup", legacySG).Warning(
			"Could not delete legacy storage group.")
	}
	return nil
}

// abandonMigration returns moved devices to the legacy storage group and removes new groups.
func (m *masking) abandonMigration(
	ctx context.Context, dict *MaskingViewDict, state *mappingState, moved []string, legacySG string, cause error,
) error {
	if len(moved) > 0 {
		if err := m.api.MoveVolumesToStorageGroup(ctx, dict.Array, dict.ChildStorageGroup, legacySG,
			dict.ExtraSpecs.Replicated, moved...); err != nil {
			Logc(ctx).WithError(err).WithField("storageGroup", legacySG).Error(
				"Could not return devices to legacy storage group.")
			return cause
		}
	}
	if state.addedChild {
		if err := m.api.RemoveChildStorageGroup(ctx, dict.Array, dict.ParentStorageGroup,
			dict.ChildStorageGroup); err != nil {
			Logc(ctx).WithError(err).Warning("Could not detach child storage group.")
		}
	}
	for i := len(state.createdStorageGroups) - 1; i >= 0; i-- {
		name := state.createdStorageGroups[i]
		if err := m.api.DeleteStorageGroup(ctx, dict.Array, name); err != nil {
			Logc(ctx).WithError(err).WithField("storageGroup", name).Warning("Could not delete storage group.")
		}
	}
	return cause
}
