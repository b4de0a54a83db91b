// Copyright 2025 NetApp, Inc. All Rights Reserved.

package powermax

import (
	"context"
	"fmt"
	"net"
	"strings"

	"go.uber.org/multierr"

	. "github.com/pmax-drivers/powermax/logging"
	"github.com/pmax-drivers/powermax/pkg/collection"
	"github.com/pmax-drivers/powermax/pkg/locks"
	"github.com/pmax-drivers/powermax/storage"
	drivers "github.com/pmax-drivers/powermax/storage_drivers"
	"github.com/pmax-drivers/powermax/storage_drivers/powermax/api"
	"github.com/pmax-drivers/powermax/utils/errors"
)

// MaskingViewDict holds everything needed to expose one device to one host, with the object names
// resolved from the naming rules.
type MaskingViewDict struct {
	Array               string
	DeviceID            string
	Identifier          string
	Host                string
	Protocol            string
	Initiators          []string
	PortGroup           string
	InitiatorGroup      string
	ParentStorageGroup  string
	ChildStorageGroup   string
	MaskingView         string
	DefaultStorageGroup string
	ExtraSpecs          *ExtraSpecs
}

// newMaskingViewDict resolves the masking objects of a device for the connector's host.  A port
// group named in the extra specs wins over the configured port groups.
func newMaskingViewDict(
	deviceID, identifier string, spec *ExtraSpecs, connector *storage.Connector, protocol string,
) (*MaskingViewDict, error) {
	initiators, err := connectorInitiators(connector, protocol)
	if err != nil {
		return nil, err
	}
	pg, err := selectPortGroup(connector.Host, spec.PortGroups)
	if err != nil {
		return nil, err
	}
	return &MaskingViewDict{
		Array:               spec.Array,
		DeviceID:            deviceID,
		Identifier:          identifier,
		Host:                connector.Host,
		Protocol:            protocol,
		Initiators:          initiators,
		PortGroup:           pg,
		InitiatorGroup:      initiatorGroupName(connector.Host, protocol),
		ParentStorageGroup:  parentStorageGroupName(connector.Host, pg),
		ChildStorageGroup:   childStorageGroupName(connector.Host, pg, spec),
		MaskingView:         maskingViewName(connector.Host, pg),
		DefaultStorageGroup: spec.defaultStorageGroupName(),
		ExtraSpecs:          spec,
	}, nil
}

// masking manages the initiator group, port group, storage group and masking view of attachments.
type masking struct {
	api       api.PowerMaxAPI
	provision *provisioner
	locks     locks.Locker
	config    *drivers.PowerMaxStorageDriverConfig
}

func newMasking(
	client api.PowerMaxAPI, provision *provisioner, locker locks.Locker, config *drivers.PowerMaxStorageDriverConfig,
) *masking {
	return &masking{api: client, provision: provision, locks: locker, config: config}
}

func (m *masking) lockMaskingView(ctx context.Context, array, mvName string) (*locks.LockedResource, error) {
	return m.locks.Lock(ctx, locks.Key(array, "mv", mvName))
}

// mappingState records what a mapping attempt created, so a failure can undo exactly that.
type mappingState struct {
	previousStorageGroups []string
	createdInitiatorGroup string
	createdStorageGroups  []string
	addedChild            bool
}

// GetOrCreateMaskingViewAndMapLUN places the device in the host's child storage group, creating the
// masking objects that are missing.  On failure everything created by this call is removed and the
// device is returned to where it was.
func (m *masking) GetOrCreateMaskingViewAndMapLUN(ctx context.Context, dict *MaskingViewDict) error {
	fields := LogFields{"Method": "GetOrCreateMaskingViewAndMapLUN", "Type": "masking"}
	Logd(ctx, drivers.PowerMaxSANStorageDriverName, m.config.DebugTraceFlags["method"]).WithFields(fields).Trace(
		">>>> GetOrCreateMaskingViewAndMapLUN")
	defer Logd(ctx, drivers.PowerMaxSANStorageDriverName, m.config.DebugTraceFlags["method"]).WithFields(fields).Trace(
		"<<<< GetOrCreateMaskingViewAndMapLUN")

	lock, err := m.lockMaskingView(ctx, dict.Array, dict.MaskingView)
	if err != nil {
		return err
	}
	defer lock.Unlock()

	volume, err := m.api.GetVolume(ctx, dict.Array, dict.DeviceID)
	if err != nil {
		return err
	}
	state := &mappingState{previousStorageGroups: volume.StorageGroupIDs}

	if err = m.mapVolume(ctx, dict, state); err != nil {
		Logc(ctx).WithError(err).WithFields(LogFields{
			"device":      dict.DeviceID,
			"maskingView": dict.MaskingView,
		}).Error("Could not map device, rolling back.")
		if rollbackErr := m.rollback(ctx, dict, state); rollbackErr != nil {
			err = multierr.Append(err, rollbackErr)
		}
		return errors.WrapWithVolumeBackendAPIError(err, "could not map device %s to host %s", dict.DeviceID,
			dict.Host)
	}

	Logc(ctx).WithFields(LogFields{
		"device":         dict.DeviceID,
		"maskingView":    dict.MaskingView,
		"storageGroup":   dict.ChildStorageGroup,
		"initiatorGroup": dict.InitiatorGroup,
	}).Info("Device mapped.")
	return nil
}

func (m *masking) mapVolume(ctx context.Context, dict *MaskingViewDict, state *mappingState) error {
	mv, err := m.api.GetMaskingView(ctx, dict.Array, dict.MaskingView)
	if err != nil && !errors.IsNotFoundError(err) {
		return err
	}

	if mv != nil {
		if err = m.validateMaskingViewComponents(ctx, dict, mv); err != nil {
			return err
		}
		dict.ParentStorageGroup = mv.StorageGroupID
		dict.InitiatorGroup = mv.HostID
		return m.placeInChildStorageGroup(ctx, dict, state)
	}

	if err = m.getOrCreateInitiatorGroup(ctx, dict, state); err != nil {
		return err
	}
	if _, err = m.api.GetPortGroup(ctx, dict.Array, dict.PortGroup); err != nil {
		return fmt.Errorf("port group %s unavailable; %w", dict.PortGroup, err)
	}
	if _, err = m.ensureStorageGroup(ctx, dict.Array, dict.ParentStorageGroup, "", "", "", false, state); err != nil {
		return err
	}
	if err = m.placeInChildStorageGroup(ctx, dict, state); err != nil {
		return err
	}
	return m.api.CreateMaskingView(ctx, dict.Array, dict.MaskingView, dict.InitiatorGroup, dict.PortGroup,
		dict.ParentStorageGroup)
}

// validateMaskingViewComponents checks that an existing masking view can take the device.
func (m *masking) validateMaskingViewComponents(
	ctx context.Context, dict *MaskingViewDict, mv *api.MaskingView,
) error {
	parent, err := m.api.GetStorageGroup(ctx, dict.Array, mv.StorageGroupID)
	if err != nil {
		return err
	}
	if !parent.IsCascaded() {
		return errors.UnsupportedConfigError("storage group %s of masking view %s is not cascaded",
			parent.StorageGroupID, mv.MaskingViewID)
	}
	if !m.config.InitiatorCheck {
		return nil
	}
	host, err := m.api.GetHost(ctx, dict.Array, mv.HostID)
	if err != nil {
		return err
	}
	for _, initiator := range dict.Initiators {
		if !containsInitiator(host.Initiators, initiator) {
			return errors.UnsupportedConfigError("initiator %s is not in initiator group %s", initiator,
				host.HostID)
		}
	}
	return nil
}

// containsInitiator matches an HBA against initiator IDs, which carry a director and port prefix.
func containsInitiator(initiatorIDs []string, hba string) bool {
	for _, id := range initiatorIDs {
		if strings.EqualFold(id, hba) || strings.HasSuffix(strings.ToLower(id), ":"+strings.ToLower(hba)) {
			return true
		}
	}
	return false
}

// ensureStorageGroup returns the storage group, creating it when absent and recording the creation.
func (m *masking) ensureStorageGroup(
	ctx context.Context, array, sgName, srp, slo, workload string, disableCompression bool, state *mappingState,
) (*api.StorageGroup, error) {
	sg, err := m.api.GetStorageGroup(ctx, array, sgName)
	if err == nil {
		return sg, nil
	} else if !errors.IsNotFoundError(err) {
		return nil, err
	}
	if sg, err = m.provision.CreateStorageGroup(ctx, array, sgName, srp, slo, workload, disableCompression); err != nil {
		return nil, err
	}
	state.createdStorageGroups = append(state.createdStorageGroups, sgName)
	return sg, nil
}

func (m *masking) placeInChildStorageGroup(ctx context.Context, dict *MaskingViewDict, state *mappingState) error {
	spec := dict.ExtraSpecs
	if _, err := m.ensureStorageGroup(ctx, dict.Array, dict.ChildStorageGroup, spec.SRP, spec.SLO, spec.Workload,
		spec.DisableCompression, state); err != nil {
		return err
	}

	parent, err := m.api.GetStorageGroup(ctx, dict.Array, dict.ParentStorageGroup)
	if err != nil {
		return err
	}
	if !collection.ContainsString(parent.ChildStorageGroup, dict.ChildStorageGroup) {
		if err = m.api.AddChildStorageGroup(ctx, dict.Array, dict.ParentStorageGroup,
			dict.ChildStorageGroup); err != nil {
			return err
		}
		state.addedChild = true
	}

	if collection.ContainsString(state.previousStorageGroups, dict.DefaultStorageGroup) {
		return m.provision.MoveVolumeBetweenStorageGroups(ctx, dict.Array, dict.DeviceID, dict.DefaultStorageGroup,
			dict.ChildStorageGroup, spec.Replicated)
	}
	return m.provision.AddVolumeToStorageGroup(ctx, dict.Array, dict.DeviceID, dict.ChildStorageGroup,
		spec.Replicated)
}

// getOrCreateInitiatorGroup reuses any initiator group that already holds the connector's initiators.
func (m *masking) getOrCreateInitiatorGroup(ctx context.Context, dict *MaskingViewDict, state *mappingState) error {
	existing, err := m.findHostByInitiators(ctx, dict.Array, dict.Initiators)
	if err != nil {
		return err
	}
	if existing != "" {
		Logc(ctx).WithField("initiatorGroup", existing).Debug("Reusing initiator group.")
		dict.InitiatorGroup = existing
		return nil
	}

	if _, err = m.api.GetHost(ctx, dict.Array, dict.InitiatorGroup); err == nil {
		return nil
	} else if !errors.IsNotFoundError(err) {
		return err
	}

	flags := &api.HostFlags{ConsistentLUN: false}
	if _, err = m.api.CreateHost(ctx, dict.Array, dict.InitiatorGroup, dict.Initiators, flags); err != nil {
		if errors.IsAlreadyExistsError(err) {
			return nil
		}
		return err
	}
	state.createdInitiatorGroup = dict.InitiatorGroup
	return nil
}

// findHostByInitiators returns the initiator group any of the HBAs belongs to, or "" if none.
func (m *masking) findHostByInitiators(ctx context.Context, array string, hbas []string) (string, error) {
	for _, hba := range hbas {
		ids, err := m.api.GetInitiatorIDs(ctx, array, hba)
		if err != nil {
			return "", err
		}
		for _, id := range ids {
			initiator, err := m.api.GetInitiator(ctx, array, id)
			if err != nil {
				if errors.IsNotFoundError(err) {
					continue
				}
				return "", err
			}
			if initiator.Host != "" {
				return initiator.Host, nil
			}
		}
	}
	return "", nil
}

// checkIfRollbackRequired reports whether the device is no longer where it was before mapping began.
func checkIfRollbackRequired(previous, current []string) bool {
	if len(previous) != len(current) {
		return true
	}
	for _, sg := range previous {
		if !collection.ContainsString(current, sg) {
			return true
		}
	}
	return false
}

func (m *masking) rollback(ctx context.Context, dict *MaskingViewDict, state *mappingState) error {
	var errs error

	volume, err := m.api.GetVolume(ctx, dict.Array, dict.DeviceID)
	if err != nil {
		return err
	}
	if checkIfRollbackRequired(state.previousStorageGroups, volume.StorageGroupIDs) {
		force := dict.ExtraSpecs.Replicated
		if collection.ContainsString(volume.StorageGroupIDs, dict.ChildStorageGroup) {
			if err = m.provision.RemoveVolumeFromStorageGroup(ctx, dict.Array, dict.DeviceID,
				dict.ChildStorageGroup, force); err != nil {
				errs = multierr.Append(errs, err)
			}
		}
		previous := state.previousStorageGroups
		if len(previous) == 0 {
			previous = []string{dict.DefaultStorageGroup}
		}
		for _, sg := range previous {
			if collection.ContainsString(volume.StorageGroupIDs, sg) {
				continue
			}
			if err = m.provision.AddVolumeToStorageGroup(ctx, dict.Array, dict.DeviceID, sg, force); err != nil {
				errs = multierr.Append(errs, err)
			}
		}
	}

	if state.addedChild {
		if sg, err := m.api.GetStorageGroup(ctx, dict.Array, dict.ChildStorageGroup); err == nil &&
			sg.NumOfVolumes == 0 {
			if err = m.api.RemoveChildStorageGroup(ctx, dict.Array, dict.ParentStorageGroup,
				dict.ChildStorageGroup); err != nil {
				errs = multierr.Append(errs, err)
			}
		}
	}

	for i := len(state.createdStorageGroups) - 1; i >= 0; i-- {
		name := state.createdStorageGroups[i]
		sg, err := m.api.GetStorageGroup(ctx, dict.Array, name)
		if err != nil {
			if !errors.IsNotFoundError(err) {
				errs = multierr.Append(errs, err)
			}
			continue
		}
		if sg.NumOfVolumes > 0 || sg.NumOfChildSGs > 0 || len(sg.MaskingView) > 0 {
			continue
		}
		if err = m.api.DeleteStorageGroup(ctx, dict.Array, name); err != nil {
			errs = multierr.Append(errs, err)
		}
	}

	if state.createdInitiatorGroup != "" {
		errs = multierr.Append(errs, m.deleteInitiatorGroupIfUnused(ctx, dict.Array, state.createdInitiatorGroup))
	}
	return errs
}

func (m *masking) deleteInitiatorGroupIfUnused(ctx context.Context, array, hostName string) error {
	views, err := m.api.GetMaskingViewsForHost(ctx, array, hostName)
	if err != nil {
		return err
	}
	if len(views) > 0 {
		return nil
	}
	if err = m.api.DeleteHost(ctx, array, hostName); err != nil && !errors.IsNotFoundError(err) {
		return err
	}
	Logc(ctx).WithField("initiatorGroup", hostName).Debug("Deleted initiator group.")
	return nil
}

// FindMaskingViewsForVolumeAndHost returns the masking views exposing the storage groups of a device.
// An empty host returns the views of every host.  Otherwise only views named for the host and one
// of the port groups of spec or of the backend config are returned.
func (m *masking) FindMaskingViewsForVolumeAndHost(
	ctx context.Context, array string, storageGroups []string, host string, spec *ExtraSpecs,
) ([]string, error) {
	var views []string
	for _, sgName := range storageGroups {
		sg, err := m.api.GetStorageGroup(ctx, array, sgName)
		if err != nil {
			if errors.IsNotFoundError(err) {
				continue
			}
			return nil, err
		}
		views = append(views, sg.MaskingView...)
		for _, parentName := range sg.ParentStorageGroup {
			parent, err := m.api.GetStorageGroup(ctx, array, parentName)
			if err != nil {
				if errors.IsNotFoundError(err) {
					continue
				}
				return nil, err
			}
			views = append(views, parent.MaskingView...)
		}
	}

	views = collection.Unique(views)
	if host == "" {
		return views, nil
	}
	names := m.hostMaskingViewNames(host, spec)
	var hostViews []string
	for _, view := range views {
		if names[view] {
			hostViews = append(hostViews, view)
		}
	}
	return hostViews, nil
}

// hostMaskingViewNames lists every masking view name the driver could have created for a host.
// Host short names may themselves contain dashes, so views are matched by full name.
func (m *masking) hostMaskingViewNames(host string, spec *ExtraSpecs) map[string]bool {
	var portGroups []string
	if spec != nil {
		portGroups = append(portGroups, spec.PortGroups...)
	}
	if m.config != nil {
		portGroups = append(portGroups, m.config.PortGroups...)
		if m.config.Replication != nil {
			portGroups = append(portGroups, m.config.Replication.RemotePortGroups...)
		}
	}

	names := make(map[string]bool)
	for _, pg := range collection.Unique(portGroups) {
		names[maskingViewName(host, pg)] = true
		if spec != nil {
			names[legacyMaskingViewName(host, pg, spec)] = true
		}
	}
	return names
}

// GetHostLunID returns the host LUN of a device in a masking view.
func (m *masking) GetHostLunID(ctx context.Context, array, deviceID, mvName string) (int, error) {
	connections, err := m.api.GetMaskingViewConnections(ctx, array, mvName, deviceID)
	if err != nil {
		return -1, err
	}
	for _, connection := range connections {
		if connection.VolumeID == deviceID && connection.HostLUNAddress != "" {
			return parseHostLUN(connection.HostLUNAddress)
		}
	}
	return -1, errors.NotFoundError("device %s has no host LUN in masking view %s", deviceID, mvName)
}

// RemoveAndResetMembers detaches a device from the connector's host, or from every host when the
// connector is nil, and deletes masking objects left empty.  With resetToDefault an unattached device
// goes back to its default storage group.
func (m *masking) RemoveAndResetMembers(
	ctx context.Context, array, deviceID string, spec *ExtraSpecs, connector *storage.Connector, resetToDefault bool,
) error {
	volume, err := m.api.GetVolume(ctx, array, deviceID)
	if err != nil {
		return err
	}

	host := ""
	if connector != nil {
		host = connector.Host
	}
	views, err := m.FindMaskingViewsForVolumeAndHost(ctx, array, volume.StorageGroupIDs, host, spec)
	if err != nil {
		return err
	}
	if len(views) == 0 {
		Logc(ctx).WithFields(LogFields{"device": deviceID, "host": host}).Warning("Device is not mapped to host.")
	}

	for _, view := range views {
		if err = m.removeVolumeFromMaskingView(ctx, array, deviceID, view, spec.Replicated); err != nil {
			return err
		}
	}

	if !resetToDefault {
		return nil
	}
	if volume, err = m.api.GetVolume(ctx, array, deviceID); err != nil {
		return err
	}
	if len(volume.StorageGroupIDs) > 0 {
		return nil
	}
	return m.AddVolumeToDefaultStorageGroup(ctx, array, deviceID, spec)
}

func (m *masking) removeVolumeFromMaskingView(ctx context.Context, array, deviceID, mvName string, force bool) error {
	lock, err := m.lockMaskingView(ctx, array, mvName)
	if err != nil {
		return err
	}
	defer lock.Unlock()

	mv, err := m.api.GetMaskingView(ctx, array, mvName)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil
		}
		return err
	}
	parent, err := m.api.GetStorageGroup(ctx, array, mv.StorageGroupID)
	if err != nil {
		return err
	}
	volume, err := m.api.GetVolume(ctx, array, deviceID)
	if err != nil {
		return err
	}

	sgName := parent.StorageGroupID
	if parent.IsCascaded() {
		sgName = ""
		for _, child := range parent.ChildStorageGroup {
			if collection.ContainsString(volume.StorageGroupIDs, child) {
				sgName = child
				break
			}
		}
		if sgName == "" {
			return nil
		}
	}

	if err = m.provision.RemoveVolumeFromStorageGroup(ctx, array, deviceID, sgName, force); err != nil {
		return err
	}
	Logc(ctx).WithFields(LogFields{"device": deviceID, "storageGroup": sgName, "maskingView": mvName}).Debug(
		"Removed device from storage group.")

	sg, err := m.api.GetStorageGroup(ctx, array, sgName)
	if err != nil {
		return err
	}
	if sg.NumOfVolumes > 0 {
		return nil
	}

	if !parent.IsCascaded() {
		if err = m.deleteMaskingViewAndInitiatorGroup(ctx, array, mv); err != nil {
			return err
		}
		return m.api.DeleteStorageGroup(ctx, array, sgName)
	}

	// A masking view cannot lose the last child of its storage group.
	lastChild := len(parent.ChildStorageGroup) <= 1
	if lastChild {
		if err = m.deleteMaskingViewAndInitiatorGroup(ctx, array, mv); err != nil {
			return err
		}
	}
	if err = m.api.RemoveChildStorageGroup(ctx, array, parent.StorageGroupID, sgName); err != nil {
		return err
	}
	if err = m.api.DeleteStorageGroup(ctx, array, sgName); err != nil {
		return err
	}
	if lastChild {
		return m.api.DeleteStorageGroup(ctx, array, parent.StorageGroupID)
	}
	return nil
}

func (m *masking) deleteMaskingViewAndInitiatorGroup(ctx context.Context, array string, mv *api.MaskingView) error {
	if err := m.api.DeleteMaskingView(ctx, array, mv.MaskingViewID); err != nil && !errors.IsNotFoundError(err) {
		return err
	}
	Logc(ctx).WithField("maskingView", mv.MaskingViewID).Info("Deleted masking view.")
	if mv.HostID == "" {
		return nil
	}
	return m.deleteInitiatorGroupIfUnused(ctx, array, mv.HostID)
}

// AddVolumeToDefaultStorageGroup puts a device in the default storage group of its placement.
func (m *masking) AddVolumeToDefaultStorageGroup(
	ctx context.Context, array, deviceID string, spec *ExtraSpecs,
) error {
	sg, err := m.provision.GetOrCreateDefaultStorageGroup(ctx, array, spec)
	if err != nil {
		return err
	}
	return m.provision.AddVolumeToStorageGroup(ctx, array, deviceID, sg.StorageGroupID, spec.Replicated)
}

// RemoveVolumeFromAllStorageGroups empties the storage group membership of an unmapped device.
func (m *masking) RemoveVolumeFromAllStorageGroups(ctx context.Context, array, deviceID string) error {
	volume, err := m.api.GetVolume(ctx, array, deviceID)
	if err != nil {
		return err
	}
	for _, sgName := range volume.StorageGroupIDs {
		if err = m.provision.RemoveVolumeFromStorageGroup(ctx, array, deviceID, sgName, true); err != nil {
			return fmt.Errorf("could not remove device %s from storage group %s; %w", deviceID, sgName, err)
		}
	}
	return nil
}

// GetISCSITargets returns one target per IP address of the iSCSI ports in a port group.
func (m *masking) GetISCSITargets(ctx context.Context, array, pgName string) ([]storage.ISCSITarget, error) {
	pg, err := m.api.GetPortGroup(ctx, array, pgName)
	if err != nil {
		return nil, err
	}
	var targets []storage.ISCSITarget
	for _, key := range pg.SymmetrixPortKey {
		port, err := m.api.GetPort(ctx, array, key.DirectorID, key.PortID)
		if err != nil {
			return nil, err
		}
		for _, ip := range port.SymmetrixPort.IPAddresses {
			targets = append(targets, storage.ISCSITarget{
				IQN:    port.SymmetrixPort.Identifier,
				Portal: net.JoinHostPort(ip, iscsiPortNumber),
			})
		}
	}
	if len(targets) == 0 {
		return nil, errors.NotFoundError("port group %s has no iSCSI portals", pgName)
	}
	return targets, nil
}

// GetFCTargetWWNs returns the WWNs of the front-end ports in a port group.
func (m *masking) GetFCTargetWWNs(ctx context.Context, array, pgName string) ([]string, error) {
	pg, err := m.api.GetPortGroup(ctx, array, pgName)
	if err != nil {
		return nil, err
	}
	var wwns []string
	for _, key := range pg.SymmetrixPortKey {
		port, err := m.api.GetPort(ctx, array, key.DirectorID, key.PortID)
		if err != nil {
			return nil, err
		}
		if port.SymmetrixPort.Identifier != "" {
			wwns = append(wwns, strings.ToLower(port.SymmetrixPort.Identifier))
		}
	}
	if len(wwns) == 0 {
		return nil, errors.NotFoundError("port group %s has no FC ports", pgName)
	}
	return wwns, nil
}
