// Copyright 2025 NetApp, Inc. All Rights Reserved.

package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"golang.org/x/sync/errgroup"

	. "github.com/pmax-drivers/powermax/logging"
	"github.com/pmax-drivers/powermax/utils/errors"
)

const (
	iteratorPageConcurrency = 4

	volumeIdentifierChoiceName = "identifier_name"
	volumeIdentifierChoiceNone = "none"
)

func (c *Client) GetSRP(ctx context.Context, array, srp string) (*SRP, error) {
	if err := c.checkArray(array); err != nil {
		return nil, err
	}
	result := &SRP{}
	if err := c.get(ctx, c.sloResource(array, "srp", srp), nil, result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) GetServiceLevels(ctx context.Context, array string) ([]string, error) {
	if err := c.checkArray(array); err != nil {
		return nil, err
	}
	result := &ServiceLevelList{}
	if err := c.get(ctx, c.sloResource(array, "slo"), nil, result); err != nil {
		return nil, err
	}
	return result.SLOIDs, nil
}

func (c *Client) GetWorkloads(ctx context.Context, array string) ([]string, error) {
	if err := c.checkArray(array); err != nil {
		return nil, err
	}
	result := &WorkloadList{}
	if err := c.get(ctx, c.sloResource(array, "workloadtype"), nil, result); err != nil {
		return nil, err
	}
	return result.WorkloadIDs, nil
}

// GetStorageGroup returns the named storage group, or a NotFoundError.
func (c *Client) GetStorageGroup(ctx context.Context, array, sgName string) (*StorageGroup, error) {
	if err := c.checkArray(array); err != nil {
		return nil, err
	}
	sg := &StorageGroup{}
	if err := c.get(ctx, c.sloResource(array, "storagegroup", sgName), nil, sg); err != nil {
		return nil, err
	}
	return sg, nil
}

// GetStorageGroupIDs lists storage groups whose name contains the given fragment.  An empty fragment lists all.
func (c *Client) GetStorageGroupIDs(ctx context.Context, array, nameContains string) ([]string, error) {
	if err := c.checkArray(array); err != nil {
		return nil, err
	}
	var query url.Values
	if nameContains != "" {
		query = url.Values{"storageGroupId": []string{"<like>" + nameContains}}
	}
	result := &StorageGroupList{}
	if err := c.get(ctx, c.sloResource(array, "storagegroup"), query, result); err != nil {
		return nil, err
	}
	return result.StorageGroupIDs, nil
}

// CreateStorageGroup creates an empty storage group.  An empty SLO creates a group without a
// service level and workload.
func (c *Client) CreateStorageGroup(
	ctx context.Context, array, sgName, srp, slo, workload string, disableCompression bool,
) (*StorageGroup, error) {
	if err := c.checkArray(array); err != nil {
		return nil, err
	}

	payload := createStorageGroupParam{
		SRPID:           srp,
		StorageGroupID:  sgName,
		Emulation:       emulationFBA,
		ExecutionOption: ExecutionAsync,
	}
	if srp == "" {
		payload.SRPID = "None"
	}

	sloParam := sloBasedStorageGroupParam{
		SLOID:            slo,
		VolumeAttributes: []volumeAttribute{{CapacityUnit: capacityUnitGB, VolumeSize: "0", NumOfVols: 0}},
		NoCompression:    disableCompression,
	}
	if slo == "" {
		sloParam.SLOID = "None"
	} else if workload != "" {
		sloParam.WorkloadSelection = workload
	}
	payload.SLOBasedStorageGroupParam = []sloBasedStorageGroupParam{sloParam}

	if err := c.post(ctx, c.sloResource(array, "storagegroup"), payload, nil); err != nil {
		if errors.BackendAPIStatusCode(err) == http.StatusConflict {
			return nil, errors.AlreadyExistsError("storage group %s already exists", sgName)
		}
		return nil, err
	}

	Logc(ctx).WithFields(LogFields{"array": array, "storageGroup": sgName}).Debug("Created storage group.")
	return c.GetStorageGroup(ctx, array, sgName)
}

func (c *Client) DeleteStorageGroup(ctx context.Context, array, sgName string) error {
	if err := c.checkArray(array); err != nil {
		return err
	}
	return c.delete(ctx, c.sloResource(array, "storagegroup", sgName), nil)
}

func (c *Client) modifyStorageGroup(
	ctx context.Context, array, sgName string, action editStorageGroupActionParam,
) error {
	if err := c.checkArray(array); err != nil {
		return err
	}
	payload := updateStorageGroupPayload{
		EditStorageGroupActionParam: action,
		ExecutionOption:             ExecutionAsync,
	}
	return c.put(ctx, c.sloResource(array, "storagegroup", sgName), payload, nil)
}

// AddChildStorageGroup cascades child under parent.
func (c *Client) AddChildStorageGroup(ctx context.Context, array, parent, child string) error {
	return c.modifyStorageGroup(ctx, array, parent, editStorageGroupActionParam{
		ExpandStorageGroupParam: &expandStorageGroupParam{
			AddExistingStorageGroupParam: &addExistingStorageGroupParam{StorageGroupIDs: []string{child}},
		},
	})
}

func (c *Client) RemoveChildStorageGroup(ctx context.Context, array, parent, child string) error {
	return c.modifyStorageGroup(ctx, array, parent, editStorageGroupActionParam{
		RemoveStorageGroupParam: &removeStorageGroupParam{StorageGroupIDs: []string{child}, Force: true},
	})
}

// CreateVolumeInStorageGroup creates a new device in the storage group, named by its volume
// identifier, and returns it.
func (c *Client) CreateVolumeInStorageGroup(
	ctx context.Context, array, sgName, identifier string, sizeGiB int64,
) (*Volume, error) {
	err := c.modifyStorageGroup(ctx, array, sgName, editStorageGroupActionParam{
		ExpandStorageGroupParam: &expandStorageGroupParam{
			AddVolumeParam: &addVolumeParam{
				Emulation:        emulationFBA,
				CreateNewVolumes: true,
				VolumeAttributes: []volumeAttribute{{
					CapacityUnit: capacityUnitGB,
					VolumeSize:   strconv.FormatInt(sizeGiB, 10),
					NumOfVols:    1,
					VolumeIdentifier: &volumeIdentifier{
						IdentifierName:         identifier,
						VolumeIdentifierChoice: volumeIdentifierChoiceName,
					},
				}},
			},
		},
	})
	if err != nil {
		return nil, err
	}

	ids, err := c.FindVolumeIDsByIdentifier(ctx, array, identifier)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, errors.NotFoundError("volume %s not found after creation in storage group %s", identifier,
			sgName)
	}

	// The most recently created device carries the highest device ID.
	deviceID := ids[0]
	for _, id := range ids[1:] {
		if id > deviceID {
			deviceID = id
		}
	}
	return c.GetVolume(ctx, array, deviceID)
}

func storageGroupRemoteInfo(force bool) *remoteSymmSGInfoParam {
	if !force {
		return nil
	}
	return &remoteSymmSGInfoParam{Force: true}
}

// AddVolumesToStorageGroup adds existing devices.  Force is required when the storage group is SRDF protected.
func (c *Client) AddVolumesToStorageGroup(
	ctx context.Context, array, sgName string, force bool, deviceIDs ...string,
) error {
	return c.modifyStorageGroup(ctx, array, sgName, editStorageGroupActionParam{
		ExpandStorageGroupParam: &expandStorageGroupParam{
			AddSpecificVolumeParam: &addSpecificVolumeParam{
				VolumeIDs:             deviceIDs,
				RemoteSymmSGInfoParam: storageGroupRemoteInfo(force),
			},
		},
	})
}

func (c *Client) RemoveVolumesFromStorageGroup(
	ctx context.Context, array, sgName string, force bool, deviceIDs ...string,
) error {
	return c.modifyStorageGroup(ctx, array, sgName, editStorageGroupActionParam{
		RemoveVolumeParam: &removeVolumeParam{
			VolumeIDs:             deviceIDs,
			RemoteSymmSGInfoParam: storageGroupRemoteInfo(force),
		},
	})
}

// MoveVolumesToStorageGroup moves devices from source to target without unmapping them.
func (c *Client) MoveVolumesToStorageGroup(
	ctx context.Context, array, source, target string, force bool, deviceIDs ...string,
) error {
	return c.modifyStorageGroup(ctx, array, source, editStorageGroupActionParam{
		MoveVolumeToStorageGroupParam: &moveVolumeToStorageGroupParam{
			VolumeIDs:      deviceIDs,
			StorageGroupID: target,
			Force:          force,
		},
	})
}

func (c *Client) UpdateStorageGroupSLO(ctx context.Context, array, sgName, slo string) error {
	return c.modifyStorageGroup(ctx, array, sgName, editStorageGroupActionParam{
		EditStorageGroupSLOParam: &editStorageGroupSLOParam{SLOID: slo},
	})
}

func (c *Client) UpdateStorageGroupWorkload(ctx context.Context, array, sgName, workload string) error {
	return c.modifyStorageGroup(ctx, array, sgName, editStorageGroupActionParam{
		EditStorageGroupWorkloadParam: &editStorageGroupWorkloadParam{WorkloadSelection: workload},
	})
}

// GetVolume returns the named device, or a NotFoundError.
func (c *Client) GetVolume(ctx context.Context, array, deviceID string) (*Volume, error) {
	if err := c.checkArray(array); err != nil {
		return nil, err
	}
	volume := &Volume{}
	if err := c.get(ctx, c.sloResource(array, "volume", deviceID), nil, volume); err != nil {
		return nil, err
	}
	return volume, nil
}

// FindVolumeIDsByIdentifier returns every device whose volume identifier matches exactly.
func (c *Client) FindVolumeIDsByIdentifier(ctx context.Context, array, identifier string) ([]string, error) {
	return c.getVolumeIDs(ctx, array, url.Values{"volume_identifier": []string{identifier}})
}

func (c *Client) GetVolumeIDsInStorageGroup(ctx context.Context, array, sgName string) ([]string, error) {
	return c.getVolumeIDs(ctx, array, url.Values{"storageGroupId": []string{sgName}})
}

// getVolumeIDs runs a volume query and drains its iterator.  Pages beyond the first are fetched
// concurrently and the iterator is released afterwards.
func (c *Client) getVolumeIDs(ctx context.Context, array string, query url.Values) ([]string, error) {
	if err := c.checkArray(array); err != nil {
		return nil, err
	}

	iter := &VolumeIterator{}
	if err := c.get(ctx, c.sloResource(array, "volume"), query, iter); err != nil {
		if errors.IsNotFoundError(err) {
			return []string{}, nil
		}
		return nil, err
	}

	ids := make([]string, 0, iter.Count)
	for _, v := range iter.ResultList.VolumeList {
		ids = append(ids, v.VolumeID)
	}
	if iter.ID == "" || iter.Count <= len(ids) {
		return ids, nil
	}

	defer func() {
		if err := c.delete(ctx, "/common/Iterator/"+url.PathEscape(iter.ID), nil); err != nil {
			Logc(ctx).WithField("iterator", iter.ID).WithError(err).Debug("Could not delete volume iterator.")
		}
	}()

	pageSize := iter.MaxPageSize
	if pageSize <= 0 {
		pageSize = len(ids)
	}
	if pageSize <= 0 {
		return ids, nil
	}

	var pages [][]string
	for from := len(ids) + 1; from <= iter.Count; from += pageSize {
		to := from + pageSize - 1
		if to > iter.Count {
			to = iter.Count
		}
		pages = append(pages, []string{strconv.Itoa(from), strconv.Itoa(to)})
	}

	results := make([][]string, len(pages))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(iteratorPageConcurrency)
	for i, page := range pages {
		i, page := i, page
		g.Go(func() error {
			result := &VolumeResultList{}
			query := url.Values{"from": []string{page[0]}, "to": []string{page[1]}}
			if err := c.get(gctx, "/common/Iterator/"+url.PathEscape(iter.ID)+"/page", query, result); err != nil {
				return err
			}
			for _, v := range result.VolumeList {
				results[i] = append(results[i], v.VolumeID)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, r := range results {
		ids = append(ids, r...)
	}
	return ids, nil
}

func (c *Client) modifyVolume(ctx context.Context, array, deviceID string, action editVolumeActionParam) error {
	if err := c.checkArray(array); err != nil {
		return err
	}
	payload := editVolumePayload{
		EditVolumeActionParam: action,
		ExecutionOption:       ExecutionAsync,
	}
	return c.put(ctx, c.sloResource(array, "volume", deviceID), payload, nil)
}

// RenameVolume sets the volume identifier.  An empty identifier clears it.
func (c *Client) RenameVolume(ctx context.Context, array, deviceID, identifier string) error {
	vi := volumeIdentifier{IdentifierName: identifier, VolumeIdentifierChoice: volumeIdentifierChoiceName}
	if identifier == "" {
		vi = volumeIdentifier{VolumeIdentifierChoice: volumeIdentifierChoiceNone}
	}
	return c.modifyVolume(ctx, array, deviceID, editVolumeActionParam{
		ModifyVolumeIdentifierParam: &modifyVolumeIdentifierParam{VolumeIdentifier: vi},
	})
}

// ExtendVolume grows a device.  A non-zero SRDF group number extends both sides of a pair online.
func (c *Client) ExtendVolume(
	ctx context.Context, array, deviceID string, newSizeGiB int64, rdfGroupNumber int,
) error {
	return c.modifyVolume(ctx, array, deviceID, editVolumeActionParam{
		ExpandVolumeParam: &expandVolumeParam{
			VolumeAttribute: volumeAttribute{
				CapacityUnit: capacityUnitGB,
				VolumeSize:   strconv.FormatInt(newSizeGiB, 10),
			},
			RDFGroupNumber: rdfGroupNumber,
		},
	})
}

// DeallocateVolume frees all tracks of a device, which must precede its deletion.
func (c *Client) DeallocateVolume(ctx context.Context, array, deviceID string) error {
	return c.modifyVolume(ctx, array, deviceID, editVolumeActionParam{
		FreeVolumeParam: &freeVolumeParam{FreeVolume: true},
	})
}

func (c *Client) DeleteVolume(ctx context.Context, array, deviceID string) error {
	if err := c.checkArray(array); err != nil {
		return err
	}
	return c.delete(ctx, c.sloResource(array, "volume", deviceID), nil)
}
