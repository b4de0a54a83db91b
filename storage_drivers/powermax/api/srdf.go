// Copyright 2025 NetApp, Inc. All Rights Reserved.

package api

import (
	"context"
	"strconv"
	"strings"

	. "github.com/pmax-drivers/powermax/logging"
	"github.com/pmax-drivers/powermax/utils/errors"
)

const rdfTypeR1 = "RDF1"

// ReplicationModes as Unisphere names them in pair creation requests
const (
	RDFModeSynchronous  = "Synchronous"
	RDFModeAsynchronous = "Asynchronous"
	RDFModeActive       = "Active"
	RDFModeAdaptiveCopy = "AdaptiveCopyDisk"
)

func (c *Client) rdfGroupResource(array string, rdfgNum int, segments ...string) string {
	return c.replicationResource(array, append([]string{"rdf_group", strconv.Itoa(rdfgNum)}, segments...)...)
}

func (c *Client) GetRDFGroupList(ctx context.Context, array string) ([]RDFGroupListEntry, error) {
	if err := c.checkArray(array); err != nil {
		return nil, err
	}
	list := &RDFGroupList{}
	if err := c.get(ctx, c.replicationResource(array, "rdf_group"), nil, list); err != nil {
		return nil, err
	}
	return list.RDFGroups, nil
}

func (c *Client) GetRDFGroup(ctx context.Context, array string, rdfgNum int) (*RDFGroup, error) {
	if err := c.checkArray(array); err != nil {
		return nil, err
	}
	group := &RDFGroup{}
	if err := c.get(ctx, c.rdfGroupResource(array, rdfgNum), nil, group); err != nil {
		return nil, err
	}
	return group, nil
}

// GetRDFGroupByLabel resolves an SRDF group by its label, ignoring case.
func (c *Client) GetRDFGroupByLabel(ctx context.Context, array, label string) (*RDFGroup, error) {
	groups, err := c.GetRDFGroupList(ctx, array)
	if err != nil {
		return nil, err
	}
	for _, g := range groups {
		if strings.EqualFold(g.Label, label) {
			return c.GetRDFGroup(ctx, array, g.RDFGroupNumber)
		}
	}
	return nil, errors.NotFoundError("SRDF group %s not found on array %s", label, array)
}

// GetRDFGroupVolumes lists the local devices paired in an SRDF group.
func (c *Client) GetRDFGroupVolumes(ctx context.Context, array string, rdfgNum int) ([]string, error) {
	if err := c.checkArray(array); err != nil {
		return nil, err
	}
	result := &RDFGroupVolumes{}
	if err := c.get(ctx, c.rdfGroupResource(array, rdfgNum, "volume"), nil, result); err != nil {
		if errors.IsNotFoundError(err) {
			return []string{}, nil
		}
		return nil, err
	}
	return result.Names, nil
}

func (c *Client) GetRDFDevicePair(
	ctx context.Context, array string, rdfgNum int, deviceID string,
) (*RDFDevicePair, error) {
	if err := c.checkArray(array); err != nil {
		return nil, err
	}
	pair := &RDFDevicePair{}
	if err := c.get(ctx, c.rdfGroupResource(array, rdfgNum, "volume", deviceID), nil, pair); err != nil {
		return nil, err
	}
	return pair, nil
}

// CreateRDFPair pairs a local R1 device with an existing remote device in the SRDF group.
func (c *Client) CreateRDFPair(
	ctx context.Context, array string, rdfgNum int, localDeviceID, remoteDeviceID, mode string,
	establish, exempt bool,
) error {
	if err := c.checkArray(array); err != nil {
		return err
	}
	payload := createRDFPairParam{
		DeviceNameListSource: deviceNames([]string{localDeviceID}),
		DeviceNameListTarget: deviceNames([]string{remoteDeviceID}),
		ReplicationMode:      mode,
		Establish:            establish,
		RDFType:              rdfTypeR1,
		Exempt:               exempt,
		MetroBias:            mode == RDFModeActive,
		ExecutionOption:      ExecutionAsync,
	}
	if err := c.post(ctx, c.rdfGroupResource(array, rdfgNum, "volume"), payload, nil); err != nil {
		return err
	}

	Logc(ctx).WithFields(LogFields{
		"array":    array,
		"rdfGroup": rdfgNum,
		"local":    localDeviceID,
		"remote":   remoteDeviceID,
		"mode":     mode,
	}).Debug("Created SRDF device pair.")
	return nil
}

// DeleteRDFPair removes the SRDF relationship of a device.  The pair must be suspended first.
func (c *Client) DeleteRDFPair(ctx context.Context, array string, rdfgNum int, deviceID string) error {
	if err := c.checkArray(array); err != nil {
		return err
	}
	return c.delete(ctx, c.rdfGroupResource(array, rdfgNum, "volume", deviceID), nil)
}

func (c *Client) GetStorageGroupRDFInfo(
	ctx context.Context, array, sgName string, rdfgNum int,
) (*StorageGroupRDFInfo, error) {
	if err := c.checkArray(array); err != nil {
		return nil, err
	}
	info := &StorageGroupRDFInfo{}
	path := c.replicationResource(array, "storagegroup", sgName, "rdf_group", strconv.Itoa(rdfgNum))
	if err := c.get(ctx, path, nil, info); err != nil {
		return nil, err
	}
	return info, nil
}

func rdfStatePayload(action string, opts *RDFActionOptions) (*modifyRDFStateParam, error) {
	if opts == nil {
		opts = &RDFActionOptions{}
	}
	payload := &modifyRDFStateParam{Action: action, ExecutionOption: ExecutionAsync}
	switch action {
	case RDFActionEstablish:
		payload.Establish = opts
	case RDFActionSuspend:
		payload.Suspend = opts
	case RDFActionResume:
		payload.Resume = opts
	case RDFActionFailover:
		payload.Failover = opts
	case RDFActionFailback:
		payload.Failback = opts
	case RDFActionSplit:
		payload.Split = opts
	case RDFActionSetMode:
		if opts.Mode == "" {
			return nil, errors.InvalidInputError("SRDF SetMode requires a mode")
		}
		payload.SetMode = opts
	default:
		return nil, errors.InvalidInputError("unsupported SRDF action %s", action)
	}
	return payload, nil
}

// ModifyStorageGroupRDFState applies an SRDF action to every pair of a storage group.
func (c *Client) ModifyStorageGroupRDFState(
	ctx context.Context, array, sgName string, rdfgNum int, action string, opts *RDFActionOptions,
) error {
	if err := c.checkArray(array); err != nil {
		return err
	}
	payload, err := rdfStatePayload(action, opts)
	if err != nil {
		return err
	}
	path := c.replicationResource(array, "storagegroup", sgName, "rdf_group", strconv.Itoa(rdfgNum))
	if err = c.put(ctx, path, payload, nil); err != nil {
		return err
	}

	Logc(ctx).WithFields(LogFields{
		"array":        array,
		"storageGroup": sgName,
		"rdfGroup":     rdfgNum,
		"action":       action,
	}).Debug("Modified SRDF state.")
	return nil
}

// ModifyDeviceRDFState applies an SRDF action to a single device pair.
func (c *Client) ModifyDeviceRDFState(
	ctx context.Context, array string, rdfgNum int, deviceID, action string, opts *RDFActionOptions,
) error {
	if err := c.checkArray(array); err != nil {
		return err
	}
	payload, err := rdfStatePayload(action, opts)
	if err != nil {
		return err
	}
	return c.put(ctx, c.rdfGroupResource(array, rdfgNum, "volume", deviceID), payload, nil)
}
