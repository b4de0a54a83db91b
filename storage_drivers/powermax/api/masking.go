// Copyright 2025 NetApp, Inc. All Rights Reserved.

package api

import (
	"context"
	"net/http"
	"net/url"

	. "github.com/pmax-drivers/powermax/logging"
	"github.com/pmax-drivers/powermax/utils/errors"
)

func (c *Client) GetMaskingView(ctx context.Context, array, mvName string) (*MaskingView, error) {
	if err := c.checkArray(array); err != nil {
		return nil, err
	}
	mv := &MaskingView{}
	if err := c.get(ctx, c.sloResource(array, "maskingview", mvName), nil, mv); err != nil {
		return nil, err
	}
	return mv, nil
}

func (c *Client) getMaskingViewIDs(ctx context.Context, array string, query url.Values) ([]string, error) {
	if err := c.checkArray(array); err != nil {
		return nil, err
	}
	result := &MaskingViewList{}
	if err := c.get(ctx, c.sloResource(array, "maskingview"), query, result); err != nil {
		if errors.IsNotFoundError(err) {
			return []string{}, nil
		}
		return nil, err
	}
	return result.MaskingViewIDs, nil
}

// GetMaskingViewsForStorageGroup lists the masking views that expose the storage group.
func (c *Client) GetMaskingViewsForStorageGroup(ctx context.Context, array, sgName string) ([]string, error) {
	return c.getMaskingViewIDs(ctx, array, url.Values{"storage_group_name": []string{sgName}})
}

// GetMaskingViewsForHost lists the masking views that use the initiator group.
func (c *Client) GetMaskingViewsForHost(ctx context.Context, array, hostName string) ([]string, error) {
	return c.getMaskingViewIDs(ctx, array, url.Values{"host_or_host_group_name": []string{hostName}})
}

func (c *Client) CreateMaskingView(ctx context.Context, array, mvName, hostName, pgName, sgName string) error {
	if err := c.checkArray(array); err != nil {
		return err
	}
	payload := createMaskingViewParam{
		MaskingViewID: mvName,
		HostOrHostGroupSelection: hostOrHostGroupSelection{
			UseExistingHostParam: &useExistingHostParam{HostID: hostName},
		},
		PortGroupSelection: portGroupSelection{
			UseExistingPortGroupParam: &useExistingPortGroupParam{PortGroupID: pgName},
		},
		StorageGroupSelection: storageGroupSelection{
			UseExistingStorageGroupParam: &useExistingStorageGroupParam{StorageGroupID: sgName},
		},
		ExecutionOption: ExecutionAsync,
	}
	if err := c.post(ctx, c.sloResource(array, "maskingview"), payload, nil); err != nil {
		if errors.BackendAPIStatusCode(err) == http.StatusConflict {
			return errors.AlreadyExistsError("masking view %s already exists", mvName)
		}
		return err
	}

	Logc(ctx).WithFields(LogFields{
		"array":        array,
		"maskingView":  mvName,
		"host":         hostName,
		"portGroup":    pgName,
		"storageGroup": sgName,
	}).Debug("Created masking view.")
	return nil
}

func (c *Client) DeleteMaskingView(ctx context.Context, array, mvName string) error {
	if err := c.checkArray(array); err != nil {
		return err
	}
	return c.delete(ctx, c.sloResource(array, "maskingview", mvName), nil)
}

// GetMaskingViewConnections returns the paths through which the masking view presents a device.
func (c *Client) GetMaskingViewConnections(
	ctx context.Context, array, mvName, deviceID string,
) ([]MaskingViewConnection, error) {
	if err := c.checkArray(array); err != nil {
		return nil, err
	}
	var query url.Values
	if deviceID != "" {
		query = url.Values{"volume_id": []string{deviceID}}
	}
	result := &MaskingViewConnectionsResult{}
	if err := c.get(ctx, c.sloResource(array, "maskingview", mvName, "connections"), query, result); err != nil {
		return nil, err
	}
	return result.Connections, nil
}

func (c *Client) GetPortGroup(ctx context.Context, array, pgName string) (*PortGroup, error) {
	if err := c.checkArray(array); err != nil {
		return nil, err
	}
	pg := &PortGroup{}
	if err := c.get(ctx, c.sloResource(array, "portgroup", pgName), nil, pg); err != nil {
		return nil, err
	}
	return pg, nil
}

func (c *Client) GetPort(ctx context.Context, array, directorID, portID string) (*Port, error) {
	if err := c.checkArray(array); err != nil {
		return nil, err
	}
	port := &Port{}
	if err := c.get(ctx, c.sloResource(array, "director", directorID, "port", portID), nil, port); err != nil {
		return nil, err
	}
	return port, nil
}

// GetHost returns the named initiator group, or a NotFoundError.
func (c *Client) GetHost(ctx context.Context, array, hostName string) (*Host, error) {
	if err := c.checkArray(array); err != nil {
		return nil, err
	}
	host := &Host{}
	if err := c.get(ctx, c.sloResource(array, "host", hostName), nil, host); err != nil {
		return nil, err
	}
	return host, nil
}

func (c *Client) CreateHost(
	ctx context.Context, array, hostName string, initiatorIDs []string, flags *HostFlags,
) (*Host, error) {
	if err := c.checkArray(array); err != nil {
		return nil, err
	}
	payload := createHostParam{
		HostID:          hostName,
		InitiatorIDs:    initiatorIDs,
		HostFlags:       flags,
		ExecutionOption: ExecutionAsync,
	}
	if err := c.post(ctx, c.sloResource(array, "host"), payload, nil); err != nil {
		if errors.BackendAPIStatusCode(err) == http.StatusConflict {
			return nil, errors.AlreadyExistsError("initiator group %s already exists", hostName)
		}
		return nil, err
	}
	return c.GetHost(ctx, array, hostName)
}

func (c *Client) DeleteHost(ctx context.Context, array, hostName string) error {
	if err := c.checkArray(array); err != nil {
		return err
	}
	return c.delete(ctx, c.sloResource(array, "host", hostName), nil)
}

// GetInitiatorIDs finds the array initiator records for a host bus adapter (an IQN or WWPN).
func (c *Client) GetInitiatorIDs(ctx context.Context, array, hba string) ([]string, error) {
	if err := c.checkArray(array); err != nil {
		return nil, err
	}
	var query url.Values
	if hba != "" {
		query = url.Values{"initiator_hba": []string{hba}}
	}
	result := &InitiatorList{}
	if err := c.get(ctx, c.sloResource(array, "initiator"), query, result); err != nil {
		if errors.IsNotFoundError(err) {
			return []string{}, nil
		}
		return nil, err
	}
	return result.InitiatorIDs, nil
}

func (c *Client) GetInitiator(ctx context.Context, array, initiatorID string) (*Initiator, error) {
	if err := c.checkArray(array); err != nil {
		return nil, err
	}
	initiator := &Initiator{}
	if err := c.get(ctx, c.sloResource(array, "initiator", initiatorID), nil, initiator); err != nil {
		return nil, err
	}
	return initiator, nil
}
