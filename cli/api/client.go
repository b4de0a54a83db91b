// Copyright 2025 NetApp, Inc. All Rights Reserved.

package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"slices"

	"github.com/pmax-drivers/powermax/config"
	"github.com/pmax-drivers/powermax/core"
	"github.com/pmax-drivers/powermax/frontend/rest"
	"github.com/pmax-drivers/powermax/storage"
	"github.com/pmax-drivers/powermax/utils/errors"
)

// Client drives a running PowerMax REST frontend.  It satisfies core.Orchestrator so the CLI treats a
// remote server and an in-process orchestrator alike.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ core.Orchestrator = &Client{}

// NewClient returns a client for the frontend listening at server (host:port).
func NewClient(server string) *Client {
	return &Client{
		baseURL:    "http://" + server + config.BaseURL,
		httpClient: &http.Client{Timeout: HTTPClientTimeout},
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

// errorForStatus turns a failed frontend response back into the typed error the server reported.
func errorForStatus(statusCode int, message string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}
	switch statusCode {
	case http.StatusServiceUnavailable:
		return errors.NotReadyError()
	case http.StatusNotFound:
		return errors.NotFoundError("%s", message)
	case http.StatusBadRequest:
		return errors.InvalidInputError("%s", message)
	case http.StatusConflict:
		return errors.ResourceInUseError("%s", message)
	case http.StatusTooManyRequests:
		return errors.TooManyRequestsError("%s", message)
	default:
		return errors.VolumeBackendAPIErrorWithStatus(statusCode, "%s", message)
	}
}

// do sends a request and decodes the response.  Any status outside expected becomes a typed error.
func (c *Client) do(
	ctx context.Context, method, path string, request, response interface{}, expected ...int,
) error {
	var body []byte
	if request != nil {
		var err error
		if body, err = json.Marshal(request); err != nil {
			return fmt.Errorf("could not encode request; %v", err)
		}
	}

	resp, respBody, err := InvokeRESTAPI(ctx, c.httpClient, method, c.baseURL+path, body)
	if err != nil {
		return err
	}

	if !slices.Contains(expected, resp.StatusCode) {
		var errResponse errorResponse
		_ = json.Unmarshal(respBody, &errResponse)
		return errorForStatus(resp.StatusCode, errResponse.Error)
	}
	if response != nil && len(respBody) > 0 {
		if err = json.Unmarshal(respBody, response); err != nil {
			return fmt.Errorf("could not decode response; %v", err)
		}
	}
	return nil
}

func volumePath(volumeID string) string {
	return "/volume/" + url.PathEscape(volumeID)
}

func snapshotPath(volumeID, snapshotID string) string {
	return volumePath(volumeID) + "/snapshot/" + url.PathEscape(snapshotID)
}

// Bootstrap checks that the frontend is reachable.
func (c *Client) Bootstrap(ctx context.Context) error {
	_, err := c.GetVersion(ctx)
	return err
}

func (c *Client) Stop(context.Context) {}

func (c *Client) GetVersion(ctx context.Context) (string, error) {
	var response rest.GetVersionResponse
	if err := c.do(ctx, http.MethodGet, "/version", nil, &response, http.StatusOK); err != nil {
		return "", err
	}
	return response.Version, nil
}

func (c *Client) GetBackend(ctx context.Context) (*core.BackendExternal, error) {
	var response rest.GetBackendResponse
	if err := c.do(ctx, http.MethodGet, "/backend", nil, &response, http.StatusOK); err != nil {
		return nil, err
	}
	return response.Backend, nil
}

func (c *Client) GetStats(ctx context.Context) (*storage.VolumeStats, error) {
	var response rest.GetStatsResponse
	if err := c.do(ctx, http.MethodGet, "/stats", nil, &response, http.StatusOK); err != nil {
		return nil, err
	}
	return response.Stats, nil
}

func (c *Client) addVolume(ctx context.Context, request *rest.AddVolumeRequest) (*storage.Volume, error) {
	var response rest.VolumeResponse
	if err := c.do(ctx, http.MethodPost, "/volume", request, &response, http.StatusCreated); err != nil {
		return nil, err
	}
	return response.Volume, nil
}

func (c *Client) AddVolume(ctx context.Context, volume *storage.Volume) (*storage.Volume, error) {
	return c.addVolume(ctx, &rest.AddVolumeRequest{Volume: *volume})
}

func (c *Client) CloneVolume(
	ctx context.Context, volume *storage.Volume, sourceVolumeID string,
) (*storage.Volume, error) {
	return c.addVolume(ctx, &rest.AddVolumeRequest{Volume: *volume, SourceVolumeID: sourceVolumeID})
}

func (c *Client) CreateVolumeFromSnapshot(
	ctx context.Context, volume *storage.Volume, sourceVolumeID, snapshotID string,
) (*storage.Volume, error) {
	return c.addVolume(ctx, &rest.AddVolumeRequest{
		Volume:         *volume,
		SourceVolumeID: sourceVolumeID,
		SnapshotID:     snapshotID,
	})
}

func (c *Client) ImportVolume(
	ctx context.Context, volume *storage.Volume, existingRef string,
) (*storage.Volume, error) {
	return c.addVolume(ctx, &rest.AddVolumeRequest{Volume: *volume, ImportRef: existingRef})
}

func (c *Client) GetVolume(ctx context.Context, volumeID string) (*storage.Volume, error) {
	var response rest.GetVolumeResponse
	if err := c.do(ctx, http.MethodGet, volumePath(volumeID), nil, &response, http.StatusOK); err != nil {
		return nil, err
	}
	return response.Volume, nil
}

func (c *Client) ListVolumes(ctx context.Context) ([]*storage.Volume, error) {
	var response rest.ListVolumesResponse
	if err := c.do(ctx, http.MethodGet, "/volume", nil, &response, http.StatusOK); err != nil {
		return nil, err
	}
	return response.Volumes, nil
}

func (c *Client) DeleteVolume(ctx context.Context, volumeID string) error {
	return c.do(ctx, http.MethodDelete, volumePath(volumeID), nil, nil, http.StatusOK)
}

func (c *Client) ResizeVolume(ctx context.Context, volumeID string, newSizeGiB uint64) error {
	return c.do(ctx, http.MethodPost, volumePath(volumeID)+"/extend",
		&rest.ExtendVolumeRequest{SizeGiB: newSizeGiB}, nil, http.StatusOK)
}

func (c *Client) PublishVolume(
	ctx context.Context, volumeID string, connector *storage.Connector,
) (*storage.ConnectionInfo, error) {
	var response rest.AttachVolumeResponse
	if err := c.do(ctx, http.MethodPost, volumePath(volumeID)+"/attach",
		&rest.ConnectorRequest{Connector: connector}, &response, http.StatusOK); err != nil {
		return nil, err
	}
	return response.ConnectionInfo, nil
}

func (c *Client) UnpublishVolume(ctx context.Context, volumeID string, connector *storage.Connector) error {
	return c.do(ctx, http.MethodPost, volumePath(volumeID)+"/detach",
		&rest.ConnectorRequest{Connector: connector}, nil, http.StatusOK)
}

func (c *Client) RetypeVolume(
	ctx context.Context, volumeID string, newType *storage.VolumeType,
) (*storage.Volume, error) {
	var response rest.VolumeResponse
	if err := c.do(ctx, http.MethodPost, volumePath(volumeID)+"/retype",
		&rest.RetypeVolumeRequest{VolumeType: newType}, &response, http.StatusOK); err != nil {
		return nil, err
	}
	return response.Volume, nil
}

func (c *Client) MigrateVolume(ctx context.Context, volumeID, targetPool string) (*storage.Volume, error) {
	var response rest.VolumeResponse
	if err := c.do(ctx, http.MethodPost, volumePath(volumeID)+"/migrate",
		&rest.MigrateVolumeRequest{Pool: targetPool}, &response, http.StatusOK); err != nil {
		return nil, err
	}
	return response.Volume, nil
}

func (c *Client) UnmanageVolume(ctx context.Context, volumeID string) error {
	return c.do(ctx, http.MethodPost, volumePath(volumeID)+"/unmanage", nil, nil, http.StatusOK)
}

func (c *Client) GetReplicationStatus(ctx context.Context, volumeID string) (storage.ReplicationStatus, error) {
	var response rest.GetReplicationStatusResponse
	if err := c.do(ctx, http.MethodGet, volumePath(volumeID)+"/replication", nil, &response,
		http.StatusOK); err != nil {
		return "", err
	}
	return response.ReplicationStatus, nil
}

func (c *Client) CreateSnapshot(ctx context.Context, snapshot *storage.Snapshot) (*storage.Snapshot, error) {
	var response rest.SnapshotResponse
	if err := c.do(ctx, http.MethodPost, volumePath(snapshot.VolumeID)+"/snapshot",
		&rest.AddSnapshotRequest{ID: snapshot.ID, Name: snapshot.Name}, &response, http.StatusCreated); err != nil {
		return nil, err
	}
	return response.Snapshot, nil
}

func (c *Client) GetSnapshot(ctx context.Context, volumeID, snapshotID string) (*storage.Snapshot, error) {
	var response rest.GetSnapshotResponse
	if err := c.do(ctx, http.MethodGet, snapshotPath(volumeID, snapshotID), nil, &response,
		http.StatusOK); err != nil {
		return nil, err
	}
	return response.Snapshot, nil
}

func (c *Client) ListSnapshotsForVolume(ctx context.Context, volumeID string) ([]*storage.Snapshot, error) {
	var response rest.ListSnapshotsResponse
	if err := c.do(ctx, http.MethodGet, volumePath(volumeID)+"/snapshot", nil, &response,
		http.StatusOK); err != nil {
		return nil, err
	}
	return response.Snapshots, nil
}

func (c *Client) DeleteSnapshot(ctx context.Context, volumeID, snapshotID string) error {
	return c.do(ctx, http.MethodDelete, snapshotPath(volumeID, snapshotID), nil, nil, http.StatusOK)
}

func (c *Client) RestoreSnapshot(ctx context.Context, volumeID, snapshotID string) error {
	return c.do(ctx, http.MethodPost, snapshotPath(volumeID, snapshotID)+"/restore", nil, nil, http.StatusOK)
}

func (c *Client) Failover(ctx context.Context, secondaryID string) (*core.FailoverResult, error) {
	var response rest.FailoverResponse
	if err := c.do(ctx, http.MethodPost, "/failover", &rest.FailoverRequest{BackendID: secondaryID}, &response,
		http.StatusOK); err != nil {
		return nil, err
	}
	return response.Result, nil
}
