// Copyright 2025 NetApp, Inc. All Rights Reserved.

package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pmax-drivers/powermax/config"
	"github.com/pmax-drivers/powermax/logging"
	"github.com/pmax-drivers/powermax/storage"
	"github.com/pmax-drivers/powermax/utils/errors"
)

const testServer = "127.0.0.1:8000"

var baseURL = "http://" + testServer + config.BaseURL

func TestMain(m *testing.M) {
	// Disable any standard log output
	logging.InitLogOutput(io.Discard)
	os.Exit(m.Run())
}

func newTestClient() (*Client, *httpmock.MockTransport) {
	client := NewClient(testServer)
	mt := httpmock.NewMockTransport()
	client.httpClient.Transport = mt
	return client, mt
}

func TestInvokeRESTAPI_RequestID(t *testing.T) {
	client, mt := newTestClient()
	mt.RegisterResponder("GET", baseURL+"/version", func(req *http.Request) (*http.Response, error) {
		assert.Equal(t, "req-42", req.Header.Get("X-Request-ID"))
		assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
		return httpmock.NewStringResponse(200, `{"version":"25.10.0"}`), nil
	})

	ctx := logging.GenerateRequestContext(context.Background(), "req-42", logging.ContextSourceCLI,
		logging.WorkflowNone, logging.LogLayerCLI)
	version, err := client.GetVersion(ctx)

	require.NoError(t, err)
	assert.Equal(t, "25.10.0", version)
}

func TestInvokeRESTAPI_TransportError(t *testing.T) {
	client, mt := newTestClient()
	mt.RegisterResponder("GET", baseURL+"/version", httpmock.NewErrorResponder(fmt.Errorf("connection refused")))

	err := client.Bootstrap(context.Background())

	assert.ErrorContains(t, err, "error communicating with the PowerMax REST frontend")
	assert.ErrorContains(t, err, "connection refused")
}

func TestClient_ErrorMapping(t *testing.T) {
	tests := []struct {
		status int
		check  func(error) bool
	}{
		{http.StatusServiceUnavailable, errors.IsNotReadyError},
		{http.StatusNotFound, errors.IsNotFoundError},
		{http.StatusBadRequest, errors.IsInvalidInputError},
		{http.StatusConflict, errors.IsResourceInUseError},
		{http.StatusTooManyRequests, errors.IsTooManyRequestsError},
		{http.StatusInternalServerError, errors.IsVolumeBackendAPIError},
	}
	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			client, mt := newTestClient()
			mt.RegisterResponder("GET", baseURL+"/volume/vol-1",
				httpmock.NewStringResponder(tt.status, `{"error":"volume vol-1 says no"}`))

			_, err := client.GetVolume(context.Background(), "vol-1")

			require.Error(t, err)
			assert.True(t, tt.check(err), err.Error())
		})
	}
}

func TestClient_ErrorMessageCarried(t *testing.T) {
	client, mt := newTestClient()
	mt.RegisterResponder("DELETE", baseURL+"/volume/vol-1",
		httpmock.NewStringResponder(http.StatusConflict, `{"error":"volume vol-1 has snapshots"}`))

	err := client.DeleteVolume(context.Background(), "vol-1")

	assert.EqualError(t, err, "volume vol-1 has snapshots")
}

func TestClient_AddVolumeVariants(t *testing.T) {
	client, mt := newTestClient()
	var bodies []map[string]interface{}
	mt.RegisterResponder("POST", baseURL+"/volume", func(req *http.Request) (*http.Response, error) {
		body := make(map[string]interface{})
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			return nil, err
		}
		bodies = append(bodies, body)
		return httpmock.NewJsonResponse(http.StatusCreated, map[string]interface{}{
			"volume": map[string]interface{}{"id": body["id"], "size": 10},
		})
	})
	ctx := context.Background()
	volume := &storage.Volume{ID: "vol-1", SizeGiB: 10}

	created, err := client.AddVolume(ctx, volume)
	require.NoError(t, err)
	assert.Equal(t, uint64(10), created.SizeGiB)
	_, err = client.CloneVolume(ctx, volume, "vol-0")
	require.NoError(t, err)
	_, err = client.CreateVolumeFromSnapshot(ctx, volume, "vol-0", "snap-1")
	require.NoError(t, err)
	_, err = client.ImportVolume(ctx, volume, "00123")
	require.NoError(t, err)

	require.Len(t, bodies, 4)
	assert.Equal(t, "vol-1", bodies[0]["id"])
	assert.NotContains(t, bodies[0], "sourceVolumeID")
	assert.Equal(t, "vol-0", bodies[1]["sourceVolumeID"])
	assert.Equal(t, "snap-1", bodies[2]["snapshotID"])
	assert.Equal(t, "00123", bodies[3]["importRef"])
}

func TestClient_VolumeOperations(t *testing.T) {
	client, mt := newTestClient()
	ctx := context.Background()
	connector := &storage.Connector{Host: "node1", WWPNs: []string{"10000090fa000001"}}

	mt.RegisterResponder("GET", baseURL+"/volume",
		httpmock.NewStringResponder(200, `{"volumes":[{"id":"vol-1","size":1},{"id":"vol-2","size":2}]}`))
	mt.RegisterResponder("POST", baseURL+"/volume/vol-1/extend", func(req *http.Request) (*http.Response, error) {
		body, _ := io.ReadAll(req.Body)
		assert.JSONEq(t, `{"size":20}`, string(body))
		return httpmock.NewStringResponse(200, `{"volumeID":"vol-1"}`), nil
	})
	mt.RegisterResponder("POST", baseURL+"/volume/vol-1/attach", httpmock.NewStringResponder(200,
		`{"connectionInfo":{"driver_volume_type":"fibre_channel","data":{"target_discovered":true,"volume_id":"vol-1","discard":true,"target_lun":1,"target_wwn":["5000097300000001"]}}}`))
	mt.RegisterResponder("POST", baseURL+"/volume/vol-1/detach", httpmock.NewStringResponder(200, `{}`))
	mt.RegisterResponder("POST", baseURL+"/volume/vol-1/retype",
		httpmock.NewStringResponder(200, `{"volume":{"id":"vol-1","volumeType":{"name":"gold"}}}`))
	mt.RegisterResponder("POST", baseURL+"/volume/vol-1/migrate",
		httpmock.NewStringResponder(200, `{"volume":{"id":"vol-1"}}`))
	mt.RegisterResponder("POST", baseURL+"/volume/vol-1/unmanage", httpmock.NewStringResponder(200, `{}`))
	mt.RegisterResponder("GET", baseURL+"/volume/vol-1/replication",
		httpmock.NewStringResponder(200, `{"volumeID":"vol-1","replicationStatus":"enabled"}`))

	volumes, err := client.ListVolumes(ctx)
	require.NoError(t, err)
	assert.Len(t, volumes, 2)

	require.NoError(t, client.ResizeVolume(ctx, "vol-1", 20))

	info, err := client.PublishVolume(ctx, "vol-1", connector)
	require.NoError(t, err)
	assert.Equal(t, storage.DriverVolumeTypeFC, info.DriverVolumeType)
	assert.Equal(t, []string{"5000097300000001"}, info.Data.TargetWWNs)

	require.NoError(t, client.UnpublishVolume(ctx, "vol-1", nil))

	retyped, err := client.RetypeVolume(ctx, "vol-1", &storage.VolumeType{Name: "gold"})
	require.NoError(t, err)
	assert.Equal(t, "gold", retyped.VolumeType.Name)

	_, err = client.MigrateVolume(ctx, "vol-1", "Gold+SRP_1+000197800123")
	require.NoError(t, err)
	require.NoError(t, client.UnmanageVolume(ctx, "vol-1"))

	status, err := client.GetReplicationStatus(ctx, "vol-1")
	require.NoError(t, err)
	assert.Equal(t, storage.ReplicationStatusEnabled, status)
}

func TestClient_Snapshots(t *testing.T) {
	client, mt := newTestClient()
	ctx := context.Background()
	snapshotJSON := `{"id":"snap-1","volumeID":"vol-1","volumeSize":10}`

	mt.RegisterResponder("POST", baseURL+"/volume/vol-1/snapshot",
		httpmock.NewStringResponder(http.StatusCreated, `{"snapshot":`+snapshotJSON+`}`))
	mt.RegisterResponder("GET", baseURL+"/volume/vol-1/snapshot",
		httpmock.NewStringResponder(200, `{"snapshots":[`+snapshotJSON+`]}`))
	mt.RegisterResponder("GET", baseURL+"/volume/vol-1/snapshot/snap-1",
		httpmock.NewStringResponder(200, `{"snapshot":`+snapshotJSON+`}`))
	mt.RegisterResponder("POST", baseURL+"/volume/vol-1/snapshot/snap-1/restore",
		httpmock.NewStringResponder(200, `{"volumeID":"vol-1"}`))
	mt.RegisterResponder("DELETE", baseURL+"/volume/vol-1/snapshot/snap-1", httpmock.NewStringResponder(200, `{}`))

	snapshot, err := client.CreateSnapshot(ctx, &storage.Snapshot{ID: "snap-1", VolumeID: "vol-1"})
	require.NoError(t, err)
	assert.Equal(t, uint64(10), snapshot.VolumeSizeGiB)

	snapshots, err := client.ListSnapshotsForVolume(ctx, "vol-1")
	require.NoError(t, err)
	assert.Len(t, snapshots, 1)

	_, err = client.GetSnapshot(ctx, "vol-1", "snap-1")
	require.NoError(t, err)
	require.NoError(t, client.RestoreSnapshot(ctx, "vol-1", "snap-1"))
	require.NoError(t, client.DeleteSnapshot(ctx, "vol-1", "snap-1"))
}

func TestClient_BackendStatsAndFailover(t *testing.T) {
	client, mt := newTestClient()
	ctx := context.Background()

	mt.RegisterResponder("GET", baseURL+"/backend",
		httpmock.NewStringResponder(200, `{"backend":{"name":"pmax","driver":"powermax-san","volumes":2}}`))
	mt.RegisterResponder("GET", baseURL+"/stats",
		httpmock.NewStringResponder(200, `{"stats":{"volume_backend_name":"pmax","pools":[]}}`))
	mt.RegisterResponder("POST", baseURL+"/failover", func(req *http.Request) (*http.Response, error) {
		body, _ := io.ReadAll(req.Body)
		assert.JSONEq(t, `{"backendID":"000197800124"}`, string(body))
		return httpmock.NewStringResponse(200, `{"result":{"activeBackendID":"000197800124","updates":[]}}`), nil
	})

	backend, err := client.GetBackend(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, backend.Volumes)

	stats, err := client.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, "pmax", stats.BackendName)

	result, err := client.Failover(ctx, "000197800124")
	require.NoError(t, err)
	assert.Equal(t, "000197800124", result.ActiveBackendID)
}
