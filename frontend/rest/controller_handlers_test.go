// Copyright 2025 NetApp, Inc. All Rights Reserved.

package rest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/pmax-drivers/powermax/config"
	"github.com/pmax-drivers/powermax/core"
	mockcore "github.com/pmax-drivers/powermax/mocks/mock_core"
	"github.com/pmax-drivers/powermax/storage"
	"github.com/pmax-drivers/powermax/utils/errors"
)

func newTestRouter(t *testing.T) (http.Handler, *mockcore.MockOrchestrator) {
	mockOrchestrator := mockcore.NewMockOrchestrator(gomock.NewController(t))
	orchestrator = mockOrchestrator
	return NewRouter(), mockOrchestrator
}

func serve(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, target interface{}) {
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), target))
}

func TestHTTPStatusCodeForError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"nil", nil, http.StatusCreated},
		{"notReady", errors.NotReadyError(), http.StatusServiceUnavailable},
		{"notFound", errors.NotFoundError("volume vol-1 not found"), http.StatusNotFound},
		{"wrappedNotFound", fmt.Errorf("lookup; %w", errors.NotFoundError("gone")), http.StatusNotFound},
		{"invalidInput", errors.InvalidInputError("bad"), http.StatusBadRequest},
		{"unsupported", errors.UnsupportedError("no"), http.StatusBadRequest},
		{"capacityRange", errors.UnsupportedCapacityRangeError(fmt.Errorf("too big")), http.StatusBadRequest},
		{"alreadyExists", errors.AlreadyExistsError("dup"), http.StatusConflict},
		{"inUse", errors.ResourceInUseError("busy"), http.StatusConflict},
		{"tooMany", errors.TooManyRequestsError("slow down"), http.StatusTooManyRequests},
		{"backend", errors.VolumeBackendAPIError("array said no"), http.StatusInternalServerError},
		{"generic", fmt.Errorf("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, httpStatusCodeForError(tt.err, http.StatusCreated))
		})
	}
}

func TestGetVersion(t *testing.T) {
	router, mockOrchestrator := newTestRouter(t)
	mockOrchestrator.EXPECT().GetVersion(gomock.Any()).Return("25.10.0", nil)

	rec := serve(router, http.MethodGet, config.VersionURL, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	response := &GetVersionResponse{}
	decode(t, rec, response)
	assert.Equal(t, "25.10.0", response.Version)
	assert.NotEmpty(t, response.GoVersion)
	assert.Empty(t, response.Error)
}

func TestGetVersion_NotReady(t *testing.T) {
	router, mockOrchestrator := newTestRouter(t)
	mockOrchestrator.EXPECT().GetVersion(gomock.Any()).Return("", errors.NotReadyError())

	rec := serve(router, http.MethodGet, config.VersionURL, "")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestGetBackendAndStats(t *testing.T) {
	router, mockOrchestrator := newTestRouter(t)
	mockOrchestrator.EXPECT().GetBackend(gomock.Any()).Return(&core.BackendExternal{
		Name: "pmax", Driver: config.PowerMaxSANStorageDriverName, Volumes: 3,
	}, nil)
	mockOrchestrator.EXPECT().GetStats(gomock.Any()).Return(&storage.VolumeStats{
		BackendName: "pmax",
		Pools:       []storage.PoolStats{{PoolName: "Diamond+SRP_1+000197800123"}},
	}, nil)

	rec := serve(router, http.MethodGet, config.BackendURL, "")
	require.Equal(t, http.StatusOK, rec.Code)
	backend := &GetBackendResponse{}
	decode(t, rec, backend)
	assert.Equal(t, 3, backend.Backend.Volumes)

	rec = serve(router, http.MethodGet, config.StatsURL, "")
	require.Equal(t, http.StatusOK, rec.Code)
	stats := &GetStatsResponse{}
	decode(t, rec, stats)
	require.Len(t, stats.Stats.Pools, 1)
	assert.Equal(t, "Diamond+SRP_1+000197800123", stats.Stats.Pools[0].PoolName)
}

func TestAddVolume(t *testing.T) {
	created := &storage.Volume{ID: "vol-1", SizeGiB: 10, ProviderLocation: &storage.ProviderLocation{
		DeviceID: "00123", Array: "000197800123",
	}}

	tests := []struct {
		name   string
		body   string
		expect func(m *mockcore.MockOrchestrator)
		code   int
	}{
		{
			name: "blank",
			body: `{"id":"vol-1","size":10}`,
			expect: func(m *mockcore.MockOrchestrator) {
				m.EXPECT().AddVolume(gomock.Any(), &storage.Volume{ID: "vol-1", SizeGiB: 10}).Return(created, nil)
			},
			code: http.StatusCreated,
		},
		{
			name: "clone",
			body: `{"id":"vol-1","sourceVolumeID":"vol-0"}`,
			expect: func(m *mockcore.MockOrchestrator) {
				m.EXPECT().CloneVolume(gomock.Any(), &storage.Volume{ID: "vol-1"}, "vol-0").Return(created, nil)
			},
			code: http.StatusCreated,
		},
		{
			name: "fromSnapshot",
			body: `{"id":"vol-1","sourceVolumeID":"vol-0","snapshotID":"snap-1"}`,
			expect: func(m *mockcore.MockOrchestrator) {
				m.EXPECT().CreateVolumeFromSnapshot(gomock.Any(), &storage.Volume{ID: "vol-1"}, "vol-0", "snap-1").
					Return(created, nil)
			},
			code: http.StatusCreated,
		},
		{
			name: "import",
			body: `{"id":"vol-1","importRef":"00123"}`,
			expect: func(m *mockcore.MockOrchestrator) {
				m.EXPECT().ImportVolume(gomock.Any(), &storage.Volume{ID: "vol-1"}, "00123").Return(created, nil)
			},
			code: http.StatusCreated,
		},
		{
			name:   "badJSON",
			body:   `{"id":`,
			expect: func(m *mockcore.MockOrchestrator) {},
			code:   http.StatusBadRequest,
		},
		{
			name:   "snapshotWithoutSource",
			body:   `{"id":"vol-1","snapshotID":"snap-1"}`,
			expect: func(m *mockcore.MockOrchestrator) {},
			code:   http.StatusBadRequest,
		},
		{
			name:   "importAndClone",
			body:   `{"id":"vol-1","importRef":"00123","sourceVolumeID":"vol-0"}`,
			expect: func(m *mockcore.MockOrchestrator) {},
			code:   http.StatusBadRequest,
		},
		{
			name: "duplicate",
			body: `{"id":"vol-1","size":10}`,
			expect: func(m *mockcore.MockOrchestrator) {
				m.EXPECT().AddVolume(gomock.Any(), gomock.Any()).
					Return(nil, errors.AlreadyExistsError("volume vol-1 already exists"))
			},
			code: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mockOrchestrator := newTestRouter(t)
			tt.expect(mockOrchestrator)

			rec := serve(router, http.MethodPost, config.VolumeURL, tt.body)

			assert.Equal(t, tt.code, rec.Code)
			response := &VolumeResponse{}
			decode(t, rec, response)
			if tt.code == http.StatusCreated {
				assert.Empty(t, response.Error)
				assert.Equal(t, "00123", response.Volume.ProviderLocation.DeviceID)
			} else {
				assert.NotEmpty(t, response.Error)
				assert.Nil(t, response.Volume)
			}
		})
	}
}

func TestListVolumes(t *testing.T) {
	router, mockOrchestrator := newTestRouter(t)
	mockOrchestrator.EXPECT().ListVolumes(gomock.Any()).Return(nil, nil)

	rec := serve(router, http.MethodGet, config.VolumeURL, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"volumes":[]}`, rec.Body.String())
}

func TestGetVolume(t *testing.T) {
	router, mockOrchestrator := newTestRouter(t)
	mockOrchestrator.EXPECT().GetVolume(gomock.Any(), "vol-1").Return(&storage.Volume{ID: "vol-1", SizeGiB: 5}, nil)
	mockOrchestrator.EXPECT().GetVolume(gomock.Any(), "vol-2").Return(nil, errors.NotFoundError("volume vol-2 not found"))

	rec := serve(router, http.MethodGet, config.VolumeURL+"/vol-1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	response := &GetVolumeResponse{}
	decode(t, rec, response)
	assert.Equal(t, uint64(5), response.Volume.SizeGiB)

	rec = serve(router, http.MethodGet, config.VolumeURL+"/vol-2", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteVolume(t *testing.T) {
	router, mockOrchestrator := newTestRouter(t)
	mockOrchestrator.EXPECT().DeleteVolume(gomock.Any(), "vol-1").Return(nil)
	mockOrchestrator.EXPECT().DeleteVolume(gomock.Any(), "vol-2").
		Return(errors.ResourceInUseError("volume vol-2 has snapshots"))

	rec := serve(router, http.MethodDelete, config.VolumeURL+"/vol-1", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(router, http.MethodDelete, config.VolumeURL+"/vol-2", "")
	assert.Equal(t, http.StatusConflict, rec.Code)
	response := &DeleteResponse{}
	decode(t, rec, response)
	assert.Contains(t, response.Error, "has snapshots")
}

func TestExtendVolume(t *testing.T) {
	router, mockOrchestrator := newTestRouter(t)
	mockOrchestrator.EXPECT().ResizeVolume(gomock.Any(), "vol-1", uint64(20)).Return(nil)

	rec := serve(router, http.MethodPost, config.VolumeURL+"/vol-1/extend", `{"size":20}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	response := &UpdateVolumeResponse{}
	decode(t, rec, response)
	assert.Equal(t, "vol-1", response.VolumeID)

	rec = serve(router, http.MethodPost, config.VolumeURL+"/vol-1/extend", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAttachDetachVolume(t *testing.T) {
	router, mockOrchestrator := newTestRouter(t)
	connector := &storage.Connector{Host: "node1", Initiator: "iqn.1993-08.org.debian:01:abc"}
	info := &storage.ConnectionInfo{
		DriverVolumeType: storage.DriverVolumeTypeISCSI,
		Data:             storage.ConnectionData{TargetIQN: "iqn.1992-04.com.emc:600009700bcbb70e3287017400000001"},
	}
	gomock.InOrder(
		mockOrchestrator.EXPECT().PublishVolume(gomock.Any(), "vol-1", connector).Return(info, nil),
		mockOrchestrator.EXPECT().UnpublishVolume(gomock.Any(), "vol-1", connector).Return(nil),
		mockOrchestrator.EXPECT().UnpublishVolume(gomock.Any(), "vol-1", gomock.Nil()).Return(nil),
	)

	rec := serve(router, http.MethodPost, config.VolumeURL+"/vol-1/attach",
		`{"connector":{"host":"node1","initiator":"iqn.1993-08.org.debian:01:abc"}}`)
	require.Equal(t, http.StatusOK, rec.Code)
	response := &AttachVolumeResponse{}
	decode(t, rec, response)
	assert.Equal(t, storage.DriverVolumeTypeISCSI, response.ConnectionInfo.DriverVolumeType)
	assert.Equal(t, info.Data.TargetIQN, response.ConnectionInfo.Data.TargetIQN)

	rec = serve(router, http.MethodPost, config.VolumeURL+"/vol-1/detach",
		`{"connector":{"host":"node1","initiator":"iqn.1993-08.org.debian:01:abc"}}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(router, http.MethodPost, config.VolumeURL+"/vol-1/detach", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAttachVolume_NoConnector(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := serve(router, http.MethodPost, config.VolumeURL+"/vol-1/attach", `{}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRetypeAndMigrateVolume(t *testing.T) {
	router, mockOrchestrator := newTestRouter(t)
	newType := &storage.VolumeType{Name: "gold", ExtraSpecs: map[string]string{"pool_name": "Gold+SRP_1+000197800123"}}
	mockOrchestrator.EXPECT().RetypeVolume(gomock.Any(), "vol-1", newType).
		Return(&storage.Volume{ID: "vol-1", VolumeType: *newType}, nil)
	mockOrchestrator.EXPECT().MigrateVolume(gomock.Any(), "vol-1", "Silver+SRP_1+000197800123").
		Return(nil, errors.UnsupportedError("migration across arrays is not supported"))

	rec := serve(router, http.MethodPost, config.VolumeURL+"/vol-1/retype",
		`{"volumeType":{"name":"gold","extraSpecs":{"pool_name":"Gold+SRP_1+000197800123"}}}`)
	require.Equal(t, http.StatusOK, rec.Code)
	response := &VolumeResponse{}
	decode(t, rec, response)
	assert.Equal(t, "gold", response.Volume.VolumeType.Name)

	rec = serve(router, http.MethodPost, config.VolumeURL+"/vol-1/migrate", `{"pool":"Silver+SRP_1+000197800123"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(router, http.MethodPost, config.VolumeURL+"/vol-1/migrate", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUnmanageVolume(t *testing.T) {
	router, mockOrchestrator := newTestRouter(t)
	mockOrchestrator.EXPECT().UnmanageVolume(gomock.Any(), "vol-1").Return(nil)

	rec := serve(router, http.MethodPost, config.VolumeURL+"/vol-1/unmanage", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetReplicationStatus(t *testing.T) {
	router, mockOrchestrator := newTestRouter(t)
	mockOrchestrator.EXPECT().GetReplicationStatus(gomock.Any(), "vol-1").
		Return(storage.ReplicationStatusEnabled, nil)

	rec := serve(router, http.MethodGet, config.VolumeURL+"/vol-1/replication", "")

	require.Equal(t, http.StatusOK, rec.Code)
	response := &GetReplicationStatusResponse{}
	decode(t, rec, response)
	assert.Equal(t, storage.ReplicationStatusEnabled, response.ReplicationStatus)
	assert.Equal(t, "vol-1", response.VolumeID)
}

func TestSnapshots(t *testing.T) {
	router, mockOrchestrator := newTestRouter(t)
	snapshot := &storage.Snapshot{ID: "snap-1", VolumeID: "vol-1", VolumeSizeGiB: 10}
	mockOrchestrator.EXPECT().CreateSnapshot(gomock.Any(), &storage.Snapshot{ID: "snap-1", VolumeID: "vol-1"}).
		Return(snapshot, nil)
	mockOrchestrator.EXPECT().ListSnapshotsForVolume(gomock.Any(), "vol-1").
		Return([]*storage.Snapshot{snapshot}, nil)
	mockOrchestrator.EXPECT().GetSnapshot(gomock.Any(), "vol-1", "snap-1").Return(snapshot, nil)
	mockOrchestrator.EXPECT().RestoreSnapshot(gomock.Any(), "vol-1", "snap-1").Return(nil)
	mockOrchestrator.EXPECT().DeleteSnapshot(gomock.Any(), "vol-1", "snap-1").Return(nil)

	base := config.VolumeURL + "/vol-1/snapshot"

	rec := serve(router, http.MethodPost, base, `{"id":"snap-1"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	created := &SnapshotResponse{}
	decode(t, rec, created)
	assert.Equal(t, uint64(10), created.Snapshot.VolumeSizeGiB)

	rec = serve(router, http.MethodGet, base, "")
	require.Equal(t, http.StatusOK, rec.Code)
	list := &ListSnapshotsResponse{}
	decode(t, rec, list)
	assert.Len(t, list.Snapshots, 1)

	rec = serve(router, http.MethodGet, base+"/snap-1", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(router, http.MethodPost, base+"/snap-1/restore", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(router, http.MethodDelete, base+"/snap-1", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestFailover(t *testing.T) {
	router, mockOrchestrator := newTestRouter(t)
	mockOrchestrator.EXPECT().Failover(gomock.Any(), "000197800124").Return(&core.FailoverResult{
		ActiveBackendID: "000197800124",
		Updates: []*storage.VolumeUpdate{
			{VolumeID: "vol-1", ReplicationStatus: storage.ReplicationStatusFailedOver},
		},
	}, nil)
	mockOrchestrator.EXPECT().Failover(gomock.Any(), "").
		Return(nil, errors.InvalidInputError("no replication target named"))

	rec := serve(router, http.MethodPost, config.FailoverURL, `{"backendID":"000197800124"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	response := &FailoverResponse{}
	decode(t, rec, response)
	assert.Equal(t, "000197800124", response.Result.ActiveBackendID)
	require.Len(t, response.Result.Updates, 1)
	assert.Equal(t, storage.ReplicationStatusFailedOver, response.Result.Updates[0].ReplicationStatus)

	rec = serve(router, http.MethodPost, config.FailoverURL, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRateLimiterMiddleware(t *testing.T) {
	handler := rateLimiterMiddleware(1, 1)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	first := httptest.NewRecorder()
	handler.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/", nil))
	second := httptest.NewRecorder()
	handler.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.NotEmpty(t, second.Header().Get("Retry-After"))
}
