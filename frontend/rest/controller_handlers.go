// Copyright 2025 NetApp, Inc. All Rights Reserved.

package rest

import (
	"net/http"
	"runtime"

	"github.com/pmax-drivers/powermax/core"
	. "github.com/pmax-drivers/powermax/logging"
	"github.com/pmax-drivers/powermax/storage"
	"github.com/pmax-drivers/powermax/utils/errors"
)

type GetVersionResponse struct {
	Version   string `json:"version"`
	GoVersion string `json:"goVersion"`
	Error     string `json:"error,omitempty"`
}

func GetVersion(w http.ResponseWriter, r *http.Request) {
	response := &GetVersionResponse{}
	GetGenericNoArg(w, r, response,
		func() int {
			version, err := orchestrator.GetVersion(r.Context())
			if err != nil {
				response.Error = err.Error()
			}
			response.Version = version
			response.GoVersion = runtime.Version()
			return httpStatusCodeForError(err, http.StatusOK)
		},
	)
}

type GetBackendResponse struct {
	Backend *core.BackendExternal `json:"backend"`
	Error   string                `json:"error,omitempty"`
}

func GetBackend(w http.ResponseWriter, r *http.Request) {
	response := &GetBackendResponse{}
	GetGenericNoArg(w, r, response,
		func() int {
			backend, err := orchestrator.GetBackend(r.Context())
			if err != nil {
				response.Error = err.Error()
			}
			response.Backend = backend
			return httpStatusCodeForError(err, http.StatusOK)
		},
	)
}

type GetStatsResponse struct {
	Stats *storage.VolumeStats `json:"stats"`
	Error string               `json:"error,omitempty"`
}

func GetStats(w http.ResponseWriter, r *http.Request) {
	response := &GetStatsResponse{}
	GetGenericNoArg(w, r, response,
		func() int {
			stats, err := orchestrator.GetStats(r.Context())
			if err != nil {
				response.Error = err.Error()
			}
			response.Stats = stats
			return httpStatusCodeForError(err, http.StatusOK)
		},
	)
}

// AddVolumeRequest describes a new volume.  At most one of SourceVolumeID, SnapshotID or ImportRef
// selects a clone, a create-from-snapshot or an import; with none set a blank volume is created.
type AddVolumeRequest struct {
	storage.Volume
	SourceVolumeID string `json:"sourceVolumeID,omitempty"`
	SnapshotID     string `json:"snapshotID,omitempty"`
	ImportRef      string `json:"importRef,omitempty"`
}

func (a *AddVolumeRequest) validate() error {
	sources := 0
	if a.ImportRef != "" {
		sources++
	}
	if a.SourceVolumeID != "" && a.SnapshotID == "" {
		sources++
	}
	if a.SnapshotID != "" {
		if a.SourceVolumeID == "" {
			return errors.InvalidInputError("snapshot %s requires its source volume", a.SnapshotID)
		}
		sources++
	}
	if sources > 1 {
		return errors.InvalidInputError("only one of source volume, snapshot or import reference may be given")
	}
	return nil
}

type VolumeResponse struct {
	Volume *storage.Volume `json:"volume,omitempty"`
	operationResult
}

func AddVolume(w http.ResponseWriter, r *http.Request) {
	response := &VolumeResponse{operationResult: newOperationResult("AddVolume", nil)}
	AddGeneric(w, r, response,
		func(body []byte) int {
			request := new(AddVolumeRequest)
			if err := unmarshalBody(body, request); err != nil {
				response.setError(err)
				return httpStatusCodeForError(err, http.StatusCreated)
			}
			if err := request.validate(); err != nil {
				response.setError(err)
				return httpStatusCodeForError(err, http.StatusCreated)
			}
			response.fields = LogFields{"volume": request.ID}

			var (
				volume *storage.Volume
				err    error
			)
			ctx := r.Context()
			switch {
			case request.ImportRef != "":
				volume, err = orchestrator.ImportVolume(ctx, &request.Volume, request.ImportRef)
			case request.SnapshotID != "":
				volume, err = orchestrator.CreateVolumeFromSnapshot(ctx, &request.Volume, request.SourceVolumeID,
					request.SnapshotID)
			case request.SourceVolumeID != "":
				volume, err = orchestrator.CloneVolume(ctx, &request.Volume, request.SourceVolumeID)
			default:
				volume, err = orchestrator.AddVolume(ctx, &request.Volume)
			}
			if err != nil {
				response.setError(err)
			}
			response.Volume = volume
			return httpStatusCodeForError(err, http.StatusCreated)
		},
	)
}

type ListVolumesResponse struct {
	Volumes []*storage.Volume `json:"volumes"`
	Error   string            `json:"error,omitempty"`
}

func ListVolumes(w http.ResponseWriter, r *http.Request) {
	response := &ListVolumesResponse{}
	ListGeneric(w, r, response,
		func() int {
			volumes, err := orchestrator.ListVolumes(r.Context())
			if err != nil {
				response.Error = err.Error()
			}
			if volumes == nil {
				volumes = make([]*storage.Volume, 0)
			}
			response.Volumes = volumes
			return httpStatusCodeForError(err, http.StatusOK)
		},
	)
}

type GetVolumeResponse struct {
	Volume *storage.Volume `json:"volume"`
	Error  string          `json:"error,omitempty"`
}

func GetVolume(w http.ResponseWriter, r *http.Request) {
	response := &GetVolumeResponse{}
	GetGeneric(w, r, "volume", response,
		func(volumeID string) int {
			volume, err := orchestrator.GetVolume(r.Context(), volumeID)
			if err != nil {
				response.Error = err.Error()
			}
			response.Volume = volume
			return httpStatusCodeForError(err, http.StatusOK)
		},
	)
}

func DeleteVolume(w http.ResponseWriter, r *http.Request) {
	DeleteGeneric(w, r, orchestrator.DeleteVolume, "volume")
}

type ExtendVolumeRequest struct {
	SizeGiB uint64 `json:"size"`
}

type UpdateVolumeResponse struct {
	VolumeID string `json:"volumeID"`
	operationResult
}

func ExtendVolume(w http.ResponseWriter, r *http.Request) {
	response := &UpdateVolumeResponse{operationResult: newOperationResult("ExtendVolume", nil)}
	UpdateGeneric(w, r, "volume", response,
		func(volumeID string, body []byte) int {
			response.VolumeID = volumeID
			request := new(ExtendVolumeRequest)
			if err := unmarshalBody(body, request); err != nil {
				response.setError(err)
				return httpStatusCodeForError(err, http.StatusOK)
			}
			response.fields = LogFields{"volume": volumeID, "size": request.SizeGiB}
			if request.SizeGiB == 0 {
				err := errors.InvalidInputError("a new size is required")
				response.setError(err)
				return httpStatusCodeForError(err, http.StatusOK)
			}
			err := orchestrator.ResizeVolume(r.Context(), volumeID, request.SizeGiB)
			if err != nil {
				response.setError(err)
			}
			return httpStatusCodeForError(err, http.StatusOK)
		},
	)
}

type ConnectorRequest struct {
	Connector *storage.Connector `json:"connector"`
}

type AttachVolumeResponse struct {
	ConnectionInfo *storage.ConnectionInfo `json:"connectionInfo,omitempty"`
	operationResult
}

func AttachVolume(w http.ResponseWriter, r *http.Request) {
	response := &AttachVolumeResponse{operationResult: newOperationResult("AttachVolume", nil)}
	UpdateGeneric(w, r, "volume", response,
		func(volumeID string, body []byte) int {
			request := new(ConnectorRequest)
			if err := unmarshalBody(body, request); err != nil {
				response.setError(err)
				return httpStatusCodeForError(err, http.StatusOK)
			}
			if request.Connector == nil {
				err := errors.InvalidInputError("a connector is required")
				response.setError(err)
				return httpStatusCodeForError(err, http.StatusOK)
			}
			response.fields = LogFields{"volume": volumeID, "host": request.Connector.Host}

			info, err := orchestrator.PublishVolume(r.Context(), volumeID, request.Connector)
			if err != nil {
				response.setError(err)
			}
			response.ConnectionInfo = info
			return httpStatusCodeForError(err, http.StatusOK)
		},
	)
}

// DetachVolume removes one host's access, or every host's access when the body carries no connector.
func DetachVolume(w http.ResponseWriter, r *http.Request) {
	response := &UpdateVolumeResponse{operationResult: newOperationResult("DetachVolume", nil)}
	UpdateGeneric(w, r, "volume", response,
		func(volumeID string, body []byte) int {
			response.VolumeID = volumeID
			request := new(ConnectorRequest)
			if len(body) > 0 {
				if err := unmarshalBody(body, request); err != nil {
					response.setError(err)
					return httpStatusCodeForError(err, http.StatusOK)
				}
			}
			fields := LogFields{"volume": volumeID}
			if request.Connector != nil {
				fields["host"] = request.Connector.Host
			}
			response.fields = fields

			err := orchestrator.UnpublishVolume(r.Context(), volumeID, request.Connector)
			if err != nil {
				response.setError(err)
			}
			return httpStatusCodeForError(err, http.StatusOK)
		},
	)
}

type RetypeVolumeRequest struct {
	VolumeType *storage.VolumeType `json:"volumeType"`
}

func RetypeVolume(w http.ResponseWriter, r *http.Request) {
	response := &VolumeResponse{operationResult: newOperationResult("RetypeVolume", nil)}
	UpdateGeneric(w, r, "volume", response,
		func(volumeID string, body []byte) int {
			request := new(RetypeVolumeRequest)
			if err := unmarshalBody(body, request); err != nil {
				response.setError(err)
				return httpStatusCodeForError(err, http.StatusOK)
			}
			if request.VolumeType == nil {
				err := errors.InvalidInputError("a volume type is required")
				response.setError(err)
				return httpStatusCodeForError(err, http.StatusOK)
			}
			response.fields = LogFields{"volume": volumeID, "volumeType": request.VolumeType.Name}

			volume, err := orchestrator.RetypeVolume(r.Context(), volumeID, request.VolumeType)
			if err != nil {
				response.setError(err)
			}
			response.Volume = volume
			return httpStatusCodeForError(err, http.StatusOK)
		},
	)
}

type MigrateVolumeRequest struct {
	Pool string `json:"pool"`
}

func MigrateVolume(w http.ResponseWriter, r *http.Request) {
	response := &VolumeResponse{operationResult: newOperationResult("MigrateVolume", nil)}
	UpdateGeneric(w, r, "volume", response,
		func(volumeID string, body []byte) int {
			request := new(MigrateVolumeRequest)
			if err := unmarshalBody(body, request); err != nil {
				response.setError(err)
				return httpStatusCodeForError(err, http.StatusOK)
			}
			if request.Pool == "" {
				err := errors.InvalidInputError("a target pool is required")
				response.setError(err)
				return httpStatusCodeForError(err, http.StatusOK)
			}
			response.fields = LogFields{"volume": volumeID, "pool": request.Pool}

			volume, err := orchestrator.MigrateVolume(r.Context(), volumeID, request.Pool)
			if err != nil {
				response.setError(err)
			}
			response.Volume = volume
			return httpStatusCodeForError(err, http.StatusOK)
		},
	)
}

func UnmanageVolume(w http.ResponseWriter, r *http.Request) {
	response := &UpdateVolumeResponse{operationResult: newOperationResult("UnmanageVolume", nil)}
	UpdateGeneric(w, r, "volume", response,
		func(volumeID string, _ []byte) int {
			response.VolumeID = volumeID
			response.fields = LogFields{"volume": volumeID}
			err := orchestrator.UnmanageVolume(r.Context(), volumeID)
			if err != nil {
				response.setError(err)
			}
			return httpStatusCodeForError(err, http.StatusOK)
		},
	)
}

type GetReplicationStatusResponse struct {
	VolumeID          string                    `json:"volumeID"`
	ReplicationStatus storage.ReplicationStatus `json:"replicationStatus"`
	Error             string                    `json:"error,omitempty"`
}

func GetReplicationStatus(w http.ResponseWriter, r *http.Request) {
	response := &GetReplicationStatusResponse{}
	GetGeneric(w, r, "volume", response,
		func(volumeID string) int {
			response.VolumeID = volumeID
			status, err := orchestrator.GetReplicationStatus(r.Context(), volumeID)
			if err != nil {
				response.Error = err.Error()
			}
			response.ReplicationStatus = status
			return httpStatusCodeForError(err, http.StatusOK)
		},
	)
}

type AddSnapshotRequest struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

type SnapshotResponse struct {
	Snapshot *storage.Snapshot `json:"snapshot,omitempty"`
	operationResult
}

func AddSnapshot(w http.ResponseWriter, r *http.Request) {
	response := &SnapshotResponse{operationResult: newOperationResult("AddSnapshot", nil)}
	UpdateGeneric(w, r, "volume", response,
		func(volumeID string, body []byte) int {
			request := new(AddSnapshotRequest)
			if err := unmarshalBody(body, request); err != nil {
				response.setError(err)
				return httpStatusCodeForError(err, http.StatusCreated)
			}
			response.fields = LogFields{"volume": volumeID, "snapshot": request.ID}

			snapshot, err := orchestrator.CreateSnapshot(r.Context(), &storage.Snapshot{
				ID:       request.ID,
				Name:     request.Name,
				VolumeID: volumeID,
			})
			if err != nil {
				response.setError(err)
			}
			response.Snapshot = snapshot
			return httpStatusCodeForError(err, http.StatusCreated)
		},
	)
}

type ListSnapshotsResponse struct {
	Snapshots []*storage.Snapshot `json:"snapshots"`
	Error     string              `json:"error,omitempty"`
}

func ListSnapshots(w http.ResponseWriter, r *http.Request) {
	response := &ListSnapshotsResponse{}
	GetGeneric(w, r, "volume", response,
		func(volumeID string) int {
			snapshots, err := orchestrator.ListSnapshotsForVolume(r.Context(), volumeID)
			if err != nil {
				response.Error = err.Error()
			}
			if snapshots == nil {
				snapshots = make([]*storage.Snapshot, 0)
			}
			response.Snapshots = snapshots
			return httpStatusCodeForError(err, http.StatusOK)
		},
	)
}

type GetSnapshotResponse struct {
	Snapshot *storage.Snapshot `json:"snapshot"`
	Error    string            `json:"error,omitempty"`
}

func GetSnapshot(w http.ResponseWriter, r *http.Request) {
	response := &GetSnapshotResponse{}
	GetGenericTwoArg(w, r, "volume", "snapshot", response,
		func(volumeID, snapshotID string) int {
			snapshot, err := orchestrator.GetSnapshot(r.Context(), volumeID, snapshotID)
			if err != nil {
				response.Error = err.Error()
			}
			response.Snapshot = snapshot
			return httpStatusCodeForError(err, http.StatusOK)
		},
	)
}

func DeleteSnapshot(w http.ResponseWriter, r *http.Request) {
	DeleteGenericTwoArg(w, r, orchestrator.DeleteSnapshot, "volume", "snapshot")
}

func RestoreSnapshot(w http.ResponseWriter, r *http.Request) {
	response := &UpdateVolumeResponse{operationResult: newOperationResult("RestoreSnapshot", nil)}
	UpdateGeneric(w, r, "volume", response,
		func(volumeID string, _ []byte) int {
			snapshotID := snapshotVar(r)
			response.VolumeID = volumeID
			response.fields = LogFields{"volume": volumeID, "snapshot": snapshotID}
			err := orchestrator.RestoreSnapshot(r.Context(), volumeID, snapshotID)
			if err != nil {
				response.setError(err)
			}
			return httpStatusCodeForError(err, http.StatusOK)
		},
	)
}

// FailoverRequest names the replication target to serve from.  "default" fails back to the primary array.
type FailoverRequest struct {
	BackendID string `json:"backendID"`
}

type FailoverResponse struct {
	Result *core.FailoverResult `json:"result,omitempty"`
	operationResult
}

func Failover(w http.ResponseWriter, r *http.Request) {
	response := &FailoverResponse{operationResult: newOperationResult("Failover", nil)}
	AddGeneric(w, r, response,
		func(body []byte) int {
			request := new(FailoverRequest)
			if len(body) > 0 {
				if err := unmarshalBody(body, request); err != nil {
					response.setError(err)
					return httpStatusCodeForError(err, http.StatusOK)
				}
			}
			response.fields = LogFields{"backendID": request.BackendID}

			result, err := orchestrator.Failover(r.Context(), request.BackendID)
			if err != nil {
				response.setError(err)
			}
			response.Result = result
			return httpStatusCodeForError(err, http.StatusOK)
		},
	)
}
