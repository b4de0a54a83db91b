// Copyright 2025 NetApp, Inc. All Rights Reserved.

package storage

import "github.com/brunoga/deep"

// SnapshotLocation locates a SnapVX snapshot on an array.
type SnapshotLocation struct {
	SnapName       string `json:"snap_name"`
	SourceDeviceID string `json:"source_id"`
	Array          string `json:"array"`
}

type Snapshot struct {
	ID               string            `json:"id"`
	Name             string            `json:"name,omitempty"`
	VolumeID         string            `json:"volumeID"`
	VolumeSizeGiB    uint64            `json:"volumeSize"`
	Created          string            `json:"created,omitempty"` // RFC3339
	ProviderLocation *SnapshotLocation `json:"providerLocation,omitempty"`
}

func (s *Snapshot) ConstructClone() *Snapshot {
	clone, err := deep.Copy(s)
	if err != nil {
		return &Snapshot{}
	}
	return clone
}
