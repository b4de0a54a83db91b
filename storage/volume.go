// Copyright 2025 NetApp, Inc. All Rights Reserved.

package storage

import (
	"encoding/json"
	"fmt"

	"github.com/brunoga/deep"
)

type ReplicationStatus string

const (
	ReplicationStatusEnabled    = ReplicationStatus("enabled")
	ReplicationStatusDisabled   = ReplicationStatus("disabled")
	ReplicationStatusError      = ReplicationStatus("error")
	ReplicationStatusFailedOver = ReplicationStatus("failed-over")
	ReplicationStatusNotCapable = ReplicationStatus("not-capable")
)

func (s ReplicationStatus) String() string {
	return string(s)
}

// ProviderLocation locates a volume on an array.  It is persisted by the host framework as JSON and
// handed back on every later call for the volume.
type ProviderLocation struct {
	DeviceID string `json:"device_id"`
	Array    string `json:"array"`
}

func (p *ProviderLocation) String() string {
	if p == nil {
		return ""
	}
	b, _ := json.Marshal(p)
	return string(b)
}

// ParseProviderLocation decodes a persisted provider location.
func ParseProviderLocation(s string) (*ProviderLocation, error) {
	if s == "" {
		return nil, fmt.Errorf("provider location is empty")
	}
	location := &ProviderLocation{}
	if err := json.Unmarshal([]byte(s), location); err != nil {
		return nil, fmt.Errorf("could not parse provider location %s; %v", s, err)
	}
	if location.DeviceID == "" || location.Array == "" {
		return nil, fmt.Errorf("provider location %s is incomplete", s)
	}
	return location, nil
}

// ReplicationDriverData records the remote half of an SRDF pair.
type ReplicationDriverData struct {
	DeviceID    string `json:"device_id"`
	Array       string `json:"array"`
	RDFGroupNum int    `json:"rdf_group_no,omitempty"`
	Mode        string `json:"rep_mode,omitempty"`
}

// VolumeType is the host framework's volume type: a name and its extra specs.
type VolumeType struct {
	Name       string            `json:"name"`
	ExtraSpecs map[string]string `json:"extraSpecs,omitempty"`
}

type Volume struct {
	ID                    string                 `json:"id"`
	Name                  string                 `json:"name,omitempty"`
	SizeGiB               uint64                 `json:"size"`
	VolumeType            VolumeType             `json:"volumeType"`
	ProviderLocation      *ProviderLocation      `json:"providerLocation,omitempty"`
	ReplicationDriverData *ReplicationDriverData `json:"replicationDriverData,omitempty"`
	ReplicationStatus     ReplicationStatus      `json:"replicationStatus,omitempty"`
	AttachedHosts         []string               `json:"attachedHosts,omitempty"`
	Metadata              map[string]string      `json:"metadata,omitempty"`
}

// ConstructClone returns a deep copy of the volume, used to restore driver-side state when an
// operation is rolled back.
func (v *Volume) ConstructClone() *Volume {
	clone, err := deep.Copy(v)
	if err != nil {
		return &Volume{}
	}
	return clone
}

// IsAttached reports whether the host framework has the volume attached anywhere.
func (v *Volume) IsAttached() bool {
	return len(v.AttachedHosts) > 0
}

// VolumeUpdate is returned for each volume during failover and failback.
type VolumeUpdate struct {
	VolumeID              string                 `json:"volumeID"`
	ReplicationStatus     ReplicationStatus      `json:"replicationStatus"`
	ProviderLocation      *ProviderLocation      `json:"providerLocation,omitempty"`
	ReplicationDriverData *ReplicationDriverData `json:"replicationDriverData,omitempty"`
}
