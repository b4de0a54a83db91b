// Copyright 2025 NetApp, Inc. All Rights Reserved.

package storage

// PoolStats reports the capacity of one SRP/SLO/workload combination.
type PoolStats struct {
	PoolName                  string  `json:"pool_name"`
	Location                  string  `json:"location_info"`
	TotalCapacityGB           float64 `json:"total_capacity_gb"`
	FreeCapacityGB            float64 `json:"free_capacity_gb"`
	ProvisionedCapacityGB     float64 `json:"provisioned_capacity_gb"`
	ReservedPercentage        int     `json:"reserved_percentage"`
	MaxOverSubscriptionRatio  float64 `json:"max_over_subscription_ratio,omitempty"`
	ThinProvisioningSupport   bool    `json:"thin_provisioning_support"`
	ThickProvisioningSupport  bool    `json:"thick_provisioning_support"`
	ReplicationEnabled        bool    `json:"replication_enabled"`
	ConsistentGroupSnapshotOK bool    `json:"consistent_group_snapshot_enabled"`
}

type VolumeStats struct {
	BackendName        string      `json:"volume_backend_name"`
	VendorName         string      `json:"vendor_name"`
	DriverVersion      string      `json:"driver_version"`
	StorageProtocol    string      `json:"storage_protocol"`
	ReplicationEnabled bool        `json:"replication_enabled"`
	ReplicationTargets []string    `json:"replication_targets,omitempty"`
	ActiveBackendID    string      `json:"active_backend_id,omitempty"`
	Pools              []PoolStats `json:"pools"`
}
