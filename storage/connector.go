// Copyright 2025 NetApp, Inc. All Rights Reserved.

package storage

const (
	DriverVolumeTypeISCSI = "iscsi"
	DriverVolumeTypeFC    = "fibre_channel"
)

// Connector describes the host a volume is attached to.
type Connector struct {
	Host      string   `json:"host"`
	Initiator string   `json:"initiator,omitempty"` // iSCSI IQN
	WWPNs     []string `json:"wwpns,omitempty"`
	WWNNs     []string `json:"wwnns,omitempty"`
	IP        string   `json:"ip,omitempty"`
	Multipath bool     `json:"multipath,omitempty"`
}

// ISCSITarget is one portal of the port group a volume is exposed through.
type ISCSITarget struct {
	IQN    string `json:"target_iqn"`
	Portal string `json:"target_portal"`
	LUN    int    `json:"target_lun"`
}

// ConnectionData carries what the host needs to log in to the array and find the LUN.
type ConnectionData struct {
	TargetDiscovered bool   `json:"target_discovered"`
	VolumeID         string `json:"volume_id"`
	Discard          bool   `json:"discard"`

	// iSCSI
	TargetIQN     string        `json:"target_iqn,omitempty"`
	TargetPortal  string        `json:"target_portal,omitempty"`
	TargetLUN     int           `json:"target_lun"`
	TargetIQNs    []string      `json:"target_iqns,omitempty"`
	TargetPortals []string      `json:"target_portals,omitempty"`
	TargetLUNs    []int         `json:"target_luns,omitempty"`
	Targets       []ISCSITarget `json:"-"`

	// FC
	TargetWWNs         []string            `json:"target_wwn,omitempty"`
	InitiatorTargetMap map[string][]string `json:"initiator_target_map,omitempty"`

	// Metro volumes are reachable through both arrays
	Metro *ConnectionData `json:"metro_data,omitempty"`
}

type ConnectionInfo struct {
	DriverVolumeType string         `json:"driver_volume_type"`
	Data             ConnectionData `json:"data"`
}
