// Copyright 2025 NetApp, Inc. All Rights Reserved.

package storagedrivers

import (
	"encoding/json"
	"fmt"

	"github.com/pmax-drivers/powermax/config"
	"github.com/pmax-drivers/powermax/logging"
	"github.com/pmax-drivers/powermax/pkg/convert"
	"github.com/pmax-drivers/powermax/pkg/locks"
)

// CommonStorageDriverConfig holds settings in common across all StorageDrivers
type CommonStorageDriverConfig struct {
	Version           int                  `json:"version"`
	StorageDriverName string               `json:"storageDriverName"`
	BackendName       string               `json:"backendName"`
	Debug             bool                 `json:"debug"`           // Unsupported!
	DebugTraceFlags   map[string]bool      `json:"debugTraceFlags"` // Example: {"api":false, "method":true}
	StoragePrefixRaw  json.RawMessage      `json:"storagePrefix,string"`
	StoragePrefix     *string              `json:"-"`
	DriverContext     config.DriverContext `json:"-"`
	LimitVolumeSize   string               `json:"limitVolumeSize"`
}

type CommonStorageDriverConfigDefaults struct {
	Size string `json:"size"`
}

// UnisphereTarget addresses one Unisphere for PowerMax server.
type UnisphereTarget struct {
	RESTServer string `json:"restServer"`
	RESTPort   int    `json:"restPort,omitempty"`
	Username   string `json:"username"`
	Password   string `json:"password"`
	VerifyTLS  bool   `json:"verifyTLS,omitempty"`
	CACertPath string `json:"caCertPath,omitempty"`
}

// ReplicationConfig describes the SRDF target of a backend.
type ReplicationConfig struct {
	TargetArray      string   `json:"targetArray"`
	RDFGroupLabel    string   `json:"rdfGroupLabel"`
	RemotePool       string   `json:"remotePool"`
	RemotePortGroups []string `json:"remotePortGroups,omitempty"`
	Mode             string   `json:"mode,omitempty"`
	AllowExtend      bool     `json:"allowExtend,omitempty"`
	MetroUseBias     bool     `json:"metroUseBias,omitempty"`
	SyncInterval     int      `json:"syncInterval,omitempty"`
	SyncRetries      int      `json:"syncRetries,omitempty"`
}

// PowerMaxStorageDriverConfig holds settings for the PowerMax SAN driver
type PowerMaxStorageDriverConfig struct {
	*CommonStorageDriverConfig // embedded types replicate all fields
	UnisphereTarget

	RESTAPIVersion string `json:"restAPIVersion,omitempty"`

	// Placement
	Array        string   `json:"array"`
	SRP          string   `json:"srp"`
	ServiceLevel string   `json:"serviceLevel,omitempty"`
	Workload     string   `json:"workload,omitempty"`
	PortGroups   []string `json:"portGroups"`
	Protocol     string   `json:"protocol,omitempty"`

	// Behaviour
	IntervalSeconds    int  `json:"intervalSeconds,omitempty"`
	Retries            int  `json:"retries,omitempty"`
	InitiatorCheck     bool `json:"initiatorCheck,omitempty"`
	SnapVXUnlinkLimit  int  `json:"snapvxUnlinkLimit,omitempty"`
	DisableCompression bool `json:"disableCompression,omitempty"`
	RequestsPerSecond  int  `json:"requestsPerSecond,omitempty"`

	U4PFailoverTargets []UnisphereTarget  `json:"u4pFailoverTargets,omitempty"`
	Replication        *ReplicationConfig `json:"replication,omitempty"`
	Locks              locks.Config       `json:"locks,omitempty"`

	PowerMaxStorageDriverConfigDefaults `json:"defaults"`
}

type PowerMaxStorageDriverConfigDefaults struct {
	CommonStorageDriverConfigDefaults
}

var powerMaxConfigRedactList = [...]string{"Password", "Username"}

func GetPowerMaxConfigRedactList() []string {
	clone := powerMaxConfigRedactList
	return clone[:]
}

// String makes PowerMaxStorageDriverConfig satisfy the Stringer interface.
func (d PowerMaxStorageDriverConfig) String() string {
	return convert.ToStringRedacted(&d, GetPowerMaxConfigRedactList(), nil)
}

// GoString makes PowerMaxStorageDriverConfig satisfy the GoStringer interface.
func (d PowerMaxStorageDriverConfig) GoString() string {
	return d.String()
}

// String renders a Unisphere target without its credentials.
func (t UnisphereTarget) String() string {
	return fmt.Sprintf("%s:%d", t.RESTServer, t.RESTPort)
}

func (t UnisphereTarget) GoString() string {
	return fmt.Sprintf("{RESTServer:%s RESTPort:%d Username:%s Password:%s VerifyTLS:%v CACertPath:%s}",
		t.RESTServer, t.RESTPort, logging.REDACTED, logging.REDACTED, t.VerifyTLS, t.CACertPath)
}

// IsReplicated reports whether the backend has an SRDF target configured.
func (d *PowerMaxStorageDriverConfig) IsReplicated() bool {
	return d.Replication != nil && d.Replication.TargetArray != ""
}
