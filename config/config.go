// Copyright 2025 NetApp, Inc. All Rights Reserved.

package config

import (
	"fmt"
	"time"
)

type (
	Protocol      string
	DriverContext string
	SANType       string
)

type Telemetry struct {
	Version         string `json:"version"`
	Platform        string `json:"platform"`
	PlatformVersion string `json:"platformVersion"`
}

const (
	/* Misc. orchestrator constants */
	OrchestratorName       = "powermax"
	OrchestratorClientName = "pmaxctl"
	orchestratorVersion    = "25.10.0"
	OrchestratorAPIVersion = "1"

	/* Protocol constants */
	Block       Protocol = "block"
	ProtocolAny Protocol = ""

	/* SAN transport constants */
	ISCSI SANType = "iscsi"
	FCP   SANType = "fc"

	/* Driver-related constants */
	PowerMaxSANStorageDriverName = "powermax-san"
	UnknownDriver                = "UnknownDriver"

	/* REST frontend constants */
	MaxRESTRequestSize = 10240
	DefaultRESTAddress = "127.0.0.1:8000"
	HTTPTimeout        = 90 * time.Second

	// REST frontend admission: sustained requests per second and burst size
	RESTRateLimit = 50
	RESTRateBurst = 100

	/* Storage API timeouts */
	StorageAPITimeoutSeconds = 120

	ContextCinder DriverContext = "cinder"
	ContextCLI    DriverContext = "cli"

	// DefaultLockTTL bounds how long a distributed lock survives its holder
	DefaultLockTTL = 60 * time.Second
)

var (
	validProtocols = map[Protocol]bool{
		Block:       true,
		ProtocolAny: true,
	}

	validSANTypes = map[SANType]bool{
		ISCSI: true,
		FCP:   true,
	}

	// BuildHash is the git hash the binary was built from
	BuildHash = "unknown"

	// BuildType is the type of build: custom, beta or stable
	BuildType = "custom"

	// BuildTypeRev is the revision of the build
	BuildTypeRev = "0"

	// BuildTime is the time the binary was built
	BuildTime = "unknown"

	OrchestratorVersion = version()

	/* API Server variables */
	BaseURL        = "/" + OrchestratorName + "/v" + OrchestratorAPIVersion
	VersionURL     = BaseURL + "/version"
	VolumeURL      = BaseURL + "/volume"
	BackendURL     = BaseURL + "/backend"
	FailoverURL    = BaseURL + "/failover"
	StatsURL       = BaseURL + "/stats"
	MetricsURL     = "/metrics"
	CurrentContext DriverContext

	OrchestratorTelemetry = Telemetry{Version: OrchestratorVersion}
)

func IsValidProtocol(p Protocol) bool {
	_, ok := validProtocols[p]
	return ok
}

func IsValidSANType(s SANType) bool {
	_, ok := validSANTypes[s]
	return ok
}

func GetValidProtocolNames() []string {
	ret := make([]string, 0, len(validProtocols))
	for key := range validProtocols {
		ret = append(ret, string(key))
	}
	return ret
}

func version() string {
	var version string

	if BuildType != "stable" {
		if BuildType == "custom" {
			version = fmt.Sprintf("%v-%v+%v", orchestratorVersion, BuildType, BuildHash)
		} else {
			version = fmt.Sprintf("%v-%v.%v+%v", orchestratorVersion, BuildType, BuildTypeRev, BuildHash)
		}
	} else {
		version = orchestratorVersion
	}

	return version
}
