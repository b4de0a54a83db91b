// Copyright 2025 NetApp, Inc. All Rights Reserved.

package storagedrivers

// ConfigVersion is the expected version specified in the config file
const ConfigVersion = 1

// Default storage prefix, prepended to the volume ID to form the array volume identifier
const DefaultStoragePrefix = "OS-"

// Storage driver names specified in the config file, etc.
const (
	PowerMaxSANStorageDriverName = "powermax-san"
)

const DefaultVolumeSize = "1G"

// Unisphere connection defaults
const (
	DefaultRESTPort          = 8443
	DefaultRESTAPIVersion    = "100"
	DefaultIntervalSeconds   = 3
	DefaultRetries           = 200
	DefaultSnapVXUnlinkLimit = 3
	DefaultRequestsPerSecond = 20
	DefaultWorkload          = "NONE"
)

// SRDF replication modes
const (
	ReplicationModeSynchronous  = "Synchronous"
	ReplicationModeAsynchronous = "Asynchronous"
	ReplicationModeMetro        = "Metro"
)

// Replication sync polling defaults
const (
	DefaultSyncIntervalSeconds = 3
	DefaultSyncRetries         = 200
)
