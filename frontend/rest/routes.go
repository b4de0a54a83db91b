// Copyright 2025 NetApp, Inc. All Rights Reserved.

package rest

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/pmax-drivers/powermax/config"
)

type Route struct {
	Name        string
	Method      string
	Pattern     string
	HandlerFunc http.HandlerFunc
}

type Routes []Route

var (
	volumePattern   = config.VolumeURL + "/{volume}"
	snapshotsPath   = volumePattern + "/snapshot"
	snapshotPattern = snapshotsPath + "/{snapshot}"
)

func snapshotVar(r *http.Request) string {
	return mux.Vars(r)["snapshot"]
}

var routes = Routes{
	Route{
		"GetVersion",
		"GET",
		config.VersionURL,
		GetVersion,
	},
	Route{
		"GetBackend",
		"GET",
		config.BackendURL,
		GetBackend,
	},
	Route{
		"GetStats",
		"GET",
		config.StatsURL,
		GetStats,
	},
	Route{
		"AddVolume",
		"POST",
		config.VolumeURL,
		AddVolume,
	},
	Route{
		"ListVolumes",
		"GET",
		config.VolumeURL,
		ListVolumes,
	},
	Route{
		"GetVolume",
		"GET",
		volumePattern,
		GetVolume,
	},
	Route{
		"DeleteVolume",
		"DELETE",
		volumePattern,
		DeleteVolume,
	},
	Route{
		"ExtendVolume",
		"POST",
		volumePattern + "/extend",
		ExtendVolume,
	},
	Route{
		"AttachVolume",
		"POST",
		volumePattern + "/attach",
		AttachVolume,
	},
	Route{
		"DetachVolume",
		"POST",
		volumePattern + "/detach",
		DetachVolume,
	},
	Route{
		"RetypeVolume",
		"POST",
		volumePattern + "/retype",
		RetypeVolume,
	},
	Route{
		"MigrateVolume",
		"POST",
		volumePattern + "/migrate",
		MigrateVolume,
	},
	Route{
		"UnmanageVolume",
		"POST",
		volumePattern + "/unmanage",
		UnmanageVolume,
	},
	Route{
		"GetReplicationStatus",
		"GET",
		volumePattern + "/replication",
		GetReplicationStatus,
	},
	Route{
		"AddSnapshot",
		"POST",
		snapshotsPath,
		AddSnapshot,
	},
	Route{
		"ListSnapshots",
		"GET",
		snapshotsPath,
		ListSnapshots,
	},
	Route{
		"GetSnapshot",
		"GET",
		snapshotPattern,
		GetSnapshot,
	},
	Route{
		"DeleteSnapshot",
		"DELETE",
		snapshotPattern,
		DeleteSnapshot,
	},
	Route{
		"RestoreSnapshot",
		"POST",
		snapshotPattern + "/restore",
		RestoreSnapshot,
	},
	Route{
		"Failover",
		"POST",
		config.FailoverURL,
		Failover,
	},
}
