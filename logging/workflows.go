// Copyright 2025 NetApp, Inc. All Rights Reserved.

package logging

import (
	"github.com/pmax-drivers/powermax/config"
)

const (
	workflowCategorySeparator = "="

	CategoryVolume      = WorkflowCategory("volume")
	CategorySnapshot    = WorkflowCategory("snapshot")
	CategoryReplication = WorkflowCategory("replication")
	CategoryBackend     = WorkflowCategory("backend")
	CategoryCore        = WorkflowCategory("core")
	CategoryNone        = WorkflowCategory("none")

	OpCreate    = WorkflowOperation("create")
	OpClone     = WorkflowOperation("clone")
	OpGet       = WorkflowOperation("get")
	OpDelete    = WorkflowOperation("delete")
	OpResize    = WorkflowOperation("resize")
	OpPublish   = WorkflowOperation("publish")
	OpUnpublish = WorkflowOperation("unpublish")
	OpRestore   = WorkflowOperation("restore")
	OpRetype    = WorkflowOperation("retype")
	OpImport    = WorkflowOperation("import")
	OpFailover  = WorkflowOperation("failover")
	OpFailback  = WorkflowOperation("failback")
	OpGetStats  = WorkflowOperation("get_stats")
	OpInit      = WorkflowOperation("init")
	OpNone      = WorkflowOperation("none")

	LogLayerCore           = LogLayer("core")
	LogLayerRESTFrontend   = LogLayer("rest_frontend")
	LogLayerCLI            = LogLayer("cli")
	LogLayerPowerMaxDriver = LogLayer(config.PowerMaxSANStorageDriverName)
	LogLayerPowerMaxAPI    = LogLayer("powermax_api")
	LogLayerLocks          = LogLayer("locks")
	LogLayerNone           = LogLayer("none")
)

var (
	WorkflowNone = Workflow{CategoryNone, OpNone}

	WorkflowVolumeCreate    = Workflow{CategoryVolume, OpCreate}
	WorkflowVolumeClone     = Workflow{CategoryVolume, OpClone}
	WorkflowVolumeGet       = Workflow{CategoryVolume, OpGet}
	WorkflowVolumeDelete    = Workflow{CategoryVolume, OpDelete}
	WorkflowVolumeResize    = Workflow{CategoryVolume, OpResize}
	WorkflowVolumePublish   = Workflow{CategoryVolume, OpPublish}
	WorkflowVolumeUnpublish = Workflow{CategoryVolume, OpUnpublish}
	WorkflowVolumeRetype    = Workflow{CategoryVolume, OpRetype}
	WorkflowVolumeImport    = Workflow{CategoryVolume, OpImport}

	WorkflowSnapshotCreate  = Workflow{CategorySnapshot, OpCreate}
	WorkflowSnapshotDelete  = Workflow{CategorySnapshot, OpDelete}
	WorkflowSnapshotRestore = Workflow{CategorySnapshot, OpRestore}

	WorkflowReplicationFailover = Workflow{CategoryReplication, OpFailover}
	WorkflowReplicationFailback = Workflow{CategoryReplication, OpFailback}

	WorkflowBackendStats = Workflow{CategoryBackend, OpGetStats}
	WorkflowCoreInit     = Workflow{CategoryCore, OpInit}
)
