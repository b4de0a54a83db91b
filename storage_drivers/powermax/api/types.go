// Copyright 2025 NetApp, Inc. All Rights Reserved.

package api

// Unisphere job states
const (
	JobStatusCreated   = "CREATED"
	JobStatusScheduled = "SCHEDULED"
	JobStatusRunning   = "RUNNING"
	JobStatusSucceeded = "SUCCEEDED"
	JobStatusFailed    = "FAILED"
	JobStatusUnknown   = "UNKNOWN"

	ExecutionAsync = "ASYNCHRONOUS"
)

// SRDF pair states as reported for a storage group or a device pair
const (
	RDFStateSynchronized  = "Synchronized"
	RDFStateConsistent    = "Consistent"
	RDFStateActiveActive  = "ActiveActive"
	RDFStateActiveBias    = "ActiveBias"
	RDFStateSuspended     = "Suspended"
	RDFStateFailedOver    = "Failed Over"
	RDFStatePartitioned   = "Partitioned"
	RDFStateSyncInProg    = "SyncInProg"
	RDFStateSplit         = "Split"
	RDFStateConsistentDup = "Consistent (Dup)"
)

// SRDF group and device actions
const (
	RDFActionEstablish = "Establish"
	RDFActionSuspend   = "Suspend"
	RDFActionResume    = "Resume"
	RDFActionFailover  = "Failover"
	RDFActionFailback  = "Failback"
	RDFActionSplit     = "Split"
	RDFActionSetMode   = "SetMode"
)

// SnapVX actions
const (
	SnapActionLink    = "Link"
	SnapActionUnlink  = "Unlink"
	SnapActionRestore = "Restore"
	SnapActionRename  = "Rename"
)

const (
	StorageGroupTypeParent     = "Parent"
	StorageGroupTypeChild      = "Child"
	StorageGroupTypeStandalone = "Standalone"

	PortGroupTypeISCSI = "iSCSI"
	PortGroupTypeFC    = "SCSI_FC"

	capacityUnitGB = "GB"
	emulationFBA   = "FBA"
)

// Version is the response of GET /version.
type Version struct {
	Version     string   `json:"version"`
	APIVersions []string `json:"api_versions,omitempty"`
}

// Symmetrix describes an array known to Unisphere.
type Symmetrix struct {
	SymmetrixID string `json:"symmetrixId"`
	Ucode       string `json:"ucode"`
	Model       string `json:"model"`
	Local       bool   `json:"local"`
}

// Job is an asynchronous Unisphere task.
type Job struct {
	JobID        string `json:"jobId"`
	Name         string `json:"name,omitempty"`
	Status       string `json:"status"`
	Result       string `json:"result,omitempty"`
	ResourceLink string `json:"resourceLink,omitempty"`
	Username     string `json:"username,omitempty"`
	Completed    int64  `json:"completed_date_milliseconds,omitempty"`
}

// SRPCapacity is reported in TB.
type SRPCapacity struct {
	UsableTotalTB   float64 `json:"usable_total_tb"`
	UsableUsedTB    float64 `json:"usable_used_tb"`
	SubscribedTotal float64 `json:"subscribed_total_tb"`
}

type SRP struct {
	SRPID              string      `json:"srpId"`
	Capacity           SRPCapacity `json:"srp_capacity"`
	ReservedCapPercent int         `json:"reserved_cap_percent"`
	CompressionState   string      `json:"compression_state,omitempty"`
}

type ServiceLevelList struct {
	SLOIDs []string `json:"sloId"`
}

type WorkloadList struct {
	WorkloadIDs []string `json:"workloadId"`
}

type StorageGroup struct {
	StorageGroupID     string   `json:"storageGroupId"`
	SLO                string   `json:"slo,omitempty"`
	SRP                string   `json:"srp,omitempty"`
	Workload           string   `json:"workload,omitempty"`
	Type               string   `json:"type,omitempty"`
	NumOfVolumes       int      `json:"num_of_vols"`
	NumOfChildSGs      int      `json:"num_of_child_sgs"`
	NumOfParentSGs     int      `json:"num_of_parent_sgs"`
	NumOfMaskingViews  int      `json:"num_of_masking_views"`
	ChildStorageGroup  []string `json:"child_storage_group,omitempty"`
	ParentStorageGroup []string `json:"parent_storage_group,omitempty"`
	MaskingView        []string `json:"maskingview,omitempty"`
	CapacityGB         float64  `json:"cap_gb"`
	Compression        bool     `json:"compression"`
	Unprotected        bool     `json:"unprotected,omitempty"`
}

// IsCascaded reports whether the storage group is a parent of other storage groups.
func (sg *StorageGroup) IsCascaded() bool {
	return sg.Type == StorageGroupTypeParent || sg.NumOfChildSGs > 0
}

type StorageGroupList struct {
	StorageGroupIDs []string `json:"storageGroupId"`
}

type Volume struct {
	VolumeID           string   `json:"volumeId"`
	VolumeIdentifier   string   `json:"volume_identifier,omitempty"`
	Type               string   `json:"type,omitempty"`
	Emulation          string   `json:"emulation,omitempty"`
	CapacityGB         float64  `json:"cap_gb"`
	CapacityCylinders  int      `json:"cap_cyl"`
	AllocatedPercent   int      `json:"allocated_percent"`
	Status             string   `json:"status,omitempty"`
	WWN                string   `json:"wwn,omitempty"`
	NumStorageGroups   int      `json:"num_of_storage_groups"`
	StorageGroupIDs    []string `json:"storageGroupId,omitempty"`
	SnapVXSource       bool     `json:"snapvx_source"`
	SnapVXTarget       bool     `json:"snapvx_target"`
	RDFGroupIDs        []RDFGID `json:"rdfGroupId,omitempty"`
	NumOfFrontEndPaths int      `json:"num_of_front_end_paths"`
}

type RDFGID struct {
	RDFGroupNumber int    `json:"rdf_group_number"`
	Label          string `json:"label,omitempty"`
}

// VolumeIDResult is one entry of a volume iterator page.
type VolumeIDResult struct {
	VolumeID string `json:"volumeId"`
}

type VolumeResultList struct {
	VolumeList []VolumeIDResult `json:"result"`
	From       int              `json:"from"`
	To         int              `json:"to"`
}

// VolumeIterator is returned when a volume query may have more results than one page.
type VolumeIterator struct {
	ResultList     VolumeResultList `json:"resultList"`
	ID             string           `json:"id"`
	Count          int              `json:"count"`
	ExpirationTime int64            `json:"expirationTime"`
	MaxPageSize    int              `json:"maxPageSize"`
}

type MaskingView struct {
	MaskingViewID  string `json:"maskingViewId"`
	HostID         string `json:"hostId,omitempty"`
	HostGroupID    string `json:"hostGroupId,omitempty"`
	PortGroupID    string `json:"portGroupId"`
	StorageGroupID string `json:"storageGroupId"`
}

type MaskingViewList struct {
	MaskingViewIDs []string `json:"maskingViewId"`
}

type MaskingViewConnection struct {
	VolumeID       string `json:"volumeId"`
	HostLUNAddress string `json:"host_lun_address"`
	CapacityGB     string `json:"cap_gb,omitempty"`
	InitiatorID    string `json:"initiatorId"`
	DirectorPort   string `json:"dir_port"`
	LoggedIn       bool   `json:"logged_in"`
	OnFabric       bool   `json:"on_fabric"`
}

type MaskingViewConnectionsResult struct {
	Connections []MaskingViewConnection `json:"maskingViewConnection"`
}

type PortKey struct {
	DirectorID string `json:"directorId"`
	PortID     string `json:"portId"`
}

type PortGroup struct {
	PortGroupID      string    `json:"portGroupId"`
	SymmetrixPortKey []PortKey `json:"symmetrixPortKey"`
	NumOfPorts       int       `json:"num_of_ports"`
	NumOfMaskingView int       `json:"num_of_masking_views"`
	MaskingView      []string  `json:"maskingview,omitempty"`
	Type             string    `json:"type,omitempty"`
}

type SymmetrixPort struct {
	Identifier  string   `json:"identifier"`
	IPAddresses []string `json:"ip_addresses,omitempty"`
	Type        string   `json:"type,omitempty"`
	PortStatus  string   `json:"port_status,omitempty"`
	TCPPort     int      `json:"tcp_port,omitempty"`
}

type Port struct {
	SymmetrixPort SymmetrixPort `json:"symmetrixPort"`
}

// Host is an initiator group.
type Host struct {
	HostID           string   `json:"hostId"`
	NumOfMaskingView int      `json:"num_of_masking_views"`
	NumOfInitiators  int      `json:"num_of_initiators"`
	Initiators       []string `json:"initiator,omitempty"`
	MaskingView      []string `json:"maskingview,omitempty"`
	Type             string   `json:"type,omitempty"`
	ConsistentLUN    bool     `json:"consistent_lun"`
}

type HostFlag struct {
	Enabled  bool `json:"enabled"`
	Override bool `json:"override"`
}

type HostFlags struct {
	VolumeSetAddressing *HostFlag `json:"volume_set_addressing,omitempty"`
	DisableQResetOnUA   *HostFlag `json:"disable_q_reset_on_ua,omitempty"`
	EnvironSet          *HostFlag `json:"environ_set,omitempty"`
	AVoidResetBroadcast *HostFlag `json:"avoid_reset_broadcast,omitempty"`
	OpenVMS             *HostFlag `json:"openvms,omitempty"`
	SCSI3               *HostFlag `json:"scsi_3,omitempty"`
	SPC2ProtocolVersion *HostFlag `json:"spc2_protocol_version,omitempty"`
	SCSISupport1        *HostFlag `json:"scsi_support1,omitempty"`
	ConsistentLUN       bool      `json:"consistent_lun"`
}

type Initiator struct {
	InitiatorID      string    `json:"initiatorId"`
	Host             string    `json:"host,omitempty"`
	HostGroup        []string  `json:"hostGroup,omitempty"`
	MaskingView      []string  `json:"maskingview,omitempty"`
	SymmetrixPortKey []PortKey `json:"symmetrixPortKey,omitempty"`
	Type             string    `json:"type,omitempty"`
	LoggedIn         bool      `json:"logged_in"`
	OnFabric         bool      `json:"on_fabric"`
}

type InitiatorList struct {
	InitiatorIDs []string `json:"initiatorId"`
}

type LinkedDevice struct {
	TargetDevice     string `json:"targetDevice"`
	Timestamp        string `json:"timestamp,omitempty"`
	State            string `json:"state,omitempty"`
	Copy             bool   `json:"copy"`
	Defined          bool   `json:"defined"`
	PercentageCopied int    `json:"percentageCopied"`
}

// SnapshotGeneration is one point-in-time instance of a named SnapVX snapshot.
type SnapshotGeneration struct {
	Generation    int            `json:"generation"`
	Timestamp     string         `json:"timestamp,omitempty"`
	State         []string       `json:"state,omitempty"`
	Expired       bool           `json:"expired"`
	Restored      bool           `json:"restored"`
	LinkedDevices []LinkedDevice `json:"linkedDevices,omitempty"`
}

type SnapshotSource struct {
	SnapshotName  string         `json:"snapshotName"`
	Generation    int            `json:"generation"`
	Timestamp     string         `json:"timestamp,omitempty"`
	LinkedDevices []LinkedDevice `json:"linkedDevices,omitempty"`
	Restored      bool           `json:"restored"`
	Expired       bool           `json:"expired"`
}

type SnapshotLink struct {
	LinkSourceName string `json:"linkSourceName"`
	SnapshotName   string `json:"snapshotName"`
	Generation     int    `json:"generation"`
	Defined        bool   `json:"defined"`
	Copy           bool   `json:"copy"`
}

// VolumeSnapshotInfo lists the SnapVX sessions a device takes part in, as source or as link target.
type VolumeSnapshotInfo struct {
	DeviceName      string           `json:"deviceName"`
	SnapshotSources []SnapshotSource `json:"snapshotSrcs,omitempty"`
	SnapshotLinks   []SnapshotLink   `json:"snapshotLnks,omitempty"`
}

type VolumeSnapshot struct {
	DeviceName   string               `json:"deviceName"`
	SnapshotName string               `json:"snapshotName"`
	Generations  []SnapshotGeneration `json:"generation"`
}

type RDFGroup struct {
	RDFGroupNumber       int      `json:"rdfgNumber"`
	Label                string   `json:"label"`
	RemoteRDFGroupNumber int      `json:"remoteRdfgNumber"`
	RemoteSymmetrix      string   `json:"remoteSymmetrix"`
	NumDevices           int      `json:"numDevices"`
	Modes                []string `json:"modes,omitempty"`
	Type                 string   `json:"type,omitempty"`
	Async                bool     `json:"async"`
	Metro                bool     `json:"metro"`
}

type RDFGroupListEntry struct {
	RDFGroupNumber int    `json:"rdfgNumber"`
	Label          string `json:"label"`
}

type RDFGroupList struct {
	RDFGroups []RDFGroupListEntry `json:"rdfGroupID"`
}

type RDFGroupVolumes struct {
	Names []string `json:"name"`
}

type RDFDevicePair struct {
	RDFGroupNumber    int    `json:"rdfGroupNumber"`
	LocalVolumeName   string `json:"localVolumeName"`
	RemoteVolumeName  string `json:"remoteVolumeName"`
	LocalSymmetrixID  string `json:"localSymmetrixId"`
	RemoteSymmetrixID string `json:"remoteSymmetrixId"`
	RDFMode           string `json:"rdfMode"`
	RDFPairState      string `json:"rdfpairState"`
	LocalVolumeState  string `json:"localVolumeState,omitempty"`
	RemoteVolumeState string `json:"remoteVolumeState,omitempty"`
}

type StorageGroupRDFInfo struct {
	SymmetrixID      string   `json:"symmetrixId"`
	StorageGroupName string   `json:"storageGroupName"`
	RDFGroupNumber   int      `json:"rdfGroupNumber"`
	States           []string `json:"states"`
	Modes            []string `json:"modes"`
}

type RDFPairCreateResult struct {
	Job
	LocalVolume  string `json:"localVolume,omitempty"`
	RemoteVolume string `json:"remoteVolume,omitempty"`
}

// errorResponse is the body Unisphere returns with a non-2xx status.
type errorResponse struct {
	Message string `json:"message"`
}

// ---------------------------------------------------------------------------
// Request payloads
// ---------------------------------------------------------------------------

type volumeAttribute struct {
	CapacityUnit     string            `json:"capacityUnit"`
	VolumeSize       string            `json:"volume_size"`
	NumOfVols        int               `json:"num_of_vols,omitempty"`
	VolumeIdentifier *volumeIdentifier `json:"volumeIdentifier,omitempty"`
}

type volumeIdentifier struct {
	IdentifierName         string `json:"identifier_name,omitempty"`
	VolumeIdentifierChoice string `json:"volumeIdentifierChoice"`
}

type sloBasedStorageGroupParam struct {
	SLOID             string            `json:"sloId"`
	WorkloadSelection string            `json:"workloadSelection,omitempty"`
	VolumeAttributes  []volumeAttribute `json:"volumeAttributes"`
	NoCompression     bool              `json:"noCompression,omitempty"`
}

type createStorageGroupParam struct {
	SRPID                     string                      `json:"srpId"`
	StorageGroupID            string                      `json:"storageGroupId"`
	Emulation                 string                      `json:"emulation"`
	SLOBasedStorageGroupParam []sloBasedStorageGroupParam `json:"sloBasedStorageGroupParam,omitempty"`
	ExecutionOption           string                      `json:"executionOption"`
}

type remoteSymmSGInfoParam struct {
	Force                 bool     `json:"force,omitempty"`
	RemoteSymmetrix1ID    string   `json:"remote_symmetrix_1_id,omitempty"`
	RemoteSymmetrix1SGs   []string `json:"remote_symmetrix_1_sgs,omitempty"`
	RemoteSymmetrixForce  bool     `json:"remote_symmetrix_force,omitempty"`
	RemoteSymmetrixRemove bool     `json:"remote_symmetrix_remove,omitempty"`
}

type addVolumeParam struct {
	Emulation        string            `json:"emulation"`
	CreateNewVolumes bool              `json:"create_new_volumes"`
	VolumeAttributes []volumeAttribute `json:"volumeAttributes"`
}

type addSpecificVolumeParam struct {
	VolumeIDs             []string               `json:"volumeId"`
	RemoteSymmSGInfoParam *remoteSymmSGInfoParam `json:"remoteSymmSGInfoParam,omitempty"`
}

type addExistingStorageGroupParam struct {
	StorageGroupIDs []string `json:"storageGroupId"`
}

type expandStorageGroupParam struct {
	AddVolumeParam               *addVolumeParam               `json:"addVolumeParam,omitempty"`
	AddSpecificVolumeParam       *addSpecificVolumeParam       `json:"addSpecificVolumeParam,omitempty"`
	AddExistingStorageGroupParam *addExistingStorageGroupParam `json:"addExistingStorageGroupParam,omitempty"`
}

type removeVolumeParam struct {
	VolumeIDs             []string               `json:"volumeId"`
	RemoteSymmSGInfoParam *remoteSymmSGInfoParam `json:"remoteSymmSGInfoParam,omitempty"`
}

type removeStorageGroupParam struct {
	StorageGroupIDs []string `json:"storageGroupId"`
	Force           bool     `json:"force"`
}

type moveVolumeToStorageGroupParam struct {
	VolumeIDs      []string `json:"volumeId"`
	StorageGroupID string   `json:"storageGroupId"`
	Force          bool     `json:"force"`
}

type editStorageGroupSLOParam struct {
	SLOID string `json:"sloId"`
}

type editStorageGroupWorkloadParam struct {
	WorkloadSelection string `json:"workloadSelection"`
}

type editStorageGroupActionParam struct {
	ExpandStorageGroupParam       *expandStorageGroupParam       `json:"expandStorageGroupParam,omitempty"`
	RemoveVolumeParam             *removeVolumeParam             `json:"removeVolumeParam,omitempty"`
	RemoveStorageGroupParam       *removeStorageGroupParam       `json:"removeStorageGroupParam,omitempty"`
	MoveVolumeToStorageGroupParam *moveVolumeToStorageGroupParam `json:"moveVolumeToStorageGroupParam,omitempty"`
	EditStorageGroupSLOParam      *editStorageGroupSLOParam      `json:"editStorageGroupSLOParam,omitempty"`
	EditStorageGroupWorkloadParam *editStorageGroupWorkloadParam `json:"editStorageGroupWorkloadParam,omitempty"`
}

type updateStorageGroupPayload struct {
	EditStorageGroupActionParam editStorageGroupActionParam `json:"editStorageGroupActionParam"`
	ExecutionOption             string                      `json:"executionOption"`
}

type modifyVolumeIdentifierParam struct {
	VolumeIdentifier volumeIdentifier `json:"volumeIdentifier"`
}

type expandVolumeParam struct {
	VolumeAttribute volumeAttribute `json:"volumeAttribute"`
	RDFGroupNumber  int             `json:"rdfGroupNumber,omitempty"`
}

type freeVolumeParam struct {
	FreeVolume bool `json:"free_volume"`
}

type editVolumeActionParam struct {
	ModifyVolumeIdentifierParam *modifyVolumeIdentifierParam `json:"modifyVolumeIdentifierParam,omitempty"`
	ExpandVolumeParam           *expandVolumeParam           `json:"expandVolumeParam,omitempty"`
	FreeVolumeParam             *freeVolumeParam             `json:"freeVolumeParam,omitempty"`
}

type editVolumePayload struct {
	EditVolumeActionParam editVolumeActionParam `json:"editVolumeActionParam"`
	ExecutionOption       string                `json:"executionOption"`
}

type useExistingHostParam struct {
	HostID string `json:"hostId"`
}

type useExistingPortGroupParam struct {
	PortGroupID string `json:"portGroupId"`
}

type useExistingStorageGroupParam struct {
	StorageGroupID string `json:"storageGroupId"`
}

type hostOrHostGroupSelection struct {
	UseExistingHostParam *useExistingHostParam `json:"useExistingHostParam"`
}

type portGroupSelection struct {
	UseExistingPortGroupParam *useExistingPortGroupParam `json:"useExistingPortGroupParam"`
}

type storageGroupSelection struct {
	UseExistingStorageGroupParam *useExistingStorageGroupParam `json:"useExistingStorageGroupParam"`
}

type createMaskingViewParam struct {
	MaskingViewID            string                   `json:"maskingViewId"`
	HostOrHostGroupSelection hostOrHostGroupSelection `json:"hostOrHostGroupSelection"`
	PortGroupSelection       portGroupSelection       `json:"portGroupSelection"`
	StorageGroupSelection    storageGroupSelection    `json:"storageGroupSelection"`
	ExecutionOption          string                   `json:"executionOption"`
}

type createHostParam struct {
	HostID          string     `json:"hostId"`
	InitiatorIDs    []string   `json:"initiatorId"`
	HostFlags       *HostFlags `json:"hostFlags,omitempty"`
	ExecutionOption string     `json:"executionOption"`
}

type deviceName struct {
	Name string `json:"name"`
}

type createSnapshotParam struct {
	DeviceNameListSource []deviceName `json:"deviceNameListSource"`
	TimeToLive           int          `json:"timeToLive,omitempty"`
	TimeInHours          bool         `json:"timeInHours,omitempty"`
	ExecutionOption      string       `json:"executionOption"`
}

type modifySnapshotParam struct {
	DeviceNameListSource []deviceName `json:"deviceNameListSource"`
	DeviceNameListTarget []deviceName `json:"deviceNameListTarget,omitempty"`
	Action               string       `json:"action"`
	Copy                 bool         `json:"copy,omitempty"`
	Force                bool         `json:"force,omitempty"`
	NewSnapshotName      string       `json:"newsnapshotname,omitempty"`
	ExecutionOption      string       `json:"executionOption"`
}

type deleteSnapshotParam struct {
	DeviceNameListSource []deviceName `json:"deviceNameListSource"`
	Generation           int          `json:"generation"`
	Restore              bool         `json:"restore,omitempty"`
}

type createRDFPairParam struct {
	DeviceNameListSource []deviceName `json:"deviceNameListSource"`
	DeviceNameListTarget []deviceName `json:"deviceNameListTarget"`
	ReplicationMode      string       `json:"replicationMode"`
	Establish            bool         `json:"establish"`
	RDFType              string       `json:"rdfType"`
	Exempt               bool         `json:"exempt,omitempty"`
	MetroBias            bool         `json:"metroBias,omitempty"`
	ExecutionOption      string       `json:"executionOption"`
}

// RDFActionOptions qualifies an SRDF state change.
type RDFActionOptions struct {
	Force    bool   `json:"force,omitempty"`
	SymForce bool   `json:"symForce,omitempty"`
	Bypass   bool   `json:"bypass,omitempty"`
	Mode     string `json:"mode,omitempty"`
	Bias     bool   `json:"metroBias,omitempty"`
}

type modifyRDFStateParam struct {
	Action          string            `json:"action"`
	Establish       *RDFActionOptions `json:"establish,omitempty"`
	Suspend         *RDFActionOptions `json:"suspend,omitempty"`
	Resume          *RDFActionOptions `json:"resume,omitempty"`
	Failover        *RDFActionOptions `json:"failover,omitempty"`
	Failback        *RDFActionOptions `json:"failback,omitempty"`
	Split           *RDFActionOptions `json:"split,omitempty"`
	SetMode         *RDFActionOptions `json:"setMode,omitempty"`
	ExecutionOption string            `json:"executionOption"`
}
