// Copyright 2025 NetApp, Inc. All Rights Reserved.

package powermax

import (
	"fmt"
	"hash/fnv"
	"strconv"
	"strings"

	"github.com/pmax-drivers/powermax/pkg/capacity"
	"github.com/pmax-drivers/powermax/pkg/collection"
	"github.com/pmax-drivers/powermax/pkg/convert"
	"github.com/pmax-drivers/powermax/storage"
	drivers "github.com/pmax-drivers/powermax/storage_drivers"
	"github.com/pmax-drivers/powermax/utils/errors"
)

// Extra spec keys read from the volume type
const (
	ExtraSpecPoolName           = "pool_name"
	ExtraSpecDisableCompression = "storagetype:disablecompression"
	ExtraSpecReplicationEnabled = "replication_enabled"
	ExtraSpecPortGroup          = "storagetype:portgroupname"
)

const (
	namePrefix = "OS-"

	maxHostShortNameLength = 16
	maxPGShortNameLength   = 12
	maxSnapshotNameLength  = 32

	noSLO           = "No_SLO"
	noSLODefault    = "no_SLO"
	workloadNone    = "NONE"
	compressionTag  = "-CD"
	tempSnapPrefix  = "temp-"
	protocolISCSI   = "iscsi"
	protocolFC      = "fc"
	iscsiPortNumber = "3260"

	// OnlineRDFExtendUcode is the microcode from which SRDF protected devices can be extended in place.
	OnlineRDFExtendUcode = "5978.444"

	MinimumVolumeSizeBytes = capacity.OneGiB
)

var replicationSuffix = map[string]string{
	drivers.ReplicationModeSynchronous:  "-RE",
	drivers.ReplicationModeAsynchronous: "-RA",
	drivers.ReplicationModeMetro:        "-RM",
}

// ExtraSpecs is the resolved placement of a volume.
type ExtraSpecs struct {
	Array              string
	SRP                string
	SLO                string
	Workload           string
	PortGroups         []string
	DisableCompression bool
	Replicated         bool
	ReplicationMode    string
}

// PoolName renders the pool name reported in stats and accepted in volume types.
func (e *ExtraSpecs) PoolName() string {
	slo, workload := e.SLO, e.Workload
	if slo == "" {
		slo = "None"
	}
	if workload == "" {
		workload = workloadNone
	}
	return strings.Join([]string{slo, workload, e.SRP, e.Array}, "+")
}

// parsePoolName splits a pool name of the form SLO+Workload+SRP+Array (or SLO+SRP+Array).
func parsePoolName(poolName string) (slo, workload, srp, array string, err error) {
	parts := strings.Split(poolName, "+")
	switch len(parts) {
	case 4:
		slo, workload, srp, array = parts[0], parts[1], parts[2], parts[3]
	case 3:
		slo, srp, array = parts[0], parts[1], parts[2]
	default:
		return "", "", "", "", errors.InvalidInputError("invalid pool name %q; expected SLO+Workload+SRP+Array",
			poolName)
	}
	if strings.EqualFold(slo, "none") {
		slo = ""
	}
	if strings.EqualFold(workload, "none") {
		workload = ""
	}
	if srp == "" || array == "" {
		return "", "", "", "", errors.InvalidInputError("invalid pool name %q", poolName)
	}
	return slo, workload, srp, array, nil
}

// isTrueSpec accepts the host framework's boolean spellings, e.g. "<is> True".
func isTrueSpec(value string) bool {
	v := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(value), "<is>"))
	return convert.ToBool(v)
}

// shortName shortens a name to max characters, replacing the tail with a hash of the full name so
// distinct long names stay distinct.
func shortName(name string, max int) string {
	if len(name) <= max {
		return name
	}
	h := fnv.New32a()
	_, _ = h.Write([]byte(name))
	suffix := fmt.Sprintf("%08x", h.Sum32())[:4]
	return name[:max-len(suffix)-1] + "-" + suffix
}

// hostShortName drops the domain of a host name and shortens what remains.
func hostShortName(host string) string {
	if i := strings.Index(host, "."); i > 0 {
		host = host[:i]
	}
	return shortName(host, maxHostShortNameLength)
}

func portGroupShortName(pg string) string {
	return shortName(pg, maxPGShortNameLength)
}

// selectPortGroup spreads hosts over the configured port groups by hashing the host name.
func selectPortGroup(host string, portGroups []string) (string, error) {
	if len(portGroups) == 0 {
		return "", errors.InvalidInputError("no port groups configured")
	}
	h := fnv.New32a()
	_, _ = h.Write([]byte(host))
	return portGroups[int(h.Sum32()%uint32(len(portGroups)))], nil
}

func placementTag(srp, slo, workload string) string {
	if slo == "" {
		return noSLO
	}
	if workload == "" {
		workload = workloadNone
	}
	return srp + "-" + slo + "-" + workload
}

// defaultStorageGroupName names the storage group unattached volumes of a placement live in.
func defaultStorageGroupName(srp, slo, workload string, disableCompression, replicated bool, mode string) string {
	var name string
	if slo == "" {
		name = namePrefix + noSLODefault
	} else {
		if workload == "" {
			workload = workloadNone
		}
		name = namePrefix + srp + "-" + slo + "-" + workload
		if disableCompression {
			name += compressionTag
		}
	}
	if replicated {
		name += replicationSuffix[mode]
	}
	return name + "-SG"
}

func (e *ExtraSpecs) defaultStorageGroupName() string {
	return defaultStorageGroupName(e.SRP, e.SLO, e.Workload, e.DisableCompression, e.Replicated, e.ReplicationMode)
}

func initiatorGroupName(host, protocol string) string {
	tag := "I"
	if protocol == protocolFC {
		tag = "F"
	}
	return namePrefix + hostShortName(host) + "-" + tag + "-IG"
}

func parentStorageGroupName(host, pg string) string {
	return namePrefix + hostShortName(host) + "-" + portGroupShortName(pg) + "-SG"
}

func childStorageGroupName(host, pg string, e *ExtraSpecs) string {
	name := namePrefix + hostShortName(host) + "-" + placementTag(e.SRP, e.SLO, e.Workload) + "-" +
		portGroupShortName(pg)
	if e.SLO != "" && e.DisableCompression {
		name += compressionTag
	}
	if e.Replicated {
		name += "-RE"
	}
	return name
}

func maskingViewName(host, pg string) string {
	return namePrefix + hostShortName(host) + "-" + portGroupShortName(pg) + "-MV"
}

// legacyMaskingViewName is the name of a masking view that maps a non-cascaded storage group directly.
func legacyMaskingViewName(host, pg string, e *ExtraSpecs) string {
	return namePrefix + hostShortName(host) + "-" + placementTag(e.SRP, e.SLO, e.Workload) + "-" +
		portGroupShortName(pg) + "-MV"
}

// snapshotName derives a SnapVX-legal name from a snapshot ID.
func snapshotName(prefix, id string) string {
	return shortName(prefix+strings.ReplaceAll(id, "-", ""), maxSnapshotNameLength)
}

func tempSnapshotName(sourceDeviceID, cloneID string) string {
	return shortName(tempSnapPrefix+sourceDeviceID+"-"+cloneID, maxSnapshotNameLength)
}

func isTempSnapshot(name string) bool {
	return strings.HasPrefix(name, tempSnapPrefix)
}

// parseHostLUN converts a hexadecimal host LUN address to its integer value.
func parseHostLUN(address string) (int, error) {
	lun, err := strconv.ParseInt(strings.TrimSpace(address), 16, 32)
	if err != nil {
		return -1, fmt.Errorf("invalid host LUN address %q; %v", address, err)
	}
	return int(lun), nil
}

// ucodeAtLeast compares the major and minor parts of an array microcode version, e.g. 5978.444.444.
func ucodeAtLeast(ucode, minimum string) bool {
	parse := func(v string) (int, int) {
		parts := strings.Split(v, ".")
		major, _ := strconv.Atoi(parts[0])
		minor := 0
		if len(parts) > 1 {
			minor, _ = strconv.Atoi(parts[1])
		}
		return major, minor
	}
	major, minor := parse(ucode)
	minMajor, minMinor := parse(minimum)
	if major != minMajor {
		return major > minMajor
	}
	return minor >= minMinor
}

// connectorInitiators returns the host bus adapters the connector presents for the protocol.
func connectorInitiators(connector *storage.Connector, protocol string) ([]string, error) {
	if connector == nil {
		return nil, errors.InvalidInputError("connector is required")
	}
	var initiators []string
	if protocol == protocolFC {
		for _, wwpn := range connector.WWPNs {
			initiators = append(initiators, strings.ToLower(strings.ReplaceAll(wwpn, ":", "")))
		}
	} else if connector.Initiator != "" {
		initiators = []string{connector.Initiator}
	}
	if len(initiators) == 0 {
		return nil, errors.InvalidInputError("connector for host %s has no %s initiators", connector.Host,
			protocol)
	}
	return collection.Unique(initiators), nil
}
