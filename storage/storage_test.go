// Copyright 2025 NetApp, Inc. All Rights Reserved.

package storage

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProviderLocation(t *testing.T) {
	location := &ProviderLocation{DeviceID: "00123", Array: "000197900123"}
	s := location.String()
	assert.Equal(t, `{"device_id":"00123","array":"000197900123"}`, s)

	parsed, err := ParseProviderLocation(s)
	require.NoError(t, err)
	assert.Equal(t, location, parsed)

	var nilLocation *ProviderLocation
	assert.Equal(t, "", nilLocation.String())
}

func TestParseProviderLocation_Errors(t *testing.T) {
	for _, s := range []string{"", "not json", `{"device_id":"00123"}`, `{"array":"000197900123"}`} {
		_, err := ParseProviderLocation(s)
		assert.Error(t, err, "expected error for %q", s)
	}
}

func TestVolumeConstructClone(t *testing.T) {
	volume := &Volume{
		ID:               "vol1",
		SizeGiB:          10,
		VolumeType:       VolumeType{Name: "gold", ExtraSpecs: map[string]string{"pool_name": "Diamond+DSS+SRP_1+000197900123"}},
		ProviderLocation: &ProviderLocation{DeviceID: "00123", Array: "000197900123"},
		AttachedHosts:    []string{"host1"},
	}

	clone := volume.ConstructClone()
	assert.Equal(t, volume, clone)

	clone.ProviderLocation.DeviceID = "00999"
	clone.VolumeType.ExtraSpecs["pool_name"] = "changed"
	clone.AttachedHosts[0] = "host2"

	assert.Equal(t, "00123", volume.ProviderLocation.DeviceID)
	assert.Equal(t, "Diamond+DSS+SRP_1+000197900123", volume.VolumeType.ExtraSpecs["pool_name"])
	assert.Equal(t, "host1", volume.AttachedHosts[0])
	assert.True(t, volume.IsAttached())
	assert.False(t, (&Volume{}).IsAttached())
}

func TestSnapshotConstructClone(t *testing.T) {
	snapshot := &Snapshot{
		ID:               "snap1",
		VolumeID:         "vol1",
		ProviderLocation: &SnapshotLocation{SnapName: "OS-snap1", SourceDeviceID: "00123", Array: "000197900123"},
	}
	clone := snapshot.ConstructClone()
	clone.ProviderLocation.SnapName = "other"
	assert.Equal(t, "OS-snap1", snapshot.ProviderLocation.SnapName)
}

func TestConnectionInfoJSON(t *testing.T) {
	info := ConnectionInfo{
		DriverVolumeType: DriverVolumeTypeFC,
		Data: ConnectionData{
			TargetLUN:          3,
			TargetWWNs:         []string{"5000097300000001"},
			InitiatorTargetMap: map[string][]string{"10000090fa000001": {"5000097300000001"}},
		},
	}
	b, err := json.Marshal(info)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"driver_volume_type":"fibre_channel"`)
	assert.Contains(t, string(b), `"target_lun":3`)
	assert.Contains(t, string(b), `"target_wwn":["5000097300000001"]`)
	assert.NotContains(t, string(b), "metro_data")
}

func TestReplicationStatusString(t *testing.T) {
	assert.Equal(t, "failed-over", ReplicationStatusFailedOver.String())
}
