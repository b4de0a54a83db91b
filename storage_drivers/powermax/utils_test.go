// Copyright 2025 NetApp, Inc. All Rights Reserved.

package powermax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pmax-drivers/powermax/storage"
	drivers "github.com/pmax-drivers/powermax/storage_drivers"
	"github.com/pmax-drivers/powermax/utils/errors"
)

func TestPoolName(t *testing.T) {
	spec := &ExtraSpecs{Array: testArray, SRP: "SRP_1", SLO: "Diamond", Workload: "NONE"}
	assert.Equal(t, "Diamond+NONE+SRP_1+"+testArray, spec.PoolName())

	noSLO := &ExtraSpecs{Array: testArray, SRP: "SRP_1"}
	assert.Equal(t, "None+NONE+SRP_1+"+testArray, noSLO.PoolName())
}

func TestParsePoolName(t *testing.T) {
	tests := []struct {
		name     string
		pool     string
		slo      string
		workload string
		srp      string
		array    string
		wantErr  bool
	}{
		{"four parts", "Diamond+OLTP+SRP_1+" + testArray, "Diamond", "OLTP", "SRP_1", testArray, false},
		{"three parts", "Gold+SRP_1+" + testArray, "Gold", "", "SRP_1", testArray, false},
		{"none values", "None+NONE+SRP_1+" + testArray, "", "", "SRP_1", testArray, false},
		{"too few parts", "Diamond+SRP_1", "", "", "", "", true},
		{"empty srp", "Diamond+NONE++" + testArray, "", "", "", "", true},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			slo, workload, srp, array, err := parsePoolName(test.pool)
			if test.wantErr {
				assert.True(t, errors.IsInvalidInputError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.slo, slo)
			assert.Equal(t, test.workload, workload)
			assert.Equal(t, test.srp, srp)
			assert.Equal(t, test.array, array)
		})
	}
}

func TestPoolNameRoundTrip(t *testing.T) {
	spec := &ExtraSpecs{Array: testArray, SRP: "SRP_1", SLO: "Silver", Workload: "OLTP"}
	slo, workload, srp, array, err := parsePoolName(spec.PoolName())
	require.NoError(t, err)
	assert.Equal(t, *spec, ExtraSpecs{Array: array, SRP: srp, SLO: slo, Workload: workload})
}

func TestIsTrueSpec(t *testing.T) {
	assert.True(t, isTrueSpec("<is> True"))
	assert.True(t, isTrueSpec("true"))
	assert.False(t, isTrueSpec("<is> False"))
	assert.False(t, isTrueSpec(""))
	assert.False(t, isTrueSpec("yes please"))
}

func TestShortName(t *testing.T) {
	assert.Equal(t, "host1", shortName("host1", 16))

	a := shortName("averyveryverylonghostname-a", 16)
	b := shortName("averyveryverylonghostname-b", 16)
	assert.Len(t, a, 16)
	assert.Len(t, b, 16)
	assert.NotEqual(t, a, b)
	assert.Equal(t, "averyveryve-18ae", a)
}

func TestHostShortName(t *testing.T) {
	assert.Equal(t, "host1", hostShortName("host1.example.com"))
	assert.Equal(t, "host1", hostShortName("host1"))
	assert.Equal(t, "a-rather-lo-46c3", hostShortName("a-rather-long-hostname-for-a-node.example.com"))
}

func TestSelectPortGroup(t *testing.T) {
	_, err := selectPortGroup("host1", nil)
	assert.True(t, errors.IsInvalidInputError(err))

	pgs := []string{"PG1", "PG2", "PG3"}
	first, err := selectPortGroup("host1", pgs)
	require.NoError(t, err)
	assert.Contains(t, pgs, first)
	for i := 0; i < 5; i++ {
		again, _ := selectPortGroup("host1", pgs)
		assert.Equal(t, first, again)
	}

	only, err := selectPortGroup("host2", []string{"PG1"})
	require.NoError(t, err)
	assert.Equal(t, "PG1", only)
}

func TestMaskingObjectNames(t *testing.T) {
	spec := &ExtraSpecs{Array: testArray, SRP: "SRP_1", SLO: "Diamond", Workload: "NONE"}

	assert.Equal(t, "OS-host1-I-IG", initiatorGroupName("host1.example.com", protocolISCSI))
	assert.Equal(t, "OS-host1-F-IG", initiatorGroupName("host1", protocolFC))
	assert.Equal(t, "OS-host1-PG1-SG", parentStorageGroupName("host1", "PG1"))
	assert.Equal(t, "OS-host1-SRP_1-Diamond-NONE-PG1", childStorageGroupName("host1", "PG1", spec))
	assert.Equal(t, "OS-host1-PG1-MV", maskingViewName("host1", "PG1"))
	assert.Equal(t, "OS-host1-SRP_1-Diamond-NONE-PG1-MV", legacyMaskingViewName("host1", "PG1", spec))

	compressed := *spec
	compressed.DisableCompression = true
	assert.Equal(t, "OS-host1-SRP_1-Diamond-NONE-PG1-CD", childStorageGroupName("host1", "PG1", &compressed))

	replicated := *spec
	replicated.Replicated = true
	assert.Equal(t, "OS-host1-SRP_1-Diamond-NONE-PG1-RE", childStorageGroupName("host1", "PG1", &replicated))

	assert.Equal(t, "OS-host1-No_SLO-PG1", childStorageGroupName("host1", "PG1", &ExtraSpecs{SRP: "SRP_1"}))
}

func TestDefaultStorageGroupName(t *testing.T) {
	tests := []struct {
		name     string
		spec     ExtraSpecs
		expected string
	}{
		{"slo", ExtraSpecs{SRP: "SRP_1", SLO: "Diamond", Workload: "NONE"}, "OS-SRP_1-Diamond-NONE-SG"},
		{"empty workload", ExtraSpecs{SRP: "SRP_1", SLO: "Diamond"}, "OS-SRP_1-Diamond-NONE-SG"},
		{"compression disabled", ExtraSpecs{SRP: "SRP_1", SLO: "Gold", Workload: "OLTP", DisableCompression: true},
			"OS-SRP_1-Gold-OLTP-CD-SG"},
		{"no slo", ExtraSpecs{SRP: "SRP_1"}, "OS-no_SLO-SG"},
		{"synchronous", ExtraSpecs{SRP: "SRP_1", SLO: "Diamond", Replicated: true,
			ReplicationMode: drivers.ReplicationModeSynchronous}, "OS-SRP_1-Diamond-NONE-RE-SG"},
		{"asynchronous", ExtraSpecs{SRP: "SRP_1", SLO: "Diamond", Replicated: true,
			ReplicationMode: drivers.ReplicationModeAsynchronous}, "OS-SRP_1-Diamond-NONE-RA-SG"},
		{"metro", ExtraSpecs{SRP: "SRP_1", SLO: "Diamond", Replicated: true,
			ReplicationMode: drivers.ReplicationModeMetro}, "OS-SRP_1-Diamond-NONE-RM-SG"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, test.spec.defaultStorageGroupName())
		})
	}
}

func TestSnapshotNames(t *testing.T) {
	name := snapshotName("OS-", "0e1f6b2c-1111-2222-3333-444455556666")
	assert.Equal(t, "OS-0e1f6b2c1111222233334444-43a2", name)
	assert.Len(t, name, maxSnapshotNameLength)
	assert.False(t, isTempSnapshot(name))

	temp := tempSnapshotName("00123", "clone-1")
	assert.Equal(t, "temp-00123-clone-1", temp)
	assert.True(t, isTempSnapshot(temp))
}

func TestParseHostLUN(t *testing.T) {
	lun, err := parseHostLUN("0001")
	require.NoError(t, err)
	assert.Equal(t, 1, lun)

	lun, err = parseHostLUN("00A")
	require.NoError(t, err)
	assert.Equal(t, 10, lun)

	_, err = parseHostLUN("zz")
	assert.Error(t, err)
}

func TestUcodeAtLeast(t *testing.T) {
	assert.True(t, ucodeAtLeast("5978.444.444", OnlineRDFExtendUcode))
	assert.True(t, ucodeAtLeast("5978.669.669", OnlineRDFExtendUcode))
	assert.True(t, ucodeAtLeast("6079.100.0", OnlineRDFExtendUcode))
	assert.False(t, ucodeAtLeast("5978.221.221", OnlineRDFExtendUcode))
	assert.False(t, ucodeAtLeast("5977.1131.1131", OnlineRDFExtendUcode))
}

func TestConnectorInitiators(t *testing.T) {
	_, err := connectorInitiators(nil, protocolISCSI)
	assert.True(t, errors.IsInvalidInputError(err))

	iscsi, err := connectorInitiators(&storage.Connector{Host: "host1", Initiator: testIQN}, protocolISCSI)
	require.NoError(t, err)
	assert.Equal(t, []string{testIQN}, iscsi)

	fc, err := connectorInitiators(&storage.Connector{
		Host:  "host1",
		WWPNs: []string{"10:00:00:00:C9:12:34:56", "10000000c9123456", "10000000C9ABCDEF"},
	}, protocolFC)
	require.NoError(t, err)
	assert.Equal(t, []string{"10000000c9123456", "10000000c9abcdef"}, fc)

	_, err = connectorInitiators(&storage.Connector{Host: "host1"}, protocolFC)
	assert.True(t, errors.IsInvalidInputError(err))
}
