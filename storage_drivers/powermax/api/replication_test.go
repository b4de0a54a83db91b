// Copyright 2025 NetApp, Inc. All Rights Reserved.

package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pmax-drivers/powermax/utils/errors"
)

func replURL(segments string) string {
	return primary + "/100/replication/symmetrix/" + testArray + segments
}

func TestCreateSnapshot(t *testing.T) {
	c, mt := newTestClient(t)

	var payload createSnapshotParam
	mt.RegisterResponder("POST", replURL("/snapshot/snap-1"), func(req *http.Request) (*http.Response, error) {
		decodeBody(t, req, &payload)
		return httpmock.NewStringResponse(201, "{}"), nil
	})

	require.NoError(t, c.CreateSnapshot(context.Background(), testArray, "snap-1", []string{"0012A"}, 0))
	assert.Equal(t, []deviceName{{Name: "0012A"}}, payload.DeviceNameListSource)
	assert.Zero(t, payload.TimeToLive)
	assert.False(t, payload.TimeInHours)

	require.NoError(t, c.CreateSnapshot(context.Background(), testArray, "snap-1", []string{"0012A"}, 24))
	assert.Equal(t, 24, payload.TimeToLive)
	assert.True(t, payload.TimeInHours)
}

func TestModifySnapshot(t *testing.T) {
	tests := []struct {
		name   string
		invoke func(c *Client) error
		check  func(t *testing.T, p modifySnapshotParam)
	}{
		{
			"Link",
			func(c *Client) error {
				return c.LinkSnapshot(context.Background(), testArray, "snap-1", 0, []string{"0012A"},
					[]string{"0012B"}, true)
			},
			func(t *testing.T, p modifySnapshotParam) {
				assert.Equal(t, SnapActionLink, p.Action)
				assert.Equal(t, []deviceName{{Name: "0012B"}}, p.DeviceNameListTarget)
				assert.True(t, p.Copy)
			},
		},
		{
			"Unlink",
			func(c *Client) error {
				return c.UnlinkSnapshot(context.Background(), testArray, "snap-1", 0, []string{"0012A"},
					[]string{"0012B"})
			},
			func(t *testing.T, p modifySnapshotParam) {
				assert.Equal(t, SnapActionUnlink, p.Action)
			},
		},
		{
			"Restore",
			func(c *Client) error {
				return c.RestoreSnapshot(context.Background(), testArray, "snap-1", 0, []string{"0012A"})
			},
			func(t *testing.T, p modifySnapshotParam) {
				assert.Equal(t, SnapActionRestore, p.Action)
				assert.Empty(t, p.DeviceNameListTarget)
			},
		},
		{
			"Rename",
			func(c *Client) error {
				return c.RenameSnapshot(context.Background(), testArray, "snap-1", "snap-2", 0, []string{"0012A"})
			},
			func(t *testing.T, p modifySnapshotParam) {
				assert.Equal(t, SnapActionRename, p.Action)
				assert.Equal(t, "snap-2", p.NewSnapshotName)
			},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			c, mt := newTestClient(t)
			var payload modifySnapshotParam
			mt.RegisterResponder("PUT", replURL("/snapshot/snap-1/generation/0"),
				func(req *http.Request) (*http.Response, error) {
					decodeBody(t, req, &payload)
					return httpmock.NewStringResponse(200, "{}"), nil
				})

			require.NoError(t, test.invoke(c))
			test.check(t, payload)
		})
	}
}

func TestDeleteSnapshot(t *testing.T) {
	c, mt := newTestClient(t)

	var payload deleteSnapshotParam
	mt.RegisterResponder("DELETE", replURL("/snapshot/snap-1/generation/1"),
		func(req *http.Request) (*http.Response, error) {
			decodeBody(t, req, &payload)
			return httpmock.NewStringResponse(204, ""), nil
		})

	require.NoError(t, c.DeleteSnapshot(context.Background(), testArray, "snap-1", 1, []string{"0012A"}))
	assert.Equal(t, 1, payload.Generation)
}

func TestTerminateSnapshotRestore(t *testing.T) {
	c, mt := newTestClient(t)

	var payload deleteSnapshotParam
	mt.RegisterResponder("DELETE", replURL("/snapshot/snap-1/generation/0"),
		func(req *http.Request) (*http.Response, error) {
			decodeBody(t, req, &payload)
			return httpmock.NewStringResponse(204, ""), nil
		})

	require.NoError(t, c.TerminateSnapshotRestore(context.Background(), testArray, "snap-1", 0, []string{"0012A"}))
	assert.True(t, payload.Restore)
}

func TestGetVolumeSnapshotInfo(t *testing.T) {
	c, mt := newTestClient(t)
	mt.RegisterResponder("GET", replURL("/volume/0012A/snapshot"), httpmock.NewStringResponder(200, `{
		"deviceName": "0012A",
		"snapshotSrcs": [{"snapshotName": "temp-0012A-clone1", "generation": 0,
			"linkedDevices": [{"targetDevice": "0012B", "copy": true, "defined": true}]}],
		"snapshotLnks": []
	}`))

	info, err := c.GetVolumeSnapshotInfo(context.Background(), testArray, "0012A")
	require.NoError(t, err)
	require.Len(t, info.SnapshotSources, 1)
	assert.Equal(t, "0012B", info.SnapshotSources[0].LinkedDevices[0].TargetDevice)
	assert.Empty(t, info.SnapshotLinks)
}

func TestGetRDFGroupByLabel(t *testing.T) {
	c, mt := newTestClient(t)
	mt.RegisterResponder("GET", replURL("/rdf_group"), httpmock.NewJsonResponderOrPanic(200, RDFGroupList{
		RDFGroups: []RDFGroupListEntry{{RDFGroupNumber: 1, Label: "other"}, {RDFGroupNumber: 7, Label: "OS-RDFG"}},
	}))
	mt.RegisterResponder("GET", replURL("/rdf_group/7"), httpmock.NewJsonResponderOrPanic(200, RDFGroup{
		RDFGroupNumber: 7, Label: "OS-RDFG", RemoteSymmetrix: testRemote, RemoteRDFGroupNumber: 8,
	}))

	group, err := c.GetRDFGroupByLabel(context.Background(), testArray, "os-rdfg")
	require.NoError(t, err)
	assert.Equal(t, 8, group.RemoteRDFGroupNumber)

	_, err = c.GetRDFGroupByLabel(context.Background(), testArray, "missing")
	assert.True(t, errors.IsNotFoundError(err))
}

func TestCreateRDFPair(t *testing.T) {
	c, mt := newTestClient(t)

	var payload createRDFPairParam
	mt.RegisterResponder("POST", replURL("/rdf_group/7/volume"), func(req *http.Request) (*http.Response, error) {
		decodeBody(t, req, &payload)
		return httpmock.NewStringResponse(201, "{}"), nil
	})

	require.NoError(t, c.CreateRDFPair(context.Background(), testArray, 7, "0012A", "0034B", RDFModeActive,
		true, false))
	assert.Equal(t, rdfTypeR1, payload.RDFType)
	assert.Equal(t, RDFModeActive, payload.ReplicationMode)
	assert.True(t, payload.MetroBias)
	assert.True(t, payload.Establish)
	assert.Equal(t, []deviceName{{Name: "0034B"}}, payload.DeviceNameListTarget)
}

func TestModifyStorageGroupRDFState(t *testing.T) {
	c, mt := newTestClient(t)

	var payload map[string]any
	mt.RegisterResponder("PUT", replURL("/storagegroup/SG1/rdf_group/7"),
		func(req *http.Request) (*http.Response, error) {
			decodeBody(t, req, &payload)
			return httpmock.NewStringResponse(200, "{}"), nil
		})

	require.NoError(t, c.ModifyStorageGroupRDFState(context.Background(), testArray, "SG1", 7, RDFActionSuspend,
		&RDFActionOptions{Force: true}))
	assert.Equal(t, RDFActionSuspend, payload["action"])
	assert.Contains(t, payload, "suspend")
	assert.NotContains(t, payload, "establish")

	err := c.ModifyStorageGroupRDFState(context.Background(), testArray, "SG1", 7, RDFActionSetMode, nil)
	assert.True(t, errors.IsInvalidInputError(err))

	err = c.ModifyStorageGroupRDFState(context.Background(), testArray, "SG1", 7, "Swap", nil)
	assert.True(t, errors.IsInvalidInputError(err))
}

func TestGetRDFDevicePair(t *testing.T) {
	c, mt := newTestClient(t)
	mt.RegisterResponder("GET", replURL("/rdf_group/7/volume/0012A"), httpmock.NewJsonResponderOrPanic(200,
		RDFDevicePair{LocalVolumeName: "0012A", RemoteVolumeName: "0034B", RDFPairState: RDFStateSynchronized}))

	pair, err := c.GetRDFDevicePair(context.Background(), testArray, 7, "0012A")
	require.NoError(t, err)
	assert.Equal(t, "0034B", pair.RemoteVolumeName)
	assert.Equal(t, RDFStateSynchronized, pair.RDFPairState)
}
