// Copyright 2025 NetApp, Inc. All Rights Reserved.

package powermax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mockapi "github.com/pmax-drivers/powermax/mocks/mock_storage_drivers/mock_powermax"
	"github.com/pmax-drivers/powermax/pkg/locks"
	"github.com/pmax-drivers/powermax/storage"
	drivers "github.com/pmax-drivers/powermax/storage_drivers"
	"github.com/pmax-drivers/powermax/storage_drivers/powermax/api"
	"github.com/pmax-drivers/powermax/utils/errors"
)

func newTestMasking(t *testing.T) (*masking, *mockapi.MockPowerMaxAPI) {
	mockCtrl := gomock.NewController(t)
	mockAPI := mockapi.NewMockPowerMaxAPI(mockCtrl)
	config := &drivers.PowerMaxStorageDriverConfig{
		CommonStorageDriverConfig: &drivers.CommonStorageDriverConfig{DebugTraceFlags: map[string]bool{"method": true}},
		Retries:                   2,
	}
	locker := locks.NewLocalLocker()
	p := newProvisioner(mockAPI, locker, config)
	return newMasking(mockAPI, p, locker, config), mockAPI
}

func testSpec() *ExtraSpecs {
	return &ExtraSpecs{Array: testArray, SRP: testSRP, SLO: testSLO, Workload: "NONE", PortGroups: []string{"PG1"}}
}

func testConnector() *storage.Connector {
	return &storage.Connector{Host: "host1.example.com", Initiator: testIQN}
}

func testMaskingViewDict(t *testing.T) *MaskingViewDict {
	dict, err := newMaskingViewDict(testDeviceID, "OS-vol-1", testSpec(), testConnector(), protocolISCSI)
	require.NoError(t, err)
	return dict
}

func parentStorageGroup(children ...string) *api.StorageGroup {
	return &api.StorageGroup{
		StorageGroupID:    testParentSG,
		Type:              api.StorageGroupTypeParent,
		ChildStorageGroup: children,
		NumOfChildSGs:     len(children),
		MaskingView:       []string{testMaskingView},
	}
}

func TestNewMaskingViewDict(t *testing.T) {
	dict := testMaskingViewDict(t)

	assert.Equal(t, &MaskingViewDict{
		Array:               testArray,
		DeviceID:            testDeviceID,
		Identifier:          "OS-vol-1",
		Host:                "host1.example.com",
		Protocol:            protocolISCSI,
		Initiators:          []string{testIQN},
		PortGroup:           "PG1",
		InitiatorGroup:      testInitiatorGroup,
		ParentStorageGroup:  testParentSG,
		ChildStorageGroup:   testChildSG,
		MaskingView:         testMaskingView,
		DefaultStorageGroup: testDefaultSG,
		ExtraSpecs:          testSpec(),
	}, dict)

	_, err := newMaskingViewDict(testDeviceID, "OS-vol-1", &ExtraSpecs{SRP: testSRP}, testConnector(), protocolISCSI)
	assert.True(t, errors.IsInvalidInputError(err))
}

// expectNewMaskingView sets up the calls that build a masking view from nothing, up to but not
// including its creation.
func expectNewMaskingView(mockAPI *mockapi.MockPowerMaxAPI) {
	notFound := errors.NotFoundError("not found")

	mockAPI.EXPECT().GetMaskingView(gomock.Any(), testArray, testMaskingView).Return(nil, notFound)
	mockAPI.EXPECT().GetInitiatorIDs(gomock.Any(), testArray, testIQN).Return([]string{}, nil)
	mockAPI.EXPECT().GetHost(gomock.Any(), testArray, testInitiatorGroup).Return(nil, notFound)
	mockAPI.EXPECT().CreateHost(gomock.Any(), testArray, testInitiatorGroup, []string{testIQN},
		&api.HostFlags{ConsistentLUN: false}).Return(&api.Host{HostID: testInitiatorGroup}, nil)
	mockAPI.EXPECT().GetPortGroup(gomock.Any(), testArray, "PG1").Return(&api.PortGroup{PortGroupID: "PG1"}, nil)

	mockAPI.EXPECT().GetStorageGroup(gomock.Any(), testArray, testParentSG).Return(nil, notFound).Times(2)
	mockAPI.EXPECT().CreateStorageGroup(gomock.Any(), testArray, testParentSG, "", "", "", false).Return(
		&api.StorageGroup{StorageGroupID: testParentSG}, nil)
	mockAPI.EXPECT().GetStorageGroup(gomock.Any(), testArray, testChildSG).Return(nil, notFound).Times(2)
	mockAPI.EXPECT().CreateStorageGroup(gomock.Any(), testArray, testChildSG, testSRP, testSLO, "NONE", false).
		Return(&api.StorageGroup{StorageGroupID: testChildSG}, nil)
	mockAPI.EXPECT().GetStorageGroup(gomock.Any(), testArray, testParentSG).Return(
		&api.StorageGroup{StorageGroupID: testParentSG}, nil)
	mockAPI.EXPECT().AddChildStorageGroup(gomock.Any(), testArray, testParentSG, testChildSG).Return(nil)
	mockAPI.EXPECT().MoveVolumesToStorageGroup(gomock.Any(), testArray, testDefaultSG, testChildSG, false,
		testDeviceID).Return(nil)
}

func TestGetOrCreateMaskingViewAndMapLUN_NewView(t *testing.T) {
	m, mockAPI := newTestMasking(t)
	dict := testMaskingViewDict(t)

	mockAPI.EXPECT().GetVolume(gomock.Any(), testArray, testDeviceID).Return(
		&api.Volume{VolumeID: testDeviceID, StorageGroupIDs: []string{testDefaultSG}}, nil)
	expectNewMaskingView(mockAPI)
	mockAPI.EXPECT().CreateMaskingView(gomock.Any(), testArray, testMaskingView, testInitiatorGroup, "PG1",
		testParentSG).Return(nil)

	assert.NoError(t, m.GetOrCreateMaskingViewAndMapLUN(ctx(), dict))
}

func TestGetOrCreateMaskingViewAndMapLUN_RollsBack(t *testing.T) {
	m, mockAPI := newTestMasking(t)
	dict := testMaskingViewDict(t)

	mockAPI.EXPECT().GetVolume(gomock.Any(), testArray, testDeviceID).Return(
		&api.Volume{VolumeID: testDeviceID, StorageGroupIDs: []string{testDefaultSG}}, nil)
	expectNewMaskingView(mockAPI)
	mockAPI.EXPECT().CreateMaskingView(gomock.Any(), testArray, testMaskingView, testInitiatorGroup, "PG1",
		testParentSG).Return(errors.VolumeBackendAPIError("masking view rejected"))

	// device goes back to its default storage group
	mockAPI.EXPECT().GetVolume(gomock.Any(), testArray, testDeviceID).Return(
		&api.Volume{VolumeID: testDeviceID, StorageGroupIDs: []string{testChildSG}}, nil)
	mockAPI.EXPECT().RemoveVolumesFromStorageGroup(gomock.Any(), testArray, testChildSG, false, testDeviceID).
		Return(nil)
	mockAPI.EXPECT().GetVolume(gomock.Any(), testArray, testDeviceID).Return(&api.Volume{VolumeID: testDeviceID}, nil)
	mockAPI.EXPECT().AddVolumesToStorageGroup(gomock.Any(), testArray, testDefaultSG, false, testDeviceID).
		Return(nil)

	// the groups made for the attempt are removed
	mockAPI.EXPECT().GetStorageGroup(gomock.Any(), testArray, testChildSG).Return(
		&api.StorageGroup{StorageGroupID: testChildSG}, nil).Times(2)
	mockAPI.EXPECT().RemoveChildStorageGroup(gomock.Any(), testArray, testParentSG, testChildSG).Return(nil)
	mockAPI.EXPECT().DeleteStorageGroup(gomock.Any(), testArray, testChildSG).Return(nil)
	mockAPI.EXPECT().GetStorageGroup(gomock.Any(), testArray, testParentSG).Return(
		&api.StorageGroup{StorageGroupID: testParentSG}, nil)
	mockAPI.EXPECT().DeleteStorageGroup(gomock.Any(), testArray, testParentSG).Return(nil)

	// and so is the new initiator group
	mockAPI.EXPECT().GetMaskingViewsForHost(gomock.Any(), testArray, testInitiatorGroup).Return(nil, nil)
	mockAPI.EXPECT().DeleteHost(gomock.Any(), testArray, testInitiatorGroup).Return(nil)

	err := m.GetOrCreateMaskingViewAndMapLUN(ctx(), dict)
	require.Error(t, err)
	assert.True(t, errors.IsVolumeBackendAPIError(err))
	assert.Contains(t, err.Error(), "masking view rejected")
}

func TestGetOrCreateMaskingViewAndMapLUN_ExistingView(t *testing.T) {
	m, mockAPI := newTestMasking(t)
	dict := testMaskingViewDict(t)

	mockAPI.EXPECT().GetVolume(gomock.Any(), testArray, testDeviceID).Return(
		&api.Volume{VolumeID: testDeviceID}, nil).Times(2)
	mockAPI.EXPECT().GetMaskingView(gomock.Any(), testArray, testMaskingView).Return(&api.MaskingView{
		MaskingViewID: testMaskingView, HostID: "OS-host1-legacy-IG", PortGroupID: "PG1", StorageGroupID: testParentSG,
	}, nil)
	mockAPI.EXPECT().GetStorageGroup(gomock.Any(), testArray, testParentSG).Return(
		parentStorageGroup(testChildSG), nil).Times(2)
	mockAPI.EXPECT().GetStorageGroup(gomock.Any(), testArray, testChildSG).Return(
		&api.StorageGroup{StorageGroupID: testChildSG}, nil)
	mockAPI.EXPECT().AddVolumesToStorageGroup(gomock.Any(), testArray, testChildSG, false, testDeviceID).Return(nil)

	require.NoError(t, m.GetOrCreateMaskingViewAndMapLUN(ctx(), dict))
	assert.Equal(t, "OS-host1-legacy-IG", dict.InitiatorGroup)
}

func TestGetOrCreateMaskingViewAndMapLUN_NotCascaded(t *testing.T) {
	m, mockAPI := newTestMasking(t)
	dict := testMaskingViewDict(t)

	mockAPI.EXPECT().GetVolume(gomock.Any(), testArray, testDeviceID).Return(
		&api.Volume{VolumeID: testDeviceID, StorageGroupIDs: []string{testDefaultSG}}, nil).Times(2)
	mockAPI.EXPECT().GetMaskingView(gomock.Any(), testArray, testMaskingView).Return(&api.MaskingView{
		MaskingViewID: testMaskingView, HostID: testInitiatorGroup, PortGroupID: "PG1", StorageGroupID: "flat-sg",
	}, nil)
	mockAPI.EXPECT().GetStorageGroup(gomock.Any(), testArray, "flat-sg").Return(
		&api.StorageGroup{StorageGroupID: "flat-sg", Type: api.StorageGroupTypeStandalone}, nil)

	err := m.GetOrCreateMaskingViewAndMapLUN(ctx(), dict)
	assert.True(t, errors.IsUnsupportedConfigError(err))
}

func TestValidateMaskingViewComponents_InitiatorCheck(t *testing.T) {
	m, mockAPI := newTestMasking(t)
	m.config.InitiatorCheck = true
	dict := testMaskingViewDict(t)
	mv := &api.MaskingView{MaskingViewID: testMaskingView, HostID: testInitiatorGroup, StorageGroupID: testParentSG}

	mockAPI.EXPECT().GetStorageGroup(gomock.Any(), testArray, testParentSG).Return(parentStorageGroup(), nil).Times(2)
	mockAPI.EXPECT().GetHost(gomock.Any(), testArray, testInitiatorGroup).Return(&api.Host{
		HostID: testInitiatorGroup, Initiators: []string{"SE-1E:000:" + testIQN},
	}, nil)
	assert.NoError(t, m.validateMaskingViewComponents(ctx(), dict, mv))

	mockAPI.EXPECT().GetHost(gomock.Any(), testArray, testInitiatorGroup).Return(&api.Host{
		HostID: testInitiatorGroup, Initiators: []string{"iqn.1993-08.org.debian:01:other"},
	}, nil)
	err := m.validateMaskingViewComponents(ctx(), dict, mv)
	assert.True(t, errors.IsUnsupportedConfigError(err))
}

func TestGetOrCreateInitiatorGroup_ReusesExisting(t *testing.T) {
	m, mockAPI := newTestMasking(t)
	dict := testMaskingViewDict(t)

	mockAPI.EXPECT().GetInitiatorIDs(gomock.Any(), testArray, testIQN).Return([]string{"SE-1E:000:" + testIQN}, nil)
	mockAPI.EXPECT().GetInitiator(gomock.Any(), testArray, "SE-1E:000:"+testIQN).Return(
		&api.Initiator{InitiatorID: testIQN, Host: "esx-cluster-IG"}, nil)

	state := &mappingState{}
	require.NoError(t, m.getOrCreateInitiatorGroup(ctx(), dict, state))
	assert.Equal(t, "esx-cluster-IG", dict.InitiatorGroup)
	assert.Empty(t, state.createdInitiatorGroup)
}

func TestGetOrCreateInitiatorGroup_CreatedConcurrently(t *testing.T) {
	m, mockAPI := newTestMasking(t)
	dict := testMaskingViewDict(t)

	mockAPI.EXPECT().GetInitiatorIDs(gomock.Any(), testArray, testIQN).Return(nil, nil)
	mockAPI.EXPECT().GetHost(gomock.Any(), testArray, testInitiatorGroup).Return(nil, errors.NotFoundError("no"))
	mockAPI.EXPECT().CreateHost(gomock.Any(), testArray, testInitiatorGroup, []string{testIQN}, gomock.Any()).
		Return(nil, errors.AlreadyExistsError("exists"))

	state := &mappingState{}
	require.NoError(t, m.getOrCreateInitiatorGroup(ctx(), dict, state))
	assert.Empty(t, state.createdInitiatorGroup)
}

func TestCheckIfRollbackRequired(t *testing.T) {
	tests := []struct {
		name     string
		previous []string
		current  []string
		expected bool
	}{
		{"unchanged", []string{"a", "b"}, []string{"b", "a"}, false},
		{"both empty", nil, nil, false},
		{"added", []string{"a"}, []string{"a", "b"}, true},
		{"moved", []string{"a"}, []string{"b"}, true},
		{"removed", []string{"a"}, nil, true},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, checkIfRollbackRequired(test.previous, test.current))
		})
	}
}

func TestContainsInitiator(t *testing.T) {
	ids := []string{"FA-1D:4:10000000c9123456", testIQN}
	assert.True(t, containsInitiator(ids, "10000000C9123456"))
	assert.True(t, containsInitiator(ids, testIQN))
	assert.False(t, containsInitiator(ids, "10000000c9abcdef"))
	assert.False(t, containsInitiator(nil, testIQN))
}

func TestFindMaskingViewsForVolumeAndHost(t *testing.T) {
	m, mockAPI := newTestMasking(t)

	mockAPI.EXPECT().GetStorageGroup(gomock.Any(), testArray, "sg1").Return(&api.StorageGroup{
		StorageGroupID:     "sg1",
		MaskingView:        []string{"OS-host2-PG1-MV"},
		ParentStorageGroup: []string{"parent1", "parent-gone"},
	}, nil).Times(2)
	mockAPI.EXPECT().GetStorageGroup(gomock.Any(), testArray, "parent1").Return(&api.StorageGroup{
		StorageGroupID: "parent1",
		MaskingView:    []string{testMaskingView, "OS-host2-PG1-MV"},
	}, nil).Times(2)
	mockAPI.EXPECT().GetStorageGroup(gomock.Any(), testArray, "parent-gone").Return(nil,
		errors.NotFoundError("no")).Times(2)
	mockAPI.EXPECT().GetStorageGroup(gomock.Any(), testArray, "sg-gone").Return(nil,
		errors.NotFoundError("no")).Times(2)

	views, err := m.FindMaskingViewsForVolumeAndHost(ctx(), testArray, []string{"sg1", "sg-gone"},
		"host1.example.com", testSpec())
	require.NoError(t, err)
	assert.Equal(t, []string{testMaskingView}, views)

	views, err = m.FindMaskingViewsForVolumeAndHost(ctx(), testArray, []string{"sg1", "sg-gone"}, "", nil)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{testMaskingView, "OS-host2-PG1-MV"}, views)
}

func TestFindMaskingViewsForVolumeAndHost_DashedHostNames(t *testing.T) {
	m, mockAPI := newTestMasking(t)
	m.config.PortGroups = []string{"PG2"}
	spec := testSpec()

	node2View := maskingViewName("node-2.example.com", "PG1")
	node2LegacyView := legacyMaskingViewName("node-2", "PG2", spec)
	mockAPI.EXPECT().GetStorageGroup(gomock.Any(), testArray, "sg1").Return(&api.StorageGroup{
		StorageGroupID: "sg1",
		MaskingView:    []string{node2View, node2LegacyView},
	}, nil).AnyTimes()

	views, err := m.FindMaskingViewsForVolumeAndHost(ctx(), testArray, []string{"sg1"}, "node.example.com", spec)
	require.NoError(t, err)
	assert.Empty(t, views, "views of node-2 must not be attributed to node")

	views, err = m.FindMaskingViewsForVolumeAndHost(ctx(), testArray, []string{"sg1"}, "node-2", spec)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{node2View, node2LegacyView}, views)

	nodeView := maskingViewName("node", "PG2")
	mockAPI.EXPECT().GetStorageGroup(gomock.Any(), testArray, "sg2").Return(&api.StorageGroup{
		StorageGroupID: "sg2",
		MaskingView:    []string{node2View, nodeView},
	}, nil)

	views, err = m.FindMaskingViewsForVolumeAndHost(ctx(), testArray, []string{"sg2"}, "node", spec)
	require.NoError(t, err)
	assert.Equal(t, []string{nodeView}, views)
}

func TestGetHostLunID(t *testing.T) {
	m, mockAPI := newTestMasking(t)

	mockAPI.EXPECT().GetMaskingViewConnections(gomock.Any(), testArray, testMaskingView, testDeviceID).Return(
		[]api.MaskingViewConnection{{VolumeID: testDeviceID, HostLUNAddress: "001F"}}, nil)
	lun, err := m.GetHostLunID(ctx(), testArray, testDeviceID, testMaskingView)
	require.NoError(t, err)
	assert.Equal(t, 31, lun)

	mockAPI.EXPECT().GetMaskingViewConnections(gomock.Any(), testArray, testMaskingView, testDeviceID).Return(
		[]api.MaskingViewConnection{{VolumeID: "00999", HostLUNAddress: "0001"}}, nil)
	_, err = m.GetHostLunID(ctx(), testArray, testDeviceID, testMaskingView)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestRemoveAndResetMembers_LastChild(t *testing.T) {
	m, mockAPI := newTestMasking(t)
	child := &api.StorageGroup{StorageGroupID: testChildSG, ParentStorageGroup: []string{testParentSG},
		NumOfParentSGs: 1}

	mockAPI.EXPECT().GetVolume(gomock.Any(), testArray, testDeviceID).Return(
		&api.Volume{VolumeID: testDeviceID, StorageGroupIDs: []string{testChildSG}}, nil).Times(2)
	mockAPI.EXPECT().GetStorageGroup(gomock.Any(), testArray, testChildSG).Return(child, nil).Times(2)
	mockAPI.EXPECT().GetStorageGroup(gomock.Any(), testArray, testParentSG).Return(
		parentStorageGroup(testChildSG), nil).Times(2)
	mockAPI.EXPECT().GetMaskingView(gomock.Any(), testArray, testMaskingView).Return(&api.MaskingView{
		MaskingViewID: testMaskingView, HostID: testInitiatorGroup, PortGroupID: "PG1", StorageGroupID: testParentSG,
	}, nil)
	mockAPI.EXPECT().RemoveVolumesFromStorageGroup(gomock.Any(), testArray, testChildSG, false, testDeviceID).
		Return(nil)

	gomock.InOrder(
		mockAPI.EXPECT().DeleteMaskingView(gomock.Any(), testArray, testMaskingView).Return(nil),
		mockAPI.EXPECT().GetMaskingViewsForHost(gomock.Any(), testArray, testInitiatorGroup).Return([]string{}, nil),
		mockAPI.EXPECT().DeleteHost(gomock.Any(), testArray, testInitiatorGroup).Return(nil),
		mockAPI.EXPECT().RemoveChildStorageGroup(gomock.Any(), testArray, testParentSG, testChildSG).Return(nil),
		mockAPI.EXPECT().DeleteStorageGroup(gomock.Any(), testArray, testChildSG).Return(nil),
		mockAPI.EXPECT().DeleteStorageGroup(gomock.Any(), testArray, testParentSG).Return(nil),
	)

	// back to the default storage group
	mockAPI.EXPECT().GetVolume(gomock.Any(), testArray, testDeviceID).Return(
		&api.Volume{VolumeID: testDeviceID}, nil).Times(2)
	mockAPI.EXPECT().GetStorageGroup(gomock.Any(), testArray, testDefaultSG).Return(testDefaultStorageGroup(), nil)
	mockAPI.EXPECT().AddVolumesToStorageGroup(gomock.Any(), testArray, testDefaultSG, false, testDeviceID).
		Return(nil)

	assert.NoError(t, m.RemoveAndResetMembers(ctx(), testArray, testDeviceID, testSpec(), testConnector(), true))
}

func TestRemoveAndResetMembers_OtherChildrenRemain(t *testing.T) {
	m, mockAPI := newTestMasking(t)
	otherChild := "OS-host1-SRP_1-Gold-NONE-PG1"
	child := &api.StorageGroup{StorageGroupID: testChildSG, ParentStorageGroup: []string{testParentSG},
		NumOfParentSGs: 1}

	mockAPI.EXPECT().GetVolume(gomock.Any(), testArray, testDeviceID).Return(
		&api.Volume{VolumeID: testDeviceID, StorageGroupIDs: []string{testChildSG}}, nil).Times(2)
	mockAPI.EXPECT().GetStorageGroup(gomock.Any(), testArray, testChildSG).Return(child, nil).Times(2)
	mockAPI.EXPECT().GetStorageGroup(gomock.Any(), testArray, testParentSG).Return(
		parentStorageGroup(otherChild, testChildSG), nil).Times(2)
	mockAPI.EXPECT().GetMaskingView(gomock.Any(), testArray, testMaskingView).Return(&api.MaskingView{
		MaskingViewID: testMaskingView, HostID: testInitiatorGroup, StorageGroupID: testParentSG,
	}, nil)
	mockAPI.EXPECT().RemoveVolumesFromStorageGroup(gomock.Any(), testArray, testChildSG, false, testDeviceID).
		Return(nil)
	mockAPI.EXPECT().RemoveChildStorageGroup(gomock.Any(), testArray, testParentSG, testChildSG).Return(nil)
	mockAPI.EXPECT().DeleteStorageGroup(gomock.Any(), testArray, testChildSG).Return(nil)

	assert.NoError(t, m.RemoveAndResetMembers(ctx(), testArray, testDeviceID, testSpec(), testConnector(), false))
}

func TestRemoveAndResetMembers_ChildStillPopulated(t *testing.T) {
	m, mockAPI := newTestMasking(t)
	child := &api.StorageGroup{StorageGroupID: testChildSG, ParentStorageGroup: []string{testParentSG},
		NumOfParentSGs: 1, NumOfVolumes: 3}

	mockAPI.EXPECT().GetVolume(gomock.Any(), testArray, testDeviceID).Return(
		&api.Volume{VolumeID: testDeviceID, StorageGroupIDs: []string{testChildSG}}, nil).Times(2)
	mockAPI.EXPECT().GetStorageGroup(gomock.Any(), testArray, testChildSG).Return(child, nil).Times(2)
	mockAPI.EXPECT().GetStorageGroup(gomock.Any(), testArray, testParentSG).Return(
		parentStorageGroup(testChildSG), nil).Times(2)
	mockAPI.EXPECT().GetMaskingView(gomock.Any(), testArray, testMaskingView).Return(&api.MaskingView{
		MaskingViewID: testMaskingView, HostID: testInitiatorGroup, StorageGroupID: testParentSG,
	}, nil)
	mockAPI.EXPECT().RemoveVolumesFromStorageGroup(gomock.Any(), testArray, testChildSG, false, testDeviceID).
		Return(nil)

	assert.NoError(t, m.RemoveAndResetMembers(ctx(), testArray, testDeviceID, testSpec(), testConnector(), false))
}

func TestRemoveVolumeFromAllStorageGroups(t *testing.T) {
	m, mockAPI := newTestMasking(t)

	mockAPI.EXPECT().GetVolume(gomock.Any(), testArray, testDeviceID).Return(
		&api.Volume{VolumeID: testDeviceID, StorageGroupIDs: []string{"sg1", "sg2"}}, nil)
	mockAPI.EXPECT().RemoveVolumesFromStorageGroup(gomock.Any(), testArray, "sg1", true, testDeviceID).Return(nil)
	mockAPI.EXPECT().RemoveVolumesFromStorageGroup(gomock.Any(), testArray, "sg2", true, testDeviceID).Return(
		errors.VolumeBackendAPIError("locked"))

	err := m.RemoveVolumeFromAllStorageGroups(ctx(), testArray, testDeviceID)
	assert.True(t, errors.IsVolumeBackendAPIError(err))
	assert.Contains(t, err.Error(), "sg2")
}

func TestGetISCSITargets(t *testing.T) {
	m, mockAPI := newTestMasking(t)

	mockAPI.EXPECT().GetPortGroup(gomock.Any(), testArray, "PG1").Return(&api.PortGroup{
		SymmetrixPortKey: []api.PortKey{{DirectorID: "SE-1E", PortID: "0"}, {DirectorID: "SE-2E", PortID: "0"}},
	}, nil)
	mockAPI.EXPECT().GetPort(gomock.Any(), testArray, "SE-1E", "0").Return(&api.Port{SymmetrixPort: api.SymmetrixPort{
		Identifier: "iqn.a", IPAddresses: []string{"10.0.0.1"},
	}}, nil)
	mockAPI.EXPECT().GetPort(gomock.Any(), testArray, "SE-2E", "0").Return(&api.Port{SymmetrixPort: api.SymmetrixPort{
		Identifier: "iqn.b", IPAddresses: []string{"fd00::2"},
	}}, nil)

	targets, err := m.GetISCSITargets(ctx(), testArray, "PG1")
	require.NoError(t, err)
	assert.Equal(t, []storage.ISCSITarget{
		{IQN: "iqn.a", Portal: "10.0.0.1:3260"},
		{IQN: "iqn.b", Portal: "[fd00::2]:3260"},
	}, targets)
}

func TestGetISCSITargets_NoPortals(t *testing.T) {
	m, mockAPI := newTestMasking(t)

	mockAPI.EXPECT().GetPortGroup(gomock.Any(), testArray, "PG1").Return(&api.PortGroup{
		SymmetrixPortKey: []api.PortKey{{DirectorID: "SE-1E", PortID: "0"}},
	}, nil)
	mockAPI.EXPECT().GetPort(gomock.Any(), testArray, "SE-1E", "0").Return(&api.Port{}, nil)

	_, err := m.GetISCSITargets(ctx(), testArray, "PG1")
	assert.True(t, errors.IsNotFoundError(err))
}

func TestGetFCTargetWWNs(t *testing.T) {
	m, mockAPI := newTestMasking(t)

	mockAPI.EXPECT().GetPortGroup(gomock.Any(), testArray, "PG1").Return(&api.PortGroup{
		SymmetrixPortKey: []api.PortKey{{DirectorID: "FA-1D", PortID: "4"}, {DirectorID: "FA-2D", PortID: "4"}},
	}, nil)
	mockAPI.EXPECT().GetPort(gomock.Any(), testArray, "FA-1D", "4").Return(&api.Port{SymmetrixPort: api.SymmetrixPort{
		Identifier: "5000097300A1B2C3",
	}}, nil)
	mockAPI.EXPECT().GetPort(gomock.Any(), testArray, "FA-2D", "4").Return(&api.Port{}, nil)

	wwns, err := m.GetFCTargetWWNs(ctx(), testArray, "PG1")
	require.NoError(t, err)
	assert.Equal(t, []string{"5000097300a1b2c3"}, wwns)
}
