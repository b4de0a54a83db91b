// Copyright 2025 NetApp, Inc. All Rights Reserved.

package powermax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	mockapi "github.com/pmax-drivers/powermax/mocks/mock_storage_drivers/mock_powermax"
	"github.com/pmax-drivers/powermax/storage_drivers/powermax/api"
	"github.com/pmax-drivers/powermax/utils/errors"
)

const (
	testLegacyMaskingView  = "OS-host1-SRP_1-Diamond-NONE-PG1-MV"
	testLegacyStorageGroup = "OS-host1-SRP_1-Diamond-NONE-PG1-SG"
)

func expectLegacyCandidate(mockAPI *mockapi.MockPowerMaxAPI) {
	mockAPI.EXPECT().GetVolume(gomock.Any(), testArray, testDeviceID).Return(
		&api.Volume{VolumeID: testDeviceID, StorageGroupIDs: []string{testLegacyStorageGroup}}, nil)
	mockAPI.EXPECT().GetStorageGroup(gomock.Any(), testArray, testLegacyStorageGroup).Return(&api.StorageGroup{
		StorageGroupID: testLegacyStorageGroup,
		Type:           api.StorageGroupTypeStandalone,
		MaskingView:    []string{testLegacyMaskingView},
		NumOfVolumes:   2,
	}, nil)
	mockAPI.EXPECT().GetMaskingView(gomock.Any(), testArray, testLegacyMaskingView).Return(&api.MaskingView{
		MaskingViewID:  testLegacyMaskingView,
		HostID:         testInitiatorGroup,
		PortGroupID:    "PG1",
		StorageGroupID: testLegacyStorageGroup,
	}, nil)
	mockAPI.EXPECT().GetMaskingView(gomock.Any(), testArray, testMaskingView).Return(nil,
		errors.NotFoundError("not found"))
}

func expectMigrationStructure(mockAPI *mockapi.MockPowerMaxAPI) {
	notFound := errors.NotFoundError("not found")

	mockAPI.EXPECT().GetStorageGroup(gomock.Any(), testArray, testParentSG).Return(nil, notFound).Times(2)
	mockAPI.EXPECT().CreateStorageGroup(gomock.Any(), testArray, testParentSG, "", "", "", false).Return(
		&api.StorageGroup{StorageGroupID: testParentSG}, nil)
	mockAPI.EXPECT().GetStorageGroup(gomock.Any(), testArray, testChildSG).Return(nil, notFound).Times(2)
	mockAPI.EXPECT().CreateStorageGroup(gomock.Any(), testArray, testChildSG, testSRP, testSLO, "NONE", false).
		Return(&api.StorageGroup{StorageGroupID: testChildSG}, nil)
	mockAPI.EXPECT().AddChildStorageGroup(gomock.Any(), testArray, testParentSG, testChildSG).Return(nil)
	mockAPI.EXPECT().GetVolumeIDsInStorageGroup(gomock.Any(), testArray, testLegacyStorageGroup).Return(
		[]string{testDeviceID, "00124"}, nil)
	mockAPI.EXPECT().MoveVolumesToStorageGroup(gomock.Any(), testArray, testLegacyStorageGroup, testChildSG, false,
		testDeviceID, "00124").Return(nil)
}

func TestDoMigrateIfCandidate(t *testing.T) {
	m, mockAPI := newTestMasking(t)

	expectLegacyCandidate(mockAPI)
	expectMigrationStructure(mockAPI)
	gomock.InOrder(
		mockAPI.EXPECT().CreateMaskingView(gomock.Any(), testArray, testMaskingView, testInitiatorGroup, "PG1",
			testParentSG).Return(nil),
		mockAPI.EXPECT().DeleteMaskingView(gomock.Any(), testArray, testLegacyMaskingView).Return(nil),
		mockAPI.EXPECT().DeleteStorageGroup(gomock.Any(), testArray, testLegacyStorageGroup).Return(nil),
	)

	migrated, err := m.DoMigrateIfCandidate(ctx(), testArray, testDeviceID, testSpec(), testConnector())
	assert.NoError(t, err)
	assert.True(t, migrated)
}

func TestDoMigrateIfCandidate_LegacyCleanupFailureIgnored(t *testing.T) {
	m, mockAPI := newTestMasking(t)

	expectLegacyCandidate(mockAPI)
	expectMigrationStructure(mockAPI)
	mockAPI.EXPECT().CreateMaskingView(gomock.Any(), testArray, testMaskingView, testInitiatorGroup, "PG1",
		testParentSG).Return(nil)
	mockAPI.EXPECT().DeleteMaskingView(gomock.Any(), testArray, testLegacyMaskingView).Return(
		errors.VolumeBackendAPIError("busy"))

	migrated, err := m.DoMigrateIfCandidate(ctx(), testArray, testDeviceID, testSpec(), testConnector())
	assert.NoError(t, err)
	assert.True(t, migrated)
}

func TestDoMigrateIfCandidate_Abandoned(t *testing.T) {
	m, mockAPI := newTestMasking(t)

	expectLegacyCandidate(mockAPI)
	expectMigrationStructure(mockAPI)
	mockAPI.EXPECT().CreateMaskingView(gomock.Any(), testArray, testMaskingView, testInitiatorGroup, "PG1",
		testParentSG).Return(errors.VolumeBackendAPIError("port group in use"))

	gomock.InOrder(
		mockAPI.EXPECT().MoveVolumesToStorageGroup(gomock.Any(), testArray, testChildSG, testLegacyStorageGroup,
			false, testDeviceID, "00124").Return(nil),
		mockAPI.EXPECT().RemoveChildStorageGroup(gomock.Any(), testArray, testParentSG, testChildSG).Return(nil),
		mockAPI.EXPECT().DeleteStorageGroup(gomock.Any(), testArray, testChildSG).Return(nil),
		mockAPI.EXPECT().DeleteStorageGroup(gomock.Any(), testArray, testParentSG).Return(nil),
	)

	migrated, err := m.DoMigrateIfCandidate(ctx(), testArray, testDeviceID, testSpec(), testConnector())
	assert.False(t, migrated)
	assert.True(t, errors.IsVolumeBackendAPIError(err))
}

func TestDoMigrateIfCandidate_NewViewExists(t *testing.T) {
	m, mockAPI := newTestMasking(t)

	mockAPI.EXPECT().GetVolume(gomock.Any(), testArray, testDeviceID).Return(
		&api.Volume{VolumeID: testDeviceID, StorageGroupIDs: []string{testLegacyStorageGroup}}, nil)
	mockAPI.EXPECT().GetStorageGroup(gomock.Any(), testArray, testLegacyStorageGroup).Return(&api.StorageGroup{
		StorageGroupID: testLegacyStorageGroup,
		MaskingView:    []string{testLegacyMaskingView},
	}, nil)
	mockAPI.EXPECT().GetMaskingView(gomock.Any(), testArray, testLegacyMaskingView).Return(&api.MaskingView{
		MaskingViewID: testLegacyMaskingView, HostID: testInitiatorGroup, PortGroupID: "PG1",
	}, nil)
	mockAPI.EXPECT().GetMaskingView(gomock.Any(), testArray, testMaskingView).Return(&api.MaskingView{
		MaskingViewID: testMaskingView,
	}, nil)

	migrated, err := m.DoMigrateIfCandidate(ctx(), testArray, testDeviceID, testSpec(), testConnector())
	assert.False(t, migrated)
	assert.True(t, errors.IsAlreadyExistsError(err))
}

func TestDoMigrateIfCandidate_NotCandidate(t *testing.T) {
	tests := []struct {
		name   string
		volume *api.Volume
		sg     *api.StorageGroup
		mv     *api.MaskingView
	}{
		{
			name:   "unmapped",
			volume: &api.Volume{VolumeID: testDeviceID},
		},
		{
			name:   "several storage groups",
			volume: &api.Volume{VolumeID: testDeviceID, StorageGroupIDs: []string{"a", "b"}},
		},
		{
			name:   "already cascaded",
			volume: &api.Volume{VolumeID: testDeviceID, StorageGroupIDs: []string{testChildSG}},
			sg: &api.StorageGroup{StorageGroupID: testChildSG, ParentStorageGroup: []string{testParentSG},
				NumOfParentSGs: 1},
		},
		{
			name:   "no masking view",
			volume: &api.Volume{VolumeID: testDeviceID, StorageGroupIDs: []string{testDefaultSG}},
			sg:     testDefaultStorageGroup(),
		},
		{
			name:   "view of another host",
			volume: &api.Volume{VolumeID: testDeviceID, StorageGroupIDs: []string{"other-sg"}},
			sg:     &api.StorageGroup{StorageGroupID: "other-sg", MaskingView: []string{"manual-MV"}},
			mv:     &api.MaskingView{MaskingViewID: "manual-MV", PortGroupID: "PG1"},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			m, mockAPI := newTestMasking(t)

			mockAPI.EXPECT().GetVolume(gomock.Any(), testArray, testDeviceID).Return(test.volume, nil)
			if test.sg != nil {
				mockAPI.EXPECT().GetStorageGroup(gomock.Any(), testArray, test.sg.StorageGroupID).Return(test.sg, nil)
			}
			if test.mv != nil {
				mockAPI.EXPECT().GetMaskingView(gomock.Any(), testArray, test.mv.MaskingViewID).Return(test.mv, nil)
			}

			migrated, err := m.DoMigrateIfCandidate(ctx(), testArray, testDeviceID, testSpec(), testConnector())
			assert.NoError(t, err)
			assert.False(t, migrated)
		})
	}
}
