// Copyright 2025 NetApp, Inc. All Rights Reserved.

package storagedrivers

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pmax-drivers/powermax/pkg/capacity"
	"github.com/pmax-drivers/powermax/utils/errors"
)

func TestValidateCommonSettings(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name           string
		configJSON     string
		wantErr        bool
		expectedPrefix *string
	}{
		{
			name:       "valid without prefix",
			configJSON: `{"version": 1, "storageDriverName": "powermax-san"}`,
		},
		{
			name:           "valid with prefix",
			configJSON:     `{"version": 1, "storageDriverName": "powermax-san", "storagePrefix": "cinder-"}`,
			expectedPrefix: func() *string { s := "cinder-"; return &s }(),
		},
		{
			name:           "empty prefix",
			configJSON:     `{"version": 1, "storageDriverName": "powermax-san", "storagePrefix": ""}`,
			expectedPrefix: func() *string { s := ""; return &s }(),
		},
		{
			name:       "invalid prefix",
			configJSON: `{"version": 1, "storageDriverName": "powermax-san", "storagePrefix": 5}`,
			wantErr:    true,
		},
		{
			name:       "missing driver name",
			configJSON: `{"version": 1}`,
			wantErr:    true,
		},
		{
			name:       "unknown driver",
			configJSON: `{"version": 1, "storageDriverName": "ontap-san"}`,
			wantErr:    true,
		},
		{
			name:       "wrong version",
			configJSON: `{"version": 2, "storageDriverName": "powermax-san"}`,
			wantErr:    true,
		},
		{
			name:       "bad limit",
			configJSON: `{"version": 1, "storageDriverName": "powermax-san", "limitVolumeSize": "huge"}`,
			wantErr:    true,
		},
		{
			name:       "bad json",
			configJSON: `{"version": `,
			wantErr:    true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			config, err := ValidateCommonSettings(ctx, test.configJSON)
			if test.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.expectedPrefix, config.StoragePrefix)
		})
	}
}

func TestSanitizeCommonStorageDriverConfig(t *testing.T) {
	c := &CommonStorageDriverConfig{}
	SanitizeCommonStorageDriverConfig(c)
	assert.Equal(t, json.RawMessage("{}"), c.StoragePrefixRaw)

	SanitizeCommonStorageDriverConfig(nil)
}

func TestGetVolumeIdentifier(t *testing.T) {
	id := "f3c1f7b0-7b3d-4a2b-9f1e-1c2d3e4f5a6b"

	c := &CommonStorageDriverConfig{}
	assert.Equal(t, "OS-"+id, GetVolumeIdentifier(c, id))

	prefix := ""
	c.StoragePrefix = &prefix
	assert.Equal(t, id, GetVolumeIdentifier(c, id))

	prefix = "cinder-"
	assert.Equal(t, "cinder-"+id, GetVolumeIdentifier(c, id))
}

func TestCheckVolumeSizeLimits(t *testing.T) {
	ctx := context.Background()

	limited, _, err := CheckVolumeSizeLimits(ctx, capacity.OneGiB, &CommonStorageDriverConfig{})
	assert.False(t, limited)
	assert.NoError(t, err)

	limited, limit, err := CheckVolumeSizeLimits(ctx, capacity.OneGiB, &CommonStorageDriverConfig{LimitVolumeSize: "2Gi"})
	assert.True(t, limited)
	assert.Equal(t, 2*capacity.OneGiB, limit)
	assert.NoError(t, err)

	limited, _, err = CheckVolumeSizeLimits(ctx, 3*capacity.OneGiB, &CommonStorageDriverConfig{LimitVolumeSize: "2Gi"})
	assert.True(t, limited)
	ok, _ := errors.HasUnsupportedCapacityRangeError(err)
	assert.True(t, ok)

	_, _, err = CheckVolumeSizeLimits(ctx, 1, &CommonStorageDriverConfig{LimitVolumeSize: "x"})
	assert.Error(t, err)
}

func TestCheckMinVolumeSize(t *testing.T) {
	assert.NoError(t, CheckMinVolumeSize(capacity.OneGiB, capacity.OneGiB))

	err := CheckMinVolumeSize(1, capacity.OneGiB)
	ok, _ := errors.HasUnsupportedCapacityRangeError(err)
	assert.True(t, ok)
}
