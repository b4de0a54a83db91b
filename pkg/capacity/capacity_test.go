// Copyright 2025 NetApp, Inc. All Rights Reserved.

package capacity

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToBytes(t *testing.T) {
	d := make(map[string]string)
	d["512"] = "512"
	d["1KB"] = "1000"
	d["1Ki"] = "1024"
	d["1KiB"] = "1024"
	d["4k"] = "4096"
	d["1gi"] = "1073741824"
	d["1Gi"] = "1073741824"
	d["1GiB"] = "1073741824"
	d["1gb"] = "1000000000"
	d["1g"] = "1073741824"
	d[" 2T "] = "2199023255552"

	for k, v := range d {
		s, err := ToBytes(k)
		if err != nil {
			t.Errorf("Encountered '%v' running ToBytes('%v')", err, k)
		} else if s != v {
			t.Errorf("Expected ToBytes('%v') == '%v' but was %v", k, v, s)
		}
	}
}

func TestToBytes_Invalid(t *testing.T) {
	for _, s := range []string{"", "G", "abc", "1.5.5G", "10parsecs"} {
		_, err := ToBytes(s)
		assert.Error(t, err, "expected error for %q", s)
	}
}

func TestGetVolumeSizeBytes(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		opts        map[string]string
		defaultSize string
		expected    uint64
		wantErr     bool
	}{
		{"size with units", map[string]string{"size": "2Gi"}, "1G", 2 * OneGiB, false},
		{"size without units is GiB", map[string]string{"size": "3"}, "1G", 3 * OneGiB, false},
		{"default size", map[string]string{}, "1G", OneGiB, false},
		{"default without units", nil, "5", 5 * OneGiB, false},
		{"invalid size", map[string]string{"size": "lots"}, "1G", 0, true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			size, err := GetVolumeSizeBytes(ctx, test.opts, test.defaultSize)
			if test.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.expected, size)
		})
	}
}

func TestGiBConversions(t *testing.T) {
	assert.Equal(t, uint64(0), BytesToGiB(0))
	assert.Equal(t, uint64(1), BytesToGiB(1))
	assert.Equal(t, uint64(1), BytesToGiB(OneGiB))
	assert.Equal(t, uint64(2), BytesToGiB(OneGiB+1))
	assert.Equal(t, 3*OneGiB, GiBToBytes(3))
}

func TestFormatGiB(t *testing.T) {
	assert.Equal(t, "1.0 GiB", FormatGiB(1))
	assert.Equal(t, "2.0 TiB", FormatGiB(2048))
}
