// Copyright 2025 NetApp, Inc. All Rights Reserved.

package factory

import (
	"context"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pmax-drivers/powermax/logging"
)

func TestMain(m *testing.M) {
	// Disable any standard log output
	logging.InitLogOutput(io.Discard)
	os.Exit(m.Run())
}

func TestNewDriverForConfig_Errors(t *testing.T) {
	tests := []struct {
		name     string
		config   string
		contains string
	}{
		{
			name:     "invalidYAML",
			config:   "version: [1",
			contains: "invalid config format",
		},
		{
			name:     "missingDriverName",
			config:   `{"version": 1}`,
			contains: "input failed validation",
		},
		{
			name:     "unknownDriver",
			config:   `{"version": 1, "storageDriverName": "ontap-nas"}`,
			contains: "input failed validation",
		},
		{
			name:     "wrongVersion",
			config:   `{"version": 2, "storageDriverName": "powermax-san"}`,
			contains: "input failed validation",
		},
		{
			// Fails driver validation before any connection is attempted
			name: "badArraySerial",
			config: `
version: 1
storageDriverName: powermax-san
restServer: 127.0.0.1
username: smc
password: smc
array: "1234"
srp: SRP_1
portGroups: [OS-iscsi-PG]
`,
			contains: "problem initializing storage driver 'powermax-san'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := NewDriverForConfig(context.Background(), tt.config)

			assert.Nil(t, d)
			assert.ErrorContains(t, err, tt.contains)
		})
	}
}
