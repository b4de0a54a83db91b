// Copyright 2025 NetApp, Inc. All Rights Reserved.

package factory

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/ghodss/yaml"

	"github.com/pmax-drivers/powermax/config"
	. "github.com/pmax-drivers/powermax/logging"
	"github.com/pmax-drivers/powermax/storage"
	drivers "github.com/pmax-drivers/powermax/storage_drivers"
	"github.com/pmax-drivers/powermax/storage_drivers/powermax"
)

// NewDriverForConfig builds and initializes the storage driver named by a backend config, given as
// JSON or YAML.
func NewDriverForConfig(ctx context.Context, configJSON string) (d storage.Driver, err error) {
	// Some drivers may panic during initialize if given invalid parameters,
	// so catch any panics that might occur and return an error.
	defer func() {
		if r := recover(); r != nil {
			Logc(ctx).WithField("stackTrace", string(debug.Stack())).Error("Unable to instantiate storage driver.")
			d = nil
			err = fmt.Errorf("unable to instantiate storage driver: %v", r)
		}
	}()

	// Convert config (JSON or YAML) to JSON
	configJSONBytes, err := yaml.YAMLToJSON([]byte(configJSON))
	if err != nil {
		return nil, fmt.Errorf("invalid config format: %v", err)
	}
	configJSON = string(configJSONBytes)

	commonConfig, err := drivers.ValidateCommonSettings(ctx, configJSON)
	if err != nil {
		return nil, fmt.Errorf("input failed validation: %v", err)
	}

	var storageDriver storage.Driver
	switch commonConfig.StorageDriverName {
	case drivers.PowerMaxSANStorageDriverName:
		storageDriver = &powermax.SANStorageDriver{}
	default:
		return nil, fmt.Errorf("unknown storage driver: %v", commonConfig.StorageDriverName)
	}

	Logc(ctx).WithField("driver", commonConfig.StorageDriverName).Debug("Initializing storage driver.")

	if err = storageDriver.Initialize(ctx, config.CurrentContext, configJSON, commonConfig); err != nil {
		Logc(ctx).WithError(err).Error("Could not initialize storage driver.")
		return nil, fmt.Errorf("problem initializing storage driver '%s': %v", commonConfig.StorageDriverName, err)
	}

	Logc(ctx).WithField("driver", commonConfig.StorageDriverName).Info("Storage driver initialized.")
	return storageDriver, nil
}
