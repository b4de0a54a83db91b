// Copyright 2025 NetApp, Inc. All Rights Reserved.

package powermax

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/spf13/afero"

	. "github.com/pmax-drivers/powermax/logging"
	"github.com/pmax-drivers/powermax/pkg/capacity"
	"github.com/pmax-drivers/powermax/pkg/collection"
	drivers "github.com/pmax-drivers/powermax/storage_drivers"
	"github.com/pmax-drivers/powermax/storage_drivers/powermax/api"
	"github.com/pmax-drivers/powermax/utils/errors"
)

var arraySerialRegex = regexp.MustCompile(`^\d{12}$`)

// populateConfigurationDefaults fills in default values for configuration settings not supplied in the config file
func (d *SANStorageDriver) populateConfigurationDefaults(
	ctx context.Context, config *drivers.PowerMaxStorageDriverConfig,
) error {
	fields := LogFields{"Method": "populateConfigurationDefaults", "Type": "SANStorageDriver"}
	Logd(ctx, d.Name(), config.DebugTraceFlags["method"]).WithFields(fields).Trace(">>>> populateConfigurationDefaults")
	defer Logd(ctx, d.Name(), config.DebugTraceFlags["method"]).WithFields(fields).Trace("<<<< populateConfigurationDefaults")

	if config.StoragePrefix == nil {
		prefix := drivers.DefaultStoragePrefix
		config.StoragePrefix = &prefix
	}
	if config.RESTPort == 0 {
		config.RESTPort = drivers.DefaultRESTPort
	}
	for i := range config.U4PFailoverTargets {
		if config.U4PFailoverTargets[i].RESTPort == 0 {
			config.U4PFailoverTargets[i].RESTPort = drivers.DefaultRESTPort
		}
	}
	if config.RESTAPIVersion == "" {
		config.RESTAPIVersion = drivers.DefaultRESTAPIVersion
	}
	if config.Protocol == "" {
		config.Protocol = protocolISCSI
	}
	config.Protocol = strings.ToLower(config.Protocol)
	if config.Workload == "" && config.ServiceLevel != "" {
		config.Workload = drivers.DefaultWorkload
	}
	if config.IntervalSeconds <= 0 {
		config.IntervalSeconds = drivers.DefaultIntervalSeconds
	}
	if config.Retries <= 0 {
		config.Retries = drivers.DefaultRetries
	}
	if config.SnapVXUnlinkLimit <= 0 {
		config.SnapVXUnlinkLimit = drivers.DefaultSnapVXUnlinkLimit
	}
	if config.RequestsPerSecond == 0 {
		config.RequestsPerSecond = drivers.DefaultRequestsPerSecond
	}

	if config.Replication != nil {
		if config.Replication.Mode == "" {
			config.Replication.Mode = drivers.ReplicationModeSynchronous
		}
		if config.Replication.RemotePool == "" {
			config.Replication.RemotePool = config.SRP
		}
		if len(config.Replication.RemotePortGroups) == 0 {
			config.Replication.RemotePortGroups = config.PortGroups
		}
		if config.Replication.SyncInterval <= 0 {
			config.Replication.SyncInterval = drivers.DefaultSyncIntervalSeconds
		}
		if config.Replication.SyncRetries <= 0 {
			config.Replication.SyncRetries = drivers.DefaultSyncRetries
		}
	}

	// Ensure the default volume size is valid, using a "default default" of 1G if not set
	if config.Size == "" {
		config.Size = drivers.DefaultVolumeSize
	} else if _, err := capacity.ToBytes(config.Size); err != nil {
		return fmt.Errorf("invalid config value for default volume size: %v", err)
	}

	Logc(ctx).WithFields(LogFields{
		"StoragePrefix":     *config.StoragePrefix,
		"RESTPort":          config.RESTPort,
		"RESTAPIVersion":    config.RESTAPIVersion,
		"Protocol":          config.Protocol,
		"Workload":          config.Workload,
		"IntervalSeconds":   config.IntervalSeconds,
		"Retries":           config.Retries,
		"SnapVXUnlinkLimit": config.SnapVXUnlinkLimit,
		"Size":              config.Size,
	}).Debugf("Configuration defaults")

	return nil
}

// validate ensures the driver configuration and execution environment are valid and working
func (d *SANStorageDriver) validate(ctx context.Context) error {
	fields := LogFields{"Method": "validate", "Type": "SANStorageDriver"}
	Logd(ctx, d.Name(), d.Config.DebugTraceFlags["method"]).WithFields(fields).Trace(">>>> validate")
	defer Logd(ctx, d.Name(), d.Config.DebugTraceFlags["method"]).WithFields(fields).Trace("<<<< validate")

	config := &d.Config
	var problems []string

	if config.RESTServer == "" {
		problems = append(problems, "restServer is required")
	}
	if config.Username == "" || config.Password == "" {
		problems = append(problems, "username and password are required")
	}
	for _, target := range config.U4PFailoverTargets {
		if target.RESTServer == "" {
			problems = append(problems, "every u4pFailoverTargets entry needs a restServer")
		}
	}
	if !arraySerialRegex.MatchString(config.Array) {
		problems = append(problems, fmt.Sprintf("array serial %q must be 12 digits", config.Array))
	}
	if config.SRP == "" {
		problems = append(problems, "srp is required")
	}
	if len(config.PortGroups) == 0 {
		problems = append(problems, "at least one port group is required")
	}
	if config.Protocol != protocolISCSI && config.Protocol != protocolFC {
		problems = append(problems, fmt.Sprintf("protocol %q must be iscsi or fc", config.Protocol))
	}

	if config.Replication != nil {
		rep := config.Replication
		if !arraySerialRegex.MatchString(rep.TargetArray) {
			problems = append(problems, fmt.Sprintf("replication targetArray %q must be 12 digits", rep.TargetArray))
		} else if rep.TargetArray == config.Array {
			problems = append(problems, "replication targetArray must differ from array")
		}
		if rep.RDFGroupLabel == "" {
			problems = append(problems, "replication rdfGroupLabel is required")
		}
		if _, ok := replicationSuffix[rep.Mode]; !ok {
			problems = append(problems, fmt.Sprintf("replication mode %q must be one of %s", rep.Mode,
				strings.Join(collection.SortedKeys(replicationSuffix), ", ")))
		}
	}

	if len(problems) > 0 {
		return errors.UnsupportedConfigError("invalid PowerMax configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

func (d *SANStorageDriver) readCACert(path string) ([]byte, error) {
	if path == "" {
		return nil, nil
	}
	cert, err := afero.ReadFile(d.fs, path)
	if err != nil {
		return nil, fmt.Errorf("could not read CA certificate %s; %v", path, err)
	}
	return cert, nil
}

// clientConfig translates the driver configuration into a REST client configuration.  The primary
// Unisphere is listed first, followed by the failover targets.
func (d *SANStorageDriver) clientConfig() (api.ClientConfig, error) {
	config := &d.Config

	targets := append([]drivers.UnisphereTarget{config.UnisphereTarget}, config.U4PFailoverTargets...)
	endpoints := make([]api.Endpoint, 0, len(targets))
	for _, target := range targets {
		cert, err := d.readCACert(target.CACertPath)
		if err != nil {
			return api.ClientConfig{}, err
		}
		endpoints = append(endpoints, api.Endpoint{
			Host:      target.RESTServer,
			Port:      target.RESTPort,
			Username:  target.Username,
			Password:  target.Password,
			VerifyTLS: target.VerifyTLS,
			CACert:    cert,
		})
	}

	allowed := []string{config.Array}
	if config.IsReplicated() {
		allowed = append(allowed, config.Replication.TargetArray)
	}

	return api.ClientConfig{
		Endpoints:         endpoints,
		APIVersion:        config.RESTAPIVersion,
		Array:             config.Array,
		AllowedArrays:     allowed,
		JobInterval:       time.Duration(config.IntervalSeconds) * time.Second,
		JobRetries:        config.Retries,
		RequestsPerSecond: config.RequestsPerSecond,
		DebugTraceFlags:   config.DebugTraceFlags,
	}, nil
}
