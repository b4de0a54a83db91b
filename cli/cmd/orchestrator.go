// Copyright 2025 NetApp, Inc. All Rights Reserved.

package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/pmax-drivers/powermax/cli/api"
	"github.com/pmax-drivers/powermax/core"
	. "github.com/pmax-drivers/powermax/logging"
	persistentstore "github.com/pmax-drivers/powermax/persistent_store"
	"github.com/pmax-drivers/powermax/utils/errors"
)

// connect returns the orchestrator a command runs against.
var connect = connectOrchestrator

// serverAddress resolves the frontend to use, with the command line taking precedence over the environment.
func serverAddress() string {
	if Server != "" {
		return Server
	}
	return os.Getenv(ServerEnvVar)
}

func connectOrchestrator(ctx context.Context) (core.Orchestrator, error) {
	if server := serverAddress(); server != "" {
		client := api.NewClient(server)
		if err := client.Bootstrap(ctx); err != nil {
			return nil, err
		}
		Logc(ctx).WithField("server", server).Debug("Using REST frontend.")
		return client, nil
	}
	return newLocalOrchestrator(ctx)
}

// newLocalOrchestrator initializes the driver from the backend config and fronts it with the chosen store.
func newLocalOrchestrator(ctx context.Context) (*core.PowerMaxOrchestrator, error) {
	if ConfigPath == "" {
		return nil, errors.InvalidInputError("a backend config (--config) or a server (--server) is required")
	}
	configBytes, err := afero.ReadFile(appFS, ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("could not read backend config; %v", err)
	}

	driver, err := newDriver(ctx, string(configBytes))
	if err != nil {
		return nil, err
	}

	storeClient, err := persistentstore.NewClient(ctx, &persistentstore.ClientConfig{
		Type:      persistentstore.StoreType(StoreType),
		Endpoints: EtcdEndpoints,
		Prefix:    EtcdPrefix,
	})
	if err != nil {
		driver.Terminate(ctx)
		return nil, fmt.Errorf("could not create persistent store; %v", err)
	}
	if storeClient.GetType() == persistentstore.MemoryStore {
		Logc(ctx).Debug("Using the in-memory store; volume records do not outlive this process.")
	}

	orchestrator := core.NewPowerMaxOrchestrator(driver, storeClient)
	if err = orchestrator.Bootstrap(ctx); err != nil {
		orchestrator.Stop(ctx)
		return nil, err
	}
	return orchestrator, nil
}

// withOrchestrator connects, runs fn and releases the orchestrator.
func withOrchestrator(
	cmd *cobra.Command, workflow Workflow, fn func(ctx context.Context, o core.Orchestrator) error,
) error {
	ctx := GenerateRequestContext(cmd.Context(), "", ContextSourceCLI, workflow, LogLayerCLI)
	o, err := connect(ctx)
	if err != nil {
		return err
	}
	defer o.Stop(ctx)
	return fn(ctx, o)
}
