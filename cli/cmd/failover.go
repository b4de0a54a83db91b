// Copyright 2025 NetApp, Inc. All Rights Reserved.

package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/pmax-drivers/powermax/core"
	. "github.com/pmax-drivers/powermax/logging"
	"github.com/pmax-drivers/powermax/storage"
)

func init() {
	RootCmd.AddCommand(failoverCmd, failbackCmd)
}

var failoverCmd = &cobra.Command{
	Use:   "failover <target-array>",
	Short: "Serve every volume from the SRDF target array",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFailover(cmd, WorkflowReplicationFailover, args[0])
	},
}

var failbackCmd = &cobra.Command{
	Use:   "failback",
	Short: "Serve every volume from the primary array again",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFailover(cmd, WorkflowReplicationFailback, storage.FailbackBackendID)
	},
}

func runFailover(cmd *cobra.Command, workflow Workflow, secondaryID string) error {
	return withOrchestrator(cmd, workflow, func(ctx context.Context, o core.Orchestrator) error {
		result, err := o.Failover(ctx, secondaryID)
		if err != nil {
			return err
		}
		return writeFailoverResult(result)
	})
}

func writeFailoverResult(result *core.FailoverResult) error {
	if done, err := writeStructured(result); done {
		return err
	}
	table := newTable("Volume", "Replication", "Device", "Active Backend")
	for _, update := range result.Updates {
		device := ""
		if update.ProviderLocation != nil {
			device = update.ProviderLocation.DeviceID
		}
		table.Append([]string{update.VolumeID, string(update.ReplicationStatus), device, result.ActiveBackendID})
	}
	table.Render()
	return nil
}
