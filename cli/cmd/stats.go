// Copyright 2025 NetApp, Inc. All Rights Reserved.

package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pmax-drivers/powermax/core"
	. "github.com/pmax-drivers/powermax/logging"
)

func init() {
	RootCmd.AddCommand(statsCmd)
	RootCmd.AddCommand(backendCmd)
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show capacity and capability statistics of the backend",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withOrchestrator(cmd, WorkflowBackendStats, func(ctx context.Context, o core.Orchestrator) error {
			stats, err := o.GetStats(ctx)
			if err != nil {
				return err
			}
			return WriteStats(stats)
		})
	},
}

var backendCmd = &cobra.Command{
	Use:   "backend",
	Short: "Show the backend and where it currently serves from",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withOrchestrator(cmd, WorkflowNone, func(ctx context.Context, o core.Orchestrator) error {
			backend, err := o.GetBackend(ctx)
			if err != nil {
				return err
			}
			if done, err := writeStructured(backend); done {
				return err
			}
			table := newTable("Name", "Driver", "Active Backend", "Volumes")
			table.Append([]string{backend.Name, backend.Driver, backend.ActiveBackendID, fmt.Sprint(backend.Volumes)})
			table.Render()
			return nil
		})
	},
}
