// Copyright 2025 NetApp, Inc. All Rights Reserved.

package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pmax-drivers/powermax/core"
	. "github.com/pmax-drivers/powermax/logging"
	"github.com/pmax-drivers/powermax/storage"
)

var snapshotName string

func init() {
	RootCmd.AddCommand(snapshotCmd)
	snapshotCmd.AddCommand(snapshotCreateCmd, snapshotDeleteCmd, snapshotRestoreCmd, snapshotListCmd)
	snapshotCreateCmd.Flags().StringVar(&snapshotName, "name", "", "Display name")
}

var snapshotCmd = &cobra.Command{
	Use:     "snapshot",
	Short:   "Manage volume snapshots",
	Aliases: []string{"s", "snap", "snapshots"},
}

var snapshotCreateCmd = &cobra.Command{
	Use:   "create <volume-id> <snapshot-id>",
	Short: "Take a snapshot of a volume",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withOrchestrator(cmd, WorkflowSnapshotCreate, func(ctx context.Context, o core.Orchestrator) error {
			snapshot, err := o.CreateSnapshot(ctx, &storage.Snapshot{
				ID:       args[1],
				Name:     snapshotName,
				VolumeID: args[0],
			})
			if err != nil {
				return err
			}
			return WriteSnapshots([]*storage.Snapshot{snapshot})
		})
	},
}

var snapshotDeleteCmd = &cobra.Command{
	Use:   "delete <volume-id> <snapshot-id>...",
	Short: "Delete one or more snapshots of a volume",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withOrchestrator(cmd, WorkflowSnapshotDelete, func(ctx context.Context, o core.Orchestrator) error {
			for _, snapshotID := range args[1:] {
				if err := o.DeleteSnapshot(ctx, args[0], snapshotID); err != nil {
					return fmt.Errorf("could not delete snapshot %s; %w", snapshotID, err)
				}
			}
			return nil
		})
	},
}

var snapshotRestoreCmd = &cobra.Command{
	Use:   "restore <volume-id> <snapshot-id>",
	Short: "Revert a volume to a snapshot",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withOrchestrator(cmd, WorkflowSnapshotRestore, func(ctx context.Context, o core.Orchestrator) error {
			return o.RestoreSnapshot(ctx, args[0], args[1])
		})
	},
}

var snapshotListCmd = &cobra.Command{
	Use:   "list <volume-id>",
	Short: "List the snapshots of a volume",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withOrchestrator(cmd, WorkflowVolumeGet, func(ctx context.Context, o core.Orchestrator) error {
			snapshots, err := o.ListSnapshotsForVolume(ctx, args[0])
			if err != nil {
				return err
			}
			return WriteSnapshots(snapshots)
		})
	},
}
