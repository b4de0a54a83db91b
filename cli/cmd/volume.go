// Copyright 2025 NetApp, Inc. All Rights Reserved.

package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pmax-drivers/powermax/core"
	. "github.com/pmax-drivers/powermax/logging"
	"github.com/pmax-drivers/powermax/pkg/capacity"
	"github.com/pmax-drivers/powermax/storage"
	"github.com/pmax-drivers/powermax/utils/errors"
)

var (
	volumeName     string
	volumeSize     string
	volumeTypeName string
	extraSpecs     []string
	sourceVolumeID string
	sourceSnapshot string
	importRef      string
	targetPool     string
)

func init() {
	RootCmd.AddCommand(volumeCmd)
	volumeCmd.AddCommand(volumeCreateCmd, volumeDeleteCmd, volumeExtendCmd, volumeGetCmd, volumeListCmd,
		volumeRetypeCmd, volumeMigrateCmd, volumeUnmanageCmd, volumeReplicationCmd)

	volumeCreateCmd.Flags().StringVar(&volumeName, "name", "", "Display name")
	volumeCreateCmd.Flags().StringVar(&volumeSize, "size", "", "Size, e.g. 10 (GiB), 512Mi or 2Ti")
	addVolumeTypeFlags(volumeCreateCmd)
	volumeCreateCmd.Flags().StringVar(&sourceVolumeID, "source-volume", "", "Clone this volume")
	volumeCreateCmd.Flags().StringVar(&sourceSnapshot, "snapshot", "",
		"Create from this snapshot of --source-volume")
	volumeCreateCmd.Flags().StringVar(&importRef, "import", "", "Manage this existing device, by device ID")

	volumeExtendCmd.Flags().StringVar(&volumeSize, "size", "", "New size, e.g. 20 (GiB)")
	_ = volumeExtendCmd.MarkFlagRequired("size")

	addVolumeTypeFlags(volumeRetypeCmd)
	_ = volumeRetypeCmd.MarkFlagRequired("type")

	volumeMigrateCmd.Flags().StringVar(&targetPool, "pool", "", "Target pool, e.g. Diamond+SRP_1+000197800123")
	_ = volumeMigrateCmd.MarkFlagRequired("pool")
}

func addVolumeTypeFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&volumeTypeName, "type", "", "Volume type name")
	cmd.Flags().StringSliceVar(&extraSpecs, "extra-spec", nil,
		"Volume type extra specs (key=value), repeatable or comma separated")
}

func volumeType() (storage.VolumeType, error) {
	result := storage.VolumeType{Name: volumeTypeName}
	if len(extraSpecs) == 0 {
		return result, nil
	}
	result.ExtraSpecs = make(map[string]string, len(extraSpecs))
	for _, spec := range extraSpecs {
		key, value, found := strings.Cut(spec, "=")
		if !found || key == "" {
			return result, errors.InvalidInputError("invalid extra spec %q, expected key=value", spec)
		}
		result.ExtraSpecs[key] = value
	}
	return result, nil
}

// parseSizeGiB reads a size in GiB when unitless, rounding up to whole GiB.  An empty size is zero.
func parseSizeGiB(ctx context.Context, size string) (uint64, error) {
	if size == "" {
		return 0, nil
	}
	sizeBytes, err := capacity.GetVolumeSizeBytes(ctx, map[string]string{"size": size}, "")
	if err != nil {
		return 0, errors.InvalidInputError("%v", err)
	}
	return capacity.BytesToGiB(sizeBytes), nil
}

var volumeCmd = &cobra.Command{
	Use:     "volume",
	Short:   "Manage volumes",
	Aliases: []string{"v", "volumes"},
}

var volumeCreateCmd = &cobra.Command{
	Use:   "create <volume-id>",
	Short: "Create a volume, clone one, create one from a snapshot or import an existing device",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		workflow := WorkflowVolumeCreate
		switch {
		case importRef != "":
			workflow = WorkflowVolumeImport
		case sourceVolumeID != "" && sourceSnapshot == "":
			workflow = WorkflowVolumeClone
		}

		return withOrchestrator(cmd, workflow, func(ctx context.Context, o core.Orchestrator) error {
			sizeGiB, err := parseSizeGiB(ctx, volumeSize)
			if err != nil {
				return err
			}
			newType, err := volumeType()
			if err != nil {
				return err
			}
			volume := &storage.Volume{
				ID:         args[0],
				Name:       volumeName,
				SizeGiB:    sizeGiB,
				VolumeType: newType,
			}

			var created *storage.Volume
			switch {
			case importRef != "":
				created, err = o.ImportVolume(ctx, volume, importRef)
			case sourceSnapshot != "":
				if sourceVolumeID == "" {
					return errors.InvalidInputError("--snapshot requires --source-volume")
				}
				created, err = o.CreateVolumeFromSnapshot(ctx, volume, sourceVolumeID, sourceSnapshot)
			case sourceVolumeID != "":
				created, err = o.CloneVolume(ctx, volume, sourceVolumeID)
			default:
				if sizeGiB == 0 {
					return errors.InvalidInputError("--size is required for a new volume")
				}
				created, err = o.AddVolume(ctx, volume)
			}
			if err != nil {
				return err
			}
			return WriteVolumes([]*storage.Volume{created})
		})
	},
}

var volumeDeleteCmd = &cobra.Command{
	Use:   "delete <volume-id>...",
	Short: "Delete one or more volumes",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withOrchestrator(cmd, WorkflowVolumeDelete, func(ctx context.Context, o core.Orchestrator) error {
			for _, volumeID := range args {
				if err := o.DeleteVolume(ctx, volumeID); err != nil {
					return fmt.Errorf("could not delete volume %s; %w", volumeID, err)
				}
			}
			return nil
		})
	},
}

var volumeExtendCmd = &cobra.Command{
	Use:   "extend <volume-id>",
	Short: "Grow a volume",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withOrchestrator(cmd, WorkflowVolumeResize, func(ctx context.Context, o core.Orchestrator) error {
			sizeGiB, err := parseSizeGiB(ctx, volumeSize)
			if err != nil {
				return err
			}
			if err = o.ResizeVolume(ctx, args[0], sizeGiB); err != nil {
				return err
			}
			return writeVolume(ctx, o, args[0])
		})
	},
}

func writeVolume(ctx context.Context, o core.Orchestrator, volumeID string) error {
	volume, err := o.GetVolume(ctx, volumeID)
	if err != nil {
		return err
	}
	return WriteVolumes([]*storage.Volume{volume})
}

var volumeGetCmd = &cobra.Command{
	Use:   "get [<volume-id>...]",
	Short: "Show one or more volumes, or all of them",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withOrchestrator(cmd, WorkflowVolumeGet, func(ctx context.Context, o core.Orchestrator) error {
			if len(args) == 0 {
				volumes, err := o.ListVolumes(ctx)
				if err != nil {
					return err
				}
				return WriteVolumes(volumes)
			}
			volumes := make([]*storage.Volume, 0, len(args))
			for _, volumeID := range args {
				volume, err := o.GetVolume(ctx, volumeID)
				if err != nil {
					return err
				}
				volumes = append(volumes, volume)
			}
			return WriteVolumes(volumes)
		})
	},
}

var volumeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all volumes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withOrchestrator(cmd, WorkflowVolumeGet, func(ctx context.Context, o core.Orchestrator) error {
			volumes, err := o.ListVolumes(ctx)
			if err != nil {
				return err
			}
			return WriteVolumes(volumes)
		})
	},
}

var volumeRetypeCmd = &cobra.Command{
	Use:   "retype <volume-id>",
	Short: "Move a volume to a different volume type",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withOrchestrator(cmd, WorkflowVolumeRetype, func(ctx context.Context, o core.Orchestrator) error {
			newType, err := volumeType()
			if err != nil {
				return err
			}
			volume, err := o.RetypeVolume(ctx, args[0], &newType)
			if err != nil {
				return err
			}
			return WriteVolumes([]*storage.Volume{volume})
		})
	},
}

var volumeMigrateCmd = &cobra.Command{
	Use:   "migrate <volume-id>",
	Short: "Move a volume to another pool on the same array",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withOrchestrator(cmd, WorkflowVolumeRetype, func(ctx context.Context, o core.Orchestrator) error {
			volume, err := o.MigrateVolume(ctx, args[0], targetPool)
			if err != nil {
				return err
			}
			return WriteVolumes([]*storage.Volume{volume})
		})
	},
}

var volumeUnmanageCmd = &cobra.Command{
	Use:   "unmanage <volume-id>",
	Short: "Stop managing a volume without deleting its device",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withOrchestrator(cmd, WorkflowVolumeDelete, func(ctx context.Context, o core.Orchestrator) error {
			return o.UnmanageVolume(ctx, args[0])
		})
	},
}

var volumeReplicationCmd = &cobra.Command{
	Use:   "replication <volume-id>",
	Short: "Show the replication status of a volume",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withOrchestrator(cmd, WorkflowVolumeGet, func(ctx context.Context, o core.Orchestrator) error {
			status, err := o.GetReplicationStatus(ctx, args[0])
			if err != nil {
				return err
			}
			payload := map[string]string{"volumeID": args[0], "replicationStatus": string(status)}
			if done, err := writeStructured(payload); done {
				return err
			}
			fmt.Fprintln(out, status)
			return nil
		})
	},
}
