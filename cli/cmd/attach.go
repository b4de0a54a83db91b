// Copyright 2025 NetApp, Inc. All Rights Reserved.

package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/pmax-drivers/powermax/core"
	. "github.com/pmax-drivers/powermax/logging"
	"github.com/pmax-drivers/powermax/storage"
	"github.com/pmax-drivers/powermax/utils/errors"
)

var connector storage.Connector

func init() {
	RootCmd.AddCommand(attachCmd, detachCmd)
	for _, cmd := range []*cobra.Command{attachCmd, detachCmd} {
		cmd.Flags().StringVar(&connector.Host, "host", "", "Host name")
		cmd.Flags().StringVar(&connector.Initiator, "initiator", "", "iSCSI initiator IQN")
		cmd.Flags().StringSliceVar(&connector.WWPNs, "wwpn", nil, "FC initiator port WWNs")
		cmd.Flags().StringSliceVar(&connector.WWNNs, "wwnn", nil, "FC initiator node WWNs")
		cmd.Flags().StringVar(&connector.IP, "ip", "", "Host IP address")
		cmd.Flags().BoolVar(&connector.Multipath, "multipath", false, "Return every target path")
	}
	_ = attachCmd.MarkFlagRequired("host")
}

var attachCmd = &cobra.Command{
	Use:   "attach <volume-id>",
	Short: "Give a host access to a volume and print the connection details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if connector.Initiator == "" && len(connector.WWPNs) == 0 {
			return errors.InvalidInputError("an --initiator or at least one --wwpn is required")
		}
		return withOrchestrator(cmd, WorkflowVolumePublish, func(ctx context.Context, o core.Orchestrator) error {
			request := connector
			info, err := o.PublishVolume(ctx, args[0], &request)
			if err != nil {
				return err
			}
			return WriteConnectionInfo(info)
		})
	},
}

var detachCmd = &cobra.Command{
	Use:   "detach <volume-id>",
	Short: "Remove a host's access to a volume, or every host's access when no host is given",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withOrchestrator(cmd, WorkflowVolumeUnpublish, func(ctx context.Context, o core.Orchestrator) error {
			var request *storage.Connector
			if connector.Host != "" {
				c := connector
				request = &c
			}
			return o.UnpublishVolume(ctx, args[0], request)
		})
	},
}
