// Copyright 2025 NetApp, Inc. All Rights Reserved.

package cmd

import (
	"context"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/pmax-drivers/powermax/config"
	"github.com/pmax-drivers/powermax/core"
	. "github.com/pmax-drivers/powermax/logging"
)

var clientOnly bool

func init() {
	RootCmd.AddCommand(versionCmd)
	versionCmd.Flags().BoolVar(&clientOnly, "client", false, "Client version only (no backend or server required).")
}

type Version struct {
	Version   string `json:"version"`
	GoVersion string `json:"goVersion"`
}

type Versions struct {
	Client Version  `json:"client"`
	Server *Version `json:"server,omitempty"`
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of " + config.OrchestratorClientName,
	RunE: func(cmd *cobra.Command, args []string) error {
		versions := Versions{Client: Version{Version: config.OrchestratorVersion, GoVersion: runtime.Version()}}
		if clientOnly {
			return writeVersions(versions)
		}

		err := withOrchestrator(cmd, WorkflowNone, func(ctx context.Context, o core.Orchestrator) error {
			serverVersion, err := o.GetVersion(ctx)
			if err != nil {
				return err
			}
			versions.Server = &Version{Version: serverVersion}
			return nil
		})
		if err != nil {
			return err
		}
		return writeVersions(versions)
	},
}

func writeVersions(versions Versions) error {
	if done, err := writeStructured(versions); done {
		return err
	}
	if versions.Server == nil {
		fmt.Fprintf(out, "Client version: %s (%s)\n", versions.Client.Version, versions.Client.GoVersion)
		return nil
	}
	table := newTable("Server Version", "Client Version")
	table.Append([]string{versions.Server.Version, versions.Client.Version})
	table.Render()
	return nil
}
