// Copyright 2025 NetApp, Inc. All Rights Reserved.

package cmd

import (
	"context"
	"net"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/pmax-drivers/powermax/config"
	"github.com/pmax-drivers/powermax/core"
	"github.com/pmax-drivers/powermax/frontend"
	"github.com/pmax-drivers/powermax/frontend/rest"
	. "github.com/pmax-drivers/powermax/logging"
	"github.com/pmax-drivers/powermax/utils/errors"
)

var (
	serveAddress string
	serveLogDir  string

	newServeOrchestrator = func(ctx context.Context) (core.Orchestrator, error) {
		return newLocalOrchestrator(ctx)
	}
)

func init() {
	RootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddress, "address", config.DefaultRESTAddress,
		"Address/port the REST frontend listens on")
	serveCmd.Flags().StringVar(&serveLogDir, "log-dir", LogRoot,
		"Directory for the rotated log file; empty logs to the console only")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the REST frontend for the backend in --config",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Server != "" {
			return errors.InvalidInputError("serve runs the backend itself; use --config instead of --server")
		}
		host, port, err := net.SplitHostPort(serveAddress)
		if err != nil {
			return errors.InvalidInputError("invalid address %s; %v", serveAddress, err)
		}

		logName := ""
		if serveLogDir != "" {
			logName = config.OrchestratorName
		}
		if err = InitLogging(logName, LogFormat, serveLogDir); err != nil {
			return err
		}

		parent := cmd.Context()
		if parent == nil {
			parent = context.Background()
		}
		signalCtx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		ctx := GenerateRequestContext(signalCtx, "", ContextSourceInternal, WorkflowCoreInit, LogLayerCLI)

		orchestrator, err := newServeOrchestrator(ctx)
		if err != nil {
			return err
		}
		defer orchestrator.Stop(ctx)

		frontends := []frontend.Plugin{rest.NewHTTPServer(orchestrator, host, port, config.HTTPTimeout)}
		for _, f := range frontends {
			if err = f.Activate(); err != nil {
				return err
			}
			Logc(ctx).WithFields(LogFields{"name": f.GetName(), "version": f.Version()}).Info("Activated frontend.")
		}

		<-ctx.Done()
		Logc(ctx).Info("Shutting down.")

		for _, f := range frontends {
			if deactivateErr := f.Deactivate(); deactivateErr != nil {
				Logc(ctx).WithError(deactivateErr).WithField("name", f.GetName()).Error("Could not deactivate frontend.")
			}
		}
		return nil
	},
}
