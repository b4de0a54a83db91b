// Copyright 2025 NetApp, Inc. All Rights Reserved.

package cmd

import (
	"io"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/pmax-drivers/powermax/config"
	"github.com/pmax-drivers/powermax/logging"
	"github.com/pmax-drivers/powermax/storage/factory"
)

const (
	FormatJSON  = "json"
	FormatYAML  = "yaml"
	FormatTable = "table"
	FormatName  = "name"

	ExitCodeSuccess = 0
	ExitCodeFailure = 1

	// ServerEnvVar names a running frontend when --server is not given
	ServerEnvVar = "PMAX_SERVER"
)

var (
	ExitCode int

	Debug         bool
	LogFormat     string
	ConfigPath    string
	Server        string
	OutputFormat  string
	StoreType     string
	EtcdEndpoints []string
	EtcdPrefix    string

	appFS               = afero.NewOsFs()
	out       io.Writer = os.Stdout
	logOutput io.Writer = os.Stderr
	newDriver           = factory.NewDriverForConfig
)

var RootCmd = &cobra.Command{
	SilenceUsage: true,
	Use:          config.OrchestratorClientName,
	Short:        "A CLI tool for the PowerMax volume driver",
	Long: `A CLI tool for provisioning and replicating PowerMax volumes, either directly against a ` +
		`backend config or through a running REST frontend`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initLogging()
	},
}

func init() {
	RootCmd.PersistentFlags().BoolVarP(&Debug, "debug", "d", false, "Debug output")
	RootCmd.PersistentFlags().StringVar(&LogFormat, "log-format", logging.TextFormat, "Log format, text or json")
	RootCmd.PersistentFlags().StringVarP(&ConfigPath, "config", "c", "", "Path to the backend config (JSON or YAML)")
	RootCmd.PersistentFlags().StringVarP(&Server, "server", "s", "",
		"Address/port of a running PowerMax REST frontend (overrides --config)")
	RootCmd.PersistentFlags().StringVarP(&OutputFormat, "output", "o", FormatTable,
		"Output format. One of table|json|yaml|name")
	addStoreFlags(RootCmd.PersistentFlags())
}

// addStoreFlags registers the persistent store selection used in direct mode.
func addStoreFlags(flags *pflag.FlagSet) {
	flags.StringVar(&StoreType, "store-type", "", "Persistent store for volume records: memory (default) or etcdv3")
	flags.StringSliceVar(&EtcdEndpoints, "etcd-endpoints", nil, "etcd endpoints for the etcdv3 store")
	flags.StringVar(&EtcdPrefix, "etcd-prefix", "", "Key prefix for the etcdv3 store")
}

func initLogging() error {
	if err := logging.InitLogLevel(Debug, "info"); err != nil {
		return err
	}
	if err := logging.InitLogFormat(LogFormat); err != nil {
		return err
	}
	logging.InitLogOutput(logOutput)
	return nil
}

func SetExitCodeFromError(err error) {
	if err != nil {
		ExitCode = ExitCodeFailure
	} else {
		ExitCode = ExitCodeSuccess
	}
}
