// Command app runs the Momentum HTTP server and its maintenance commands.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/akyairhashvil/momentum/internal/config"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

type rootFlags struct {
	configFile string
	envFile    string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	root := &cobra.Command{
		Use:           "momentum",
		Short:         "Goals, tasks and sprints with a coaching assistant",
		Long:          "momentum serves the Momentum API. Run without a subcommand to start the server.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, flags)
		},
	}
	root.PersistentFlags().StringVar(&flags.configFile, "config", "", "YAML config file")
	root.PersistentFlags().StringVar(&flags.envFile, "env-file", ".env", "dotenv file loaded before reading the environment")

	root.AddCommand(
		newServeCmd(flags),
		newMigrateCmd(flags),
		newUseraddCmd(flags),
		newVersionCmd(),
	)
	return root
}

func (f *rootFlags) load() (*config.Config, error) {
	return config.Load(config.Options{ConfigFile: f.configFile, EnvFile: f.envFile})
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "momentum %s\n", version)
		},
	}
}
