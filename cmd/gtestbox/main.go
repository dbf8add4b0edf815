package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Tythos/gtestbox/internal/cli"
	"github.com/Tythos/gtestbox/internal/cli/commands"
	"github.com/Tythos/gtestbox/internal/config"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:           "gtestbox",
		Short:         "Minimal assertion-based test harness",
		Long:          `A minimal test harness with an explicit case registry. Cases are registered at process start, executed once each in registration order, and folded into a single pass/fail exit status.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Create initial config with defaults, then overlay the environment
	cfg := config.New()
	cfg.LoadEnv()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
