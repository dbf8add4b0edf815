package commands

import (
	"github.com/spf13/cobra"

	"github.com/Tythos/gtestbox/internal/cli"
	"github.com/Tythos/gtestbox/internal/config"
	"github.com/Tythos/gtestbox/internal/execution"
	"github.com/Tythos/gtestbox/internal/registry"
	"github.com/Tythos/gtestbox/internal/testsuite"
	"github.com/Tythos/gtestbox/internal/ui"
)

// Commands holds all CLI commands
type Commands struct {
	Run  *RunCommand
	List *ListCommand
}

// NewCommands creates all commands with dependencies. The registry is built
// here, before any command executes, and handed down read-only.
func NewCommands(cfg *config.Config) *Commands {
	reg := registry.New()
	testsuite.Register(reg)

	runner := execution.NewRunner(cfg)
	executor := execution.NewBatchExecutor(cfg, runner)
	formatter := ui.NewFormatter(cfg)
	errorViewer := ui.NewErrorViewer(cfg)

	return &Commands{
		Run:  NewRunCommand(cfg, reg, executor, formatter, errorViewer),
		List: NewListCommand(cfg, reg, formatter),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run registered cases",
		Long:  "Execute every registered case once, in registration order, and report the aggregate result",
		RunE:  c.Run.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.ApplyFlags(flags.ToConfigFlags())
			return nil
		},
	}
	runCmd.Flags().StringVarP(&flags.Filter, "filter", "f", "", "Filter cases by name pattern (supports wildcards, e.g. 'HelloTest/*' or '*Basic*')")
	runCmd.Flags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Show every check outcome, not just failures")
	runCmd.Flags().BoolVar(&flags.NoColor, "no-color", false, "Disable colored output")
	runCmd.Flags().BoolVar(&flags.FailFast, "fail-fast", false, "Stop after the first failing case")
	runCmd.Flags().BoolVar(&flags.OpenFailures, "open-failures", false, "Open the interactive failure viewer when the run finishes with failures")
	rootCmd.AddCommand(runCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List registered cases",
		Long:  "Print every registered case grouped by suite without executing anything",
		RunE:  c.List.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.ApplyFlags(flags.ToConfigFlags())
			return nil
		},
	}
	listCmd.Flags().StringVarP(&flags.Filter, "filter", "f", "", "Filter cases by name pattern (supports wildcards, e.g. 'HelloTest/*' or '*Basic*')")
	listCmd.Flags().BoolVar(&flags.NoColor, "no-color", false, "Disable colored output")
	rootCmd.AddCommand(listCmd)
}
