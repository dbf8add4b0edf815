package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Tythos/gtestbox/internal/config"
	"github.com/Tythos/gtestbox/internal/execution"
	"github.com/Tythos/gtestbox/internal/registry"
	"github.com/Tythos/gtestbox/internal/ui"
)

// RunCommand handles the run command
type RunCommand struct {
	config    *config.Config
	registry  *registry.Registry
	executor  *execution.BatchExecutor
	formatter *ui.Formatter
	viewer    ui.Viewer
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(
	cfg *config.Config,
	reg *registry.Registry,
	executor *execution.BatchExecutor,
	formatter *ui.Formatter,
	viewer ui.Viewer,
) *RunCommand {
	return &RunCommand{
		config:    cfg,
		registry:  reg,
		executor:  executor,
		formatter: formatter,
		viewer:    viewer,
	}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	cases := registry.FilterByName(rc.registry.Cases(), rc.config.Flags.Filter)

	if len(cases) == 0 {
		color.Yellow("No cases to run")
		return nil
	}

	progressBar := ui.NewProgressBar(len(cases))
	rc.executor.SetProgress(progressBar)

	results, duration, err := rc.executor.Execute(cases)
	if err != nil {
		return err
	}

	summary := execution.Summarize(execution.NewRunID(), results, duration)

	if rc.config.Verbose {
		rc.formatter.PrintCaseResults(summary.Results)
	}
	if err := rc.formatter.PrintSummary(summary); err != nil {
		return err
	}

	if summary.Ok() {
		return nil
	}

	if rc.config.Flags.OpenFailures {
		if err := rc.viewer.View(&summary); err != nil {
			return err
		}
	}

	return fmt.Errorf("%d check(s) failed in %d case(s)", summary.FailedChecks, summary.FailedCases)
}
