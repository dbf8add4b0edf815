package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Tythos/gtestbox/internal/config"
	"github.com/Tythos/gtestbox/internal/registry"
	"github.com/Tythos/gtestbox/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config    *config.Config
	registry  *registry.Registry
	formatter *ui.Formatter
}

// NewListCommand creates a new ListCommand
func NewListCommand(
	cfg *config.Config,
	reg *registry.Registry,
	formatter *ui.Formatter,
) *ListCommand {
	return &ListCommand{
		config:    cfg,
		registry:  reg,
		formatter: formatter,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	cases := registry.FilterByName(lc.registry.Cases(), lc.config.Flags.Filter)

	if len(cases) == 0 {
		color.Yellow("No cases found")
		return nil
	}

	return lc.formatter.PrintCaseList(cases)
}
