package commands

import (
	"github.com/spf13/cobra"

	"ytf/internal/config"
	"ytf/internal/registry"
	"ytf/internal/ui"
)

// ListCommand lists registered tests without running them
type ListCommand struct {
	config    *config.Config
	registry  *registry.Registry
	formatter *ui.Formatter
}

// NewListCommand creates a new ListCommand
func NewListCommand(cfg *config.Config, reg *registry.Registry, formatter *ui.Formatter) *ListCommand {
	return &ListCommand{
		config:    cfg,
		registry:  reg,
		formatter: formatter,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	filter := ""
	if len(args) > 0 {
		filter = args[0]
	}

	lc.formatter.PrintTestList(lc.registry.List(filter))
	return nil
}
