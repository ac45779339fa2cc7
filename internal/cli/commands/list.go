package commands

import (
	"github.com/spf13/cobra"

	"ctest/internal/config"
	"ctest/internal/discovery"
	"ctest/internal/ui"
)

// ListCommand handles --list
type ListCommand struct {
	config *config.Config
	source Source
}

// NewListCommand creates a new ListCommand
func NewListCommand(cfg *config.Config, source Source) *ListCommand {
	return &ListCommand{
		config: cfg,
		source: source,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	filter := discovery.NewFilter(lc.config.Flags.Suite, lc.config.Flags.Match)
	tests := filter.Select(lc.source.Tests())

	out := cmd.OutOrStdout()
	ui.NewFormatter(out, lc.config.UseColor(out)).PrintTestList(tests)
	return nil
}
