package commands

import (
	"github.com/spf13/cobra"

	"ctest/internal/capture"
	"ctest/internal/config"
	"ctest/internal/discovery"
	"ctest/internal/execution"
	"ctest/internal/ui"
)

// RunCommand runs the selected tests
type RunCommand struct {
	config *config.Config
	source Source
	viewer ui.Viewer
	failed int
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(cfg *config.Config, source Source, viewer ui.Viewer) *RunCommand {
	return &RunCommand{
		config: cfg,
		source: source,
		viewer: viewer,
	}
}

// Failed returns the number of failed tests of the last Execute
func (rc *RunCommand) Failed() int {
	return rc.failed
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	colored := rc.config.UseColor(out)

	target := capture.NewTarget(capture.NewBuffer(rc.config.BufferSize), colored)
	runner := execution.NewRunner(rc.source, target, rc.config.CrashReport)

	console := ui.NewConsoleReporter(out, colored, rc.config.ColorOK)
	var reporter execution.Reporter = console
	if rc.config.Progress {
		reporter = ui.NewProgressReporter(console, cmd.ErrOrStderr())
	}

	driver := execution.NewDriver(rc.source, runner, reporter)
	summary := driver.Execute(discovery.NewFilter(rc.config.Flags.Suite, rc.config.Flags.Match))
	rc.failed = summary.Failed

	if rc.config.Browse && summary.Failed > 0 {
		return rc.viewer.View(summary)
	}
	return nil
}
