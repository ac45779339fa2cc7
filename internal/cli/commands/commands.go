package commands

import (
	"github.com/spf13/cobra"

	"ctest/internal/cli"
	"ctest/internal/config"
	"ctest/internal/execution"
	"ctest/internal/ui"
)

// Source is the registry the commands run against
type Source interface {
	execution.TestSource
	execution.SuiteFinder
}

// Commands holds all CLI commands
type Commands struct {
	Run  *RunCommand
	List *ListCommand

	config *config.Config
}

// NewCommands creates all commands with dependencies
func NewCommands(source Source) *Commands {
	cfg := config.New()
	return &Commands{
		Run:    NewRunCommand(cfg, source, ui.NewFailureBrowser()),
		List:   NewListCommand(cfg, source),
		config: cfg,
	}
}

// Register sets up the root command. The registered tests are run by the
// root command itself; --list prints them instead.
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags) {
	rootCmd.Args = cobra.MaximumNArgs(1)
	rootCmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		// Update config with flags after parsing
		cfg, err := config.Load(flags.ToConfigFlags(args))
		if err != nil {
			return err
		}
		*c.config = *cfg
		return nil
	}
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		if c.config.Flags.List {
			return c.List.Execute(cmd, args)
		}
		return c.Run.Execute(cmd, args)
	}

	rootCmd.Flags().BoolVarP(&flags.List, "list", "l", false, "List registered tests instead of running them")
	rootCmd.Flags().StringVarP(&flags.Match, "match", "m", "", "Only run tests whose 'suite:test' name matches the pattern (supports wildcards, e.g., 'Math:*' or '*Parse*')")
	rootCmd.Flags().BoolVarP(&flags.Progress, "progress", "p", false, "Show a progress bar and print only failed tests")
	rootCmd.Flags().BoolVarP(&flags.Browse, "browse", "b", false, "Open the failure browser when the run finishes with failures")
	rootCmd.Flags().StringVar(&flags.Color, "color", "", "Color output: auto, always or never")
	rootCmd.Flags().BoolVar(&flags.ColorOK, "color-ok", false, "Print [OK] in green")
	rootCmd.Flags().BoolVar(&flags.CrashReport, "crash-report", false, "Print a marker before re-raising an unexpected panic")
	rootCmd.Flags().IntVar(&flags.BufferSize, "buffer-size", 0, "Per-test message buffer size in bytes")
	rootCmd.Flags().StringVar(&flags.ConfigFile, "config", "", "Path to the YAML config file (default .ctest.yaml)")
}
