package commands

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"ctest/internal/cli"
)

// ExitUsage is returned for bad flags, arguments or configuration
const ExitUsage = 2

// NewRootCommand creates the root command for a test program called name
func NewRootCommand(name string) *cobra.Command {
	return &cobra.Command{
		Use:   name + " [suite]",
		Short: "Run the tests registered in this program",
		Long: `Run the tests registered in this program, one after another, in registration order.
The optional suite argument restricts the run to suites whose name starts with it.`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
}

// Execute parses args (os.Args style, program name first), runs the command
// and returns the number of failed tests, or ExitUsage on error.
func Execute(source Source, args []string, stdout, stderr io.Writer) int {
	name := "ctest"
	if len(args) > 0 {
		name = filepath.Base(args[0])
		args = args[1:]
	}
	if args == nil {
		// cobra falls back to os.Args for nil
		args = []string{}
	}

	rootCmd := NewRootCommand(name)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	cmds := NewCommands(source)
	cmds.Register(rootCmd, &flags)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitUsage
	}
	return cmds.Run.Failed()
}
