package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yarlson/fat/mainerr"
	"github.com/yarlson/fat/pathio"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

// SetVersion sets the version information shown by --version
func SetVersion(v, bt string) {
	version = v
	buildTime = bt
}

// NewRootCommand creates a new root command with all subcommands
func NewRootCommand() *cobra.Command {
	var (
		colors  string
		emoji   bool
		verbose bool
	)

	rootCmd := &cobra.Command{
		Use:           "fat",
		Short:         "📄 File tools with errors that name the file.",
		Long:          "Fat is a small file toolbox. Every failure reports the path it happened on.",
		Version:       fmt.Sprintf("%s (built %s)", version, buildTime),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(cmd.ErrOrStderr(), verbose)
			return SetGlobalConfig(colors, emoji)
		},
	}

	rootCmd.PersistentFlags().StringVar(&colors, "colors", "auto", "When to use colors (auto, always, never)")
	rootCmd.PersistentFlags().BoolVar(&emoji, "emoji", true, "Show emoji in output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug details to stderr")

	rootCmd.AddCommand(newCatCmd())
	rootCmd.AddCommand(newStatCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newSumCmd())
	rootCmd.AddCommand(newCpCmd())

	return rootCmd
}

// Execute runs the root command. A failure is printed on stderr and ends the
// process with a non-zero status.
func Execute() {
	rootCmd := NewRootCommand()
	mainerr.ExitWith(run(rootCmd), func(err error) {
		reportError(rootCmd, err)
	})
}

func run(rootCmd *cobra.Command) error {
	err := rootCmd.Execute()
	if err != nil {
		logger.Debug("command failed",
			"chain", fmt.Sprintf("%+v", mainerr.From(err)),
			"paths", pathio.Paths(err))
	}
	return mainerr.From(err)
}

// reportError prints the message of the error that ended the command
func reportError(cmd *cobra.Command, err error) {
	w := GetErrorWriter(cmd)
	w.Writeln(Error(err.Error()))
}
