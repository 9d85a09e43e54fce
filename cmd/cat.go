package cmd

import (
	"github.com/spf13/cobra"

	"github.com/yarlson/fat/internal/fs"
	"github.com/yarlson/fat/pathio"
)

func newCatCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "cat <file>...",
		Short:         "📄 Print files",
		Long:          "Prints the contents of each file in order. Stops at the first file that cannot be read.",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			fsys := fs.New()
			out := cmd.OutOrStdout()

			for _, path := range args {
				logger.Debug("reading file", "path", path)
				data, err := fsys.ReadFile(path)
				if err != nil {
					return err
				}
				if err := pathio.Do("<stdout>", func() error {
					_, err := out.Write(data)
					return err
				}); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
