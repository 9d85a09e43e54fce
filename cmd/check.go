package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yarlson/fat/internal/fs"
	"github.com/yarlson/fat/pathio"
)

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "check <file>...",
		Short:         "🔍 Check that files are readable",
		Long:          "Checks all files concurrently. Reports the first file that is missing, unreadable or of an unsupported type.",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			jobs, _ := cmd.Flags().GetInt("jobs")
			fsys := fs.New()

			_, err := pathio.Limit(cmd.Context(), jobs, args, func(_ context.Context, path string) (struct{}, error) {
				logger.Debug("checking", "path", path)
				return struct{}{}, fsys.ValidateReadable(path)
			})
			if err != nil {
				return err
			}

			itemText := "file"
			if len(args) > 1 {
				itemText = "files"
			}
			w := GetWriter(cmd)
			w.Writeln(Success(fmt.Sprintf("%d %s readable", len(args), itemText)))
			return w.Err()
		},
	}

	cmd.Flags().IntP("jobs", "j", 0, "Maximum number of concurrent checks (0 means unlimited)")
	return cmd
}
