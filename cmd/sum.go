package cmd

import (
	"github.com/spf13/cobra"

	"github.com/yarlson/fat/internal/fs"
	"github.com/yarlson/fat/pathio"
)

func newSumCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "sum <file>...",
		Short:         "🔢 Print SHA-256 checksums",
		Long:          "Computes SHA-256 checksums concurrently and prints them in argument order.",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			jobs, _ := cmd.Flags().GetInt("jobs")
			fsys := fs.New()

			sums, err := pathio.Limit(cmd.Context(), jobs, args, fsys.Checksum)
			if err != nil {
				return err
			}

			for i, sum := range sums {
				printf(cmd, "%s  %s\n", sum, args[i])
			}
			return nil
		},
	}

	cmd.Flags().IntP("jobs", "j", 4, "Maximum number of files hashed at once")
	return cmd
}
