package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yarlson/fat/internal/fs"
)

func newCpCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "cp <src> <dst>",
		Short:         "📋 Copy a file",
		Long:          "Copies a regular file, creating missing parent directories of the destination.",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, dst := args[0], args[1]
			logger.Debug("copying", "src", src, "dst", dst)

			if err := fs.New().CopyFile(src, dst); err != nil {
				return err
			}

			w := GetWriter(cmd)
			w.Writeln(Success(fmt.Sprintf("Copied %s", src))).
				WriteString("   ").
				Writeln(Colored(fmt.Sprintf("→ %s", dst), ColorCyan))
			return w.Err()
		},
	}
}
