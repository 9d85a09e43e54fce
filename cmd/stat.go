package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yarlson/fat/internal/fs"
)

func newStatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "stat <file>...",
		Short:         "📊 Show file details",
		Long:          "Displays size, mode and modification time of each file. Symlinks are not followed.",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			if format != "text" && format != "json" {
				return fmt.Errorf("invalid format: %s (valid: text, json)", format)
			}

			fsys := fs.New()
			infos := make([]*fs.Info, 0, len(args))
			for _, path := range args {
				logger.Debug("stat", "path", path)
				info, err := fsys.Stat(path)
				if err != nil {
					return err
				}
				infos = append(infos, info)
			}

			if format == "json" {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(infos)
			}

			w := GetWriter(cmd)
			for _, info := range infos {
				switch {
				case info.Symlink != "":
					w.Writeln(Link(fmt.Sprintf("%s → %s", info.Path, info.Symlink)))
				case info.IsDir:
					w.Writeln(Dir(info.Path))
				default:
					w.Writeln(File(info.Path))
				}
				w.WriteString("   ").
					Writeln(Colored(fmt.Sprintf("%d bytes  %s  %s", info.Size, info.Mode, info.ModTime.Format("2006-01-02 15:04:05")), ColorGray))
			}
			return w.Err()
		},
	}

	cmd.Flags().StringP("format", "f", "text", "Output format (text, json)")
	return cmd
}
