package cli

import (
	"fmt"
	"path/filepath"
	"strconv"

	"ftm/internal/ui"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func newBackupsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backups",
		Short: "List backups of the active configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			backups, err := a.backups().List()
			if err != nil {
				return err
			}
			if len(backups) == 0 {
				a.notify("info", "no backups in "+a.backups().Dir())
				return nil
			}

			for i, b := range backups {
				a.printf("%s  %s  %s  %s\n",
					ui.MutedStyle.Render(fmt.Sprintf("%2d", i)),
					filepath.Base(b.Path),
					ui.MutedStyle.Render(humanize.Time(b.ModTime)),
					ui.MutedStyle.Render(humanize.Bytes(uint64(b.Size))),
				)
			}
			return nil
		},
	}

	cmd.AddCommand(newBackupsRestoreCmd(a))
	return cmd
}

func newBackupsRestoreCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "restore [n]",
		Short: "Restore the n-th newest backup (default 0, the latest)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n := 0
			if len(args) == 1 {
				v, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid backup number %q", args[0])
				}
				n = v
			}

			result, err := a.applier(a.client()).RestoreBackup(n)
			if err != nil {
				return err
			}
			if result.Backup != "" {
				a.notify("info", "backup saved → "+result.Backup)
			}
			a.notify("success", fmt.Sprintf("restored %s → %s", result.Entry.Key, result.Dest))
			return nil
		},
	}
}
