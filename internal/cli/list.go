package cli

import (
	"ftm/internal/compare"
	"ftm/internal/ui"

	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List themes",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := a.catalog(cmd.Context())
			if err != nil {
				return err
			}

			entries := cat.Entries()
			if len(entries) == 0 {
				a.notify("warning", "no themes found")
				return nil
			}

			active := compare.ActiveKeys(a.cfg.ActiveConfig, entries)
			a.printf("%s\n", ui.RenderThemeTable(entries, active))
			return nil
		},
	}
}
