package cli

import (
	"errors"
	"fmt"

	"ftm/internal/locator"
	"ftm/internal/ui"

	"github.com/spf13/cobra"
)

func newPathsCmd(a *app) *cobra.Command {
	var save bool

	cmd := &cobra.Command{
		Use:   "paths",
		Short: "Show data roots and the directories ftm uses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			roots, err := locator.New(a.client(), a.cfg.FallbackDataPaths, a.logger).Locate(cmd.Context())
			if err != nil && !errors.Is(err, locator.ErrDiscovery) {
				return err
			}

			a.printf("%s\n", ui.TitleStyle.Render("Data roots"))
			if len(roots) == 0 {
				a.printf("  %s\n", ui.MutedStyle.Render("none found"))
			}
			for _, r := range roots {
				a.printf("  %s\n", r)
			}

			a.printf("\n%s\n", ui.TitleStyle.Render("Directories"))
			for _, row := range [][2]string{
				{"active config", a.cfg.ActiveConfig},
				{"user themes", a.cfg.UserThemesDir},
				{"backups", a.cfg.BackupDir},
			} {
				a.printf("  %-14s %s\n", row[0], ui.FilePathStyle.Render(row[1]))
			}

			if save {
				if err := a.cfg.Save(a.settingsPath); err != nil {
					return fmt.Errorf("failed to save settings: %w", err)
				}
				a.notify("success", "settings written → "+a.settingsPath)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&save, "save", false, "write the effective settings to the settings file")
	return cmd
}
