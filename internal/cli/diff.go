package cli

import (
	"ftm/internal/compare"
	"ftm/internal/ui"

	"github.com/spf13/cobra"
)

func newDiffCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "diff <theme>",
		Short: "Compare the active configuration with a theme",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := a.catalog(cmd.Context())
			if err != nil {
				return err
			}
			entry, err := cat.ResolvePath(args[0])
			if err != nil {
				return err
			}

			result, err := compare.ComputeDiff(a.cfg.ActiveConfig, entry.Path)
			if err != nil {
				return err
			}
			if !result.OldExists {
				a.notify("info", "no active configuration at "+a.cfg.ActiveConfig)
			}
			if !result.HasChanges() {
				a.notify("success", entry.Key+" is the active configuration")
				return nil
			}

			// Plain unified diff when piped
			if !isTerminal(a.out) {
				a.printf("%s", compare.FormatUnifiedDiff(result))
				return nil
			}
			a.printf("%s", ui.RenderDiff(result))
			a.printf("%s\n", ui.MutedStyle.Render(result.Summary()))
			return nil
		},
	}
}
