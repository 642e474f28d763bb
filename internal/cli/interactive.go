package cli

import (
	"context"
	"fmt"

	"ftm/internal/apply"
	"ftm/internal/models"
	"ftm/internal/picker"
	"ftm/internal/ui/components"

	"github.com/spf13/cobra"
)

func newToggleCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle",
		Short: "Cycle through themes interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.requireTool()
			if err != nil {
				return err
			}
			cat, err := a.catalog(cmd.Context())
			if err != nil {
				return err
			}
			if cat.Len() == 0 {
				a.notify("warning", "no themes found")
				return nil
			}

			// No prompts while the browser owns the terminal
			var confirm apply.ConfirmFunc
			if a.yes {
				confirm = func(string) bool { return true }
			}
			applier := apply.New(a.cfg, client, a.backups(), confirm, a.logger)
			set := func(ctx context.Context, e models.ThemeEntry) (string, error) {
				result, err := applier.Apply(ctx, e)
				if err != nil {
					return "", err
				}
				if !result.Valid {
					return fmt.Sprintf("%s applied, but fastfetch reported an error", e.Key), nil
				}
				return "default theme → " + e.Key, nil
			}

			return components.RunToggle(cmd.Context(), cat.Entries(), client, set)
		},
	}
}

func newPickCmd(a *app) *cobra.Command {
	var applyFlag bool

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Fuzzy-pick a theme",
		Long: `Fuzzy-pick a theme with fzf, or with a built-in list when fzf is not
installed. The choice is previewed, or applied with --apply.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.requireTool()
			if err != nil {
				return err
			}
			cat, err := a.catalog(cmd.Context())
			if err != nil {
				return err
			}
			if cat.Len() == 0 {
				a.notify("warning", "no themes found")
				return nil
			}

			p := picker.New(a.cfg.FzfBin, a.cfg.FastfetchBin, a.runner)
			entry, ok, err := p.Pick(cmd.Context(), cat.Entries())
			if err != nil {
				return err
			}
			if !ok {
				a.logger.Debug("pick cancelled")
				return nil
			}

			a.notify("info", "selected "+entry.Key)
			if !applyFlag {
				return client.Preview(cmd.Context(), entry.Path, a.out)
			}

			result, err := a.applier(client).Apply(cmd.Context(), entry)
			if err != nil {
				return err
			}
			a.reportResult("default theme "+entry.Key, result)
			return nil
		},
	}

	cmd.Flags().BoolVar(&applyFlag, "apply", false, "apply the selected theme")
	return cmd
}
