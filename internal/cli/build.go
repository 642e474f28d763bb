package cli

import (
	"errors"

	"ftm/internal/builder"
	"ftm/internal/models"

	"github.com/spf13/cobra"
)

func newBuildCmd(a *app) *cobra.Command {
	var applyFlag bool

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build a theme interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := a.wizard()
			if errors.Is(err, builder.ErrCancelled) {
				a.logger.Debug("build cancelled")
				return nil
			}
			if err != nil {
				return err
			}

			data, err := builder.Build(spec)
			if err != nil {
				return err
			}
			path, err := builder.Save(a.cfg.UserThemesDir, spec.Name, data)
			if err != nil {
				return err
			}
			a.notify("success", "theme saved → "+path)

			if !applyFlag {
				return nil
			}
			client, err := a.requireTool()
			if err != nil {
				return err
			}
			entry := models.NewThemeEntry(path, models.OriginUser)
			result, err := a.applier(client).Apply(cmd.Context(), entry)
			if err != nil {
				return err
			}
			a.reportResult("default theme "+entry.Key, result)
			return nil
		},
	}

	cmd.Flags().BoolVar(&applyFlag, "apply", false, "apply the theme after saving")
	return cmd
}

// wizard runs the builder form unless a test replaced it
func (a *app) wizard() (builder.Spec, error) {
	if a.wizardFn != nil {
		return a.wizardFn()
	}
	return builder.RunWizard(false)
}
