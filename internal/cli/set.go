package cli

import (
	"github.com/spf13/cobra"
)

func newSetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set <theme|file>",
		Short: "Make a theme the default configuration",
		Long: `Make a theme the default configuration.

The theme is given by position, key, name or a path to a .jsonc file. The
current configuration is backed up first and fastfetch checks the new one.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.requireTool()
			if err != nil {
				return err
			}
			cat, err := a.catalog(cmd.Context())
			if err != nil {
				return err
			}
			entry, err := cat.ResolvePath(args[0])
			if err != nil {
				return err
			}

			result, err := a.applier(client).Apply(cmd.Context(), entry)
			if err != nil {
				if result != nil && result.Restored {
					a.notify("warning", "previous configuration restored")
				}
				return err
			}
			a.reportResult("default theme "+entry.Key, result)
			return nil
		},
	}
}

func newAddCmd(a *app) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "add <file>",
		Short: "Add a local file as a user theme",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dest, err := a.applier(a.client()).AddTheme(a.cfg.ExpandPath(args[0]), name)
			if err != nil {
				return err
			}
			a.notify("success", "added → "+dest)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "theme name (default is the file name)")
	return cmd
}

func newResetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Replace the configuration with fastfetch defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.requireTool()
			if err != nil {
				return err
			}

			result, err := a.applier(client).Reset(cmd.Context())
			if err != nil {
				return err
			}
			a.reportResult("defaults generated", result)
			return nil
		},
	}
}
