package cli

import (
	"os"

	"ftm/internal/compare"
	"ftm/internal/ui"

	"github.com/spf13/cobra"
)

func newPreviewCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "preview <theme>",
		Short: "Render a theme with fastfetch",
		Args:  cobra.ExactArgs(1),
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

			a.logger.Debug("previewing", "theme", entry.Key, "path", entry.Path)
			return client.Preview(cmd.Context(), entry.Path, a.out)
		},
	}
}

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <theme>",
		Short: "Print the source of a theme",
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

			data, err := os.ReadFile(entry.Path)
			if err != nil {
				return err
			}

			hash, err := compare.FileHash(entry.Path)
			if err != nil {
				return err
			}

			a.printf("%s  %s  %s\n%s\n\n",
				ui.TitleStyle.Render(entry.Key),
				ui.RenderOrigin(entry.Origin),
				ui.MutedStyle.Render("sha256:"+compare.QuickHash(hash)),
				ui.FilePathStyle.Render(entry.Path),
			)
			a.printf("%s\n", ui.NewHighlighter().Highlight(string(data), entry.Path))
			return nil
		},
	}
}
