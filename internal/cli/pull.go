package cli

import (
	"fmt"

	"ftm/internal/remote"

	"github.com/spf13/cobra"
)

func newPullCmd(a *app) *cobra.Command {
	var (
		repo   string
		path   string
		useGit bool
	)

	cmd := &cobra.Command{
		Use:   "pull",
		Short: "Download themes from GitHub",
		Long: `Download every .jsonc preset in a GitHub repository directory into the
user themes directory. By default the GitHub contents API is used; --git
clones the repository instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if repo == "" {
				repo = a.cfg.RemoteRepo
			}
			if path == "" {
				path = a.cfg.RemotePath
			}

			var puller remote.Puller
			if useGit {
				puller = remote.NewGitPuller(remote.GitHubURL, a.cfg.UserThemesDir, a.logger)
			} else {
				puller = remote.New(a.cfg.GitHubAPI, a.cfg.UserThemesDir, a.httpClient, a.logger)
			}

			a.notify("info", fmt.Sprintf("pulling from %s/%s", repo, path))
			result, err := puller.Pull(cmd.Context(), repo, path)
			if result != nil {
				for _, name := range result.Downloaded {
					a.printf("  ⬇ %s\n", name)
				}
			}
			if err != nil {
				return err
			}

			if len(result.Downloaded) == 0 {
				a.notify("warning", "no presets found")
				return nil
			}
			a.notify("success", fmt.Sprintf("%d themes saved → %s", len(result.Downloaded), result.Dir))
			return nil
		},
	}

	cmd.Flags().StringVar(&repo, "repo", "", "GitHub repository (default from settings, fastfetch-cli/fastfetch)")
	cmd.Flags().StringVar(&path, "path", "", "directory inside the repository (default presets/examples)")
	cmd.Flags().BoolVar(&useGit, "git", false, "clone with git instead of using the API")
	return cmd
}
