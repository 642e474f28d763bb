// Package cli contains all commands of the ftm command line.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"ftm/internal/ui"

	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// versionString returns a formatted version string for display.
func versionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// newRootCmd builds the command tree around a
func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "ftm",
		Short: "Fastfetch theme manager",
		Long: ui.HeaderStyle.Render("ftm") + ui.MutedStyle.Render(" - fastfetch theme manager") + `

Discovers the presets shipped with fastfetch, example presets and your own
themes, previews them and makes one the default configuration.

` + ui.TitleStyle.Render("Examples:") + `
  ftm list              List every theme
  ftm preview 3         Preview the theme at position 3
  ftm set neofetch      Make neofetch the default
  ftm pick --apply      Fuzzy-pick a theme and apply it
  ftm pull              Download the upstream example presets`,
		Version:       versionString(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}

	root.SetOut(a.out)
	root.SetErr(a.errOut)

	// Global flags
	root.PersistentFlags().BoolVar(&a.debug, "debug", false, "enable debug logging")
	root.PersistentFlags().StringVar(&a.settingsPath, "settings", "", "settings file (default is $HOME/.config/ftm/settings.yaml)")
	root.PersistentFlags().BoolVarP(&a.yes, "yes", "y", false, "answer yes to restore prompts")

	root.AddCommand(
		newListCmd(a),
		newPreviewCmd(a),
		newShowCmd(a),
		newSetCmd(a),
		newDiffCmd(a),
		newToggleCmd(a),
		newPickCmd(a),
		newAddCmd(a),
		newPullCmd(a),
		newBuildCmd(a),
		newResetCmd(a),
		newBackupsCmd(a),
		newPathsCmd(a),
	)

	return root
}

// Execute runs the command line and exits with the mapped status.
// This is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, newApp(), os.Args[1:])
	stop()
	os.Exit(code)
}

// run executes args and returns the exit status. Errors are printed once.
func run(ctx context.Context, a *app, args []string) int {
	root := newRootCmd(a)
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintln(a.errOut, ui.RenderNotification("error", err.Error()))
	}
	return exitCode(err)
}
