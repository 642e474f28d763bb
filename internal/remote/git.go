package remote

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"ftm/internal/config"
	"ftm/internal/fsutil"

	"github.com/charmbracelet/log"
	"github.com/go-git/go-git/v5"
)

// GitHubURL is the default host for git pulls
const GitHubURL = "https://github.com"

// GitPuller pulls presets from a shallow clone of the repository
type GitPuller struct {
	baseURL string
	destDir string
	depth   int
	logger  *log.Logger
}

// NewGitPuller creates a GitPuller cloning from baseURL/<repo>.git
func NewGitPuller(baseURL, destDir string, logger *log.Logger) *GitPuller {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &GitPuller{
		baseURL: strings.TrimRight(baseURL, "/"),
		destDir: destDir,
		depth:   1,
		logger:  logger,
	}
}

// CloneURL returns the clone address for repo
func (g *GitPuller) CloneURL(repo string) string {
	return g.baseURL + "/" + strings.Trim(repo, "/") + ".git"
}

// Pull clones repo into a temporary directory, copies dir/*.jsonc into the
// destination and removes the clone.
func (g *GitPuller) Pull(ctx context.Context, repo, dir string) (*PullResult, error) {
	result := &PullResult{Source: repo + "/" + strings.Trim(dir, "/"), Dir: g.destDir}

	tmp, err := os.MkdirTemp("", "ftm-pull-*")
	if err != nil {
		return result, fmt.Errorf("failed to create temporary directory: %w", err)
	}
	defer os.RemoveAll(tmp)

	url := g.CloneURL(repo)
	g.logger.Debug("cloning", "url", url, "into", tmp)
	_, err = git.PlainCloneContext(ctx, tmp, false, &git.CloneOptions{
		URL:          url,
		Depth:        g.depth,
		SingleBranch: true,
		Tags:         git.NoTags,
	})
	if err != nil {
		return result, fmt.Errorf("failed to clone %s: %w", url, err)
	}

	src := filepath.Join(tmp, filepath.FromSlash(strings.Trim(dir, "/")))
	entries, err := os.ReadDir(src)
	if err != nil {
		return result, fmt.Errorf("path %s not found in %s: %w", dir, repo, err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	for _, e := range entries {
		name := e.Name()
		if !e.Type().IsRegular() || !strings.HasSuffix(name, config.PresetExt) {
			continue
		}
		if err := fsutil.CopyFile(filepath.Join(src, name), filepath.Join(g.destDir, name)); err != nil {
			return result, fmt.Errorf("failed to save %s: %w", name, err)
		}
		g.logger.Info("copied", "name", name)
		result.Downloaded = append(result.Downloaded, name)
	}

	return result, nil
}
