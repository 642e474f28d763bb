// Package remote downloads presets published on GitHub into the user themes
// directory.
package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"path"
	"path/filepath"
	"strings"
	"time"

	"ftm/internal/config"
	"ftm/internal/fsutil"

	"github.com/charmbracelet/log"
)

// bodyExcerpt caps how much of an error response is kept
const bodyExcerpt = 200

// RemoteError reports a non-200 answer from GitHub
type RemoteError struct {
	URL    string
	Status int
	Body   string
}

func (e *RemoteError) Error() string {
	msg := fmt.Sprintf("GET %s: %d %s", e.URL, e.Status, http.StatusText(e.Status))
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

// Item is one record of the contents API listing
type Item struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	DownloadURL string `json:"download_url"`
}

// IsPreset reports whether the item is a preset file
func (i Item) IsPreset() bool {
	return i.Type == "file" && strings.HasSuffix(i.Name, config.PresetExt)
}

// PullResult lists what a pull wrote
type PullResult struct {
	Source     string   // Where the presets came from
	Dir        string   // Destination directory
	Downloaded []string // File names written, in listing order
}

// Puller fetches presets from a repository directory
type Puller interface {
	Pull(ctx context.Context, repo, dir string) (*PullResult, error)
}

// Client pulls through the GitHub contents API
type Client struct {
	baseURL string
	destDir string
	http    *http.Client
	logger  *log.Logger
}

// New creates a Client writing into destDir. A nil httpClient uses a client
// with a 30 second timeout.
func New(baseURL, destDir string, httpClient *http.Client, logger *log.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		destDir: destDir,
		http:    httpClient,
		logger:  logger,
	}
}

// ContentsURL returns the contents API address for dir in repo
func (c *Client) ContentsURL(repo, dir string) string {
	return c.baseURL + "/repos/" + strings.Trim(repo, "/") + "/contents/" + strings.Trim(dir, "/")
}

// List fetches the directory listing
func (c *Client) List(ctx context.Context, repo, dir string) ([]Item, error) {
	url := c.ContentsURL(repo, dir)
	body, err := c.get(ctx, url, "application/vnd.github+json")
	if err != nil {
		return nil, err
	}

	var items []Item
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("failed to decode listing from %s: %w", url, err)
	}
	return items, nil
}

// Pull downloads every preset in dir. The first failure stops the pull;
// files already written stay in place and are reported in the result.
func (c *Client) Pull(ctx context.Context, repo, dir string) (*PullResult, error) {
	result := &PullResult{Source: repo + "/" + strings.Trim(dir, "/"), Dir: c.destDir}

	items, err := c.List(ctx, repo, dir)
	if err != nil {
		return result, err
	}

	for _, item := range items {
		if !item.IsPreset() {
			continue
		}
		name := path.Base(item.Name)
		if name != item.Name {
			c.logger.Warn("skipping preset with unsafe name", "name", item.Name)
			continue
		}

		data, err := c.get(ctx, item.DownloadURL, "")
		if err != nil {
			return result, fmt.Errorf("failed to download %s: %w", item.Name, err)
		}
		if err := fsutil.WriteFile(filepath.Join(c.destDir, name), data, 0644); err != nil {
			return result, fmt.Errorf("failed to save %s: %w", item.Name, err)
		}

		c.logger.Info("downloaded", "name", name)
		result.Downloaded = append(result.Downloaded, name)
	}

	return result, nil
}

// get performs a GET and returns the body of a 200 response
func (c *Client) get(ctx context.Context, url, accept string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	if accept != "" {
		req.Header.Set("Accept", accept)
	}
	req.Header.Set("User-Agent", "ftm")

	c.logger.Debug("GET", "url", url)
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		excerpt := strings.TrimSpace(string(body))
		if r := []rune(excerpt); len(r) > bodyExcerpt {
			excerpt = string(r[:bodyExcerpt]) + "..."
		}
		return nil, &RemoteError{URL: url, Status: resp.StatusCode, Body: excerpt}
	}
	return body, nil
}
