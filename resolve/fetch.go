package resolve

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/sonnes/gallery/core"
	"github.com/sonnes/gallery/manifest"
)

// joinURL appends a relative path to base, inserting a slash when needed.
func joinURL(base, rel string) string {
	if base == "" {
		return rel
	}
	return strings.TrimSuffix(base, "/") + "/" + strings.TrimPrefix(rel, "/")
}

// fetch performs a GET and returns the body. Any non-2xx status is an error.
func fetch(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("GET %s: %s", url, resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", url, err)
	}
	return body, nil
}

// ManifestSource reads the images array of a JSON manifest served over HTTP.
type ManifestSource struct {
	URL    string
	Client *http.Client
}

// Name identifies the source in logs.
func (s *ManifestSource) Name() string { return "manifest" }

// Images fetches and parses the manifest. Entries are normalized by
// manifest.Parse.
func (s *ManifestSource) Images(ctx context.Context) ([]core.ImageEntry, error) {
	body, err := fetch(ctx, s.Client, s.URL)
	if err != nil {
		return nil, err
	}
	m, err := manifest.Parse(body)
	if err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	return m.Images, nil
}
