package assets

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"strings"
)

// ErrNotOK is returned by sources when the asset exists in principle but the
// backend answered with a non-success status.
var ErrNotOK = errors.New("non-success response")

// Source fetches the raw bytes of a static asset by relative path.
type Source interface {
	Fetch(ctx context.Context, path string) ([]byte, error)
}

// HTTPSource fetches assets with plain GET requests under BaseURL.
type HTTPSource struct {
	BaseURL string
	Client  *http.Client
}

// NewHTTPSource returns a source rooted at baseURL, e.g.
// "https://example.com/data".
func NewHTTPSource(baseURL string) *HTTPSource {
	return &HTTPSource{BaseURL: strings.TrimRight(baseURL, "/"), Client: http.DefaultClient}
}

func (s *HTTPSource) Fetch(ctx context.Context, path string) ([]byte, error) {
	url := s.BaseURL + "/" + strings.TrimLeft(path, "/")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request for %s: %w", url, err)
	}

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetching %s: %w: %s", url, ErrNotOK, resp.Status)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", url, err)
	}
	return data, nil
}

// DirSource reads assets from a file system, typically os.DirFS of the
// content directory.
type DirSource struct {
	FS fs.FS
}

func (s DirSource) Fetch(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := fs.ReadFile(s.FS, strings.TrimLeft(path, "/"))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading %s: %w: %v", path, ErrNotOK, err)
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}
