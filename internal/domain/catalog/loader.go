package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// Source fetches raw catalog metadata from wherever it lives.
type Source interface {
	Fetch(ctx context.Context) ([]byte, error)
}

// FileSource reads catalog metadata from a local JSON file.
type FileSource struct {
	Path string
}

func (s FileSource) Fetch(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	return data, nil
}

// HTTPSource fetches catalog metadata over HTTP once at startup.
type HTTPSource struct {
	URL    string
	Client *http.Client
}

func (s HTTPSource) Fetch(ctx context.Context) ([]byte, error) {
	client := s.Client
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("build catalog request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch catalog: unexpected status %d", resp.StatusCode)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read catalog response: %w", err)
	}
	return data, nil
}

// Result carries the outcome of a catalog load. Err is informational: when
// the source fails or the payload is malformed, Catalog holds the built-in
// fallback and Fallback is true. Loading never hard-fails; the system must
// stay usable offline.
type Result struct {
	Catalog  Catalog
	Fallback bool
	Err      error
}

// Load fetches and parses catalog metadata from src. A nil src loads the
// fallback directly.
func Load(ctx context.Context, src Source) Result {
	if src == nil {
		return Result{Catalog: Fallback(), Fallback: true}
	}

	data, err := src.Fetch(ctx)
	if err != nil {
		return Result{Catalog: Fallback(), Fallback: true, Err: err}
	}

	var cat Catalog
	if err := json.Unmarshal(data, &cat); err != nil {
		return Result{Catalog: Fallback(), Fallback: true, Err: fmt.Errorf("parse catalog: %w", err)}
	}
	if len(cat.Areas) == 0 {
		return Result{Catalog: Fallback(), Fallback: true, Err: fmt.Errorf("catalog has no areas")}
	}

	return Result{Catalog: cat}
}
