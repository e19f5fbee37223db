package services

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
)

// HenleyFetcher retrieves the raw PDF bytes for one origin.
type HenleyFetcher interface {
	Fetch(ctx context.Context, originISO string) ([]byte, error)
}

// HTTPHenleyFetcher downloads the PDFs from the Henley CDN. Each fetch gets
// its own deadline so one stuck download cannot hang the whole run.
type HTTPHenleyFetcher struct {
	Options HenleyOptions
	Client  *http.Client
}

func (f *HTTPHenleyFetcher) client() *http.Client {
	if f.Client != nil {
		return f.Client
	}
	return http.DefaultClient
}

// Fetch downloads the full visa PDF for originISO.
func (f *HTTPHenleyFetcher) Fetch(ctx context.Context, originISO string) ([]byte, error) {
	url := f.Options.PDFURL(originISO)

	if f.Options.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.Options.Timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", url, err)
	}

	resp, err := f.client().Do(req)
	if err != nil {
		return nil, fmt.Errorf("download failed for %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download failed for %s: status %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read PDF body from %s: %w", url, err)
	}
	return body, nil
}

// LocalHenleyFetcher reads previously downloaded PDFs from disk, for offline
// runs and tests.
type LocalHenleyFetcher struct {
	Dir string
}

// Fetch reads {ISO}_visa_full.pdf from the local directory.
func (f *LocalHenleyFetcher) Fetch(_ context.Context, originISO string) ([]byte, error) {
	path := filepath.Join(f.Dir, originISO+"_visa_full.pdf")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read local PDF %s: %w", path, err)
	}
	return data, nil
}
