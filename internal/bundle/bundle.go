// Package bundle assembles the ZIP archive of purchased assets. The
// archive is fully materialized on a scratch file before streaming so
// the HTTP layer can serve it with a known length; the caller removes
// the file once the response is written.
package bundle

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/zip"
	"golang.org/x/sync/errgroup"
)

// ErrFetch marks a failed asset download. Any single failure aborts
// the whole bundle; no partial archive is produced.
var ErrFetch = errors.New("asset fetch failed")

const (
	defaultFetchTimeout = 30 * time.Second
	defaultConcurrency  = 4

	// maxAssetSize caps a single fetched asset at 50MB.
	maxAssetSize = 50 << 20
)

type Builder struct {
	client       *http.Client
	fetchTimeout time.Duration
	concurrency  int
	tmpDir       string
}

// Option configures a Builder.
type Option func(*Builder)

func WithFetchTimeout(d time.Duration) Option {
	return func(b *Builder) { b.fetchTimeout = d }
}

func WithTempDir(dir string) Option {
	return func(b *Builder) { b.tmpDir = dir }
}

func WithConcurrency(n int) Option {
	return func(b *Builder) { b.concurrency = n }
}

func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		client:       &http.Client{},
		fetchTimeout: defaultFetchTimeout,
		concurrency:  defaultConcurrency,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build fetches every URL and writes a ZIP archive to a scratch file,
// returning its path. Fetches run concurrently (bounded) but entries
// are appended in input order as Artwork_1.jpg..Artwork_N.jpg, so the
// output is deterministic. On any error the scratch file is removed.
func (b *Builder) Build(ctx context.Context, urls []string) (string, error) {
	assets := make([][]byte, len(urls))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.concurrency)
	for i, url := range urls {
		i, url := i, url
		g.Go(func() error {
			data, err := b.fetch(gctx, url)
			if err != nil {
				return err
			}
			assets[i] = data
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", err
	}

	out, err := os.CreateTemp(b.tmpDir, "miraara_*.zip")
	if err != nil {
		return "", fmt.Errorf("create scratch file: %w", err)
	}

	if err := writeArchive(out, assets); err != nil {
		out.Close()
		os.Remove(out.Name())
		return "", err
	}

	if err := out.Close(); err != nil {
		os.Remove(out.Name())
		return "", fmt.Errorf("close scratch file: %w", err)
	}

	return out.Name(), nil
}

func (b *Builder) fetch(ctx context.Context, url string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, b.fetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFetch, url, err)
	}

	resp, err := b.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFetch, url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s: unexpected status %d", ErrFetch, url, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxAssetSize))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFetch, url, err)
	}

	return data, nil
}

func writeArchive(out *os.File, assets [][]byte) error {
	zw := zip.NewWriter(out)
	zw.RegisterCompressor(zip.Deflate, func(w io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(w, flate.BestCompression)
	})

	for i, data := range assets {
		entry, err := zw.Create(fmt.Sprintf("Artwork_%d.jpg", i+1))
		if err != nil {
			return fmt.Errorf("create archive entry %d: %w", i+1, err)
		}
		if _, err := entry.Write(data); err != nil {
			return fmt.Errorf("write archive entry %d: %w", i+1, err)
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("finalize archive: %w", err)
	}
	return nil
}
