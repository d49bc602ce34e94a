// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package harvest scrapes a page for PDF links and downloads each linked
// file into an output directory. Downloads run one at a time; a file that
// already exists under the output directory is never fetched again.
package harvest

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"

	"golang.org/x/time/rate"

	"github.com/pdiddy/pdfharvest/internal/fsutil"
	"github.com/pdiddy/pdfharvest/internal/links"
	"github.com/pdiddy/pdfharvest/internal/validate"
	"github.com/pdiddy/pdfharvest/pkg/types"
)

// Fetcher retrieves remote documents. Failures, including non-2xx
// responses, wrap types.ErrTransport.
type Fetcher interface {
	Get(ctx context.Context, url string) ([]byte, error)
	GetStreaming(ctx context.Context, url string) (io.ReadCloser, error)
}

// Harvester runs the fetch, extract, download and validate steps against
// one configured page.
type Harvester struct {
	cfg         types.HarvestConfig
	fetcher     Fetcher
	parser      validate.Parser
	interesting func(filename string) bool
	limiter     *rate.Limiter
	w           io.Writer
}

// Option customizes a Harvester.
type Option func(*Harvester)

// WithParser sets the PDF parser used by ProcessFile. The default is pdfcpu.
func WithParser(p validate.Parser) Option {
	return func(h *Harvester) { h.parser = p }
}

// WithInterestingFilter replaces the filename predicate applied to valid
// files by ProcessFile. The default is validate.HasUpperCase.
func WithInterestingFilter(fn func(filename string) bool) Option {
	return func(h *Harvester) { h.interesting = fn }
}

// WithOutput sets the writer receiving per-item status lines. The default
// discards them.
func WithOutput(w io.Writer) Option {
	return func(h *Harvester) { h.w = w }
}

// New returns a Harvester for cfg that fetches through f.
func New(cfg types.HarvestConfig, f Fetcher, opts ...Option) *Harvester {
	h := &Harvester{
		cfg:         cfg,
		fetcher:     f,
		interesting: validate.HasUpperCase,
		w:           io.Discard,
	}
	if cfg.DownloadDelay > 0 {
		h.limiter = rate.NewLimiter(rate.Every(cfg.DownloadDelay), 1)
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.parser == nil {
		h.parser = validate.NewPdfcpuParser()
	}
	return h
}

// Run refreshes the page snapshot, extracts candidate PDF URLs and
// downloads each one. The returned error is non-nil only when the snapshot
// cannot be cleared, fetched or read; individual download failures are
// recorded in the Result.
func (h *Harvester) Run(ctx context.Context) (Result, error) {
	if err := h.ClearStale(); err != nil {
		return Result{}, err
	}
	if !fsutil.FileExists(h.cfg.SnapshotPath) {
		if err := h.FetchSnapshot(ctx); err != nil {
			fmt.Fprintf(h.w, "failed:  %s (%v)\n", h.cfg.PageURL, err)
			return Result{}, err
		}
	}

	urls, err := h.Candidates()
	if err != nil {
		return Result{}, err
	}
	return h.DownloadAll(ctx, urls), nil
}

// ClearStale deletes a snapshot left by a previous run.
func (h *Harvester) ClearStale() error {
	if !fsutil.FileExists(h.cfg.SnapshotPath) {
		return nil
	}
	if err := fsutil.DeleteFile(h.cfg.SnapshotPath); err != nil {
		return fmt.Errorf("clearing stale snapshot: %w", err)
	}
	return nil
}

// FetchSnapshot streams the configured page to the snapshot path.
func (h *Harvester) FetchSnapshot(ctx context.Context) error {
	body, err := h.fetcher.GetStreaming(ctx, h.cfg.PageURL)
	if err != nil {
		return fmt.Errorf("fetching page: %w", err)
	}
	defer body.Close()

	if dir := filepath.Dir(h.cfg.SnapshotPath); dir != "." {
		if err := fsutil.EnsureDir(dir); err != nil {
			return err
		}
	}
	n, err := fsutil.WriteFileAtomic(h.cfg.SnapshotPath, body)
	if err != nil {
		return fmt.Errorf("saving page: %w", err)
	}
	fmt.Fprintf(h.w, "snapshot: %s (%d bytes)\n", h.cfg.SnapshotPath, n)
	return nil
}

// Candidates reads the snapshot and returns its PDF URLs, deduplicated in
// order of first appearance.
func (h *Harvester) Candidates() ([]string, error) {
	page, err := fsutil.ReadFile(h.cfg.SnapshotPath)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}
	found := links.ExtractPDFURLs(page)
	urls := links.Dedupe(found)
	fmt.Fprintf(h.w, "found: %d PDF links (%d unique)\n", len(found), len(urls))
	return urls, nil
}

// DownloadAll downloads urls sequentially. It continues after individual
// failures and applies the configured delay between downloads.
func (h *Harvester) DownloadAll(ctx context.Context, urls []string) Result {
	result := Result{Candidates: len(urls)}
	for _, u := range urls {
		path, skipped, err := h.Download(ctx, u)
		switch {
		case err != nil:
			fmt.Fprintf(h.w, "failed:  %s (%v)\n", u, err)
			result.Failed++
			result.Failures = append(result.Failures, Failure{URL: u, Error: err.Error()})
		case skipped:
			result.Skipped++
		default:
			result.Downloaded++
			result.Saved = append(result.Saved, path)
		}
	}
	fmt.Fprintf(h.w, "\nBatch summary: %d downloaded, %d skipped, %d failed (total: %d)\n",
		result.Downloaded, result.Skipped, result.Failed, result.Total())
	return result
}

// Download saves url under the output directory using links.URLToFilename.
// If a file of that name already exists it reports skipped and makes no
// request.
func (h *Harvester) Download(ctx context.Context, url string) (path string, skipped bool, err error) {
	filename := links.URLToFilename(url)
	path, err = outputPath(h.cfg.OutputDir, filename)
	if err != nil {
		return "", false, err
	}

	if fsutil.FileExists(path) {
		fmt.Fprintf(h.w, "skipped: %s (already exists)\n", filename)
		return path, true, nil
	}

	if h.limiter != nil {
		if err := h.limiter.Wait(ctx); err != nil {
			return "", false, fmt.Errorf("waiting to download: %w", err)
		}
	}

	fmt.Fprintf(h.w, "downloading: %s\n", url)
	data, err := h.fetcher.Get(ctx, url)
	if err != nil {
		return "", false, err
	}

	if err := fsutil.EnsureDir(h.cfg.OutputDir); err != nil {
		return "", false, err
	}
	if _, err := fsutil.WriteFileAtomic(path, bytes.NewReader(data)); err != nil {
		return "", false, err
	}
	fmt.Fprintf(h.w, "saved: %s\n", path)

	if h.cfg.DownloadLog != "" {
		if err := fsutil.AppendText(h.cfg.DownloadLog, url+" -> "+path+"\n"); err != nil {
			fmt.Fprintf(h.w, "  warning: download log: %v\n", err)
		}
	}
	return path, false, nil
}

// outputPath joins filename onto dir and rejects any result that is not a
// direct child of dir.
func outputPath(dir, filename string) (string, error) {
	path := filepath.Join(dir, filename)
	rel, err := filepath.Rel(dir, path)
	if err != nil || filename == "." || filename == ".." ||
		rel != filename || filepath.Base(path) != filename {
		return "", fmt.Errorf("%w: refusing to write %q outside %s", types.ErrIO, filename, dir)
	}
	return path, nil
}
