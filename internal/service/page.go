package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/oggyb/pagetracker/internal/domain/page"
	"github.com/oggyb/pagetracker/internal/tracker"
)

// ErrLedgerDisabled is returned by ledger-backed calls when no repository
// was configured.
var ErrLedgerDisabled = errors.New("page ledger is not configured")

// PageTracker is the subset of *tracker.CachedFetcher the service needs.
type PageTracker interface {
	Lookup(ctx context.Context, id string, fetch tracker.Fetcher) (tracker.Result, error)
	AccessCount(ctx context.Context, id string) (int64, error)
}

// PageResult is what Get hands back to the transport layer.
type PageResult struct {
	URL         string
	Content     string
	Cached      bool
	AccessCount int64
}

type PageService interface {
	Get(ctx context.Context, rawURL string) (*PageResult, error)
	// AccessCount returns the normalized URL alongside its counter.
	AccessCount(ctx context.Context, rawURL string) (string, int64, error)
	GetTracked(ctx context.Context, rawURL string) (*page.Page, error)
	ListTracked(ctx context.Context, page, limit int) ([]*page.Page, int64, error)
	ProcessBatch(ctx context.Context) error
}

type pageService struct {
	tracker PageTracker
	fetcher tracker.Fetcher
	repo    page.Repository // nil when the ledger is disabled

	// Snapshot configuration, injected from config at startup.
	batchSize      int
	maxWorkers     int
	perPageTimeout time.Duration
}

// NewPageService creates a page service. repo may be nil, in which case
// nothing is recorded and ProcessBatch is a no-op.
func NewPageService(
	tr PageTracker,
	fetcher tracker.Fetcher,
	repo page.Repository,
	batchSize int,
	maxWorkers int,
	perPageTimeout time.Duration,
) PageService {
	if batchSize <= 0 {
		batchSize = 100
	}
	if maxWorkers <= 0 {
		maxWorkers = 4
	}
	if perPageTimeout <= 0 {
		perPageTimeout = 5 * time.Second
	}

	return &pageService{
		tracker:        tr,
		fetcher:        fetcher,
		repo:           repo,
		batchSize:      batchSize,
		maxWorkers:     maxWorkers,
		perPageTimeout: perPageTimeout,
	}
}

// Get validates rawURL and returns its body through the caching tracker.
// The outcome is written to the ledger on a best-effort basis.
func (s *pageService) Get(ctx context.Context, rawURL string) (*PageResult, error) {
	u, err := page.ValidateURL(rawURL)
	if err != nil {
		return nil, err
	}

	res, err := s.tracker.Lookup(ctx, u, s.fetcher)
	s.record(ctx, u, res, err)
	if err != nil {
		return nil, err
	}

	return &PageResult{
		URL:         u,
		Content:     res.Content,
		Cached:      res.Hit,
		AccessCount: res.Count,
	}, nil
}

func (s *pageService) AccessCount(ctx context.Context, rawURL string) (string, int64, error) {
	u, err := page.ValidateURL(rawURL)
	if err != nil {
		return "", 0, err
	}

	n, err := s.tracker.AccessCount(ctx, u)
	if err != nil {
		return "", 0, err
	}
	return u, n, nil
}

// GetTracked returns the ledger row for rawURL, or page.ErrNotFound if it
// was never recorded.
func (s *pageService) GetTracked(ctx context.Context, rawURL string) (*page.Page, error) {
	u, err := page.ValidateURL(rawURL)
	if err != nil {
		return nil, err
	}
	if s.repo == nil {
		return nil, ErrLedgerDisabled
	}
	return s.repo.GetByURL(ctx, u)
}

func (s *pageService) ListTracked(ctx context.Context, pageNum, limit int) ([]*page.Page, int64, error) {
	if s.repo == nil {
		return nil, 0, ErrLedgerDisabled
	}
	return s.repo.List(ctx, pageNum, limit)
}

// record writes the outcome of one lookup. Calls that never reached the
// counter (Count == 0) are skipped.
func (s *pageService) record(ctx context.Context, u string, res tracker.Result, lookupErr error) {
	if s.repo == nil || res.Count == 0 {
		return
	}

	p, err := page.NewPage(u)
	if err != nil {
		return
	}

	switch {
	case lookupErr != nil:
		p.RecordFailure(res.Count, lookupErr)
	case res.Hit:
		p.RecordHit(res.Count)
	default:
		p.RecordMiss(res.Count)
	}

	if err := s.repo.RecordAccess(ctx, p); err != nil {
		log.Printf("[Service] Failed to record access for %s: %v", u, err)
	}
}

// ProcessBatch copies the current "count:" value of every tracked URL into
// the ledger. It pages through the URLs batchSize at a time and spreads
// each page over a small worker pool. Counters are only read.
func (s *pageService) ProcessBatch(ctx context.Context) error {
	if s.repo == nil {
		log.Println("[Service] Ledger disabled, skipping snapshot.")
		return nil
	}

	total := 0
	for offset := 0; ; offset += s.batchSize {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		urls, err := s.repo.ListURLs(ctx, s.batchSize, offset)
		if err != nil {
			return fmt.Errorf("failed to list tracked pages: %w", err)
		}

		s.snapshot(ctx, urls)
		total += len(urls)

		if len(urls) < s.batchSize {
			break
		}
	}

	log.Printf("[Service] Snapshot completed for %d pages.", total)
	return nil
}

func (s *pageService) snapshot(ctx context.Context, urls []string) {
	if len(urls) == 0 {
		return
	}

	workerCount := len(urls)
	if workerCount > s.maxWorkers {
		workerCount = s.maxWorkers
	}

	var wg sync.WaitGroup

	// Each worker takes a stride of the slice: worker w handles
	// indices w, w+workerCount, w+2*workerCount, ...
	for w := 0; w < workerCount; w++ {
		wg.Add(1)

		go func(workerID, start int) {
			defer wg.Done()

			for i := start; i < len(urls); i += workerCount {
				if ctx.Err() != nil {
					log.Printf("[Worker %d] Context cancelled, stopping worker", workerID)
					return
				}

				pageCtx, cancel := context.WithTimeout(ctx, s.perPageTimeout)
				if err := s.snapshotOne(pageCtx, urls[i]); err != nil {
					log.Printf("[Worker %d] Snapshot of %s failed: %v", workerID, urls[i], err)
				}
				cancel()
			}
		}(w+1, w)
	}

	wg.Wait()
}

func (s *pageService) snapshotOne(ctx context.Context, u string) error {
	count, err := s.tracker.AccessCount(ctx, u)
	if err != nil {
		return fmt.Errorf("read counter: %w", err)
	}
	if err := s.repo.UpdateAccessCount(ctx, u, count); err != nil {
		return fmt.Errorf("update ledger: %w", err)
	}
	return nil
}
