package service

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/oggyb/pagetracker/internal/cache"
	"github.com/oggyb/pagetracker/internal/cache/memory"
	"github.com/oggyb/pagetracker/internal/domain/page"
	"github.com/oggyb/pagetracker/internal/tracker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepo is an in-memory page.Repository.
type fakeRepo struct {
	mu      sync.Mutex
	pages   map[string]*page.Page
	order   []string
	failRec bool
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{pages: make(map[string]*page.Page)}
}

func (r *fakeRepo) RecordAccess(ctx context.Context, p *page.Page) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.failRec {
		return errors.New("db down")
	}

	cur, ok := r.pages[p.URL]
	if !ok {
		cp := *p
		r.pages[p.URL] = &cp
		r.order = append(r.order, p.URL)
		return nil
	}
	cur.LastOutcome = p.LastOutcome
	cur.LastError = p.LastError
	cur.LastFetchedAt = p.LastFetchedAt
	if p.AccessCount > cur.AccessCount {
		cur.AccessCount = p.AccessCount
	}
	return nil
}

func (r *fakeRepo) GetByURL(ctx context.Context, url string) (*page.Page, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.pages[url]
	if !ok {
		return nil, page.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakeRepo) List(ctx context.Context, pageNum, limit int) ([]*page.Page, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*page.Page
	start := (pageNum - 1) * limit
	for i := start; i < len(r.order) && i < start+limit; i++ {
		cp := *r.pages[r.order[i]]
		out = append(out, &cp)
	}
	return out, int64(len(r.order)), nil
}

func (r *fakeRepo) ListURLs(ctx context.Context, limit, offset int) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if offset >= len(r.order) {
		return nil, nil
	}
	end := offset + limit
	if end > len(r.order) {
		end = len(r.order)
	}
	return append([]string(nil), r.order[offset:end]...), nil
}

func (r *fakeRepo) UpdateAccessCount(ctx context.Context, url string, count int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.pages[url]
	if !ok {
		return page.ErrNotFound
	}
	p.AccessCount = count
	return nil
}

type countingFetcher struct {
	calls int32
	err   error
}

func (f *countingFetcher) Fetch(ctx context.Context, id string) (string, error) {
	atomic.AddInt32(&f.calls, 1)
	if f.err != nil {
		return "", f.err
	}
	return "body:" + id, nil
}

func newTestService(t *testing.T, repo page.Repository, f tracker.Fetcher) (PageService, *tracker.CachedFetcher, *memory.Store) {
	t.Helper()

	store := memory.New()
	t.Cleanup(func() { _ = store.Close() })

	tr := tracker.New(store, f, tracker.WithTTL(time.Minute))
	return NewPageService(tr, f, repo, 2, 2, time.Second), tr, store
}

func TestPageService_GetRecordsOutcome(t *testing.T) {
	repo := newFakeRepo()
	f := &countingFetcher{}
	svc, _, _ := newTestService(t, repo, f)
	ctx := context.Background()
	u := "http://example.test/a"

	res, err := svc.Get(ctx, "  "+u+" ")
	require.NoError(t, err)
	assert.Equal(t, u, res.URL)
	assert.Equal(t, "body:"+u, res.Content)
	assert.False(t, res.Cached)
	assert.Equal(t, int64(1), res.AccessCount)

	p, err := repo.GetByURL(ctx, u)
	require.NoError(t, err)
	assert.Equal(t, page.OutcomeMiss, p.LastOutcome)

	res, err = svc.Get(ctx, u)
	require.NoError(t, err)
	assert.True(t, res.Cached)
	assert.Equal(t, int64(2), res.AccessCount)

	p, err = repo.GetByURL(ctx, u)
	require.NoError(t, err)
	assert.Equal(t, page.OutcomeHit, p.LastOutcome)
	assert.Equal(t, int64(2), p.AccessCount)
	assert.Equal(t, int32(1), atomic.LoadInt32(&f.calls))
}

func TestPageService_GetFailureIsRecordedAndCounted(t *testing.T) {
	repo := newFakeRepo()
	f := &countingFetcher{err: errors.New("no route to host")}
	svc, _, _ := newTestService(t, repo, f)
	ctx := context.Background()
	u := "http://example.test/down"

	_, err := svc.Get(ctx, u)
	require.Error(t, err)
	assert.ErrorIs(t, err, tracker.ErrFetchFailed)

	got, n, err := svc.AccessCount(ctx, u)
	require.NoError(t, err)
	assert.Equal(t, u, got)
	assert.Equal(t, int64(1), n)

	p, err := repo.GetByURL(ctx, u)
	require.NoError(t, err)
	assert.Equal(t, page.OutcomeFailed, p.LastOutcome)
	assert.Contains(t, p.LastError, "no route to host")
}

func TestPageService_InvalidURL(t *testing.T) {
	f := &countingFetcher{}
	svc, _, store := newTestService(t, nil, f)

	_, err := svc.Get(context.Background(), "not a url")
	assert.ErrorIs(t, err, page.ErrInvalidURL)

	_, _, err = svc.AccessCount(context.Background(), "")
	assert.ErrorIs(t, err, page.ErrEmptyURL)

	_, err = svc.GetTracked(context.Background(), "ftp://example.test")
	assert.ErrorIs(t, err, page.ErrInvalidURL)

	assert.Equal(t, int32(0), atomic.LoadInt32(&f.calls))
	_, err = store.Get(context.Background(), cache.AccessCount.Key("not a url"))
	assert.ErrorIs(t, err, cache.ErrNotFound)
}

func TestPageService_AccessCountReturnsNormalizedURL(t *testing.T) {
	svc, _, _ := newTestService(t, nil, &countingFetcher{})
	ctx := context.Background()
	u := "http://example.test/trim"

	_, err := svc.Get(ctx, u)
	require.NoError(t, err)

	got, n, err := svc.AccessCount(ctx, "\t"+u+"  ")
	require.NoError(t, err)
	assert.Equal(t, u, got)
	assert.Equal(t, int64(1), n)
}

func TestPageService_GetTracked(t *testing.T) {
	repo := newFakeRepo()
	svc, _, _ := newTestService(t, repo, &countingFetcher{})
	ctx := context.Background()
	u := "http://example.test/ledger"

	_, err := svc.GetTracked(ctx, u)
	assert.ErrorIs(t, err, page.ErrNotFound)

	_, err = svc.Get(ctx, u)
	require.NoError(t, err)
	_, err = svc.Get(ctx, u)
	require.NoError(t, err)

	p, err := svc.GetTracked(ctx, " "+u)
	require.NoError(t, err)
	assert.Equal(t, u, p.URL)
	assert.Equal(t, int64(2), p.AccessCount)
	assert.Equal(t, page.OutcomeHit, p.LastOutcome)
}

func TestPageService_LedgerFailureDoesNotFailGet(t *testing.T) {
	repo := newFakeRepo()
	repo.failRec = true
	svc, _, _ := newTestService(t, repo, &countingFetcher{})

	res, err := svc.Get(context.Background(), "http://example.test")
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.AccessCount)
}

func TestPageService_ListTrackedWithoutLedger(t *testing.T) {
	svc, _, _ := newTestService(t, nil, &countingFetcher{})

	_, _, err := svc.ListTracked(context.Background(), 1, 20)
	assert.ErrorIs(t, err, ErrLedgerDisabled)

	_, err = svc.GetTracked(context.Background(), "http://example.test")
	assert.ErrorIs(t, err, ErrLedgerDisabled)
	assert.NoError(t, svc.ProcessBatch(context.Background()))
}

func TestPageService_ProcessBatchSnapshotsCounters(t *testing.T) {
	repo := newFakeRepo()
	svc, tr, store := newTestService(t, repo, &countingFetcher{})
	ctx := context.Background()

	// Five pages so the snapshot walks three batches of size 2.
	var urls []string
	for i := 0; i < 5; i++ {
		u := "http://example.test/" + strconv.Itoa(i)
		urls = append(urls, u)
		_, err := svc.Get(ctx, u)
		require.NoError(t, err)
	}

	// Bump counters behind the ledger's back.
	for i, u := range urls {
		for j := 0; j < i; j++ {
			_, err := store.Incr(ctx, "count:"+u)
			require.NoError(t, err)
		}
	}

	require.NoError(t, svc.ProcessBatch(ctx))

	for _, u := range urls {
		want, err := tr.AccessCount(ctx, u)
		require.NoError(t, err)

		p, err := repo.GetByURL(ctx, u)
		require.NoError(t, err)
		assert.Equal(t, want, p.AccessCount, u)
	}

	// Snapshots only read counters.
	got, _, err := svc.ListTracked(ctx, 1, 10)
	require.NoError(t, err)
	sort.Slice(got, func(i, j int) bool { return got[i].URL < got[j].URL })
	assert.Equal(t, int64(1), got[0].AccessCount)
	assert.Equal(t, int64(5), got[4].AccessCount)
}
