package service_test

import (
	"context"
	"sync"
	"time"

	"boxscore/internal/domain"
	"boxscore/internal/feed"
	"boxscore/internal/feed/feedtest"
	"boxscore/internal/repository"
)

type fakeFetcher struct {
	mu    sync.Mutex
	calls map[domain.Sport]int
	errs  map[domain.Sport]error
	// inFlight, when set, holds every fetch until all expected callers arrive.
	inFlight *sync.WaitGroup
}

func newFakeFetcher() *fakeFetcher {
	return &fakeFetcher{calls: map[domain.Sport]int{}, errs: map[domain.Sport]error{}}
}

func (f *fakeFetcher) Fetch(ctx context.Context, sport domain.Sport) (*feed.Document, error) {
	f.mu.Lock()
	f.calls[sport]++
	err := f.errs[sport]
	inFlight := f.inFlight
	f.mu.Unlock()
	if inFlight != nil {
		inFlight.Done()
		inFlight.Wait()
	}
	if err != nil {
		return nil, err
	}
	return feed.Decode(sport, body(sport))
}

func (f *fakeFetcher) Calls(sport domain.Sport) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[sport]
}

func body(sport domain.Sport) []byte {
	if sport == domain.SportMLB {
		return feedtest.Baseball().Bytes()
	}
	return feedtest.Basketball().Bytes()
}

type fakeStore struct {
	mu      sync.Mutex
	records map[domain.Sport]domain.CacheRecord
	writes  int
}

func newFakeStore() *fakeStore {
	return &fakeStore{records: map[domain.Sport]domain.CacheRecord{}}
}

func (s *fakeStore) Get(ctx context.Context, key domain.Sport) (*domain.CacheRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.records[key]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &rec, nil
}

func (s *fakeStore) Upsert(ctx context.Context, key domain.Sport, data []byte, storedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writes++
	rec := s.records[key]
	if rec.ID == "" {
		rec.ID = "id-" + string(key)
	}
	rec.Key, rec.Data, rec.StoredAt = key, data, storedAt
	s.records[key] = rec
	return nil
}

func (s *fakeStore) Writes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes
}

type fakeNotifier struct {
	mu      sync.Mutex
	records []domain.CacheRecord
	err     error
}

func (n *fakeNotifier) Refreshed(ctx context.Context, record domain.CacheRecord) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.records = append(n.records, record)
	return n.err
}
