package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"boxscore/internal/constants"
	"boxscore/internal/domain"
	"boxscore/internal/feed"
	"boxscore/internal/metrics"
	"boxscore/internal/repository"

	"github.com/rs/zerolog"
)

// Fetcher reads a sport's current document from upstream.
type Fetcher interface {
	Fetch(ctx context.Context, sport domain.Sport) (*feed.Document, error)
}

// CacheStore holds at most one record per sport.
type CacheStore interface {
	Get(ctx context.Context, key domain.Sport) (*domain.CacheRecord, error)
	Upsert(ctx context.Context, key domain.Sport, data []byte, storedAt time.Time) error
}

// RefreshNotifier is told about every record written after an upstream fetch.
type RefreshNotifier interface {
	Refreshed(ctx context.Context, record domain.CacheRecord) error
}

// FreshnessService serves cached feed documents younger than the freshness
// window and refetches older ones.
//
// Concurrent stale reads of the same sport are not coordinated: each one
// fetches upstream and upserts, and the last write wins.
type FreshnessService struct {
	fetcher  Fetcher
	store    CacheStore
	notifier RefreshNotifier
	metrics  *metrics.Recorder
	logger   zerolog.Logger
	now      func() time.Time
}

func NewFreshnessService(fetcher Fetcher, store CacheStore, notifier RefreshNotifier, rec *metrics.Recorder, logger zerolog.Logger) *FreshnessService {
	return &FreshnessService{
		fetcher:  fetcher,
		store:    store,
		notifier: notifier,
		metrics:  rec,
		logger:   logger,
		now:      time.Now,
	}
}

// GetOrFetch returns the document for sportKey, refreshing it when the cached
// copy is older than constants.FreshnessWindow. A failed refresh leaves the
// cached record untouched.
func (s *FreshnessService) GetOrFetch(ctx context.Context, sportKey string) (*feed.Document, error) {
	sport, err := domain.ParseSport(sportKey)
	if err != nil {
		return nil, err
	}

	record, err := s.store.Get(ctx, sport)
	if errors.Is(err, repository.ErrNotFound) {
		s.logger.Error().Str("sport", sportKey).Msg("no cached record; was the cache primed?")
		return nil, fmt.Errorf("%w: %s", domain.ErrCacheMiss, sport)
	}
	if err != nil {
		return nil, err
	}

	now := s.now()
	age := record.Age(now)
	if age <= constants.FreshnessWindow {
		s.logger.Debug().Str("sport", sportKey).Dur("age", age).Msg("returning cached feed")
		s.metrics.CacheHit(sportKey)
		return feed.Decode(sport, record.Data)
	}

	s.logger.Info().Str("sport", sportKey).Dur("age", age).Msg("cached feed is stale, refreshing")

	doc, err := s.fetcher.Fetch(ctx, sport)
	if err != nil {
		s.metrics.UpstreamFailed(sportKey, failureKind(err))
		s.logger.Error().Err(err).Str("sport", sportKey).Msg("refresh failed, keeping stale record")
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrUpstreamFetch, sport, err)
	}

	if err := s.store.Upsert(ctx, sport, doc.Body, now); err != nil {
		return nil, fmt.Errorf("failed to store refreshed %s feed: %w", sport, err)
	}
	s.metrics.CacheRefreshed(sportKey)
	s.notify(ctx, domain.CacheRecord{ID: record.ID, Key: sport, Data: doc.Body, StoredAt: now})

	s.logger.Info().Str("sport", sportKey).Msg("feed refreshed")
	return doc, nil
}

func (s *FreshnessService) notify(ctx context.Context, record domain.CacheRecord) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Refreshed(ctx, record); err != nil {
		s.logger.Warn().Err(err).Str("sport", string(record.Key)).Msg("failed to publish refresh")
	}
}

func failureKind(err error) string {
	switch {
	case errors.Is(err, domain.ErrNetwork):
		return "network"
	case errors.Is(err, domain.ErrMalformedResponse):
		return "malformed"
	case errors.Is(err, domain.ErrShapeMismatch):
		return "shape"
	default:
		return "other"
	}
}
