package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"boxscore/internal/domain"
	"boxscore/internal/metrics"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Primer seeds the cache for every known sport at startup.
type Primer struct {
	fetcher  Fetcher
	store    CacheStore
	notifier RefreshNotifier
	metrics  *metrics.Recorder
	logger   zerolog.Logger
	now      func() time.Time
}

func NewPrimer(fetcher Fetcher, store CacheStore, notifier RefreshNotifier, rec *metrics.Recorder, logger zerolog.Logger) *Primer {
	return &Primer{
		fetcher:  fetcher,
		store:    store,
		notifier: notifier,
		metrics:  rec,
		logger:   logger,
		now:      time.Now,
	}
}

// PrimeAll fetches and stores every known sport regardless of what is already
// cached. Sports are primed independently; the returned error joins the
// failures of the sports that could not be primed.
func (p *Primer) PrimeAll(ctx context.Context) error {
	var (
		mu   sync.Mutex
		errs []error
	)

	// Goroutines never return an error so one failing sport cannot cancel the rest.
	g := new(errgroup.Group)
	for _, sport := range domain.KnownSports() {
		g.Go(func() error {
			if err := p.prime(ctx, sport); err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	if len(errs) > 0 {
		p.logger.Warn().Int("failed", len(errs)).Msg("cache priming finished with failures")
		return errors.Join(errs...)
	}
	p.logger.Info().Int("sports", len(domain.KnownSports())).Msg("cache primed")
	return nil
}

func (p *Primer) prime(ctx context.Context, sport domain.Sport) error {
	doc, err := p.fetcher.Fetch(ctx, sport)
	if err != nil {
		p.metrics.Primed(string(sport), false)
		p.logger.Error().Err(err).Str("sport", string(sport)).Msg("failed to prime sport")
		return fmt.Errorf("prime %s: %w", sport, err)
	}

	storedAt := p.now()
	if err := p.store.Upsert(ctx, sport, doc.Body, storedAt); err != nil {
		p.metrics.Primed(string(sport), false)
		p.logger.Error().Err(err).Str("sport", string(sport)).Msg("failed to store primed sport")
		return fmt.Errorf("prime %s: %w", sport, err)
	}

	p.metrics.Primed(string(sport), true)
	if p.notifier != nil {
		if err := p.notifier.Refreshed(ctx, domain.CacheRecord{Key: sport, Data: doc.Body, StoredAt: storedAt}); err != nil {
			p.logger.Warn().Err(err).Str("sport", string(sport)).Msg("failed to publish primed feed")
		}
	}

	p.logger.Debug().Str("sport", string(sport)).Msg("sport primed")
	return nil
}
