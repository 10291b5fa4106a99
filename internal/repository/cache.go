package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"boxscore/internal/db"
	"boxscore/internal/domain"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"
)

var ErrNotFound = errors.New("cache record not found")

// CacheRepository keeps one record per sport in the sports_data table.
type CacheRepository struct {
	queries *db.Queries
	db      *sql.DB
	logger  zerolog.Logger
}

func NewCacheRepository(sqlDB *sql.DB, queries *db.Queries, logger zerolog.Logger) *CacheRepository {
	return &CacheRepository{
		queries: queries,
		db:      sqlDB,
		logger:  logger,
	}
}

func (r *CacheRepository) Get(ctx context.Context, key domain.Sport) (*domain.CacheRecord, error) {
	row, err := r.queries.GetSportsDataByName(ctx, string(key))
	if errors.Is(err, sql.ErrNoRows) {
		r.logger.Debug().Str("sport", string(key)).Msg("no cached record")
		return nil, ErrNotFound
	}
	if err != nil {
		r.logger.Error().Err(err).Str("sport", string(key)).Msg("failed to read cached record")
		return nil, fmt.Errorf("failed to read %s record: %w", key, err)
	}

	return toRecord(row), nil
}

// Upsert writes data for key, overwriting any existing record. The row id is
// only used on first insert; later writes keep the first id.
func (r *CacheRepository) Upsert(ctx context.Context, key domain.Sport, data []byte, storedAt time.Time) error {
	id, err := gonanoid.New()
	if err != nil {
		return fmt.Errorf("failed to generate nanoid: %w", err)
	}

	now := time.Now().UTC()
	err = r.queries.UpsertSportsData(ctx, db.UpsertSportsDataParams{
		ID:        id,
		Name:      string(key),
		Data:      data,
		StoredAt:  storedAt.UTC(),
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		r.logger.Error().Err(err).Str("sport", string(key)).Msg("failed to upsert cached record")
		return fmt.Errorf("failed to upsert %s record: %w", key, err)
	}

	r.logger.Debug().
		Str("sport", string(key)).
		Time("stored_at", storedAt).
		Int("bytes", len(data)).
		Msg("cached record upserted")
	return nil
}

// List returns every cached record ordered by key.
func (r *CacheRepository) List(ctx context.Context) ([]domain.CacheRecord, error) {
	rows, err := r.queries.ListSportsData(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.CacheRecord, len(rows))
	for i, row := range rows {
		result[i] = *toRecord(row)
	}
	return result, nil
}

func toRecord(row db.SportsDatum) *domain.CacheRecord {
	return &domain.CacheRecord{
		ID:       row.ID,
		Key:      domain.Sport(row.Name),
		Data:     row.Data,
		StoredAt: row.StoredAt,
	}
}
