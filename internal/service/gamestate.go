package service

import (
	"context"
	"fmt"

	"boxscore/internal/constants"
	"boxscore/internal/domain"
	"boxscore/internal/normalize"

	"github.com/rs/zerolog"
)

// GameStateService is the read path used by the transport layer.
type GameStateService struct {
	freshness *FreshnessService
	logger    zerolog.Logger
}

func NewGameStateService(freshness *FreshnessService, logger zerolog.Logger) *GameStateService {
	return &GameStateService{freshness: freshness, logger: logger}
}

// GetRawFeed returns the upstream document body for sportKey, as cached or refreshed.
func (s *GameStateService) GetRawFeed(ctx context.Context, sportKey string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	doc, err := s.freshness.GetOrFetch(ctx, sportKey)
	if err != nil {
		return nil, err
	}
	return doc.Body, nil
}

// GetGameState returns the normalized state for sportKey.
func (s *GameStateService) GetGameState(ctx context.Context, sportKey string) (*domain.GameState, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	doc, err := s.freshness.GetOrFetch(ctx, sportKey)
	if err != nil {
		return nil, err
	}

	state, err := normalize.Normalize(doc.Sport, doc)
	if err != nil {
		s.logger.Error().Err(err).Str("sport", sportKey).Msg("failed to normalize feed")
		return nil, fmt.Errorf("normalize %s: %w", sportKey, err)
	}

	s.logger.Debug().
		Str("sport", sportKey).
		Str("status", state.GameStatus).
		Int("home", state.CurrentHomeScore).
		Int("away", state.CurrentAwayScore).
		Msg("game state built")
	return state, nil
}
