// Package normalize turns per-sport feed documents into the generic
// domain.GameState consumed by renderers.
package normalize

import (
	"fmt"

	"boxscore/internal/domain"
	"boxscore/internal/feed"
)

type strategy func(doc *feed.Document) (*domain.GameState, error)

var strategies = map[domain.Sport]strategy{
	domain.SportNBA: basketball,
	domain.SportMLB: baseball,
}

// Supports reports whether a strategy is registered for sport.
func Supports(sport domain.Sport) bool {
	_, ok := strategies[sport]
	return ok
}

// Normalize maps doc into a GameState using the strategy for sport. It never
// mutates doc and never returns a partially built state.
func Normalize(sport domain.Sport, doc *feed.Document) (*domain.GameState, error) {
	fn, ok := strategies[sport]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedSport, sport)
	}
	if doc == nil {
		return nil, &domain.ShapeMismatchError{Sport: sport, Field: "document"}
	}

	state, err := fn(doc)
	if err != nil {
		return nil, err
	}
	if err := state.Validate(); err != nil {
		return nil, &domain.ShapeMismatchError{Sport: sport, Field: "layout", Err: err}
	}
	return state, nil
}

// NormalizeRaw decodes body with the sport's schema and normalizes it.
func NormalizeRaw(sport domain.Sport, body []byte) (*domain.GameState, error) {
	if !Supports(sport) {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedSport, sport)
	}
	doc, err := feed.Decode(sport, body)
	if err != nil {
		return nil, err
	}
	return Normalize(sport, doc)
}
