package domain

import (
	"fmt"
	"time"
)

// CacheRecord is the stored copy of one sport's upstream document.
type CacheRecord struct {
	ID       string // nanoid
	Key      Sport
	Data     []byte // raw upstream body, opaque to the store
	StoredAt time.Time
}

// Age reports how old the record is relative to now.
func (r *CacheRecord) Age(now time.Time) time.Duration {
	return now.Sub(r.StoredAt)
}

type TeamIdentity struct {
	Abbrev string `json:"abbrev"`
	Last   string `json:"last"`
}

type HighlightPlayer struct {
	Status      string `json:"status"`
	DisplayName string `json:"displayName"`
	StatLine    string `json:"statLine"`
}

// GameState is the sport-agnostic shape handed to renderers.
type GameState struct {
	HomeTeam          TeamIdentity      `json:"homeTeam"`
	AwayTeam          TeamIdentity      `json:"awayTeam"`
	CurrentHomeScore  int               `json:"currentHomeScore"`
	CurrentAwayScore  int               `json:"currentAwayScore"`
	GameStatus        string            `json:"gameStatus"`
	ScoreHeaders      []string          `json:"scoreHeaders"`
	HomeScore         []string          `json:"homeScore"`
	AwayScore         []string          `json:"awayScore"`
	StatColumnHeaders []string          `json:"statColumnHeaders"`
	HomeStats         [][]string        `json:"homeStats"`
	AwayStats         [][]string        `json:"awayStats"`
	HighlightPlayers  []HighlightPlayer `json:"highlightPlayers"`
}

// Validate checks that every score and stat row lines up with its headers.
func (g *GameState) Validate() error {
	if len(g.HomeScore) != len(g.ScoreHeaders) {
		return fmt.Errorf("home score has %d cells, headers have %d", len(g.HomeScore), len(g.ScoreHeaders))
	}
	if len(g.AwayScore) != len(g.ScoreHeaders) {
		return fmt.Errorf("away score has %d cells, headers have %d", len(g.AwayScore), len(g.ScoreHeaders))
	}
	for i, row := range g.HomeStats {
		if len(row) != len(g.StatColumnHeaders) {
			return fmt.Errorf("home stat row %d has %d cells, headers have %d", i, len(row), len(g.StatColumnHeaders))
		}
	}
	for i, row := range g.AwayStats {
		if len(row) != len(g.StatColumnHeaders) {
			return fmt.Errorf("away stat row %d has %d cells, headers have %d", i, len(row), len(g.StatColumnHeaders))
		}
	}
	return nil
}
