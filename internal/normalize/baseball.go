package normalize

import (
	"errors"
	"fmt"
	"slices"
	"strconv"

	"boxscore/internal/constants"
	"boxscore/internal/domain"
	"boxscore/internal/feed"
)

var baseballLayout = periodLayout{
	regular:      constants.BaseballRegularPeriods,
	extraLabel:   strconv.Itoa,
	summaryLabel: []string{"R", "H", "E"},
}

var baseballStatHeaders = []string{"Hitters", "AB", "R", "H", "RBI", "HR", "BB", "AVG"}

func baseball(doc *feed.Document) (*domain.GameState, error) {
	g := doc.Baseball
	if g == nil {
		return nil, &domain.ShapeMismatchError{Sport: domain.SportMLB, Field: "baseball document"}
	}

	highlights, err := highlightPitchers(g.HomePitchers, g.AwayPitchers)
	if err != nil {
		return nil, err
	}

	headers, homeScore, awayScore := baseballLayout.lineScore(
		g.HomePeriodScores, g.AwayPeriodScores,
		batterSummary(g.HomeBatterTotals),
		batterSummary(g.AwayBatterTotals),
	)

	return &domain.GameState{
		HomeTeam:          domain.TeamIdentity{Abbrev: g.HomeTeam.Abbreviation, Last: g.HomeTeam.LastName},
		AwayTeam:          domain.TeamIdentity{Abbrev: g.AwayTeam.Abbreviation, Last: g.AwayTeam.LastName},
		CurrentHomeScore:  g.HomeBatterTotals.Runs,
		CurrentAwayScore:  g.AwayBatterTotals.Runs,
		GameStatus:        baseballStatus(g.EventInformation.Status, len(g.HomePeriodScores)),
		ScoreHeaders:      headers,
		HomeScore:         homeScore,
		AwayScore:         awayScore,
		StatColumnHeaders: slices.Clone(baseballStatHeaders),
		HomeStats:         batterRows(g.HomeBatters),
		AwayStats:         batterRows(g.AwayBatters),
		HighlightPlayers:  highlights,
	}, nil
}

func baseballStatus(raw string, innings int) string {
	if raw == "completed" {
		return "Final"
	}
	return fmt.Sprintf("%dth Inning", innings)
}

func batterSummary(t feed.BatterTotals) []string {
	return []string{strconv.Itoa(t.Runs), t.Hits.String(), t.ExtraBaseHits.String()}
}

func batterRows(batters []feed.Batter) [][]string {
	rows := make([][]string, 0, len(batters))
	for _, b := range batters {
		rows = append(rows, []string{
			shortName(b.FirstName, b.LastName),
			b.AtBats.String(),
			b.Runs.String(),
			b.Hits.String(),
			b.RBI.String(),
			b.HomeRuns.String(),
			b.Walks.String(),
			b.Avg.String(),
		})
	}
	return rows
}

// highlightPitchers returns [home, away]. The team with a winning pitcher shows
// that pitcher; the other team shows the last pitcher in its own list, which
// is not necessarily the one charged with the loss.
func highlightPitchers(home, away []feed.Pitcher) ([]domain.HighlightPlayer, error) {
	if len(home) == 0 {
		return nil, &domain.ShapeMismatchError{Sport: domain.SportMLB, Field: "home_pitchers", Err: errNoPitchers}
	}
	if len(away) == 0 {
		return nil, &domain.ShapeMismatchError{Sport: domain.SportMLB, Field: "away_pitchers", Err: errNoPitchers}
	}

	homePitcher, awayPitcher := home[len(home)-1], away[len(away)-1]
	if i := slices.IndexFunc(home, isWinner); i >= 0 {
		homePitcher = home[i]
	} else if i := slices.IndexFunc(away, isWinner); i >= 0 {
		awayPitcher = away[i]
	}

	return []domain.HighlightPlayer{pitcherLine(homePitcher), pitcherLine(awayPitcher)}, nil
}

var errNoPitchers = errors.New("no pitchers listed")

func isWinner(p feed.Pitcher) bool {
	return p.Win
}

func pitcherLine(p feed.Pitcher) domain.HighlightPlayer {
	status := "LOSS"
	if p.Win {
		status = "WIN"
	}
	return domain.HighlightPlayer{
		Status:      status,
		DisplayName: p.DisplayName,
		StatLine:    fmt.Sprintf("%s IP, %s ER %s K, %s BB", p.InningsPitched, p.EarnedRuns, p.StrikeOuts, p.Walks),
	}
}
