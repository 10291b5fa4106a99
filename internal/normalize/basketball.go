package normalize

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"

	"boxscore/internal/constants"
	"boxscore/internal/domain"
	"boxscore/internal/feed"
)

var basketballLayout = periodLayout{
	regular: constants.BasketballRegularPeriods,
	extraLabel: func(period int) string {
		return "OT" + strconv.Itoa(period-constants.BasketballRegularPeriods)
	},
	summaryLabel: []string{"T"},
}

var basketballStatHeaders = []string{
	"Player", "MIN", "FG", "3PT", "FT", "OREB", "DREB", "AST", "STL", "BLK", "TO", "PF", "PTS",
}

func basketball(doc *feed.Document) (*domain.GameState, error) {
	g := doc.Basketball
	if g == nil {
		return nil, &domain.ShapeMismatchError{Sport: domain.SportNBA, Field: "basketball document"}
	}

	headers, homeScore, awayScore := basketballLayout.lineScore(
		g.HomePeriodScores, g.AwayPeriodScores,
		[]string{strconv.Itoa(g.HomeTotals.Points)},
		[]string{strconv.Itoa(g.AwayTotals.Points)},
	)

	return &domain.GameState{
		HomeTeam:          domain.TeamIdentity{Abbrev: g.HomeTeam.Abbreviation, Last: g.HomeTeam.LastName},
		AwayTeam:          domain.TeamIdentity{Abbrev: g.AwayTeam.Abbreviation, Last: g.AwayTeam.LastName},
		CurrentHomeScore:  g.HomeTotals.Points,
		CurrentAwayScore:  g.AwayTotals.Points,
		GameStatus:        basketballStatus(g.EventInformation.Status, len(g.HomePeriodScores)),
		ScoreHeaders:      headers,
		HomeScore:         homeScore,
		AwayScore:         awayScore,
		StatColumnHeaders: slices.Clone(basketballStatHeaders),
		HomeStats:         basketballRows(g.HomeStats),
		AwayStats:         basketballRows(g.AwayStats),
		HighlightPlayers:  topScorers(g.AwayStats, g.HomeStats, constants.BasketballHighlightCount),
	}, nil
}

func basketballStatus(raw string, periods int) string {
	if raw == "completed" {
		return "Final"
	}
	if periods > constants.BasketballRegularPeriods {
		return fmt.Sprintf("OT %d", periods-constants.BasketballRegularPeriods)
	}
	return fmt.Sprintf("%d Quarter", periods)
}

func basketballRows(players []feed.BasketballPlayer) [][]string {
	rows := make([][]string, 0, len(players))
	for _, p := range players {
		rows = append(rows, []string{
			shortName(p.FirstName, p.LastName),
			p.Minutes.String(),
			madeAttempted(p.FieldGoalsMade, p.FieldGoalsAttempted),
			madeAttempted(p.ThreePointFieldGoalsMade, p.ThreePointFieldGoalsAttempted),
			madeAttempted(p.FreeThrowsMade, p.FreeThrowsAttempted),
			p.OffensiveRebounds.String(),
			p.DefensiveRebounds.String(),
			p.Assists.String(),
			p.Steals.String(),
			p.Blocks.String(),
			p.Turnovers.String(),
			p.PersonalFouls.String(),
			p.Points.String(),
		})
	}
	return rows
}

// topScorers ranks the away roster followed by the home roster by points,
// keeping input order among equal scores.
func topScorers(away, home []feed.BasketballPlayer, n int) []domain.HighlightPlayer {
	combined := make([]feed.BasketballPlayer, 0, len(away)+len(home))
	combined = append(combined, away...)
	combined = append(combined, home...)

	slices.SortStableFunc(combined, func(a, b feed.BasketballPlayer) int {
		return cmp.Compare(b.Points.Float(), a.Points.Float())
	})

	n = min(n, len(combined))
	out := make([]domain.HighlightPlayer, 0, n)
	for _, p := range combined[:n] {
		out = append(out, domain.HighlightPlayer{
			Status:      p.TeamAbbreviation,
			DisplayName: p.DisplayName,
			StatLine:    fmt.Sprintf("%s P %s AST %s BLK %s MIN", p.Points, p.Assists, p.Blocks, p.Minutes),
		})
	}
	return out
}
