package normalize_test

import (
	"errors"
	"testing"

	"boxscore/internal/domain"
	"boxscore/internal/feed"
	"boxscore/internal/feed/feedtest"
	"boxscore/internal/normalize"

	. "github.com/smartystreets/goconvey/convey"
)

func decode(sport domain.Sport, d feedtest.Doc) *feed.Document {
	doc, err := feed.Decode(sport, d.Bytes())
	if err != nil {
		panic(err)
	}
	return doc
}

func shouldLineUp(state *domain.GameState) {
	So(state.HomeScore, ShouldHaveLength, len(state.ScoreHeaders))
	So(state.AwayScore, ShouldHaveLength, len(state.ScoreHeaders))
	for _, row := range append(state.HomeStats, state.AwayStats...) {
		So(row, ShouldHaveLength, len(state.StatColumnHeaders))
	}
}

func TestNormalizeBasketball(t *testing.T) {
	Convey("Given a basketball game after three quarters", t, func() {
		state, err := normalize.Normalize(domain.SportNBA, decode(domain.SportNBA, feedtest.Basketball()))
		So(err, ShouldBeNil)

		Convey("Then teams and totals are copied", func() {
			So(state.HomeTeam, ShouldResemble, domain.TeamIdentity{Abbrev: "OKC", Last: "Thunder"})
			So(state.AwayTeam, ShouldResemble, domain.TeamIdentity{Abbrev: "MIA", Last: "Heat"})
			So(state.CurrentHomeScore, ShouldEqual, 60)
			So(state.CurrentAwayScore, ShouldEqual, 65)
		})

		Convey("Then the linescore pads the missing quarter", func() {
			So(state.ScoreHeaders, ShouldResemble, []string{"1", "2", "3", "4", "T"})
			So(state.HomeScore, ShouldResemble, []string{"20", "22", "18", "-", "60"})
			So(state.AwayScore, ShouldResemble, []string{"25", "19", "21", "-", "65"})
		})

		Convey("Then the status names the current quarter", func() {
			So(state.GameStatus, ShouldEqual, "3 Quarter")
		})

		Convey("Then stat rows follow the column headers", func() {
			So(state.StatColumnHeaders, ShouldResemble, []string{
				"Player", "MIN", "FG", "3PT", "FT", "OREB", "DREB", "AST", "STL", "BLK", "TO", "PF", "PTS",
			})
			So(state.HomeStats, ShouldHaveLength, 2)
			So(state.AwayStats[0], ShouldResemble, []string{
				"L.James", "33.2", "5-10", "1-3", "2-2", "1", "4", "6", "1", "0", "2", "3", "30",
			})
			shouldLineUp(state)
		})

		Convey("Then the top three scorers are highlighted, away first on ties", func() {
			So(state.HighlightPlayers, ShouldResemble, []domain.HighlightPlayer{
				{Status: "MIA", DisplayName: "LeBron James", StatLine: "30 P 6 AST 0 BLK 33.2 MIN"},
				{Status: "OKC", DisplayName: "Russell Westbrook", StatLine: "30 P 6 AST 0 BLK 33.2 MIN"},
				{Status: "OKC", DisplayName: "Kevin Durant", StatLine: "25 P 6 AST 0 BLK 33.2 MIN"},
			})
		})
	})

	Convey("Given basketball games at different stages", t, func() {
		Convey("When four quarters are recorded", func() {
			d := feedtest.Basketball().
				Set("home_period_scores", []any{20, 22, 18, 30}).
				Set("away_period_scores", []any{25, 19, 21, 20})
			state, err := normalize.Normalize(domain.SportNBA, decode(domain.SportNBA, d))

			Convey("Then the status is the fourth quarter with no placeholders", func() {
				So(err, ShouldBeNil)
				So(state.GameStatus, ShouldEqual, "4 Quarter")
				So(state.HomeScore, ShouldResemble, []string{"20", "22", "18", "30", "60"})
			})
		})

		Convey("When both teams are level after three quarters", func() {
			d := feedtest.Basketball().
				Set("away_period_scores", []any{19, 21, 20}).
				Set("away_totals.points", 60)
			state, err := normalize.Normalize(domain.SportNBA, decode(domain.SportNBA, d))

			Convey("Then both rows pad the fourth quarter before the total", func() {
				So(err, ShouldBeNil)
				So(state.GameStatus, ShouldEqual, "3 Quarter")
				So(state.HomeScore, ShouldResemble, []string{"20", "22", "18", "-", "60"})
				So(state.AwayScore, ShouldResemble, []string{"19", "21", "20", "-", "60"})
				So(state.CurrentHomeScore, ShouldEqual, 60)
				So(state.CurrentAwayScore, ShouldEqual, 60)
			})
		})

		Convey("When a fifth period is recorded", func() {
			d := feedtest.Basketball().
				Set("home_period_scores", []any{25, 25, 25, 25, 10}).
				Set("away_period_scores", []any{25, 25, 25, 25})
			state, err := normalize.Normalize(domain.SportNBA, decode(domain.SportNBA, d))

			Convey("Then the status is overtime and the headers grow", func() {
				So(err, ShouldBeNil)
				So(state.GameStatus, ShouldEqual, "OT 1")
				So(state.ScoreHeaders, ShouldResemble, []string{"1", "2", "3", "4", "OT1", "T"})
				So(state.HomeScore, ShouldResemble, []string{"25", "25", "25", "25", "10", "60"})
				So(state.AwayScore, ShouldResemble, []string{"25", "25", "25", "25", "-", "65"})
				shouldLineUp(state)
			})
		})

		Convey("When the game is completed", func() {
			d := feedtest.Basketball().Set("event_information.status", "completed")
			state, err := normalize.Normalize(domain.SportNBA, decode(domain.SportNBA, d))

			Convey("Then the status is Final", func() {
				So(err, ShouldBeNil)
				So(state.GameStatus, ShouldEqual, "Final")
			})
		})

		Convey("When no period has been played", func() {
			d := feedtest.Basketball().
				Set("home_period_scores", []any{}).
				Set("away_period_scores", []any{})
			state, err := normalize.Normalize(domain.SportNBA, decode(domain.SportNBA, d))

			Convey("Then every period is a placeholder", func() {
				So(err, ShouldBeNil)
				So(state.GameStatus, ShouldEqual, "0 Quarter")
				So(state.HomeScore, ShouldResemble, []string{"-", "-", "-", "-", "60"})
			})
		})

		Convey("When fewer than three players are listed", func() {
			d := feedtest.Basketball().
				Set("home_stats", []any{}).
				Set("away_stats", []any{feedtest.BasketballPlayer("Chris", "Bosh", "MIA", 12)})
			state, err := normalize.Normalize(domain.SportNBA, decode(domain.SportNBA, d))

			Convey("Then only the listed players are highlighted", func() {
				So(err, ShouldBeNil)
				So(state.HighlightPlayers, ShouldHaveLength, 1)
				So(state.HighlightPlayers[0].DisplayName, ShouldEqual, "Chris Bosh")
				So(state.HomeStats, ShouldBeEmpty)
			})
		})
	})
}

func TestNormalizeBaseball(t *testing.T) {
	Convey("Given a baseball game in the fifth inning", t, func() {
		state, err := normalize.Normalize(domain.SportMLB, decode(domain.SportMLB, feedtest.Baseball()))
		So(err, ShouldBeNil)

		Convey("Then the linescore pads to nine innings before R H E", func() {
			So(state.ScoreHeaders, ShouldResemble, []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "R", "H", "E"})
			So(state.HomeScore, ShouldResemble, []string{"0", "1", "0", "2", "0", "-", "-", "-", "-", "3", "7", "2"})
			So(state.AwayScore, ShouldResemble, []string{"1", "0", "0", "0", "0", "-", "-", "-", "-", "1", "4", "1"})
		})

		Convey("Then the runs are the current score", func() {
			So(state.CurrentHomeScore, ShouldEqual, 3)
			So(state.CurrentAwayScore, ShouldEqual, 1)
			So(state.GameStatus, ShouldEqual, "5th Inning")
		})

		Convey("Then hitter rows follow the column headers", func() {
			So(state.StatColumnHeaders, ShouldResemble, []string{"Hitters", "AB", "R", "H", "RBI", "HR", "BB", "AVG"})
			So(state.HomeStats[0], ShouldResemble, []string{"M.Trout", "3", "1", "1", "0", "0", "1", ".300"})
			So(state.AwayStats, ShouldHaveLength, 1)
			shouldLineUp(state)
		})

		Convey("Then the home winner and the last away pitcher are highlighted", func() {
			So(state.HighlightPlayers, ShouldResemble, []domain.HighlightPlayer{
				{Status: "WIN", DisplayName: "Huston Street", StatLine: "2 IP, 1 ER 5 K, 2 BB"},
				{Status: "LOSS", DisplayName: "Fernando Rodney", StatLine: "1 IP, 1 ER 5 K, 2 BB"},
			})
		})
	})

	Convey("Given baseball pitching staffs", t, func() {
		Convey("When only the away team has a winner", func() {
			d := feedtest.Baseball().
				Set("home_pitchers", []any{
					feedtest.Pitcher("Jered Weaver", false, 6.1),
					feedtest.Pitcher("Huston Street", false, 2),
				}).
				Set("away_pitchers", []any{
					feedtest.Pitcher("Felix Hernandez", true, 7),
					feedtest.Pitcher("Fernando Rodney", false, 1),
				})
			state, err := normalize.Normalize(domain.SportMLB, decode(domain.SportMLB, d))

			Convey("Then the away winner is paired with the last home pitcher", func() {
				So(err, ShouldBeNil)
				So(state.HighlightPlayers[0].DisplayName, ShouldEqual, "Huston Street")
				So(state.HighlightPlayers[0].Status, ShouldEqual, "LOSS")
				So(state.HighlightPlayers[1].DisplayName, ShouldEqual, "Felix Hernandez")
				So(state.HighlightPlayers[1].Status, ShouldEqual, "WIN")
				So(state.HighlightPlayers[0].StatLine, ShouldEqual, "2 IP, 1 ER 5 K, 2 BB")
			})
		})

		Convey("When no pitcher is marked as the winner", func() {
			d := feedtest.Baseball().
				Set("home_pitchers", []any{feedtest.Pitcher("Jered Weaver", false, 6.1)}).
				Set("away_pitchers", []any{feedtest.Pitcher("Felix Hernandez", false, 7)})
			state, err := normalize.Normalize(domain.SportMLB, decode(domain.SportMLB, d))

			Convey("Then each team shows its last pitcher", func() {
				So(err, ShouldBeNil)
				So(state.HighlightPlayers[0].DisplayName, ShouldEqual, "Jered Weaver")
				So(state.HighlightPlayers[0].StatLine, ShouldEqual, "6.1 IP, 1 ER 5 K, 2 BB")
				So(state.HighlightPlayers[1].DisplayName, ShouldEqual, "Felix Hernandez")
			})
		})

		Convey("When a team lists no pitchers", func() {
			d := feedtest.Baseball().Set("home_pitchers", []any{})
			_, err := normalize.Normalize(domain.SportMLB, decode(domain.SportMLB, d))

			Convey("Then it is a shape mismatch", func() {
				var shape *domain.ShapeMismatchError
				So(errors.As(err, &shape), ShouldBeTrue)
				So(shape.Field, ShouldEqual, "home_pitchers")
			})
		})
	})

	Convey("Given baseball games at different stages", t, func() {
		Convey("When six innings are recorded", func() {
			d := feedtest.Baseball().
				Set("home_period_scores", []any{0, 1, 0, 2, 0, 0}).
				Set("away_period_scores", []any{1, 0, 0, 0, 0, 0})
			state, err := normalize.Normalize(domain.SportMLB, decode(domain.SportMLB, d))

			Convey("Then the status names the sixth inning", func() {
				So(err, ShouldBeNil)
				So(state.GameStatus, ShouldEqual, "6th Inning")
			})
		})

		Convey("When the game goes to extra innings", func() {
			d := feedtest.Baseball().
				Set("home_period_scores", []any{0, 0, 0, 0, 0, 0, 0, 1, 0, 0}).
				Set("away_period_scores", []any{0, 0, 0, 0, 0, 0, 1, 0, 0, 1})
			state, err := normalize.Normalize(domain.SportMLB, decode(domain.SportMLB, d))

			Convey("Then the tenth inning gets its own header", func() {
				So(err, ShouldBeNil)
				So(state.ScoreHeaders, ShouldHaveLength, 13)
				So(state.ScoreHeaders[9], ShouldEqual, "10")
				So(state.GameStatus, ShouldEqual, "10th Inning")
				shouldLineUp(state)
			})
		})

		Convey("When the game is completed", func() {
			d := feedtest.Baseball().Set("event_information.status", "completed")
			state, err := normalize.Normalize(domain.SportMLB, decode(domain.SportMLB, d))

			Convey("Then the status is Final", func() {
				So(err, ShouldBeNil)
				So(state.GameStatus, ShouldEqual, "Final")
			})
		})
	})
}

func TestNormalizeContract(t *testing.T) {
	Convey("Given decoded documents", t, func() {
		nba := decode(domain.SportNBA, feedtest.Basketball())
		mlb := decode(domain.SportMLB, feedtest.Baseball())

		Convey("When normalizing the same document twice", func() {
			first, err1 := normalize.Normalize(domain.SportNBA, nba)
			second, err2 := normalize.Normalize(domain.SportNBA, nba)

			Convey("Then the results are identical", func() {
				So(err1, ShouldBeNil)
				So(err2, ShouldBeNil)
				So(first, ShouldResemble, second)
			})
		})

		Convey("When normalizing", func() {
			pristineNBA := decode(domain.SportNBA, feedtest.Basketball())
			pristineMLB := decode(domain.SportMLB, feedtest.Baseball())
			_, _ = normalize.Normalize(domain.SportNBA, nba)
			_, _ = normalize.Normalize(domain.SportMLB, mlb)

			Convey("Then the input documents are unchanged", func() {
				So(nba, ShouldResemble, pristineNBA)
				So(mlb, ShouldResemble, pristineMLB)
			})
		})

		Convey("When the sport has no strategy", func() {
			_, err := normalize.Normalize(domain.Sport("nhl"), nba)

			Convey("Then it is unsupported", func() {
				So(errors.Is(err, domain.ErrUnsupportedSport), ShouldBeTrue)
				So(normalize.Supports(domain.Sport("nhl")), ShouldBeFalse)
				So(normalize.Supports(domain.SportMLB), ShouldBeTrue)
			})
		})

		Convey("When the document does not match the sport", func() {
			_, err := normalize.Normalize(domain.SportNBA, mlb)

			Convey("Then it is a shape mismatch", func() {
				So(errors.Is(err, domain.ErrShapeMismatch), ShouldBeTrue)
			})
		})

		Convey("When the document is nil", func() {
			_, err := normalize.Normalize(domain.SportMLB, nil)

			Convey("Then it is a shape mismatch", func() {
				So(errors.Is(err, domain.ErrShapeMismatch), ShouldBeTrue)
			})
		})
	})

	Convey("Given raw bodies", t, func() {
		Convey("When the body is complete", func() {
			state, err := normalize.NormalizeRaw(domain.SportMLB, feedtest.Baseball().Bytes())

			Convey("Then it normalizes", func() {
				So(err, ShouldBeNil)
				So(state.HomeTeam.Last, ShouldEqual, "Angels")
			})
		})

		Convey("When a period score is null", func() {
			state, err := normalize.NormalizeRaw(domain.SportNBA, feedtest.Basketball().Set("home_period_scores", []any{20, nil, 18}).Bytes())

			Convey("Then no state is built with an empty cell", func() {
				So(state, ShouldBeNil)
				So(errors.Is(err, domain.ErrShapeMismatch), ShouldBeTrue)
			})
		})

		Convey("When a team is missing", func() {
			_, err := normalize.NormalizeRaw(domain.SportNBA, feedtest.Basketball().Delete("away_team").Bytes())

			Convey("Then no state is returned and the error is a shape mismatch", func() {
				So(errors.Is(err, domain.ErrShapeMismatch), ShouldBeTrue)
			})
		})
	})
}
