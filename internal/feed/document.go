package feed

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strconv"

	"boxscore/internal/domain"
)

// Document is one sport's upstream feed, decoded into the schema for that sport.
// Exactly one of Basketball or Baseball is set, matching Sport.
type Document struct {
	Sport      domain.Sport
	Body       []byte
	Basketball *Basketball
	Baseball   *Baseball
}

// Stat keeps a feed value as the literal JSON text it arrived with, so numbers
// like 6.1 or strings like ".300" render exactly as the feed wrote them.
// Only numbers and strings are accepted.
type Stat string

func (s *Stat) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return statTypeError("empty")
	}
	switch c := b[0]; {
	case c == '"':
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		*s = Stat(str)
		return nil
	case c == '-' || (c >= '0' && c <= '9'):
		*s = Stat(b)
		return nil
	case c == '{':
		return statTypeError("object")
	case c == '[':
		return statTypeError("array")
	case c == 'n':
		return statTypeError("null")
	default:
		return statTypeError("bool")
	}
}

// statTypeError reports a non-scalar stat the way encoding/json reports a
// mistyped field, so Decode turns it into a shape mismatch.
func statTypeError(value string) error {
	return &json.UnmarshalTypeError{Value: value, Type: reflect.TypeFor[Stat]()}
}

func (s Stat) String() string {
	return string(s)
}

// Float parses the stat as a number; non-numeric stats sort as zero.
func (s Stat) Float() float64 {
	f, err := strconv.ParseFloat(string(s), 64)
	if err != nil {
		return 0
	}
	return f
}

type Team struct {
	Abbreviation string `json:"abbreviation"`
	LastName     string `json:"last_name"`
}

type EventInformation struct {
	Status string `json:"status"`
}

type Basketball struct {
	HomeTeam         Team               `json:"home_team"`
	AwayTeam         Team               `json:"away_team"`
	EventInformation EventInformation   `json:"event_information"`
	HomePeriodScores []Stat             `json:"home_period_scores"`
	AwayPeriodScores []Stat             `json:"away_period_scores"`
	HomeTotals       BasketballTotals   `json:"home_totals"`
	AwayTotals       BasketballTotals   `json:"away_totals"`
	HomeStats        []BasketballPlayer `json:"home_stats"`
	AwayStats        []BasketballPlayer `json:"away_stats"`
}

type BasketballTotals struct {
	Points int `json:"points"`
}

type BasketballPlayer struct {
	FirstName                     string `json:"first_name"`
	LastName                      string `json:"last_name"`
	DisplayName                   string `json:"display_name"`
	TeamAbbreviation              string `json:"team_abbreviation"`
	Minutes                       Stat   `json:"minutes"`
	FieldGoalsMade                Stat   `json:"field_goals_made"`
	FieldGoalsAttempted           Stat   `json:"field_goals_attempted"`
	ThreePointFieldGoalsMade      Stat   `json:"three_point_field_goals_made"`
	ThreePointFieldGoalsAttempted Stat   `json:"three_point_field_goals_attempted"`
	FreeThrowsMade                Stat   `json:"free_throws_made"`
	FreeThrowsAttempted           Stat   `json:"free_throws_attempted"`
	OffensiveRebounds             Stat   `json:"offensive_rebounds"`
	DefensiveRebounds             Stat   `json:"defensive_rebounds"`
	Assists                       Stat   `json:"assists"`
	Steals                        Stat   `json:"steals"`
	Blocks                        Stat   `json:"blocks"`
	Turnovers                     Stat   `json:"turnovers"`
	PersonalFouls                 Stat   `json:"personal_fouls"`
	Points                        Stat   `json:"points"`
}

type Baseball struct {
	HomeTeam         Team             `json:"home_team"`
	AwayTeam         Team             `json:"away_team"`
	EventInformation EventInformation `json:"event_information"`
	HomePeriodScores []Stat           `json:"home_period_scores"`
	AwayPeriodScores []Stat           `json:"away_period_scores"`
	HomeBatterTotals BatterTotals     `json:"home_batter_totals"`
	AwayBatterTotals BatterTotals     `json:"away_batter_totals"`
	HomeBatters      []Batter         `json:"home_batters"`
	AwayBatters      []Batter         `json:"away_batters"`
	HomePitchers     []Pitcher        `json:"home_pitchers"`
	AwayPitchers     []Pitcher        `json:"away_pitchers"`
}

type BatterTotals struct {
	Runs          int  `json:"runs"`
	Hits          Stat `json:"hits"`
	ExtraBaseHits Stat `json:"extra_base_hits"`
}

type Batter struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	AtBats    Stat   `json:"at_bats"`
	Runs      Stat   `json:"runs"`
	Hits      Stat   `json:"hits"`
	RBI       Stat   `json:"rbi"`
	HomeRuns  Stat   `json:"home_runs"`
	Walks     Stat   `json:"walks"`
	Avg       Stat   `json:"avg"`
}

type Pitcher struct {
	Win            bool   `json:"win"`
	DisplayName    string `json:"display_name"`
	InningsPitched Stat   `json:"innings_pitched"`
	EarnedRuns     Stat   `json:"earned_runs"`
	StrikeOuts     Stat   `json:"strike_outs"`
	Walks          Stat   `json:"walks"`
}
