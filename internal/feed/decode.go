package feed

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"boxscore/internal/domain"

	"github.com/tidwall/gjson"
)

type fieldKind int

const (
	numberKind fieldKind = iota
	stringKind
	arrayKind
	scalarKind // number or string
)

type field struct {
	path string
	kind fieldKind
}

// rosterField requires every element of the array at path to carry keys.
type rosterField struct {
	path string
	keys []field
}

type schema struct {
	fields  []field
	rosters []rosterField
	// numbers lists arrays whose every element must be a number.
	numbers []string
}

var teamFields = []field{
	{"home_team.abbreviation", stringKind},
	{"home_team.last_name", stringKind},
	{"away_team.abbreviation", stringKind},
	{"away_team.last_name", stringKind},
	{"event_information.status", stringKind},
	{"home_period_scores", arrayKind},
	{"away_period_scores", arrayKind},
}

var basketballPlayerKeys = []field{
	{"first_name", stringKind},
	{"last_name", stringKind},
	{"display_name", stringKind},
	{"team_abbreviation", stringKind},
	{"minutes", scalarKind},
	{"field_goals_made", scalarKind},
	{"field_goals_attempted", scalarKind},
	{"three_point_field_goals_made", scalarKind},
	{"three_point_field_goals_attempted", scalarKind},
	{"free_throws_made", scalarKind},
	{"free_throws_attempted", scalarKind},
	{"offensive_rebounds", scalarKind},
	{"defensive_rebounds", scalarKind},
	{"assists", scalarKind},
	{"steals", scalarKind},
	{"blocks", scalarKind},
	{"turnovers", scalarKind},
	{"personal_fouls", scalarKind},
	{"points", numberKind},
}

var batterKeys = []field{
	{"first_name", stringKind},
	{"last_name", stringKind},
	{"at_bats", scalarKind},
	{"runs", scalarKind},
	{"hits", scalarKind},
	{"rbi", scalarKind},
	{"home_runs", scalarKind},
	{"walks", scalarKind},
	{"avg", scalarKind},
}

var pitcherKeys = []field{
	{"display_name", stringKind},
	{"innings_pitched", scalarKind},
	{"earned_runs", scalarKind},
	{"strike_outs", scalarKind},
	{"walks", scalarKind},
}

var periodScores = []string{"home_period_scores", "away_period_scores"}

var schemas = map[domain.Sport]schema{
	domain.SportNBA: {
		fields: append(append([]field{}, teamFields...),
			field{"home_totals.points", numberKind},
			field{"away_totals.points", numberKind},
			field{"home_stats", arrayKind},
			field{"away_stats", arrayKind},
		),
		rosters: []rosterField{
			{"home_stats", basketballPlayerKeys},
			{"away_stats", basketballPlayerKeys},
		},
		numbers: periodScores,
	},
	domain.SportMLB: {
		fields: append(append([]field{}, teamFields...),
			field{"home_batter_totals.runs", numberKind},
			field{"home_batter_totals.hits", scalarKind},
			field{"home_batter_totals.extra_base_hits", scalarKind},
			field{"away_batter_totals.runs", numberKind},
			field{"away_batter_totals.hits", scalarKind},
			field{"away_batter_totals.extra_base_hits", scalarKind},
			field{"home_batters", arrayKind},
			field{"away_batters", arrayKind},
			field{"home_pitchers", arrayKind},
			field{"away_pitchers", arrayKind},
		),
		rosters: []rosterField{
			{"home_batters", batterKeys},
			{"away_batters", batterKeys},
			{"home_pitchers", pitcherKeys},
			{"away_pitchers", pitcherKeys},
		},
		numbers: periodScores,
	},
}

// Decode validates body against the sport's schema and decodes it. Invalid
// JSON yields domain.ErrMalformedResponse; a missing or mistyped field yields
// a *domain.ShapeMismatchError.
func Decode(sport domain.Sport, body []byte) (*Document, error) {
	sc, ok := schemas[sport]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedSport, sport)
	}
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%w: %s feed is not valid JSON", domain.ErrMalformedResponse, sport)
	}

	root := gjson.ParseBytes(body)
	if !root.IsObject() {
		return nil, fmt.Errorf("%w: %s feed is not a JSON object", domain.ErrMalformedResponse, sport)
	}
	if err := sc.check(sport, root); err != nil {
		return nil, err
	}

	doc := &Document{Sport: sport, Body: body}
	var target any
	switch sport {
	case domain.SportNBA:
		doc.Basketball = &Basketball{}
		target = doc.Basketball
	case domain.SportMLB:
		doc.Baseball = &Baseball{}
		target = doc.Baseball
	}
	if err := json.Unmarshal(body, target); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, &domain.ShapeMismatchError{Sport: sport, Field: typeErr.Field, Err: err}
		}
		return nil, fmt.Errorf("%w: %s feed: %w", domain.ErrMalformedResponse, sport, err)
	}
	return doc, nil
}

func (sc schema) check(sport domain.Sport, root gjson.Result) error {
	for _, f := range sc.fields {
		if err := f.check(sport, root, f.path); err != nil {
			return err
		}
	}
	for _, r := range sc.rosters {
		var err error
		i := 0
		root.Get(r.path).ForEach(func(_, entry gjson.Result) bool {
			for _, key := range r.keys {
				display := r.path + "." + strconv.Itoa(i) + "." + key.path
				if err = key.check(sport, entry, display); err != nil {
					return false
				}
			}
			i++
			return true
		})
		if err != nil {
			return err
		}
	}
	for _, path := range sc.numbers {
		var err error
		i := 0
		root.Get(path).ForEach(func(_, v gjson.Result) bool {
			if v.Type != gjson.Number {
				err = &domain.ShapeMismatchError{
					Sport: sport,
					Field: path + "." + strconv.Itoa(i),
					Err:   fmt.Errorf("expected number, got %s", kindName(v)),
				}
				return false
			}
			i++
			return true
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// check looks f.path up relative to from and reports failures under display.
func (f field) check(sport domain.Sport, from gjson.Result, display string) error {
	v := from.Get(f.path)
	if !v.Exists() || v.Type == gjson.Null {
		return &domain.ShapeMismatchError{Sport: sport, Field: display}
	}

	var ok bool
	switch f.kind {
	case numberKind:
		ok = v.Type == gjson.Number
	case stringKind:
		ok = v.Type == gjson.String
	case arrayKind:
		ok = v.IsArray()
	case scalarKind:
		ok = v.Type == gjson.Number || v.Type == gjson.String
	}
	if !ok {
		return &domain.ShapeMismatchError{
			Sport: sport,
			Field: display,
			Err:   fmt.Errorf("unexpected JSON type %s", kindName(v)),
		}
	}
	return nil
}

func kindName(v gjson.Result) string {
	switch {
	case v.IsObject():
		return "object"
	case v.IsArray():
		return "array"
	default:
		return v.Type.String()
	}
}
