// Package feedtest builds upstream feed documents for tests.
package feedtest

import (
	"encoding/json"
	"strings"
)

// Doc is a raw feed document under construction. Paths passed to Set and
// Delete are dotted object keys, e.g. "home_team.abbreviation".
type Doc map[string]any

// Basketball returns an in-progress NBA game after three quarters.
func Basketball() Doc {
	return Doc{
		"home_team":          team("OKC", "Thunder", "Oklahoma City"),
		"away_team":          team("MIA", "Heat", "Miami"),
		"event_information":  map[string]any{"status": "in_progress"},
		"home_period_scores": []any{20, 22, 18},
		"away_period_scores": []any{25, 19, 21},
		"home_totals":        map[string]any{"points": 60},
		"away_totals":        map[string]any{"points": 65},
		"home_stats": []any{
			BasketballPlayer("Russell", "Westbrook", "OKC", 30),
			BasketballPlayer("Kevin", "Durant", "OKC", 25),
		},
		"away_stats": []any{
			BasketballPlayer("LeBron", "James", "MIA", 30),
			BasketballPlayer("Chris", "Bosh", "MIA", 12),
		},
	}
}

// Baseball returns an MLB game in the fifth inning.
func Baseball() Doc {
	return Doc{
		"home_team":          team("LAA", "Angels", "Los Angeles"),
		"away_team":          team("SEA", "Mariners", "Seattle"),
		"event_information":  map[string]any{"status": "in_progress"},
		"home_period_scores": []any{0, 1, 0, 2, 0},
		"away_period_scores": []any{1, 0, 0, 0, 0},
		"home_batter_totals": map[string]any{"runs": 3, "hits": 7, "extra_base_hits": 2},
		"away_batter_totals": map[string]any{"runs": 1, "hits": 4, "extra_base_hits": 1},
		"home_batters": []any{
			Batter("Mike", "Trout", ".300"),
			Batter("Albert", "Pujols", ".265"),
		},
		"away_batters": []any{
			Batter("Robinson", "Cano", ".312"),
		},
		"home_pitchers": []any{
			Pitcher("Jered Weaver", false, 6.1),
			Pitcher("Huston Street", true, 2),
		},
		"away_pitchers": []any{
			Pitcher("Felix Hernandez", false, 7),
			Pitcher("Fernando Rodney", false, 1),
		},
	}
}

func team(abbrev, last, first string) map[string]any {
	return map[string]any{"abbreviation": abbrev, "last_name": last, "first_name": first}
}

func BasketballPlayer(first, last, team string, points int) map[string]any {
	return map[string]any{
		"first_name":                        first,
		"last_name":                         last,
		"display_name":                      first + " " + last,
		"team_abbreviation":                 team,
		"minutes":                           33.2,
		"field_goals_made":                  5,
		"field_goals_attempted":             10,
		"three_point_field_goals_made":      1,
		"three_point_field_goals_attempted": 3,
		"free_throws_made":                  2,
		"free_throws_attempted":             2,
		"offensive_rebounds":                1,
		"defensive_rebounds":                4,
		"assists":                           6,
		"steals":                            1,
		"blocks":                            0,
		"turnovers":                         2,
		"personal_fouls":                    3,
		"points":                            points,
	}
}

func Batter(first, last, avg string) map[string]any {
	return map[string]any{
		"first_name": first,
		"last_name":  last,
		"at_bats":    3,
		"runs":       1,
		"hits":       1,
		"rbi":        0,
		"home_runs":  0,
		"walks":      1,
		"avg":        avg,
	}
}

func Pitcher(name string, win bool, innings float64) map[string]any {
	return map[string]any{
		"win":             win,
		"display_name":    name,
		"innings_pitched": innings,
		"earned_runs":     1,
		"strike_outs":     5,
		"walks":           2,
	}
}

// Set replaces the value at path, creating intermediate objects as needed.
func (d Doc) Set(path string, v any) Doc {
	keys := strings.Split(path, ".")
	m := map[string]any(d)
	for _, k := range keys[:len(keys)-1] {
		next, ok := m[k].(map[string]any)
		if !ok {
			next = map[string]any{}
			m[k] = next
		}
		m = next
	}
	m[keys[len(keys)-1]] = v
	return d
}

// Delete removes the value at path if present.
func (d Doc) Delete(path string) Doc {
	keys := strings.Split(path, ".")
	m := map[string]any(d)
	for _, k := range keys[:len(keys)-1] {
		next, ok := m[k].(map[string]any)
		if !ok {
			return d
		}
		m = next
	}
	delete(m, keys[len(keys)-1])
	return d
}

func (d Doc) Bytes() []byte {
	b, err := json.Marshal(map[string]any(d))
	if err != nil {
		panic(err)
	}
	return b
}
