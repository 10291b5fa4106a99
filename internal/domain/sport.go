package domain

import "fmt"

// Sport is the discriminator that selects a feed, a raw schema and a normalization strategy.
type Sport string

const (
	SportNBA Sport = "nba"
	SportMLB Sport = "mlb"
)

var knownSports = []Sport{SportNBA, SportMLB}

// KnownSports returns every registered sport in a stable order.
func KnownSports() []Sport {
	out := make([]Sport, len(knownSports))
	copy(out, knownSports)
	return out
}

// ParseSport validates a sport key coming from outside the process.
func ParseSport(key string) (Sport, error) {
	for _, s := range knownSports {
		if string(s) == key {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSport, key)
}

func (s Sport) String() string {
	return string(s)
}
