package normalize

import (
	"strconv"
	"unicode/utf8"

	"boxscore/internal/constants"
	"boxscore/internal/feed"
)

// periodLayout describes how a sport lays out its linescore.
type periodLayout struct {
	regular      int
	extraLabel   func(period int) string
	summaryLabel []string
}

// lineScore builds the headers and both score rows. Each side lists its
// recorded periods, then placeholders up to the common width, then its summary
// values. The width is the regular period count, or more when either side has
// played extra periods.
func (l periodLayout) lineScore(home, away []feed.Stat, homeSummary, awaySummary []string) (headers, homeRow, awayRow []string) {
	width := max(l.regular, len(home), len(away))

	headers = make([]string, 0, width+len(l.summaryLabel))
	for p := 1; p <= width; p++ {
		if p <= l.regular {
			headers = append(headers, strconv.Itoa(p))
		} else {
			headers = append(headers, l.extraLabel(p))
		}
	}
	headers = append(headers, l.summaryLabel...)

	return headers, scoreRow(home, width, homeSummary), scoreRow(away, width, awaySummary)
}

func scoreRow(periods []feed.Stat, width int, summary []string) []string {
	row := make([]string, 0, width+len(summary))
	for _, p := range periods {
		row = append(row, p.String())
	}
	for len(row) < width {
		row = append(row, constants.ScorePlaceholder)
	}
	return append(row, summary...)
}

// shortName renders "LeBron", "James" as "L.James".
func shortName(first, last string) string {
	r, size := utf8.DecodeRuneInString(first)
	if size == 0 || r == utf8.RuneError {
		return "." + last
	}
	return string(r) + "." + last
}

func madeAttempted(made, attempted feed.Stat) string {
	return made.String() + "-" + attempted.String()
}
