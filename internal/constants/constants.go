package constants

import "time"

// Cached feed documents younger than or equal to this are served without an upstream call.
const FreshnessWindow = 15 * time.Second

const (
	BasketballRegularPeriods = 4
	BaseballRegularPeriods   = 9
	BasketballHighlightCount = 3
	ScorePlaceholder         = "-"
)

const (
	ExternalAPITimeout = 10 * time.Second
	DatabaseTimeout    = 5 * time.Second
	RequestTimeout     = 30 * time.Second
	PrimeTimeout       = 12 * time.Second
)

const (
	DBMaxOpenConns    = 100
	DBMaxIdleConns    = 10
	DBConnMaxLifetime = 1 * time.Hour
	DBMaxIdleTime     = 10 * time.Minute
)

const (
	ShutdownTimeout = 5 * time.Second
)

const (
	RefreshStreamPrefix = "boxscore.refresh."
	RefreshStreamMaxLen = 1000
)
