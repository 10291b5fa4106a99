package config_test

import (
	"testing"

	"boxscore/internal/config"
	"boxscore/internal/domain"

	"github.com/rs/zerolog"
	. "github.com/smartystreets/goconvey/convey"
)

func TestLoad(t *testing.T) {
	Convey("Given a clean environment", t, func() {
		t.Setenv("NBA_FEED_URL", "http://feeds.test/nba.json")
		t.Setenv("SERVER_PORT", "8081")
		t.Setenv("PRIME_ON_START", "false")

		Convey("When loading", func() {
			cfg, err := config.Load(zerolog.Nop())

			Convey("Then environment values override defaults", func() {
				So(err, ShouldBeNil)
				So(cfg.ServerPort, ShouldEqual, "8081")
				So(cfg.PrimeOnStart, ShouldBeFalse)
				So(cfg.FeedURLs()[domain.SportNBA], ShouldEqual, "http://feeds.test/nba.json")
			})

			Convey("Then unset values keep their defaults", func() {
				So(cfg.LogLevel, ShouldEqual, "info")
				So(cfg.DBPath, ShouldEqual, "boxscore.db")
				So(cfg.FeedURLs()[domain.SportMLB], ShouldStartWith, "https://")
				So(cfg.RedisURL, ShouldBeEmpty)
			})
		})
	})
}

func TestValidate(t *testing.T) {
	Convey("Given a config without a baseball feed", t, func() {
		cfg := &config.Config{NBAFeedURL: "http://feeds.test/nba.json"}

		Convey("Then validation fails", func() {
			So(cfg.Validate(), ShouldNotBeNil)
		})

		Convey("When the feed is added", func() {
			cfg.MLBFeedURL = "http://feeds.test/mlb.json"

			Convey("Then validation passes", func() {
				So(cfg.Validate(), ShouldBeNil)
			})
		})
	})
}
