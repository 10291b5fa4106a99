package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"boxscore/internal/metrics"

	. "github.com/smartystreets/goconvey/convey"
)

func counterValue(rec *metrics.Recorder, name string, labels map[string]string) float64 {
	families, err := rec.Registry().Gather()
	So(err, ShouldBeNil)
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
	metric:
		for _, m := range mf.GetMetric() {
			for _, lp := range m.GetLabel() {
				if labels[lp.GetName()] != lp.GetValue() {
					continue metric
				}
			}
			return m.GetCounter().GetValue()
		}
	}
	return 0
}

func TestRecorder(t *testing.T) {
	Convey("Given a recorder", t, func() {
		rec := metrics.New()

		Convey("When cache and upstream events are recorded", func() {
			rec.CacheHit("nba")
			rec.CacheHit("nba")
			rec.CacheRefreshed("mlb")
			rec.UpstreamFailed("mlb", "network")
			rec.Primed("nba", true)
			rec.Primed("mlb", false)

			Convey("Then each counter carries its labels", func() {
				So(counterValue(rec, "boxscore_cache_hits_total", map[string]string{"sport": "nba"}), ShouldEqual, 2.0)
				So(counterValue(rec, "boxscore_cache_refreshes_total", map[string]string{"sport": "mlb"}), ShouldEqual, 1.0)
				So(counterValue(rec, "boxscore_upstream_failures_total", map[string]string{"sport": "mlb", "kind": "network"}), ShouldEqual, 1.0)
				So(counterValue(rec, "boxscore_primer_results_total", map[string]string{"sport": "mlb", "result": "error"}), ShouldEqual, 1.0)
				So(counterValue(rec, "boxscore_primer_results_total", map[string]string{"sport": "nba", "result": "ok"}), ShouldEqual, 1.0)
			})
		})

		Convey("When HTTP requests are observed", func() {
			rec.ObserveHTTP("GET /{sport}", http.MethodGet, http.StatusOK, 12*time.Millisecond)

			Convey("Then the handler exposes them", func() {
				w := httptest.NewRecorder()
				rec.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Body.String(), ShouldContainSubstring, "boxscore_http_requests_total")
				So(strings.Contains(w.Body.String(), `status_code="200"`), ShouldBeTrue)
			})
		})
	})

	Convey("Given a nil recorder", t, func() {
		var rec *metrics.Recorder

		Convey("Then recording is a no-op", func() {
			So(func() {
				rec.CacheHit("nba")
				rec.UpstreamFailed("nba", "shape")
				rec.ObserveHTTP("x", "GET", 200, time.Second)
			}, ShouldNotPanic)
		})
	})
}
