package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"boxscore/internal/metrics"
	"boxscore/internal/middleware"

	"github.com/rs/zerolog"
	. "github.com/smartystreets/goconvey/convey"
)

func TestRequestID(t *testing.T) {
	Convey("Given a handler behind the request id middleware", t, func() {
		var seen string
		handler := middleware.RequestID(zerolog.Nop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = middleware.GetRequestID(r.Context())
		}))

		Convey("When the caller sends no id", func() {
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nba", nil))

			Convey("Then one is generated and echoed", func() {
				So(seen, ShouldNotBeEmpty)
				So(w.Header().Get("X-Request-ID"), ShouldEqual, seen)
			})
		})

		Convey("When the caller sends an id", func() {
			req := httptest.NewRequest(http.MethodGet, "/nba", nil)
			req.Header.Set("X-Request-ID", "abc-123")
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			Convey("Then it is kept", func() {
				So(seen, ShouldEqual, "abc-123")
				So(w.Header().Get("X-Request-ID"), ShouldEqual, "abc-123")
			})
		})
	})
}

func TestMetrics(t *testing.T) {
	Convey("Given a mux behind the metrics middleware", t, func() {
		rec := metrics.New()
		mux := http.NewServeMux()
		mux.HandleFunc("GET /{sport}", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		})
		handler := middleware.Metrics(rec)(mux)

		Convey("When a request is served", func() {
			handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nba", nil))

			Convey("Then it is counted under the route pattern", func() {
				w := httptest.NewRecorder()
				rec.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
				body := w.Body.String()
				So(strings.Contains(body, `route="GET /{sport}"`), ShouldBeTrue)
				So(strings.Contains(body, `status_code="418"`), ShouldBeTrue)
			})
		})
	})
}
