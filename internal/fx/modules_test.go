package fx_test

import (
	"testing"

	fxmodules "boxscore/internal/fx"
	"boxscore/internal/metrics"
	"boxscore/internal/server"
	"boxscore/internal/service"

	. "github.com/smartystreets/goconvey/convey"
	"go.uber.org/fx"
)

func TestModuleGraph(t *testing.T) {
	Convey("Given the application module", t, func() {
		Convey("Then everything the server needs can be resolved", func() {
			err := fx.ValidateApp(
				fxmodules.Module,
				fx.Invoke(func(*server.BoxScoreServer, *service.Primer, *metrics.Recorder) {}),
			)
			So(err, ShouldBeNil)
		})
	})
}
