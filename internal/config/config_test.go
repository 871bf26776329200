package config_test

import (
	"testing"

	"github.com/okian/tally/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with default options", t, func() {
		cfg := config.New()

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
			convey.So(cfg.TopCount, convey.ShouldEqual, 3)
			convey.So(cfg.Normalize, convey.ShouldBeFalse)
			convey.So(cfg.JSONOutput, convey.ShouldBeFalse)
		})
	})
}
