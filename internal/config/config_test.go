package config_test

import (
	"testing"

	"github.com/autoweb/sitesmith/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with default options", t, func() {
		cfg := config.New()

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
			convey.So(cfg.QueueSize, convey.ShouldEqual, 10_000)
			convey.So(cfg.DedupeSize, convey.ShouldEqual, 50_000)
			convey.So(cfg.ShardCount, convey.ShouldEqual, 16)
			convey.So(cfg.Threshold, convey.ShouldEqual, 70)
			convey.So(cfg.TargetImages, convey.ShouldEqual, 15)
			convey.So(cfg.MinImages, convey.ShouldEqual, 8)
			convey.So(cfg.SynthesisTimeoutSec, convey.ShouldEqual, 180)
		})

		convey.Convey("And provider keys should default to disabled", func() {
			convey.So(cfg.UnsplashAccessKey, convey.ShouldBeEmpty)
			convey.So(cfg.PexelsAPIKey, convey.ShouldBeEmpty)
			convey.So(cfg.GenAIAPIKey, convey.ShouldBeEmpty)
		})
	})
}
