package config

import (
	"context"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestNew(t *testing.T) {
	Convey("Given a fresh configuration", t, func() {
		cfg := New()

		Convey("Then it carries the documented defaults", func() {
			So(cfg.LogLevel, ShouldEqual, "info")
			So(cfg.Addr, ShouldEqual, ":9080")
			So(cfg.MaxResultsLimit, ShouldEqual, 500)
			So(cfg.HistorySize, ShouldEqual, 16)
			So(cfg.MaxUploadBytes, ShouldEqual, int64(8<<20))
		})
	})
}

func TestLoad(t *testing.T) {
	Convey("Given no environment overrides", t, func() {
		cfg, err := Load(context.Background())

		Convey("Then defaults come back unchanged", func() {
			So(err, ShouldBeNil)
			So(cfg.Addr, ShouldEqual, ":9080")
			So(cfg.MaxResultsLimit, ShouldEqual, 500)
		})
	})
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("BEACON_ADDR", ":7070")
	t.Setenv("BEACON_LOG_LEVEL", "debug")
	t.Setenv("BEACON_MAX_RESULTS_LIMIT", "25")
	t.Setenv("BEACON_HISTORY_SIZE", "4")

	Convey("Given environment overrides", t, func() {
		cfg, err := Load(context.Background())

		Convey("Then the environment wins over defaults", func() {
			So(err, ShouldBeNil)
			So(cfg.Addr, ShouldEqual, ":7070")
			So(cfg.LogLevel, ShouldEqual, "debug")
			So(cfg.MaxResultsLimit, ShouldEqual, 25)
			So(cfg.HistorySize, ShouldEqual, 4)
			So(cfg.MaxUploadBytes, ShouldEqual, int64(8<<20))
		})
	})
}

func TestLoadValidation(t *testing.T) {
	Convey("Given an invalid results limit", t, func() {
		t.Setenv("BEACON_MAX_RESULTS_LIMIT", "0")
		cfg, err := Load(context.Background())

		Convey("Then loading fails with a config error", func() {
			So(cfg, ShouldBeNil)
			So(err, ShouldWrap, ErrInvalidConfig)
		})
	})

	Convey("Given an empty listen address", t, func() {
		t.Setenv("BEACON_ADDR", "")
		cfg, err := Load(context.Background())

		Convey("Then loading fails with a config error", func() {
			So(cfg, ShouldBeNil)
			So(err, ShouldWrap, ErrInvalidConfig)
		})
	})
}
