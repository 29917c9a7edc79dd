package config_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/smartystreets/goconvey/convey"

	"github.com/okian/gully/internal/config"
)

func clearConfigEnvVars() {
	for _, key := range []string{
		"GULLY_CONFIG",
		"GULLY_ADDR",
		"GULLY_CONTEST_ID",
		"GULLY_SEED",
		"GULLY_BOARD_SIZE",
		"GULLY_EVENT_SKIP_PROBABILITY",
		"GULLY_TREND_INTERVAL_MS",
		"GULLY_REFRESH_INTERVAL_MS",
	} {
		_ = os.Unsetenv(key)
	}
}

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()

		convey.Convey("When loading config with defaults only", func() {
			clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
				convey.So(cfg.ContestID, convey.ShouldEqual, "contest-1")
				convey.So(cfg.Seed, convey.ShouldEqual, 42)
				convey.So(cfg.TrendIntervalMS, convey.ShouldEqual, 3_000)
				convey.So(cfg.RefreshIntervalMS, convey.ShouldEqual, 5_000)
				convey.So(cfg.EventIntervalMS, convey.ShouldEqual, 8_000)
				convey.So(cfg.EventSkipProbability, convey.ShouldEqual, 0.4)
				convey.So(cfg.PopupSeconds, convey.ShouldEqual, 5)
				convey.So(cfg.BoardSize, convey.ShouldEqual, 10)
				convey.So(cfg.CaptainMultiplier, convey.ShouldEqual, 2.0)
				convey.So(cfg.ViceCaptainMultiplier, convey.ShouldEqual, 1.5)
				convey.So(cfg.LeaderPointsFallback, convey.ShouldEqual, 156)
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			clearConfigEnvVars()
			_ = os.Setenv("GULLY_ADDR", ":8080")
			_ = os.Setenv("GULLY_CONTEST_ID", "contest-7")
			_ = os.Setenv("GULLY_BOARD_SIZE", "25")
			_ = os.Setenv("GULLY_TREND_INTERVAL_MS", "1500")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.ContestID, convey.ShouldEqual, "contest-7")
				convey.So(cfg.BoardSize, convey.ShouldEqual, 25)
				convey.So(cfg.TrendIntervalMS, convey.ShouldEqual, 1500)
				// Untouched keys keep their defaults.
				convey.So(cfg.RefreshIntervalMS, convey.ShouldEqual, 5_000)
			})
		})

		convey.Convey("When loading config with a YAML file", func() {
			clearConfigEnvVars()
			dir := t.TempDir()
			path := filepath.Join(dir, "gully.yaml")
			yaml := "addr: \":7070\"\nboard_size: 50\nevent_skip_probability: 0.2\n"
			convey.So(os.WriteFile(path, []byte(yaml), 0o600), convey.ShouldBeNil)
			_ = os.Setenv("GULLY_CONFIG", path)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then file values override defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":7070")
				convey.So(cfg.BoardSize, convey.ShouldEqual, 50)
				convey.So(cfg.EventSkipProbability, convey.ShouldEqual, 0.2)
			})

			convey.Convey("And env vars override the file", func() {
				_ = os.Setenv("GULLY_ADDR", ":6060")
				cfg, err := config.Load(ctx)
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":6060")
			})
		})

		convey.Convey("When the file path is missing", func() {
			clearConfigEnvVars()
			_ = os.Setenv("GULLY_CONFIG", filepath.Join(t.TempDir(), "nope.yaml"))
			defer clearConfigEnvVars()

			_, err := config.Load(ctx)

			convey.Convey("Then loading fails with the load sentinel", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When a value fails validation", func() {
			clearConfigEnvVars()
			_ = os.Setenv("GULLY_EVENT_SKIP_PROBABILITY", "1.5")
			defer clearConfigEnvVars()

			_, err := config.Load(ctx)

			convey.Convey("Then loading fails with the invalid sentinel", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
			})
		})
	})
}
