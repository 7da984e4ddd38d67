package where

import (
	"path/filepath"
	"testing"

	"github.com/cdarip/cdarip/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	// Use in-memory filesystem for tests to avoid creating real directories
	filesystem.SetMemMapFs()
}

func TestPaths(t *testing.T) {
	Convey("Path functions", t, func() {
		Convey("Config()", func() {
			path := Config()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Config() honors the override variable", func() {
			t.Setenv(EnvConfigPath, "/tmp/cdarip-test-config")
			So(Config(), ShouldEqual, "/tmp/cdarip-test-config")
			So(lo.Must(filesystem.API().IsDir("/tmp/cdarip-test-config")), ShouldBeTrue)
		})

		Convey("Logs()", func() {
			path := Logs()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("ConfigFile()", func() {
			So(ConfigFile(), ShouldEqual, filepath.Join(Config(), "cdarip.toml"))
		})
	})
}
