package where

import (
	"os"
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/ytthumbs/ytthumbs/filesystem"
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

		Convey("Logs()", func() {
			path := Logs()
			So(path, ShouldStartWith, Config())
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Config() honours the override variable", func() {
			lo.Must0(os.Setenv(EnvConfigPath, "/custom/ytthumbs"))
			defer os.Unsetenv(EnvConfigPath)

			So(Config(), ShouldEqual, "/custom/ytthumbs")
			So(lo.Must(filesystem.API().IsDir("/custom/ytthumbs")), ShouldBeTrue)
		})
	})
}
