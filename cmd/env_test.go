package cmd

import (
	"sort"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestEnvNames(t *testing.T) {
	Convey("envNames", t, func() {
		names := envNames()

		So(names, ShouldContain, "YTTHUMBS_METADATA_TIMEOUT")
		So(names, ShouldContain, "YTTHUMBS_DOWNLOAD_PLACEHOLDER_SIZE")
		So(names, ShouldContain, "YTTHUMBS_CONFIG_PATH")
		So(sort.StringsAreSorted(names), ShouldBeTrue)
	})
}
