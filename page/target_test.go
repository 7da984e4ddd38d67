package page

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCheckTarget(t *testing.T) {
	Convey("CheckTarget", t, func() {
		Convey("Accepts pages under the default prefix", func() {
			So(CheckTarget("https://www.cda.pl/video/17505302", ""), ShouldBeNil)
		})

		Convey("Rejects other pages", func() {
			err := CheckTarget("https://example.com/video/1", "")
			So(errors.Is(err, ErrNotTargetPage), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "https://www.cda.pl/*")
		})

		Convey("Honors a custom prefix", func() {
			So(CheckTarget("https://m.cda.pl/video/1", "https://m.cda.pl/"), ShouldBeNil)
		})
	})
}
