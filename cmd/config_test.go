package cmd

import (
	"testing"

	"github.com/cdarip/cdarip/config"
	"github.com/cdarip/cdarip/constant"
	"github.com/cdarip/cdarip/key"
	. "github.com/smartystreets/goconvey/convey"
)

func TestParseValue(t *testing.T) {
	Convey("parseValue follows the default's type", t, func() {
		Convey("string", func() {
			v, err := parseValue(config.Default[key.FFmpegBinary], []string{"avconv"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "avconv")
		})

		Convey("bool", func() {
			v, err := parseValue(config.Default[key.AnalysisStrictIDs], []string{"true"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, true)

			_, err = parseValue(config.Default[key.AnalysisStrictIDs], []string{"maybe"})
			So(err, ShouldNotBeNil)
		})

		Convey("int and string slices", func() {
			v, err := parseValue(config.Field{Key: "x", Value: 0}, []string{"42"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, 42)

			v, err = parseValue(config.Field{Key: "y", Value: []string{}}, []string{"a", "b"})
			So(err, ShouldBeNil)
			So(v, ShouldResemble, []string{"a", "b"})
		})

		Convey("missing value", func() {
			_, err := parseValue(config.Default[key.FFmpegBinary], nil)
			So(err, ShouldNotBeNil)
		})
	})
}

func TestErrUnknownKey(t *testing.T) {
	Convey("errUnknownKey suggests the closest key", t, func() {
		err := errUnknownKey("ffmpeg.binry")
		So(err.Error(), ShouldContainSubstring, key.FFmpegBinary)
	})
}

func TestIsFallbackTitle(t *testing.T) {
	Convey("isFallbackTitle", t, func() {
		So(isFallbackTitle(constant.TitleNodeNotFound), ShouldBeTrue)
		So(isFallbackTitle(constant.TitleScriptFailed), ShouldBeTrue)
		So(isFallbackTitle("My Video"), ShouldBeFalse)
	})
}
