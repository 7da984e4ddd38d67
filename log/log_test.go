package log

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/cdarip/cdarip/filesystem"
	"github.com/cdarip/cdarip/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Given logging is disabled", t, func() {
		viper.Set(key.LogsWrite, false)
		So(Setup(), ShouldBeNil)
		So(Enabled(), ShouldBeFalse)
	})

	Convey("Given logging is enabled", t, func() {
		viper.Set(key.LogsWrite, true)
		defer viper.Set(key.LogsWrite, false)

		So(Setup(), ShouldBeNil)
		So(Enabled(), ShouldBeTrue)

		Convey("Records are written as JSON when requested", func() {
			var buf bytes.Buffer
			viper.Set(key.LogsJson, true)
			viper.Set(key.LogsLevel, "debug")
			defer viper.Set(key.LogsJson, false)

			configure(&buf)
			WithFields(DebugLevel, Fields{"url": "https://h.example/a.mp4"}, "resource")

			var record map[string]any
			So(json.Unmarshal(buf.Bytes(), &record), ShouldBeNil)
			So(record["url"], ShouldEqual, "https://h.example/a.mp4")
			So(record["msg"], ShouldEqual, "resource")
		})

		Convey("Records below the level are dropped", func() {
			var buf bytes.Buffer
			viper.Set(key.LogsLevel, "warn")

			configure(&buf)
			Infof("hidden %d", 1)
			So(buf.Len(), ShouldEqual, 0)

			Warnf("shown %d", 2)
			So(buf.String(), ShouldContainSubstring, "shown 2")
		})
	})
}
