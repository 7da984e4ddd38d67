package page

import (
	"strings"
	"testing"

	"github.com/cdarip/cdarip/constant"
	"github.com/cdarip/cdarip/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

const savedPage = `<!doctype html>
<html><body>
<div id="naglowek">
  <span class="title-name"><span><h1>
    My / Video: Test?
  </h1></span></span>
</div>
<h1>Other heading</h1>
</body></html>`

func TestTitle(t *testing.T) {
	Convey("Given a saved video page", t, func() {
		So(Title(strings.NewReader(savedPage), ""), ShouldEqual, "My / Video: Test?")
	})

	Convey("Given a custom selector", t, func() {
		So(Title(strings.NewReader(savedPage), "body > h1"), ShouldEqual, "Other heading")
	})

	Convey("Given a page without the title element", t, func() {
		So(Title(strings.NewReader("<html><body><p>nothing</p></body></html>"), ""), ShouldEqual, constant.TitleNodeNotFound)
	})
}

func TestLoadTitle(t *testing.T) {
	Convey("Given a page saved to disk", t, func() {
		filesystem.SetMemMapFs()
		So(filesystem.API().WriteFile("/pages/video.html", []byte(savedPage), 0o644), ShouldBeNil)
		So(LoadTitle("/pages/video.html", ""), ShouldEqual, "My / Video: Test?")
	})

	Convey("Given a missing page", t, func() {
		So(LoadTitle("/pages/missing.html", ""), ShouldEqual, constant.TitleScriptFailed)
	})
}
