package media

import (
	"encoding/json"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSelectBest(t *testing.T) {
	Convey("Given audio and video streams", t, func() {
		set := Classify([]string{
			host + "a_hd" + id + ".mp4",
			host + "hd" + id + ".mp4",
			host + "sd" + id + ".mp4",
			"https://h.example/page.html",
		})

		sel := SelectBest(set)

		Convey("The best video is the first highest ranked resource", func() {
			video, ok := sel.Video.Get()
			So(ok, ShouldBeTrue)
			So(video.Resolution.Rank, ShouldEqual, 1080)
			// a_hd comes first with the same rank; audio-only entries are not skipped
			So(video, ShouldEqual, set[0])
		})

		Convey("The best audio is the a_hd stream", func() {
			audio, ok := sel.Audio.Get()
			So(ok, ShouldBeTrue)
			So(audio.IsAudioOnly, ShouldBeTrue)
			So(audio.ResolutionCode, ShouldEqual, "hd")
			So(sel.Complete(), ShouldBeTrue)
		})
	})

	Convey("Given video listed before audio", t, func() {
		set := Classify([]string{
			host + "sd" + id + ".mp4",
			host + "hd" + id + ".mp4",
			host + "a_hd" + id + ".mp4",
		})
		sel := SelectBest(set)

		So(sel.Video.MustGet(), ShouldEqual, set[1])
		So(sel.Audio.MustGet(), ShouldEqual, set[2])
	})

	Convey("Given an audio stream that outranks every video", t, func() {
		set := Classify([]string{
			host + "vl" + id + ".mp4",
			host + "a_sd" + id + ".mp4",
		})
		sel := SelectBest(set)

		Convey("It is also chosen as video", func() {
			So(sel.Video.MustGet(), ShouldEqual, set[1])
			So(sel.Audio.MustGet(), ShouldEqual, set[1])
		})
	})

	Convey("Given an empty set", t, func() {
		sel := SelectBest(Classify(nil))
		So(sel.Video.IsAbsent(), ShouldBeTrue)
		So(sel.Audio.IsAbsent(), ShouldBeTrue)
		So(sel.Complete(), ShouldBeFalse)
	})

	Convey("Given only video streams", t, func() {
		sel := SelectBest(Classify([]string{host + "lq" + id + ".mp4"}))
		So(sel.Video.IsPresent(), ShouldBeTrue)
		So(sel.Audio.IsAbsent(), ShouldBeTrue)
	})

	Convey("Given two resources of equal rank", t, func() {
		set := Classify([]string{
			host + "xx" + id + ".mp4",
			host + "yy" + id + ".mp4",
		})
		sel := SelectBest(set)

		Convey("The first encountered is kept", func() {
			So(sel.Video.MustGet(), ShouldEqual, set[0])
		})
	})

	Convey("The best audio is never a video stream", t, func() {
		set := Classify([]string{
			host + "hd" + id + ".mp4",
			host + "a_vl" + id + ".mp4",
			host + "sd" + id + ".mp4",
		})
		audio := SelectBest(set).Audio.MustGet()
		So(audio.IsAudioOnly, ShouldBeTrue)
		So(audio.Resolution.Rank, ShouldEqual, 360)
	})
}

func TestSelectionJSON(t *testing.T) {
	Convey("An absent part is encoded as null", t, func() {
		sel := SelectBest(Classify([]string{host + "hd" + id + ".mp4"}))
		data, err := json.Marshal(sel)
		So(err, ShouldBeNil)

		var decoded map[string]any
		So(json.Unmarshal(data, &decoded), ShouldBeNil)
		So(decoded["audio"], ShouldBeNil)
		So(decoded["video"], ShouldNotBeNil)
	})
}
