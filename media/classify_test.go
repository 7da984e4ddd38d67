package media

import (
	"strings"
	"testing"

	"github.com/cdarip/cdarip/resolution"
	. "github.com/smartystreets/goconvey/convey"
)

const (
	host = "https://h.example/17505302raw/"
	id   = "661c2aab87f156e66c5bbe0cd3a73d36"
)

func TestClassify(t *testing.T) {
	Convey("Given the resources of a video page", t, func() {
		urls := []string{
			host + "a_hd" + id + ".mp4",
			host + "hd" + id + ".mp4",
			host + "sd" + id + ".mp4",
			"https://h.example/page.html",
		}

		set := Classify(urls)

		Convey("Only .mp4 resources are kept, in encounter order", func() {
			So(set, ShouldHaveLength, 3)
			So(set[0].URL, ShouldEqual, urls[0])
			So(set[1].URL, ShouldEqual, urls[1])
			So(set[2].URL, ShouldEqual, urls[2])
		})

		Convey("The audio stream is recognized by its prefix", func() {
			So(set[0].IsAudioOnly, ShouldBeTrue)
			So(set[0].ResolutionCode, ShouldEqual, "hd")
			So(set[0].FileName, ShouldEqual, "a_hd"+id+".mp4")
			So(set[0].Resolution, ShouldResemble, resolution.Lookup("hd"))
		})

		Convey("Video streams keep their code verbatim", func() {
			So(set[1].IsAudioOnly, ShouldBeFalse)
			So(set[1].ResolutionCode, ShouldEqual, "hd")
			So(set[2].ResolutionCode, ShouldEqual, "sd")
			So(set[2].Resolution.Rank, ShouldEqual, 720)
		})

		Convey("Classifying again yields an identical set", func() {
			So(Classify(urls), ShouldResemble, set)
		})
	})

	Convey("Given no input", t, func() {
		set := Classify(nil)
		So(set, ShouldNotBeNil)
		So(set, ShouldBeEmpty)
	})

	Convey("Given URLs that are not .mp4", t, func() {
		set := Classify([]string{
			host + "hd" + id + ".mp4?token=1",
			host + "hd" + id + ".MP4",
			host + "hd" + id + ".m3u8",
			"",
		})
		So(set, ShouldBeEmpty)
	})

	Convey("Given the same URL twice", t, func() {
		url := host + "lq" + id + ".mp4"
		set := Classify([]string{url, host + "vl" + id + ".mp4", url})

		Convey("It is kept once, at its first position", func() {
			So(set, ShouldHaveLength, 2)
			So(set[0].URL, ShouldEqual, url)
			So(set[0].ResolutionCode, ShouldEqual, "lq")
			So(set[1].ResolutionCode, ShouldEqual, "vl")
		})
	})

	Convey("Given malformed file names", t, func() {
		Convey("A name shorter than the id resolves to unknown", func() {
			set := Classify([]string{host + "hd.mp4", host + "a_x.mp4", ".mp4"})
			So(set, ShouldHaveLength, 3)
			for _, r := range set {
				So(r.ResolutionCode, ShouldBeEmpty)
				So(r.Resolution.Code, ShouldEqual, resolution.Unknown)
			}
			So(set[1].IsAudioOnly, ShouldBeTrue)
			So(set[2].FileName, ShouldEqual, ".mp4")
		})

		Convey("An audio prefix cut short by the id leaves no code", func() {
			set := Classify([]string{host + "a_" + strings.Repeat("0", 31) + ".mp4"})
			So(set, ShouldHaveLength, 1)
			So(set[0].IsAudioOnly, ShouldBeTrue)
			So(set[0].ResolutionCode, ShouldEqual, "")
			So(set[0].Resolution.Code, ShouldEqual, resolution.Unknown)
		})

		Convey("An unregistered code resolves to unknown but keeps the code", func() {
			set := Classify([]string{host + "uhd" + id + ".mp4"})
			So(set, ShouldHaveLength, 1)
			So(set[0].ResolutionCode, ShouldEqual, "uhd")
			So(set[0].Resolution.Rank, ShouldEqual, 0)
		})

		Convey("A URL without slashes is its own file name", func() {
			set := Classify([]string{"sd" + id + ".mp4"})
			So(set[0].FileName, ShouldEqual, "sd"+id+".mp4")
			So(set[0].ResolutionCode, ShouldEqual, "sd")
		})
	})
}

func TestStrictClassifier(t *testing.T) {
	Convey("Given a strict classifier", t, func() {
		c := &Classifier{Strict: true}

		Convey("Hexadecimal identifiers are accepted", func() {
			So(c.Classify([]string{host + "hd" + id + ".mp4"}), ShouldHaveLength, 1)
			So(c.Classify([]string{host + "hd" + strings.ToUpper(id) + ".mp4"}), ShouldHaveLength, 1)
		})

		Convey("Other identifiers are rejected", func() {
			notHex := strings.Repeat("z", 32)
			So(c.Classify([]string{host + "hd" + notHex + ".mp4"}), ShouldBeEmpty)
			So(c.Classify([]string{host + "hd.mp4"}), ShouldBeEmpty)
		})
	})
}
