// Package analysis wires the page collaborators to the classification core
// and shapes the result for the terminal and for scripts.
package analysis

import (
	"errors"

	"github.com/cdarip/cdarip/ffmpeg"
	"github.com/cdarip/cdarip/filename"
	"github.com/cdarip/cdarip/log"
	"github.com/cdarip/cdarip/media"
)

// ErrNoMedia means the page had not loaded any media stream yet.
var ErrNoMedia = errors.New("no video or audio resources found")

// Hint is shown alongside ErrNoMedia.
const Hint = `Set the resolution in the player ("auto" resolution is unpredictable) and press play to load the resources. Then export them again.`

// Options tune a single analysis.
type Options struct {
	// Strict rejects media names with a malformed content identifier.
	Strict bool
	// Composer formats the merge command. Nil means plain ffmpeg.
	Composer *ffmpeg.Composer
}

// Download is one file the download collaborator should fetch.
type Download struct {
	Kind     string `json:"kind"`
	URL      string `json:"url"`
	FileName string `json:"file_name"`
	Label    string `json:"resolution"`
}

// Report is everything computed from one page.
type Report struct {
	Title          string
	SanitizedTitle string
	Resources      []*media.Resource
	Selection      media.Selection
	VideoFileName  string
	AudioFileName  string
	MergedFileName string
	MergeCommand   string
	MergeArgs      []string
}

// Analyze classifies urls, picks the best pair and derives every name from title.
// It never fails; an empty page yields an empty report.
func Analyze(urls []string, title string, options Options) *Report {
	composer := options.Composer
	if composer == nil {
		composer = &ffmpeg.Composer{}
	}

	classifier := &media.Classifier{Strict: options.Strict}
	resources := classifier.Classify(urls)

	sanitized := filename.Sanitize(title)
	report := &Report{
		Title:          title,
		SanitizedTitle: sanitized,
		Resources:      resources,
		Selection:      media.SelectBest(resources),
		VideoFileName:  filename.Video(sanitized),
		AudioFileName:  filename.Audio(sanitized),
		MergedFileName: filename.Merged(sanitized),
	}
	report.MergeCommand = composer.Command(report.VideoFileName, report.AudioFileName, sanitized)
	report.MergeArgs = composer.Args(report.VideoFileName, report.AudioFileName, sanitized)

	log.WithFields(log.InfoLevel, log.Fields{
		"urls":      len(urls),
		"resources": len(resources),
		"video":     report.Selection.Video.IsPresent(),
		"audio":     report.Selection.Audio.IsPresent(),
		"title":     sanitized,
	}, "analyzed page")

	return report
}

// Empty reports whether no media resource was found.
func (r *Report) Empty() bool {
	return len(r.Resources) == 0
}

// Err returns ErrNoMedia for an empty report.
func (r *Report) Err() error {
	if r.Empty() {
		return ErrNoMedia
	}
	return nil
}

// Downloads lists the files to fetch, video first. Absent parts are skipped.
func (r *Report) Downloads() []Download {
	var downloads []Download

	if video, ok := r.Selection.Video.Get(); ok {
		downloads = append(downloads, Download{
			Kind:     "video",
			URL:      video.URL,
			FileName: r.VideoFileName,
			Label:    video.Resolution.Label,
		})
	}

	if audio, ok := r.Selection.Audio.Get(); ok {
		downloads = append(downloads, Download{
			Kind:     "audio",
			URL:      audio.URL,
			FileName: r.AudioFileName,
			Label:    audio.Resolution.Label,
		})
	}

	return downloads
}
