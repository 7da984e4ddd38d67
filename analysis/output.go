package analysis

import (
	"encoding/json"
	"io"

	"github.com/cdarip/cdarip/media"
)

// Output is the JSON shape of a report.
type Output struct {
	// Title is the title as found on the page.
	Title string `json:"title"`
	// SanitizedTitle is the base of every file name.
	SanitizedTitle string `json:"sanitized_title"`
	// Resources are all classified media streams in encounter order.
	Resources []*media.Resource `json:"resources"`
	// Video is the selected video stream, null when none was found.
	Video *media.Resource `json:"video"`
	// Audio is the selected audio stream, null when none was found.
	Audio *media.Resource `json:"audio"`
	// Downloads pair each selected URL with its file name.
	Downloads []Download `json:"downloads"`
	// MergeCommand joins the two downloads into MergedFileName.
	MergeCommand   string   `json:"merge_command"`
	MergeArgs      []string `json:"merge_args"`
	MergedFileName string   `json:"merged_file_name"`
}

// Output converts the report to its JSON shape.
func (r *Report) Output() *Output {
	downloads := r.Downloads()
	if downloads == nil {
		downloads = []Download{}
	}

	return &Output{
		Title:          r.Title,
		SanitizedTitle: r.SanitizedTitle,
		Resources:      r.Resources,
		Video:          r.Selection.Video.OrElse(nil),
		Audio:          r.Selection.Audio.OrElse(nil),
		Downloads:      downloads,
		MergeCommand:   r.MergeCommand,
		MergeArgs:      r.MergeArgs,
		MergedFileName: r.MergedFileName,
	}
}

// WriteJSON encodes the report to w.
func (r *Report) WriteJSON(w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(r.Output())
}
