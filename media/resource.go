// Package media turns observed resource URLs into typed media descriptors
// and picks the best audio and video among them.
package media

import (
	"fmt"

	"github.com/cdarip/cdarip/resolution"
)

// Resource is one raw media stream observed on the page.
type Resource struct {
	URL            string          `json:"url"`
	FileName       string          `json:"file_name"`
	IsAudioOnly    bool            `json:"is_audio_only"`
	ResolutionCode string          `json:"resolution_code"`
	Resolution     resolution.Info `json:"resolution"`
}

// Kind returns "audio" or "video".
func (r *Resource) Kind() string {
	if r.IsAudioOnly {
		return "audio"
	}
	return "video"
}

func (r *Resource) String() string {
	return fmt.Sprintf("%s %s (%s)", r.Kind(), r.Resolution.Label, r.FileName)
}
