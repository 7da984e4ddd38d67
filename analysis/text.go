package analysis

import (
	"fmt"
	"io"
	"strings"

	"github.com/cdarip/cdarip/color"
	"github.com/cdarip/cdarip/icon"
	"github.com/cdarip/cdarip/media"
	"github.com/cdarip/cdarip/style"
	"github.com/cdarip/cdarip/util"
	"github.com/muesli/reflow/wrap"
	"github.com/samber/mo"
)

// TextOptions control the human readable rendering.
type TextOptions struct {
	// ShowResources lists every classified resource.
	ShowResources bool
	// Width wraps long lines; 0 disables wrapping.
	Width int
}

// WriteText renders the report the way the browser popup laid it out.
// Only labels are wrapped; URLs and the merge command stay on one line so they can be copied.
func (r *Report) WriteText(w io.Writer, options TextOptions) error {
	var b strings.Builder

	heading := style.New().Bold(true).Foreground(color.HiPurple).Render
	faint := style.Faint

	prose := func(format string, args ...any) {
		line := fmt.Sprintf(format, args...)
		if options.Width > 0 {
			line = wrap.String(line, options.Width)
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	verbatim := func(indent, text string) {
		b.WriteString(indent + text + "\n")
	}

	prose("%s %s", heading("Title"), r.Title)
	b.WriteByte('\n')

	fileLine := func(name, file string, part mo.Option[*media.Resource], ic icon.Icon) {
		resource, ok := part.Get()
		if !ok {
			prose("%s %s %s", icon.Get(icon.Fail), heading(name), style.Fg(color.Red)("not found"))
			return
		}

		prose(
			"%s %s %s%s%s",
			icon.Get(ic),
			heading(name),
			faint(`"`), style.Italic(file), faint(fmt.Sprintf(`" (%s)`, resource.Resolution.Label)),
		)
		verbatim("  ", faint(resource.URL))
	}

	fileLine("Video", r.VideoFileName, r.Selection.Video, icon.Video)
	fileLine("Audio", r.AudioFileName, r.Selection.Audio, icon.Audio)

	if !r.Selection.Complete() {
		b.WriteByte('\n')
		prose("%s %s", icon.Get(icon.Warn), style.Fg(color.Yellow)("Only one part was found, the merge command will fail"))
	}

	if options.ShowResources {
		b.WriteByte('\n')
		prose("%s %s", heading("Resources"), faint(util.Quantify(len(r.Resources), "resource", "resources")))
		for i, resource := range r.Resources {
			prose(
				"%d. Resolution: %s, ResolutionID: %s, audio: %t",
				i+1,
				style.Fg(color.Yellow)(resource.Resolution.Label),
				resource.ResolutionCode,
				resource.IsAudioOnly,
			)
			verbatim("   ", resource.FileName)
			verbatim("   ", faint(resource.URL))
		}
	}

	b.WriteByte('\n')
	prose("%s", heading("Merge"))
	verbatim("", style.Fg(color.Cyan)(r.MergeCommand))

	_, err := io.WriteString(w, b.String())
	return err
}
