// Package ffmpeg composes the muxing command that joins the downloaded parts.
// The command is shown to the user, never executed.
package ffmpeg

import (
	"fmt"

	"github.com/cdarip/cdarip/constant"
	"github.com/cdarip/cdarip/filename"
	"github.com/samber/lo"
)

// Composer formats merge invocations for a given binary.
type Composer struct {
	// Binary defaults to ffmpeg when empty.
	Binary string
}

func (c *Composer) binary() string {
	return lo.Ternary(c.Binary == "", constant.DefaultMuxer, c.Binary)
}

// Args returns the invocation as argv. Both streams are copied, nothing is re-encoded.
func (c *Composer) Args(videoFile, audioFile, title string) []string {
	return []string{
		c.binary(),
		"-i", videoFile,
		"-i", audioFile,
		"-c:v", "copy",
		"-c:a", "copy",
		filename.Merged(title),
	}
}

// Command returns the invocation as one line with every file name double quoted.
// Names are interpolated verbatim; Sanitize already removed the quote character.
func (c *Composer) Command(videoFile, audioFile, title string) string {
	return fmt.Sprintf(
		`%s -i "%s" -i "%s" -c:v copy -c:a copy "%s"`,
		c.binary(), videoFile, audioFile, filename.Merged(title),
	)
}

// MergeCommand composes the command for the default binary.
func MergeCommand(videoFile, audioFile, title string) string {
	return (&Composer{}).Command(videoFile, audioFile, title)
}
