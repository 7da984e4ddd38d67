// Package filename derives portable file names from page titles.
package filename

import (
	"regexp"
	"strings"
	"unicode"
)

// MaxLength bounds a sanitized title, in characters.
const MaxLength = 200

// Fallback titles. They differ so logs show which step came up empty.
const (
	FallbackEmptyInput = "untitled-empty1"
	FallbackEmptyAfter = "untitled-empty2"
)

var (
	// reserved on Windows, the most restrictive of the common filesystems
	illegalChars = regexp.MustCompile(`[<>:"/\\|?*]`)
	controlChars = regexp.MustCompile(`[\x00-\x1f\x7f]`)
)

// Sanitize turns a raw page title into a name that is valid on every common
// filesystem. It never fails; unusable input yields one of the fallback titles.
// Sanitize(Sanitize(s)) == Sanitize(s).
func Sanitize(title string) string {
	if title == "" {
		return FallbackEmptyInput
	}

	sanitized := illegalChars.ReplaceAllString(title, "_")
	sanitized = controlChars.ReplaceAllString(sanitized, "_")
	sanitized = trim(sanitized)

	if runes := []rune(sanitized); len(runes) > MaxLength {
		// cutting may expose a trailing space or dot
		sanitized = trim(string(runes[:MaxLength]))
	}

	if sanitized == "" {
		return FallbackEmptyAfter
	}

	return sanitized
}

func trim(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return r == '.' || unicode.IsSpace(r)
	})
}

// Video is the download name of the video part.
func Video(title string) string {
	return title + "-video.mp4"
}

// Audio is the download name of the audio part.
func Audio(title string) string {
	return title + "-audio.mp4"
}

// Merged is the name of the muxed output.
func Merged(title string) string {
	return title + ".mp4"
}
