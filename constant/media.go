package constant

// Media file naming convention: [a_]<code><32-char id>.mp4
const (
	// MediaExtension is the suffix every raw media stream URL ends with.
	MediaExtension = ".mp4"

	// ContentIDLength is the length of the opaque identifier between the type prefix and the extension.
	ContentIDLength = 32

	// AudioPrefix marks an audio-only stream.
	AudioPrefix = "a_"
)

// Page collaborator defaults.
const (
	// TargetPagePrefix is the only page family the tool understands.
	TargetPagePrefix = "https://www.cda.pl/"

	// TitleSelector locates the video title element on a saved page.
	TitleSelector = "div#naglowek > span.title-name > span > h1"
)

// Fallback titles reported by the page collaborator.
const (
	TitleNodeNotFound = "untitled-node_not_found"
	TitleScriptFailed = "untitled-script_failed"
)

// DefaultMuxer is the stream-muxing tool the merge command targets.
const DefaultMuxer = "ffmpeg"
