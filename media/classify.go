package media

import (
	"strings"

	"github.com/cdarip/cdarip/constant"
	"github.com/cdarip/cdarip/log"
	"github.com/cdarip/cdarip/resolution"
)

// suffixLength is the opaque identifier plus the extension, both stripped to get the type prefix.
const suffixLength = constant.ContentIDLength + len(constant.MediaExtension)

// Classifier recognizes media stream URLs by their file name convention:
//
//	[a_]<code><32 character id>.mp4
type Classifier struct {
	// Strict rejects names whose identifier is not exactly 32 hexadecimal characters.
	Strict bool
}

// Classify runs the default, lenient classifier.
func Classify(urls []string) []*Resource {
	return (&Classifier{}).Classify(urls)
}

// Classify returns the media resources among urls in encounter order, unique by URL.
// The first occurrence of a URL wins. No match yields an empty set.
func (c *Classifier) Classify(urls []string) []*Resource {
	var (
		found = make([]*Resource, 0)
		seen  = make(map[string]struct{})
	)

	for _, url := range urls {
		resource, ok := c.parse(url)
		if !ok {
			continue
		}

		if _, dup := seen[url]; dup {
			continue
		}
		seen[url] = struct{}{}
		found = append(found, resource)
	}

	for i, r := range found {
		log.WithFields(log.DebugLevel, log.Fields{
			"index":      i + 1,
			"url":        r.URL,
			"audio":      r.IsAudioOnly,
			"code":       r.ResolutionCode,
			"resolution": r.Resolution.Label,
		}, "found media resource")
	}

	return found
}

func (c *Classifier) parse(url string) (*Resource, bool) {
	if !strings.HasSuffix(url, constant.MediaExtension) {
		return nil, false
	}

	name := url[strings.LastIndex(url, "/")+1:]
	audio := strings.HasPrefix(name, constant.AudioPrefix)

	var prefix string
	if len(name) >= suffixLength {
		prefix = name[:len(name)-suffixLength]
	}

	if c.Strict && !isContentID(name) {
		log.Debugf("rejecting %s: malformed content id", url)
		return nil, false
	}

	code := prefix
	if audio {
		// the marker is dropped by length; a prefix shorter than it leaves no code
		code = ""
		if len(prefix) >= len(constant.AudioPrefix) {
			code = prefix[len(constant.AudioPrefix):]
		}
	}

	return &Resource{
		URL:            url,
		FileName:       name,
		IsAudioOnly:    audio,
		ResolutionCode: code,
		Resolution:     resolution.Lookup(code),
	}, true
}

func isContentID(name string) bool {
	if len(name) < suffixLength {
		return false
	}

	id := name[len(name)-suffixLength : len(name)-len(constant.MediaExtension)]
	for _, ch := range id {
		switch {
		case '0' <= ch && ch <= '9', 'a' <= ch && ch <= 'f', 'A' <= ch && ch <= 'F':
		default:
			return false
		}
	}
	return true
}
