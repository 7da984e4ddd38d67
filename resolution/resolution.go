// Package resolution maps the short quality codes embedded in media file names
// to human labels and comparable ranks.
package resolution

import (
	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

// Unknown is the code every unregistered value resolves to.
const Unknown = "unknown"

// Info describes one quality level. Higher Rank is better; 0 is reserved for Unknown.
type Info struct {
	Code  string `json:"code"`
	Label string `json:"label"`
	Rank  int    `json:"rank"`
}

// String returns the human label.
func (i Info) String() string {
	return i.Label
}

// IsKnown reports whether the info came from a registered code.
func (i Info) IsKnown() bool {
	return i.Code != Unknown
}

var registry = map[string]Info{
	"hd":    {Code: "hd", Label: "1080p", Rank: 1080},
	"sd":    {Code: "sd", Label: "720p", Rank: 720},
	"lq":    {Code: "lq", Label: "480p", Rank: 480},
	"vl":    {Code: "vl", Label: "360p", Rank: 360},
	Unknown: {Code: Unknown, Label: "Unknown", Rank: 0},
}

// Lookup returns the entry for an exact code match or the Unknown entry.
func Lookup(code string) Info {
	if info, ok := registry[code]; ok {
		return info
	}
	return registry[Unknown]
}

// All returns every registered entry, best first.
func All() []Info {
	infos := lo.Values(registry)
	// ranks are unique, so ordering by rank alone is total
	slices.SortFunc(infos, func(a, b Info) int {
		return b.Rank - a.Rank
	})
	return infos
}

// Codes returns the registered codes, best first, without Unknown.
func Codes() []string {
	return lo.FilterMap(All(), func(i Info, _ int) (string, bool) {
		return i.Code, i.IsKnown()
	})
}
