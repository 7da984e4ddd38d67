// Package icon renders status symbols in the variant the user configured.
//
// Icons can be displayed as emoji, nerd-font glyphs, plain ASCII, kaomoji,
// or Unicode squares depending on user preference.
package icon

import (
	"github.com/cdarip/cdarip/key"
	"github.com/spf13/viper"
)

const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	kaomoji = "kaomoji"
	squares = "squares"
)

// AvailableVariants returns a slice of all registered icon style identifiers.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain, kaomoji, squares}
}

// Icon identifies a symbol in the registry.
type Icon int

const (
	Success Icon = iota
	Fail
	Warn
	Video
	Audio
)

type iconDef struct {
	emoji   string
	nerd    string
	plain   string
	kaomoji string
	squares string
}

var icons = map[Icon]*iconDef{
	Success: {emoji: "🎉", nerd: "", plain: "✓", kaomoji: "(ᵔ◡ᵔ)", squares: "🟩"},
	Fail:    {emoji: "💥", nerd: "", plain: "✗", kaomoji: "(×_×)", squares: "🟥"},
	Warn:    {emoji: "⚠️", nerd: "", plain: "!", kaomoji: "(o_O)", squares: "🟨"},
	Video:   {emoji: "🎞️", nerd: "", plain: "▶", kaomoji: "(⌐■_■)", squares: "🟦"},
	Audio:   {emoji: "🎧", nerd: "", plain: "♪", kaomoji: "♪(´ε` )", squares: "🟪"},
}

// Get retrieves the visual representation based on the global icons variant configuration.
func (d *iconDef) Get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case plain:
		return d.plain
	case kaomoji:
		return d.kaomoji
	case squares:
		return d.squares
	default:
		return ""
	}
}

// Get returns the rendered string for i.
func Get(i Icon) string {
	return icons[i].Get()
}
