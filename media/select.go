package media

import (
	"github.com/samber/mo"
)

// Selection is the best video and audio resource of a set. Either may be absent.
type Selection struct {
	Video mo.Option[*Resource] `json:"video"`
	Audio mo.Option[*Resource] `json:"audio"`
}

// Complete reports whether both parts were found.
func (s Selection) Complete() bool {
	return s.Video.IsPresent() && s.Audio.IsPresent()
}

// SelectBest picks the highest ranked resource overall as video and the
// highest ranked audio-only resource as audio. Ties keep the earliest one.
//
// The video pass does not skip audio-only resources.
func SelectBest(set []*Resource) Selection {
	return Selection{
		Video: best(set, func(*Resource) bool { return true }),
		Audio: best(set, func(r *Resource) bool { return r.IsAudioOnly }),
	}
}

func best(set []*Resource, eligible func(*Resource) bool) mo.Option[*Resource] {
	var chosen *Resource
	for _, r := range set {
		if !eligible(r) {
			continue
		}
		if chosen == nil || r.Resolution.Rank > chosen.Resolution.Rank {
			chosen = r
		}
	}

	if chosen == nil {
		return mo.None[*Resource]()
	}
	return mo.Some(chosen)
}
