package pet

import (
	"fmt"
	"math/rand/v2"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-pet/internal/storage"
)

// Mood set ids the picker looks up in the emoji store.
const (
	MoodHungry  = "hungry"
	MoodTired   = "tired"
	MoodSad     = "sad"
	MoodHappy   = "happy"
	MoodCool    = "cool"
	MoodPlayful = "playful"
	MoodNeutral = "neutral"
)

// Thresholds for the emoji priority ladder.
const (
	lowHunger     = 20
	lowEnergy     = 20
	lowMood       = 20
	highEnergy    = 90
	highMood      = 80
	highFitness   = 80
	playfulChance = 0.1
	fallbackGlyph = "😐"
)

// EmojiSet is the asset spec mapping a mood id to its candidate glyphs.
type EmojiSet struct {
	Glyphs []string `json:"glyphs"`
}

// Validate satisfies storage.ValidatingSpec.
func (e *EmojiSet) Validate() error {
	el := errors.NewErrorList()
	if len(e.Glyphs) == 0 {
		el.Add(fmt.Errorf("emoji set needs at least one glyph"))
	}
	return el.Err()
}

// PickEmoji chooses a display emoji for the current attributes. The ladder
// is evaluated in fixed priority order, first match wins; the glyph within
// the matched set is uniform-random so identical states still show variety.
func PickEmoji(s *State, sets storage.Storer[*EmojiSet], rng *rand.Rand) string {
	var mood string
	switch {
	case s.Hunger < lowHunger:
		mood = MoodHungry
	case s.Energy < lowEnergy:
		mood = MoodTired
	case s.Mood < lowMood:
		mood = MoodSad
	case s.Energy > highEnergy && s.Mood > highMood:
		mood = MoodHappy
	case s.Fitness > highFitness:
		mood = MoodCool
	case rng.Float64() < playfulChance:
		mood = MoodPlayful
	default:
		mood = MoodNeutral
	}

	set := sets.Get(mood)
	if set == nil || len(set.Glyphs) == 0 {
		return fallbackGlyph
	}
	return set.Glyphs[rng.IntN(len(set.Glyphs))]
}
