package sim

import (
	"log/slog"
	"math/rand/v2"

	"github.com/pixil98/go-pet/internal/pet"
	"github.com/pixil98/go-pet/internal/storage"
)

// Result describes one executed activity. Effects carries the raw signed
// deltas from the definition, not the clamped outcome; history entries want
// the magnitude even when the gauge hit a bound.
type Result struct {
	Emoji       string
	Title       string
	Description string
	Effects     map[pet.Attribute]int
}

// Execute picks one eligible activity from the category at random and
// applies it to the state in place: attribute effects (clamped), xp-driven
// level gains, and the display fields. It returns nil, with the state
// untouched, when nothing in the category is eligible; callers render an
// idle fallback instead.
func Execute(s *pet.State, settings *pet.Settings, catalog storage.Storer[*pet.Activity], category string, rng *rand.Rand) *Result {
	candidates := pet.FindEligible(catalog, category, s)
	if len(candidates) == 0 {
		return nil
	}

	chosen := candidates[rng.IntN(len(candidates))]
	act := chosen.Activity

	for attr, delta := range act.Effects {
		if !s.Apply(attr, delta) {
			// Valid catalogs cannot reach this; load-time validation
			// rejects unknown attributes.
			slog.Warn("skipping unknown effect target", "activity", chosen.Id, "attribute", attr)
		}
	}
	s.GainLevels(settings.XpPerLevel)

	desc := ""
	if len(act.Descriptions) > 0 {
		raw := act.Descriptions[rng.IntN(len(act.Descriptions))]
		rendered, err := pet.RenderDescription(raw, s.Name)
		if err != nil {
			slog.Warn("failed to render activity description", "activity", chosen.Id, "error", err)
		} else {
			desc = rendered
		}
	}

	s.ActivityEmoji = act.Emoji
	s.CurrentActivity = act.Title
	s.ActivityDescription = desc

	return &Result{
		Emoji:       act.Emoji,
		Title:       act.Title,
		Description: desc,
		Effects:     act.Effects,
	}
}
