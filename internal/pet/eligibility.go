package pet

import (
	"sort"

	"github.com/pixil98/go-pet/internal/storage"
)

// Candidate pairs a catalog id with its activity definition.
type Candidate struct {
	Id       string
	Activity *Activity
}

// FindEligible returns the activities in the catalog the companion may
// perform right now: matching category, level gate met, and no avoid-if
// guard excluding it. An empty result is a normal outcome, not an error.
//
// Results are sorted by id so selection is deterministic under a seeded
// random source.
func FindEligible(catalog storage.Storer[*Activity], category string, s *State) []Candidate {
	var out []Candidate
	for id, act := range catalog.GetAll() {
		if act.Category != category {
			continue
		}
		if s.Level < act.MinLevel() {
			continue
		}
		if !act.Allowed(s) {
			continue
		}
		out = append(out, Candidate{Id: id, Activity: act})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Id < out[j].Id })
	return out
}
