package pet

import (
	"fmt"
	"strconv"

	"github.com/pixil98/go-errors"
)

// Activity defines one thing the companion can do, loaded from asset files.
// Effects and guards are keyed by the closed Attribute set, so a bad key is
// caught when the catalog loads rather than mid-tick.
type Activity struct {
	// Title is the display name (e.g., "Burger")
	Title string `json:"title"`

	// Category groups activities into pools (e.g., "food", "hygiene")
	Category string `json:"category"`

	// Emoji is shown while the activity runs and in history entries
	Emoji string `json:"emoji"`

	// RequiredLevel gates the activity; zero means available from level 1
	RequiredLevel int `json:"required_level,omitempty"`

	// Effects are signed deltas applied to attributes, clamped per policy
	Effects map[Attribute]int `json:"effects"`

	// Descriptions are flavor-text templates; one is picked at random.
	// Templates may reference {{ .Name }} for the companion's name.
	Descriptions []string `json:"descriptions"`

	// AvoidIf excludes the activity when a condition holds, e.g.
	// {"energy": "<25"} skips it while energy is below 25.
	AvoidIf map[Attribute]string `json:"avoid_if,omitempty"`
}

// MinLevel returns the effective level gate.
func (a *Activity) MinLevel() int {
	if a.RequiredLevel < 1 {
		return 1
	}
	return a.RequiredLevel
}

// Allowed reports whether none of the avoid-if guards exclude the activity
// for the given state. Guards on attributes the state cannot answer for are
// ignored.
func (a *Activity) Allowed(s *State) bool {
	for attr, cond := range a.AvoidIf {
		v, ok := s.Value(attr)
		if !ok {
			continue
		}
		op, threshold, err := parseGuard(cond)
		if err != nil {
			continue
		}
		// The guard states when to avoid; invert it for inclusion.
		switch op {
		case '<':
			if v < threshold {
				return false
			}
		case '>':
			if v > threshold {
				return false
			}
		case '=':
			if v == threshold {
				return false
			}
		}
	}
	return true
}

// parseGuard splits a guard condition like "<25" into its operator and
// threshold.
func parseGuard(cond string) (byte, int, error) {
	if len(cond) < 2 {
		return 0, 0, fmt.Errorf("guard %q too short", cond)
	}
	op := cond[0]
	if op != '<' && op != '>' && op != '=' {
		return 0, 0, fmt.Errorf("guard %q: unknown operator %q", cond, string(op))
	}
	threshold, err := strconv.Atoi(cond[1:])
	if err != nil {
		return 0, 0, fmt.Errorf("guard %q: bad threshold: %w", cond, err)
	}
	return op, threshold, nil
}

// Validate satisfies storage.ValidatingSpec.
func (a *Activity) Validate() error {
	el := errors.NewErrorList()

	if a.Title == "" {
		el.Add(fmt.Errorf("activity title is required"))
	}
	if a.Category == "" {
		el.Add(fmt.Errorf("activity category is required"))
	}
	if a.Emoji == "" {
		el.Add(fmt.Errorf("activity emoji is required"))
	}
	if len(a.Descriptions) == 0 {
		el.Add(fmt.Errorf("activity needs at least one description"))
	}
	for attr := range a.Effects {
		if !attr.Known() {
			el.Add(fmt.Errorf("effects: unknown attribute %q", attr))
		}
	}
	for attr, cond := range a.AvoidIf {
		if !attr.Known() {
			el.Add(fmt.Errorf("avoid_if: unknown attribute %q", attr))
		}
		if _, _, err := parseGuard(cond); err != nil {
			el.Add(fmt.Errorf("avoid_if[%s]: %w", attr, err))
		}
	}

	return el.Err()
}
