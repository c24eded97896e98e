package pet

import "time"

// MinutesPerDay is the length of a simulated day in clock minutes.
const MinutesPerDay = 24 * 60

// DefaultName is used until the owner picks a name.
const DefaultName = "Pixel"

// State is the companion's complete mutable snapshot. It is owned by a
// single sim.Session; nothing else mutates it. Settings and the activity
// catalog are deliberately not part of it, they are reloaded fresh each
// session and the persisted blob stays forward-compatible.
type State struct {
	Name string `json:"name"`

	Hunger    int `json:"hunger"`
	Energy    int `json:"energy"`
	Mood      int `json:"mood"`
	Hygiene   int `json:"hygiene"`
	Knowledge int `json:"knowledge"`
	Fitness   int `json:"fitness"`
	Social    int `json:"social"`
	Money     int `json:"money"`
	Adventure int `json:"adventure"`
	Health    int `json:"health"`

	Level int `json:"level"`
	Xp    int `json:"xp"`

	// ClockMinutes counts simulated minutes since midnight, in [0,1440).
	// ClockAnchorMs is the real-world instant (unix ms) the counter was
	// last synchronized; the display clock interpolates from it.
	ClockMinutes  int   `json:"clock_minutes"`
	Days          int   `json:"days"`
	ClockAnchorMs int64 `json:"clock_anchor_ms"`

	Sleeping bool `json:"sleeping"`

	// Display fields, recomputed every tick.
	CurrentEmoji        string `json:"current_emoji"`
	ActivityEmoji       string `json:"activity_emoji"`
	CurrentActivity     string `json:"current_activity"`
	ActivityDescription string `json:"activity_description"`

	LastSavedMs int64 `json:"last_saved_ms,omitempty"`
}

// NewState builds a fresh default state with the clock anchored to now.
func NewState(settings *Settings, now time.Time) *State {
	return &State{
		Name: DefaultName,

		Hunger:    100,
		Energy:    100,
		Mood:      100,
		Hygiene:   100,
		Knowledge: 0,
		Fitness:   0,
		Social:    50,
		Money:     20,
		Adventure: 0,
		Health:    100,

		Level: settings.StartLevel,
		Xp:    0,

		ClockMinutes:  now.Hour()*60 + now.Minute(),
		Days:          0,
		ClockAnchorMs: now.UnixMilli(),

		CurrentEmoji: "🎁",
	}
}

// attr returns a pointer to the gauge backing a, or nil for unknown
// attributes. Keeping this a closed switch means a bad catalog can never
// poke at arbitrary fields.
func (s *State) attr(a Attribute) *int {
	switch a {
	case AttrHunger:
		return &s.Hunger
	case AttrEnergy:
		return &s.Energy
	case AttrMood:
		return &s.Mood
	case AttrHygiene:
		return &s.Hygiene
	case AttrKnowledge:
		return &s.Knowledge
	case AttrFitness:
		return &s.Fitness
	case AttrSocial:
		return &s.Social
	case AttrMoney:
		return &s.Money
	case AttrAdventure:
		return &s.Adventure
	case AttrHealth:
		return &s.Health
	case AttrXp:
		return &s.Xp
	default:
		return nil
	}
}

// Value returns the current value of a and whether a is a known attribute.
func (s *State) Value(a Attribute) (int, bool) {
	p := s.attr(a)
	if p == nil {
		return 0, false
	}
	return *p, true
}

// Apply adds delta to the attribute, clamped per the attribute's bound
// policy. It reports whether the attribute was known.
func (s *State) Apply(a Attribute, delta int) bool {
	p := s.attr(a)
	if p == nil {
		return false
	}
	*p = a.Clamp(*p + delta)
	return true
}

// Decay lowers the attribute by amount, floored at zero.
func (s *State) Decay(a Attribute, amount int) {
	p := s.attr(a)
	if p == nil {
		return
	}
	if *p -= amount; *p < 0 {
		*p = 0
	}
}

// AdvanceClock moves the simulated clock forward by the given number of
// minutes, rolling into Days past midnight.
func (s *State) AdvanceClock(minutes int) {
	s.ClockMinutes += minutes
	for s.ClockMinutes >= MinutesPerDay {
		s.ClockMinutes -= MinutesPerDay
		s.Days++
	}
}

// GainLevels converts accumulated xp into levels. Levels never go down.
func (s *State) GainLevels(xpPerLevel int) {
	if xpPerLevel <= 0 {
		return
	}
	for s.Xp >= xpPerLevel {
		s.Xp -= xpPerLevel
		s.Level++
	}
}

// Clone returns a deep copy of the state. Snapshots handed to callers must
// not alias the session-owned value.
func (s *State) Clone() *State {
	c := *s
	return &c
}
