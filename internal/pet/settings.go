package pet

import (
	"encoding/json"
	"fmt"

	"github.com/pixil98/go-errors"
)

// Settings holds the simulation tunables. They are loaded once at startup
// and treated as immutable, except for TimeFactor which the owner may change
// at runtime through the session.
type Settings struct {
	// TimeFactor converts real elapsed time into simulated elapsed time.
	// Factor 1 means realtime: one tick per real minute.
	TimeFactor float64 `json:"time_factor"`

	XpPerLevel int `json:"xp_per_level"`
	StartLevel int `json:"start_level"`

	// SelfActivityProbability is the per-tick chance the companion starts
	// an activity on its own, drawn from SelfActivityCategories.
	SelfActivityProbability float64  `json:"self_activity_probability"`
	SelfActivityCategories  []string `json:"self_activity_categories"`

	// SleepCategory is the activity pool used while asleep.
	SleepCategory string `json:"sleep_category"`

	// SleepThreshold and WakeThreshold bound the sleep cycle: the companion
	// falls asleep when energy drops below the former and wakes once energy
	// reaches the latter.
	SleepThreshold int `json:"sleep_threshold"`
	WakeThreshold  int `json:"wake_threshold"`

	// DecayPerHour is subtracted from each listed attribute every tick.
	DecayPerHour map[Attribute]int `json:"decay_per_hour"`

	DebugLogs bool `json:"debug_logs"`

	HistoryEnabled    bool `json:"history_enabled"`
	MaxHistoryEntries int  `json:"max_history_entries"`
}

func (s *Settings) UnmarshalJSON(b []byte) error {
	type Alias Settings
	if err := json.Unmarshal(b, (*Alias)(s)); err != nil {
		return err
	}
	if s.StartLevel == 0 {
		s.StartLevel = 1
	}
	if len(s.SelfActivityCategories) == 0 {
		s.SelfActivityCategories = []string{"entertainment", "automatic"}
	}
	if s.SleepCategory == "" {
		s.SleepCategory = "regenerate"
	}
	return nil
}

func (s *Settings) Validate() error {
	el := errors.NewErrorList()

	if s.TimeFactor <= 0 {
		el.Add(fmt.Errorf("time_factor must be positive"))
	}
	if s.XpPerLevel <= 0 {
		el.Add(fmt.Errorf("xp_per_level must be positive"))
	}
	if s.StartLevel < 1 {
		el.Add(fmt.Errorf("start_level must be at least 1"))
	}
	if s.SelfActivityProbability < 0 || s.SelfActivityProbability > 1 {
		el.Add(fmt.Errorf("self_activity_probability must be in [0,1]"))
	}
	if s.SleepThreshold < 0 || s.SleepThreshold > 100 {
		el.Add(fmt.Errorf("sleep_threshold must be in [0,100]"))
	}
	if s.WakeThreshold < 0 || s.WakeThreshold > 100 {
		el.Add(fmt.Errorf("wake_threshold must be in [0,100]"))
	}
	if s.WakeThreshold <= s.SleepThreshold {
		el.Add(fmt.Errorf("wake_threshold must be greater than sleep_threshold"))
	}
	for attr := range s.DecayPerHour {
		if !attr.Known() {
			el.Add(fmt.Errorf("decay_per_hour: unknown attribute %q", attr))
		}
	}
	if s.HistoryEnabled && s.MaxHistoryEntries < 1 {
		el.Add(fmt.Errorf("max_history_entries must be positive when history is enabled"))
	}

	return el.Err()
}
