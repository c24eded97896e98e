package sim

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sort"
	"sync"
	"time"

	"github.com/pixil98/go-log"
	"github.com/pixil98/go-pet/internal/history"
	"github.com/pixil98/go-pet/internal/persist"
	"github.com/pixil98/go-pet/internal/pet"
	"github.com/pixil98/go-pet/internal/storage"
)

// Idle messages shown when a tick executes nothing.
const (
	idleMessage      = "not in the mood for anything"
	noActivityFits   = "nothing fits right now"
	stillSleeping    = "still sleeping"
	fallsAsleepTitle = "falls asleep"
	sleepEmoji       = "💤"
)

// Publisher pushes state changes out to whoever is watching. Failures are
// tolerated; the simulation never depends on its observers.
type Publisher interface {
	PublishState(*pet.State) error
	PublishHistory(history.Entry) error
}

// Session is the single authoritative owner of a companion's state. Every
// mutation, whether from the tick scheduler or a direct user operation,
// goes through its mutex, so each path works on one consistent snapshot.
type Session struct {
	mu       sync.Mutex
	state    *pet.State
	settings *pet.Settings

	catalog storage.Storer[*pet.Activity]
	emojis  storage.Storer[*pet.EmojiSet]

	bridge *persist.Bridge
	hist   *history.Log
	pub    Publisher
	rng    *rand.Rand

	factorCh chan float64
}

// NewSession wires a session around an already-loaded state. A nil
// publisher is fine, the session just won't broadcast.
func NewSession(state *pet.State, settings *pet.Settings, catalog storage.Storer[*pet.Activity], emojis storage.Storer[*pet.EmojiSet], bridge *persist.Bridge, hist *history.Log, pub Publisher, rng *rand.Rand) *Session {
	if rng == nil {
		now := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(now, now>>32))
	}
	return &Session{
		state:    state,
		settings: settings,
		catalog:  catalog,
		emojis:   emojis,
		bridge:   bridge,
		hist:     hist,
		pub:      pub,
		rng:      rng,
		factorCh: make(chan float64, 1),
	}
}

// Tick runs one scheduler cycle: advance the clock, decay, refresh the
// display emoji, evaluate the sleep machine, maybe run a self-initiated
// activity, then persist. At most one activity executes per tick.
func (s *Session) Tick(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.debugf(ctx, "tick")

	// The counter and the anchor move together: once the tick absorbs a
	// minute into ClockMinutes, interpolation may only cover the fraction
	// elapsed since this instant, or the minute would be counted twice.
	s.state.AdvanceClock(1)
	s.state.ClockAnchorMs = time.Now().UnixMilli()

	for attr, rate := range s.settings.DecayPerHour {
		s.state.Decay(attr, rate)
	}

	s.state.CurrentEmoji = pet.PickEmoji(s.state, s.emojis, s.rng)

	if s.state.Sleeping {
		if s.state.Energy >= s.settings.WakeThreshold {
			// Awake again; fall through to the normal activity roll
			// in the same tick.
			s.state.Sleeping = false
			s.debugf(ctx, "woke up")
		} else {
			s.sleepTick(ctx)
			s.persistAndPublish(ctx)
			return nil
		}
	}

	if s.state.Energy < s.settings.SleepThreshold {
		s.state.Sleeping = true
		s.setDisplay(sleepEmoji, fallsAsleepTitle, "")
		s.record(ctx, history.Entry{
			Timestamp: s.timeLabel(),
			Emoji:     sleepEmoji,
			Title:     fallsAsleepTitle,
		})
		s.debugf(ctx, "fell asleep")
		s.persistAndPublish(ctx)
		return nil
	}

	if s.rng.Float64() < s.settings.SelfActivityProbability {
		category := s.settings.SelfActivityCategories[s.rng.IntN(len(s.settings.SelfActivityCategories))]
		res := Execute(s.state, s.settings, s.catalog, category, s.rng)
		if res != nil {
			s.record(ctx, s.entryFor(res))
		} else {
			s.setDisplay("", noActivityFits, "")
		}
	} else {
		s.setDisplay("", idleMessage, "")
	}

	s.persistAndPublish(ctx)
	return nil
}

// sleepTick runs the asleep branch: one regenerating activity if any is
// eligible, otherwise the companion just keeps sleeping.
func (s *Session) sleepTick(ctx context.Context) {
	res := Execute(s.state, s.settings, s.catalog, s.settings.SleepCategory, s.rng)
	if res != nil {
		s.record(ctx, s.entryFor(res))
		return
	}

	s.setDisplay(sleepEmoji, stillSleeping, "")
	s.record(ctx, history.Entry{
		Timestamp: s.timeLabel(),
		Emoji:     sleepEmoji,
		Title:     stillSleeping,
	})
}

// TriggerActivity runs one random activity from the category immediately,
// outside the tick cadence. It deliberately ignores the sleep machine: an
// owner can feed a sleeping companion. The bool is false when nothing in
// the category was eligible, in which case the state is unchanged.
func (s *Session) TriggerActivity(ctx context.Context, category string) (*pet.State, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.debugf(ctx, "trigger %s", category)

	res := Execute(s.state, s.settings, s.catalog, category, s.rng)
	if res == nil {
		return nil, false
	}

	s.record(ctx, s.entryFor(res))
	s.persistAndPublish(ctx)
	return s.state.Clone(), true
}

// Rename sets the companion's name.
func (s *Session) Rename(ctx context.Context, name string) (*pet.State, error) {
	if name == "" {
		return nil, fmt.Errorf("name must not be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Name = name
	s.persistAndPublish(ctx)
	return s.state.Clone(), nil
}

// SetTimeFactor changes the simulation speed. The scheduler is notified so
// it can tear down its timer and start one with the new period.
func (s *Session) SetTimeFactor(ctx context.Context, factor float64) error {
	if factor <= 0 {
		return fmt.Errorf("time factor must be positive")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Re-anchor the display clock before the factor changes so the
	// interpolated time stays continuous.
	now := time.Now()
	st := pet.CurrentSimTime(s.state, s.settings, now)
	s.state.ClockMinutes = st.Hours*60 + st.Minutes
	s.state.ClockAnchorMs = now.UnixMilli()

	s.settings.TimeFactor = factor

	select {
	case s.factorCh <- factor:
	default:
	}

	s.persistAndPublish(ctx)
	return nil
}

// Reset wipes the companion back to defaults, including its history.
func (s *Session) Reset(ctx context.Context) *pet.State {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = pet.NewState(s.settings, time.Now())
	if err := s.hist.Reset(); err != nil {
		log.GetLogger(ctx).Errorf("resetting history: %v", err)
	}
	s.persistAndPublish(ctx)
	return s.state.Clone()
}

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() *pet.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// SimTime returns the current simulated time of day.
func (s *Session) SimTime() pet.SimTime {
	s.mu.Lock()
	defer s.mu.Unlock()
	return pet.CurrentSimTime(s.state, s.settings, time.Now())
}

// TimeFactor returns the current time-scale factor.
func (s *Session) TimeFactor() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings.TimeFactor
}

// FactorChanges is signalled whenever SetTimeFactor succeeds.
func (s *Session) FactorChanges() <-chan float64 {
	return s.factorCh
}

// entryFor converts an execution result into a history entry, effects in
// stable attribute order.
func (s *Session) entryFor(res *Result) history.Entry {
	attrs := make([]pet.Attribute, 0, len(res.Effects))
	for attr := range res.Effects {
		attrs = append(attrs, attr)
	}
	sort.Slice(attrs, func(i, j int) bool { return attrs[i] < attrs[j] })

	effects := make([]history.Effect, 0, len(attrs))
	for _, attr := range attrs {
		effects = append(effects, history.Effect{Icon: attr.Icon(), Value: res.Effects[attr]})
	}

	return history.Entry{
		Timestamp: s.timeLabel(),
		Emoji:     res.Emoji,
		Title:     res.Title,
		Effects:   effects,
	}
}

// record adds an entry to the history log and broadcasts it.
func (s *Session) record(ctx context.Context, e history.Entry) {
	if err := s.hist.Add(e); err != nil {
		log.GetLogger(ctx).Errorf("recording history: %v", err)
	}
	if s.pub != nil {
		if err := s.pub.PublishHistory(e); err != nil {
			log.GetLogger(ctx).Errorf("publishing history entry: %v", err)
		}
	}
}

// persistAndPublish saves the state and broadcasts it. Neither failure
// aborts the tick; the next one will try again.
func (s *Session) persistAndPublish(ctx context.Context) {
	if err := s.bridge.Save(s.state, s.settings.TimeFactor, time.Now()); err != nil {
		log.GetLogger(ctx).Errorf("persisting state: %v", err)
	}
	if s.pub != nil {
		if err := s.pub.PublishState(s.state.Clone()); err != nil {
			log.GetLogger(ctx).Errorf("publishing state: %v", err)
		}
	}
}

func (s *Session) setDisplay(emoji, title, desc string) {
	s.state.ActivityEmoji = emoji
	s.state.CurrentActivity = title
	s.state.ActivityDescription = desc
}

// timeLabel formats the simulated clock for history entries.
func (s *Session) timeLabel() string {
	st := pet.CurrentSimTime(s.state, s.settings, time.Now())
	return fmt.Sprintf("%02d:%02d", st.Hours, st.Minutes)
}

func (s *Session) debugf(ctx context.Context, format string, args ...any) {
	if s.settings.DebugLogs {
		log.GetLogger(ctx).Infof("session: "+format, args...)
	}
}
