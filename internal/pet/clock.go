package pet

import "time"

// SimTime is a simulated time of day.
type SimTime struct {
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}

// CurrentSimTime derives the simulated time of day from the wall clock and
// the state's clock anchor. It never mutates state: the displayed clock is a
// pure function of real time, so it cannot stutter with tick jitter.
//
// At factor 1 the system clock is passed through directly, guaranteeing
// zero drift in realtime mode.
func CurrentSimTime(s *State, settings *Settings, now time.Time) SimTime {
	if settings.TimeFactor == 1 {
		hh, mm, ss := now.Clock()
		return SimTime{Hours: hh, Minutes: mm, Seconds: ss}
	}

	elapsedMs := now.UnixMilli() - s.ClockAnchorMs
	simMinutes := float64(s.ClockMinutes) + float64(elapsedMs)/60000*settings.TimeFactor

	totalSeconds := int(simMinutes * 60)
	return SimTime{
		Hours:   (totalSeconds / 3600) % 24,
		Minutes: (totalSeconds % 3600) / 60,
		Seconds: totalSeconds % 60,
	}
}

// TickPeriod returns how long one scheduler tick lasts in real time. One
// tick advances the simulated clock by a minute and applies one nominal
// hour of decay; higher factors shrink the period proportionally.
func TickPeriod(factor float64) time.Duration {
	if factor < 0.1 {
		factor = 0.1
	}
	return time.Duration(float64(time.Minute) / factor)
}
