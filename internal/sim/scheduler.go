package sim

import (
	"context"
	"time"

	"github.com/pixil98/go-log"
	"github.com/pixil98/go-pet/internal/pet"
)

// Scheduler drives the session on a fixed cadence derived from the time
// factor. There is no way to change a running ticker's period in place, so
// a factor change tears the ticker down and starts a new one.
type Scheduler struct {
	session *Session
}

func NewScheduler(session *Session) *Scheduler {
	return &Scheduler{session: session}
}

// Start runs the tick loop until the context is cancelled. Ticks execute
// synchronously to completion; cancellation only ever lands between them.
func (s *Scheduler) Start(ctx context.Context) error {
	logger := log.GetLogger(ctx)

	period := pet.TickPeriod(s.session.TimeFactor())
	logger.Infof("scheduler starting, tick period %s", period)

	ticker := time.NewTicker(period)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("scheduler stopping")
			return nil

		case factor := <-s.session.FactorChanges():
			ticker.Stop()
			period = pet.TickPeriod(factor)
			ticker = time.NewTicker(period)
			logger.Infof("time factor now %g, tick period %s", factor, period)

		case <-ticker.C:
			if err := s.session.Tick(ctx); err != nil {
				return err
			}
		}
	}
}
