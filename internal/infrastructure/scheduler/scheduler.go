package scheduler

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// SessionExpirer drops booking sessions that have been idle too long.
type SessionExpirer interface {
	ExpireIdle() int
}

// Scheduler runs the periodic session sweep.
type Scheduler struct {
	cron     *cron.Cron
	sessions SessionExpirer
}

// NewScheduler registers the sweep on spec (six-field cron or an @every
// descriptor). It does not start the cron.
func NewScheduler(sessions SessionExpirer, spec string) (*Scheduler, error) {
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithSeconds(),
	)

	s := &Scheduler{
		cron:     c,
		sessions: sessions,
	}

	if _, err := s.cron.AddFunc(spec, s.sweepSessions); err != nil {
		return nil, fmt.Errorf("register session sweep %q: %w", spec, err)
	}
	return s, nil
}

func (s *Scheduler) sweepSessions() {
	if n := s.sessions.ExpireIdle(); n > 0 {
		log.Printf("[booking][scheduler] expired idle sessions count=%d", n)
	}
}

func (s *Scheduler) Start() {
	log.Printf("[booking][scheduler] starting jobs=%d", len(s.cron.Entries()))
	s.cron.Start()
}

// Stop waits for a running sweep to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	log.Printf("[booking][scheduler] stopped")
}
