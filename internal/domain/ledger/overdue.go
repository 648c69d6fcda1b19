package ledger

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// Sweeper runs the overdue sweep on a cron schedule.
type Sweeper struct {
	service *Service
	cron    *cron.Cron
	spec    string
}

// NewSweeper creates a sweeper with the given cron spec, e.g. "5 0 * * *"
// to run shortly after midnight.
func NewSweeper(service *Service, spec string) *Sweeper {
	return &Sweeper{
		service: service,
		cron:    cron.New(),
		spec:    spec,
	}
}

// Start registers the sweep job and starts the scheduler. It also runs one
// sweep immediately so a restart does not leave stale statuses until the
// next tick.
func (s *Sweeper) Start() error {
	_, err := s.cron.AddFunc(s.spec, func() {
		s.service.SweepOverdue(context.Background(), time.Now())
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	log.Info().Str("spec", s.spec).Msg("overdue sweeper started")

	s.service.SweepOverdue(context.Background(), time.Now())
	return nil
}

// Stop stops the scheduler and waits for a running sweep to finish.
func (s *Sweeper) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Info().Msg("overdue sweeper stopped")
}
