// Package scheduler rolls the synthetic market data forward on a cron
// schedule so the dashboard always has rows for the coming week.
package scheduler

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"nomix/internal/logger"
	"nomix/internal/services"
)

// Scheduler runs SeedWeek on a cron schedule.
type Scheduler struct {
	cron  *cron.Cron
	seed  services.SeedServicer
	log   *zap.SugaredLogger
	now   func() time.Time
	entry cron.EntryID
}

// New creates a Scheduler that seeds the week starting today whenever spec
// fires. spec uses the standard five-field cron format and is evaluated in UTC.
func New(seed services.SeedServicer, spec string) (*Scheduler, error) {
	log := logger.Named("scheduler")
	s := &Scheduler{
		seed: seed,
		log:  log,
		now:  time.Now,
	}
	s.cron = cron.New(
		cron.WithLocation(time.UTC),
		cron.WithChain(cron.SkipIfStillRunning(cronLogger{log})),
		cron.WithLogger(cronLogger{log}),
	)

	id, err := s.cron.AddFunc(spec, s.RunNow)
	if err != nil {
		return nil, fmt.Errorf("register seed task %q: %w", spec, err)
	}
	s.entry = id
	return s, nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Infow("scheduler started", "next_run", s.Next())
}

// Stop stops the scheduler and waits for a running seed to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.log.Info("scheduler stopped")
}

// Next returns the next time the seed task fires.
func (s *Scheduler) Next() time.Time {
	return s.cron.Entry(s.entry).Schedule.Next(s.now().UTC())
}

// RunNow seeds the current week immediately. Failures are logged; the next
// scheduled run retries the same window.
func (s *Scheduler) RunNow() {
	result, err := s.seed.SeedWeek(s.now())
	if err != nil {
		s.log.Errorw("scheduled seed failed", "error", err)
		return
	}
	s.log.Infow("scheduled seed finished",
		"companies_created", result.CompaniesCreated,
		"stocks_created", result.StocksCreated,
		"index_created", result.IndexCreated,
	)
}

// cronLogger routes cron's internal logging through zap.
type cronLogger struct {
	log *zap.SugaredLogger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Errorw(msg, append(keysAndValues, "error", err)...)
}
