package poller

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/robgonnella/noip-sensor/internal/logger"
)

// CronScheduler implements Scheduler on top of robfig/cron
type CronScheduler struct {
	cron *cron.Cron
}

// NewCronScheduler returns a scheduler that skips a run while the
// previous one is still executing and recovers job panics
func NewCronScheduler(log logger.Logger) *CronScheduler {
	cronLog := logger.NewCronLogger(log)

	return &CronScheduler{
		cron: cron.New(
			cron.WithLogger(cronLog),
			cron.WithChain(
				cron.Recover(cronLog),
				cron.SkipIfStillRunning(cronLog),
			),
		),
	}
}

// Every registers job to run every interval
func (s *CronScheduler) Every(interval time.Duration, job func()) error {
	if interval < time.Second {
		return fmt.Errorf("interval must be at least 1s: got %s", interval)
	}

	s.cron.Schedule(cron.Every(interval), cron.FuncJob(job))

	return nil
}

// Start starts the scheduler in its own goroutine
func (s *CronScheduler) Start() {
	s.cron.Start()
}

// Stop stops the scheduler, it does not wait for running jobs
func (s *CronScheduler) Stop() {
	s.cron.Stop()
}
