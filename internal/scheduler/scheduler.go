package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/yujm08/MSAProjects-ezen/pkg/logger"
)

// Job is one scheduled unit of work. Jobs run to completion and yield
// control back to the scheduler; they must do their own per-item error
// handling.
type Job func(ctx context.Context)

type entry struct {
	name     string
	job      Job
	interval time.Duration

	// daily trigger, pinned to a timezone
	loc    *time.Location
	hour   int
	minute int
}

// Scheduler runs fixed-period and fixed-local-time jobs on their own
// goroutines. It replaces framework scheduling annotations with an
// explicit ticker/timer loop whose due-time computation is a testable
// function of current time.
type Scheduler struct {
	logger  logger.Interface
	entries []entry

	wg sync.WaitGroup
}

// New creates an empty Scheduler.
func New(log logger.Interface) *Scheduler {
	return &Scheduler{
		logger: log,
	}
}

// AddInterval registers a job that fires every period.
func (s *Scheduler) AddInterval(name string, every time.Duration, job Job) {
	s.entries = append(s.entries, entry{
		name:     name,
		job:      job,
		interval: every,
	})
}

// AddDailyAt registers a job that fires once per day at the given local
// time in the given timezone.
func (s *Scheduler) AddDailyAt(name string, loc *time.Location, hour, minute int, job Job) {
	s.entries = append(s.entries, entry{
		name:   name,
		job:    job,
		loc:    loc,
		hour:   hour,
		minute: minute,
	})
}

// Start launches every registered job. It returns immediately; jobs stop
// when the context is cancelled.
func (s *Scheduler) Start(ctx context.Context) {
	for _, e := range s.entries {
		e := e
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			if e.interval > 0 {
				s.runInterval(ctx, e)
			} else {
				s.runDaily(ctx, e)
			}
		}()
	}
}

// Wait blocks until every job loop has exited.
func (s *Scheduler) Wait() {
	s.wg.Wait()
}

func (s *Scheduler) runInterval(ctx context.Context, e entry) {
	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.invoke(ctx, e)
		}
	}
}

func (s *Scheduler) runDaily(ctx context.Context, e entry) {
	for {
		next := NextDailyRun(time.Now(), e.loc, e.hour, e.minute)
		timer := time.NewTimer(time.Until(next))

		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
			s.invoke(ctx, e)
		}
	}
}

// invoke runs the job, recovering from panics so one bad cycle never takes
// the scheduler down.
func (s *Scheduler) invoke(ctx context.Context, e entry) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error(fmt.Errorf("job %s panicked: %v", e.name, r))
		}
	}()

	started := time.Now()
	e.job(ctx)
	s.logger.Debug("job finished", logger.Field{
		Key:   "job",
		Value: e.name,
	}, logger.Field{
		Key:   "duration",
		Value: time.Since(started).String(),
	})
}

// NextDailyRun returns the next instant after now at which a daily job
// pinned to hour:minute in loc is due.
func NextDailyRun(now time.Time, loc *time.Location, hour, minute int) time.Time {
	local := now.In(loc)
	next := time.Date(local.Year(), local.Month(), local.Day(), hour, minute, 0, 0, loc)
	if !next.After(local) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}
