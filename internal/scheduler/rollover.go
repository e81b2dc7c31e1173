package scheduler

import (
	"context"
	"time"

	"github.com/yujm08/MSAProjects-ezen/pkg/logger"
)

// Migrator is the per-asset-class rollover behavior: migrate one day's
// closings and prune aged history.
type Migrator interface {
	MigrateDay(ctx context.Context, cutoff time.Time) error
	Prune(ctx context.Context, before time.Time) error
}

// Rollover drives the daily migration and pruning across every asset
// class. The cutoff sits two days in the past, safely clear of midnight
// and session-boundary ambiguity across market timezones.
type Rollover struct {
	migrators       []Migrator
	loc             *time.Location
	retentionMonths int
	logger          logger.Interface

	clock func() time.Time
}

const cutoffLagDays = 2

// NewRollover creates a Rollover pinned to the given timezone.
func NewRollover(migrators []Migrator, loc *time.Location, retentionMonths int, log logger.Interface) *Rollover {
	return &Rollover{
		migrators:       migrators,
		loc:             loc,
		retentionMonths: retentionMonths,
		logger:          log,
		clock:           time.Now,
	}
}

// MigrateAll migrates the cutoff date for every asset class. A failure in
// one class does not stop the others.
func (r *Rollover) MigrateAll(ctx context.Context) {
	cutoff := r.today().AddDate(0, 0, -cutoffLagDays)

	for _, m := range r.migrators {
		if err := m.MigrateDay(ctx, cutoff); err != nil {
			r.logger.ErrorContext(ctx, err, logger.Field{
				Key:   "action",
				Value: "migrate_day",
			})
		}
	}
}

// PruneAll prunes history older than the retention window for every asset
// class.
func (r *Rollover) PruneAll(ctx context.Context) {
	before := r.today().AddDate(0, -r.retentionMonths, 0)

	for _, m := range r.migrators {
		if err := m.Prune(ctx, before); err != nil {
			r.logger.ErrorContext(ctx, err, logger.Field{
				Key:   "action",
				Value: "prune_history",
			})
		}
	}
}

// today returns midnight of the current date in the rollover timezone.
func (r *Rollover) today() time.Time {
	now := r.clock().In(r.loc)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, r.loc)
}
