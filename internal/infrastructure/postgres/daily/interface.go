package daily

import (
	"context"
	"time"
)

// DailyRepository is the interface for a daily observation repository.
// One instance exists per asset class, each bound to its own table.
//
//go:generate mockgen -source=interface.go -destination=mock/repository_mock.go -package=mock
type DailyRepository interface {
	Insert(ctx context.Context, record *Record) error
	FindLatestByCode(ctx context.Context, code string) (*Record, error)
	FindByCodeBetween(ctx context.Context, code string, start, end time.Time) ([]*Record, error)
	DistinctCodesBetween(ctx context.Context, start, end time.Time) ([]string, error)
	DeleteByCodeBetween(ctx context.Context, code string, start, end time.Time) error
}
