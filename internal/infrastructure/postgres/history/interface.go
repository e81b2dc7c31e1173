package history

import (
	"context"
	"time"
)

// HistoryRepository is the interface for a history repository. One instance
// exists per asset class, each bound to its own table.
//
//go:generate mockgen -source=interface.go -destination=mock/repository_mock.go -package=mock
type HistoryRepository interface {
	Insert(ctx context.Context, record *Record) error
	ExistsByCodeAndDate(ctx context.Context, code string, date time.Time) (bool, error)
	DeleteBefore(ctx context.Context, date time.Time) error
}
