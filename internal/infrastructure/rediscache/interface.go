package rediscache

import (
	"context"

	"github.com/yujm08/MSAProjects-ezen/internal/domain/quote"
)

// LatestQuoteStore keeps the newest accepted quote per instrument for
// downstream readers (charting reads the daily/history tables for series
// and this cache for the current value).
//
//go:generate mockgen -source=interface.go -destination=mock/cache_mock.go -package=mock
type LatestQuoteStore interface {
	Set(ctx context.Context, class quote.Class, q *quote.Quote) error
	Get(ctx context.Context, class quote.Class, code string) (*quote.Quote, error)
}
