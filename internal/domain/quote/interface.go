package quote

import "context"

// Saver is the persistence path an ingestor hands accepted observations to.
//
//go:generate mockgen -source=interface.go -destination=mock/saver_mock.go -package=mock
type Saver interface {
	// SaveIfChanged persists the quote unless an identical price is already
	// stored for the same date. It returns whether a row was written.
	SaveIfChanged(ctx context.Context, q *Quote) (bool, error)
}
