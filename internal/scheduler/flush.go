package scheduler

import (
	"context"
	"time"

	"github.com/yujm08/MSAProjects-ezen/internal/buffer"
	"github.com/yujm08/MSAProjects-ezen/internal/calendar"
	"github.com/yujm08/MSAProjects-ezen/internal/domain/quote"
	"github.com/yujm08/MSAProjects-ezen/pkg/logger"
)

// Flusher drains a realtime buffer into the daily persistence path.
// Entries whose save was accepted are claimed out of the buffer;
// unchanged entries stay put and are compared again next cycle. A
// persistence failure for one instrument never aborts the rest of the
// cycle.
type Flusher struct {
	market calendar.Market
	buffer *buffer.Buffer
	saver  quote.Saver
	logger logger.Interface

	clock func() time.Time
}

// NewFlusher creates a Flusher gated by the given market's calendar.
func NewFlusher(market calendar.Market, buf *buffer.Buffer, saver quote.Saver, log logger.Interface) *Flusher {
	return &Flusher{
		market: market,
		buffer: buf,
		saver:  saver,
		logger: log,
		clock:  time.Now,
	}
}

// Flush runs one drain cycle. Outside the market's session it does
// nothing; the gate is re-evaluated on every invocation.
func (f *Flusher) Flush(ctx context.Context) {
	if !calendar.Open(f.market, f.clock()) {
		f.logger.DebugContext(ctx, "market closed, skipping flush", logger.Field{
			Key:   "market",
			Value: f.market,
		})
		return
	}

	for _, q := range f.buffer.Snapshot() {
		saved, err := f.saver.SaveIfChanged(ctx, q)
		if err != nil {
			f.logger.ErrorContext(ctx, err, logger.Field{
				Key:   "instrument",
				Value: q.InstrumentCode,
			})
			continue
		}
		if saved {
			// Claim the entry only if no newer observation landed
			// after the snapshot.
			f.buffer.CompareAndRemove(q.InstrumentCode, q.Timestamp)
		}
	}
}
