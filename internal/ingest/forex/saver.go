package forex

import (
	"context"

	"github.com/yujm08/MSAProjects-ezen/internal/buffer"
	"github.com/yujm08/MSAProjects-ezen/internal/domain/quote"
	"github.com/yujm08/MSAProjects-ezen/pkg/logger"
)

// Saver periodically pushes the stream's latest rate into the persistence
// path. Change detection and the percent-change computation live there;
// the saver only decides whether anything has been received at all.
type Saver struct {
	slot   *buffer.Slot
	saver  quote.Saver
	logger logger.Interface
}

// NewSaver creates a Saver draining the given slot.
func NewSaver(slot *buffer.Slot, saver quote.Saver, log logger.Interface) *Saver {
	return &Saver{
		slot:   slot,
		saver:  saver,
		logger: log,
	}
}

// SaveLatest persists the most recently streamed rate, if any.
func (s *Saver) SaveLatest(ctx context.Context) error {
	q := s.slot.Load()
	if q == nil {
		s.logger.WarnContext(ctx, "no streamed rate to save yet", logger.Field{
			Key:   "pair",
			Value: streamPair.Code,
		})
		return nil
	}

	saved, err := s.saver.SaveIfChanged(ctx, q)
	if err != nil {
		return err
	}

	if saved {
		s.logger.InfoContext(ctx, "streamed rate saved", logger.Field{
			Key:   "pair",
			Value: q.InstrumentCode,
		}, logger.Field{
			Key:   "rate",
			Value: q.Price.String(),
		})
	}
	return nil
}
