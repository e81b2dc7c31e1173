package history

import (
	"context"
	"time"

	"github.com/yujm08/MSAProjects-ezen/internal/calendar"
	"github.com/yujm08/MSAProjects-ezen/internal/domain/quote"
	"github.com/yujm08/MSAProjects-ezen/internal/infrastructure/postgres/daily"
	"github.com/yujm08/MSAProjects-ezen/internal/infrastructure/postgres/history"
	"github.com/yujm08/MSAProjects-ezen/pkg/errors"
	"github.com/yujm08/MSAProjects-ezen/pkg/logger"
)

// Usecase migrates a day's closing values from the daily store into the
// history store and prunes aged history, for one asset class.
type Usecase struct {
	class             quote.Class
	dailyRepository   daily.DailyRepository
	historyRepository history.HistoryRepository
	logger            logger.Interface
}

// NewUsecase creates a history usecase.
func NewUsecase(
	class quote.Class,
	dailyRepository daily.DailyRepository,
	historyRepository history.HistoryRepository,
	log logger.Interface,
) *Usecase {
	return &Usecase{
		class:             class,
		dailyRepository:   dailyRepository,
		historyRepository: historyRepository,
		logger:            log,
	}
}

// MigrateDay rolls the cutoff date's last daily record per instrument into
// the history store, then clears that date from the daily store. The
// existence check makes a re-run for the same cutoff a no-op for inserts.
// Instruments whose market was closed on the cutoff date are skipped
// entirely, deletion included, so a weekend never clears data that was
// collected under a different date label.
func (u *Usecase) MigrateDay(ctx context.Context, cutoff time.Time) error {
	start := cutoff
	end := cutoff.AddDate(0, 0, 1)

	if u.class == quote.ClassKorean && calendar.WeekendIn(calendar.MarketKRX, cutoff) {
		u.logger.InfoContext(ctx, "cutoff date is a weekend, skipping migration", logger.Field{
			Key:   "class",
			Value: u.class,
		}, logger.Field{
			Key:   "cutoff",
			Value: cutoff.Format(time.DateOnly),
		})
		return nil
	}

	codes, err := u.dailyRepository.DistinctCodesBetween(ctx, start, end)
	if err != nil {
		return errors.TracerFromError(err)
	}

	for _, code := range codes {
		if u.skipForWeekend(code, cutoff) {
			u.logger.InfoContext(ctx, "cutoff date is a weekend for instrument, skipping", logger.Field{
				Key:   "instrument",
				Value: code,
			})
			continue
		}
		u.migrateInstrument(ctx, code, cutoff, start, end)
	}

	u.logger.InfoContext(ctx, "daily records migrated to history", logger.Field{
		Key:   "class",
		Value: u.class,
	}, logger.Field{
		Key:   "cutoff",
		Value: cutoff.Format(time.DateOnly),
	})
	return nil
}

// migrateInstrument handles one instrument; failures are logged and do not
// abort the surrounding batch.
func (u *Usecase) migrateInstrument(ctx context.Context, code string, cutoff, start, end time.Time) {
	exists, err := u.historyRepository.ExistsByCodeAndDate(ctx, code, cutoff)
	if err != nil {
		u.logger.ErrorContext(ctx, errors.TracerFromError(err), logger.Field{
			Key:   "instrument",
			Value: code,
		})
		return
	}

	if !exists {
		last, err := u.dailyRepository.FindLatestByCode(ctx, code)
		if err != nil {
			u.logger.ErrorContext(ctx, errors.TracerFromError(err), logger.Field{
				Key:   "instrument",
				Value: code,
			})
			return
		}

		if last != nil && onDate(last.Timestamp, cutoff) {
			record := &history.Record{
				InstrumentCode: last.InstrumentCode,
				InstrumentName: last.InstrumentName,
				ExchangeCode:   last.ExchangeCode,
				ClosingPrice:   last.Price,
				ChangeRate:     last.ChangeRate,
				Date:           cutoff,
			}
			if err := u.historyRepository.Insert(ctx, record); err != nil {
				u.logger.ErrorContext(ctx, errors.TracerFromError(err), logger.Field{
					Key:   "instrument",
					Value: code,
				})
				return
			}
		}
	}

	// The day's daily rows go away whether or not a closing record was
	// created, keeping the daily store bounded to a rolling window.
	if err := u.dailyRepository.DeleteByCodeBetween(ctx, code, start, end); err != nil {
		u.logger.ErrorContext(ctx, errors.TracerFromError(err), logger.Field{
			Key:   "instrument",
			Value: code,
		})
	}
}

// Prune removes history records older than the given date.
func (u *Usecase) Prune(ctx context.Context, before time.Time) error {
	if err := u.historyRepository.DeleteBefore(ctx, before); err != nil {
		return errors.TracerFromError(err)
	}

	u.logger.InfoContext(ctx, "aged history records pruned", logger.Field{
		Key:   "class",
		Value: u.class,
	}, logger.Field{
		Key:   "before",
		Value: before.Format(time.DateOnly),
	})
	return nil
}

func (u *Usecase) skipForWeekend(code string, cutoff time.Time) bool {
	switch u.class {
	case quote.ClassGlobal:
		market := calendar.MarketForExchange(quote.ExchangeForCode(code))
		return calendar.WeekendIn(market, cutoff)
	case quote.ClassForex:
		// The forex feed pauses on Sundays only.
		return cutoff.Weekday() == time.Sunday
	}
	return false
}

// onDate reports whether the instant falls on the cutoff's calendar date.
func onDate(at, cutoff time.Time) bool {
	ay, am, ad := at.In(cutoff.Location()).Date()
	cy, cm, cd := cutoff.Date()
	return ay == cy && am == cm && ad == cd
}
