package daily

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/yujm08/MSAProjects-ezen/internal/domain/quote"
	"github.com/yujm08/MSAProjects-ezen/internal/infrastructure/postgres/daily"
	"github.com/yujm08/MSAProjects-ezen/internal/infrastructure/postgres/master"
	"github.com/yujm08/MSAProjects-ezen/internal/infrastructure/rediscache"
	"github.com/yujm08/MSAProjects-ezen/pkg/errors"
	"github.com/yujm08/MSAProjects-ezen/pkg/logger"
)

// Usecase persists accepted observations for one asset class. A new row is
// written only for the first observation of a day or a price change; an
// unchanged observation is reported back as not saved so the flush job
// keeps it buffered for the next cycle.
type Usecase struct {
	class            quote.Class
	dailyRepository  daily.DailyRepository
	masterRepository master.InstrumentRepository
	latestCache      rediscache.LatestQuoteStore
	logger           logger.Interface
}

// NewUsecase creates a daily usecase. masterRepository resolves Korean
// instrument names and may be nil for classes without a master table;
// latestCache may be nil to disable the latest-quote fan-out.
func NewUsecase(
	class quote.Class,
	dailyRepository daily.DailyRepository,
	masterRepository master.InstrumentRepository,
	latestCache rediscache.LatestQuoteStore,
	log logger.Interface,
) *Usecase {
	return &Usecase{
		class:            class,
		dailyRepository:  dailyRepository,
		masterRepository: masterRepository,
		latestCache:      latestCache,
		logger:           log,
	}
}

// SaveIfChanged persists the quote when it is the first observation of its
// date or carries a different price than the latest stored row. It returns
// whether a row was written.
func (u *Usecase) SaveIfChanged(ctx context.Context, q *quote.Quote) (bool, error) {
	q = u.resolveName(ctx, q)

	last, err := u.dailyRepository.FindLatestByCode(ctx, q.InstrumentCode)
	if err != nil {
		return false, errors.TracerFromError(err)
	}

	if last != nil && sameDate(last.Timestamp, q.Timestamp) && last.Price.Equal(q.Price) {
		u.logger.DebugContext(ctx, "price unchanged, skipping save", logger.Field{
			Key:   "instrument",
			Value: q.InstrumentCode,
		})
		return false, nil
	}

	record := &daily.Record{
		InstrumentCode: q.InstrumentCode,
		InstrumentName: q.InstrumentName,
		ExchangeCode:   q.ExchangeCode,
		Price:          q.Price,
		ChangeRate:     u.changeRate(q, last),
		Timestamp:      q.Timestamp,
	}

	if err := u.dailyRepository.Insert(ctx, record); err != nil {
		return false, errors.TracerFromError(err)
	}

	u.publishLatest(ctx, q, record.ChangeRate)

	u.logger.InfoContext(ctx, "daily record saved", logger.Field{
		Key:   "instrument",
		Value: q.InstrumentCode,
	}, logger.Field{
		Key:   "price",
		Value: q.Price.String(),
	})
	return true, nil
}

// resolveName replaces the placeholder name with the master mapping when
// one exists. A master miss or lookup failure keeps the incoming name.
func (u *Usecase) resolveName(ctx context.Context, q *quote.Quote) *quote.Quote {
	if u.masterRepository == nil {
		return q
	}

	instrument, err := u.masterRepository.FindByCode(ctx, q.InstrumentCode)
	if err != nil {
		u.logger.WarnContext(ctx, "instrument master lookup failed", logger.Field{
			Key:   "instrument",
			Value: q.InstrumentCode,
		}, logger.Field{
			Key:   "error",
			Value: err.Error(),
		})
		return q
	}
	if instrument == nil {
		u.logger.WarnContext(ctx, "instrument missing from master", logger.Field{
			Key:   "instrument",
			Value: q.InstrumentCode,
		})
		return q
	}

	named := *q
	named.InstrumentName = instrument.Name
	return &named
}

// changeRate computes the percent change against the previous row for the
// forex class, where the upstream feed carries no rate of its own. Equity
// quotes keep the rate their feed reported.
func (u *Usecase) changeRate(q *quote.Quote, last *daily.Record) decimal.NullDecimal {
	if u.class != quote.ClassForex {
		return q.ChangeRate
	}
	if last == nil || last.Price.IsZero() {
		return decimal.NullDecimal{}
	}

	rate := q.Price.Sub(last.Price).Mul(decimal.NewFromInt(100)).Div(last.Price).Round(2)
	return decimal.NewNullDecimal(rate)
}

func (u *Usecase) publishLatest(ctx context.Context, q *quote.Quote, rate decimal.NullDecimal) {
	if u.latestCache == nil {
		return
	}

	published := *q
	published.ChangeRate = rate
	if err := u.latestCache.Set(ctx, u.class, &published); err != nil {
		u.logger.WarnContext(ctx, "failed to publish latest quote", logger.Field{
			Key:   "instrument",
			Value: q.InstrumentCode,
		}, logger.Field{
			Key:   "error",
			Value: err.Error(),
		})
	}
}

// sameDate reports whether both instants fall on the same calendar date,
// with the stored timestamp viewed in the new observation's timezone.
func sameDate(stored, incoming time.Time) bool {
	ay, am, ad := stored.In(incoming.Location()).Date()
	by, bm, bd := incoming.Date()
	return ay == by && am == bm && ad == bd
}
