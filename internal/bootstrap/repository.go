package bootstrap

import (
	"github.com/yujm08/MSAProjects-ezen/internal/domain/quote"
	dailyInfra "github.com/yujm08/MSAProjects-ezen/internal/infrastructure/postgres/daily"
	historyInfra "github.com/yujm08/MSAProjects-ezen/internal/infrastructure/postgres/history"
	masterInfra "github.com/yujm08/MSAProjects-ezen/internal/infrastructure/postgres/master"
	"github.com/yujm08/MSAProjects-ezen/internal/infrastructure/rediscache"
)

// Repository is the repository set for the collector: one daily/history
// pair per asset class, the instrument master, and the latest-quote cache.
type Repository struct {
	Master masterInfra.InstrumentRepository

	KoreanDaily dailyInfra.DailyRepository
	GlobalDaily dailyInfra.DailyRepository
	ForexDaily  dailyInfra.DailyRepository

	KoreanHistory historyInfra.HistoryRepository
	GlobalHistory historyInfra.HistoryRepository
	ForexHistory  historyInfra.HistoryRepository

	LatestCache rediscache.LatestQuoteStore
}

// registerRepository registers the repository.
func (b *Bootstrap) registerRepository() {
	b.Repository.Master = masterInfra.NewRepository(b.Postgres)

	b.Repository.KoreanDaily = dailyInfra.NewRepository(b.Postgres, quote.ClassKorean.DailyTable())
	b.Repository.GlobalDaily = dailyInfra.NewRepository(b.Postgres, quote.ClassGlobal.DailyTable())
	b.Repository.ForexDaily = dailyInfra.NewRepository(b.Postgres, quote.ClassForex.DailyTable())

	b.Repository.KoreanHistory = historyInfra.NewRepository(b.Postgres, quote.ClassKorean.HistoryTable())
	b.Repository.GlobalHistory = historyInfra.NewRepository(b.Postgres, quote.ClassGlobal.HistoryTable())
	b.Repository.ForexHistory = historyInfra.NewRepository(b.Postgres, quote.ClassForex.HistoryTable())

	b.Repository.LatestCache = rediscache.NewCache(b.Redis, b.Config.Collector.LatestCacheTTL)
}
