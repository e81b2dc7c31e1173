package bootstrap

import (
	"github.com/yujm08/MSAProjects-ezen/internal/domain/quote"
	dailyUc "github.com/yujm08/MSAProjects-ezen/internal/usecase/daily"
	historyUc "github.com/yujm08/MSAProjects-ezen/internal/usecase/history"
)

// Usecase is the usecase set for the collector.
type Usecase struct {
	KoreanDaily *dailyUc.Usecase
	GlobalDaily *dailyUc.Usecase
	ForexDaily  *dailyUc.Usecase

	KoreanHistory *historyUc.Usecase
	GlobalHistory *historyUc.Usecase
	ForexHistory  *historyUc.Usecase
}

// registerUsecase registers the usecase.
func (b *Bootstrap) registerUsecase() {
	// Only the domestic feed needs master-table name resolution; the other
	// feeds carry their names in the catalog.
	b.Usecase.KoreanDaily = dailyUc.NewUsecase(quote.ClassKorean, b.Repository.KoreanDaily, b.Repository.Master, b.Repository.LatestCache, b.Logger)
	b.Usecase.GlobalDaily = dailyUc.NewUsecase(quote.ClassGlobal, b.Repository.GlobalDaily, nil, b.Repository.LatestCache, b.Logger)
	b.Usecase.ForexDaily = dailyUc.NewUsecase(quote.ClassForex, b.Repository.ForexDaily, nil, b.Repository.LatestCache, b.Logger)

	b.Usecase.KoreanHistory = historyUc.NewUsecase(quote.ClassKorean, b.Repository.KoreanDaily, b.Repository.KoreanHistory, b.Logger)
	b.Usecase.GlobalHistory = historyUc.NewUsecase(quote.ClassGlobal, b.Repository.GlobalDaily, b.Repository.GlobalHistory, b.Logger)
	b.Usecase.ForexHistory = historyUc.NewUsecase(quote.ClassForex, b.Repository.ForexDaily, b.Repository.ForexHistory, b.Logger)
}
