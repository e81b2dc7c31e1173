package bootstrap

import (
	"context"
	"time"

	"github.com/yujm08/MSAProjects-ezen/internal/calendar"
	"github.com/yujm08/MSAProjects-ezen/internal/scheduler"
)

// registerScheduler registers every periodic and daily job.
func (b *Bootstrap) registerScheduler() {
	loc, err := time.LoadLocation("Asia/Seoul")
	if err != nil {
		loc = time.FixedZone("KST", 9*60*60)
	}

	s := scheduler.New(b.Logger)
	collector := b.Config.Collector

	flusher := scheduler.NewFlusher(calendar.MarketKRX, b.Buffer, b.Usecase.KoreanDaily, b.Logger)
	s.AddInterval("flush-korean", collector.FlushInterval, flusher.Flush)

	s.AddInterval("poll-global", collector.PollInterval, func(ctx context.Context) {
		if err := b.Ingestor.GlobalPoll.FetchAll(ctx); err != nil {
			b.Logger.ErrorContext(ctx, err)
		}
	})

	s.AddInterval("forex-save", collector.ForexSaveInterval, func(ctx context.Context) {
		if err := b.Ingestor.ForexSaver.SaveLatest(ctx); err != nil {
			b.Logger.ErrorContext(ctx, err)
		}
	})

	s.AddInterval("forex-poll", collector.ForexSaveInterval, func(ctx context.Context) {
		if err := b.Ingestor.ForexPoller.FetchAll(ctx); err != nil {
			b.Logger.ErrorContext(ctx, err)
		}
	})

	rollover := scheduler.NewRollover(
		[]scheduler.Migrator{b.Usecase.KoreanHistory, b.Usecase.GlobalHistory, b.Usecase.ForexHistory},
		loc,
		collector.RetentionMonths,
		b.Logger,
	)
	s.AddDailyAt("rollover", loc, collector.RolloverHour, collector.RolloverMinute, rollover.MigrateAll)
	s.AddDailyAt("prune-history", loc, collector.PruneHour, collector.PruneMinute, rollover.PruneAll)

	b.Scheduler = s
}
