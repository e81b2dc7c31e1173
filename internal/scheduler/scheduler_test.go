package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yujm08/MSAProjects-ezen/internal/buffer"
	"github.com/yujm08/MSAProjects-ezen/internal/calendar"
	"github.com/yujm08/MSAProjects-ezen/internal/domain/quote"
	quotemock "github.com/yujm08/MSAProjects-ezen/internal/domain/quote/mock"
	logger_mock "github.com/yujm08/MSAProjects-ezen/pkg/logger/mock"
	"go.uber.org/mock/gomock"
)

func relaxedLogger(ctrl *gomock.Controller) *logger_mock.MockInterface {
	log := logger_mock.NewMockInterface(ctrl)
	log.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	log.EXPECT().DebugContext(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	log.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()
	log.EXPECT().ErrorContext(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	return log
}

func seoul(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Seoul")
	require.NoError(t, err)
	return loc
}

func TestNextDailyRun(t *testing.T) {
	loc := seoul(t)

	testCases := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{
			name: "before trigger fires today",
			now:  time.Date(2025, 3, 5, 6, 30, 0, 0, loc),
			want: time.Date(2025, 3, 5, 7, 0, 0, 0, loc),
		},
		{
			name: "after trigger fires tomorrow",
			now:  time.Date(2025, 3, 5, 7, 30, 0, 0, loc),
			want: time.Date(2025, 3, 6, 7, 0, 0, 0, loc),
		},
		{
			name: "exactly at trigger fires tomorrow",
			now:  time.Date(2025, 3, 5, 7, 0, 0, 0, loc),
			want: time.Date(2025, 3, 6, 7, 0, 0, 0, loc),
		},
		{
			name: "foreign clock is pinned to the job timezone",
			now:  time.Date(2025, 3, 4, 21, 0, 0, 0, time.UTC), // 06:00 KST next day
			want: time.Date(2025, 3, 5, 7, 0, 0, 0, loc),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := NextDailyRun(tc.now, loc, 7, 0)
			assert.True(t, got.Equal(tc.want), "got %v, want %v", got, tc.want)
		})
	}
}

func TestScheduler_IntervalJobFires(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var runs atomic.Int64
	s := New(relaxedLogger(ctrl))
	s.AddInterval("tick", 10*time.Millisecond, func(ctx context.Context) {
		runs.Add(1)
	})

	ctx, cancel := context.WithCancel(context.Background())
	s.Start(ctx)

	require.Eventually(t, func() bool {
		return runs.Load() >= 3
	}, 2*time.Second, 5*time.Millisecond)

	cancel()
	s.Wait()
}

func TestScheduler_RecoversFromPanickingJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var runs atomic.Int64
	s := New(relaxedLogger(ctrl))
	s.AddInterval("explode", 10*time.Millisecond, func(ctx context.Context) {
		runs.Add(1)
		panic("boom")
	})

	ctx, cancel := context.WithCancel(context.Background())
	s.Start(ctx)

	require.Eventually(t, func() bool {
		return runs.Load() >= 2
	}, 2*time.Second, 5*time.Millisecond)

	cancel()
	s.Wait()
}

func newBufferedQuote(code, price string, at time.Time) *quote.Quote {
	return &quote.Quote{
		InstrumentCode: code,
		InstrumentName: quote.UnmappedName,
		Price:          decimal.RequireFromString(price),
		Timestamp:      at,
	}
}

func krxOpenClock(t *testing.T) func() time.Time {
	at := time.Date(2025, 3, 5, 10, 0, 0, 0, seoul(t)) // Wednesday
	return func() time.Time { return at }
}

func TestFlusher_SavedEntriesAreClaimed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	at := time.Date(2025, 3, 5, 10, 0, 0, 0, time.UTC)
	buf := buffer.New()
	buf.Put(newBufferedQuote("005930", "71000", at))

	saver := quotemock.NewMockSaver(ctrl)
	saver.EXPECT().SaveIfChanged(gomock.Any(), gomock.Any()).Return(true, nil)

	f := NewFlusher(calendar.MarketKRX, buf, saver, relaxedLogger(ctrl))
	f.clock = krxOpenClock(t)
	f.Flush(context.Background())

	assert.Equal(t, 0, buf.Len())
}

func TestFlusher_UnchangedEntriesStayForNextCycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	at := time.Date(2025, 3, 5, 10, 0, 0, 0, time.UTC)
	buf := buffer.New()
	buf.Put(newBufferedQuote("005930", "71000", at))

	saver := quotemock.NewMockSaver(ctrl)
	// unchanged: not saved, entry must remain buffered
	saver.EXPECT().SaveIfChanged(gomock.Any(), gomock.Any()).Return(false, nil).Times(2)

	f := NewFlusher(calendar.MarketKRX, buf, saver, relaxedLogger(ctrl))
	f.clock = krxOpenClock(t)

	f.Flush(context.Background())
	assert.Equal(t, 1, buf.Len())

	// the next cycle compares it again
	f.Flush(context.Background())
	assert.Equal(t, 1, buf.Len())
}

func TestFlusher_ErrorIsIsolatedPerInstrument(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	at := time.Date(2025, 3, 5, 10, 0, 0, 0, time.UTC)
	buf := buffer.New()
	buf.Put(newBufferedQuote("005930", "71000", at))
	buf.Put(newBufferedQuote("000660", "180000", at))

	saver := quotemock.NewMockSaver(ctrl)
	saver.EXPECT().SaveIfChanged(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, q *quote.Quote) (bool, error) {
			if q.InstrumentCode == "005930" {
				return false, errors.New("db down")
			}
			return true, nil
		}).Times(2)

	f := NewFlusher(calendar.MarketKRX, buf, saver, relaxedLogger(ctrl))
	f.clock = krxOpenClock(t)
	f.Flush(context.Background())

	// the failing instrument stays buffered, the healthy one was claimed
	assert.NotNil(t, buf.Get("005930"))
	assert.Nil(t, buf.Get("000660"))
}

func TestFlusher_MarketClosedSkipsCycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	buf := buffer.New()
	buf.Put(newBufferedQuote("005930", "71000", time.Now()))

	saver := quotemock.NewMockSaver(ctrl) // no calls expected

	f := NewFlusher(calendar.MarketKRX, buf, saver, relaxedLogger(ctrl))
	f.clock = func() time.Time {
		return time.Date(2025, 3, 8, 10, 0, 0, 0, time.UTC) // Saturday
	}
	f.Flush(context.Background())

	assert.Equal(t, 1, buf.Len())
}

func TestFlusher_NewerWriteSurvivesDrain(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	at := time.Date(2025, 3, 5, 10, 0, 0, 0, time.UTC)
	buf := buffer.New()
	buf.Put(newBufferedQuote("005930", "71000", at))

	saver := quotemock.NewMockSaver(ctrl)
	saver.EXPECT().SaveIfChanged(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, q *quote.Quote) (bool, error) {
			// a fresher observation lands while this one is being persisted
			buf.Put(newBufferedQuote("005930", "71500", at.Add(time.Second)))
			return true, nil
		})

	f := NewFlusher(calendar.MarketKRX, buf, saver, relaxedLogger(ctrl))
	f.clock = krxOpenClock(t)
	f.Flush(context.Background())

	// the mid-drain write is still buffered
	got := buf.Get("005930")
	require.NotNil(t, got)
	assert.True(t, got.Price.Equal(decimal.RequireFromString("71500")))
}

type fakeMigrator struct {
	migrated []time.Time
	pruned   []time.Time
	err      error
}

func (f *fakeMigrator) MigrateDay(ctx context.Context, cutoff time.Time) error {
	f.migrated = append(f.migrated, cutoff)
	return f.err
}

func (f *fakeMigrator) Prune(ctx context.Context, before time.Time) error {
	f.pruned = append(f.pruned, before)
	return f.err
}

func TestRollover_CutoffIsTwoDaysBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	loc := seoul(t)
	m := &fakeMigrator{}
	r := NewRollover([]Migrator{m}, loc, 3, relaxedLogger(ctrl))
	r.clock = func() time.Time {
		return time.Date(2025, 3, 5, 7, 0, 0, 0, loc)
	}

	r.MigrateAll(context.Background())

	require.Len(t, m.migrated, 1)
	assert.True(t, m.migrated[0].Equal(time.Date(2025, 3, 3, 0, 0, 0, 0, loc)))
}

func TestRollover_PruneUsesRetentionWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	loc := seoul(t)
	m := &fakeMigrator{}
	r := NewRollover([]Migrator{m}, loc, 3, relaxedLogger(ctrl))
	r.clock = func() time.Time {
		return time.Date(2025, 3, 5, 7, 10, 0, 0, loc)
	}

	r.PruneAll(context.Background())

	require.Len(t, m.pruned, 1)
	assert.True(t, m.pruned[0].Equal(time.Date(2024, 12, 5, 0, 0, 0, 0, loc)))
}

func TestRollover_ClassFailureDoesNotStopOthers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	loc := seoul(t)
	failing := &fakeMigrator{err: errors.New("db down")}
	healthy := &fakeMigrator{}
	r := NewRollover([]Migrator{failing, healthy}, loc, 3, relaxedLogger(ctrl))
	r.clock = func() time.Time {
		return time.Date(2025, 3, 5, 7, 0, 0, 0, loc)
	}

	r.MigrateAll(context.Background())

	assert.Len(t, failing.migrated, 1)
	assert.Len(t, healthy.migrated, 1)
}
