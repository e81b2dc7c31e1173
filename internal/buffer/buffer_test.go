package buffer

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yujm08/MSAProjects-ezen/internal/domain/quote"
)

func newQuote(code string, price string, at time.Time) *quote.Quote {
	return &quote.Quote{
		InstrumentCode: code,
		InstrumentName: quote.UnmappedName,
		Price:          decimal.RequireFromString(price),
		Timestamp:      at,
	}
}

func TestBuffer_PutOverwrites(t *testing.T) {
	b := New()
	base := time.Date(2025, 3, 5, 10, 0, 0, 0, time.UTC)

	b.Put(newQuote("005930", "71000", base))
	b.Put(newQuote("005930", "71100", base.Add(time.Second)))

	require.Equal(t, 1, b.Len())
	got := b.Get("005930")
	require.NotNil(t, got)
	assert.True(t, got.Price.Equal(decimal.RequireFromString("71100")))
}

func TestBuffer_SnapshotReflectsLatestWrite(t *testing.T) {
	b := New()
	base := time.Date(2025, 3, 5, 10, 0, 0, 0, time.UTC)

	b.Put(newQuote("005930", "71000", base))
	b.Put(newQuote("000660", "180000", base))
	b.Put(newQuote("005930", "71500", base.Add(time.Minute)))

	snap := b.Snapshot()
	require.Len(t, snap, 2)

	byCode := map[string]*quote.Quote{}
	for _, q := range snap {
		byCode[q.InstrumentCode] = q
	}
	assert.True(t, byCode["005930"].Price.Equal(decimal.RequireFromString("71500")))
	assert.True(t, byCode["000660"].Price.Equal(decimal.RequireFromString("180000")))
}

func TestBuffer_CompareAndRemove(t *testing.T) {
	b := New()
	base := time.Date(2025, 3, 5, 10, 0, 0, 0, time.UTC)

	b.Put(newQuote("005930", "71000", base))

	// A write that lands after the snapshot keeps the entry alive.
	b.Put(newQuote("005930", "71200", base.Add(time.Second)))
	assert.False(t, b.CompareAndRemove("005930", base))
	assert.Equal(t, 1, b.Len())

	// Removing with the current timestamp claims the entry.
	assert.True(t, b.CompareAndRemove("005930", base.Add(time.Second)))
	assert.Equal(t, 0, b.Len())

	// Removing a missing entry is a no-op.
	assert.False(t, b.CompareAndRemove("005930", base))
}

func TestBuffer_ConcurrentWritersAndDrainer(t *testing.T) {
	b := New()
	base := time.Date(2025, 3, 5, 10, 0, 0, 0, time.UTC)

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			code := fmt.Sprintf("%06d", w)
			for i := 0; i < 200; i++ {
				b.Put(newQuote(code, fmt.Sprintf("%d", 1000+i), base.Add(time.Duration(i)*time.Millisecond)))
			}
		}(w)
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 50; i++ {
			for _, q := range b.Snapshot() {
				b.CompareAndRemove(q.InstrumentCode, q.Timestamp)
			}
		}
	}()

	wg.Wait()
	<-done

	// Whatever remains must be the final value per instrument.
	for _, q := range b.Snapshot() {
		assert.True(t, q.Price.Equal(decimal.RequireFromString("1199")),
			"expected last write for %s, got %s", q.InstrumentCode, q.Price)
	}
}

func TestSlot(t *testing.T) {
	s := NewSlot()
	assert.Nil(t, s.Load())

	base := time.Date(2025, 3, 5, 10, 0, 0, 0, time.UTC)
	s.Set(newQuote("USD/KRW", "1392.15", base))
	s.Set(newQuote("USD/KRW", "1392.80", base.Add(time.Second)))

	got := s.Load()
	require.NotNil(t, got)
	assert.True(t, got.Price.Equal(decimal.RequireFromString("1392.80")))
}
