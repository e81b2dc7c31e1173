package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLoc(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	require.NoError(t, err)
	return loc
}

func TestOpen_KRX(t *testing.T) {
	seoul := mustLoc(t, "Asia/Seoul")

	testCases := []struct {
		name string
		at   time.Time
		open bool
	}{
		{
			name: "weekday mid session",
			at:   time.Date(2025, 3, 5, 11, 0, 0, 0, seoul), // Wednesday
			open: true,
		},
		{
			name: "weekday at open",
			at:   time.Date(2025, 3, 5, 9, 0, 0, 0, seoul),
			open: true,
		},
		{
			name: "weekday at close boundary",
			at:   time.Date(2025, 3, 5, 15, 30, 0, 0, seoul),
			open: true,
		},
		{
			name: "weekday after close",
			at:   time.Date(2025, 3, 5, 15, 31, 0, 0, seoul),
			open: false,
		},
		{
			name: "weekday before open",
			at:   time.Date(2025, 3, 5, 8, 59, 0, 0, seoul),
			open: false,
		},
		{
			name: "saturday",
			at:   time.Date(2025, 3, 8, 11, 0, 0, 0, seoul),
			open: false,
		},
		{
			name: "sunday",
			at:   time.Date(2025, 3, 9, 11, 0, 0, 0, seoul),
			open: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.open, Open(MarketKRX, tc.at))
		})
	}
}

func TestOpen_KRX_ConvertsForeignClock(t *testing.T) {
	// 01:00 UTC on a weekday is 10:00 in Seoul, inside the session.
	at := time.Date(2025, 3, 5, 1, 0, 0, 0, time.UTC)
	assert.True(t, Open(MarketKRX, at))
}

func TestOpen_US(t *testing.T) {
	ny := mustLoc(t, "America/New_York")

	testCases := []struct {
		name string
		at   time.Time
		open bool
	}{
		{
			name: "weekday mid session",
			at:   time.Date(2025, 3, 5, 12, 0, 0, 0, ny),
			open: true,
		},
		{
			name: "weekday at open",
			at:   time.Date(2025, 3, 5, 9, 30, 0, 0, ny),
			open: true,
		},
		{
			name: "weekday at close boundary",
			at:   time.Date(2025, 3, 5, 16, 0, 0, 0, ny),
			open: true,
		},
		{
			name: "weekday premarket",
			at:   time.Date(2025, 3, 5, 9, 29, 0, 0, ny),
			open: false,
		},
		{
			name: "saturday",
			at:   time.Date(2025, 3, 8, 12, 0, 0, 0, ny),
			open: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.open, Open(MarketUS, tc.at))
		})
	}
}

func TestOpen_HKEX_DualSession(t *testing.T) {
	hk := mustLoc(t, "Asia/Hong_Kong")

	testCases := []struct {
		name string
		at   time.Time
		open bool
	}{
		{
			name: "morning session",
			at:   time.Date(2025, 3, 5, 11, 0, 0, 0, hk),
			open: true,
		},
		{
			name: "lunch break",
			at:   time.Date(2025, 3, 5, 13, 30, 0, 0, hk),
			open: false,
		},
		{
			name: "afternoon session",
			at:   time.Date(2025, 3, 5, 14, 0, 0, 0, hk),
			open: true,
		},
		{
			name: "morning close is exclusive",
			at:   time.Date(2025, 3, 5, 13, 0, 0, 0, hk),
			open: false,
		},
		{
			name: "after afternoon close",
			at:   time.Date(2025, 3, 5, 17, 0, 0, 0, hk),
			open: false,
		},
		{
			name: "before morning open",
			at:   time.Date(2025, 3, 5, 10, 29, 0, 0, hk),
			open: false,
		},
		{
			name: "sunday",
			at:   time.Date(2025, 3, 9, 11, 0, 0, 0, hk),
			open: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.open, Open(MarketHKEX, tc.at))
		})
	}
}

func TestOpen_FX(t *testing.T) {
	seoul := mustLoc(t, "Asia/Seoul")

	assert.True(t, Open(MarketFX, time.Date(2025, 3, 5, 3, 0, 0, 0, seoul)))
	assert.False(t, Open(MarketFX, time.Date(2025, 3, 8, 3, 0, 0, 0, seoul)))
	assert.False(t, Open(MarketFX, time.Date(2025, 3, 9, 23, 0, 0, 0, seoul)))
}

func TestGlobalOpen(t *testing.T) {
	ny := mustLoc(t, "America/New_York")
	hk := mustLoc(t, "Asia/Hong_Kong")

	// US open, HK closed.
	assert.True(t, GlobalOpen(time.Date(2025, 3, 5, 12, 0, 0, 0, ny)))
	// HK morning session, US closed (same instant is ~22:00 previous day NY).
	assert.True(t, GlobalOpen(time.Date(2025, 3, 5, 11, 0, 0, 0, hk)))
	// Both closed: Saturday everywhere.
	assert.False(t, GlobalOpen(time.Date(2025, 3, 8, 12, 0, 0, 0, time.UTC)))
}

func TestWeekendIn(t *testing.T) {
	seoul := mustLoc(t, "Asia/Seoul")

	saturday := time.Date(2025, 3, 8, 0, 0, 0, 0, seoul)
	wednesday := time.Date(2025, 3, 5, 0, 0, 0, 0, seoul)

	assert.True(t, WeekendIn(MarketKRX, saturday))
	assert.True(t, WeekendIn(MarketUS, saturday))
	assert.False(t, WeekendIn(MarketKRX, wednesday))
	assert.False(t, WeekendIn(MarketHKEX, wednesday))
}

func TestMarketForExchange(t *testing.T) {
	assert.Equal(t, MarketHKEX, MarketForExchange("HKS"))
	assert.Equal(t, MarketUS, MarketForExchange("NAS"))
	assert.Equal(t, MarketUS, MarketForExchange("NYS"))
	assert.Equal(t, MarketUS, MarketForExchange("UNKNOWN"))
}
