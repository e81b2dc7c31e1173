package quote

import (
	"time"

	"github.com/shopspring/decimal"
)

// Class identifies which asset class a quote belongs to. Each class is
// persisted to its own daily/history table pair.
type Class string

const (
	// ClassKorean covers domestic equities streamed over the websocket.
	ClassKorean Class = "korean"
	// ClassGlobal covers overseas equities polled over REST.
	ClassGlobal Class = "global"
	// ClassForex covers currency pairs.
	ClassForex Class = "forex"
)

// DailyTable returns the daily table name for the class.
func (c Class) DailyTable() string {
	switch c {
	case ClassKorean:
		return "korean_daily_stock"
	case ClassGlobal:
		return "global_daily_stock"
	case ClassForex:
		return "daily_forex"
	}
	return ""
}

// HistoryTable returns the history table name for the class.
func (c Class) HistoryTable() string {
	switch c {
	case ClassKorean:
		return "korean_history_stock"
	case ClassGlobal:
		return "global_history_stock"
	case ClassForex:
		return "history_forex"
	}
	return ""
}

// IsAvailable reports whether the class is one of the known asset classes.
func (c Class) IsAvailable() bool {
	switch c {
	case ClassKorean, ClassGlobal, ClassForex:
		return true
	}
	return false
}

// Quote is one timestamped price observation for an instrument. It is
// immutable once produced by an ingestor.
type Quote struct {
	InstrumentCode string
	InstrumentName string
	ExchangeCode   string
	Price          decimal.Decimal
	ChangeRate     decimal.NullDecimal
	Timestamp      time.Time
}

// UnmappedName is the placeholder used until the instrument master resolves
// the real name.
const UnmappedName = "unmapped"
