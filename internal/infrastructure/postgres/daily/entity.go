package daily

import (
	"time"

	"github.com/shopspring/decimal"
)

// Record is one persisted observation. Rows are created by the flush path
// (one per accepted write, not one per tick), never mutated, and deleted
// by rollover a couple of days later.
type Record struct {
	ID             int64
	InstrumentCode string
	InstrumentName string
	ExchangeCode   string
	Price          decimal.Decimal
	ChangeRate     decimal.NullDecimal
	Timestamp      time.Time
}
