package history

import (
	"time"

	"github.com/shopspring/decimal"
)

// Record is one closing value for an instrument on a trading date. At most
// one row exists per (instrument, date), enforced by the migration's
// existence check rather than a database constraint.
type Record struct {
	ID             int64
	InstrumentCode string
	InstrumentName string
	ExchangeCode   string
	ClosingPrice   decimal.Decimal
	ChangeRate     decimal.NullDecimal
	Date           time.Time
}
