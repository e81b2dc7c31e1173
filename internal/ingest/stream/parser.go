package stream

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/yujm08/MSAProjects-ezen/internal/domain/quote"
	"github.com/yujm08/MSAProjects-ezen/pkg/errors"
)

const (
	// transactionID is the realtime trade-price subscription of the feed.
	transactionID = "H0STCNT0"
	// pingTransactionID marks the feed's liveness probe.
	pingTransactionID = "PINGPONG"

	recordSeparator = "|"
	fieldSeparator  = "^"

	// Field positions within a trade record: code, then the trade price at
	// index 2 and the day-over-day change rate at index 5.
	fieldCode       = 0
	fieldPrice      = 2
	fieldChangeRate = 5

	minRecordParts = 4
	minFields      = 6
)

// IsPing reports whether the raw frame is a liveness probe.
func IsPing(raw string) bool {
	return strings.Contains(raw, `"tr_id":"`+pingTransactionID+`"`)
}

// pongFrame is the in-kind answer to a liveness probe.
const pongFrame = `{"header":{"tr_id":"PONG"}}`

// ParseTrade parses a pipe-and-caret delimited trade frame into a quote
// observed at the given instant. The instrument name is left unmapped; the
// flush path resolves it against the master table.
func ParseTrade(raw string, observedAt time.Time) (*quote.Quote, error) {
	parts := strings.Split(raw, recordSeparator)
	if len(parts) < minRecordParts {
		return nil, errors.NewErrorDetails("trade frame has too few segments", string(errors.UpstreamPayloadError), "frame")
	}

	fields := strings.Split(parts[3], fieldSeparator)
	if len(fields) < minFields {
		return nil, errors.NewErrorDetails("trade frame has too few fields", string(errors.UpstreamPayloadError), "frame")
	}

	price, err := decimal.NewFromString(fields[fieldPrice])
	if err != nil {
		return nil, errors.NewErrorDetails("trade frame price is not numeric", string(errors.UpstreamPayloadError), "price")
	}

	rate, err := decimal.NewFromString(fields[fieldChangeRate])
	if err != nil {
		return nil, errors.NewErrorDetails("trade frame change rate is not numeric", string(errors.UpstreamPayloadError), "change_rate")
	}

	return &quote.Quote{
		InstrumentCode: fields[fieldCode],
		InstrumentName: quote.UnmappedName,
		Price:          price,
		ChangeRate:     decimal.NewNullDecimal(rate),
		Timestamp:      observedAt,
	}, nil
}
