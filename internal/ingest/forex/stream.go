package forex

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"
	"github.com/shopspring/decimal"
	"github.com/yujm08/MSAProjects-ezen/internal/buffer"
	"github.com/yujm08/MSAProjects-ezen/internal/domain/quote"
	"github.com/yujm08/MSAProjects-ezen/pkg/errors"
	"github.com/yujm08/MSAProjects-ezen/pkg/logger"
)

// streamPair is the currency pair carried by the realtime stream.
var streamPair = quote.ForexPairs[0]

type priceMessage struct {
	Price *json.Number `json:"price"`
}

// Stream receives realtime currency rates over a websocket and keeps only
// the newest one in a single-value slot; the scheduled saver decides what
// reaches the database. A transport failure ends the stream without
// reconnecting; Connect is the restart entry point.
type Stream struct {
	wsURL  string
	apiKey string
	slot   *buffer.Slot
	logger logger.Interface

	clock func() time.Time
}

// NewStream creates a forex stream feeding the given slot.
func NewStream(wsURL, apiKey string, slot *buffer.Slot, log logger.Interface) *Stream {
	return &Stream{
		wsURL:  wsURL,
		apiKey: apiKey,
		slot:   slot,
		logger: log,
		clock:  time.Now,
	}
}

// Connect dials the stream and starts consuming rate messages.
func (s *Stream) Connect(ctx context.Context) error {
	url := s.wsURL + "?symbol=" + streamPair.Code + "&apikey=" + s.apiKey

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return errors.NewErrorDetails(err.Error(), string(errors.WebSocketConnectError), "dial")
	}

	s.logger.InfoContext(ctx, "forex stream connected", logger.Field{
		Key:   "pair",
		Value: streamPair.Code,
	})

	go s.readLoop(ctx, conn)
	return nil
}

func (s *Stream) readLoop(ctx context.Context, conn *websocket.Conn) {
	defer conn.Close()

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			s.logger.ErrorContext(ctx, errors.TracerFromError(err), logger.Field{
				Key:   "action",
				Value: "forex_stream_read",
			})
			return
		}

		var msg priceMessage
		if err := json.Unmarshal(raw, &msg); err != nil || msg.Price == nil {
			s.logger.WarnContext(ctx, "dropping unparseable rate message")
			continue
		}

		price, err := decimal.NewFromString(msg.Price.String())
		if err != nil {
			s.logger.WarnContext(ctx, "dropping non-numeric rate message")
			continue
		}

		s.slot.Set(&quote.Quote{
			InstrumentCode: streamPair.Code,
			InstrumentName: streamPair.Name,
			Price:          price,
			Timestamp:      s.clock(),
		})
	}
}
