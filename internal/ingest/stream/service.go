package stream

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/yujm08/MSAProjects-ezen/internal/buffer"
	"github.com/yujm08/MSAProjects-ezen/internal/calendar"
	"github.com/yujm08/MSAProjects-ezen/internal/credential"
	"github.com/yujm08/MSAProjects-ezen/pkg/errors"
	"github.com/yujm08/MSAProjects-ezen/pkg/logger"
)

type subscribeHeader struct {
	ApprovalKey string `json:"approval_key"`
	CustType    string `json:"custtype"`
	TrType      string `json:"tr_type"`
	ContentType string `json:"content-type"`
}

type subscribeInput struct {
	TrID  string `json:"tr_id"`
	TrKey string `json:"tr_key"`
}

type subscribeBody struct {
	Input subscribeInput `json:"input"`
}

type subscribeMessage struct {
	Header subscribeHeader `json:"header"`
	Body   subscribeBody   `json:"body"`
}

// Service streams domestic equity trades over a single multiplexed
// websocket session and writes every parsed observation into the realtime
// buffer. There is no automatic reconnect: a transport failure tears the
// session down and a supervisor re-invokes Subscribe to start a new one.
type Service struct {
	wsURL     string
	buffer    *buffer.Buffer
	approvals *credential.Cache
	logger    logger.Interface

	clock func() time.Time

	mu      sync.Mutex
	conn    *websocket.Conn
	writeMu sync.Mutex
}

// NewService creates a streaming ingestor against the given websocket URL.
func NewService(wsURL string, buf *buffer.Buffer, approvals *credential.Cache, log logger.Interface) *Service {
	return &Service{
		wsURL:     wsURL,
		buffer:    buf,
		approvals: approvals,
		logger:    log,
		clock:     time.Now,
	}
}

// Subscribe starts streaming the instrument. Outside the domestic regular
// session it is a no-op; the gate is re-evaluated on every call, never
// cached. When a session is already live, the subscription is multiplexed
// onto it with an additional subscribe frame. Subscribe also serves as the
// restart entry point after a transport failure.
func (s *Service) Subscribe(ctx context.Context, code string) error {
	if !calendar.Open(calendar.MarketKRX, s.clock()) {
		s.logger.InfoContext(ctx, "domestic market closed, not subscribing", logger.Field{
			Key:   "instrument",
			Value: code,
		})
		return nil
	}

	if len(code) != 6 {
		s.logger.WarnContext(ctx, "instrument code must be 6 digits", logger.Field{
			Key:   "instrument",
			Value: code,
		})
		return nil
	}

	s.mu.Lock()
	if s.conn != nil {
		conn := s.conn
		s.mu.Unlock()
		return s.sendSubscription(ctx, conn, code)
	}
	s.mu.Unlock()

	approvalKey, err := s.approvals.Get(ctx)
	if err != nil {
		return err
	}

	header := http.Header{}
	header.Set("approval_key", approvalKey)
	header.Set("custtype", "P")
	header.Set("tr_type", "1")
	header.Set("content-type", "utf-8")

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, s.wsURL+"/"+transactionID, header)
	if err != nil {
		return errors.NewErrorDetails(err.Error(), string(errors.WebSocketConnectError), "dial")
	}

	s.mu.Lock()
	if s.conn != nil {
		// another caller won the dial race, keep its session
		existing := s.conn
		s.mu.Unlock()
		_ = conn.Close()
		return s.sendSubscription(ctx, existing, code)
	}
	s.conn = conn
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "domestic stream connected", logger.Field{
		Key:   "instrument",
		Value: code,
	})

	go s.readLoop(ctx, conn)

	return s.sendSubscription(ctx, conn, code)
}

// sendSubscription writes the subscribe frame for the instrument onto the
// live session.
func (s *Service) sendSubscription(ctx context.Context, conn *websocket.Conn, code string) error {
	approvalKey, err := s.approvals.Get(ctx)
	if err != nil {
		return err
	}

	msg := subscribeMessage{
		Header: subscribeHeader{
			ApprovalKey: approvalKey,
			CustType:    "P",
			TrType:      "1",
			ContentType: "utf-8",
		},
		Body: subscribeBody{
			Input: subscribeInput{
				TrID:  transactionID,
				TrKey: code,
			},
		},
	}

	if err := s.writeJSON(conn, msg); err != nil {
		return errors.NewErrorDetails(err.Error(), string(errors.WebSocketSendError), "subscribe")
	}

	s.logger.InfoContext(ctx, "subscribe frame sent", logger.Field{
		Key:   "instrument",
		Value: code,
	})
	return nil
}

func (s *Service) writeJSON(conn *websocket.Conn, v any) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return conn.WriteJSON(v)
}

func (s *Service) writeText(conn *websocket.Conn, payload string) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return conn.WriteMessage(websocket.TextMessage, []byte(payload))
}

// readLoop consumes frames until the transport fails. Liveness probes are
// answered in kind; malformed frames are dropped without tearing the
// session down.
func (s *Service) readLoop(ctx context.Context, conn *websocket.Conn) {
	defer s.clearConn(conn)

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			s.logger.ErrorContext(ctx, errors.TracerFromError(err), logger.Field{
				Key:   "action",
				Value: "stream_read",
			})
			return
		}

		frame := string(raw)
		if IsPing(frame) {
			if err := s.writeText(conn, pongFrame); err != nil {
				s.logger.WarnContext(ctx, "failed to answer liveness probe", logger.Field{
					Key:   "error",
					Value: err.Error(),
				})
			}
			continue
		}

		q, err := ParseTrade(frame, s.clock())
		if err != nil {
			s.logger.WarnContext(ctx, "dropping unparseable frame", logger.Field{
				Key:   "error",
				Value: err.Error(),
			})
			continue
		}

		s.buffer.Put(q)
	}
}

func (s *Service) clearConn(conn *websocket.Conn) {
	s.mu.Lock()
	if s.conn == conn {
		s.conn = nil
	}
	s.mu.Unlock()
	_ = conn.Close()
}

// Connected reports whether a streaming session is currently live.
func (s *Service) Connected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn != nil
}
