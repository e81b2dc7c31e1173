package poll

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"
	"github.com/yujm08/MSAProjects-ezen/internal/calendar"
	"github.com/yujm08/MSAProjects-ezen/internal/credential"
	"github.com/yujm08/MSAProjects-ezen/internal/domain/quote"
	"github.com/yujm08/MSAProjects-ezen/pkg/logger"
)

const (
	overseasPricePath = "/uapi/overseas-price/v1/quotations/price"
	overseasTrID      = "HHDFS00000300"

	// rtCdSuccess is the provider's success sentinel.
	rtCdSuccess = "0"
)

type priceOutput struct {
	Last string `json:"last"`
	Rate string `json:"rate"`
}

type priceEnvelope struct {
	RtCd   string      `json:"rt_cd"`
	MsgCd  string      `json:"msg_cd"`
	Msg1   string      `json:"msg1"`
	Output priceOutput `json:"output"`
}

// Service polls the overseas quote endpoint for the static instrument
// catalog and hands every well-formed quote straight to the persistence
// path, bypassing the realtime buffer.
type Service struct {
	client    *resty.Client
	tokens    *credential.Cache
	appKey    string
	appSecret string
	throttle  time.Duration
	saver     quote.Saver
	logger    logger.Interface

	clock func() time.Time
	sleep func(time.Duration)
}

// NewService creates an overseas polling ingestor. throttle is the fixed
// delay between per-instrument calls, respecting the provider's rate
// limits.
func NewService(
	baseURL, appKey, appSecret string,
	tokens *credential.Cache,
	throttle time.Duration,
	saver quote.Saver,
	log logger.Interface,
) *Service {
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetTimeout(10 * time.Second)

	return &Service{
		client:    client,
		tokens:    tokens,
		appKey:    appKey,
		appSecret: appSecret,
		throttle:  throttle,
		saver:     saver,
		logger:    log,
		clock:     time.Now,
		sleep:     time.Sleep,
	}
}

// FetchAll polls every catalog instrument once. Outside all covered
// overseas sessions it performs no network call; the gate is re-evaluated
// on every invocation. A malformed response or persistence failure for one
// instrument never aborts the rest of the cycle.
func (s *Service) FetchAll(ctx context.Context) error {
	if !calendar.GlobalOpen(s.clock()) {
		s.logger.InfoContext(ctx, "overseas markets closed, skipping poll")
		return nil
	}

	token, err := s.tokens.Get(ctx)
	if err != nil {
		return err
	}

	fetched := 0
	for _, instrument := range quote.GlobalInstruments {
		s.sleep(s.throttle)
		if s.fetchOne(ctx, token, instrument) {
			fetched++
		}
	}

	s.logger.InfoContext(ctx, "overseas poll cycle finished", logger.Field{
		Key:   "fetched",
		Value: fetched,
	}, logger.Field{
		Key:   "total",
		Value: len(quote.GlobalInstruments),
	})
	return nil
}

func (s *Service) fetchOne(ctx context.Context, token string, instrument quote.GlobalInstrument) bool {
	var envelope priceEnvelope
	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"AUTH": "",
			"EXCD": instrument.Exchange,
			"SYMB": instrument.Code,
		}).
		SetHeader("authorization", "Bearer "+token).
		SetHeader("appkey", s.appKey).
		SetHeader("appsecret", s.appSecret).
		SetHeader("tr_id", overseasTrID).
		SetHeader("custtype", "P").
		SetResult(&envelope).
		Get(overseasPricePath)
	if err != nil {
		s.logger.ErrorContext(ctx, err, logger.Field{
			Key:   "instrument",
			Value: instrument.Code,
		})
		return false
	}

	if resp.StatusCode() != http.StatusOK {
		s.logger.ErrorContext(ctx, &requestError{status: resp.StatusCode()}, logger.Field{
			Key:   "instrument",
			Value: instrument.Code,
		})
		return false
	}

	if envelope.RtCd != rtCdSuccess {
		s.logger.WarnContext(ctx, "overseas quote request rejected", logger.Field{
			Key:   "instrument",
			Value: instrument.Code,
		}, logger.Field{
			Key:   "message",
			Value: envelope.Msg1,
		})
		return false
	}

	price, err := decimal.NewFromString(strings.TrimSpace(envelope.Output.Last))
	if err != nil {
		s.logger.WarnContext(ctx, "overseas quote missing numeric price", logger.Field{
			Key:   "instrument",
			Value: instrument.Code,
		})
		return false
	}

	rate := decimal.NullDecimal{}
	if parsed, err := decimal.NewFromString(strings.TrimSpace(envelope.Output.Rate)); err == nil {
		rate = decimal.NewNullDecimal(parsed)
	}

	q := &quote.Quote{
		InstrumentCode: instrument.Code,
		InstrumentName: instrument.Name,
		ExchangeCode:   instrument.Exchange,
		Price:          price,
		ChangeRate:     rate,
		Timestamp:      s.clock(),
	}

	if _, err := s.saver.SaveIfChanged(ctx, q); err != nil {
		s.logger.ErrorContext(ctx, err, logger.Field{
			Key:   "instrument",
			Value: instrument.Code,
		})
		return false
	}
	return true
}

type requestError struct {
	status int
}

func (e *requestError) Error() string {
	return fmt.Sprintf("overseas quote request failed with status %d", e.status)
}
