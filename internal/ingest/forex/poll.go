package forex

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"
	"github.com/yujm08/MSAProjects-ezen/internal/calendar"
	"github.com/yujm08/MSAProjects-ezen/internal/domain/quote"
	"github.com/yujm08/MSAProjects-ezen/pkg/logger"
)

const pricePath = "/price"

type priceResponse struct {
	Price *json.Number `json:"price"`
}

// Poller fetches currency rates over REST for every catalog pair on a
// fixed timer, as a complement to the single-pair stream.
type Poller struct {
	client *resty.Client
	apiKey string
	saver  quote.Saver
	logger logger.Interface

	clock func() time.Time
}

// NewPoller creates a forex REST poller.
func NewPoller(baseURL, apiKey string, saver quote.Saver, log logger.Interface) *Poller {
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetTimeout(10 * time.Second)

	return &Poller{
		client: client,
		apiKey: apiKey,
		saver:  saver,
		logger: log,
		clock:  time.Now,
	}
}

// FetchAll polls every catalog pair once. The currency market pauses on
// weekends, so the gate skips the whole cycle then; a malformed response
// for one pair never aborts the rest.
func (p *Poller) FetchAll(ctx context.Context) error {
	if !calendar.Open(calendar.MarketFX, p.clock()) {
		p.logger.InfoContext(ctx, "currency market closed, skipping poll")
		return nil
	}

	for _, pair := range quote.ForexPairs {
		p.fetchOne(ctx, pair)
	}
	return nil
}

func (p *Poller) fetchOne(ctx context.Context, pair quote.ForexPair) {
	var parsed priceResponse
	resp, err := p.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"symbol": pair.Code,
			"apikey": p.apiKey,
		}).
		SetResult(&parsed).
		Get(pricePath)
	if err != nil {
		p.logger.ErrorContext(ctx, err, logger.Field{
			Key:   "pair",
			Value: pair.Code,
		})
		return
	}

	if resp.StatusCode() != http.StatusOK || parsed.Price == nil {
		p.logger.WarnContext(ctx, "rate response missing price field", logger.Field{
			Key:   "pair",
			Value: pair.Code,
		})
		return
	}

	price, err := decimal.NewFromString(parsed.Price.String())
	if err != nil {
		p.logger.WarnContext(ctx, "rate response price is not numeric", logger.Field{
			Key:   "pair",
			Value: pair.Code,
		})
		return
	}

	q := &quote.Quote{
		InstrumentCode: pair.Code,
		InstrumentName: pair.Name,
		Price:          price,
		Timestamp:      p.clock(),
	}

	if _, err := p.saver.SaveIfChanged(ctx, q); err != nil {
		p.logger.ErrorContext(ctx, err, logger.Field{
			Key:   "pair",
			Value: pair.Code,
		})
	}
}
