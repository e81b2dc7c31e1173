package rediscache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/yujm08/MSAProjects-ezen/internal/domain/quote"
	"github.com/yujm08/MSAProjects-ezen/pkg/redis"
)

type latestPayload struct {
	InstrumentCode string              `json:"instrument_code"`
	InstrumentName string              `json:"instrument_name"`
	ExchangeCode   string              `json:"exchange_code,omitempty"`
	Price          decimal.Decimal     `json:"price"`
	ChangeRate     decimal.NullDecimal `json:"change_rate"`
	Timestamp      time.Time           `json:"timestamp"`
}

// Cache is a redis-backed LatestQuoteStore.
type Cache struct {
	client redis.Client
	ttl    time.Duration
}

// Ensure Cache implements LatestQuoteStore interface
var _ LatestQuoteStore = (*Cache)(nil)

// NewCache creates a latest-quote cache with the given entry TTL.
func NewCache(client redis.Client, ttl time.Duration) *Cache {
	return &Cache{
		client: client,
		ttl:    ttl,
	}
}

func key(class quote.Class, code string) string {
	return fmt.Sprintf("quote:latest:%s:%s", class, code)
}

// Set stores the quote as the instrument's current value.
func (c *Cache) Set(ctx context.Context, class quote.Class, q *quote.Quote) error {
	payload := latestPayload{
		InstrumentCode: q.InstrumentCode,
		InstrumentName: q.InstrumentName,
		ExchangeCode:   q.ExchangeCode,
		Price:          q.Price,
		ChangeRate:     q.ChangeRate,
		Timestamp:      q.Timestamp,
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal latest quote: %w", err)
	}

	return c.client.Set(ctx, key(class, q.InstrumentCode), raw, c.ttl)
}

// Get returns the instrument's current value, or nil when the cache holds
// none.
func (c *Cache) Get(ctx context.Context, class quote.Class, code string) (*quote.Quote, error) {
	raw, err := c.client.Get(ctx, key(class, code))
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, nil
	}

	var payload latestPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("failed to unmarshal latest quote: %w", err)
	}

	return &quote.Quote{
		InstrumentCode: payload.InstrumentCode,
		InstrumentName: payload.InstrumentName,
		ExchangeCode:   payload.ExchangeCode,
		Price:          payload.Price,
		ChangeRate:     payload.ChangeRate,
		Timestamp:      payload.Timestamp,
	}, nil
}
