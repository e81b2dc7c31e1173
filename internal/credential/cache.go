package credential

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// Credential is an issued secret together with its issue time. It is
// replaced wholesale on refresh, never mutated.
type Credential struct {
	Value    string
	IssuedAt time.Time
}

// Issuer requests a fresh credential from the upstream provider.
type Issuer interface {
	Issue(ctx context.Context) (string, error)
}

// Cache is a lazily refreshed credential holder, safe for concurrent
// callers. A credential is considered stale once its age crosses
// expiry−margin, strictly before the stated expiry so callers never race
// it. Staleness is re-checked under the lock so that N concurrent callers
// trigger exactly one issuance.
type Cache struct {
	issuer Issuer
	expiry time.Duration
	margin time.Duration
	now    func() time.Time

	mu  sync.Mutex
	cur atomic.Pointer[Credential]
}

// NewCache creates a Cache for the given issuer and lifetime window.
func NewCache(issuer Issuer, expiry, margin time.Duration) *Cache {
	return newCache(issuer, expiry, margin, time.Now)
}

func newCache(issuer Issuer, expiry, margin time.Duration, now func() time.Time) *Cache {
	return &Cache{
		issuer: issuer,
		expiry: expiry,
		margin: margin,
		now:    now,
	}
}

// Get returns a valid credential value, issuing a new one when the cached
// credential is missing or stale. Issuance failures propagate: the caller
// must not ingest without a credential.
func (c *Cache) Get(ctx context.Context) (string, error) {
	if cred := c.cur.Load(); cred != nil && !c.stale(cred) {
		return cred.Value, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// double-check: another caller may have refreshed while we waited
	if cred := c.cur.Load(); cred != nil && !c.stale(cred) {
		return cred.Value, nil
	}

	value, err := c.issuer.Issue(ctx)
	if err != nil {
		return "", err
	}

	c.cur.Store(&Credential{
		Value:    value,
		IssuedAt: c.now(),
	})
	return value, nil
}

func (c *Cache) stale(cred *Credential) bool {
	return c.now().Sub(cred.IssuedAt) >= c.expiry-c.margin
}
