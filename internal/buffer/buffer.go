package buffer

import (
	"sync"
	"time"

	"github.com/yujm08/MSAProjects-ezen/internal/domain/quote"
)

// Buffer holds the most recent quote per instrument code. Writers (one per
// streaming session or polling cycle) overwrite freely; the flush job
// snapshots entries and removes only those it persisted, so a write that
// lands mid-drain is never lost.
type Buffer struct {
	mu      sync.RWMutex
	entries map[string]*quote.Quote
}

// New creates an empty Buffer.
func New() *Buffer {
	return &Buffer{
		entries: make(map[string]*quote.Quote),
	}
}

// Put stores the quote for its instrument code, replacing any previous
// value. Last write wins.
func (b *Buffer) Put(q *quote.Quote) {
	if q == nil {
		return
	}
	b.mu.Lock()
	b.entries[q.InstrumentCode] = q
	b.mu.Unlock()
}

// Get returns the current quote for the code, or nil.
func (b *Buffer) Get(code string) *quote.Quote {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.entries[code]
}

// Snapshot returns the current entries. The returned slice is a copy; the
// quotes themselves are immutable.
func (b *Buffer) Snapshot() []*quote.Quote {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]*quote.Quote, 0, len(b.entries))
	for _, q := range b.entries {
		out = append(out, q)
	}
	return out
}

// CompareAndRemove removes the entry for the code only if the stored quote
// still carries the given timestamp. It returns false when a newer quote
// arrived after the snapshot, leaving that quote in place for the next
// drain.
func (b *Buffer) CompareAndRemove(code string, observedAt time.Time) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	cur, ok := b.entries[code]
	if !ok || !cur.Timestamp.Equal(observedAt) {
		return false
	}
	delete(b.entries, code)
	return true
}

// Len returns the number of buffered instruments.
func (b *Buffer) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.entries)
}

// Slot is a single-value latest holder used by the forex stream: the
// websocket callback sets it, the scheduled saver loads it.
type Slot struct {
	mu  sync.RWMutex
	cur *quote.Quote
}

// NewSlot creates an empty Slot.
func NewSlot() *Slot {
	return &Slot{}
}

// Set replaces the held quote.
func (s *Slot) Set(q *quote.Quote) {
	s.mu.Lock()
	s.cur = q
	s.mu.Unlock()
}

// Load returns the held quote, or nil when nothing has been received yet.
func (s *Slot) Load() *quote.Quote {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cur
}
