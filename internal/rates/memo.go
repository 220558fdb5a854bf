package rates

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

type memoEntry struct {
	data *PeriodData
	at   time.Time
}

// ResultMemo keeps one assembled result per period so repeated requests
// within the TTL skip the provider round-trips entirely.
type ResultMemo struct {
	mu      sync.Mutex
	ttl     time.Duration
	clock   clockwork.Clock
	entries map[int]memoEntry
}

func NewResultMemo(ttl time.Duration, clock clockwork.Clock) *ResultMemo {
	return &ResultMemo{
		ttl:     ttl,
		clock:   clock,
		entries: make(map[int]memoEntry),
	}
}

func (m *ResultMemo) Get(months int) (*PeriodData, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.entries[months]
	if !ok {
		return nil, false
	}
	if m.clock.Since(entry.at) >= m.ttl {
		delete(m.entries, months)
		return nil, false
	}
	return entry.data, true
}

func (m *ResultMemo) Set(months int, data *PeriodData) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[months] = memoEntry{data: data, at: m.clock.Now()}
}
