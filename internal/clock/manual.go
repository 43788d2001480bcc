package clock

import (
	"sort"
	"sync"
	"time"
)

// Manual, testler için elle ilerletilen Scheduler uygulamasıdır.
// Geri çağrılar Advance çağrısı sırasında, planlanma sırasına göre çalışır.
type Manual struct {
	mu      sync.Mutex
	now     time.Duration
	pending []manualTimer
	seq     int
}

type manualTimer struct {
	at  time.Duration
	seq int
	fn  func()
}

// NewManual, sıfır anından başlayan bir Manual oluşturur.
func NewManual() *Manual {
	return &Manual{}
}

func (m *Manual) After(d time.Duration, fn func()) {
	m.mu.Lock()
	m.seq++
	m.pending = append(m.pending, manualTimer{at: m.now + d, seq: m.seq, fn: fn})
	m.mu.Unlock()
}

// Advance, zamanı d kadar ilerletir ve vadesi gelen geri çağrıları çalıştırır.
// Geri çağrılar kilit dışında çalışır, içeriden yeni zamanlayıcı kurabilirler.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	m.now += d
	m.mu.Unlock()

	for {
		fn := m.popDue()
		if fn == nil {
			return
		}
		fn()
	}
}

// Pending, bekleyen zamanlayıcı sayısını döndürür.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.pending)
}

func (m *Manual) popDue() func() {
	m.mu.Lock()
	defer m.mu.Unlock()

	sort.Slice(m.pending, func(i, j int) bool {
		if m.pending[i].at != m.pending[j].at {
			return m.pending[i].at < m.pending[j].at
		}
		return m.pending[i].seq < m.pending[j].seq
	})

	if len(m.pending) == 0 || m.pending[0].at > m.now {
		return nil
	}
	fn := m.pending[0].fn
	m.pending = m.pending[1:]
	return fn
}
