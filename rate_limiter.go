// rate_limiter.go
// ----------------
// Pacing between consecutive calls to the same source. The telemetry API
// rate-limits aggressively, so the orchestrator waits out a minimum interval
// before each sampled session instead of hitting the endpoint back to back.
package f1data

import (
	"sync"
	"time"
)

// Pacer enforces a minimum interval between consecutive Wait calls for the
// same source name. The first call for a source never blocks.
type Pacer struct {
	mu       sync.Mutex
	interval time.Duration
	lastCall map[string]time.Time
	sleep    func(time.Duration)
	now      func() time.Time
}

func NewPacer(interval time.Duration) *Pacer {
	return &Pacer{
		interval: interval,
		lastCall: make(map[string]time.Time),
		sleep:    time.Sleep,
		now:      time.Now,
	}
}

// Wait blocks until at least the configured interval has passed since the
// previous Wait for the same source, then records the new call time.
func (p *Pacer) Wait(source string) {
	p.mu.Lock()
	last, ok := p.lastCall[source]
	p.mu.Unlock()

	if ok {
		if remaining := p.interval - p.now().Sub(last); remaining > 0 {
			p.sleep(remaining)
		}
	}

	p.mu.Lock()
	p.lastCall[source] = p.now()
	p.mu.Unlock()
}
