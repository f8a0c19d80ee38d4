package board

import (
	"context"
	"sync"
	"time"
)

// DefaultPollInterval is how often the board snapshot is re-fetched
const DefaultPollInterval = 2500 * time.Millisecond

// Poller runs a function on a fixed interval until stopped
type Poller struct {
	interval time.Duration
	tick     func(context.Context)

	mu      sync.Mutex
	cancel  context.CancelFunc
	done    chan struct{}
	stopped bool
}

// NewPoller creates a poller. A non-positive interval uses DefaultPollInterval.
func NewPoller(interval time.Duration, tick func(context.Context)) *Poller {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Poller{
		interval: interval,
		tick:     tick,
	}
}

// Interval returns the poll interval
func (p *Poller) Interval() time.Duration {
	return p.interval
}

// Start launches the polling goroutine. The first tick fires after one
// interval. Calling Start on a running or stopped poller does nothing.
func (p *Poller) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cancel != nil || p.stopped {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.done = make(chan struct{})

	go p.run(ctx, p.done)
}

func (p *Poller) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.tick(ctx)
		}
	}
}

// Stop cancels polling and waits for the goroutine to exit.
// It is safe to call more than once.
func (p *Poller) Stop() {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return
	}
	p.stopped = true
	cancel, done := p.cancel, p.done
	p.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Running reports whether the polling goroutine is active
func (p *Poller) Running() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cancel != nil && !p.stopped
}
