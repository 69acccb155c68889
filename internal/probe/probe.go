// Package probe watches the remote backend and keeps a shared
// online/offline verdict current.
package probe

import (
	"context"
	"sync"
	"time"

	"github.com/ahmadsvu/stationery-hub-frontend/config"
	"github.com/ahmadsvu/stationery-hub-frontend/internal/backend"
	"github.com/ahmadsvu/stationery-hub-frontend/pkg/event"
	"github.com/ahmadsvu/stationery-hub-frontend/pkg/logger"
	"github.com/ahmadsvu/stationery-hub-frontend/pkg/metrics"
)

// Status is the backend reachability verdict.
type Status string

const (
	// StatusChecking is the state before the first probe resolves.
	StatusChecking Status = "checking"
	StatusOnline   Status = "online"
	StatusOffline  Status = "offline"
)

// Update is one resolved probe result.
type Update struct {
	Status    Status    `json:"status"`
	CheckedAt time.Time `json:"checkedAt"`
}

// Prober runs reachability checks on a fixed cadence and fans out status
// changes to subscribers.
type Prober struct {
	backend  *backend.Client
	interval time.Duration
	timeout  time.Duration

	mu        sync.RWMutex
	status    Status
	resolved  Status
	checkedAt time.Time
	subs      map[int]chan Update
	nextSub   int
}

// New builds a prober with the configured cadence.
func New(b *backend.Client) *Prober {
	return NewWithCadence(b, config.ProbeInterval(), config.ProbeTimeout())
}

// NewWithCadence builds a prober with an explicit interval and per-check
// timeout.
func NewWithCadence(b *backend.Client, interval, timeout time.Duration) *Prober {
	return &Prober{
		backend:  b,
		interval: interval,
		timeout:  timeout,
		status:   StatusChecking,
		resolved: StatusChecking,
		subs:     make(map[int]chan Update),
	}
}

// Status returns the latest verdict.
func (p *Prober) Status() Status {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.status
}

// Last returns the latest verdict together with when it was resolved.
func (p *Prober) Last() Update {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return Update{Status: p.status, CheckedAt: p.checkedAt}
}

// Check runs one probe cycle and returns the resulting status. The public
// status drops back to checking while the probe is in flight, then settles
// on the verdict. Every state change is broadcast; the gauge and the log
// only move when the verdict itself flips.
func (p *Prober) Check(ctx context.Context) Status {
	p.enterChecking()

	status := StatusOnline
	if err := p.backend.Ping(ctx, p.timeout); err != nil {
		status = StatusOffline
	}
	return p.resolve(status)
}

// enterChecking opens a probe cycle: status indicators show the
// intermediate state until the verdict lands.
func (p *Prober) enterChecking() {
	p.mu.Lock()
	p.status = StatusChecking
	last := p.checkedAt
	p.mu.Unlock()

	update := Update{Status: StatusChecking, CheckedAt: last}
	event.Fire(event.ProbeStatus, update)
	p.broadcast(update)
}

func (p *Prober) resolve(status Status) Status {
	now := time.Now()

	p.mu.Lock()
	prev := p.resolved
	p.status = status
	p.resolved = status
	p.checkedAt = now
	changed := prev != status
	p.mu.Unlock()

	if changed {
		logger.Info("probe: backend status", "from", string(prev), "to", string(status))
		metrics.SetBackendUp(status == StatusOnline)
	}

	update := Update{Status: status, CheckedAt: now}
	event.Fire(event.ProbeStatus, update)
	p.broadcast(update)

	return status
}

// Start probes once right away, then on every interval tick until the
// context is cancelled.
func (p *Prober) Start(ctx context.Context) {
	go func() {
		p.Check(ctx)

		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				p.Check(ctx)
			}
		}
	}()
}

// Subscribe registers a listener for status updates. The returned cancel
// func must be called to release the channel.
func (p *Prober) Subscribe() (<-chan Update, func()) {
	p.mu.Lock()
	id := p.nextSub
	p.nextSub++
	ch := make(chan Update, 4)
	p.subs[id] = ch
	p.mu.Unlock()

	cancel := func() {
		p.mu.Lock()
		if sub, ok := p.subs[id]; ok {
			delete(p.subs, id)
			close(sub)
		}
		p.mu.Unlock()
	}
	return ch, cancel
}

// broadcast never blocks: a subscriber that stopped draining loses updates
// instead of stalling the probe loop.
func (p *Prober) broadcast(update Update) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	for _, ch := range p.subs {
		select {
		case ch <- update:
		default:
		}
	}
}
