package hold

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/savioruz/turfics/pkg/logger"
)

// Ticker abstracts time.Ticker so countdowns can be driven in tests.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type realTicker struct {
	t *time.Ticker
}

func NewTicker(d time.Duration) Ticker {
	return &realTicker{t: time.NewTicker(d)}
}

func (r *realTicker) C() <-chan time.Time {
	return r.t.C
}

func (r *realTicker) Stop() {
	r.t.Stop()
}

type Options struct {
	Window    time.Duration
	Tick      time.Duration
	Policy    Policy
	NewTicker func(time.Duration) Ticker
	Now       func() time.Time
}

func DefaultOptions() Options {
	return Options{
		Window:    480 * time.Second,
		Tick:      time.Second,
		Policy:    PolicyAlwaysAdvance,
		NewTicker: NewTicker,
		Now:       time.Now,
	}
}

// Registry owns the live holds of the gateway. Holds live in memory only.
type Registry struct {
	mu     sync.RWMutex
	holds  map[string]*Hold
	opts   Options
	log    logger.Interface
	ctx    context.Context
	cancel context.CancelFunc
}

const identifier = "hold - registry - %s"

func NewRegistry(opts Options, l logger.Interface) *Registry {
	def := DefaultOptions()

	if opts.Window <= 0 {
		opts.Window = def.Window
	}

	if opts.Tick <= 0 {
		opts.Tick = def.Tick
	}

	if opts.Policy == "" {
		opts.Policy = def.Policy
	}

	if opts.NewTicker == nil {
		opts.NewTicker = def.NewTicker
	}

	if opts.Now == nil {
		opts.Now = def.Now
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Registry{
		holds:  make(map[string]*Hold),
		opts:   opts,
		log:    l,
		ctx:    ctx,
		cancel: cancel,
	}
}

func (r *Registry) Policy() Policy {
	return r.opts.Policy
}

// Create registers a hold over bookingIDs and starts its countdown.
func (r *Registry) Create(owner string, bookingIDs []int64, total float64) *Hold {
	h := newHold(uuid.NewString(), owner, bookingIDs, total, r.opts.Window, r.opts.Now)
	h.onExpire = func(s Snapshot) {
		r.log.Info(identifier, "hold "+s.ID+" expired")
	}

	r.mu.Lock()
	r.holds[h.id] = h
	r.mu.Unlock()

	go h.Run(r.ctx, r.opts.NewTicker(r.opts.Tick))

	return h
}

func (r *Registry) Get(id string) (*Hold, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	h, ok := r.holds[id]
	if !ok {
		return nil, ErrNotFound
	}

	return h, nil
}

// Cancel stops and forgets a hold.
func (r *Registry) Cancel(id string) error {
	r.mu.Lock()
	h, ok := r.holds[id]
	delete(r.holds, id)
	r.mu.Unlock()

	if !ok {
		return ErrNotFound
	}

	h.Cancel()

	return nil
}

// Sweep drops holds that finished before now minus retention and returns how many were removed.
func (r *Registry) Sweep(now time.Time, retention time.Duration) int {
	cutoff := now.Add(-retention)

	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0

	for id, h := range r.holds {
		at, done := h.finished()
		if done && !at.After(cutoff) {
			delete(r.holds, id)

			removed++
		}
	}

	return removed
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.holds)
}

// Close stops every countdown.
func (r *Registry) Close() {
	r.cancel()
}
