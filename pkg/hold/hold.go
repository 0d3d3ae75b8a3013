// Package hold implements the timed reservation window a player has to pay
// for held slots.
package hold

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

type State string

const (
	StateHolding    State = "holding"
	StateProcessing State = "processing"
	StateConfirmed  State = "confirmed"
	StateExpired    State = "expired"
)

func (s State) Terminal() bool {
	return s == StateConfirmed || s == StateExpired
}

var (
	ErrExpired    = errors.New("hold expired")
	ErrNotHolding = errors.New("hold is not awaiting confirmation")
	ErrNotFound   = errors.New("hold not found")
)

// Policy decides the outcome of a confirmation batch with failed calls.
type Policy string

const (
	// PolicyAlwaysAdvance confirms the hold even if some calls failed. Failures are reported per booking.
	PolicyAlwaysAdvance Policy = "always-advance"
	// PolicyStrict returns the hold to holding and surfaces the failure.
	PolicyStrict Policy = "strict"
)

func ParsePolicy(s string) (Policy, error) {
	switch Policy(s) {
	case PolicyAlwaysAdvance, PolicyStrict:
		return Policy(s), nil
	case "":
		return PolicyAlwaysAdvance, nil
	default:
		return "", fmt.Errorf("hold: unknown confirm policy %q", s)
	}
}

// ConfirmFunc confirms one booking with the turfics API.
type ConfirmFunc func(ctx context.Context, bookingID int64) error

type Outcome struct {
	BookingID int64  `json:"booking_id"`
	Confirmed bool   `json:"confirmed"`
	Error     string `json:"error,omitempty"`
}

type Snapshot struct {
	ID         string    `json:"id"`
	Owner      string    `json:"-"`
	State      State     `json:"state"`
	Remaining  int       `json:"remaining_seconds"`
	ExpiresAt  time.Time `json:"expires_at"`
	BookingIDs []int64   `json:"booking_ids"`
	TotalPrice float64   `json:"total_price"`
	Outcomes   []Outcome `json:"outcomes,omitempty"`
}

type Hold struct {
	mu         sync.Mutex
	id         string
	owner      string
	bookingIDs []int64
	total      float64
	state      State
	remaining  int
	expiresAt  time.Time
	finishedAt time.Time
	outcomes   []Outcome
	now        func() time.Time
	onExpire   func(Snapshot)

	stop     chan struct{}
	stopOnce sync.Once

	subMu  sync.Mutex
	subs   map[chan Snapshot]struct{}
	closed bool
}

func newHold(id, owner string, bookingIDs []int64, total float64, window time.Duration, now func() time.Time) *Hold {
	ids := make([]int64, len(bookingIDs))
	copy(ids, bookingIDs)

	return &Hold{
		id:         id,
		owner:      owner,
		bookingIDs: ids,
		total:      total,
		state:      StateHolding,
		remaining:  int(window / time.Second),
		expiresAt:  now().Add(window),
		now:        now,
		stop:       make(chan struct{}),
		subs:       make(map[chan Snapshot]struct{}),
	}
}

func (h *Hold) ID() string {
	return h.id
}

func (h *Hold) Owner() string {
	return h.owner
}

func (h *Hold) Snapshot() Snapshot {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.snapshotLocked()
}

func (h *Hold) snapshotLocked() Snapshot {
	ids := make([]int64, len(h.bookingIDs))
	copy(ids, h.bookingIDs)

	var outcomes []Outcome
	if len(h.outcomes) > 0 {
		outcomes = make([]Outcome, len(h.outcomes))
		copy(outcomes, h.outcomes)
	}

	return Snapshot{
		ID:         h.id,
		Owner:      h.owner,
		State:      h.state,
		Remaining:  h.remaining,
		ExpiresAt:  h.expiresAt,
		BookingIDs: ids,
		TotalPrice: h.total,
		Outcomes:   outcomes,
	}
}

// Tick advances the countdown by one second. Only a holding hold counts down;
// reaching zero expires it exactly once.
func (h *Hold) Tick() State {
	h.mu.Lock()

	if h.state != StateHolding {
		s := h.state
		h.mu.Unlock()

		return s
	}

	h.remaining--
	expired := h.remaining <= 0

	if expired {
		h.remaining = 0
		h.state = StateExpired
		h.finishedAt = h.now()
	}

	snap := h.snapshotLocked()
	onExpire := h.onExpire
	h.mu.Unlock()

	h.publish(snap)

	if expired {
		if onExpire != nil {
			onExpire(snap)
		}

		h.halt()
	}

	return snap.State
}

// Run drives the countdown until the hold is confirmed, expires, is cancelled
// or ctx is done.
func (h *Hold) Run(ctx context.Context, t Ticker) {
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			h.halt()

			return
		case <-h.stop:
			return
		case <-t.C():
			if h.Tick().Terminal() {
				return
			}
		}
	}
}

// Cancel stops the countdown. Nothing is sent to the turfics API.
func (h *Hold) Cancel() {
	h.mu.Lock()
	if h.finishedAt.IsZero() {
		h.finishedAt = h.now()
	}
	h.mu.Unlock()

	h.halt()
}

func (h *Hold) Stopped() bool {
	select {
	case <-h.stop:
		return true
	default:
		return false
	}
}

// Confirm moves a holding hold to processing, confirms every booking in order
// and settles the state according to policy.
func (h *Hold) Confirm(ctx context.Context, policy Policy, confirm ConfirmFunc) (Snapshot, error) {
	h.mu.Lock()

	switch {
	case h.state == StateExpired:
		h.mu.Unlock()

		return h.Snapshot(), ErrExpired
	case h.state != StateHolding || h.Stopped():
		h.mu.Unlock()

		return h.Snapshot(), ErrNotHolding
	}

	h.state = StateProcessing
	ids := make([]int64, len(h.bookingIDs))
	copy(ids, h.bookingIDs)
	snap := h.snapshotLocked()
	h.mu.Unlock()

	h.publish(snap)

	outcomes := make([]Outcome, len(ids))

	var errs []error

	for i, id := range ids {
		outcomes[i] = Outcome{BookingID: id, Confirmed: true}

		if err := confirm(ctx, id); err != nil {
			outcomes[i].Confirmed = false
			outcomes[i].Error = err.Error()
			errs = append(errs, fmt.Errorf("booking %d: %w", id, err))
		}
	}

	h.mu.Lock()
	h.outcomes = outcomes

	switch {
	case len(errs) == 0 || policy != PolicyStrict:
		h.state = StateConfirmed
		h.finishedAt = h.now()
	case h.remaining > 0:
		// The countdown was paused while processing.
		h.state = StateHolding
		h.expiresAt = h.now().Add(time.Duration(h.remaining) * time.Second)
	default:
		h.state = StateExpired
		h.finishedAt = h.now()
	}

	snap = h.snapshotLocked()
	h.mu.Unlock()

	h.publish(snap)

	if snap.State.Terminal() {
		h.halt()
	}

	if policy == PolicyStrict && len(errs) > 0 {
		return snap, errors.Join(errs...)
	}

	return snap, nil
}

// Subscribe returns a channel of snapshots starting with the current one.
// The channel keeps only the latest snapshot and is closed when the hold stops.
func (h *Hold) Subscribe() (<-chan Snapshot, func()) {
	ch := make(chan Snapshot, 1)
	ch <- h.Snapshot()

	h.subMu.Lock()
	defer h.subMu.Unlock()

	if h.closed {
		close(ch)

		return ch, func() {}
	}

	h.subs[ch] = struct{}{}

	return ch, func() {
		h.subMu.Lock()
		defer h.subMu.Unlock()

		if _, ok := h.subs[ch]; ok {
			delete(h.subs, ch)
			close(ch)
		}
	}
}

func (h *Hold) publish(s Snapshot) {
	h.subMu.Lock()
	defer h.subMu.Unlock()

	for ch := range h.subs {
		select {
		case ch <- s:
		default:
			select {
			case <-ch:
			default:
			}

			select {
			case ch <- s:
			default:
			}
		}
	}
}

func (h *Hold) halt() {
	h.stopOnce.Do(func() {
		close(h.stop)

		h.subMu.Lock()
		defer h.subMu.Unlock()

		for ch := range h.subs {
			close(ch)
		}

		h.subs = nil
		h.closed = true
	})
}

func (h *Hold) finished() (time.Time, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.finishedAt, !h.finishedAt.IsZero()
}
