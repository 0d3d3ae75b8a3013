package service

import (
	"context"
	"sync"

	"github.com/savioruz/turfics/internal/domains/venues/dto"
	"github.com/savioruz/turfics/pkg/debounce"
	"github.com/savioruz/turfics/pkg/session"
)

type FeedEvent struct {
	Generation uint64
	Refined    bool
	Result     dto.DiscoverResponse
	Err        error
}

// Feed serves one live discovery connection. Every Update emits the estimated
// ranking at once; routed refinement follows after the input has been quiet
// for the refine debounce, and is dropped if a newer Update arrived meanwhile.
type Feed struct {
	mu        sync.Mutex
	svc       *venueService
	ctx       context.Context
	sess      *session.Session
	emit      func(FeedEvent)
	debouncer *debounce.Debouncer
}

func (s *venueService) NewFeed(ctx context.Context, sess *session.Session, emit func(FeedEvent)) *Feed {
	return &Feed{
		svc:       s,
		ctx:       ctx,
		sess:      sess,
		emit:      emit,
		debouncer: debounce.New(s.cfg.Discovery.RefineDebounce),
	}
}

func (f *Feed) Update(req dto.DiscoverRequest) {
	req.Refine = false

	// Held until this update is out so a refinement never overtakes it.
	f.mu.Lock()
	defer f.mu.Unlock()

	res, err := f.svc.Discover(f.ctx, f.sess, req)
	if err != nil || res.Mode != dto.ModeLocation || res.Origin == nil {
		f.debouncer.Invalidate()
		f.emit(FeedEvent{Result: res, Err: err})

		return
	}

	origin := *res.Origin
	estimate := res.Venues

	gen := f.debouncer.Trigger(func(gen uint64) {
		refined := res
		refined.Venues = f.svc.Refine(f.ctx, origin, estimate)
		refined.Refined = true

		f.mu.Lock()
		defer f.mu.Unlock()

		if f.debouncer.Current(gen) {
			f.emit(FeedEvent{Generation: gen, Refined: true, Result: refined})
		}
	})

	f.emit(FeedEvent{Generation: gen, Result: res})
}

func (f *Feed) Close() {
	f.debouncer.Stop()
}
