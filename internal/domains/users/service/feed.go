package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/savioruz/turfics/internal/domains/users/dto"
	"github.com/savioruz/turfics/pkg/debounce"
	"github.com/savioruz/turfics/pkg/session"
	"github.com/savioruz/turfics/pkg/turfapi"
)

type FeedEvent struct {
	Generation uint64
	Result     dto.SearchResponse
	Err        error
}

// Feed serves one live user search. A query is looked up once typing has
// paused for the search debounce; results of superseded queries are dropped.
type Feed struct {
	svc       *userService
	ctx       context.Context
	sess      *session.Session
	emit      func(FeedEvent)
	debouncer *debounce.Debouncer
}

func (s *userService) NewFeed(ctx context.Context, sess *session.Session, emit func(FeedEvent)) *Feed {
	return &Feed{
		svc:       s,
		ctx:       ctx,
		sess:      sess,
		emit:      emit,
		debouncer: debounce.New(s.cfg.Search.Debounce),
	}
}

func (f *Feed) Update(query string) {
	query = strings.TrimSpace(query)

	// Too short to search: clear at once.
	if utf8.RuneCountInString(query) < f.svc.cfg.Search.MinQuery {
		f.debouncer.Invalidate()
		f.emit(FeedEvent{Result: dto.SearchResponse{Query: query, Users: []turfapi.User{}}})

		return
	}

	f.debouncer.Trigger(func(gen uint64) {
		res, err := f.svc.Search(f.ctx, f.sess, query)

		if f.debouncer.Current(gen) {
			f.emit(FeedEvent{Generation: gen, Result: res, Err: err})
		}
	})
}

func (f *Feed) Close() {
	f.debouncer.Stop()
}
