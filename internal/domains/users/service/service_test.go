package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/savioruz/turfics/config"
	"github.com/savioruz/turfics/pkg/failure"
	log "github.com/savioruz/turfics/pkg/logger/mock"
	cache "github.com/savioruz/turfics/pkg/redis/mock"
	"github.com/savioruz/turfics/pkg/session"
	"github.com/savioruz/turfics/pkg/turfapi"
	api "github.com/savioruz/turfics/pkg/turfapi/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setup(t *testing.T) (*userService, *api.MockUserAPI, *cache.MockIRedisCache, *log.MockInterface) {
	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Cache.Duration = 60
	cfg.Search.MinQuery = 2
	cfg.Search.Debounce = 20 * time.Millisecond

	a := api.NewMockUserAPI(ctrl)
	c := cache.NewMockIRedisCache(ctrl)
	l := log.NewMockInterface(ctrl)

	return New(a, c, cfg, l).(*userService), a, c, l
}

var priya = turfapi.User{ID: 5, Username: "priya"}

func TestUserService_Search(t *testing.T) {
	ctx := context.Background()
	sess := session.New()

	t.Run("success: too short skips the API", func(t *testing.T) {
		svc, _, _, _ := setup(t)

		res, err := svc.Search(ctx, sess, " p ")
		require.NoError(t, err)
		assert.Equal(t, "p", res.Query)
		assert.Empty(t, res.Users)
		assert.NotNil(t, res.Users)
	})

	t.Run("success: fetched and cached", func(t *testing.T) {
		svc, a, c, _ := setup(t)
		saved := make(chan struct{})

		c.EXPECT().Get(ctx, "turfics-gateway:cache:users:pri", gomock.Any()).Return(errors.New("redis: nil"))
		a.EXPECT().SearchUsers(ctx, sess, "Pri").Return([]turfapi.User{priya}, nil)
		c.EXPECT().Save(gomock.Any(), "turfics-gateway:cache:users:pri", []turfapi.User{priya}, 60).
			DoAndReturn(func(context.Context, string, any, int) error {
				close(saved)

				return nil
			})

		res, err := svc.Search(ctx, sess, "Pri")
		require.NoError(t, err)
		assert.Equal(t, []turfapi.User{priya}, res.Users)

		select {
		case <-saved:
		case <-time.After(time.Second):
			t.Fatal("result not cached")
		}
	})

	t.Run("success: failures answer with no users", func(t *testing.T) {
		svc, a, c, l := setup(t)

		c.EXPECT().Get(ctx, gomock.Any(), gomock.Any()).Return(errors.New("redis: nil"))
		a.EXPECT().SearchUsers(ctx, sess, "pri").Return(nil, failure.Upstream(http.StatusInternalServerError, ""))
		l.EXPECT().Warn(gomock.Any(), gomock.Any())

		res, err := svc.Search(ctx, sess, "pri")
		require.NoError(t, err)
		assert.Empty(t, res.Users)
	})

	t.Run("error: session expired", func(t *testing.T) {
		svc, a, c, _ := setup(t)

		c.EXPECT().Get(ctx, gomock.Any(), gomock.Any()).Return(errors.New("redis: nil"))
		a.EXPECT().SearchUsers(ctx, sess, "pri").Return(nil, failure.SessionExpired())

		_, err := svc.Search(ctx, sess, "pri")
		assert.ErrorIs(t, err, failure.ErrSessionExpired)
	})
}

func TestFeed_Update(t *testing.T) {
	ctx := context.Background()
	sess := session.New()

	t.Run("success: only the settled query is searched", func(t *testing.T) {
		svc, a, c, _ := setup(t)

		c.EXPECT().Get(gomock.Any(), "turfics-gateway:cache:users:priya", gomock.Any()).SetArg(2, []turfapi.User{priya}).Return(nil)
		a.EXPECT().SearchUsers(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		events := make(chan FeedEvent, 4)
		feed := svc.NewFeed(ctx, sess, func(ev FeedEvent) { events <- ev })
		defer feed.Close()

		feed.Update("pr")
		feed.Update("pri")
		feed.Update("priya")

		select {
		case ev := <-events:
			require.NoError(t, ev.Err)
			assert.Equal(t, "priya", ev.Result.Query)
			assert.Equal(t, []turfapi.User{priya}, ev.Result.Users)
			assert.Equal(t, uint64(3), ev.Generation)
		case <-time.After(time.Second):
			t.Fatal("no result")
		}

		select {
		case ev := <-events:
			t.Fatalf("unexpected event for %q", ev.Result.Query)
		case <-time.After(60 * time.Millisecond):
		}
	})

	t.Run("success: clearing the box cancels the pending search", func(t *testing.T) {
		svc, _, _, _ := setup(t)

		events := make(chan FeedEvent, 4)
		feed := svc.NewFeed(ctx, sess, func(ev FeedEvent) { events <- ev })
		defer feed.Close()

		feed.Update("pri")
		feed.Update("")

		ev := <-events
		assert.Empty(t, ev.Result.Query)
		assert.Empty(t, ev.Result.Users)

		select {
		case ev := <-events:
			t.Fatalf("stale search emitted %q", ev.Result.Query)
		case <-time.After(60 * time.Millisecond):
		}
	})
}
