package routing

import (
	"context"
	"testing"
	"time"

	"github.com/savioruz/turfics/pkg/geo"
	log "github.com/savioruz/turfics/pkg/logger/mock"
	"github.com/savioruz/turfics/pkg/redis"
	cache "github.com/savioruz/turfics/pkg/redis/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
	"go.uber.org/mock/gomock"
)

type stubDoer struct {
	body  string
	calls int
	uri   string
}

func (s *stubDoer) DoDeadline(req *fasthttp.Request, resp *fasthttp.Response, _ time.Time) error {
	s.calls++
	s.uri = req.URI().String()
	resp.SetStatusCode(fasthttp.StatusOK)
	resp.SetBodyString(s.body)

	return nil
}

var (
	home  = geo.Point{Lat: 12.9716, Lng: 77.5946}
	venue = geo.Point{Lat: 12.9352, Lng: 77.6245}
)

func setup(t *testing.T, body string) (*stubDoer, *cache.MockIRedisCache, Router) {
	ctrl := gomock.NewController(t)
	l := log.NewMockInterface(ctrl)
	l.EXPECT().Warn(gomock.Any(), gomock.Any()).AnyTimes()

	c := cache.NewMockIRedisCache(ctrl)
	d := &stubDoer{body: body}

	return d, c, NewWithDoer(Config{BaseURL: "http://osrm.test", CacheDuration: 60}, d, c, l)
}

func TestDistance(t *testing.T) {
	t.Run("success: routed distance in kilometers", func(t *testing.T) {
		d, c, r := setup(t, `{"code":"Ok","routes":[{"distance":7250.0}]}`)
		c.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(redis.ErrCacheMiss)
		c.EXPECT().Save(gomock.Any(), gomock.Any(), 7.25, 60).Return(nil).AnyTimes()

		km, err := r.Distance(context.Background(), home, venue)
		require.NoError(t, err)
		assert.InDelta(t, 7.25, km, 0.0001)
		assert.Contains(t, d.uri, "/route/v1/driving/77.594600,12.971600;77.624500,12.935200")
		assert.Contains(t, d.uri, "overview=false")
	})

	t.Run("success: cached distance skips the request", func(t *testing.T) {
		d, c, r := setup(t, "")
		c.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).SetArg(2, 3.1).Return(nil)

		km, err := r.Distance(context.Background(), home, venue)
		require.NoError(t, err)
		assert.InDelta(t, 3.1, km, 0.0001)
		assert.Zero(t, d.calls)
	})

	t.Run("error: no route", func(t *testing.T) {
		_, c, r := setup(t, `{"code":"NoRoute","routes":[]}`)
		c.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(redis.ErrCacheMiss)

		_, err := r.Distance(context.Background(), home, venue)
		assert.ErrorIs(t, err, ErrNoRoute)
	})
}
