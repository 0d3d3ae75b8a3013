package service

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"testing"
	"time"

	"github.com/savioruz/turfics/config"
	"github.com/savioruz/turfics/internal/domains/walkin/dto"
	"github.com/savioruz/turfics/pkg/constant"
	"github.com/savioruz/turfics/pkg/failure"
	log "github.com/savioruz/turfics/pkg/logger/mock"
	cache "github.com/savioruz/turfics/pkg/redis/mock"
	"github.com/savioruz/turfics/pkg/session"
	"github.com/savioruz/turfics/pkg/slot"
	storagemock "github.com/savioruz/turfics/pkg/supabase/mock"
	"github.com/savioruz/turfics/pkg/turfapi"
	api "github.com/savioruz/turfics/pkg/turfapi/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type deps struct {
	venues  *api.MockVenueAPI
	owner   *api.MockOwnerAPI
	cache   *cache.MockIRedisCache
	storage *storagemock.MockStorage
	logger  *log.MockInterface
	svc     WalkInService
}

func setup(t *testing.T) *deps {
	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Booking.SlotDuration = 30 * time.Minute
	cfg.Booking.MinSlots = 2

	d := &deps{
		venues:  api.NewMockVenueAPI(ctrl),
		owner:   api.NewMockOwnerAPI(ctrl),
		cache:   cache.NewMockIRedisCache(ctrl),
		storage: storagemock.NewMockStorage(ctrl),
		logger:  log.NewMockInterface(ctrl),
	}
	d.svc = New(d.venues, d.owner, d.cache, d.storage, cfg, d.logger)

	return d
}

func owner() *session.Session {
	sess := session.New()
	sess.Begin("tok", session.Identity{UserID: "3", Username: "arena", Role: constant.RoleOwner})

	return sess
}

func wireSlot(id, start, end, status string, price float64) turfapi.Slot {
	return turfapi.Slot{ID: id, Status: status, Price: price, StartISO: "2026-10-18T" + start + ":00", EndISO: "2026-10-18T" + end + ":00"}
}

var evening = []turfapi.Slot{
	wireSlot("1800", "18:00", "18:30", constant.SlotStatusAvailable, 600),
	wireSlot("1830", "18:30", "19:00", constant.SlotStatusAvailable, 600),
	wireSlot("1900", "19:00", "19:30", constant.SlotStatusAvailable, 700),
	wireSlot("1930", "19:30", "20:00", constant.SlotStatusBlocked, 700),
}

func submit(mode string, ids ...string) dto.SubmitRequest {
	return dto.SubmitRequest{TurfID: 1, UnitID: 5, Date: "2026-10-18", SlotIDs: ids, Mode: mode}
}

func TestWalkInService_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("success: walk-in defaults", func(t *testing.T) {
		d := setup(t)
		sess := owner()

		d.venues.EXPECT().ListSlots(ctx, sess, int64(5), "2026-10-18").Return(evening, nil)
		d.owner.EXPECT().WalkIn(gomock.Any(), sess, turfapi.WalkInRequest{
			TurfID:        1,
			UnitID:        5,
			StartTime:     "2026-10-18T18:00:00",
			DurationMins:  60,
			GuestName:     constant.WalkInDefaultGuest,
			PaymentMode:   constant.PaymentModeCash,
			PaymentStatus: constant.PaymentStatusPaid,
			Price:         1200,
		}).Return(turfapi.OwnerBookingResponse{Message: "Walk-in booking created", BookingID: 70}, nil)

		res, err := d.svc.Submit(ctx, sess, submit("book", "1830", "1800"))

		require.NoError(t, err)
		assert.Equal(t, []int64{70}, res.BookingIDs)
		assert.InDelta(t, 1200, res.TotalPrice, 0.001)
		require.Len(t, res.Blocks, 1)
		assert.Equal(t, 60, res.Blocks[0].DurationMins)
	})

	t.Run("success: single slot block uses the maintenance reason", func(t *testing.T) {
		d := setup(t)
		sess := owner()

		d.venues.EXPECT().ListSlots(ctx, sess, int64(5), "2026-10-18").Return(evening, nil)
		d.owner.EXPECT().Block(gomock.Any(), sess, turfapi.BlockRequest{
			TurfID:       1,
			UnitID:       5,
			StartTime:    "2026-10-18T19:00:00",
			DurationMins: 30,
			Reason:       constant.BlockDefaultReason,
		}).Return(turfapi.OwnerBookingResponse{Message: "Slot blocked successfully", BookingID: 71}, nil)

		res, err := d.svc.Submit(ctx, sess, submit("block", "1900"))

		require.NoError(t, err)
		assert.Equal(t, "block", res.Mode)
		assert.Equal(t, []int64{71}, res.BookingIDs)
		assert.Zero(t, res.TotalPrice)
	})

	t.Run("success: block runs are sent separately", func(t *testing.T) {
		d := setup(t)
		sess := owner()

		req := submit("block", "1800", "1900")
		req.GuestName = "Relaying turf"

		d.venues.EXPECT().ListSlots(ctx, sess, int64(5), "2026-10-18").Return(evening, nil)
		d.owner.EXPECT().Block(gomock.Any(), sess, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *session.Session, r turfapi.BlockRequest) (turfapi.OwnerBookingResponse, error) {
				assert.Equal(t, "Relaying turf", r.Reason)
				assert.Equal(t, 30, r.DurationMins)

				return turfapi.OwnerBookingResponse{BookingID: 1}, nil
			}).Times(2)

		res, err := d.svc.Submit(ctx, sess, req)

		require.NoError(t, err)
		assert.Len(t, res.Blocks, 2)
	})

	t.Run("error: single slot walk-in is rejected before any request", func(t *testing.T) {
		d := setup(t)
		sess := owner()

		d.venues.EXPECT().ListSlots(ctx, sess, int64(5), "2026-10-18").Return(evening, nil)

		_, err := d.svc.Submit(ctx, sess, submit("book", "1900"))

		assert.ErrorIs(t, err, slot.ErrMinimumDuration)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("error: blocked slot", func(t *testing.T) {
		d := setup(t)
		sess := owner()

		d.venues.EXPECT().ListSlots(ctx, sess, int64(5), "2026-10-18").Return(evening, nil)

		_, err := d.svc.Submit(ctx, sess, submit("block", "1930"))

		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("error: upstream conflict", func(t *testing.T) {
		d := setup(t)
		sess := owner()

		d.venues.EXPECT().ListSlots(ctx, sess, int64(5), "2026-10-18").Return(evening, nil)
		d.owner.EXPECT().WalkIn(gomock.Any(), sess, gomock.Any()).
			Return(turfapi.OwnerBookingResponse{}, failure.Upstream(http.StatusConflict, "Slot conflict detected"))
		d.logger.EXPECT().Error(gomock.Any(), gomock.Any())

		_, err := d.svc.Submit(ctx, sess, submit("book", "1800", "1830"))

		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})
}

func TestWalkInService_Bookings(t *testing.T) {
	ctx := context.Background()

	rows := []turfapi.OwnerBooking{
		{Reference: "BK-0001", Status: "confirmed"},
		{Reference: "BK-0002", Status: "blocked"},
		{Reference: "BK-0003", Status: "confirmed"},
	}

	t.Run("success: status filter", func(t *testing.T) {
		d := setup(t)
		sess := owner()

		d.owner.EXPECT().OwnerBookings(ctx, sess).Return(rows, nil)

		res, err := d.svc.Bookings(ctx, sess, dto.OwnerBookingsRequest{Status: "confirmed", Limit: 1})

		require.NoError(t, err)
		require.Len(t, res.Bookings, 1)
		assert.Equal(t, "BK-0001", res.Bookings[0].Reference)
		assert.Equal(t, 2, res.Pagination.TotalItems)
		assert.Equal(t, 2, res.Pagination.TotalPages)
	})
}

func TestWalkInService_UpdateBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		d := setup(t)
		sess := owner()

		d.owner.EXPECT().UpdateOwnerBooking(ctx, sess, int64(9), turfapi.OwnerBookingUpdate{Status: "cancelled"}).
			Return(turfapi.Message{Message: "Booking updated successfully"}, nil)

		res, err := d.svc.UpdateBooking(ctx, sess, 9, dto.UpdateBookingRequest{Status: "cancelled"})

		require.NoError(t, err)
		assert.Equal(t, "Booking updated successfully", res.Message)
	})

	t.Run("error: nothing to update", func(t *testing.T) {
		d := setup(t)

		_, err := d.svc.UpdateBooking(ctx, owner(), 9, dto.UpdateBookingRequest{})

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestWalkInService_CreateTurf(t *testing.T) {
	ctx := context.Background()

	t.Run("success: clears cached turf views", func(t *testing.T) {
		d := setup(t)
		sess := owner()
		lat, lng := 12.93, 77.62

		d.owner.EXPECT().CreateTurf(ctx, sess, gomock.Any()).Return(turfapi.Created{Message: "Turf created", TurfID: 12}, nil)

		cleared := make(chan struct{})
		d.cache.EXPECT().Clear(gomock.Any(), "turfics-gateway:cache:turf").DoAndReturn(func(context.Context, string) error {
			close(cleared)

			return nil
		})

		res, err := d.svc.CreateTurf(ctx, sess, dto.CreateTurfRequest{Name: "Kick Off", Location: "Koramangala, Bangalore", Latitude: &lat, Longitude: &lng})

		require.NoError(t, err)
		assert.Equal(t, int64(12), res.ID)

		select {
		case <-cleared:
		case <-time.After(time.Second):
			t.Fatal("turf cache was not cleared")
		}
	})

	t.Run("error: latitude without longitude", func(t *testing.T) {
		d := setup(t)
		lat := 12.93

		_, err := d.svc.CreateTurf(ctx, owner(), dto.CreateTurfRequest{Name: "Kick Off", Location: "Bangalore", Latitude: &lat})

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestWalkInService_CreateGame(t *testing.T) {
	ctx := context.Background()

	t.Run("success: defaults, cache failure only logged", func(t *testing.T) {
		d := setup(t)
		sess := owner()

		d.owner.EXPECT().CreateGame(ctx, sess, int64(12), turfapi.GameRequest{
			SportType:    "Football",
			GameCategory: "team",
			DefaultPrice: 1200,
			SlotDuration: 60,
		}).Return(turfapi.Created{GameID: 4}, nil)

		logged := make(chan struct{})
		d.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))
		d.logger.EXPECT().Error(gomock.Any(), gomock.Any()).Do(func(any, ...any) {
			close(logged)
		})

		res, err := d.svc.CreateGame(ctx, sess, 12, dto.CreateGameRequest{SportType: "Football", DefaultPrice: 1200})

		require.NoError(t, err)
		assert.Equal(t, int64(4), res.ID)

		select {
		case <-logged:
		case <-time.After(time.Second):
			t.Fatal("cache failure was not logged")
		}
	})
}

func imageHeader(t *testing.T, name, contentType string, body []byte) *multipart.FileHeader {
	var buf bytes.Buffer

	w := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="image"; filename="`+name+`"`)
	h.Set("Content-Type", contentType)

	part, err := w.CreatePart(h)
	require.NoError(t, err)

	_, err = part.Write(body)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)

	return form.File["image"][0]
}

func TestWalkInService_UploadTurfImage(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		d := setup(t)

		d.storage.EXPECT().Upload(ctx, "turfs", ".png", "image/png", gomock.Any()).Return("https://cdn.example/turfs/x.png", nil)

		res, err := d.svc.UploadTurfImage(ctx, imageHeader(t, "pitch.png", "image/png", []byte("\x89PNG")))

		require.NoError(t, err)
		assert.Equal(t, "https://cdn.example/turfs/x.png", res.URL)
	})

	t.Run("error: unsupported type", func(t *testing.T) {
		d := setup(t)

		_, err := d.svc.UploadTurfImage(ctx, imageHeader(t, "doc.pdf", "application/pdf", []byte("%PDF-")))

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestWalkInService_Analytics(t *testing.T) {
	ctx := context.Background()

	raw := turfapi.OwnerAnalytics{
		RevenueBreakdown: []turfapi.NamedValue{
			{Name: "Online Bookings", Value: 4200},
			{Name: "Manual/Walk-in", Value: 1800},
		},
		AdvanceCollected:  3000,
		PendingCollection: 3000,
		BookingScatter: []turfapi.ScatterPoint{
			{X: 21, Y: 7, Z: 20},
			{X: 9, Y: 18, Z: 60},
			{X: 9, Y: 7, Z: 40},
			{X: 14, Y: 19, Z: 20},
		},
		UserRetention:  []turfapi.NamedValue{{Name: "New Customers", Value: 4}},
		AvgPaymentTime: "12 mins",
	}

	t.Run("success: builds and caches the view", func(t *testing.T) {
		d := setup(t)
		sess := owner()
		key := "turfics-gateway:cache:owner-analytics:end=;range=month;start=;user=3;"

		saved := make(chan dto.AnalyticsResponse, 1)

		d.cache.EXPECT().Get(ctx, key, gomock.Any()).Return(errors.New("redis: nil"))
		d.owner.EXPECT().OwnerAnalytics(ctx, sess, turfapi.AnalyticsQuery{Range: "month"}).Return(raw, nil)
		d.cache.EXPECT().Save(gomock.Any(), key, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, v any, _ int) error {
				saved <- v.(dto.AnalyticsResponse)

				return nil
			})

		res, err := d.svc.Analytics(ctx, sess, dto.AnalyticsRequest{})
		require.NoError(t, err)

		assert.Equal(t, "month", res.Range)
		assert.InDelta(t, 6000.0, res.TotalRevenue, 0.001)
		assert.Equal(t, 7, res.TotalBookings)
		assert.Equal(t, []dto.BookingTime{
			{BookedHour: 9, PlayedHour: 7, Bookings: 2},
			{BookedHour: 9, PlayedHour: 18, Bookings: 3},
			{BookedHour: 14, PlayedHour: 19, Bookings: 1},
			{BookedHour: 21, PlayedHour: 7, Bookings: 1},
		}, res.BookingTimes)
		require.NotNil(t, res.PeakPlayHour)
		assert.Equal(t, 7, *res.PeakPlayHour)

		select {
		case v := <-saved:
			assert.Equal(t, res, v)
		case <-time.After(time.Second):
			t.Fatal("analytics view was not cached")
		}
	})

	t.Run("success: cached view skips the api", func(t *testing.T) {
		d := setup(t)
		cached := dto.AnalyticsResponse{Range: "week", TotalBookings: 9}

		d.cache.EXPECT().Get(ctx, gomock.Any(), gomock.Any()).SetArg(2, cached).Return(nil)

		res, err := d.svc.Analytics(ctx, owner(), dto.AnalyticsRequest{Range: "week"})
		require.NoError(t, err)
		assert.Equal(t, cached, res)
	})

	t.Run("success: a date pair selects a custom window", func(t *testing.T) {
		d := setup(t)
		sess := owner()
		q := turfapi.AnalyticsQuery{Range: "custom", StartDate: "2026-10-01", EndDate: "2026-10-18"}

		d.cache.EXPECT().Get(ctx, gomock.Any(), gomock.Any()).Return(errors.New("redis: nil"))
		d.owner.EXPECT().OwnerAnalytics(ctx, sess, q).Return(turfapi.OwnerAnalytics{}, nil)

		saved := make(chan struct{})
		d.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, string, any, int) error {
			close(saved)

			return nil
		})

		res, err := d.svc.Analytics(ctx, sess, dto.AnalyticsRequest{Range: "week", StartDate: "2026-10-01", EndDate: "2026-10-18"})
		require.NoError(t, err)
		assert.Equal(t, "custom", res.Range)
		assert.Nil(t, res.PeakPlayHour)
		assert.Empty(t, res.BookingTimes)

		select {
		case <-saved:
		case <-time.After(time.Second):
			t.Fatal("analytics view was not cached")
		}
	})

	for name, req := range map[string]dto.AnalyticsRequest{
		"half open window":     {StartDate: "2026-10-01"},
		"custom without dates": {Range: "custom"},
		"end before start":     {StartDate: "2026-10-18", EndDate: "2026-10-01"},
		"unparseable end date": {StartDate: "2026-10-01", EndDate: "2026-13-40"},
	} {
		t.Run("error: "+name, func(t *testing.T) {
			d := setup(t)

			_, err := d.svc.Analytics(ctx, owner(), req)

			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		})
	}

	t.Run("error: rejected session", func(t *testing.T) {
		d := setup(t)
		sess := owner()

		d.cache.EXPECT().Get(ctx, gomock.Any(), gomock.Any()).Return(errors.New("redis: nil"))
		d.owner.EXPECT().OwnerAnalytics(ctx, sess, gomock.Any()).Return(turfapi.OwnerAnalytics{}, failure.SessionExpired())
		d.logger.EXPECT().Error(gomock.Any(), gomock.Any())

		_, err := d.svc.Analytics(ctx, sess, dto.AnalyticsRequest{})

		assert.ErrorIs(t, err, failure.ErrSessionExpired)
	})
}
