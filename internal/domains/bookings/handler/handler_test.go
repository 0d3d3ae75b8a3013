package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/savioruz/turfics/internal/domains/bookings/dto"
	"github.com/savioruz/turfics/internal/domains/bookings/mock"
	"github.com/savioruz/turfics/pkg/constant"
	"github.com/savioruz/turfics/pkg/failure"
	"github.com/savioruz/turfics/pkg/hold"
	"github.com/savioruz/turfics/pkg/jwt"
	log "github.com/savioruz/turfics/pkg/logger/mock"
	"github.com/savioruz/turfics/pkg/session"
	"github.com/savioruz/turfics/pkg/slot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newApp(t *testing.T) (*fiber.App, *mock.MockBookingService, *log.MockInterface) {
	ctrl := gomock.NewController(t)
	jwt.Initialize("")

	svc := mock.NewMockBookingService(ctrl)
	l := log.NewMockInterface(ctrl)

	app := fiber.New()
	New(svc, l, validator.New()).RegisterRoutes(app.Group("/v1"))

	return app, svc, l
}

func bearer(t *testing.T) string {
	claims := jwt.Claims{
		Role:     constant.RoleUser,
		Username: "ravi",
		RegisteredClaims: gojwt.RegisteredClaims{
			Subject:   "9",
			ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}

	signed, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte("x"))
	require.NoError(t, err)

	return "Bearer " + signed
}

func do(t *testing.T, app *fiber.App, method, target, body string) *http.Response {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, r)
	req.Header.Set(fiber.HeaderAuthorization, bearer(t))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)

	return resp
}

func TestHandler_CreateHold(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		app, svc, _ := newApp(t)

		svc.EXPECT().CreateHold(gomock.Any(), gomock.Any(), dto.CreateHoldRequest{UnitID: 5, Date: "2026-10-18", SlotIDs: []string{"1800", "1830"}}).
			DoAndReturn(func(_ context.Context, sess *session.Session, _ dto.CreateHoldRequest) (dto.HoldResponse, error) {
				assert.Equal(t, "9", sess.Identity().UserID)

				return dto.HoldResponse{Snapshot: hold.Snapshot{ID: "h1", State: hold.StateHolding, Remaining: 480}}, nil
			})

		resp := do(t, app, http.MethodPost, "/v1/bookings/holds", `{"unit_id":5,"date":"2026-10-18","slot_ids":["1800","1830"]}`)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var body struct {
			Data dto.HoldResponse `json:"data"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "h1", body.Data.ID)
		assert.Equal(t, 480, body.Data.Remaining)
	})

	t.Run("error: duplicate slot ids", func(t *testing.T) {
		app, _, l := newApp(t)

		l.EXPECT().Error(gomock.Any())

		resp := do(t, app, http.MethodPost, "/v1/bookings/holds", `{"unit_id":5,"date":"2026-10-18","slot_ids":["1800","1800"]}`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("error: below minimum duration", func(t *testing.T) {
		app, svc, l := newApp(t)

		svc.EXPECT().CreateHold(gomock.Any(), gomock.Any(), gomock.Any()).Return(dto.HoldResponse{}, failure.BadRequest(slot.ErrMinimumDuration))
		l.EXPECT().Error(gomock.Any(), gomock.Any())

		resp := do(t, app, http.MethodPost, "/v1/bookings/holds", `{"unit_id":5,"date":"2026-10-18","slot_ids":["1900"]}`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("error: no token", func(t *testing.T) {
		app, _, _ := newApp(t)

		req := httptest.NewRequest(http.MethodPost, "/v1/bookings/holds", strings.NewReader(`{}`))
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestHandler_ConfirmHold(t *testing.T) {
	t.Run("error: expired hold", func(t *testing.T) {
		app, svc, l := newApp(t)

		svc.EXPECT().ConfirmHold(gomock.Any(), gomock.Any(), "h1", dto.ConfirmHoldRequest{PaymentMode: constant.PaymentModeFull}).
			Return(dto.HoldResponse{}, failure.Gone("hold expired, select the slots again"))
		l.EXPECT().Error(gomock.Any(), gomock.Any())

		resp := do(t, app, http.MethodPost, "/v1/bookings/holds/h1/confirm", `{"payment_mode":"full"}`)
		assert.Equal(t, http.StatusGone, resp.StatusCode)
	})

	t.Run("error: unknown payment mode", func(t *testing.T) {
		app, _, _ := newApp(t)

		resp := do(t, app, http.MethodPost, "/v1/bookings/holds/h1/confirm", `{"payment_mode":"cash"}`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestHandler_CancelHold(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		app, svc, _ := newApp(t)

		svc.EXPECT().CancelHold(gomock.Any(), gomock.Any(), "h1").Return(nil)

		resp := do(t, app, http.MethodDelete, "/v1/bookings/holds/h1", "")
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	})
}

func TestHandler_MyBookings(t *testing.T) {
	t.Run("error: unknown filter", func(t *testing.T) {
		app, _, l := newApp(t)

		l.EXPECT().Error(gomock.Any())

		resp := do(t, app, http.MethodGet, "/v1/bookings/my?filter=past", "")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestHandler_Invoice(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		app, svc, _ := newApp(t)

		svc.EXPECT().Invoice(gomock.Any(), gomock.Any(), int64(41)).Return("invoice-BK-0041.pdf", []byte("%PDF-1.3"), nil)

		resp := do(t, app, http.MethodGet, "/v1/bookings/41/invoice", "")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))
		assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "invoice-BK-0041.pdf")
	})

	t.Run("error: invalid id", func(t *testing.T) {
		app, _, _ := newApp(t)

		resp := do(t, app, http.MethodGet, "/v1/bookings/abc/invoice", "")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}
