package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/savioruz/turfics/internal/domains/walkin/dto"
	"github.com/savioruz/turfics/internal/domains/walkin/mock"
	"github.com/savioruz/turfics/pkg/constant"
	"github.com/savioruz/turfics/pkg/failure"
	"github.com/savioruz/turfics/pkg/jwt"
	log "github.com/savioruz/turfics/pkg/logger/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newApp(t *testing.T) (*fiber.App, *mock.MockWalkInService, *log.MockInterface) {
	ctrl := gomock.NewController(t)
	jwt.Initialize("")

	svc := mock.NewMockWalkInService(ctrl)
	l := log.NewMockInterface(ctrl)

	app := fiber.New()
	New(svc, l, validator.New()).RegisterRoutes(app.Group("/v1"))

	return app, svc, l
}

func bearer(t *testing.T, role string) string {
	claims := jwt.Claims{
		Role:     role,
		Username: "arena",
		RegisteredClaims: gojwt.RegisteredClaims{
			Subject:   "3",
			ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}

	signed, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte("x"))
	require.NoError(t, err)

	return "Bearer " + signed
}

func submit(t *testing.T, app *fiber.App, role, body string) int {
	req := httptest.NewRequest(http.MethodPost, "/v1/owner/slots/submit", strings.NewReader(body))
	req.Header.Set(fiber.HeaderAuthorization, bearer(t, role))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)

	return resp.StatusCode
}

func TestHandler_Submit(t *testing.T) {
	body := `{"turf_id":1,"unit_id":5,"date":"2026-10-18","slot_ids":["1900"],"mode":"block"}`

	t.Run("success", func(t *testing.T) {
		app, svc, _ := newApp(t)

		svc.EXPECT().Submit(gomock.Any(), gomock.Any(), dto.SubmitRequest{
			TurfID:  1,
			UnitID:  5,
			Date:    "2026-10-18",
			SlotIDs: []string{"1900"},
			Mode:    "block",
		}).Return(dto.SubmitResponse{Mode: "block", BookingIDs: []int64{71}}, nil)

		assert.Equal(t, http.StatusCreated, submit(t, app, constant.RoleOwner, body))
	})

	t.Run("error: players cannot use owner tools", func(t *testing.T) {
		app, _, _ := newApp(t)

		assert.Equal(t, http.StatusForbidden, submit(t, app, constant.RoleUser, body))
	})

	t.Run("error: unknown mode", func(t *testing.T) {
		app, _, l := newApp(t)

		l.EXPECT().Error(gomock.Any())

		assert.Equal(t, http.StatusBadRequest, submit(t, app, constant.RoleAdmin, strings.Replace(body, "block", "reserve", 1)))
	})
}

func analytics(t *testing.T, app *fiber.App, role, query string) *http.Response {
	req := httptest.NewRequest(http.MethodGet, "/v1/owner/analytics"+query, nil)
	req.Header.Set(fiber.HeaderAuthorization, bearer(t, role))

	resp, err := app.Test(req)
	require.NoError(t, err)

	return resp
}

func TestHandler_Analytics(t *testing.T) {
	t.Run("success: custom window", func(t *testing.T) {
		app, svc, _ := newApp(t)
		peak := 18

		svc.EXPECT().Analytics(gomock.Any(), gomock.Any(), dto.AnalyticsRequest{StartDate: "2026-10-01", EndDate: "2026-10-18"}).
			Return(dto.AnalyticsResponse{Range: "custom", TotalBookings: 7, PeakPlayHour: &peak}, nil)

		resp := analytics(t, app, constant.RoleOwner, "?start_date=2026-10-01&end_date=2026-10-18")
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body struct {
			Data dto.AnalyticsResponse `json:"data"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, 7, body.Data.TotalBookings)
		require.NotNil(t, body.Data.PeakPlayHour)
		assert.Equal(t, 18, *body.Data.PeakPlayHour)
	})

	t.Run("error: players cannot see analytics", func(t *testing.T) {
		app, _, _ := newApp(t)

		assert.Equal(t, http.StatusForbidden, analytics(t, app, constant.RoleUser, "").StatusCode)
	})

	t.Run("error: unknown range", func(t *testing.T) {
		app, _, _ := newApp(t)

		assert.Equal(t, http.StatusBadRequest, analytics(t, app, constant.RoleOwner, "?range=decade").StatusCode)
	})

	t.Run("error: session expiry redirects to login", func(t *testing.T) {
		app, svc, l := newApp(t)

		svc.EXPECT().Analytics(gomock.Any(), gomock.Any(), gomock.Any()).Return(dto.AnalyticsResponse{}, failure.SessionExpired())
		l.EXPECT().Error(gomock.Any(), gomock.Any())

		resp := analytics(t, app, constant.RoleOwner, "?range=week")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}
