package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/savioruz/turfics/internal/delivery/http/ws"
	"github.com/savioruz/turfics/internal/domains/users/dto"
	"github.com/savioruz/turfics/internal/domains/users/mock"
	"github.com/savioruz/turfics/internal/domains/users/service"
	"github.com/savioruz/turfics/pkg/failure"
	"github.com/savioruz/turfics/pkg/jwt"
	log "github.com/savioruz/turfics/pkg/logger/mock"
	"github.com/savioruz/turfics/pkg/turfapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newApp(t *testing.T) (*fiber.App, *mock.MockUserService) {
	ctrl := gomock.NewController(t)
	jwt.Initialize("")

	svc := mock.NewMockUserService(ctrl)

	app := fiber.New()
	New(svc, log.NewMockInterface(ctrl), validator.New()).RegisterRoutes(app.Group("/v1"))

	return app, svc
}

func bearer(t *testing.T) string {
	claims := jwt.Claims{
		Role:     "user",
		Username: "arjun",
		RegisteredClaims: gojwt.RegisteredClaims{
			Subject:   "9",
			ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}

	signed, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte("x"))
	require.NoError(t, err)

	return "Bearer " + signed
}

func TestHandler_Search(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		app, svc := newApp(t)

		svc.EXPECT().Search(gomock.Any(), gomock.Any(), "pri").
			Return(dto.SearchResponse{Query: "pri", Users: []turfapi.User{{ID: 5, Username: "priya"}}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/users/search?q=pri", nil)
		req.Header.Set(fiber.HeaderAuthorization, bearer(t))

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("error: needs login", func(t *testing.T) {
		app, _ := newApp(t)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/v1/users/search?q=pri", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("error: live search needs an upgrade", func(t *testing.T) {
		app, _ := newApp(t)

		req := httptest.NewRequest(http.MethodGet, "/v1/users/search/live", nil)
		req.Header.Set(fiber.HeaderAuthorization, bearer(t))

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUpgradeRequired, resp.StatusCode)
	})
}

func TestFrame(t *testing.T) {
	res := dto.SearchResponse{Query: "pri"}

	assert.Equal(t, ws.Event{Type: ws.EventResult, Generation: 4, Data: res}, frame(service.FeedEvent{Generation: 4, Result: res}))
	assert.Equal(t, ws.EventExpired, frame(service.FeedEvent{Err: failure.SessionExpired()}).Type)
	assert.Equal(t, ws.EventError, frame(service.FeedEvent{Err: errors.New("boom")}).Type)
}
