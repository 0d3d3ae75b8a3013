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
	"github.com/savioruz/turfics/internal/domains/auth/dto"
	"github.com/savioruz/turfics/internal/domains/auth/mock"
	"github.com/savioruz/turfics/pkg/constant"
	"github.com/savioruz/turfics/pkg/failure"
	"github.com/savioruz/turfics/pkg/jwt"
	log "github.com/savioruz/turfics/pkg/logger/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newApp(t *testing.T) (*fiber.App, *mock.MockAuthService, *log.MockInterface) {
	ctrl := gomock.NewController(t)
	jwt.Initialize("")

	svc := mock.NewMockAuthService(ctrl)
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

func TestHandler_Login(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		app, svc, _ := newApp(t)

		svc.EXPECT().Login(gomock.Any(), dto.LoginRequest{Username: "ravi", Password: "secret"}).
			Return(dto.LoginResponse{AccessToken: "tok", Role: constant.RoleUser, Redirect: constant.HomePath}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", strings.NewReader(`{"username":"ravi","password":"secret"}`))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body struct {
			Data dto.LoginResponse `json:"data"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "tok", body.Data.AccessToken)
	})

	t.Run("error: validation", func(t *testing.T) {
		app, _, l := newApp(t)

		l.EXPECT().Error(gomock.Any())

		req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", strings.NewReader(`{"username":"ravi"}`))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("error: expired session carries a login redirect", func(t *testing.T) {
		app, svc, l := newApp(t)

		svc.EXPECT().Login(gomock.Any(), gomock.Any()).Return(dto.LoginResponse{}, failure.SessionExpired())
		l.EXPECT().Error(gomock.Any())

		req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", strings.NewReader(`{"username":"ravi","password":"secret"}`))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

		var body map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, constant.LoginPath, body["redirect"])
	})
}

func TestHandler_Me(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		app, svc, _ := newApp(t)

		svc.EXPECT().Me(gomock.Any(), gomock.Any()).Return(dto.SessionResponse{UserID: "9", Active: true}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/auth/me", nil)
		req.Header.Set(fiber.HeaderAuthorization, bearer(t))

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("error: no token", func(t *testing.T) {
		app, _, _ := newApp(t)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/v1/auth/me", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}
