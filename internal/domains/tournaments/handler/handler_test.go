package handler

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/savioruz/turfics/internal/domains/tournaments/dto"
	"github.com/savioruz/turfics/internal/domains/tournaments/mock"
	"github.com/savioruz/turfics/pkg/jwt"
	log "github.com/savioruz/turfics/pkg/logger/mock"
	"github.com/savioruz/turfics/pkg/session"
	"github.com/savioruz/turfics/pkg/turfapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newApp(t *testing.T) (*fiber.App, *mock.MockTournamentService, *log.MockInterface) {
	ctrl := gomock.NewController(t)
	jwt.Initialize("")

	svc := mock.NewMockTournamentService(ctrl)
	l := log.NewMockInterface(ctrl)

	app := fiber.New()
	New(svc, l, validator.New()).RegisterRoutes(app.Group("/v1"))

	return app, svc, l
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

func do(t *testing.T, app *fiber.App, req *http.Request, auth bool) int {
	if auth {
		req.Header.Set(fiber.HeaderAuthorization, bearer(t))
	}

	resp, err := app.Test(req)
	require.NoError(t, err)

	return resp.StatusCode
}

func TestHandler_List(t *testing.T) {
	t.Run("success: anonymous", func(t *testing.T) {
		app, svc, _ := newApp(t)

		svc.EXPECT().List(gomock.Any(), nil, dto.ListRequest{Filter: "upcoming", Sport: "Football"}).
			Return([]turfapi.Tournament{{ID: 7}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/tournaments?filter=upcoming&sport=Football", nil)
		assert.Equal(t, http.StatusOK, do(t, app, req, false))
	})

	t.Run("error: unknown filter", func(t *testing.T) {
		app, _, _ := newApp(t)

		req := httptest.NewRequest(http.MethodGet, "/v1/tournaments?filter=past", nil)
		assert.Equal(t, http.StatusBadRequest, do(t, app, req, false))
	})
}

func TestHandler_MyRegistrations(t *testing.T) {
	t.Run("success: not read as a tournament id", func(t *testing.T) {
		app, svc, _ := newApp(t)

		svc.EXPECT().MyRegistrations(gomock.Any(), gomock.Any()).Return([]turfapi.MyRegistration{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/tournaments/my-registrations", nil)
		assert.Equal(t, http.StatusOK, do(t, app, req, true))
	})

	t.Run("error: needs login", func(t *testing.T) {
		app, _, _ := newApp(t)

		req := httptest.NewRequest(http.MethodGet, "/v1/tournaments/my-registrations", nil)
		assert.Equal(t, http.StatusUnauthorized, do(t, app, req, false))
	})
}

func TestHandler_RegisterBulk(t *testing.T) {
	roster := "team_name,captain_name,contact_number\nStrikers,Arjun,9800000001\n"

	upload := func(t *testing.T) *http.Request {
		var body bytes.Buffer

		w := multipart.NewWriter(&body)
		part, err := w.CreateFormFile("file", "roster.csv")
		require.NoError(t, err)
		_, err = part.Write([]byte(roster))
		require.NoError(t, err)
		require.NoError(t, w.Close())

		req := httptest.NewRequest(http.MethodPost, "/v1/tournaments/7/registrations/bulk", &body)
		req.Header.Set(fiber.HeaderContentType, w.FormDataContentType())

		return req
	}

	t.Run("success", func(t *testing.T) {
		app, svc, _ := newApp(t)

		svc.EXPECT().RegisterBulk(gomock.Any(), gomock.Any(), int64(7), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *session.Session, _ int64, r io.Reader) (dto.BulkResponse, error) {
				got, err := io.ReadAll(r)
				require.NoError(t, err)
				assert.Equal(t, roster, string(got))

				return dto.BulkResponse{Total: 1, Registered: 1, Failed: []dto.BulkRowError{}}, nil
			})

		assert.Equal(t, http.StatusOK, do(t, app, upload(t), true))
	})

	t.Run("error: missing file", func(t *testing.T) {
		app, _, _ := newApp(t)

		req := httptest.NewRequest(http.MethodPost, "/v1/tournaments/7/registrations/bulk", strings.NewReader(""))
		assert.Equal(t, http.StatusBadRequest, do(t, app, req, true))
	})
}

func TestHandler_UpdateScore(t *testing.T) {
	body := `{"score1":3,"score2":1,"status":"completed"}`

	t.Run("success", func(t *testing.T) {
		app, svc, _ := newApp(t)

		svc.EXPECT().UpdateScore(gomock.Any(), gomock.Any(), int64(7), int64(31), dto.ScoreRequest{Score1: 3, Score2: 1, Status: "completed"}).
			Return(turfapi.Tournament{ID: 7}, nil)

		req := httptest.NewRequest(http.MethodPut, "/v1/tournaments/7/matches/31/score", strings.NewReader(body))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		assert.Equal(t, http.StatusOK, do(t, app, req, true))
	})

	t.Run("error: invalid match id", func(t *testing.T) {
		app, _, _ := newApp(t)

		req := httptest.NewRequest(http.MethodPut, "/v1/tournaments/7/matches/final/score", strings.NewReader(body))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		assert.Equal(t, http.StatusBadRequest, do(t, app, req, true))
	})

	t.Run("error: negative score", func(t *testing.T) {
		app, _, _ := newApp(t)

		req := httptest.NewRequest(http.MethodPut, "/v1/tournaments/7/matches/31/score", strings.NewReader(`{"score1":-1,"score2":0}`))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		assert.Equal(t, http.StatusBadRequest, do(t, app, req, true))
	})
}
