package middleware

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/savioruz/turfics/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func token(t *testing.T, role string, exp time.Time) string {
	claims := jwt.Claims{
		Role:     role,
		Username: "asha",
		RegisteredClaims: gojwt.RegisteredClaims{
			Subject:   "7",
			ExpiresAt: gojwt.NewNumericDate(exp),
		},
	}

	signed, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte("any-secret"))
	require.NoError(t, err)

	return signed
}

func newApp(handlers ...fiber.Handler) *fiber.App {
	jwt.Initialize("")

	app := fiber.New()
	handlers = append(handlers, func(c *fiber.Ctx) error {
		sess := CurrentSession(c)
		if sess == nil {
			return c.SendString("anonymous")
		}

		return c.SendString(sess.Identity().UserID + ":" + sess.Identity().Role)
	})
	app.Get("/", handlers...)

	return app
}

func do(t *testing.T, app *fiber.App, header string) (int, string) {
	req := httptest.NewRequest("GET", "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, string(body)
}

func TestJwt(t *testing.T) {
	t.Run("success: opens a session from the token", func(t *testing.T) {
		code, body := do(t, newApp(Jwt()), "Bearer "+token(t, "user", time.Now().Add(time.Hour)))

		assert.Equal(t, fiber.StatusOK, code)
		assert.Equal(t, "7:user", body)
	})

	t.Run("error: missing header", func(t *testing.T) {
		code, _ := do(t, newApp(Jwt()), "")
		assert.Equal(t, fiber.StatusUnauthorized, code)
	})

	t.Run("error: expired token redirects to login", func(t *testing.T) {
		code, body := do(t, newApp(Jwt()), "Bearer "+token(t, "user", time.Now().Add(-time.Minute)))
		assert.Equal(t, fiber.StatusUnauthorized, code)

		var out map[string]any
		require.NoError(t, json.Unmarshal([]byte(body), &out))
		assert.Equal(t, "/login", out["redirect"])
	})

	t.Run("error: malformed header", func(t *testing.T) {
		code, _ := do(t, newApp(Jwt()), "Token abc")
		assert.Equal(t, fiber.StatusUnauthorized, code)
	})
}

func TestOptionalJwt(t *testing.T) {
	code, body := do(t, newApp(OptionalJwt()), "")
	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, "anonymous", body)
}

func TestJwt_RejectedByAPI(t *testing.T) {
	rejecting := func(c *fiber.Ctx) error {
		CurrentSession(c).Invalidate("upstream status 422")

		return c.Next()
	}

	for name, mw := range map[string]fiber.Handler{"jwt": Jwt(), "optional jwt": OptionalJwt()} {
		t.Run("error: "+name+" turns a swallowed rejection into the login redirect", func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			req.Header.Set("Authorization", "Bearer "+token(t, "user", time.Now().Add(time.Hour)))

			resp, err := newApp(mw, rejecting).Test(req)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
			assert.Equal(t, "/login", resp.Header.Get("X-Login-Redirect"))

			var out map[string]any
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
			assert.Equal(t, "/login", out["redirect"])
		})
	}

	t.Run("error: failure answers keep their status", func(t *testing.T) {
		app := fiber.New()
		app.Get("/", Jwt(), func(c *fiber.Ctx) error {
			CurrentSession(c).Invalidate("upstream status 401")

			return c.Status(fiber.StatusBadGateway).SendString("upstream down")
		})

		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("Authorization", "Bearer "+token(t, "user", time.Now().Add(time.Hour)))

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadGateway, resp.StatusCode)
		assert.Equal(t, "/login", resp.Header.Get("X-Login-Redirect"))
	})

	t.Run("success: untouched sessions pass through", func(t *testing.T) {
		code, body := do(t, newApp(Jwt()), "Bearer "+token(t, "user", time.Now().Add(time.Hour)))
		assert.Equal(t, fiber.StatusOK, code)
		assert.Equal(t, "7:user", body)
	})
}

func TestOwnerOnly(t *testing.T) {
	t.Run("success: owner passes", func(t *testing.T) {
		code, _ := do(t, newApp(Jwt(), OwnerOnly()), "Bearer "+token(t, "owner", time.Now().Add(time.Hour)))
		assert.Equal(t, fiber.StatusOK, code)
	})

	t.Run("error: players are forbidden", func(t *testing.T) {
		code, _ := do(t, newApp(Jwt(), OwnerOnly()), "Bearer "+token(t, "user", time.Now().Add(time.Hour)))
		assert.Equal(t, fiber.StatusForbidden, code)
	})
}
