package httpserver

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("success: options are applied", func(t *testing.T) {
		s := New(Port("8088"), AppName("turfics-gateway"), ReadTimeout(time.Second), ShutdownTimeout(time.Second))

		assert.Equal(t, ":8088", s.Address())
		assert.Equal(t, "turfics-gateway", s.App.Config().AppName)
		assert.Equal(t, time.Second, s.App.Config().ReadTimeout)
	})

	t.Run("success: custom error handler", func(t *testing.T) {
		s := New(ErrorHandler(func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusTeapot).SendString(err.Error())
		}))

		s.App.Get("/boom", func(*fiber.Ctx) error {
			return fiber.ErrBadRequest
		})

		resp, err := s.App.Test(httptest.NewRequest("GET", "/boom", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusTeapot, resp.StatusCode)
	})
}
