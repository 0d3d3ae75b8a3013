package middleware

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/savioruz/turfics/pkg/logger"
)

func buildRequestMessage(ctx *fiber.Ctx, took time.Duration) string {
	var result strings.Builder

	if id, ok := ctx.Locals(RequestIDKey).(string); ok {
		result.WriteString("[" + id + "] ")
	}

	result.WriteString(ctx.IP())
	result.WriteString(" - ")
	result.WriteString(ctx.Method())
	result.WriteString(" ")
	result.WriteString(ctx.OriginalURL())
	result.WriteString(" - ")
	result.WriteString(strconv.Itoa(ctx.Response().StatusCode()))
	result.WriteString(" ")
	result.WriteString(strconv.Itoa(len(ctx.Response().Body())))

	if sess := CurrentSession(ctx); sess != nil {
		result.WriteString(" - user ")
		result.WriteString(sess.Identity().UserID)
	}

	result.WriteString(" - ")
	result.WriteString(strconv.FormatInt(took.Milliseconds(), 10))
	result.WriteString("ms")

	return result.String()
}

// Logger writes one line per request. 4xx answers log at warn and 5xx at error.
func Logger(l logger.Interface) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		start := time.Now()

		err := ctx.Next()

		msg := buildRequestMessage(ctx, time.Since(start))

		switch status := ctx.Response().StatusCode(); {
		case status >= fiber.StatusInternalServerError:
			l.Error(msg)
		case status >= fiber.StatusBadRequest:
			l.Warn(msg)
		default:
			l.Info(msg)
		}

		return err
	}
}
