package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/savioruz/turfics/config"
)

// CORS lets the browser client call the gateway. Request ids are exposed so
// the client can quote them.
func CORS(cfg *config.Config) fiber.Handler {
	if !cfg.CORS.Enable {
		return func(c *fiber.Ctx) error {
			return c.Next()
		}
	}

	return cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     cfg.CORS.AllowedMethods,
		AllowHeaders:     cfg.CORS.AllowedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		ExposeHeaders:    RequestIDHeader + ", Content-Disposition",
		MaxAge:           cfg.CORS.MaxAgeSeconds,
	})
}
