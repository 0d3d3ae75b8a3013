package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/savioruz/turfics/internal/delivery/http/response"
	"github.com/savioruz/turfics/pkg/constant"
	"github.com/savioruz/turfics/pkg/failure"
	"github.com/savioruz/turfics/pkg/jwt"
	"github.com/savioruz/turfics/pkg/session"
)

// Jwt requires a turfics access token and opens a session for the request.
// Browsers cannot set headers on websocket upgrades, so those may pass ?token=.
func Jwt() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := openSession(c)
		if err != nil {
			return response.WithError(c, err)
		}

		if sess == nil {
			return response.WithError(c, failure.Unauthorized("missing authorization header"))
		}

		c.Locals(constant.SessionLocalKey, sess)

		return serve(c, sess)
	}
}

// OptionalJwt opens a session when a token is present and lets anonymous requests through.
func OptionalJwt() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := openSession(c)
		if err != nil {
			return response.WithError(c, err)
		}

		if sess == nil {
			return c.Next()
		}

		c.Locals(constant.SessionLocalKey, sess)

		return serve(c, sess)
	}
}

// serve runs the rest of the chain. When the turfics API rejected the session
// on the way, the client gets the login redirect even if the handler answered
// with a success.
func serve(c *fiber.Ctx, sess *session.Session) error {
	err := c.Next()

	ev, ok := sess.Invalidated()
	if !ok {
		return err
	}

	c.Set(constant.HeaderLoginRedirect, ev.Redirect)

	if status := c.Response().StatusCode(); err == nil && status >= fiber.StatusOK && status < fiber.StatusMultipleChoices {
		c.Response().Header.Del(fiber.HeaderContentDisposition)

		return response.WithError(c, failure.SessionExpired())
	}

	return err
}

func bearer(c *fiber.Ctx) (string, error) {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader == "" {
		if c.Get(fiber.HeaderUpgrade) != "" {
			return c.Query("token"), nil
		}

		return "", nil
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", failure.Unauthorized("invalid authorization header format")
	}

	return parts[1], nil
}

func openSession(c *fiber.Ctx) (*session.Session, error) {
	token, err := bearer(c)
	if err != nil || token == "" {
		return nil, err
	}

	claims, err := jwt.ValidateToken(token)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, failure.SessionExpired()
		}

		return nil, failure.Unauthorized("invalid token")
	}

	id := session.Identity{
		UserID:   claims.UserID(),
		Username: claims.Username,
		Role:     claims.Role,
	}

	if claims.ExpiresAt != nil {
		id.ExpiresAt = claims.ExpiresAt.Time
	}

	sess := session.New()
	sess.Begin(token, id)

	return sess, nil
}

// CurrentSession returns the request session, or nil on anonymous routes.
func CurrentSession(c *fiber.Ctx) *session.Session {
	sess, _ := c.Locals(constant.SessionLocalKey).(*session.Session)

	return sess
}

// RequireSession is CurrentSession for routes behind Jwt.
func RequireSession(c *fiber.Ctx) (*session.Session, error) {
	sess, ok := c.Locals(constant.SessionLocalKey).(*session.Session)
	if !ok || sess == nil {
		return nil, constant.ErrInvalidContextSessionType
	}

	return sess, nil
}
