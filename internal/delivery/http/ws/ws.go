// Package ws holds the websocket plumbing shared by the live feeds.
package ws

import (
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/savioruz/turfics/pkg/constant"
	"github.com/savioruz/turfics/pkg/session"
)

// Upgrade rejects plain HTTP requests on websocket routes.
func Upgrade() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}

		return fiber.ErrUpgradeRequired
	}
}

// Session returns the session opened by the auth middleware before the upgrade.
func Session(c *websocket.Conn) *session.Session {
	sess, _ := c.Locals(constant.SessionLocalKey).(*session.Session)

	return sess
}

// Writer serializes frames from the reader loop and timer callbacks.
type Writer struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func NewWriter(c *websocket.Conn) *Writer {
	return &Writer{conn: c}
}

func (w *Writer) JSON(v any) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.conn.WriteJSON(v)
}

// Event is the envelope of every frame a feed sends.
type Event struct {
	Type       string `json:"type"`
	Generation uint64 `json:"generation,omitempty"`
	Data       any    `json:"data,omitempty"`
	Error      string `json:"error,omitempty"`
	Redirect   string `json:"redirect,omitempty"`
}

const (
	EventResult  = "result"
	EventRefined = "refined"
	EventError   = "error"
	EventExpired = "session_expired"
	EventTick    = "tick"
)

// Closed reports whether err is a normal end of the connection.
func Closed(err error) bool {
	return !websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure)
}
