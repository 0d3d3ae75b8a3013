package turfapi

import (
	"context"
	"net/url"

	"github.com/savioruz/turfics/pkg/session"
)

func (c *Client) ListTurfs(ctx context.Context, sess *session.Session) ([]Turf, error) {
	var res []Turf
	err := c.get(ctx, sess, "/api/turfs", nil, &res)

	return res, err
}

func (c *Client) GetTurf(ctx context.Context, sess *session.Session, id int64) (Turf, error) {
	var res Turf
	err := c.get(ctx, sess, idPath("/api/turfs/%d", id), nil, &res)

	return res, err
}

func (c *Client) ListGames(ctx context.Context, sess *session.Session, turfID int64) ([]Game, error) {
	var res []Game
	err := c.get(ctx, sess, idPath("/api/turfs/%d/games", turfID), nil, &res)

	return res, err
}

// ListSlots returns the 30 minute slots of a unit for a YYYY-MM-DD date.
func (c *Client) ListSlots(ctx context.Context, sess *session.Session, unitID int64, date string) ([]Slot, error) {
	var res []Slot
	err := c.get(ctx, sess, idPath("/api/units/%d/slots", unitID), url.Values{"date": {date}}, &res)

	return res, err
}
