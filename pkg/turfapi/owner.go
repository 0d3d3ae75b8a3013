package turfapi

import (
	"context"
	"net/url"

	"github.com/savioruz/turfics/pkg/session"
)

func (c *Client) OwnerTurfs(ctx context.Context, sess *session.Session) ([]Turf, error) {
	var res []Turf
	err := c.get(ctx, sess, "/api/turfs/my-turfs", nil, &res)

	return res, err
}

func (c *Client) CreateTurf(ctx context.Context, sess *session.Session, req TurfRequest) (Created, error) {
	var res Created
	err := c.post(ctx, sess, "/api/turfs/create", req, &res)

	return res, err
}

func (c *Client) CreateGame(ctx context.Context, sess *session.Session, turfID int64, req GameRequest) (Created, error) {
	var res Created
	err := c.post(ctx, sess, idPath("/api/turfs/%d/games", turfID), req, &res)

	return res, err
}

func (c *Client) CreateUnit(ctx context.Context, sess *session.Session, gameID int64, req UnitRequest) (Created, error) {
	var res Created
	err := c.post(ctx, sess, idPath("/api/games/%d/units", gameID), req, &res)

	return res, err
}

func (c *Client) OwnerBookings(ctx context.Context, sess *session.Session) ([]OwnerBooking, error) {
	var res []OwnerBooking
	err := c.get(ctx, sess, "/api/owner/bookings", nil, &res)

	return res, err
}

func (c *Client) WalkIn(ctx context.Context, sess *session.Session, req WalkInRequest) (OwnerBookingResponse, error) {
	var res OwnerBookingResponse
	err := c.post(ctx, sess, "/api/owner/bookings/walk-in", req, &res)

	return res, err
}

func (c *Client) Block(ctx context.Context, sess *session.Session, req BlockRequest) (OwnerBookingResponse, error) {
	var res OwnerBookingResponse
	err := c.post(ctx, sess, "/api/owner/bookings/block", req, &res)

	return res, err
}

func (c *Client) UpdateOwnerBooking(ctx context.Context, sess *session.Session, id int64, req OwnerBookingUpdate) (Message, error) {
	var res Message
	err := c.put(ctx, sess, idPath("/api/owner/bookings/%d", id), req, &res)

	return res, err
}

func (c *Client) OwnerAnalytics(ctx context.Context, sess *session.Session, q AnalyticsQuery) (OwnerAnalytics, error) {
	query := url.Values{}
	if q.Range != "" {
		query.Set("range", q.Range)
	}

	if q.StartDate != "" && q.EndDate != "" {
		query.Set("start_date", q.StartDate)
		query.Set("end_date", q.EndDate)
	}

	var res OwnerAnalytics
	err := c.get(ctx, sess, "/api/owner/analytics/detailed", query, &res)

	return res, err
}
