package turfapi

import (
	"context"
	"net/url"

	"github.com/savioruz/turfics/pkg/session"
)

func (c *Client) CreateBooking(ctx context.Context, sess *session.Session, req CreateBookingRequest) (CreateBookingResponse, error) {
	var res CreateBookingResponse
	err := c.post(ctx, sess, "/api/bookings", req, &res)

	return res, err
}

func (c *Client) ConfirmBooking(ctx context.Context, sess *session.Session, req ConfirmBookingRequest) (Message, error) {
	var res Message
	err := c.post(ctx, sess, "/api/bookings/confirm", req, &res)

	return res, err
}

// MyBookings lists the caller's bookings; filter is "upcoming" or "history".
func (c *Client) MyBookings(ctx context.Context, sess *session.Session, filter string) ([]Booking, error) {
	var q url.Values
	if filter != "" {
		q = url.Values{"filter": {filter}}
	}

	var res []Booking
	err := c.get(ctx, sess, "/api/my-bookings", q, &res)

	return res, err
}

func (c *Client) CancelBooking(ctx context.Context, sess *session.Session, id int64) (Message, error) {
	var res Message
	err := c.post(ctx, sess, idPath("/api/bookings/%d/cancel", id), nil, &res)

	return res, err
}
