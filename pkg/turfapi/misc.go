package turfapi

import (
	"context"
	"net/url"

	"github.com/savioruz/turfics/pkg/session"
)

func (c *Client) SearchUsers(ctx context.Context, sess *session.Session, q string) ([]User, error) {
	var res []User
	err := c.get(ctx, sess, "/api/users/search", url.Values{"q": {q}}, &res)

	return res, err
}

func (c *Client) GeneratePoster(ctx context.Context, sess *session.Session, req PosterRequest) (PosterContent, error) {
	var res PosterContent
	err := c.post(ctx, sess, "/api/ai/generate-poster", req, &res)

	return res, err
}
