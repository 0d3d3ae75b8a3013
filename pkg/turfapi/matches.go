package turfapi

import (
	"context"
	"net/url"

	"github.com/savioruz/turfics/pkg/session"
)

func (c *Client) HostMatch(ctx context.Context, sess *session.Session, req HostMatchRequest) (Created, error) {
	var res Created
	err := c.post(ctx, sess, "/api/matches", req, &res)

	return res, err
}

func (c *Client) ListMatches(ctx context.Context, sess *session.Session, sport string) ([]OpenMatch, error) {
	var q url.Values
	if sport != "" {
		q = url.Values{"sport": {sport}}
	}

	var res []OpenMatch
	err := c.get(ctx, sess, "/api/matches", q, &res)

	return res, err
}

func (c *Client) MyMatches(ctx context.Context, sess *session.Session) (MyMatches, error) {
	var res MyMatches
	err := c.get(ctx, sess, "/api/matches/my", nil, &res)

	return res, err
}

func (c *Client) JoinMatch(ctx context.Context, sess *session.Session, id int64) (Message, error) {
	var res Message
	err := c.post(ctx, sess, idPath("/api/matches/%d/join", id), nil, &res)

	return res, err
}

// ActOnJoinRequest approves or rejects a join request on a hosted match.
func (c *Client) ActOnJoinRequest(ctx context.Context, sess *session.Session, requestID int64, action string) (Message, error) {
	var res Message
	err := c.post(ctx, sess, idPath("/api/matches/join-requests/%d/action", requestID), JoinActionRequest{Action: action}, &res)

	return res, err
}

func (c *Client) PayJoinRequest(ctx context.Context, sess *session.Session, requestID int64) (Message, error) {
	var res Message
	err := c.post(ctx, sess, idPath("/api/matches/join-requests/%d/pay", requestID), nil, &res)

	return res, err
}

func (c *Client) ListTeams(ctx context.Context, sess *session.Session, skill string) ([]Team, error) {
	var q url.Values
	if skill != "" {
		q = url.Values{"skill": {skill}}
	}

	var res []Team
	err := c.get(ctx, sess, "/api/teams", q, &res)

	return res, err
}

func (c *Client) CreateTeam(ctx context.Context, sess *session.Session, req TeamRequest) (Created, error) {
	var res Created
	err := c.post(ctx, sess, "/api/teams/create", req, &res)

	return res, err
}
