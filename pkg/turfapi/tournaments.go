package turfapi

import (
	"context"
	"net/url"

	"github.com/savioruz/turfics/pkg/session"
)

// ListTournaments lists tournaments. filter is "all" or "upcoming"; an empty
// sport or "All" means every sport.
func (c *Client) ListTournaments(ctx context.Context, sess *session.Session, filter, sport string) ([]Tournament, error) {
	q := url.Values{}
	if filter != "" {
		q.Set("filter", filter)
	}

	if sport != "" {
		q.Set("sport", sport)
	}

	var res []Tournament
	err := c.get(ctx, sess, "/api/tournaments", q, &res)

	return res, err
}

func (c *Client) GetTournament(ctx context.Context, sess *session.Session, id int64) (Tournament, error) {
	var res Tournament
	err := c.get(ctx, sess, idPath("/api/tournaments/%d", id), nil, &res)

	return res, err
}

func (c *Client) CreateTournament(ctx context.Context, sess *session.Session, req TournamentRequest) (Created, error) {
	var res Created
	err := c.post(ctx, sess, "/api/tournaments", req, &res)

	return res, err
}

func (c *Client) OrganizerTournaments(ctx context.Context, sess *session.Session) ([]Tournament, error) {
	var res []Tournament
	err := c.get(ctx, sess, "/api/organizer/tournaments", nil, &res)

	return res, err
}

func (c *Client) RegisterTeam(ctx context.Context, sess *session.Session, tournamentID int64, req RegisterTeamRequest) (Message, error) {
	var res Message
	err := c.post(ctx, sess, idPath("/api/tournaments/%d/register", tournamentID), req, &res)

	return res, err
}

func (c *Client) MyRegistrations(ctx context.Context, sess *session.Session) ([]MyRegistration, error) {
	var res []MyRegistration
	err := c.get(ctx, sess, "/api/tournaments/my-registrations", nil, &res)

	return res, err
}

func (c *Client) UpdateRegistration(ctx context.Context, sess *session.Session, id int64, req RegistrationUpdate) (Message, error) {
	var res Message
	err := c.put(ctx, sess, idPath("/api/tournaments/registrations/%d", id), req, &res)

	return res, err
}

func (c *Client) PostAnnouncement(ctx context.Context, sess *session.Session, tournamentID int64, req AnnouncementRequest) (Message, error) {
	var res Message
	err := c.post(ctx, sess, idPath("/api/tournaments/%d/announcements", tournamentID), req, &res)

	return res, err
}

func (c *Client) ScheduleMatch(ctx context.Context, sess *session.Session, tournamentID int64, req ScheduleMatchRequest) (Message, error) {
	var res Message
	err := c.post(ctx, sess, idPath("/api/tournaments/%d/matches", tournamentID), req, &res)

	return res, err
}

func (c *Client) UpdateScore(ctx context.Context, sess *session.Session, matchID int64, req ScoreUpdate) (Message, error) {
	var res Message
	err := c.put(ctx, sess, idPath("/api/tournaments/matches/%d/score", matchID), req, &res)

	return res, err
}
