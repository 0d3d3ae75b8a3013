package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/savioruz/turfics/config"
	"github.com/savioruz/turfics/internal/domains/tournaments/dto"
	"github.com/savioruz/turfics/pkg/constant"
	"github.com/savioruz/turfics/pkg/failure"
	"github.com/savioruz/turfics/pkg/helper"
	"github.com/savioruz/turfics/pkg/logger"
	"github.com/savioruz/turfics/pkg/optimistic"
	"github.com/savioruz/turfics/pkg/redis"
	"github.com/savioruz/turfics/pkg/session"
	"github.com/savioruz/turfics/pkg/turfapi"
)

//go:generate go run go.uber.org/mock/mockgen -source=service.go -destination=../mock/service_mock.go -package=mock

type TournamentService interface {
	List(ctx context.Context, sess *session.Session, req dto.ListRequest) ([]turfapi.Tournament, error)
	Get(ctx context.Context, sess *session.Session, id int64) (turfapi.Tournament, error)
	Create(ctx context.Context, sess *session.Session, req dto.CreateRequest) (dto.CreatedResponse, error)
	Register(ctx context.Context, sess *session.Session, id int64, req dto.RegisterRequest) (dto.MessageResponse, error)
	RegisterManual(ctx context.Context, sess *session.Session, id int64, req dto.ManualRegisterRequest) (dto.MessageResponse, error)
	RegisterBulk(ctx context.Context, sess *session.Session, id int64, csv io.Reader) (dto.BulkResponse, error)
	MyRegistrations(ctx context.Context, sess *session.Session) ([]turfapi.MyRegistration, error)
	Organized(ctx context.Context, sess *session.Session) ([]turfapi.Tournament, error)
	UpdateRegistration(ctx context.Context, sess *session.Session, id, registrationID int64, req dto.RegistrationUpdateRequest) (turfapi.Tournament, error)
	Announce(ctx context.Context, sess *session.Session, id int64, req dto.AnnouncementRequest) (turfapi.Tournament, error)
	ScheduleMatch(ctx context.Context, sess *session.Session, id int64, req dto.ScheduleMatchRequest) (dto.MessageResponse, error)
	UpdateScore(ctx context.Context, sess *session.Session, id, matchID int64, req dto.ScoreRequest) (turfapi.Tournament, error)
}

type tournamentService struct {
	api    turfapi.TournamentAPI
	cache  redis.IRedisCache
	cfg    *config.Config
	logger logger.Interface

	// background runs optimistic reconciles; nil means a new goroutine.
	background func(func())
}

func New(api turfapi.TournamentAPI, c redis.IRedisCache, cfg *config.Config, l logger.Interface) TournamentService {
	return &tournamentService{
		api:    api,
		cache:  c,
		cfg:    cfg,
		logger: l,
	}
}

const (
	cacheListKey = "tournaments"
	cacheViewKey = "tournament"

	announcementTimeFormat = "2006-01-02 15:04"

	identifier = "service - tournament - %s"
)

func viewKey(id int64) string {
	return helper.BuildCacheKey(cacheViewKey, strconv.FormatInt(id, 10))
}

func (s *tournamentService) List(ctx context.Context, sess *session.Session, req dto.ListRequest) (res []turfapi.Tournament, err error) {
	filter := req.Filter
	if filter == "" {
		filter = "all"
	}

	sport := req.Sport
	if strings.EqualFold(sport, "all") {
		sport = ""
	}

	key := helper.BuildCacheKey(cacheListKey, helper.GenerateUniqueKey(map[string]string{
		"filter": filter,
		"sport":  strings.ToLower(sport),
	}))

	if err = s.cache.Get(ctx, key, &res); err == nil {
		return res, nil
	}

	res, err = s.api.ListTournaments(ctx, sess, filter, sport)
	if err != nil {
		s.logger.Error(identifier, "list: "+err.Error())

		return nil, err
	}

	go func() {
		_ = s.cache.Save(context.WithoutCancel(ctx), key, res, s.cfg.Cache.Duration)
	}()

	return res, nil
}

// load returns the cached view of a tournament, fetching it on a miss without saving.
func (s *tournamentService) load(ctx context.Context, sess *session.Session, id int64) (t turfapi.Tournament, cached bool, err error) {
	if err = s.cache.Get(ctx, viewKey(id), &t); err == nil {
		return t, true, nil
	}

	t, err = s.api.GetTournament(ctx, sess, id)
	if err != nil {
		return t, false, err
	}

	return t, false, nil
}

func (s *tournamentService) Get(ctx context.Context, sess *session.Session, id int64) (turfapi.Tournament, error) {
	t, cached, err := s.load(ctx, sess, id)
	if err != nil {
		s.logger.Error(identifier, fmt.Sprintf("get %d: %s", id, err.Error()))

		return t, err
	}

	if !cached {
		go func() {
			_ = s.cache.Save(context.WithoutCancel(ctx), viewKey(id), t, s.cfg.Cache.Duration)
		}()
	}

	return t, nil
}

func (s *tournamentService) Create(ctx context.Context, sess *session.Session, req dto.CreateRequest) (res dto.CreatedResponse, err error) {
	if req.EndDate != "" && req.EndDate < req.StartDate {
		return res, failure.BadRequestFromString("end date is before start date")
	}

	created, err := s.api.CreateTournament(ctx, sess, turfapi.TournamentRequest{
		Name:        req.Name,
		Sport:       req.Sport,
		Description: req.Description,
		Rules:       req.Rules,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Location:    req.Location,
		EntryFee:    req.EntryFee,
		PrizePool:   req.PrizePool,
		MaxTeams:    req.MaxTeams,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		s.logger.Error(identifier, "create: "+err.Error())

		return res, err
	}

	go func() {
		if err := s.cache.Clear(context.WithoutCancel(ctx), helper.BuildCacheKey(cacheListKey)); err != nil {
			s.logger.Error(identifier, "create - clear list cache: "+err.Error())
		}
	}()

	return dto.CreatedResponse{ID: created.TournamentID, Message: created.Message}, nil
}

// forget drops the cached view so the next read sees the server state.
func (s *tournamentService) forget(ctx context.Context, id int64) {
	go func() {
		_ = s.cache.Delete(context.WithoutCancel(ctx), viewKey(id))
	}()
}

func (s *tournamentService) register(ctx context.Context, sess *session.Session, id int64, req turfapi.RegisterTeamRequest) (dto.MessageResponse, error) {
	msg, err := s.api.RegisterTeam(ctx, sess, id, req)
	if err != nil {
		return dto.MessageResponse{}, err
	}

	return dto.MessageResponse{Message: msg.Message}, nil
}

func (s *tournamentService) Register(ctx context.Context, sess *session.Session, id int64, req dto.RegisterRequest) (dto.MessageResponse, error) {
	captain := req.CaptainName
	if captain == "" && sess != nil {
		captain = sess.Identity().Username
	}

	res, err := s.register(ctx, sess, id, turfapi.RegisterTeamRequest{
		TeamName:      req.TeamName,
		CaptainName:   captain,
		ContactNumber: req.ContactNumber,
	})
	if err != nil {
		s.logger.Error(identifier, fmt.Sprintf("register on %d: %s", id, err.Error()))

		return res, err
	}

	s.forget(ctx, id)

	return res, nil
}

func (s *tournamentService) RegisterManual(ctx context.Context, sess *session.Session, id int64, req dto.ManualRegisterRequest) (dto.MessageResponse, error) {
	res, err := s.register(ctx, sess, id, turfapi.RegisterTeamRequest{
		TeamName:      req.TeamName,
		CaptainName:   req.CaptainName,
		ContactNumber: req.ContactNumber,
	})
	if err != nil {
		s.logger.Error(identifier, fmt.Sprintf("manual register on %d: %s", id, err.Error()))

		return res, err
	}

	s.forget(ctx, id)

	return res, nil
}

func (s *tournamentService) MyRegistrations(ctx context.Context, sess *session.Session) ([]turfapi.MyRegistration, error) {
	res, err := s.api.MyRegistrations(ctx, sess)
	if err != nil {
		s.logger.Error(identifier, "my registrations: "+err.Error())

		return nil, err
	}

	return res, nil
}

func (s *tournamentService) Organized(ctx context.Context, sess *session.Session) ([]turfapi.Tournament, error) {
	res, err := s.api.OrganizerTournaments(ctx, sess)
	if err != nil {
		s.logger.Error(identifier, "organizer tournaments: "+err.Error())

		return nil, err
	}

	return res, nil
}

// change applies apply to the cached view at once, runs remote and keeps the
// view on success (refetching it in the background) or restores it on failure.
func (s *tournamentService) change(
	ctx context.Context,
	sess *session.Session,
	id int64,
	apply func(turfapi.Tournament) turfapi.Tournament,
	remote func(ctx context.Context) error,
) (turfapi.Tournament, error) {
	return optimistic.Run[turfapi.Tournament](ctx, &viewStore{svc: s, sess: sess, id: id}, optimistic.Update[turfapi.Tournament]{
		Apply:  apply,
		Remote: remote,
		Reconcile: func(ctx context.Context) (turfapi.Tournament, error) {
			return s.api.GetTournament(ctx, sess, id)
		},
		Go: s.background,
		OnError: func(err error) {
			s.logger.Warn(identifier, fmt.Sprintf("tournament %d view: %s", id, err.Error()))
		},
	})
}

func (s *tournamentService) UpdateRegistration(ctx context.Context, sess *session.Session, id, registrationID int64, req dto.RegistrationUpdateRequest) (turfapi.Tournament, error) {
	if req.Status == "" && req.PaymentStatus == "" {
		return turfapi.Tournament{}, failure.BadRequestFromString("nothing to update")
	}

	t, err := s.change(ctx, sess, id,
		func(cur turfapi.Tournament) turfapi.Tournament {
			regs := make([]turfapi.Registration, len(cur.Registrations))
			copy(regs, cur.Registrations)

			for i := range regs {
				if regs[i].ID != registrationID {
					continue
				}

				if req.Status != "" {
					regs[i].Status = req.Status
				}

				if req.PaymentStatus != "" {
					regs[i].PaymentStatus = req.PaymentStatus
				}
			}

			cur.Registrations = regs

			return cur
		},
		func(ctx context.Context) error {
			_, err := s.api.UpdateRegistration(ctx, sess, registrationID, turfapi.RegistrationUpdate{
				Status:        req.Status,
				PaymentStatus: req.PaymentStatus,
			})

			return err
		},
	)
	if err != nil {
		s.logger.Error(identifier, fmt.Sprintf("update registration %d: %s", registrationID, err.Error()))

		return t, err
	}

	return t, nil
}

func (s *tournamentService) Announce(ctx context.Context, sess *session.Session, id int64, req dto.AnnouncementRequest) (turfapi.Tournament, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return turfapi.Tournament{}, failure.BadRequestFromString("announcement is empty")
	}

	t, err := s.change(ctx, sess, id,
		func(cur turfapi.Tournament) turfapi.Tournament {
			list := make([]turfapi.Announcement, 0, len(cur.Announcements)+1)
			list = append(list, turfapi.Announcement{
				Content:   content,
				CreatedAt: helper.NowInAppTimezone().Format(announcementTimeFormat),
			})
			cur.Announcements = append(list, cur.Announcements...)

			return cur
		},
		func(ctx context.Context) error {
			_, err := s.api.PostAnnouncement(ctx, sess, id, turfapi.AnnouncementRequest{Content: content})

			return err
		},
	)
	if err != nil {
		s.logger.Error(identifier, fmt.Sprintf("announce on %d: %s", id, err.Error()))

		return t, err
	}

	return t, nil
}

func (s *tournamentService) ScheduleMatch(ctx context.Context, sess *session.Session, id int64, req dto.ScheduleMatchRequest) (res dto.MessageResponse, err error) {
	team1, team2 := strings.TrimSpace(req.Team1), strings.TrimSpace(req.Team2)
	if strings.EqualFold(team1, team2) {
		return res, failure.BadRequestFromString("a team cannot play against itself")
	}

	var at string

	if req.Time != "" {
		t, perr := helper.ParseInstant(req.Time)
		if perr != nil {
			return res, failure.BadRequestFromString("invalid match time " + req.Time)
		}

		at = helper.FormatInstant(t)
	}

	msg, err := s.api.ScheduleMatch(ctx, sess, id, turfapi.ScheduleMatchRequest{
		RoundName: req.RoundName,
		Team1:     team1,
		Team2:     team2,
		Time:      at,
	})
	if err != nil {
		s.logger.Error(identifier, fmt.Sprintf("schedule match on %d: %s", id, err.Error()))

		return res, err
	}

	s.forget(ctx, id)

	return dto.MessageResponse{Message: msg.Message}, nil
}

// UpdateScore records a result. A completed match needs a winner: ties are
// rejected and the higher score wins when no winner is named.
func (s *tournamentService) UpdateScore(ctx context.Context, sess *session.Session, id, matchID int64, req dto.ScoreRequest) (turfapi.Tournament, error) {
	view, _, err := s.load(ctx, sess, id)
	if err != nil {
		s.logger.Error(identifier, fmt.Sprintf("score - load %d: %s", id, err.Error()))

		return view, err
	}

	var match *turfapi.TourneyMatch

	for i := range view.Matches {
		if view.Matches[i].ID == matchID {
			match = &view.Matches[i]

			break
		}
	}

	if match == nil {
		return view, failure.NotFound("match")
	}

	winner, err := decideWinner(*match, req)
	if err != nil {
		return view, err
	}

	update := turfapi.ScoreUpdate{
		Score1: req.Score1,
		Score2: req.Score2,
		Status: req.Status,
		Winner: winner,
	}

	t, err := s.change(ctx, sess, id,
		func(cur turfapi.Tournament) turfapi.Tournament {
			matches := make([]turfapi.TourneyMatch, len(cur.Matches))
			copy(matches, cur.Matches)

			for i := range matches {
				if matches[i].ID != matchID {
					continue
				}

				s1, s2 := update.Score1, update.Score2
				matches[i].Score1, matches[i].Score2 = &s1, &s2

				if update.Status != "" {
					matches[i].Status = update.Status
				}

				if update.Winner != "" {
					matches[i].Winner = update.Winner
				}
			}

			cur.Matches = matches

			return cur
		},
		func(ctx context.Context) error {
			_, err := s.api.UpdateScore(ctx, sess, matchID, update)

			return err
		},
	)
	if err != nil {
		s.logger.Error(identifier, fmt.Sprintf("update score %d: %s", matchID, err.Error()))

		return t, err
	}

	return t, nil
}

var errTie = errors.New("a completed match cannot end in a tie")

func decideWinner(m turfapi.TourneyMatch, req dto.ScoreRequest) (string, error) {
	if req.Winner != "" && !strings.EqualFold(req.Winner, m.Team1) && !strings.EqualFold(req.Winner, m.Team2) {
		return "", failure.BadRequestFromString("winner must be " + m.Team1 + " or " + m.Team2)
	}

	if req.Status != constant.MatchStatusCompleted {
		return req.Winner, nil
	}

	switch {
	case req.Score1 == req.Score2:
		return "", failure.BadRequest(errTie)
	case req.Winner != "":
		return req.Winner, nil
	case req.Score1 > req.Score2:
		return m.Team1, nil
	default:
		return m.Team2, nil
	}
}

// viewStore keeps the optimistic copy of a tournament view in the cache.
type viewStore struct {
	svc  *tournamentService
	sess *session.Session
	id   int64
}

func (v *viewStore) Load(ctx context.Context) (turfapi.Tournament, error) {
	t, _, err := v.svc.load(ctx, v.sess, v.id)

	return t, err
}

func (v *viewStore) Store(ctx context.Context, t turfapi.Tournament) error {
	return v.svc.cache.Save(ctx, viewKey(v.id), t, v.svc.cfg.Cache.Duration)
}

var _ optimistic.Store[turfapi.Tournament] = (*viewStore)(nil)
