package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/savioruz/turfics/config"
	"github.com/savioruz/turfics/internal/domains/matchfinder/dto"
	"github.com/savioruz/turfics/pkg/constant"
	"github.com/savioruz/turfics/pkg/failure"
	"github.com/savioruz/turfics/pkg/helper"
	"github.com/savioruz/turfics/pkg/logger"
	"github.com/savioruz/turfics/pkg/redis"
	"github.com/savioruz/turfics/pkg/session"
	"github.com/savioruz/turfics/pkg/turfapi"
)

//go:generate go run go.uber.org/mock/mockgen -source=service.go -destination=../mock/service_mock.go -package=mock

type MatchFinderService interface {
	List(ctx context.Context, sess *session.Session, req dto.ListRequest) ([]turfapi.OpenMatch, error)
	Mine(ctx context.Context, sess *session.Session) (dto.MyMatchesResponse, error)
	Join(ctx context.Context, sess *session.Session, matchID int64) (dto.MessageResponse, error)
	Act(ctx context.Context, sess *session.Session, requestID int64, req dto.JoinActionRequest) (dto.MessageResponse, error)
	Pay(ctx context.Context, sess *session.Session, requestID int64) (dto.MessageResponse, error)
	Teams(ctx context.Context, sess *session.Session, req dto.TeamsRequest) ([]turfapi.Team, error)
	CreateTeam(ctx context.Context, sess *session.Session, req dto.CreateTeamRequest) (dto.CreatedResponse, error)
}

type matchFinderService struct {
	api    turfapi.MatchAPI
	cache  redis.IRedisCache
	cfg    *config.Config
	logger logger.Interface
}

func New(api turfapi.MatchAPI, c redis.IRedisCache, cfg *config.Config, l logger.Interface) MatchFinderService {
	return &matchFinderService{
		api:    api,
		cache:  c,
		cfg:    cfg,
		logger: l,
	}
}

const (
	cacheMatchesKey = "matches"
	cacheTeamsKey   = "teams"

	identifier = "service - matchfinder - %s"
)

func normalize(filter string) string {
	if strings.EqualFold(filter, "all") {
		return ""
	}

	return filter
}

func (s *matchFinderService) List(ctx context.Context, sess *session.Session, req dto.ListRequest) (res []turfapi.OpenMatch, err error) {
	sport := normalize(req.Sport)
	key := helper.BuildCacheKey(cacheMatchesKey, helper.GenerateUniqueKey(map[string]string{"sport": strings.ToLower(sport)}))

	if err = s.cache.Get(ctx, key, &res); err == nil {
		return res, nil
	}

	res, err = s.api.ListMatches(ctx, sess, sport)
	if err != nil {
		s.logger.Error(identifier, "list: "+err.Error())

		return nil, err
	}

	go func() {
		_ = s.cache.Save(context.WithoutCancel(ctx), key, res, s.cfg.Cache.Duration)
	}()

	return res, nil
}

func (s *matchFinderService) Mine(ctx context.Context, sess *session.Session) (res dto.MyMatchesResponse, err error) {
	mine, err := s.api.MyMatches(ctx, sess)
	if err != nil {
		s.logger.Error(identifier, "my matches: "+err.Error())

		return res, err
	}

	res.Hosted = mine.Hosted
	res.Joined = mine.Joined

	if res.Hosted == nil {
		res.Hosted = []turfapi.OpenMatch{}
	}

	if res.Joined == nil {
		res.Joined = []turfapi.OpenMatch{}
	}

	for _, m := range res.Hosted {
		for _, r := range m.Requests {
			if r.Status == constant.RegistrationPending {
				res.PendingRequests++
			}
		}
	}

	return res, nil
}

func (s *matchFinderService) invalidate(ctx context.Context, name string) {
	go func() {
		if err := s.cache.Clear(context.WithoutCancel(ctx), helper.BuildCacheKey(name)); err != nil {
			s.logger.Error(identifier, "clear "+name+" cache: "+err.Error())
		}
	}()
}

func (s *matchFinderService) Join(ctx context.Context, sess *session.Session, matchID int64) (res dto.MessageResponse, err error) {
	msg, err := s.api.JoinMatch(ctx, sess, matchID)
	if err != nil {
		s.logger.Error(identifier, fmt.Sprintf("join %d: %s", matchID, err.Error()))

		return res, err
	}

	s.invalidate(ctx, cacheMatchesKey)

	return dto.MessageResponse{Message: msg.Message}, nil
}

// Act approves or rejects a join request on a match the caller hosts.
func (s *matchFinderService) Act(ctx context.Context, sess *session.Session, requestID int64, req dto.JoinActionRequest) (res dto.MessageResponse, err error) {
	action := strings.ToLower(req.Action)
	if action != constant.JoinActionApprove && action != constant.JoinActionReject {
		return res, failure.BadRequestFromString("action must be approve or reject")
	}

	msg, err := s.api.ActOnJoinRequest(ctx, sess, requestID, action)
	if err != nil {
		s.logger.Error(identifier, fmt.Sprintf("%s request %d: %s", action, requestID, err.Error()))

		return res, err
	}

	if action == constant.JoinActionApprove {
		s.invalidate(ctx, cacheMatchesKey)
	}

	return dto.MessageResponse{Message: msg.Message}, nil
}

func (s *matchFinderService) Pay(ctx context.Context, sess *session.Session, requestID int64) (res dto.MessageResponse, err error) {
	msg, err := s.api.PayJoinRequest(ctx, sess, requestID)
	if err != nil {
		s.logger.Error(identifier, fmt.Sprintf("pay request %d: %s", requestID, err.Error()))

		return res, err
	}

	return dto.MessageResponse{Message: msg.Message}, nil
}

func (s *matchFinderService) Teams(ctx context.Context, sess *session.Session, req dto.TeamsRequest) (res []turfapi.Team, err error) {
	skill := normalize(req.Skill)
	key := helper.BuildCacheKey(cacheTeamsKey, helper.GenerateUniqueKey(map[string]string{"skill": skill}))

	if err = s.cache.Get(ctx, key, &res); err == nil {
		return res, nil
	}

	res, err = s.api.ListTeams(ctx, sess, skill)
	if err != nil {
		s.logger.Error(identifier, "teams: "+err.Error())

		return nil, err
	}

	go func() {
		_ = s.cache.Save(context.WithoutCancel(ctx), key, res, s.cfg.Cache.Duration)
	}()

	return res, nil
}

func (s *matchFinderService) CreateTeam(ctx context.Context, sess *session.Session, req dto.CreateTeamRequest) (res dto.CreatedResponse, err error) {
	created, err := s.api.CreateTeam(ctx, sess, turfapi.TeamRequest{
		Name:          strings.TrimSpace(req.Name),
		Description:   req.Description,
		SkillRequired: req.SkillRequired,
	})
	if err != nil {
		s.logger.Error(identifier, "create team: "+err.Error())

		return res, err
	}

	s.invalidate(ctx, cacheTeamsKey)

	id := created.TeamID
	if id == 0 {
		id = created.ID
	}

	return dto.CreatedResponse{ID: id, Message: created.Message}, nil
}
