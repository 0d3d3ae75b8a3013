package service

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/savioruz/turfics/config"
	"github.com/savioruz/turfics/internal/domains/users/dto"
	"github.com/savioruz/turfics/pkg/failure"
	"github.com/savioruz/turfics/pkg/helper"
	"github.com/savioruz/turfics/pkg/logger"
	"github.com/savioruz/turfics/pkg/redis"
	"github.com/savioruz/turfics/pkg/session"
	"github.com/savioruz/turfics/pkg/turfapi"
)

//go:generate go run go.uber.org/mock/mockgen -source=service.go -destination=../mock/service_mock.go -package=mock

type UserService interface {
	Search(ctx context.Context, sess *session.Session, query string) (dto.SearchResponse, error)
	NewFeed(ctx context.Context, sess *session.Session, emit func(FeedEvent)) *Feed
}

type userService struct {
	api    turfapi.UserAPI
	cache  redis.IRedisCache
	cfg    *config.Config
	logger logger.Interface
}

func New(api turfapi.UserAPI, c redis.IRedisCache, cfg *config.Config, l logger.Interface) UserService {
	return &userService{
		api:    api,
		cache:  c,
		cfg:    cfg,
		logger: l,
	}
}

const (
	cacheUsersKey = "users"

	identifier = "service - user - %s"
)

// Search looks up users by username. Queries shorter than the configured
// minimum return no users without calling the API. Lookup failures other
// than an expired session are logged and answered with an empty list.
func (s *userService) Search(ctx context.Context, sess *session.Session, query string) (dto.SearchResponse, error) {
	query = strings.TrimSpace(query)
	res := dto.SearchResponse{Query: query, Users: []turfapi.User{}}

	if utf8.RuneCountInString(query) < s.cfg.Search.MinQuery {
		return res, nil
	}

	key := helper.BuildCacheKey(cacheUsersKey, strings.ToLower(query))

	var users []turfapi.User
	if err := s.cache.Get(ctx, key, &users); err == nil {
		res.Users = users

		return res, nil
	}

	users, err := s.api.SearchUsers(ctx, sess, query)
	if err != nil {
		if errors.Is(err, failure.ErrSessionExpired) {
			return res, err
		}

		s.logger.Warn(identifier, "search "+query+": "+err.Error())

		return res, nil
	}

	if users != nil {
		res.Users = users
	}

	go func() {
		_ = s.cache.Save(context.WithoutCancel(ctx), key, res.Users, s.cfg.Cache.Duration)
	}()

	return res, nil
}
