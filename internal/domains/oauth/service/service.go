package service

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/savioruz/turfics/config"
	authService "github.com/savioruz/turfics/internal/domains/auth/service"
	"github.com/savioruz/turfics/internal/domains/oauth/dto"
	"github.com/savioruz/turfics/pkg/failure"
	"github.com/savioruz/turfics/pkg/helper"
	"github.com/savioruz/turfics/pkg/logger"
	"github.com/savioruz/turfics/pkg/oauth"
	"github.com/savioruz/turfics/pkg/redis"
	"github.com/savioruz/turfics/pkg/turfapi"
)


type OAuthService interface {
	GetGoogleAuthURL(ctx context.Context) (dto.URLResponse, error)
	HandleGoogleCallback(ctx context.Context, code, state string) (dto.CallbackResponse, error)
}

type oauthService struct {
	api            turfapi.AuthAPI
	googleProvider oauth.GoogleProviderIface
	cache          redis.IRedisCache
	cfg            *config.Config
	logger         logger.Interface
}

func New(api turfapi.AuthAPI, googleProvider oauth.GoogleProviderIface, c redis.IRedisCache, cfg *config.Config, l logger.Interface) OAuthService {
	return &oauthService{
		api:            api,
		googleProvider: googleProvider,
		cache:          c,
		cfg:            cfg,
		logger:         l,
	}
}

const (
	cacheStateKey = "oauth:state"
	stateTTL      = 600

	providerGoogle = "google"

	identifier = "service - oauth - %s"
)

var ErrInvalidState = errors.New("oauth: invalid or expired state")

func (s *oauthService) GetGoogleAuthURL(ctx context.Context) (res dto.URLResponse, err error) {
	state := helper.GenerateStateToken()

	authURL := s.googleProvider.GetAuthURL(state)
	if authURL == "" {
		s.logger.Error(identifier, "failed to get google auth url")

		return res, failure.InternalError(errors.New("failed to get google auth url")) //nolint:err113
	}

	if err = s.cache.Save(ctx, helper.BuildCacheKey(cacheStateKey, state), providerGoogle, stateTTL); err != nil {
		s.logger.Error(identifier, "save state: "+err.Error())

		return res, failure.InternalError(err)
	}

	return dto.URLResponse{URL: authURL, State: state}, nil
}

func (s *oauthService) HandleGoogleCallback(ctx context.Context, code, state string) (res dto.CallbackResponse, err error) {
	key := helper.BuildCacheKey(cacheStateKey, state)

	var provider string
	if err = s.cache.Get(ctx, key, &provider); err != nil || provider != providerGoogle {
		s.logger.Warn(identifier, "unknown oauth state")

		return res, failure.BadRequest(ErrInvalidState)
	}

	// A state is good for one callback only.
	if err = s.cache.Delete(ctx, key); err != nil {
		s.logger.Error(identifier, "delete state: "+err.Error())
	}

	token, err := s.googleProvider.Exchange(ctx, code)
	if err != nil {
		s.logger.Error(identifier, "failed to exchange code: "+err.Error())

		return res, failure.Unauthorized("google login failed")
	}

	info, err := s.googleProvider.GetUserInfo(token)
	if err != nil {
		s.logger.Error(identifier, "failed to get user info: "+err.Error())

		return res, failure.Upstream(http.StatusBadGateway, "google userinfo unavailable")
	}

	if !info.VerifiedEmail {
		return res, failure.Forbidden("google email is not verified")
	}

	login, err := s.api.ExchangeOAuth(ctx, turfapi.OAuthExchangeRequest{
		Provider:    providerGoogle,
		AccessToken: token.AccessToken,
		Email:       info.Email,
		Name:        info.Name,
		ProviderID:  info.ID,
	})
	if err != nil {
		s.logger.Error(identifier, "turfics exchange failed: "+err.Error())

		return res, err
	}

	res.Login, err = authService.Begin(login)
	if err != nil {
		s.logger.Error(identifier, "begin session: "+err.Error())

		return res, err
	}

	res.FrontendURL = s.frontendURL(res.Login.AccessToken, res.Login.Role)

	return res, nil
}

func (s *oauthService) frontendURL(token, role string) string {
	q := url.Values{}
	q.Set("token", token)
	q.Set("role", role)

	return s.cfg.OAuth.Google.FrontendURL + "?" + q.Encode()
}
