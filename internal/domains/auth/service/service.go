package service

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/savioruz/turfics/internal/domains/auth/dto"
	"github.com/savioruz/turfics/pkg/constant"
	"github.com/savioruz/turfics/pkg/failure"
	"github.com/savioruz/turfics/pkg/jwt"
	"github.com/savioruz/turfics/pkg/logger"
	"github.com/savioruz/turfics/pkg/session"
	"github.com/savioruz/turfics/pkg/turfapi"
)

//go:generate go run go.uber.org/mock/mockgen -source=service.go -destination=../mock/service_mock.go -package=mock

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	Register(ctx context.Context, req dto.RegisterRequest) (dto.MessageResponse, error)
	SendOTP(ctx context.Context, req dto.OTPSendRequest) (dto.MessageResponse, error)
	VerifyOTP(ctx context.Context, req dto.OTPVerifyRequest) (dto.LoginResponse, error)
	Me(ctx context.Context, sess *session.Session) (dto.SessionResponse, error)
	Logout(ctx context.Context, sess *session.Session) (dto.MessageResponse, error)
}

type authService struct {
	api    turfapi.AuthAPI
	logger logger.Interface
}

func New(api turfapi.AuthAPI, l logger.Interface) AuthService {
	return &authService{
		api:    api,
		logger: l,
	}
}

const (
	identifier = "service - auth - %s"
)

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	login, err := s.api.Login(ctx, turfapi.LoginRequest{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		s.logger.Error(identifier, "login failed: "+err.Error())

		return res, err
	}

	if login.Username == "" {
		login.Username = req.Username
	}

	return s.begin(login)
}

func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (res dto.MessageResponse, err error) {
	role := req.Role
	if role == "" {
		role = constant.RoleUser
	}

	msg, err := s.api.Register(ctx, turfapi.RegisterRequest{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Role:     role,
	})
	if err != nil {
		s.logger.Error(identifier, "register failed: "+err.Error())

		return res, err
	}

	return dto.MessageResponse{Message: msg.Message}, nil
}

func (s *authService) SendOTP(ctx context.Context, req dto.OTPSendRequest) (res dto.MessageResponse, err error) {
	msg, err := s.api.SendOTP(ctx, turfapi.OTPSendRequest{PhoneNumber: req.PhoneNumber})
	if err != nil {
		s.logger.Error(identifier, "send otp failed: "+err.Error())

		return res, err
	}

	return dto.MessageResponse{Message: msg.Message}, nil
}

func (s *authService) VerifyOTP(ctx context.Context, req dto.OTPVerifyRequest) (res dto.LoginResponse, err error) {
	login, err := s.api.VerifyOTP(ctx, turfapi.OTPVerifyRequest{
		PhoneNumber: req.PhoneNumber,
		OTP:         req.OTP,
	})
	if err != nil {
		s.logger.Error(identifier, "verify otp failed: "+err.Error())

		return res, err
	}

	return s.begin(login)
}

func (s *authService) Me(_ context.Context, sess *session.Session) (res dto.SessionResponse, err error) {
	if sess == nil || !sess.Active() {
		return res, failure.SessionExpired()
	}

	id := sess.Identity()

	res = dto.SessionResponse{
		UserID:   id.UserID,
		Username: id.Username,
		Role:     id.Role,
		Active:   true,
	}

	if !id.ExpiresAt.IsZero() {
		exp := id.ExpiresAt
		res.ExpiresAt = &exp
	}

	return res, nil
}

// Logout ends the session locally. The turfics API keeps no server side
// session, so the token simply stops being sent.
func (s *authService) Logout(_ context.Context, sess *session.Session) (dto.MessageResponse, error) {
	if sess != nil {
		s.logger.Info(identifier, "logout user: "+sess.Identity().UserID)
		sess.End()
	}

	return dto.MessageResponse{Message: "logged out"}, nil
}

func (s *authService) begin(login turfapi.LoginResponse) (dto.LoginResponse, error) {
	res, err := Begin(login)
	if err != nil {
		s.logger.Error(identifier, "begin session: "+err.Error())

		return res, err
	}

	return res, nil
}

// Begin opens a session from a turfics login answer and describes it for the client.
func Begin(login turfapi.LoginResponse) (res dto.LoginResponse, err error) {
	if login.AccessToken == "" {
		return res, failure.Upstream(http.StatusBadGateway, "turfics api returned no token")
	}

	id := session.Identity{
		UserID:   strconv.FormatInt(login.UserID, 10),
		Username: login.Username,
		Role:     login.Role,
	}

	// Expiry is read from the token itself when it can be parsed here.
	if claims, cerr := jwt.ValidateToken(login.AccessToken); cerr == nil && claims.ExpiresAt != nil {
		id.ExpiresAt = claims.ExpiresAt.Time
	}

	sess := session.New()
	sess.Begin(login.AccessToken, id)

	res = dto.LoginResponse{
		AccessToken: sess.Token(),
		UserID:      id.UserID,
		Username:    id.Username,
		Role:        id.Role,
		Redirect:    homeFor(id.Role),
	}

	if !id.ExpiresAt.IsZero() {
		exp := id.ExpiresAt.In(time.UTC)
		res.ExpiresAt = &exp
	}

	return res, nil
}

func homeFor(role string) string {
	if role == constant.RoleOwner || role == constant.RoleAdmin {
		return constant.OwnerHomePath
	}

	return constant.HomePath
}
