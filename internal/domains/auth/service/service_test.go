package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/savioruz/turfics/internal/domains/auth/dto"
	"github.com/savioruz/turfics/pkg/constant"
	"github.com/savioruz/turfics/pkg/failure"
	log "github.com/savioruz/turfics/pkg/logger/mock"
	"github.com/savioruz/turfics/pkg/session"
	"github.com/savioruz/turfics/pkg/turfapi"
	api "github.com/savioruz/turfics/pkg/turfapi/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	req := dto.LoginRequest{Username: "ravi", Password: "secret"}

	t.Run("success: player lands on home", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockAPI := api.NewMockAuthAPI(ctrl)
		mockLogger := log.NewMockInterface(ctrl)
		svc := New(mockAPI, mockLogger)

		mockAPI.EXPECT().Login(ctx, turfapi.LoginRequest{Username: "ravi", Password: "secret"}).
			Return(turfapi.LoginResponse{AccessToken: "tok", Role: constant.RoleUser, UserID: 7}, nil)

		res, err := svc.Login(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, "tok", res.AccessToken)
		assert.Equal(t, "7", res.UserID)
		assert.Equal(t, "ravi", res.Username)
		assert.Equal(t, constant.HomePath, res.Redirect)
	})

	t.Run("success: owner lands on dashboard", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockAPI := api.NewMockAuthAPI(ctrl)
		mockLogger := log.NewMockInterface(ctrl)
		svc := New(mockAPI, mockLogger)

		mockAPI.EXPECT().Login(ctx, gomock.Any()).
			Return(turfapi.LoginResponse{AccessToken: "tok", Role: constant.RoleOwner, UserID: 1, Username: "owner1"}, nil)

		res, err := svc.Login(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, "owner1", res.Username)
		assert.Equal(t, constant.OwnerHomePath, res.Redirect)
	})

	t.Run("error: bad credentials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockAPI := api.NewMockAuthAPI(ctrl)
		mockLogger := log.NewMockInterface(ctrl)
		svc := New(mockAPI, mockLogger)

		mockAPI.EXPECT().Login(ctx, gomock.Any()).
			Return(turfapi.LoginResponse{}, failure.Upstream(http.StatusUnauthorized, "Invalid credentials"))
		mockLogger.EXPECT().Error(gomock.Any(), gomock.Any())

		_, err := svc.Login(ctx, req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
	})

	t.Run("error: missing token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockAPI := api.NewMockAuthAPI(ctrl)
		mockLogger := log.NewMockInterface(ctrl)
		svc := New(mockAPI, mockLogger)

		mockAPI.EXPECT().Login(ctx, gomock.Any()).Return(turfapi.LoginResponse{Role: constant.RoleUser}, nil)
		mockLogger.EXPECT().Error(gomock.Any(), gomock.Any())

		_, err := svc.Login(ctx, req)

		assert.Equal(t, http.StatusBadGateway, failure.GetCode(err))
	})
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("success: role defaults to user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockAPI := api.NewMockAuthAPI(ctrl)
		mockLogger := log.NewMockInterface(ctrl)
		svc := New(mockAPI, mockLogger)

		mockAPI.EXPECT().Register(ctx, turfapi.RegisterRequest{
			Username: "ravi",
			Email:    "ravi@mail.com",
			Password: "secret1",
			Role:     constant.RoleUser,
		}).Return(turfapi.Message{Message: "User created successfully"}, nil)

		res, err := svc.Register(ctx, dto.RegisterRequest{Username: "ravi", Email: "ravi@mail.com", Password: "secret1"})

		require.NoError(t, err)
		assert.Equal(t, "User created successfully", res.Message)
	})

	t.Run("error: username taken", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockAPI := api.NewMockAuthAPI(ctrl)
		mockLogger := log.NewMockInterface(ctrl)
		svc := New(mockAPI, mockLogger)

		mockAPI.EXPECT().Register(ctx, gomock.Any()).
			Return(turfapi.Message{}, failure.Upstream(http.StatusConflict, "Username already exists"))
		mockLogger.EXPECT().Error(gomock.Any(), gomock.Any())

		_, err := svc.Register(ctx, dto.RegisterRequest{Username: "ravi", Role: constant.RoleOwner})

		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})
}

func TestAuthService_OTP(t *testing.T) {
	ctx := context.Background()

	t.Run("success: send then verify", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockAPI := api.NewMockAuthAPI(ctrl)
		mockLogger := log.NewMockInterface(ctrl)
		svc := New(mockAPI, mockLogger)

		mockAPI.EXPECT().SendOTP(ctx, turfapi.OTPSendRequest{PhoneNumber: "+919876543210"}).
			Return(turfapi.Message{Message: "OTP sent"}, nil)
		mockAPI.EXPECT().VerifyOTP(ctx, turfapi.OTPVerifyRequest{PhoneNumber: "+919876543210", OTP: "123456"}).
			Return(turfapi.LoginResponse{AccessToken: "tok", Role: constant.RoleUser, UserID: 3}, nil)

		sent, err := svc.SendOTP(ctx, dto.OTPSendRequest{PhoneNumber: "+919876543210"})
		require.NoError(t, err)
		assert.Equal(t, "OTP sent", sent.Message)

		res, err := svc.VerifyOTP(ctx, dto.OTPVerifyRequest{PhoneNumber: "+919876543210", OTP: "123456"})
		require.NoError(t, err)
		assert.Equal(t, "3", res.UserID)
	})

	t.Run("error: wrong otp", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockAPI := api.NewMockAuthAPI(ctrl)
		mockLogger := log.NewMockInterface(ctrl)
		svc := New(mockAPI, mockLogger)

		mockAPI.EXPECT().VerifyOTP(ctx, gomock.Any()).
			Return(turfapi.LoginResponse{}, failure.Upstream(http.StatusBadRequest, "Invalid OTP"))
		mockLogger.EXPECT().Error(gomock.Any(), gomock.Any())

		_, err := svc.VerifyOTP(ctx, dto.OTPVerifyRequest{PhoneNumber: "+919876543210", OTP: "000000"})

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestAuthService_MeAndLogout(t *testing.T) {
	ctx := context.Background()

	t.Run("success: me then logout", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockLogger := log.NewMockInterface(ctrl)
		svc := New(api.NewMockAuthAPI(ctrl), mockLogger)

		sess := session.New()
		sess.Begin("tok", session.Identity{UserID: "9", Username: "ravi", Role: constant.RoleUser})

		me, err := svc.Me(ctx, sess)
		require.NoError(t, err)
		assert.True(t, me.Active)
		assert.Equal(t, "9", me.UserID)
		assert.Nil(t, me.ExpiresAt)

		mockLogger.EXPECT().Info(gomock.Any(), gomock.Any())

		_, err = svc.Logout(ctx, sess)
		require.NoError(t, err)
		assert.False(t, sess.Active())
		assert.Empty(t, sess.Token())
	})

	t.Run("error: invalidated session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := New(api.NewMockAuthAPI(ctrl), log.NewMockInterface(ctrl))

		sess := session.New()
		sess.Begin("tok", session.Identity{UserID: "9"})
		sess.Invalidate("Token has expired")

		_, err := svc.Me(ctx, sess)

		assert.ErrorIs(t, err, failure.ErrSessionExpired)
	})
}
