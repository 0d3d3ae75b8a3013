package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/savioruz/turfics/internal/delivery/http/middleware"
	"github.com/savioruz/turfics/internal/delivery/http/response"
	"github.com/savioruz/turfics/internal/domains/auth/dto"
	"github.com/savioruz/turfics/internal/domains/auth/service"
	"github.com/savioruz/turfics/pkg/failure"
	"github.com/savioruz/turfics/pkg/logger"
)

type Handler struct {
	service   service.AuthService
	logger    logger.Interface
	validator *validator.Validate
}

func New(s service.AuthService, l logger.Interface, v *validator.Validate) *Handler {
	return &Handler{
		service:   s,
		logger:    l,
		validator: v,
	}
}

func (h *Handler) RegisterRoutes(r fiber.Router) {
	auth := r.Group("/auth")

	auth.Post("/register", h.Register)
	auth.Post("/login", h.Login)
	auth.Post("/otp/send", h.SendOTP)
	auth.Post("/otp/verify", h.VerifyOTP)
	auth.Get("/me", middleware.Jwt(), h.Me)
	auth.Post("/logout", middleware.Jwt(), h.Logout)
}

// Register godoc
// @Summary Register new user
// @Description Register a player or turf owner account on turfics
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.RegisterRequest true "Register request"
// @Success 201 {object} response.Data[dto.MessageResponse]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /auth/register [post]
func (h *Handler) Register(ctx *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := ctx.BodyParser(&req); err != nil {
		h.logger.Error("http - auth - register - body parsing error: " + err.Error())

		return response.WithError(ctx, failure.BadRequest(err))
	}

	if err := h.validator.Struct(req); err != nil {
		h.logger.Error("http - auth - register - validate error: " + err.Error())

		return response.WithError(ctx, failure.BadRequest(err))
	}

	data, err := h.service.Register(ctx.UserContext(), req)
	if err != nil {
		h.logger.Error("http - auth - register - request_id: " + middleware.GetRequestID(ctx) + " - " + err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusCreated, data)
}

// Login godoc
// @Summary Login user
// @Description Login with username and password
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login request"
// @Success 200 {object} response.Data[dto.LoginResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /auth/login [post]
func (h *Handler) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		h.logger.Error("http - auth - login - body parsing error: " + err.Error())

		return response.WithError(ctx, failure.BadRequest(err))
	}

	if err := h.validator.Struct(req); err != nil {
		h.logger.Error("http - auth - login - validate error: " + err.Error())

		return response.WithError(ctx, failure.BadRequest(err))
	}

	data, err := h.service.Login(ctx.UserContext(), req)
	if err != nil {
		h.logger.Error("http - auth - login - request_id: " + middleware.GetRequestID(ctx) + " - " + err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, data)
}

// SendOTP godoc
// @Summary Send login OTP
// @Description Send a one time password to a phone number
// @Tags auth
// @Accept json
// @Produce json
// @Param otp body dto.OTPSendRequest true "OTP send request"
// @Success 200 {object} response.Data[dto.MessageResponse]
// @Failure 400 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /auth/otp/send [post]
func (h *Handler) SendOTP(ctx *fiber.Ctx) error {
	var req dto.OTPSendRequest
	if err := ctx.BodyParser(&req); err != nil {
		h.logger.Error("http - auth - otp send - body parsing error: " + err.Error())

		return response.WithError(ctx, failure.BadRequest(err))
	}

	if err := h.validator.Struct(req); err != nil {
		h.logger.Error("http - auth - otp send - validate error: " + err.Error())

		return response.WithError(ctx, failure.BadRequest(err))
	}

	data, err := h.service.SendOTP(ctx.UserContext(), req)
	if err != nil {
		h.logger.Error("http - auth - otp send - request_id: " + middleware.GetRequestID(ctx) + " - " + err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, data)
}

// VerifyOTP godoc
// @Summary Verify login OTP
// @Description Exchange a phone number and OTP for an access token
// @Tags auth
// @Accept json
// @Produce json
// @Param otp body dto.OTPVerifyRequest true "OTP verify request"
// @Success 200 {object} response.Data[dto.LoginResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Router /auth/otp/verify [post]
func (h *Handler) VerifyOTP(ctx *fiber.Ctx) error {
	var req dto.OTPVerifyRequest
	if err := ctx.BodyParser(&req); err != nil {
		h.logger.Error("http - auth - otp verify - body parsing error: " + err.Error())

		return response.WithError(ctx, failure.BadRequest(err))
	}

	if err := h.validator.Struct(req); err != nil {
		h.logger.Error("http - auth - otp verify - validate error: " + err.Error())

		return response.WithError(ctx, failure.BadRequest(err))
	}

	data, err := h.service.VerifyOTP(ctx.UserContext(), req)
	if err != nil {
		h.logger.Error("http - auth - otp verify - request_id: " + middleware.GetRequestID(ctx) + " - " + err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, data)
}

// Me godoc
// @Summary Current session
// @Description Identity carried by the bearer token
// @Tags auth
// @Produce json
// @Success 200 {object} response.Data[dto.SessionResponse]
// @Failure 401 {object} response.Error
// @Router /auth/me [get]
// @Security BearerAuth
func (h *Handler) Me(ctx *fiber.Ctx) error {
	sess, err := middleware.RequireSession(ctx)
	if err != nil {
		h.logger.Error("http - auth - me - " + err.Error())

		return response.WithError(ctx, failure.Unauthorized("not logged in"))
	}

	data, err := h.service.Me(ctx.UserContext(), sess)
	if err != nil {
		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, data)
}

// Logout godoc
// @Summary Logout
// @Tags auth
// @Produce json
// @Success 200 {object} response.Data[dto.MessageResponse]
// @Failure 401 {object} response.Error
// @Router /auth/logout [post]
// @Security BearerAuth
func (h *Handler) Logout(ctx *fiber.Ctx) error {
	sess, err := middleware.RequireSession(ctx)
	if err != nil {
		h.logger.Error("http - auth - logout - " + err.Error())

		return response.WithError(ctx, failure.Unauthorized("not logged in"))
	}

	data, err := h.service.Logout(ctx.UserContext(), sess)
	if err != nil {
		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, data)
}
