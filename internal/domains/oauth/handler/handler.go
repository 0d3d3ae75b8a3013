package handler

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/savioruz/turfics/internal/delivery/http/middleware"
	"github.com/savioruz/turfics/internal/delivery/http/response"
	"github.com/savioruz/turfics/internal/domains/oauth/service"
	"github.com/savioruz/turfics/pkg/failure"
	"github.com/savioruz/turfics/pkg/logger"

	// Register dto for swagger docs
	_ "github.com/savioruz/turfics/internal/domains/oauth/dto"
)

var (
	ErrGoogleLoginCode = errors.New("oauth: google login code required")
)

type Handler struct {
	service   service.OAuthService
	logger    logger.Interface
	validator *validator.Validate
}

func New(s service.OAuthService, l logger.Interface, v *validator.Validate) *Handler {
	return &Handler{
		service:   s,
		logger:    l,
		validator: v,
	}
}

func (h *Handler) RegisterRoutes(r fiber.Router) {
	auth := r.Group("/oauth")

	auth.Get("/google/url", h.GoogleURL)
	auth.Get("/google/login", h.GoogleLogin)
	auth.Get("/google/callback", h.GoogleCallback)
}

// GoogleURL godoc
// @Summary Google consent URL
// @Description Returns the Google OAuth consent URL and its state
// @Tags auth
// @Produce json
// @Success 200 {object} response.Data[dto.URLResponse]
// @Failure 500 {object} response.Error
// @Router /oauth/google/url [get]
func (h *Handler) GoogleURL(ctx *fiber.Ctx) error {
	data, err := h.service.GetGoogleAuthURL(ctx.UserContext())
	if err != nil {
		h.logger.Error("http - v1 - oauth - google url - " + err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, data)
}

// GoogleLogin godoc
// @Summary Login with Google
// @Description Redirects to Google OAuth consent screen
// @Tags auth
// @Produce json
// @Success 302 {string} string "Redirect to Google"
// @Failure 500 {object} response.Error
// @Router /oauth/google/login [get]
func (h *Handler) GoogleLogin(ctx *fiber.Ctx) error {
	data, err := h.service.GetGoogleAuthURL(ctx.UserContext())
	if err != nil {
		h.logger.Error("http - v1 - oauth - google login - " + err.Error())

		return response.WithError(ctx, err)
	}

	return ctx.Redirect(data.URL, fiber.StatusTemporaryRedirect)
}

// GoogleCallback godoc
// @Summary Google OAuth callback
// @Description Exchanges the Google code for a turfics session. Browsers are redirected to the frontend, API clients get JSON with Accept: application/json.
// @Tags auth
// @Produce json
// @Param code query string true "Authorization code from Google"
// @Param state query string true "State issued with the consent URL"
// @Success 200 {object} response.Data[dto.CallbackResponse]
// @Success 302 {string} string "Redirect to frontend"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Router /oauth/google/callback [get]
func (h *Handler) GoogleCallback(ctx *fiber.Ctx) error {
	code := ctx.Query("code")
	if code == "" {
		h.logger.Error("http - v1 - oauth - google callback - code is empty")

		return response.WithError(ctx, failure.BadRequest(ErrGoogleLoginCode))
	}

	data, err := h.service.HandleGoogleCallback(ctx.UserContext(), code, ctx.Query("state"))
	if err != nil {
		h.logger.Error("http - v1 - oauth - google callback - request_id: " + middleware.GetRequestID(ctx) + " - " + err.Error())

		return response.WithError(ctx, err)
	}

	if ctx.Accepts(fiber.MIMEApplicationJSON, fiber.MIMETextHTML) == fiber.MIMEApplicationJSON {
		return response.WithJSON(ctx, fiber.StatusOK, data)
	}

	return ctx.Redirect(data.FrontendURL, fiber.StatusFound)
}
