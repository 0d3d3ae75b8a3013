package handler

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/savioruz/turfics/internal/delivery/http/middleware"
	"github.com/savioruz/turfics/internal/delivery/http/response"
	"github.com/savioruz/turfics/internal/domains/posters/dto"
	"github.com/savioruz/turfics/internal/domains/posters/service"
	"github.com/savioruz/turfics/pkg/failure"
	"github.com/savioruz/turfics/pkg/logger"
)

type Handler struct {
	service   service.PosterService
	logger    logger.Interface
	validator *validator.Validate
}

func New(s service.PosterService, l logger.Interface, v *validator.Validate) *Handler {
	return &Handler{
		service:   s,
		logger:    l,
		validator: v,
	}
}

const identifier = "http - poster - %s"

func (h *Handler) RegisterRoutes(r fiber.Router) {
	r.Get("/posters/options", h.Options)

	posters := r.Group("/posters", middleware.Jwt())

	posters.Post("/generate", h.Generate)
	posters.Post("/pdf", h.Render)
	posters.Post("/share", h.Share)
}

// Options godoc
// @Summary Poster tones and background styles
// @Tags posters
// @Produce json
// @Success 200 {object} response.Data[dto.OptionsResponse]
// @Router /posters/options [get]
func (h *Handler) Options(ctx *fiber.Ctx) error {
	return response.WithJSON(ctx, fiber.StatusOK, h.service.Options())
}

// Generate godoc
// @Summary Generate poster copy for a tournament
// @Description custom_tone is required with tone "Other"; image_prompt with background "ai-custom".
// @Tags posters
// @Accept json
// @Produce json
// @Param request body dto.GenerateRequest true "Poster options"
// @Success 200 {object} response.Data[dto.PosterResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Router /posters/generate [post]
// @Security BearerAuth
func (h *Handler) Generate(ctx *fiber.Ctx) error {
	sess, err := middleware.RequireSession(ctx)
	if err != nil {
		return response.WithError(ctx, err)
	}

	var req dto.GenerateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return response.WithError(ctx, failure.BadRequest(err))
	}

	if err := h.validator.Struct(req); err != nil {
		h.logger.Error("http - poster - generate - validate error: " + err.Error())

		return response.WithError(ctx, failure.BadRequest(err))
	}

	data, err := h.service.Generate(ctx.UserContext(), sess, req)
	if err != nil {
		h.logger.Error(identifier, "generate - request_id: "+middleware.GetRequestID(ctx)+" - "+err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, data)
}

// Render godoc
// @Summary Download a poster as PDF
// @Tags posters
// @Accept json
// @Produce application/pdf
// @Param request body dto.RenderRequest true "Poster content"
// @Success 200 {file} binary
// @Failure 400 {object} response.Error
// @Router /posters/pdf [post]
// @Security BearerAuth
func (h *Handler) Render(ctx *fiber.Ctx) error {
	sess, err := middleware.RequireSession(ctx)
	if err != nil {
		return response.WithError(ctx, err)
	}

	var req dto.RenderRequest
	if err := ctx.BodyParser(&req); err != nil {
		return response.WithError(ctx, failure.BadRequest(err))
	}

	if err := h.validator.Struct(req); err != nil {
		return response.WithError(ctx, failure.BadRequest(err))
	}

	pdf, err := h.service.Render(ctx.UserContext(), sess, req)
	if err != nil {
		return response.WithError(ctx, err)
	}

	return response.WithBlob(ctx, "application/pdf", fmt.Sprintf("poster-%d.pdf", req.TournamentID), pdf)
}

// Share godoc
// @Summary Upload a poster and mail its link
// @Tags posters
// @Accept json
// @Produce json
// @Param request body dto.ShareRequest true "Poster content and recipients"
// @Success 201 {object} response.Data[dto.ShareResponse]
// @Failure 400 {object} response.Error
// @Router /posters/share [post]
// @Security BearerAuth
func (h *Handler) Share(ctx *fiber.Ctx) error {
	sess, err := middleware.RequireSession(ctx)
	if err != nil {
		return response.WithError(ctx, err)
	}

	var req dto.ShareRequest
	if err := ctx.BodyParser(&req); err != nil {
		return response.WithError(ctx, failure.BadRequest(err))
	}

	if err := h.validator.Struct(req); err != nil {
		h.logger.Error("http - poster - share - validate error: " + err.Error())

		return response.WithError(ctx, failure.BadRequest(err))
	}

	data, err := h.service.Share(ctx.UserContext(), sess, req)
	if err != nil {
		h.logger.Error(identifier, "share - request_id: "+middleware.GetRequestID(ctx)+" - "+err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusCreated, data)
}
