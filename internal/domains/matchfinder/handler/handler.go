package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/savioruz/turfics/internal/delivery/http/middleware"
	"github.com/savioruz/turfics/internal/delivery/http/response"
	"github.com/savioruz/turfics/internal/domains/matchfinder/dto"
	"github.com/savioruz/turfics/internal/domains/matchfinder/service"
	"github.com/savioruz/turfics/pkg/constant"
	"github.com/savioruz/turfics/pkg/failure"
	"github.com/savioruz/turfics/pkg/logger"
)

type Handler struct {
	service   service.MatchFinderService
	logger    logger.Interface
	validator *validator.Validate
}

func New(s service.MatchFinderService, l logger.Interface, v *validator.Validate) *Handler {
	return &Handler{
		service:   s,
		logger:    l,
		validator: v,
	}
}

const identifier = "http - matchfinder - %s"

func (h *Handler) RegisterRoutes(r fiber.Router) {
	matches := r.Group("/matches")

	matches.Get("/", middleware.OptionalJwt(), h.List)
	matches.Get("/my", middleware.Jwt(), h.Mine)
	matches.Post("/:id/join", middleware.Jwt(), h.Join)
	matches.Post("/join-requests/:id/action", middleware.Jwt(), h.Act)
	matches.Post("/join-requests/:id/pay", middleware.Jwt(), h.Pay)

	teams := r.Group("/teams")

	teams.Get("/", middleware.OptionalJwt(), h.Teams)
	teams.Post("/", middleware.Jwt(), h.CreateTeam)
}

func pathID(ctx *fiber.Ctx, name string) (int64, error) {
	id, err := ctx.ParamsInt(constant.RequestParamID)
	if err != nil || id <= 0 {
		return 0, failure.BadRequestFromString("invalid " + name + " id")
	}

	return int64(id), nil
}

// List godoc
// @Summary Open matches looking for players
// @Tags matchfinder
// @Produce json
// @Param sport query string false "Sport name, all for every sport"
// @Success 200 {object} response.Data[[]turfapi.OpenMatch]
// @Failure 502 {object} response.Error
// @Router /matches [get]
func (h *Handler) List(ctx *fiber.Ctx) error {
	var req dto.ListRequest
	if err := ctx.QueryParser(&req); err != nil {
		return response.WithError(ctx, failure.BadRequest(err))
	}

	if err := h.validator.Struct(req); err != nil {
		return response.WithError(ctx, failure.BadRequest(err))
	}

	data, err := h.service.List(ctx.UserContext(), middleware.CurrentSession(ctx), req)
	if err != nil {
		h.logger.Error(identifier, "list - request_id: "+middleware.GetRequestID(ctx)+" - "+err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, data)
}

// Mine godoc
// @Summary Matches the caller hosts or joined
// @Tags matchfinder
// @Produce json
// @Success 200 {object} response.Data[dto.MyMatchesResponse]
// @Router /matches/my [get]
// @Security BearerAuth
func (h *Handler) Mine(ctx *fiber.Ctx) error {
	sess, err := middleware.RequireSession(ctx)
	if err != nil {
		return response.WithError(ctx, err)
	}

	data, err := h.service.Mine(ctx.UserContext(), sess)
	if err != nil {
		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, data)
}

// Join godoc
// @Summary Ask to join a match
// @Tags matchfinder
// @Produce json
// @Param id path int true "Match ID"
// @Success 201 {object} response.Data[dto.MessageResponse]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /matches/{id}/join [post]
// @Security BearerAuth
func (h *Handler) Join(ctx *fiber.Ctx) error {
	sess, err := middleware.RequireSession(ctx)
	if err != nil {
		return response.WithError(ctx, err)
	}

	id, err := pathID(ctx, "match")
	if err != nil {
		return response.WithError(ctx, err)
	}

	data, err := h.service.Join(ctx.UserContext(), sess, id)
	if err != nil {
		h.logger.Error(identifier, "join - request_id: "+middleware.GetRequestID(ctx)+" - "+err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusCreated, data)
}

// Act godoc
// @Summary Approve or reject a join request
// @Tags matchfinder
// @Accept json
// @Produce json
// @Param id path int true "Join request ID"
// @Param request body dto.JoinActionRequest true "Action"
// @Success 200 {object} response.Data[dto.MessageResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Router /matches/join-requests/{id}/action [post]
// @Security BearerAuth
func (h *Handler) Act(ctx *fiber.Ctx) error {
	sess, err := middleware.RequireSession(ctx)
	if err != nil {
		return response.WithError(ctx, err)
	}

	id, err := pathID(ctx, "join request")
	if err != nil {
		return response.WithError(ctx, err)
	}

	var req dto.JoinActionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return response.WithError(ctx, failure.BadRequest(err))
	}

	if err := h.validator.Struct(req); err != nil {
		h.logger.Error("http - matchfinder - act - validate error: " + err.Error())

		return response.WithError(ctx, failure.BadRequest(err))
	}

	data, err := h.service.Act(ctx.UserContext(), sess, id, req)
	if err != nil {
		h.logger.Error(identifier, "act - request_id: "+middleware.GetRequestID(ctx)+" - "+err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, data)
}

// Pay godoc
// @Summary Pay the player share of an approved join request
// @Tags matchfinder
// @Produce json
// @Param id path int true "Join request ID"
// @Success 200 {object} response.Data[dto.MessageResponse]
// @Failure 400 {object} response.Error
// @Router /matches/join-requests/{id}/pay [post]
// @Security BearerAuth
func (h *Handler) Pay(ctx *fiber.Ctx) error {
	sess, err := middleware.RequireSession(ctx)
	if err != nil {
		return response.WithError(ctx, err)
	}

	id, err := pathID(ctx, "join request")
	if err != nil {
		return response.WithError(ctx, err)
	}

	data, err := h.service.Pay(ctx.UserContext(), sess, id)
	if err != nil {
		h.logger.Error(identifier, "pay - request_id: "+middleware.GetRequestID(ctx)+" - "+err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, data)
}

// Teams godoc
// @Summary Teams recruiting players
// @Tags matchfinder
// @Produce json
// @Param skill query string false "beginner, intermediate, advanced, pro or all"
// @Success 200 {object} response.Data[[]turfapi.Team]
// @Failure 400 {object} response.Error
// @Router /teams [get]
func (h *Handler) Teams(ctx *fiber.Ctx) error {
	var req dto.TeamsRequest
	if err := ctx.QueryParser(&req); err != nil {
		return response.WithError(ctx, failure.BadRequest(err))
	}

	if err := h.validator.Struct(req); err != nil {
		return response.WithError(ctx, failure.BadRequest(err))
	}

	data, err := h.service.Teams(ctx.UserContext(), middleware.CurrentSession(ctx), req)
	if err != nil {
		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, data)
}

// CreateTeam godoc
// @Summary Create a team
// @Tags matchfinder
// @Accept json
// @Produce json
// @Param request body dto.CreateTeamRequest true "Team"
// @Success 201 {object} response.Data[dto.CreatedResponse]
// @Failure 400 {object} response.Error
// @Router /teams [post]
// @Security BearerAuth
func (h *Handler) CreateTeam(ctx *fiber.Ctx) error {
	sess, err := middleware.RequireSession(ctx)
	if err != nil {
		return response.WithError(ctx, err)
	}

	var req dto.CreateTeamRequest
	if err := ctx.BodyParser(&req); err != nil {
		return response.WithError(ctx, failure.BadRequest(err))
	}

	if err := h.validator.Struct(req); err != nil {
		h.logger.Error("http - matchfinder - create team - validate error: " + err.Error())

		return response.WithError(ctx, failure.BadRequest(err))
	}

	data, err := h.service.CreateTeam(ctx.UserContext(), sess, req)
	if err != nil {
		h.logger.Error(identifier, "create team - request_id: "+middleware.GetRequestID(ctx)+" - "+err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusCreated, data)
}
