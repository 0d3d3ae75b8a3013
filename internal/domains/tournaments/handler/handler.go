package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/savioruz/turfics/internal/delivery/http/middleware"
	"github.com/savioruz/turfics/internal/delivery/http/response"
	"github.com/savioruz/turfics/internal/domains/tournaments/dto"
	"github.com/savioruz/turfics/internal/domains/tournaments/service"
	"github.com/savioruz/turfics/pkg/constant"
	"github.com/savioruz/turfics/pkg/failure"
	"github.com/savioruz/turfics/pkg/logger"
)

type Handler struct {
	service   service.TournamentService
	logger    logger.Interface
	validator *validator.Validate
}

func New(s service.TournamentService, l logger.Interface, v *validator.Validate) *Handler {
	return &Handler{
		service:   s,
		logger:    l,
		validator: v,
	}
}

const (
	identifier = "http - tournament - %s"

	maxRosterSize = 1 << 20
)

func (h *Handler) RegisterRoutes(r fiber.Router) {
	t := r.Group("/tournaments")

	t.Get("/", middleware.OptionalJwt(), h.List)
	t.Get("/my-registrations", middleware.Jwt(), h.MyRegistrations)
	t.Get("/:id", middleware.OptionalJwt(), h.Get)

	t.Post("/", middleware.Jwt(), h.Create)
	t.Post("/:id/register", middleware.Jwt(), h.Register)
	t.Post("/:id/registrations/manual", middleware.Jwt(), h.RegisterManual)
	t.Post("/:id/registrations/bulk", middleware.Jwt(), h.RegisterBulk)
	t.Put("/:id/registrations/:regId", middleware.Jwt(), h.UpdateRegistration)
	t.Post("/:id/announcements", middleware.Jwt(), h.Announce)
	t.Post("/:id/matches", middleware.Jwt(), h.ScheduleMatch)
	t.Put("/:id/matches/:matchId/score", middleware.Jwt(), h.UpdateScore)

	r.Get("/organizer/tournaments", middleware.Jwt(), h.Organized)
}

func param(ctx *fiber.Ctx, key, name string) (int64, error) {
	id, err := ctx.ParamsInt(key)
	if err != nil || id <= 0 {
		return 0, failure.BadRequestFromString("invalid " + name + " id")
	}

	return int64(id), nil
}

func tournamentID(ctx *fiber.Ctx) (int64, error) {
	return param(ctx, constant.RequestParamID, "tournament")
}

// List godoc
// @Summary List tournaments
// @Tags tournaments
// @Produce json
// @Param filter query string false "all or upcoming"
// @Param sport query string false "Sport name, all for every sport"
// @Success 200 {object} response.Data[[]turfapi.Tournament]
// @Failure 400 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /tournaments [get]
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

// Get godoc
// @Summary Tournament detail with matches, announcements and registrations
// @Tags tournaments
// @Produce json
// @Param id path int true "Tournament ID"
// @Success 200 {object} response.Data[turfapi.Tournament]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /tournaments/{id} [get]
func (h *Handler) Get(ctx *fiber.Ctx) error {
	id, err := tournamentID(ctx)
	if err != nil {
		return response.WithError(ctx, err)
	}

	data, err := h.service.Get(ctx.UserContext(), middleware.CurrentSession(ctx), id)
	if err != nil {
		h.logger.Error(identifier, "get - request_id: "+middleware.GetRequestID(ctx)+" - "+err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, data)
}

// Create godoc
// @Summary Organize a tournament
// @Tags tournaments
// @Accept json
// @Produce json
// @Param request body dto.CreateRequest true "Tournament"
// @Success 201 {object} response.Data[dto.CreatedResponse]
// @Failure 400 {object} response.Error
// @Router /tournaments [post]
// @Security BearerAuth
func (h *Handler) Create(ctx *fiber.Ctx) error {
	sess, err := middleware.RequireSession(ctx)
	if err != nil {
		return response.WithError(ctx, err)
	}

	var req dto.CreateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return response.WithError(ctx, failure.BadRequest(err))
	}

	if err := h.validator.Struct(req); err != nil {
		h.logger.Error("http - tournament - create - validate error: " + err.Error())

		return response.WithError(ctx, failure.BadRequest(err))
	}

	data, err := h.service.Create(ctx.UserContext(), sess, req)
	if err != nil {
		h.logger.Error(identifier, "create - request_id: "+middleware.GetRequestID(ctx)+" - "+err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusCreated, data)
}

// Register godoc
// @Summary Register the caller's team
// @Description Captain defaults to the caller's username.
// @Tags tournaments
// @Accept json
// @Produce json
// @Param id path int true "Tournament ID"
// @Param request body dto.RegisterRequest true "Team"
// @Success 201 {object} response.Data[dto.MessageResponse]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /tournaments/{id}/register [post]
// @Security BearerAuth
func (h *Handler) Register(ctx *fiber.Ctx) error {
	sess, err := middleware.RequireSession(ctx)
	if err != nil {
		return response.WithError(ctx, err)
	}

	id, err := tournamentID(ctx)
	if err != nil {
		return response.WithError(ctx, err)
	}

	var req dto.RegisterRequest
	if err := ctx.BodyParser(&req); err != nil {
		return response.WithError(ctx, failure.BadRequest(err))
	}

	if err := h.validator.Struct(req); err != nil {
		h.logger.Error("http - tournament - register - validate error: " + err.Error())

		return response.WithError(ctx, failure.BadRequest(err))
	}

	data, err := h.service.Register(ctx.UserContext(), sess, id, req)
	if err != nil {
		h.logger.Error(identifier, "register - request_id: "+middleware.GetRequestID(ctx)+" - "+err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusCreated, data)
}

// RegisterManual godoc
// @Summary Organizer enters a team on its captain's behalf
// @Tags tournaments
// @Accept json
// @Produce json
// @Param id path int true "Tournament ID"
// @Param request body dto.ManualRegisterRequest true "Team"
// @Success 201 {object} response.Data[dto.MessageResponse]
// @Failure 400 {object} response.Error
// @Router /tournaments/{id}/registrations/manual [post]
// @Security BearerAuth
func (h *Handler) RegisterManual(ctx *fiber.Ctx) error {
	sess, err := middleware.RequireSession(ctx)
	if err != nil {
		return response.WithError(ctx, err)
	}

	id, err := tournamentID(ctx)
	if err != nil {
		return response.WithError(ctx, err)
	}

	var req dto.ManualRegisterRequest
	if err := ctx.BodyParser(&req); err != nil {
		return response.WithError(ctx, failure.BadRequest(err))
	}

	if err := h.validator.Struct(req); err != nil {
		return response.WithError(ctx, failure.BadRequest(err))
	}

	data, err := h.service.RegisterManual(ctx.UserContext(), sess, id, req)
	if err != nil {
		h.logger.Error(identifier, "manual register - request_id: "+middleware.GetRequestID(ctx)+" - "+err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusCreated, data)
}

// RegisterBulk godoc
// @Summary Register teams from a CSV roster
// @Description Columns team_name, captain_name, contact_number. The header row is optional.
// @Tags tournaments
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Tournament ID"
// @Param file formData file true "CSV roster"
// @Success 200 {object} response.Data[dto.BulkResponse]
// @Failure 400 {object} response.Error
// @Router /tournaments/{id}/registrations/bulk [post]
// @Security BearerAuth
func (h *Handler) RegisterBulk(ctx *fiber.Ctx) error {
	sess, err := middleware.RequireSession(ctx)
	if err != nil {
		return response.WithError(ctx, err)
	}

	id, err := tournamentID(ctx)
	if err != nil {
		return response.WithError(ctx, err)
	}

	file, err := ctx.FormFile("file")
	if err != nil {
		return response.WithError(ctx, failure.BadRequestFromString("roster file is required"))
	}

	if file.Size > maxRosterSize {
		return response.WithError(ctx, failure.BadRequestFromString("roster file is too large"))
	}

	roster, err := file.Open()
	if err != nil {
		return response.WithError(ctx, failure.BadRequest(err))
	}
	defer roster.Close()

	data, err := h.service.RegisterBulk(ctx.UserContext(), sess, id, roster)
	if err != nil {
		h.logger.Error(identifier, "bulk register - request_id: "+middleware.GetRequestID(ctx)+" - "+err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, data)
}

// MyRegistrations godoc
// @Summary Teams the caller registered
// @Tags tournaments
// @Produce json
// @Success 200 {object} response.Data[[]turfapi.MyRegistration]
// @Router /tournaments/my-registrations [get]
// @Security BearerAuth
func (h *Handler) MyRegistrations(ctx *fiber.Ctx) error {
	sess, err := middleware.RequireSession(ctx)
	if err != nil {
		return response.WithError(ctx, err)
	}

	data, err := h.service.MyRegistrations(ctx.UserContext(), sess)
	if err != nil {
		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, data)
}

// Organized godoc
// @Summary Tournaments the caller organizes
// @Tags tournaments
// @Produce json
// @Success 200 {object} response.Data[[]turfapi.Tournament]
// @Router /organizer/tournaments [get]
// @Security BearerAuth
func (h *Handler) Organized(ctx *fiber.Ctx) error {
	sess, err := middleware.RequireSession(ctx)
	if err != nil {
		return response.WithError(ctx, err)
	}

	data, err := h.service.Organized(ctx.UserContext(), sess)
	if err != nil {
		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, data)
}

// UpdateRegistration godoc
// @Summary Approve, reject or mark a registration paid
// @Description The returned view already carries the change; it is rolled back if the server refuses.
// @Tags tournaments
// @Accept json
// @Produce json
// @Param id path int true "Tournament ID"
// @Param regId path int true "Registration ID"
// @Param request body dto.RegistrationUpdateRequest true "Changes"
// @Success 200 {object} response.Data[turfapi.Tournament]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Router /tournaments/{id}/registrations/{regId} [put]
// @Security BearerAuth
func (h *Handler) UpdateRegistration(ctx *fiber.Ctx) error {
	sess, err := middleware.RequireSession(ctx)
	if err != nil {
		return response.WithError(ctx, err)
	}

	id, err := tournamentID(ctx)
	if err != nil {
		return response.WithError(ctx, err)
	}

	regID, err := param(ctx, "regId", "registration")
	if err != nil {
		return response.WithError(ctx, err)
	}

	var req dto.RegistrationUpdateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return response.WithError(ctx, failure.BadRequest(err))
	}

	if err := h.validator.Struct(req); err != nil {
		h.logger.Error("http - tournament - update registration - validate error: " + err.Error())

		return response.WithError(ctx, failure.BadRequest(err))
	}

	data, err := h.service.UpdateRegistration(ctx.UserContext(), sess, id, regID, req)
	if err != nil {
		h.logger.Error(identifier, "update registration - request_id: "+middleware.GetRequestID(ctx)+" - "+err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, data)
}

// Announce godoc
// @Summary Post an announcement
// @Tags tournaments
// @Accept json
// @Produce json
// @Param id path int true "Tournament ID"
// @Param request body dto.AnnouncementRequest true "Announcement"
// @Success 201 {object} response.Data[turfapi.Tournament]
// @Failure 400 {object} response.Error
// @Router /tournaments/{id}/announcements [post]
// @Security BearerAuth
func (h *Handler) Announce(ctx *fiber.Ctx) error {
	sess, err := middleware.RequireSession(ctx)
	if err != nil {
		return response.WithError(ctx, err)
	}

	id, err := tournamentID(ctx)
	if err != nil {
		return response.WithError(ctx, err)
	}

	var req dto.AnnouncementRequest
	if err := ctx.BodyParser(&req); err != nil {
		return response.WithError(ctx, failure.BadRequest(err))
	}

	if err := h.validator.Struct(req); err != nil {
		return response.WithError(ctx, failure.BadRequest(err))
	}

	data, err := h.service.Announce(ctx.UserContext(), sess, id, req)
	if err != nil {
		h.logger.Error(identifier, "announce - request_id: "+middleware.GetRequestID(ctx)+" - "+err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusCreated, data)
}

// ScheduleMatch godoc
// @Summary Schedule a fixture
// @Tags tournaments
// @Accept json
// @Produce json
// @Param id path int true "Tournament ID"
// @Param request body dto.ScheduleMatchRequest true "Fixture"
// @Success 201 {object} response.Data[dto.MessageResponse]
// @Failure 400 {object} response.Error
// @Router /tournaments/{id}/matches [post]
// @Security BearerAuth
func (h *Handler) ScheduleMatch(ctx *fiber.Ctx) error {
	sess, err := middleware.RequireSession(ctx)
	if err != nil {
		return response.WithError(ctx, err)
	}

	id, err := tournamentID(ctx)
	if err != nil {
		return response.WithError(ctx, err)
	}

	var req dto.ScheduleMatchRequest
	if err := ctx.BodyParser(&req); err != nil {
		return response.WithError(ctx, failure.BadRequest(err))
	}

	if err := h.validator.Struct(req); err != nil {
		h.logger.Error("http - tournament - schedule match - validate error: " + err.Error())

		return response.WithError(ctx, failure.BadRequest(err))
	}

	data, err := h.service.ScheduleMatch(ctx.UserContext(), sess, id, req)
	if err != nil {
		h.logger.Error(identifier, "schedule match - request_id: "+middleware.GetRequestID(ctx)+" - "+err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusCreated, data)
}

// UpdateScore godoc
// @Summary Record a match score
// @Description A completed match needs a winner. Ties are rejected; the higher score wins when none is given.
// @Tags tournaments
// @Accept json
// @Produce json
// @Param id path int true "Tournament ID"
// @Param matchId path int true "Match ID"
// @Param request body dto.ScoreRequest true "Score"
// @Success 200 {object} response.Data[turfapi.Tournament]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /tournaments/{id}/matches/{matchId}/score [put]
// @Security BearerAuth
func (h *Handler) UpdateScore(ctx *fiber.Ctx) error {
	sess, err := middleware.RequireSession(ctx)
	if err != nil {
		return response.WithError(ctx, err)
	}

	id, err := tournamentID(ctx)
	if err != nil {
		return response.WithError(ctx, err)
	}

	matchID, err := param(ctx, "matchId", "match")
	if err != nil {
		return response.WithError(ctx, err)
	}

	var req dto.ScoreRequest
	if err := ctx.BodyParser(&req); err != nil {
		return response.WithError(ctx, failure.BadRequest(err))
	}

	if err := h.validator.Struct(req); err != nil {
		return response.WithError(ctx, failure.BadRequest(err))
	}

	data, err := h.service.UpdateScore(ctx.UserContext(), sess, id, matchID, req)
	if err != nil {
		h.logger.Error(identifier, "update score - request_id: "+middleware.GetRequestID(ctx)+" - "+err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, data)
}
