package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/savioruz/turfics/internal/delivery/http/middleware"
	"github.com/savioruz/turfics/internal/delivery/http/response"
	"github.com/savioruz/turfics/internal/domains/walkin/dto"
	"github.com/savioruz/turfics/internal/domains/walkin/service"
	"github.com/savioruz/turfics/pkg/constant"
	"github.com/savioruz/turfics/pkg/failure"
	"github.com/savioruz/turfics/pkg/logger"
)

type Handler struct {
	service   service.WalkInService
	logger    logger.Interface
	validator *validator.Validate
}

func New(s service.WalkInService, l logger.Interface, v *validator.Validate) *Handler {
	return &Handler{
		service:   s,
		logger:    l,
		validator: v,
	}
}

const (
	identifier = "http - walkin - %s"

	routePath = "/owner"
)

func (h *Handler) RegisterRoutes(r fiber.Router) {
	owner := r.Group(routePath, middleware.Jwt(), middleware.OwnerOnly())

	owner.Post("/slots/submit", h.Submit)
	owner.Get("/bookings", h.Bookings)
	owner.Get("/analytics", h.Analytics)
	owner.Put("/bookings/:id", h.UpdateBooking)

	owner.Get("/turfs", h.Turfs)
	owner.Post("/turfs", h.CreateTurf)
	owner.Post("/turfs/images", h.UploadTurfImage)
	owner.Post("/turfs/:id/games", h.CreateGame)
	owner.Post("/games/:id/units", h.CreateUnit)
}

func pathID(ctx *fiber.Ctx, name string) (int64, error) {
	id, err := ctx.ParamsInt(constant.RequestParamID)
	if err != nil || id <= 0 {
		return 0, failure.BadRequestFromString("invalid " + name + " id")
	}

	return int64(id), nil
}

// Submit godoc
// @Summary Walk-in booking or maintenance block over selected slots
// @Description Contiguous slots are merged into one request per run. Book mode needs at least one hour per run; block mode accepts single slots. Guest defaults to "Walk-In", reason to "Maintenance", payment to cash/paid.
// @Tags owner
// @Accept json
// @Produce json
// @Param request body dto.SubmitRequest true "Selection"
// @Success 201 {object} response.Data[dto.SubmitResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /owner/slots/submit [post]
// @Security BearerAuth
func (h *Handler) Submit(ctx *fiber.Ctx) error {
	sess, err := middleware.RequireSession(ctx)
	if err != nil {
		return response.WithError(ctx, err)
	}

	var req dto.SubmitRequest
	if err := ctx.BodyParser(&req); err != nil {
		return response.WithError(ctx, failure.BadRequest(err))
	}

	if err := h.validator.Struct(req); err != nil {
		h.logger.Error("http - walkin - submit - validate error: " + err.Error())

		return response.WithError(ctx, failure.BadRequest(err))
	}

	data, err := h.service.Submit(ctx.UserContext(), sess, req)
	if err != nil {
		h.logger.Error(identifier, "submit - request_id: "+middleware.GetRequestID(ctx)+" - "+err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusCreated, data)
}

// Bookings godoc
// @Summary Bookings across the owner's turfs
// @Tags owner
// @Produce json
// @Param status query string false "Status filter"
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} response.Data[dto.OwnerBookingsResponse]
// @Failure 403 {object} response.Error
// @Router /owner/bookings [get]
// @Security BearerAuth
func (h *Handler) Bookings(ctx *fiber.Ctx) error {
	sess, err := middleware.RequireSession(ctx)
	if err != nil {
		return response.WithError(ctx, err)
	}

	var req dto.OwnerBookingsRequest
	if err := ctx.QueryParser(&req); err != nil {
		return response.WithError(ctx, failure.BadRequest(err))
	}

	if err := h.validator.Struct(req); err != nil {
		return response.WithError(ctx, failure.BadRequest(err))
	}

	data, err := h.service.Bookings(ctx.UserContext(), sess, req)
	if err != nil {
		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, data)
}

// Analytics godoc
// @Summary Revenue, booking times and customer mix across the owner's turfs
// @Description A start_date and end_date pair selects a custom window and overrides range. Range defaults to month.
// @Tags owner
// @Produce json
// @Param range query string false "day, week, month, year, all or custom"
// @Param start_date query string false "Custom window start (YYYY-MM-DD)"
// @Param end_date query string false "Custom window end (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.AnalyticsResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Router /owner/analytics [get]
// @Security BearerAuth
func (h *Handler) Analytics(ctx *fiber.Ctx) error {
	sess, err := middleware.RequireSession(ctx)
	if err != nil {
		return response.WithError(ctx, err)
	}

	var req dto.AnalyticsRequest
	if err := ctx.QueryParser(&req); err != nil {
		return response.WithError(ctx, failure.BadRequest(err))
	}

	if err := h.validator.Struct(req); err != nil {
		return response.WithError(ctx, failure.BadRequest(err))
	}

	data, err := h.service.Analytics(ctx.UserContext(), sess, req)
	if err != nil {
		h.logger.Error(identifier, "analytics - request_id: "+middleware.GetRequestID(ctx)+" - "+err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, data)
}

// UpdateBooking godoc
// @Summary Update status, payment or guest of a booking
// @Tags owner
// @Accept json
// @Produce json
// @Param id path int true "Booking ID"
// @Param request body dto.UpdateBookingRequest true "Changes"
// @Success 200 {object} response.Data[dto.MessageResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Router /owner/bookings/{id} [put]
// @Security BearerAuth
func (h *Handler) UpdateBooking(ctx *fiber.Ctx) error {
	sess, err := middleware.RequireSession(ctx)
	if err != nil {
		return response.WithError(ctx, err)
	}

	id, err := pathID(ctx, "booking")
	if err != nil {
		return response.WithError(ctx, err)
	}

	var req dto.UpdateBookingRequest
	if err := ctx.BodyParser(&req); err != nil {
		return response.WithError(ctx, failure.BadRequest(err))
	}

	if err := h.validator.Struct(req); err != nil {
		return response.WithError(ctx, failure.BadRequest(err))
	}

	data, err := h.service.UpdateBooking(ctx.UserContext(), sess, id, req)
	if err != nil {
		h.logger.Error(identifier, "update booking - request_id: "+middleware.GetRequestID(ctx)+" - "+err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, data)
}

// Turfs godoc
// @Summary Turfs owned by the caller
// @Tags owner
// @Produce json
// @Success 200 {object} response.Data[[]turfapi.Turf]
// @Router /owner/turfs [get]
// @Security BearerAuth
func (h *Handler) Turfs(ctx *fiber.Ctx) error {
	sess, err := middleware.RequireSession(ctx)
	if err != nil {
		return response.WithError(ctx, err)
	}

	data, err := h.service.Turfs(ctx.UserContext(), sess)
	if err != nil {
		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, data)
}

// CreateTurf godoc
// @Summary Register a turf
// @Tags owner
// @Accept json
// @Produce json
// @Param request body dto.CreateTurfRequest true "Turf"
// @Success 201 {object} response.Data[dto.CreatedResponse]
// @Failure 400 {object} response.Error
// @Router /owner/turfs [post]
// @Security BearerAuth
func (h *Handler) CreateTurf(ctx *fiber.Ctx) error {
	sess, err := middleware.RequireSession(ctx)
	if err != nil {
		return response.WithError(ctx, err)
	}

	var req dto.CreateTurfRequest
	if err := ctx.BodyParser(&req); err != nil {
		return response.WithError(ctx, failure.BadRequest(err))
	}

	if err := h.validator.Struct(req); err != nil {
		h.logger.Error("http - walkin - create turf - validate error: " + err.Error())

		return response.WithError(ctx, failure.BadRequest(err))
	}

	data, err := h.service.CreateTurf(ctx.UserContext(), sess, req)
	if err != nil {
		h.logger.Error(identifier, "create turf - request_id: "+middleware.GetRequestID(ctx)+" - "+err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusCreated, data)
}

// UploadTurfImage godoc
// @Summary Upload a turf photo
// @Tags owner
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "JPEG, PNG or WebP up to 10MB"
// @Success 201 {object} response.Data[dto.ImageResponse]
// @Failure 400 {object} response.Error
// @Router /owner/turfs/images [post]
// @Security BearerAuth
func (h *Handler) UploadTurfImage(ctx *fiber.Ctx) error {
	file, err := ctx.FormFile("image")
	if err != nil {
		return response.WithError(ctx, failure.BadRequestFromString("image file is required"))
	}

	data, err := h.service.UploadTurfImage(ctx.UserContext(), file)
	if err != nil {
		h.logger.Error(identifier, "upload image - request_id: "+middleware.GetRequestID(ctx)+" - "+err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusCreated, data)
}

// CreateGame godoc
// @Summary Add a sport to a turf
// @Tags owner
// @Accept json
// @Produce json
// @Param id path int true "Turf ID"
// @Param request body dto.CreateGameRequest true "Game"
// @Success 201 {object} response.Data[dto.CreatedResponse]
// @Failure 400 {object} response.Error
// @Router /owner/turfs/{id}/games [post]
// @Security BearerAuth
func (h *Handler) CreateGame(ctx *fiber.Ctx) error {
	sess, err := middleware.RequireSession(ctx)
	if err != nil {
		return response.WithError(ctx, err)
	}

	turfID, err := pathID(ctx, "turf")
	if err != nil {
		return response.WithError(ctx, err)
	}

	var req dto.CreateGameRequest
	if err := ctx.BodyParser(&req); err != nil {
		return response.WithError(ctx, failure.BadRequest(err))
	}

	if err := h.validator.Struct(req); err != nil {
		return response.WithError(ctx, failure.BadRequest(err))
	}

	data, err := h.service.CreateGame(ctx.UserContext(), sess, turfID, req)
	if err != nil {
		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusCreated, data)
}

// CreateUnit godoc
// @Summary Add a playable unit to a game
// @Tags owner
// @Accept json
// @Produce json
// @Param id path int true "Game ID"
// @Param request body dto.CreateUnitRequest true "Unit"
// @Success 201 {object} response.Data[dto.CreatedResponse]
// @Failure 400 {object} response.Error
// @Router /owner/games/{id}/units [post]
// @Security BearerAuth
func (h *Handler) CreateUnit(ctx *fiber.Ctx) error {
	sess, err := middleware.RequireSession(ctx)
	if err != nil {
		return response.WithError(ctx, err)
	}

	gameID, err := pathID(ctx, "game")
	if err != nil {
		return response.WithError(ctx, err)
	}

	var req dto.CreateUnitRequest
	if err := ctx.BodyParser(&req); err != nil {
		return response.WithError(ctx, failure.BadRequest(err))
	}

	if err := h.validator.Struct(req); err != nil {
		return response.WithError(ctx, failure.BadRequest(err))
	}

	data, err := h.service.CreateUnit(ctx.UserContext(), sess, gameID, req)
	if err != nil {
		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusCreated, data)
}
