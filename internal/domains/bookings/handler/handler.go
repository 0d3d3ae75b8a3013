package handler

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/savioruz/turfics/internal/delivery/http/middleware"
	"github.com/savioruz/turfics/internal/delivery/http/response"
	"github.com/savioruz/turfics/internal/delivery/http/ws"
	"github.com/savioruz/turfics/internal/domains/bookings/dto"
	"github.com/savioruz/turfics/internal/domains/bookings/service"
	"github.com/savioruz/turfics/pkg/constant"
	"github.com/savioruz/turfics/pkg/failure"
	"github.com/savioruz/turfics/pkg/logger"
)

type Handler struct {
	service   service.BookingService
	logger    logger.Interface
	validator *validator.Validate
}

func New(s service.BookingService, l logger.Interface, v *validator.Validate) *Handler {
	return &Handler{
		service:   s,
		logger:    l,
		validator: v,
	}
}

const (
	identifier = "http - booking - %s"

	routepath = "/bookings"
)

func (h *Handler) RegisterRoutes(r fiber.Router) {
	bookings := r.Group(routepath, middleware.Jwt())

	bookings.Post("/holds", h.CreateHold)
	bookings.Get("/holds/:id", h.GetHold)
	bookings.Get("/holds/:id/live", ws.Upgrade(), websocket.New(h.WatchHold))
	bookings.Post("/holds/:id/confirm", h.ConfirmHold)
	bookings.Delete("/holds/:id", h.CancelHold)
	bookings.Get("/holds/:id/summary", h.PaymentSummary)

	bookings.Get("/my", h.MyBookings)
	bookings.Post("/:id/cancel", h.CancelBooking)
	bookings.Get("/:id/invoice", h.Invoice)
	bookings.Post("/:id/invoice/share", h.ShareInvoice)
	bookings.Post("/:id/host-match", h.HostMatch)
}

func bookingID(ctx *fiber.Ctx) (int64, error) {
	id, err := ctx.ParamsInt(constant.RequestParamID)
	if err != nil || id <= 0 {
		return 0, failure.BadRequestFromString("invalid booking id")
	}

	return int64(id), nil
}

// CreateHold godoc
// @Summary Book selected slots and start the payment hold
// @Description Contiguous slots are merged into one booking per block. Each block must last at least the minimum duration.
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body dto.CreateHoldRequest true "Selected slots"
// @Success 201 {object} response.Data[dto.HoldResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /bookings/holds [post]
// @Security BearerAuth
func (h *Handler) CreateHold(ctx *fiber.Ctx) error {
	sess, err := middleware.RequireSession(ctx)
	if err != nil {
		return response.WithError(ctx, err)
	}

	var req dto.CreateHoldRequest
	if err := ctx.BodyParser(&req); err != nil {
		return response.WithError(ctx, failure.BadRequest(err))
	}

	if err := h.validator.Struct(req); err != nil {
		h.logger.Error("http - booking - create hold - validate error: " + err.Error())

		return response.WithError(ctx, failure.BadRequest(err))
	}

	data, err := h.service.CreateHold(ctx.UserContext(), sess, req)
	if err != nil {
		h.logger.Error(identifier, "create hold - request_id: "+middleware.GetRequestID(ctx)+" - "+err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusCreated, data)
}

// GetHold godoc
// @Summary Hold status and remaining seconds
// @Tags bookings
// @Produce json
// @Param id path string true "Hold ID"
// @Success 200 {object} response.Data[dto.HoldResponse]
// @Failure 404 {object} response.Error
// @Router /bookings/holds/{id} [get]
// @Security BearerAuth
func (h *Handler) GetHold(ctx *fiber.Ctx) error {
	sess, err := middleware.RequireSession(ctx)
	if err != nil {
		return response.WithError(ctx, err)
	}

	data, err := h.service.GetHold(ctx.UserContext(), sess, ctx.Params(constant.RequestParamID))
	if err != nil {
		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, data)
}

// WatchHold pushes a "tick" frame with the hold snapshot every second until
// the hold reaches a final state or the client goes away.
func (h *Handler) WatchHold(c *websocket.Conn) {
	w := ws.NewWriter(c)

	sess := ws.Session(c)
	if sess == nil {
		_ = w.JSON(ws.Event{Type: ws.EventExpired, Error: failure.ErrSessionExpired.Error(), Redirect: constant.LoginPath})

		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	snaps, stop, err := h.service.WatchHold(ctx, sess, c.Params(constant.RequestParamID))
	if err != nil {
		_ = w.JSON(ws.Event{Type: ws.EventError, Error: err.Error()})

		return
	}
	defer stop()

	// Reads only to notice the client closing.
	go func() {
		defer cancel()

		for {
			if _, _, err := c.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case snap, ok := <-snaps:
			if !ok {
				return
			}

			if err := w.JSON(ws.Event{Type: ws.EventTick, Data: snap}); err != nil {
				h.logger.Debug(identifier, "watch hold - write: "+err.Error())

				return
			}

			if snap.State.Terminal() {
				return
			}
		}
	}
}

// ConfirmHold godoc
// @Summary Confirm payment for every booking of the hold
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path string true "Hold ID"
// @Param request body dto.ConfirmHoldRequest true "Payment mode"
// @Success 200 {object} response.Data[dto.HoldResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 410 {object} response.Error
// @Router /bookings/holds/{id}/confirm [post]
// @Security BearerAuth
func (h *Handler) ConfirmHold(ctx *fiber.Ctx) error {
	sess, err := middleware.RequireSession(ctx)
	if err != nil {
		return response.WithError(ctx, err)
	}

	var req dto.ConfirmHoldRequest
	if err := ctx.BodyParser(&req); err != nil {
		return response.WithError(ctx, failure.BadRequest(err))
	}

	if err := h.validator.Struct(req); err != nil {
		return response.WithError(ctx, failure.BadRequest(err))
	}

	data, err := h.service.ConfirmHold(ctx.UserContext(), sess, ctx.Params(constant.RequestParamID), req)
	if err != nil {
		h.logger.Error(identifier, "confirm hold - request_id: "+middleware.GetRequestID(ctx)+" - "+err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, data)
}

// CancelHold godoc
// @Summary Abandon a hold
// @Tags bookings
// @Param id path string true "Hold ID"
// @Success 204
// @Failure 404 {object} response.Error
// @Router /bookings/holds/{id} [delete]
// @Security BearerAuth
func (h *Handler) CancelHold(ctx *fiber.Ctx) error {
	sess, err := middleware.RequireSession(ctx)
	if err != nil {
		return response.WithError(ctx, err)
	}

	if err := h.service.CancelHold(ctx.UserContext(), sess, ctx.Params(constant.RequestParamID)); err != nil {
		return response.WithError(ctx, err)
	}

	return ctx.SendStatus(fiber.StatusNoContent)
}

// PaymentSummary godoc
// @Summary Amount due now and the split among friends
// @Tags bookings
// @Produce json
// @Param id path string true "Hold ID"
// @Param mode query string false "full or partial"
// @Param friends query int false "Friends sharing the balance"
// @Success 200 {object} response.Data[dto.PaymentSummaryResponse]
// @Failure 404 {object} response.Error
// @Router /bookings/holds/{id}/summary [get]
// @Security BearerAuth
func (h *Handler) PaymentSummary(ctx *fiber.Ctx) error {
	sess, err := middleware.RequireSession(ctx)
	if err != nil {
		return response.WithError(ctx, err)
	}

	var req dto.PaymentSummaryRequest
	if err := ctx.QueryParser(&req); err != nil {
		return response.WithError(ctx, failure.BadRequest(err))
	}

	if err := h.validator.Struct(req); err != nil {
		return response.WithError(ctx, failure.BadRequest(err))
	}

	data, err := h.service.PaymentSummary(ctx.UserContext(), sess, ctx.Params(constant.RequestParamID), req)
	if err != nil {
		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, data)
}

// MyBookings godoc
// @Summary Bookings of the current user
// @Tags bookings
// @Produce json
// @Param filter query string false "upcoming or history"
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} response.Data[dto.BookingsResponse]
// @Failure 401 {object} response.Error
// @Router /bookings/my [get]
// @Security BearerAuth
func (h *Handler) MyBookings(ctx *fiber.Ctx) error {
	sess, err := middleware.RequireSession(ctx)
	if err != nil {
		return response.WithError(ctx, err)
	}

	var req dto.MyBookingsRequest
	if err := ctx.QueryParser(&req); err != nil {
		return response.WithError(ctx, failure.BadRequest(err))
	}

	if err := h.validator.Struct(req); err != nil {
		h.logger.Error("http - booking - my bookings - validate error: " + err.Error())

		return response.WithError(ctx, failure.BadRequest(err))
	}

	data, err := h.service.MyBookings(ctx.UserContext(), sess, req)
	if err != nil {
		h.logger.Error(identifier, "my bookings - request_id: "+middleware.GetRequestID(ctx)+" - "+err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, data)
}

// CancelBooking godoc
// @Summary Cancel a booking
// @Tags bookings
// @Produce json
// @Param id path int true "Booking ID"
// @Success 200 {object} response.Data[dto.MessageResponse]
// @Failure 400 {object} response.Error
// @Router /bookings/{id}/cancel [post]
// @Security BearerAuth
func (h *Handler) CancelBooking(ctx *fiber.Ctx) error {
	sess, err := middleware.RequireSession(ctx)
	if err != nil {
		return response.WithError(ctx, err)
	}

	id, err := bookingID(ctx)
	if err != nil {
		return response.WithError(ctx, err)
	}

	data, err := h.service.CancelBooking(ctx.UserContext(), sess, id)
	if err != nil {
		h.logger.Error(identifier, "cancel - request_id: "+middleware.GetRequestID(ctx)+" - "+err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, data)
}

// Invoice godoc
// @Summary Download the PDF invoice of a booking
// @Tags bookings
// @Produce application/pdf
// @Param id path int true "Booking ID"
// @Success 200 {file} file
// @Failure 404 {object} response.Error
// @Router /bookings/{id}/invoice [get]
// @Security BearerAuth
func (h *Handler) Invoice(ctx *fiber.Ctx) error {
	sess, err := middleware.RequireSession(ctx)
	if err != nil {
		return response.WithError(ctx, err)
	}

	id, err := bookingID(ctx)
	if err != nil {
		return response.WithError(ctx, err)
	}

	name, pdf, err := h.service.Invoice(ctx.UserContext(), sess, id)
	if err != nil {
		return response.WithError(ctx, err)
	}

	return response.WithBlob(ctx, "application/pdf", name, pdf)
}

// ShareInvoice godoc
// @Summary Upload the invoice and email it
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path int true "Booking ID"
// @Param request body dto.ShareInvoiceRequest true "Recipient"
// @Success 200 {object} response.Data[dto.ShareInvoiceResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /bookings/{id}/invoice/share [post]
// @Security BearerAuth
func (h *Handler) ShareInvoice(ctx *fiber.Ctx) error {
	sess, err := middleware.RequireSession(ctx)
	if err != nil {
		return response.WithError(ctx, err)
	}

	id, err := bookingID(ctx)
	if err != nil {
		return response.WithError(ctx, err)
	}

	var req dto.ShareInvoiceRequest
	if err := ctx.BodyParser(&req); err != nil {
		return response.WithError(ctx, failure.BadRequest(err))
	}

	if err := h.validator.Struct(req); err != nil {
		return response.WithError(ctx, failure.BadRequest(err))
	}

	data, err := h.service.ShareInvoice(ctx.UserContext(), sess, id, req)
	if err != nil {
		h.logger.Error(identifier, "share invoice - request_id: "+middleware.GetRequestID(ctx)+" - "+err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, data)
}

// HostMatch godoc
// @Summary Look for players to join a booking
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path int true "Booking ID"
// @Param request body dto.HostMatchRequest true "Match request"
// @Success 201 {object} response.Data[dto.HostMatchResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Router /bookings/{id}/host-match [post]
// @Security BearerAuth
func (h *Handler) HostMatch(ctx *fiber.Ctx) error {
	sess, err := middleware.RequireSession(ctx)
	if err != nil {
		return response.WithError(ctx, err)
	}

	id, err := bookingID(ctx)
	if err != nil {
		return response.WithError(ctx, err)
	}

	var req dto.HostMatchRequest
	if err := ctx.BodyParser(&req); err != nil {
		return response.WithError(ctx, failure.BadRequest(err))
	}

	if err := h.validator.Struct(req); err != nil {
		return response.WithError(ctx, failure.BadRequest(err))
	}

	data, err := h.service.HostMatch(ctx.UserContext(), sess, id, req)
	if err != nil {
		if !errors.Is(err, failure.ErrSessionExpired) {
			h.logger.Error(identifier, "host match - request_id: "+middleware.GetRequestID(ctx)+" - "+err.Error())
		}

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusCreated, data)
}
