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
	"github.com/savioruz/turfics/internal/domains/venues/dto"
	"github.com/savioruz/turfics/internal/domains/venues/service"
	"github.com/savioruz/turfics/pkg/constant"
	"github.com/savioruz/turfics/pkg/failure"
	"github.com/savioruz/turfics/pkg/geo"
	"github.com/savioruz/turfics/pkg/logger"
)

type Handler struct {
	service   service.VenueService
	logger    logger.Interface
	validator *validator.Validate
}

func New(s service.VenueService, l logger.Interface, v *validator.Validate) *Handler {
	return &Handler{
		service:   s,
		logger:    l,
		validator: v,
	}
}

const (
	identifier = "http - venues - %s"
)

func (h *Handler) RegisterRoutes(r fiber.Router) {
	turfs := r.Group("/turfs", middleware.OptionalJwt())

	turfs.Get("/", h.ListTurfs)
	turfs.Get("/discover", h.Discover)
	turfs.Get("/discover/live", ws.Upgrade(), websocket.New(h.DiscoverLive))
	turfs.Get("/cities", h.Cities)
	turfs.Get("/:id", h.GetTurf)

	r.Get("/units/:id/slots", middleware.OptionalJwt(), h.ListSlots)
	r.Get("/geo/reverse", h.ReverseGeocode)
}

// ListTurfs godoc
// @Summary List turfs
// @Tags venues
// @Produce json
// @Success 200 {object} response.Data[[]turfapi.Turf]
// @Failure 502 {object} response.Error
// @Router /turfs [get]
func (h *Handler) ListTurfs(ctx *fiber.Ctx) error {
	data, err := h.service.ListTurfs(ctx.UserContext(), middleware.CurrentSession(ctx))
	if err != nil {
		h.logger.Error(identifier, "list - request_id: "+middleware.GetRequestID(ctx)+" - "+err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, data)
}

// GetTurf godoc
// @Summary Get turf with its games and units
// @Tags venues
// @Produce json
// @Param id path int true "Turf ID"
// @Success 200 {object} response.Data[turfapi.Turf]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /turfs/{id} [get]
func (h *Handler) GetTurf(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt(constant.RequestParamID)
	if err != nil || id <= 0 {
		return response.WithError(ctx, failure.BadRequestFromString("invalid turf id"))
	}

	data, err := h.service.GetTurf(ctx.UserContext(), middleware.CurrentSession(ctx), int64(id))
	if err != nil {
		h.logger.Error(identifier, "get - request_id: "+middleware.GetRequestID(ctx)+" - "+err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, data)
}

// ListSlots godoc
// @Summary Slots of a unit for a date
// @Tags venues
// @Produce json
// @Param id path int true "Unit ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.SlotsResponse]
// @Failure 400 {object} response.Error
// @Router /units/{id}/slots [get]
func (h *Handler) ListSlots(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt(constant.RequestParamID)
	if err != nil || id <= 0 {
		return response.WithError(ctx, failure.BadRequestFromString("invalid unit id"))
	}

	var req dto.SlotsRequest
	if err := ctx.QueryParser(&req); err != nil {
		return response.WithError(ctx, failure.BadRequest(err))
	}

	if err := h.validator.Struct(req); err != nil {
		h.logger.Error("http - venues - slots - validate error: " + err.Error())

		return response.WithError(ctx, failure.BadRequest(err))
	}

	data, err := h.service.ListSlots(ctx.UserContext(), middleware.CurrentSession(ctx), int64(id), req.Date)
	if err != nil {
		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, data)
}

// Discover godoc
// @Summary Discover turfs
// @Description City mode filters by location substring. Location mode ranks by estimated road distance, optionally refined with routed distances.
// @Tags venues
// @Produce json
// @Param lat query number false "Latitude"
// @Param lng query number false "Longitude"
// @Param city query string false "City filter"
// @Param search query string false "Name or location"
// @Param sport query string false "Sport"
// @Param refine query bool false "Refine with routed distances"
// @Success 200 {object} response.Data[dto.DiscoverResponse]
// @Failure 400 {object} response.Error
// @Router /turfs/discover [get]
func (h *Handler) Discover(ctx *fiber.Ctx) error {
	var req dto.DiscoverRequest
	if err := ctx.QueryParser(&req); err != nil {
		return response.WithError(ctx, failure.BadRequest(err))
	}

	if err := h.validator.Struct(req); err != nil {
		h.logger.Error("http - venues - discover - validate error: " + err.Error())

		return response.WithError(ctx, failure.BadRequest(err))
	}

	data, err := h.service.Discover(ctx.UserContext(), middleware.CurrentSession(ctx), req)
	if err != nil {
		h.logger.Error(identifier, "discover - request_id: "+middleware.GetRequestID(ctx)+" - "+err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, data)
}

// DiscoverLive streams discovery results. Each frame the client sends is a
// DiscoverRequest; the server answers with a "result" frame and, in location
// mode, a later "refined" frame for the same generation.
func (h *Handler) DiscoverLive(c *websocket.Conn) {
	w := ws.NewWriter(c)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	feed := h.service.NewFeed(ctx, ws.Session(c), func(ev service.FeedEvent) {
		if err := w.JSON(frame(ev)); err != nil {
			h.logger.Debug(identifier, "discover live - write: "+err.Error())
		}
	})
	defer feed.Close()

	for {
		var req dto.DiscoverRequest
		if err := c.ReadJSON(&req); err != nil {
			if !ws.Closed(err) {
				h.logger.Warn(identifier, "discover live - read: "+err.Error())
			}

			return
		}

		if err := h.validator.Struct(req); err != nil {
			_ = w.JSON(ws.Event{Type: ws.EventError, Error: err.Error()})

			continue
		}

		feed.Update(req)
	}
}

func frame(ev service.FeedEvent) ws.Event {
	switch {
	case errors.Is(ev.Err, failure.ErrSessionExpired):
		return ws.Event{Type: ws.EventExpired, Error: ev.Err.Error(), Redirect: constant.LoginPath}
	case ev.Err != nil:
		return ws.Event{Type: ws.EventError, Error: ev.Err.Error()}
	case ev.Refined:
		return ws.Event{Type: ws.EventRefined, Generation: ev.Generation, Data: ev.Result}
	default:
		return ws.Event{Type: ws.EventResult, Generation: ev.Generation, Data: ev.Result}
	}
}

// Cities godoc
// @Summary Supported cities
// @Tags venues
// @Produce json
// @Success 200 {object} response.Data[dto.CitiesResponse]
// @Router /turfs/cities [get]
func (h *Handler) Cities(ctx *fiber.Ctx) error {
	return response.WithJSON(ctx, fiber.StatusOK, h.service.Cities())
}

// ReverseGeocode godoc
// @Summary Reverse geocode
// @Description Short "Area, City" label for a coordinate. Falls back to the coordinates when the geocoder is unavailable.
// @Tags venues
// @Produce json
// @Param lat query number true "Latitude"
// @Param lng query number true "Longitude"
// @Success 200 {object} response.Data[dto.PlaceResponse]
// @Failure 400 {object} response.Error
// @Router /geo/reverse [get]
func (h *Handler) ReverseGeocode(ctx *fiber.Ctx) error {
	var req dto.ReverseGeocodeRequest
	if err := ctx.QueryParser(&req); err != nil {
		return response.WithError(ctx, failure.BadRequest(err))
	}

	if err := h.validator.Struct(req); err != nil {
		return response.WithError(ctx, failure.BadRequest(err))
	}

	data := h.service.ReverseGeocode(ctx.UserContext(), geo.Point{Lat: req.Lat, Lng: req.Lng})

	return response.WithJSON(ctx, fiber.StatusOK, data)
}
