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
	"github.com/savioruz/turfics/internal/domains/users/dto"
	"github.com/savioruz/turfics/internal/domains/users/service"
	"github.com/savioruz/turfics/pkg/constant"
	"github.com/savioruz/turfics/pkg/failure"
	"github.com/savioruz/turfics/pkg/logger"
)

type Handler struct {
	service   service.UserService
	logger    logger.Interface
	validator *validator.Validate
}

func New(s service.UserService, l logger.Interface, v *validator.Validate) *Handler {
	return &Handler{
		service:   s,
		logger:    l,
		validator: v,
	}
}

const identifier = "http - user - %s"

func (h *Handler) RegisterRoutes(r fiber.Router) {
	users := r.Group("/users", middleware.Jwt())

	users.Get("/search", h.Search)
	users.Get("/search/live", ws.Upgrade(), websocket.New(h.SearchLive))
}

// Search godoc
// @Summary Search users by username
// @Description Queries shorter than two characters return no users.
// @Tags users
// @Produce json
// @Param q query string true "Username fragment"
// @Success 200 {object} response.Data[dto.SearchResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Router /users/search [get]
// @Security BearerAuth
func (h *Handler) Search(ctx *fiber.Ctx) error {
	sess, err := middleware.RequireSession(ctx)
	if err != nil {
		return response.WithError(ctx, err)
	}

	var req dto.SearchRequest
	if err := ctx.QueryParser(&req); err != nil {
		return response.WithError(ctx, failure.BadRequest(err))
	}

	if err := h.validator.Struct(req); err != nil {
		return response.WithError(ctx, failure.BadRequest(err))
	}

	data, err := h.service.Search(ctx.UserContext(), sess, req.Query)
	if err != nil {
		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, data)
}

// SearchLive streams search results while the user types. Each frame the
// client sends is a SearchRequest; answers are "result" frames tagged with
// the generation of the query they belong to.
func (h *Handler) SearchLive(c *websocket.Conn) {
	w := ws.NewWriter(c)

	sess := ws.Session(c)
	if sess == nil {
		_ = w.JSON(ws.Event{Type: ws.EventExpired, Redirect: constant.LoginPath})

		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	feed := h.service.NewFeed(ctx, sess, func(ev service.FeedEvent) {
		if err := w.JSON(frame(ev)); err != nil {
			h.logger.Debug(identifier, "search live - write: "+err.Error())
		}
	})
	defer feed.Close()

	for {
		var req dto.SearchRequest
		if err := c.ReadJSON(&req); err != nil {
			if !ws.Closed(err) {
				h.logger.Warn(identifier, "search live - read: "+err.Error())
			}

			return
		}

		if err := h.validator.Struct(req); err != nil {
			_ = w.JSON(ws.Event{Type: ws.EventError, Error: err.Error()})

			continue
		}

		feed.Update(req.Query)
	}
}

func frame(ev service.FeedEvent) ws.Event {
	switch {
	case errors.Is(ev.Err, failure.ErrSessionExpired):
		return ws.Event{Type: ws.EventExpired, Error: ev.Err.Error(), Redirect: constant.LoginPath}
	case ev.Err != nil:
		return ws.Event{Type: ws.EventError, Generation: ev.Generation, Error: ev.Err.Error()}
	default:
		return ws.Event{Type: ws.EventResult, Generation: ev.Generation, Data: ev.Result}
	}
}
