package response

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/savioruz/turfics/pkg/constant"
	"github.com/savioruz/turfics/pkg/failure"
)

type Data[T any] struct {
	Data T `json:"data,omitempty"`
}

type Error struct {
	Error    *string `json:"error,omitempty"`
	Redirect string  `json:"redirect,omitempty"`
}

func WithJSON(ctx *fiber.Ctx, code int, payload interface{}) error {
	err := response(ctx, code, Data[any]{Data: payload})
	if err != nil {
		return err
	}

	return nil
}

// WithError writes the failure status. An expired session also tells the client where to log in again.
func WithError(ctx *fiber.Ctx, err error) error {
	code := failure.GetCode(err)
	errMsg := err.Error()

	body := Error{Error: &errMsg}
	if errors.Is(err, failure.ErrSessionExpired) {
		body.Redirect = constant.LoginPath
	}

	return response(ctx, code, body)
}

// WithBlob sends a file download.
func WithBlob(ctx *fiber.Ctx, contentType, filename string, body []byte) error {
	ctx.Set(fiber.HeaderContentType, contentType)
	ctx.Attachment(filename)

	return ctx.Status(fiber.StatusOK).Send(body)
}

// ErrorHandler renders errors that escape handlers with the same envelope.
func ErrorHandler(ctx *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		msg := fe.Message

		return response(ctx, fe.Code, Error{Error: &msg})
	}

	return WithError(ctx, err)
}

func response(ctx *fiber.Ctx, code int, payload interface{}) error {
	if payload == nil {
		return ctx.SendStatus(code)
	}

	ctx.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)

	if err := ctx.Status(code).JSON(payload); err != nil {
		return err
	}

	return nil
}
