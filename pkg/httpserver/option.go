package httpserver

import (
	"net"
	"time"

	"github.com/gofiber/fiber/v2"
)

type Option func(*Server)

func App(app *fiber.App) Option {
	return func(s *Server) {
		s.App = app
	}
}

func Port(port string) Option {
	return func(s *Server) {
		s.address = net.JoinHostPort("", port)
	}
}

func AppName(name string) Option {
	return func(s *Server) {
		s.appName = name
	}
}

// ErrorHandler replaces fiber's default handler for errors returned by routes.
func ErrorHandler(h fiber.ErrorHandler) Option {
	return func(s *Server) {
		s.errorHandler = h
	}
}

func ReadTimeout(timeout time.Duration) Option {
	return func(s *Server) {
		s.readTimeout = timeout
	}
}

func WriteTimeout(timeout time.Duration) Option {
	return func(s *Server) {
		s.writeTimeout = timeout
	}
}

func ShutdownTimeout(timeout time.Duration) Option {
	return func(s *Server) {
		s.shutdownTimeout = timeout
	}
}
