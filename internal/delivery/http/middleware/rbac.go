package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/savioruz/turfics/internal/delivery/http/response"
	"github.com/savioruz/turfics/pkg/constant"
	"github.com/savioruz/turfics/pkg/failure"
)

func CheckRole(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := CurrentSession(c)
		if sess == nil {
			err := failure.Unauthorized("role information not found")

			return response.WithError(c, err)
		}

		role := sess.Identity().Role

		for _, allowedRole := range allowedRoles {
			if role == allowedRole {
				return c.Next()
			}
		}

		err := failure.Forbidden("insufficient permissions")

		return response.WithError(c, err)
	}
}

// OwnerOnly admits venue owners and admins. It must run after Jwt.
func OwnerOnly() fiber.Handler {
	return CheckRole(constant.RoleOwner, constant.RoleAdmin)
}
