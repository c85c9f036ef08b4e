package middleware

import (
	"github.com/carewellhq/clinic-admin/internal/config"
	"github.com/carewellhq/clinic-admin/internal/dto"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
)

// JWTProtected validates bearer tokens issued by the upstream auth service.
// Token issuance lives outside this backend; only the signing secret is shared.
func JWTProtected(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: []byte(cfg.JWTSecret)},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Message: "Unauthorized: invalid or expired token",
				Success: false,
			})
		},
	})
}
