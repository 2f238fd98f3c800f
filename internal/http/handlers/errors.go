package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"shoplist/internal/wire"
)

func jsonError(c *fiber.Ctx, status int, kind, message string, paramMap map[string]any) error {
	return c.Status(status).JSON(wire.NewError(kind, message, paramMap))
}

// validationFailed reports every violated rule in one response.
func validationFailed(c *fiber.Ctx, errs []string) error {
	invalid := map[string]string{}
	for i, e := range errs {
		invalid[fmt.Sprintf("error%d", i)] = e
	}
	return jsonError(c, fiber.StatusBadRequest, wire.KindValidation, "Validation failed", map[string]any{
		"missingKeyMap":      map[string]any{},
		"invalidValueKeyMap": invalid,
	})
}
