package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	IdentityHeader    = "x-user-identity"
	AnonymousIdentity = "anonymous"
)

// Identity attaches the trusted caller identity to the request context.
// Authentication beyond this header is out of scope; upstream is trusted.
func Identity() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := strings.TrimSpace(c.Get(IdentityHeader))
		if id == "" {
			id = AnonymousIdentity
		}
		c.Locals("identity", id)
		return c.Next()
	}
}

func callerIdentity(c *fiber.Ctx) string {
	if id, ok := c.Locals("identity").(string); ok && id != "" {
		return id
	}
	return AnonymousIdentity
}
