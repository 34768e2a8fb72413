package httpapi

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/sakshisharma25/meetyfi-b/auth"
)

const currentUserKey = "current_user"

// RequireUser authenticates the bearer token and stores the resolved
// user in locals under current_user.
func RequireUser(gate *auth.Gate) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw, err := tokenFromHeader(c)
		if err != nil {
			return err
		}

		user, err := gate.Authenticate(c.UserContext(), raw)
		if err != nil {
			return err
		}

		c.Locals(currentUserKey, user)
		return c.Next()
	}
}

// RequireManager rejects non-manager users. Must run after RequireUser.
func RequireManager(gate *auth.Gate) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := gate.RequireManager(CurrentUser(c)); err != nil {
			return err
		}
		return c.Next()
	}
}

// CurrentUser returns the authenticated user stored by RequireUser, or
// nil when the middleware has not run.
func CurrentUser(c *fiber.Ctx) *auth.User {
	user, _ := c.Locals(currentUserKey).(*auth.User)
	return user
}

func tokenFromHeader(c *fiber.Ctx) (string, error) {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" {
		return "", auth.ErrUnauthorized
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", auth.ErrUnauthorized
	}

	return parts[1], nil
}
