package jwt

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/talent/pkg/errs"
)

const (
	localUserID = "userId"
	localEmail  = "userEmail"
)

// NewAuthMiddleware returns a Fiber middleware that validates Bearer JWT (HS256).
// A valid token puts the subject and email into Locals. Requests without a
// token pass through unless required is set and the method mutates state.
func NewAuthMiddleware(secret, expectedIssuer string, required bool) fiber.Handler {
	secretBytes := []byte(secret)
	return func(c *fiber.Ctx) error {
		tokenStr := bearer(c.Get(fiber.HeaderAuthorization))
		if tokenStr == "" {
			if required && mutating(c.Method()) {
				return errs.Unauthorized("Authentication required")
			}
			return c.Next()
		}
		claims, err := Parse(tokenStr, secretBytes, expectedIssuer)
		if err != nil {
			return errs.Unauthorized("Invalid or expired token")
		}
		c.Locals(localUserID, claims.Subject)
		c.Locals(localEmail, claims.Email)
		return c.Next()
	}
}

// Actor returns the caller email, or "" for anonymous requests.
func Actor(c *fiber.Ctx) string {
	email, _ := c.Locals(localEmail).(string)
	return email
}

// bearer accepts both "Bearer <token>" and a bare token.
func bearer(header string) string {
	header = strings.TrimSpace(header)
	if scheme, rest, ok := strings.Cut(header, " "); ok && strings.EqualFold(scheme, "Bearer") {
		return strings.TrimSpace(rest)
	}
	return header
}

func mutating(method string) bool {
	switch method {
	case fiber.MethodGet, fiber.MethodHead, fiber.MethodOptions:
		return false
	}
	return true
}
