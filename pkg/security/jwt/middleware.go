package jwt

import (
	"log"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// LocalsUserID is the Fiber locals key under which the middleware stores the
// authenticated user's id (int64).
const LocalsUserID = "userId"

// NewAuthMiddleware returns a Fiber middleware that validates Bearer JWT (HS256).
// On success sets the subject user id into c.Locals(LocalsUserID).
// Every failure is answered with 401 and a WWW-Authenticate: Bearer challenge;
// the concrete reason is logged but not exposed to the caller.
func NewAuthMiddleware(verifier *Verifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return unauthorized(c, "missing Authorization header")
		}
		// Support both "Bearer <token>" and "<token>" (no prefix).
		var tokenStr string
		if strings.Contains(authHeader, " ") {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
				tokenStr = strings.TrimSpace(parts[1])
			} else {
				tokenStr = strings.TrimSpace(authHeader)
			}
		} else {
			tokenStr = strings.TrimSpace(authHeader)
		}
		if tokenStr == "" {
			return unauthorized(c, "empty token")
		}

		userID, err := verifier.Verify(tokenStr)
		if err != nil {
			log.Printf("auth: token rejected: %v", err)
			return unauthorized(c, "could not validate credentials")
		}

		c.Locals(LocalsUserID, userID)
		return c.Next()
	}
}

// UserID extracts the authenticated user id set by the middleware.
func UserID(c *fiber.Ctx) (int64, bool) {
	id, ok := c.Locals(LocalsUserID).(int64)
	return id, ok
}

func unauthorized(c *fiber.Ctx, message string) error {
	c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
	return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": message})
}
