package serverutils

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// SessionTokenMiddleware guards the assistant endpoints. The token is the
// HS256 one issued at create-session; it carries the session id, not a
// user identity. Browsers cannot set headers on a WebSocket upgrade, so
// the token query parameter is accepted as a fallback.
func SessionTokenMiddleware(ctx *fiber.Ctx) error {
	tokenStr := ""
	authHeader := ctx.Get("Authorization")
	if len(authHeader) >= 7 && authHeader[:7] == "Bearer " {
		tokenStr = authHeader[7:]
	} else {
		tokenStr = ctx.Query("token")
	}
	if tokenStr == "" {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Missing token"})
	}

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		return []byte(os.Getenv("JWT_SECRET")), nil
	})

	if err != nil || !token.Valid {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid token"})
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid claims"})
	}

	sessionId, _ := claims["session_id"].(string)
	if sessionId == "" {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid claims"})
	}

	ctx.Locals("session_id", sessionId)
	return ctx.Next()
}
