// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"absensiku_backend/internals/configs"
)

// Key Locals untuk identitas caller hasil verifikasi token.
const LocCallerName = "caller_name"

// AuthMiddleware memverifikasi bearer token (header atau cookie) dan
// menaruh nama caller di Locals. Token opsional: request anonim tetap
// lolos dengan caller kosong — keputusan boleh/tidaknya write ada di
// Authorizer ledger, bukan di sini. Token yang ADA tapi rusak/kedaluwarsa
// tetap ditolak 401.
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := extractBearerToken(c)
		if tokenString == "" {
			return c.Next()
		}

		secretKey := configs.JWTSecret
		if secretKey == "" {
			log.Println("[ERROR] JWT_SECRET kosong")
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		claims := jwt.MapClaims{}
		parser := jwt.Parser{SkipClaimsValidation: true}
		if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "Unexpected signing method")
			}
			return []byte(secretKey), nil
		}); err != nil {
			log.Println("[ERROR] Gagal parse token:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token parse error")
		}

		if err := validateTokenExpiry(claims, 30*time.Second); err != nil {
			log.Println("[ERROR] Exp validation:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token expired")
		}

		name, _ := claims["sub"].(string)
		if strings.TrimSpace(name) == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Missing subject")
		}
		c.Locals(LocCallerName, name)
		return c.Next()
	}
}

// CallerName mengambil identitas caller dari Locals; "" kalau anonim.
func CallerName(c *fiber.Ctx) string {
	if v, ok := c.Locals(LocCallerName).(string); ok {
		return v
	}
	return ""
}

func extractBearerToken(c *fiber.Ctx) string {
	const p = "Bearer "
	auth := c.Get("Authorization")
	if len(auth) > len(p) && strings.HasPrefix(auth, p) {
		return strings.TrimSpace(auth[len(p):])
	}
	if v := strings.TrimSpace(c.Cookies("access_token")); v != "" {
		return v
	}
	return ""
}

func validateTokenExpiry(claims jwt.MapClaims, leeway time.Duration) error {
	exp, ok := claims["exp"].(float64)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "missing exp claim")
	}
	if time.Now().Add(-leeway).After(time.Unix(int64(exp), 0)) {
		return fiber.NewError(fiber.StatusUnauthorized, "token expired")
	}
	return nil
}
