// Package middleware holds the HTTP middleware: JWT authentication, role
// checks and tenant scoping.
package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/golang-jwt/jwt/v5"

	basehdl "github.com/jabrielm92/ARIadmin-client-sub000/internal/api/base/handler"
	"github.com/jabrielm92/ARIadmin-client-sub000/internal/common"
	"github.com/jabrielm92/ARIadmin-client-sub000/internal/global"
)

// Roles carried in the JWT "role" claim.
const (
	RoleAdmin  = "admin"
	RoleClient = "client"
)

// Claims is the JWT payload issued at login.
type Claims struct {
	Role     string `json:"role"`
	ClientID string `json:"clientId,omitempty"`
	jwt.RegisteredClaims
}

// extractToken pulls the bearer token from the Authorization header.
func extractToken(c fiber.Ctx) (string, error) {
	header := c.Get("Authorization")
	if header == "" {
		return "", common.ErrTokenMissing
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", common.ErrTokenInvalid
	}
	return parts[1], nil
}

// parseToken validates the signature and expiry and returns the claims.
func parseToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.ErrTokenInvalid
		}
		return []byte(global.ServerConfig.JwtSecret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrTokenInvalid
	}
	if !token.Valid {
		return nil, common.ErrTokenInvalid
	}
	return claims, nil
}

// Authenticated verifies the bearer token and stores the identity in Locals.
func Authenticated() fiber.Handler {
	return func(c fiber.Ctx) error {
		tokenString, err := extractToken(c)
		if err != nil {
			return basehdl.HandleError(c, err)
		}

		claims, err := parseToken(tokenString)
		if err != nil {
			return basehdl.HandleError(c, err)
		}

		c.Locals("userId", claims.Subject)
		c.Locals("role", claims.Role)
		c.Locals("clientId", claims.ClientID)

		return c.Next()
	}
}

// RequireRole rejects requests whose token role is not in the allowed set.
// Must run after Authenticated.
func RequireRole(roles ...string) fiber.Handler {
	return func(c fiber.Ctx) error {
		role, _ := c.Locals("role").(string)
		for _, allowed := range roles {
			if role == allowed {
				return c.Next()
			}
		}
		return basehdl.HandleError(c, common.ErrForbidden)
	}
}
