// Package router registers the auth routes.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	authhdl "github.com/jabrielm92/ARIadmin-client-sub000/internal/api/auth/handler"
	"github.com/jabrielm92/ARIadmin-client-sub000/internal/api/middleware"
	apirouter "github.com/jabrielm92/ARIadmin-client-sub000/internal/api/router"
)

// Register registers all auth routes.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	handler, err := authhdl.NewAuthHandler()
	if err != nil {
		return fmt.Errorf("create AuthHandler: %w", err)
	}

	// Unauthenticated logins
	apirouter.RegisterRouteWithMiddleware(v1, "/auth", "POST", "/admin/login", nil, handler.HandleAdminLogin)
	apirouter.RegisterRouteWithMiddleware(v1, "/auth", "POST", "/client/login", nil, handler.HandleClientLogin)

	authMiddleware := middleware.Authenticated()
	apirouter.RegisterRouteWithMiddleware(v1, "/auth", "GET", "/me", []fiber.Handler{authMiddleware}, handler.HandleMe)

	clientMiddlewares := []fiber.Handler{authMiddleware, middleware.RequireRole(middleware.RoleClient)}
	apirouter.RegisterRouteWithMiddleware(v1, "/auth", "POST", "/client/change-password", clientMiddlewares, handler.HandleChangePassword)

	return nil
}
