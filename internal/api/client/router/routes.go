// Package router registers the tenant routes: admin client CRUD and the
// client-console knowledge base.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	clienthdl "github.com/jabrielm92/ARIadmin-client-sub000/internal/api/client/handler"
	"github.com/jabrielm92/ARIadmin-client-sub000/internal/api/middleware"
	apirouter "github.com/jabrielm92/ARIadmin-client-sub000/internal/api/router"
)

// Register registers all tenant routes.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	handler, err := clienthdl.NewClientHandler()
	if err != nil {
		return fmt.Errorf("create ClientHandler: %w", err)
	}

	authMiddleware := middleware.Authenticated()
	adminMiddleware := middleware.RequireRole(middleware.RoleAdmin)
	adminMiddlewares := []fiber.Handler{authMiddleware, adminMiddleware}

	// Admin console
	apirouter.RegisterRouteWithMiddleware(v1, "/clients", "GET", "/", adminMiddlewares, handler.HandleList)
	apirouter.RegisterRouteWithMiddleware(v1, "/clients", "POST", "/", adminMiddlewares, handler.HandleCreate)
	apirouter.RegisterRouteWithMiddleware(v1, "/clients", "GET", "/:id", adminMiddlewares, handler.HandleGet)
	apirouter.RegisterRouteWithMiddleware(v1, "/clients", "PUT", "/:id", adminMiddlewares, handler.HandleUpdate)
	apirouter.RegisterRouteWithMiddleware(v1, "/clients", "DELETE", "/:id", adminMiddlewares, handler.HandleDelete)
	apirouter.RegisterRouteWithMiddleware(v1, "/clients", "POST", "/:id/reset-password", adminMiddlewares, handler.HandleResetPassword)

	// Client console
	clientMiddlewares := []fiber.Handler{
		authMiddleware,
		middleware.RequireRole(middleware.RoleAdmin, middleware.RoleClient),
		middleware.ClientScoped(),
	}
	apirouter.RegisterRouteWithMiddleware(v1, "/client/knowledge-base", "GET", "/", clientMiddlewares, handler.HandleGetKnowledgeBase)
	apirouter.RegisterRouteWithMiddleware(v1, "/client/knowledge-base", "POST", "/", clientMiddlewares, handler.HandleSetKnowledgeBase)

	return nil
}
