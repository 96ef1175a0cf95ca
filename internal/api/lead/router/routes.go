// Package router registers the lead routes: client lead management, the
// admin review queue and the public capture endpoint.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	leadhdl "github.com/jabrielm92/ARIadmin-client-sub000/internal/api/lead/handler"
	"github.com/jabrielm92/ARIadmin-client-sub000/internal/api/middleware"
	apirouter "github.com/jabrielm92/ARIadmin-client-sub000/internal/api/router"
)

// Register registers all lead routes.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	handler, err := leadhdl.NewLeadHandler()
	if err != nil {
		return fmt.Errorf("create LeadHandler: %w", err)
	}

	authMiddleware := middleware.Authenticated()
	clientMiddlewares := []fiber.Handler{
		authMiddleware,
		middleware.RequireRole(middleware.RoleAdmin, middleware.RoleClient),
		middleware.ClientScoped(),
	}
	adminMiddlewares := []fiber.Handler{
		authMiddleware,
		middleware.RequireRole(middleware.RoleAdmin),
	}

	// Client console
	apirouter.RegisterRouteWithMiddleware(v1, "/client/leads", "GET", "/", clientMiddlewares, handler.HandleList)
	apirouter.RegisterRouteWithMiddleware(v1, "/client/leads", "GET", "/:id", clientMiddlewares, handler.HandleGet)
	apirouter.RegisterRouteWithMiddleware(v1, "/client/leads", "PUT", "/:id/status", clientMiddlewares, handler.HandleChangeStatus)
	apirouter.RegisterRouteWithMiddleware(v1, "/client/leads", "POST", "/:id/notes", clientMiddlewares, handler.HandleAddNote)
	apirouter.RegisterRouteWithMiddleware(v1, "/client/leads", "POST", "/:id/tags", clientMiddlewares, handler.HandleAddTag)

	// Admin review queue
	apirouter.RegisterRouteWithMiddleware(v1, "/admin/leads", "GET", "/pending-review", adminMiddlewares, handler.HandlePendingReview)
	apirouter.RegisterRouteWithMiddleware(v1, "/admin/leads", "POST", "/:id/approve", adminMiddlewares, handler.HandleApprove)
	apirouter.RegisterRouteWithMiddleware(v1, "/admin/leads", "POST", "/:id/reject", adminMiddlewares, handler.HandleReject)

	// POST /api/public/leads/capture - unauthenticated form submission
	public := r.App.Group(r.Prefix.Base + "/public")
	public.Post("/leads/capture", handler.HandleCapture)

	return nil
}
