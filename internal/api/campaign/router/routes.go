// Package router registers the campaign domain routes: client campaign CRUD,
// lifecycle actions and the public landing-page endpoint.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	campaignhdl "github.com/jabrielm92/ARIadmin-client-sub000/internal/api/campaign/handler"
	"github.com/jabrielm92/ARIadmin-client-sub000/internal/api/middleware"
	apirouter "github.com/jabrielm92/ARIadmin-client-sub000/internal/api/router"
)

// Register registers all campaign routes.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	handler, err := campaignhdl.NewCampaignHandler()
	if err != nil {
		return fmt.Errorf("create CampaignHandler: %w", err)
	}

	authMiddleware := middleware.Authenticated()
	roleMiddleware := middleware.RequireRole(middleware.RoleAdmin, middleware.RoleClient)
	clientContextMiddleware := middleware.ClientScoped()
	middlewares := []fiber.Handler{authMiddleware, roleMiddleware, clientContextMiddleware}

	// GET /client/lead-gen/campaigns - list. Query: status, page, limit
	apirouter.RegisterRouteWithMiddleware(v1, "/client/lead-gen/campaigns", "GET", "/", middlewares, handler.HandleList)
	// POST /client/lead-gen/campaigns
	apirouter.RegisterRouteWithMiddleware(v1, "/client/lead-gen/campaigns", "POST", "/", middlewares, handler.HandleCreate)
	// GET /client/lead-gen/campaigns/:id
	apirouter.RegisterRouteWithMiddleware(v1, "/client/lead-gen/campaigns", "GET", "/:id", middlewares, handler.HandleGet)
	// PATCH /client/lead-gen/campaigns/:id
	apirouter.RegisterRouteWithMiddleware(v1, "/client/lead-gen/campaigns", "PATCH", "/:id", middlewares, handler.HandleUpdate)
	// DELETE /client/lead-gen/campaigns/:id
	apirouter.RegisterRouteWithMiddleware(v1, "/client/lead-gen/campaigns", "DELETE", "/:id", middlewares, handler.HandleDelete)
	// PATCH /client/lead-gen/campaigns/:id/status - explicit status change
	apirouter.RegisterRouteWithMiddleware(v1, "/client/lead-gen/campaigns", "PATCH", "/:id/status", middlewares, handler.HandleSetStatus)
	// PATCH /client/lead-gen/campaigns/:id/toggle - active/ paused
	apirouter.RegisterRouteWithMiddleware(v1, "/client/lead-gen/campaigns", "PATCH", "/:id/toggle", middlewares, handler.HandleToggle)
	// POST /client/lead-gen/campaigns/:id/publish - draft to active
	apirouter.RegisterRouteWithMiddleware(v1, "/client/lead-gen/campaigns", "POST", "/:id/publish", middlewares, handler.HandlePublish)
	// POST /client/lead-gen/campaigns/:id/pause
	apirouter.RegisterRouteWithMiddleware(v1, "/client/lead-gen/campaigns", "POST", "/:id/pause", middlewares, handler.HandlePause)

	// Unauthenticated landing-page surface: the fetch and the view ping.
	public := r.App.Group(r.Prefix.Base + "/public")
	public.Get("/campaigns/:id", handler.HandlePublicGet)
	public.Post("/campaigns/:id/view", handler.HandlePublicView)

	return nil
}
