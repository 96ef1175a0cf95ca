// Package router registers the receptionist routes: client configuration and
// activation, call history, appointments, the dashboard and the voice-service
// webhook.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"github.com/jabrielm92/ARIadmin-client-sub000/internal/api/middleware"
	receptionisthdl "github.com/jabrielm92/ARIadmin-client-sub000/internal/api/receptionist/handler"
	apirouter "github.com/jabrielm92/ARIadmin-client-sub000/internal/api/router"
)

// Register registers all receptionist routes.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	handler, err := receptionisthdl.NewReceptionistHandler()
	if err != nil {
		return fmt.Errorf("create ReceptionistHandler: %w", err)
	}

	clientMiddlewares := []fiber.Handler{
		middleware.Authenticated(),
		middleware.RequireRole(middleware.RoleAdmin, middleware.RoleClient),
		middleware.ClientScoped(),
	}

	// Client console
	apirouter.RegisterRouteWithMiddleware(v1, "/client/ai-receptionist", "POST", "/configure", clientMiddlewares, handler.HandleConfigure)
	apirouter.RegisterRouteWithMiddleware(v1, "/client/ai-receptionist", "POST", "/activate", clientMiddlewares, handler.HandleActivate)
	apirouter.RegisterRouteWithMiddleware(v1, "/client/calls", "GET", "/", clientMiddlewares, handler.HandleCalls)
	apirouter.RegisterRouteWithMiddleware(v1, "/client/appointments", "GET", "/", clientMiddlewares, handler.HandleAppointments)
	apirouter.RegisterRouteWithMiddleware(v1, "/client/dashboard", "GET", "/", clientMiddlewares, handler.HandleDashboard)

	// POST /api/vapi/webhook - authenticated by the shared webhook secret
	webhooks := r.App.Group(r.Prefix.Base + "/vapi")
	webhooks.Post("/webhook", handler.HandleWebhook)

	return nil
}
