// Package router registers the admin billing routes.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	billinghdl "github.com/jabrielm92/ARIadmin-client-sub000/internal/api/billing/handler"
	"github.com/jabrielm92/ARIadmin-client-sub000/internal/api/middleware"
	apirouter "github.com/jabrielm92/ARIadmin-client-sub000/internal/api/router"
)

// Register registers all billing routes.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	handler, err := billinghdl.NewBillingHandler()
	if err != nil {
		return fmt.Errorf("create BillingHandler: %w", err)
	}

	authMiddleware := middleware.Authenticated()
	adminMiddleware := middleware.RequireRole(middleware.RoleAdmin)
	middlewares := []fiber.Handler{authMiddleware, adminMiddleware}

	// GET /admin/billing/:clientId
	apirouter.RegisterRouteWithMiddleware(v1, "/admin/billing", "GET", "/:clientId", middlewares, handler.HandleGet)
	// POST /admin/billing/:clientId - set the billing agreement
	apirouter.RegisterRouteWithMiddleware(v1, "/admin/billing", "POST", "/:clientId", middlewares, handler.HandleConfigure)
	// GET /admin/billing/:clientId/invoice - preview current window
	apirouter.RegisterRouteWithMiddleware(v1, "/admin/billing", "GET", "/:clientId/invoice", middlewares, handler.HandleInvoicePreview)
	// POST /admin/billing/:clientId/invoice - close current window
	apirouter.RegisterRouteWithMiddleware(v1, "/admin/billing", "POST", "/:clientId/invoice", middlewares, handler.HandleMarkInvoiced)

	return nil
}
